// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floorplan defines the static description of a warehouse floor:
// pallet boxes, occupancy grids that expand into boxes, and floor markings
// (polylines and circles). A plan is loaded once at startup and is not
// mutated afterward; only the rendered transforms of its boxes change.
package floorplan

import "cogentcore.org/core/math32"

// DefaultColor is the color used for boxes that do not specify one.
const DefaultColor = "limegreen"

// Plan is a complete floor description: an ordered list of scene items.
type Plan struct {

	// Name is an optional display name for the floor.
	Name string `json:"name,omitempty"`

	// Items are the scene items, in draw order.
	Items []*Item `json:"items"`
}

// Item is one scene item. Exactly one of the fields is set; the plan
// schema enforces this for JSON input.
type Item struct {

	// Grid is an occupancy grid that expands into boxes.
	Grid *Grid `json:"grid,omitempty"`

	// Box is a single pallet box literal.
	Box *Box `json:"box,omitempty"`

	// Lines is a set of floor-marking polylines.
	Lines *Lines `json:"lines,omitempty"`

	// Circle is a circular floor marking.
	Circle *Circle `json:"circle,omitempty"`
}

// Box describes one pallet box.
type Box struct {

	// ID uniquely identifies the box, e.g. "A1".
	ID string `json:"id"`

	// Pos is the world position of the box center.
	Pos math32.Vector3 `json:"pos"`

	// Size is the width, height, depth of the box.
	Size math32.Vector3 `json:"size"`

	// Color is a named base color; [DefaultColor] when empty.
	Color string `json:"color,omitempty"`
}

// Template is the shared geometry and color for grid-expanded boxes.
type Template struct {

	// Size is the width, height, depth of each expanded box.
	Size math32.Vector3 `json:"size"`

	// Color is a named base color; [DefaultColor] when empty.
	Color string `json:"color,omitempty"`
}

// Grid is a rectangular occupancy grid: each occupied cell emits one box.
type Grid struct {

	// Rows and Cols bound the grid; zero means take the bounds from Cells.
	Rows int `json:"rows,omitempty"`
	Cols int `json:"cols,omitempty"`

	// Cells is the occupancy array: 1 = occupied, 0 = empty.
	Cells [][]int `json:"cells"`

	// CellWidth and CellDepth are the world size of one cell (x and z).
	CellWidth float32 `json:"cellWidth"`
	CellDepth float32 `json:"cellDepth"`

	// RowLabels override the numeric row index in box IDs.
	// A list shorter than the row count, or containing duplicates, can
	// produce colliding IDs; this is not validated.
	RowLabels []string `json:"rowLabels,omitempty"`

	// FloorY is the y position of every expanded box.
	FloorY float32 `json:"floorY,omitempty"`

	// Box is the shared template for the expanded boxes.
	Box Template `json:"box"`
}

// Lines is a set of floor-marking polylines sharing one color.
type Lines struct {

	// Color is a named color for all paths.
	Color string `json:"color,omitempty"`

	// Paths are the polylines, each an ordered sequence of 3D points.
	Paths [][]math32.Vector3 `json:"paths"`
}

// Circle is a circular floor marking, rendered as a closed polyline.
type Circle struct {

	// Center is the circle center.
	Center math32.Vector3 `json:"center"`

	// Radius is the circle radius.
	Radius float32 `json:"radius"`

	// Segments is the number of polyline segments to sample.
	Segments int `json:"segments"`

	// Color is a named color.
	Color string `json:"color,omitempty"`
}

// Points returns the closed polyline sampling of the circle, with
// Segments+1 points so the last point closes back on the first.
func (c *Circle) Points() []math32.Vector3 {
	pts := make([]math32.Vector3, 0, c.Segments+1)
	for i := 0; i <= c.Segments; i++ {
		ang := 2 * math32.Pi * float32(i) / float32(c.Segments)
		pts = append(pts, math32.Vec3(
			c.Center.X+c.Radius*math32.Cos(ang),
			c.Center.Y,
			c.Center.Z+c.Radius*math32.Sin(ang)))
	}
	return pts
}

// Boxes returns all boxes in the plan, literals as-is plus grid
// expansions, in item order.
func (pl *Plan) Boxes() []*Box {
	var bxs []*Box
	for _, it := range pl.Items {
		switch {
		case it.Box != nil:
			bxs = append(bxs, it.Box)
		case it.Grid != nil:
			bxs = append(bxs, it.Grid.Expand()...)
		}
	}
	return bxs
}
