// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floorplan

import "cogentcore.org/core/math32"

// Default returns the built-in demo floor: a 4x5 pallet grid with two
// empty cells, one free-standing box, aisle markings, and a turnaround
// circle. Used when no plan file is given.
func Default() *Plan {
	return &Plan{
		Name: "demo floor",
		Items: []*Item{
			{Grid: &Grid{
				Rows: 4,
				Cols: 5,
				Cells: [][]int{
					{1, 1, 1, 1, 1},
					{1, 0, 1, 1, 1},
					{1, 1, 1, 0, 1},
					{1, 1, 1, 1, 1},
				},
				CellWidth: 3,
				CellDepth: 4,
				RowLabels: []string{"A", "B", "C", "D"},
				FloorY:    0.5,
				Box:       Template{Size: math32.Vec3(2.4, 1, 3.2)},
			}},
			{Box: &Box{
				ID:    "X1",
				Pos:   math32.Vec3(18, 0.5, 2),
				Size:  math32.Vec3(2.4, 1, 3.2),
				Color: "tan",
			}},
			{Lines: &Lines{
				Color: "yellow",
				Paths: [][]math32.Vector3{
					{math32.Vec3(0, 0.01, 0), math32.Vec3(15, 0.01, 0)},
					{math32.Vec3(0, 0.01, 16), math32.Vec3(15, 0.01, 16)},
					{math32.Vec3(0, 0.01, 0), math32.Vec3(0, 0.01, 16)},
					{math32.Vec3(15, 0.01, 0), math32.Vec3(15, 0.01, 16)},
				},
			}},
			{Circle: &Circle{
				Center:   math32.Vec3(18, 0.01, 10),
				Radius:   3,
				Segments: 32,
				Color:    "orange",
			}},
		},
	}
}
