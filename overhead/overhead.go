// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overhead renders a 2D top-down image of a floor, for quick
// inspection and headless snapshot export. World x maps to image x and
// world z to image y; box colors are the same resolved status colors the
// 3D view shows.
package overhead

import (
	"image"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/fogleman/gg"
	"github.com/palletyard/palletyard/floor"
	"github.com/palletyard/palletyard/floorplan"
)

// Margin is the world-unit border around the floor content.
const Margin float32 = 2

// Render draws the floor top-down at the given scale in pixels per world
// unit.
func Render(fl *floor.Floor, scale float32) image.Image {
	min, max := bounds(fl)
	w := int((max.X - min.X) * scale)
	h := int((max.Y - min.Y) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(errors.Log1(colors.FromString("white")))
	dc.Clear()

	// markings under the boxes
	for _, it := range fl.Plan.Items {
		switch {
		case it.Lines != nil:
			dc.SetColor(named(it.Lines.Color))
			dc.SetLineWidth(2)
			for _, path := range it.Lines.Paths {
				for i, p := range path {
					x, y := toImg(p.X, p.Z, min, scale)
					if i == 0 {
						dc.MoveTo(x, y)
					} else {
						dc.LineTo(x, y)
					}
				}
				dc.Stroke()
			}
		case it.Circle != nil:
			dc.SetColor(named(it.Circle.Color))
			dc.SetLineWidth(2)
			x, y := toImg(it.Circle.Center.X, it.Circle.Center.Z, min, scale)
			dc.DrawCircle(x, y, float64(it.Circle.Radius*scale))
			dc.Stroke()
		}
	}

	for _, bx := range fl.Boxes {
		dc.Push()
		cx, cy := toImg(bx.Pos.X, bx.Pos.Z, min, scale)
		dc.RotateAbout(float64(-bx.YRot), cx, cy)
		dc.SetColor(named(fl.BoxColor(bx.ID)))
		fw := float64(bx.Size.X * scale)
		fd := float64(bx.Size.Z * scale)
		dc.DrawRectangle(cx-fw/2, cy-fd/2, fw, fd)
		dc.Fill()
		dc.Pop()
	}
	return dc.Image()
}

// Save renders the floor and writes it as PNG to the given file.
func Save(fl *floor.Floor, scale float32, filename string) error {
	return imagex.Save(Render(fl, scale), filename)
}

// bounds returns the (x, z) extent of all floor content plus [Margin].
func bounds(fl *floor.Floor) (min, max math32.Vector2) {
	min = math32.Vec2(math32.Infinity, math32.Infinity)
	max = min.Negate()
	add := func(x, z float32) {
		min.SetMin(math32.Vec2(x, z))
		max.SetMax(math32.Vec2(x, z))
	}
	for _, bx := range fl.Boxes {
		add(bx.Pos.X-bx.Size.X/2, bx.Pos.Z-bx.Size.Z/2)
		add(bx.Pos.X+bx.Size.X/2, bx.Pos.Z+bx.Size.Z/2)
	}
	for _, it := range fl.Plan.Items {
		switch {
		case it.Lines != nil:
			for _, path := range it.Lines.Paths {
				for _, p := range path {
					add(p.X, p.Z)
				}
			}
		case it.Circle != nil:
			add(it.Circle.Center.X-it.Circle.Radius, it.Circle.Center.Z-it.Circle.Radius)
			add(it.Circle.Center.X+it.Circle.Radius, it.Circle.Center.Z+it.Circle.Radius)
		}
	}
	if min.X > max.X { // empty floor
		min, max = math32.Vector2{}, math32.Vector2{}
	}
	m := math32.Vec2(Margin, Margin)
	return min.Sub(m), max.Add(m)
}

func toImg(x, z float32, min math32.Vector2, scale float32) (float64, float64) {
	return float64((x - min.X) * scale), float64((z - min.Y) * scale)
}

func named(name string) color.RGBA {
	if name == "" {
		name = floorplan.DefaultColor
	}
	return errors.Log1(colors.FromString(name))
}
