// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floorplan

import (
	"strconv"

	"cogentcore.org/core/math32"
)

// RowLabel returns the ID label for row r: the explicit override when
// present, else the numeric row index.
func (g *Grid) RowLabel(r int) string {
	if r < len(g.RowLabels) {
		return g.RowLabels[r]
	}
	return strconv.Itoa(r)
}

// Expand returns one Box per occupied cell, centered in its cell:
// x = c*cellWidth + cellWidth/2, z = r*cellDepth + cellDepth/2, y = FloorY.
// The box ID is the row label concatenated with the 1-based column number.
// Expand is pure: it does not mutate the grid and has no side effects.
func (g *Grid) Expand() []*Box {
	var bxs []*Box
	for r, row := range g.Cells {
		if g.Rows > 0 && r >= g.Rows {
			break
		}
		for c, occ := range row {
			if g.Cols > 0 && c >= g.Cols {
				break
			}
			if occ == 0 {
				continue
			}
			bxs = append(bxs, &Box{
				ID: g.RowLabel(r) + strconv.Itoa(c+1),
				Pos: math32.Vec3(
					float32(c)*g.CellWidth+g.CellWidth/2,
					g.FloorY,
					float32(r)*g.CellDepth+g.CellDepth/2),
				Size:  g.Box.Size,
				Color: g.Box.Color,
			})
		}
	}
	return bxs
}
