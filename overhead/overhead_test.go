// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overhead

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/palletyard/palletyard/floor"
	"github.com/palletyard/palletyard/floorplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFloor() *floor.Floor {
	return floor.New(&floorplan.Plan{Items: []*floorplan.Item{
		{Box: &floorplan.Box{ID: "A1", Pos: math32.Vec3(2, 0.5, 2), Size: math32.Vec3(2, 1, 2), Color: "limegreen"}},
		{Circle: &floorplan.Circle{Center: math32.Vec3(8, 0, 2), Radius: 1, Segments: 16, Color: "orange"}},
	}})
}

func TestRender(t *testing.T) {
	fl := testFloor()
	img := Render(fl, 10)
	// content spans x 1..9, z 1..3, plus a 2 unit margin each side
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())

	// the box center is filled with its resolved color
	r, g, b, _ := img.At(30, 30).RGBA()
	assert.Equal(t, color.RGBA{50, 205, 50, 255}, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255})
}

func TestRenderSelectedColor(t *testing.T) {
	fl := testFloor()
	fl.Select("A1")
	img := Render(fl, 10)
	r, g, b, _ := img.At(30, 30).RGBA()
	assert.Equal(t, color.RGBA{255, 255, 0, 255}, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255})
}

func TestRenderEmpty(t *testing.T) {
	fl := floor.New(&floorplan.Plan{})
	img := Render(fl, 10)
	assert.Equal(t, 40, img.Bounds().Dx()) // margin only
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "floor.png")
	require.NoError(t, Save(testFloor(), 10, fn))
	st, err := os.Stat(fn)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}
