// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floor

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/palletyard/palletyard/floorplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFloor() *Floor {
	return New(&floorplan.Plan{Items: []*floorplan.Item{
		{Grid: &floorplan.Grid{
			Cells:     [][]int{{1, 1}, {1, 1}},
			CellWidth: 4,
			CellDepth: 4,
			RowLabels: []string{"A", "B"},
			FloorY:    0.5,
			Box:       floorplan.Template{Size: math32.Vec3(2, 1, 3)},
		}},
		{Box: &floorplan.Box{ID: "X1", Pos: math32.Vec3(10, 0.5, 2), Size: math32.Vec3(2, 1, 3), Color: "tan"}},
	}})
}

func TestNew(t *testing.T) {
	fl := testFloor()
	assert.Equal(t, []string{"A1", "A2", "B1", "B2", "X1"}, fl.IDs())
	require.NotNil(t, fl.Box("A1"))
	assert.Equal(t, floorplan.DefaultColor, fl.Box("A1").Color)
	assert.Equal(t, "tan", fl.Box("X1").Color)
	assert.Nil(t, fl.Box("Z9"))
}

func TestRequestMoveAdmission(t *testing.T) {
	fl := testFloor()
	assert.ErrorIs(t, fl.RequestMove("", math32.Y, 1), ErrNoBox)
	assert.ErrorIs(t, fl.RequestMove("Z9", math32.Y, 1), ErrNoBox)
	assert.ErrorIs(t, fl.RequestMove("A1", math32.Y, 0), ErrBadDistance)
	assert.ErrorIs(t, fl.RequestMove("A1", math32.Y, float32(math.NaN())), ErrBadDistance)
	assert.Empty(t, fl.Moves)

	require.NoError(t, fl.RequestMove("A1", math32.Y, 1))
	assert.ErrorIs(t, fl.RequestMove("A1", math32.X, 2), ErrBusy)
	assert.ErrorIs(t, fl.RequestRotate("A1"), ErrBusy)
	assert.Len(t, fl.Moves, 1)
	assert.Empty(t, fl.Rotates)

	// a different box is unaffected
	require.NoError(t, fl.RequestRotate("B2"))
	assert.ErrorIs(t, fl.RequestMove("B2", math32.Y, 1), ErrBusy)
}

func TestMoveEndToEnd(t *testing.T) {
	fl := testFloor()
	fl.Select("A1")
	start := fl.Box("A1").Pos.Y

	var doneIDs []string
	fl.OnDone = func(id string, kind Kinds) {
		assert.Equal(t, Move, kind)
		doneIDs = append(doneIDs, id)
	}

	require.NoError(t, fl.RequestMove("A1", math32.Y, 5))
	for i := 0; i < 1000 && len(fl.Moves) > 0; i++ {
		fl.Tick(0.016)
	}
	assert.Empty(t, fl.Moves)
	assert.InDelta(t, start+5, fl.Box("A1").Pos.Y, float64(StopEpsilon))
	assert.Equal(t, []string{"A1"}, doneIDs, "completion must fire exactly once")

	// x and z are untouched
	assert.Equal(t, float32(2), fl.Box("A1").Pos.X)
	assert.Equal(t, float32(2), fl.Box("A1").Pos.Z)
}

func TestRotateTwiceReturnsToStart(t *testing.T) {
	fl := testFloor()
	for n := 0; n < 2; n++ {
		require.NoError(t, fl.RequestRotate("X1"))
		for i := 0; i < 1000 && len(fl.Rotates) > 0; i++ {
			fl.Tick(0.02)
		}
		require.Empty(t, fl.Rotates)
	}
	assert.InDelta(t, 2*math.Pi, fl.Box("X1").YRot, 0.01)
}

func TestConcurrentMoveAndRotate(t *testing.T) {
	// both kinds can be live for one box if entered independently;
	// they then advance in the same ticks.
	fl := testFloor()
	require.NoError(t, fl.RequestMove("A1", math32.X, 1))
	fl.Rotates["A1"] = &Anim{Kind: Rotate, Remaining: float32(math.Pi)}

	changed := fl.Tick(0.1)
	assert.True(t, changed)
	assert.InDelta(t, 2.1, fl.Box("A1").Pos.X, 1e-4)
	assert.InDelta(t, math.Pi*0.1, fl.Box("A1").YRot, 1e-4)
}

func TestToggles(t *testing.T) {
	fl := testFloor()
	assert.ErrorIs(t, fl.ToggleCar("Z9"), ErrNoBox)
	assert.ErrorIs(t, fl.ToggleError(""), ErrNoBox)

	require.NoError(t, fl.ToggleCar("A1"))
	assert.True(t, fl.CarPresent["A1"])
	require.NoError(t, fl.ToggleCar("A1"))
	assert.False(t, fl.CarPresent["A1"])

	require.NoError(t, fl.ToggleError("A1"))
	assert.True(t, fl.Errors["A1"])
}

func TestBoxColorBlink(t *testing.T) {
	fl := testFloor()
	require.NoError(t, fl.ToggleError("A1"))

	// phase flips as the accumulated clock crosses each period
	assert.True(t, fl.BlinkOn())
	assert.Equal(t, AlarmColor, fl.BoxColor("A1"))

	changed := fl.Tick(BlinkPeriod)
	assert.True(t, changed, "blink flip with an error set must re-render")
	assert.False(t, fl.BlinkOn())
	assert.Equal(t, floorplan.DefaultColor, fl.BoxColor("A1"))

	fl.Tick(BlinkPeriod)
	assert.Equal(t, AlarmColor, fl.BoxColor("A1"))

	// once toggled off the alarm color never shows, at any phase
	require.NoError(t, fl.ToggleError("A1"))
	assert.Equal(t, floorplan.DefaultColor, fl.BoxColor("A1"))
	fl.Tick(BlinkPeriod)
	assert.Equal(t, floorplan.DefaultColor, fl.BoxColor("A1"))
}

func TestBoxColorSelectionWins(t *testing.T) {
	fl := testFloor()
	fl.Select("A1")
	require.NoError(t, fl.ToggleCar("A1"))
	require.NoError(t, fl.ToggleError("A1"))
	for i := 0; i < 4; i++ {
		assert.Equal(t, SelectedColor, fl.BoxColor("A1"))
		fl.Tick(BlinkPeriod)
	}
	assert.True(t, fl.Errors["A1"], "error flag stays set under selection")
}

func TestLabels(t *testing.T) {
	fl := testFloor()
	require.NoError(t, fl.ToggleCar("A1"))

	fl.ToggleLabel("A1")
	assert.Equal(t, Label{Visible: true, Text: "A1: " + CarStatus}, fl.BoxLabel("A1"))
	assert.Equal(t, Label{}, fl.BoxLabel("A2"))

	fl.ToggleLabel("A1") // same box hides
	assert.Equal(t, Label{}, fl.BoxLabel("A1"))

	fl.ToggleLabel("A1")
	fl.ToggleLabel("B2") // switches
	assert.Equal(t, Label{}, fl.BoxLabel("A1"))
	assert.True(t, fl.BoxLabel("B2").Visible)

	fl.ClearLabel()
	assert.Equal(t, Label{}, fl.BoxLabel("B2"))
}

func TestTickQuiescent(t *testing.T) {
	fl := testFloor()
	assert.False(t, fl.Tick(0.016))
	assert.False(t, fl.Tick(BlinkPeriod), "blink flip with no errors set is not a visible change")
}

func TestFrame(t *testing.T) {
	fl := testFloor()
	bx := fl.Box("B2")
	pos, target := Frame(bx)
	assert.Equal(t, bx.Pos, target)
	assert.Equal(t, bx.Pos.Add(FrameOffset), pos)
}
