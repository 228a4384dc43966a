// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floor is the model and controller for an interactive warehouse
// floor: the boxes expanded from a [floorplan.Plan], the per-box overlay
// flags (selection, car present, error), the live transform animations,
// and the deterministic blink clock. All state is owned by one [Floor]
// and mutated only from the single UI / frame thread; [Floor.Tick]
// advances everything by the elapsed frame time.
package floor

import (
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/palletyard/palletyard/floorplan"
)

// Box is the live state of one pallet box. Identity and size are fixed
// at expansion; only Pos and YRot change, via animations.
type Box struct {

	// ID is the unique(ish) box identifier from the plan.
	ID string

	// Pos is the current world position of the box center.
	Pos math32.Vector3

	// Size is the width, height, depth of the box.
	Size math32.Vector3

	// Color is the named base color.
	Color string

	// YRot is the current rotation about the vertical axis, in radians.
	YRot float32
}

// Floor owns all mutable scene state.
type Floor struct {

	// Plan is the static scene description the floor was built from.
	Plan *floorplan.Plan

	// Boxes are the live boxes, in plan order.
	Boxes []*Box

	// Moves and Rotates are the live animation entries, keyed by box ID.
	// At most one entry per map per box; a box with an entry in either
	// map rejects new requests.
	Moves   map[string]*Anim
	Rotates map[string]*Anim

	// CarPresent and Errors are the sparse overlay flags, keyed by box ID.
	CarPresent map[string]bool
	Errors     map[string]bool

	// Selected is the ID of the selected box, empty for none.
	Selected string

	// Labeled is the ID of the box showing its floating label, empty
	// for none.
	Labeled string

	// Elapsed is the accumulated frame time in seconds; it drives the
	// error blink phase.
	Elapsed float32

	// OnDone, if set, is called exactly once per animation entry, after
	// the entry completes and has been removed from its map.
	OnDone func(id string, kind Kinds)

	byID map[string]*Box
}

// Request admission errors.
var (
	ErrNoBox       = errors.New("no such box")
	ErrBusy        = errors.New("box is already animating")
	ErrBadDistance = errors.New("distance must be a nonzero number")
)

// New builds a Floor from the given plan, expanding grids into boxes.
// Boxes with no color get [floorplan.DefaultColor].
func New(pl *floorplan.Plan) *Floor {
	fl := &Floor{
		Plan:       pl,
		Moves:      map[string]*Anim{},
		Rotates:    map[string]*Anim{},
		CarPresent: map[string]bool{},
		Errors:     map[string]bool{},
		byID:       map[string]*Box{},
	}
	for _, pb := range pl.Boxes() {
		clr := pb.Color
		if clr == "" {
			clr = floorplan.DefaultColor
		}
		bx := &Box{ID: pb.ID, Pos: pb.Pos, Size: pb.Size, Color: clr}
		fl.Boxes = append(fl.Boxes, bx)
		fl.byID[bx.ID] = bx
	}
	return fl
}

// Box returns the box with the given ID, nil if none.
func (fl *Floor) Box(id string) *Box {
	return fl.byID[id]
}

// IDs returns all box IDs in plan order.
func (fl *Floor) IDs() []string {
	ids := make([]string, len(fl.Boxes))
	for i, bx := range fl.Boxes {
		ids[i] = bx.ID
	}
	return ids
}

// Animating reports whether the box has a live entry of either kind.
func (fl *Floor) Animating(id string) bool {
	return fl.Moves[id] != nil || fl.Rotates[id] != nil
}

// RequestMove starts an animated translation of the box along the given
// axis by the given signed distance. It is rejected with ErrNoBox for an
// empty or unknown ID, ErrBadDistance for a zero or NaN distance, and
// ErrBusy while the box has any live animation.
func (fl *Floor) RequestMove(id string, axis math32.Dims, dist float32) error {
	if fl.byID[id] == nil {
		return ErrNoBox
	}
	if dist == 0 || math32.IsNaN(dist) {
		return ErrBadDistance
	}
	if fl.Animating(id) {
		return ErrBusy
	}
	fl.Moves[id] = &Anim{Kind: Move, Axis: axis, Remaining: dist}
	return nil
}

// RequestRotate starts an animated half-turn (+π, counter-clockwise)
// of the box about the vertical axis, with the same admission rules as
// RequestMove. The delta is always π regardless of the current rotation.
func (fl *Floor) RequestRotate(id string) error {
	if fl.byID[id] == nil {
		return ErrNoBox
	}
	if fl.Animating(id) {
		return ErrBusy
	}
	fl.Rotates[id] = &Anim{Kind: Rotate, Remaining: float32(math.Pi)}
	return nil
}

// ToggleCar flips the car-present flag of the box.
func (fl *Floor) ToggleCar(id string) error {
	if fl.byID[id] == nil {
		return ErrNoBox
	}
	fl.CarPresent[id] = !fl.CarPresent[id]
	return nil
}

// ToggleError flips the error flag of the box.
func (fl *Floor) ToggleError(id string) error {
	if fl.byID[id] == nil {
		return ErrNoBox
	}
	fl.Errors[id] = !fl.Errors[id]
	return nil
}

// Select makes the given box the selected one; empty clears the selection.
func (fl *Floor) Select(id string) {
	fl.Selected = id
}

// ToggleLabel shows the floating label for the given box, or hides it if
// that box is already the labeled one.
func (fl *Floor) ToggleLabel(id string) {
	if fl.Labeled == id {
		fl.Labeled = ""
	} else {
		fl.Labeled = id
	}
}

// ClearLabel hides the floating label.
func (fl *Floor) ClearLabel() {
	fl.Labeled = ""
}

// BlinkOn reports the current error blink phase, derived from the
// accumulated elapsed time rather than a wall clock.
func (fl *Floor) BlinkOn() bool {
	return int(fl.Elapsed/BlinkPeriod)%2 == 0
}

// BoxColor returns the resolved displayed color name for the box.
func (fl *Floor) BoxColor(id string) string {
	bx := fl.byID[id]
	if bx == nil {
		return ""
	}
	return ResolveColor(bx.Color, fl.Selected == id, fl.CarPresent[id], fl.Errors[id], fl.BlinkOn())
}

// BoxLabel returns the resolved floating label state for the box.
func (fl *Floor) BoxLabel(id string) Label {
	return ResolveLabel(id, fl.Labeled, fl.CarPresent[id])
}

// Tick advances every live animation by elapsed seconds and accumulates
// the blink clock. Move and rotate entries for the same box advance
// independently in the same tick. Completed entries are removed before
// OnDone fires, so a completion is observed exactly once. Tick reports
// whether anything visible changed, so callers can skip re-rendering
// quiescent frames.
func (fl *Floor) Tick(elapsed float32) bool {
	prevBlink := fl.BlinkOn()
	fl.Elapsed += elapsed

	changed := false
	for id, an := range fl.Moves {
		bx := fl.byID[id]
		step, done := an.Advance(elapsed)
		bx.Pos.SetDim(an.Axis, bx.Pos.Dim(an.Axis)+step)
		changed = true
		if done {
			delete(fl.Moves, id)
			if fl.OnDone != nil {
				fl.OnDone(id, Move)
			}
		}
	}
	for id, an := range fl.Rotates {
		bx := fl.byID[id]
		step, done := an.Advance(elapsed)
		bx.YRot += step
		changed = true
		if done {
			delete(fl.Rotates, id)
			if fl.OnDone != nil {
				fl.OnDone(id, Rotate)
			}
		}
	}

	if fl.BlinkOn() != prevBlink {
		for _, on := range fl.Errors {
			if on {
				changed = true
				break
			}
		}
	}
	return changed
}
