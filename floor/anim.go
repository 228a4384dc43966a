// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floor

import (
	"math"

	"cogentcore.org/core/math32"
)

// Kinds are the kinds of box transform animation.
type Kinds int32

const (
	// Move translates a box along a single axis.
	Move Kinds = iota

	// Rotate turns a box about the vertical axis.
	Rotate
)

func (k Kinds) String() string {
	if k == Rotate {
		return "rotate"
	}
	return "move"
}

const (
	// MoveSpeed is the linear animation speed, in world units per second.
	MoveSpeed float32 = 1

	// StopEpsilon is the remaining-delta magnitude below which an
	// animation entry is complete.
	StopEpsilon float32 = 0.001
)

// RotateSpeed is the angular animation speed, in radians per second.
var RotateSpeed = float32(math.Pi)

// Anim is one in-flight transform animation for a box. Entries are
// created by a request and removed by the owning [Floor] when Advance
// reports done; they carry no callbacks of their own.
type Anim struct {

	// Kind selects the animation speed and the transform it applies to.
	Kind Kinds

	// Axis is the position axis a Move applies to. Unused for Rotate,
	// which is always about the Y axis.
	Axis math32.Dims

	// Remaining is the signed delta (distance or angle) left to apply.
	Remaining float32
}

// Advance computes one frame step for elapsed seconds, returning the
// signed step to apply and whether the entry is exhausted. The step
// magnitude is clamped to |Remaining|, so the target is never overshot,
// and any nonzero delta completes in finitely many nonzero-elapsed frames.
func (an *Anim) Advance(elapsed float32) (step float32, done bool) {
	speed := MoveSpeed
	if an.Kind == Rotate {
		speed = RotateSpeed
	}
	step = math32.Min(math32.Abs(an.Remaining), speed*elapsed)
	if an.Remaining < 0 {
		step = -step
	}
	an.Remaining -= step
	done = math32.Abs(an.Remaining) < StopEpsilon
	return
}
