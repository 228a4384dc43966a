// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floor

import "cogentcore.org/core/math32"

// FrameOffset is where the framing camera sits relative to its target
// box: above and behind, toward positive z.
var FrameOffset = math32.Vec3(0, 6, 8)

// Frame returns the camera position and look-at target that frame the
// given box: the target is the box position and the camera is placed at
// the fixed [FrameOffset] from it.
func Frame(bx *Box) (pos, target math32.Vector3) {
	target = bx.Pos
	pos = bx.Pos.Add(FrameOffset)
	return
}
