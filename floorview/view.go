// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floorview renders a [floor.Floor] into an [xyz.Scene] and keeps
// the two in sync: one solid per box with its resolved status color, one
// lines mesh per floor marking, and the floating box label.
package floorview

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/text/text"
	"cogentcore.org/core/xyz"
	"github.com/palletyard/palletyard/floor"
	"github.com/palletyard/palletyard/floorplan"
)

// boxMeshName is the unit box mesh shared by all box solids, scaled per box.
const boxMeshName = "floorBox"

// markWidth is the rendered width of floor-marking lines.
var markWidth = math32.Vec2(0.05, 0.05)

// View connects a floor model with an xyz scene for visualization.
type View struct {

	// Floor is the model being displayed.
	Floor *floor.Floor

	// Scene is the 3D scene being rendered into.
	Scene *xyz.Scene

	// Root is the group holding all floor nodes.
	Root *xyz.Group

	solids    map[string]*xyz.Solid
	label     *xyz.Text2D
	labelText string
}

// NewView returns a View linking the given floor with the given scene.
// Call Build once the scene is otherwise configured.
func NewView(fl *floor.Floor, sc *xyz.Scene) *View {
	vw := &View{Floor: fl, Scene: sc, solids: map[string]*xyz.Solid{}}
	vw.Root = xyz.NewGroup(sc)
	vw.Root.SetName("floor")
	return vw
}

// Build constructs the scene nodes for all boxes and markings.
// When two boxes share an ID (a documented plan limitation), the later
// one owns the node mapping for status updates.
func (vw *View) Build() {
	sc := vw.Scene
	if ms, _ := sc.MeshByName(boxMeshName); ms == nil {
		xyz.NewBox(sc, boxMeshName, 1, 1, 1)
	}
	for _, bx := range vw.Floor.Boxes {
		sld := xyz.NewSolid(vw.Root)
		sld.SetName("box-" + bx.ID)
		sld.SetMeshName(boxMeshName)
		sld.Pose.Scale = bx.Size
		vw.solids[bx.ID] = sld
	}
	for i, it := range vw.Floor.Plan.Items {
		switch {
		case it.Lines != nil:
			for j, path := range it.Lines.Paths {
				nm := fmt.Sprintf("lines-%d-%d", i, j)
				lm := xyz.NewLines(sc, nm, path, markWidth, xyz.OpenLines)
				sld := xyz.NewSolid(vw.Root)
				sld.SetName(nm)
				sld.SetMesh(lm)
				setColor(sld, it.Lines.Color)
			}
		case it.Circle != nil:
			nm := fmt.Sprintf("circle-%d", i)
			lm := xyz.NewLines(sc, nm, it.Circle.Points(), markWidth, xyz.CloseLines)
			sld := xyz.NewSolid(vw.Root)
			sld.SetName(nm)
			sld.SetMesh(lm)
			setColor(sld, it.Circle.Color)
		}
	}
	vw.Update()
}

// Update syncs box poses, resolved status colors, and the floating label
// from the model. Call once per frame after [floor.Floor.Tick], and after
// any user action that changes overlay state.
func (vw *View) Update() {
	for _, bx := range vw.Floor.Boxes {
		sld := vw.solids[bx.ID]
		if sld == nil {
			continue
		}
		sld.Pose.Pos = bx.Pos
		sld.Pose.Quat.SetFromAxisAngle(math32.Vec3(0, 1, 0), bx.YRot)
		setColor(sld, vw.Floor.BoxColor(bx.ID))
	}
	vw.updateLabel()
	vw.Scene.SetNeedsUpdate()
}

// updateLabel shows the floating label over the labeled box, hiding it by
// removing the node when no box is labeled. The Text2D is re-rendered
// only when its text changes.
func (vw *View) updateLabel() {
	id := vw.Floor.Labeled
	lb := vw.Floor.BoxLabel(id)
	if !lb.Visible {
		if vw.label != nil {
			vw.label.Delete()
			vw.label = nil
			vw.labelText = ""
		}
		return
	}
	if vw.label == nil {
		vw.label = xyz.NewText2D(vw.Root)
		vw.label.SetName("box-label")
		vw.label.Styles.Text.Align = text.Center
		vw.label.Pose.Scale.SetScalar(0.4)
	}
	if vw.labelText != lb.Text {
		vw.label.SetText(lb.Text)
		vw.labelText = lb.Text
	}
	if bx := vw.Floor.Box(id); bx != nil {
		vw.label.Pose.Pos = bx.Pos.Add(math32.Vec3(0, bx.Size.Y/2+1, 0))
	}
}

// BoxID maps a scene node back to its box ID, for pick handling.
func (vw *View) BoxID(nd xyz.Node) (string, bool) {
	for id, sld := range vw.solids {
		if sld == nd || sld.This == nd {
			return id, true
		}
	}
	return "", false
}

// FrameBox points the scene camera at the given box, placed at the fixed
// framing offset above and behind it.
func (vw *View) FrameBox(id string) {
	bx := vw.Floor.Box(id)
	if bx == nil {
		return
	}
	pos, target := floor.Frame(bx)
	vw.Scene.Camera.Pose.Pos = pos
	vw.Scene.Camera.LookAt(target, math32.Vec3(0, 1, 0))
	vw.Scene.SetNeedsUpdate()
}

// Center returns the center of all boxes, for the default overview camera.
func (vw *View) Center() math32.Vector3 {
	if len(vw.Floor.Boxes) == 0 {
		return math32.Vector3{}
	}
	var sum math32.Vector3
	for _, bx := range vw.Floor.Boxes {
		sum.SetAdd(bx.Pos)
	}
	return sum.DivScalar(float32(len(vw.Floor.Boxes)))
}

func setColor(sld *xyz.Solid, name string) {
	if name == "" {
		name = floorplan.DefaultColor
	}
	sld.Material.Color = errors.Log1(colors.FromString(name))
}
