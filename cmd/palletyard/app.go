// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/palletyard/palletyard/floor"
	"github.com/palletyard/palletyard/floorview"
	"github.com/palletyard/palletyard/overhead"
)

// App is the interactive floor viewer.
type App struct {

	// Floor is the model all controls operate on.
	Floor *floor.Floor

	// View bridges the floor to the 3D scene.
	View *floorview.View

	// SceneEditor is the 3D view widget with its camera toolbar.
	SceneEditor *xyzcore.SceneEditor

	// Axis is the move axis chooser.
	Axis *core.Chooser

	// Distance is the move distance field.
	Distance *core.TextField
}

// ConfigGUI builds the app body: the scene with lights and camera, the
// floor view, the control toolbar, and the interaction handlers.
func (ap *App) ConfigGUI() *core.Body {
	b := core.NewBody("palletyard").SetTitle("Pallet Yard")

	ap.SceneEditor = xyzcore.NewSceneEditor(b)
	ap.SceneEditor.UpdateWidget()
	sw := ap.SceneEditor.SceneWidget()
	sw.SelectionMode = xyzcore.Selectable
	sc := ap.SceneEditor.SceneXYZ()

	xyz.NewAmbient(sc, "ambient", 0.3, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "dir", 1, xyz.DirectSun)
	dir.Pos.Set(0, 2, 1)

	ap.View = floorview.NewView(ap.Floor, sc)
	ap.View.Build()

	ctr := ap.View.Center()
	sc.Camera.Pose.Pos = ctr.Add(math32.Vec3(0, 22, 26))
	sc.Camera.LookAt(ctr, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")

	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(ap.MakeToolbar)
	})

	sw.On(events.DoubleClick, func(e events.Event) {
		sel := sw.CurrentSelected
		if sel == nil {
			return
		}
		id, ok := ap.View.BoxID(sel)
		if !ok {
			return
		}
		ap.Floor.ToggleLabel(id)
		ap.View.FrameBox(id)
		ap.refresh()
		e.SetHandled()
	})

	// any camera manipulation hides the floating label
	clearLabel := func(e events.Event) {
		if ap.Floor.Labeled == "" {
			return
		}
		ap.Floor.ClearLabel()
		ap.refresh()
	}
	sw.On(events.SlideMove, clearLabel)
	sw.On(events.Scroll, clearLabel)

	// per-frame tick: advance animations and the blink clock, and only
	// re-render when something visible changed
	sw.Animate(func(a *core.Animation) {
		if ap.Floor.Tick(float32(a.Delta.Seconds())) {
			ap.refresh()
		}
	})
	return b
}

// MakeToolbar builds the pallet controls.
func (ap *App) MakeToolbar(p *tree.Plan) {
	tree.Add(p, func(w *core.Text) {
		w.SetText("Pallet:")
	})
	tree.Add(p, func(w *core.Chooser) {
		w.SetStrings(ap.Floor.IDs()...)
		w.SetTooltip("the selected pallet box all actions apply to")
		w.OnChange(func(e events.Event) {
			if id, ok := w.CurrentItem.Value.(string); ok {
				ap.Floor.Select(id)
				ap.refresh()
			}
		})
	})
	tree.Add(p, func(w *core.Chooser) {
		ap.Axis = w
		w.SetStrings("X", "Y", "Z")
		w.SetCurrentIndex(1)
		w.SetTooltip("the axis moves apply to")
	})
	tree.Add(p, func(w *core.TextField) {
		ap.Distance = w
		w.SetPlaceholder("distance")
		w.SetTooltip("signed move distance in world units")
	})
	tree.Add(p, func(w *core.Button) {
		w.SetText("Move").SetIcon(icons.OpenWith).
			SetTooltip("move the selected pallet along the chosen axis").
			OnClick(func(e events.Event) {
				ap.move()
			})
	})
	tree.Add(p, func(w *core.Button) {
		w.SetText("Rotate 180°").SetIcon(icons.Refresh).
			SetTooltip("rotate the selected pallet a half turn").
			OnClick(func(e events.Event) {
				ap.rotate()
			})
	})
	tree.Add(p, func(w *core.Separator) {})
	tree.Add(p, func(w *core.Button) {
		w.SetText("Toggle Car").SetIcon(icons.DirectionsCar).
			SetTooltip("flip the car-present flag of the selected pallet").
			OnClick(func(e events.Event) {
				ap.toggle(ap.Floor.ToggleCar)
			})
	})
	tree.Add(p, func(w *core.Button) {
		w.SetText("Toggle Error").SetIcon(icons.Warning).
			SetTooltip("flip the blinking error flag of the selected pallet").
			OnClick(func(e events.Event) {
				ap.toggle(ap.Floor.ToggleError)
			})
	})
	tree.Add(p, func(w *core.Separator) {})
	tree.Add(p, func(w *core.Button) {
		w.SetText("Snapshot").SetIcon(icons.Image).
			SetTooltip("save a top-down overhead.png of the floor").
			OnClick(func(e events.Event) {
				if err := overhead.Save(ap.Floor, 12, "overhead.png"); err != nil {
					core.ErrorSnackbar(ap.SceneEditor, err)
					return
				}
				core.MessageSnackbar(ap.SceneEditor, "saved overhead.png")
			})
	})
}

// selected returns the selected box ID, warning and returning empty when
// there is none.
func (ap *App) selected() string {
	id := ap.Floor.Selected
	if id == "" {
		logx.PrintlnWarn("no pallet selected")
		core.MessageSnackbar(ap.SceneEditor, "Select a pallet first")
	}
	return id
}

func (ap *App) axis() math32.Dims {
	switch ap.Axis.CurrentIndex {
	case 0:
		return math32.X
	case 2:
		return math32.Z
	default:
		return math32.Y
	}
}

func (ap *App) move() {
	id := ap.selected()
	if id == "" {
		return
	}
	dist, err := strconv.ParseFloat(ap.Distance.Text(), 32)
	if err != nil || dist == 0 {
		return // unparseable or zero distance: silent no-op
	}
	// a busy box silently rejects the request
	if err := ap.Floor.RequestMove(id, ap.axis(), float32(dist)); err != nil && !errors.Is(err, floor.ErrBusy) {
		core.ErrorSnackbar(ap.SceneEditor, err)
	}
}

func (ap *App) rotate() {
	id := ap.selected()
	if id == "" {
		return
	}
	if err := ap.Floor.RequestRotate(id); err != nil && !errors.Is(err, floor.ErrBusy) {
		core.ErrorSnackbar(ap.SceneEditor, err)
	}
}

func (ap *App) toggle(fn func(id string) error) {
	id := ap.selected()
	if id == "" {
		return
	}
	if err := fn(id); err != nil {
		core.ErrorSnackbar(ap.SceneEditor, err)
		return
	}
	ap.refresh()
}

// refresh syncs the view from the model and queues a render.
func (ap *App) refresh() {
	ap.View.Update()
	ap.SceneEditor.NeedsRender()
}
