// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floor

// Status overlay colors, as named colors resolved at render time.
const (
	// SelectedColor marks the currently selected box. It wins over
	// every other overlay, including the error blink.
	SelectedColor = "yellow"

	// CarColor marks a box with a car present.
	CarColor = "orange"

	// AlarmColor is the on-phase color of the error blink.
	AlarmColor = "red"
)

// BlinkPeriod is the error blink half-period in seconds: the rendered
// color alternates each time the accumulated clock crosses a multiple.
const BlinkPeriod float32 = 2.0 / 3

// CarStatus is the status string appended to the label of a box with a
// car present.
const CarStatus = "car present"

// ResolveColor returns the displayed color name for a box, from its base
// color and the overlay flags. Precedence from lowest to highest:
// base color, car present, error (only while the blink phase is on),
// selection. A selected box in error state shows the selection color at
// any blink phase; the error flag itself stays set.
func ResolveColor(base string, selected, car, errorActive, blinkOn bool) string {
	clr := base
	if car {
		clr = CarColor
	}
	if errorActive && blinkOn {
		clr = AlarmColor
	}
	if selected {
		clr = SelectedColor
	}
	return clr
}

// Label is the floating label state for one box.
type Label struct {

	// Visible reports whether the label is shown.
	Visible bool

	// Text is the label text: the box ID, plus [CarStatus] when a car
	// is present.
	Text string
}

// ResolveLabel returns the label state for box id given the currently
// labeled box. Only the labeled box has a visible label.
func ResolveLabel(id, labeled string, car bool) Label {
	if id == "" || id != labeled {
		return Label{}
	}
	txt := id
	if car {
		txt += ": " + CarStatus
	}
	return Label{Visible: true, Text: txt}
}
