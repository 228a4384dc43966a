// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floor

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Runner drives a Floor's frame clock outside of a GUI event loop, for
// headless runs and tests. The GUI uses the core animation system
// instead. All Floor access happens on the runner goroutine; OnFrame is
// called there too.
type Runner struct {

	// Floor is the floor to tick.
	Floor *Floor

	// Interval is the frame interval.
	Interval time.Duration

	// Clock is the time source; a mock clock makes runs deterministic.
	Clock clock.Clock

	// OnFrame, if set, is called after every tick with whether anything
	// visible changed.
	OnFrame func(changed bool)

	quit chan struct{}
}

// NewRunner returns a Runner for the floor at the given frame interval,
// using the real clock.
func NewRunner(fl *Floor, interval time.Duration) *Runner {
	return &Runner{Floor: fl, Interval: interval, Clock: clock.New(), quit: make(chan struct{})}
}

// Start begins ticking on a new goroutine. Stop ends it.
func (r *Runner) Start() {
	go r.run()
}

// Stop ends the runner goroutine. In-flight animations are left as-is;
// they are not cancellable.
func (r *Runner) Stop() {
	close(r.quit)
}

func (r *Runner) run() {
	tk := r.Clock.Ticker(r.Interval)
	defer tk.Stop()
	last := r.Clock.Now()
	for {
		select {
		case <-r.quit:
			return
		case now := <-tk.C:
			changed := r.Floor.Tick(float32(now.Sub(last).Seconds()))
			last = now
			if r.OnFrame != nil {
				r.OnFrame(changed)
			}
		}
	}
}
