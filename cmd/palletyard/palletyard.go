// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command palletyard is an interactive 3D warehouse-floor visualizer:
// pallet boxes expanded from a floor plan, floor markings, animated box
// moves and rotations, and per-box status flags.
package main

import (
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"github.com/palletyard/palletyard/floor"
	"github.com/palletyard/palletyard/floorplan"
	"github.com/palletyard/palletyard/overhead"
)

// Config is the configuration information for the palletyard cli.
type Config struct {

	// Plan is the floor plan file (JSON, TOML, or YAML).
	// The built-in demo floor is used when empty.
	Plan string `posarg:"0" required:"-"`

	// Output is the PNG file the snapshot command writes.
	Output string `cmd:"snapshot" default:"overhead.png"`

	// Scale is pixels per world unit for overhead snapshots.
	Scale float32 `cmd:"snapshot" default:"12"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("palletyard", "Palletyard is an interactive 3D warehouse floor visualizer.")
	cli.Run(opts, &Config{}, Run, Snapshot)
}

func openPlan(c *Config) (*floorplan.Plan, error) {
	if c.Plan == "" {
		return floorplan.Default(), nil
	}
	return floorplan.Open(c.Plan)
}

// Run opens the floor plan in the interactive 3D viewer.
func Run(c *Config) error { //cli:cmd -root
	pl, err := openPlan(c)
	if err != nil {
		return err
	}
	logx.PrintlnInfo("loaded floor plan:", pl.Name)
	ap := &App{Floor: floor.New(pl)}
	ap.ConfigGUI().RunMainWindow()
	return nil
}

// Snapshot renders a top-down PNG of the floor plan and exits.
func Snapshot(c *Config) error {
	pl, err := openPlan(c)
	if err != nil {
		return err
	}
	if err := overhead.Save(floor.New(pl), c.Scale, c.Output); err != nil {
		return err
	}
	logx.PrintlnInfo("wrote", c.Output)
	return nil
}
