// Copyright (c) 2026, The Palletyard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floorplan

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed plan.schema.json
var schemaSource string

var planSchema = errors.Log1(jsonschema.CompileString("plan.schema.json", schemaSource))

// Open loads a plan from a JSON, TOML, or YAML file, based on the file
// extension (anything not .toml / .yaml / .yml is treated as JSON).
// JSON input is validated against the plan schema before decoding.
func Open(filename string) (*Plan, error) {
	pl := &Plan{}
	var err error
	switch filepath.Ext(filename) {
	case ".toml":
		err = tomlx.Open(pl, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(pl, filename)
	default:
		err = openJSON(pl, filename)
	}
	if err != nil {
		return nil, err
	}
	return pl, nil
}

func openJSON(pl *Plan, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := Validate(b); err != nil {
		return err
	}
	return jsonx.Read(pl, bytes.NewReader(b))
}

// Validate checks JSON plan source against the plan schema.
func Validate(src []byte) error {
	var v any
	if err := json.Unmarshal(src, &v); err != nil {
		return err
	}
	return planSchema.Validate(v)
}

// Save writes the plan as JSON to the given file.
func Save(pl *Plan, filename string) error {
	return jsonx.Save(pl, filename)
}
