// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package program loads turtle command lists from files and strings.
package program

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/turtle/base/iox/jsonx"
	"cogentcore.org/turtle/base/iox/tomlx"
	"cogentcore.org/turtle/base/iox/yamlx"
	"cogentcore.org/turtle/turtle"
)

// File is the top-level layout of a program file that is a table
// rather than a bare list, which is required for TOML.
type File struct {

	// Commands is the turtle command list.
	Commands []any `json:"commands" yaml:"commands" toml:"commands"`
}

// Open loads a command list from the given file. The format is
// chosen by extension: .yaml, .yml, .json and .toml files hold a list
// or a table with a commands list (always a table for TOML); any
// other file is read as a flat command string (see [Parse]).
func Open(filename string) ([]any, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return openList(filename, yamlx.Open)
	case ".json":
		return openList(filename, jsonx.Open)
	case ".toml":
		var f File
		if err := tomlx.Open(&f, filename); err != nil {
			return nil, err
		}
		if f.Commands == nil {
			return nil, fmt.Errorf("program.Open: %s has no commands list", filename)
		}
		return f.Commands, nil
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(string(b))
}

// openList decodes a file holding either a bare list or a [File] table.
func openList(filename string, open func(v any, filename string) error) ([]any, error) {
	var v any
	if err := open(&v, filename); err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case []any:
		return x, nil
	case map[string]any:
		if cmds, ok := x["commands"].([]any); ok {
			return cmds, nil
		}
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("program.Open: %s must hold a list or a table with a commands list", filename)
}

// OpenState loads a saved [turtle.State] from the given file, with
// the format chosen by extension (.yaml, .yml, .json or .toml).
func OpenState(filename string) (*turtle.State, error) {
	st := &turtle.State{}
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yamlx.Open(st, filename)
	case ".json":
		err = jsonx.Open(st, filename)
	case ".toml":
		err = tomlx.Open(st, filename)
	default:
		err = fmt.Errorf("program.OpenState: unsupported state file extension for %s", filename)
	}
	if err != nil {
		return nil, err
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("program.OpenState: %s: %w", filename, err)
	}
	return st, nil
}

// SaveState saves the state to the given file, with the format
// chosen by extension (.yaml, .yml, .json or .toml).
func SaveState(st *turtle.State, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yamlx.Save(st, filename)
	case ".json":
		return jsonx.Save(st, filename)
	case ".toml":
		return tomlx.Save(st, filename)
	}
	return fmt.Errorf("program.SaveState: unsupported state file extension for %s", filename)
}
