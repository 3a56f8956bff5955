// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"cogentcore.org/turtle/base/errors"
	"cogentcore.org/turtle/base/iox/tomlx"
	"cogentcore.org/turtle/render"
	"cogentcore.org/turtle/turtle"
	"github.com/mitchellh/go-homedir"
)

// ConfigFile is the name of the config file looked up in the user
// config directory and the current directory.
const ConfigFile = "turtle.toml"

// Config is the command line configuration, read from TOML files and
// then overridden by flags.
type Config struct {

	// Facets control the number of steps in arcs without an explicit count.
	Facets turtle.Facets `toml:"facets"`

	// Render are the drawing options for image and PDF output.
	Render render.Options `toml:"render"`

	// Format is the default output format for text output.
	Format string `toml:"format"`

	// Precision is the number of digits after the decimal point in
	// text output; negative means the shortest exact representation.
	Precision int `toml:"precision"`
}

// DefaultConfig returns the configuration used when no file sets a value.
func DefaultConfig() *Config {
	return &Config{
		Facets:    turtle.DefaultFacets(),
		Render:    render.DefaultOptions(),
		Format:    "points",
		Precision: -1,
	}
}

// configFiles returns the config files to read, in increasing priority:
// the user config directory, then the current directory.
func configFiles() []string {
	var files []string
	if home, err := homedir.Dir(); err == nil {
		files = append(files, filepath.Join(home, ".config", "turtle", ConfigFile))
	}
	return append(files, ConfigFile)
}

// LoadConfig returns the default configuration updated from the given
// files in order. Missing files are skipped unless required is set.
func LoadConfig(required bool, files ...string) (*Config, error) {
	c := DefaultConfig()
	for _, fn := range files {
		fn, err := homedir.Expand(fn)
		if err != nil {
			return nil, err
		}
		err = tomlx.Open(c, fn)
		if errors.Is(err, fs.ErrNotExist) && !required {
			continue
		}
		if err != nil {
			return nil, err
		}
		slog.Debug("read config", "file", fn)
	}
	return c, nil
}
