// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx binds [iox] to TOML.
package tomlx

import (
	"io"

	"cogentcore.org/turtle/base/iox"
	"github.com/pelletier/go-toml/v2"
)

// NewDecoder returns a TOML [iox.Decoder].
func NewDecoder(r io.Reader) iox.Decoder { return toml.NewDecoder(r) }

// Open decodes v from the named TOML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// ReadBytes decodes v from TOML data.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// NewEncoder returns a TOML [iox.Encoder] that indents nested tables.
func NewEncoder(w io.Writer) iox.Encoder {
	return toml.NewEncoder(w).SetIndentTables(true)
}

// Save encodes v to the named TOML file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}
