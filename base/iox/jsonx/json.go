// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx binds [iox] to JSON.
package jsonx

import (
	"encoding/json"
	"io"

	"cogentcore.org/turtle/base/iox"
)

// NewDecoder returns a JSON [iox.Decoder].
func NewDecoder(r io.Reader) iox.Decoder { return json.NewDecoder(r) }

// Open decodes v from the named JSON file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// NewEncoder returns a JSON [iox.Encoder] indenting with two spaces.
func NewEncoder(w io.Writer) iox.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e
}

// Save encodes v to the named JSON file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}
