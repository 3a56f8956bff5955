// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx binds [iox] to YAML.
package yamlx

import (
	"io"

	"cogentcore.org/turtle/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a YAML [iox.Decoder].
func NewDecoder(r io.Reader) iox.Decoder { return yaml.NewDecoder(r) }

// Open decodes v from the named YAML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// NewEncoder returns a YAML [iox.Encoder] indenting with two spaces.
func NewEncoder(w io.Writer) iox.Encoder {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	return e
}

// Save encodes v to the named YAML file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// Write encodes v as YAML to the writer.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}
