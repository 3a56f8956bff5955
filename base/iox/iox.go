// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox opens, reads, saves and writes values through any
// encoding that has a streaming decoder and encoder. The jsonx, tomlx
// and yamlx subpackages bind it to their formats; program and state
// files and the command line config all go through them.
package iox

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// Decoder decodes values from the reader it was made with.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc makes a [Decoder] for a reader.
type DecoderFunc func(r io.Reader) Decoder

// Open decodes v from the named file.
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// Read decodes v from the reader.
func Read(v any, reader io.Reader, f DecoderFunc) error {
	return f(reader).Decode(v)
}

// ReadBytes decodes v from data.
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return Read(v, bytes.NewReader(data), f)
}

// Encoder encodes values to the writer it was made with.
type Encoder interface {
	Encode(v any) error
}

// EncoderFunc makes an [Encoder] for a writer.
type EncoderFunc func(w io.Writer) Encoder

// Save encodes v to the named file, creating or truncating it.
func Save(v any, filename string, f EncoderFunc) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fp)
	if err := Write(v, bw, f); err != nil {
		fp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// Write encodes v to the writer.
func Write(v any, writer io.Writer, f EncoderFunc) error {
	return f(writer).Encode(v)
}
