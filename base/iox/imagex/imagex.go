// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex saves and loads the raster path previews, choosing
// the encoding from the filename extension, and compares them against
// golden images in tests.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats are the raster encodings previews can be saved in.
type Formats int32

const (
	// None is no known format.
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
)

// codec is the name, extensions and encoder of a format.
type codec struct {
	name   string
	exts   []string
	encode func(w io.Writer, im image.Image) error
}

var codecs = [...]codec{
	None: {name: "none"},
	PNG:  {"png", []string{"png"}, png.Encode},
	JPEG: {"jpeg", []string{"jpg", "jpeg"}, func(w io.Writer, im image.Image) error {
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	}},
	GIF: {"gif", []string{"gif"}, func(w io.Writer, im image.Image) error {
		return gif.Encode(w, im, nil)
	}},
	TIFF: {"tiff", []string{"tif", "tiff"}, func(w io.Writer, im image.Image) error {
		return tiff.Encode(w, im, nil)
	}},
	BMP: {"bmp", []string{"bmp"}, bmp.Encode},
}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(codecs) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return codecs[f].name
}

// ExtToFormat returns the format for a filename extension, with or
// without the leading dot and in any case.
func ExtToFormat(ext string) (Formats, error) {
	e := strings.ToLower(strings.TrimPrefix(ext, "."))
	if e != "" {
		for f, c := range codecs {
			for _, x := range c.exts {
				if x == e {
					return Formats(f), nil
				}
			}
		}
	}
	return None, fmt.Errorf("imagex: no image format for extension %q", ext)
}

// Open decodes the image in the named file and reports its format.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(bufio.NewReader(file))
}

// Read decodes an image in any of the formats and reports which.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, name, err := image.Decode(r)
	if err != nil {
		return nil, None, err
	}
	f, err := ExtToFormat(name)
	return im, f, err
}

// Save encodes the image to the named file in the format given by
// its extension.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	err = Write(im, bw, f)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Write encodes the image to w in the given format.
func Write(im image.Image, w io.Writer, f Formats) error {
	if f <= None || int(f) >= len(codecs) {
		return fmt.Errorf("imagex: cannot write format %v", f)
	}
	return codecs[f].encode(w, im)
}
