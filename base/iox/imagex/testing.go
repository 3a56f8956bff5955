// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the part of [testing.T] that [Assert] reports through.
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] overwrite the golden images instead
// of comparing against them. It is set when the environment variable
// TURTLE_UPDATE_TESTDATA is "true", after a deliberate change to how
// paths are drawn.
var UpdateTestImages = os.Getenv("TURTLE_UPDATE_TESTDATA") == "true"

// GoldenTolerance is the largest channel difference [Assert] accepts,
// since antialiased edges differ slightly between platforms.
const GoldenTolerance = 10

// ColorDiff returns the largest difference between the channels of a and b.
func ColorDiff(a, b color.RGBA) int {
	d := 0
	for _, p := range [4][2]uint8{{a.R, b.R}, {a.G, b.G}, {a.B, b.B}, {a.A, b.A}} {
		d = max(d, absDiff(p[0], p[1]))
	}
	return d
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// CompareColors returns whether no channel of a and b differs by more than tol.
func CompareColors(a, b color.RGBA, tol int) bool {
	return ColorDiff(a, b) <= tol
}

func rgbaAt(im image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(im.At(x, y)).(color.RGBA)
}

// DiffImage returns an opaque image whose channels are the absolute
// differences of a and b, over the bounds of a.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			ca, cb := rgbaAt(a, x, y), rgbaAt(b, x, y)
			di.SetRGBA(x, y, color.RGBA{uint8(absDiff(ca.R, cb.R)), uint8(absDiff(ca.G, cb.G)), uint8(absDiff(ca.B, cb.B)), 255})
		}
	}
	return di
}

// mismatch summarizes how a drawn image differs from its golden image.
type mismatch struct {
	count    int
	first    image.Point
	want     color.RGBA
	got      color.RGBA
	maxDelta int
}

// compare returns the pixels of img that differ from golden by more
// than [GoldenTolerance]. The bounds must match.
func compare(img, golden image.Image) mismatch {
	var m mismatch
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got, want := rgbaAt(img, x, y), rgbaAt(golden, x, y)
			d := ColorDiff(got, want)
			if d <= GoldenTolerance {
				continue
			}
			if m.count == 0 {
				m.first, m.want, m.got = image.Pt(x, y), want, got
			}
			m.count++
			m.maxDelta = max(m.maxDelta, d)
		}
	}
	return m
}

// Assert checks a drawn path preview against the golden image
// testdata/<name>, adding .png when name has no extension. A missing
// golden image is created. On a mismatch it reports the number of
// differing pixels and the first one, and writes <name>.fail and
// <name>.diff images next to the golden image for inspection.
func Assert(t TestingT, img image.Image, name string) {
	assertIn(t, "testdata", img, name)
}

func assertIn(t TestingT, dir string, img image.Image, name string) {
	golden := filepath.Join(dir, name)
	if filepath.Ext(golden) == "" {
		golden += ".png"
	}
	ext := filepath.Ext(golden)
	base := strings.TrimSuffix(golden, ext)
	failFile, diffFile := base+".fail"+ext, base+".diff"+ext

	if err := os.MkdirAll(filepath.Dir(golden), 0750); err != nil {
		t.Errorf("imagex: making golden image directory: %v", err)
		return
	}
	clean := func() {
		os.Remove(failFile)
		os.Remove(diffFile)
	}

	want, _, err := Open(golden)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, golden); err != nil {
			t.Errorf("imagex: saving golden image %s: %v", golden, err)
		}
		clean()
		return
	}
	if err != nil {
		t.Errorf("imagex: opening golden image %s: %v", golden, err)
		return
	}

	var msg string
	if gb, wb := img.Bounds(), want.Bounds(); gb != wb {
		msg = fmt.Sprintf("drawn preview is %v but golden image %s is %v", gb.Size(), golden, wb.Size())
	} else if m := compare(img, want); m.count > 0 {
		msg = fmt.Sprintf("drawn preview differs from golden image %s in %d of %d pixels (largest channel difference %d); first at %v: want %v, got %v",
			golden, m.count, gb.Dx()*gb.Dy(), m.maxDelta, m.first, m.want, m.got)
	}
	if msg == "" {
		clean()
		return
	}
	if err := Save(img, failFile); err != nil {
		t.Errorf("imagex: saving %s: %v", failFile, err)
	}
	if img.Bounds() == want.Bounds() {
		if err := Save(DiffImage(img, want), diffFile); err != nil {
			t.Errorf("imagex: saving %s: %v", diffFile, err)
		}
	}
	t.Errorf("imagex: %s; see %s (set TURTLE_UPDATE_TESTDATA=true to accept it)", msg, failFile)
}
