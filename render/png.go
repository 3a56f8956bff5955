// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/turtle/base/iox/imagex"
	"cogentcore.org/turtle/math32"
	"cogentcore.org/turtle/turtle"
	"golang.org/x/image/vector"
)

// Colors used for drawing.
var (
	Background   = color.RGBA{255, 255, 255, 255}
	PathColor    = color.RGBA{32, 64, 160, 255}
	SampleColor  = color.RGBA{128, 128, 128, 255}
	StartColor   = color.RGBA{0, 160, 64, 255}
	HeadingColor = color.RGBA{200, 40, 40, 255}
	UpColor      = color.RGBA{40, 40, 200, 255}
)

// raster accumulates filled shapes in one color and draws them.
type raster struct {
	dst *image.RGBA
	ras *vector.Rasterizer
}

func newRaster(dst *image.RGBA) *raster {
	sz := dst.Bounds().Size()
	return &raster{dst: dst, ras: vector.NewRasterizer(sz.X, sz.Y)}
}

// quad adds the closed quadrilateral a b c d.
func (r *raster) quad(a, b, c, d math32.Vector2) {
	r.ras.MoveTo(a.X, a.Y)
	r.ras.LineTo(b.X, b.Y)
	r.ras.LineTo(c.X, c.Y)
	r.ras.LineTo(d.X, d.Y)
	r.ras.ClosePath()
}

// line adds the segment from a to b with the given width.
func (r *raster) line(a, b math32.Vector2, width float32) {
	dir := b.Sub(a).Normal()
	if dir == (math32.Vector2{}) {
		return
	}
	n := math32.Vec2(-dir.Y, dir.X).MulScalar(width / 2)
	r.quad(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// square adds a square of the given size centered on p.
func (r *raster) square(p math32.Vector2, size float32) {
	h := size / 2
	r.quad(p.Add(math32.Vec2(-h, -h)), p.Add(math32.Vec2(h, -h)), p.Add(math32.Vec2(h, h)), p.Add(math32.Vec2(-h, h)))
}

// flush draws everything added so far in the color and resets.
func (r *raster) flush(clr color.Color) {
	r.ras.Draw(r.dst, r.dst.Bounds(), image.NewUniform(clr), image.Point{})
	sz := r.dst.Bounds().Size()
	r.ras.Reset(sz.X, sz.Y)
}

// Image draws the path of the state as an antialiased raster image.
func Image(st *turtle.State, opts Options) *image.RGBA {
	d := Layout(st, opts)
	img := image.NewRGBA(image.Rectangle{Max: image.Pt(opts.Width, opts.Height)})
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	r := newRaster(img)

	for _, s := range d.Samples {
		r.square(s, 2*opts.LineWidth)
	}
	r.flush(SampleColor)

	for i := 1; i < len(d.Path); i++ {
		r.line(d.Path[i-1], d.Path[i], opts.LineWidth)
	}
	for _, p := range d.Path {
		r.square(p, opts.LineWidth)
	}
	r.flush(PathColor)

	if opts.Frames {
		for _, s := range d.Headings {
			r.line(s[0], s[1], 1)
		}
		r.flush(HeadingColor)
		for _, s := range d.Ups {
			r.line(s[0], s[1], 1)
		}
		r.flush(UpColor)
	}

	r.square(d.Start(), 3*opts.LineWidth)
	r.flush(StartColor)
	return img
}

// SaveImage draws the path of the state and saves it to the given file,
// in the image format given by its extension.
func SaveImage(st *turtle.State, opts Options, filename string) error {
	return imagex.Save(Image(st, opts), filename)
}
