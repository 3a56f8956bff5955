// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws turtle paths in orthographic views, as raster
// images or PDF documents, for checking programs by eye.
package render

import (
	"log/slog"

	"cogentcore.org/turtle/math32"
	"cogentcore.org/turtle/turtle"
)

// Options are the drawing options.
type Options struct {

	// View is the projection to draw in.
	View Views `toml:"view"`

	// Width is the output width in pixels (points for PDF).
	Width int `toml:"width"`

	// Height is the output height in pixels (points for PDF).
	Height int `toml:"height"`

	// Margin is the blank border around the drawing.
	Margin float32 `toml:"margin"`

	// LineWidth is the width of the path line.
	LineWidth float32 `toml:"line_width"`

	// Frames draws the heading and up axes of the turtle at each sample.
	Frames bool `toml:"frames"`
}

// DefaultOptions returns the default drawing options.
func DefaultOptions() Options {
	return Options{View: Iso, Width: 512, Height: 512, Margin: 24, LineWidth: 2}
}

// Segment is a line segment in output coordinates.
type Segment [2]math32.Vector2

// Drawing is a turtle path laid out in output coordinates, which have
// their origin at the top left and Y pointing down.
type Drawing struct {

	// Size is the output size.
	Size math32.Vector2

	// Path is the polyline through the path points.
	Path []math32.Vector2

	// Samples are the positions of all samples, including those where
	// the turtle only turned.
	Samples []math32.Vector2

	// Headings are short segments along the heading at each sample,
	// when frames are drawn.
	Headings []Segment

	// Ups are short segments along the up axis at each sample,
	// when frames are drawn.
	Ups []Segment
}

// Start returns the start point of the path.
func (d *Drawing) Start() math32.Vector2 {
	return d.Path[0]
}

// Layout projects the path of the state into the view and scales it to
// fit the output size inside the margins, keeping the aspect ratio.
func Layout(st *turtle.State, opts Options) *Drawing {
	d := &Drawing{Size: math32.Vec2(float32(opts.Width), float32(opts.Height))}
	pts := st.Points()
	proj := make([]math32.Vector2, len(pts))
	lo := math32.Vector2Scalar(math32.Infinity)
	hi := math32.Vector2Scalar(-math32.Infinity)
	for i, p := range pts {
		q := opts.View.Project(p)
		proj[i] = q
		lo = math32.Vec2(math32.Min(lo.X, q.X), math32.Min(lo.Y, q.Y))
		hi = math32.Vec2(math32.Max(hi.X, q.X), math32.Max(hi.Y, q.Y))
	}
	ext := hi.Sub(lo)
	avail := d.Size.Sub(math32.Vector2Scalar(2 * opts.Margin))
	scale := float32(1)
	switch {
	case ext.X > 0 && ext.Y > 0:
		scale = math32.Min(avail.X/ext.X, avail.Y/ext.Y)
	case ext.X > 0:
		scale = avail.X / ext.X
	case ext.Y > 0:
		scale = avail.Y / ext.Y
	}
	center := lo.Lerp(hi, 0.5)
	toOut := func(q math32.Vector2) math32.Vector2 {
		return math32.Vec2(d.Size.X/2+(q.X-center.X)*scale, d.Size.Y/2-(q.Y-center.Y)*scale)
	}
	d.Path = make([]math32.Vector2, len(proj))
	for i, q := range proj {
		d.Path[i] = toOut(q)
	}
	tick := 0.05 * math32.Min(d.Size.X, d.Size.Y) / scale
	for _, m := range st.PathTransforms {
		p := m.TranslationPart()
		d.Samples = append(d.Samples, toOut(opts.View.Project(p)))
		if !opts.Frames {
			continue
		}
		h := p.Add(m.Column(0).Normal().MulScalar(tick))
		u := p.Add(m.Column(2).Normal().MulScalar(tick))
		d.Headings = append(d.Headings, Segment{toOut(opts.View.Project(p)), toOut(opts.View.Project(h))})
		d.Ups = append(d.Ups, Segment{toOut(opts.View.Project(p)), toOut(opts.View.Project(u))})
	}
	b := st.Bounds()
	slog.Debug("render: laid out path", "view", opts.View, "points", len(pts), "min", b.Min, "max", b.Max, "scale", scale)
	return d
}
