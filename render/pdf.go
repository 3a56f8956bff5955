// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"codeberg.org/go-pdf/fpdf"
	"cogentcore.org/turtle/math32"
	"cogentcore.org/turtle/turtle"
)

// pdfDoc wraps a single page document sized in points.
type pdfDoc struct {
	*fpdf.Fpdf
}

func (p *pdfDoc) color(c color.RGBA) {
	p.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func (p *pdfDoc) line(a, b math32.Vector2) {
	p.Line(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
}

func (p *pdfDoc) dot(c math32.Vector2, r float32) {
	p.Circle(float64(c.X), float64(c.Y), float64(r), "F")
}

// PDF draws the path of the state as a single page vector document
// written to w.
func PDF(st *turtle.State, opts Options, w io.Writer) error {
	d := Layout(st, opts)
	p := &pdfDoc{fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: float64(opts.Width), Ht: float64(opts.Height)},
	})}
	p.SetCreator("turtle", true)
	p.SetTitle(fmt.Sprintf("turtle path, %s view", opts.View), true)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	p.color(SampleColor)
	for _, s := range d.Samples {
		p.dot(s, opts.LineWidth)
	}

	p.color(PathColor)
	p.SetLineWidth(float64(opts.LineWidth))
	for i := 1; i < len(d.Path); i++ {
		p.line(d.Path[i-1], d.Path[i])
	}

	if opts.Frames {
		p.SetLineWidth(1)
		p.color(HeadingColor)
		for _, s := range d.Headings {
			p.line(s[0], s[1])
		}
		p.color(UpColor)
		for _, s := range d.Ups {
			p.line(s[0], s[1])
		}
	}

	p.color(StartColor)
	p.dot(d.Start(), 1.5*opts.LineWidth)

	p.SetFont("Helvetica", "", 8)
	p.SetTextColor(int(SampleColor.R), int(SampleColor.G), int(SampleColor.B))
	p.Text(4, float64(opts.Height)-4, fmt.Sprintf("%s view, %d samples", opts.View, st.Len()))
	return p.Output(w)
}

// SavePDF draws the path of the state to the given PDF file.
func SavePDF(st *turtle.State, opts Options, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := PDF(st, opts, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
