// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import "cogentcore.org/turtle/math32"

// Facets determine how finely arcs are divided when [State.ArcSteps]
// is not set, following the usual CAD conventions.
type Facets struct {

	// Fn is the fixed number of segments for a full circle;
	// 0 derives it from Fa and Fs.
	Fn int `toml:"fn" yaml:"fn" json:"fn"`

	// Fa is the maximum angle in degrees of a segment.
	Fa float32 `toml:"fa" yaml:"fa" json:"fa"`

	// Fs is the maximum length of a segment.
	Fs float32 `toml:"fs" yaml:"fs" json:"fs"`
}

// DefaultFacets returns the default facet settings.
func DefaultFacets() Facets {
	return Facets{Fa: 12, Fs: 2}
}

// Segments returns the number of segments for a full circle of
// radius r, which is at least 3.
func (f Facets) Segments(r float32) int {
	if f.Fn > 0 {
		return max(f.Fn, 3)
	}
	fa, fs := f.Fa, f.Fs
	if fa <= 0 {
		fa = 12
	}
	if fs <= 0 {
		fs = 2
	}
	return int(math32.Ceil(math32.Max(math32.Min(360/fa, r*2*math32.Pi/fs), 5)))
}

// ArcSteps returns the number of sub-steps for an arc of radius r
// sweeping angle degrees.
func (f Facets) ArcSteps(r, angle float32) int {
	return max(1, int(math32.Ceil(float32(f.Segments(r))*math32.Abs(angle)/360)))
}
