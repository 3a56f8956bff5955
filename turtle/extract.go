// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import "cogentcore.org/turtle/math32"

// Points returns the position of each sample, with consecutive
// duplicates removed. Turns and parameter changes add samples that
// do not move the turtle, so they never add points.
func (s *State) Points() []math32.Vector3 {
	pts := make([]math32.Vector3, 0, len(s.PathTransforms))
	for _, m := range s.PathTransforms {
		p := m.TranslationPart()
		if n := len(pts); n > 0 && samePoint(pts[n-1], p) {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

// samePoint returns whether a and b are within [math32.Tolerance]
// of each other. The tolerance is absolute so that short moves far
// from the origin are kept.
func samePoint(a, b math32.Vector3) bool {
	return a.DistanceTo(b) <= math32.Tolerance
}

// Sweep returns, for each sample, the transform that places a 2D
// cross-section given in the XY plane on the path: the pose times
// the accumulated shape transform.
func (s *State) Sweep() []math32.Matrix4 {
	ts := make([]math32.Matrix4, len(s.PathTransforms))
	for i, m := range s.PathTransforms {
		ts[i] = m.Mul(s.ShapeTransforms[i])
	}
	return ts
}

// Bounds returns the bounding box of the path points.
func (s *State) Bounds() math32.Box3 {
	return math32.B3FromPoints(s.Points())
}
