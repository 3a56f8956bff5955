// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"

	"cogentcore.org/turtle/math32"
)

// Views are the orthographic projections a path can be drawn in.
type Views int32

const (
	// Top looks down the Z axis, with X to the right and Y up.
	Top Views = iota

	// Front looks along +Y, with X to the right and Z up.
	Front

	// Side looks along -X, with Y to the right and Z up.
	Side

	// Iso looks from the front-right-top corner, with Z up.
	Iso

	// ViewsN is the number of views.
	ViewsN
)

var viewNames = [ViewsN]string{"top", "front", "side", "iso"}

// viewAxes are the world directions of the screen right and up axes.
var viewAxes = [ViewsN][2]math32.Vector3{
	Top:   {math32.Right, math32.Back},
	Front: {math32.Right, math32.Up},
	Side:  {math32.Back, math32.Up},
	Iso:   {math32.Vec3(1, 1, 0).Normal(), math32.Vec3(-1, 1, 2).Normal()},
}

func (v Views) String() string {
	if v < 0 || v >= ViewsN {
		return fmt.Sprintf("Views(%d)", int32(v))
	}
	return viewNames[v]
}

// SetString sets the view from its name, ignoring case.
func (v *Views) SetString(s string) error {
	for i, n := range viewNames {
		if strings.EqualFold(s, n) {
			*v = Views(i)
			return nil
		}
	}
	return fmt.Errorf("render: unknown view %q; valid views are %s", s, strings.Join(viewNames[:], ", "))
}

// MarshalText implements [encoding.TextMarshaler].
func (v Views) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Views) UnmarshalText(text []byte) error {
	return v.SetString(string(text))
}

// Project returns the screen coordinates of the world point p in
// this view, with Y up.
func (v Views) Project(p math32.Vector3) math32.Vector2 {
	ax := viewAxes[v]
	return math32.Vec2(p.Dot(ax[0]), p.Dot(ax[1]))
}
