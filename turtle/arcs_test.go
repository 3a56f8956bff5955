// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import (
	"testing"

	"cogentcore.org/turtle/base/tolassert"
	"cogentcore.org/turtle/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcLeft(t *testing.T) {
	st := run(t, "arcleft", 2, 90)
	// default facets give 7 segments per circle at radius 2
	require.Equal(t, 3, st.Len())
	h := math32.Sqrt(0.5)
	tolassert.EqualTolVector3(t, math32.Vec3(2*h, 2-2*h, 0), st.PathTransforms[1].TranslationPart(), tol)
	tolassert.EqualTolVector3(t, math32.Vec3(h, h, 0), st.PathTransforms[1].Column(0), tol)
	tolassert.EqualTolVector3(t, math32.Vec3(2, 2, 0), st.Position(), tol)
	tolassert.EqualTolVector3(t, math32.Back, st.Heading(), tol)

	// default angle
	st = run(t, "arcleft", 2)
	tolassert.EqualTolVector3(t, math32.Vec3(2, 2, 0), st.Position(), tol)

	// the radius is scaled by the step length
	st = run(t, "length", 2, "arcleft", 1, 90)
	tolassert.EqualTolVector3(t, math32.Vec3(2, 2, 0), st.Position(), tol)
}

func TestArcDirections(t *testing.T) {
	tests := []struct {
		cmds    []any
		pos     math32.Vector3
		heading math32.Vector3
	}{
		{[]any{"arcright", 1}, math32.Vec3(1, -1, 0), math32.Fwd},
		{[]any{"arcup", 1, 90}, math32.Vec3(1, 0, 1), math32.Up},
		{[]any{"arcdown", 1, 90}, math32.Vec3(1, 0, -1), math32.Down},
		{[]any{"arczrot", 1, 90}, math32.Vec3(1, 1, 0), math32.Back},
		{[]any{"arcyrot", 1, -90}, math32.Vec3(1, 0, 1), math32.Up},
		{[]any{"arctodir", 1, []any{0, 1, 0}}, math32.Vec3(1, 1, 0), math32.Back},
		{[]any{"arctodir", 1, []any{-1, 0, 0}}, math32.Vec3(0, 2, 0), math32.Left},
		{[]any{"arcrot", 1, math32.RotateZ3D(math32.DegToRad(90))}, math32.Vec3(1, 1, 0), math32.Back},
		{[]any{"arcrot", 1, []any{[]any{0, 0, -1}, []any{0, 1, 0}, []any{1, 0, 0}}}, math32.Vec3(1, 0, 1), math32.Up},
	}
	for _, test := range tests {
		st, err := Run(nil, test.cmds)
		if !assert.NoError(t, err, "%v", test.cmds) {
			continue
		}
		tolassert.EqualTolVector3(t, test.pos, st.Position(), tol, "%v", test.cmds)
		tolassert.EqualTolVector3(t, test.heading, st.Heading(), tol, "%v", test.cmds)
	}
}

func TestArcClosedLoop(t *testing.T) {
	st := run(t, "arcleft", 2, 360)
	assert.Equal(t, 8, st.Len())
	tolassert.EqualTolVector3(t, math32.Vector3{}, st.Position(), tol)
	tolassert.EqualTolMatrix4(t, math32.Identity4(), st.Last(), tol)

	st = run(t, "arcleft", 2, 90, "arcleft", 2, 270)
	tolassert.EqualTolVector3(t, math32.Vector3{}, st.Position(), tol)

	// an S curve restores the heading
	st = run(t, "arcleft", 2, 60, "arcright", 2, 60)
	tolassert.EqualTolVector3(t, math32.Right, st.Heading(), tol)
	tolassert.EqualTolVector3(t, math32.Up, st.UpAxis(), tol)
}

func TestArcSteps(t *testing.T) {
	st := run(t, "arcsteps", 4, "arcright", 1)
	assert.Equal(t, 5, st.Len())
	tolassert.EqualTolVector3(t, math32.Vec3(1, -1, 0), st.Position(), tol)

	tu := &Turtle{Facets: Facets{Fn: 36}}
	st, err := tu.Run(nil, []any{"arcleft", 1, 90})
	require.NoError(t, err)
	assert.Equal(t, 10, st.Len())

	// explicit arcsteps win over the facets
	st, err = tu.Run(nil, []any{"arcsteps", 2, "arcleft", 1, 90})
	require.NoError(t, err)
	assert.Equal(t, 3, st.Len())
}

func TestFacets(t *testing.T) {
	f := DefaultFacets()
	assert.Equal(t, 7, f.Segments(2))
	assert.Equal(t, 30, f.Segments(100))
	assert.Equal(t, 5, f.Segments(0.1))
	assert.Equal(t, 5, Facets{Fn: 5}.Segments(100))
	assert.Equal(t, 3, Facets{Fn: 2}.Segments(100))
	assert.Equal(t, 7, Facets{}.Segments(2))

	assert.Equal(t, 2, f.ArcSteps(2, 90))
	assert.Equal(t, 2, f.ArcSteps(2, -90))
	assert.Equal(t, 30, f.ArcSteps(100, 360))
	assert.Equal(t, 1, f.ArcSteps(1, 1))
}

func TestArcErrors(t *testing.T) {
	err := runError(t, "arcleft", 2, 0)
	assert.Equal(t, `turtle: "arcleft" at index 0: zero sweep angle`, err.Error())

	err = runError(t, "arcxrot", 1)
	assert.Contains(t, err.Msg, "rotation acts as twist")

	err = runError(t, "move", "arctodir", 1, []any{2, 0, 0})
	assert.Equal(t, 1, err.Index())
	assert.Contains(t, err.Msg, "equals the heading")

	err = runError(t, "arcrot", 1, math32.Identity4())
	assert.Contains(t, err.Msg, "zero sweep")

	err = runError(t, "arcleft", 0)
	assert.Contains(t, err.Msg, "radius must be positive")

	err = runError(t, "arcleft", "move")
	assert.Contains(t, err.Msg, "numeric radius")

	err = runError(t, "arctodir", 1, []any{0, 0, 0})
	assert.Contains(t, err.Msg, "nonzero direction")
}
