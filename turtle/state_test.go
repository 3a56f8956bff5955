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

func TestNewState(t *testing.T) {
	st, err := NewState(math32.Right)
	require.NoError(t, err)
	assert.Equal(t, DefaultState(), st)
	assert.Equal(t, float32(1), st.StepLength)
	assert.Equal(t, float32(90), st.TurnAngle)
	assert.Equal(t, 0, st.ArcSteps)
	assert.NoError(t, st.Validate())

	st, err = NewState(math32.Vec3(0, 0, 3))
	require.NoError(t, err)
	tolassert.EqualTolVector3(t, math32.Up, st.Heading(), tol)
	tolassert.EqualTolVector3(t, math32.Fwd, st.UpAxis(), tol)
	tolassert.EqualTolVector3(t, math32.Left, st.Last().Column(1), tol)
	assert.True(t, st.Last().IsRotation(tol))

	st, err = NewState(math32.Vec3(1, 0, 1))
	require.NoError(t, err)
	h := math32.Sqrt(0.5)
	tolassert.EqualTolVector3(t, math32.Vec3(h, 0, h), st.Heading(), tol)
	tolassert.EqualTolVector3(t, math32.Vec3(-h, 0, h), st.UpAxis(), tol)
	assert.True(t, st.Last().IsRotation(tol))

	_, err = NewState(math32.Vector3{})
	assert.Error(t, err)
}

func TestStateFromTransform(t *testing.T) {
	st := NewStateTransform(math32.Translate3D(1, 2, 3))
	pts, err := New().Run(st, []any{"move"})
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector3{{X: 1, Y: 2, Z: 3}, {X: 2, Y: 2, Z: 3}}, pts.Points())
}

func TestClone(t *testing.T) {
	st := run(t, "move", "length", 2)
	cl := st.Clone()
	assert.Equal(t, st, cl)

	cl.PathTransforms[0][12] = 7
	cl.ShapeTransforms = append(cl.ShapeTransforms, math32.Identity4())
	cl.StepLength = 5
	assert.Equal(t, float32(0), st.PathTransforms[0][12])
	assert.Len(t, st.ShapeTransforms, 2)
	assert.Equal(t, float32(2), st.StepLength)
}

func TestValidate(t *testing.T) {
	st := DefaultState()
	st.PathTransforms = nil
	assert.ErrorContains(t, st.Validate(), "no path transforms")

	st = DefaultState()
	st.TurnAngle = 0
	assert.ErrorContains(t, st.Validate(), "turn angle")

	st = DefaultState()
	st.PathTransforms[0][3] = 1
	assert.ErrorContains(t, st.Validate(), "not affine")

	st = DefaultState()
	st.ArcSteps = -1
	assert.ErrorContains(t, st.Validate(), "arc steps")
}

func TestPointsDedupe(t *testing.T) {
	st := run(t, "left", "right", "move", "angle", 30, "roll", "untilx", 1, "move", 0, "move")
	assertPoints(t, []math32.Vector3{{}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}, st.Points())
	assert.Len(t, st.Sweep(), st.Len())

	b := st.Bounds()
	tolassert.EqualTolVector3(t, math32.Vector3{}, b.Min, tol)
	tolassert.EqualTolVector3(t, math32.Vec3(2, 0, 0), b.Max, tol)

	// short moves far from the origin are real points
	st = run(t, "xjump", 2000, "repeat", 4, []any{"move", 0.01})
	pts := st.Points()
	require.Len(t, pts, 6)
	for i, p := range pts[1:] {
		tolassert.EqualTol(t, 2000+0.01*float32(i), p.X, 1e-3, "point %d", i+1)
	}

	st = run(t, "jump", []any{1e5, 0, 0}, "move", 0.5, "move", 0.5)
	pts = st.Points()
	require.Len(t, pts, 4)
	tolassert.EqualTol(t, 1, pts[3].X-pts[1].X, 1e-2)
}
