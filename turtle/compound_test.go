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

func TestCompoundArc(t *testing.T) {
	tests := []struct {
		cmd     []any
		pos     math32.Vector3
		heading math32.Vector3
	}{
		{[]any{"arc", 2, "left", 90}, math32.Vec3(2, 2, 0), math32.Back},
		{[]any{"arc", 2, "left"}, math32.Vec3(2, 2, 0), math32.Back},
		{[]any{"arc", 2, "left", 90, "reverse"}, math32.Vec3(2, 2, 0), math32.Back},
		{[]any{"arc", 1, "right", 90, "steps", 3}, math32.Vec3(1, -1, 0), math32.Fwd},
		{[]any{"arc", 1, "up", 90}, math32.Vec3(1, 0, 1), math32.Up},
		{[]any{"arc", 1, "down"}, math32.Vec3(1, 0, -1), math32.Down},
		{[]any{"arc", 1, "todir", []any{0, 1, 0}}, math32.Vec3(1, 1, 0), math32.Back},
		{[]any{"arc", 1, "torot", math32.RotateZ3D(math32.DegToRad(90))}, math32.Vec3(1, 1, 0), math32.Back},
	}
	for _, test := range tests {
		st, err := Run(nil, []any{test.cmd})
		if !assert.NoError(t, err, "%v", test.cmd) {
			continue
		}
		tolassert.EqualTolVector3(t, test.pos, st.Position(), tol, "%v", test.cmd)
		tolassert.EqualTolVector3(t, test.heading, st.Heading(), tol, "%v", test.cmd)
	}

	st := run(t, []any{"arc", 1, "right", 90, "steps", 3})
	assert.Equal(t, 4, st.Len())

	st = run(t, "repeat", 4, []any{[]any{"arc", 1, "left", 90}})
	assert.Equal(t, 9, st.Len())
	tolassert.EqualTolVector3(t, math32.Vector3{}, st.Position(), tol)
}

func TestCompoundArcMixed(t *testing.T) {
	st := run(t, []any{"arc", 1, "left", 90, "up", 90})
	tolassert.EqualTolVector3(t, math32.Up, st.Heading(), tol)
	assert.True(t, st.Last().IsRotation(tol))

	err := runError(t, []any{"arc", 1, "left", 180, "up", 10})
	assert.Contains(t, err.Msg, "below 180")

	// default angles are checked when run
	err = runError(t, "angle", 200, []any{"arc", 1, "left", "up"})
	assert.Equal(t, 2, err.Index())
	assert.Equal(t, "[arc]", err.Command)
	assert.Contains(t, err.Msg, "below 180")
}

func TestCompoundMove(t *testing.T) {
	st := run(t, []any{"move"})
	tolassert.EqualTolVector3(t, math32.Vec3(1, 0, 0), st.Position(), tol)

	st = run(t, "length", 2, []any{"move", 3, "reverse"})
	tolassert.EqualTolVector3(t, math32.Vec3(6, 0, 0), st.Position(), tol)

	st = run(t, []any{"move", 4, "steps", 4})
	assertPoints(t, []math32.Vector3{{}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 3, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 0}}, st.Points())
}

func TestReverse(t *testing.T) {
	shape := math32.RotateY3D(math32.DegToRad(90))
	flip := math32.Scale3D(1, -1, 1)

	st := run(t, []any{"move", 2, "reverse"})
	tolassert.EqualTolVector3(t, math32.Vec3(2, 0, 0), st.Position(), tol)
	tolassert.EqualTolVector3(t, math32.Fwd, st.Heading(), tol)
	tolassert.EqualTolMatrix4(t, shape.Mul(flip), st.LastShape(), tol)
	assert.Less(t, st.LastShape().Determinant3(), float32(0))

	// the arc still turns toward its direction and only the winding flips
	st = run(t, []any{"arc", 1, "left", 90, "reverse", "steps", 2})
	tolassert.EqualTolVector3(t, math32.Vec3(1, 1, 0), st.Position(), tol)
	assert.Less(t, st.LastShape().Determinant3(), float32(0))

	// a second reverse restores the outside winding
	st = run(t, []any{"move", 1, "reverse"}, []any{"move", 1, "reverse"})
	tolassert.EqualTolVector3(t, math32.Vec3(2, 0, 0), st.Position(), tol)
	tolassert.EqualTolMatrix4(t, shape, st.LastShape(), tol)

	// twist and grow compose with the flip
	st = run(t, []any{"move", 1, "reverse", "twist", 90, "grow", 2})
	want := shape.Mul(math32.RotateZ3D(math32.DegToRad(90))).Mul(math32.Scale3D(2, -2, 1))
	tolassert.EqualTolMatrix4(t, want, st.LastShape(), tol)
}

func TestTwist(t *testing.T) {
	st := run(t, []any{"move", 4, "twist", 90, "steps", 2})
	require.Equal(t, 3, st.Len())
	shape := math32.RotateY3D(math32.DegToRad(90))
	tolassert.EqualTolMatrix4(t, shape.Mul(math32.RotateZ3D(math32.DegToRad(45))), st.ShapeTransforms[1], tol)
	tolassert.EqualTolMatrix4(t, shape.Mul(math32.RotateZ3D(math32.DegToRad(90))), st.ShapeTransforms[2], tol)
	tolassert.EqualTolVector3(t, math32.Vec3(4, 0, 0), st.Position(), tol)

	// twist accumulates across commands and turns keep it
	st = run(t, []any{"arc", 1, "left", 90, "twist", 30, "steps", 2}, "left", []any{"move", "twist", 30})
	tolassert.EqualTolMatrix4(t, shape.Mul(math32.RotateZ3D(math32.DegToRad(30))), st.ShapeTransforms[2], tol)
	tolassert.EqualTolMatrix4(t, shape.Mul(math32.RotateZ3D(math32.DegToRad(30))), st.ShapeTransforms[3], tol)
	tolassert.EqualTolMatrix4(t, shape.Mul(math32.RotateZ3D(math32.DegToRad(60))), st.LastShape(), tol)
}

func TestGrow(t *testing.T) {
	st := run(t, []any{"move", 10, "grow", 3, "steps", 5})
	require.Equal(t, 6, st.Len())
	prev := float32(0)
	for i, s := range st.ShapeTransforms {
		sf := s.ScaleFactors()
		tolassert.EqualTol(t, 1+0.4*float32(i), sf.X, tol)
		tolassert.EqualTol(t, sf.X, sf.Y, tol)
		tolassert.EqualTol(t, 1, sf.Z, tol)
		assert.Greater(t, sf.X, prev)
		prev = sf.X
	}

	st = run(t, []any{"move", "grow", []any{2, 1}, "shrink", 2})
	tolassert.EqualTolVector3(t, math32.Vec3(1, 0.5, 1), st.LastShape().ScaleFactors(), tol)

	// the sweep scales the cross-section in the plane perpendicular to the heading
	sw := st.Sweep()
	tolassert.EqualTolVector3(t, math32.Vec3(0, 0, -1), sw[1].MulVector3AsVector(math32.Right), tol)
	tolassert.EqualTolVector3(t, math32.Vec3(0, 0.5, 0), sw[1].MulVector3AsVector(math32.Back), tol)
}

func TestRoll(t *testing.T) {
	st := run(t, []any{"move", 2, "roll", 90, "steps", 2})
	h := math32.Sqrt(0.5)
	tolassert.EqualTolVector3(t, math32.Vec3(0, -h, h), st.PathTransforms[1].Column(2), tol)
	tolassert.EqualTolVector3(t, math32.Vec3(0, -1, 0), st.UpAxis(), tol)
	tolassert.EqualTolVector3(t, math32.Vec3(2, 0, 0), st.Position(), tol)
}

func TestRollTo(t *testing.T) {
	for _, mode := range []string{"rollto", "lrollto", "rrollto"} {
		st := run(t, []any{"move", mode, []any{0, 1, 0}, "steps", 3})
		tolassert.EqualTolVector3(t, math32.Back, st.UpAxis(), tol, mode)
		tolassert.EqualTolVector3(t, math32.Right, st.Heading(), tol, mode)
	}

	// rolling right to the left takes the long way round
	st := run(t, []any{"move", "rrollto", []any{0, 1, 0}, "steps", 3})
	tolassert.EqualTolVector3(t, math32.Fwd, st.PathTransforms[1].Column(2), tol)
	st = run(t, []any{"move", "lrollto", []any{0, 1, 0}, "steps", 3})
	h := math32.Sqrt(0.75)
	tolassert.EqualTolVector3(t, math32.Vec3(0, 0.5, h), st.PathTransforms[1].Column(2), tol)

	// a half turn goes to +180 unless a side is given
	st = run(t, []any{"move", "rollto", []any{0, 0, -1}, "steps", 2})
	tolassert.EqualTolVector3(t, math32.Fwd, st.PathTransforms[1].Column(2), tol)
	tolassert.EqualTolVector3(t, math32.Down, st.UpAxis(), tol)
	st = run(t, []any{"move", "lrollto", []any{0, 0, -1}, "steps", 2})
	tolassert.EqualTolVector3(t, math32.Back, st.PathTransforms[1].Column(2), tol)

	// the target only needs to lie off the final heading
	st = run(t, []any{"arc", 1, "left", 90, "rollto", []any{1, 1, -1}})
	tolassert.EqualTolVector3(t, math32.Back, st.Heading(), tol)
	tolassert.EqualTolVector3(t, math32.Vec3(1, 0, -1).Normal(), st.UpAxis(), tol)

	err := runError(t, []any{"move", "rollto", []any{2, 0, 0}})
	assert.Contains(t, err.Msg, "parallel")
}

func TestCompoundErrors(t *testing.T) {
	tests := []struct {
		cmd []any
		msg string
	}{
		{[]any{"move", "reverse", "reverse"}, `repeated option "reverse"`},
		{[]any{"move", "twist", 10, "twist", 20}, `repeated option "twist"`},
		{[]any{"move", "reverse", 5}, "reverse takes no value"},
		{[]any{"move", "roll", 10, "rollto", []any{0, 1, 0}}, "only one of roll"},
		{[]any{"move", "left", 10}, "only valid in arc"},
		{[]any{"move", "twsit", 5}, `did you mean "twist"`},
		{[]any{"move", "twist"}, "twist requires"},
		{[]any{"move", "steps", 0}, "positive integer"},
		{[]any{"move", "shrink", 0}, "nonzero"},
		{[]any{"move", 5, 3}, "expected an option name"},
		{[]any{"move", "rollto", []any{0, 0, 0}}, "nonzero 3-vector"},
		{[]any{"turn", 5}, "must start with move or arc"},
		{[]any{"arc"}, "requires a numeric radius"},
		{[]any{"arc", -1, "left"}, "radius must be positive"},
		{[]any{"arc", 1}, "requires a direction"},
		{[]any{"arc", 1, "twist", 10}, "requires a direction"},
		{[]any{"arc", 1, "left", "todir", []any{0, 1, 0}}, "only one of the turns"},
		{[]any{"arc", 1, "left", "right"}, "only one of left and right"},
		{[]any{"arc", 1, "up", "down", 20}, "only one of up and down"},
		{[]any{"arc", 1, "torot", []any{1, 2}}, "torot requires"},
		{[]any{"arc", 1, "torot", math32.Scale3D(2, 2, 2)}, "torot requires"},
	}
	for _, test := range tests {
		_, err := Decode([]any{"move", 1, test.cmd})
		if assert.Error(t, err, "%v", test.cmd) {
			assert.Contains(t, err.Error(), test.msg, "%v", test.cmd)
			assert.Contains(t, err.Error(), "at index 2", "%v", test.cmd)
		}
	}
}
