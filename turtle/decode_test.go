// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import (
	"testing"

	"cogentcore.org/turtle/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(cmds []Command) []Kinds {
	ks := make([]Kinds, len(cmds))
	for i, c := range cmds {
		ks[i] = c.Kind
	}
	return ks
}

func TestSpans(t *testing.T) {
	cmds, err := Decode([]any{"arcleft", 2, "move"})
	require.NoError(t, err)
	assert.Equal(t, []Kinds{ArcLeft, Move}, kindsOf(cmds))
	assert.False(t, cmds[0].HasAngle)
	assert.Equal(t, 2, cmds[1].Index)

	cmds, err = Decode([]any{"arcleft", 2, 45, "move", 3})
	require.NoError(t, err)
	assert.Equal(t, []Kinds{ArcLeft, Move}, kindsOf(cmds))
	assert.True(t, cmds[0].HasAngle)
	assert.Equal(t, float32(45), cmds[0].Angle)
	assert.Equal(t, 3, cmds[1].Index)
	assert.Equal(t, float32(3), cmds[1].Number)

	cmds, err = Decode([]any{"arcright", 2, []any{"move", 2}})
	require.NoError(t, err)
	assert.Equal(t, []Kinds{ArcRight, CompoundMove}, kindsOf(cmds))
	assert.Equal(t, 2, cmds[1].Index)

	cmds, err = Decode([]any{"move", []any{"move", 2}, "left", []any{"arc", 1, "left"}, "move"})
	require.NoError(t, err)
	assert.Equal(t, []Kinds{Move, CompoundMove, Left, CompoundArc, Move}, kindsOf(cmds))
	assert.False(t, cmds[0].HasNumber)
	assert.False(t, cmds[2].HasNumber)

	cmds, err = Decode([]any{"repeat", 2, []any{"move", "repeat", 3, []any{"left"}}, "xyzmove", []int{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []Kinds{Repeat, XYZMove}, kindsOf(cmds))
	assert.Equal(t, 2, cmds[0].Count)
	assert.Equal(t, []Kinds{Move, Repeat}, kindsOf(cmds[0].Body))
	assert.Equal(t, []Kinds{Left}, kindsOf(cmds[0].Body[1].Body))
	assert.Equal(t, math32.Vec3(1, 2, 3), cmds[1].Vector)
	assert.Equal(t, 3, cmds[1].Index)

	cmds, err = Decode([]any{"arctodir", 1, math32.Vec3(0, 1, 0), "arcrot", 2, math32.RotateX3D(1)})
	require.NoError(t, err)
	assert.Equal(t, []Kinds{ArcToDir, ArcRot}, kindsOf(cmds))
	assert.Equal(t, 3, cmds[1].Index)

	cmds, err = Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestCompoundOptions(t *testing.T) {
	cmds, err := Decode([]any{[]any{"arc", 2, "right", 30, "grow", []any{2, 3}, "shrink", 2, "steps", 4, "lrollto", []any{0, 1, 0}, "twist", -10, "reverse"}})
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	cp := cmds[0].Compound
	require.NotNil(t, cp)
	assert.Equal(t, CompoundArc, cmds[0].Kind)
	assert.Equal(t, "[arc]", cmds[0].Name())
	assert.Equal(t, float32(2), cp.Radius)
	assert.Equal(t, float32(-1), cp.TurnSign)
	assert.Equal(t, float32(30), cp.TurnAngle)
	assert.True(t, cp.HasTurnAngle)
	assert.Equal(t, float32(0), cp.TiltSign)
	assert.Equal(t, math32.Vec2(1, 1.5), cp.Grow)
	assert.Equal(t, 4, cp.Steps)
	assert.Equal(t, LeftRollTo, cp.RollMode)
	assert.Equal(t, math32.Vec3(0, 1, 0), cp.RollTarget)
	assert.Equal(t, float32(-10), cp.Twist)
	assert.True(t, cp.Reverse)

	cmds, err = Decode([]any{[]string{"move", "reverse"}})
	require.NoError(t, err)
	assert.Equal(t, CompoundMove, cmds[0].Kind)
	assert.True(t, cmds[0].Compound.Reverse)
	assert.False(t, cmds[0].Compound.HasLength)
	assert.Equal(t, math32.Vector2Scalar(1), cmds[0].Compound.Grow)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		cmds []any
		msg  string
	}{
		{[]any{"lefft"}, `"lefft" at index 0: unknown command (did you mean "left"?)`},
		{[]any{"move", "zzzzzzzzz"}, `"zzzzzzzzz" at index 1: unknown command`},
		{[]any{5}, `"5" at index 0: expected a command name, got int`},
		{[]any{"move", []any{1}}, "requires a numeric argument"},
		{[]any{"move", true}, "requires a numeric argument"},
		{[]any{"xjump"}, "requires a numeric argument"},
		{[]any{"xjump", "move"}, "requires a numeric argument"},
		{[]any{"jump", 5}, "requires a 3-vector"},
		{[]any{"jump", []any{1, 2}}, "requires a 3-vector"},
		{[]any{"setdir", []any{0, 0, 0}}, "nonzero direction"},
		{[]any{"rot", []any{[]any{1, 2}, []any{3, 4}}}, "rotation matrix"},
		{[]any{"rot", []any{[]any{1, 0, 0, 0}, []any{0, 1, 0, 0}, []any{0, 0, 1, 0}, []any{1, 0, 0, 1}}}, "rotation matrix"},
		{[]any{"rot", []any{[]any{1, 0, 0, 5}, []any{0, 1, 0, 0}, []any{0, 0, 1, 0}, []any{0, 0, 0, 1}}}, "rotation matrix"},
		{[]any{"rot", []any{[]any{2, 0, 0}, []any{0, 2, 0}, []any{0, 0, 2}}}, "rotation matrix"},
		{[]any{"rot", []any{[]any{1, 0, 0}, []any{0, 1, 0}, []any{0, 0, -1}}}, "rotation matrix"},
		{[]any{"rot", []any{[]any{1, 1, 0}, []any{0, 1, 0}, []any{0, 0, 1}}}, "rotation matrix"},
		{[]any{"rot", math32.Translate3D(1, 0, 0)}, "rotation matrix"},
		{[]any{"arcrot", 1, math32.Scale3D(1, 2, 1)}, "rotation matrix"},
		{[]any{"repeat", 3}, "requires 2 arguments"},
		{[]any{"repeat", -1, []any{"move"}}, "non-negative integer count"},
		{[]any{"repeat", 1.5, []any{"move"}}, "non-negative integer count"},
		{[]any{"repeat", 2, "move"}, "requires a command list"},
		{[]any{"arctodir", 1}, "requires 2 arguments"},
		{[]any{"arctodir", 1, "up"}, "3-vector direction"},
		{[]any{"arcrot", 1, 5}, "rotation matrix"},
		{[]any{"arcleft", 2, "x"}, `"x" at index 2: unknown command`},
		{[]any{"angle", 0}, "angle must be nonzero"},
		{[]any{"move", float32(math32.Infinity)}, "requires a numeric argument"},
	}
	for _, test := range tests {
		cmds, err := Decode(test.cmds)
		assert.Nil(t, cmds, "%v", test.cmds)
		if assert.Error(t, err, "%v", test.cmds) {
			assert.Contains(t, err.Error(), test.msg, "%v", test.cmds)
		}
	}
}

func TestKinds(t *testing.T) {
	assert.Len(t, KindsValues(), int(KindsN))
	assert.Len(t, Names(), int(KindsN)-2)
	for _, name := range Names() {
		k, ok := KindByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, k.String())
		assert.NotEmpty(t, k.Desc())
	}
	_, ok := KindByName("[move]")
	assert.False(t, ok)
	assert.True(t, ArcToDir.IsArc())
	assert.True(t, CompoundArc.IsArc())
	assert.False(t, Repeat.IsArc())
	assert.Equal(t, "Kinds(99)", Kinds(99).String())
	assert.Empty(t, Kinds(-1).Desc())
}
