// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/turtle/base/tolassert"
	"cogentcore.org/turtle/math32"
	"cogentcore.org/turtle/turtle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cmds, err := Parse("move 5 left\nrepeat 2 [move [arc 1 left 90 twist 10.5]]  # comment\n\n")
	require.NoError(t, err)
	assert.Equal(t, []any{"move", 5, "left", "repeat", 2, []any{"move", []any{"arc", 1, "left", 90, "twist", 10.5}}}, cmds)

	cmds, err = Parse(`jump [1, 2.5, -3] "roll" 45 rot [[0 -1 0] [1 0 0] [0 0 1]]`)
	require.NoError(t, err)
	assert.Equal(t, []any{"jump", []any{1, 2.5, -3}, "roll", 45, "rot", []any{[]any{0, -1, 0}, []any{1, 0, 0}, []any{0, 0, 1}}}, cmds)

	cmds, err = Parse("repeat 3 []")
	require.NoError(t, err)
	assert.Equal(t, []any{"repeat", 3, []any{}}, cmds)

	cmds, err = Parse("")
	require.NoError(t, err)
	assert.Empty(t, cmds)

	for _, src := range []string{"move ]", "[move", "[[move]", "move; left", "move 'left"} {
		_, err := Parse(src)
		assert.Error(t, err, src)
	}
}

func TestParseRun(t *testing.T) {
	cmds, err := Parse("repeat 4 [move 5 right]")
	require.NoError(t, err)
	st, err := turtle.Run(nil, cmds)
	require.NoError(t, err)
	assert.Len(t, st.Points(), 5)
	tolassert.EqualTolVector3(t, math32.Vector3{}, st.Position(), 1e-4)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestOpen(t *testing.T) {
	files := map[string]string{
		"list.yaml":    "- move\n- 2\n- [arc, 1, left, 90]\n",
		"table.yml":    "commands: [move, 2, [arc, 1, left, 90]]\n",
		"list.json":    `["move", 2, ["arc", 1, "left", 90]]`,
		"table.json":   `{"commands": ["move", 2, ["arc", 1, "left", 90]]}`,
		"prog.toml":    `commands = ["move", 2, ["arc", 1, "left", 90]]`,
		"prog.turtle":  "move 2\n[arc 1 left 90]\n",
		"prog.txt":     "move 2 [arc 1 left 90]",
		"quoted.turtl": `"move" 2 ["arc" 1 "left" 90]`,
	}
	for name, content := range files {
		cmds, err := Open(writeFile(t, name, content))
		if !assert.NoError(t, err, name) {
			continue
		}
		st, err := turtle.Run(nil, cmds)
		if !assert.NoError(t, err, name) {
			continue
		}
		tolassert.EqualTolVector3(t, math32.Vec3(3, 1, 0), st.Position(), 1e-4, name)
	}

	for name, content := range map[string]string{
		"scalar.yaml": "5\n",
		"other.json":  `{"cmds": []}`,
		"empty.toml":  `title = "x"`,
		"bad.json":    `["move",`,
	} {
		_, err := Open(writeFile(t, name, content))
		assert.Error(t, err, name)
	}

	_, err := Open(filepath.Join(t.TempDir(), "missing.turtle"))
	assert.Error(t, err)
}

func TestStateFiles(t *testing.T) {
	st, err := turtle.Run(nil, []any{"length", 2, "move", []any{"arc", 1, "left", 90, "twist", 30}, "arcsteps", 3})
	require.NoError(t, err)
	dir := t.TempDir()
	for _, name := range []string{"state.yaml", "state.json", "state.toml"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, SaveState(st, fn), name)
		got, err := OpenState(fn)
		require.NoError(t, err, name)
		assert.Equal(t, st.StepLength, got.StepLength, name)
		assert.Equal(t, st.TurnAngle, got.TurnAngle, name)
		assert.Equal(t, st.ArcSteps, got.ArcSteps, name)
		require.Equal(t, st.Len(), got.Len(), name)
		for i := range st.PathTransforms {
			tolassert.EqualTolMatrix4(t, st.PathTransforms[i], got.PathTransforms[i], 1e-6, name)
			tolassert.EqualTolMatrix4(t, st.ShapeTransforms[i], got.ShapeTransforms[i], 1e-6, name)
		}

		// continuing from the loaded state matches continuing directly
		a, err := turtle.Run(st, []any{"move"})
		require.NoError(t, err)
		b, err := turtle.Run(got, []any{"move"})
		require.NoError(t, err)
		tolassert.EqualTolVector3(t, a.Position(), b.Position(), 1e-5, name)
	}

	assert.Error(t, SaveState(st, filepath.Join(dir, "state.txt")))
	_, err = OpenState(filepath.Join(dir, "state.txt"))
	assert.Error(t, err)

	bad := writeFile(t, "bad.yaml", "path_transforms: []\nturn_angle: 90\n")
	_, err = OpenState(bad)
	assert.ErrorContains(t, err, "no path transforms")
}
