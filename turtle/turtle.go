// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package turtle interprets a 3D turtle graphics command language
// into a path of points or a list of affine transforms for sweeping a
// 2D cross-section along the path.
//
// The turtle moves in its local frame: +X is the heading, +Y is to its
// left and +Z is up. Commands are given as a flat list such as
//
//	[]any{"move", 5, "left", 30, "arcright", 2, 90, "repeat", 4, []any{"move", "right"}}
//
// where each command name is followed by up to two arguments.
// Lists starting with "move" or "arc" are compound commands that can
// also twist, scale and roll the cross-section along the motion.
package turtle

import (
	"log/slog"

	"cogentcore.org/turtle/math32"
)

// Turtle runs command lists. The zero value uses 0 for all facet
// settings, which selects their defaults.
type Turtle struct {

	// Facets determine the number of arc sub-steps when the state
	// does not set ArcSteps.
	Facets Facets
}

// New returns a new [Turtle] with the default facet settings.
func New() *Turtle {
	return &Turtle{Facets: DefaultFacets()}
}

// Run decodes and runs the given commands starting from the given
// state, which is not modified. A nil start uses [DefaultState].
// Command errors are [*Error] values and abort the whole run.
func (t *Turtle) Run(start *State, commands []any) (*State, error) {
	return t.RunRepeat(start, commands, 1)
}

// RunRepeat is like [Turtle.Run] but runs the commands the given
// number of times. A count of 0 returns a copy of the start state.
func (t *Turtle) RunRepeat(start *State, commands []any, count int) (*State, error) {
	cmds, err := Decode(commands)
	if err != nil {
		return nil, err
	}
	return t.Exec(start, cmds, count)
}

// Exec runs already decoded commands the given number of times
// starting from the given state, which is not modified.
func (t *Turtle) Exec(start *State, cmds []Command, count int) (*State, error) {
	var st *State
	if start == nil {
		st = DefaultState()
	} else {
		if err := start.Validate(); err != nil {
			return nil, err
		}
		st = start.Clone()
	}
	n0 := st.Len()
	if err := t.exec(st, cmds, count); err != nil {
		return nil, err
	}
	slog.Debug("turtle: ran commands", "commands", len(cmds), "repeat", count, "samples", st.Len()-n0)
	return st, nil
}

// frame is one level of the repeat stack.
type frame struct {
	cmds []Command

	// pos is the index in cmds of the next command.
	pos int

	// left is the number of remaining passes over cmds.
	left int

	// path is the index path of the enclosing repeat commands.
	path []int
}

// exec runs the commands in place on st. Repeats push a frame on an
// explicit stack, so large counts do not grow the Go stack.
func (t *Turtle) exec(st *State, cmds []Command, count int) error {
	stack := []frame{{cmds: cmds, left: count}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.left <= 0 || len(f.cmds) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		if f.pos >= len(f.cmds) {
			f.pos = 0
			f.left--
			continue
		}
		c := &f.cmds[f.pos]
		f.pos++
		if c.Kind == Repeat {
			path := append(append([]int(nil), f.path...), c.Index)
			stack = append(stack, frame{cmds: c.Body, left: c.Count, path: path})
			continue
		}
		if err := t.apply(st, c); err != nil {
			return err.nest(f.path)
		}
	}
	return nil
}

// apply runs one non-repeat command.
func (t *Turtle) apply(st *State, c *Command) *Error {
	switch {
	case c.Kind == CompoundMove:
		return t.compoundMove(st, c)
	case c.Kind == CompoundArc:
		return t.compoundArc(st, c)
	case c.Kind.IsArc():
		return t.arc(st, c)
	case c.Kind >= Angle && c.Kind <= ArcSteps:
		setParam(st, c)
		return nil
	case c.Kind >= Left && c.Kind <= Roll:
		turn(st, c)
		return nil
	}
	return move(st, c)
}

// Run runs the commands from the given state (nil for [DefaultState])
// with the default facet settings.
func Run(start *State, commands []any) (*State, error) {
	return New().Run(start, commands)
}

// Path returns the points traced by the commands from the default
// state, with consecutive duplicates removed.
func Path(commands []any) ([]math32.Vector3, error) {
	st, err := Run(nil, commands)
	if err != nil {
		return nil, err
	}
	return st.Points(), nil
}

// Sweep returns the transforms that place a 2D cross-section in the
// XY plane at each sample of the path traced by the commands from the
// default state.
func Sweep(commands []any) ([]math32.Matrix4, error) {
	st, err := Run(nil, commands)
	if err != nil {
		return nil, err
	}
	return st.Sweep(), nil
}
