// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import (
	"fmt"
	"strconv"
	"strings"
)

// Error is a command validation failure. Any Error aborts the whole
// run; no partial state is returned with it.
type Error struct {
	// Path holds the index of the failing command in its list, preceded
	// by the indices of any enclosing repeat commands, outermost first.
	Path []int

	// Command is the name of the failing command.
	Command string

	// Msg describes the violated precondition.
	Msg string
}

// Index returns the index of the failing command in the top-level list.
func (e *Error) Index() int {
	if len(e.Path) == 0 {
		return -1
	}
	return e.Path[0]
}

func (e *Error) Error() string {
	ps := make([]string, len(e.Path))
	for i, p := range e.Path {
		ps[i] = strconv.Itoa(p)
	}
	return fmt.Sprintf("turtle: %q at index %s: %s", e.Command, strings.Join(ps, "."), e.Msg)
}

// errorf returns a new [*Error] for the command at the given index.
func errorf(index int, command string, format string, args ...any) *Error {
	return &Error{Path: []int{index}, Command: command, Msg: fmt.Sprintf(format, args...)}
}

// nest prefixes the error's path with the given enclosing indices.
func (e *Error) nest(prefix []int) *Error {
	if len(prefix) == 0 {
		return e
	}
	p := make([]int, 0, len(prefix)+len(e.Path))
	p = append(p, prefix...)
	e.Path = append(p, e.Path...)
	return e
}
