// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/turtle/base/errors"
	"github.com/mattn/go-shellwords"
)

// Parse parses a flat command string such as
//
//	length 2
//	repeat 4 [move 5 [arc 1 left 90 twist 10]]
//	jump [1, 2, 3]  # comment
//
// into a command list. Words are split as in a shell, so names can be
// quoted; square brackets nest lists (vectors, matrices, repeat bodies
// and compound commands) and commas are optional separators. Integers
// become int, other numbers float64 and everything else string.
// Text after a # on a line is ignored.
func Parse(src string) ([]any, error) {
	var words []string
	for i, line := range strings.Split(src, "\n") {
		if c := strings.IndexByte(line, '#'); c >= 0 {
			line = line[:c]
		}
		if strings.ContainsAny(line, ";&|<>") {
			return nil, fmt.Errorf("program.Parse: line %d: unexpected shell operator", i+1)
		}
		ws, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("program.Parse: line %d: %w", i+1, err)
		}
		for _, w := range ws {
			words = append(words, splitBrackets(w)...)
		}
	}
	stack := [][]any{{}}
	for _, w := range words {
		switch w {
		case "[":
			stack = append(stack, []any{})
		case "]":
			if len(stack) == 1 {
				return nil, errors.New("program.Parse: unbalanced ]")
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = append(stack[len(stack)-1], top)
		default:
			stack[len(stack)-1] = append(stack[len(stack)-1], token(w))
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("program.Parse: %d unclosed [", len(stack)-1)
	}
	return stack[0], nil
}

// splitBrackets splits a shell word into brackets and the text
// between them, dropping commas.
func splitBrackets(w string) []string {
	var ws []string
	start := 0
	for i, r := range w {
		if r != '[' && r != ']' && r != ',' {
			continue
		}
		if i > start {
			ws = append(ws, w[start:i])
		}
		if r != ',' {
			ws = append(ws, string(r))
		}
		start = i + 1
	}
	if start < len(w) {
		ws = append(ws, w[start:])
	}
	return ws
}

func token(w string) any {
	if n, err := strconv.Atoi(w); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(w, 64); err == nil {
		return f
	}
	return w
}
