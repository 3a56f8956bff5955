// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// and vectors with tolerance.
package tolassert

import (
	"fmt"

	"cogentcore.org/turtle/math32"
	"github.com/stretchr/testify/assert"
)

// Float is the set of float types accepted by [EqualTol].
type Float interface {
	~float32 | ~float64
}

// EqualTol asserts that the given two float values are equal
// within the given tolerance.
func EqualTol[T Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, expected, actual, float64(tolerance), msgAndArgs...)
}

// EqualTolVector3 asserts that the given two vectors are equal
// component-wise within the given tolerance.
func EqualTolVector3(t assert.TestingT, expected, actual math32.Vector3, tolerance float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if expected.IsApprox(actual, tolerance) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Not equal within tolerance %v:\nexpected: %v\nactual  : %v", tolerance, expected, actual), msgAndArgs...)
}

// EqualTolMatrix4 asserts that the given two matrices are equal
// element-wise within the given tolerance.
func EqualTolMatrix4(t assert.TestingT, expected, actual math32.Matrix4, tolerance float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDeltaSlice(t, expected[:], actual[:], float64(tolerance), msgAndArgs...)
}
