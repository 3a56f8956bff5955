// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import (
	"reflect"

	"cogentcore.org/turtle/math32"
)

// isString returns whether the token is a string.
func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// isList returns whether the token is a list: any slice or array,
// or one of the math32 vector and matrix types.
func isList(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case math32.Vector2, math32.Vector3, math32.Matrix4:
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// toList returns the elements of a list token.
func toList(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case math32.Vector2:
		return []any{x.X, x.Y}, true
	case math32.Vector3:
		return []any{x.X, x.Y, x.Z}, true
	case math32.Matrix4:
		rows := x.Rows()
		return []any{rows[0][:], rows[1][:], rows[2][:], rows[3][:]}, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	l := make([]any, rv.Len())
	for i := range l {
		l[i] = rv.Index(i).Interface()
	}
	return l, true
}

// toNumber converts any finite Go numeric value to a float32.
// Booleans and strings are not numbers.
func toNumber(v any) (float32, bool) {
	switch x := v.(type) {
	case float32:
		return x, !math32.IsNaN(x) && !math32.IsInf(x, 0)
	case float64:
		f := float32(x)
		return f, !math32.IsNaN(f) && !math32.IsInf(f, 0)
	case int:
		return float32(x), true
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float32(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float32(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := float32(rv.Float())
		return f, !math32.IsNaN(f) && !math32.IsInf(f, 0)
	}
	return 0, false
}

// toInt converts an integral numeric value to an int.
func toInt(v any) (int, bool) {
	f, ok := toNumber(v)
	if !ok || f != math32.Floor(f) {
		return 0, false
	}
	return int(f), true
}

// toNumbers converts a list of exactly n numbers.
func toNumbers(v any, n int) ([]float32, bool) {
	l, ok := toList(v)
	if !ok || len(l) != n {
		return nil, false
	}
	fs := make([]float32, n)
	for i, e := range l {
		if fs[i], ok = toNumber(e); !ok {
			return nil, false
		}
	}
	return fs, true
}

// toVector3 converts a 3-vector token.
func toVector3(v any) (math32.Vector3, bool) {
	if x, ok := v.(math32.Vector3); ok {
		return x, true
	}
	fs, ok := toNumbers(v, 3)
	if !ok {
		return math32.Vector3{}, false
	}
	return math32.Vec3(fs[0], fs[1], fs[2]), true
}

// toScale converts a scale factor token: a number scales both
// cross-section axes, a 2-vector scales them separately.
func toScale(v any) (math32.Vector2, bool) {
	if f, ok := toNumber(v); ok {
		return math32.Vector2Scalar(f), true
	}
	if x, ok := v.(math32.Vector2); ok {
		return x, true
	}
	fs, ok := toNumbers(v, 2)
	if !ok {
		return math32.Vector2{}, false
	}
	return math32.Vec2(fs[0], fs[1]), true
}

// rotationTol is the tolerance for a matrix to count as a rotation,
// loose enough for rows written out to a few decimals.
const rotationTol = 1e-4

// toRotation converts a rotation token: a [math32.Matrix4], or a list
// of 4 rows of 4 numbers, or of 3 rows of 3 numbers. The matrix must
// be a proper rotation: affine, no translation, orthonormal columns
// and determinant +1.
func toRotation(v any) (math32.Matrix4, bool) {
	m, ok := toMatrix(v)
	if !ok || !m.IsRotation(rotationTol) || m.TranslationPart().Length() > rotationTol {
		return math32.Matrix4{}, false
	}
	return m.RotationPart(), true
}

// toMatrix converts a matrix token to an affine [math32.Matrix4].
func toMatrix(v any) (math32.Matrix4, bool) {
	if m, ok := v.(math32.Matrix4); ok {
		return m, m.IsAffine()
	}
	l, ok := toList(v)
	if !ok || (len(l) != 3 && len(l) != 4) {
		return math32.Matrix4{}, false
	}
	n := len(l)
	rows := [4][4]float32{3: {0, 0, 0, 1}}
	for r, e := range l {
		fs, ok := toNumbers(e, n)
		if !ok {
			return math32.Matrix4{}, false
		}
		copy(rows[r][:], fs)
	}
	m := math32.Matrix4FromRows(rows)
	return m, m.IsAffine()
}

// compoundHead returns the leading keyword of a compound command
// list, or "" if the token is not a list starting with a string.
func compoundHead(v any) string {
	l, ok := toList(v)
	if !ok || len(l) == 0 {
		return ""
	}
	s, _ := l[0].(string)
	return s
}
