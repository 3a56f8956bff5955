// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit turtle functionality.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is 4x4 matrix organized internally as column matrix.
// Element m[c*4+r] is at column c, row r. Affine matrices keep the
// translation in the last column (m[12], m[13], m[14]).
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromRows returns a matrix from its rows, as matrices are
// usually written out.
func Matrix4FromRows(rows [4][4]float32) Matrix4 {
	var m Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[c*4+r] = rows[r][c]
		}
	}
	return m
}

// Matrix4FromColumns returns an affine matrix whose rotation/scale
// block has the given x, y, z columns and whose translation is pos.
func Matrix4FromColumns(x, y, z, pos Vector3) Matrix4 {
	return Matrix4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		pos.X, pos.Y, pos.Z, 1,
	}
}

// Translate3D returns a translation matrix.
func Translate3D(x, y, z float32) Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// TranslateVector3 returns a translation matrix for the given offset.
func TranslateVector3(v Vector3) Matrix4 {
	return Translate3D(v.X, v.Y, v.Z)
}

// Scale3D returns a scaling matrix.
func Scale3D(x, y, z float32) Matrix4 {
	return Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateX3D returns a rotation matrix about the X axis by the given
// angle in radians.
func RotateX3D(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Matrix4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY3D returns a rotation matrix about the Y axis by the given
// angle in radians.
func RotateY3D(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ3D returns a rotation matrix about the Z axis by the given
// angle in radians.
func RotateZ3D(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Matrix4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateAxis3D returns a rotation matrix about the given axis by the
// given angle in radians. The axis must be normalized.
func RotateAxis3D(axis Vector3, angle float32) Matrix4 {
	// http://www.gamedev.net/reference/articles/article1199.asp
	s, c := Sincos(angle)
	t := 1 - c
	x := axis.X
	y := axis.Y
	z := axis.Z
	tx := t * x
	ty := t * y
	return Matrix4{
		tx*x + c, tx*y + s*z, tx*z - s*y, 0,
		tx*y - s*z, ty*y + c, ty*z + s*x, 0,
		tx*z + s*y, ty*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// RotateAbout3D returns the rotation by angle (radians) about the line
// through center with the given normalized axis direction.
func RotateAbout3D(center, axis Vector3, angle float32) Matrix4 {
	r := RotateAxis3D(axis, angle)
	return TranslateVector3(center).Mul(r).Mul(TranslateVector3(center.Negate()))
}

// RotateQuat3D returns the rotation matrix for the given quaternion,
// which must be normalized.
func RotateQuat3D(q Quat) Matrix4 {
	x := q.X
	y := q.Y
	z := q.Z
	w := q.W
	x2 := x + x
	y2 := y + y
	z2 := z + z
	xx := x * x2
	xy := x * y2
	xz := x * z2
	yy := y * y2
	yz := y * z2
	zz := z * z2
	wx := w * x2
	wy := w * y2
	wz := w * z2
	return Matrix4{
		1 - (yy + zz), xy + wz, xz - wy, 0,
		xy - wz, 1 - (xx + zz), yz + wx, 0,
		xz + wy, yz - wx, 1 - (xx + yy), 0,
		0, 0, 0, 1,
	}
}

// RotateFromTo3D returns the minimal rotation taking the direction
// from to the direction to. Neither vector needs to be normalized,
// but both must be nonzero.
func RotateFromTo3D(from, to Vector3) Matrix4 {
	return RotateQuat3D(NewQuatUnitVectors(from.Normal(), to.Normal()))
}

func (m Matrix4) String() string {
	var b strings.Builder
	b.WriteString("[")
	for r := 0; r < 4; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "[%v, %v, %v, %v]", m[r], m[4+r], m[8+r], m[12+r])
	}
	b.WriteString("]")
	return b.String()
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// Rows returns the matrix as rows, as matrices are usually written out.
func (m Matrix4) Rows() [4][4]float32 {
	var rows [4][4]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			rows[r][c] = m[c*4+r]
		}
	}
	return rows
}

// Column returns the first three components of the given column.
// Columns 0-2 of an affine matrix are its transformed axes and
// column 3 is its translation.
func (m Matrix4) Column(col int) Vector3 {
	return Vec3(m[col*4], m[col*4+1], m[col*4+2])
}

// Mul returns this matrix multiplied by other (m * other), so that
// other is applied first when transforming points.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	a := &m
	b := &other
	var r Matrix4
	for c := 0; c < 4; c++ {
		b0 := b[c*4]
		b1 := b[c*4+1]
		b2 := b[c*4+2]
		b3 := b[c*4+3]
		r[c*4] = a[0]*b0 + a[4]*b1 + a[8]*b2 + a[12]*b3
		r[c*4+1] = a[1]*b0 + a[5]*b1 + a[9]*b2 + a[13]*b3
		r[c*4+2] = a[2]*b0 + a[6]*b1 + a[10]*b2 + a[14]*b3
		r[c*4+3] = a[3]*b0 + a[7]*b1 + a[11]*b2 + a[15]*b3
	}
	return r
}

// MulVector3AsPoint returns the given point transformed by this matrix.
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return v.MulMatrix4(m)
}

// MulVector3AsVector returns the given direction transformed by this
// matrix, ignoring the translation.
func (m Matrix4) MulVector3AsVector(v Vector3) Vector3 {
	return v.MulMatrix4AsVector(m)
}

// TranslationPart returns the translation (last column) of this
// affine matrix.
func (m Matrix4) TranslationPart() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// RotationPart returns the rotation/scale block of this matrix
// embedded in a 4x4 matrix with the translation zeroed.
func (m Matrix4) RotationPart() Matrix4 {
	r := m
	r[3], r[7], r[11] = 0, 0, 0
	r[12], r[13], r[14] = 0, 0, 0
	r[15] = 1
	return r
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	var t Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[r*4+c] = m[c*4+r]
		}
	}
	return t
}

// Determinant3 returns the determinant of the 3x3 rotation/scale block.
func (m Matrix4) Determinant3() float32 {
	return m.Column(0).Dot(m.Column(1).Cross(m.Column(2)))
}

// ScaleFactors returns the lengths of the three axis columns,
// which are the scale factors of an affine rotation/scale matrix.
func (m Matrix4) ScaleFactors() Vector3 {
	return Vec3(m.Column(0).Length(), m.Column(1).Length(), m.Column(2).Length())
}

// IsAffine returns whether the bottom row is (0, 0, 0, 1).
func (m Matrix4) IsAffine() bool {
	return m[3] == 0 && m[7] == 0 && m[11] == 0 && m[15] == 1
}

// IsRotation returns whether the 3x3 block is orthonormal with
// determinant 1, within the given tolerance.
func (m Matrix4) IsRotation(tol float32) bool {
	x, y, z := m.Column(0), m.Column(1), m.Column(2)
	return ApproxEqual(x.Length(), 1, tol) && ApproxEqual(y.Length(), 1, tol) &&
		ApproxEqual(z.Length(), 1, tol) && ApproxEqual(x.Dot(y), 0, tol) &&
		ApproxEqual(y.Dot(z), 0, tol) && ApproxEqual(x.Dot(z), 0, tol) &&
		ApproxEqual(m.Determinant3(), 1, tol)
}

// IsApprox returns whether every element is within tol of the
// corresponding element of other.
func (m Matrix4) IsApprox(other Matrix4, tol float32) bool {
	for i := range m {
		if !ApproxEqual(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

// AxisAngle decomposes the rotation block of this matrix into a
// normalized axis (X, Y, Z) and an angle in radians in [0, Pi] (W).
// Any scale in the axis columns is removed first.
func (m Matrix4) AxisAngle() Vector4 {
	r := Matrix4FromColumns(m.Column(0).Normal(), m.Column(1).Normal(), m.Column(2).Normal(), Vector3{})
	return NewQuatRotationMatrix(r).ToAxisAngle()
}

// Inverse returns the inverse of this affine matrix. A singular
// rotation/scale block yields the identity matrix.
func (m Matrix4) Inverse() Matrix4 {
	x, y, z := m.Column(0), m.Column(1), m.Column(2)
	det := m.Determinant3()
	if det == 0 {
		return Identity4()
	}
	// rows of the inverse 3x3 block are the cross products of the columns
	r0 := y.Cross(z).DivScalar(det)
	r1 := z.Cross(x).DivScalar(det)
	r2 := x.Cross(y).DivScalar(det)
	inv := Matrix4FromRows([4][4]float32{
		{r0.X, r0.Y, r0.Z, 0},
		{r1.X, r1.Y, r1.Z, 0},
		{r2.X, r2.Y, r2.Z, 0},
		{0, 0, 0, 1},
	})
	t := inv.MulVector3AsVector(m.TranslationPart()).Negate()
	inv[12], inv[13], inv[14] = t.X, t.Y, t.Z
	return inv
}
