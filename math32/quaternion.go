// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit turtle functionality.

package math32

import "fmt"

// Quat is quaternion with X,Y,Z and W components.
// Turtle code uses it as the bridge between rotation matrices
// and axis/angle pairs.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatIdentity returns the identity quaternion.
func NewQuatIdentity() Quat {
	return Quat{W: 1}
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
// The axis must be normalized.
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	nq := Quat{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

// NewQuatRotationMatrix returns a new quaternion from the rotation
// block of the given matrix, which must be a pure rotation.
func NewQuatRotationMatrix(m Matrix4) Quat {
	nq := Quat{}
	nq.SetFromRotationMatrix(m)
	return nq
}

// NewQuatUnitVectors returns the minimal rotation taking vFrom to vTo.
// The vectors must be normalized.
func NewQuatUnitVectors(vFrom, vTo Vector3) Quat {
	nq := Quat{}
	nq.SetFromUnitVectors(vFrom, vTo)
	return nq
}

func (q Quat) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	s, c := Sincos(angle / 2)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = c
}

// ToAxisAngle returns the Vector4 holding the axis (X, Y, Z) and
// angle (W, radians) of this quaternion. The angle is in [0, Pi]:
// the quaternion is flipped to its positive-W twin first.
func (q Quat) ToAxisAngle() Vector4 {
	if q.W < 0 {
		q = Quat{-q.X, -q.Y, -q.Z, -q.W}
	}
	aa := Vector4{}
	aa.SetAxisAngleFromQuat(q)
	return aa
}

// SetFromRotationMatrix sets this quaternion from the specified rotation matrix.
func (q *Quat) SetFromRotationMatrix(m Matrix4) {
	m11 := m[0]
	m12 := m[4]
	m13 := m[8]
	m21 := m[1]
	m22 := m[5]
	m23 := m[9]
	m31 := m[2]
	m32 := m[6]
	m33 := m[10]
	trace := m11 + m22 + m33

	var s float32
	if trace > 0 {
		s = 0.5 / Sqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	} else if m11 > m22 && m11 > m33 {
		s = 2.0 * Sqrt(1.0+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	} else if m22 > m33 {
		s = 2.0 * Sqrt(1.0+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	} else {
		s = 2.0 * Sqrt(1.0+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
	q.Normalize()
}

// SetFromUnitVectors sets this quaternion to the rotation from vector vFrom to vTo.
// The vectors must be normalized. Opposite vectors rotate by Pi about
// an arbitrary perpendicular axis.
func (q *Quat) SetFromUnitVectors(vFrom, vTo Vector3) {
	var v1 Vector3
	const eps float32 = 0.000001

	r := vFrom.Dot(vTo) + 1
	if r < eps {
		r = 0
		if Abs(vFrom.X) > Abs(vFrom.Z) {
			v1.Set(-vFrom.Y, vFrom.X, 0)
		} else {
			v1.Set(0, -vFrom.Z, vFrom.Y)
		}
	} else {
		v1 = vFrom.Cross(vTo)
	}
	q.X = v1.X
	q.Y = v1.Y
	q.Z = v1.Z
	q.W = r

	q.Normalize()
}

// Conjugate returns the conjugate of this quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Dot returns the dot products of this quaternion with other.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Length returns the length of this quaternion
func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize normalizes this quaternion.
func (q *Quat) Normalize() {
	l := q.Length()
	if l == 0 {
		q.X = 0
		q.Y = 0
		q.Z = 0
		q.W = 1
	} else {
		l = 1 / l
		q.X *= l
		q.Y *= l
		q.Z *= l
		q.W *= l
	}
}

// Mul returns the multiplication of this quaternion with other
// (rotation by other first, then by q).
func (q Quat) Mul(other Quat) Quat {
	// from http://www.euclideanspace.com/maths/algebra/realNormedAlgebra/quaternions/code/index.htm
	return Quat{
		X: q.X*other.W + q.W*other.X + q.Y*other.Z - q.Z*other.Y,
		Y: q.Y*other.W + q.W*other.Y + q.Z*other.X - q.X*other.Z,
		Z: q.Z*other.W + q.W*other.Z + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// MulVector3 returns the vector v rotated by this quaternion.
func (q Quat) MulVector3(v Vector3) Vector3 {
	// calculate quat * vector
	ix := q.W*v.X + q.Y*v.Z - q.Z*v.Y
	iy := q.W*v.Y + q.Z*v.X - q.X*v.Z
	iz := q.W*v.Z + q.X*v.Y - q.Y*v.X
	iw := -q.X*v.X - q.Y*v.Y - q.Z*v.Z
	// calculate result * inverse quat
	return Vector3{
		X: ix*q.W + iw*-q.X + iy*-q.Z - iz*-q.Y,
		Y: iy*q.W + iw*-q.Y + iz*-q.X - ix*-q.Z,
		Z: iz*q.W + iw*-q.Z + ix*-q.Y - iy*-q.X,
	}
}

// IsEqual returns if this quaternion is equal to other.
func (q Quat) IsEqual(other Quat) bool {
	return (other.X == q.X) && (other.Y == q.Y) && (other.Z == q.Z) && (other.W == q.W)
}
