// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import "cogentcore.org/turtle/math32"

// numberOr returns the command's number, or def if none was given.
func (c *Command) numberOr(def float32) float32 {
	if c.HasNumber {
		return c.Number
	}
	return def
}

// forward returns the local translation by d along the heading.
func forward(d float32) math32.Matrix4 {
	return math32.Translate3D(d, 0, 0)
}

// move runs the linear motion commands.
func move(st *State, c *Command) *Error {
	last := st.Last()
	pos := last.TranslationPart()
	switch c.Kind {
	case Move:
		st.addPath(last.Mul(forward(c.numberOr(1) * st.StepLength)))
	case XMove, YMove, ZMove:
		var v math32.Vector3
		v.SetDim(math32.Dims(c.Kind-XMove), c.numberOr(1)*st.StepLength)
		st.addPath(math32.TranslateVector3(v).Mul(last))
	case XYZMove:
		st.addPath(math32.TranslateVector3(c.Vector).Mul(last))
	case Jump:
		st.addPath(math32.TranslateVector3(c.Vector.Sub(pos)).Mul(last))
	case XJump, YJump, ZJump:
		var v math32.Vector3
		dim := math32.Dims(c.Kind - XJump)
		v.SetDim(dim, c.Number-pos.Dim(dim))
		st.addPath(math32.TranslateVector3(v).Mul(last))
	case UntilX, UntilY, UntilZ:
		dim := math32.Dims(c.Kind - UntilX)
		// the heading column is the world image of one local unit
		dir := last.Column(0).Dim(dim)
		delta := c.Number - pos.Dim(dim)
		if math32.Abs(dir) < math32.Tolerance {
			if math32.Abs(delta) > math32.Tolerance {
				return errorf(c.Index, c.Name(), "cannot reach %s=%v moving parallel to the plane", dim, c.Number)
			}
			st.addPath(last)
			return nil
		}
		d := delta / dir
		if d < -math32.Tolerance {
			return errorf(c.Index, c.Name(), "cannot reach %s=%v: it is behind the turtle", dim, c.Number)
		}
		st.addPath(last.Mul(forward(math32.Max(d, 0))))
	}
	return nil
}

// turn runs the relative and absolute turns and roll.
func turn(st *State, c *Command) {
	last := st.Last()
	a := math32.DegToRad(c.numberOr(st.TurnAngle))
	var next math32.Matrix4
	switch c.Kind {
	case Left:
		next = last.Mul(math32.RotateZ3D(a))
	case Right:
		next = last.Mul(math32.RotateZ3D(-a))
	case Up:
		next = last.Mul(math32.RotateY3D(-a))
	case Down:
		next = last.Mul(math32.RotateY3D(a))
	case Roll:
		next = last.Mul(math32.RotateX3D(a))
	case XRot:
		next = rotateInPlace(last, math32.RotateX3D(a))
	case YRot:
		next = rotateInPlace(last, math32.RotateY3D(a))
	case ZRot:
		next = rotateInPlace(last, math32.RotateZ3D(a))
	case Rot:
		next = rotateInPlace(last, c.Matrix.RotationPart())
	case SetDir:
		next = rotateInPlace(last, math32.RotateFromTo3D(last.Column(0), c.Vector))
	}
	st.addPath(next)
}

// rotateInPlace applies the world rotation r to the pose m while
// keeping its position.
func rotateInPlace(m, r math32.Matrix4) math32.Matrix4 {
	return math32.TranslateVector3(m.TranslationPart()).Mul(r).Mul(m.RotationPart())
}

// setParam runs the commands that only change state parameters.
func setParam(st *State, c *Command) {
	switch c.Kind {
	case Angle:
		st.TurnAngle = c.Number
	case Length:
		st.StepLength = c.Number
	case Scale:
		st.StepLength *= c.Number
	case AddLength:
		st.StepLength += c.Number
	case ArcSteps:
		st.ArcSteps = c.Count
	}
}
