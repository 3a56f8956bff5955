// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import "cogentcore.org/turtle/math32"

// compoundMove runs a ["move" ...] command.
func (t *Turtle) compoundMove(st *State, c *Command) *Error {
	cp := c.Compound
	last, shape := st.Last(), st.LastShape()
	d := st.StepLength
	if cp.HasLength {
		d *= cp.Length
	}
	fx, msg := cp.effects(last)
	if msg != "" {
		return errorf(c.Index, c.Name(), "%s", msg)
	}
	steps := max(cp.Steps, 1)
	for i := 1; i <= steps; i++ {
		f := float32(i) / float32(steps)
		st.add(last.Mul(forward(f*d)).Mul(fx.rollAt(f)), fx.shape(shape, f))
	}
	return nil
}

// compoundArc runs an ["arc" ...] command.
func (t *Turtle) compoundArc(st *State, c *Command) *Error {
	cp := c.Compound
	last := st.Last()
	r := cp.Radius * st.StepLength
	var axis math32.Vector3
	var angle float32
	switch {
	case cp.HasToDir:
		var msg string
		if axis, angle, msg = toDirRotation(last, cp.ToDir); msg != "" {
			return errorf(c.Index, c.Name(), "%s", msg)
		}
	case cp.HasToRot:
		axis, angle = matrixRotation(cp.ToRot)
	default:
		var msg string
		if axis, angle, msg = cp.turnRotation(last, st.TurnAngle); msg != "" {
			return errorf(c.Index, c.Name(), "%s", msg)
		}
	}
	a, msg := planArc(last, axis, angle, r)
	if msg != "" {
		return errorf(c.Index, c.Name(), "%s", msg)
	}
	fx, msg := cp.effects(a.rotation(1).Mul(last))
	if msg != "" {
		return errorf(c.Index, c.Name(), "%s", msg)
	}
	traceArc(st, a, t.arcSteps(st, cp.Steps, r, angle), fx)
	return nil
}

// turnRotation returns the world axis and angle in degrees of the
// left/right and up/down turns of an arc from the pose last.
// Turns without an explicit angle use the default turn angle.
func (cp *Compound) turnRotation(last math32.Matrix4, def float32) (math32.Vector3, float32, string) {
	turn, tilt := def, def
	if cp.HasTurnAngle {
		turn = cp.TurnAngle
	}
	if cp.HasTiltAngle {
		tilt = cp.TiltAngle
	}
	turn *= cp.TurnSign
	tilt *= cp.TiltSign
	switch {
	case cp.TiltSign == 0:
		return last.Column(2), turn, ""
	case cp.TurnSign == 0:
		return last.Column(1), -tilt, ""
	}
	if msg := checkMixed(turn, tilt); msg != "" {
		return math32.Vector3{}, 0, msg
	}
	local := math32.RotateZ3D(math32.DegToRad(turn)).Mul(math32.RotateY3D(math32.DegToRad(-tilt)))
	aa := local.AxisAngle()
	return last.MulVector3AsVector(aa.Vector3()), math32.RadToDeg(aa.W), ""
}

// effects returns the cross-section and roll effects of the command,
// resolving any roll target against the final pose of the motion.
func (cp *Compound) effects(final math32.Matrix4) (effects, string) {
	fx := effects{twist: cp.Twist, grow: cp.Grow, mirror: cp.Reverse}
	switch cp.RollMode {
	case RollBy:
		fx.roll = cp.Roll
	case RollTo, LeftRollTo, RightRollTo:
		roll, msg := rollToAngle(final, cp.RollTarget, cp.RollMode)
		if msg != "" {
			return fx, msg
		}
		fx.roll = roll
	}
	return fx, ""
}

// rollToAngle returns the roll in degrees about the heading of pose
// that turns its up axis toward target. [RollTo] picks the shortest
// roll, with ties going to +180. [LeftRollTo] returns an angle in
// (-360, 0] and [RightRollTo] one in [0, 360).
func rollToAngle(pose math32.Matrix4, target math32.Vector3, mode RollModes) (float32, string) {
	h := pose.Column(0).Normal()
	u := pose.Column(2).Normal()
	p := target.Normal().ProjectOnPlane(h)
	if p.Length() < 1e-4 {
		return 0, "roll target is parallel to the final heading"
	}
	p = p.Normal()
	theta := math32.RadToDeg(math32.Atan2(u.Cross(p).Dot(h), u.Dot(p)))
	const tol = 1e-3
	switch mode {
	case RollTo:
		if math32.ApproxEqual(math32.Abs(theta), 180, tol) {
			theta = 180
		}
	case LeftRollTo:
		if theta > tol {
			theta -= 360
		} else if theta > 0 {
			theta = 0
		}
	case RightRollTo:
		if theta < -tol {
			theta += 360
		} else if theta < 0 {
			theta = 0
		}
	}
	return theta, ""
}
