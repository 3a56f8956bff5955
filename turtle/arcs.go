// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import "cogentcore.org/turtle/math32"

// arcSweep is a resolved arc: the pose is rotated by Angle degrees
// about the world Axis through Center.
type arcSweep struct {
	Center math32.Vector3
	Axis   math32.Vector3
	Angle  float32
	Radius float32
}

// effects are the cross-section and roll changes distributed over
// the sub-steps of a compound motion.
type effects struct {
	twist float32
	grow  math32.Vector2
	roll  float32

	// mirror flips the cross-section across its local X axis,
	// reversing its winding.
	mirror bool
}

func noEffects() effects {
	return effects{grow: math32.Vector2Scalar(1)}
}

// shape returns the cross-section transform at fraction f of the motion.
func (fx *effects) shape(start math32.Matrix4, f float32) math32.Matrix4 {
	g := math32.Vector2Scalar(1).Lerp(fx.grow, f)
	if fx.mirror {
		g.Y = -g.Y
	}
	return start.Mul(math32.RotateZ3D(math32.DegToRad(f * fx.twist))).Mul(math32.Scale3D(g.X, g.Y, 1))
}

// rollAt returns the roll applied at fraction f of the motion.
func (fx *effects) rollAt(f float32) math32.Matrix4 {
	return math32.RotateX3D(math32.DegToRad(f * fx.roll))
}

// planArc resolves an arc of radius r turning the pose last by angle
// degrees about the world axis. The center lies in the direction
// axis × heading, on the side the heading turns toward. It returns a
// message when the arc is degenerate.
func planArc(last math32.Matrix4, axis math32.Vector3, angle, r float32) (arcSweep, string) {
	if math32.Abs(angle) < math32.Tolerance {
		return arcSweep{}, "zero sweep angle"
	}
	axis = axis.Normal()
	h := last.Column(0).Normal()
	n := axis.Cross(h)
	if n.Length() < 1e-4 {
		return arcSweep{}, "rotation acts as twist: its axis is parallel to the heading"
	}
	center := last.TranslationPart().Add(n.Normal().MulScalar(r * math32.Sign(angle)))
	return arcSweep{Center: center, Axis: axis, Angle: angle, Radius: r}, ""
}

// rotation returns the world rotation about the arc center at
// fraction f of the sweep.
func (a *arcSweep) rotation(f float32) math32.Matrix4 {
	return math32.RotateAbout3D(a.Center, a.Axis, math32.DegToRad(f*a.Angle))
}

// arcSteps returns the number of sub-steps for an arc: an explicit
// count if positive, else the state setting, else the facet rule.
func (t *Turtle) arcSteps(st *State, explicit int, r, angle float32) int {
	switch {
	case explicit > 0:
		return explicit
	case st.ArcSteps > 0:
		return st.ArcSteps
	}
	return t.Facets.ArcSteps(math32.Abs(r), angle)
}

// traceArc appends the sub-steps of the arc with the given effects.
func traceArc(st *State, a arcSweep, steps int, fx effects) {
	last, shape := st.Last(), st.LastShape()
	for i := 1; i <= steps; i++ {
		f := float32(i) / float32(steps)
		st.add(a.rotation(f).Mul(last).Mul(fx.rollAt(f)), fx.shape(shape, f))
	}
}

// toDirRotation returns the world axis and angle in degrees turning
// the heading of last to dir. An opposite dir turns about the up axis.
func toDirRotation(last math32.Matrix4, dir math32.Vector3) (math32.Vector3, float32, string) {
	h := last.Column(0).Normal()
	d := dir.Normal()
	ang := h.AngleTo(d)
	switch {
	case ang < 1e-4:
		return math32.Vector3{}, 0, "target direction equals the heading"
	case math32.Pi-ang < 1e-4:
		return last.Column(2), 180, ""
	}
	return h.Cross(d), math32.RadToDeg(ang), ""
}

// matrixRotation returns the world axis and angle in degrees of the
// rotation part of m.
func matrixRotation(m math32.Matrix4) (math32.Vector3, float32) {
	aa := m.AxisAngle()
	return aa.Vector3(), math32.RadToDeg(aa.W)
}

// arc runs the simple arc commands.
func (t *Turtle) arc(st *State, c *Command) *Error {
	last := st.Last()
	r := c.Number * st.StepLength
	angle := st.TurnAngle
	if c.HasAngle {
		angle = c.Angle
	}
	var axis math32.Vector3
	switch c.Kind {
	case ArcLeft:
		axis = last.Column(2)
	case ArcRight:
		axis, angle = last.Column(2), -angle
	case ArcUp:
		axis, angle = last.Column(1), -angle
	case ArcDown:
		axis = last.Column(1)
	case ArcXRot:
		axis = math32.Right
	case ArcYRot:
		axis = math32.Back
	case ArcZRot:
		axis = math32.Up
	case ArcToDir:
		var msg string
		if axis, angle, msg = toDirRotation(last, c.Vector); msg != "" {
			return errorf(c.Index, c.Name(), "%s", msg)
		}
	case ArcRot:
		axis, angle = matrixRotation(c.Matrix)
	}
	a, msg := planArc(last, axis, angle, r)
	if msg != "" {
		return errorf(c.Index, c.Name(), "%s", msg)
	}
	traceArc(st, a, t.arcSteps(st, 0, r, angle), noEffects())
	return nil
}
