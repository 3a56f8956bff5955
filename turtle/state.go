// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import (
	"fmt"

	"cogentcore.org/turtle/base/errors"
	"cogentcore.org/turtle/math32"
	"github.com/jinzhu/copier"
)

// State is the complete turtle interpreter state. It can be saved
// and later passed back to [Turtle.Run] to continue a path.
type State struct {

	// PathTransforms has one affine transform per traced sample,
	// starting with the initial pose. Each maps the turtle's local
	// frame (+X heading, +Y left, +Z up) to world space.
	PathTransforms []math32.Matrix4 `json:"path_transforms" yaml:"path_transforms" toml:"path_transforms"`

	// ShapeTransforms has the accumulated cross-section transform
	// (twist and scale) for each sample in PathTransforms.
	ShapeTransforms []math32.Matrix4 `json:"shape_transforms" yaml:"shape_transforms" toml:"shape_transforms"`

	// StepLength scales move distances and arc radii.
	StepLength float32 `json:"step_length" yaml:"step_length" toml:"step_length"`

	// TurnAngle is the default angle in degrees for turns.
	TurnAngle float32 `json:"turn_angle" yaml:"turn_angle" toml:"turn_angle"`

	// ArcSteps is the number of sub-steps for each arc;
	// 0 derives it from the facet settings.
	ArcSteps int `json:"arc_steps" yaml:"arc_steps" toml:"arc_steps"`
}

// initialShape stands a cross-section in the XY plane perpendicular
// to the +X heading.
func initialShape() math32.Matrix4 {
	return math32.RotateY3D(math32.DegToRad(90))
}

// NewState returns a new state with the turtle at the origin heading
// in the given direction. Its up axis is the part of world up
// perpendicular to the direction, or [math32.Fwd] for a vertical
// direction.
func NewState(dir math32.Vector3) (*State, error) {
	if dir.Length() < math32.Tolerance {
		return nil, errors.New("turtle: start direction must be nonzero")
	}
	x := dir.Normal()
	z := math32.Up.ProjectOnPlane(x)
	if z.Length() < math32.Tolerance {
		z = math32.Fwd
	}
	z = z.Normal()
	y := z.Cross(x)
	return NewStateTransform(math32.Matrix4FromColumns(x, y, z, math32.Vector3{})), nil
}

// DefaultState returns a new state with the turtle at the origin
// heading along +X with +Z up.
func DefaultState() *State {
	return NewStateTransform(math32.Identity4())
}

// NewStateTransform returns a new state whose initial pose is the
// given transform.
func NewStateTransform(m math32.Matrix4) *State {
	return &State{
		PathTransforms:  []math32.Matrix4{m},
		ShapeTransforms: []math32.Matrix4{initialShape()},
		StepLength:      1,
		TurnAngle:       90,
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	ns := &State{}
	if err := copier.CopyWithOption(ns, s, copier.Option{DeepCopy: true}); err != nil {
		panic(err) // only fails for mismatched types
	}
	return ns
}

// Validate returns an error if the state breaks an invariant: the
// transform lists must be nonempty with equal lengths and all
// transforms must be affine.
func (s *State) Validate() error {
	switch {
	case len(s.PathTransforms) == 0:
		return errors.New("turtle: state has no path transforms")
	case len(s.PathTransforms) != len(s.ShapeTransforms):
		return fmt.Errorf("turtle: state has %d path transforms but %d shape transforms", len(s.PathTransforms), len(s.ShapeTransforms))
	case s.TurnAngle == 0:
		return errors.New("turtle: state turn angle must be nonzero")
	case s.ArcSteps < 0:
		return fmt.Errorf("turtle: state arc steps must not be negative, got %d", s.ArcSteps)
	}
	for i, m := range s.PathTransforms {
		if !m.IsAffine() {
			return fmt.Errorf("turtle: path transform %d is not affine", i)
		}
	}
	for i, m := range s.ShapeTransforms {
		if !m.IsAffine() {
			return fmt.Errorf("turtle: shape transform %d is not affine", i)
		}
	}
	return nil
}

// Last returns the current pose.
func (s *State) Last() math32.Matrix4 {
	return s.PathTransforms[len(s.PathTransforms)-1]
}

// LastShape returns the current cross-section transform.
func (s *State) LastShape() math32.Matrix4 {
	return s.ShapeTransforms[len(s.ShapeTransforms)-1]
}

// Position returns the current position.
func (s *State) Position() math32.Vector3 {
	return s.Last().TranslationPart()
}

// Heading returns the current unit heading.
func (s *State) Heading() math32.Vector3 {
	return s.Last().Column(0).Normal()
}

// UpAxis returns the current unit up axis.
func (s *State) UpAxis() math32.Vector3 {
	return s.Last().Column(2).Normal()
}

// Len returns the number of samples.
func (s *State) Len() int {
	return len(s.PathTransforms)
}

// add appends a sample, keeping the two transform lists the same length.
func (s *State) add(path, shape math32.Matrix4) {
	s.PathTransforms = append(s.PathTransforms, path)
	s.ShapeTransforms = append(s.ShapeTransforms, shape)
}

// addPath appends a pose that keeps the current cross-section.
func (s *State) addPath(path math32.Matrix4) {
	s.add(path, s.LastShape())
}
