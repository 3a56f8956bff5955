// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import "fmt"

// Kinds are the kinds of turtle commands. A command list is decoded
// into [Command] values tagged with one of these before it is run.
type Kinds int32

const (
	// Move moves forward along the heading by the argument times the step length.
	Move Kinds = iota

	// XMove moves along the world X axis by the argument times the step length.
	XMove

	// YMove moves along the world Y axis by the argument times the step length.
	YMove

	// ZMove moves along the world Z axis by the argument times the step length.
	ZMove

	// XYZMove moves by the given world-space 3-vector.
	XYZMove

	// Jump moves to the given absolute world position.
	Jump

	// XJump moves to the given absolute X coordinate.
	XJump

	// YJump moves to the given absolute Y coordinate.
	YJump

	// ZJump moves to the given absolute Z coordinate.
	ZJump

	// UntilX moves forward until the X coordinate equals the argument.
	UntilX

	// UntilY moves forward until the Y coordinate equals the argument.
	UntilY

	// UntilZ moves forward until the Z coordinate equals the argument.
	UntilZ

	// Left turns left about the turtle's up axis.
	Left

	// Right turns right about the turtle's up axis.
	Right

	// Up tilts the heading up about the turtle's left axis.
	Up

	// Down tilts the heading down about the turtle's left axis.
	Down

	// XRot rotates about the world X axis, keeping the position.
	XRot

	// YRot rotates about the world Y axis, keeping the position.
	YRot

	// ZRot rotates about the world Z axis, keeping the position.
	ZRot

	// Rot applies a world-space rotation matrix, keeping the position.
	Rot

	// SetDir turns the heading to the given direction by the minimal rotation.
	SetDir

	// Roll rotates about the heading.
	Roll

	// Angle sets the default turn angle.
	Angle

	// Length sets the step length.
	Length

	// Scale multiplies the step length.
	Scale

	// AddLength adds to the step length.
	AddLength

	// ArcSteps sets the number of sub-steps used for arcs.
	ArcSteps

	// ArcLeft traces an arc turning left.
	ArcLeft

	// ArcRight traces an arc turning right.
	ArcRight

	// ArcUp traces an arc tilting up.
	ArcUp

	// ArcDown traces an arc tilting down.
	ArcDown

	// ArcXRot traces an arc rotating about the world X axis.
	ArcXRot

	// ArcYRot traces an arc rotating about the world Y axis.
	ArcYRot

	// ArcZRot traces an arc rotating about the world Z axis.
	ArcZRot

	// ArcToDir traces an arc that ends heading in the given direction.
	ArcToDir

	// ArcRot traces an arc that applies the given world rotation.
	ArcRot

	// Repeat runs a nested command list the given number of times.
	Repeat

	// CompoundMove is a list-valued move with cross-section effects.
	CompoundMove

	// CompoundArc is a list-valued arc with cross-section effects.
	CompoundArc

	// KindsN is the number of command kinds.
	KindsN
)

// argClasses describe how many arguments a command takes and of what type.
type argClasses int32

const (
	// number or nothing
	argOptNumber argClasses = iota
	argNumber
	argPosInt
	argVector
	argMatrix

	// radius and optional angle
	argArc
	argArcVector
	argArcMatrix
	argRepeat
	argCompound
)

type kindInfo struct {
	name string
	desc string
	args argClasses
}

var kinds = [KindsN]kindInfo{
	Move:         {"move", "move forward by the argument (default 1) times the step length", argOptNumber},
	XMove:        {"xmove", "move along the world X axis by the argument (default 1) times the step length", argOptNumber},
	YMove:        {"ymove", "move along the world Y axis by the argument (default 1) times the step length", argOptNumber},
	ZMove:        {"zmove", "move along the world Z axis by the argument (default 1) times the step length", argOptNumber},
	XYZMove:      {"xyzmove", "move by the given world-space 3-vector", argVector},
	Jump:         {"jump", "move to the given absolute position", argVector},
	XJump:        {"xjump", "move to the given absolute X coordinate", argNumber},
	YJump:        {"yjump", "move to the given absolute Y coordinate", argNumber},
	ZJump:        {"zjump", "move to the given absolute Z coordinate", argNumber},
	UntilX:       {"untilx", "move forward until X equals the argument", argNumber},
	UntilY:       {"untily", "move forward until Y equals the argument", argNumber},
	UntilZ:       {"untilz", "move forward until Z equals the argument", argNumber},
	Left:         {"left", "turn left by the argument (default turn angle)", argOptNumber},
	Right:        {"right", "turn right by the argument (default turn angle)", argOptNumber},
	Up:           {"up", "tilt up by the argument (default turn angle)", argOptNumber},
	Down:         {"down", "tilt down by the argument (default turn angle)", argOptNumber},
	XRot:         {"xrot", "rotate about the world X axis (default turn angle)", argOptNumber},
	YRot:         {"yrot", "rotate about the world Y axis (default turn angle)", argOptNumber},
	ZRot:         {"zrot", "rotate about the world Z axis (default turn angle)", argOptNumber},
	Rot:          {"rot", "apply a world-space rotation matrix at the current position", argMatrix},
	SetDir:       {"setdir", "turn to head in the given direction", argVector},
	Roll:         {"roll", "roll about the heading by the argument (default turn angle)", argOptNumber},
	Angle:        {"angle", "set the default turn angle (nonzero)", argNumber},
	Length:       {"length", "set the step length", argNumber},
	Scale:        {"scale", "multiply the step length", argNumber},
	AddLength:    {"addlength", "add to the step length", argNumber},
	ArcSteps:     {"arcsteps", "set the number of arc sub-steps (positive integer)", argPosInt},
	ArcLeft:      {"arcleft", "arc left with the given radius and optional angle", argArc},
	ArcRight:     {"arcright", "arc right with the given radius and optional angle", argArc},
	ArcUp:        {"arcup", "arc up with the given radius and optional angle", argArc},
	ArcDown:      {"arcdown", "arc down with the given radius and optional angle", argArc},
	ArcXRot:      {"arcxrot", "arc about the world X axis with the given radius and optional angle", argArc},
	ArcYRot:      {"arcyrot", "arc about the world Y axis with the given radius and optional angle", argArc},
	ArcZRot:      {"arczrot", "arc about the world Z axis with the given radius and optional angle", argArc},
	ArcToDir:     {"arctodir", "arc with the given radius until heading in the given direction", argArcVector},
	ArcRot:       {"arcrot", "arc with the given radius through the given world rotation", argArcMatrix},
	Repeat:       {"repeat", "run the given command list the given number of times", argRepeat},
	CompoundMove: {"[move ...]", "move with twist, grow, shrink, roll, reverse and steps options", argCompound},
	CompoundArc:  {"[arc ...]", "arc with direction, twist, grow, shrink, roll, reverse and steps options", argCompound},
}

// kindsByName maps atomic command names to their kinds.
var kindsByName = func() map[string]Kinds {
	m := make(map[string]Kinds, KindsN)
	for k := Move; k < KindsN; k++ {
		if kinds[k].args != argCompound {
			m[kinds[k].name] = k
		}
	}
	return m
}()

// String returns the command name of the kind.
func (k Kinds) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kinds[k].name
}

// Desc returns a description of what commands of this kind do.
func (k Kinds) Desc() string {
	if !k.IsValid() {
		return ""
	}
	return kinds[k].desc
}

// IsValid returns whether the value is a valid kind.
func (k Kinds) IsValid() bool {
	return k >= 0 && k < KindsN
}

// IsArc returns whether commands of this kind trace an arc.
func (k Kinds) IsArc() bool {
	return (k >= ArcLeft && k <= ArcRot) || k == CompoundArc
}

// KindsValues returns all possible values for the type Kinds.
func KindsValues() []Kinds {
	vals := make([]Kinds, KindsN)
	for i := range vals {
		vals[i] = Kinds(i)
	}
	return vals
}

// KindByName returns the kind of the atomic command with the given name.
func KindByName(name string) (Kinds, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Names returns the names of all atomic commands.
func Names() []string {
	names := make([]string, 0, len(kindsByName))
	for k := Move; k < KindsN; k++ {
		if kinds[k].args != argCompound {
			names = append(names, kinds[k].name)
		}
	}
	return names
}
