// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtle

import (
	"fmt"

	"cogentcore.org/turtle/math32"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Command is one decoded, validated turtle command.
type Command struct {

	// Kind is the kind of command, which determines which of the
	// other fields are meaningful.
	Kind Kinds

	// Index is the index of the command name in its command list.
	Index int

	// Number is the first numeric argument: the distance, angle,
	// coordinate, radius or parameter value.
	Number float32

	// HasNumber is whether Number was given. Commands with an optional
	// argument use a default when it was not.
	HasNumber bool

	// Angle is the optional sweep angle of a simple arc.
	Angle float32

	// HasAngle is whether Angle was given.
	HasAngle bool

	// Vector is the 3-vector argument of xyzmove, jump, setdir and arctodir.
	Vector math32.Vector3

	// Matrix is the transform argument of rot and arcrot.
	Matrix math32.Matrix4

	// Count is the repeat count or the arcsteps value.
	Count int

	// Body is the decoded body of a repeat command.
	Body []Command

	// Compound holds the options of a compound command.
	Compound *Compound
}

// Name returns the command name used in errors.
func (c *Command) Name() string {
	switch c.Kind {
	case CompoundMove:
		return "[move]"
	case CompoundArc:
		return "[arc]"
	}
	return c.Kind.String()
}

// RollModes are the ways a compound command can roll the turtle.
type RollModes int32

const (
	// NoRoll does not roll.
	NoRoll RollModes = iota

	// RollBy rolls by a fixed angle.
	RollBy

	// RollTo rolls by the shortest angle that points the up axis
	// toward a target direction.
	RollTo

	// LeftRollTo rolls leftwards until the up axis points toward a
	// target direction.
	LeftRollTo

	// RightRollTo rolls rightwards until the up axis points toward a
	// target direction.
	RightRollTo
)

// Compound holds the options of a list-valued move or arc command.
type Compound struct {

	// Length is the optional move length in steps.
	Length float32

	// HasLength is whether Length was given; the default is 1.
	HasLength bool

	// Radius is the arc radius in steps.
	Radius float32

	// TurnSign is 1 for left, -1 for right, and 0 when neither was given.
	TurnSign float32

	// TurnAngle is the left/right angle, valid when HasTurnAngle.
	TurnAngle float32

	// HasTurnAngle is whether an explicit left/right angle was given.
	HasTurnAngle bool

	// TiltSign is 1 for up, -1 for down, and 0 when neither was given.
	TiltSign float32

	// TiltAngle is the up/down angle, valid when HasTiltAngle.
	TiltAngle float32

	// HasTiltAngle is whether an explicit up/down angle was given.
	HasTiltAngle bool

	// ToDir is the final heading of a todir arc.
	ToDir math32.Vector3

	// HasToDir is whether todir was given.
	HasToDir bool

	// ToRot is the world rotation of a torot arc.
	ToRot math32.Matrix4

	// HasToRot is whether torot was given.
	HasToRot bool

	// Twist is the total cross-section twist in degrees.
	Twist float32

	// Grow is the final cross-section scale, combining grow and shrink.
	Grow math32.Vector2

	// Steps is the number of sub-steps; 0 uses the default.
	Steps int

	// Roll is the fixed roll angle for [RollBy].
	Roll float32

	// RollMode is how the turtle rolls.
	RollMode RollModes

	// RollTarget is the target up direction for the roll-to modes.
	RollTarget math32.Vector3

	// Reverse flips the cross-section winding from this command on,
	// so that a sweep traces an interior wall. The turtle still
	// advances forward.
	Reverse bool
}

// Decode decodes and validates a command list. The returned error is
// always an [*Error].
func Decode(commands []any) ([]Command, error) {
	cmds, err := decodeList(commands)
	if err != nil {
		return nil, err
	}
	return cmds, nil
}

func decodeList(list []any) ([]Command, *Error) {
	var cmds []Command
	for i := 0; i < len(list); {
		tok := list[i]
		if isList(tok) {
			c, err := decodeCompound(i, tok)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, c)
			i++
			continue
		}
		name, ok := tok.(string)
		if !ok {
			return nil, errorf(i, fmt.Sprint(tok), "expected a command name, got %T", tok)
		}
		k, ok := KindByName(name)
		if !ok {
			return nil, errorf(i, name, "unknown command%s", suggest(name, Names()))
		}
		span := spanOf(list, i, k)
		if i+span > len(list) {
			return nil, errorf(i, name, "requires %d arguments", span-1)
		}
		c, err := decodeCommand(k, i, list[i+1:i+span])
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
		i += span
	}
	return cmds, nil
}

// spanOf returns the number of list slots taken by the command of the
// given kind whose name is at index i, including the name.
func spanOf(list []any, i int, k Kinds) int {
	switch kinds[k].args {
	case argRepeat, argArcVector, argArcMatrix:
		return 3
	case argArc:
		if i+2 < len(list) && !isString(list[i+2]) && !isList(list[i+2]) {
			return 3
		}
	}
	if i+1 >= len(list) || isString(list[i+1]) {
		return 1
	}
	if kinds[k].args == argOptNumber {
		// a compound command directly after an optional argument
		// starts the next command
		if h := compoundHead(list[i+1]); h == "move" || h == "arc" {
			return 1
		}
	}
	return 2
}

func decodeCommand(k Kinds, index int, args []any) (Command, *Error) {
	c := Command{Kind: k, Index: index}
	name := k.String()
	switch kinds[k].args {
	case argOptNumber:
		if len(args) == 0 {
			return c, nil
		}
		if c.Number, c.HasNumber = toNumber(args[0]); !c.HasNumber {
			return c, errorf(index, name, "requires a numeric argument, got %v", args[0])
		}
	case argNumber:
		if len(args) == 0 {
			return c, errorf(index, name, "requires a numeric argument")
		}
		if c.Number, c.HasNumber = toNumber(args[0]); !c.HasNumber {
			return c, errorf(index, name, "requires a numeric argument, got %v", args[0])
		}
		if k == Angle && c.Number == 0 {
			return c, errorf(index, name, "angle must be nonzero")
		}
	case argPosInt:
		n, ok := 0, false
		if len(args) > 0 {
			n, ok = toInt(args[0])
		}
		if !ok || n <= 0 {
			return c, errorf(index, name, "requires a positive integer")
		}
		c.Count = n
	case argVector:
		ok := false
		if len(args) > 0 {
			c.Vector, ok = toVector3(args[0])
		}
		if !ok {
			return c, errorf(index, name, "requires a 3-vector")
		}
		if k == SetDir && c.Vector.Length() < math32.Tolerance {
			return c, errorf(index, name, "requires a nonzero direction")
		}
	case argMatrix:
		ok := false
		if len(args) > 0 {
			c.Matrix, ok = toRotation(args[0])
		}
		if !ok {
			return c, errorf(index, name, "requires a 4x4 or 3x3 rotation matrix")
		}
	case argArc, argArcVector, argArcMatrix:
		if err := decodeRadius(&c, name, args); err != nil {
			return c, err
		}
		switch kinds[k].args {
		case argArc:
			if len(args) > 1 {
				if c.Angle, c.HasAngle = toNumber(args[1]); !c.HasAngle {
					return c, errorf(index, name, "requires a numeric angle, got %v", args[1])
				}
			}
		case argArcVector:
			ok := false
			if c.Vector, ok = toVector3(args[1]); !ok {
				return c, errorf(index, name, "requires a 3-vector direction")
			}
			if c.Vector.Length() < math32.Tolerance {
				return c, errorf(index, name, "requires a nonzero direction")
			}
		case argArcMatrix:
			ok := false
			if c.Matrix, ok = toRotation(args[1]); !ok {
				return c, errorf(index, name, "requires a 4x4 or 3x3 rotation matrix")
			}
		}
	case argRepeat:
		n, ok := toInt(args[0])
		if !ok || n < 0 {
			return c, errorf(index, name, "requires a non-negative integer count, got %v", args[0])
		}
		c.Count = n
		body, ok := toList(args[1])
		if !ok {
			return c, errorf(index, name, "requires a command list")
		}
		var err *Error
		if c.Body, err = decodeList(body); err != nil {
			return c, err.nest([]int{index})
		}
	}
	return c, nil
}

func decodeRadius(c *Command, name string, args []any) *Error {
	ok := false
	if len(args) > 0 {
		c.Number, ok = toNumber(args[0])
	}
	if !ok {
		return errorf(c.Index, name, "requires a numeric radius")
	}
	if c.Number <= 0 {
		return errorf(c.Index, name, "radius must be positive, got %v", c.Number)
	}
	c.HasNumber = true
	return nil
}

// options are the option names of compound commands.
var options = []string{"twist", "grow", "shrink", "steps", "roll", "rollto", "lrollto", "rrollto", "reverse", "left", "right", "up", "down", "todir", "torot"}

func decodeCompound(index int, tok any) (Command, *Error) {
	c := Command{Index: index}
	list, _ := toList(tok)
	head := compoundHead(tok)
	cp := &Compound{Grow: math32.Vector2Scalar(1)}
	c.Compound = cp
	cname := "[" + head + "]"
	fail := func(format string, args ...any) (Command, *Error) {
		return c, errorf(index, cname, format, args...)
	}
	j := 1
	switch head {
	case "move":
		c.Kind = CompoundMove
		if j < len(list) && !isString(list[j]) {
			if cp.Length, cp.HasLength = toNumber(list[j]); !cp.HasLength {
				return fail("move length must be a number, got %v", list[j])
			}
			j++
		}
	case "arc":
		c.Kind = CompoundArc
		r, ok := float32(0), false
		if j < len(list) {
			r, ok = toNumber(list[j])
		}
		if !ok {
			return fail("arc requires a numeric radius")
		}
		if r <= 0 {
			return fail("radius must be positive, got %v", r)
		}
		cp.Radius = r
		j++
	default:
		if head == "" {
			cname = fmt.Sprint(tok)
		}
		return fail("compound command must start with move or arc")
	}
	isArc := c.Kind == CompoundArc
	seen := map[string]bool{}
	// next returns the option value after the key, if it is not a string
	next := func() (any, bool) {
		if j < len(list) && !isString(list[j]) {
			v := list[j]
			j++
			return v, true
		}
		return nil, false
	}
	for j < len(list) {
		key, ok := list[j].(string)
		if !ok {
			return fail("expected an option name at position %d, got %v", j, list[j])
		}
		j++
		if seen[key] {
			return fail("repeated option %q", key)
		}
		seen[key] = true
		switch key {
		case "twist":
			v, _ := next()
			if cp.Twist, ok = toNumber(v); !ok {
				return fail("twist requires a numeric angle")
			}
		case "grow", "shrink":
			v, _ := next()
			s, ok := toScale(v)
			if !ok {
				return fail("%s requires a number or a 2-vector", key)
			}
			if key == "shrink" {
				if s.X == 0 || s.Y == 0 {
					return fail("shrink factors must be nonzero")
				}
				s = math32.Vec2(1/s.X, 1/s.Y)
			}
			cp.Grow = cp.Grow.Mul(s)
		case "steps":
			v, _ := next()
			n, ok := toInt(v)
			if !ok || n <= 0 {
				return fail("steps requires a positive integer")
			}
			cp.Steps = n
		case "roll", "rollto", "lrollto", "rrollto":
			if cp.RollMode != NoRoll {
				return fail("only one of roll, rollto, lrollto and rrollto may be given")
			}
			v, _ := next()
			if key == "roll" {
				if cp.Roll, ok = toNumber(v); !ok {
					return fail("roll requires a numeric angle")
				}
				cp.RollMode = RollBy
				break
			}
			if cp.RollTarget, ok = toVector3(v); !ok || cp.RollTarget.Length() < math32.Tolerance {
				return fail("%s requires a nonzero 3-vector", key)
			}
			switch key {
			case "rollto":
				cp.RollMode = RollTo
			case "lrollto":
				cp.RollMode = LeftRollTo
			default:
				cp.RollMode = RightRollTo
			}
		case "reverse":
			if j < len(list) && !isString(list[j]) {
				return fail("reverse takes no value")
			}
			cp.Reverse = true
		case "left", "right", "up", "down":
			if !isArc {
				return fail("%q is only valid in arc commands", key)
			}
			sign := float32(1)
			if key == "right" || key == "down" {
				sign = -1
			}
			v, has := next()
			angle := float32(0)
			if has {
				if angle, ok = toNumber(v); !ok {
					return fail("%s requires a numeric angle, got %v", key, v)
				}
			}
			if key == "left" || key == "right" {
				if cp.TurnSign != 0 {
					return fail("only one of left and right may be given")
				}
				cp.TurnSign, cp.TurnAngle, cp.HasTurnAngle = sign, angle, has
			} else {
				if cp.TiltSign != 0 {
					return fail("only one of up and down may be given")
				}
				cp.TiltSign, cp.TiltAngle, cp.HasTiltAngle = sign, angle, has
			}
		case "todir":
			if !isArc {
				return fail("%q is only valid in arc commands", key)
			}
			v, _ := next()
			if cp.ToDir, ok = toVector3(v); !ok || cp.ToDir.Length() < math32.Tolerance {
				return fail("todir requires a nonzero 3-vector")
			}
			cp.HasToDir = true
		case "torot":
			if !isArc {
				return fail("%q is only valid in arc commands", key)
			}
			v, _ := next()
			if cp.ToRot, ok = toRotation(v); !ok {
				return fail("torot requires a 4x4 or 3x3 rotation matrix")
			}
			cp.HasToRot = true
		default:
			return fail("unknown option %q%s", key, suggest(key, options))
		}
	}
	if !isArc {
		return c, nil
	}
	ndir := 0
	if cp.TurnSign != 0 || cp.TiltSign != 0 {
		ndir++
	}
	if cp.HasToDir {
		ndir++
	}
	if cp.HasToRot {
		ndir++
	}
	switch {
	case ndir == 0:
		return fail("arc requires a direction: left, right, up, down, todir or torot")
	case ndir > 1:
		return fail("only one of the turns, todir and torot may be given")
	}
	if cp.HasTurnAngle && cp.HasTiltAngle {
		if err := checkMixed(cp.TurnAngle, cp.TiltAngle); err != "" {
			return fail("%s", err)
		}
	}
	return c, nil
}

// checkMixed returns a message if an arc combining left/right with
// up/down has an angle of 180 or more.
func checkMixed(turn, tilt float32) string {
	if math32.Abs(turn) >= 180 || math32.Abs(tilt) >= 180 {
		return "mixing up/down with left/right requires both angles below 180"
	}
	return ""
}

// suggest returns a " (did you mean ...?)" hint naming the candidate
// most similar to name, or "" if none is close.
func suggest(name string, candidates []string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.0
	for _, c := range candidates {
		if sim := strutil.Similarity(name, c, lev); sim > bestSim {
			best, bestSim = c, sim
		}
	}
	if bestSim < 0.5 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}
