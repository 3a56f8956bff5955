// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
)

var dimsNames = [...]string{"X", "Y", "Z", "W"}

func (d Dims) String() string {
	if d < 0 || int(d) >= len(dimsNames) {
		return "Dims(?)"
	}
	return dimsNames[d]
}
