// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "errors"

// New returns a new error with the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether err or any error it wraps matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As sets target to the first error in err's chain that can be
// assigned to it, and reports whether there was one.
func As(err error, target any) bool {
	return errors.As(err, target)
}
