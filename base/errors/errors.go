// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors stands in for the standard errors package and adds
// [Log] for places that report an error and carry on, such as the
// watch loop of the turtle command.
package errors

import "log/slog"

// Log logs a non-nil error at the error level and returns it unchanged,
// so that it can wrap a call whose error is only reported:
//
//	errors.Log(fw.Close())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}
