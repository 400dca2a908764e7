// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// classes of parsing errors - the underlying string is the offending
// token or option key
type ExpectedOptionError string
type UnknownOptionError string
type UnexpectedValueError string
type MissingValueError string

// the error interface methods
func (e ExpectedOptionError) Error() string {
	return fmt.Sprintf("expected an option, found: %q", string(e))
}

func (e UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %q", string(e))
}

func (e UnexpectedValueError) Error() string {
	return fmt.Sprintf("option %q does not take a value", string(e))
}

func (e MissingValueError) Error() string {
	return fmt.Sprintf("option %q requires a value", string(e))
}

// determine the class of an error
func IsErrExpectedOption(e error) bool  { _, ok := e.(ExpectedOptionError); return ok }
func IsErrUnknownOption(e error) bool   { _, ok := e.(UnknownOptionError); return ok }
func IsErrUnexpectedValue(e error) bool { _, ok := e.(UnexpectedValueError); return ok }
func IsErrMissingValue(e error) bool    { _, ok := e.(MissingValueError); return ok }
