// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/shortopts/fault"
)

// test that each error class is detected by its own predicate only
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err        error
		expected   bool
		unknown    bool
		unexpected bool
		missing    bool
	}{
		{fault.ExpectedOptionError("bare"), true, false, false, false},
		{fault.ExpectedOptionError(""), true, false, false, false},
		{fault.UnknownOptionError("x"), false, true, false, false},
		{fault.UnknownOptionError("q"), false, true, false, false},
		{fault.UnexpectedValueError("v"), false, false, true, false},
		{fault.UnexpectedValueError("h"), false, false, true, false},
		{fault.MissingValueError("f"), false, false, false, true},
		{fault.MissingValueError("c"), false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExpectedOption(err) != e.expected {
			t.Errorf("%d: expected 'expected option' == %v for err = %v", i, e.expected, err)
		}
		if fault.IsErrUnknownOption(err) != e.unknown {
			t.Errorf("%d: expected 'unknown option' == %v for err = %v", i, e.unknown, err)
		}
		if fault.IsErrUnexpectedValue(err) != e.unexpected {
			t.Errorf("%d: expected 'unexpected value' == %v for err = %v", i, e.unexpected, err)
		}
		if fault.IsErrMissingValue(err) != e.missing {
			t.Errorf("%d: expected 'missing value' == %v for err = %v", i, e.missing, err)
		}
	}
}

// test that the messages identify the offending token or key
func TestErrorMessages(t *testing.T) {
	errorList := []struct {
		err     error
		message string
	}{
		{fault.ExpectedOptionError("bare"), `expected an option, found: "bare"`},
		{fault.UnknownOptionError("x"), `unknown option: "x"`},
		{fault.UnexpectedValueError("v"), `option "v" does not take a value`},
		{fault.MissingValueError("f"), `option "f" requires a value`},
	}

	for i, e := range errorList {
		if e.err.Error() != e.message {
			t.Errorf("%d: message: %q  expected: %q", i, e.err.Error(), e.message)
		}
	}
}
