// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// single character command-line options processing
//
// Parses options of the forms:
//   -k                    - option with no value
//   -kvalue               - option with an inline value
//
// Note:
//   Does not support long options ("--name"), combined single letter
//   options (e.g. "-abc") or "=" separated values.
//   A value must be in the same token as its key; the following token
//   is never consumed as a value.
//   Repeated options queue their values in arrival order, e.g. after
//   parsing "-fa -fb" the first PopValue('f') returns "a" and the
//   second returns "b".
//
// Usage:
//   Declare the recognised options with Add, run Parse once over the
//   arguments (program name already removed), then query the result
//   with Has, Count and PopValue.  A successful Parse clears the
//   declarations, so a second parse cycle needs a fresh set of Add
//   calls.
package shortopts
