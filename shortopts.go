// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shortopts

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/shortopts/fault"
)

// an option as declared by the caller
type optionSpec struct {
	key      byte
	hasValue bool
}

// Parser - holds the declared options and, after a successful Parse,
// the queue of pending values for each option that appeared
type Parser struct {
	options []optionSpec
	parsed  map[byte][]string
}

// New - create an empty parser
func New() *Parser {
	return &Parser{
		options: make([]optionSpec, 0, 10),
		parsed:  make(map[byte][]string),
	}
}

// Add - declare a single character option and whether it carries an
// inline value
//
// Note: declarations are not checked for duplicates; if a key is
// declared more than once the first declaration is the one Parse
// will use
func (p *Parser) Add(key byte, hasValue bool) {
	p.options = append(p.options, optionSpec{
		key:      key,
		hasValue: hasValue,
	})
}

// ParseOS - parse the process arguments, returning the program name
// for use in diagnostics
func (p *Parser) ParseOS() (program string, err error) {
	program = filepath.Base(os.Args[0])
	err = p.Parse(os.Args[1:])
	return program, err
}

// Parse - scan an argument list (program name already removed)
// against the declared options
//
// The first failing token aborts the scan and nothing is added to the
// result store.  On success the declarations are cleared and the
// recognised occurrences become queryable via Has, Count and
// PopValue.
func (p *Parser) Parse(args []string) error {

	parsed := make(map[byte][]string)

	for _, token := range args {

		// a token must be at least "-k"
		if len(token) < 2 || '-' != token[0] {
			return fault.ExpectedOptionError(token)
		}

		key := token[1]

		spec, ok := p.lookup(key)
		if !ok {
			return fault.UnknownOptionError(token[1:2])
		}

		value := ""
		if len(token) > 2 {
			value = token[2:]
		}

		if !spec.hasValue && "" != value {
			return fault.UnexpectedValueError(token[1:2])
		}
		if spec.hasValue && "" == value {
			return fault.MissingValueError(token[1:2])
		}

		parsed[key] = append(parsed[key], value)
	}

	// all tokens accepted: commit the occurrences and clear the
	// declarations
	for key, values := range parsed {
		p.parsed[key] = append(p.parsed[key], values...)
	}
	p.options = p.options[:0]

	return nil
}

// Has - check whether at least one occurrence of an option is
// pending; never modifies the store
func (p *Parser) Has(key byte) bool {
	return len(p.parsed[key]) > 0
}

// Count - the number of pending occurrences of an option
func (p *Parser) Count(key byte) int {
	return len(p.parsed[key])
}

// PopValue - remove the oldest pending occurrence of an option and
// return its value
//
// The result is the empty string when the option carries no value or
// when no occurrence is pending; use Has to distinguish the two.
// Repeated calls drain a repeated option in arrival order.
func (p *Parser) PopValue(key byte) string {
	queue := p.parsed[key]
	if 0 == len(queue) {
		return ""
	}
	value := queue[0]
	if 1 == len(queue) {
		delete(p.parsed, key)
	} else {
		p.parsed[key] = queue[1:]
	}
	return value
}

// first declaration wins when a key was declared more than once
func (p *Parser) lookup(key byte) (optionSpec, bool) {
	for _, spec := range p.options {
		if key == spec.key {
			return spec, true
		}
	}
	return optionSpec{}, false
}
