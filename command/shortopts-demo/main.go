// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shortopts"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	parser := shortopts.New()
	parser.Add('h', false)
	parser.Add('V', false)
	parser.Add('v', false)
	parser.Add('f', true)

	program, err := parser.ParseOS()
	if nil != err {
		exitwithstatus.Message("%s: option parse error: %s", program, err)
	}

	if parser.Has('h') {
		fmt.Printf("usage: %s [options]\n", program)
		fmt.Println("  -h         print this message and exit")
		fmt.Println("  -V         print version and exit")
		fmt.Println("  -v         verbose operation")
		fmt.Println("  -f<file>   process <file>, may be repeated")
		return
	}

	if parser.Has('V') {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	// start logging
	var log *logger.L
	if parser.Has('v') {
		logging := logger.Configuration{
			Directory: ".",
			File:      program + ".log",
			Size:      1048576,
			Count:     10,
			Console:   true,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		}
		if err := logger.Initialise(logging); nil != err {
			exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
		}
		defer logger.Finalise()

		log = logger.New("main")
		log.Infof("version: %s", version)
		log.Infof("pending files: %d", parser.Count('f'))
	}

	for parser.Has('f') {
		filename := parser.PopValue('f')
		if nil != log {
			log.Infof("processing: %q", filename)
		}
		fmt.Printf("processing %q\n", filename)
	}
}
