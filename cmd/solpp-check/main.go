/*
 * Solpp - Semantic analysis for the Solidity++ smart contract language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command solpp-check checks Solidity++ contracts.
//
// It reads syntax trees in the compact JSON format,
// checks them, and prints the diagnostics with excerpts of the source code:
//
//	solpp-check [flags] Token.sol.json ...
//
// Settings are read from solpp-check.yaml in the working directory, if present.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var configFlag = flag.String("config", defaultConfigFileName, "path of the configuration file")
var platformVersionFlag = flag.String("platform-version", "", "platform version to check against")
var colorFlag = flag.Bool("color", true, "colorize the output")
var watchFlag = flag.Bool("watch", false, "check the files again when they change")
var suggestionsFlag = flag.Bool("suggestions", true, "suggest names for undeclared identifiers and members")
var abiCoderV1Flag = flag.Bool("abi-coder-v1", false, "default to ABI coder v1")
var traceFlag = flag.Bool("trace", false, "print how long checking took")

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.json ...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	config, err := LoadConfig(*configFlag, setFlags["config"])
	if err != nil {
		exitWithError(err)
	}
	applyFlags(&config, setFlags)

	err = config.Validate()
	if err != nil {
		exitWithError(err)
	}

	log := newLogger(os.Stderr, config.Color)
	r := newRunner(config, os.Stdout, log)

	ok := r.checkFiles(paths)

	if !config.Watch {
		if !ok {
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := newWatcher(
		paths,
		defaultWatchDebounce,
		func(changed []string) {
			log.info("change detected, checking %d files", len(changed))
			r.checkFiles(changed)
		},
		log,
	)
	if err != nil {
		exitWithError(err)
	}

	log.info("watching %d files", len(paths))

	err = w.run(ctx)
	if err != nil {
		exitWithError(err)
	}
}

// applyFlags overrides the configuration with the flags given on the command line
func applyFlags(config *Config, setFlags map[string]bool) {
	if setFlags["platform-version"] {
		config.PlatformVersion = *platformVersionFlag
	}
	if setFlags["color"] {
		config.Color = *colorFlag
	}
	if setFlags["watch"] {
		config.Watch = *watchFlag
	}
	if setFlags["suggestions"] {
		config.Suggestions = *suggestionsFlag
	}
	if setFlags["abi-coder-v1"] {
		config.ABICoderV1 = *abiCoderV1Flag
	}
	if setFlags["trace"] {
		config.Trace = *traceFlag
	}
}

func exitWithError(err error) {
	newLogger(os.Stderr, true).error(err)
	os.Exit(1)
}
