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

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	"github.com/solpp-lang/solpp/encoding/astjson"
	"github.com/solpp-lang/solpp/pretty"
	"github.com/solpp-lang/solpp/sema"
)

// checkResult counts the diagnostics of a checked file
type checkResult struct {
	errors   int
	warnings int
}

func (r checkResult) ok() bool {
	return r.errors == 0
}

// runner checks syntax tree files and prints their diagnostics
type runner struct {
	config Config
	// out receives the diagnostics
	out io.Writer
	log *logger
}

func newRunner(config Config, out io.Writer, log *logger) *runner {
	return &runner{
		config: config,
		out:    out,
		log:    log,
	}
}

// checkFiles checks all files and reports whether none had errors.
// Files that cannot be loaded count as failed.
func (r *runner) checkFiles(paths []string) bool {
	ok := true
	for _, path := range paths {
		result, err := r.checkFile(path)
		if err != nil {
			r.log.error(err)
			ok = false
			continue
		}

		if result.ok() {
			r.log.success("%s (%d warnings)", path, result.warnings)
		} else {
			r.log.info("%s: %d errors, %d warnings", path, result.errors, result.warnings)
			ok = false
		}
	}
	return ok
}

// checkFile imports the syntax tree file, checks it, and prints its diagnostics
func (r *runner) checkFile(path string) (result checkResult, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("failed to read syntax tree: %w", err)
	}

	var location common.Location = common.StringLocation(path)

	options := []astjson.Option{}

	var code []byte
	if sourcePath, ok := r.config.SourcePath(path); ok {
		code, err = os.ReadFile(sourcePath)
		switch {
		case err == nil:
			location = common.StringLocation(sourcePath)
			options = append(options, astjson.WithSource(code))
		case errors.Is(err, fs.ErrNotExist):
			// diagnostics are printed without source excerpts
		default:
			return result, fmt.Errorf("failed to read source code: %w", err)
		}
	}
	options = append(options, astjson.WithLocation(location))

	sourceUnit, err := astjson.Decode(data, options...)
	if err != nil {
		return result, fmt.Errorf("%s: %w", path, err)
	}

	diagnostics, err := r.check(sourceUnit)
	if err != nil {
		return result, err
	}

	for _, diagnostic := range diagnostics {
		switch diagnostic.Severity {
		case sema.SeverityError:
			result.errors++
		case sema.SeverityWarning:
			result.warnings++
		}
	}

	if len(diagnostics) > 0 {
		printer := pretty.NewErrorPrettyPrinter(r.out, r.config.Color)
		err = printer.PrettyPrintDiagnostics(
			diagnostics,
			location,
			map[common.Location][]byte{
				location: code,
			},
		)
		if err != nil {
			return result, err
		}
		_, err = io.WriteString(r.out, "\n")
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

func (r *runner) check(sourceUnit *ast.SourceUnit) ([]sema.Diagnostic, error) {
	version, err := sema.NewPlatformVersion(r.config.PlatformVersion)
	if err != nil {
		return nil, err
	}

	tracer := sema.Tracer{
		TracingEnabled: r.config.Trace,
		OnRecordTrace:  r.log.trace,
	}

	diagnostics := &sema.Diagnostics{}

	checker, err := sema.NewChecker(
		version,
		diagnostics,
		r.config.CheckerConfig(tracer),
	)
	if err != nil {
		return nil, err
	}

	// errors are reported to the diagnostics as well
	_ = checker.Check(sourceUnit)

	return diagnostics.All(), nil
}
