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

package sema

import (
	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/errors"
)

type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) Name() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}

	panic(errors.NewUnreachableError())
}

// Diagnostic is an error or a warning about the checked program
type Diagnostic struct {
	Severity Severity
	Err      error
}

func (d Diagnostic) Message() string {
	return d.Err.Error()
}

func (d Diagnostic) Range() ast.Range {
	if positioned, ok := d.Err.(ast.HasPosition); ok {
		return ast.NewRangeFromPositioned(positioned)
	}
	return ast.EmptyRange
}

// DiagnosticSink receives the diagnostics of a checker.
// The checker does not own the sink.
type DiagnosticSink interface {
	Report(diagnostic Diagnostic)
}

// Diagnostics is a DiagnosticSink that collects diagnostics in order
type Diagnostics struct {
	list []Diagnostic
}

var _ DiagnosticSink = &Diagnostics{}

func (d *Diagnostics) Report(diagnostic Diagnostic) {
	d.list = append(d.list, diagnostic)
}

func (d *Diagnostics) All() []Diagnostic {
	return d.list
}

func (d *Diagnostics) Errors() []error {
	return d.withSeverity(SeverityError)
}

func (d *Diagnostics) Warnings() []error {
	return d.withSeverity(SeverityWarning)
}

func (d *Diagnostics) withSeverity(severity Severity) []error {
	var result []error
	for _, diagnostic := range d.list {
		if diagnostic.Severity == severity {
			result = append(result, diagnostic.Err)
		}
	}
	return result
}

func (d *Diagnostics) HasErrors() bool {
	for _, diagnostic := range d.list {
		if diagnostic.Severity == SeverityError {
			return true
		}
	}
	return false
}
