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
	"time"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	"github.com/solpp-lang/solpp/errors"
)

// Checker checks a name-bound syntax tree and records
// the inferred types in its elaboration.
//
// A checker may check several source units in sequence,
// but is not safe for concurrent use.
type Checker struct {
	Elaboration *Elaboration
	Config      *Config
	version     *PlatformVersion
	sink        DiagnosticSink
	contexts    contextStack
	errors      []error
	warnings    []error
	// declaringContracts maps the members of all contracts of the checked source unit
	// to their contract
	declaringContracts map[ast.Declaration]*ast.ContractDefinition
}

var _ ast.DeclarationVisitor[struct{}] = &Checker{}
var _ ast.StatementVisitor[struct{}] = &Checker{}
var _ ast.ExpressionVisitor[Type] = &Checker{}

// NewChecker returns a checker for the given platform version.
// Diagnostics are reported to the sink, which the checker does not own.
func NewChecker(
	version *PlatformVersion,
	sink DiagnosticSink,
	config *Config,
) (*Checker, error) {

	if version == nil {
		return nil, errors.NewDefaultUserError("missing platform version")
	}

	if sink == nil {
		return nil, errors.NewDefaultUserError("missing diagnostic sink")
	}

	if config == nil {
		config = &Config{}
	}

	return &Checker{
		Elaboration: NewElaboration(),
		Config:      config,
		version:     version,
		sink:        sink,
	}, nil
}

// stopChecking is raised to abort the pass
// after the first error when error short-circuiting is enabled
type stopChecking struct{}

// CheckTypeRequirements checks the source unit and reports
// whether no error was reported during this pass.
// Warnings and diagnostics of earlier passes are not counted.
func (checker *Checker) CheckTypeRequirements(sourceUnit *ast.SourceUnit) bool {
	checker.errors = nil
	checker.warnings = nil
	checker.contexts.reset()
	checker.declaringContracts = declaringContracts(sourceUnit)

	var startTime time.Time
	tracingEnabled := checker.Config.Tracer.enabled()
	if tracingEnabled {
		startTime = time.Now()
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(stopChecking); ok {
					return
				}
				panic(r)
			}
		}()

		checker.checkSourceUnit(sourceUnit)
	}()

	// the traversal must leave the context stack balanced
	if checker.contexts.depth() != 0 && !checker.Config.ErrorShortCircuitingEnabled {
		panic(errors.NewUnexpectedError("unbalanced checking context"))
	}
	checker.contexts.reset()

	if tracingEnabled {
		checker.Config.Tracer.reportSourceUnitTrace(
			locationString(sourceUnit.Location),
			len(sourceUnit.ContractDefinitions()),
			len(checker.errors),
			time.Since(startTime),
		)
	}

	return len(checker.errors) == 0
}

// Check checks the source unit and returns a CheckerError
// holding all errors reported during the pass, if any
func (checker *Checker) Check(sourceUnit *ast.SourceUnit) error {
	if checker.CheckTypeRequirements(sourceUnit) {
		return nil
	}
	return CheckerError{
		Location: sourceUnit.Location,
		Errors:   checker.errors,
	}
}

// Errors returns the errors reported during the last pass
func (checker *Checker) Errors() []error {
	return checker.errors
}

// Warnings returns the warnings reported during the last pass
func (checker *Checker) Warnings() []error {
	return checker.warnings
}

func (checker *Checker) PlatformVersion() *PlatformVersion {
	return checker.version
}

func declaringContracts(sourceUnit *ast.SourceUnit) map[ast.Declaration]*ast.ContractDefinition {
	contracts := map[ast.Declaration]*ast.ContractDefinition{}
	for _, contract := range sourceUnit.ContractDefinitions() {
		for _, member := range contract.Members {
			contracts[member] = contract
		}
	}
	return contracts
}

// declaringContract returns the contract the declaration is a member of,
// or nil for file-level declarations
func (checker *Checker) declaringContract(declaration ast.Declaration) *ast.ContractDefinition {
	return checker.declaringContracts[declaration]
}

func locationString(location common.Location) string {
	if location == nil {
		return ""
	}
	return location.String()
}

func (checker *Checker) report(err error) {
	if err == nil {
		return
	}
	checker.errors = append(checker.errors, err)
	checker.sink.Report(
		Diagnostic{
			Severity: SeverityError,
			Err:      err,
		},
	)
	if checker.Config.ErrorShortCircuitingEnabled {
		panic(stopChecking{})
	}
}

func (checker *Checker) warn(warning SemanticWarning) {
	checker.warnings = append(checker.warnings, warning)
	checker.sink.Report(
		Diagnostic{
			Severity: SeverityWarning,
			Err:      warning,
		},
	)
}

// ExpressionType returns the type inferred for the expression.
//
// The expression must have been checked:
// asking for the type of an unchecked expression is an internal error.
func (checker *Checker) ExpressionType(expression ast.Expression) Type {
	ty, ok := checker.Elaboration.ExpressionType(expression)
	if !ok {
		panic(errors.NewUnexpectedError(
			"type of %s at %s requested before it was inferred",
			expression.ElementType(),
			expression.StartPosition(),
		))
	}
	return ty
}

// VariableDeclarationType returns the type of the variable, if it is known yet.
// The type of a variable declared with `var` is only known
// once its initial value was checked.
func (checker *Checker) VariableDeclarationType(declaration *ast.VariableDeclaration) (Type, bool) {
	return checker.Elaboration.VariableDeclarationType(declaration)
}

func (checker *Checker) checkSourceUnit(sourceUnit *ast.SourceUnit) {
	abiCoderV2 := checker.defaultABICoderV2()
	for _, pragma := range sourceUnit.Pragmas {
		switch pragma.Name() {
		case "abicoder":
			abiCoderV2 = pragma.Value() == "v2"
		case "experimental":
			if pragma.Value() == "ABIEncoderV2" {
				abiCoderV2 = true
			}
		}
	}

	checker.withContext(
		func(frame *checkingContext) {
			*frame = checkingContext{
				sourceUnit: sourceUnit,
				abiCoderV2: abiCoderV2,
			}
		},
		func() {
			for _, declaration := range sourceUnit.Nodes {
				ast.AcceptDeclaration[struct{}](declaration, checker)
			}
		},
	)
}

// VisitExpression checks the expression and records its type.
// If an expected type is given, the type of the expression
// must be implicitly convertible to it.
func (checker *Checker) VisitExpression(expression ast.Expression, expectedType Type) Type {
	ty := checker.visitExpression(expression)

	if expectedType != nil {
		checker.checkImplicitConversion(expression, ty, expectedType)
	}

	return ty
}

func (checker *Checker) visitExpression(expression ast.Expression) Type {
	ty := ast.AcceptExpression[Type](expression, checker)
	if ty == nil {
		panic(errors.NewUnexpectedError(
			"no type inferred for %s at %s",
			expression.ElementType(),
			expression.StartPosition(),
		))
	}
	checker.Elaboration.SetExpressionType(expression, ty)
	return ty
}

func (checker *Checker) visitStatement(statement ast.Statement) {
	ast.AcceptStatement[struct{}](statement, checker)
}

func (checker *Checker) expressionAnnotation(expression ast.Expression) *ExpressionAnnotation {
	return checker.Elaboration.ExpressionAnnotation(expression)
}

func (checker *Checker) isPure(expression ast.Expression) bool {
	annotation, ok := checker.Elaboration.ExistingExpressionAnnotation(expression)
	return ok && annotation.IsPure
}

func (checker *Checker) defaultABICoderV2() bool {
	return !checker.Config.ABICoderV1Default ||
		checker.version.Supports(FeatureABICoderV2Default)
}

func (checker *Checker) useABICoderV2() bool {
	return checker.contexts.current().abiCoderV2
}

func (checker *Checker) requireFeature(feature Feature, hasPosition ast.HasPosition) bool {
	if checker.version.Supports(feature) {
		return true
	}
	checker.report(
		&UnsupportedFeatureError{
			Feature: feature,
			Version: checker.version,
			Range:   ast.NewRangeFromPositioned(hasPosition),
		},
	)
	return false
}
