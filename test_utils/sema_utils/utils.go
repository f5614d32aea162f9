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

package sema_utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	"github.com/solpp-lang/solpp/sema"
	. "github.com/solpp-lang/solpp/test_utils/common_utils"
)

type CheckOptions struct {
	Location        common.Location
	PlatformVersion string
	Config          *sema.Config
	// SkipBinding checks the source unit as given,
	// for trees whose references were resolved by the test itself
	SkipBinding bool
}

// CheckResult holds the checker and the diagnostics of a pass
type CheckResult struct {
	Checker     *sema.Checker
	Diagnostics *sema.Diagnostics
}

func Check(t testing.TB, sourceUnit *ast.SourceUnit) (*sema.Checker, error) {
	return CheckWithOptions(t, sourceUnit, CheckOptions{})
}

func CheckWithOptions(
	t testing.TB,
	sourceUnit *ast.SourceUnit,
	options CheckOptions,
) (*sema.Checker, error) {
	result, err := CheckWithDiagnostics(t, sourceUnit, options)
	return result.Checker, err
}

func CheckWithDiagnostics(
	t testing.TB,
	sourceUnit *ast.SourceUnit,
	options CheckOptions,
) (CheckResult, error) {
	t.Helper()

	if !options.SkipBinding {
		Bind(sourceUnit)
	}

	if options.Location == nil {
		options.Location = TestLocation
	}
	sourceUnit.Location = options.Location

	if options.PlatformVersion == "" {
		options.PlatformVersion = sema.DefaultPlatformVersion
	}

	version, err := sema.NewPlatformVersion(options.PlatformVersion)
	require.NoError(t, err)

	diagnostics := &sema.Diagnostics{}

	checker, err := sema.NewChecker(version, diagnostics, options.Config)
	require.NoError(t, err)

	err = checker.Check(sourceUnit)

	return CheckResult{
		Checker:     checker,
		Diagnostics: diagnostics,
	}, err
}

// CheckContract checks a source unit consisting of the given contract only
func CheckContract(t testing.TB, contract *ast.ContractDefinition) (*sema.Checker, error) {
	return Check(t, SourceUnit(contract))
}

// CheckFunctionBody checks the statements as the body of
// `contract C { function test() public { ... } }`
func CheckFunctionBody(t testing.TB, statements ...ast.Statement) (*sema.Checker, error) {
	return CheckContract(
		t,
		Contract("C", Function("test", Block(statements...))),
	)
}

// RequireCheckerErrors asserts that checking failed with exactly count errors,
// and returns them
func RequireCheckerErrors(t testing.TB, err error, count int) []error {
	t.Helper()

	if count <= 0 && err == nil {
		return nil
	}

	require.Error(t, err)

	var checkerErr sema.CheckerError
	require.ErrorAs(t, err, &checkerErr)

	errs := checkerErr.Errors

	require.Equalf(
		t,
		count,
		len(errs),
		"unexpected number of checker errors. expected %d, got %d: %s",
		count,
		len(errs),
		err.Error(),
	)

	for _, err := range errs {
		RequireError(t, err)
	}

	return errs
}

// RequireWarnings asserts that the pass reported exactly count warnings,
// and returns them
func RequireWarnings(t testing.TB, checker *sema.Checker, count int) []error {
	t.Helper()

	warnings := checker.Warnings()
	require.Lenf(t, warnings, count, "unexpected warnings: %v", warnings)
	return warnings
}
