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

package common_utils

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/k0kubun/pp/v3"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	"github.com/solpp-lang/solpp/errors"
)

var printer = func() *pp.PrettyPrinter {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer
}()

// TestLocation is used as the default location for source units in tests.
const TestLocation = common.StringLocation("test")

// AssertEqualWithDiff asserts that two objects are equal.
//
// If the objects are not equal, this function prints a human-readable diff.
func AssertEqualWithDiff(t *testing.T, expected, actual any) {
	t.Helper()

	diff := pretty.Diff(expected, actual)

	if len(diff) != 0 {
		s := strings.Builder{}

		for i, d := range diff {
			if i == 0 {
				s.WriteString("diff    : ")
			} else {
				s.WriteString("          ")
			}

			s.WriteString(d)
			s.WriteString("\n")
		}

		t.Errorf(
			"Not equal: \n"+
				"expected: %s\n"+
				"actual  : %s\n\n"+
				"%s",
			printer.Sprint(expected),
			printer.Sprint(actual),
			s.String(),
		)
	}
}

// AssertEqualCmp asserts that two values are equal according to go-cmp,
// and prints the go-cmp diff if they are not
func AssertEqualCmp(t *testing.T, expected, actual any, options ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(expected, actual, options...); diff != "" {
		t.Errorf("mismatch (-expected +actual):\n%s", diff)
	}
}

// RequireError is a wrapper around require.Error which also ensures
// that the error message, the secondary message (if any),
// and the error notes' (if any) messages can be successfully produced
func RequireError(t testing.TB, err error) {
	t.Helper()

	require.Error(t, err)

	_ = err.Error()

	if hasPosition, ok := err.(ast.HasPosition); ok {
		_ = hasPosition.StartPosition()
		_ = hasPosition.EndPosition()
	}

	if hasErrorNotes, ok := err.(errors.ErrorNotes); ok {
		for _, note := range hasErrorNotes.ErrorNotes() {
			_ = note.Message()
		}
	}

	if hasSecondaryError, ok := err.(errors.SecondaryError); ok {
		_ = hasSecondaryError.SecondaryError()
	}
}
