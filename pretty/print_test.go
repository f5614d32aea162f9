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

package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	"github.com/solpp-lang/solpp/sema"
)

type testError struct {
	ast.Range
	secondary string
}

func (testError) Error() string {
	return "test error"
}

func (e testError) SecondaryError() string {
	return e.secondary
}

func singleLineRange(line, startColumn, endColumn int) ast.Range {
	return ast.Range{
		StartPos: ast.Position{Line: line, Column: startColumn},
		EndPos:   ast.Position{Line: line, Column: endColumn},
	}
}

func TestPrintBrokenCode(t *testing.T) {

	t.Parallel()

	const code = `contract C {}`
	lineCount := len(strings.Split(code, "\n"))

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					// NOTE: line number is after end of code
					Line:   lineCount + 2,
					Column: 0,
				},
				EndPos: ast.Position{
					Line:   lineCount,
					Column: 2,
				},
			},
		},
		location,
		map[common.Location][]byte{
			location: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:3:0\n",
		sb.String(),
	)
}

func TestPrintTabs(t *testing.T) {

	t.Parallel()

	const code = "\t  \t   let x = 1"

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: singleLineRange(1, 7, 9),
		},
		location,
		map[common.Location][]byte{
			location: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:7\n"+
			"  |\n"+
			"1 | \t  \t   let x = 1\n"+
			"  | \t  \t   ^^^\n",
		sb.String(),
	)
}

func TestPrintWideCharacters(t *testing.T) {

	t.Parallel()

	const code = `s = "日本";`

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: singleLineRange(1, 4, 11),
		},
		location,
		map[common.Location][]byte{
			location: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:4\n"+
			"  |\n"+
			"1 | s = \"日本\";\n"+
			"  |     ^^^^^^\n",
		sb.String(),
	)
}

func TestPrintChildErrors(t *testing.T) {

	t.Parallel()

	const code = "uint x = true;\nreturn;"

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		sema.CheckerError{
			Location: location,
			Errors: []error{
				testError{
					Range:     singleLineRange(1, 9, 12),
					secondary: "expected `uint256`",
				},
				testError{
					Range: singleLineRange(2, 0, 5),
				},
			},
		},
		location,
		map[common.Location][]byte{
			location: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:9\n"+
			"  |\n"+
			"1 | uint x = true;\n"+
			"  |          ^^^^ expected `uint256`\n"+
			"\n"+
			"error: test error\n"+
			" --> test:2:0\n"+
			"  |\n"+
			"2 | return;\n"+
			"  | ^^^^^^\n",
		sb.String(),
	)
}

func TestPrintDiagnostics(t *testing.T) {

	t.Parallel()

	const code = "return;\nx = 1;"

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintDiagnostics(
		[]sema.Diagnostic{
			{
				Severity: sema.SeverityWarning,
				Err: &sema.UnreachableCodeWarning{
					Range: singleLineRange(2, 0, 5),
				},
			},
		},
		location,
		map[common.Location][]byte{
			location: []byte(code),
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"warning: unreachable code\n"+
			" --> test:2:0\n"+
			"  |\n"+
			"2 | x = 1;\n"+
			"  | ^^^^^^\n",
		sb.String(),
	)
}

func TestFormatErrorMessage(t *testing.T) {

	t.Parallel()

	require.Equal(t, "error: oops", FormatErrorMessage(ErrorPrefix, "oops", false))

	colored := FormatErrorMessage(WarningPrefix, "oops", true)
	require.Contains(t, colored, "warning")
	require.Contains(t, colored, "oops")
	require.NotEqual(t, "warning: oops", colored)
}
