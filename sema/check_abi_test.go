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

package sema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	"github.com/solpp-lang/solpp/sema"
	. "github.com/solpp-lang/solpp/test_utils/common_utils"
	. "github.com/solpp-lang/solpp/test_utils/sema_utils"
)

// typeComparer compares types structurally, ignoring their unexported state
var typeComparer = cmp.Comparer(func(a, b sema.Type) bool {
	return a.Equal(b)
})

func abiCall(function string, arguments ...ast.Expression) *ast.FunctionCall {
	return Call(Member(Id("abi"), function), arguments...)
}

// checkDecode checks the statements in a function taking `bytes memory data`
func checkDecode(t *testing.T, coder string, statements ...ast.Statement) (*sema.Checker, error) {
	sourceUnit := SourceUnit(
		Contract(
			"C",
			Function(
				"test",
				Block(statements...),
				WithParameters(VariableIn("data", Type("bytes"), common.DataLocationMemory)),
			),
		),
	)
	if coder != "" {
		sourceUnit.Pragmas = []*ast.PragmaDirective{
			Pragma("abicoder", coder),
		}
	}
	return Check(t, sourceUnit)
}

func TestCheckABIEncode(t *testing.T) {

	t.Parallel()

	requireEncodingError := func(t *testing.T, err error) *sema.InvalidABIEncodingError {
		errs := RequireCheckerErrors(t, err, 1)

		var encodingErr *sema.InvalidABIEncodingError
		require.ErrorAs(t, errs[0], &encodingErr)
		return encodingErr
	}

	t.Run("encode", func(t *testing.T) {
		t.Parallel()

		call := abiCall("encode", Num("1"), True(), Str("abc"))

		checker, err := CheckFunctionBody(
			t,
			Let(VariableIn("b", Type("bytes"), common.DataLocationMemory), call),
		)
		require.NoError(t, err)

		assert.True(t, checker.Elaboration.ExpressionAnnotation(call).IsPure)
	})

	t.Run("packed literal", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Expr(abiCall("encodePacked", Num("1"))))

		encodingErr := requireEncodingError(t, err)
		assert.True(t, encodingErr.Packed)
		assert.Equal(
			t,
			"cannot perform packed encoding for a literal, convert it to an explicit type first",
			encodingErr.Reason,
		)
	})

	t.Run("packed explicit type", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Expr(abiCall("encodePacked", Call(TypeExpr("uint8"), Num("1")))),
		)
		require.NoError(t, err)
	})

	t.Run("mapping", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function("test", Block(Expr(abiCall("encode", Id("m"))))),
			StateVariable("m", MappingOf(Type("uint"), Type("uint")), nil),
		)

		encodingErr := requireEncodingError(t, err)
		assert.Equal(t, "mappings can only be passed to library functions", encodingErr.Reason)
	})

	t.Run("struct with ABI coder v1", func(t *testing.T) {
		t.Parallel()

		sourceUnit := SourceUnit(
			Contract(
				"C",
				Struct("S", Variable("a", Type("uint"))),
				StateVariable("s", Type("S"), nil),
				Function("test", Block(Expr(abiCall("encode", Id("s"))))),
			),
		)
		sourceUnit.Pragmas = []*ast.PragmaDirective{
			Pragma("abicoder", "v1"),
		}

		_, err := Check(t, sourceUnit)

		encodingErr := requireEncodingError(t, err)
		assert.Contains(t, encodingErr.Reason, "only supported by ABI coder v2")
	})

	t.Run("selector prefix", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Expr(abiCall("encodeWithSignature", Str("f(uint256)"), Num("1"))),
		)
		require.NoError(t, err)
	})

	t.Run("missing selector", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Expr(abiCall("encodeWithSelector")))

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.ArgumentCountError{}, errs[0])
	})
}

func TestCheckABIDecode(t *testing.T) {

	t.Parallel()

	requireDecodeError := func(t *testing.T, err error, reason string) {
		errs := RequireCheckerErrors(t, err, 1)

		var decodeErr *sema.InvalidABIDecodeError
		require.ErrorAs(t, errs[0], &decodeErr)
		assert.Contains(t, decodeErr.Reason, reason)
	}

	t.Run("tuple", func(t *testing.T) {
		t.Parallel()

		call := abiCall("decode", Id("data"), Tuple(TypeExpr("uint"), TypeExpr("bool")))

		checker, err := checkDecode(
			t,
			"",
			LetTuple(
				call,
				Variable("a", Type("uint")),
				Variable("b", Type("bool")),
			),
		)
		require.NoError(t, err)

		AssertEqualCmp(
			t,
			[]sema.Type{sema.UInt256Type, sema.BoolType},
			checker.Elaboration.DecodedTypes(call),
			typeComparer,
		)
	})

	t.Run("single type", func(t *testing.T) {
		t.Parallel()

		call := abiCall("decode", Id("data"), Tuple(TypeExpr("address")))

		checker, err := checkDecode(
			t,
			"",
			Let(Variable("a", Type("address")), call),
		)
		require.NoError(t, err)

		AssertEqualCmp(
			t,
			[]sema.Type{sema.TheAddressType},
			checker.Elaboration.DecodedTypes(call),
			typeComparer,
		)
	})

	t.Run("value instead of type", func(t *testing.T) {
		t.Parallel()

		_, err := checkDecode(
			t,
			"",
			Expr(abiCall("decode", Id("data"), Tuple(Num("1")))),
		)

		requireDecodeError(t, err, "expected a type, got a value")
	})

	t.Run("argument count", func(t *testing.T) {
		t.Parallel()

		_, err := checkDecode(t, "", Expr(abiCall("decode", Id("data"))))

		requireDecodeError(t, err, "expected two arguments, got 1")
	})

	t.Run("nested dynamic array with ABI coder v1", func(t *testing.T) {
		t.Parallel()

		nestedArray := Index(Index(TypeExpr("uint"), nil), nil)

		_, err := checkDecode(
			t,
			"v1",
			Expr(abiCall("decode", Id("data"), Tuple(nestedArray))),
		)

		requireDecodeError(t, err, "only supported by ABI coder v2")
	})

	t.Run("nested dynamic array with ABI coder v2", func(t *testing.T) {
		t.Parallel()

		nestedArray := Index(Index(TypeExpr("uint"), nil), nil)

		_, err := checkDecode(
			t,
			"v2",
			Expr(abiCall("decode", Id("data"), Tuple(nestedArray))),
		)
		require.NoError(t, err)
	})
}
