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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	"github.com/solpp-lang/solpp/sema"
	. "github.com/solpp-lang/solpp/test_utils/sema_utils"
)

func checkFunction(t *testing.T, function *ast.FunctionDefinition, members ...ast.Declaration) (*sema.Checker, error) {
	return CheckContract(
		t,
		Contract("C", append(members, function)...),
	)
}

func TestCheckReturn(t *testing.T) {

	t.Parallel()

	t.Run("value", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"f",
				Block(Return(Num("1"))),
				WithReturns(Variable("", Type("uint"))),
			),
		)
		require.NoError(t, err)
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"f",
				Block(Return(True())),
				WithReturns(Variable("", Type("uint"))),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var mismatchErr *sema.TypeMismatchError
		require.ErrorAs(t, errs[0], &mismatchErr)
		assert.Equal(t, sema.UInt256Type, mismatchErr.ExpectedType)
		assert.Equal(t, sema.BoolType, mismatchErr.ActualType)
	})

	t.Run("literal out of range", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"f",
				Block(Return(Num("256"))),
				WithReturns(Variable("", Type("uint8"))),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.TypeMismatchWithDescriptionError{}, errs[0])
	})

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"f",
				Block(Return(nil)),
				WithReturns(Variable("", Type("uint"))),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var returnErr *sema.InvalidReturnError
		require.ErrorAs(t, errs[0], &returnErr)
		assert.Equal(t, "return arguments required", returnErr.Reason)
	})

	t.Run("unexpected value", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Return(Num("1")))

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidReturnError{}, errs[0])
	})

	t.Run("tuple", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"f",
				Block(Return(Tuple(Num("1"), True()))),
				WithReturns(
					Variable("", Type("uint")),
					Variable("", Type("bool")),
				),
			),
		)
		require.NoError(t, err)
	})

	t.Run("tuple count mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"f",
				Block(Return(Tuple(Num("1")))),
				WithReturns(
					Variable("", Type("uint")),
					Variable("", Type("bool")),
				),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var returnErr *sema.InvalidReturnError
		require.ErrorAs(t, errs[0], &returnErr)
		assert.Equal(
			t,
			"different number of arguments in return statement than in returns declaration",
			returnErr.Reason,
		)
	})
}

func TestCheckUnreachableCode(t *testing.T) {

	t.Parallel()

	checker, err := CheckFunctionBody(
		t,
		Return(nil),
		Expr(Num("1")),
		Expr(Num("2")),
	)
	require.NoError(t, err)

	warnings := RequireWarnings(t, checker, 1)
	require.IsType(t, &sema.UnreachableCodeWarning{}, warnings[0])
}

func TestCheckLoops(t *testing.T) {

	t.Parallel()

	t.Run("for", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			For(
				Let(Variable("i", Type("uint")), Num("0")),
				Binary(ast.OperationLess, Id("i"), Num("10")),
				Unary(ast.OperationInc, Id("i")),
				Block(
					If(
						Binary(ast.OperationEqual, Id("i"), Num("5")),
						Continue(),
						nil,
					),
				),
			),
		)
		require.NoError(t, err)
	})

	t.Run("while", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			While(True(), Block(Break())),
		)
		require.NoError(t, err)
	})

	t.Run("break outside loop", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Break())

		errs := RequireCheckerErrors(t, err, 1)

		var controlErr *sema.ControlStatementError
		require.ErrorAs(t, errs[0], &controlErr)
		assert.Equal(t, "break", controlErr.ControlStatement)
	})

	t.Run("continue outside loop", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, If(True(), Continue(), nil))

		errs := RequireCheckerErrors(t, err, 1)

		var controlErr *sema.ControlStatementError
		require.ErrorAs(t, errs[0], &controlErr)
		assert.Equal(t, "continue", controlErr.ControlStatement)
	})

	t.Run("non-boolean condition", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, While(Num("1"), Block()))

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.TypeMismatchError{}, errs[0])
	})
}

func TestCheckVariableDeclarationStatement(t *testing.T) {

	t.Parallel()

	t.Run("explicit type", func(t *testing.T) {
		t.Parallel()

		checker, err := CheckFunctionBody(
			t,
			Let(Variable("x", Type("uint8")), Num("255")),
		)
		require.NoError(t, err)
		RequireWarnings(t, checker, 0)
	})

	t.Run("inferred type", func(t *testing.T) {
		t.Parallel()

		variable := Variable("x", nil)

		checker, err := CheckFunctionBody(
			t,
			Let(variable, Num("1000")),
		)
		require.NoError(t, err)

		warnings := RequireWarnings(t, checker, 1)

		var inferredWarning *sema.InferredTypeWarning
		require.ErrorAs(t, warnings[0], &inferredWarning)
		assert.Equal(t, sema.NewIntegerType(16, false), inferredWarning.InferredType)

		ty, ok := checker.VariableDeclarationType(variable)
		require.True(t, ok)
		assert.Equal(t, sema.NewIntegerType(16, false), ty)
	})

	t.Run("inferred without value", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("x", nil), nil),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidDeclarationError{}, errs[0])
	})

	t.Run("inferred tuple", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("x", nil), Tuple(Num("1"), Num("2"))),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var declarationErr *sema.InvalidDeclarationError
		require.ErrorAs(t, errs[0], &declarationErr)
		assert.Equal(t, "cannot declare a variable with a tuple or void type", declarationErr.Reason)
	})

	t.Run("inferred type expression", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("x", nil), TypeExpr("uint")),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.TypeAsValueError{}, errs[0])
	})

	t.Run("reference type without location", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("b", Type("bytes")), nil),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidDataLocationError{}, errs[0])
	})

	t.Run("uninitialized storage pointer", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"f",
				Block(
					Let(VariableIn("s", Type("S"), common.DataLocationStorage), nil),
				),
			),
			Struct("S", Variable("x", Type("uint"))),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var declarationErr *sema.InvalidDeclarationError
		require.ErrorAs(t, errs[0], &declarationErr)
		assert.Equal(t, "uninitialized storage pointer", declarationErr.Reason)
	})

	t.Run("tuple destructuring", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			LetTuple(
				Tuple(Num("1"), True(), Str("skipped")),
				Variable("a", Type("uint")),
				Variable("b", Type("bool")),
				nil,
			),
		)
		require.NoError(t, err)
	})

	t.Run("tuple component count", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			LetTuple(
				Tuple(Num("1"), True(), Num("2")),
				Variable("a", Type("uint")),
				Variable("b", Type("bool")),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidTupleError{}, errs[0])
	})
}

func TestCheckExpressionStatement(t *testing.T) {

	t.Parallel()

	t.Run("unused low-level call result", func(t *testing.T) {
		t.Parallel()

		checker, err := CheckFunctionBody(
			t,
			Let(Variable("target", Type("address")), nil),
			Expr(Call(Member(Id("target"), "call"), Str(""))),
		)
		require.NoError(t, err)

		warnings := RequireWarnings(t, checker, 1)

		var unusedWarning *sema.UnusedCallResultWarning
		require.ErrorAs(t, warnings[0], &unusedWarning)
		assert.Equal(t, "call", unusedWarning.FunctionName)
	})

	t.Run("checked low-level call result", func(t *testing.T) {
		t.Parallel()

		checker, err := CheckFunctionBody(
			t,
			Let(Variable("target", Type("address")), nil),
			LetTuple(
				Call(Member(Id("target"), "call"), Str("")),
				Variable("success", Type("bool")),
				nil,
			),
			Expr(Call(Id("require"), Id("success"))),
		)
		require.NoError(t, err)
		RequireWarnings(t, checker, 0)
	})

	t.Run("inline assembly", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Assembly("{ sstore(0, 1) }"))

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.UnsupportedInlineAssemblyError{}, errs[0])
	})
}

func TestCheckTryStatement(t *testing.T) {

	t.Parallel()

	token := func() *ast.ContractDefinition {
		return Interface(
			"Token",
			Function(
				"totalSupply",
				nil,
				WithVisibility(ast.VisibilityExternal),
				WithReturns(Variable("", Type("uint"))),
			),
		)
	}

	check := func(t *testing.T, statement ast.Statement) error {
		_, err := Check(
			t,
			SourceUnit(
				token(),
				Contract(
					"C",
					StateVariable("token", Type("Token"), nil),
					Function("internalFunction", Block(), WithVisibility(ast.VisibilityInternal)),
					Function("test", Block(statement)),
				),
			),
		)
		return err
	}

	trySupply := func(clauses ...*ast.TryCatchClause) ast.Statement {
		return Try(
			Call(Member(Id("token"), "totalSupply")),
			clauses...,
		)
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		err := check(
			t,
			trySupply(
				Clause("", Block(), Variable("amount", Type("uint"))),
				Clause("Error", Block(), VariableIn("reason", Type("string"), common.DataLocationMemory)),
				Clause("Panic", Block(), Variable("code", Type("uint"))),
				Clause("", Block(), VariableIn("data", Type("bytes"), common.DataLocationMemory)),
			),
		)
		require.NoError(t, err)
	})

	t.Run("catch all", func(t *testing.T) {
		t.Parallel()

		err := check(
			t,
			trySupply(
				Clause("", Block()),
				Clause("", Block()),
			),
		)
		require.NoError(t, err)
	})

	t.Run("internal call", func(t *testing.T) {
		t.Parallel()

		err := check(
			t,
			Try(
				Call(Id("internalFunction")),
				Clause("", Block()),
				Clause("", Block()),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidTryError{}, errs[0])
	})

	t.Run("returns count mismatch", func(t *testing.T) {
		t.Parallel()

		err := check(
			t,
			trySupply(
				Clause(
					"",
					Block(),
					Variable("amount", Type("uint")),
					Variable("extra", Type("bool")),
				),
				Clause("", Block()),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidTryError{}, errs[0])
	})

	t.Run("returns type mismatch", func(t *testing.T) {
		t.Parallel()

		err := check(
			t,
			trySupply(
				Clause("", Block(), Variable("flag", Type("bool"))),
				Clause("", Block()),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.TypeMismatchError{}, errs[0])
	})

	t.Run("unknown catch clause", func(t *testing.T) {
		t.Parallel()

		err := check(
			t,
			trySupply(
				Clause("", Block()),
				Clause("Failure", Block(), VariableIn("reason", Type("string"), common.DataLocationMemory)),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var tryErr *sema.InvalidTryError
		require.ErrorAs(t, errs[0], &tryErr)
		assert.Equal(t, "invalid catch clause identifier, expected `Error` or `Panic`", tryErr.Reason)
	})

	t.Run("invalid panic clause", func(t *testing.T) {
		t.Parallel()

		err := check(
			t,
			trySupply(
				Clause("", Block()),
				Clause("Panic", Block(), VariableIn("reason", Type("string"), common.DataLocationMemory)),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidTryError{}, errs[0])
	})
}
