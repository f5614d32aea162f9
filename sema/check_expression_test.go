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

func TestCheckIdentifier(t *testing.T) {

	t.Parallel()

	t.Run("deprecated", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Expr(Id("now")))

		errs := RequireCheckerErrors(t, err, 1)

		var deprecatedErr *sema.DeprecatedIdentifierError
		require.ErrorAs(t, errs[0], &deprecatedErr)
		assert.Equal(t, "now", deprecatedErr.Name)
		assert.Equal(t, "block.timestamp", deprecatedErr.Replacement)
	})

	t.Run("not declared", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Expr(Id("x")))

		errs := RequireCheckerErrors(t, err, 1)

		var notDeclaredErr *sema.NotDeclaredError
		require.ErrorAs(t, errs[0], &notDeclaredErr)
		assert.Equal(t, "x", notDeclaredErr.Name)
	})

	t.Run("magic variable", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(
				Variable("sender", Type("address")),
				Member(Id("msg"), "sender"),
			),
		)
		require.NoError(t, err)
	})
}

func TestCheckOverloadResolution(t *testing.T) {

	t.Parallel()

	overloads := func(first, second string) (*ast.FunctionDefinition, *ast.FunctionDefinition) {
		return Function("f", Block(), WithParameters(Variable("a", Type(first)))),
			Function("f", Block(), WithParameters(Variable("a", Type(second))))
	}

	t.Run("ambiguous without call", func(t *testing.T) {
		t.Parallel()

		fUint, fBool := overloads("uint", "bool")

		_, err := checkFunction(
			t,
			Function("test", Block(Expr(Id("f")))),
			fUint,
			fBool,
		)

		errs := RequireCheckerErrors(t, err, 1)

		var ambiguousErr *sema.AmbiguousDeclarationError
		require.ErrorAs(t, errs[0], &ambiguousErr)
		assert.Equal(t, "f", ambiguousErr.Name)
		assert.Equal(t, 2, ambiguousErr.CandidateCount)
	})

	t.Run("resolved by argument type", func(t *testing.T) {
		t.Parallel()

		fUint, fBool := overloads("uint", "bool")

		callee := Id("f")

		checker, err := checkFunction(
			t,
			Function("test", Block(Expr(Call(callee, True())))),
			fUint,
			fBool,
		)
		require.NoError(t, err)

		annotation := checker.Elaboration.ExpressionAnnotation(callee)
		assert.Same(t, fBool, annotation.ReferencedDeclaration)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		fUint, fBool := overloads("uint", "bool")

		_, err := checkFunction(
			t,
			Function("test", Block(Expr(Call(Id("f"), Str("x"))))),
			fUint,
			fBool,
		)

		errs := RequireCheckerErrors(t, err, 1)

		var noMatchErr *sema.NoMatchingDeclarationError
		require.ErrorAs(t, errs[0], &noMatchErr)
		assert.Equal(t, "f", noMatchErr.Name)
		require.Len(t, noMatchErr.ArgumentTypes, 1)
	})

	t.Run("ambiguous literal argument", func(t *testing.T) {
		t.Parallel()

		fUint8, fUint256 := overloads("uint8", "uint256")

		_, err := checkFunction(
			t,
			Function("test", Block(Expr(Call(Id("f"), Num("1"))))),
			fUint8,
			fUint256,
		)

		errs := RequireCheckerErrors(t, err, 1)

		var ambiguousErr *sema.AmbiguousDeclarationError
		require.ErrorAs(t, errs[0], &ambiguousErr)
		assert.Equal(t, 2, ambiguousErr.CandidateCount)
	})

	t.Run("override hides base function", func(t *testing.T) {
		t.Parallel()

		baseFunction := Function(
			"f",
			Block(),
			WithParameters(Variable("a", Type("uint"))),
			IsVirtual,
		)
		derivedFunction := Function(
			"f",
			Block(),
			WithParameters(Variable("a", Type("uint"))),
			IsOverride,
		)

		callee := Id("f")

		checker, err := Check(
			t,
			SourceUnit(
				Contract("B", baseFunction),
				Inherits(
					Contract(
						"A",
						derivedFunction,
						Function("test", Block(Expr(Call(callee, Num("1"))))),
					),
					Base("B"),
				),
			),
		)
		require.NoError(t, err)

		annotation := checker.Elaboration.ExpressionAnnotation(callee)
		assert.Same(t, derivedFunction, annotation.ReferencedDeclaration)
	})
}

func TestCheckOperators(t *testing.T) {

	t.Parallel()

	t.Run("arithmetic", func(t *testing.T) {
		t.Parallel()

		sum := Binary(ast.OperationAdd, Id("x"), Num("1"))

		checker, err := CheckFunctionBody(
			t,
			Let(Variable("x", Type("uint8")), Num("1")),
			Let(Variable("y", Type("uint8")), sum),
		)
		require.NoError(t, err)

		assert.Equal(t, sema.UInt8Type, checker.ExpressionType(sum))
	})

	t.Run("invalid binary operands", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Expr(Binary(ast.OperationAdd, True(), Num("1"))),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var operandsErr *sema.InvalidBinaryOperandsError
		require.ErrorAs(t, errs[0], &operandsErr)
		assert.Equal(t, ast.OperationAdd, operandsErr.Operation)
		assert.Equal(t, sema.BoolType, operandsErr.LeftType)
	})

	t.Run("constant division by zero", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Expr(Binary(ast.OperationDiv, Num("1"), Num("0"))),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var operandsErr *sema.InvalidBinaryOperandsError
		require.ErrorAs(t, errs[0], &operandsErr)
		assert.Equal(t, "division by zero", operandsErr.Reason)
	})

	t.Run("unsigned negation", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("x", Type("uint")), Num("1")),
			Expr(Unary(ast.OperationSub, Id("x"))),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var operandErr *sema.InvalidUnaryOperandError
		require.ErrorAs(t, errs[0], &operandErr)
		assert.Equal(t, "unary negation is only allowed for signed integers", operandErr.Reason)
	})

	t.Run("boolean not", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("b", Type("bool")), Unary(ast.OperationNot, True())),
		)
		require.NoError(t, err)
	})

	t.Run("compound assignment", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("x", Type("uint")), Num("1")),
			Expr(AssignOp(ast.OperationAdd, Id("x"), True())),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidBinaryOperandsError{}, errs[0])
	})
}

func TestCheckAssignment(t *testing.T) {

	t.Parallel()

	requireNotAssignable := func(t *testing.T, err error, reason string) {
		errs := RequireCheckerErrors(t, err, 1)

		var assignableErr *sema.NotAssignableError
		require.ErrorAs(t, errs[0], &assignableErr)
		assert.Equal(t, reason, assignableErr.Reason)
	}

	t.Run("local", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("x", Type("uint")), Num("1")),
			Expr(Assign(Id("x"), Num("2"))),
		)
		require.NoError(t, err)
	})

	t.Run("constant", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function("test", Block(Expr(Assign(Id("c"), Num("2"))))),
			StateVariable("c", Type("uint"), Num("1"), Constant),
		)

		requireNotAssignable(t, err, "cannot assign to a constant variable")
	})

	t.Run("call result", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function("test", Block(Expr(Assign(Call(Id("g")), Num("1"))))),
			Function(
				"g",
				Block(Return(Num("1"))),
				WithReturns(Variable("", Type("uint"))),
			),
		)

		requireNotAssignable(t, err, "")
	})

	t.Run("calldata array element", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"test",
				Block(Expr(Assign(Index(Id("xs"), Num("0")), Num("1")))),
				WithVisibility(ast.VisibilityExternal),
				WithParameters(
					VariableIn("xs", ArrayOf(Type("uint"), nil), common.DataLocationCallData),
				),
			),
		)

		requireNotAssignable(t, err, "calldata arrays are read-only")
	})

	t.Run("array length", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function("test", Block(Expr(Assign(Member(Id("xs"), "length"), Num("0"))))),
			StateVariable("xs", ArrayOf(Type("uint"), nil), nil),
		)

		requireNotAssignable(t, err, "member `length` is read-only and cannot be used to resize arrays")
	})

	t.Run("mapping", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function("test", Block(Expr(Assign(Id("m"), Id("m"))))),
			StateVariable("m", MappingOf(Type("uint"), Type("uint")), nil),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var assignmentErr *sema.InvalidAssignmentError
		require.ErrorAs(t, errs[0], &assignmentErr)
		assert.Equal(t, "mappings cannot be assigned to", assignmentErr.Reason)
	})

	t.Run("tuple", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("a", Type("uint")), Num("1")),
			Let(Variable("b", Type("uint")), Num("2")),
			Expr(Assign(Tuple(Id("a"), Id("b")), Tuple(Id("b"), Id("a")))),
		)
		require.NoError(t, err)
	})
}

func TestCheckStateMutability(t *testing.T) {

	t.Parallel()

	stateVariable := func() *ast.VariableDeclaration {
		return StateVariable("x", Type("uint"), nil)
	}

	requireMutabilityError := func(t *testing.T, err error, reason string) {
		errs := RequireCheckerErrors(t, err, 1)

		var mutabilityErr *sema.InvalidStateMutabilityError
		require.ErrorAs(t, errs[0], &mutabilityErr)
		assert.Contains(t, mutabilityErr.Reason, reason)
	}

	t.Run("view reads", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"test",
				Block(Return(Id("x"))),
				WithMutability(ast.StateMutabilityView),
				WithReturns(Variable("", Type("uint"))),
			),
			stateVariable(),
		)
		require.NoError(t, err)
	})

	t.Run("view writes", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"test",
				Block(Expr(Assign(Id("x"), Num("1")))),
				WithMutability(ast.StateMutabilityView),
			),
			stateVariable(),
		)

		requireMutabilityError(t, err, "function declared as view, but this expression modifies the state")
	})

	t.Run("pure reads", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"test",
				Block(Return(Id("x"))),
				WithMutability(ast.StateMutabilityPure),
				WithReturns(Variable("", Type("uint"))),
			),
			stateVariable(),
		)

		requireMutabilityError(t, err, "function declared as pure, but this expression reads")
	})

	t.Run("pure reads constant", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"test",
				Block(Return(Id("c"))),
				WithMutability(ast.StateMutabilityPure),
				WithReturns(Variable("", Type("uint"))),
			),
			StateVariable("c", Type("uint"), Num("1"), Constant),
		)
		require.NoError(t, err)
	})

	t.Run("view calls non-payable", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function(
				"test",
				Block(Expr(Call(Id("g")))),
				WithMutability(ast.StateMutabilityView),
			),
			Function("g", Block()),
		)

		requireMutabilityError(t, err, "function declared as view, but this expression calls")
	})
}

func TestCheckConditional(t *testing.T) {

	t.Parallel()

	t.Run("common type", func(t *testing.T) {
		t.Parallel()

		conditional := Conditional(True(), Num("1"), Num("300"))

		checker, err := CheckFunctionBody(
			t,
			Let(Variable("x", Type("uint")), conditional),
		)
		require.NoError(t, err)

		assert.Equal(t, &sema.IntegerType{Bits: 16}, checker.ExpressionType(conditional))
	})

	t.Run("no common type", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Expr(Conditional(True(), Num("1"), True())),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.TypeMismatchError{}, errs[0])
	})

	t.Run("non-boolean condition", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Expr(Conditional(Num("1"), True(), False())),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var mismatchErr *sema.TypeMismatchError
		require.ErrorAs(t, errs[0], &mismatchErr)
		assert.Equal(t, sema.BoolType, mismatchErr.ExpectedType)
	})
}

func TestCheckInlineArray(t *testing.T) {

	t.Parallel()

	t.Run("common mobile type", func(t *testing.T) {
		t.Parallel()

		array := InlineArray(Num("1"), Num("2"))

		checker, err := CheckFunctionBody(
			t,
			Let(
				VariableIn("xs", ArrayOf(Type("uint8"), Num("2")), common.DataLocationMemory),
				array,
			),
		)
		require.NoError(t, err)

		arrayType, ok := checker.ExpressionType(array).(*sema.ArrayType)
		require.True(t, ok)
		assert.Equal(t, sema.UInt8Type, arrayType.Base)
		assert.Equal(t, int64(2), arrayType.Length.Int64())
		assert.Equal(t, common.DataLocationMemory, arrayType.Location)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Expr(InlineArray()))

		errs := RequireCheckerErrors(t, err, 1)

		var tupleErr *sema.InvalidTupleError
		require.ErrorAs(t, errs[0], &tupleErr)
		assert.Equal(t, "unable to deduce common type for empty array", tupleErr.Reason)
	})

	t.Run("no common type", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Expr(InlineArray(Num("1"), True())))

		errs := RequireCheckerErrors(t, err, 1)

		var tupleErr *sema.InvalidTupleError
		require.ErrorAs(t, errs[0], &tupleErr)
		assert.Contains(t, tupleErr.Reason, "unable to deduce common type for array elements")
	})
}

func TestCheckIndexAccess(t *testing.T) {

	t.Parallel()

	t.Run("storage array", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function("test", Block(Expr(Assign(Index(Id("xs"), Num("0")), Num("1"))))),
			StateVariable("xs", ArrayOf(Type("uint"), nil), nil),
		)
		require.NoError(t, err)
	})

	t.Run("mapping", func(t *testing.T) {
		t.Parallel()

		_, err := checkFunction(
			t,
			Function("test", Block(Expr(Assign(Index(Id("m"), Num("1")), True())))),
			StateVariable("m", MappingOf(Type("uint"), Type("bool")), nil),
		)
		require.NoError(t, err)
	})

	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(
				VariableIn("xs", ArrayOf(Type("uint"), Num("2")), common.DataLocationMemory),
				nil,
			),
			Expr(Index(Id("xs"), Num("3"))),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var indexErr *sema.InvalidIndexError
		require.ErrorAs(t, errs[0], &indexErr)
		assert.Equal(t, "out of bounds array access", indexErr.Reason)
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(VariableIn("s", Type("string"), common.DataLocationMemory), Str("abc")),
			Expr(Index(Id("s"), Num("0"))),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var indexErr *sema.InvalidIndexError
		require.ErrorAs(t, errs[0], &indexErr)
		assert.Equal(t, "index access for string is not possible", indexErr.Reason)
	})

	t.Run("not indexable", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("x", Type("uint")), Num("1")),
			Expr(Index(Id("x"), Num("0"))),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var indexableErr *sema.NotIndexableTypeError
		require.ErrorAs(t, errs[0], &indexableErr)
		assert.Equal(t, sema.UInt256Type, indexableErr.Type)
	})
}

func TestCheckIndexRangeAccess(t *testing.T) {

	t.Parallel()

	t.Run("calldata array", func(t *testing.T) {
		t.Parallel()

		slice := Slice(Id("xs"), Num("1"), nil)

		checker, err := checkFunction(
			t,
			Function(
				"test",
				Block(Expr(slice)),
				WithVisibility(ast.VisibilityExternal),
				WithParameters(
					VariableIn("xs", ArrayOf(Type("uint"), nil), common.DataLocationCallData),
				),
			),
		)
		require.NoError(t, err)

		require.IsType(t, &sema.ArraySliceType{}, checker.ExpressionType(slice))
	})

	t.Run("memory array", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(
				VariableIn("ys", ArrayOf(Type("uint"), nil), common.DataLocationMemory),
				Call(New(ArrayOf(Type("uint"), nil)), Num("2")),
			),
			Expr(Slice(Id("ys"), Num("0"), Num("1"))),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var indexErr *sema.InvalidIndexError
		require.ErrorAs(t, errs[0], &indexErr)
		assert.Equal(t, "index range access is only supported for dynamic calldata arrays", indexErr.Reason)
	})
}

func TestCheckNewExpression(t *testing.T) {

	t.Parallel()

	checkNew := func(t *testing.T, typeName ast.TypeName, declarations ...ast.Declaration) error {
		nodes := append(
			declarations,
			Contract("C", Function("test", Block(Expr(Call(New(typeName)))))),
		)
		_, err := Check(t, SourceUnit(nodes...))
		return err
	}

	requireNewError := func(t *testing.T, err error, reason string) {
		errs := RequireCheckerErrors(t, err, 1)

		var newErr *sema.InvalidNewExpressionError
		require.ErrorAs(t, errs[0], &newErr)
		assert.Equal(t, reason, newErr.Reason)
	}

	t.Run("contract", func(t *testing.T) {
		t.Parallel()

		call := Call(New(Type("D")))

		checker, err := Check(
			t,
			SourceUnit(
				Contract("D"),
				Contract("C", Function("test", Block(Expr(call)))),
			),
		)
		require.NoError(t, err)

		contractType, ok := checker.ExpressionType(call).(*sema.ContractType)
		require.True(t, ok)
		assert.Equal(t, "D", contractType.Declaration.Name)
	})

	t.Run("interface", func(t *testing.T) {
		t.Parallel()

		err := checkNew(t, Type("I"), Interface("I"))
		requireNewError(t, err, "cannot instantiate an interface")
	})

	t.Run("library", func(t *testing.T) {
		t.Parallel()

		err := checkNew(t, Type("L"), Library("L"))
		requireNewError(t, err, "cannot instantiate a library")
	})

	t.Run("abstract contract", func(t *testing.T) {
		t.Parallel()

		err := checkNew(t, Type("A"), AbstractContract("A"))
		requireNewError(t, err, "cannot instantiate an abstract contract")
	})

	t.Run("dynamic array", func(t *testing.T) {
		t.Parallel()

		call := Call(New(ArrayOf(Type("uint"), nil)), Num("3"))

		checker, err := CheckFunctionBody(t, Expr(call))
		require.NoError(t, err)

		assert.Equal(t, sema.FunctionCallKindFunctionCall, checker.Elaboration.FunctionCallKind(call))

		arrayType, ok := checker.ExpressionType(call).(*sema.ArrayType)
		require.True(t, ok)
		assert.Equal(t, common.DataLocationMemory, arrayType.Location)
	})

	t.Run("fixed array", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Expr(Call(New(ArrayOf(Type("uint"), Num("2"))), Num("1"))),
		)

		requireNewError(t, err, "length has to be placed in parentheses after the array type for new expression")
	})
}

func TestCheckLiteral(t *testing.T) {

	t.Parallel()

	const checksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	t.Run("checksummed address", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("a", Type("address")), Num(checksummed)),
		)
		require.NoError(t, err)
	})

	t.Run("invalid address checksum", func(t *testing.T) {
		t.Parallel()

		const lowercase = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"

		_, err := CheckFunctionBody(
			t,
			Let(Variable("a", Type("address")), Num(lowercase)),
		)

		errs := RequireCheckerErrors(t, err, 1)

		var checksumErr *sema.AddressChecksumError
		require.ErrorAs(t, errs[0], &checksumErr)
		assert.Equal(t, lowercase, checksumErr.Literal)
		assert.Equal(t, checksummed, checksumErr.ChecksummedAddress)
	})

	t.Run("unit denomination", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(
			t,
			Let(Variable("d", Type("uint")), NumWithUnit("2", "days")),
		)
		require.NoError(t, err)
	})

	t.Run("years", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Expr(NumWithUnit("1", "years")))

		errs := RequireCheckerErrors(t, err, 1)

		var literalErr *sema.InvalidLiteralError
		require.ErrorAs(t, errs[0], &literalErr)
		assert.Equal(t, `using "years" as a unit denomination is not allowed`, literalErr.Reason)
	})

	t.Run("invalid hex string", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Expr(HexStr("zz")))

		errs := RequireCheckerErrors(t, err, 1)

		var literalErr *sema.InvalidLiteralError
		require.ErrorAs(t, errs[0], &literalErr)
		assert.Equal(t, "invalid hex string", literalErr.Reason)
	})
}
