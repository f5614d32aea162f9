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

func requireInvalidFunction(t *testing.T, err error, reason string) {
	t.Helper()

	errs := RequireCheckerErrors(t, err, 1)

	var declarationErr *sema.InvalidDeclarationError
	require.ErrorAs(t, errs[0], &declarationErr)
	assert.Equal(t, reason, declarationErr.Reason)
}

func requireInvalidSpecialFunction(t *testing.T, err error, reason string) {
	t.Helper()

	errs := RequireCheckerErrors(t, err, 1)

	var specialErr *sema.InvalidSpecialFunctionError
	require.ErrorAs(t, errs[0], &specialErr)
	assert.Equal(t, reason, specialErr.Reason)
}

func TestCheckFunctionDeclaration(t *testing.T) {

	t.Parallel()

	t.Run("free function", func(t *testing.T) {
		t.Parallel()

		_, err := Check(
			t,
			SourceUnit(
				FreeFunction(
					"double",
					Block(Return(Binary(ast.OperationMul, Id("x"), Num("2")))),
					WithParameters(Variable("x", Type("uint"))),
					WithReturns(Variable("", Type("uint"))),
					WithMutability(ast.StateMutabilityPure),
				),
			),
		)
		require.NoError(t, err)
	})

	t.Run("unimplemented free function", func(t *testing.T) {
		t.Parallel()

		_, err := Check(t, SourceUnit(FreeFunction("f", nil)))
		requireInvalidFunction(t, err, "free functions must be implemented")
	})

	t.Run("free function with visibility", func(t *testing.T) {
		t.Parallel()

		function := FreeFunction("f", Block())
		function.Visibility = ast.VisibilityPublic

		_, err := Check(t, SourceUnit(function))
		requireInvalidFunction(t, err, "free functions cannot have visibility")
	})

	t.Run("interface function", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Interface(
				"I",
				Function("f", nil, WithVisibility(ast.VisibilityExternal)),
			),
		)
		require.NoError(t, err)
	})

	t.Run("public interface function", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Interface("I", Function("f", nil)),
		)
		requireInvalidFunction(t, err, "functions in interfaces must be declared external")
	})

	t.Run("implemented interface function", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Interface(
				"I",
				Function("f", Block(), WithVisibility(ast.VisibilityExternal)),
			),
		)
		requireInvalidFunction(t, err, "functions in interfaces cannot have an implementation")
	})

	t.Run("payable library function", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Library(
				"L",
				Function("f", Block(), WithMutability(ast.StateMutabilityPayable)),
			),
		)
		requireInvalidFunction(t, err, "library functions cannot be payable")
	})

	t.Run("unimplemented non-virtual function", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			AbstractContract("C", Function("f", nil)),
		)
		requireInvalidFunction(t, err, "functions without implementation must be marked virtual")
	})

	t.Run("private virtual function", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				Function("f", Block(), WithVisibility(ast.VisibilityPrivate), IsVirtual),
			),
		)
		requireInvalidFunction(t, err, "private functions cannot be virtual")
	})

	t.Run("internal payable function", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				Function(
					"f",
					Block(),
					WithVisibility(ast.VisibilityInternal),
					WithMutability(ast.StateMutabilityPayable),
				),
			),
		)
		requireInvalidFunction(t, err, "internal functions cannot be payable")
	})

	t.Run("mapping parameter of public function", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				Function(
					"f",
					Block(),
					WithParameters(
						VariableIn("m", MappingOf(Type("uint"), Type("uint")), common.DataLocationStorage),
					),
				),
			),
		)
		requireInvalidFunction(
			t,
			err,
			"mapping types can only be parameters or return variables of internal or library functions",
		)
	})

	t.Run("mapping parameter of internal function", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				Function(
					"f",
					Block(),
					WithVisibility(ast.VisibilityInternal),
					WithParameters(
						VariableIn("m", MappingOf(Type("uint"), Type("uint")), common.DataLocationStorage),
					),
				),
			),
		)
		require.NoError(t, err)
	})
}

func TestCheckStructParameterABICoder(t *testing.T) {

	t.Parallel()

	sourceUnit := func(coder string) *ast.SourceUnit {
		sourceUnit := SourceUnit(
			Contract(
				"C",
				Struct("S", Variable("x", Type("uint"))),
				Function(
					"f",
					Block(),
					WithParameters(VariableIn("s", Type("S"), common.DataLocationMemory)),
				),
			),
		)
		sourceUnit.Pragmas = []*ast.PragmaDirective{
			Pragma("abicoder", coder),
		}
		return sourceUnit
	}

	t.Run("v2", func(t *testing.T) {
		t.Parallel()

		_, err := Check(t, sourceUnit("v2"))
		require.NoError(t, err)
	})

	t.Run("v1", func(t *testing.T) {
		t.Parallel()

		_, err := Check(t, sourceUnit("v1"))

		errs := RequireCheckerErrors(t, err, 1)

		var declarationErr *sema.InvalidDeclarationError
		require.ErrorAs(t, errs[0], &declarationErr)
		assert.Contains(t, declarationErr.Reason, "only supported in ABI coder v2")
	})
}

func TestCheckConstructor(t *testing.T) {

	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				Constructor(Block(), WithMutability(ast.StateMutabilityPayable)),
			),
		)
		require.NoError(t, err)
	})

	t.Run("return parameters", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				Constructor(Block(), WithReturns(Variable("", Type("uint")))),
			),
		)
		requireInvalidSpecialFunction(t, err, "non-empty return parameters for constructor")
	})

	t.Run("private", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				Constructor(Block(), WithVisibility(ast.VisibilityPrivate)),
			),
		)
		requireInvalidSpecialFunction(t, err, "constructor visibility must be public or internal")
	})

	t.Run("view", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				Constructor(Block(), WithMutability(ast.StateMutabilityView)),
			),
		)
		requireInvalidSpecialFunction(t, err, "constructor must be payable or non-payable")
	})

	t.Run("in library", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Library("L", Constructor(Block())),
		)
		requireInvalidSpecialFunction(t, err, "libraries cannot have special functions")
	})
}

func TestCheckFallbackFunction(t *testing.T) {

	t.Parallel()

	fallback := func(options ...FunctionOption) *ast.FunctionDefinition {
		return Function(
			"",
			Block(),
			append(
				[]FunctionOption{
					WithKind(ast.FunctionKindFallback),
					WithVisibility(ast.VisibilityExternal),
				},
				options...,
			)...,
		)
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(t, Contract("C", fallback()))
		require.NoError(t, err)
	})

	t.Run("with input and output", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				fallback(
					WithParameters(VariableIn("input", Type("bytes"), common.DataLocationCallData)),
					WithReturns(VariableIn("output", Type("bytes"), common.DataLocationMemory)),
				),
			),
		)
		require.NoError(t, err)
	})

	t.Run("public", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract("C", fallback(WithVisibility(ast.VisibilityPublic))),
		)
		requireInvalidSpecialFunction(t, err, "fallback function must be defined as external")
	})

	t.Run("view", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract("C", fallback(WithMutability(ast.StateMutabilityView))),
		)
		requireInvalidSpecialFunction(t, err, "fallback function must be payable or non-payable")
	})

	t.Run("invalid signature", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				fallback(WithParameters(Variable("x", Type("uint")))),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidSpecialFunctionError{}, errs[0])
	})
}

func TestCheckReceiveFunction(t *testing.T) {

	t.Parallel()

	receive := func(options ...FunctionOption) *ast.FunctionDefinition {
		return Function(
			"",
			Block(),
			append(
				[]FunctionOption{
					WithKind(ast.FunctionKindReceive),
					WithVisibility(ast.VisibilityExternal),
					WithMutability(ast.StateMutabilityPayable),
				},
				options...,
			)...,
		)
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(t, Contract("C", receive()))
		require.NoError(t, err)
	})

	t.Run("non-payable", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract("C", receive(WithMutability(ast.StateMutabilityNonPayable))),
		)
		requireInvalidSpecialFunction(t, err, "receive function must be payable")
	})

	t.Run("parameters", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract("C", receive(WithParameters(Variable("x", Type("uint"))))),
		)
		requireInvalidSpecialFunction(t, err, "receive function cannot take parameters")
	})

	t.Run("return values", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract("C", receive(WithReturns(Variable("", Type("uint"))))),
		)
		requireInvalidSpecialFunction(t, err, "receive function cannot return values")
	})
}

func TestCheckModifiers(t *testing.T) {

	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				StateVariable("owner", Type("address"), nil),
				Modifier(
					"onlyOwner",
					Block(
						Expr(Call(
							Id("require"),
							Binary(ast.OperationEqual, Member(Id("msg"), "sender"), Id("owner")),
						)),
						Placeholder(),
					),
				),
				Function("f", Block(), WithModifiers(Invoke("onlyOwner"))),
			),
		)
		require.NoError(t, err)
	})

	t.Run("argument count", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				Modifier("m", Block(Placeholder()), Variable("x", Type("uint"))),
				Function("f", Block(), WithModifiers(Invoke("m"))),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.ArgumentCountError{}, errs[0])
	})

	t.Run("argument type", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				Modifier("m", Block(Placeholder()), Variable("x", Type("uint"))),
				Function("f", Block(), WithModifiers(Invoke("m", True()))),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.TypeMismatchError{}, errs[0])
	})

	t.Run("not declared", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			Contract(
				"C",
				Function("f", Block(), WithModifiers(Invoke("missing"))),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.NotDeclaredError{}, errs[0])
	})

	t.Run("base constructor", func(t *testing.T) {
		t.Parallel()

		_, err := Check(
			t,
			SourceUnit(
				Contract(
					"A",
					Constructor(Block(), WithParameters(Variable("x", Type("uint")))),
				),
				Inherits(
					Contract(
						"B",
						Constructor(Block(), WithModifiers(Invoke("A", Num("1")))),
					),
					Base("A"),
				),
			),
		)
		require.NoError(t, err)
	})

	t.Run("not a base contract", func(t *testing.T) {
		t.Parallel()

		_, err := Check(
			t,
			SourceUnit(
				Contract("A"),
				Contract(
					"B",
					Constructor(Block(), WithModifiers(Invoke("A"))),
				),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidModifierError{}, errs[0])
	})

	t.Run("unimplemented", func(t *testing.T) {
		t.Parallel()

		_, err := CheckContract(
			t,
			AbstractContract("C", Modifier("m", nil)),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidModifierError{}, errs[0])
	})

	t.Run("placeholder outside modifier", func(t *testing.T) {
		t.Parallel()

		_, err := CheckFunctionBody(t, Placeholder())

		errs := RequireCheckerErrors(t, err, 1)

		var modifierErr *sema.InvalidModifierError
		require.ErrorAs(t, errs[0], &modifierErr)
		assert.Equal(t, "placeholder statement can only be used in modifiers", modifierErr.Reason)
	})

	t.Run("return value in modifier", func(t *testing.T) {
		t.Parallel()

		checker, err := CheckContract(
			t,
			Contract(
				"C",
				Modifier("m", Block(Return(Num("1")), Placeholder())),
			),
		)

		errs := RequireCheckerErrors(t, err, 1)
		require.IsType(t, &sema.InvalidReturnError{}, errs[0])

		warnings := RequireWarnings(t, checker, 1)
		require.IsType(t, &sema.UnreachableCodeWarning{}, warnings[0])
	})
}
