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
	"fmt"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

func (checker *Checker) VisitFunctionDefinition(function *ast.FunctionDefinition) (_ struct{}) {
	checker.withContext(
		func(frame *checkingContext) {
			frame.function = function
			frame.modifier = nil
			frame.loopDepth = 0
			frame.unchecked = false
		},
		func() {
			functionType := checker.functionType(function)

			checker.checkFunctionDeclaration(function, functionType)

			switch function.Kind {
			case ast.FunctionKindConstructor:
				checker.checkConstructor(function, functionType)
			case ast.FunctionKindFallback:
				checker.checkFallbackFunction(function, functionType)
			case ast.FunctionKindReceive:
				checker.checkReceiveFunction(function, functionType)
			}

			for _, invocation := range function.Modifiers {
				checker.checkModifierInvocation(function, invocation)
			}

			if function.Body != nil {
				checker.visitStatement(function.Body)
			}
		},
	)

	return
}

func (checker *Checker) checkFunctionDeclaration(function *ast.FunctionDefinition, functionType *FunctionType) {
	contract := checker.currentContract()

	reportInvalid := func(reason string) {
		checker.report(
			&InvalidDeclarationError{
				Kind:   function.DeclarationKind(),
				Name:   function.Name,
				Reason: reason,
				Range:  function.Range,
			},
		)
	}

	if contract == nil {
		if !function.IsImplemented() {
			reportInvalid("free functions must be implemented")
		}
		if function.Visibility != ast.VisibilityDefault {
			reportInvalid("free functions cannot have visibility")
		}
		if function.Virtual {
			reportInvalid("free functions cannot be virtual")
		}
	} else {
		switch {
		case contract.IsInterface():
			if function.Kind == ast.FunctionKindFunction &&
				function.EffectiveVisibility() != ast.VisibilityExternal {

				reportInvalid("functions in interfaces must be declared external")
			}
			if function.IsImplemented() {
				reportInvalid("functions in interfaces cannot have an implementation")
			}

		case contract.IsLibrary():
			if function.IsPayable() {
				reportInvalid("library functions cannot be payable")
			}
			if function.Virtual {
				reportInvalid("library functions cannot be virtual")
			}

		default:
			if !function.IsImplemented() && !function.Virtual {
				reportInvalid("functions without implementation must be marked virtual")
			}
		}
	}

	visibility := function.EffectiveVisibility()

	if function.Virtual && visibility == ast.VisibilityPrivate {
		reportInvalid("private functions cannot be virtual")
	}

	if function.IsPayable() && !visibility.IsExternallyVisible() {
		reportInvalid("internal functions cannot be payable")
	}

	inLibrary := contract != nil && contract.IsLibrary()
	isInternal := visibility == ast.VisibilityInternal || visibility == ast.VisibilityPrivate

	checkParameters := func(parameters *ast.ParameterList, types []Type) {
		for i, parameter := range parameters.List() {
			parameterType := types[i]
			if parameterType.IsInvalidType() {
				continue
			}

			if ContainsMapping(parameterType) && !isInternal && !inLibrary {
				checker.reportInvalidVariable(
					parameter,
					"mapping types can only be parameters or return variables of internal or library functions",
				)
				continue
			}

			if !visibility.IsExternallyVisible() || function.Kind != ast.FunctionKindFunction {
				continue
			}

			if !IsABIEncodable(parameterType, inLibrary, checker.useABICoderV2()) {
				_, reason := ABIInterfaceType(parameterType, inLibrary)
				if reason == "" {
					reason = "this type is only supported in ABI coder v2"
				}
				checker.reportInvalidVariable(
					parameter,
					fmt.Sprintf("type `%s` is not supported in public or external functions: %s", parameterType, reason),
				)
			}
		}
	}

	checkParameters(function.Parameters, functionType.Parameters)
	checkParameters(function.ReturnParameters, functionType.ReturnParameters)
}

func (checker *Checker) reportInvalidSpecialFunction(function *ast.FunctionDefinition, reason string) {
	checker.report(
		&InvalidSpecialFunctionError{
			Kind:   function.Kind,
			Reason: reason,
			Range:  function.Range,
		},
	)
}

func (checker *Checker) checkSpecialFunctionContract(function *ast.FunctionDefinition) {
	contract := checker.currentContract()
	switch {
	case contract == nil:
		checker.reportInvalidSpecialFunction(function, "must be declared in a contract")
	case contract.IsLibrary():
		checker.reportInvalidSpecialFunction(function, "libraries cannot have special functions")
	case contract.IsInterface() && function.IsConstructor():
		checker.reportInvalidSpecialFunction(function, "interfaces cannot have constructors")
	}
}

func (checker *Checker) checkConstructor(function *ast.FunctionDefinition, functionType *FunctionType) {
	checker.checkSpecialFunctionContract(function)

	if function.Virtual {
		checker.reportInvalidSpecialFunction(function, "constructors cannot be virtual")
	}

	if len(functionType.ReturnParameters) > 0 {
		checker.reportInvalidSpecialFunction(function, "non-empty return parameters for constructor")
	}

	switch function.Visibility {
	case ast.VisibilityPrivate, ast.VisibilityExternal:
		checker.reportInvalidSpecialFunction(function, "constructor visibility must be public or internal")
	}

	switch function.StateMutability {
	case ast.StateMutabilityPure, ast.StateMutabilityView:
		checker.reportInvalidSpecialFunction(function, "constructor must be payable or non-payable")
	}
}

func (checker *Checker) checkFallbackFunction(function *ast.FunctionDefinition, functionType *FunctionType) {
	checker.checkSpecialFunctionContract(function)

	if function.EffectiveVisibility() != ast.VisibilityExternal {
		checker.reportInvalidSpecialFunction(function, "fallback function must be defined as external")
	}

	switch function.StateMutability {
	case ast.StateMutabilityPure, ast.StateMutabilityView:
		checker.reportInvalidSpecialFunction(function, "fallback function must be payable or non-payable")
	}

	// Either `fallback()` or `fallback(bytes calldata) returns (bytes memory)`

	parameterCount := len(functionType.Parameters)
	returnCount := len(functionType.ReturnParameters)

	validShape := false
	switch {
	case parameterCount == 0 && returnCount == 0:
		validShape = true
	case parameterCount == 1 && returnCount == 1:
		validShape = isBytesIn(functionType.Parameters[0], common.DataLocationCallData) &&
			isBytesIn(functionType.ReturnParameters[0], common.DataLocationMemory)
	}

	if !validShape {
		checker.reportInvalidSpecialFunction(
			function,
			"fallback function either has to have the signature `fallback()` "+
				"or `fallback(bytes calldata) returns (bytes memory)`",
		)
	}
}

func isBytesIn(ty Type, location common.DataLocation) bool {
	if ty.IsInvalidType() {
		return true
	}
	arrayType, ok := ty.(*ArrayType)
	return ok &&
		arrayType.Kind == ArrayKindBytes &&
		arrayType.Location == location
}

func (checker *Checker) checkReceiveFunction(function *ast.FunctionDefinition, functionType *FunctionType) {
	checker.checkSpecialFunctionContract(function)

	if function.EffectiveVisibility() != ast.VisibilityExternal {
		checker.reportInvalidSpecialFunction(function, "receive function must be defined as external")
	}

	if !function.IsPayable() {
		checker.reportInvalidSpecialFunction(function, "receive function must be payable")
	}

	if len(functionType.Parameters) > 0 {
		checker.reportInvalidSpecialFunction(function, "receive function cannot take parameters")
	}

	if len(functionType.ReturnParameters) > 0 {
		checker.reportInvalidSpecialFunction(function, "receive function cannot return values")
	}
}

// checkModifierInvocation checks a modifier applied to the function,
// or, for constructors, the arguments passed to a base constructor
func (checker *Checker) checkModifierInvocation(
	function *ast.FunctionDefinition,
	invocation *ast.ModifierInvocation,
) {
	argumentTypes := make([]Type, len(invocation.Arguments))
	for i, argument := range invocation.Arguments {
		argumentTypes[i] = checker.VisitExpression(argument, nil)
	}

	switch declaration := invocation.Name.Declaration.(type) {
	case *ast.ModifierDefinition:
		modifierType := checker.modifierType(declaration)
		checker.checkConstructorArguments(
			invocation,
			invocation.Arguments,
			argumentTypes,
			modifierType.Parameters,
		)

	case *ast.ContractDefinition:
		contract := checker.currentContract()
		if !function.IsConstructor() ||
			contract == nil ||
			declaration == contract ||
			!IsBaseContract(declaration, contract) {

			checker.report(
				&InvalidModifierError{
					Reason: fmt.Sprintf("`%s` is not a base contract of the constructor's contract", invocation.Name),
					Range:  invocation.Range,
				},
			)
			return
		}

		var parameterTypes []Type
		if constructor := declaration.Constructor(); constructor != nil {
			parameterTypes = checker.functionType(constructor).Parameters
		}
		checker.checkConstructorArguments(
			invocation,
			invocation.Arguments,
			argumentTypes,
			parameterTypes,
		)

	case nil:
		checker.report(
			&NotDeclaredError{
				Name:  invocation.Name.String(),
				Range: invocation.Name.Range,
			},
		)

	default:
		checker.report(
			&InvalidModifierError{
				Reason: "referenced declaration is neither modifier nor base contract",
				Range:  invocation.Range,
			},
		)
	}
}

func (checker *Checker) VisitModifierDefinition(modifier *ast.ModifierDefinition) (_ struct{}) {
	checker.withContext(
		func(frame *checkingContext) {
			frame.function = nil
			frame.modifier = modifier
			frame.loopDepth = 0
			frame.unchecked = false
		},
		func() {
			checker.modifierType(modifier)

			if modifier.Body == nil && !modifier.Virtual {
				checker.report(
					&InvalidModifierError{
						Reason: "modifiers without implementation must be marked virtual",
						Range:  modifier.Range,
					},
				)
			}

			if contract := checker.currentContract(); contract != nil && contract.IsInterface() {
				checker.report(
					&InvalidModifierError{
						Reason: "modifiers cannot be declared in interfaces",
						Range:  modifier.Range,
					},
				)
			}

			if modifier.Body != nil {
				checker.visitStatement(modifier.Body)
			}
		},
	)

	return
}
