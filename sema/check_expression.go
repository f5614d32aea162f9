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
	"math/big"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

func (checker *Checker) VisitIdentifier(identifier *ast.Identifier) Type {
	annotation := checker.expressionAnnotation(identifier)

	if len(identifier.Candidates) == 0 {
		if replacement, ok := deprecatedMagicReplacement(identifier.Name); ok {
			checker.report(
				&DeprecatedIdentifierError{
					Name:        identifier.Name,
					Replacement: replacement,
					Range:       identifier.Range,
				},
			)
			return InvalidType
		}
	}

	candidates := checker.identifierCandidates(identifier)
	resolution := resolveCandidates(candidates, annotation)
	if !resolution.ok() {
		checker.reportResolutionFailure(identifier.Name, resolution, annotation, identifier)
		return InvalidType
	}

	candidate := resolution.Candidate
	annotation.ReferencedDeclaration = candidate.Declaration

	switch declaration := candidate.Declaration.(type) {
	case *ast.VariableDeclaration:
		annotation.IsPure = declaration.IsConstant()
		annotation.IsLValue = checker.isAssignableVariable(declaration)
		checker.checkStateAccess(declaration, annotation, identifier)

	case *ast.FunctionDefinition,
		*ast.ContractDefinition,
		*ast.StructDefinition,
		*ast.EnumDefinition:

		annotation.IsPure = true

	case nil:
		// Built-in functions and types are constant
		if _, ok := candidate.Type.(*FunctionType); ok {
			annotation.IsPure = true
		}
	}

	return candidate.Type
}

// isAssignableVariable reports whether the variable may be assigned at the current position.
// Immutables can only be assigned in the constructor of their contract.
func (checker *Checker) isAssignableVariable(variable *ast.VariableDeclaration) bool {
	switch {
	case variable.IsConstant():
		return false
	case variable.IsImmutable():
		function := checker.currentFunction()
		return function != nil &&
			function.IsConstructor() &&
			checker.declaringContract(variable) == checker.currentContract()
	}
	return true
}

// checkStateAccess reports reads of state variables in pure functions,
// and writes in view or pure functions
func (checker *Checker) checkStateAccess(
	variable *ast.VariableDeclaration,
	annotation *ExpressionAnnotation,
	hasPosition ast.HasPosition,
) {
	if !variable.IsStateVariable() || variable.IsConstant() {
		return
	}

	function := checker.currentFunction()
	if function == nil {
		return
	}

	switch function.StateMutability {
	case ast.StateMutabilityPure:
		checker.report(
			&InvalidStateMutabilityError{
				Reason: "function declared as pure, but this expression reads from the environment or state",
				Range:  ast.NewRangeFromPositioned(hasPosition),
			},
		)

	case ast.StateMutabilityView:
		if annotation.LValueRequested && !variable.IsImmutable() {
			checker.report(
				&InvalidStateMutabilityError{
					Reason: "function declared as view, but this expression modifies the state",
					Range:  ast.NewRangeFromPositioned(hasPosition),
				},
			)
		}
	}
}

func (checker *Checker) VisitLiteral(literal *ast.Literal) Type {
	annotation := checker.expressionAnnotation(literal)
	annotation.IsPure = true

	if literal.LooksLikeAddress() {
		if !PassesAddressChecksum(literal.Value) {
			checker.report(
				&AddressChecksumError{
					Literal:            literal.Value,
					ChecksummedAddress: ChecksummedAddress(literal.Value),
					Range:              literal.Range,
				},
			)
			return InvalidType
		}
		return TheAddressType
	}

	ty, reason := LiteralType(literal)
	if ty == nil {
		checker.report(
			&InvalidLiteralError{
				Reason: reason,
				Range:  literal.Range,
			},
		)
		return InvalidType
	}

	return ty
}

func (checker *Checker) VisitElementaryTypeNameExpression(expression *ast.ElementaryTypeNameExpression) Type {
	annotation := checker.expressionAnnotation(expression)
	annotation.IsPure = true

	return &TypeType{
		Actual: checker.ConvertType(expression.TypeName),
	}
}

func (checker *Checker) VisitTupleExpression(expression *ast.TupleExpression) Type {
	annotation := checker.expressionAnnotation(expression)

	if expression.IsInlineArray {
		return checker.checkInlineArray(expression, annotation)
	}

	components := make([]Type, len(expression.Components))
	isPure := true

	for i, component := range expression.Components {
		if component == nil {
			if !annotation.LValueRequested {
				checker.report(
					&InvalidTupleError{
						Reason: "tuple component cannot be empty",
						Range:  expression.Range,
					},
				)
				components[i] = InvalidType
			}
			continue
		}

		if annotation.LValueRequested {
			components[i] = checker.requireLValue(component, true)
		} else {
			components[i] = checker.visitExpression(component)
		}

		isPure = isPure && checker.isPure(component)
	}

	annotation.IsPure = isPure
	annotation.IsLValue = annotation.LValueRequested

	// A parenthesized expression has the type of the expression itself
	if len(components) == 1 && components[0] != nil {
		return components[0]
	}

	return NewTupleType(components...)
}

func (checker *Checker) checkInlineArray(expression *ast.TupleExpression, annotation *ExpressionAnnotation) Type {
	if len(expression.Components) == 0 {
		checker.report(
			&InvalidTupleError{
				Reason: "unable to deduce common type for empty array",
				Range:  expression.Range,
			},
		)
		return InvalidType
	}

	var commonType Type
	isPure := true

	for _, component := range expression.Components {
		if component == nil {
			checker.report(
				&InvalidTupleError{
					Reason: "array component cannot be empty",
					Range:  expression.Range,
				},
			)
			return InvalidType
		}

		componentType := checker.visitExpression(component)
		isPure = isPure && checker.isPure(component)

		if componentType.IsInvalidType() || (commonType != nil && commonType.IsInvalidType()) {
			commonType = InvalidType
			continue
		}

		mobileType := MobileType(componentType)
		if mobileType == nil {
			checker.report(
				&InvalidTupleError{
					Reason: fmt.Sprintf("invalid mobile type in inline array: `%s`", componentType),
					Range:  ast.NewRangeFromPositioned(component),
				},
			)
			commonType = InvalidType
			continue
		}

		if commonType == nil {
			commonType = mobileType
			continue
		}

		next := CommonType(commonType, mobileType)
		if next == nil {
			checker.report(
				&InvalidTupleError{
					Reason: fmt.Sprintf(
						"unable to deduce common type for array elements: `%s` and `%s`",
						commonType,
						mobileType,
					),
					Range: ast.NewRangeFromPositioned(component),
				},
			)
			commonType = InvalidType
			continue
		}
		commonType = next
	}

	annotation.IsPure = isPure

	if commonType.IsInvalidType() {
		return InvalidType
	}

	if _, ok := commonType.(*MappingType); ok {
		checker.report(
			&InvalidTupleError{
				Reason: "inline arrays of mappings are not allowed",
				Range:  expression.Range,
			},
		)
		return InvalidType
	}

	return NewFixedArrayType(
		withLocationIfReference(commonType, common.DataLocationMemory, false),
		big.NewInt(int64(len(expression.Components))),
		common.DataLocationMemory,
	)
}

func (checker *Checker) VisitConditional(conditional *ast.Conditional) Type {
	annotation := checker.expressionAnnotation(conditional)

	checker.expectType(conditional.Condition, BoolType)

	trueType := checker.visitExpression(conditional.TrueExpression)
	falseType := checker.visitExpression(conditional.FalseExpression)

	annotation.IsPure = checker.isPure(conditional.Condition) &&
		checker.isPure(conditional.TrueExpression) &&
		checker.isPure(conditional.FalseExpression)

	if trueType.IsInvalidType() || falseType.IsInvalidType() {
		return InvalidType
	}

	trueMobileType := MobileType(trueType)
	if trueMobileType == nil {
		checker.report(
			&InvalidLiteralError{
				Reason: fmt.Sprintf("true expression has invalid mobile type `%s`", trueType),
				Range:  ast.NewRangeFromPositioned(conditional.TrueExpression),
			},
		)
		return InvalidType
	}

	falseMobileType := MobileType(falseType)
	if falseMobileType == nil {
		checker.report(
			&InvalidLiteralError{
				Reason: fmt.Sprintf("false expression has invalid mobile type `%s`", falseType),
				Range:  ast.NewRangeFromPositioned(conditional.FalseExpression),
			},
		)
		return InvalidType
	}

	commonType := CommonType(trueMobileType, falseMobileType)
	if commonType == nil {
		checker.report(
			&TypeMismatchError{
				ExpectedType: trueMobileType,
				ActualType:   falseMobileType,
				Range:        ast.NewRangeFromPositioned(conditional.FalseExpression),
			},
		)
		return InvalidType
	}

	if _, ok := commonType.(*MappingType); ok {
		checker.report(
			&TypeMismatchWithDescriptionError{
				ExpectedTypeDescription: "a non-mapping type",
				ActualType:              commonType,
				Range:                   conditional.Range,
			},
		)
		return InvalidType
	}

	return commonType
}

func (checker *Checker) VisitNewExpression(expression *ast.NewExpression) Type {
	ty := checker.ConvertType(expression.TypeName)

	reportInvalid := func(reason string) Type {
		checker.report(
			&InvalidNewExpressionError{
				Reason: reason,
				Range:  expression.Range,
			},
		)
		return InvalidType
	}

	switch ty := ty.(type) {
	case *ContractType:
		declaration := ty.Declaration
		switch {
		case declaration.IsInterface():
			return reportInvalid("cannot instantiate an interface")
		case declaration.IsLibrary():
			return reportInvalid("cannot instantiate a library")
		case declaration.Abstract:
			return reportInvalid("cannot instantiate an abstract contract")
		}

		var parameters []Type
		var parameterNames []string
		mutability := ast.StateMutabilityNonPayable

		if constructor := declaration.Constructor(); constructor != nil {
			constructorType := checker.functionType(constructor)
			parameters = constructorType.Parameters
			parameterNames = constructorType.ParameterNames
			mutability = constructor.StateMutability
		}

		return &FunctionType{
			Kind:             FunctionKindCreation,
			Parameters:       parameters,
			ParameterNames:   parameterNames,
			ReturnParameters: []Type{ty},
			StateMutability:  mutability,
			Declaration:      declaration,
		}

	case *ArrayType:
		if !ty.IsDynamicallySized() {
			return reportInvalid("length has to be placed in parentheses after the array type for new expression")
		}
		if ContainsMapping(ty) {
			return reportInvalid("arrays containing mappings cannot be created in memory")
		}

		return &FunctionType{
			Kind:             FunctionKindObjectCreation,
			Parameters:       []Type{UInt256Type},
			ReturnParameters: []Type{ty.WithLocation(common.DataLocationMemory, false)},
			StateMutability:  ast.StateMutabilityPure,
		}
	}

	if ty.IsInvalidType() {
		return InvalidType
	}

	return reportInvalid("contract or array type expected")
}

func (checker *Checker) VisitAwaitExpression(expression *ast.AwaitExpression) Type {
	operandType := checker.visitExpression(expression.Expression)

	if !checker.requireFeature(FeatureAsyncAwait, expression) {
		return InvalidType
	}

	if reason := checker.awaitNotPermittedReason(); reason != "" {
		checker.report(
			&InvalidAwaitError{
				Reason: reason,
				Range:  expression.Range,
			},
		)
		return InvalidType
	}

	if operandType.IsInvalidType() {
		return InvalidType
	}

	pendingType, ok := operandType.(*PendingResultType)
	if !ok {
		checker.report(
			&NotAwaitableTypeError{
				Type:  operandType,
				Range: ast.NewRangeFromPositioned(expression.Expression),
			},
		)
		return InvalidType
	}

	return pendingType.Payload
}

// awaitNotPermittedReason explains why execution cannot be suspended at the current position
func (checker *Checker) awaitNotPermittedReason() string {
	function := checker.currentFunction()
	if function == nil || function.Body == nil {
		return "await can only be used in function bodies"
	}

	switch function.Kind {
	case ast.FunctionKindConstructor,
		ast.FunctionKindFallback,
		ast.FunctionKindReceive:

		return fmt.Sprintf("await cannot be used in a %s", function.Kind.Name())
	}

	switch function.StateMutability {
	case ast.StateMutabilityPure, ast.StateMutabilityView:
		return fmt.Sprintf("await cannot be used in %s functions", function.StateMutability.Keyword())
	}

	return ""
}
