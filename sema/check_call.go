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

	"github.com/hashicorp/go-set/v3"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

func (checker *Checker) VisitFunctionCall(call *ast.FunctionCall) Type {
	argumentTypes := make([]Type, len(call.Arguments))
	for i, argument := range call.Arguments {
		argumentTypes[i] = checker.visitExpression(argument)
	}

	calleeAnnotation := checker.expressionAnnotation(call.Expression)
	calleeAnnotation.IsCallee = true
	calleeAnnotation.ArgumentTypes = argumentTypes
	calleeAnnotation.ArgumentNames = call.Names

	calleeType := checker.visitExpression(call.Expression)
	if calleeType.IsInvalidType() {
		return InvalidType
	}

	switch calleeType := calleeType.(type) {
	case *TypeType:
		if structType, ok := calleeType.Actual.(*StructType); ok {
			return checker.checkStructConstructorCall(call, structType, argumentTypes)
		}
		return checker.checkTypeConversion(call, calleeType.Actual, argumentTypes)

	case *FunctionType:
		return checker.checkFunctionCall(call, calleeType, argumentTypes)

	default:
		checker.report(
			&NotCallableError{
				Type:  calleeType,
				Range: call.Range,
			},
		)
		return InvalidType
	}
}

// checkTypeConversion checks an explicit conversion `T(x)`.
// Reference types keep the data location of the converted value.
func (checker *Checker) checkTypeConversion(
	call *ast.FunctionCall,
	targetType Type,
	argumentTypes []Type,
) Type {
	checker.Elaboration.SetFunctionCallKind(call, FunctionCallKindTypeConversion)

	if len(call.Names) > 0 {
		checker.report(
			&InvalidNamedArgumentError{
				Name:   call.Names[0],
				Reason: "type conversions cannot take named arguments",
				Range:  call.Range,
			},
		)
	}

	if len(argumentTypes) != 1 {
		checker.report(
			&ArgumentCountError{
				ParameterCount: 1,
				ArgumentCount:  len(argumentTypes),
				Range:          call.Range,
			},
		)
		return withLocationIfReference(targetType, common.DataLocationMemory, false)
	}

	argumentType := argumentTypes[0]

	resultType := targetType
	if referenceType, ok := targetType.(ReferenceType); ok {
		location := common.DataLocationMemory
		isPointer := false
		if argumentReference, ok := argumentType.(ReferenceType); ok {
			location = argumentReference.DataLocation()
			isPointer = location == common.DataLocationStorage
		}
		resultType = referenceType.WithLocation(location, isPointer)
	}

	if !argumentType.IsInvalidType() &&
		!IsExplicitlyConvertible(argumentType, resultType) {

		checker.report(
			&InvalidConversionError{
				FromType: argumentType,
				ToType:   resultType,
				Range:    call.Range,
			},
		)
	}

	checker.expressionAnnotation(call).IsPure = checker.isPure(call.Arguments[0])

	return resultType
}

// checkStructConstructorCall checks `S(a, b)` and `S({x: a, y: b})`.
// Members that contain mappings cannot be initialized and are skipped.
func (checker *Checker) checkStructConstructorCall(
	call *ast.FunctionCall,
	structType *StructType,
	argumentTypes []Type,
) Type {
	checker.Elaboration.SetFunctionCallKind(call, FunctionCallKindStructConstructorCall)

	resultType := structType.WithLocation(common.DataLocationMemory, false)

	var members []*StructMember
	for _, member := range structType.Info.Members {
		if ContainsMapping(member.Type) {
			continue
		}
		members = append(members, member)
	}

	parameterTypes := make([]Type, len(members))
	parameterNames := make([]string, len(members))
	for i, member := range members {
		parameterTypes[i] = withLocationIfReference(member.Type, common.DataLocationMemory, false)
		parameterNames[i] = member.Name
	}

	checker.checkCallArguments(
		call,
		&FunctionType{
			Parameters:     parameterTypes,
			ParameterNames: parameterNames,
		},
		argumentTypes,
	)

	return resultType
}

func (checker *Checker) checkFunctionCall(
	call *ast.FunctionCall,
	functionType *FunctionType,
	argumentTypes []Type,
) Type {
	checker.Elaboration.SetFunctionCallKind(call, FunctionCallKindFunctionCall)

	annotation := checker.expressionAnnotation(call)

	switch functionType.Kind {
	case FunctionKindEvent:
		checker.checkEventUsage(call, EventFlavorEvent)

	case FunctionKindMessage:
		checker.checkEventUsage(call, EventFlavorMessage)

	case FunctionKindMetaType:
		return checker.checkMetaTypeCall(call, argumentTypes)

	case FunctionKindABIDecode:
		annotation.IsPure = checker.argumentsArePure(call)
		return checker.checkABIDecode(call, argumentTypes)

	case FunctionKindABIEncode,
		FunctionKindABIEncodePacked,
		FunctionKindABIEncodeWithSelector,
		FunctionKindABIEncodeWithSignature:

		annotation.IsPure = checker.argumentsArePure(call)
		return checker.checkABIEncode(call, functionType, argumentTypes)

	case FunctionKindBytesConcat:
		return checker.checkBytesConcat(call, argumentTypes)
	}

	checker.checkCallArguments(call, functionType, argumentTypes)
	checker.checkCallMutability(call, functionType)

	if functionType.IsAsynchronous() {
		return NewPendingResultType(functionType.ReturnParameters)
	}

	return functionType.ReturnType()
}

// checkEventUsage reports events and messages invoked outside of
// the emit or send statement they belong to
func (checker *Checker) checkEventUsage(call *ast.FunctionCall, flavor EventFlavor) {
	// a mismatched flavor is reported by the statement
	if checker.contexts.current().eventCall == call {
		return
	}

	checker.report(
		&InvalidEventUsageError{
			Flavor: flavor,
			Range:  call.Range,
		},
	)
}

// checkCallArguments checks the arguments of a call against the parameters.
// Named arguments are matched by name, in any order.
func (checker *Checker) checkCallArguments(
	call *ast.FunctionCall,
	functionType *FunctionType,
	argumentTypes []Type,
) {
	if functionType.ArbitraryParameters {
		return
	}

	arguments := call.Arguments
	parameters := functionType.Parameters

	if len(arguments) != len(parameters) {
		checker.report(
			&ArgumentCountError{
				ParameterCount: len(parameters),
				ArgumentCount:  len(arguments),
				Range:          call.Range,
			},
		)
		return
	}

	if len(call.Names) == 0 {
		for i, argument := range arguments {
			checker.checkImplicitConversion(argument, argumentTypes[i], parameters[i])
		}
		return
	}

	seen := set.New[string](len(call.Names))

	for i, name := range call.Names {
		argument := arguments[i]

		if !seen.Insert(name) {
			checker.report(
				&InvalidNamedArgumentError{
					Name:   name,
					Reason: "duplicate named argument",
					Range:  ast.NewRangeFromPositioned(argument),
				},
			)
			continue
		}

		index := functionType.parameterIndex(name)
		if index < 0 {
			checker.report(
				&InvalidNamedArgumentError{
					Name:   name,
					Reason: "no parameter with this name",
					Range:  ast.NewRangeFromPositioned(argument),
				},
			)
			continue
		}

		checker.checkImplicitConversion(argument, argumentTypes[i], parameters[index])
	}
}

func mutabilityLevel(mutability ast.StateMutability) int {
	switch mutability {
	case ast.StateMutabilityPure:
		return 0
	case ast.StateMutabilityView:
		return 1
	default:
		return 2
	}
}

// checkCallMutability reports calls in view and pure functions
// of functions that may read or modify more state than the caller
func (checker *Checker) checkCallMutability(call *ast.FunctionCall, functionType *FunctionType) {
	function := checker.currentFunction()
	if function == nil {
		return
	}

	switch functionType.Kind {
	case FunctionKindEvent, FunctionKindMessage, FunctionKindDeclaration:
		return
	}

	callerLevel := mutabilityLevel(function.StateMutability)
	if callerLevel > 1 || mutabilityLevel(functionType.StateMutability) <= callerLevel {
		return
	}

	checker.report(
		&InvalidStateMutabilityError{
			Reason: fmt.Sprintf(
				"function declared as %s, but this expression calls a %s function",
				function.StateMutability.Keyword(),
				functionType.StateMutability.Keyword(),
			),
			Range: call.Range,
		},
	)
}

func (checker *Checker) argumentsArePure(call *ast.FunctionCall) bool {
	for _, argument := range call.Arguments {
		if !checker.isPure(argument) {
			return false
		}
	}
	return true
}

// checkMetaTypeCall checks `type(T)`, which is only available
// for contracts, interfaces, integers, and enums
func (checker *Checker) checkMetaTypeCall(call *ast.FunctionCall, argumentTypes []Type) Type {
	if len(argumentTypes) != 1 {
		checker.report(
			&ArgumentCountError{
				ParameterCount: 1,
				ArgumentCount:  len(argumentTypes),
				Range:          call.Range,
			},
		)
		return InvalidType
	}

	argumentType := argumentTypes[0]
	if argumentType.IsInvalidType() {
		return InvalidType
	}

	typeType, ok := argumentType.(*TypeType)
	if !ok {
		checker.report(
			&InvalidMetaTypeArgumentError{
				Type:   argumentType,
				Reason: "expected a type name",
				Range:  ast.NewRangeFromPositioned(call.Arguments[0]),
			},
		)
		return InvalidType
	}

	switch actual := typeType.Actual.(type) {
	case *ContractType:
		if actual.Super {
			checker.report(
				&InvalidMetaTypeArgumentError{
					Type:  actual,
					Range: ast.NewRangeFromPositioned(call.Arguments[0]),
				},
			)
			return InvalidType
		}

	case *IntegerType, *EnumType:

	default:
		checker.report(
			&InvalidMetaTypeArgumentError{
				Type:  actual,
				Range: ast.NewRangeFromPositioned(call.Arguments[0]),
			},
		)
		return InvalidType
	}

	checker.expressionAnnotation(call).IsPure = true

	return &MagicType{
		Kind:         MagicKindMetaType,
		TypeArgument: typeType.Actual,
	}
}

// checkBytesConcat checks `bytes.concat(...)`,
// which takes byte arrays and fixed-size byte values
func (checker *Checker) checkBytesConcat(call *ast.FunctionCall, argumentTypes []Type) Type {
	for i, argumentType := range argumentTypes {
		if argumentType.IsInvalidType() {
			continue
		}

		switch argumentType := argumentType.(type) {
		case *FixedBytesType:
			continue
		case *ArrayType:
			if argumentType.Kind == ArrayKindBytes {
				continue
			}
		case *StringLiteralType:
			continue
		}

		checker.report(
			&TypeMismatchWithDescriptionError{
				ExpectedTypeDescription: "bytes or a fixed-size byte type",
				ActualType:              argumentType,
				Range:                   ast.NewRangeFromPositioned(call.Arguments[i]),
			},
		)
	}

	checker.expressionAnnotation(call).IsPure = checker.argumentsArePure(call)

	return BytesMemoryType
}

// call options

const (
	callOptionGas   = "gas"
	callOptionValue = "value"
	callOptionSalt  = "salt"
	callOptionToken = "token"
)

func callOptionType(name string) Type {
	switch name {
	case callOptionGas, callOptionValue:
		return UInt256Type
	case callOptionSalt:
		return Bytes32Type
	case callOptionToken:
		return TokenIdType
	}
	return nil
}

func (checker *Checker) VisitFunctionCallOptions(expression *ast.FunctionCallOptions) Type {
	for i, option := range expression.Options {
		checker.VisitExpression(option, callOptionType(expression.Names[i]))
	}

	annotation := checker.expressionAnnotation(expression)
	if annotation.IsCallee {
		baseAnnotation := checker.expressionAnnotation(expression.Expression)
		baseAnnotation.IsCallee = true
		baseAnnotation.ArgumentTypes = annotation.ArgumentTypes
		baseAnnotation.ArgumentNames = annotation.ArgumentNames
	}

	baseType := checker.visitExpression(expression.Expression)
	if baseType.IsInvalidType() {
		return InvalidType
	}

	functionType, ok := baseType.(*FunctionType)
	if !ok || !functionType.CanTakeCallOptions() {
		checker.report(
			&InvalidCallOptionError{
				Reason: "expected a function that sends a message or creates a contract",
				Range:  expression.Range,
			},
		)
		return InvalidType
	}

	var gas, value, salt, token bool

	seen := set.New[string](len(expression.Names))

	for i, name := range expression.Names {
		optionRange := ast.NewRangeFromPositioned(expression.Options[i])

		reportOption := func(reason string) {
			checker.report(
				&InvalidCallOptionError{
					Option: name,
					Reason: reason,
					Range:  optionRange,
				},
			)
		}

		if !seen.Insert(name) {
			reportOption("option is given more than once")
			continue
		}

		switch name {
		case callOptionGas:
			if functionType.GasSet {
				reportOption("option is already set")
				continue
			}
			gas = true

		case callOptionValue, callOptionToken:
			if !functionType.IsPayable() {
				reportOption("cannot send value to a non-payable function")
				continue
			}
			if (name == callOptionValue && functionType.ValueSet) ||
				(name == callOptionToken && functionType.TokenSet) {

				reportOption("option is already set")
				continue
			}
			if name == callOptionValue {
				value = true
			} else {
				token = true
			}

		case callOptionSalt:
			if functionType.Kind != FunctionKindCreation {
				reportOption("only contract creations take a salt")
				continue
			}
			if !checker.requireFeature(FeatureCallSalt, optionRange) {
				continue
			}
			if functionType.SaltSet {
				reportOption("option is already set")
				continue
			}
			salt = true

		default:
			reportOption("unknown call option, valid options are `gas`, `value`, `salt`, and `token`")
		}
	}

	return functionType.CopyWithCallOptions(gas, value, salt, token)
}
