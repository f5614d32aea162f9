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

// checkABIEncode checks the arguments of `abi.encode`, `abi.encodePacked`,
// `abi.encodeWithSelector`, and `abi.encodeWithSignature`
func (checker *Checker) checkABIEncode(
	call *ast.FunctionCall,
	functionType *FunctionType,
	argumentTypes []Type,
) Type {
	if len(call.Names) > 0 {
		checker.report(
			&InvalidNamedArgumentError{
				Name:   call.Names[0],
				Reason: "functions with arbitrary parameters cannot take named arguments",
				Range:  call.Range,
			},
		)
		return BytesMemoryType
	}

	start := 0

	var prefixType Type
	switch functionType.Kind {
	case FunctionKindABIEncodeWithSelector:
		prefixType = Bytes4Type
	case FunctionKindABIEncodeWithSignature:
		prefixType = StringMemoryType
	}

	if prefixType != nil {
		if len(argumentTypes) == 0 {
			checker.report(
				&ArgumentCountError{
					ParameterCount: 1,
					ArgumentCount:  0,
					Range:          call.Range,
				},
			)
			return BytesMemoryType
		}
		checker.checkImplicitConversion(call.Arguments[0], argumentTypes[0], prefixType)
		start = 1
	}

	packed := functionType.Kind == FunctionKindABIEncodePacked

	for i := start; i < len(argumentTypes); i++ {
		argumentType := argumentTypes[i]
		if argumentType.IsInvalidType() {
			continue
		}

		reason, ok := checker.abiEncodingSupport(argumentType, packed)
		if ok {
			continue
		}

		checker.report(
			&InvalidABIEncodingError{
				Type:   argumentType,
				Packed: packed,
				Reason: reason,
				Range:  ast.NewRangeFromPositioned(call.Arguments[i]),
			},
		)
	}

	return BytesMemoryType
}

func (checker *Checker) abiEncodingSupport(argumentType Type, packed bool) (string, bool) {
	if packed {
		if ok, reason := CanBePackedEncoded(argumentType); !ok {
			return reason, false
		}
	}

	encodable, reason := ABIInterfaceType(argumentType, false)
	if encodable == nil {
		return reason, false
	}

	if !checker.useABICoderV2() && !TypeSupportedByOldABIEncoder(encodable, false) {
		return "this type is only supported by ABI coder v2, use `pragma abicoder v2;`", false
	}

	return "", true
}

// checkABIDecode checks `abi.decode(data, (T1, ..., Tn))`.
// The result has one component per decoded type,
// and the decoded types are recorded for the call.
func (checker *Checker) checkABIDecode(call *ast.FunctionCall, argumentTypes []Type) Type {
	decodedTypes := checker.abiDecodeTypes(call, argumentTypes)
	checker.Elaboration.SetDecodedTypes(call, decodedTypes)

	if len(decodedTypes) == 1 {
		return decodedTypes[0]
	}
	return NewTupleType(decodedTypes...)
}

// abiDecodeTypes returns the types decoded by the call,
// or an empty list if the call is malformed
func (checker *Checker) abiDecodeTypes(call *ast.FunctionCall, argumentTypes []Type) []Type {
	reportDecode := func(hasPosition ast.HasPosition, reason string) []Type {
		checker.report(
			&InvalidABIDecodeError{
				Reason: reason,
				Range:  ast.NewRangeFromPositioned(hasPosition),
			},
		)
		return []Type{}
	}

	if len(call.Names) > 0 {
		return reportDecode(call, "named arguments are not supported")
	}

	if len(argumentTypes) != 2 {
		return reportDecode(
			call,
			fmt.Sprintf("expected two arguments, got %d", len(argumentTypes)),
		)
	}

	if !argumentTypes[0].IsInvalidType() &&
		!checker.checkImplicitConversion(call.Arguments[0], argumentTypes[0], BytesMemoryType) {

		return []Type{}
	}

	typesArgument := call.Arguments[1]

	var componentTypes []Type
	var componentExpressions []ast.Expression

	switch argumentType := argumentTypes[1].(type) {
	case *TupleType:
		tuple, ok := typesArgument.(*ast.TupleExpression)
		if !ok {
			return reportDecode(typesArgument, "the second argument must be a tuple of types")
		}
		componentTypes = argumentType.Components
		componentExpressions = tuple.Components

	default:
		componentTypes = []Type{argumentType}
		componentExpressions = []ast.Expression{typesArgument}
	}

	decodedTypes := make([]Type, 0, len(componentTypes))

	for i, componentType := range componentTypes {
		componentExpression := componentExpressions[i]
		// empty components are reported by the tuple
		if componentType == nil || componentExpression == nil ||
			componentType.IsInvalidType() {

			return []Type{}
		}

		typeType, ok := componentType.(*TypeType)
		if !ok {
			return reportDecode(
				componentExpression,
				fmt.Sprintf("expected a type, got a value of type `%s`", componentType),
			)
		}

		decodedType := withLocationIfReference(typeType.Actual, common.DataLocationMemory, false)

		encodable, reason := ABIInterfaceType(decodedType, false)
		if encodable == nil {
			if reason == "" {
				reason = fmt.Sprintf("decoding type `%s` is not supported", decodedType)
			}
			return reportDecode(componentExpression, reason)
		}

		if !checker.useABICoderV2() && !TypeSupportedByOldABIEncoder(encodable, false) {
			return reportDecode(
				componentExpression,
				fmt.Sprintf("decoding type `%s` is only supported by ABI coder v2", decodedType),
			)
		}

		decodedTypes = append(decodedTypes, decodedType)
	}

	return decodedTypes
}
