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

package astjson

import (
	"encoding/json"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	"github.com/solpp-lang/solpp/errors"
)

// JSON types

type jsonObject map[string]any

func get[T any](d *Decoder, obj jsonObject, key string, f func(valueJSON any) T) T {
	v, ok := obj[key]
	if !ok {
		panic(errors.NewDefaultUserError("missing property: %s", key))
	}

	d.pushPath(propertyPathElement(key))
	result := f(v)
	d.popPath()
	return result
}

// optional is like get, but returns the zero value
// if the property is missing or null
func optional[T any](d *Decoder, obj jsonObject, key string, f func(valueJSON any) T) (result T) {
	v, ok := obj[key]
	if !ok || v == nil {
		return
	}

	d.pushPath(propertyPathElement(key))
	result = f(v)
	d.popPath()
	return result
}

// decodeList decodes the objects of a JSON array.
// Null elements are passed to f as nil objects.
func decodeList[T any](d *Decoder, valueJSON any, f func(obj jsonObject) T) []T {
	values := toSlice(valueJSON)
	result := make([]T, len(values))
	for i, value := range values {
		d.pushPath(indexPathElement(i))
		if value == nil {
			result[i] = f(nil)
		} else {
			result[i] = f(toObject(value))
		}
		d.popPath()
	}
	return result
}

// JSON conversion helpers

func toBool(valueJSON any) bool {
	v, ok := valueJSON.(bool)
	if !ok {
		panic(errors.NewDefaultUserError("expected JSON bool, got %v", valueJSON))
	}

	return v
}

func toInt64(valueJSON any) int64 {
	switch v := valueJSON.(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			panic(errors.NewDefaultUserError("expected JSON integer, got %s", v))
		}
		return i
	case float64:
		return int64(v)
	}

	panic(errors.NewDefaultUserError("expected JSON number, got %v", valueJSON))
}

func toString(valueJSON any) string {
	v, ok := valueJSON.(string)
	if !ok {
		panic(errors.NewDefaultUserError("expected JSON string, got %v", valueJSON))
	}

	return v
}

func toSlice(valueJSON any) []any {
	v, ok := valueJSON.([]any)
	if !ok {
		panic(errors.NewDefaultUserError("expected JSON array, got %v", valueJSON))
	}

	return v
}

func toObject(valueJSON any) jsonObject {
	v, ok := valueJSON.(map[string]any)
	if !ok {
		panic(errors.NewDefaultUserError("expected JSON object, got %v", valueJSON))
	}

	return v
}

// decodeOverrides reports whether the node has an override specifier,
// given either as a flag or as an override specifier node
func decodeOverrides(obj jsonObject) bool {
	switch v := obj[overridesKey].(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// kinds

func decodeContractKind(valueJSON any) ast.ContractKind {
	switch kind := toString(valueJSON); kind {
	case "contract":
		return ast.ContractKindContract
	case "interface":
		return ast.ContractKindInterface
	case "library":
		return ast.ContractKindLibrary
	default:
		panic(errors.NewDefaultUserError("invalid contract kind: %s", kind))
	}
}

func decodeFunctionKind(valueJSON any) ast.FunctionKind {
	switch kind := toString(valueJSON); kind {
	case "function":
		return ast.FunctionKindFunction
	case "constructor":
		return ast.FunctionKindConstructor
	case "fallback":
		return ast.FunctionKindFallback
	case "receive":
		return ast.FunctionKindReceive
	case "freeFunction":
		return ast.FunctionKindFree
	default:
		panic(errors.NewDefaultUserError("invalid function kind: %s", kind))
	}
}

func decodeVisibility(valueJSON any) ast.Visibility {
	switch visibility := toString(valueJSON); visibility {
	case "", "default":
		return ast.VisibilityDefault
	case "private":
		return ast.VisibilityPrivate
	case "internal":
		return ast.VisibilityInternal
	case "public":
		return ast.VisibilityPublic
	case "external":
		return ast.VisibilityExternal
	default:
		panic(errors.NewDefaultUserError("invalid visibility: %s", visibility))
	}
}

func decodeStateMutability(valueJSON any) ast.StateMutability {
	switch mutability := toString(valueJSON); mutability {
	case "", "nonpayable":
		return ast.StateMutabilityNonPayable
	case "pure":
		return ast.StateMutabilityPure
	case "view":
		return ast.StateMutabilityView
	case "payable":
		return ast.StateMutabilityPayable
	default:
		panic(errors.NewDefaultUserError("invalid state mutability: %s", mutability))
	}
}

func decodeVariableMutability(valueJSON any) ast.VariableMutability {
	switch mutability := toString(valueJSON); mutability {
	case "mutable":
		return ast.VariableMutabilityMutable
	case "immutable":
		return ast.VariableMutabilityImmutable
	case "constant":
		return ast.VariableMutabilityConstant
	default:
		panic(errors.NewDefaultUserError("invalid variable mutability: %s", mutability))
	}
}

func decodeDataLocation(valueJSON any) common.DataLocation {
	name := toString(valueJSON)
	location, ok := common.DataLocationFromName(name)
	if !ok {
		panic(errors.NewDefaultUserError("invalid storage location: %s", name))
	}
	return location
}

func decodeLiteralKind(valueJSON any) ast.LiteralKind {
	switch kind := toString(valueJSON); kind {
	case "number":
		return ast.LiteralKindNumber
	case "bool":
		return ast.LiteralKindBool
	case "string":
		return ast.LiteralKindString
	case "hexString":
		return ast.LiteralKindHexString
	case "unicodeString":
		return ast.LiteralKindUnicodeString
	default:
		panic(errors.NewDefaultUserError("invalid literal kind: %s", kind))
	}
}

// operators

var binaryOperations = func() map[string]ast.Operation {
	operations := map[string]ast.Operation{}
	for operation := ast.OperationOr; operation <= ast.OperationShiftRight; operation++ {
		operations[operation.Symbol()] = operation
	}
	return operations
}()

var unaryOperations = map[string]ast.Operation{
	ast.OperationNot.Symbol():        ast.OperationNot,
	ast.OperationBitwiseNot.Symbol(): ast.OperationBitwiseNot,
	ast.OperationSub.Symbol():        ast.OperationSub,
	ast.OperationInc.Symbol():        ast.OperationInc,
	ast.OperationDec.Symbol():        ast.OperationDec,
	ast.OperationDelete.Symbol():     ast.OperationDelete,
}

func decodeBinaryOperator(valueJSON any) ast.Operation {
	symbol := toString(valueJSON)
	operation, ok := binaryOperations[symbol]
	if !ok {
		panic(errors.NewDefaultUserError("invalid binary operator: %s", symbol))
	}
	return operation
}

func decodeUnaryOperator(valueJSON any) ast.Operation {
	symbol := toString(valueJSON)
	operation, ok := unaryOperations[symbol]
	if !ok {
		panic(errors.NewDefaultUserError("invalid unary operator: %s", symbol))
	}
	return operation
}

// decodeAssignmentOperator decodes `=` and compound assignment operators like `+=`
func decodeAssignmentOperator(valueJSON any) ast.Operation {
	symbol := toString(valueJSON)
	if symbol == ast.OperationAssign.Symbol() {
		return ast.OperationAssign
	}

	if len(symbol) > 1 && symbol[len(symbol)-1] == '=' {
		operation, ok := binaryOperations[symbol[:len(symbol)-1]]
		if ok && operation.IsBinaryAssignable() {
			return operation
		}
	}

	panic(errors.NewDefaultUserError("invalid assignment operator: %s", symbol))
}
