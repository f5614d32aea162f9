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
	"math/big"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

// propagateLValueRequest marks the base of an assigned member or index access as written
func (checker *Checker) propagateLValueRequest(annotation *ExpressionAnnotation, base ast.Expression) {
	if !annotation.LValueRequested {
		return
	}
	switch base.(type) {
	case *ast.Identifier, *ast.MemberAccess, *ast.IndexAccess:
		checker.expressionAnnotation(base).LValueRequested = true
	}
}

func (checker *Checker) VisitIndexAccess(expression *ast.IndexAccess) Type {
	annotation := checker.expressionAnnotation(expression)
	checker.propagateLValueRequest(annotation, expression.Base)

	baseType := checker.visitExpression(expression.Base)

	reportInvalidIndex := func(reason string) {
		checker.report(
			&InvalidIndexError{
				Reason: reason,
				Range:  expression.Range,
			},
		)
	}

	requireIndex := func() bool {
		if expression.Index == nil {
			reportInvalidIndex("index expression cannot be omitted")
			return false
		}
		return true
	}

	switch baseType := baseType.(type) {
	case *ArrayType:
		if !requireIndex() {
			return InvalidType
		}
		checker.expectType(expression.Index, UInt256Type)

		if baseType.IsString() {
			reportInvalidIndex("index access for string is not possible")
			return InvalidType
		}

		if !baseType.IsDynamicallySized() {
			checker.checkConstantIndexBound(expression.Index, baseType.Length)
		}

		annotation.IsLValue = baseType.Location != common.DataLocationCallData

		if baseType.IsByteArrayOrString() {
			return Bytes1Type
		}
		return withLocationIfReference(
			baseType.Base,
			baseType.Location,
			baseType.Location == common.DataLocationStorage,
		)

	case *ArraySliceType:
		if !requireIndex() {
			return InvalidType
		}
		checker.expectType(expression.Index, UInt256Type)

		array := baseType.Array
		if array.IsByteArrayOrString() {
			return Bytes1Type
		}
		return withLocationIfReference(array.Base, array.Location, false)

	case *MappingType:
		if !requireIndex() {
			return InvalidType
		}
		checker.expectType(expression.Index, baseType.Key)

		annotation.IsLValue = true
		return withLocationIfReference(baseType.Value, common.DataLocationStorage, true)

	case *FixedBytesType:
		if !requireIndex() {
			return InvalidType
		}
		checker.expectType(expression.Index, UInt256Type)
		checker.checkConstantIndexBound(expression.Index, new(big.Int).SetUint64(uint64(baseType.Bytes)))

		return Bytes1Type

	case *TypeType:
		return checker.checkArrayTypeExpression(expression, baseType, annotation)
	}

	if expression.Index != nil {
		checker.visitExpression(expression.Index)
	}

	if !baseType.IsInvalidType() {
		checker.report(
			&NotIndexableTypeError{
				Type:  baseType,
				Range: ast.NewRangeFromPositioned(expression.Base),
			},
		)
	}

	return InvalidType
}

// checkConstantIndexBound reports constant indices outside of a fixed length
func (checker *Checker) checkConstantIndexBound(index ast.Expression, length *big.Int) {
	rationalType, ok := checker.ExpressionType(index).(*RationalNumberType)
	if !ok || rationalType.IsFractional() || length == nil {
		return
	}
	if length.Cmp(rationalType.Integer()) <= 0 {
		checker.report(
			&InvalidIndexError{
				Reason: "out of bounds array access",
				Range:  ast.NewRangeFromPositioned(index),
			},
		)
	}
}

// checkArrayTypeExpression checks array type names used as values, e.g. `uint[]` in `abi.decode`
func (checker *Checker) checkArrayTypeExpression(
	expression *ast.IndexAccess,
	baseType *TypeType,
	annotation *ExpressionAnnotation,
) Type {
	annotation.IsPure = true

	if expression.Index == nil {
		return &TypeType{
			Actual: NewDynamicArrayType(baseType.Actual, common.DataLocationMemory),
		}
	}

	lengthType := checker.visitExpression(expression.Index)

	length, ok := lengthType.(*RationalNumberType)
	if !ok || length.IsFractional() || length.Value.Sign() <= 0 {
		if !lengthType.IsInvalidType() {
			checker.report(
				&InvalidIndexError{
					Reason: "integer constant expected",
					Range:  ast.NewRangeFromPositioned(expression.Index),
				},
			)
		}
		return InvalidType
	}

	return &TypeType{
		Actual: NewFixedArrayType(baseType.Actual, length.Integer(), common.DataLocationMemory),
	}
}

func (checker *Checker) VisitIndexRangeAccess(expression *ast.IndexRangeAccess) Type {
	baseType := checker.visitExpression(expression.Base)

	if expression.Start != nil {
		checker.expectType(expression.Start, UInt256Type)
	}
	if expression.End != nil {
		checker.expectType(expression.End, UInt256Type)
	}

	switch baseType := baseType.(type) {
	case *ArrayType:
		if !baseType.IsDynamicallySized() ||
			baseType.Location != common.DataLocationCallData {

			checker.report(
				&InvalidIndexError{
					Reason: "index range access is only supported for dynamic calldata arrays",
					Range:  expression.Range,
				},
			)
			return InvalidType
		}
		return &ArraySliceType{Array: baseType}

	case *ArraySliceType:
		return baseType
	}

	if !baseType.IsInvalidType() {
		checker.report(
			&NotIndexableTypeError{
				Type:  baseType,
				Range: ast.NewRangeFromPositioned(expression.Base),
			},
		)
	}

	return InvalidType
}
