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

// maxRationalBits bounds the size of folded constant expressions
const maxRationalBits = 4096

// MobileType returns the type a value of the given type has
// when it is stored in a variable: number literals get the smallest
// integer type that fits, string literals become memory strings.
// Returns nil if the value cannot be stored.
func MobileType(t Type) Type {
	switch t := t.(type) {
	case *RationalNumberType:
		integerType := t.IntegerType()
		if integerType == nil {
			return nil
		}
		return integerType
	case *StringLiteralType:
		return StringMemoryType
	case *TupleType:
		components := make([]Type, len(t.Components))
		for i, component := range t.Components {
			if component == nil {
				return nil
			}
			mobile := MobileType(component)
			if mobile == nil {
				return nil
			}
			components[i] = mobile
		}
		return NewTupleType(components...)
	}
	return t
}

// CommonType returns the type both types implicitly convert to, or nil
func CommonType(a, b Type) Type {
	if IsImplicitlyConvertible(b, a) {
		return a
	}
	if IsImplicitlyConvertible(a, b) {
		return b
	}
	return nil
}

// UnaryOperatorResult returns the type of applying the unary operator to a value of the given type.
// If the operator is not applicable, the result is nil, and the reason may explain why.
func UnaryOperatorResult(operation ast.Operation, t Type) (Type, string) {
	if t.IsInvalidType() {
		return InvalidType, ""
	}

	switch operation {
	case ast.OperationDelete:
		if _, ok := t.(*MappingType); ok {
			return nil, ""
		}
		return EmptyTupleType, ""

	case ast.OperationNot:
		if t == BoolType {
			return BoolType, ""
		}

	case ast.OperationBitwiseNot:
		switch t := t.(type) {
		case *IntegerType, *FixedBytesType:
			return t, ""
		case *RationalNumberType:
			if t.IsFractional() {
				return nil, ""
			}
			value := new(big.Int).Not(t.Integer())
			return NewRationalNumberType(new(big.Rat).SetInt(value)), ""
		}

	case ast.OperationSub:
		switch t := t.(type) {
		case *IntegerType:
			if !t.Signed {
				return nil, "unary negation is only allowed for signed integers"
			}
			return t, ""
		case *RationalNumberType:
			return NewRationalNumberType(new(big.Rat).Neg(t.Value)), ""
		}

	case ast.OperationInc, ast.OperationDec:
		if t, ok := t.(*IntegerType); ok {
			return t, ""
		}

	case ast.OperationAdd:
		return nil, "use of unary + is disallowed"
	}

	return nil, ""
}

// BinaryOperatorResult returns the type of applying the binary operator to the operand types.
// Comparisons result in the boolean type.
// If the operator is not applicable, the result is nil, and the reason may explain why.
func BinaryOperatorResult(operation ast.Operation, left, right Type) (Type, string) {
	if left.IsInvalidType() || right.IsInvalidType() {
		return InvalidType, ""
	}

	if operation.IsBooleanOp() {
		if left == BoolType && right == BoolType {
			return BoolType, ""
		}
		return nil, ""
	}

	leftRational, leftIsRational := left.(*RationalNumberType)
	rightRational, rightIsRational := right.(*RationalNumberType)
	if leftIsRational && rightIsRational {
		return foldRationalOperation(operation, leftRational, rightRational)
	}

	if operation.IsShiftOp() || operation == ast.OperationExp {
		return shiftOrExpResult(operation, left, right)
	}

	common := CommonType(left, right)
	if common == nil {
		return nil, ""
	}

	if operation.IsCompareOp() {
		ordered := operation != ast.OperationEqual && operation != ast.OperationNotEqual
		if isComparable(common, ordered) {
			return BoolType, ""
		}
		return nil, ""
	}

	switch common := common.(type) {
	case *IntegerType:
		if operation.IsArithmeticOp() || operation.IsBitOp() {
			return common, ""
		}
	case *FixedBytesType:
		if operation.IsBitOp() {
			return common, ""
		}
	}

	return nil, ""
}

func isComparable(t Type, ordered bool) bool {
	switch t := t.(type) {
	case *IntegerType, *RationalNumberType, *FixedBytesType, *AddressType, *EnumType:
		return true
	case *SimpleType:
		return t.Comparable && !ordered
	case *ContractType:
		return !t.Super && !ordered
	case *FunctionType:
		return !ordered && t.Kind == FunctionKindInternal
	}
	return false
}

func shiftOrExpResult(operation ast.Operation, left, right Type) (Type, string) {
	if rational, ok := left.(*RationalNumberType); ok {
		mobile := MobileType(rational)
		if mobile == nil {
			return nil, ""
		}
		left = mobile
	}

	switch left.(type) {
	case *IntegerType:
	case *FixedBytesType:
		if operation == ast.OperationExp {
			return nil, ""
		}
	default:
		return nil, ""
	}

	switch right := right.(type) {
	case *IntegerType:
		if right.Signed {
			return nil, "the right operand must be an unsigned integer"
		}
	case *RationalNumberType:
		if right.IsFractional() || right.IsNegative() {
			return nil, "the right operand must be a non-negative integer"
		}
	default:
		return nil, ""
	}

	return left, ""
}

func foldRationalOperation(operation ast.Operation, left, right *RationalNumberType) (Type, string) {
	if operation.IsCompareOp() {
		return BoolType, ""
	}

	leftValue := left.Value
	rightValue := right.Value

	var result *big.Rat

	switch operation {
	case ast.OperationAdd:
		result = new(big.Rat).Add(leftValue, rightValue)

	case ast.OperationSub:
		result = new(big.Rat).Sub(leftValue, rightValue)

	case ast.OperationMul:
		result = new(big.Rat).Mul(leftValue, rightValue)

	case ast.OperationDiv:
		if rightValue.Sign() == 0 {
			return nil, "division by zero"
		}
		result = new(big.Rat).Quo(leftValue, rightValue)

	case ast.OperationMod:
		if left.IsFractional() || right.IsFractional() {
			return nil, ""
		}
		if rightValue.Sign() == 0 {
			return nil, "modulo zero"
		}
		// truncated, like the division of the target platform
		value := new(big.Int).Rem(left.Integer(), right.Integer())
		result = new(big.Rat).SetInt(value)

	case ast.OperationExp:
		if right.IsFractional() {
			return nil, "exponent is fractional"
		}
		exponent := right.Integer()
		if !exponent.IsInt64() || exponent.Int64() > maxRationalBits || exponent.Int64() < -maxRationalBits {
			return nil, "exponent is too large"
		}
		n := exponent.Int64()
		base := left.Value
		if n < 0 {
			if base.Sign() == 0 {
				return nil, "division by zero"
			}
			base = new(big.Rat).Inv(base)
			n = -n
		}
		numerator := new(big.Int).Exp(base.Num(), big.NewInt(n), nil)
		if numerator.BitLen() > maxRationalBits {
			return nil, "exponentiation result is too large"
		}
		denominator := new(big.Int).Exp(base.Denom(), big.NewInt(n), nil)
		result = new(big.Rat).SetFrac(numerator, denominator)

	case ast.OperationShiftLeft, ast.OperationShiftRight:
		if left.IsFractional() || right.IsFractional() {
			return nil, ""
		}
		amount := right.Integer()
		if amount.Sign() < 0 {
			return nil, "the right operand must be a non-negative integer"
		}
		if !amount.IsInt64() || amount.Int64() > maxRationalBits {
			return nil, "shift amount is too large"
		}
		shift := uint(amount.Int64())
		var value *big.Int
		if operation == ast.OperationShiftLeft {
			value = new(big.Int).Lsh(left.Integer(), shift)
		} else {
			value = new(big.Int).Rsh(left.Integer(), shift)
		}
		result = new(big.Rat).SetInt(value)

	case ast.OperationBitwiseAnd, ast.OperationBitwiseOr, ast.OperationBitwiseXor:
		if left.IsFractional() || right.IsFractional() {
			return nil, ""
		}
		value := new(big.Int)
		switch operation {
		case ast.OperationBitwiseAnd:
			value.And(left.Integer(), right.Integer())
		case ast.OperationBitwiseOr:
			value.Or(left.Integer(), right.Integer())
		default:
			value.Xor(left.Integer(), right.Integer())
		}
		result = new(big.Rat).SetInt(value)

	default:
		return nil, ""
	}

	if result.Num().BitLen() > maxRationalBits || result.Denom().BitLen() > maxRationalBits {
		return nil, "constant expression is too large"
	}

	return NewRationalNumberType(result), ""
}

// IsValueType reports whether values of the type are copied on assignment
func IsValueType(t Type) bool {
	switch t := t.(type) {
	case *IntegerType, *RationalNumberType, *FixedBytesType, *AddressType,
		*EnumType, *ContractType, *StringLiteralType:
		return true
	case *FunctionType:
		return t.Kind == FunctionKindInternal || t.Kind == FunctionKindExternal
	case *SimpleType:
		return !t.Invalid
	}
	return false
}

// CanLiveOutsideStorage reports whether values of the type can exist in memory
func CanLiveOutsideStorage(t Type) bool {
	switch t := t.(type) {
	case *MappingType:
		return false
	case *ArrayType:
		return CanLiveOutsideStorage(t.Base)
	}
	return true
}

// IsStorageReference reports whether the type is a reference into storage
func IsStorageReference(t Type) bool {
	referenceType, ok := t.(ReferenceType)
	return ok && referenceType.DataLocation() == common.DataLocationStorage
}
