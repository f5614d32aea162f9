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
	"strings"
	"unicode/utf8"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

// IsImplicitlyConvertible reports whether a value of type `from`
// can be used where a value of type `to` is expected, without a conversion.
func IsImplicitlyConvertible(from, to Type) bool {
	if from == nil || to == nil {
		return false
	}

	if from.IsInvalidType() || to.IsInvalidType() {
		return true
	}

	if from.Equal(to) {
		return true
	}

	switch from := from.(type) {
	case *IntegerType:
		if to, ok := to.(*IntegerType); ok {
			if from.Signed == to.Signed {
				return to.Bits >= from.Bits
			}
			return !from.Signed && to.Bits > from.Bits
		}

	case *RationalNumberType:
		return isRationalImplicitlyConvertible(from, to)

	case *StringLiteralType:
		return isStringLiteralImplicitlyConvertible(from, to)

	case *FixedBytesType:
		if to, ok := to.(*FixedBytesType); ok {
			return to.Bytes >= from.Bytes
		}

	case *AddressType:
		if to, ok := to.(*AddressType); ok {
			return from.Payable || !to.Payable
		}

	case *ContractType:
		if to, ok := to.(*ContractType); ok {
			if from.Super || to.Super {
				return false
			}
			return IsBaseContract(to.Declaration, from.Declaration)
		}

	case *ArrayType:
		if to, ok := to.(*ArrayType); ok {
			return isArrayImplicitlyConvertible(from, to)
		}

	case *ArraySliceType:
		if to, ok := to.(*ArrayType); ok {
			return to.Location == common.DataLocationCallData &&
				from.Array.sameShape(to) &&
				to.IsDynamicallySized()
		}

	case *StructType:
		if to, ok := to.(*StructType); ok {
			if from.Info.Declaration != to.Info.Declaration {
				return false
			}
			return isLocationConvertible(from.Location, to.Location, to.Pointer)
		}

	case *MappingType:
		if to, ok := to.(*MappingType); ok {
			return from.Key.Equal(to.Key) && from.Value.Equal(to.Value)
		}

	case *TupleType:
		if to, ok := to.(*TupleType); ok {
			if len(from.Components) != len(to.Components) {
				return false
			}
			for i, component := range from.Components {
				target := to.Components[i]
				if target == nil {
					continue
				}
				if component == nil || !IsImplicitlyConvertible(component, target) {
					return false
				}
			}
			return true
		}

	case *FunctionType:
		if to, ok := to.(*FunctionType); ok {
			return isFunctionImplicitlyConvertible(from, to)
		}
	}

	return false
}

func isLocationConvertible(from, to common.DataLocation, toPointer bool) bool {
	switch to {
	case common.DataLocationCallData:
		return from == common.DataLocationCallData
	case common.DataLocationStorage:
		if toPointer {
			return from == common.DataLocationStorage
		}
	}
	return true
}

func isRationalImplicitlyConvertible(from *RationalNumberType, to Type) bool {
	switch to := to.(type) {
	case *IntegerType:
		if from.IsFractional() {
			return false
		}
		return to.Fits(from.Value.Num())

	case *FixedBytesType:
		if from.Value.Sign() == 0 {
			return true
		}
		return from.HexDigits > 0 &&
			uint(from.HexDigits) == to.Bytes*2

	case *RationalNumberType:
		return from.Value.Cmp(to.Value) == 0
	}
	return false
}

func isStringLiteralImplicitlyConvertible(from *StringLiteralType, to Type) bool {
	switch to := to.(type) {
	case *FixedBytesType:
		return uint(len(from.Value)) <= to.Bytes

	case *ArrayType:
		if !to.IsByteArrayOrString() ||
			to.Location == common.DataLocationCallData ||
			(to.Location == common.DataLocationStorage && to.Pointer) {

			return false
		}
		return !to.IsString() || utf8.ValidString(from.Value)

	case *SimpleType:
		if to == TokenIdType {
			_, ok := ParseTokenId(from.Value)
			return ok
		}
	}
	return false
}

func isArrayImplicitlyConvertible(from, to *ArrayType) bool {
	if from.IsByteArrayOrString() != to.IsByteArrayOrString() ||
		from.IsString() != to.IsString() {

		return false
	}

	if !isLocationConvertible(from.Location, to.Location, to.Pointer) {
		return false
	}

	if to.Location == common.DataLocationStorage && !to.Pointer {
		// copied element by element
		if !equalIgnoringLocation(from.Base, to.Base) &&
			!IsImplicitlyConvertible(from.Base, to.Base) {

			return false
		}
		if to.IsDynamicallySized() {
			return true
		}
		return !from.IsDynamicallySized() && to.Length.Cmp(from.Length) >= 0
	}

	// no element-wise copy, the shapes must match
	return from.sameShape(to)
}

func isFunctionImplicitlyConvertible(from, to *FunctionType) bool {
	if from.Kind != to.Kind {
		return false
	}
	if !from.HasEqualParameterTypes(to) || !from.HasEqualReturnTypes(to) {
		return false
	}
	if from.BoundTo != nil || to.BoundTo != nil {
		return false
	}
	if from.GasSet != to.GasSet || from.ValueSet != to.ValueSet {
		return false
	}
	switch from.StateMutability {
	case ast.StateMutabilityPure:
		return to.StateMutability != ast.StateMutabilityPayable
	case ast.StateMutabilityView:
		return to.StateMutability == ast.StateMutabilityNonPayable ||
			to.StateMutability == ast.StateMutabilityView
	case ast.StateMutabilityPayable:
		return to.StateMutability == ast.StateMutabilityNonPayable
	}
	return false
}

// IsExplicitlyConvertible reports whether a value of type `from`
// can be converted to type `to` with a type conversion, `T(x)`
func IsExplicitlyConvertible(from, to Type) bool {
	if IsImplicitlyConvertible(from, to) {
		return true
	}

	switch from := from.(type) {
	case *IntegerType:
		switch to := to.(type) {
		case *IntegerType:
			// changing size and signedness at once is ambiguous
			return from.Signed == to.Signed || from.Bits == to.Bits
		case *AddressType:
			return !from.Signed && from.Bits == 160
		case *FixedBytesType:
			return from.Bits == to.Bytes*8
		case *EnumType:
			return true
		}

	case *RationalNumberType:
		if from.IsFractional() {
			return false
		}
		value := from.Value.Num()
		switch to := to.(type) {
		case *AddressType:
			return value.Sign() >= 0 && UInt160Type.Fits(value)
		case *EnumType:
			return value.Sign() >= 0 &&
				value.Cmp(big.NewInt(int64(len(to.Declaration.Members)))) < 0
		case *ContractType:
			return value.Sign() == 0
		}

	case *StringLiteralType:
		if to, ok := to.(*FixedBytesType); ok {
			return uint(len(from.Value)) <= to.Bytes
		}

	case *FixedBytesType:
		switch to := to.(type) {
		case *FixedBytesType:
			return true
		case *IntegerType:
			return from.Bytes*8 == to.Bits
		case *AddressType:
			return from.Bytes == 20
		}

	case *AddressType:
		switch to := to.(type) {
		case *AddressType:
			return true
		case *IntegerType:
			return !to.Signed && to.Bits == 160
		case *FixedBytesType:
			return to.Bytes == 20
		case *ContractType:
			return !to.Super
		}

	case *ContractType:
		if to, ok := to.(*AddressType); ok {
			if from.Super || from.IsLibrary() {
				return false
			}
			return !to.Payable || from.IsPayable()
		}

	case *EnumType:
		if to, ok := to.(*IntegerType); ok {
			return !to.Signed || to.Bits > 8
		}

	case *ArrayType:
		switch to := to.(type) {
		case *ArrayType:
			// bytes and string share their representation
			return from.IsByteArrayOrString() &&
				to.IsByteArrayOrString() &&
				from.Location == to.Location
		case *FixedBytesType:
			return from.Kind == ArrayKindBytes &&
				from.Location != common.DataLocationStorage
		}

	case *ArraySliceType:
		if to, ok := to.(*FixedBytesType); ok {
			return from.Array.Kind == ArrayKindBytes && to.Bytes > 0
		}
	}

	return false
}

// LinearizedBaseContracts returns the contract followed by all of its bases,
// most derived first. Each contract appears once.
// Cyclic inheritance graphs are cut where a contract repeats.
func LinearizedBaseContracts(contract *ast.ContractDefinition) []*ast.ContractDefinition {
	result := []*ast.ContractDefinition{contract}
	seen := map[*ast.ContractDefinition]struct{}{
		contract: {},
	}
	for i := 0; i < len(result); i++ {
		bases := result[i].BaseContracts
		// later bases are more derived
		for j := len(bases) - 1; j >= 0; j-- {
			base := baseContractDefinition(bases[j])
			if base == nil {
				continue
			}
			if _, ok := seen[base]; ok {
				continue
			}
			seen[base] = struct{}{}
			result = append(result, base)
		}
	}
	return result
}

func baseContractDefinition(specifier *ast.InheritanceSpecifier) *ast.ContractDefinition {
	if specifier == nil || specifier.BaseName == nil {
		return nil
	}
	base, _ := specifier.BaseName.Declaration.(*ast.ContractDefinition)
	return base
}

// IsBaseContract reports whether base is derived contract itself or one of its bases
func IsBaseContract(base, derived *ast.ContractDefinition) bool {
	for _, contract := range LinearizedBaseContracts(derived) {
		if contract == base {
			return true
		}
	}
	return false
}

const tokenIdPrefix = "tti_"

// ParseTokenId parses the `tti_` prefixed textual form of a token id,
// ten bytes of hex-encoded id followed by a two byte checksum
func ParseTokenId(text string) (string, bool) {
	if !strings.HasPrefix(text, tokenIdPrefix) {
		return "", false
	}
	digits := text[len(tokenIdPrefix):]
	if len(digits) != 24 {
		return "", false
	}
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", false
		}
	}
	return digits[:20], true
}
