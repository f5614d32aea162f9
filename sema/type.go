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
	"strings"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

// Type is the semantic type of an expression or declaration.
//
// Types are immutable values. Predicates over types,
// like convertibility and operator applicability,
// are free functions, see IsImplicitlyConvertible.
type Type interface {
	isType()
	String() string
	Equal(other Type) bool
	IsInvalidType() bool
}

// ReferenceType is a type whose values live in a data location
type ReferenceType interface {
	Type
	DataLocation() common.DataLocation
	IsPointer() bool
	WithLocation(location common.DataLocation, isPointer bool) ReferenceType
}

func typesEqual(a, b Type) bool {
	return common.DeepEquals[Type](a, b)
}

func typeListsEqual(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i, t := range a {
		if !typesEqual(t, b[i]) {
			return false
		}
	}
	return true
}

func containsInvalidType(types []Type) bool {
	for _, t := range types {
		if t != nil && t.IsInvalidType() {
			return true
		}
	}
	return false
}

func formatTypeList(types []Type) string {
	var sb strings.Builder
	for i, t := range types {
		if i > 0 {
			sb.WriteByte(',')
		}
		if t != nil {
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}

func locationSuffix(location common.DataLocation, isPointer bool) string {
	switch location {
	case common.DataLocationStorage:
		if isPointer {
			return " storage pointer"
		}
		return " storage ref"
	case common.DataLocationUnspecified:
		return ""
	default:
		return " " + location.Name()
	}
}

// SimpleType

type SimpleType struct {
	Name       string
	Comparable bool
	Invalid    bool
}

var _ Type = &SimpleType{}

// InvalidType is the type of expressions which failed to check.
// It is convertible to and from every type, so errors do not cascade.
var InvalidType = &SimpleType{
	Name:    "<<invalid>>",
	Invalid: true,
}

var BoolType = &SimpleType{
	Name:       "bool",
	Comparable: true,
}

// TokenIdType identifies a token on the Vite platform
var TokenIdType = &SimpleType{
	Name:       "tokenId",
	Comparable: true,
}

func (*SimpleType) isType() {}

func (t *SimpleType) String() string {
	return t.Name
}

func (t *SimpleType) Equal(other Type) bool {
	return t == other
}

func (t *SimpleType) IsInvalidType() bool {
	return t.Invalid
}

// IntegerType

type IntegerType struct {
	Bits   uint
	Signed bool
}

var _ Type = &IntegerType{}

var UInt8Type = &IntegerType{Bits: 8}
var UInt160Type = &IntegerType{Bits: 160}
var UInt256Type = &IntegerType{Bits: 256}
var Int256Type = &IntegerType{Bits: 256, Signed: true}

func NewIntegerType(bits uint, signed bool) *IntegerType {
	return &IntegerType{
		Bits:   bits,
		Signed: signed,
	}
}

func (*IntegerType) isType() {}

func (t *IntegerType) String() string {
	if t.Signed {
		return fmt.Sprintf("int%d", t.Bits)
	}
	return fmt.Sprintf("uint%d", t.Bits)
}

func (t *IntegerType) Equal(other Type) bool {
	otherInteger, ok := other.(*IntegerType)
	return ok &&
		otherInteger.Bits == t.Bits &&
		otherInteger.Signed == t.Signed
}

func (*IntegerType) IsInvalidType() bool {
	return false
}

func (t *IntegerType) Min() *big.Int {
	if !t.Signed {
		return new(big.Int)
	}
	min := new(big.Int).Lsh(big.NewInt(1), t.Bits-1)
	return min.Neg(min)
}

func (t *IntegerType) Max() *big.Int {
	bits := t.Bits
	if t.Signed {
		bits--
	}
	max := new(big.Int).Lsh(big.NewInt(1), bits)
	return max.Sub(max, big.NewInt(1))
}

func (t *IntegerType) Fits(value *big.Int) bool {
	return value.Cmp(t.Min()) >= 0 &&
		value.Cmp(t.Max()) <= 0
}

// AddressType

type AddressType struct {
	Payable bool
}

var _ Type = &AddressType{}

var TheAddressType = &AddressType{}
var PayableAddressType = &AddressType{Payable: true}

func (*AddressType) isType() {}

func (t *AddressType) String() string {
	if t.Payable {
		return "address payable"
	}
	return "address"
}

func (t *AddressType) Equal(other Type) bool {
	otherAddress, ok := other.(*AddressType)
	return ok && otherAddress.Payable == t.Payable
}

func (*AddressType) IsInvalidType() bool {
	return false
}

// FixedBytesType, `bytes1` to `bytes32`

type FixedBytesType struct {
	Bytes uint
}

var _ Type = &FixedBytesType{}

var Bytes1Type = &FixedBytesType{Bytes: 1}
var Bytes4Type = &FixedBytesType{Bytes: 4}
var Bytes32Type = &FixedBytesType{Bytes: 32}

func NewFixedBytesType(bytes uint) *FixedBytesType {
	return &FixedBytesType{Bytes: bytes}
}

func (*FixedBytesType) isType() {}

func (t *FixedBytesType) String() string {
	return fmt.Sprintf("bytes%d", t.Bytes)
}

func (t *FixedBytesType) Equal(other Type) bool {
	otherBytes, ok := other.(*FixedBytesType)
	return ok && otherBytes.Bytes == t.Bytes
}

func (*FixedBytesType) IsInvalidType() bool {
	return false
}

// RationalNumberType is the type of a number literal
// or of a constant expression folded from number literals

type RationalNumberType struct {
	Value *big.Rat
	// HexDigits is the digit count of a hex literal, or zero
	HexDigits int
}

var _ Type = &RationalNumberType{}

func NewRationalNumberType(value *big.Rat) *RationalNumberType {
	return &RationalNumberType{Value: value}
}

func NewIntegerConstantType(value int64) *RationalNumberType {
	return &RationalNumberType{Value: new(big.Rat).SetInt64(value)}
}

func (*RationalNumberType) isType() {}

func (t *RationalNumberType) String() string {
	if t.IsFractional() {
		return fmt.Sprintf("rational_const %s / %s", t.Value.Num(), t.Value.Denom())
	}
	return fmt.Sprintf("int_const %s", t.Value.Num())
}

func (t *RationalNumberType) Equal(other Type) bool {
	otherRational, ok := other.(*RationalNumberType)
	return ok && otherRational.Value.Cmp(t.Value) == 0
}

func (*RationalNumberType) IsInvalidType() bool {
	return false
}

func (t *RationalNumberType) IsFractional() bool {
	return !t.Value.IsInt()
}

func (t *RationalNumberType) IsNegative() bool {
	return t.Value.Sign() < 0
}

// Integer returns the value of a non-fractional number
func (t *RationalNumberType) Integer() *big.Int {
	return new(big.Int).Set(t.Value.Num())
}

// IntegerType returns the smallest integer type the value fits,
// preferring unsigned types, or nil if there is none.
func (t *RationalNumberType) IntegerType() *IntegerType {
	if t.IsFractional() {
		return nil
	}
	value := t.Value.Num()
	signed := value.Sign() < 0
	for bits := uint(8); bits <= 256; bits += 8 {
		integerType := NewIntegerType(bits, signed)
		if integerType.Fits(value) {
			return integerType
		}
	}
	return nil
}

// StringLiteralType

type StringLiteralType struct {
	Value string
}

var _ Type = &StringLiteralType{}

func (*StringLiteralType) isType() {}

func (t *StringLiteralType) String() string {
	return fmt.Sprintf("literal_string %q", t.Value)
}

func (t *StringLiteralType) Equal(other Type) bool {
	otherString, ok := other.(*StringLiteralType)
	return ok && otherString.Value == t.Value
}

func (*StringLiteralType) IsInvalidType() bool {
	return false
}

// EnumType

type EnumType struct {
	Declaration *ast.EnumDefinition
}

var _ Type = &EnumType{}

func (*EnumType) isType() {}

func (t *EnumType) String() string {
	return fmt.Sprintf("enum %s", t.Declaration.Name)
}

func (t *EnumType) Equal(other Type) bool {
	otherEnum, ok := other.(*EnumType)
	return ok && otherEnum.Declaration == t.Declaration
}

func (*EnumType) IsInvalidType() bool {
	return false
}

func (t *EnumType) MemberIndex(name string) int {
	for i, member := range t.Declaration.Members {
		if member.Name == name {
			return i
		}
	}
	return -1
}

// ContractType is the type of a contract, interface, or library value.
// Super is set for the type of `super`.

type ContractType struct {
	Declaration *ast.ContractDefinition
	Super       bool
}

var _ Type = &ContractType{}

func (*ContractType) isType() {}

func (t *ContractType) String() string {
	if t.Super {
		return fmt.Sprintf("contract super %s", t.Declaration.Name)
	}
	return fmt.Sprintf("%s %s", t.Declaration.Kind.Keyword(), t.Declaration.Name)
}

func (t *ContractType) Equal(other Type) bool {
	otherContract, ok := other.(*ContractType)
	return ok &&
		otherContract.Declaration == t.Declaration &&
		otherContract.Super == t.Super
}

func (*ContractType) IsInvalidType() bool {
	return false
}

func (t *ContractType) IsLibrary() bool {
	return t.Declaration.IsLibrary()
}

// IsPayable reports whether the contract can receive a transfer without calldata
func (t *ContractType) IsPayable() bool {
	for _, contract := range LinearizedBaseContracts(t.Declaration) {
		if contract.FunctionOfKind(ast.FunctionKindReceive) != nil {
			return true
		}
		fallback := contract.FunctionOfKind(ast.FunctionKindFallback)
		if fallback != nil && fallback.IsPayable() {
			return true
		}
	}
	return false
}

// TupleType is the type of a parenthesized expression list
// and of functions with multiple return values.
// Components may be nil for omitted components.

type TupleType struct {
	Components []Type
}

var _ Type = &TupleType{}

var EmptyTupleType = &TupleType{}

func NewTupleType(components ...Type) *TupleType {
	return &TupleType{Components: components}
}

func (*TupleType) isType() {}

func (t *TupleType) String() string {
	return fmt.Sprintf("tuple(%s)", formatTypeList(t.Components))
}

func (t *TupleType) Equal(other Type) bool {
	otherTuple, ok := other.(*TupleType)
	return ok && typeListsEqual(t.Components, otherTuple.Components)
}

func (t *TupleType) IsInvalidType() bool {
	return containsInvalidType(t.Components)
}

// TypeType is the type of an expression that denotes a type,
// e.g. the identifier of a contract or the callee of a conversion

type TypeType struct {
	Actual Type
}

var _ Type = &TypeType{}

func (*TypeType) isType() {}

func (t *TypeType) String() string {
	return fmt.Sprintf("type(%s)", t.Actual)
}

func (t *TypeType) Equal(other Type) bool {
	otherType, ok := other.(*TypeType)
	return ok && t.Actual.Equal(otherType.Actual)
}

func (t *TypeType) IsInvalidType() bool {
	return t.Actual.IsInvalidType()
}

// MagicKind

type MagicKind uint8

const (
	MagicKindBlock MagicKind = iota
	MagicKindMessage
	MagicKindTransaction
	MagicKindABI
	MagicKindMetaType
)

// MagicType is the type of the global objects `block`, `msg`, `tx`, `abi`,
// and of the result of `type(T)`

type MagicType struct {
	Kind         MagicKind
	TypeArgument Type
}

var _ Type = &MagicType{}

func (*MagicType) isType() {}

func (t *MagicType) String() string {
	switch t.Kind {
	case MagicKindBlock:
		return "block"
	case MagicKindMessage:
		return "msg"
	case MagicKindTransaction:
		return "tx"
	case MagicKindABI:
		return "abi"
	default:
		return fmt.Sprintf("type(%s)", t.TypeArgument)
	}
}

func (t *MagicType) Equal(other Type) bool {
	otherMagic, ok := other.(*MagicType)
	if !ok || otherMagic.Kind != t.Kind {
		return false
	}
	if t.Kind != MagicKindMetaType {
		return true
	}
	return t.TypeArgument.Equal(otherMagic.TypeArgument)
}

func (*MagicType) IsInvalidType() bool {
	return false
}

// ModifierType

type ModifierType struct {
	Declaration *ast.ModifierDefinition
	Parameters  []Type
}

var _ Type = &ModifierType{}

func (*ModifierType) isType() {}

func (t *ModifierType) String() string {
	return fmt.Sprintf("modifier (%s)", formatTypeList(t.Parameters))
}

func (t *ModifierType) Equal(other Type) bool {
	otherModifier, ok := other.(*ModifierType)
	return ok && typeListsEqual(t.Parameters, otherModifier.Parameters)
}

func (t *ModifierType) IsInvalidType() bool {
	return containsInvalidType(t.Parameters)
}

// PendingResultType is the result of an asynchronous call to another contract.
// The payload becomes available through an await expression.

type PendingResultType struct {
	Payload Type
}

var _ Type = &PendingResultType{}

func NewPendingResultType(returnTypes []Type) *PendingResultType {
	var payload Type
	if len(returnTypes) == 1 {
		payload = returnTypes[0]
	} else {
		payload = NewTupleType(returnTypes...)
	}
	return &PendingResultType{Payload: payload}
}

func (*PendingResultType) isType() {}

func (t *PendingResultType) String() string {
	return fmt.Sprintf("pending(%s)", t.Payload)
}

func (t *PendingResultType) Equal(other Type) bool {
	otherPending, ok := other.(*PendingResultType)
	return ok && t.Payload.Equal(otherPending.Payload)
}

func (t *PendingResultType) IsInvalidType() bool {
	return t.Payload.IsInvalidType()
}
