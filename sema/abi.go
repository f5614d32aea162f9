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
	"strings"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

// ABIInterfaceType returns the type a value of the given type has
// when it is passed through the ABI, or nil and a reason if it cannot be.
//
// Library calls pass storage references as is.
func ABIInterfaceType(t Type, inLibrary bool) (Type, string) {
	if inLibrary && IsStorageReference(t) {
		return t, ""
	}

	switch t := t.(type) {
	case *IntegerType, *FixedBytesType, *AddressType:
		return t, ""

	case *SimpleType:
		return t, ""

	case *RationalNumberType:
		mobile := MobileType(t)
		if mobile == nil {
			return nil, "invalid rational number"
		}
		return mobile, ""

	case *StringLiteralType:
		return StringMemoryType, ""

	case *EnumType:
		return UInt8Type, ""

	case *ContractType:
		if t.Super || t.IsLibrary() {
			return nil, ""
		}
		return TheAddressType, ""

	case *ArrayType:
		if t.IsByteArrayOrString() {
			return t.WithLocation(common.DataLocationMemory, false), ""
		}
		base, reason := ABIInterfaceType(withLocationIfReference(t.Base, common.DataLocationMemory, false), inLibrary)
		if base == nil {
			if reason == "" {
				reason = fmt.Sprintf("type %s is not supported", t.Base)
			}
			return nil, reason
		}
		return &ArrayType{
			Base:     base,
			Length:   t.Length,
			Location: common.DataLocationMemory,
		}, ""

	case *ArraySliceType:
		return ABIInterfaceType(t.Array, inLibrary)

	case *StructType:
		if IsRecursiveStruct(t) {
			return nil, "recursive structs cannot be passed through the ABI"
		}
		for _, member := range t.Info.Members {
			if ContainsMapping(member.Type) {
				return nil, "structs containing mappings cannot be passed through the ABI"
			}
			memberType, reason := ABIInterfaceType(member.Type, false)
			if memberType == nil {
				return nil, reason
			}
		}
		return t.WithLocation(common.DataLocationMemory, false), ""

	case *MappingType:
		return nil, "mappings can only be passed to library functions"

	case *FunctionType:
		if t.Kind == FunctionKindExternal {
			return t, ""
		}
		return nil, "internal functions cannot be passed through the ABI"
	}

	return nil, ""
}

// IsABIEncodable reports whether values of the type can be passed through the ABI.
// The old encoder supports fewer types, see TypeSupportedByOldABIEncoder.
func IsABIEncodable(t Type, inLibrary bool, useV2 bool) bool {
	encodable, _ := ABIInterfaceType(t, inLibrary)
	if encodable == nil {
		return false
	}
	return useV2 || TypeSupportedByOldABIEncoder(encodable, inLibrary)
}

// TypeSupportedByOldABIEncoder reports whether the type can be represented
// by the ABI encoder of version 1: no structs and no nested dynamic arrays.
// Library calls pass storage references, which are always supported.
func TypeSupportedByOldABIEncoder(t Type, isLibraryCall bool) bool {
	if isLibraryCall && IsStorageReference(t) {
		return true
	}
	switch t := t.(type) {
	case *StructType:
		return false
	case *ArrayType:
		if !TypeSupportedByOldABIEncoder(t.Base, isLibraryCall) {
			return false
		}
		if base, ok := t.Base.(*ArrayType); ok && base.IsDynamicallySized() {
			return false
		}
	}
	return true
}

// CanBePackedEncoded reports whether a value of the type can be an argument of `abi.encodePacked`
func CanBePackedEncoded(t Type) (bool, string) {
	switch t := t.(type) {
	case *RationalNumberType, *StringLiteralType:
		return false, "cannot perform packed encoding for a literal, convert it to an explicit type first"
	case *StructType:
		return false, "type not supported in packed mode"
	case *ArrayType:
		if t.IsByteArrayOrString() {
			return true, ""
		}
		switch t.Base.(type) {
		case *ArrayType, *StructType:
			return false, "type not supported in packed mode"
		}
	case *MappingType, *TupleType, *TypeType, *MagicType, *ModifierType:
		return false, "type not supported in packed mode"
	case *FunctionType:
		if t.Kind != FunctionKindExternal {
			return false, "type not supported in packed mode"
		}
	}
	return true, ""
}

// CanonicalName returns the name of the type in external function signatures
func CanonicalName(t Type) string {
	switch t := t.(type) {
	case *ArrayType:
		switch t.Kind {
		case ArrayKindBytes:
			return "bytes"
		case ArrayKindString:
			return "string"
		}
		if t.Length == nil {
			return CanonicalName(t.Base) + "[]"
		}
		return fmt.Sprintf("%s[%s]", CanonicalName(t.Base), t.Length)

	case *StructType:
		names := make([]string, len(t.Info.Members))
		for i, member := range t.Info.Members {
			names[i] = CanonicalName(member.Type)
		}
		return "(" + strings.Join(names, ",") + ")"

	case *EnumType:
		return "uint8"

	case *ContractType:
		return "address"

	case *AddressType:
		return "address"

	case *FunctionType:
		return "function"

	case *ArraySliceType:
		return CanonicalName(t.Array)
	}
	return t.String()
}

// ExternalSignature returns the signature of an external function, e.g. `transfer(address,uint256)`
func ExternalSignature(name string, parameters []Type) string {
	names := make([]string, len(parameters))
	for i, parameter := range parameters {
		names[i] = CanonicalName(parameter)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(names, ","))
}

// FunctionSelector returns the first four bytes of the hash of the signature
func FunctionSelector(signature string) [4]byte {
	var selector [4]byte
	copy(selector[:], Keccak256([]byte(signature)))
	return selector
}

// InterfaceID is the exclusive or of the selectors of all functions of an interface
func InterfaceID(selectors [][4]byte) [4]byte {
	var id [4]byte
	for _, selector := range selectors {
		for i := range id {
			id[i] ^= selector[i]
		}
	}
	return id
}

// ExternalFunctionSignature returns the signature of a function declaration
// given its function type, or false if it is not externally callable
func ExternalFunctionSignature(declaration ast.Declaration, functionType *FunctionType) (string, bool) {
	if declaration == nil {
		return "", false
	}
	external := functionType.AsExternallyCallable(false)
	if external == nil {
		return "", false
	}
	return ExternalSignature(declaration.DeclarationIdentifier(), external.Parameters), true
}
