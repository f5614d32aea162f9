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
	"github.com/SaveTheRbtz/mph"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

// magicVariable is a built-in global name.
// Deprecated names have a replacement and no types.
type magicVariable struct {
	name        string
	replacement string
	types       func(checker *Checker) []Type
}

func builtinFunction(
	kind FunctionKind,
	mutability ast.StateMutability,
	parameters []Type,
	returnParameters []Type,
) *FunctionType {
	return &FunctionType{
		Kind:             kind,
		Parameters:       parameters,
		ReturnParameters: returnParameters,
		StateMutability:  mutability,
	}
}

func staticTypes(types ...Type) func(*Checker) []Type {
	return func(_ *Checker) []Type {
		return types
	}
}

var magicVariables = []magicVariable{
	{
		name:  "abi",
		types: staticTypes(&MagicType{Kind: MagicKindABI}),
	},
	{
		name: "addmod",
		types: staticTypes(
			builtinFunction(
				FunctionKindAddMod,
				ast.StateMutabilityPure,
				[]Type{UInt256Type, UInt256Type, UInt256Type},
				[]Type{UInt256Type},
			),
		),
	},
	{
		name: "assert",
		types: staticTypes(
			builtinFunction(
				FunctionKindAssert,
				ast.StateMutabilityPure,
				[]Type{BoolType},
				nil,
			),
		),
	},
	{
		name: "balance",
		types: staticTypes(
			builtinFunction(
				FunctionKindBalance,
				ast.StateMutabilityView,
				[]Type{TokenIdType},
				[]Type{UInt256Type},
			),
		),
	},
	{
		name:  "block",
		types: staticTypes(&MagicType{Kind: MagicKindBlock}),
	},
	{
		name: "blockhash",
		types: staticTypes(
			builtinFunction(
				FunctionKindBlockHash,
				ast.StateMutabilityView,
				[]Type{UInt256Type},
				[]Type{Bytes32Type},
			),
		),
	},
	{
		name: "ecrecover",
		types: staticTypes(
			builtinFunction(
				FunctionKindECRecover,
				ast.StateMutabilityPure,
				[]Type{Bytes32Type, UInt8Type, Bytes32Type, Bytes32Type},
				[]Type{TheAddressType},
			),
		),
	},
	{
		name: "gasleft",
		types: staticTypes(
			builtinFunction(
				FunctionKindGasLeft,
				ast.StateMutabilityView,
				nil,
				[]Type{UInt256Type},
			),
		),
	},
	{
		name: "keccak256",
		types: staticTypes(
			builtinFunction(
				FunctionKindKECCAK256,
				ast.StateMutabilityPure,
				[]Type{BytesMemoryType},
				[]Type{Bytes32Type},
			),
		),
	},
	{
		name:  "msg",
		types: staticTypes(&MagicType{Kind: MagicKindMessage}),
	},
	{
		name: "mulmod",
		types: staticTypes(
			builtinFunction(
				FunctionKindMulMod,
				ast.StateMutabilityPure,
				[]Type{UInt256Type, UInt256Type, UInt256Type},
				[]Type{UInt256Type},
			),
		),
	},
	{
		name:        "now",
		replacement: "block.timestamp",
	},
	{
		name: "require",
		types: staticTypes(
			builtinFunction(
				FunctionKindRequire,
				ast.StateMutabilityPure,
				[]Type{BoolType},
				nil,
			),
			builtinFunction(
				FunctionKindRequire,
				ast.StateMutabilityPure,
				[]Type{BoolType, StringMemoryType},
				nil,
			),
		),
	},
	{
		name: "revert",
		types: staticTypes(
			builtinFunction(
				FunctionKindRevert,
				ast.StateMutabilityPure,
				nil,
				nil,
			),
			builtinFunction(
				FunctionKindRevert,
				ast.StateMutabilityPure,
				[]Type{StringMemoryType},
				nil,
			),
		),
	},
	{
		name: "ripemd160",
		types: staticTypes(
			builtinFunction(
				FunctionKindRIPEMD160,
				ast.StateMutabilityPure,
				[]Type{BytesMemoryType},
				[]Type{NewFixedBytesType(20)},
			),
		),
	},
	{
		name: "selfdestruct",
		types: staticTypes(
			builtinFunction(
				FunctionKindSelfdestruct,
				ast.StateMutabilityNonPayable,
				[]Type{PayableAddressType},
				nil,
			),
		),
	},
	{
		name:        "sha3",
		replacement: "keccak256",
	},
	{
		name: "sha256",
		types: staticTypes(
			builtinFunction(
				FunctionKindSHA256,
				ast.StateMutabilityPure,
				[]Type{BytesMemoryType},
				[]Type{Bytes32Type},
			),
		),
	},
	{
		name:        "suicide",
		replacement: "selfdestruct",
	},
	{
		name: "super",
		types: func(checker *Checker) []Type {
			contract := checker.currentContract()
			if contract == nil {
				return nil
			}
			return []Type{&ContractType{Declaration: contract, Super: true}}
		},
	},
	{
		name: "this",
		types: func(checker *Checker) []Type {
			contract := checker.currentContract()
			if contract == nil {
				return nil
			}
			return []Type{&ContractType{Declaration: contract}}
		},
	},
	{
		name:  "tx",
		types: staticTypes(&MagicType{Kind: MagicKindTransaction}),
	},
	{
		name: "type",
		types: staticTypes(
			&FunctionType{
				Kind:                FunctionKindMetaType,
				StateMutability:     ast.StateMutabilityPure,
				ArbitraryParameters: true,
			},
		),
	},
}

var magicVariableNames = func() []string {
	names := make([]string, len(magicVariables))
	for i, variable := range magicVariables {
		names[i] = variable.name
	}
	return names
}()

var magicVariablesTable = mph.Build(magicVariableNames)

func lookupMagicVariable(name string) (magicVariable, bool) {
	index, ok := magicVariablesTable.Lookup(name)
	if !ok {
		return magicVariable{}, false
	}
	return magicVariables[index], true
}

func (checker *Checker) magicCandidates(name string) []declarationCandidate {
	variable, ok := lookupMagicVariable(name)
	if !ok || variable.types == nil {
		return nil
	}
	types := variable.types(checker)
	candidates := make([]declarationCandidate, len(types))
	for i, ty := range types {
		candidates[i] = declarationCandidate{
			Type: ty,
		}
	}
	return candidates
}

// deprecatedMagicReplacement returns the replacement of a removed built-in name
func deprecatedMagicReplacement(name string) (string, bool) {
	variable, ok := lookupMagicVariable(name)
	if !ok || variable.replacement == "" {
		return "", false
	}
	return variable.replacement, true
}

// elementaryTypeNames are the elementary type keywords without a size suffix
var elementaryTypeNames = []string{
	"address",
	"bool",
	"byte",
	"bytes",
	"int",
	"string",
	"tokenId",
	"uint",
}

var elementaryTypeNamesTable = mph.Build(elementaryTypeNames)

func isElementaryTypeKeyword(name string) bool {
	_, ok := elementaryTypeNamesTable.Lookup(name)
	return ok
}

func unsizedElementaryType(name string, location common.DataLocation, mutability ast.StateMutability) Type {
	switch name {
	case "address":
		if mutability == ast.StateMutabilityPayable {
			return PayableAddressType
		}
		return TheAddressType
	case "bool":
		return BoolType
	case "byte":
		return Bytes1Type
	case "bytes":
		return NewBytesType(location)
	case "int":
		return Int256Type
	case "string":
		return NewStringType(location)
	case "tokenId":
		return TokenIdType
	case "uint":
		return UInt256Type
	}
	return nil
}
