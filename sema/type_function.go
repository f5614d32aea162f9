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
	"strings"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/errors"
)

// FunctionKind distinguishes how a function type is invoked

type FunctionKind uint8

const (
	FunctionKindInternal FunctionKind = iota
	FunctionKindExternal
	FunctionKindDelegateCall
	FunctionKindBareCall
	FunctionKindBareStaticCall
	FunctionKindCreation
	FunctionKindEvent
	FunctionKindMessage
	FunctionKindDeclaration
	FunctionKindTransfer
	FunctionKindSend
	FunctionKindKECCAK256
	FunctionKindSHA256
	FunctionKindRIPEMD160
	FunctionKindECRecover
	FunctionKindBlockHash
	FunctionKindAddMod
	FunctionKindMulMod
	FunctionKindBalance
	FunctionKindArrayPush
	FunctionKindArrayPop
	FunctionKindBytesConcat
	FunctionKindObjectCreation
	FunctionKindAssert
	FunctionKindRequire
	FunctionKindRevert
	FunctionKindGasLeft
	FunctionKindSelfdestruct
	FunctionKindABIEncode
	FunctionKindABIEncodePacked
	FunctionKindABIEncodeWithSelector
	FunctionKindABIEncodeWithSignature
	FunctionKindABIDecode
	FunctionKindMetaType
)

func (k FunctionKind) Name() string {
	switch k {
	case FunctionKindInternal:
		return "internal"
	case FunctionKindExternal:
		return "external"
	case FunctionKindDelegateCall:
		return "delegatecall"
	case FunctionKindBareCall:
		return "barecall"
	case FunctionKindBareStaticCall:
		return "barestaticcall"
	case FunctionKindCreation:
		return "creation"
	case FunctionKindEvent:
		return "event"
	case FunctionKindMessage:
		return "message"
	case FunctionKindDeclaration:
		return "declaration"
	}
	return "builtin"
}

// IsBareCall reports whether the function is a low-level call
func (k FunctionKind) IsBareCall() bool {
	return k == FunctionKindBareCall || k == FunctionKindBareStaticCall
}

// IsABIEncode reports whether the function is one of the `abi.encode*` functions
func (k FunctionKind) IsABIEncode() bool {
	switch k {
	case FunctionKindABIEncode,
		FunctionKindABIEncodePacked,
		FunctionKindABIEncodeWithSelector,
		FunctionKindABIEncodeWithSignature:
		return true
	}
	return false
}

// FunctionType

type FunctionType struct {
	Kind                 FunctionKind
	Parameters           []Type
	ParameterNames       []string
	ReturnParameters     []Type
	ReturnParameterNames []string
	StateMutability      ast.StateMutability
	// Declaration is the function, event, message, or variable
	// the function type was derived from, if any
	Declaration ast.Declaration
	// ArbitraryParameters allows any number of arguments of any type
	ArbitraryParameters bool
	// BoundTo is the type of the first argument of a function
	// attached with `using for`, which is passed implicitly
	BoundTo  Type
	GasSet   bool
	ValueSet bool
	SaltSet  bool
	TokenSet bool
}

var _ Type = &FunctionType{}

func (*FunctionType) isType() {}

func (t *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString("function (")
	sb.WriteString(formatTypeList(t.Parameters))
	sb.WriteByte(')')
	if t.StateMutability != ast.StateMutabilityNonPayable {
		sb.WriteByte(' ')
		sb.WriteString(t.StateMutability.Keyword())
	}
	switch t.Kind {
	case FunctionKindInternal, FunctionKindExternal:
		sb.WriteByte(' ')
		sb.WriteString(t.Kind.Name())
	}
	if len(t.ReturnParameters) > 0 {
		sb.WriteString(" returns (")
		sb.WriteString(formatTypeList(t.ReturnParameters))
		sb.WriteByte(')')
	}
	return sb.String()
}

func (t *FunctionType) Equal(other Type) bool {
	otherFunction, ok := other.(*FunctionType)
	if !ok {
		return false
	}
	return t.Kind == otherFunction.Kind &&
		t.StateMutability == otherFunction.StateMutability &&
		t.ArbitraryParameters == otherFunction.ArbitraryParameters &&
		t.GasSet == otherFunction.GasSet &&
		t.ValueSet == otherFunction.ValueSet &&
		t.SaltSet == otherFunction.SaltSet &&
		t.TokenSet == otherFunction.TokenSet &&
		typesEqual(t.BoundTo, otherFunction.BoundTo) &&
		typeListsEqual(t.Parameters, otherFunction.Parameters) &&
		typeListsEqual(t.ReturnParameters, otherFunction.ReturnParameters)
}

func (t *FunctionType) IsInvalidType() bool {
	return containsInvalidType(t.Parameters) ||
		containsInvalidType(t.ReturnParameters)
}

func (t *FunctionType) IsPayable() bool {
	return t.StateMutability == ast.StateMutabilityPayable
}

// IsExternal reports whether calling the function sends a message
func (t *FunctionType) IsExternal() bool {
	switch t.Kind {
	case FunctionKindExternal,
		FunctionKindDelegateCall,
		FunctionKindBareCall,
		FunctionKindBareStaticCall,
		FunctionKindCreation,
		FunctionKindMessage:
		return true
	}
	return false
}

// IsAsynchronous reports whether calling the function yields a pending result
func (t *FunctionType) IsAsynchronous() bool {
	return t.Kind == FunctionKindExternal
}

// CanTakeCallOptions reports whether `{value: ...}` style options apply
func (t *FunctionType) CanTakeCallOptions() bool {
	switch t.Kind {
	case FunctionKindExternal,
		FunctionKindDelegateCall,
		FunctionKindBareCall,
		FunctionKindBareStaticCall,
		FunctionKindCreation,
		FunctionKindMessage:
		return true
	}
	return false
}

// HasEqualParameterTypes reports whether both functions accept the same parameters
func (t *FunctionType) HasEqualParameterTypes(other *FunctionType) bool {
	return typeListsEqual(t.Parameters, other.Parameters)
}

// HasEqualReturnTypes reports whether both functions return the same types
func (t *FunctionType) HasEqualReturnTypes(other *FunctionType) bool {
	return typeListsEqual(t.ReturnParameters, other.ReturnParameters)
}

// CanTakeArguments reports whether a call with the given argument types,
// and optionally names, matches the parameters
func (t *FunctionType) CanTakeArguments(argumentTypes []Type, names []string) bool {
	if t.ArbitraryParameters {
		return true
	}
	if len(argumentTypes) != len(t.Parameters) {
		return false
	}
	if len(names) == 0 {
		for i, argumentType := range argumentTypes {
			if !IsImplicitlyConvertible(argumentType, t.Parameters[i]) {
				return false
			}
		}
		return true
	}
	for i, name := range names {
		index := t.parameterIndex(name)
		if index < 0 {
			return false
		}
		if !IsImplicitlyConvertible(argumentTypes[i], t.Parameters[index]) {
			return false
		}
	}
	return true
}

func (t *FunctionType) parameterIndex(name string) int {
	for i, parameterName := range t.ParameterNames {
		if parameterName == name {
			return i
		}
	}
	return -1
}

// ReturnType is the type of a call of the function
func (t *FunctionType) ReturnType() Type {
	if len(t.ReturnParameters) == 1 {
		return t.ReturnParameters[0]
	}
	return NewTupleType(t.ReturnParameters...)
}

// CopyWithCallOptions returns a copy of the function type
// with the given options marked as set
func (t *FunctionType) CopyWithCallOptions(gas, value, salt, token bool) *FunctionType {
	copied := *t
	copied.GasSet = t.GasSet || gas
	copied.ValueSet = t.ValueSet || value
	copied.SaltSet = t.SaltSet || salt
	copied.TokenSet = t.TokenSet || token
	return &copied
}

// WithBoundFirstArgument returns the function type seen through `using for`:
// the first parameter is bound to the receiver
func (t *FunctionType) WithBoundFirstArgument() *FunctionType {
	if len(t.Parameters) == 0 {
		panic(errors.NewUnexpectedError("cannot bind function without parameters"))
	}
	copied := *t
	copied.BoundTo = t.Parameters[0]
	copied.Parameters = t.Parameters[1:]
	if len(t.ParameterNames) > 0 {
		copied.ParameterNames = t.ParameterNames[1:]
	}
	return &copied
}

// AsExternallyCallable returns the type of the function as seen
// by a caller through a message, or nil if any parameter or return type
// cannot be passed through the ABI
func (t *FunctionType) AsExternallyCallable(inLibrary bool) *FunctionType {
	parameters := make([]Type, len(t.Parameters))
	for i, parameter := range t.Parameters {
		encodable, _ := ABIInterfaceType(parameter, inLibrary)
		if encodable == nil {
			return nil
		}
		parameters[i] = encodable
	}
	returnParameters := make([]Type, len(t.ReturnParameters))
	for i, returnParameter := range t.ReturnParameters {
		encodable, _ := ABIInterfaceType(returnParameter, inLibrary)
		if encodable == nil {
			return nil
		}
		returnParameters[i] = encodable
	}
	copied := *t
	copied.Parameters = parameters
	copied.ReturnParameters = returnParameters
	if inLibrary {
		copied.Kind = FunctionKindDelegateCall
	} else {
		copied.Kind = FunctionKindExternal
	}
	return &copied
}
