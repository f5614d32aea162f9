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

package ast

import (
	"github.com/solpp-lang/solpp/errors"
)

// ContractKind

type ContractKind uint8

const (
	ContractKindContract ContractKind = iota
	ContractKindInterface
	ContractKindLibrary
)

func (k ContractKind) Keyword() string {
	switch k {
	case ContractKindContract:
		return "contract"
	case ContractKindInterface:
		return "interface"
	case ContractKindLibrary:
		return "library"
	}

	panic(errors.NewUnreachableError())
}

// FunctionKind

type FunctionKind uint8

const (
	FunctionKindFunction FunctionKind = iota
	FunctionKindConstructor
	FunctionKindFallback
	FunctionKindReceive
	FunctionKindFree
)

func (k FunctionKind) Name() string {
	switch k {
	case FunctionKindFunction:
		return "function"
	case FunctionKindConstructor:
		return "constructor"
	case FunctionKindFallback:
		return "fallback function"
	case FunctionKindReceive:
		return "receive function"
	case FunctionKindFree:
		return "free function"
	}

	panic(errors.NewUnreachableError())
}

// Visibility

type Visibility uint8

const (
	VisibilityDefault Visibility = iota
	VisibilityPrivate
	VisibilityInternal
	VisibilityPublic
	VisibilityExternal
)

func (v Visibility) Keyword() string {
	switch v {
	case VisibilityDefault:
		return ""
	case VisibilityPrivate:
		return "private"
	case VisibilityInternal:
		return "internal"
	case VisibilityPublic:
		return "public"
	case VisibilityExternal:
		return "external"
	}

	panic(errors.NewUnreachableError())
}

// IsExternallyVisible reports whether a declaration with this visibility
// can be called through a message from another contract
func (v Visibility) IsExternallyVisible() bool {
	return v == VisibilityPublic || v == VisibilityExternal
}

// StateMutability

type StateMutability uint8

const (
	StateMutabilityNonPayable StateMutability = iota
	StateMutabilityPure
	StateMutabilityView
	StateMutabilityPayable
)

func (m StateMutability) Keyword() string {
	switch m {
	case StateMutabilityNonPayable:
		return "nonpayable"
	case StateMutabilityPure:
		return "pure"
	case StateMutabilityView:
		return "view"
	case StateMutabilityPayable:
		return "payable"
	}

	panic(errors.NewUnreachableError())
}

// VariableMutability

type VariableMutability uint8

const (
	VariableMutabilityMutable VariableMutability = iota
	VariableMutabilityImmutable
	VariableMutabilityConstant
)

// VariableScope is the syntactic position a variable is declared in
type VariableScope uint8

const (
	VariableScopeLocal VariableScope = iota
	VariableScopeState
	VariableScopeFileLevel
	VariableScopeParameter
	VariableScopeReturnParameter
	VariableScopeEventParameter
	VariableScopeMessageParameter
	VariableScopeStructMember
	VariableScopeFunctionTypeParameter
	VariableScopeCatchParameter
)

func (s VariableScope) IsCallableParameter() bool {
	switch s {
	case VariableScopeParameter,
		VariableScopeReturnParameter,
		VariableScopeEventParameter,
		VariableScopeMessageParameter:
		return true
	}
	return false
}

// LiteralKind

type LiteralKind uint8

const (
	LiteralKindNumber LiteralKind = iota
	LiteralKindBool
	LiteralKindString
	LiteralKindHexString
	LiteralKindUnicodeString
)
