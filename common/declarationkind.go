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

package common

import (
	"github.com/solpp-lang/solpp/errors"
)

type DeclarationKind uint

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindVariable
	DeclarationKindStateVariable
	DeclarationKindConstant
	DeclarationKindImmutable
	DeclarationKindParameter
	DeclarationKindReturnParameter
	DeclarationKindFunction
	DeclarationKindConstructor
	DeclarationKindFallback
	DeclarationKindReceive
	DeclarationKindModifier
	DeclarationKindEvent
	DeclarationKindMessage
	DeclarationKindContract
	DeclarationKindInterface
	DeclarationKindLibrary
	DeclarationKindStruct
	DeclarationKindEnum
	DeclarationKindEnumValue
	DeclarationKindMagic
)

func (k DeclarationKind) IsTypeDeclaration() bool {
	switch k {
	case DeclarationKindContract,
		DeclarationKindInterface,
		DeclarationKindLibrary,
		DeclarationKindStruct,
		DeclarationKindEnum:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) IsCallable() bool {
	switch k {
	case DeclarationKindFunction,
		DeclarationKindConstructor,
		DeclarationKindFallback,
		DeclarationKindReceive,
		DeclarationKindModifier,
		DeclarationKindEvent,
		DeclarationKindMessage:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindUnknown:
		return "unknown"
	case DeclarationKindVariable:
		return "variable"
	case DeclarationKindStateVariable:
		return "state variable"
	case DeclarationKindConstant:
		return "constant"
	case DeclarationKindImmutable:
		return "immutable"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindReturnParameter:
		return "return parameter"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindConstructor:
		return "constructor"
	case DeclarationKindFallback:
		return "fallback function"
	case DeclarationKindReceive:
		return "receive function"
	case DeclarationKindModifier:
		return "modifier"
	case DeclarationKindEvent:
		return "event"
	case DeclarationKindMessage:
		return "message"
	case DeclarationKindContract:
		return "contract"
	case DeclarationKindInterface:
		return "interface"
	case DeclarationKindLibrary:
		return "library"
	case DeclarationKindStruct:
		return "struct"
	case DeclarationKindEnum:
		return "enum"
	case DeclarationKindEnumValue:
		return "enum value"
	case DeclarationKindMagic:
		return "magic variable"
	}

	panic(errors.NewUnreachableError())
}
