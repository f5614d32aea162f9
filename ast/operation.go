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

type Operation uint

const (
	OperationUnknown Operation = iota
	OperationOr
	OperationAnd
	OperationEqual
	OperationNotEqual
	OperationLess
	OperationGreater
	OperationLessEqual
	OperationGreaterEqual
	OperationAdd
	OperationSub
	OperationMul
	OperationDiv
	OperationMod
	OperationExp
	OperationBitwiseOr
	OperationBitwiseXor
	OperationBitwiseAnd
	OperationShiftLeft
	OperationShiftRight
	OperationNot
	OperationBitwiseNot
	OperationInc
	OperationDec
	OperationDelete
	OperationAssign
)

func (s Operation) Symbol() string {
	switch s {
	case OperationOr:
		return "||"
	case OperationAnd:
		return "&&"
	case OperationEqual:
		return "=="
	case OperationNotEqual:
		return "!="
	case OperationLess:
		return "<"
	case OperationGreater:
		return ">"
	case OperationLessEqual:
		return "<="
	case OperationGreaterEqual:
		return ">="
	case OperationAdd:
		return "+"
	case OperationSub:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationMod:
		return "%"
	case OperationExp:
		return "**"
	case OperationBitwiseOr:
		return "|"
	case OperationBitwiseXor:
		return "^"
	case OperationBitwiseAnd:
		return "&"
	case OperationShiftLeft:
		return "<<"
	case OperationShiftRight:
		return ">>"
	case OperationNot:
		return "!"
	case OperationBitwiseNot:
		return "~"
	case OperationInc:
		return "++"
	case OperationDec:
		return "--"
	case OperationDelete:
		return "delete"
	case OperationAssign:
		return "="
	}

	panic(errors.NewUnreachableError())
}

// AssignmentSymbol returns the symbol of the assignment operator
// that applies the operation, e.g. `+=` for OperationAdd
func (s Operation) AssignmentSymbol() string {
	if s == OperationAssign {
		return "="
	}
	return s.Symbol() + "="
}

func (s Operation) IsCompareOp() bool {
	switch s {
	case OperationEqual,
		OperationNotEqual,
		OperationLess,
		OperationGreater,
		OperationLessEqual,
		OperationGreaterEqual:
		return true
	}
	return false
}

func (s Operation) IsBooleanOp() bool {
	return s == OperationAnd || s == OperationOr
}

func (s Operation) IsBitOp() bool {
	switch s {
	case OperationBitwiseOr,
		OperationBitwiseXor,
		OperationBitwiseAnd,
		OperationBitwiseNot:
		return true
	}
	return false
}

func (s Operation) IsShiftOp() bool {
	return s == OperationShiftLeft || s == OperationShiftRight
}

func (s Operation) IsArithmeticOp() bool {
	switch s {
	case OperationAdd,
		OperationSub,
		OperationMul,
		OperationDiv,
		OperationMod,
		OperationExp:
		return true
	}
	return false
}

// IsBinaryAssignable reports whether the operation can form a compound assignment
func (s Operation) IsBinaryAssignable() bool {
	return s.IsArithmeticOp() ||
		s.IsShiftOp() ||
		(s.IsBitOp() && s != OperationBitwiseNot)
}
