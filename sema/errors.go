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
	"github.com/solpp-lang/solpp/errors"
)

func ErrorMessageExpectedActualTypes(
	expectedType Type,
	actualType Type,
) (
	expected string,
	actual string,
) {
	expected = expectedType.String()
	actual = actualType.String()
	if expected == actual {
		expected = fmt.Sprintf("%s (%T)", expected, expectedType)
		actual = fmt.Sprintf("%s (%T)", actual, actualType)
	}
	return
}

// CheckerError aggregates the errors of checking one source unit

type CheckerError struct {
	Location common.Location
	Errors   []error
}

var _ errors.UserError = CheckerError{}
var _ errors.ParentError = CheckerError{}

func (e CheckerError) Error() string {
	var sb strings.Builder
	sb.WriteString("Checking failed:\n")
	for _, err := range e.Errors {
		if positioned, ok := err.(ast.HasPosition); ok {
			sb.WriteString(positioned.StartPosition().String())
			sb.WriteString(": ")
		}
		sb.WriteString(err.Error())
		if secondaryError, ok := err.(errors.SecondaryError); ok {
			sb.WriteString(". ")
			sb.WriteString(secondaryError.SecondaryError())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (e CheckerError) ChildErrors() []error {
	return e.Errors
}

func (CheckerError) IsUserError() {}

// SemanticError

type SemanticError interface {
	errors.UserError
	ast.HasPosition
	isSemanticError()
}

// TypeMismatchError

type TypeMismatchError struct {
	ExpectedType Type
	ActualType   Type
	ast.Range
}

var _ SemanticError = &TypeMismatchError{}
var _ errors.SecondaryError = &TypeMismatchError{}

func (*TypeMismatchError) isSemanticError() {}

func (*TypeMismatchError) IsUserError() {}

func (e *TypeMismatchError) Error() string {
	return "mismatched types"
}

func (e *TypeMismatchError) SecondaryError() string {
	expected, actual := ErrorMessageExpectedActualTypes(e.ExpectedType, e.ActualType)
	return fmt.Sprintf(
		"type `%s` is not implicitly convertible to expected type `%s`",
		actual,
		expected,
	)
}

// TypeMismatchWithDescriptionError

type TypeMismatchWithDescriptionError struct {
	ExpectedTypeDescription string
	ActualType              Type
	ast.Range
}

var _ SemanticError = &TypeMismatchWithDescriptionError{}
var _ errors.SecondaryError = &TypeMismatchWithDescriptionError{}

func (*TypeMismatchWithDescriptionError) isSemanticError() {}

func (*TypeMismatchWithDescriptionError) IsUserError() {}

func (e *TypeMismatchWithDescriptionError) Error() string {
	return "mismatched types"
}

func (e *TypeMismatchWithDescriptionError) SecondaryError() string {
	return fmt.Sprintf(
		"expected %s, got `%s`",
		e.ExpectedTypeDescription,
		e.ActualType,
	)
}

// NotDeclaredError

type NotDeclaredError struct {
	Name       string
	Suggestion string
	ast.Range
}

var _ SemanticError = &NotDeclaredError{}
var _ errors.SecondaryError = &NotDeclaredError{}

func (*NotDeclaredError) isSemanticError() {}

func (*NotDeclaredError) IsUserError() {}

func (e *NotDeclaredError) Error() string {
	return fmt.Sprintf("undeclared identifier `%s`", e.Name)
}

func (e *NotDeclaredError) SecondaryError() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("not found in this scope; did you mean `%s`?", e.Suggestion)
	}
	return "not found in this scope"
}

// AmbiguousDeclarationError

type AmbiguousDeclarationError struct {
	Name           string
	CandidateCount int
	ast.Range
}

var _ SemanticError = &AmbiguousDeclarationError{}

func (*AmbiguousDeclarationError) isSemanticError() {}

func (*AmbiguousDeclarationError) IsUserError() {}

func (e *AmbiguousDeclarationError) Error() string {
	return fmt.Sprintf(
		"no unique declaration found for `%s`, %d candidates",
		e.Name,
		e.CandidateCount,
	)
}

// NoMatchingDeclarationError

type NoMatchingDeclarationError struct {
	Name          string
	ArgumentTypes []Type
	ast.Range
}

var _ SemanticError = &NoMatchingDeclarationError{}
var _ errors.SecondaryError = &NoMatchingDeclarationError{}

func (*NoMatchingDeclarationError) isSemanticError() {}

func (*NoMatchingDeclarationError) IsUserError() {}

func (e *NoMatchingDeclarationError) Error() string {
	return fmt.Sprintf("no matching declaration found for `%s` after argument-dependent lookup", e.Name)
}

func (e *NoMatchingDeclarationError) SecondaryError() string {
	return fmt.Sprintf("argument types: (%s)", formatTypeList(e.ArgumentTypes))
}

// DeprecatedIdentifierError

type DeprecatedIdentifierError struct {
	Name        string
	Replacement string
	ast.Range
}

var _ SemanticError = &DeprecatedIdentifierError{}

func (*DeprecatedIdentifierError) isSemanticError() {}

func (*DeprecatedIdentifierError) IsUserError() {}

func (e *DeprecatedIdentifierError) Error() string {
	return fmt.Sprintf("`%s` has been deprecated in favour of `%s`", e.Name, e.Replacement)
}

// NotDeclaredMemberError

type NotDeclaredMemberError struct {
	Type Type
	Name string
	// Hint explains why a member exists elsewhere, e.g. only for storage
	Hint       string
	Suggestion string
	ast.Range
}

var _ SemanticError = &NotDeclaredMemberError{}
var _ errors.SecondaryError = &NotDeclaredMemberError{}

func (*NotDeclaredMemberError) isSemanticError() {}

func (*NotDeclaredMemberError) IsUserError() {}

func (e *NotDeclaredMemberError) Error() string {
	return fmt.Sprintf(
		"member `%s` not found or not visible in `%s`",
		e.Name,
		e.Type,
	)
}

func (e *NotDeclaredMemberError) SecondaryError() string {
	if e.Hint != "" {
		return e.Hint
	}
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown member; did you mean `%s`?", e.Suggestion)
	}
	return "unknown member"
}

// AmbiguousMemberError

type AmbiguousMemberError struct {
	Type Type
	Name string
	ast.Range
}

var _ SemanticError = &AmbiguousMemberError{}

func (*AmbiguousMemberError) isSemanticError() {}

func (*AmbiguousMemberError) IsUserError() {}

func (e *AmbiguousMemberError) Error() string {
	return fmt.Sprintf(
		"member `%s` not unique in `%s` after argument-dependent lookup",
		e.Name,
		e.Type,
	)
}

// InvalidUnaryOperandError

type InvalidUnaryOperandError struct {
	Operation   ast.Operation
	OperandType Type
	Reason      string
	ast.Range
}

var _ SemanticError = &InvalidUnaryOperandError{}
var _ errors.SecondaryError = &InvalidUnaryOperandError{}

func (*InvalidUnaryOperandError) isSemanticError() {}

func (*InvalidUnaryOperandError) IsUserError() {}

func (e *InvalidUnaryOperandError) Error() string {
	return fmt.Sprintf(
		"cannot apply unary operation %s to type `%s`",
		e.Operation.Symbol(),
		e.OperandType,
	)
}

func (e *InvalidUnaryOperandError) SecondaryError() string {
	return e.Reason
}

// InvalidBinaryOperandsError

type InvalidBinaryOperandsError struct {
	Operation ast.Operation
	LeftType  Type
	RightType Type
	Reason    string
	ast.Range
}

var _ SemanticError = &InvalidBinaryOperandsError{}
var _ errors.SecondaryError = &InvalidBinaryOperandsError{}

func (*InvalidBinaryOperandsError) isSemanticError() {}

func (*InvalidBinaryOperandsError) IsUserError() {}

func (e *InvalidBinaryOperandsError) Error() string {
	return fmt.Sprintf(
		"cannot apply binary operation %s to types `%s` and `%s`",
		e.Operation.Symbol(),
		e.LeftType,
		e.RightType,
	)
}

func (e *InvalidBinaryOperandsError) SecondaryError() string {
	return e.Reason
}

// NotAssignableError

type NotAssignableError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &NotAssignableError{}
var _ errors.SecondaryError = &NotAssignableError{}

func (*NotAssignableError) isSemanticError() {}

func (*NotAssignableError) IsUserError() {}

func (e *NotAssignableError) Error() string {
	return "expression has to be an lvalue"
}

func (e *NotAssignableError) SecondaryError() string {
	return e.Reason
}

// InvalidAssignmentError

type InvalidAssignmentError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidAssignmentError{}

func (*InvalidAssignmentError) isSemanticError() {}

func (*InvalidAssignmentError) IsUserError() {}

func (e *InvalidAssignmentError) Error() string {
	return fmt.Sprintf("invalid assignment: %s", e.Reason)
}

// NotIndexableTypeError

type NotIndexableTypeError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &NotIndexableTypeError{}

func (*NotIndexableTypeError) isSemanticError() {}

func (*NotIndexableTypeError) IsUserError() {}

func (e *NotIndexableTypeError) Error() string {
	return fmt.Sprintf("cannot index into value of type `%s`", e.Type)
}

// InvalidIndexError

type InvalidIndexError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidIndexError{}

func (*InvalidIndexError) isSemanticError() {}

func (*InvalidIndexError) IsUserError() {}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid index: %s", e.Reason)
}

// NotCallableError

type NotCallableError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &NotCallableError{}

func (*NotCallableError) isSemanticError() {}

func (*NotCallableError) IsUserError() {}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("cannot call type `%s`", e.Type)
}

// ArgumentCountError

type ArgumentCountError struct {
	ParameterCount int
	ArgumentCount  int
	ast.Range
}

var _ SemanticError = &ArgumentCountError{}
var _ errors.SecondaryError = &ArgumentCountError{}

func (*ArgumentCountError) isSemanticError() {}

func (*ArgumentCountError) IsUserError() {}

func (e *ArgumentCountError) Error() string {
	return "incorrect number of arguments"
}

func (e *ArgumentCountError) SecondaryError() string {
	return fmt.Sprintf(
		"expected %d, got %d",
		e.ParameterCount,
		e.ArgumentCount,
	)
}

// InvalidNamedArgumentError

type InvalidNamedArgumentError struct {
	Name   string
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidNamedArgumentError{}

func (*InvalidNamedArgumentError) isSemanticError() {}

func (*InvalidNamedArgumentError) IsUserError() {}

func (e *InvalidNamedArgumentError) Error() string {
	return fmt.Sprintf("invalid named argument `%s`: %s", e.Name, e.Reason)
}

// InvalidCallOptionError

type InvalidCallOptionError struct {
	Option string
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidCallOptionError{}

func (*InvalidCallOptionError) isSemanticError() {}

func (*InvalidCallOptionError) IsUserError() {}

func (e *InvalidCallOptionError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("invalid call options: %s", e.Reason)
	}
	return fmt.Sprintf("invalid call option `%s`: %s", e.Option, e.Reason)
}

// InvalidConversionError

type InvalidConversionError struct {
	FromType Type
	ToType   Type
	ast.Range
}

var _ SemanticError = &InvalidConversionError{}

func (*InvalidConversionError) isSemanticError() {}

func (*InvalidConversionError) IsUserError() {}

func (e *InvalidConversionError) Error() string {
	return fmt.Sprintf(
		"explicit type conversion not allowed from `%s` to `%s`",
		e.FromType,
		e.ToType,
	)
}

// InvalidABIEncodingError

type InvalidABIEncodingError struct {
	Type   Type
	Packed bool
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidABIEncodingError{}
var _ errors.SecondaryError = &InvalidABIEncodingError{}

func (*InvalidABIEncodingError) isSemanticError() {}

func (*InvalidABIEncodingError) IsUserError() {}

func (e *InvalidABIEncodingError) Error() string {
	mode := "encoding"
	if e.Packed {
		mode = "packed encoding"
	}
	return fmt.Sprintf("type `%s` not supported in %s", e.Type, mode)
}

func (e *InvalidABIEncodingError) SecondaryError() string {
	return e.Reason
}

// InvalidABIDecodeError

type InvalidABIDecodeError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidABIDecodeError{}

func (*InvalidABIDecodeError) isSemanticError() {}

func (*InvalidABIDecodeError) IsUserError() {}

func (e *InvalidABIDecodeError) Error() string {
	return fmt.Sprintf("invalid abi.decode call: %s", e.Reason)
}

// InvalidMetaTypeArgumentError

type InvalidMetaTypeArgumentError struct {
	Type   Type
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidMetaTypeArgumentError{}

func (*InvalidMetaTypeArgumentError) isSemanticError() {}

func (*InvalidMetaTypeArgumentError) IsUserError() {}

func (e *InvalidMetaTypeArgumentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid type for argument in function call: %s", e.Reason)
	}
	return fmt.Sprintf("invalid type for argument in function call: `%s` is not a contract, interface, or integer type", e.Type)
}

// CyclicInheritanceError

type CyclicInheritanceError struct {
	Contract *ast.ContractDefinition
	ast.Range
}

var _ SemanticError = &CyclicInheritanceError{}

func (*CyclicInheritanceError) isSemanticError() {}

func (*CyclicInheritanceError) IsUserError() {}

func (e *CyclicInheritanceError) Error() string {
	return fmt.Sprintf("definition of base has to precede definition of derived contract `%s`", e.Contract.Name)
}

// CyclicContractCreationError

type CyclicContractCreationError struct {
	Contract *ast.ContractDefinition
	ast.Range
}

var _ SemanticError = &CyclicContractCreationError{}

func (*CyclicContractCreationError) isSemanticError() {}

func (*CyclicContractCreationError) IsUserError() {}

func (e *CyclicContractCreationError) Error() string {
	return fmt.Sprintf("circular reference for contract creation of `%s`, cannot create instance of derived or same contract", e.Contract.Name)
}

// InvalidDeclarationError is a declaration-level rule violation
// not covered by a more specific error

type InvalidDeclarationError struct {
	Kind   common.DeclarationKind
	Name   string
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidDeclarationError{}

func (*InvalidDeclarationError) isSemanticError() {}

func (*InvalidDeclarationError) IsUserError() {}

func (e *InvalidDeclarationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid %s: %s", e.Kind.Name(), e.Reason)
	}
	return fmt.Sprintf("invalid %s `%s`: %s", e.Kind.Name(), e.Name, e.Reason)
}

// InvalidBaseContractError

type InvalidBaseContractError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidBaseContractError{}

func (*InvalidBaseContractError) isSemanticError() {}

func (*InvalidBaseContractError) IsUserError() {}

func (e *InvalidBaseContractError) Error() string {
	return fmt.Sprintf("invalid base contract: %s", e.Reason)
}

// InvalidSpecialFunctionError is reported for malformed constructors,
// fallback functions, and receive functions

type InvalidSpecialFunctionError struct {
	Kind   ast.FunctionKind
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidSpecialFunctionError{}

func (*InvalidSpecialFunctionError) isSemanticError() {}

func (*InvalidSpecialFunctionError) IsUserError() {}

func (e *InvalidSpecialFunctionError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind.Name(), e.Reason)
}

// InvalidModifierError

type InvalidModifierError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidModifierError{}

func (*InvalidModifierError) isSemanticError() {}

func (*InvalidModifierError) IsUserError() {}

func (e *InvalidModifierError) Error() string {
	return fmt.Sprintf("invalid modifier: %s", e.Reason)
}

// InvalidEventDefinitionError is reported for malformed events and messages

type InvalidEventDefinitionError struct {
	Flavor EventFlavor
	Name   string
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidEventDefinitionError{}

func (*InvalidEventDefinitionError) isSemanticError() {}

func (*InvalidEventDefinitionError) IsUserError() {}

func (e *InvalidEventDefinitionError) Error() string {
	return fmt.Sprintf("invalid %s `%s`: %s", e.Flavor.Name(), e.Name, e.Reason)
}

// InvalidFunctionTypeError

type InvalidFunctionTypeError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidFunctionTypeError{}

func (*InvalidFunctionTypeError) isSemanticError() {}

func (*InvalidFunctionTypeError) IsUserError() {}

func (e *InvalidFunctionTypeError) Error() string {
	return fmt.Sprintf("invalid function type: %s", e.Reason)
}

// InvalidTypeNameError

type InvalidTypeNameError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidTypeNameError{}

func (*InvalidTypeNameError) isSemanticError() {}

func (*InvalidTypeNameError) IsUserError() {}

func (e *InvalidTypeNameError) Error() string {
	return fmt.Sprintf("invalid type: %s", e.Reason)
}

// InvalidDataLocationError

type InvalidDataLocationError struct {
	Name   string
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidDataLocationError{}

func (*InvalidDataLocationError) isSemanticError() {}

func (*InvalidDataLocationError) IsUserError() {}

func (e *InvalidDataLocationError) Error() string {
	return fmt.Sprintf("invalid data location for `%s`: %s", e.Name, e.Reason)
}

// InvalidReturnError

type InvalidReturnError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidReturnError{}

func (*InvalidReturnError) isSemanticError() {}

func (*InvalidReturnError) IsUserError() {}

func (e *InvalidReturnError) Error() string {
	return e.Reason
}

// InvalidEmitError

type InvalidEmitError struct {
	Flavor EventFlavor
	ast.Range
}

var _ SemanticError = &InvalidEmitError{}

func (*InvalidEmitError) isSemanticError() {}

func (*InvalidEmitError) IsUserError() {}

func (e *InvalidEmitError) Error() string {
	switch e.Flavor {
	case EventFlavorMessage:
		return "expression has to be a message invocation"
	default:
		return "expression has to be an event invocation"
	}
}

// InvalidEventUsageError is reported when an event or message is invoked
// outside of an emit or send statement

type InvalidEventUsageError struct {
	Flavor EventFlavor
	ast.Range
}

var _ SemanticError = &InvalidEventUsageError{}

func (*InvalidEventUsageError) isSemanticError() {}

func (*InvalidEventUsageError) IsUserError() {}

func (e *InvalidEventUsageError) Error() string {
	switch e.Flavor {
	case EventFlavorMessage:
		return "messages can only be invoked in send statements"
	default:
		return "events can only be invoked in emit statements"
	}
}

// NotAwaitableTypeError

type NotAwaitableTypeError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &NotAwaitableTypeError{}

func (*NotAwaitableTypeError) isSemanticError() {}

func (*NotAwaitableTypeError) IsUserError() {}

func (e *NotAwaitableTypeError) Error() string {
	return fmt.Sprintf("cannot await value of type `%s`: not the result of an asynchronous call", e.Type)
}

// InvalidAwaitError

type InvalidAwaitError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidAwaitError{}

func (*InvalidAwaitError) isSemanticError() {}

func (*InvalidAwaitError) IsUserError() {}

func (e *InvalidAwaitError) Error() string {
	return fmt.Sprintf("await is not allowed here: %s", e.Reason)
}

// InvalidTupleError

type InvalidTupleError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidTupleError{}

func (*InvalidTupleError) isSemanticError() {}

func (*InvalidTupleError) IsUserError() {}

func (e *InvalidTupleError) Error() string {
	return e.Reason
}

// InvalidLiteralError

type InvalidLiteralError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidLiteralError{}

func (*InvalidLiteralError) isSemanticError() {}

func (*InvalidLiteralError) IsUserError() {}

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("invalid literal: %s", e.Reason)
}

// AddressChecksumError

type AddressChecksumError struct {
	Literal            string
	ChecksummedAddress string
	ast.Range
}

var _ SemanticError = &AddressChecksumError{}
var _ errors.SecondaryError = &AddressChecksumError{}

func (*AddressChecksumError) isSemanticError() {}

func (*AddressChecksumError) IsUserError() {}

func (e *AddressChecksumError) Error() string {
	return "this looks like an address but has an invalid checksum"
}

func (e *AddressChecksumError) SecondaryError() string {
	if e.ChecksummedAddress == "" {
		return "if this is not used as an address, please prepend '00'"
	}
	return fmt.Sprintf("correct checksummed address: `%s`", e.ChecksummedAddress)
}

// InvalidNewExpressionError

type InvalidNewExpressionError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidNewExpressionError{}

func (*InvalidNewExpressionError) isSemanticError() {}

func (*InvalidNewExpressionError) IsUserError() {}

func (e *InvalidNewExpressionError) Error() string {
	return fmt.Sprintf("invalid new expression: %s", e.Reason)
}

// InvalidTryError

type InvalidTryError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidTryError{}

func (*InvalidTryError) isSemanticError() {}

func (*InvalidTryError) IsUserError() {}

func (e *InvalidTryError) Error() string {
	return fmt.Sprintf("invalid try statement: %s", e.Reason)
}

// InvalidUsingForError

type InvalidUsingForError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidUsingForError{}

func (*InvalidUsingForError) isSemanticError() {}

func (*InvalidUsingForError) IsUserError() {}

func (e *InvalidUsingForError) Error() string {
	return fmt.Sprintf("invalid using for directive: %s", e.Reason)
}

// UnsupportedFeatureError

type UnsupportedFeatureError struct {
	Feature Feature
	Version *PlatformVersion
	ast.Range
}

var _ SemanticError = &UnsupportedFeatureError{}

func (*UnsupportedFeatureError) isSemanticError() {}

func (*UnsupportedFeatureError) IsUserError() {}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf(
		"%s not supported by platform version %s",
		e.Feature.Name(),
		e.Version,
	)
}

// UnsupportedInlineAssemblyError

type UnsupportedInlineAssemblyError struct {
	ast.Range
}

var _ SemanticError = &UnsupportedInlineAssemblyError{}

func (*UnsupportedInlineAssemblyError) isSemanticError() {}

func (*UnsupportedInlineAssemblyError) IsUserError() {}

func (e *UnsupportedInlineAssemblyError) Error() string {
	return "inline assembly is not supported on this platform"
}

// FunctionSelectorCollisionError

type FunctionSelectorCollisionError struct {
	Selector       [4]byte
	FirstFunction  string
	SecondFunction string
	ast.Range
}

var _ SemanticError = &FunctionSelectorCollisionError{}

func (*FunctionSelectorCollisionError) isSemanticError() {}

func (*FunctionSelectorCollisionError) IsUserError() {}

func (e *FunctionSelectorCollisionError) Error() string {
	return fmt.Sprintf(
		"function signature hash collision for `%s` and `%s`: 0x%x",
		e.FirstFunction,
		e.SecondFunction,
		e.Selector,
	)
}

// TypeAsValueError is reported when an expression denoting a type
// is used where a value is required

type TypeAsValueError struct {
	Type Type
	ast.Range
}

var _ SemanticError = &TypeAsValueError{}

func (*TypeAsValueError) isSemanticError() {}

func (*TypeAsValueError) IsUserError() {}

func (e *TypeAsValueError) Error() string {
	return fmt.Sprintf("expected a value, got type `%s`", e.Type)
}

// InvalidStateMutabilityError

type InvalidStateMutabilityError struct {
	Reason string
	ast.Range
}

var _ SemanticError = &InvalidStateMutabilityError{}

func (*InvalidStateMutabilityError) isSemanticError() {}

func (*InvalidStateMutabilityError) IsUserError() {}

func (e *InvalidStateMutabilityError) Error() string {
	return e.Reason
}

// ControlStatementError

type ControlStatementError struct {
	ControlStatement string
	ast.Range
}

var _ SemanticError = &ControlStatementError{}

func (*ControlStatementError) isSemanticError() {}

func (*ControlStatementError) IsUserError() {}

func (e *ControlStatementError) Error() string {
	return fmt.Sprintf("`%s` can only be used inside a loop", e.ControlStatement)
}
