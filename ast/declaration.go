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
	"github.com/solpp-lang/solpp/common"
)

// ContractDefinition

type ContractDefinition struct {
	Name               string
	Kind               ContractKind
	Abstract           bool
	BaseContracts      []*InheritanceSpecifier
	UsingForDirectives []*UsingForDirective
	Members            []Declaration
	Range
}

var _ Declaration = &ContractDefinition{}

func (*ContractDefinition) isDeclaration() {}

func (*ContractDefinition) ElementType() ElementType {
	return ElementTypeContractDefinition
}

func (d *ContractDefinition) DeclarationIdentifier() string {
	return d.Name
}

func (d *ContractDefinition) DeclarationKind() common.DeclarationKind {
	switch d.Kind {
	case ContractKindInterface:
		return common.DeclarationKindInterface
	case ContractKindLibrary:
		return common.DeclarationKindLibrary
	default:
		return common.DeclarationKindContract
	}
}

func (d *ContractDefinition) Walk(walkChild func(Element)) {
	for _, base := range d.BaseContracts {
		walkChild(base)
	}
	for _, directive := range d.UsingForDirectives {
		walkChild(directive)
	}
	walkDeclarations(walkChild, d.Members)
}

func (d *ContractDefinition) IsInterface() bool {
	return d.Kind == ContractKindInterface
}

func (d *ContractDefinition) IsLibrary() bool {
	return d.Kind == ContractKindLibrary
}

func (d *ContractDefinition) Functions() []*FunctionDefinition {
	var functions []*FunctionDefinition
	for _, member := range d.Members {
		if function, ok := member.(*FunctionDefinition); ok {
			functions = append(functions, function)
		}
	}
	return functions
}

func (d *ContractDefinition) StateVariables() []*VariableDeclaration {
	var variables []*VariableDeclaration
	for _, member := range d.Members {
		if variable, ok := member.(*VariableDeclaration); ok {
			variables = append(variables, variable)
		}
	}
	return variables
}

func (d *ContractDefinition) Constructor() *FunctionDefinition {
	for _, function := range d.Functions() {
		if function.Kind == FunctionKindConstructor {
			return function
		}
	}
	return nil
}

func (d *ContractDefinition) FunctionOfKind(kind FunctionKind) *FunctionDefinition {
	for _, function := range d.Functions() {
		if function.Kind == kind {
			return function
		}
	}
	return nil
}

// InheritanceSpecifier

type InheritanceSpecifier struct {
	BaseName *IdentifierPath
	// Arguments are the base constructor arguments.
	// ArgumentsGiven distinguishes `is B()` from `is B`.
	Arguments      []Expression
	ArgumentsGiven bool
	Range
}

var _ Element = &InheritanceSpecifier{}

func (*InheritanceSpecifier) ElementType() ElementType {
	return ElementTypeInheritanceSpecifier
}

func (s *InheritanceSpecifier) Walk(walkChild func(Element)) {
	walkChild(s.BaseName)
	walkExpressions(walkChild, s.Arguments)
}

// UsingForDirective attaches the functions of a library to a type.
// A nil TypeName stands for `*`.

type UsingForDirective struct {
	LibraryName *IdentifierPath
	TypeName    TypeName
	Range
}

var _ Element = &UsingForDirective{}

func (*UsingForDirective) ElementType() ElementType {
	return ElementTypeUsingForDirective
}

func (d *UsingForDirective) Walk(walkChild func(Element)) {
	walkChild(d.LibraryName)
	if d.TypeName != nil {
		walkChild(d.TypeName)
	}
}

// StructDefinition

type StructDefinition struct {
	Name    string
	Members []*VariableDeclaration
	Range
}

var _ Declaration = &StructDefinition{}

func (*StructDefinition) isDeclaration() {}

func (*StructDefinition) ElementType() ElementType {
	return ElementTypeStructDefinition
}

func (d *StructDefinition) DeclarationIdentifier() string {
	return d.Name
}

func (*StructDefinition) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindStruct
}

func (d *StructDefinition) Walk(walkChild func(Element)) {
	for _, member := range d.Members {
		walkChild(member)
	}
}

// EnumDefinition

type EnumDefinition struct {
	Name    string
	Members []*EnumValue
	Range
}

var _ Declaration = &EnumDefinition{}

func (*EnumDefinition) isDeclaration() {}

func (*EnumDefinition) ElementType() ElementType {
	return ElementTypeEnumDefinition
}

func (d *EnumDefinition) DeclarationIdentifier() string {
	return d.Name
}

func (*EnumDefinition) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindEnum
}

func (d *EnumDefinition) Walk(walkChild func(Element)) {
	for _, member := range d.Members {
		walkChild(member)
	}
}

// EnumValue

type EnumValue struct {
	Name string
	Range
}

var _ Declaration = &EnumValue{}

func (*EnumValue) isDeclaration() {}

func (*EnumValue) ElementType() ElementType {
	return ElementTypeEnumValue
}

func (v *EnumValue) DeclarationIdentifier() string {
	return v.Name
}

func (*EnumValue) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindEnumValue
}

func (*EnumValue) Walk(_ func(Element)) {
	// NO-OP
}

// FunctionDefinition

type FunctionDefinition struct {
	Name             string
	Kind             FunctionKind
	Visibility       Visibility
	StateMutability  StateMutability
	Virtual          bool
	Overrides        bool
	Parameters       *ParameterList
	ReturnParameters *ParameterList
	Modifiers        []*ModifierInvocation
	// Body is nil for unimplemented functions
	Body *Block
	Range
}

var _ Declaration = &FunctionDefinition{}

func (*FunctionDefinition) isDeclaration() {}

func (*FunctionDefinition) ElementType() ElementType {
	return ElementTypeFunctionDefinition
}

func (d *FunctionDefinition) DeclarationIdentifier() string {
	return d.Name
}

func (d *FunctionDefinition) DeclarationKind() common.DeclarationKind {
	switch d.Kind {
	case FunctionKindConstructor:
		return common.DeclarationKindConstructor
	case FunctionKindFallback:
		return common.DeclarationKindFallback
	case FunctionKindReceive:
		return common.DeclarationKindReceive
	default:
		return common.DeclarationKindFunction
	}
}

func (d *FunctionDefinition) Walk(walkChild func(Element)) {
	if d.Parameters != nil {
		walkChild(d.Parameters)
	}
	if d.ReturnParameters != nil {
		walkChild(d.ReturnParameters)
	}
	for _, modifier := range d.Modifiers {
		walkChild(modifier)
	}
	if d.Body != nil {
		walkChild(d.Body)
	}
}

func (d *FunctionDefinition) IsImplemented() bool {
	return d.Body != nil
}

func (d *FunctionDefinition) IsConstructor() bool {
	return d.Kind == FunctionKindConstructor
}

func (d *FunctionDefinition) IsFallbackOrReceive() bool {
	return d.Kind == FunctionKindFallback || d.Kind == FunctionKindReceive
}

func (d *FunctionDefinition) IsPayable() bool {
	return d.StateMutability == StateMutabilityPayable
}

// EffectiveVisibility resolves the default visibility of the function
func (d *FunctionDefinition) EffectiveVisibility() Visibility {
	if d.Visibility != VisibilityDefault {
		return d.Visibility
	}
	switch d.Kind {
	case FunctionKindFallback, FunctionKindReceive:
		return VisibilityExternal
	case FunctionKindFree:
		return VisibilityInternal
	default:
		return VisibilityPublic
	}
}

// ModifierDefinition

type ModifierDefinition struct {
	Name       string
	Parameters *ParameterList
	Virtual    bool
	Overrides  bool
	Body       *Block
	Range
}

var _ Declaration = &ModifierDefinition{}

func (*ModifierDefinition) isDeclaration() {}

func (*ModifierDefinition) ElementType() ElementType {
	return ElementTypeModifierDefinition
}

func (d *ModifierDefinition) DeclarationIdentifier() string {
	return d.Name
}

func (*ModifierDefinition) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindModifier
}

func (d *ModifierDefinition) Walk(walkChild func(Element)) {
	if d.Parameters != nil {
		walkChild(d.Parameters)
	}
	if d.Body != nil {
		walkChild(d.Body)
	}
}

// ModifierInvocation is either a modifier application
// or a base constructor call in a constructor header

type ModifierInvocation struct {
	Name           *IdentifierPath
	Arguments      []Expression
	ArgumentsGiven bool
	Range
}

var _ Element = &ModifierInvocation{}

func (*ModifierInvocation) ElementType() ElementType {
	return ElementTypeModifierInvocation
}

func (i *ModifierInvocation) Walk(walkChild func(Element)) {
	walkChild(i.Name)
	walkExpressions(walkChild, i.Arguments)
}

// VariableDeclaration

type VariableDeclaration struct {
	Name string
	// TypeName is nil for variables declared with `var`
	TypeName   TypeName
	Value      Expression
	Visibility Visibility
	Mutability VariableMutability
	Scope      VariableScope
	Location   common.DataLocation
	Indexed    bool
	Overrides  bool
	Range
}

var _ Declaration = &VariableDeclaration{}

func (*VariableDeclaration) isDeclaration() {}

func (*VariableDeclaration) ElementType() ElementType {
	return ElementTypeVariableDeclaration
}

func (d *VariableDeclaration) DeclarationIdentifier() string {
	return d.Name
}

func (d *VariableDeclaration) DeclarationKind() common.DeclarationKind {
	switch d.Mutability {
	case VariableMutabilityConstant:
		return common.DeclarationKindConstant
	case VariableMutabilityImmutable:
		return common.DeclarationKindImmutable
	}
	switch d.Scope {
	case VariableScopeState:
		return common.DeclarationKindStateVariable
	case VariableScopeParameter,
		VariableScopeEventParameter,
		VariableScopeMessageParameter,
		VariableScopeFunctionTypeParameter,
		VariableScopeCatchParameter:
		return common.DeclarationKindParameter
	case VariableScopeReturnParameter:
		return common.DeclarationKindReturnParameter
	}
	return common.DeclarationKindVariable
}

func (d *VariableDeclaration) Walk(walkChild func(Element)) {
	if d.TypeName != nil {
		walkChild(d.TypeName)
	}
	if d.Value != nil {
		walkChild(d.Value)
	}
}

func (d *VariableDeclaration) IsConstant() bool {
	return d.Mutability == VariableMutabilityConstant
}

func (d *VariableDeclaration) IsImmutable() bool {
	return d.Mutability == VariableMutabilityImmutable
}

func (d *VariableDeclaration) IsStateVariable() bool {
	return d.Scope == VariableScopeState
}

func (d *VariableDeclaration) IsLocalVariable() bool {
	return d.Scope == VariableScopeLocal ||
		d.Scope == VariableScopeParameter ||
		d.Scope == VariableScopeReturnParameter ||
		d.Scope == VariableScopeCatchParameter
}

// EventDefinition

type EventDefinition struct {
	Name       string
	Parameters *ParameterList
	Anonymous  bool
	Range
}

var _ Declaration = &EventDefinition{}

func (*EventDefinition) isDeclaration() {}

func (*EventDefinition) ElementType() ElementType {
	return ElementTypeEventDefinition
}

func (d *EventDefinition) DeclarationIdentifier() string {
	return d.Name
}

func (*EventDefinition) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindEvent
}

func (d *EventDefinition) Walk(walkChild func(Element)) {
	if d.Parameters != nil {
		walkChild(d.Parameters)
	}
}

// MessageDefinition declares an asynchronous message
// another contract can be sent

type MessageDefinition struct {
	Name       string
	Parameters *ParameterList
	Payable    bool
	Range
}

var _ Declaration = &MessageDefinition{}

func (*MessageDefinition) isDeclaration() {}

func (*MessageDefinition) ElementType() ElementType {
	return ElementTypeMessageDefinition
}

func (d *MessageDefinition) DeclarationIdentifier() string {
	return d.Name
}

func (*MessageDefinition) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindMessage
}

func (d *MessageDefinition) Walk(walkChild func(Element)) {
	if d.Parameters != nil {
		walkChild(d.Parameters)
	}
}
