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
	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/errors"
)

// ExpressionAnnotation holds what the checker inferred about an expression
type ExpressionAnnotation struct {
	Type Type
	// IsPure is set for expressions that can be evaluated at compile time
	IsPure bool
	// IsLValue is set for expressions that denote an assignable location
	IsLValue bool
	// LValueRequested is set for expressions that are assigned to
	LValueRequested bool
	// ArgumentTypes are the types of the call arguments, if the expression is a callee.
	// Used to resolve overloads.
	ArgumentTypes []Type
	ArgumentNames []string
	IsCallee      bool
	// ReferencedDeclaration is the declaration an identifier or member access resolved to
	ReferencedDeclaration ast.Declaration
}

// FunctionCallKind

type FunctionCallKind uint8

const (
	FunctionCallKindUnset FunctionCallKind = iota
	FunctionCallKindFunctionCall
	FunctionCallKindTypeConversion
	FunctionCallKindStructConstructorCall
)

// Elaboration is the side table of the results of checking a source unit
type Elaboration struct {
	expressionAnnotations map[ast.Expression]*ExpressionAnnotation
	variableTypes         map[*ast.VariableDeclaration]Type
	typeNameTypes         map[ast.TypeName]Type
	functionCallKinds     map[*ast.FunctionCall]FunctionCallKind
	functionTypes         map[*ast.FunctionDefinition]*FunctionType
	modifierTypes         map[*ast.ModifierDefinition]*ModifierType
	eventTypes            map[ast.Declaration]*FunctionType
	structInfos           map[*ast.StructDefinition]*StructInfo
	cyclicContracts       map[*ast.ContractDefinition]struct{}
	linearizedContracts   map[*ast.ContractDefinition][]*ast.ContractDefinition
	functionSelectors     map[*ast.FunctionDefinition][4]byte
	decodedTypes          map[*ast.FunctionCall][]Type
	emittedEvents         map[*ast.EmitStatement]ast.Declaration
	sentMessages          map[*ast.SendStatement]*ast.MessageDefinition
}

func NewElaboration() *Elaboration {
	return &Elaboration{
		expressionAnnotations: map[ast.Expression]*ExpressionAnnotation{},
		variableTypes:         map[*ast.VariableDeclaration]Type{},
		typeNameTypes:         map[ast.TypeName]Type{},
	}
}

// ExpressionAnnotation returns the annotation of the expression,
// creating it if it does not exist yet
func (e *Elaboration) ExpressionAnnotation(expression ast.Expression) *ExpressionAnnotation {
	annotation, ok := e.expressionAnnotations[expression]
	if !ok {
		annotation = &ExpressionAnnotation{}
		e.expressionAnnotations[expression] = annotation
	}
	return annotation
}

// ExistingExpressionAnnotation returns the annotation of the expression, if any
func (e *Elaboration) ExistingExpressionAnnotation(expression ast.Expression) (*ExpressionAnnotation, bool) {
	annotation, ok := e.expressionAnnotations[expression]
	return annotation, ok
}

// ExpressionType returns the inferred type of the expression.
// The second result is false if the expression was not checked (yet).
func (e *Elaboration) ExpressionType(expression ast.Expression) (Type, bool) {
	annotation, ok := e.expressionAnnotations[expression]
	if !ok || annotation.Type == nil {
		return nil, false
	}
	return annotation.Type, true
}

// SetExpressionType records the inferred type of the expression.
// The type of an expression is set exactly once.
func (e *Elaboration) SetExpressionType(expression ast.Expression, ty Type) {
	if ty == nil {
		panic(errors.NewUnexpectedError("missing type for %s", expression.ElementType()))
	}
	annotation := e.ExpressionAnnotation(expression)
	if annotation.Type != nil {
		panic(errors.NewUnexpectedError(
			"type of %s at %s already set",
			expression.ElementType(),
			expression.StartPosition(),
		))
	}
	annotation.Type = ty
}

func (e *Elaboration) ExpressionCount() int {
	return len(e.expressionAnnotations)
}

func (e *Elaboration) VariableDeclarationType(declaration *ast.VariableDeclaration) (Type, bool) {
	ty, ok := e.variableTypes[declaration]
	return ty, ok
}

func (e *Elaboration) SetVariableDeclarationType(declaration *ast.VariableDeclaration, ty Type) {
	e.variableTypes[declaration] = ty
}

func (e *Elaboration) TypeNameType(typeName ast.TypeName) (Type, bool) {
	ty, ok := e.typeNameTypes[typeName]
	return ty, ok
}

func (e *Elaboration) SetTypeNameType(typeName ast.TypeName, ty Type) {
	e.typeNameTypes[typeName] = ty
}

func (e *Elaboration) FunctionCallKind(call *ast.FunctionCall) FunctionCallKind {
	return e.functionCallKinds[call]
}

func (e *Elaboration) SetFunctionCallKind(call *ast.FunctionCall, kind FunctionCallKind) {
	if e.functionCallKinds == nil {
		e.functionCallKinds = map[*ast.FunctionCall]FunctionCallKind{}
	}
	e.functionCallKinds[call] = kind
}

func (e *Elaboration) FunctionType(declaration *ast.FunctionDefinition) *FunctionType {
	return e.functionTypes[declaration]
}

func (e *Elaboration) SetFunctionType(declaration *ast.FunctionDefinition, functionType *FunctionType) {
	if e.functionTypes == nil {
		e.functionTypes = map[*ast.FunctionDefinition]*FunctionType{}
	}
	e.functionTypes[declaration] = functionType
}

func (e *Elaboration) ModifierType(declaration *ast.ModifierDefinition) *ModifierType {
	return e.modifierTypes[declaration]
}

func (e *Elaboration) SetModifierType(declaration *ast.ModifierDefinition, modifierType *ModifierType) {
	if e.modifierTypes == nil {
		e.modifierTypes = map[*ast.ModifierDefinition]*ModifierType{}
	}
	e.modifierTypes[declaration] = modifierType
}

// EventType returns the function type of an event or message definition
func (e *Elaboration) EventType(declaration ast.Declaration) *FunctionType {
	return e.eventTypes[declaration]
}

func (e *Elaboration) SetEventType(declaration ast.Declaration, functionType *FunctionType) {
	if e.eventTypes == nil {
		e.eventTypes = map[ast.Declaration]*FunctionType{}
	}
	e.eventTypes[declaration] = functionType
}

func (e *Elaboration) StructInfo(declaration *ast.StructDefinition) *StructInfo {
	return e.structInfos[declaration]
}

func (e *Elaboration) SetStructInfo(declaration *ast.StructDefinition, info *StructInfo) {
	if e.structInfos == nil {
		e.structInfos = map[*ast.StructDefinition]*StructInfo{}
	}
	e.structInfos[declaration] = info
}

func (e *Elaboration) IsCyclicContract(contract *ast.ContractDefinition) bool {
	_, ok := e.cyclicContracts[contract]
	return ok
}

func (e *Elaboration) SetCyclicContract(contract *ast.ContractDefinition) {
	if e.cyclicContracts == nil {
		e.cyclicContracts = map[*ast.ContractDefinition]struct{}{}
	}
	e.cyclicContracts[contract] = struct{}{}
}

func (e *Elaboration) FunctionSelector(function *ast.FunctionDefinition) ([4]byte, bool) {
	selector, ok := e.functionSelectors[function]
	return selector, ok
}

func (e *Elaboration) SetFunctionSelector(function *ast.FunctionDefinition, selector [4]byte) {
	if e.functionSelectors == nil {
		e.functionSelectors = map[*ast.FunctionDefinition][4]byte{}
	}
	e.functionSelectors[function] = selector
}

// DecodedTypes returns the result types of an `abi.decode` call
func (e *Elaboration) DecodedTypes(call *ast.FunctionCall) []Type {
	return e.decodedTypes[call]
}

func (e *Elaboration) SetDecodedTypes(call *ast.FunctionCall, types []Type) {
	if e.decodedTypes == nil {
		e.decodedTypes = map[*ast.FunctionCall][]Type{}
	}
	e.decodedTypes[call] = types
}

func (e *Elaboration) EmittedEvent(statement *ast.EmitStatement) ast.Declaration {
	return e.emittedEvents[statement]
}

func (e *Elaboration) SetEmittedEvent(statement *ast.EmitStatement, event ast.Declaration) {
	if e.emittedEvents == nil {
		e.emittedEvents = map[*ast.EmitStatement]ast.Declaration{}
	}
	e.emittedEvents[statement] = event
}

func (e *Elaboration) SentMessage(statement *ast.SendStatement) *ast.MessageDefinition {
	return e.sentMessages[statement]
}

func (e *Elaboration) SetSentMessage(statement *ast.SendStatement, message *ast.MessageDefinition) {
	if e.sentMessages == nil {
		e.sentMessages = map[*ast.SendStatement]*ast.MessageDefinition{}
	}
	e.sentMessages[statement] = message
}

func (e *Elaboration) linearized(contract *ast.ContractDefinition) []*ast.ContractDefinition {
	if e.linearizedContracts == nil {
		e.linearizedContracts = map[*ast.ContractDefinition][]*ast.ContractDefinition{}
	}
	contracts, ok := e.linearizedContracts[contract]
	if !ok {
		contracts = LinearizedBaseContracts(contract)
		e.linearizedContracts[contract] = contracts
	}
	return contracts
}
