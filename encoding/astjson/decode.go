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

// Package astjson imports syntax trees in the compact JSON format
// produced by the Solidity++ compiler front end.
//
// Every node is an object with a `nodeType`, a unique `id`,
// and a `src` range of the form `offset:length:fileIndex`.
// References name the declarations they resolve to by id:
// `referencedDeclaration` and `overloadedDeclarations` on identifiers,
// `referencedDeclaration` on identifier paths.
// The importer resolves these ids, so the returned source unit is bound
// and can be passed to the checker as is.
package astjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	"github.com/solpp-lang/solpp/errors"
)

type pathElement interface {
	Append(w io.Writer)
}

type indexPathElement int

var _ pathElement = indexPathElement(0)

func (e indexPathElement) Append(w io.Writer) {
	_, _ = fmt.Fprintf(w, "[%d]", int(e))
}

type propertyPathElement string

var _ pathElement = propertyPathElement("")

func (e propertyPathElement) Append(w io.Writer) {
	_, _ = fmt.Fprintf(w, ".%s", e)
}

type identifierReference struct {
	identifier *ast.Identifier
	ids        []int64
}

type pathReference struct {
	path *ast.IdentifierPath
	id   int64
}

// A Decoder decodes JSON-encoded syntax trees
type Decoder struct {
	dec      *json.Decoder
	location common.Location
	// lineStarts holds the offsets at which the lines of the source code start.
	// Without source code, positions only carry offsets.
	lineStarts  []int
	pathContext []pathElement

	declarations         map[int64]ast.Declaration
	identifierReferences []identifierReference
	pathReferences       []pathReference
}

type Option func(*Decoder)

// WithSource returns a new Decoder Option
// which computes line and column positions from the given source code
func WithSource(code []byte) Option {
	return func(decoder *Decoder) {
		decoder.lineStarts = lineStarts(code)
	}
}

// WithLocation returns a new Decoder Option
// which sets the location of the decoded source unit
func WithLocation(location common.Location) Option {
	return func(decoder *Decoder) {
		decoder.location = location
	}
}

// Decode returns the source unit decoded from its JSON-encoded representation.
//
// This function returns an error if the bytes represent JSON that is malformed,
// does not describe a source unit, or references unknown declarations.
func Decode(b []byte, options ...Option) (*ast.SourceUnit, error) {
	dec := NewDecoder(bytes.NewReader(b), options...)
	return dec.Decode()
}

// NewDecoder initializes a Decoder that will decode JSON-encoded bytes from the
// given io.Reader.
func NewDecoder(r io.Reader, options ...Option) *Decoder {
	decoder := &Decoder{
		dec:          json.NewDecoder(r),
		pathContext:  make([]pathElement, 0, 16),
		declarations: map[int64]ast.Declaration{},
	}
	for _, option := range options {
		option(decoder)
	}
	return decoder
}

// Decode reads a JSON-encoded source unit from the io.Reader
// and resolves its references
func (d *Decoder) Decode() (sourceUnit *ast.SourceUnit, err error) {
	var jsonMap map[string]any

	d.dec.UseNumber()
	err = d.dec.Decode(&jsonMap)
	if err != nil {
		return nil, errors.NewDefaultUserError("failed to decode JSON: %w", err)
	}

	// capture panics that occur during decoding
	defer func() {
		if r := recover(); r != nil {
			panicErr, isError := r.(error)
			if !isError || errors.IsInternalError(panicErr) {
				panic(r)
			}

			format := "failed to decode syntax tree: %w"

			path := d.getPathString()
			if path != "" {
				format += fmt.Sprintf(" (at %s)", path)
			}

			err = errors.NewDefaultUserError(format, panicErr)
		}
	}()

	sourceUnit = d.decodeSourceUnit(jsonMap)
	d.resolveReferences()
	return sourceUnit, nil
}

const (
	nodeTypeKey               = "nodeType"
	idKey                     = "id"
	srcKey                    = "src"
	nodesKey                  = "nodes"
	nameKey                   = "name"
	literalsKey               = "literals"
	contractKindKey           = "contractKind"
	abstractKey               = "abstract"
	baseContractsKey          = "baseContracts"
	baseNameKey               = "baseName"
	argumentsKey              = "arguments"
	libraryNameKey            = "libraryName"
	typeNameKey               = "typeName"
	membersKey                = "members"
	kindKey                   = "kind"
	visibilityKey             = "visibility"
	stateMutabilityKey        = "stateMutability"
	virtualKey                = "virtual"
	overridesKey              = "overrides"
	parametersKey             = "parameters"
	returnParametersKey       = "returnParameters"
	modifiersKey              = "modifiers"
	modifierNameKey           = "modifierName"
	bodyKey                   = "body"
	valueKey                  = "value"
	mutabilityKey             = "mutability"
	constantKey               = "constant"
	storageLocationKey        = "storageLocation"
	indexedKey                = "indexed"
	anonymousKey              = "anonymous"
	payableKey                = "payable"
	pathNodeKey               = "pathNode"
	referencedDeclarationKey  = "referencedDeclaration"
	overloadedDeclarationsKey = "overloadedDeclarations"
	parameterTypesKey         = "parameterTypes"
	returnParameterTypesKey   = "returnParameterTypes"
	keyTypeKey                = "keyType"
	valueTypeKey              = "valueType"
	baseTypeKey               = "baseType"
	lengthKey                 = "length"
	statementsKey             = "statements"
	conditionKey              = "condition"
	trueBodyKey               = "trueBody"
	falseBodyKey              = "falseBody"
	initializationKey         = "initializationExpression"
	loopExpressionKey         = "loopExpression"
	expressionKey             = "expression"
	eventCallKey              = "eventCall"
	addressKey                = "address"
	messageCallKey            = "messageCall"
	declarationsKey           = "declarations"
	initialValueKey           = "initialValue"
	externalCallKey           = "externalCall"
	clausesKey                = "clauses"
	errorNameKey              = "errorName"
	blockKey                  = "block"
	codeKey                   = "code"
	subdenominationKey        = "subdenomination"
	componentsKey             = "components"
	isInlineArrayKey          = "isInlineArray"
	operatorKey               = "operator"
	prefixKey                 = "prefix"
	subExpressionKey          = "subExpression"
	leftExpressionKey         = "leftExpression"
	rightExpressionKey        = "rightExpression"
	trueExpressionKey         = "trueExpression"
	falseExpressionKey        = "falseExpression"
	leftHandSideKey           = "leftHandSide"
	rightHandSideKey          = "rightHandSide"
	namesKey                  = "names"
	optionsKey                = "options"
	memberNameKey             = "memberName"
	baseExpressionKey         = "baseExpression"
	indexExpressionKey        = "indexExpression"
	startExpressionKey        = "startExpression"
	endExpressionKey          = "endExpression"
)

// node types without an element type of their own

const (
	uncheckedBlockNodeType   = "UncheckedBlock"
	doWhileStatementNodeType = "DoWhileStatement"
)

func (d *Decoder) pushPath(element pathElement) {
	d.pathContext = append(d.pathContext, element)
}

func (d *Decoder) popPath() {
	if len(d.pathContext) > 0 {
		d.pathContext = d.pathContext[:len(d.pathContext)-1]
	}
}

func (d *Decoder) getPathString() string {
	if len(d.pathContext) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, element := range d.pathContext {
		element.Append(&builder)
	}
	return builder.String()
}

// nodes

func (d *Decoder) nodeElementType(obj jsonObject) (ast.ElementType, string) {
	nodeType := get(d, obj, nodeTypeKey, toString)
	switch nodeType {
	case uncheckedBlockNodeType:
		return ast.ElementTypeBlock, nodeType
	case doWhileStatementNodeType:
		return ast.ElementTypeWhileStatement, nodeType
	}

	elementType, ok := ast.ElementTypeFromNodeType(nodeType)
	if !ok {
		panic(errors.NewDefaultUserError("invalid node type: %s", nodeType))
	}
	return elementType, nodeType
}

// declare registers the declaration under the id of its node,
// so references to it can be resolved
func (d *Decoder) declare(obj jsonObject, declaration ast.Declaration) {
	id := get(d, obj, idKey, toInt64)
	if _, ok := d.declarations[id]; ok {
		panic(errors.NewDefaultUserError("duplicate node id: %d", id))
	}
	d.declarations[id] = declaration
}

func (d *Decoder) decodeSourceUnit(obj jsonObject) *ast.SourceUnit {
	elementType, nodeType := d.nodeElementType(obj)
	if elementType != ast.ElementTypeSourceUnit {
		panic(errors.NewDefaultUserError("expected source unit, got %s", nodeType))
	}

	sourceUnit := &ast.SourceUnit{
		Location: d.location,
		Range:    d.decodeRange(obj),
	}

	nodes := get(d, obj, nodesKey, toSlice)
	d.pushPath(propertyPathElement(nodesKey))

	for i, node := range nodes {
		d.pushPath(indexPathElement(i))

		nodeObj := toObject(node)
		if elementType, _ := d.nodeElementType(nodeObj); elementType == ast.ElementTypePragmaDirective {
			sourceUnit.Pragmas = append(sourceUnit.Pragmas, d.decodePragmaDirective(nodeObj))
		} else {
			declaration := d.decodeDeclaration(nodeObj, ast.VariableScopeFileLevel)
			sourceUnit.Nodes = append(sourceUnit.Nodes, declaration)
		}

		d.popPath()
	}

	d.popPath()

	return sourceUnit
}

func (d *Decoder) decodePragmaDirective(obj jsonObject) *ast.PragmaDirective {
	return &ast.PragmaDirective{
		Literals: get(d, obj, literalsKey, d.decodeStrings),
		Range:    d.decodeRange(obj),
	}
}

// decodeDeclaration decodes a declaration.
// Variable declarations are declared in the given scope.
func (d *Decoder) decodeDeclaration(obj jsonObject, variableScope ast.VariableScope) ast.Declaration {
	elementType, nodeType := d.nodeElementType(obj)

	var declaration ast.Declaration

	switch elementType {
	case ast.ElementTypeContractDefinition:
		declaration = d.decodeContractDefinition(obj)
	case ast.ElementTypeStructDefinition:
		declaration = d.decodeStructDefinition(obj)
	case ast.ElementTypeEnumDefinition:
		declaration = d.decodeEnumDefinition(obj)
	case ast.ElementTypeFunctionDefinition:
		declaration = d.decodeFunctionDefinition(obj)
	case ast.ElementTypeModifierDefinition:
		declaration = d.decodeModifierDefinition(obj)
	case ast.ElementTypeVariableDeclaration:
		return d.decodeVariableDeclaration(obj, variableScope)
	case ast.ElementTypeEventDefinition:
		declaration = d.decodeEventDefinition(obj)
	case ast.ElementTypeMessageDefinition:
		declaration = d.decodeMessageDefinition(obj)
	default:
		panic(errors.NewDefaultUserError("expected declaration, got %s", nodeType))
	}

	d.declare(obj, declaration)
	return declaration
}

func (d *Decoder) decodeContractDefinition(obj jsonObject) *ast.ContractDefinition {
	contract := &ast.ContractDefinition{
		Name:     get(d, obj, nameKey, toString),
		Kind:     get(d, obj, contractKindKey, decodeContractKind),
		Abstract: optional(d, obj, abstractKey, toBool),
		Range:    d.decodeRange(obj),
	}

	contract.BaseContracts = optional(d, obj, baseContractsKey, func(valueJSON any) []*ast.InheritanceSpecifier {
		return decodeList(d, valueJSON, d.decodeInheritanceSpecifier)
	})

	nodes := get(d, obj, nodesKey, toSlice)
	d.pushPath(propertyPathElement(nodesKey))

	for i, node := range nodes {
		d.pushPath(indexPathElement(i))

		nodeObj := toObject(node)
		if elementType, _ := d.nodeElementType(nodeObj); elementType == ast.ElementTypeUsingForDirective {
			contract.UsingForDirectives = append(
				contract.UsingForDirectives,
				d.decodeUsingForDirective(nodeObj),
			)
		} else {
			contract.Members = append(
				contract.Members,
				d.decodeDeclaration(nodeObj, ast.VariableScopeState),
			)
		}

		d.popPath()
	}

	d.popPath()

	return contract
}

func (d *Decoder) decodeInheritanceSpecifier(obj jsonObject) *ast.InheritanceSpecifier {
	arguments, argumentsGiven := d.decodeOptionalArguments(obj)
	return &ast.InheritanceSpecifier{
		BaseName:       get(d, obj, baseNameKey, d.decodePathOrTypeName),
		Arguments:      arguments,
		ArgumentsGiven: argumentsGiven,
		Range:          d.decodeRange(obj),
	}
}

func (d *Decoder) decodeUsingForDirective(obj jsonObject) *ast.UsingForDirective {
	return &ast.UsingForDirective{
		LibraryName: get(d, obj, libraryNameKey, d.decodePathOrTypeName),
		// `using L for *` has no type name
		TypeName: optional(d, obj, typeNameKey, d.decodeTypeNameValue),
		Range:    d.decodeRange(obj),
	}
}

func (d *Decoder) decodeStructDefinition(obj jsonObject) *ast.StructDefinition {
	return &ast.StructDefinition{
		Name: get(d, obj, nameKey, toString),
		Members: get(d, obj, membersKey, func(valueJSON any) []*ast.VariableDeclaration {
			return decodeList(d, valueJSON, func(obj jsonObject) *ast.VariableDeclaration {
				return d.decodeVariableDeclaration(obj, ast.VariableScopeStructMember)
			})
		}),
		Range: d.decodeRange(obj),
	}
}

func (d *Decoder) decodeEnumDefinition(obj jsonObject) *ast.EnumDefinition {
	return &ast.EnumDefinition{
		Name: get(d, obj, nameKey, toString),
		Members: get(d, obj, membersKey, func(valueJSON any) []*ast.EnumValue {
			return decodeList(d, valueJSON, d.decodeEnumValue)
		}),
		Range: d.decodeRange(obj),
	}
}

func (d *Decoder) decodeEnumValue(obj jsonObject) *ast.EnumValue {
	d.expectNodeType(obj, ast.ElementTypeEnumValue)

	value := &ast.EnumValue{
		Name:  get(d, obj, nameKey, toString),
		Range: d.decodeRange(obj),
	}
	d.declare(obj, value)
	return value
}

func (d *Decoder) decodeFunctionDefinition(obj jsonObject) *ast.FunctionDefinition {
	return &ast.FunctionDefinition{
		Name:            optional(d, obj, nameKey, toString),
		Kind:            get(d, obj, kindKey, decodeFunctionKind),
		Visibility:      optional(d, obj, visibilityKey, decodeVisibility),
		StateMutability: optional(d, obj, stateMutabilityKey, decodeStateMutability),
		Virtual:         optional(d, obj, virtualKey, toBool),
		Overrides:       decodeOverrides(obj),
		Parameters: get(d, obj, parametersKey, func(valueJSON any) *ast.ParameterList {
			return d.decodeParameterList(valueJSON, ast.VariableScopeParameter)
		}),
		ReturnParameters: optional(d, obj, returnParametersKey, func(valueJSON any) *ast.ParameterList {
			return d.decodeParameterList(valueJSON, ast.VariableScopeReturnParameter)
		}),
		Modifiers: optional(d, obj, modifiersKey, func(valueJSON any) []*ast.ModifierInvocation {
			return decodeList(d, valueJSON, d.decodeModifierInvocation)
		}),
		Body:  optional(d, obj, bodyKey, d.decodeBlockValue),
		Range: d.decodeRange(obj),
	}
}

func (d *Decoder) decodeModifierDefinition(obj jsonObject) *ast.ModifierDefinition {
	return &ast.ModifierDefinition{
		Name: get(d, obj, nameKey, toString),
		Parameters: optional(d, obj, parametersKey, func(valueJSON any) *ast.ParameterList {
			return d.decodeParameterList(valueJSON, ast.VariableScopeParameter)
		}),
		Virtual:   optional(d, obj, virtualKey, toBool),
		Overrides: decodeOverrides(obj),
		Body:      optional(d, obj, bodyKey, d.decodeBlockValue),
		Range:     d.decodeRange(obj),
	}
}

func (d *Decoder) decodeModifierInvocation(obj jsonObject) *ast.ModifierInvocation {
	d.expectNodeType(obj, ast.ElementTypeModifierInvocation)

	arguments, argumentsGiven := d.decodeOptionalArguments(obj)
	return &ast.ModifierInvocation{
		Name:           get(d, obj, modifierNameKey, d.decodePathOrTypeName),
		Arguments:      arguments,
		ArgumentsGiven: argumentsGiven,
		Range:          d.decodeRange(obj),
	}
}

func (d *Decoder) decodeVariableDeclaration(obj jsonObject, scope ast.VariableScope) *ast.VariableDeclaration {
	d.expectNodeType(obj, ast.ElementTypeVariableDeclaration)

	mutability := optional(d, obj, mutabilityKey, decodeVariableMutability)
	if optional(d, obj, constantKey, toBool) {
		mutability = ast.VariableMutabilityConstant
	}

	visibility := optional(d, obj, visibilityKey, decodeVisibility)
	if scope == ast.VariableScopeState && visibility == ast.VisibilityDefault {
		visibility = ast.VisibilityInternal
	}

	variable := &ast.VariableDeclaration{
		Name:       optional(d, obj, nameKey, toString),
		TypeName:   optional(d, obj, typeNameKey, d.decodeTypeNameValue),
		Value:      optional(d, obj, valueKey, d.decodeExpressionValue),
		Visibility: visibility,
		Mutability: mutability,
		Scope:      scope,
		Location:   optional(d, obj, storageLocationKey, decodeDataLocation),
		Indexed:    optional(d, obj, indexedKey, toBool),
		Overrides:  decodeOverrides(obj),
		Range:      d.decodeRange(obj),
	}

	d.declare(obj, variable)
	return variable
}

func (d *Decoder) decodeEventDefinition(obj jsonObject) *ast.EventDefinition {
	return &ast.EventDefinition{
		Name: get(d, obj, nameKey, toString),
		Parameters: get(d, obj, parametersKey, func(valueJSON any) *ast.ParameterList {
			return d.decodeParameterList(valueJSON, ast.VariableScopeEventParameter)
		}),
		Anonymous: optional(d, obj, anonymousKey, toBool),
		Range:     d.decodeRange(obj),
	}
}

func (d *Decoder) decodeMessageDefinition(obj jsonObject) *ast.MessageDefinition {
	payable := optional(d, obj, payableKey, toBool) ||
		optional(d, obj, stateMutabilityKey, decodeStateMutability) == ast.StateMutabilityPayable

	return &ast.MessageDefinition{
		Name: get(d, obj, nameKey, toString),
		Parameters: get(d, obj, parametersKey, func(valueJSON any) *ast.ParameterList {
			return d.decodeParameterList(valueJSON, ast.VariableScopeMessageParameter)
		}),
		Payable: payable,
		Range:   d.decodeRange(obj),
	}
}

func (d *Decoder) decodeParameterList(valueJSON any, scope ast.VariableScope) *ast.ParameterList {
	obj := toObject(valueJSON)
	d.expectNodeType(obj, ast.ElementTypeParameterList)

	return &ast.ParameterList{
		Parameters: get(d, obj, parametersKey, func(valueJSON any) []*ast.VariableDeclaration {
			return decodeList(d, valueJSON, func(obj jsonObject) *ast.VariableDeclaration {
				return d.decodeVariableDeclaration(obj, scope)
			})
		}),
		Range: d.decodeRange(obj),
	}
}

// decodeOptionalArguments decodes the arguments of an inheritance specifier
// or modifier invocation, which distinguish `B` (null) from `B()` (empty)
func (d *Decoder) decodeOptionalArguments(obj jsonObject) ([]ast.Expression, bool) {
	value, ok := obj[argumentsKey]
	if !ok || value == nil {
		return nil, false
	}
	return get(d, obj, argumentsKey, d.decodeExpressions), true
}

// identifier paths

func (d *Decoder) decodePathOrTypeName(valueJSON any) *ast.IdentifierPath {
	obj := toObject(valueJSON)

	elementType, nodeType := d.nodeElementType(obj)
	switch elementType {
	case ast.ElementTypeIdentifierPath:
		return d.decodeIdentifierPath(obj)
	case ast.ElementTypeUserDefinedTypeName:
		return d.decodeUserDefinedTypeName(obj).Path
	case ast.ElementTypeIdentifier:
		// older trees name bases and modifiers with plain identifiers
		path := &ast.IdentifierPath{
			Path:  []string{get(d, obj, nameKey, toString)},
			Range: d.decodeRange(obj),
		}
		d.referencePath(obj, path)
		return path
	}

	panic(errors.NewDefaultUserError("expected identifier path, got %s", nodeType))
}

func (d *Decoder) decodeIdentifierPath(obj jsonObject) *ast.IdentifierPath {
	path := &ast.IdentifierPath{
		Path:  strings.Split(get(d, obj, nameKey, toString), "."),
		Range: d.decodeRange(obj),
	}
	d.referencePath(obj, path)
	return path
}

func (d *Decoder) referencePath(obj jsonObject, path *ast.IdentifierPath) {
	if obj[referencedDeclarationKey] == nil {
		return
	}
	id := get(d, obj, referencedDeclarationKey, toInt64)
	d.pathReferences = append(d.pathReferences, pathReference{
		path: path,
		id:   id,
	})
}

// type names

func (d *Decoder) decodeTypeNameValue(valueJSON any) ast.TypeName {
	return d.decodeTypeName(toObject(valueJSON))
}

func (d *Decoder) decodeTypeName(obj jsonObject) ast.TypeName {
	elementType, nodeType := d.nodeElementType(obj)

	switch elementType {
	case ast.ElementTypeElementaryTypeName:
		return d.decodeElementaryTypeName(obj)

	case ast.ElementTypeUserDefinedTypeName:
		return d.decodeUserDefinedTypeName(obj)

	case ast.ElementTypeFunctionTypeName:
		decodeParameters := func(valueJSON any) *ast.ParameterList {
			return d.decodeParameterList(valueJSON, ast.VariableScopeFunctionTypeParameter)
		}
		return &ast.FunctionTypeName{
			Parameters:       get(d, obj, parameterTypesKey, decodeParameters),
			ReturnParameters: optional(d, obj, returnParameterTypesKey, decodeParameters),
			Visibility:       optional(d, obj, visibilityKey, decodeVisibility),
			StateMutability:  optional(d, obj, stateMutabilityKey, decodeStateMutability),
			Range:            d.decodeRange(obj),
		}

	case ast.ElementTypeMapping:
		return &ast.Mapping{
			KeyType:   get(d, obj, keyTypeKey, d.decodeTypeNameValue),
			ValueType: get(d, obj, valueTypeKey, d.decodeTypeNameValue),
			Range:     d.decodeRange(obj),
		}

	case ast.ElementTypeArrayTypeName:
		return &ast.ArrayTypeName{
			BaseType: get(d, obj, baseTypeKey, d.decodeTypeNameValue),
			Length:   optional(d, obj, lengthKey, d.decodeExpressionValue),
			Range:    d.decodeRange(obj),
		}
	}

	panic(errors.NewDefaultUserError("expected type name, got %s", nodeType))
}

func (d *Decoder) decodeElementaryTypeName(obj jsonObject) *ast.ElementaryTypeName {
	d.expectNodeType(obj, ast.ElementTypeElementaryTypeName)

	name := get(d, obj, nameKey, toString)
	stateMutability := optional(d, obj, stateMutabilityKey, decodeStateMutability)

	// the payable address type may also be spelled out in the name
	if name == "address payable" {
		name = "address"
		stateMutability = ast.StateMutabilityPayable
	}

	return &ast.ElementaryTypeName{
		Name:            name,
		StateMutability: stateMutability,
		Range:           d.decodeRange(obj),
	}
}

func (d *Decoder) decodeUserDefinedTypeName(obj jsonObject) *ast.UserDefinedTypeName {
	typeRange := d.decodeRange(obj)

	var path *ast.IdentifierPath
	if _, ok := obj[pathNodeKey]; ok {
		path = get(d, obj, pathNodeKey, func(valueJSON any) *ast.IdentifierPath {
			return d.decodeIdentifierPath(toObject(valueJSON))
		})
	} else {
		path = &ast.IdentifierPath{
			Path:  strings.Split(get(d, obj, nameKey, toString), "."),
			Range: typeRange,
		}
		d.referencePath(obj, path)
	}

	return &ast.UserDefinedTypeName{
		Path:  path,
		Range: typeRange,
	}
}

// statements

func (d *Decoder) decodeBlockValue(valueJSON any) *ast.Block {
	obj := toObject(valueJSON)
	elementType, nodeType := d.nodeElementType(obj)
	if elementType != ast.ElementTypeBlock {
		panic(errors.NewDefaultUserError("expected block, got %s", nodeType))
	}
	return d.decodeBlock(obj, nodeType)
}

func (d *Decoder) decodeBlock(obj jsonObject, nodeType string) *ast.Block {
	return &ast.Block{
		Statements: get(d, obj, statementsKey, func(valueJSON any) []ast.Statement {
			return decodeList(d, valueJSON, d.decodeStatement)
		}),
		Unchecked: nodeType == uncheckedBlockNodeType,
		Range:     d.decodeRange(obj),
	}
}

func (d *Decoder) decodeStatementValue(valueJSON any) ast.Statement {
	return d.decodeStatement(toObject(valueJSON))
}

func (d *Decoder) decodeStatement(obj jsonObject) ast.Statement {
	elementType, nodeType := d.nodeElementType(obj)

	statementRange := d.decodeRange(obj)

	switch elementType {
	case ast.ElementTypeBlock:
		return d.decodeBlock(obj, nodeType)

	case ast.ElementTypePlaceholderStatement:
		return &ast.PlaceholderStatement{
			Range: statementRange,
		}

	case ast.ElementTypeIfStatement:
		return &ast.IfStatement{
			Condition: get(d, obj, conditionKey, d.decodeExpressionValue),
			TrueBody:  get(d, obj, trueBodyKey, d.decodeStatementValue),
			FalseBody: optional(d, obj, falseBodyKey, d.decodeStatementValue),
			Range:     statementRange,
		}

	case ast.ElementTypeWhileStatement:
		return &ast.WhileStatement{
			Condition: get(d, obj, conditionKey, d.decodeExpressionValue),
			Body:      get(d, obj, bodyKey, d.decodeStatementValue),
			IsDoWhile: nodeType == doWhileStatementNodeType,
			Range:     statementRange,
		}

	case ast.ElementTypeForStatement:
		return &ast.ForStatement{
			Initialization: optional(d, obj, initializationKey, d.decodeStatementValue),
			Condition:      optional(d, obj, conditionKey, d.decodeExpressionValue),
			Loop: optional(d, obj, loopExpressionKey, func(valueJSON any) *ast.ExpressionStatement {
				return d.decodeExpressionStatement(toObject(valueJSON))
			}),
			Body:  get(d, obj, bodyKey, d.decodeStatementValue),
			Range: statementRange,
		}

	case ast.ElementTypeContinue:
		return &ast.Continue{
			Range: statementRange,
		}

	case ast.ElementTypeBreak:
		return &ast.Break{
			Range: statementRange,
		}

	case ast.ElementTypeReturn:
		return &ast.Return{
			Expression: optional(d, obj, expressionKey, d.decodeExpressionValue),
			Range:      statementRange,
		}

	case ast.ElementTypeEmitStatement:
		return &ast.EmitStatement{
			EventCall: get(d, obj, eventCallKey, d.decodeFunctionCallValue),
			Range:     statementRange,
		}

	case ast.ElementTypeSendStatement:
		return &ast.SendStatement{
			Address:     get(d, obj, addressKey, d.decodeExpressionValue),
			MessageCall: get(d, obj, messageCallKey, d.decodeFunctionCallValue),
			Range:       statementRange,
		}

	case ast.ElementTypeVariableDeclarationStatement:
		return &ast.VariableDeclarationStatement{
			Declarations: get(d, obj, declarationsKey, func(valueJSON any) []*ast.VariableDeclaration {
				// skipped tuple components are null
				return decodeList(d, valueJSON, func(obj jsonObject) *ast.VariableDeclaration {
					if obj == nil {
						return nil
					}
					return d.decodeVariableDeclaration(obj, ast.VariableScopeLocal)
				})
			}),
			InitialValue: optional(d, obj, initialValueKey, d.decodeExpressionValue),
			Range:        statementRange,
		}

	case ast.ElementTypeExpressionStatement:
		return d.decodeExpressionStatement(obj)

	case ast.ElementTypeTryStatement:
		return &ast.TryStatement{
			ExternalCall: get(d, obj, externalCallKey, d.decodeExpressionValue),
			Clauses: get(d, obj, clausesKey, func(valueJSON any) []*ast.TryCatchClause {
				return decodeList(d, valueJSON, d.decodeTryCatchClause)
			}),
			Range: statementRange,
		}

	case ast.ElementTypeInlineAssembly:
		return &ast.InlineAssembly{
			Code:  optional(d, obj, codeKey, toString),
			Range: statementRange,
		}
	}

	panic(errors.NewDefaultUserError("expected statement, got %s", nodeType))
}

func (d *Decoder) decodeExpressionStatement(obj jsonObject) *ast.ExpressionStatement {
	d.expectNodeType(obj, ast.ElementTypeExpressionStatement)

	return &ast.ExpressionStatement{
		Expression: get(d, obj, expressionKey, d.decodeExpressionValue),
		Range:      d.decodeRange(obj),
	}
}

func (d *Decoder) decodeTryCatchClause(obj jsonObject) *ast.TryCatchClause {
	d.expectNodeType(obj, ast.ElementTypeTryCatchClause)

	return &ast.TryCatchClause{
		ErrorName: optional(d, obj, errorNameKey, toString),
		Parameters: optional(d, obj, parametersKey, func(valueJSON any) *ast.ParameterList {
			return d.decodeParameterList(valueJSON, ast.VariableScopeCatchParameter)
		}),
		Block: get(d, obj, blockKey, d.decodeBlockValue),
		Range: d.decodeRange(obj),
	}
}

// expressions

func (d *Decoder) decodeExpressionValue(valueJSON any) ast.Expression {
	return d.decodeExpression(toObject(valueJSON))
}

func (d *Decoder) decodeExpressions(valueJSON any) []ast.Expression {
	// omitted tuple components are null
	return decodeList(d, valueJSON, func(obj jsonObject) ast.Expression {
		if obj == nil {
			return nil
		}
		return d.decodeExpression(obj)
	})
}

func (d *Decoder) decodeFunctionCallValue(valueJSON any) *ast.FunctionCall {
	obj := toObject(valueJSON)
	d.expectNodeType(obj, ast.ElementTypeFunctionCall)
	return d.decodeExpression(obj).(*ast.FunctionCall)
}

func (d *Decoder) decodeExpression(obj jsonObject) ast.Expression {
	elementType, nodeType := d.nodeElementType(obj)

	expressionRange := d.decodeRange(obj)

	switch elementType {
	case ast.ElementTypeIdentifier:
		identifier := &ast.Identifier{
			Name:  get(d, obj, nameKey, toString),
			Range: expressionRange,
		}
		d.referenceIdentifier(obj, identifier)
		return identifier

	case ast.ElementTypeLiteral:
		return &ast.Literal{
			Kind:            get(d, obj, kindKey, decodeLiteralKind),
			Value:           optional(d, obj, valueKey, toString),
			SubDenomination: optional(d, obj, subdenominationKey, toString),
			Range:           expressionRange,
		}

	case ast.ElementTypeElementaryTypeNameExpression:
		return &ast.ElementaryTypeNameExpression{
			TypeName: get(d, obj, typeNameKey, func(valueJSON any) *ast.ElementaryTypeName {
				return d.decodeElementaryTypeName(toObject(valueJSON))
			}),
			Range: expressionRange,
		}

	case ast.ElementTypeTupleExpression:
		return &ast.TupleExpression{
			Components:    get(d, obj, componentsKey, d.decodeExpressions),
			IsInlineArray: optional(d, obj, isInlineArrayKey, toBool),
			Range:         expressionRange,
		}

	case ast.ElementTypeUnaryOperation:
		return &ast.UnaryOperation{
			Operator:      get(d, obj, operatorKey, decodeUnaryOperator),
			Prefix:        get(d, obj, prefixKey, toBool),
			SubExpression: get(d, obj, subExpressionKey, d.decodeExpressionValue),
			Range:         expressionRange,
		}

	case ast.ElementTypeBinaryOperation:
		return &ast.BinaryOperation{
			Operator: get(d, obj, operatorKey, decodeBinaryOperator),
			Left:     get(d, obj, leftExpressionKey, d.decodeExpressionValue),
			Right:    get(d, obj, rightExpressionKey, d.decodeExpressionValue),
			Range:    expressionRange,
		}

	case ast.ElementTypeConditional:
		return &ast.Conditional{
			Condition:       get(d, obj, conditionKey, d.decodeExpressionValue),
			TrueExpression:  get(d, obj, trueExpressionKey, d.decodeExpressionValue),
			FalseExpression: get(d, obj, falseExpressionKey, d.decodeExpressionValue),
			Range:           expressionRange,
		}

	case ast.ElementTypeAssignment:
		return &ast.Assignment{
			Operator:      get(d, obj, operatorKey, decodeAssignmentOperator),
			LeftHandSide:  get(d, obj, leftHandSideKey, d.decodeExpressionValue),
			RightHandSide: get(d, obj, rightHandSideKey, d.decodeExpressionValue),
			Range:         expressionRange,
		}

	case ast.ElementTypeFunctionCall:
		call := &ast.FunctionCall{
			Expression: get(d, obj, expressionKey, d.decodeExpressionValue),
			Arguments:  get(d, obj, argumentsKey, d.decodeExpressions),
			Names:      optional(d, obj, namesKey, d.decodeStrings),
			Range:      expressionRange,
		}
		if len(call.Names) > 0 && len(call.Names) != len(call.Arguments) {
			panic(errors.NewDefaultUserError(
				"expected %d argument names, got %d",
				len(call.Arguments),
				len(call.Names),
			))
		}
		return call

	case ast.ElementTypeFunctionCallOptions:
		options := &ast.FunctionCallOptions{
			Expression: get(d, obj, expressionKey, d.decodeExpressionValue),
			Names:      get(d, obj, namesKey, d.decodeStrings),
			Options:    get(d, obj, optionsKey, d.decodeExpressions),
			Range:      expressionRange,
		}
		if len(options.Names) != len(options.Options) {
			panic(errors.NewDefaultUserError(
				"expected %d option names, got %d",
				len(options.Options),
				len(options.Names),
			))
		}
		return options

	case ast.ElementTypeNewExpression:
		return &ast.NewExpression{
			TypeName: get(d, obj, typeNameKey, d.decodeTypeNameValue),
			Range:    expressionRange,
		}

	case ast.ElementTypeMemberAccess:
		return &ast.MemberAccess{
			Expression: get(d, obj, expressionKey, d.decodeExpressionValue),
			MemberName: get(d, obj, memberNameKey, toString),
			Range:      expressionRange,
		}

	case ast.ElementTypeIndexAccess:
		return &ast.IndexAccess{
			Base:  get(d, obj, baseExpressionKey, d.decodeExpressionValue),
			Index: optional(d, obj, indexExpressionKey, d.decodeExpressionValue),
			Range: expressionRange,
		}

	case ast.ElementTypeIndexRangeAccess:
		return &ast.IndexRangeAccess{
			Base:  get(d, obj, baseExpressionKey, d.decodeExpressionValue),
			Start: optional(d, obj, startExpressionKey, d.decodeExpressionValue),
			End:   optional(d, obj, endExpressionKey, d.decodeExpressionValue),
			Range: expressionRange,
		}

	case ast.ElementTypeAwaitExpression:
		return &ast.AwaitExpression{
			Expression: get(d, obj, expressionKey, d.decodeExpressionValue),
			Range:      expressionRange,
		}
	}

	panic(errors.NewDefaultUserError("expected expression, got %s", nodeType))
}

// referenceIdentifier records the declarations the identifier refers to.
// All declarations of an overload set are candidates.
func (d *Decoder) referenceIdentifier(obj jsonObject, identifier *ast.Identifier) {
	ids := optional(d, obj, overloadedDeclarationsKey, d.decodeIDs)

	if len(ids) == 0 && obj[referencedDeclarationKey] != nil {
		ids = []int64{get(d, obj, referencedDeclarationKey, toInt64)}
	}

	if len(ids) == 0 {
		return
	}

	d.identifierReferences = append(d.identifierReferences, identifierReference{
		identifier: identifier,
		ids:        ids,
	})
}

// references

// resolveReferences binds identifiers and identifier paths
// to the declarations with the recorded ids.
// Negative ids refer to global built-ins, which have no declaration.
func (d *Decoder) resolveReferences() {
	lookup := func(id int64, name string) ast.Declaration {
		declaration, ok := d.declarations[id]
		if !ok {
			panic(errors.NewDefaultUserError(
				"unknown declaration %d referenced by `%s`",
				id,
				name,
			))
		}
		return declaration
	}

	for _, reference := range d.identifierReferences {
		candidates := make([]ast.Declaration, 0, len(reference.ids))
		for _, id := range reference.ids {
			if id < 0 {
				continue
			}
			candidates = append(candidates, lookup(id, reference.identifier.Name))
		}
		if len(candidates) > 0 {
			reference.identifier.Candidates = candidates
		}
	}

	for _, reference := range d.pathReferences {
		if reference.id < 0 {
			continue
		}
		reference.path.Declaration = lookup(reference.id, reference.path.String())
	}
}

// positions

// decodeRange decodes the `offset:length:fileIndex` source range of the node
func (d *Decoder) decodeRange(obj jsonObject) ast.Range {
	src := get(d, obj, srcKey, toString)

	parts := strings.Split(src, ":")
	if len(parts) != 3 {
		panic(errors.NewDefaultUserError("invalid source range: %s", src))
	}

	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		panic(errors.NewDefaultUserError("invalid source offset: %s", src))
	}

	length, err := strconv.Atoi(parts[1])
	if err != nil || length < 0 {
		panic(errors.NewDefaultUserError("invalid source length: %s", src))
	}

	endOffset := offset
	if length > 0 {
		endOffset = offset + length - 1
	}

	return ast.NewRange(
		d.position(offset),
		d.position(endOffset),
	)
}

func (d *Decoder) position(offset int) ast.Position {
	if d.lineStarts == nil {
		return ast.Position{Offset: offset}
	}

	// index of the first line starting after the offset
	line := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	})

	return ast.Position{
		Offset: offset,
		Line:   line,
		Column: offset - d.lineStarts[line-1],
	}
}

func lineStarts(code []byte) []int {
	starts := []int{0}
	for i, b := range code {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (d *Decoder) expectNodeType(obj jsonObject, expected ast.ElementType) {
	elementType, nodeType := d.nodeElementType(obj)
	if elementType != expected {
		panic(errors.NewDefaultUserError(
			"expected %s, got %s",
			expected,
			nodeType,
		))
	}
}

func (d *Decoder) decodeIDs(valueJSON any) []int64 {
	values := toSlice(valueJSON)
	result := make([]int64, len(values))
	for i, value := range values {
		d.pushPath(indexPathElement(i))
		result[i] = toInt64(value)
		d.popPath()
	}
	return result
}

func (d *Decoder) decodeStrings(valueJSON any) []string {
	values := toSlice(valueJSON)
	result := make([]string, len(values))
	for i, value := range values {
		d.pushPath(indexPathElement(i))
		result[i] = toString(value)
		d.popPath()
	}
	return result
}
