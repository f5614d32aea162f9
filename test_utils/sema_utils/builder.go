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

package sema_utils

import (
	"strings"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

// The builders below construct syntax trees without positions.
// Every call returns fresh nodes, so a node is never shared between two places of a tree.

func SourceUnit(nodes ...ast.Declaration) *ast.SourceUnit {
	return &ast.SourceUnit{
		Nodes: nodes,
	}
}

func Pragma(literals ...string) *ast.PragmaDirective {
	return &ast.PragmaDirective{
		Literals: literals,
	}
}

// declarations

func Contract(name string, members ...ast.Declaration) *ast.ContractDefinition {
	return &ast.ContractDefinition{
		Name:    name,
		Kind:    ast.ContractKindContract,
		Members: members,
	}
}

func AbstractContract(name string, members ...ast.Declaration) *ast.ContractDefinition {
	contract := Contract(name, members...)
	contract.Abstract = true
	return contract
}

func Interface(name string, members ...ast.Declaration) *ast.ContractDefinition {
	contract := Contract(name, members...)
	contract.Kind = ast.ContractKindInterface
	return contract
}

func Library(name string, members ...ast.Declaration) *ast.ContractDefinition {
	contract := Contract(name, members...)
	contract.Kind = ast.ContractKindLibrary
	return contract
}

// Inherits adds base contracts, most base-like first
func Inherits(contract *ast.ContractDefinition, bases ...*ast.InheritanceSpecifier) *ast.ContractDefinition {
	contract.BaseContracts = append(contract.BaseContracts, bases...)
	return contract
}

func Base(name string) *ast.InheritanceSpecifier {
	return &ast.InheritanceSpecifier{
		BaseName: Path(name),
	}
}

func BaseWithArguments(name string, arguments ...ast.Expression) *ast.InheritanceSpecifier {
	return &ast.InheritanceSpecifier{
		BaseName:       Path(name),
		Arguments:      arguments,
		ArgumentsGiven: true,
	}
}

// UsingFor adds `using library for typeName`, or `using library for *` if the type name is nil
func UsingFor(contract *ast.ContractDefinition, library string, typeName ast.TypeName) *ast.ContractDefinition {
	contract.UsingForDirectives = append(
		contract.UsingForDirectives,
		&ast.UsingForDirective{
			LibraryName: Path(library),
			TypeName:    typeName,
		},
	)
	return contract
}

func Path(name string) *ast.IdentifierPath {
	return &ast.IdentifierPath{
		Path: strings.Split(name, "."),
	}
}

func Struct(name string, members ...*ast.VariableDeclaration) *ast.StructDefinition {
	for _, member := range members {
		member.Scope = ast.VariableScopeStructMember
	}
	return &ast.StructDefinition{
		Name:    name,
		Members: members,
	}
}

func Enum(name string, values ...string) *ast.EnumDefinition {
	members := make([]*ast.EnumValue, len(values))
	for i, value := range values {
		members[i] = &ast.EnumValue{Name: value}
	}
	return &ast.EnumDefinition{
		Name:    name,
		Members: members,
	}
}

func Event(name string, parameters ...*ast.VariableDeclaration) *ast.EventDefinition {
	for _, parameter := range parameters {
		parameter.Scope = ast.VariableScopeEventParameter
	}
	return &ast.EventDefinition{
		Name:       name,
		Parameters: &ast.ParameterList{Parameters: parameters},
	}
}

func Message(name string, parameters ...*ast.VariableDeclaration) *ast.MessageDefinition {
	for _, parameter := range parameters {
		parameter.Scope = ast.VariableScopeMessageParameter
	}
	return &ast.MessageDefinition{
		Name:       name,
		Parameters: &ast.ParameterList{Parameters: parameters},
	}
}

// Indexed marks an event parameter as indexed
func Indexed(parameter *ast.VariableDeclaration) *ast.VariableDeclaration {
	parameter.Indexed = true
	return parameter
}

// functions

type FunctionOption func(function *ast.FunctionDefinition)

// Function returns a public function. A nil body declares an unimplemented function.
func Function(name string, body *ast.Block, options ...FunctionOption) *ast.FunctionDefinition {
	function := &ast.FunctionDefinition{
		Name:             name,
		Kind:             ast.FunctionKindFunction,
		Visibility:       ast.VisibilityPublic,
		Parameters:       &ast.ParameterList{},
		ReturnParameters: &ast.ParameterList{},
		Body:             body,
	}
	for _, option := range options {
		option(function)
	}
	return function
}

func FreeFunction(name string, body *ast.Block, options ...FunctionOption) *ast.FunctionDefinition {
	function := Function(name, body, options...)
	function.Kind = ast.FunctionKindFree
	function.Visibility = ast.VisibilityDefault
	return function
}

func Constructor(body *ast.Block, options ...FunctionOption) *ast.FunctionDefinition {
	return Function("", body, append([]FunctionOption{WithKind(ast.FunctionKindConstructor)}, options...)...)
}

func WithKind(kind ast.FunctionKind) FunctionOption {
	return func(function *ast.FunctionDefinition) {
		function.Kind = kind
	}
}

func WithParameters(parameters ...*ast.VariableDeclaration) FunctionOption {
	return func(function *ast.FunctionDefinition) {
		for _, parameter := range parameters {
			parameter.Scope = ast.VariableScopeParameter
		}
		function.Parameters.Parameters = parameters
	}
}

func WithReturns(parameters ...*ast.VariableDeclaration) FunctionOption {
	return func(function *ast.FunctionDefinition) {
		for _, parameter := range parameters {
			parameter.Scope = ast.VariableScopeReturnParameter
		}
		function.ReturnParameters.Parameters = parameters
	}
}

func WithVisibility(visibility ast.Visibility) FunctionOption {
	return func(function *ast.FunctionDefinition) {
		function.Visibility = visibility
	}
}

func WithMutability(mutability ast.StateMutability) FunctionOption {
	return func(function *ast.FunctionDefinition) {
		function.StateMutability = mutability
	}
}

func WithModifiers(invocations ...*ast.ModifierInvocation) FunctionOption {
	return func(function *ast.FunctionDefinition) {
		function.Modifiers = invocations
	}
}

func IsVirtual(function *ast.FunctionDefinition) {
	function.Virtual = true
}

func IsOverride(function *ast.FunctionDefinition) {
	function.Overrides = true
}

func Modifier(name string, body *ast.Block, parameters ...*ast.VariableDeclaration) *ast.ModifierDefinition {
	for _, parameter := range parameters {
		parameter.Scope = ast.VariableScopeParameter
	}
	return &ast.ModifierDefinition{
		Name:       name,
		Parameters: &ast.ParameterList{Parameters: parameters},
		Body:       body,
	}
}

func Invoke(name string, arguments ...ast.Expression) *ast.ModifierInvocation {
	return &ast.ModifierInvocation{
		Name:           Path(name),
		Arguments:      arguments,
		ArgumentsGiven: len(arguments) > 0,
	}
}

// variables

type VariableOption func(variable *ast.VariableDeclaration)

func StateVariable(
	name string,
	typeName ast.TypeName,
	value ast.Expression,
	options ...VariableOption,
) *ast.VariableDeclaration {
	variable := &ast.VariableDeclaration{
		Name:       name,
		TypeName:   typeName,
		Value:      value,
		Visibility: ast.VisibilityInternal,
		Scope:      ast.VariableScopeState,
	}
	for _, option := range options {
		option(variable)
	}
	return variable
}

func Public(variable *ast.VariableDeclaration) {
	variable.Visibility = ast.VisibilityPublic
}

func Constant(variable *ast.VariableDeclaration) {
	variable.Mutability = ast.VariableMutabilityConstant
}

func Immutable(variable *ast.VariableDeclaration) {
	variable.Mutability = ast.VariableMutabilityImmutable
}

// Variable declares a local variable, parameter, or member without data location
func Variable(name string, typeName ast.TypeName) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{
		Name:     name,
		TypeName: typeName,
		Scope:    ast.VariableScopeLocal,
	}
}

func VariableIn(name string, typeName ast.TypeName, location common.DataLocation) *ast.VariableDeclaration {
	variable := Variable(name, typeName)
	variable.Location = location
	return variable
}

// type names

var elementaryPrefixes = []string{"uint", "int", "bytes", "fixed", "ufixed"}

func isElementaryName(name string) bool {
	switch name {
	case "bool", "address", "string", "bytes", "tokenId", "uint", "int", "byte":
		return true
	}
	for _, prefix := range elementaryPrefixes {
		if suffix, ok := strings.CutPrefix(name, prefix); ok && suffix != "" && suffix[0] >= '0' && suffix[0] <= '9' {
			return true
		}
	}
	return false
}

// Type returns an elementary type name, or a user-defined type name for any other name
func Type(name string) ast.TypeName {
	if name == "address payable" {
		return &ast.ElementaryTypeName{
			Name:            "address",
			StateMutability: ast.StateMutabilityPayable,
		}
	}
	if isElementaryName(name) {
		return &ast.ElementaryTypeName{Name: name}
	}
	return &ast.UserDefinedTypeName{Path: Path(name)}
}

// ArrayOf returns a dynamic array type name, or a fixed-size one if a length is given
func ArrayOf(base ast.TypeName, length ast.Expression) *ast.ArrayTypeName {
	return &ast.ArrayTypeName{
		BaseType: base,
		Length:   length,
	}
}

func MappingOf(key, value ast.TypeName) *ast.Mapping {
	return &ast.Mapping{
		KeyType:   key,
		ValueType: value,
	}
}

func FunctionTypeOf(
	visibility ast.Visibility,
	mutability ast.StateMutability,
	parameters []ast.TypeName,
	returns []ast.TypeName,
) *ast.FunctionTypeName {
	toList := func(typeNames []ast.TypeName) *ast.ParameterList {
		list := &ast.ParameterList{}
		for _, typeName := range typeNames {
			list.Parameters = append(
				list.Parameters,
				&ast.VariableDeclaration{
					TypeName: typeName,
					Scope:    ast.VariableScopeFunctionTypeParameter,
				},
			)
		}
		return list
	}
	return &ast.FunctionTypeName{
		Parameters:       toList(parameters),
		ReturnParameters: toList(returns),
		Visibility:       visibility,
		StateMutability:  mutability,
	}
}

// statements

func Block(statements ...ast.Statement) *ast.Block {
	if statements == nil {
		statements = []ast.Statement{}
	}
	return &ast.Block{
		Statements: statements,
	}
}

func Unchecked(statements ...ast.Statement) *ast.Block {
	block := Block(statements...)
	block.Unchecked = true
	return block
}

func Let(variable *ast.VariableDeclaration, value ast.Expression) *ast.VariableDeclarationStatement {
	return &ast.VariableDeclarationStatement{
		Declarations: []*ast.VariableDeclaration{variable},
		InitialValue: value,
	}
}

// LetTuple destructures a tuple. Nil variables skip components.
func LetTuple(value ast.Expression, variables ...*ast.VariableDeclaration) *ast.VariableDeclarationStatement {
	return &ast.VariableDeclarationStatement{
		Declarations: variables,
		InitialValue: value,
	}
}

func Expr(expression ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{
		Expression: expression,
	}
}

func Return(expression ast.Expression) *ast.Return {
	return &ast.Return{
		Expression: expression,
	}
}

func If(condition ast.Expression, trueBody ast.Statement, falseBody ast.Statement) *ast.IfStatement {
	return &ast.IfStatement{
		Condition: condition,
		TrueBody:  trueBody,
		FalseBody: falseBody,
	}
}

func While(condition ast.Expression, body ast.Statement) *ast.WhileStatement {
	return &ast.WhileStatement{
		Condition: condition,
		Body:      body,
	}
}

func For(
	initialization ast.Statement,
	condition ast.Expression,
	loop ast.Expression,
	body ast.Statement,
) *ast.ForStatement {
	statement := &ast.ForStatement{
		Initialization: initialization,
		Condition:      condition,
		Body:           body,
	}
	if loop != nil {
		statement.Loop = Expr(loop)
	}
	return statement
}

func Break() *ast.Break {
	return &ast.Break{}
}

func Continue() *ast.Continue {
	return &ast.Continue{}
}

func Placeholder() *ast.PlaceholderStatement {
	return &ast.PlaceholderStatement{}
}

func Emit(call *ast.FunctionCall) *ast.EmitStatement {
	return &ast.EmitStatement{
		EventCall: call,
	}
}

func Send(address ast.Expression, call *ast.FunctionCall) *ast.SendStatement {
	return &ast.SendStatement{
		Address:     address,
		MessageCall: call,
	}
}

func Try(call ast.Expression, clauses ...*ast.TryCatchClause) *ast.TryStatement {
	return &ast.TryStatement{
		ExternalCall: call,
		Clauses:      clauses,
	}
}

// Clause returns a try or catch clause. The error name is empty for the success clause
// and the catch-all clause.
func Clause(errorName string, block *ast.Block, parameters ...*ast.VariableDeclaration) *ast.TryCatchClause {
	clause := &ast.TryCatchClause{
		ErrorName: errorName,
		Block:     block,
	}
	if parameters != nil {
		for _, parameter := range parameters {
			parameter.Scope = ast.VariableScopeCatchParameter
		}
		clause.Parameters = &ast.ParameterList{Parameters: parameters}
	}
	return clause
}

func Assembly(code string) *ast.InlineAssembly {
	return &ast.InlineAssembly{
		Code: code,
	}
}

// expressions

func Id(name string) *ast.Identifier {
	return &ast.Identifier{
		Name: name,
	}
}

func Num(value string) *ast.Literal {
	return &ast.Literal{
		Kind:  ast.LiteralKindNumber,
		Value: value,
	}
}

func NumWithUnit(value string, unit string) *ast.Literal {
	literal := Num(value)
	literal.SubDenomination = unit
	return literal
}

func Str(value string) *ast.Literal {
	return &ast.Literal{
		Kind:  ast.LiteralKindString,
		Value: value,
	}
}

func HexStr(value string) *ast.Literal {
	return &ast.Literal{
		Kind:  ast.LiteralKindHexString,
		Value: value,
	}
}

func True() *ast.Literal {
	return &ast.Literal{
		Kind:  ast.LiteralKindBool,
		Value: "true",
	}
}

func False() *ast.Literal {
	return &ast.Literal{
		Kind:  ast.LiteralKindBool,
		Value: "false",
	}
}

func TypeExpr(name string) *ast.ElementaryTypeNameExpression {
	typeName, ok := Type(name).(*ast.ElementaryTypeName)
	if !ok {
		panic("not an elementary type name: " + name)
	}
	return &ast.ElementaryTypeNameExpression{
		TypeName: typeName,
	}
}

func Call(callee ast.Expression, arguments ...ast.Expression) *ast.FunctionCall {
	return &ast.FunctionCall{
		Expression: callee,
		Arguments:  arguments,
	}
}

func NamedCall(callee ast.Expression, names []string, arguments ...ast.Expression) *ast.FunctionCall {
	call := Call(callee, arguments...)
	call.Names = names
	return call
}

func WithOptions(callee ast.Expression, names []string, options ...ast.Expression) *ast.FunctionCallOptions {
	return &ast.FunctionCallOptions{
		Expression: callee,
		Names:      names,
		Options:    options,
	}
}

func Member(base ast.Expression, name string) *ast.MemberAccess {
	return &ast.MemberAccess{
		Expression: base,
		MemberName: name,
	}
}

func Index(base ast.Expression, index ast.Expression) *ast.IndexAccess {
	return &ast.IndexAccess{
		Base:  base,
		Index: index,
	}
}

func Slice(base ast.Expression, start, end ast.Expression) *ast.IndexRangeAccess {
	return &ast.IndexRangeAccess{
		Base:  base,
		Start: start,
		End:   end,
	}
}

func Assign(left, right ast.Expression) *ast.Assignment {
	return AssignOp(ast.OperationAssign, left, right)
}

func AssignOp(operator ast.Operation, left, right ast.Expression) *ast.Assignment {
	return &ast.Assignment{
		Operator:      operator,
		LeftHandSide:  left,
		RightHandSide: right,
	}
}

func Binary(operator ast.Operation, left, right ast.Expression) *ast.BinaryOperation {
	return &ast.BinaryOperation{
		Operator: operator,
		Left:     left,
		Right:    right,
	}
}

func Unary(operator ast.Operation, operand ast.Expression) *ast.UnaryOperation {
	return &ast.UnaryOperation{
		Operator:      operator,
		Prefix:        true,
		SubExpression: operand,
	}
}

func Tuple(components ...ast.Expression) *ast.TupleExpression {
	return &ast.TupleExpression{
		Components: components,
	}
}

func InlineArray(components ...ast.Expression) *ast.TupleExpression {
	return &ast.TupleExpression{
		Components:    components,
		IsInlineArray: true,
	}
}

func Conditional(condition, trueExpression, falseExpression ast.Expression) *ast.Conditional {
	return &ast.Conditional{
		Condition:       condition,
		TrueExpression:  trueExpression,
		FalseExpression: falseExpression,
	}
}

func New(typeName ast.TypeName) *ast.NewExpression {
	return &ast.NewExpression{
		TypeName: typeName,
	}
}

func Await(expression ast.Expression) *ast.AwaitExpression {
	return &ast.AwaitExpression{
		Expression: expression,
	}
}
