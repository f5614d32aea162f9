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

// Block

type Block struct {
	Statements []Statement
	Unchecked  bool
	Range
}

var _ Statement = &Block{}

func (*Block) isStatement() {}

func (*Block) ElementType() ElementType {
	return ElementTypeBlock
}

func (b *Block) Walk(walkChild func(Element)) {
	walkStatements(walkChild, b.Statements)
}

// PlaceholderStatement is the `_` in a modifier body

type PlaceholderStatement struct {
	Range
}

var _ Statement = &PlaceholderStatement{}

func (*PlaceholderStatement) isStatement() {}

func (*PlaceholderStatement) ElementType() ElementType {
	return ElementTypePlaceholderStatement
}

func (*PlaceholderStatement) Walk(_ func(Element)) {
	// NO-OP
}

// IfStatement

type IfStatement struct {
	Condition Expression
	TrueBody  Statement
	FalseBody Statement
	Range
}

var _ Statement = &IfStatement{}

func (*IfStatement) isStatement() {}

func (*IfStatement) ElementType() ElementType {
	return ElementTypeIfStatement
}

func (s *IfStatement) Walk(walkChild func(Element)) {
	walkChild(s.Condition)
	walkChild(s.TrueBody)
	if s.FalseBody != nil {
		walkChild(s.FalseBody)
	}
}

// WhileStatement covers both `while` and `do ... while`

type WhileStatement struct {
	Condition Expression
	Body      Statement
	IsDoWhile bool
	Range
}

var _ Statement = &WhileStatement{}

func (*WhileStatement) isStatement() {}

func (*WhileStatement) ElementType() ElementType {
	return ElementTypeWhileStatement
}

func (s *WhileStatement) Walk(walkChild func(Element)) {
	walkChild(s.Condition)
	walkChild(s.Body)
}

// ForStatement

type ForStatement struct {
	Initialization Statement
	Condition      Expression
	Loop           *ExpressionStatement
	Body           Statement
	Range
}

var _ Statement = &ForStatement{}

func (*ForStatement) isStatement() {}

func (*ForStatement) ElementType() ElementType {
	return ElementTypeForStatement
}

func (s *ForStatement) Walk(walkChild func(Element)) {
	if s.Initialization != nil {
		walkChild(s.Initialization)
	}
	if s.Condition != nil {
		walkChild(s.Condition)
	}
	if s.Loop != nil {
		walkChild(s.Loop)
	}
	walkChild(s.Body)
}

// Continue

type Continue struct {
	Range
}

var _ Statement = &Continue{}

func (*Continue) isStatement() {}

func (*Continue) ElementType() ElementType {
	return ElementTypeContinue
}

func (*Continue) Walk(_ func(Element)) {
	// NO-OP
}

// Break

type Break struct {
	Range
}

var _ Statement = &Break{}

func (*Break) isStatement() {}

func (*Break) ElementType() ElementType {
	return ElementTypeBreak
}

func (*Break) Walk(_ func(Element)) {
	// NO-OP
}

// Return

type Return struct {
	Expression Expression
	Range
}

var _ Statement = &Return{}

func (*Return) isStatement() {}

func (*Return) ElementType() ElementType {
	return ElementTypeReturn
}

func (s *Return) Walk(walkChild func(Element)) {
	if s.Expression != nil {
		walkChild(s.Expression)
	}
}

// EmitStatement

type EmitStatement struct {
	EventCall *FunctionCall
	Range
}

var _ Statement = &EmitStatement{}

func (*EmitStatement) isStatement() {}

func (*EmitStatement) ElementType() ElementType {
	return ElementTypeEmitStatement
}

func (s *EmitStatement) Walk(walkChild func(Element)) {
	walkChild(s.EventCall)
}

// SendStatement sends a message to the contract at Address:
// `send(address, Message(arguments))`

type SendStatement struct {
	Address     Expression
	MessageCall *FunctionCall
	Range
}

var _ Statement = &SendStatement{}

func (*SendStatement) isStatement() {}

func (*SendStatement) ElementType() ElementType {
	return ElementTypeSendStatement
}

func (s *SendStatement) Walk(walkChild func(Element)) {
	walkChild(s.Address)
	walkChild(s.MessageCall)
}

// VariableDeclarationStatement declares one or more local variables.
// Declarations may contain nil entries for skipped tuple components.

type VariableDeclarationStatement struct {
	Declarations []*VariableDeclaration
	InitialValue Expression
	Range
}

var _ Statement = &VariableDeclarationStatement{}

func (*VariableDeclarationStatement) isStatement() {}

func (*VariableDeclarationStatement) ElementType() ElementType {
	return ElementTypeVariableDeclarationStatement
}

func (s *VariableDeclarationStatement) Walk(walkChild func(Element)) {
	for _, declaration := range s.Declarations {
		if declaration != nil {
			walkChild(declaration)
		}
	}
	if s.InitialValue != nil {
		walkChild(s.InitialValue)
	}
}

// ExpressionStatement

type ExpressionStatement struct {
	Expression Expression
	Range
}

var _ Statement = &ExpressionStatement{}

func (*ExpressionStatement) isStatement() {}

func (*ExpressionStatement) ElementType() ElementType {
	return ElementTypeExpressionStatement
}

func (s *ExpressionStatement) Walk(walkChild func(Element)) {
	walkChild(s.Expression)
}

// TryStatement

type TryStatement struct {
	ExternalCall Expression
	// Clauses holds the success clause first, followed by the catch clauses
	Clauses []*TryCatchClause
	Range
}

var _ Statement = &TryStatement{}

func (*TryStatement) isStatement() {}

func (*TryStatement) ElementType() ElementType {
	return ElementTypeTryStatement
}

func (s *TryStatement) Walk(walkChild func(Element)) {
	walkChild(s.ExternalCall)
	for _, clause := range s.Clauses {
		walkChild(clause)
	}
}

// TryCatchClause

type TryCatchClause struct {
	// ErrorName is empty for the success clause and the catch-all clause
	ErrorName  string
	Parameters *ParameterList
	Block      *Block
	Range
}

var _ Element = &TryCatchClause{}

func (*TryCatchClause) ElementType() ElementType {
	return ElementTypeTryCatchClause
}

func (c *TryCatchClause) Walk(walkChild func(Element)) {
	if c.Parameters != nil {
		walkChild(c.Parameters)
	}
	walkChild(c.Block)
}

// InlineAssembly

type InlineAssembly struct {
	Code string
	Range
}

var _ Statement = &InlineAssembly{}

func (*InlineAssembly) isStatement() {}

func (*InlineAssembly) ElementType() ElementType {
	return ElementTypeInlineAssembly
}

func (*InlineAssembly) Walk(_ func(Element)) {
	// NO-OP
}
