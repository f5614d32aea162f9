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

// Identifier references a declaration by name.
//
// Candidates holds the declarations the name binder found in scope.
// More than one candidate means the name is overloaded.
// No candidates means the name is either a global magic variable
// or undeclared.

type Identifier struct {
	Name       string
	Candidates []Declaration
	Range
}

var _ Expression = &Identifier{}

func (*Identifier) isExpression() {}

func (*Identifier) ElementType() ElementType {
	return ElementTypeIdentifier
}

func (*Identifier) Walk(_ func(Element)) {
	// NO-OP
}

func (e *Identifier) String() string {
	return e.Name
}

// Literal

type Literal struct {
	Kind            LiteralKind
	Value           string
	SubDenomination string
	Range
}

var _ Expression = &Literal{}

func (*Literal) isExpression() {}

func (*Literal) ElementType() ElementType {
	return ElementTypeLiteral
}

func (*Literal) Walk(_ func(Element)) {
	// NO-OP
}

func (e *Literal) IsHexNumber() bool {
	return e.Kind == LiteralKindNumber &&
		len(e.Value) > 2 &&
		e.Value[0] == '0' &&
		(e.Value[1] == 'x' || e.Value[1] == 'X')
}

// LooksLikeAddress reports whether the literal is a hex number
// with the digit count of an address
func (e *Literal) LooksLikeAddress() bool {
	if !e.IsHexNumber() || e.SubDenomination != "" {
		return false
	}
	digits := len(e.Value) - 2
	for _, r := range e.Value[2:] {
		if r == '_' {
			digits--
		}
	}
	return digits >= 39 && digits <= 41
}

// ElementaryTypeNameExpression is an elementary type used as a value,
// e.g. the callee of `uint8(x)`

type ElementaryTypeNameExpression struct {
	TypeName *ElementaryTypeName
	Range
}

var _ Expression = &ElementaryTypeNameExpression{}

func (*ElementaryTypeNameExpression) isExpression() {}

func (*ElementaryTypeNameExpression) ElementType() ElementType {
	return ElementTypeElementaryTypeNameExpression
}

func (e *ElementaryTypeNameExpression) Walk(walkChild func(Element)) {
	walkChild(e.TypeName)
}

// TupleExpression is a parenthesized list of expressions or an inline array.
// Components may contain nil entries for omitted components.

type TupleExpression struct {
	Components    []Expression
	IsInlineArray bool
	Range
}

var _ Expression = &TupleExpression{}

func (*TupleExpression) isExpression() {}

func (*TupleExpression) ElementType() ElementType {
	return ElementTypeTupleExpression
}

func (e *TupleExpression) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, e.Components)
}

// UnaryOperation

type UnaryOperation struct {
	Operator      Operation
	Prefix        bool
	SubExpression Expression
	Range
}

var _ Expression = &UnaryOperation{}

func (*UnaryOperation) isExpression() {}

func (*UnaryOperation) ElementType() ElementType {
	return ElementTypeUnaryOperation
}

func (e *UnaryOperation) Walk(walkChild func(Element)) {
	walkChild(e.SubExpression)
}

// BinaryOperation

type BinaryOperation struct {
	Operator Operation
	Left     Expression
	Right    Expression
	Range
}

var _ Expression = &BinaryOperation{}

func (*BinaryOperation) isExpression() {}

func (*BinaryOperation) ElementType() ElementType {
	return ElementTypeBinaryOperation
}

func (e *BinaryOperation) Walk(walkChild func(Element)) {
	walkChild(e.Left)
	walkChild(e.Right)
}

// Conditional

type Conditional struct {
	Condition       Expression
	TrueExpression  Expression
	FalseExpression Expression
	Range
}

var _ Expression = &Conditional{}

func (*Conditional) isExpression() {}

func (*Conditional) ElementType() ElementType {
	return ElementTypeConditional
}

func (e *Conditional) Walk(walkChild func(Element)) {
	walkChild(e.Condition)
	walkChild(e.TrueExpression)
	walkChild(e.FalseExpression)
}

// Assignment.
// Operator is OperationAssign for `=`,
// and the applied binary operation for compound assignments, e.g. OperationAdd for `+=`

type Assignment struct {
	Operator      Operation
	LeftHandSide  Expression
	RightHandSide Expression
	Range
}

var _ Expression = &Assignment{}

func (*Assignment) isExpression() {}

func (*Assignment) ElementType() ElementType {
	return ElementTypeAssignment
}

func (e *Assignment) Walk(walkChild func(Element)) {
	walkChild(e.LeftHandSide)
	walkChild(e.RightHandSide)
}

// FunctionCall.
// Names is non-empty for calls with named arguments, `f({a: 1, b: 2})`

type FunctionCall struct {
	Expression Expression
	Arguments  []Expression
	Names      []string
	Range
}

var _ Expression = &FunctionCall{}

func (*FunctionCall) isExpression() {}

func (*FunctionCall) ElementType() ElementType {
	return ElementTypeFunctionCall
}

func (e *FunctionCall) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
	walkExpressions(walkChild, e.Arguments)
}

// FunctionCallOptions, `f{value: 1, gas: 2}`

type FunctionCallOptions struct {
	Expression Expression
	Names      []string
	Options    []Expression
	Range
}

var _ Expression = &FunctionCallOptions{}

func (*FunctionCallOptions) isExpression() {}

func (*FunctionCallOptions) ElementType() ElementType {
	return ElementTypeFunctionCallOptions
}

func (e *FunctionCallOptions) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
	walkExpressions(walkChild, e.Options)
}

// NewExpression

type NewExpression struct {
	TypeName TypeName
	Range
}

var _ Expression = &NewExpression{}

func (*NewExpression) isExpression() {}

func (*NewExpression) ElementType() ElementType {
	return ElementTypeNewExpression
}

func (e *NewExpression) Walk(walkChild func(Element)) {
	walkChild(e.TypeName)
}

// MemberAccess

type MemberAccess struct {
	Expression Expression
	MemberName string
	Range
}

var _ Expression = &MemberAccess{}

func (*MemberAccess) isExpression() {}

func (*MemberAccess) ElementType() ElementType {
	return ElementTypeMemberAccess
}

func (e *MemberAccess) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

// IndexAccess. Index is nil in type expressions like `uint[]`

type IndexAccess struct {
	Base  Expression
	Index Expression
	Range
}

var _ Expression = &IndexAccess{}

func (*IndexAccess) isExpression() {}

func (*IndexAccess) ElementType() ElementType {
	return ElementTypeIndexAccess
}

func (e *IndexAccess) Walk(walkChild func(Element)) {
	walkChild(e.Base)
	if e.Index != nil {
		walkChild(e.Index)
	}
}

// IndexRangeAccess, `x[start:end]`, both bounds optional

type IndexRangeAccess struct {
	Base  Expression
	Start Expression
	End   Expression
	Range
}

var _ Expression = &IndexRangeAccess{}

func (*IndexRangeAccess) isExpression() {}

func (*IndexRangeAccess) ElementType() ElementType {
	return ElementTypeIndexRangeAccess
}

func (e *IndexRangeAccess) Walk(walkChild func(Element)) {
	walkChild(e.Base)
	if e.Start != nil {
		walkChild(e.Start)
	}
	if e.End != nil {
		walkChild(e.End)
	}
}

// AwaitExpression suspends until the result of an asynchronous call is available

type AwaitExpression struct {
	Expression Expression
	Range
}

var _ Expression = &AwaitExpression{}

func (*AwaitExpression) isExpression() {}

func (*AwaitExpression) ElementType() ElementType {
	return ElementTypeAwaitExpression
}

func (e *AwaitExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}
