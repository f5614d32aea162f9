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

type DeclarationVisitor[T any] interface {
	VisitContractDefinition(*ContractDefinition) T
	VisitStructDefinition(*StructDefinition) T
	VisitEnumDefinition(*EnumDefinition) T
	VisitEnumValue(*EnumValue) T
	VisitFunctionDefinition(*FunctionDefinition) T
	VisitModifierDefinition(*ModifierDefinition) T
	VisitVariableDeclaration(*VariableDeclaration) T
	VisitEventDefinition(*EventDefinition) T
	VisitMessageDefinition(*MessageDefinition) T
}

func AcceptDeclaration[T any](declaration Declaration, visitor DeclarationVisitor[T]) (_ T) {

	switch declaration.ElementType() {

	case ElementTypeContractDefinition:
		return visitor.VisitContractDefinition(declaration.(*ContractDefinition))

	case ElementTypeStructDefinition:
		return visitor.VisitStructDefinition(declaration.(*StructDefinition))

	case ElementTypeEnumDefinition:
		return visitor.VisitEnumDefinition(declaration.(*EnumDefinition))

	case ElementTypeEnumValue:
		return visitor.VisitEnumValue(declaration.(*EnumValue))

	case ElementTypeFunctionDefinition:
		return visitor.VisitFunctionDefinition(declaration.(*FunctionDefinition))

	case ElementTypeModifierDefinition:
		return visitor.VisitModifierDefinition(declaration.(*ModifierDefinition))

	case ElementTypeVariableDeclaration:
		return visitor.VisitVariableDeclaration(declaration.(*VariableDeclaration))

	case ElementTypeEventDefinition:
		return visitor.VisitEventDefinition(declaration.(*EventDefinition))

	case ElementTypeMessageDefinition:
		return visitor.VisitMessageDefinition(declaration.(*MessageDefinition))
	}

	panic(errors.NewUnreachableError())
}

type StatementVisitor[T any] interface {
	VisitBlock(*Block) T
	VisitPlaceholderStatement(*PlaceholderStatement) T
	VisitIfStatement(*IfStatement) T
	VisitWhileStatement(*WhileStatement) T
	VisitForStatement(*ForStatement) T
	VisitContinue(*Continue) T
	VisitBreak(*Break) T
	VisitReturn(*Return) T
	VisitEmitStatement(*EmitStatement) T
	VisitSendStatement(*SendStatement) T
	VisitVariableDeclarationStatement(*VariableDeclarationStatement) T
	VisitExpressionStatement(*ExpressionStatement) T
	VisitTryStatement(*TryStatement) T
	VisitInlineAssembly(*InlineAssembly) T
}

func AcceptStatement[T any](statement Statement, visitor StatementVisitor[T]) (_ T) {

	switch statement.ElementType() {

	case ElementTypeBlock:
		return visitor.VisitBlock(statement.(*Block))

	case ElementTypePlaceholderStatement:
		return visitor.VisitPlaceholderStatement(statement.(*PlaceholderStatement))

	case ElementTypeIfStatement:
		return visitor.VisitIfStatement(statement.(*IfStatement))

	case ElementTypeWhileStatement:
		return visitor.VisitWhileStatement(statement.(*WhileStatement))

	case ElementTypeForStatement:
		return visitor.VisitForStatement(statement.(*ForStatement))

	case ElementTypeContinue:
		return visitor.VisitContinue(statement.(*Continue))

	case ElementTypeBreak:
		return visitor.VisitBreak(statement.(*Break))

	case ElementTypeReturn:
		return visitor.VisitReturn(statement.(*Return))

	case ElementTypeEmitStatement:
		return visitor.VisitEmitStatement(statement.(*EmitStatement))

	case ElementTypeSendStatement:
		return visitor.VisitSendStatement(statement.(*SendStatement))

	case ElementTypeVariableDeclarationStatement:
		return visitor.VisitVariableDeclarationStatement(statement.(*VariableDeclarationStatement))

	case ElementTypeExpressionStatement:
		return visitor.VisitExpressionStatement(statement.(*ExpressionStatement))

	case ElementTypeTryStatement:
		return visitor.VisitTryStatement(statement.(*TryStatement))

	case ElementTypeInlineAssembly:
		return visitor.VisitInlineAssembly(statement.(*InlineAssembly))
	}

	panic(errors.NewUnreachableError())
}

type ExpressionVisitor[T any] interface {
	VisitIdentifier(*Identifier) T
	VisitLiteral(*Literal) T
	VisitElementaryTypeNameExpression(*ElementaryTypeNameExpression) T
	VisitTupleExpression(*TupleExpression) T
	VisitUnaryOperation(*UnaryOperation) T
	VisitBinaryOperation(*BinaryOperation) T
	VisitConditional(*Conditional) T
	VisitAssignment(*Assignment) T
	VisitFunctionCall(*FunctionCall) T
	VisitFunctionCallOptions(*FunctionCallOptions) T
	VisitNewExpression(*NewExpression) T
	VisitMemberAccess(*MemberAccess) T
	VisitIndexAccess(*IndexAccess) T
	VisitIndexRangeAccess(*IndexRangeAccess) T
	VisitAwaitExpression(*AwaitExpression) T
}

func AcceptExpression[T any](expression Expression, visitor ExpressionVisitor[T]) (_ T) {

	switch expression.ElementType() {

	case ElementTypeIdentifier:
		return visitor.VisitIdentifier(expression.(*Identifier))

	case ElementTypeLiteral:
		return visitor.VisitLiteral(expression.(*Literal))

	case ElementTypeElementaryTypeNameExpression:
		return visitor.VisitElementaryTypeNameExpression(expression.(*ElementaryTypeNameExpression))

	case ElementTypeTupleExpression:
		return visitor.VisitTupleExpression(expression.(*TupleExpression))

	case ElementTypeUnaryOperation:
		return visitor.VisitUnaryOperation(expression.(*UnaryOperation))

	case ElementTypeBinaryOperation:
		return visitor.VisitBinaryOperation(expression.(*BinaryOperation))

	case ElementTypeConditional:
		return visitor.VisitConditional(expression.(*Conditional))

	case ElementTypeAssignment:
		return visitor.VisitAssignment(expression.(*Assignment))

	case ElementTypeFunctionCall:
		return visitor.VisitFunctionCall(expression.(*FunctionCall))

	case ElementTypeFunctionCallOptions:
		return visitor.VisitFunctionCallOptions(expression.(*FunctionCallOptions))

	case ElementTypeNewExpression:
		return visitor.VisitNewExpression(expression.(*NewExpression))

	case ElementTypeMemberAccess:
		return visitor.VisitMemberAccess(expression.(*MemberAccess))

	case ElementTypeIndexAccess:
		return visitor.VisitIndexAccess(expression.(*IndexAccess))

	case ElementTypeIndexRangeAccess:
		return visitor.VisitIndexRangeAccess(expression.(*IndexRangeAccess))

	case ElementTypeAwaitExpression:
		return visitor.VisitAwaitExpression(expression.(*AwaitExpression))
	}

	panic(errors.NewUnreachableError())
}
