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
	"github.com/solpp-lang/solpp/common"
)

func (checker *Checker) VisitBlock(block *ast.Block) (_ struct{}) {
	checker.withContext(
		func(frame *checkingContext) {
			frame.unchecked = frame.unchecked || block.Unchecked
		},
		func() {
			checker.visitStatements(block.Statements)
		},
	)
	return
}

func (checker *Checker) visitStatements(statements []ast.Statement) {
	reportedUnreachable := false

	for i, statement := range statements {
		checker.visitStatement(statement)

		if reportedUnreachable || i == len(statements)-1 {
			continue
		}

		switch statement.(type) {
		case *ast.Return, *ast.Break, *ast.Continue:
			checker.warn(
				&UnreachableCodeWarning{
					Range: ast.NewRange(
						statements[i+1].StartPosition(),
						statements[len(statements)-1].EndPosition(),
					),
				},
			)
			reportedUnreachable = true
		}
	}
}

func (checker *Checker) VisitPlaceholderStatement(statement *ast.PlaceholderStatement) (_ struct{}) {
	if checker.contexts.current().modifier == nil {
		checker.report(
			&InvalidModifierError{
				Reason: "placeholder statement can only be used in modifiers",
				Range:  statement.Range,
			},
		)
	}
	return
}

func (checker *Checker) VisitIfStatement(statement *ast.IfStatement) (_ struct{}) {
	checker.expectType(statement.Condition, BoolType)

	checker.visitStatement(statement.TrueBody)

	if statement.FalseBody != nil {
		checker.visitStatement(statement.FalseBody)
	}

	return
}

func (checker *Checker) VisitWhileStatement(statement *ast.WhileStatement) (_ struct{}) {
	checker.expectType(statement.Condition, BoolType)

	checker.inLoop(func() {
		checker.visitStatement(statement.Body)
	})

	return
}

func (checker *Checker) VisitForStatement(statement *ast.ForStatement) (_ struct{}) {
	if statement.Initialization != nil {
		checker.visitStatement(statement.Initialization)
	}

	if statement.Condition != nil {
		checker.expectType(statement.Condition, BoolType)
	}

	if statement.Loop != nil {
		checker.visitStatement(statement.Loop)
	}

	checker.inLoop(func() {
		checker.visitStatement(statement.Body)
	})

	return
}

func (checker *Checker) inLoop(f func()) {
	checker.withContext(
		func(frame *checkingContext) {
			frame.loopDepth++
		},
		f,
	)
}

func (checker *Checker) VisitContinue(statement *ast.Continue) (_ struct{}) {
	checker.checkInLoop("continue", statement)
	return
}

func (checker *Checker) VisitBreak(statement *ast.Break) (_ struct{}) {
	checker.checkInLoop("break", statement)
	return
}

func (checker *Checker) checkInLoop(controlStatement string, hasPosition ast.HasPosition) {
	if checker.contexts.current().loopDepth > 0 {
		return
	}
	checker.report(
		&ControlStatementError{
			ControlStatement: controlStatement,
			Range:            ast.NewRangeFromPositioned(hasPosition),
		},
	)
}

func (checker *Checker) VisitReturn(statement *ast.Return) (_ struct{}) {
	function := checker.currentFunction()

	// Modifiers may return early, but without values

	if function == nil {
		if statement.Expression != nil {
			checker.VisitExpression(statement.Expression, nil)
			checker.report(
				&InvalidReturnError{
					Reason: "return arguments are not allowed here",
					Range:  statement.Range,
				},
			)
		}
		return
	}

	returnTypes := checker.functionType(function).ReturnParameters

	switch {
	case statement.Expression == nil:
		if len(returnTypes) > 0 {
			checker.report(
				&InvalidReturnError{
					Reason: "return arguments required",
					Range:  statement.Range,
				},
			)
		}

	case len(returnTypes) == 0:
		checker.VisitExpression(statement.Expression, nil)
		checker.report(
			&InvalidReturnError{
				Reason: "function declares no return variables, return arguments are not allowed",
				Range:  statement.Range,
			},
		)

	case len(returnTypes) == 1:
		checker.expectType(statement.Expression, returnTypes[0])

	default:
		valueType := checker.VisitExpression(statement.Expression, nil)
		if valueType.IsInvalidType() {
			return
		}

		tupleType, ok := valueType.(*TupleType)
		if !ok || len(tupleType.Components) != len(returnTypes) {
			checker.report(
				&InvalidReturnError{
					Reason: "different number of arguments in return statement than in returns declaration",
					Range:  statement.Range,
				},
			)
			return
		}

		checker.checkImplicitConversion(
			statement.Expression,
			valueType,
			NewTupleType(returnTypes...),
		)
	}

	return
}

func (checker *Checker) VisitEmitStatement(statement *ast.EmitStatement) (_ struct{}) {
	declaration := checker.checkEventInvocation(statement.EventCall, EventFlavorEvent)
	if declaration != nil {
		checker.Elaboration.SetEmittedEvent(statement, declaration)
	}
	return
}

func (checker *Checker) VisitSendStatement(statement *ast.SendStatement) (_ struct{}) {
	checker.expectType(statement.Address, TheAddressType)

	declaration := checker.checkEventInvocation(statement.MessageCall, EventFlavorMessage)
	if message, ok := declaration.(*ast.MessageDefinition); ok {
		checker.Elaboration.SetSentMessage(statement, message)
	}
	return
}

// checkEventInvocation checks the call of an emit or send statement
// and returns the invoked event or message, if any
func (checker *Checker) checkEventInvocation(call *ast.FunctionCall, flavor EventFlavor) ast.Declaration {
	checker.withContext(
		func(frame *checkingContext) {
			frame.eventCall = call
			frame.eventFlavor = flavor
		},
		func() {
			checker.VisitExpression(call, nil)
		},
	)

	calleeType := checker.ExpressionType(call.Expression)
	if calleeType.IsInvalidType() {
		return nil
	}

	expectedKind := FunctionKindEvent
	if flavor == EventFlavorMessage {
		expectedKind = FunctionKindMessage
	}

	functionType, ok := calleeType.(*FunctionType)
	if !ok || functionType.Kind != expectedKind {
		checker.report(
			&InvalidEmitError{
				Flavor: flavor,
				Range:  call.Range,
			},
		)
		return nil
	}

	return functionType.Declaration
}

func (checker *Checker) VisitVariableDeclarationStatement(statement *ast.VariableDeclarationStatement) (_ struct{}) {
	declarations := statement.Declarations

	if len(declarations) == 1 && declarations[0] != nil {
		checker.checkSingleVariableDeclaration(declarations[0], statement.InitialValue)
		return
	}

	if statement.InitialValue == nil {
		for _, declaration := range declarations {
			if declaration == nil {
				continue
			}
			checker.declareVariable(declaration, nil)
		}
		return
	}

	valueType := checker.VisitExpression(statement.InitialValue, nil)

	components := []Type{valueType}
	if tupleType, ok := valueType.(*TupleType); ok {
		components = tupleType.Components
	}

	countMismatch := len(components) != len(declarations)
	if countMismatch && !valueType.IsInvalidType() {
		checker.report(
			&InvalidTupleError{
				Reason: "different number of components on the left hand side than on the right hand side",
				Range:  statement.Range,
			},
		)
	}

	for i, declaration := range declarations {
		if declaration == nil {
			continue
		}

		componentType := Type(InvalidType)
		if !countMismatch && components[i] != nil {
			componentType = components[i]
		}

		if declaration.TypeName == nil {
			checker.declareInferredVariable(declaration, componentType)
			continue
		}

		declaredType := checker.variableType(declaration)
		checker.checkImplicitConversion(statement.InitialValue, componentType, declaredType)
	}

	return
}

func (checker *Checker) checkSingleVariableDeclaration(declaration *ast.VariableDeclaration, initialValue ast.Expression) {
	if declaration.TypeName == nil {
		if initialValue == nil {
			checker.reportInvalidVariable(declaration, "variables declared with `var` need an initial value")
			checker.Elaboration.SetVariableDeclarationType(declaration, InvalidType)
			return
		}
		valueType := checker.VisitExpression(initialValue, nil)
		checker.declareInferredVariable(declaration, valueType)
		return
	}

	checker.declareVariable(declaration, initialValue)
}

// declareVariable checks a local variable with an explicit type
func (checker *Checker) declareVariable(declaration *ast.VariableDeclaration, initialValue ast.Expression) {
	declaredType := checker.variableType(declaration)

	if initialValue != nil {
		checker.VisitExpression(initialValue, declaredType)
		return
	}

	if declaration.TypeName == nil {
		checker.Elaboration.SetVariableDeclarationType(declaration, InvalidType)
		return
	}

	if referenceType, ok := declaredType.(ReferenceType); ok &&
		referenceType.DataLocation() == common.DataLocationStorage {

		checker.reportInvalidVariable(declaration, "uninitialized storage pointer")
	}
}

// declareInferredVariable gives a `var` declaration the mobile type of its value
func (checker *Checker) declareInferredVariable(declaration *ast.VariableDeclaration, valueType Type) {
	inferredType := checker.inferVariableType(declaration, valueType)
	checker.Elaboration.SetVariableDeclarationType(declaration, inferredType)
}

func (checker *Checker) inferVariableType(declaration *ast.VariableDeclaration, valueType Type) Type {
	if valueType.IsInvalidType() {
		return InvalidType
	}

	switch valueType := valueType.(type) {
	case *TupleType:
		checker.reportInvalidVariable(declaration, "cannot declare a variable with a tuple or void type")
		return InvalidType
	case *TypeType:
		checker.report(
			&TypeAsValueError{
				Type:  valueType.Actual,
				Range: declaration.Range,
			},
		)
		return InvalidType
	}

	mobileType := MobileType(valueType)
	if mobileType == nil {
		checker.reportInvalidVariable(declaration, "invalid rational number")
		return InvalidType
	}

	if _, ok := valueType.(*RationalNumberType); ok {
		checker.warn(
			&InferredTypeWarning{
				InferredType: mobileType,
				Range:        declaration.Range,
			},
		)
	}

	return mobileType
}

func (checker *Checker) VisitExpressionStatement(statement *ast.ExpressionStatement) (_ struct{}) {
	ty := checker.VisitExpression(statement.Expression, nil)

	if rationalType, ok := ty.(*RationalNumberType); ok && MobileType(rationalType) == nil {
		checker.report(
			&InvalidLiteralError{
				Reason: "invalid rational number",
				Range:  statement.Range,
			},
		)
	}

	call, ok := statement.Expression.(*ast.FunctionCall)
	if !ok {
		return
	}

	functionType, ok := checker.ExpressionType(call.Expression).(*FunctionType)
	if !ok {
		return
	}

	switch functionType.Kind {
	case FunctionKindBareCall,
		FunctionKindBareStaticCall,
		FunctionKindDelegateCall,
		FunctionKindSend:

		// Library calls are delegate calls too, but they revert on failure
		if functionType.Kind == FunctionKindDelegateCall && functionType.Declaration != nil {
			return
		}

		checker.warn(
			&UnusedCallResultWarning{
				FunctionName: calleeName(call.Expression),
				Range:        statement.Range,
			},
		)
	}

	return
}

func calleeName(callee ast.Expression) string {
	for {
		switch expression := callee.(type) {
		case *ast.MemberAccess:
			return expression.MemberName
		case *ast.Identifier:
			return expression.Name
		case *ast.FunctionCallOptions:
			callee = expression.Expression
		default:
			return ""
		}
	}
}

func (checker *Checker) VisitTryStatement(statement *ast.TryStatement) (_ struct{}) {
	checker.VisitExpression(statement.ExternalCall, nil)

	returnTypes, ok := checker.tryCallReturnTypes(statement.ExternalCall)
	if !ok {
		checker.report(
			&InvalidTryError{
				Reason: "try can only be used with external function calls and contract creation calls",
				Range:  ast.NewRangeFromPositioned(statement.ExternalCall),
			},
		)
	}

	for i, clause := range statement.Clauses {
		var parameterTypes []Type
		if clause.Parameters != nil {
			for _, parameter := range clause.Parameters.List() {
				parameterTypes = append(parameterTypes, checker.variableType(parameter))
			}
		}

		if i == 0 {
			if ok && clause.Parameters != nil {
				checker.checkTrySuccessClause(clause, returnTypes, parameterTypes)
			}
		} else {
			checker.checkCatchClause(clause, parameterTypes)
		}

		checker.visitStatement(clause.Block)
	}

	return
}

func (checker *Checker) tryCallReturnTypes(expression ast.Expression) ([]Type, bool) {
	call, ok := expression.(*ast.FunctionCall)
	if !ok {
		return nil, false
	}

	functionType, ok := checker.ExpressionType(call.Expression).(*FunctionType)
	if !ok {
		return nil, false
	}

	switch functionType.Kind {
	case FunctionKindExternal, FunctionKindDelegateCall:
		// Library calls are internal jumps unless the library is called externally
		if functionType.Kind == FunctionKindDelegateCall && functionType.Declaration == nil {
			return nil, false
		}
		return functionType.ReturnParameters, true
	case FunctionKindCreation:
		return functionType.ReturnParameters, true
	}

	return nil, false
}

func (checker *Checker) checkTrySuccessClause(
	clause *ast.TryCatchClause,
	returnTypes []Type,
	parameterTypes []Type,
) {
	if len(returnTypes) != len(parameterTypes) {
		checker.report(
			&InvalidTryError{
				Reason: "function returns a different number of values than the returns clause declares",
				Range:  clause.Range,
			},
		)
		return
	}

	for i, returnType := range returnTypes {
		if !IsImplicitlyConvertible(returnType, parameterTypes[i]) {
			checker.report(
				&TypeMismatchError{
					ExpectedType: parameterTypes[i],
					ActualType:   returnType,
					Range:        clause.Parameters.List()[i].Range,
				},
			)
		}
	}
}

func (checker *Checker) checkCatchClause(clause *ast.TryCatchClause, parameterTypes []Type) {
	reportInvalid := func(reason string) {
		checker.report(
			&InvalidTryError{
				Reason: reason,
				Range:  clause.Range,
			},
		)
	}

	isSingle := func(expected Type) bool {
		return len(parameterTypes) == 1 &&
			IsImplicitlyConvertible(expected, parameterTypes[0])
	}

	switch clause.ErrorName {
	case "":
		if len(parameterTypes) > 0 && !isSingle(BytesMemoryType) {
			reportInvalid("expected `catch (bytes memory value) { ... }` or `catch { ... }`")
		}
	case "Error":
		if !isSingle(StringMemoryType) {
			reportInvalid("expected `catch Error(string memory reason) { ... }`")
		}
	case "Panic":
		if !isSingle(UInt256Type) {
			reportInvalid("expected `catch Panic(uint code) { ... }`")
		}
	default:
		reportInvalid("invalid catch clause identifier, expected `Error` or `Panic`")
	}
}

func (checker *Checker) VisitInlineAssembly(statement *ast.InlineAssembly) (_ struct{}) {
	checker.report(
		&UnsupportedInlineAssemblyError{
			Range: statement.Range,
		},
	)
	return
}
