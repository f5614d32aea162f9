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

// checkImplicitConversion reports if a value of the actual type
// cannot be used where the expected type is required
func (checker *Checker) checkImplicitConversion(expression ast.Expression, actualType Type, expectedType Type) bool {
	if IsImplicitlyConvertible(actualType, expectedType) {
		return true
	}

	if rationalType, ok := actualType.(*RationalNumberType); ok && !rationalType.IsFractional() {
		if _, ok := expectedType.(*IntegerType); ok {
			checker.report(
				&TypeMismatchWithDescriptionError{
					ExpectedTypeDescription: "a value in the range of " + expectedType.String(),
					ActualType:              actualType,
					Range:                   ast.NewRangeFromPositioned(expression),
				},
			)
			return false
		}
	}

	checker.report(
		&TypeMismatchError{
			ExpectedType: expectedType,
			ActualType:   actualType,
			Range:        ast.NewRangeFromPositioned(expression),
		},
	)
	return false
}

// expectType checks the expression and requires its type
// to be implicitly convertible to the expected type
func (checker *Checker) expectType(expression ast.Expression, expectedType Type) bool {
	ty := checker.visitExpression(expression)
	return checker.checkImplicitConversion(expression, ty, expectedType)
}

// requireLValue checks the expression as the target of an assignment.
// Tuples are only valid targets of ordinary assignments.
func (checker *Checker) requireLValue(expression ast.Expression, ordinaryAssignment bool) Type {
	annotation := checker.expressionAnnotation(expression)
	annotation.LValueRequested = true

	ty := checker.visitExpression(expression)

	if _, ok := expression.(*ast.TupleExpression); ok && !ordinaryAssignment {
		if _, ok := ty.(*TupleType); ok {
			checker.report(
				&NotAssignableError{
					Reason: "compound assignment is not allowed for tuple types",
					Range:  ast.NewRangeFromPositioned(expression),
				},
			)
			return ty
		}
	}

	if annotation.IsLValue || ty.IsInvalidType() {
		return ty
	}

	checker.report(
		&NotAssignableError{
			Reason: checker.notAssignableReason(expression),
			Range:  ast.NewRangeFromPositioned(expression),
		},
	)

	return ty
}

func (checker *Checker) notAssignableReason(expression ast.Expression) string {
	annotation := checker.expressionAnnotation(expression)

	if variable, ok := annotation.ReferencedDeclaration.(*ast.VariableDeclaration); ok {
		switch {
		case variable.IsConstant():
			return "cannot assign to a constant variable"
		case variable.IsImmutable():
			return "immutable variables can only be assigned in the constructor"
		}
	}

	switch expression := expression.(type) {
	case *ast.IndexAccess:
		switch baseType := checker.ExpressionType(expression.Base).(type) {
		case *FixedBytesType:
			return "single bytes in fixed bytes arrays cannot be modified"
		case ReferenceType:
			if baseType.DataLocation() == common.DataLocationCallData {
				return "calldata arrays are read-only"
			}
		}

	case *ast.MemberAccess:
		if expression.MemberName == "length" {
			return "member `length` is read-only and cannot be used to resize arrays"
		}
		if baseType, ok := checker.ExpressionType(expression.Expression).(ReferenceType); ok &&
			baseType.DataLocation() == common.DataLocationCallData {

			return "calldata structs are read-only"
		}
	}

	return ""
}

func (checker *Checker) VisitUnaryOperation(operation *ast.UnaryOperation) Type {
	annotation := checker.expressionAnnotation(operation)

	var operandType Type
	modifying := false

	switch operation.Operator {
	case ast.OperationInc, ast.OperationDec, ast.OperationDelete:
		modifying = true
		operandType = checker.requireLValue(operation.SubExpression, false)
	default:
		operandType = checker.visitExpression(operation.SubExpression)
	}

	resultType, reason := UnaryOperatorResult(operation.Operator, operandType)
	if resultType == nil {
		checker.report(
			&InvalidUnaryOperandError{
				Operation:   operation.Operator,
				OperandType: operandType,
				Reason:      reason,
				Range:       operation.Range,
			},
		)
		return InvalidType
	}

	annotation.IsPure = !modifying && checker.isPure(operation.SubExpression)

	return resultType
}

func (checker *Checker) VisitBinaryOperation(operation *ast.BinaryOperation) Type {
	annotation := checker.expressionAnnotation(operation)

	leftType := checker.visitExpression(operation.Left)
	rightType := checker.visitExpression(operation.Right)

	resultType, reason := BinaryOperatorResult(operation.Operator, leftType, rightType)
	if resultType == nil {
		checker.report(
			&InvalidBinaryOperandsError{
				Operation: operation.Operator,
				LeftType:  leftType,
				RightType: rightType,
				Reason:    reason,
				Range:     operation.Range,
			},
		)
		return InvalidType
	}

	annotation.IsPure = checker.isPure(operation.Left) &&
		checker.isPure(operation.Right)

	return resultType
}

func (checker *Checker) VisitAssignment(assignment *ast.Assignment) Type {
	ordinaryAssignment := assignment.Operator == ast.OperationAssign

	leftType := checker.requireLValue(assignment.LeftHandSide, ordinaryAssignment)

	if _, ok := leftType.(*MappingType); ok {
		checker.report(
			&InvalidAssignmentError{
				Reason: "mappings cannot be assigned to",
				Range:  assignment.Range,
			},
		)
		checker.VisitExpression(assignment.RightHandSide, nil)
		return leftType
	}

	if _, ok := leftType.(*TupleType); ok {
		checker.VisitExpression(assignment.RightHandSide, leftType)
		checker.checkDoubleStorageAssignment(assignment)
		// Tuple assignments have no value
		return EmptyTupleType
	}

	if ordinaryAssignment {
		checker.VisitExpression(assignment.RightHandSide, leftType)
		return leftType
	}

	// Compound assignment, e.g. `x += 1`

	rightType := checker.visitExpression(assignment.RightHandSide)
	resultType, reason := BinaryOperatorResult(assignment.Operator, leftType, rightType)
	if resultType == nil || !IsImplicitlyConvertible(resultType, leftType) {
		checker.report(
			&InvalidBinaryOperandsError{
				Operation: assignment.Operator,
				LeftType:  leftType,
				RightType: rightType,
				Reason:    reason,
				Range:     assignment.Range,
			},
		)
	}

	return leftType
}
