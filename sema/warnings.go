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

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/errors"
)

// SemanticWarning is a diagnostic that does not fail the check

type SemanticWarning interface {
	error
	ast.HasPosition
	isSemanticWarning()
}

// DoubleStorageAssignmentWarning is reported for tuple assignments
// in which two components may refer to the same storage location

type DoubleStorageAssignmentWarning struct {
	ast.Range
}

var _ SemanticWarning = &DoubleStorageAssignmentWarning{}
var _ errors.SecondaryError = &DoubleStorageAssignmentWarning{}

func (*DoubleStorageAssignmentWarning) isSemanticWarning() {}

func (e *DoubleStorageAssignmentWarning) Error() string {
	return "this assignment performs two copies to storage"
}

func (e *DoubleStorageAssignmentWarning) SecondaryError() string {
	return "since storage copies do not first copy to a temporary location, " +
		"one of them might be overwritten; use separate assignments"
}

// UnusedCallResultWarning

type UnusedCallResultWarning struct {
	FunctionName string
	ast.Range
}

var _ SemanticWarning = &UnusedCallResultWarning{}

func (*UnusedCallResultWarning) isSemanticWarning() {}

func (e *UnusedCallResultWarning) Error() string {
	return fmt.Sprintf(
		"return value of low-level call `%s` not used",
		e.FunctionName,
	)
}

// InferredTypeWarning is reported for `var` declarations
// whose inferred type may be narrower than intended

type InferredTypeWarning struct {
	InferredType Type
	ast.Range
}

var _ SemanticWarning = &InferredTypeWarning{}

func (*InferredTypeWarning) isSemanticWarning() {}

func (e *InferredTypeWarning) Error() string {
	return fmt.Sprintf(
		"the type of this variable was inferred as `%s`, which can hold values between %s and %s",
		e.InferredType,
		inferredTypeMin(e.InferredType),
		inferredTypeMax(e.InferredType),
	)
}

func inferredTypeMin(t Type) string {
	if integerType, ok := t.(*IntegerType); ok {
		return integerType.Min().String()
	}
	return "?"
}

func inferredTypeMax(t Type) string {
	if integerType, ok := t.(*IntegerType); ok {
		return integerType.Max().String()
	}
	return "?"
}

// UnreachableCodeWarning

type UnreachableCodeWarning struct {
	ast.Range
}

var _ SemanticWarning = &UnreachableCodeWarning{}

func (*UnreachableCodeWarning) isSemanticWarning() {}

func (e *UnreachableCodeWarning) Error() string {
	return "unreachable code"
}
