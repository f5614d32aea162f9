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
	"math/big"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

// storagePathStep is a member access or an index access.
// An index that is not a compile-time constant may be any index.
type storagePathStep struct {
	member   string
	index    *big.Int
	wildcard bool
}

func (s storagePathStep) mayEqual(other storagePathStep) bool {
	if s.member != "" || other.member != "" {
		return s.member == other.member
	}
	if s.wildcard || other.wildcard {
		return true
	}
	return s.index.Cmp(other.index) == 0
}

// storagePath is the access path of an lvalue in storage,
// rooted at a state variable or a storage pointer
type storagePath struct {
	root  *ast.VariableDeclaration
	steps []storagePathStep
}

// mayOverlap reports whether one of the paths may be a prefix of the other,
// so that assigning to both may write the same storage slot
func (p storagePath) mayOverlap(other storagePath) bool {
	if p.root != other.root {
		return false
	}
	shared := min(len(p.steps), len(other.steps))
	for i := 0; i < shared; i++ {
		if !p.steps[i].mayEqual(other.steps[i]) {
			return false
		}
	}
	return true
}

// storageAccessPath returns the storage access path of the expression,
// or false if the expression does not denote a location in storage
func (checker *Checker) storageAccessPath(expression ast.Expression) (storagePath, bool) {
	switch expression := expression.(type) {
	case *ast.Identifier:
		annotation, ok := checker.Elaboration.ExistingExpressionAnnotation(expression)
		if !ok {
			return storagePath{}, false
		}
		variable, ok := annotation.ReferencedDeclaration.(*ast.VariableDeclaration)
		if !ok {
			return storagePath{}, false
		}
		if variable.IsStateVariable() ||
			variable.Location == common.DataLocationStorage {

			return storagePath{root: variable}, true
		}

	case *ast.TupleExpression:
		if len(expression.Components) == 1 && !expression.IsInlineArray {
			return checker.storageAccessPath(expression.Components[0])
		}

	case *ast.MemberAccess:
		baseType, ok := checker.Elaboration.ExpressionType(expression.Expression)
		if !ok {
			return storagePath{}, false
		}
		if _, ok := baseType.(*StructType); !ok {
			return storagePath{}, false
		}
		path, ok := checker.storageAccessPath(expression.Expression)
		if !ok {
			return storagePath{}, false
		}
		return path.with(storagePathStep{member: expression.MemberName}), true

	case *ast.IndexAccess:
		if expression.Index == nil {
			return storagePath{}, false
		}
		path, ok := checker.storageAccessPath(expression.Base)
		if !ok {
			return storagePath{}, false
		}
		step := storagePathStep{wildcard: true}
		indexType, _ := checker.Elaboration.ExpressionType(expression.Index)
		if rational, ok := indexType.(*RationalNumberType); ok && !rational.IsFractional() {
			step = storagePathStep{index: rational.Integer()}
		}
		return path.with(step), true
	}

	return storagePath{}, false
}

func (p storagePath) with(step storagePathStep) storagePath {
	steps := make([]storagePathStep, len(p.steps), len(p.steps)+1)
	copy(steps, p.steps)
	return storagePath{
		root:  p.root,
		steps: append(steps, step),
	}
}

// checkDoubleStorageAssignment warns about tuple assignments
// that may write the same storage location twice.
//
// The check is a conservative heuristic: two components whose storage paths
// may overlap are flagged, and so are multiple copies to storage
// of which at least one copies from storage.
func (checker *Checker) checkDoubleStorageAssignment(assignment *ast.Assignment) {
	leftHandSide, ok := assignment.LeftHandSide.(*ast.TupleExpression)
	if !ok {
		return
	}

	if checker.hasOverlappingStoragePaths(leftHandSide) ||
		checker.hasMultipleStorageCopies(leftHandSide, assignment.RightHandSide) {

		checker.warn(
			&DoubleStorageAssignmentWarning{
				Range: ast.NewRangeFromPositioned(assignment),
			},
		)
	}
}

func (checker *Checker) hasOverlappingStoragePaths(tuple *ast.TupleExpression) bool {
	var paths []storagePath

	for _, component := range tuple.Components {
		if component == nil {
			continue
		}
		path, ok := checker.storageAccessPath(component)
		if !ok {
			continue
		}
		for _, other := range paths {
			if path.mayOverlap(other) {
				return true
			}
		}
		paths = append(paths, path)
	}

	return false
}

func (checker *Checker) hasMultipleStorageCopies(tuple *ast.TupleExpression, rightHandSide ast.Expression) bool {
	leftType, ok := checker.Elaboration.ExpressionType(tuple)
	if !ok {
		return false
	}
	leftTuple, ok := leftType.(*TupleType)
	if !ok {
		return false
	}

	var rightComponents []Type
	if rightType, ok := checker.Elaboration.ExpressionType(rightHandSide); ok {
		if rightTuple, ok := rightType.(*TupleType); ok {
			rightComponents = rightTuple.Components
		}
	}

	toStorageCopies := 0
	storageToStorageCopies := 0

	for i, component := range leftTuple.Components {
		referenceType, ok := component.(ReferenceType)
		if !ok ||
			referenceType.DataLocation() != common.DataLocationStorage ||
			referenceType.IsPointer() {

			continue
		}

		toStorageCopies++

		if i < len(rightComponents) && IsStorageReference(rightComponents[i]) {
			storageToStorageCopies++
		}
	}

	return toStorageCopies > 1 && storageToStorageCopies > 0
}
