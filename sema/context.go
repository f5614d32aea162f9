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
)

// checkingContext is the declaration context of the traversal at one depth.
// A nil contract means the traversal is at file level.
type checkingContext struct {
	sourceUnit *ast.SourceUnit
	contract   *ast.ContractDefinition
	function   *ast.FunctionDefinition
	modifier   *ast.ModifierDefinition
	unchecked  bool
	loopDepth  int
	abiCoderV2 bool
	// eventCall is the call of the emit or send statement being checked
	eventCall   *ast.FunctionCall
	eventFlavor EventFlavor
}

// contextStack is owned by a single traversal.
// A frame is pushed when a declaration is entered and popped when it is left.
type contextStack struct {
	frames []checkingContext
}

func (s *contextStack) current() checkingContext {
	if len(s.frames) == 0 {
		return checkingContext{}
	}
	return s.frames[len(s.frames)-1]
}

func (s *contextStack) push(frame checkingContext) {
	s.frames = append(s.frames, frame)
}

func (s *contextStack) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *contextStack) reset() {
	s.frames = s.frames[:0]
}

func (s *contextStack) depth() int {
	return len(s.frames)
}

// withContext runs f in a new frame derived from the current one
func (checker *Checker) withContext(update func(frame *checkingContext), f func()) {
	frame := checker.contexts.current()
	update(&frame)
	checker.contexts.push(frame)
	defer checker.contexts.pop()

	f()
}

func (checker *Checker) currentContract() *ast.ContractDefinition {
	return checker.contexts.current().contract
}

func (checker *Checker) currentFunction() *ast.FunctionDefinition {
	return checker.contexts.current().function
}

func (checker *Checker) currentSourceUnit() *ast.SourceUnit {
	return checker.contexts.current().sourceUnit
}

func (checker *Checker) inLibrary() bool {
	contract := checker.currentContract()
	return contract != nil && contract.IsLibrary()
}
