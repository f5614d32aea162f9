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
	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/sema"
)

type scope struct {
	parent       *scope
	declarations map[string][]ast.Declaration
}

func newScope(parent *scope) *scope {
	return &scope{
		parent:       parent,
		declarations: map[string][]ast.Declaration{},
	}
}

func (s *scope) declare(declaration ast.Declaration) {
	name := declaration.DeclarationIdentifier()
	if name == "" {
		return
	}
	for _, existing := range s.declarations[name] {
		if existing == declaration {
			return
		}
	}
	s.declarations[name] = append(s.declarations[name], declaration)
}

func (s *scope) lookup(name string) []ast.Declaration {
	for current := s; current != nil; current = current.parent {
		if declarations, ok := current.declarations[name]; ok {
			result := make([]ast.Declaration, len(declarations))
			copy(result, declarations)
			return result
		}
	}
	return nil
}

// binder resolves the names of a tree built without a parser:
// file-level declarations, members of contracts and their bases,
// parameters, and local variables declared before the reference.
// Names of global builtins like `msg` stay unbound.
type binder struct {
	scope *scope
}

// Bind resolves the identifiers and identifier paths of the source unit.
// Identifiers that already have candidates are left as they are.
func Bind(sourceUnit *ast.SourceUnit) {
	fileScope := newScope(nil)
	for _, node := range sourceUnit.Nodes {
		fileScope.declare(node)
	}

	b := &binder{scope: fileScope}

	// Base names are needed for the linearization of contracts,
	// so are bound before any contract body
	for _, contract := range sourceUnit.ContractDefinitions() {
		for _, base := range contract.BaseContracts {
			b.bindPath(base.BaseName)
		}
	}

	for _, node := range sourceUnit.Nodes {
		b.bind(node)
	}
}

func (b *binder) withScope(f func()) {
	parent := b.scope
	b.scope = newScope(parent)
	defer func() {
		b.scope = parent
	}()
	f()
}

func (b *binder) bind(element ast.Element) {
	switch element := element.(type) {
	case *ast.ContractDefinition:
		b.withScope(func() {
			for _, base := range sema.LinearizedBaseContracts(element) {
				for _, member := range base.Members {
					b.scope.declare(member)
				}
			}
			element.Walk(b.bind)
		})

	case *ast.FunctionDefinition,
		*ast.ModifierDefinition,
		*ast.Block,
		*ast.ForStatement,
		*ast.TryCatchClause:

		b.withScope(func() {
			element.Walk(b.bind)
		})

	case *ast.VariableDeclarationStatement:
		if element.InitialValue != nil {
			b.bind(element.InitialValue)
		}
		for _, declaration := range element.Declarations {
			if declaration != nil {
				b.bind(declaration)
			}
		}

	case *ast.VariableDeclaration:
		element.Walk(b.bind)
		switch element.Scope {
		case ast.VariableScopeLocal,
			ast.VariableScopeParameter,
			ast.VariableScopeReturnParameter,
			ast.VariableScopeCatchParameter:

			b.scope.declare(element)
		}

	case *ast.Identifier:
		if element.Candidates == nil {
			element.Candidates = b.scope.lookup(element.Name)
		}

	case *ast.IdentifierPath:
		b.bindPath(element)

	default:
		element.Walk(b.bind)
	}
}

// bindPath resolves a dotted name, e.g. `C.S` for the struct S of contract C
func (b *binder) bindPath(path *ast.IdentifierPath) {
	if path.Declaration != nil || len(path.Path) == 0 {
		return
	}

	candidates := b.scope.lookup(path.Path[0])
	if len(candidates) == 0 {
		return
	}
	declaration := candidates[0]

	for _, name := range path.Path[1:] {
		contract, ok := declaration.(*ast.ContractDefinition)
		if !ok {
			return
		}
		declaration = nil
		for _, member := range contract.Members {
			if member.DeclarationIdentifier() == name {
				declaration = member
				break
			}
		}
		if declaration == nil {
			return
		}
	}

	path.Declaration = declaration
}
