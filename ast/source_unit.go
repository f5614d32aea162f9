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
	"strings"

	"github.com/solpp-lang/solpp/common"
)

// SourceUnit is the root of a syntax tree

type SourceUnit struct {
	Location common.Location
	Pragmas  []*PragmaDirective
	Nodes    []Declaration
	Range
}

var _ Element = &SourceUnit{}

func (*SourceUnit) ElementType() ElementType {
	return ElementTypeSourceUnit
}

func (u *SourceUnit) Walk(walkChild func(Element)) {
	for _, pragma := range u.Pragmas {
		walkChild(pragma)
	}
	walkDeclarations(walkChild, u.Nodes)
}

func (u *SourceUnit) ContractDefinitions() []*ContractDefinition {
	var contracts []*ContractDefinition
	for _, node := range u.Nodes {
		if contract, ok := node.(*ContractDefinition); ok {
			contracts = append(contracts, contract)
		}
	}
	return contracts
}

// PragmaDirective

type PragmaDirective struct {
	Literals []string
	Range
}

var _ Element = &PragmaDirective{}

func (*PragmaDirective) ElementType() ElementType {
	return ElementTypePragmaDirective
}

func (*PragmaDirective) Walk(_ func(Element)) {
	// NO-OP
}

func (p *PragmaDirective) Name() string {
	if len(p.Literals) == 0 {
		return ""
	}
	return p.Literals[0]
}

func (p *PragmaDirective) Value() string {
	if len(p.Literals) < 2 {
		return ""
	}
	return strings.Join(p.Literals[1:], "")
}

// IdentifierPath is a dotted name referring to a declaration,
// as used in type names, inheritance specifiers, and modifier invocations.
// The name binder sets Declaration.

type IdentifierPath struct {
	Path        []string
	Declaration Declaration
	Range
}

var _ Element = &IdentifierPath{}

func (*IdentifierPath) ElementType() ElementType {
	return ElementTypeIdentifierPath
}

func (*IdentifierPath) Walk(_ func(Element)) {
	// NO-OP
}

func (p *IdentifierPath) String() string {
	return strings.Join(p.Path, ".")
}

// ParameterList

type ParameterList struct {
	Parameters []*VariableDeclaration
	Range
}

var _ Element = &ParameterList{}

func (*ParameterList) ElementType() ElementType {
	return ElementTypeParameterList
}

func (l *ParameterList) Walk(walkChild func(Element)) {
	for _, parameter := range l.Parameters {
		walkChild(parameter)
	}
}

func (l *ParameterList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Parameters)
}

func (l *ParameterList) List() []*VariableDeclaration {
	if l == nil {
		return nil
	}
	return l.Parameters
}
