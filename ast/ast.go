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

// Package ast contains the syntax tree of Solidity++ source units.
// All nodes implement the Element interface,
// so have position information
// and can be traversed using Walk, Inspect, or the visitor interfaces.
//
// Nodes carry no annotations: the results of semantic analysis
// are recorded in a separate side table keyed by node.
package ast

import (
	"github.com/solpp-lang/solpp/common"
)

type Element interface {
	HasPosition
	ElementType() ElementType
	Walk(walkChild func(Element))
}

// Declaration is a named entity that references may resolve to
type Declaration interface {
	Element
	isDeclaration()
	DeclarationIdentifier() string
	DeclarationKind() common.DeclarationKind
}

type Statement interface {
	Element
	isStatement()
}

type Expression interface {
	Element
	isExpression()
}

type TypeName interface {
	Element
	isTypeName()
}

func walkExpressions(walkChild func(Element), expressions []Expression) {
	for _, expression := range expressions {
		if expression != nil {
			walkChild(expression)
		}
	}
}

func walkStatements(walkChild func(Element), statements []Statement) {
	for _, statement := range statements {
		walkChild(statement)
	}
}

func walkDeclarations(walkChild func(Element), declarations []Declaration) {
	for _, declaration := range declarations {
		walkChild(declaration)
	}
}
