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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect(t *testing.T) {

	t.Parallel()

	// a + b * c
	expression := &BinaryOperation{
		Operator: OperationAdd,
		Left:     &Identifier{Name: "a"},
		Right: &BinaryOperation{
			Operator: OperationMul,
			Left:     &Identifier{Name: "b"},
			Right:    &Identifier{Name: "c"},
		},
	}

	t.Run("preorder", func(t *testing.T) {
		t.Parallel()

		var elementTypes []ElementType
		Preorder(expression, func(element Element) {
			elementTypes = append(elementTypes, element.ElementType())
		})

		assert.Equal(t,
			[]ElementType{
				ElementTypeBinaryOperation,
				ElementTypeIdentifier,
				ElementTypeBinaryOperation,
				ElementTypeIdentifier,
				ElementTypeIdentifier,
			},
			elementTypes,
		)
	})

	t.Run("pruned", func(t *testing.T) {
		t.Parallel()

		var names []string
		Inspect(expression, func(element Element) bool {
			switch element := element.(type) {
			case *Identifier:
				names = append(names, element.Name)
			case *BinaryOperation:
				return element.Operator == OperationAdd
			}
			return true
		})

		assert.Equal(t, []string{"a"}, names)
	})
}

func TestWalkSkipsAbsentChildren(t *testing.T) {

	t.Parallel()

	statement := &IfStatement{
		Condition: &Literal{Kind: LiteralKindBool, Value: "true"},
		TrueBody:  &Block{},
	}

	assert.Len(t, Children(statement), 2)

	tuple := &TupleExpression{
		Components: []Expression{nil, &Identifier{Name: "x"}},
	}

	assert.Len(t, Children(tuple), 1)
}

func TestElementTypeFromNodeType(t *testing.T) {

	t.Parallel()

	for elementType := ElementTypeUnknown + 1; elementType < ElementTypeCount; elementType++ {
		actual, ok := ElementTypeFromNodeType(elementType.String())
		assert.True(t, ok)
		assert.Equal(t, elementType, actual)
	}

	_, ok := ElementTypeFromNodeType("YulBlock")
	assert.False(t, ok)
}

func TestLiteralLooksLikeAddress(t *testing.T) {

	t.Parallel()

	assert.True(t,
		(&Literal{Value: "0x52908400098527886E0F7030069857D2E4169EE7"}).LooksLikeAddress(),
	)
	assert.False(t,
		(&Literal{Value: "0x1234"}).LooksLikeAddress(),
	)
	assert.False(t,
		(&Literal{Value: "52908400098527886"}).LooksLikeAddress(),
	)
}
