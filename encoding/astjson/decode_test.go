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

package astjson

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	. "github.com/solpp-lang/solpp/test_utils/common_utils"
	. "github.com/solpp-lang/solpp/test_utils/sema_utils"
)

type object = map[string]any

// src returns the source range of the length bytes at start
// within the first occurrence of context in code
func src(code string, context string, start int, length int) string {
	index := strings.Index(code, context)
	if index < 0 {
		panic(fmt.Errorf("missing %q", context))
	}
	return fmt.Sprintf("%d:%d:0", index+start, length)
}

func node(nodeType string, id int, src string, fields object) object {
	result := object{
		"nodeType": nodeType,
		"id":       id,
		"src":      src,
	}
	for key, value := range fields {
		result[key] = value
	}
	return result
}

func elementaryTypeName(name string, id int, src string) object {
	return node("ElementaryTypeName", id, src, object{
		"name": name,
	})
}

func encode(t *testing.T, value object) []byte {
	data, err := json.Marshal(value)
	require.NoError(t, err)
	return data
}

const contractCode = `contract C {
    uint x;
    function f(uint a) public returns (uint) {
        return a + x;
    }
}
`

func contractTree() object {
	code := contractCode

	return node("SourceUnit", 100, fmt.Sprintf("0:%d:0", len(code)), object{
		"nodes": []any{
			node("ContractDefinition", 10, fmt.Sprintf("0:%d:0", len(code)-1), object{
				"name":          "C",
				"contractKind":  "contract",
				"abstract":      false,
				"baseContracts": []any{},
				"nodes": []any{
					node("VariableDeclaration", 1, src(code, "uint x;", 0, 6), object{
						"name":            "x",
						"typeName":        elementaryTypeName("uint", 2, src(code, "uint x;", 0, 4)),
						"visibility":      "internal",
						"mutability":      "mutable",
						"storageLocation": "default",
						"value":           nil,
					}),
					node("FunctionDefinition", 3, src(code, "function f", 0, 70), object{
						"name":            "f",
						"kind":            "function",
						"visibility":      "public",
						"stateMutability": "nonpayable",
						"virtual":         false,
						"overrides":       nil,
						"modifiers":       []any{},
						"parameters": node("ParameterList", 4, src(code, "(uint a)", 0, 8), object{
							"parameters": []any{
								node("VariableDeclaration", 5, src(code, "uint a", 0, 6), object{
									"name":            "a",
									"typeName":        elementaryTypeName("uint", 6, src(code, "uint a", 0, 4)),
									"storageLocation": "default",
								}),
							},
						}),
						"returnParameters": node("ParameterList", 7, src(code, "(uint)", 0, 6), object{
							"parameters": []any{
								node("VariableDeclaration", 8, src(code, "(uint)", 1, 4), object{
									"name":            "",
									"typeName":        elementaryTypeName("uint", 9, src(code, "(uint)", 1, 4)),
									"storageLocation": "default",
								}),
							},
						}),
						"body": node("Block", 11, src(code, "{\n        return", 0, 29), object{
							"statements": []any{
								node("Return", 12, src(code, "return a + x;", 0, 13), object{
									"expression": node("BinaryOperation", 13, src(code, "a + x", 0, 5), object{
										"operator": "+",
										"leftExpression": node("Identifier", 14, src(code, "a + x", 0, 1), object{
											"name":                  "a",
											"referencedDeclaration": 5,
										}),
										"rightExpression": node("Identifier", 15, src(code, "a + x", 4, 1), object{
											"name":                  "x",
											"referencedDeclaration": 1,
										}),
									}),
								}),
							},
						}),
					}),
				},
			}),
		},
	})
}

func TestDecodeSourceUnit(t *testing.T) {

	t.Parallel()

	location := common.StringLocation("test")

	sourceUnit, err := Decode(
		encode(t, contractTree()),
		WithSource([]byte(contractCode)),
		WithLocation(location),
	)
	require.NoError(t, err)

	assert.Equal(t, location, sourceUnit.Location)

	contracts := sourceUnit.ContractDefinitions()
	require.Len(t, contracts, 1)

	contract := contracts[0]
	assert.Equal(t, "C", contract.Name)
	assert.Equal(t, ast.ContractKindContract, contract.Kind)

	stateVariables := contract.StateVariables()
	require.Len(t, stateVariables, 1)

	x := stateVariables[0]
	assert.Equal(t, ast.VariableScopeState, x.Scope)
	assert.Equal(t, ast.VisibilityInternal, x.Visibility)
	assert.Equal(t, &ast.ElementaryTypeName{
		Name: "uint",
		Range: ast.NewRange(
			ast.Position{Offset: 17, Line: 2, Column: 4},
			ast.Position{Offset: 20, Line: 2, Column: 7},
		),
	}, x.TypeName)

	functions := contract.Functions()
	require.Len(t, functions, 1)

	f := functions[0]
	assert.Equal(t, ast.VisibilityPublic, f.Visibility)
	require.Len(t, f.Parameters.List(), 1)
	require.Len(t, f.ReturnParameters.List(), 1)

	a := f.Parameters.List()[0]
	assert.Equal(t, ast.VariableScopeParameter, a.Scope)
	assert.Equal(t, ast.VariableScopeReturnParameter, f.ReturnParameters.List()[0].Scope)

	require.Len(t, f.Body.Statements, 1)
	returnStatement := f.Body.Statements[0].(*ast.Return)
	binary := returnStatement.Expression.(*ast.BinaryOperation)
	assert.Equal(t, ast.OperationAdd, binary.Operator)

	left := binary.Left.(*ast.Identifier)
	require.Len(t, left.Candidates, 1)
	assert.Same(t, a, left.Candidates[0])
	assert.Equal(t,
		ast.Position{Offset: 87, Line: 4, Column: 15},
		left.StartPosition(),
	)

	right := binary.Right.(*ast.Identifier)
	require.Len(t, right.Candidates, 1)
	assert.Same(t, x, right.Candidates[0])

	// the imported tree is bound, so it can be checked as is

	_, err = CheckWithOptions(t, sourceUnit, CheckOptions{
		Location:    location,
		SkipBinding: true,
	})
	require.NoError(t, err)
}

func TestDecodeReferences(t *testing.T) {

	t.Parallel()

	function := func(id int, parameterType string) object {
		return node("FunctionDefinition", id, "0:0:0", object{
			"name":       "g",
			"kind":       "function",
			"visibility": "internal",
			"parameters": node("ParameterList", id+1, "0:0:0", object{
				"parameters": []any{
					node("VariableDeclaration", id+2, "0:0:0", object{
						"name":     "v",
						"typeName": elementaryTypeName(parameterType, id+3, "0:0:0"),
					}),
				},
			}),
			"body": nil,
		})
	}

	contract := func(statements ...any) object {
		return node("SourceUnit", 1, "0:0:0", object{
			"nodes": []any{
				node("ContractDefinition", 2, "0:0:0", object{
					"name":         "C",
					"contractKind": "contract",
					"nodes": []any{
						function(10, "uint"),
						function(20, "bool"),
						node("FunctionDefinition", 30, "0:0:0", object{
							"name":       "test",
							"kind":       "function",
							"parameters": node("ParameterList", 31, "0:0:0", object{"parameters": []any{}}),
							"body": node("Block", 32, "0:0:0", object{
								"statements": append([]any{}, statements...),
							}),
						}),
					},
				}),
			},
		})
	}

	expressionStatement := func(id int, identifier object) object {
		return node("ExpressionStatement", id, "0:0:0", object{
			"expression": identifier,
		})
	}

	t.Run("overloaded", func(t *testing.T) {
		t.Parallel()

		sourceUnit, err := Decode(encode(t, contract(
			expressionStatement(40, node("Identifier", 41, "0:0:0", object{
				"name":                   "g",
				"referencedDeclaration":  10,
				"overloadedDeclarations": []any{10, 20},
			})),
		)))
		require.NoError(t, err)

		functions := sourceUnit.ContractDefinitions()[0].Functions()
		require.Len(t, functions, 3)

		test := functions[2]
		identifier := test.Body.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.Identifier)
		require.Len(t, identifier.Candidates, 2)
		assert.Same(t, functions[0], identifier.Candidates[0])
		assert.Same(t, functions[1], identifier.Candidates[1])
	})

	t.Run("built-in", func(t *testing.T) {
		t.Parallel()

		sourceUnit, err := Decode(encode(t, contract(
			expressionStatement(40, node("Identifier", 41, "0:0:0", object{
				"name":                  "msg",
				"referencedDeclaration": -15,
			})),
		)))
		require.NoError(t, err)

		test := sourceUnit.ContractDefinitions()[0].Functions()[2]
		identifier := test.Body.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.Identifier)
		assert.Empty(t, identifier.Candidates)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := Decode(encode(t, contract(
			expressionStatement(40, node("Identifier", 41, "0:0:0", object{
				"name":                  "h",
				"referencedDeclaration": 99,
			})),
		)))
		require.Error(t, err)
		assert.ErrorContains(t, err, "unknown declaration 99 referenced by `h`")
	})

	t.Run("duplicate id", func(t *testing.T) {
		t.Parallel()

		sourceUnit := contract()
		nodes := sourceUnit["nodes"].([]any)
		contractNode := nodes[0].(object)
		contractNode["nodes"] = append(contractNode["nodes"].([]any), function(10, "uint"))

		_, err := Decode(encode(t, sourceUnit))
		require.Error(t, err)
		assert.ErrorContains(t, err, "duplicate node id: 12")
	})
}

func TestDecodeStatementForms(t *testing.T) {

	t.Parallel()

	tree := node("SourceUnit", 1, "0:0:0", object{
		"nodes": []any{
			node("PragmaDirective", 2, "0:0:0", object{
				"literals": []any{"abicoder", "v1"},
			}),
			node("FunctionDefinition", 3, "0:0:0", object{
				"name":       "f",
				"kind":       "freeFunction",
				"parameters": node("ParameterList", 4, "0:0:0", object{"parameters": []any{}}),
				"body": node("Block", 5, "0:0:0", object{
					"statements": []any{
						node("UncheckedBlock", 6, "0:0:0", object{
							"statements": []any{},
						}),
						node("DoWhileStatement", 7, "0:0:0", object{
							"condition": node("Literal", 8, "0:0:0", object{
								"kind":  "bool",
								"value": "false",
							}),
							"body": node("Block", 9, "0:0:0", object{
								"statements": []any{},
							}),
						}),
						node("VariableDeclarationStatement", 10, "0:0:0", object{
							"declarations": []any{
								nil,
								node("VariableDeclaration", 11, "0:0:0", object{
									"name":     "y",
									"typeName": elementaryTypeName("address payable", 12, "0:0:0"),
								}),
							},
							"initialValue": nil,
						}),
						node("ExpressionStatement", 13, "0:0:0", object{
							"expression": node("Assignment", 14, "0:0:0", object{
								"operator": "<<=",
								"leftHandSide": node("Identifier", 15, "0:0:0", object{
									"name": "z",
								}),
								"rightHandSide": node("Literal", 16, "0:0:0", object{
									"kind":            "number",
									"value":           "1",
									"subdenomination": "days",
								}),
							}),
						}),
					},
				}),
			}),
		},
	})

	sourceUnit, err := Decode(encode(t, tree))
	require.NoError(t, err)

	AssertEqualWithDiff(
		t,
		[]*ast.PragmaDirective{
			{Literals: []string{"abicoder", "v1"}},
		},
		sourceUnit.Pragmas,
	)
	assert.Equal(t, "abicoder", sourceUnit.Pragmas[0].Name())
	assert.Equal(t, "v1", sourceUnit.Pragmas[0].Value())

	require.Len(t, sourceUnit.Nodes, 1)
	function := sourceUnit.Nodes[0].(*ast.FunctionDefinition)
	assert.Equal(t, ast.FunctionKindFree, function.Kind)

	statements := function.Body.Statements
	require.Len(t, statements, 4)

	assert.True(t, statements[0].(*ast.Block).Unchecked)
	assert.True(t, statements[1].(*ast.WhileStatement).IsDoWhile)

	declaration := statements[2].(*ast.VariableDeclarationStatement)
	require.Len(t, declaration.Declarations, 2)
	assert.Nil(t, declaration.Declarations[0])
	assert.Equal(t, ast.VariableScopeLocal, declaration.Declarations[1].Scope)
	AssertEqualWithDiff(
		t,
		&ast.ElementaryTypeName{
			Name:            "address",
			StateMutability: ast.StateMutabilityPayable,
		},
		declaration.Declarations[1].TypeName,
	)

	assignment := statements[3].(*ast.ExpressionStatement).Expression.(*ast.Assignment)
	assert.Equal(t, ast.OperationShiftLeft, assignment.Operator)
	assert.Equal(t, "days", assignment.RightHandSide.(*ast.Literal).SubDenomination)

	// without source code, positions only carry offsets
	assert.Equal(t, ast.Position{}, function.StartPosition())
}

func TestDecodeInvalid(t *testing.T) {

	t.Parallel()

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := Decode([]byte(`{"nodeType":`))
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to decode JSON")
	})

	t.Run("not a source unit", func(t *testing.T) {
		t.Parallel()

		_, err := Decode(encode(t, node("Block", 1, "0:0:0", object{})))
		require.Error(t, err)
		assert.ErrorContains(t, err, "expected source unit, got Block")
	})

	t.Run("invalid node type", func(t *testing.T) {
		t.Parallel()

		_, err := Decode(encode(t, node("SourceUnit", 1, "0:0:0", object{
			"nodes": []any{
				node("ImportDirective", 2, "0:0:0", object{}),
			},
		})))
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid node type: ImportDirective")
		assert.ErrorContains(t, err, "(at .nodes[0])")
	})

	t.Run("invalid contract member", func(t *testing.T) {
		t.Parallel()

		_, err := Decode(encode(t, node("SourceUnit", 1, "0:0:0", object{
			"nodes": []any{
				node("ContractDefinition", 2, "0:0:0", object{
					"name":         "C",
					"contractKind": "contract",
					"nodes": []any{
						node("ErrorDefinition", 3, "0:0:0", object{}),
					},
				}),
			},
		})))
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid node type: ErrorDefinition")
		assert.ErrorContains(t, err, "(at .nodes[0].nodes[0])")
	})

	t.Run("invalid source range", func(t *testing.T) {
		t.Parallel()

		_, err := Decode(encode(t, node("SourceUnit", 1, "0:0", object{
			"nodes": []any{},
		})))
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid source range: 0:0")
	})

	t.Run("invalid operator", func(t *testing.T) {
		t.Parallel()

		_, err := Decode(encode(t, node("SourceUnit", 1, "0:0:0", object{
			"nodes": []any{
				node("VariableDeclaration", 2, "0:0:0", object{
					"name":       "c",
					"mutability": "constant",
					"typeName":   elementaryTypeName("uint", 3, "0:0:0"),
					"value": node("BinaryOperation", 4, "0:0:0", object{
						"operator":        "=>",
						"leftExpression":  node("Literal", 5, "0:0:0", object{"kind": "number", "value": "1"}),
						"rightExpression": node("Literal", 6, "0:0:0", object{"kind": "number", "value": "2"}),
					}),
				}),
			},
		})))
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid binary operator: =>")
	})
}
