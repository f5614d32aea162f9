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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/solpp-lang/solpp/ast"
)

func newTestContracts(count int) []*ast.ContractDefinition {
	contracts := make([]*ast.ContractDefinition, count)
	for i := range contracts {
		contracts[i] = &ast.ContractDefinition{
			Name: fmt.Sprintf("C%d", i),
		}
	}
	return contracts
}

type dependencyGraph map[*ast.ContractDefinition][]*ast.ContractDefinition

func (g dependencyGraph) dependencies(contract *ast.ContractDefinition) []*ast.ContractDefinition {
	return g[contract]
}

func TestHasCyclicDependency(t *testing.T) {

	t.Parallel()

	t.Run("no dependencies", func(t *testing.T) {
		t.Parallel()

		contracts := newTestContracts(1)
		graph := dependencyGraph{}

		assert.False(t, HasCyclicDependency(contracts[0], graph.dependencies))
	})

	t.Run("self", func(t *testing.T) {
		t.Parallel()

		contracts := newTestContracts(1)
		a := contracts[0]
		graph := dependencyGraph{
			a: {a},
		}

		assert.True(t, HasCyclicDependency(a, graph.dependencies))
	})

	t.Run("indirect", func(t *testing.T) {
		t.Parallel()

		contracts := newTestContracts(3)
		a, b, c := contracts[0], contracts[1], contracts[2]
		graph := dependencyGraph{
			a: {b},
			b: {c},
			c: {a},
		}

		assert.True(t, HasCyclicDependency(a, graph.dependencies))
		assert.True(t, HasCyclicDependency(b, graph.dependencies))
		assert.True(t, HasCyclicDependency(c, graph.dependencies))
	})

	t.Run("diamond", func(t *testing.T) {
		t.Parallel()

		contracts := newTestContracts(4)
		a, b, c, d := contracts[0], contracts[1], contracts[2], contracts[3]
		graph := dependencyGraph{
			d: {b, c},
			b: {a},
			c: {a},
		}

		for _, contract := range contracts {
			assert.False(t, HasCyclicDependency(contract, graph.dependencies), contract.Name)
		}
	})

	t.Run("cycle not through contract", func(t *testing.T) {
		t.Parallel()

		contracts := newTestContracts(3)
		a, b, c := contracts[0], contracts[1], contracts[2]
		graph := dependencyGraph{
			a: {b},
			b: {c},
			c: {b},
		}

		assert.False(t, HasCyclicDependency(a, graph.dependencies))
		assert.True(t, HasCyclicDependency(b, graph.dependencies))
	})
}

func TestContractSet(t *testing.T) {

	t.Parallel()

	contracts := newTestContracts(3)
	set := NewContractSet()

	assert.True(t, set.Insert(contracts[0]))
	assert.True(t, set.Insert(contracts[2]))
	assert.False(t, set.Insert(contracts[0]))

	assert.True(t, set.Contains(contracts[0]))
	assert.False(t, set.Contains(contracts[1]))
	assert.True(t, set.Contains(contracts[2]))

	assert.Equal(t, 2, set.Len())
}

const propertyContractCount = 8

// edgeGraph builds a graph of propertyContractCount contracts from encoded edges.
// Each edge e goes from e / propertyContractCount to e % propertyContractCount.
func edgeGraph(contracts []*ast.ContractDefinition, edges []int, forwardOnly bool) dependencyGraph {
	graph := dependencyGraph{}
	for _, edge := range edges {
		from := edge / propertyContractCount
		to := edge % propertyContractCount
		if forwardOnly && from <= to {
			continue
		}
		graph[contracts[from]] = append(graph[contracts[from]], contracts[to])
	}
	return graph
}

func TestHasCyclicDependencyProperties(t *testing.T) {

	t.Parallel()

	edgesGen := gen.SliceOf(gen.IntRange(0, propertyContractCount*propertyContractCount-1))

	properties := gopter.NewProperties(nil)

	properties.Property("graphs with edges to lower indices only are acyclic", prop.ForAll(
		func(edges []int) bool {
			contracts := newTestContracts(propertyContractCount)
			graph := edgeGraph(contracts, edges, true)
			for _, contract := range contracts {
				if HasCyclicDependency(contract, graph.dependencies) {
					return false
				}
			}
			return true
		},
		edgesGen,
	))

	properties.Property("a back edge closes a cycle", prop.ForAll(
		func(edges []int) bool {
			contracts := newTestContracts(propertyContractCount)
			graph := edgeGraph(contracts, edges, true)
			for from, dependencies := range graph {
				for _, to := range dependencies {
					graph[to] = append(graph[to], from)
					if !HasCyclicDependency(from, graph.dependencies) ||
						!HasCyclicDependency(to, graph.dependencies) {

						return false
					}
					return true
				}
			}
			return true
		},
		edgesGen,
	))

	properties.TestingRun(t)
}

func TestIsCyclicContract(t *testing.T) {

	t.Parallel()

	a := &ast.ContractDefinition{Name: "A"}
	b := &ast.ContractDefinition{Name: "B"}

	a.BaseContracts = []*ast.InheritanceSpecifier{
		{BaseName: &ast.IdentifierPath{Path: []string{"B"}, Declaration: b}},
	}

	assert.False(t, IsCyclicContract(a))
	assert.False(t, IsCyclicContract(b))

	b.BaseContracts = []*ast.InheritanceSpecifier{
		{BaseName: &ast.IdentifierPath{Path: []string{"A"}, Declaration: a}},
	}

	assert.True(t, IsCyclicContract(a))
	assert.True(t, IsCyclicContract(b))
}
