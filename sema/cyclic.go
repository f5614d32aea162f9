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
	"github.com/bits-and-blooms/bitset"

	"github.com/solpp-lang/solpp/ast"
)

// ContractDependencies returns the contracts a contract directly depends on
type ContractDependencies func(contract *ast.ContractDefinition) []*ast.ContractDefinition

// ContractSet is a set of contracts backed by a bit set.
// Contracts are numbered in the order they are first seen.
type ContractSet struct {
	indices map[*ast.ContractDefinition]uint
	members *bitset.BitSet
}

func NewContractSet() *ContractSet {
	return &ContractSet{
		indices: map[*ast.ContractDefinition]uint{},
		members: bitset.New(8),
	}
}

func (s *ContractSet) index(contract *ast.ContractDefinition) uint {
	index, ok := s.indices[contract]
	if !ok {
		index = uint(len(s.indices))
		s.indices[contract] = index
	}
	return index
}

// Insert adds the contract to the set
// and reports whether it was not yet in the set
func (s *ContractSet) Insert(contract *ast.ContractDefinition) bool {
	index := s.index(contract)
	if s.members.Test(index) {
		return false
	}
	s.members.Set(index)
	return true
}

func (s *ContractSet) Contains(contract *ast.ContractDefinition) bool {
	index, ok := s.indices[contract]
	return ok && s.members.Test(index)
}

func (s *ContractSet) Len() int {
	return int(s.members.Count())
}

// BaseContracts returns the contracts named in the inheritance specifiers of the contract
func BaseContracts(contract *ast.ContractDefinition) []*ast.ContractDefinition {
	var bases []*ast.ContractDefinition
	for _, specifier := range contract.BaseContracts {
		base := baseContractDefinition(specifier)
		if base != nil {
			bases = append(bases, base)
		}
	}
	return bases
}

// CreationDependencies returns the contracts whose code is needed to deploy the contract:
// its bases and the contracts it creates with `new`
func CreationDependencies(contract *ast.ContractDefinition) []*ast.ContractDefinition {
	dependencies := BaseContracts(contract)

	for _, member := range contract.Members {
		ast.Inspect(member, func(element ast.Element) bool {
			newExpression, ok := element.(*ast.NewExpression)
			if !ok {
				return true
			}
			typeName, ok := newExpression.TypeName.(*ast.UserDefinedTypeName)
			if !ok || typeName.Path == nil {
				return true
			}
			created, ok := typeName.Path.Declaration.(*ast.ContractDefinition)
			if ok {
				dependencies = append(dependencies, created)
			}
			return true
		})
	}

	return dependencies
}

// IsCyclicContract reports whether the contract inherits from itself
func IsCyclicContract(contract *ast.ContractDefinition) bool {
	return HasCyclicDependency(contract, BaseContracts)
}

// HasCyclicDependency reports whether the contract is reachable
// from itself through the dependency edges.
//
// Each query starts with a fresh seen set. Contracts reachable
// on several paths, like the bases of a diamond, are visited once.
func HasCyclicDependency(contract *ast.ContractDefinition, dependencies ContractDependencies) bool {
	return dependencyReaches(contract, contract, dependencies, NewContractSet())
}

func dependencyReaches(
	current *ast.ContractDefinition,
	target *ast.ContractDefinition,
	dependencies ContractDependencies,
	seen *ContractSet,
) bool {
	for _, dependency := range dependencies(current) {
		if dependency == target {
			return true
		}
		if !seen.Insert(dependency) {
			continue
		}
		if dependencyReaches(dependency, target, dependencies, seen) {
			return true
		}
	}
	return false
}
