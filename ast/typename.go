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

// ElementaryTypeName, e.g. `uint256`, `address payable`, `bytes32`.
// StateMutability is only meaningful for `address`.

type ElementaryTypeName struct {
	Name            string
	StateMutability StateMutability
	Range
}

var _ TypeName = &ElementaryTypeName{}

func (*ElementaryTypeName) isTypeName() {}

func (*ElementaryTypeName) ElementType() ElementType {
	return ElementTypeElementaryTypeName
}

func (*ElementaryTypeName) Walk(_ func(Element)) {
	// NO-OP
}

// UserDefinedTypeName refers to a contract, struct, or enum

type UserDefinedTypeName struct {
	Path *IdentifierPath
	Range
}

var _ TypeName = &UserDefinedTypeName{}

func (*UserDefinedTypeName) isTypeName() {}

func (*UserDefinedTypeName) ElementType() ElementType {
	return ElementTypeUserDefinedTypeName
}

func (t *UserDefinedTypeName) Walk(walkChild func(Element)) {
	walkChild(t.Path)
}

// FunctionTypeName

type FunctionTypeName struct {
	Parameters       *ParameterList
	ReturnParameters *ParameterList
	Visibility       Visibility
	StateMutability  StateMutability
	Range
}

var _ TypeName = &FunctionTypeName{}

func (*FunctionTypeName) isTypeName() {}

func (*FunctionTypeName) ElementType() ElementType {
	return ElementTypeFunctionTypeName
}

func (t *FunctionTypeName) Walk(walkChild func(Element)) {
	if t.Parameters != nil {
		walkChild(t.Parameters)
	}
	if t.ReturnParameters != nil {
		walkChild(t.ReturnParameters)
	}
}

// Mapping

type Mapping struct {
	KeyType   TypeName
	ValueType TypeName
	Range
}

var _ TypeName = &Mapping{}

func (*Mapping) isTypeName() {}

func (*Mapping) ElementType() ElementType {
	return ElementTypeMapping
}

func (t *Mapping) Walk(walkChild func(Element)) {
	walkChild(t.KeyType)
	walkChild(t.ValueType)
}

// ArrayTypeName. Length is nil for dynamically-sized arrays

type ArrayTypeName struct {
	BaseType TypeName
	Length   Expression
	Range
}

var _ TypeName = &ArrayTypeName{}

func (*ArrayTypeName) isTypeName() {}

func (*ArrayTypeName) ElementType() ElementType {
	return ElementTypeArrayTypeName
}

func (t *ArrayTypeName) Walk(walkChild func(Element)) {
	walkChild(t.BaseType)
	if t.Length != nil {
		walkChild(t.Length)
	}
}
