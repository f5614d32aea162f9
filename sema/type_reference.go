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
	"math/big"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

// ArrayKind

type ArrayKind uint8

const (
	ArrayKindOrdinary ArrayKind = iota
	ArrayKindBytes
	ArrayKindString
)

// ArrayType is the type of fixed-size and dynamically-sized arrays,
// and of `bytes` and `string`

type ArrayType struct {
	Base Type
	// Length is nil for dynamically-sized arrays
	Length   *big.Int
	Kind     ArrayKind
	Location common.DataLocation
	Pointer  bool
}

var _ ReferenceType = &ArrayType{}

func NewDynamicArrayType(base Type, location common.DataLocation) *ArrayType {
	return &ArrayType{
		Base:     base,
		Location: location,
	}
}

func NewFixedArrayType(base Type, length *big.Int, location common.DataLocation) *ArrayType {
	return &ArrayType{
		Base:     base,
		Length:   length,
		Location: location,
	}
}

func NewBytesType(location common.DataLocation) *ArrayType {
	return &ArrayType{
		Base:     Bytes1Type,
		Kind:     ArrayKindBytes,
		Location: location,
	}
}

func NewStringType(location common.DataLocation) *ArrayType {
	return &ArrayType{
		Base:     Bytes1Type,
		Kind:     ArrayKindString,
		Location: location,
	}
}

var BytesMemoryType = NewBytesType(common.DataLocationMemory)
var StringMemoryType = NewStringType(common.DataLocationMemory)

func (*ArrayType) isType() {}

func (t *ArrayType) String() string {
	return t.typeName() + locationSuffix(t.Location, t.Pointer)
}

func (t *ArrayType) typeName() string {
	switch t.Kind {
	case ArrayKindBytes:
		return "bytes"
	case ArrayKindString:
		return "string"
	}
	base := t.Base.String()
	if baseArray, ok := t.Base.(*ArrayType); ok {
		base = baseArray.typeName()
	}
	if t.Length == nil {
		return fmt.Sprintf("%s[]", base)
	}
	return fmt.Sprintf("%s[%s]", base, t.Length)
}

func (t *ArrayType) Equal(other Type) bool {
	otherArray, ok := other.(*ArrayType)
	if !ok {
		return false
	}
	return t.sameShape(otherArray) &&
		t.Location == otherArray.Location &&
		t.Pointer == otherArray.Pointer
}

// sameShape compares array types, ignoring the data location
func (t *ArrayType) sameShape(other *ArrayType) bool {
	if t.Kind != other.Kind {
		return false
	}
	if (t.Length == nil) != (other.Length == nil) {
		return false
	}
	if t.Length != nil && t.Length.Cmp(other.Length) != 0 {
		return false
	}
	return equalIgnoringLocation(t.Base, other.Base)
}

func (t *ArrayType) IsInvalidType() bool {
	return t.Base.IsInvalidType()
}

func (t *ArrayType) DataLocation() common.DataLocation {
	return t.Location
}

func (t *ArrayType) IsPointer() bool {
	return t.Pointer
}

func (t *ArrayType) WithLocation(location common.DataLocation, isPointer bool) ReferenceType {
	copied := *t
	copied.Location = location
	copied.Pointer = isPointer && location == common.DataLocationStorage
	copied.Base = withLocationIfReference(t.Base, location, false)
	return &copied
}

func (t *ArrayType) IsDynamicallySized() bool {
	return t.Length == nil
}

func (t *ArrayType) IsByteArrayOrString() bool {
	return t.Kind != ArrayKindOrdinary
}

func (t *ArrayType) IsString() bool {
	return t.Kind == ArrayKindString
}

// ArraySliceType is the type of an index range access on a calldata array

type ArraySliceType struct {
	Array *ArrayType
}

var _ ReferenceType = &ArraySliceType{}

func (*ArraySliceType) isType() {}

func (t *ArraySliceType) String() string {
	return fmt.Sprintf("%s slice", t.Array)
}

func (t *ArraySliceType) Equal(other Type) bool {
	otherSlice, ok := other.(*ArraySliceType)
	return ok && t.Array.Equal(otherSlice.Array)
}

func (t *ArraySliceType) IsInvalidType() bool {
	return t.Array.IsInvalidType()
}

func (t *ArraySliceType) DataLocation() common.DataLocation {
	return t.Array.Location
}

func (t *ArraySliceType) IsPointer() bool {
	return false
}

func (t *ArraySliceType) WithLocation(location common.DataLocation, isPointer bool) ReferenceType {
	return &ArraySliceType{
		Array: t.Array.WithLocation(location, isPointer).(*ArrayType),
	}
}

// MappingType only exists in storage

type MappingType struct {
	Key   Type
	Value Type
}

var _ ReferenceType = &MappingType{}

func (*MappingType) isType() {}

func (t *MappingType) String() string {
	return fmt.Sprintf("mapping(%s => %s)", t.Key, t.Value)
}

func (t *MappingType) Equal(other Type) bool {
	otherMapping, ok := other.(*MappingType)
	return ok &&
		t.Key.Equal(otherMapping.Key) &&
		t.Value.Equal(otherMapping.Value)
}

func (t *MappingType) IsInvalidType() bool {
	return t.Key.IsInvalidType() || t.Value.IsInvalidType()
}

func (*MappingType) DataLocation() common.DataLocation {
	return common.DataLocationStorage
}

func (*MappingType) IsPointer() bool {
	return false
}

func (t *MappingType) WithLocation(_ common.DataLocation, _ bool) ReferenceType {
	return t
}

// StructMember

type StructMember struct {
	Name        string
	Type        Type
	Declaration *ast.VariableDeclaration
}

// StructInfo holds the members of a struct definition,
// shared by all located struct types of the definition

type StructInfo struct {
	Declaration *ast.StructDefinition
	Members     []*StructMember
}

func (i *StructInfo) Member(name string) *StructMember {
	for _, member := range i.Members {
		if member.Name == name {
			return member
		}
	}
	return nil
}

// StructType

type StructType struct {
	Info     *StructInfo
	Location common.DataLocation
	Pointer  bool
}

var _ ReferenceType = &StructType{}

func (*StructType) isType() {}

func (t *StructType) String() string {
	return fmt.Sprintf("struct %s%s", t.Info.Declaration.Name, locationSuffix(t.Location, t.Pointer))
}

func (t *StructType) Equal(other Type) bool {
	otherStruct, ok := other.(*StructType)
	return ok &&
		otherStruct.Info.Declaration == t.Info.Declaration &&
		otherStruct.Location == t.Location &&
		otherStruct.Pointer == t.Pointer
}

func (*StructType) IsInvalidType() bool {
	return false
}

func (t *StructType) DataLocation() common.DataLocation {
	return t.Location
}

func (t *StructType) IsPointer() bool {
	return t.Pointer
}

func (t *StructType) WithLocation(location common.DataLocation, isPointer bool) ReferenceType {
	return &StructType{
		Info:     t.Info,
		Location: location,
		Pointer:  isPointer && location == common.DataLocationStorage,
	}
}

func (t *StructType) Name() string {
	return t.Info.Declaration.Name
}

// MemberType returns the type of the named member, located like the struct
func (t *StructType) MemberType(name string) Type {
	member := t.Info.Member(name)
	if member == nil {
		return nil
	}
	return withLocationIfReference(member.Type, t.Location, false)
}

// MemberTypes returns the member types in declaration order,
// skipping members that cannot exist in memory unless the struct is in storage
func (t *StructType) MemberTypes() []Type {
	types := make([]Type, 0, len(t.Info.Members))
	for _, member := range t.Info.Members {
		if t.Location != common.DataLocationStorage && ContainsMapping(member.Type) {
			continue
		}
		types = append(types, withLocationIfReference(member.Type, t.Location, false))
	}
	return types
}

func withLocationIfReference(t Type, location common.DataLocation, isPointer bool) Type {
	referenceType, ok := t.(ReferenceType)
	if !ok {
		return t
	}
	return referenceType.WithLocation(location, isPointer)
}

func equalIgnoringLocation(a, b Type) bool {
	referenceA, ok := a.(ReferenceType)
	if !ok {
		return a.Equal(b)
	}
	referenceB, ok := b.(ReferenceType)
	if !ok {
		return false
	}
	return referenceA.WithLocation(common.DataLocationMemory, false).
		Equal(referenceB.WithLocation(common.DataLocationMemory, false))
}

// ContainsMapping reports whether a mapping is nested in the type
func ContainsMapping(t Type) bool {
	return containsMapping(t, map[*ast.StructDefinition]struct{}{})
}

func containsMapping(t Type, visited map[*ast.StructDefinition]struct{}) bool {
	switch t := t.(type) {
	case *MappingType:
		return true
	case *ArrayType:
		return containsMapping(t.Base, visited)
	case *StructType:
		declaration := t.Info.Declaration
		if _, ok := visited[declaration]; ok {
			return false
		}
		visited[declaration] = struct{}{}
		for _, member := range t.Info.Members {
			if containsMapping(member.Type, visited) {
				return true
			}
		}
	}
	return false
}

// IsRecursiveStruct reports whether a struct contains itself
func IsRecursiveStruct(t *StructType) bool {
	var visit func(t Type, path map[*ast.StructDefinition]struct{}) bool
	visit = func(t Type, path map[*ast.StructDefinition]struct{}) bool {
		switch t := t.(type) {
		case *ArrayType:
			return visit(t.Base, path)
		case *StructType:
			declaration := t.Info.Declaration
			if _, ok := path[declaration]; ok {
				return true
			}
			path[declaration] = struct{}{}
			defer delete(path, declaration)
			for _, member := range t.Info.Members {
				if visit(member.Type, path) {
					return true
				}
			}
		}
		return false
	}
	return visit(t, map[*ast.StructDefinition]struct{}{})
}
