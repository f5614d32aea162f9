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
	"strconv"
	"strings"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	"github.com/solpp-lang/solpp/errors"
)

// ParseElementaryTypeName returns the type denoted by an elementary type name.
// Reference types are returned without data location.
// If the name is invalid, the result is nil and a reason.
func ParseElementaryTypeName(name string, mutability ast.StateMutability) (Type, string) {
	if mutability == ast.StateMutabilityPayable && name != "address" {
		return nil, "only address can be payable"
	}

	if isElementaryTypeKeyword(name) {
		return unsizedElementaryType(name, common.DataLocationUnspecified, mutability), ""
	}

	switch {
	case strings.HasPrefix(name, "uint"):
		bits, ok := parseTypeSize(name[len("uint"):], 8, 256, 8)
		if ok {
			return NewIntegerType(bits, false), ""
		}

	case strings.HasPrefix(name, "int"):
		bits, ok := parseTypeSize(name[len("int"):], 8, 256, 8)
		if ok {
			return NewIntegerType(bits, true), ""
		}

	case strings.HasPrefix(name, "bytes"):
		size, ok := parseTypeSize(name[len("bytes"):], 1, 32, 1)
		if ok {
			return NewFixedBytesType(size), ""
		}

	case strings.HasPrefix(name, "fixed"),
		strings.HasPrefix(name, "ufixed"):
		return nil, "fixed point types are not supported"
	}

	return nil, fmt.Sprintf("unknown elementary type `%s`", name)
}

func parseTypeSize(text string, min, max, step uint) (uint, bool) {
	if text == "" || text[0] == '0' {
		return 0, false
	}
	size, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return 0, false
	}
	result := uint(size)
	if result < min || result > max || result%step != 0 {
		return 0, false
	}
	return result, true
}

// ConvertType returns the type denoted by the type name.
// Reference types are returned without data location,
// except for mappings, which always live in storage.
func (checker *Checker) ConvertType(typeName ast.TypeName) Type {
	if ty, ok := checker.Elaboration.TypeNameType(typeName); ok {
		return ty
	}

	ty := checker.convertType(typeName)
	checker.Elaboration.SetTypeNameType(typeName, ty)
	return ty
}

func (checker *Checker) convertType(typeName ast.TypeName) Type {
	switch typeName := typeName.(type) {
	case *ast.ElementaryTypeName:
		return checker.convertElementaryTypeName(typeName)
	case *ast.UserDefinedTypeName:
		return checker.convertUserDefinedTypeName(typeName)
	case *ast.FunctionTypeName:
		return checker.convertFunctionTypeName(typeName)
	case *ast.Mapping:
		return checker.convertMapping(typeName)
	case *ast.ArrayTypeName:
		return checker.convertArrayTypeName(typeName)
	}

	panic(errors.NewUnreachableError())
}

func (checker *Checker) convertElementaryTypeName(typeName *ast.ElementaryTypeName) Type {
	ty, reason := ParseElementaryTypeName(typeName.Name, typeName.StateMutability)
	if ty == nil {
		checker.report(
			&InvalidTypeNameError{
				Reason: reason,
				Range:  typeName.Range,
			},
		)
		return InvalidType
	}
	return ty
}

func (checker *Checker) convertUserDefinedTypeName(typeName *ast.UserDefinedTypeName) Type {
	path := typeName.Path

	switch declaration := path.Declaration.(type) {
	case *ast.ContractDefinition:
		return &ContractType{Declaration: declaration}

	case *ast.StructDefinition:
		return &StructType{Info: checker.structInfo(declaration)}

	case *ast.EnumDefinition:
		return &EnumType{Declaration: declaration}

	case nil:
		checker.report(
			&NotDeclaredError{
				Name:  path.String(),
				Range: path.Range,
			},
		)
		return InvalidType
	}

	checker.report(
		&InvalidTypeNameError{
			Reason: fmt.Sprintf("`%s` has to refer to a struct, enum, or contract", path),
			Range:  path.Range,
		},
	)
	return InvalidType
}

func (checker *Checker) convertFunctionTypeName(typeName *ast.FunctionTypeName) Type {
	kind := FunctionKindInternal

	switch typeName.Visibility {
	case ast.VisibilityDefault, ast.VisibilityInternal:
		// NO-OP
	case ast.VisibilityExternal:
		kind = FunctionKindExternal
	default:
		checker.report(
			&InvalidFunctionTypeError{
				Reason: "function types can only be internal or external",
				Range:  typeName.Range,
			},
		)
	}

	if typeName.StateMutability == ast.StateMutabilityPayable &&
		kind != FunctionKindExternal {

		checker.report(
			&InvalidFunctionTypeError{
				Reason: "only external function types can be payable",
				Range:  typeName.Range,
			},
		)
	}

	convertParameters := func(parameters *ast.ParameterList) ([]Type, []string) {
		types := make([]Type, 0, parameters.Len())
		names := make([]string, 0, parameters.Len())
		for _, parameter := range parameters.List() {
			parameterType := checker.variableType(parameter)

			if kind == FunctionKindExternal &&
				!parameterType.IsInvalidType() &&
				!IsABIEncodable(parameterType, false, checker.useABICoderV2()) {

				checker.report(
					&InvalidFunctionTypeError{
						Reason: fmt.Sprintf("type `%s` cannot be used in an external function type", parameterType),
						Range:  parameter.Range,
					},
				)
			}

			types = append(types, parameterType)
			names = append(names, parameter.Name)
		}
		return types, names
	}

	parameters, parameterNames := convertParameters(typeName.Parameters)
	returnParameters, returnParameterNames := convertParameters(typeName.ReturnParameters)

	return &FunctionType{
		Kind:                 kind,
		Parameters:           parameters,
		ParameterNames:       parameterNames,
		ReturnParameters:     returnParameters,
		ReturnParameterNames: returnParameterNames,
		StateMutability:      typeName.StateMutability,
	}
}

func (checker *Checker) convertMapping(typeName *ast.Mapping) Type {
	keyType := checker.ConvertType(typeName.KeyType)

	switch ty := keyType.(type) {
	case *IntegerType, *AddressType, *FixedBytesType, *EnumType, *ContractType:
		// valid key

	case *SimpleType:
		if !ty.Comparable && !ty.Invalid {
			checker.reportInvalidMappingKey(typeName.KeyType)
		}

	case *ArrayType:
		if !ty.IsByteArrayOrString() {
			checker.reportInvalidMappingKey(typeName.KeyType)
		}
		keyType = ty.WithLocation(common.DataLocationMemory, false)

	default:
		checker.reportInvalidMappingKey(typeName.KeyType)
		keyType = InvalidType
	}

	valueType := checker.ConvertType(typeName.ValueType)

	return &MappingType{
		Key:   keyType,
		Value: withLocationIfReference(valueType, common.DataLocationStorage, false),
	}
}

func (checker *Checker) reportInvalidMappingKey(keyTypeName ast.TypeName) {
	checker.report(
		&InvalidTypeNameError{
			Reason: "only elementary types, contract types, or enums are allowed as mapping keys",
			Range:  ast.NewRangeFromPositioned(keyTypeName),
		},
	)
}

func (checker *Checker) convertArrayTypeName(typeName *ast.ArrayTypeName) Type {
	baseType := checker.ConvertType(typeName.BaseType)
	if baseType.IsInvalidType() {
		return InvalidType
	}

	if typeName.Length == nil {
		return NewDynamicArrayType(baseType, common.DataLocationUnspecified)
	}

	lengthType := checker.VisitExpression(typeName.Length, nil)
	if lengthType.IsInvalidType() {
		return InvalidType
	}

	length, ok := lengthType.(*RationalNumberType)
	if !ok || length.IsFractional() || !checker.isPure(typeName.Length) {
		checker.report(
			&InvalidTypeNameError{
				Reason: "invalid array length, expected integer literal or constant expression",
				Range:  ast.NewRangeFromPositioned(typeName.Length),
			},
		)
		return InvalidType
	}

	switch length.Value.Sign() {
	case 0:
		checker.report(
			&InvalidTypeNameError{
				Reason: "array with zero length specified",
				Range:  ast.NewRangeFromPositioned(typeName.Length),
			},
		)
		return InvalidType
	case -1:
		checker.report(
			&InvalidTypeNameError{
				Reason: "array with negative length specified",
				Range:  ast.NewRangeFromPositioned(typeName.Length),
			},
		)
		return InvalidType
	}

	return NewFixedArrayType(baseType, length.Integer(), common.DataLocationUnspecified)
}

// variableType returns the type of the variable with its data location applied
func (checker *Checker) variableType(declaration *ast.VariableDeclaration) Type {
	if ty, ok := checker.Elaboration.VariableDeclarationType(declaration); ok {
		return ty
	}

	// The type of a `var` declaration is inferred from its value
	if declaration.TypeName == nil {
		return InvalidType
	}

	ty := checker.ConvertType(declaration.TypeName)
	ty = checker.applyDataLocation(declaration, ty, checker.declaringFunction(declaration))
	checker.Elaboration.SetVariableDeclarationType(declaration, ty)
	return ty
}

// declaringFunction returns the function the parameter belongs to,
// if the current function declares it
func (checker *Checker) declaringFunction(declaration *ast.VariableDeclaration) *ast.FunctionDefinition {
	function := checker.currentFunction()
	if function == nil {
		return nil
	}
	for _, parameter := range function.Parameters.List() {
		if parameter == declaration {
			return function
		}
	}
	for _, parameter := range function.ReturnParameters.List() {
		if parameter == declaration {
			return function
		}
	}
	return nil
}

// applyDataLocation locates a reference type according to the
// declared data location and the scope of the variable
func (checker *Checker) applyDataLocation(
	declaration *ast.VariableDeclaration,
	ty Type,
	function *ast.FunctionDefinition,
) Type {
	location := declaration.Location

	referenceType, ok := ty.(ReferenceType)
	if !ok {
		if location != common.DataLocationUnspecified && !ty.IsInvalidType() {
			checker.reportInvalidDataLocation(
				declaration,
				"data location can only be specified for array, struct, or mapping types",
			)
		}
		return ty
	}

	if _, ok := ty.(*MappingType); ok {
		switch declaration.Scope {
		case ast.VariableScopeState, ast.VariableScopeStructMember:
			// NO-OP
		default:
			if location != common.DataLocationStorage {
				checker.reportInvalidDataLocation(
					declaration,
					"mappings can only have storage location",
				)
			}
		}
		return ty
	}

	switch declaration.Scope {
	case ast.VariableScopeStructMember:
		return ty

	case ast.VariableScopeState, ast.VariableScopeFileLevel:
		if location != common.DataLocationUnspecified {
			checker.reportInvalidDataLocation(
				declaration,
				"data location cannot be specified for state variables",
			)
		}
		return referenceType.WithLocation(common.DataLocationStorage, false)

	case ast.VariableScopeEventParameter, ast.VariableScopeMessageParameter:
		if location != common.DataLocationUnspecified {
			checker.reportInvalidDataLocation(
				declaration,
				"data location cannot be specified for event or message parameters",
			)
		}
		return referenceType.WithLocation(common.DataLocationMemory, false)

	case ast.VariableScopeFunctionTypeParameter, ast.VariableScopeCatchParameter:
		if location == common.DataLocationUnspecified {
			location = common.DataLocationMemory
		}
		return checker.locate(declaration, referenceType, location)

	case ast.VariableScopeParameter, ast.VariableScopeReturnParameter:
		if location == common.DataLocationUnspecified {
			checker.reportInvalidDataLocation(
				declaration,
				"data location must be memory, calldata, or storage for parameter, but none was given",
			)
			location = common.DataLocationMemory
		}
		if location == common.DataLocationStorage && function != nil {
			contract := checker.declaringContract(function)
			inLibrary := contract != nil && contract.IsLibrary()
			visibility := function.EffectiveVisibility()
			if !inLibrary &&
				visibility != ast.VisibilityInternal &&
				visibility != ast.VisibilityPrivate {

				checker.reportInvalidDataLocation(
					declaration,
					"storage parameters are only allowed for internal or library functions",
				)
				location = common.DataLocationMemory
			}
		}
		return checker.locate(declaration, referenceType, location)

	default:
		if location == common.DataLocationUnspecified {
			checker.reportInvalidDataLocation(
				declaration,
				"data location must be storage, memory, or calldata for variable, but none was given",
			)
			location = common.DataLocationMemory
		}
		return checker.locate(declaration, referenceType, location)
	}
}

func (checker *Checker) locate(
	declaration *ast.VariableDeclaration,
	referenceType ReferenceType,
	location common.DataLocation,
) Type {
	if location != common.DataLocationStorage && ContainsMapping(referenceType) {
		checker.reportInvalidDataLocation(
			declaration,
			fmt.Sprintf("type `%s` is only valid in storage", referenceType),
		)
		return InvalidType
	}
	return referenceType.WithLocation(location, location == common.DataLocationStorage)
}

func (checker *Checker) reportInvalidDataLocation(declaration *ast.VariableDeclaration, reason string) {
	checker.report(
		&InvalidDataLocationError{
			Name:   declaration.Name,
			Reason: reason,
			Range:  declaration.Range,
		},
	)
}

// functionType returns the internal function type of the function definition
func (checker *Checker) functionType(function *ast.FunctionDefinition) *FunctionType {
	if functionType := checker.Elaboration.FunctionType(function); functionType != nil {
		return functionType
	}

	convertParameters := func(parameters *ast.ParameterList) ([]Type, []string) {
		types := make([]Type, 0, parameters.Len())
		names := make([]string, 0, parameters.Len())
		for _, parameter := range parameters.List() {
			parameterType, ok := checker.Elaboration.VariableDeclarationType(parameter)
			if !ok {
				parameterType = checker.ConvertType(parameter.TypeName)
				parameterType = checker.applyDataLocation(parameter, parameterType, function)
				checker.Elaboration.SetVariableDeclarationType(parameter, parameterType)
			}
			types = append(types, parameterType)
			names = append(names, parameter.Name)
		}
		return types, names
	}

	parameters, parameterNames := convertParameters(function.Parameters)
	returnParameters, returnParameterNames := convertParameters(function.ReturnParameters)

	functionType := &FunctionType{
		Kind:                 FunctionKindInternal,
		Parameters:           parameters,
		ParameterNames:       parameterNames,
		ReturnParameters:     returnParameters,
		ReturnParameterNames: returnParameterNames,
		StateMutability:      function.StateMutability,
		Declaration:          function,
	}
	checker.Elaboration.SetFunctionType(function, functionType)
	return functionType
}

// externalFunctionType returns the type of the function as called through a message,
// or nil if it is not externally visible or not externally callable
func (checker *Checker) externalFunctionType(function *ast.FunctionDefinition) *FunctionType {
	if !function.EffectiveVisibility().IsExternallyVisible() ||
		function.Kind != ast.FunctionKindFunction {

		return nil
	}
	contract := checker.declaringContract(function)
	inLibrary := contract != nil && contract.IsLibrary()
	return checker.functionType(function).AsExternallyCallable(inLibrary)
}

// modifierType returns the type of the modifier definition
func (checker *Checker) modifierType(modifier *ast.ModifierDefinition) *ModifierType {
	if modifierType := checker.Elaboration.ModifierType(modifier); modifierType != nil {
		return modifierType
	}

	parameters := make([]Type, 0, modifier.Parameters.Len())
	for _, parameter := range modifier.Parameters.List() {
		parameters = append(parameters, checker.variableType(parameter))
	}

	modifierType := &ModifierType{
		Declaration: modifier,
		Parameters:  parameters,
	}
	checker.Elaboration.SetModifierType(modifier, modifierType)
	return modifierType
}

// eventType returns the function type of an event or message definition
func (checker *Checker) eventType(declaration ast.Declaration) *FunctionType {
	if functionType := checker.Elaboration.EventType(declaration); functionType != nil {
		return functionType
	}

	var parameterList *ast.ParameterList
	kind := FunctionKindEvent
	mutability := ast.StateMutabilityNonPayable

	switch declaration := declaration.(type) {
	case *ast.EventDefinition:
		parameterList = declaration.Parameters
	case *ast.MessageDefinition:
		parameterList = declaration.Parameters
		kind = FunctionKindMessage
		if declaration.Payable {
			mutability = ast.StateMutabilityPayable
		}
	default:
		panic(errors.NewUnreachableError())
	}

	parameters := make([]Type, 0, parameterList.Len())
	names := make([]string, 0, parameterList.Len())
	for _, parameter := range parameterList.List() {
		parameters = append(parameters, checker.variableType(parameter))
		names = append(names, parameter.Name)
	}

	functionType := &FunctionType{
		Kind:            kind,
		Parameters:      parameters,
		ParameterNames:  names,
		StateMutability: mutability,
		Declaration:     declaration,
	}
	checker.Elaboration.SetEventType(declaration, functionType)
	return functionType
}

// structInfo returns the members of the struct definition.
// The info is registered before the members are converted,
// so members may refer to the struct itself.
func (checker *Checker) structInfo(declaration *ast.StructDefinition) *StructInfo {
	if info := checker.Elaboration.StructInfo(declaration); info != nil {
		return info
	}

	info := &StructInfo{
		Declaration: declaration,
	}
	checker.Elaboration.SetStructInfo(declaration, info)

	for _, member := range declaration.Members {
		info.Members = append(
			info.Members,
			&StructMember{
				Name:        member.Name,
				Type:        checker.variableType(member),
				Declaration: member,
			},
		)
	}

	return info
}

// declarationValueType returns the type of an identifier referring to the declaration
func (checker *Checker) declarationValueType(declaration ast.Declaration) Type {
	switch declaration := declaration.(type) {
	case *ast.VariableDeclaration:
		return checker.variableType(declaration)

	case *ast.FunctionDefinition:
		return checker.functionType(declaration)

	case *ast.ModifierDefinition:
		return checker.modifierType(declaration)

	case *ast.EventDefinition, *ast.MessageDefinition:
		return checker.eventType(declaration)

	case *ast.ContractDefinition:
		return &TypeType{
			Actual: &ContractType{Declaration: declaration},
		}

	case *ast.StructDefinition:
		return &TypeType{
			Actual: &StructType{
				Info:     checker.structInfo(declaration),
				Location: common.DataLocationStorage,
				Pointer:  true,
			},
		}

	case *ast.EnumDefinition:
		return &TypeType{
			Actual: &EnumType{Declaration: declaration},
		}
	}

	return InvalidType
}

// getterFunctionType returns the type of the accessor function of a public state variable,
// or nil if the variable's type has no accessor.
// Mapping keys and array indices become parameters,
// and structs return their members, except mappings and arrays.
func (checker *Checker) getterFunctionType(variable *ast.VariableDeclaration) *FunctionType {
	var parameters []Type

	ty := checker.variableType(variable)

unwrap:
	for {
		switch current := ty.(type) {
		case *MappingType:
			parameters = append(
				parameters,
				withLocationIfReference(current.Key, common.DataLocationMemory, false),
			)
			ty = current.Value

		case *ArrayType:
			if current.IsByteArrayOrString() {
				break unwrap
			}
			parameters = append(parameters, UInt256Type)
			ty = current.Base

		default:
			break unwrap
		}
	}

	var returnParameters []Type

	if structType, ok := ty.(*StructType); ok {
		for _, member := range structType.Info.Members {
			switch memberType := member.Type.(type) {
			case *MappingType:
				continue
			case *ArrayType:
				if !memberType.IsByteArrayOrString() {
					continue
				}
			}
			returnParameters = append(
				returnParameters,
				withLocationIfReference(member.Type, common.DataLocationMemory, false),
			)
		}
		if len(returnParameters) == 0 {
			return nil
		}
	} else {
		returnParameters = []Type{
			withLocationIfReference(ty, common.DataLocationMemory, false),
		}
	}

	getter := &FunctionType{
		Kind:             FunctionKindInternal,
		Parameters:       parameters,
		ReturnParameters: returnParameters,
		StateMutability:  ast.StateMutabilityView,
		Declaration:      variable,
	}
	return getter.AsExternallyCallable(false)
}
