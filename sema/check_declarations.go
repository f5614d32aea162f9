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
	"time"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

func (checker *Checker) VisitContractDefinition(contract *ast.ContractDefinition) (_ struct{}) {
	var startTime time.Time
	tracingEnabled := checker.Config.Tracer.enabled()
	if tracingEnabled {
		startTime = time.Now()
		defer func() {
			checker.Config.Tracer.reportContractTrace(
				contract.Name,
				contract.Kind.Keyword(),
				len(contract.Members),
				time.Since(startTime),
			)
		}()
	}

	checker.withContext(
		func(frame *checkingContext) {
			frame.contract = contract
			frame.function = nil
			frame.modifier = nil
		},
		func() {
			checker.checkContract(contract)
		},
	)

	return
}

func (checker *Checker) checkContract(contract *ast.ContractDefinition) {

	// A contract that inherits from itself cannot be linearized,
	// so its members are not checked

	if IsCyclicContract(contract) {
		checker.Elaboration.SetCyclicContract(contract)
		checker.report(
			&CyclicInheritanceError{
				Contract: contract,
				Range:    contract.Range,
			},
		)
		return
	}

	for _, specifier := range contract.BaseContracts {
		checker.checkInheritanceSpecifier(contract, specifier)
	}

	for _, directive := range contract.UsingForDirectives {
		checker.checkUsingForDirective(contract, directive)
	}

	if HasCyclicDependency(contract, CreationDependencies) {
		checker.report(
			&CyclicContractCreationError{
				Contract: contract,
				Range:    contract.Range,
			},
		)
	}

	for _, member := range contract.Members {
		ast.AcceptDeclaration[struct{}](member, checker)
	}

	checker.checkAbstractContract(contract)
	checker.checkSpecialFunctionUniqueness(contract)
	checker.checkFunctionSelectors(contract)
}

func (checker *Checker) checkInheritanceSpecifier(
	contract *ast.ContractDefinition,
	specifier *ast.InheritanceSpecifier,
) {
	// Arguments are checked even if the base is invalid

	argumentTypes := make([]Type, len(specifier.Arguments))
	for i, argument := range specifier.Arguments {
		argumentTypes[i] = checker.VisitExpression(argument, nil)
	}

	base, ok := specifier.BaseName.Declaration.(*ast.ContractDefinition)
	if !ok {
		if specifier.BaseName.Declaration == nil {
			checker.report(
				&NotDeclaredError{
					Name:  specifier.BaseName.String(),
					Range: specifier.BaseName.Range,
				},
			)
		} else {
			checker.report(
				&InvalidBaseContractError{
					Reason: fmt.Sprintf("`%s` is not a contract", specifier.BaseName),
					Range:  specifier.BaseName.Range,
				},
			)
		}
		return
	}

	if base.IsLibrary() {
		checker.report(
			&InvalidBaseContractError{
				Reason: "libraries cannot be inherited from",
				Range:  specifier.Range,
			},
		)
		return
	}

	if contract.IsInterface() && !base.IsInterface() {
		checker.report(
			&InvalidBaseContractError{
				Reason: "interfaces can only inherit from other interfaces",
				Range:  specifier.Range,
			},
		)
		return
	}

	if !specifier.ArgumentsGiven {
		return
	}

	var parameterTypes []Type
	if constructor := base.Constructor(); constructor != nil {
		parameterTypes = checker.functionType(constructor).Parameters
	}

	checker.checkConstructorArguments(
		specifier,
		specifier.Arguments,
		argumentTypes,
		parameterTypes,
	)
}

// checkConstructorArguments checks the arguments of a base constructor call
func (checker *Checker) checkConstructorArguments(
	hasPosition ast.HasPosition,
	arguments []ast.Expression,
	argumentTypes []Type,
	parameterTypes []Type,
) {
	if len(arguments) != len(parameterTypes) {
		checker.report(
			&ArgumentCountError{
				ParameterCount: len(parameterTypes),
				ArgumentCount:  len(arguments),
				Range:          ast.NewRangeFromPositioned(hasPosition),
			},
		)
		return
	}

	for i, argument := range arguments {
		checker.checkImplicitConversion(argument, argumentTypes[i], parameterTypes[i])
	}
}

func (checker *Checker) checkUsingForDirective(
	contract *ast.ContractDefinition,
	directive *ast.UsingForDirective,
) {
	if contract.IsInterface() {
		checker.report(
			&InvalidUsingForError{
				Reason: "using for is not allowed in interfaces",
				Range:  directive.Range,
			},
		)
	}

	library, ok := directive.LibraryName.Declaration.(*ast.ContractDefinition)
	if !ok || !library.IsLibrary() {
		checker.report(
			&InvalidUsingForError{
				Reason: fmt.Sprintf("`%s` is not a library", directive.LibraryName),
				Range:  directive.LibraryName.Range,
			},
		)
	}

	if directive.TypeName != nil {
		checker.ConvertType(directive.TypeName)
	}
}

// checkAbstractContract reports contracts with unimplemented functions
// that are not marked abstract
func (checker *Checker) checkAbstractContract(contract *ast.ContractDefinition) {
	if contract.Abstract || contract.Kind != ast.ContractKindContract {
		return
	}

	implemented := map[string][]*FunctionType{}

	for _, base := range checker.Elaboration.linearized(contract) {
		for _, function := range base.Functions() {
			if function.Kind != ast.FunctionKindFunction {
				continue
			}

			functionType := checker.functionType(function)

			overridden := false
			for _, other := range implemented[function.Name] {
				if other.HasEqualParameterTypes(functionType) {
					overridden = true
					break
				}
			}
			if overridden {
				continue
			}

			if !function.IsImplemented() {
				checker.report(
					&InvalidDeclarationError{
						Kind:   common.DeclarationKindContract,
						Name:   contract.Name,
						Reason: fmt.Sprintf("contract should be marked as abstract, function `%s` is not implemented", function.Name),
						Range:  contract.Range,
					},
				)
				return
			}

			implemented[function.Name] = append(implemented[function.Name], functionType)
		}
	}
}

func (checker *Checker) checkSpecialFunctionUniqueness(contract *ast.ContractDefinition) {
	seen := map[ast.FunctionKind]bool{}
	for _, function := range contract.Functions() {
		switch function.Kind {
		case ast.FunctionKindConstructor,
			ast.FunctionKindFallback,
			ast.FunctionKindReceive:

			if seen[function.Kind] {
				checker.report(
					&InvalidSpecialFunctionError{
						Kind:   function.Kind,
						Reason: "only one is allowed per contract",
						Range:  function.Range,
					},
				)
			}
			seen[function.Kind] = true
		}
	}
}

// checkFunctionSelectors records the selectors of the externally callable functions
// of the contract and reports selectors shared by different signatures
func (checker *Checker) checkFunctionSelectors(contract *ast.ContractDefinition) {
	type selectorOwner struct {
		function  *ast.FunctionDefinition
		signature string
	}

	seen := map[[4]byte]selectorOwner{}

	for _, base := range checker.Elaboration.linearized(contract) {
		for _, function := range base.Functions() {
			externalType := checker.externalFunctionType(function)
			if externalType == nil {
				continue
			}

			signature := ExternalSignature(function.Name, externalType.Parameters)
			selector := FunctionSelector(signature)

			if base == contract {
				checker.Elaboration.SetFunctionSelector(function, selector)
			}

			owner, ok := seen[selector]
			if !ok {
				seen[selector] = selectorOwner{
					function:  function,
					signature: signature,
				}
				continue
			}

			// Overriding functions share the signature
			if owner.signature == signature {
				continue
			}

			checker.report(
				&FunctionSelectorCollisionError{
					Selector:       selector,
					FirstFunction:  owner.signature,
					SecondFunction: signature,
					Range:          function.Range,
				},
			)
		}
	}
}

func (checker *Checker) VisitStructDefinition(structDefinition *ast.StructDefinition) (_ struct{}) {
	info := checker.structInfo(structDefinition)

	if len(structDefinition.Members) == 0 {
		checker.report(
			&InvalidDeclarationError{
				Kind:   common.DeclarationKindStruct,
				Name:   structDefinition.Name,
				Reason: "defining empty structs is disallowed",
				Range:  structDefinition.Range,
			},
		)
	}

	for _, member := range structDefinition.Members {
		if member.Value != nil {
			checker.report(
				&InvalidDeclarationError{
					Kind:   common.DeclarationKindVariable,
					Name:   member.Name,
					Reason: "struct members cannot have initial values",
					Range:  member.Range,
				},
			)
		}
		if member.Location != common.DataLocationUnspecified {
			checker.reportInvalidDataLocation(member, "data location cannot be specified for struct members")
		}
	}

	if isDirectlyRecursive(info, map[*ast.StructDefinition]struct{}{}) {
		checker.report(
			&InvalidDeclarationError{
				Kind:   common.DeclarationKindStruct,
				Name:   structDefinition.Name,
				Reason: "recursive struct definition",
				Range:  structDefinition.Range,
			},
		)
	}

	return
}

// isDirectlyRecursive reports whether the struct contains itself
// other than through a dynamically-sized array or a mapping,
// which would make its size infinite
func isDirectlyRecursive(info *StructInfo, path map[*ast.StructDefinition]struct{}) bool {
	if _, ok := path[info.Declaration]; ok {
		return true
	}
	path[info.Declaration] = struct{}{}
	defer delete(path, info.Declaration)

	for _, member := range info.Members {
		memberType := member.Type
		for {
			arrayType, ok := memberType.(*ArrayType)
			if !ok || arrayType.IsDynamicallySized() {
				break
			}
			memberType = arrayType.Base
		}
		structType, ok := memberType.(*StructType)
		if ok && isDirectlyRecursive(structType.Info, path) {
			return true
		}
	}
	return false
}

const maxEnumMembers = 256

func (checker *Checker) VisitEnumDefinition(enum *ast.EnumDefinition) (_ struct{}) {
	switch {
	case len(enum.Members) == 0:
		checker.report(
			&InvalidDeclarationError{
				Kind:   common.DeclarationKindEnum,
				Name:   enum.Name,
				Reason: "enum with no members is not allowed",
				Range:  enum.Range,
			},
		)
	case len(enum.Members) > maxEnumMembers:
		checker.report(
			&InvalidDeclarationError{
				Kind:   common.DeclarationKindEnum,
				Name:   enum.Name,
				Reason: fmt.Sprintf("enum with more than %d members is not allowed", maxEnumMembers),
				Range:  enum.Range,
			},
		)
	}
	return
}

func (checker *Checker) VisitEnumValue(_ *ast.EnumValue) (_ struct{}) {
	// NO-OP
	return
}

func (checker *Checker) VisitVariableDeclaration(variable *ast.VariableDeclaration) (_ struct{}) {
	contract := checker.currentContract()

	variableType := checker.variableType(variable)

	if contract != nil && contract.IsInterface() {
		checker.reportInvalidVariable(variable, "variables cannot be declared in interfaces")
	}

	if variable.Scope == ast.VariableScopeFileLevel && !variable.IsConstant() {
		checker.reportInvalidVariable(variable, "only constant variables are allowed at file level")
	}

	if variable.Value != nil {
		if _, ok := variableType.(*MappingType); ok {
			checker.reportInvalidVariable(variable, "mappings cannot be assigned to")
			checker.VisitExpression(variable.Value, nil)
		} else {
			checker.VisitExpression(variable.Value, variableType)
		}
	}

	checker.checkVariableMutability(variable, variableType)

	if variable.Visibility == ast.VisibilityPublic {
		checker.checkPublicStateVariable(variable, variableType)
	}

	return
}

func (checker *Checker) checkVariableMutability(variable *ast.VariableDeclaration, variableType Type) {
	if variableType.IsInvalidType() {
		return
	}

	switch variable.Mutability {
	case ast.VariableMutabilityConstant:
		if variable.Value == nil {
			checker.reportInvalidVariable(variable, "uninitialized constant variable")
		} else if !checker.isPure(variable.Value) {
			checker.reportInvalidVariable(variable, "initial value for constant variable has to be compile-time constant")
		}

		arrayType, isArray := variableType.(*ArrayType)
		if !IsValueType(variableType) && !(isArray && arrayType.IsByteArrayOrString()) {
			checker.reportInvalidVariable(variable, "constants of non-value type are not supported")
		}

	case ast.VariableMutabilityImmutable:
		if !checker.requireFeature(FeatureImmutables, variable) {
			return
		}
		if !IsValueType(variableType) {
			checker.reportInvalidVariable(variable, "immutable variables cannot have a non-value type")
		}
	}
}

func (checker *Checker) checkPublicStateVariable(variable *ast.VariableDeclaration, variableType Type) {
	getterType := checker.getterFunctionType(variable)
	if getterType == nil {
		checker.reportInvalidVariable(variable, "internal or recursive type is not allowed for public state variables")
		return
	}

	if functionType, ok := variableType.(*FunctionType); ok && functionType.Kind == FunctionKindInternal {
		checker.reportInvalidVariable(variable, "internal function types are not allowed for public state variables")
	}
}

func (checker *Checker) reportInvalidVariable(variable *ast.VariableDeclaration, reason string) {
	checker.report(
		&InvalidDeclarationError{
			Kind:   variable.DeclarationKind(),
			Name:   variable.Name,
			Reason: reason,
			Range:  variable.Range,
		},
	)
}
