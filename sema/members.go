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
	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
)

// typeMember is a member of a type, accessed with `.`
type typeMember struct {
	Name        string
	Declaration ast.Declaration
	Type        Type
}

func (m typeMember) candidate() declarationCandidate {
	return declarationCandidate{
		Declaration: m.Declaration,
		Type:        m.Type,
	}
}

func newBuiltinMember(name string, ty Type) typeMember {
	return typeMember{
		Name: name,
		Type: ty,
	}
}

func (checker *Checker) VisitMemberAccess(expression *ast.MemberAccess) Type {
	annotation := checker.expressionAnnotation(expression)
	checker.propagateLValueRequest(annotation, expression.Expression)

	baseType := checker.visitExpression(expression.Expression)
	if baseType.IsInvalidType() {
		return InvalidType
	}

	memberName := expression.MemberName
	members := checker.typeMembers(baseType)

	var candidates []declarationCandidate
	for _, member := range members {
		if member.Name == memberName {
			candidates = append(candidates, member.candidate())
		}
	}

	resolution := resolveCandidates(candidates, annotation)
	if !resolution.ok() {
		checker.reportMemberResolutionFailure(expression, baseType, members, resolution, annotation)
		return InvalidType
	}

	member := resolution.Candidate
	annotation.ReferencedDeclaration = member.Declaration

	switch baseType := baseType.(type) {
	case *StructType:
		annotation.IsLValue = baseType.Location != common.DataLocationCallData

	case *TypeType:
		annotation.IsPure = true

	case *MagicType:
		annotation.IsPure = baseType.Kind == MagicKindABI ||
			baseType.Kind == MagicKindMetaType
	}

	if functionType, ok := member.Type.(*FunctionType); ok {
		switch functionType.Kind {
		case FunctionKindBareStaticCall:
			if !checker.requireFeature(FeatureStaticCall, expression) {
				return InvalidType
			}
		}
	}

	if _, ok := baseType.(*TypeType); ok {
		if variable, ok := member.Declaration.(*ast.VariableDeclaration); ok {
			checker.checkStateAccess(variable, annotation, expression)
		}
	}

	return member.Type
}

func (checker *Checker) reportMemberResolutionFailure(
	expression *ast.MemberAccess,
	baseType Type,
	members []typeMember,
	resolution declarationResolution,
	annotation *ExpressionAnnotation,
) {
	memberName := expression.MemberName

	switch resolution.Failure {
	case ResolutionFailureNotFound:
		var suggestion string
		if checker.Config.SuggestionsEnabled {
			names := make([]string, 0, len(members))
			for _, member := range members {
				names = append(names, member.Name)
			}
			suggestion = closestName(memberName, names)
		}

		checker.report(
			&NotDeclaredMemberError{
				Type:       baseType,
				Name:       memberName,
				Hint:       checker.missingMemberHint(baseType, memberName),
				Suggestion: suggestion,
				Range:      expression.Range,
			},
		)

	case ResolutionFailureAmbiguous:
		checker.report(
			&AmbiguousMemberError{
				Type:  baseType,
				Name:  memberName,
				Range: expression.Range,
			},
		)

	case ResolutionFailureNoMatch:
		checker.report(
			&NoMatchingDeclarationError{
				Name:          memberName,
				ArgumentTypes: annotation.ArgumentTypes,
				Range:         expression.Range,
			},
		)
	}
}

// missingMemberHint explains why a member is not available on the type,
// if it is available on a closely related one
func (checker *Checker) missingMemberHint(baseType Type, memberName string) string {
	switch baseType := baseType.(type) {
	case *AddressType:
		switch memberName {
		case "transfer", "send":
			if !baseType.Payable {
				return "`send` and `transfer` are only available for objects of type `address payable`"
			}
		}

	case *ContractType:
		if _, ok := addressMembers(PayableAddressType)[memberName]; ok {
			return "address members are not available on contracts, convert the contract to `address` first"
		}

	case *ArrayType:
		switch memberName {
		case "push", "pop":
			if baseType.Location != common.DataLocationStorage {
				return "memory arrays cannot be resized"
			}
			if !baseType.IsDynamicallySized() {
				return "fixed-size arrays cannot be resized"
			}
		}

	case *FunctionType:
		switch memberName {
		case "value", "gas":
			return "use `{" + memberName + ": ...}` call options instead"
		}
	}

	return ""
}

// typeMembers returns all members of the type, including functions bound with `using for`
func (checker *Checker) typeMembers(baseType Type) []typeMember {
	var members []typeMember

	switch baseType := baseType.(type) {
	case *AddressType:
		for name, ty := range addressMembers(baseType) {
			members = append(members, newBuiltinMember(name, ty))
		}

	case *ContractType:
		if baseType.Super {
			members = checker.superMembers(baseType.Declaration)
		} else {
			members = checker.contractMembers(baseType.Declaration)
		}

	case *TypeType:
		members = checker.staticMembers(baseType.Actual)

	case *MagicType:
		members = checker.magicMembers(baseType)

	case *StructType:
		for _, member := range baseType.Info.Members {
			structMember := newBuiltinMember(
				member.Name,
				withLocationIfReference(
					member.Type,
					baseType.Location,
					baseType.Location == common.DataLocationStorage,
				),
			)
			if member.Declaration != nil {
				structMember.Declaration = member.Declaration
			}
			members = append(members, structMember)
		}

	case *ArrayType:
		members = arrayMembers(baseType)

	case *ArraySliceType:
		members = append(members, newBuiltinMember("length", UInt256Type))

	case *FixedBytesType:
		members = append(members, newBuiltinMember("length", UInt8Type))

	case *FunctionType:
		switch baseType.Kind {
		case FunctionKindExternal, FunctionKindDeclaration:
			members = append(members, newBuiltinMember("selector", Bytes4Type))
			if baseType.Kind == FunctionKindExternal {
				members = append(members, newBuiltinMember("address", TheAddressType))
			}
		}
	}

	return append(members, checker.boundMembers(baseType)...)
}

func addressMembers(addressType *AddressType) map[string]Type {
	lowLevelCall := func(kind FunctionKind, mutability ast.StateMutability) *FunctionType {
		return builtinFunction(
			kind,
			mutability,
			[]Type{BytesMemoryType},
			[]Type{BoolType, BytesMemoryType},
		)
	}

	members := map[string]Type{
		"balance":      UInt256Type,
		"code":         BytesMemoryType,
		"codehash":     Bytes32Type,
		"call":         lowLevelCall(FunctionKindBareCall, ast.StateMutabilityPayable),
		"delegatecall": lowLevelCall(FunctionKindDelegateCall, ast.StateMutabilityNonPayable),
		"staticcall":   lowLevelCall(FunctionKindBareStaticCall, ast.StateMutabilityView),
	}

	if addressType.Payable {
		members["transfer"] = builtinFunction(
			FunctionKindTransfer,
			ast.StateMutabilityNonPayable,
			[]Type{TokenIdType, UInt256Type},
			nil,
		)
		members["send"] = builtinFunction(
			FunctionKindSend,
			ast.StateMutabilityNonPayable,
			[]Type{TokenIdType, UInt256Type},
			[]Type{BoolType},
		)
	}

	return members
}

func arrayMembers(arrayType *ArrayType) []typeMember {
	if arrayType.IsString() {
		return nil
	}

	members := []typeMember{
		newBuiltinMember("length", UInt256Type),
	}

	if arrayType.Location != common.DataLocationStorage || !arrayType.IsDynamicallySized() {
		return members
	}

	var elementType Type = Bytes1Type
	if !arrayType.IsByteArrayOrString() {
		elementType = withLocationIfReference(arrayType.Base, common.DataLocationStorage, true)
	}

	return append(
		members,
		newBuiltinMember(
			"push",
			builtinFunction(
				FunctionKindArrayPush,
				ast.StateMutabilityNonPayable,
				nil,
				[]Type{elementType},
			),
		),
		newBuiltinMember(
			"push",
			builtinFunction(
				FunctionKindArrayPush,
				ast.StateMutabilityNonPayable,
				[]Type{withLocationIfReference(elementType, common.DataLocationMemory, false)},
				nil,
			),
		),
		newBuiltinMember(
			"pop",
			builtinFunction(
				FunctionKindArrayPop,
				ast.StateMutabilityNonPayable,
				nil,
				nil,
			),
		),
	)
}

// contractMembers returns the externally callable functions of a contract value,
// including the getters of public state variables
func (checker *Checker) contractMembers(contract *ast.ContractDefinition) []typeMember {
	var members []typeMember

	for _, base := range checker.Elaboration.linearized(contract) {
		for _, member := range base.Members {
			switch member := member.(type) {
			case *ast.FunctionDefinition:
				externalType := checker.externalFunctionType(member)
				if externalType == nil {
					continue
				}
				members = append(
					members,
					typeMember{
						Name:        member.Name,
						Declaration: member,
						Type:        externalType,
					},
				)

			case *ast.VariableDeclaration:
				if member.Visibility != ast.VisibilityPublic {
					continue
				}
				getterType := checker.getterFunctionType(member)
				if getterType == nil {
					continue
				}
				members = append(
					members,
					typeMember{
						Name:        member.Name,
						Declaration: member,
						Type:        getterType,
					},
				)
			}
		}
	}

	return members
}

// superMembers returns the functions of the bases of the contract, for `super.f()`
func (checker *Checker) superMembers(contract *ast.ContractDefinition) []typeMember {
	linearized := checker.Elaboration.linearized(contract)
	if len(linearized) < 2 {
		return nil
	}

	var members []typeMember

	for _, base := range linearized[1:] {
		for _, function := range base.Functions() {
			if function.Kind != ast.FunctionKindFunction ||
				function.EffectiveVisibility() == ast.VisibilityPrivate {

				continue
			}
			members = append(
				members,
				typeMember{
					Name:        function.Name,
					Declaration: function,
					Type:        checker.functionType(function),
				},
			)
		}
	}

	return members
}

// staticMembers returns the members of a type used as a value,
// e.g. library functions, enum values, and nested declarations of contracts
func (checker *Checker) staticMembers(actual Type) []typeMember {
	var members []typeMember

	switch actual := actual.(type) {
	case *ContractType:
		contract := actual.Declaration
		current := checker.currentContract()
		derived := current != nil && IsBaseContract(contract, current)

		for _, member := range contract.Members {
			switch member := member.(type) {
			case *ast.FunctionDefinition:
				if member.Kind != ast.FunctionKindFunction {
					continue
				}
				memberType := checker.staticFunctionMember(contract, member, derived)
				if memberType == nil {
					continue
				}
				members = append(
					members,
					typeMember{
						Name:        member.Name,
						Declaration: member,
						Type:        memberType,
					},
				)

			case *ast.StructDefinition, *ast.EnumDefinition:
				members = append(
					members,
					typeMember{
						Name:        member.DeclarationIdentifier(),
						Declaration: member,
						Type:        checker.declarationValueType(member),
					},
				)

			case *ast.EventDefinition, *ast.MessageDefinition:
				members = append(
					members,
					typeMember{
						Name:        member.DeclarationIdentifier(),
						Declaration: member,
						Type:        checker.eventType(member),
					},
				)

			case *ast.VariableDeclaration:
				if !member.IsConstant() && !derived {
					continue
				}
				if member.Visibility == ast.VisibilityPrivate && current != contract {
					continue
				}
				members = append(
					members,
					typeMember{
						Name:        member.Name,
						Declaration: member,
						Type:        checker.variableType(member),
					},
				)
			}
		}

	case *EnumType:
		for _, value := range actual.Declaration.Members {
			members = append(
				members,
				typeMember{
					Name:        value.Name,
					Declaration: value,
					Type:        actual,
				},
			)
		}

	case *ArrayType:
		if actual.Kind == ArrayKindBytes {
			members = append(
				members,
				newBuiltinMember(
					"concat",
					&FunctionType{
						Kind:                FunctionKindBytesConcat,
						ReturnParameters:    []Type{BytesMemoryType},
						StateMutability:     ast.StateMutabilityPure,
						ArbitraryParameters: true,
					},
				),
			)
		}
	}

	return members
}

// staticFunctionMember returns the type of `C.f`:
// library functions are called directly, functions of bases are internal calls,
// and functions of unrelated contracts can only be referred to, e.g. for their selector
func (checker *Checker) staticFunctionMember(
	contract *ast.ContractDefinition,
	function *ast.FunctionDefinition,
	derived bool,
) *FunctionType {
	visibility := function.EffectiveVisibility()

	switch {
	case contract.IsLibrary():
		if visibility == ast.VisibilityPrivate && checker.currentContract() != contract {
			return nil
		}
		if visibility.IsExternallyVisible() {
			return checker.externalFunctionType(function)
		}
		return checker.functionType(function)

	case derived:
		if visibility == ast.VisibilityPrivate || visibility == ast.VisibilityExternal {
			return nil
		}
		return checker.functionType(function)

	default:
		externalType := checker.externalFunctionType(function)
		if externalType == nil {
			return nil
		}
		declarationType := *externalType
		declarationType.Kind = FunctionKindDeclaration
		return &declarationType
	}
}

func (checker *Checker) magicMembers(magicType *MagicType) []typeMember {
	switch magicType.Kind {
	case MagicKindBlock:
		return []typeMember{
			newBuiltinMember("coinbase", PayableAddressType),
			newBuiltinMember("difficulty", UInt256Type),
			newBuiltinMember("gaslimit", UInt256Type),
			newBuiltinMember("number", UInt256Type),
			newBuiltinMember("timestamp", UInt256Type),
		}

	case MagicKindMessage:
		return []typeMember{
			newBuiltinMember("amount", UInt256Type),
			newBuiltinMember("data", NewBytesType(common.DataLocationCallData)),
			newBuiltinMember("sender", TheAddressType),
			newBuiltinMember("sig", Bytes4Type),
			newBuiltinMember("tokenid", TokenIdType),
			newBuiltinMember("value", UInt256Type),
		}

	case MagicKindTransaction:
		return []typeMember{
			newBuiltinMember("gasprice", UInt256Type),
			newBuiltinMember("origin", TheAddressType),
		}

	case MagicKindABI:
		encodeFunction := func(kind FunctionKind) *FunctionType {
			return &FunctionType{
				Kind:                kind,
				ReturnParameters:    []Type{BytesMemoryType},
				StateMutability:     ast.StateMutabilityPure,
				ArbitraryParameters: true,
			}
		}
		return []typeMember{
			newBuiltinMember("decode", &FunctionType{
				Kind:                FunctionKindABIDecode,
				StateMutability:     ast.StateMutabilityPure,
				ArbitraryParameters: true,
			}),
			newBuiltinMember("encode", encodeFunction(FunctionKindABIEncode)),
			newBuiltinMember("encodePacked", encodeFunction(FunctionKindABIEncodePacked)),
			newBuiltinMember("encodeWithSelector", encodeFunction(FunctionKindABIEncodeWithSelector)),
			newBuiltinMember("encodeWithSignature", encodeFunction(FunctionKindABIEncodeWithSignature)),
		}

	case MagicKindMetaType:
		return metaTypeMembers(magicType.TypeArgument)
	}

	return nil
}

// metaTypeMembers returns the members of `type(T)`
func metaTypeMembers(argument Type) []typeMember {
	switch argument := argument.(type) {
	case *ContractType:
		members := []typeMember{
			newBuiltinMember("name", StringMemoryType),
		}
		contract := argument.Declaration
		if contract.IsInterface() {
			members = append(members, newBuiltinMember("interfaceId", Bytes4Type))
		} else if !contract.Abstract {
			members = append(
				members,
				newBuiltinMember("creationCode", BytesMemoryType),
				newBuiltinMember("runtimeCode", BytesMemoryType),
			)
		}
		return members

	case *IntegerType, *EnumType:
		return []typeMember{
			newBuiltinMember("min", argument),
			newBuiltinMember("max", argument),
		}
	}

	return nil
}

// boundMembers returns the library functions attached to the type
// by the `using for` directives of the current contract
func (checker *Checker) boundMembers(baseType Type) []typeMember {
	contract := checker.currentContract()
	if contract == nil {
		return nil
	}

	if typeType, ok := baseType.(*TypeType); ok {
		if _, ok := typeType.Actual.(*ContractType); ok {
			return nil
		}
	}

	var members []typeMember

	for _, directive := range contract.UsingForDirectives {
		library, ok := directive.LibraryName.Declaration.(*ast.ContractDefinition)
		if !ok || !library.IsLibrary() {
			continue
		}

		if directive.TypeName != nil {
			targetType := checker.ConvertType(directive.TypeName)
			if !equalIgnoringLocation(targetType, baseType) {
				continue
			}
		}

		for _, function := range library.Functions() {
			if function.Kind != ast.FunctionKindFunction ||
				function.EffectiveVisibility() == ast.VisibilityPrivate {

				continue
			}

			functionType := checker.functionType(function)
			if len(functionType.Parameters) == 0 ||
				!IsImplicitlyConvertible(baseType, functionType.Parameters[0]) {

				continue
			}

			members = append(
				members,
				typeMember{
					Name:        function.Name,
					Declaration: function,
					Type:        functionType.WithBoundFirstArgument(),
				},
			)
		}
	}

	return members
}
