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

type ElementType uint64

const (
	ElementTypeUnknown ElementType = iota

	ElementTypeSourceUnit
	ElementTypePragmaDirective
	ElementTypeIdentifierPath
	ElementTypeParameterList
	ElementTypeInheritanceSpecifier
	ElementTypeUsingForDirective
	ElementTypeModifierInvocation
	ElementTypeTryCatchClause

	// Declarations

	ElementTypeContractDefinition
	ElementTypeStructDefinition
	ElementTypeEnumDefinition
	ElementTypeEnumValue
	ElementTypeFunctionDefinition
	ElementTypeModifierDefinition
	ElementTypeVariableDeclaration
	ElementTypeEventDefinition
	ElementTypeMessageDefinition

	// Type names

	ElementTypeElementaryTypeName
	ElementTypeUserDefinedTypeName
	ElementTypeFunctionTypeName
	ElementTypeMapping
	ElementTypeArrayTypeName

	// Statements

	ElementTypeBlock
	ElementTypePlaceholderStatement
	ElementTypeIfStatement
	ElementTypeWhileStatement
	ElementTypeForStatement
	ElementTypeContinue
	ElementTypeBreak
	ElementTypeReturn
	ElementTypeEmitStatement
	ElementTypeSendStatement
	ElementTypeVariableDeclarationStatement
	ElementTypeExpressionStatement
	ElementTypeTryStatement
	ElementTypeInlineAssembly

	// Expressions

	ElementTypeIdentifier
	ElementTypeLiteral
	ElementTypeElementaryTypeNameExpression
	ElementTypeTupleExpression
	ElementTypeUnaryOperation
	ElementTypeBinaryOperation
	ElementTypeConditional
	ElementTypeAssignment
	ElementTypeFunctionCall
	ElementTypeFunctionCallOptions
	ElementTypeNewExpression
	ElementTypeMemberAccess
	ElementTypeIndexAccess
	ElementTypeIndexRangeAccess
	ElementTypeAwaitExpression

	// NOTE: not an actual element type, must be last item
	ElementTypeCount
)

var elementTypeNames = [...]string{
	ElementTypeUnknown:                      "Unknown",
	ElementTypeSourceUnit:                   "SourceUnit",
	ElementTypePragmaDirective:              "PragmaDirective",
	ElementTypeIdentifierPath:               "IdentifierPath",
	ElementTypeParameterList:                "ParameterList",
	ElementTypeInheritanceSpecifier:         "InheritanceSpecifier",
	ElementTypeUsingForDirective:            "UsingForDirective",
	ElementTypeModifierInvocation:           "ModifierInvocation",
	ElementTypeTryCatchClause:               "TryCatchClause",
	ElementTypeContractDefinition:           "ContractDefinition",
	ElementTypeStructDefinition:             "StructDefinition",
	ElementTypeEnumDefinition:               "EnumDefinition",
	ElementTypeEnumValue:                    "EnumValue",
	ElementTypeFunctionDefinition:           "FunctionDefinition",
	ElementTypeModifierDefinition:           "ModifierDefinition",
	ElementTypeVariableDeclaration:          "VariableDeclaration",
	ElementTypeEventDefinition:              "EventDefinition",
	ElementTypeMessageDefinition:            "MessageDefinition",
	ElementTypeElementaryTypeName:           "ElementaryTypeName",
	ElementTypeUserDefinedTypeName:          "UserDefinedTypeName",
	ElementTypeFunctionTypeName:             "FunctionTypeName",
	ElementTypeMapping:                      "Mapping",
	ElementTypeArrayTypeName:                "ArrayTypeName",
	ElementTypeBlock:                        "Block",
	ElementTypePlaceholderStatement:         "PlaceholderStatement",
	ElementTypeIfStatement:                  "IfStatement",
	ElementTypeWhileStatement:               "WhileStatement",
	ElementTypeForStatement:                 "ForStatement",
	ElementTypeContinue:                     "Continue",
	ElementTypeBreak:                        "Break",
	ElementTypeReturn:                       "Return",
	ElementTypeEmitStatement:                "EmitStatement",
	ElementTypeSendStatement:                "SendStatement",
	ElementTypeVariableDeclarationStatement: "VariableDeclarationStatement",
	ElementTypeExpressionStatement:          "ExpressionStatement",
	ElementTypeTryStatement:                 "TryStatement",
	ElementTypeInlineAssembly:               "InlineAssembly",
	ElementTypeIdentifier:                   "Identifier",
	ElementTypeLiteral:                      "Literal",
	ElementTypeElementaryTypeNameExpression: "ElementaryTypeNameExpression",
	ElementTypeTupleExpression:              "TupleExpression",
	ElementTypeUnaryOperation:               "UnaryOperation",
	ElementTypeBinaryOperation:              "BinaryOperation",
	ElementTypeConditional:                  "Conditional",
	ElementTypeAssignment:                   "Assignment",
	ElementTypeFunctionCall:                 "FunctionCall",
	ElementTypeFunctionCallOptions:          "FunctionCallOptions",
	ElementTypeNewExpression:                "NewExpression",
	ElementTypeMemberAccess:                 "MemberAccess",
	ElementTypeIndexAccess:                  "IndexAccess",
	ElementTypeIndexRangeAccess:             "IndexRangeAccess",
	ElementTypeAwaitExpression:              "AwaitExpression",
}

func (t ElementType) String() string {
	if int(t) < len(elementTypeNames) {
		return elementTypeNames[t]
	}
	return "ElementType(?)"
}

// ElementTypeFromNodeType returns the element type with the given
// node type name, as used in the JSON representation of a syntax tree
func ElementTypeFromNodeType(name string) (ElementType, bool) {
	for elementType, elementTypeName := range elementTypeNames {
		if elementTypeName == name {
			return ElementType(elementType), true
		}
	}
	return ElementTypeUnknown, false
}
