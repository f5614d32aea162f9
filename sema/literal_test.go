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
	"math/big"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solpp-lang/solpp/ast"
)

func numberLiteral(value string, subDenomination string) *ast.Literal {
	return &ast.Literal{
		Kind:            ast.LiteralKindNumber,
		Value:           value,
		SubDenomination: subDenomination,
	}
}

func TestLiteralType(t *testing.T) {

	t.Parallel()

	type testCase struct {
		name     string
		literal  *ast.Literal
		expected Type
		reason   string
	}

	ether := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	testCases := []testCase{
		{
			name:     "bool",
			literal:  &ast.Literal{Kind: ast.LiteralKindBool, Value: "true"},
			expected: BoolType,
		},
		{
			name:     "string",
			literal:  &ast.Literal{Kind: ast.LiteralKindString, Value: "abc"},
			expected: &StringLiteralType{Value: "abc"},
		},
		{
			name:     "hex string",
			literal:  &ast.Literal{Kind: ast.LiteralKindHexString, Value: "00_ff"},
			expected: &StringLiteralType{Value: "\x00\xff"},
		},
		{
			name:    "invalid hex string",
			literal: &ast.Literal{Kind: ast.LiteralKindHexString, Value: "0g"},
			reason:  "invalid hex string",
		},
		{
			name:     "decimal",
			literal:  numberLiteral("1_000", ""),
			expected: NewIntegerConstantType(1000),
		},
		{
			name:     "exponent",
			literal:  numberLiteral("2.5e3", ""),
			expected: NewIntegerConstantType(2500),
		},
		{
			name:     "fraction",
			literal:  numberLiteral("0.5", ""),
			expected: NewRationalNumberType(big.NewRat(1, 2)),
		},
		{
			name:     "hex number",
			literal:  numberLiteral("0xff", ""),
			expected: NewIntegerConstantType(255),
		},
		{
			name:     "ether",
			literal:  numberLiteral("1", "ether"),
			expected: NewRationalNumberType(new(big.Rat).SetInt(ether)),
		},
		{
			name:     "minutes",
			literal:  numberLiteral("2", "minutes"),
			expected: NewIntegerConstantType(120),
		},
		{
			name:    "hex number with unit",
			literal: numberLiteral("0x10", "ether"),
			reason:  "hexadecimal numbers cannot be used with unit denominations",
		},
		{
			name:    "years",
			literal: numberLiteral("1", "years"),
			reason:  "using \"years\" as a unit denomination is not allowed",
		},
		{
			name:    "malformed",
			literal: numberLiteral("1.2.3", ""),
			reason:  "invalid number literal",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			ty, reason := LiteralType(testCase.literal)

			if testCase.expected == nil {
				assert.Nil(t, ty)
				assert.Equal(t, testCase.reason, reason)
				return
			}

			require.NotNil(t, ty, reason)
			assert.True(
				t,
				testCase.expected.Equal(ty),
				"expected %s, got %s",
				testCase.expected,
				ty,
			)
		})
	}
}

func TestAddressChecksum(t *testing.T) {

	t.Parallel()

	const checksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	assert.True(t, PassesAddressChecksum(checksummed))
	assert.True(t, PassesAddressChecksum("0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"))

	assert.False(t, PassesAddressChecksum("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"))
	assert.False(t, PassesAddressChecksum("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeA"))

	assert.Equal(t, checksummed, ChecksummedAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"))
}

func TestRationalIntegerTypeProperties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("the smallest integer type fits the value", prop.ForAll(
		func(v int64) bool {
			literalType, _ := LiteralType(numberLiteral(strconv.FormatInt(v, 10), ""))
			rational, ok := literalType.(*RationalNumberType)
			if !ok {
				return false
			}

			integerType := rational.IntegerType()
			if integerType == nil || !integerType.Fits(big.NewInt(v)) {
				return false
			}

			// a smaller type of the same signedness does not fit
			if integerType.Bits > 8 {
				smaller := NewIntegerType(integerType.Bits-8, integerType.Signed)
				if smaller.Fits(big.NewInt(v)) {
					return false
				}
			}

			return IsImplicitlyConvertible(rational, integerType)
		},
		gen.Int64Range(0, 1<<62),
	))

	properties.Property("constants convert to integer types that fit them", prop.ForAll(
		func(v int64, bits uint) bool {
			rational := NewIntegerConstantType(v)
			integerType := NewIntegerType(bits*8, v < 0)
			return IsImplicitlyConvertible(rational, integerType) == integerType.Fits(big.NewInt(v))
		},
		gen.Int64(),
		gen.UIntRange(1, 32),
	))

	properties.TestingRun(t)
}
