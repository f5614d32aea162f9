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
	"encoding/hex"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/solpp-lang/solpp/ast"
)

var subDenominations = map[string]*big.Int{
	"wei":     big.NewInt(1),
	"attov":   big.NewInt(1),
	"gwei":    big.NewInt(1_000_000_000),
	"ether":   new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
	"vite":    new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
	"seconds": big.NewInt(1),
	"minutes": big.NewInt(60),
	"hours":   big.NewInt(3600),
	"days":    big.NewInt(86400),
	"weeks":   big.NewInt(604800),
}

// LiteralType returns the type of a literal.
// If the literal is malformed, the result is nil and the reason explains why.
func LiteralType(literal *ast.Literal) (Type, string) {
	switch literal.Kind {
	case ast.LiteralKindBool:
		return BoolType, ""

	case ast.LiteralKindString, ast.LiteralKindUnicodeString:
		return &StringLiteralType{Value: literal.Value}, ""

	case ast.LiteralKindHexString:
		decoded, err := hex.DecodeString(strings.ReplaceAll(literal.Value, "_", ""))
		if err != nil {
			return nil, "invalid hex string"
		}
		return &StringLiteralType{Value: string(decoded)}, ""

	case ast.LiteralKindNumber:
		return numberLiteralType(literal)
	}

	return nil, ""
}

func numberLiteralType(literal *ast.Literal) (Type, string) {
	text := strings.ReplaceAll(literal.Value, "_", "")

	var value *big.Rat
	hexDigits := 0

	if literal.IsHexNumber() {
		if literal.SubDenomination != "" {
			return nil, "hexadecimal numbers cannot be used with unit denominations"
		}
		digits := text[2:]
		integer, ok := new(big.Int).SetString(digits, 16)
		if !ok {
			return nil, "invalid hexadecimal number"
		}
		value = new(big.Rat).SetInt(integer)
		hexDigits = len(digits)
	} else {
		var ok bool
		value, ok = parseDecimal(text)
		if !ok {
			return nil, "invalid number literal"
		}
	}

	if literal.SubDenomination != "" {
		if literal.SubDenomination == "years" {
			return nil, "using \"years\" as a unit denomination is not allowed"
		}
		factor, ok := subDenominations[literal.SubDenomination]
		if !ok {
			return nil, "unknown unit denomination"
		}
		value = new(big.Rat).Mul(value, new(big.Rat).SetInt(factor))
	}

	if value.Num().BitLen() > maxRationalBits {
		return nil, "number literal is too large"
	}

	return &RationalNumberType{
		Value:     value,
		HexDigits: hexDigits,
	}, ""
}

// parseDecimal parses decimal numbers with an optional fraction and exponent, e.g. `1.5e3`
func parseDecimal(text string) (*big.Rat, bool) {
	mantissa := text
	exponent := int64(0)

	if index := strings.IndexAny(text, "eE"); index >= 0 {
		mantissa = text[:index]
		exp, ok := new(big.Int).SetString(text[index+1:], 10)
		if !ok || !exp.IsInt64() {
			return nil, false
		}
		exponent = exp.Int64()
		if exponent > maxRationalBits || exponent < -maxRationalBits {
			return nil, false
		}
	}

	if mantissa == "" || strings.Count(mantissa, ".") > 1 {
		return nil, false
	}

	value, ok := new(big.Rat).SetString(mantissa)
	if !ok {
		return nil, false
	}

	if exponent != 0 {
		power := new(big.Int).Exp(big.NewInt(10), big.NewInt(absInt64(exponent)), nil)
		factor := new(big.Rat).SetInt(power)
		if exponent > 0 {
			value.Mul(value, factor)
		} else {
			value.Quo(value, factor)
		}
	}

	return value, true
}

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Keccak256 hashes data with the legacy Keccak-256 function
func Keccak256(data []byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	return hasher.Sum(nil)
}

// ChecksummedAddress returns the mixed-case checksum encoding of a hex address
func ChecksummedAddress(address string) string {
	digits := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X"))
	hash := hex.EncodeToString(Keccak256([]byte(digits)))

	var sb strings.Builder
	sb.WriteString("0x")
	for i, r := range digits {
		if r >= 'a' && r <= 'f' && hash[i] >= '8' {
			sb.WriteRune(r - 'a' + 'A')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// PassesAddressChecksum reports whether a hex address literal
// has the correct mixed-case checksum
func PassesAddressChecksum(address string) bool {
	digits := address[2:]
	if len(digits) != 40 {
		return false
	}
	return ChecksummedAddress(address)[2:] == digits
}
