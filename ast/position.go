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

import (
	"fmt"
)

// Position defines a row/column within the source code.
// Lines start at 1, columns and offsets at 0.
type Position struct {
	// offset, starting at 0
	Offset int
	// line number, starting at 1
	Line int
	// column number, starting at 0 (byte count)
	Column int
}

var EmptyPosition = Position{}

func NewPosition(offset, line, column int) Position {
	return Position{
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

func (position Position) String() string {
	return fmt.Sprintf("%d:%d", position.Line, position.Column)
}

func (position Position) Shifted(length int) Position {
	return Position{
		Line:   position.Line,
		Column: position.Column + length,
		Offset: position.Offset + length,
	}
}

func (position Position) Compare(other Position) int {
	switch {
	case position.Offset < other.Offset:
		return -1
	case position.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

type HasPosition interface {
	StartPosition() Position
	EndPosition() Position
}

// Range is the closed interval of source positions an element spans
type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

func NewRange(startPos, endPos Position) Range {
	return Range{
		StartPos: startPos,
		EndPos:   endPos,
	}
}

func NewRangeFromPositioned(hasPosition HasPosition) Range {
	return Range{
		StartPos: hasPosition.StartPosition(),
		EndPos:   hasPosition.EndPosition(),
	}
}

func (r Range) StartPosition() Position {
	return r.StartPos
}

func (r Range) EndPosition() Position {
	return r.EndPos
}

// PositionFromOffset computes the line and column of a byte offset in code
func PositionFromOffset(code []byte, offset int) Position {
	if offset > len(code) {
		offset = len(code)
	}
	line := 1
	column := 0
	for i := 0; i < offset; i++ {
		if code[i] == '\n' {
			line++
			column = 0
		} else {
			column++
		}
	}
	return Position{
		Offset: offset,
		Line:   line,
		Column: column,
	}
}
