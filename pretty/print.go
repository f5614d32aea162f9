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

package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/common"
	"github.com/solpp-lang/solpp/errors"
	"github.com/solpp-lang/solpp/sema"
)

const ErrorPrefix = "error"
const WarningPrefix = "warning"
const NotePrefix = "note"

// maxLineLength is the length after which excerpt lines are cut off
const maxLineLength = 500

const excerptDots = "..."

func FormatErrorMessage(prefix string, message string, useColor bool) string {
	if useColor {
		prefixColor := aurora.RedFg | aurora.BrightFg | aurora.BoldFm
		if prefix == WarningPrefix {
			prefixColor = aurora.YellowFg | aurora.BrightFg | aurora.BoldFm
		}
		return fmt.Sprintf(
			"%s%s",
			aurora.Colorize(prefix, prefixColor),
			aurora.Colorize(": "+message, aurora.BoldFm),
		)
	}
	return fmt.Sprintf("%s: %s", prefix, message)
}

// ErrorPrettyPrinter writes diagnostics in a compiler-like format:
// a header line, the location, and an excerpt of the source code
// with the range of the diagnostic underlined
type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) writeString(str string) {
	_, err := io.WriteString(p.writer, str)
	if err != nil {
		panic(err)
	}
}

func (p ErrorPrettyPrinter) colorize(str string, color aurora.Color) string {
	if !p.useColor {
		return str
	}
	return aurora.Colorize(str, color).String()
}

// PrettyPrintError writes the error.
// Errors grouping child errors, like a checker error, are written child by child.
func (p ErrorPrettyPrinter) PrettyPrintError(
	err error,
	location common.Location,
	codes map[common.Location][]byte,
) (printErr error) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				printErr = err
				return
			}
			panic(r)
		}
	}()

	p.prettyPrintError(ErrorPrefix, err, location, codes)
	return nil
}

// PrettyPrintDiagnostics writes the diagnostics in the order they were reported
func (p ErrorPrettyPrinter) PrettyPrintDiagnostics(
	diagnostics []sema.Diagnostic,
	location common.Location,
	codes map[common.Location][]byte,
) (printErr error) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				printErr = err
				return
			}
			panic(r)
		}
	}()

	for i, diagnostic := range diagnostics {
		if i > 0 {
			p.writeString("\n")
		}
		prefix := ErrorPrefix
		if diagnostic.Severity == sema.SeverityWarning {
			prefix = WarningPrefix
		}
		p.prettyPrintError(prefix, diagnostic.Err, location, codes)
	}
	return nil
}

func (p ErrorPrettyPrinter) prettyPrintError(
	prefix string,
	err error,
	location common.Location,
	codes map[common.Location][]byte,
) {
	if parentError, ok := err.(errors.ParentError); ok {
		for i, childErr := range parentError.ChildErrors() {
			if i > 0 {
				p.writeString("\n")
			}
			p.prettyPrintError(prefix, childErr, location, codes)
		}
		return
	}

	p.writeString(FormatErrorMessage(prefix, err.Error(), p.useColor))
	p.writeString("\n")

	var secondaryMessage string
	if secondaryError, ok := err.(errors.SecondaryError); ok {
		secondaryMessage = secondaryError.SecondaryError()
	}

	positioned, ok := err.(ast.HasPosition)
	if !ok {
		if secondaryMessage != "" {
			p.writeString(p.colorize(fmt.Sprintf(" = %s", secondaryMessage), aurora.BoldFm))
			p.writeString("\n")
		}
		p.writeNotes(err, 0)
		return
	}

	startPosition := positioned.StartPosition()
	endPosition := positioned.EndPosition()

	lineNumberWidth := len(strconv.Itoa(startPosition.Line))

	p.writeLocation(location, startPosition, lineNumberWidth)

	line, ok := sourceLine(codes[location], startPosition.Line)
	if ok {
		p.writeExcerpt(line, startPosition, endPosition, lineNumberWidth, secondaryMessage)
	} else if secondaryMessage != "" {
		p.writeString(fmt.Sprintf("%s = %s\n", strings.Repeat(" ", lineNumberWidth), secondaryMessage))
	}

	p.writeNotes(err, lineNumberWidth)
}

func (p ErrorPrettyPrinter) writeLocation(location common.Location, position ast.Position, indent int) {
	var locationDescription string
	if location != nil {
		locationDescription = location.String() + ":"
	}
	p.writeString(strings.Repeat(" ", indent))
	p.writeString(p.colorize("-->", aurora.BlueFg|aurora.BrightFg|aurora.BoldFm))
	p.writeString(fmt.Sprintf(" %s%d:%d\n", locationDescription, position.Line, position.Column))
}

func (p ErrorPrettyPrinter) gutter(lineNumberWidth int, lineNumber string) string {
	padding := strings.Repeat(" ", lineNumberWidth-len(lineNumber))
	return p.colorize(lineNumber+padding+" |", aurora.BlueFg|aurora.BrightFg|aurora.BoldFm)
}

// writeExcerpt writes the source line and a marker line below it.
// The marker keeps the tabs of the source line so it stays aligned,
// and other characters are replaced with spaces of the same display width.
func (p ErrorPrettyPrinter) writeExcerpt(
	line string,
	startPosition ast.Position,
	endPosition ast.Position,
	lineNumberWidth int,
	secondaryMessage string,
) {
	if len(line) > maxLineLength {
		line = line[:maxLineLength] + excerptDots
	}

	startColumn := min(max(startPosition.Column, 0), len(line))

	endColumn := len(line) - 1
	if endPosition.Line == startPosition.Line {
		endColumn = min(endPosition.Column, len(line)-1)
	}
	endColumn = max(endColumn, startColumn)

	p.writeString(p.gutter(lineNumberWidth, ""))
	p.writeString("\n")

	p.writeString(p.gutter(lineNumberWidth, strconv.Itoa(startPosition.Line)))
	p.writeString(" ")
	p.writeString(line)
	p.writeString("\n")

	var marker strings.Builder
	state := -1
	rest := line[:startColumn]
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			marker.WriteString("\t")
		} else {
			marker.WriteString(strings.Repeat(" ", width))
		}
	}

	underlined := ""
	if startColumn < len(line) {
		underlined = line[startColumn : endColumn+1]
	}
	caretCount := max(uniseg.StringWidth(underlined), 1)

	p.writeString(p.gutter(lineNumberWidth, ""))
	p.writeString(" ")
	p.writeString(marker.String())
	p.writeString(p.colorize(strings.Repeat("^", caretCount), aurora.RedFg|aurora.BrightFg|aurora.BoldFm))
	if secondaryMessage != "" {
		p.writeString(" ")
		p.writeString(p.colorize(secondaryMessage, aurora.RedFg|aurora.BrightFg|aurora.BoldFm))
	}
	p.writeString("\n")
}

func (p ErrorPrettyPrinter) writeNotes(err error, indent int) {
	errorNotes, ok := err.(errors.ErrorNotes)
	if !ok {
		return
	}
	for _, note := range errorNotes.ErrorNotes() {
		p.writeString(strings.Repeat(" ", indent))
		p.writeString(fmt.Sprintf(" = %s: %s\n", p.colorize(NotePrefix, aurora.BoldFm), note.Message()))
	}
}

// sourceLine returns the line with the given number, starting at 1
func sourceLine(code []byte, lineNumber int) (string, bool) {
	if code == nil || lineNumber < 1 {
		return "", false
	}
	lines := strings.Split(string(code), "\n")
	if lineNumber > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[lineNumber-1], "\r"), true
}
