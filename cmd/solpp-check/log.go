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

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/logrusorgru/aurora/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/solpp-lang/solpp/pretty"
)

// logger writes progress lines of the command
type logger struct {
	writer   io.Writer
	useColor bool
}

func newLogger(writer io.Writer, useColor bool) *logger {
	return &logger{
		writer:   writer,
		useColor: useColor,
	}
}

func (l *logger) colorize(str string, color aurora.Color) string {
	if !l.useColor {
		return str
	}
	return aurora.Colorize(str, color).String()
}

func (l *logger) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.writer, format+"\n", args...)
}

func (l *logger) info(format string, args ...any) {
	l.printf("%s %s", l.colorize("==>", aurora.BlueFg|aurora.BrightFg|aurora.BoldFm), fmt.Sprintf(format, args...))
}

func (l *logger) success(format string, args ...any) {
	l.printf("%s %s", l.colorize("ok", aurora.GreenFg|aurora.BrightFg|aurora.BoldFm), fmt.Sprintf(format, args...))
}

func (l *logger) error(err error) {
	l.printf("%s", pretty.FormatErrorMessage(pretty.ErrorPrefix, err.Error(), l.useColor))
}

// trace prints a trace recorded by the checker
func (l *logger) trace(operationName string, duration time.Duration, attrs []attribute.KeyValue) {
	var sb strings.Builder
	for _, attr := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(string(attr.Key))
		sb.WriteByte('=')
		sb.WriteString(attr.Value.Emit())
	}
	l.printf(
		"%s %s %s%s",
		l.colorize("trace", aurora.MagentaFg|aurora.BrightFg),
		operationName,
		duration,
		sb.String(),
	)
}
