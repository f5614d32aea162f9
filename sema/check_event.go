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

	"github.com/solpp-lang/solpp/ast"
	"github.com/solpp-lang/solpp/errors"
)

// EventFlavor distinguishes the declarations that share the event checks:
// events are logged with `emit`, messages are sent with `send`

type EventFlavor uint8

const (
	EventFlavorEvent EventFlavor = iota
	EventFlavorMessage
)

func (f EventFlavor) Name() string {
	switch f {
	case EventFlavorEvent:
		return "event"
	case EventFlavorMessage:
		return "message"
	}

	panic(errors.NewUnreachableError())
}

const (
	maxIndexedEventParameters          = 3
	maxIndexedAnonymousEventParameters = 4
)

func (checker *Checker) VisitEventDefinition(event *ast.EventDefinition) (_ struct{}) {
	checker.checkEventDefinition(event, event.Name, event.Parameters, EventFlavorEvent, event.Anonymous)
	return
}

func (checker *Checker) VisitMessageDefinition(message *ast.MessageDefinition) (_ struct{}) {
	checker.checkEventDefinition(message, message.Name, message.Parameters, EventFlavorMessage, false)
	return
}

func (checker *Checker) checkEventDefinition(
	declaration ast.Declaration,
	name string,
	parameters *ast.ParameterList,
	flavor EventFlavor,
	anonymous bool,
) {
	reportInvalid := func(reason string) {
		checker.report(
			&InvalidEventDefinitionError{
				Flavor: flavor,
				Name:   name,
				Reason: reason,
				Range:  ast.NewRangeFromPositioned(declaration),
			},
		)
	}

	contract := checker.currentContract()

	if flavor == EventFlavorMessage {
		switch {
		case contract == nil:
			reportInvalid("messages can only be declared in contracts")
		case contract.IsLibrary():
			reportInvalid("messages cannot be declared in libraries")
		case contract.IsInterface():
			reportInvalid("messages cannot be declared in interfaces")
		}
	}

	functionType := checker.eventType(declaration)

	indexedCount := 0
	for i, parameter := range parameters.List() {
		parameterType := functionType.Parameters[i]

		if parameter.Indexed {
			if flavor == EventFlavorMessage {
				checker.report(
					&InvalidEventDefinitionError{
						Flavor: flavor,
						Name:   name,
						Reason: fmt.Sprintf("parameter `%s` cannot be indexed", parameter.Name),
						Range:  parameter.Range,
					},
				)
			} else {
				indexedCount++
			}
		}

		if parameterType.IsInvalidType() {
			continue
		}

		if !IsABIEncodable(parameterType, false, checker.useABICoderV2()) {
			_, reason := ABIInterfaceType(parameterType, false)
			if reason == "" {
				reason = "this type is only supported in ABI coder v2"
			}
			checker.report(
				&InvalidEventDefinitionError{
					Flavor: flavor,
					Name:   name,
					Reason: fmt.Sprintf("internal or recursive type `%s` is not allowed as parameter: %s", parameterType, reason),
					Range:  parameter.Range,
				},
			)
		}
	}

	maxIndexed := maxIndexedEventParameters
	if anonymous {
		maxIndexed = maxIndexedAnonymousEventParameters
	}
	if indexedCount > maxIndexed {
		reportInvalid(fmt.Sprintf("more than %d indexed parameters", maxIndexed))
	}
}
