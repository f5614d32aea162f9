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

package errors

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"
)

// InternalError is a defect in the checker itself,
// for example reading a type annotation that was never set.
//
// Internal errors are raised with panic and are never reported as diagnostics.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is a problem in the checked program.
type UserError interface {
	error
	IsUserError()
}

// UnreachableError

// UnreachableError is raised when a code path is entered
// that the checker's own invariants rule out.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (UnreachableError) IsInternalError() {}

// UnexpectedError is the general purpose InternalError.
type UnexpectedError struct {
	Err   error
	Stack []byte
}

var _ InternalError = UnexpectedError{}

func NewUnexpectedError(message string, arg ...any) UnexpectedError {
	return UnexpectedError{
		Err:   fmt.Errorf(message, arg...),
		Stack: debug.Stack(),
	}
}

func NewUnexpectedErrorFromCause(err error) UnexpectedError {
	return UnexpectedError{
		Err:   err,
		Stack: debug.Stack(),
	}
}

func (e UnexpectedError) Unwrap() error {
	return e.Err
}

func (e UnexpectedError) Error() string {
	message := e.Err.Error()
	if len(e.Stack) == 0 {
		return fmt.Sprintf("unexpected error: %s", message)
	}
	return fmt.Sprintf("unexpected error: %s\n%s", message, e.Stack)
}

func (UnexpectedError) IsInternalError() {}

// DefaultUserError is the general purpose UserError.
type DefaultUserError struct {
	Err error
}

var _ UserError = DefaultUserError{}

func NewDefaultUserError(message string, arg ...any) DefaultUserError {
	return DefaultUserError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (e DefaultUserError) Unwrap() error {
	return e.Err
}

func (e DefaultUserError) Error() string {
	return e.Err.Error()
}

func (DefaultUserError) IsUserError() {}

// SecondaryError is an error that carries an additional explanation
type SecondaryError interface {
	SecondaryError() string
}

// ErrorNotes is an error that points at related source locations
type ErrorNotes interface {
	ErrorNotes() []ErrorNote
}

type ErrorNote interface {
	Message() string
}

// ParentError is an error that groups child errors
type ParentError interface {
	error
	ChildErrors() []error
}

// IsInternalError reports whether err, or an error it wraps, is an InternalError.
func IsInternalError(err error) bool {
	switch err := err.(type) {
	case InternalError:
		return true
	case xerrors.Wrapper:
		return IsInternalError(err.Unwrap())
	default:
		return false
	}
}

// IsUserError reports whether err, or an error it wraps, is a UserError.
func IsUserError(err error) bool {
	switch err := err.(type) {
	case UserError:
		return true
	case xerrors.Wrapper:
		return IsUserError(err.Unwrap())
	default:
		return false
	}
}
