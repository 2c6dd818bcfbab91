/*
 * stl-next: steam launch tinkering, the next one
 * Copyright © 2026 stl-next contributors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program. If not, see <https://www.gnu.org/licenses/>.
 */

// Package errs defines the closed set of error kinds used across the
// project and their mapping to process exit codes.
package errs

import (
	"errors"
	"fmt"
)

// Kind is one of the six closed error categories an operation can fail with.
type Kind int

const (
	KindEnvironment Kind = iota
	KindNotFound
	KindMalformed
	KindIO
	KindTinker
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindEnvironment:
		return "environment"
	case KindNotFound:
		return "not-found"
	case KindMalformed:
		return "malformed"
	case KindIO:
		return "io"
	case KindTinker:
		return "tinker"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// Error pairs a Kind with a human-facing context string, and optionally
// wraps an underlying cause. Its Error() method renders the single-line
// "<kind>: <context>" form.
type Error struct {
	Kind    Kind
	Context string
	Cause   error
}

func New(kind Kind, context string) *Error {
	return &Error{Kind: kind, Context: context}
}

func Wrap(kind Kind, context string, cause error) *Error {
	return &Error{Kind: kind, Context: context, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// As reports whether err (or any error it wraps) is an *Error, returning
// it via the out parameter the way errors.As would.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// ExitCode maps an error returned by a CLI operation onto the process
// exit codes: 0 success, 2 user error, 3 environment error, 4 runtime
// error. Errors not wrapped in *Error are treated as runtime errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	e, ok := As(err)
	if !ok {
		return 4
	}

	switch e.Kind {
	case KindEnvironment:
		return 3
	case KindNotFound, KindMalformed:
		return 2
	default:
		return 4
	}
}
