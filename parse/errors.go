// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parse

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrExpectedExpression is returned when a token that cannot start an
	// expression is found where one is required.
	ErrExpectedExpression = errors.NewKind("%s: expected expression, got %s")

	// ErrUnexpectedToken is returned when a construct requires a token that
	// is absent or mismatched.
	ErrUnexpectedToken = errors.NewKind("%s: expecting %s but got %s instead")

	// ErrTrailingInput is returned when input remains after a standalone
	// expression.
	ErrTrailingInput = errors.NewKind("%s: unexpected %s after expression")

	// ErrInvalidOperator is returned when registering an operator that the
	// tokenizer cannot produce as a single character token.
	ErrInvalidOperator = errors.NewKind("invalid binary operator %q")

	// ErrInvalidPrecedence is returned when registering an operator with a
	// precedence lower than 1.
	ErrInvalidPrecedence = errors.NewKind("invalid precedence %d for operator %q")

	// ErrRead is returned when the source could not be read to the end.
	ErrRead = errors.NewKind("error reading source")

	// ErrNoProgress signals a parser bug: a construct was accepted without
	// consuming any token.
	ErrNoProgress = errors.NewKind("%s: parser made no progress on %s")
)
