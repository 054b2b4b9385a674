// /*
// Copyright 2025 The Upbound Authors.
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
// */

// Package toolerr classifies the errors a tool call can end with.
package toolerr

import (
	"fmt"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
)

// A Reason classifies why a tool call could not be fulfilled.
type Reason string

// Reasons a tool call can fail.
const (
	// InvalidArgument means the caller supplied an unsatisfiable combination
	// of arguments.
	InvalidArgument Reason = "InvalidArgument"
	// ResourceNotFound means a named resource does not exist.
	ResourceNotFound Reason = "ResourceNotFound"
	// NoResourcesFound means a query legitimately matched nothing.
	NoResourcesFound Reason = "NoResourcesFound"
	// UpstreamFailure means the API server call itself failed.
	UpstreamFailure Reason = "UpstreamFailure"
	// UnsupportedResourceType means the resource type is not one the tool
	// knows how to resolve.
	UnsupportedResourceType Reason = "UnsupportedResourceType"
)

// Error is a classified tool error.
type Error struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error with the supplied reason and message.
func New(r Reason, format string, args ...any) *Error {
	return &Error{Reason: r, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with the supplied reason that wraps err. The message
// is prefixed to err's text.
func Wrap(err error, r Reason, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Reason: r, Message: msg + ": " + err.Error(), Err: err}
}

// Classify attaches reason r to err without changing its message.
func Classify(err error, r Reason) error {
	if err == nil {
		return nil
	}
	return &Error{Reason: r, Err: err}
}

// ReasonFor returns the reason attached to err. Errors that were never
// classified are upstream failures.
func ReasonFor(err error) Reason {
	if err == nil {
		return ""
	}
	var te *Error
	if errors.As(err, &te) {
		return te.Reason
	}
	return UpstreamFailure
}

// Is reports whether err carries reason r.
func Is(err error, r Reason) bool {
	return err != nil && ReasonFor(err) == r
}
