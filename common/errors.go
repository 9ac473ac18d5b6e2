// Copyright 2026 Blink Labs Software
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

package common

import "fmt"

// ErrorKind classifies a structured error so callers can decide whether it
// halts a module, gets attached to a transaction, or is returned to a
// querier, without string-matching on error text.
type ErrorKind uint8

const (
	// ErrorMalformed means input bytes did not parse; attached to the
	// transaction's error field, processing continues.
	ErrorMalformed ErrorKind = iota
	ErrorWrongNetwork
	ErrorOutputTooSmallUTxO
	ErrorInputSetEmpty
	ErrorMissingWitness
	ErrorInvalidSignature
	ErrorExtraneousWitness
	ErrorScriptEvaluationFailed
	ErrorVRF
	ErrorKES
	ErrorNotFound
	ErrorNotImplemented
	// ErrorInternal marks an invariant violation; the owning module
	// terminates and the process supervisor restarts it.
	ErrorInternal
	ErrorNetworkIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorMalformed:
		return "Malformed"
	case ErrorWrongNetwork:
		return "WrongNetwork"
	case ErrorOutputTooSmallUTxO:
		return "OutputTooSmallUTxO"
	case ErrorInputSetEmpty:
		return "InputSetEmpty"
	case ErrorMissingWitness:
		return "MissingWitness"
	case ErrorInvalidSignature:
		return "InvalidSignature"
	case ErrorExtraneousWitness:
		return "ExtraneousWitness"
	case ErrorScriptEvaluationFailed:
		return "ScriptEvaluationFailed"
	case ErrorVRF:
		return "VRFError"
	case ErrorKES:
		return "KESError"
	case ErrorNotFound:
		return "NotFound"
	case ErrorNotImplemented:
		return "NotImplemented"
	case ErrorInternal:
		return "InternalError"
	case ErrorNetworkIO:
		return "Network/IO"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// TypedError pairs an ErrorKind with a human-readable detail and, optionally,
// a wrapped lower-level cause. It does not record which transaction an error
// concerns.
type TypedError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *TypedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *TypedError) Unwrap() error {
	return e.Err
}

// NewTypedError builds a TypedError, optionally wrapping a lower-level
// cause.
func NewTypedError(kind ErrorKind, detail string, cause error) *TypedError {
	return &TypedError{Kind: kind, Detail: detail, Err: cause}
}

// IsHalting reports whether an ErrorKind's propagation policy terminates
// the owning module rather than being published or attached to a
// transaction. Only invariant violations halt.
func (k ErrorKind) IsHalting() bool {
	return k == ErrorInternal
}
