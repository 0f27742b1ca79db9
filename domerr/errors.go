// Package domerr enumerates the DOM error taxonomy used across domkit.
//
// Every fallible operation in domkit returns a plain Go error whose
// concrete type is Error. The core never logs, retries, or partially
// applies a mutation (see the mutation engine's all-or-nothing contract);
// callers distinguish error kinds with errors.Is against the sentinel
// values below, or by inspecting Kind directly.
package domerr

import "fmt"

// Kind is a closed enumeration mirroring the WHATWG DOMException names
// plus one allocation-failure kind that has no DOM analogue.
type Kind string

const (
	HierarchyRequestError Kind = "HierarchyRequestError"
	NotFoundError         Kind = "NotFoundError"
	IndexSizeError        Kind = "IndexSizeError"
	InvalidCharacterError Kind = "InvalidCharacterError"
	InvalidStateError     Kind = "InvalidStateError"
	NamespaceError        Kind = "NamespaceError"
	InUseAttributeError   Kind = "InUseAttributeError"
	AbortError            Kind = "AbortError"
	SyntaxError           Kind = "SyntaxError"
	NotSupportedError     Kind = "NotSupportedError"
	OutOfMemory           Kind = "OutOfMemory"
)

// Error is the uniform error value returned by fallible domkit operations.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is makes errors.Is match any two *Error values by Kind alone, so a
// sentinel such as ErrHierarchyRequest matches every error of that kind
// whatever its message. A bare Kind is not an error and cannot be a target.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Sentinel values for errors.Is comparisons against a specific kind without
// needing a message, e.g. errors.Is(err, domerr.ErrNotFound).
var (
	ErrHierarchyRequest = &Error{Kind: HierarchyRequestError}
	ErrNotFound         = &Error{Kind: NotFoundError}
	ErrIndexSize        = &Error{Kind: IndexSizeError}
	ErrInvalidCharacter = &Error{Kind: InvalidCharacterError}
	ErrInvalidState     = &Error{Kind: InvalidStateError}
	ErrNamespace        = &Error{Kind: NamespaceError}
	ErrInUseAttribute   = &Error{Kind: InUseAttributeError}
	ErrAbort            = &Error{Kind: AbortError}
	ErrSyntax           = &Error{Kind: SyntaxError}
	ErrNotSupported     = &Error{Kind: NotSupportedError}
	ErrOutOfMemory      = &Error{Kind: OutOfMemory}
)
