package llm

import "fmt"

// Kind classifies a backend failure. The set is closed: every provider error
// must be translated into exactly one kind before crossing the package
// boundary.
type Kind int

const (
	KindKeyMissing Kind = iota
	KindKeyInvalid
	KindQuotaExceeded
	KindRequestFailed
	KindUnknown
)

// Stable machine-readable codes, one per kind.
const (
	CodeKeyMissing    = "API_KEY_MISSING"
	CodeKeyInvalid    = "API_KEY_INVALID"
	CodeQuotaExceeded = "QUOTA_EXCEEDED"
	CodeRequestFailed = "API_ERROR"
	CodeUnknown       = "UNKNOWN"
)

// Error is a classified backend failure.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Code:    codeFor(kind),
		Message: fmt.Sprintf(format, args...),
		cause:   cause,
	}
}

func codeFor(kind Kind) string {
	switch kind {
	case KindKeyMissing:
		return CodeKeyMissing
	case KindKeyInvalid:
		return CodeKeyInvalid
	case KindQuotaExceeded:
		return CodeQuotaExceeded
	case KindRequestFailed:
		return CodeRequestFailed
	default:
		return CodeUnknown
	}
}
