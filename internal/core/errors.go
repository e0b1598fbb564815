package core

import "errors"

// Error codes for errors that reach the wire.
const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeRateLimited  = "rate_limited"
)

var (
	ErrHubStopped = errors.New("hub stopped")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}

// Outcome is the typed result of a state operation. Most failures are
// silent on the wire; the outcome keeps them distinguishable in logs,
// metrics and tests.
type Outcome int

const (
	OutcomeOK Outcome = iota
	// OutcomeNotFound: the referenced room or participant does not exist.
	OutcomeNotFound
	// OutcomeAlreadyExists: a room with the id is already registered.
	OutcomeAlreadyExists
	// OutcomeCreatorLimit: the creator already owns a non-default room.
	OutcomeCreatorLimit
	// OutcomeUnauthorized: wrong secret on join, or kick by a non-creator.
	OutcomeUnauthorized
	// OutcomeForbidden: the operation targets the default room.
	OutcomeForbidden
	// OutcomeInvalid: the request could not be applied at all.
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeAlreadyExists:
		return "already_exists"
	case OutcomeCreatorLimit:
		return "creator_limit"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeForbidden:
		return "forbidden"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}
