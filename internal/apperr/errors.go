// Package apperr holds the domain error variant raised by the services layer
// and the classifier that turns any failure into an HTTP status and message.
package apperr

import "net/http"

// Kind tags a domain error.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidInput
)

// Messages surfaced to clients.
const (
	MsgReviewNotFound      = "review_id not found"
	MsgUsernameNotFound    = "username not found"
	MsgInputDataMissing    = "Input data missing"
	MsgInvalidInput        = "Invalid input"
	MsgInvalidEndpoint     = "Invalid endpoint input"
	MsgServerError         = "Server error!"
	MsgRouteNotFound       = "Route not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgDatabaseUnavailable = "Database unavailable"
)

// Error is a business-rule violation detected by the services layer.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Status maps the kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// Sentinel domain errors shared by the orchestration layer.
var (
	ErrReviewNotFound   = NotFound(MsgReviewNotFound)
	ErrUsernameNotFound = NotFound(MsgUsernameNotFound)
	ErrInputDataMissing = InvalidInput(MsgInputDataMissing)
	ErrInvalidInput     = InvalidInput(MsgInvalidInput)
	ErrValueOutOfRange  = InvalidInput(MsgInvalidEndpoint)
)
