// Package apperr defines the error taxonomy shared by the stores, the user
// service client, the orchestrator, and the HTTP layer.
//
// Callers classify errors with errors.Is against the sentinel kinds:
//
//	if errors.Is(err, apperr.ErrNotFound) { ... }
//
// HTTPStatus maps a kind to the status code the API layer responds with.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound: the entity is absent or not in a state where the
	// requested read or transition applies.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyInState: delete of a deleted record, restore of an active one.
	ErrAlreadyInState = errors.New("already in requested state")
	// ErrRemoteService: the user service failed or returned a failure envelope.
	ErrRemoteService = errors.New("user service error")
	// ErrStorage: persistence fault.
	ErrStorage = errors.New("storage error")
	// ErrInvalid: malformed input rejected before any write.
	ErrInvalid = errors.New("invalid input")
)

// Error carries a kind, a user-facing message, and an optional cause.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Msg != "" && e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Kind.Error()
}

// Is reports kind equality so errors.Is(err, ErrNotFound) works on *Error.
func (e *Error) Is(target error) bool { return e.Kind == target }

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }

func AlreadyInState(msg string) error { return &Error{Kind: ErrAlreadyInState, Msg: msg} }

func Invalid(msg string) error { return &Error{Kind: ErrInvalid, Msg: msg} }

// Storage wraps a persistence fault. A nil err yields nil.
func Storage(msg string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: ErrStorage, Msg: msg, Err: err}
}

// Remote wraps a user service failure. err may be nil when the failure is
// a failure envelope rather than a transport error.
func Remote(msg string, err error) error {
	return &Error{Kind: ErrRemoteService, Msg: msg, Err: err}
}

// Message returns the user-facing message of err. Storage faults and
// unclassified errors are not exposed verbatim.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Kind == ErrStorage {
		if errors.Is(err, ErrStorage) {
			return "internal storage error"
		}
		return "internal error"
	}
	if e.Msg != "" {
		return e.Msg
	}
	return e.Kind.Error()
}

// HTTPStatus maps err to a response status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyInState):
		return http.StatusConflict
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrRemoteService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
