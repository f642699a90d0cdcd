// Package respond writes the JSON envelope used by every API response:
//
//	{ "success": true, "message": "...", "data": ... }
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dalemusser/institutionhub/internal/app/system/apperr"
	"github.com/dalemusser/institutionhub/internal/app/system/inputval"
	"github.com/dalemusser/institutionhub/internal/app/system/limits"
	"go.uber.org/zap"
)

// Envelope is the body of every API response. Errors is set only for
// validation failures.
type Envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    any                   `json:"data"`
	Errors  []inputval.FieldError `json:"errors,omitempty"`
}

// JSON writes a success envelope with the given status code.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Envelope{Success: true, Message: message, Data: data})
}

// OK is JSON with 200.
func OK(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, message, data)
}

// Fail writes a failure envelope with an explicit status, for middleware
// that rejects a request before any handler runs.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Message: message})
}

// Error writes a failure envelope whose status is derived from err.
// Server-side failures are logged; client errors are not.
func Error(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status := apperr.HTTPStatus(err)
	env := Envelope{Success: false, Message: apperr.Message(err)}

	var verr *inputval.ValidationError
	if errors.As(err, &verr) {
		env.Message = "validation failed"
		env.Errors = verr.Fields
	}

	if status >= 500 && log != nil {
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err))
	}
	write(w, status, env)
}

// DecodeJSON reads a JSON body into dst. Malformed input is reported as an
// apperr.ErrInvalid error.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, limits.MaxJSONBody))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("request body is required")
		}
		return apperr.Invalid("malformed JSON: " + err.Error())
	}
	return nil
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
