package completion

import (
	"errors"
	"fmt"
)

// Field names reported by ValidationError.
const (
	FieldCredential = "credential"
	FieldVerse      = "verse"
)

// Stage identifies which of the two decode steps failed.
type Stage string

const (
	StageEnvelope Stage = "envelope" // HTTP response body
	StageContent  Stage = "content"  // JSON embedded in the first choice's content
)

// ValidationError reports a missing user input. No request is sent.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// RequestError reports a transport failure or a non-2xx response.
// StatusCode is zero for transport failures.
type RequestError struct {
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion request failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("completion request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError reports a response that could not be decoded at Stage.
type DecodeError struct {
	Stage Stage
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsRequest reports whether err is, or wraps, a *RequestError.
func IsRequest(err error) bool {
	var r *RequestError
	return errors.As(err, &r)
}

// IsDecode reports whether err is, or wraps, a *DecodeError.
func IsDecode(err error) bool {
	var d *DecodeError
	return errors.As(err, &d)
}
