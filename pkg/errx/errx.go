package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for transport-agnostic handling.
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeBusiness      Type = "BUSINESS"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeInternal      Type = "INTERNAL"
)

// Registry scopes error codes under a domain prefix, e.g. "MATCHING".
type Registry struct {
	prefix string
}

// Code is a registered error definition. Codes are created once at package
// init via Register and turned into Error values with New/NewWithCause.
type Code struct {
	Key        string
	Type       Type
	HTTPStatus int
	Message    string
	prefix     string
}

// NewRegistry creates a registry for the given domain prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register defines a new error code in the registry.
func (r *Registry) Register(key string, t Type, httpStatus int, message string) Code {
	return Code{
		Key:        key,
		Type:       t,
		HTTPStatus: httpStatus,
		Message:    message,
		prefix:     r.prefix,
	}
}

// New creates an error from a registered code.
func (r *Registry) New(c Code) *Error {
	return &Error{
		Code:       c.prefix + "_" + c.Key,
		Type:       c.Type,
		Message:    c.Message,
		HTTPStatus: c.HTTPStatus,
	}
}

// NewWithCause creates an error from a registered code, wrapping the
// underlying cause.
func (r *Registry) NewWithCause(c Code, cause error) *Error {
	err := r.New(c)
	err.cause = cause
	return err
}

// Error carries a domain error code, an HTTP mapping, and optional
// structured details.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a single key/value detail.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails attaches multiple details at once.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// Wrap lifts an arbitrary error into an unregistered Error of the given
// type. If err already is an *Error it is returned unchanged so registered
// codes survive wrapping at service boundaries.
func Wrap(err error, message string, t Type) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{
		Code:       "ERR_" + string(t),
		Type:       t,
		Message:    message,
		HTTPStatus: statusForType(t),
		cause:      err,
	}
}

func statusForType(t Type) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// ToHTTPResponse returns the JSON-serializable body for HTTP error replies.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}
