package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRemote indicates the catalog answered with a non-success status.
	ErrRemote = errors.New("remote error")

	// ErrInternal indicates any other failure while serving a tool call.
	ErrInternal = errors.New("internal error")
)

// Error codes reported to tool callers.
const (
	CodeToolNotFound    = "tool_not_found"
	CodeInvalidArgument = "invalid_argument"
	CodeHTTPError       = "http_error"
	CodeInternalError   = "internal_error"
)

// Reasons carried by InvalidArgumentError.
const (
	ReasonRequired      = "required"
	ReasonNotString     = "must be a string"
	ReasonNotJSONObject = "must be a JSON object"
)

// CodedError is an error that carries a stable code for tool callers.
type CodedError interface {
	error
	Code() string
}

// ToolNotFoundError is returned when an unknown tool name is called.
type ToolNotFoundError struct {
	Name string
}

func (e *ToolNotFoundError) Error() string { return "Unknown tool: " + e.Name }

// Code returns CodeToolNotFound.
func (e *ToolNotFoundError) Code() string { return CodeToolNotFound }

func (e *ToolNotFoundError) Unwrap() error { return ErrNotFound }

// InvalidArgumentError is returned when a tool argument fails local validation.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Reason == ReasonRequired {
		return e.Field + " is required"
	}
	return e.Field + " " + e.Reason
}

// Code returns CodeInvalidArgument.
func (e *InvalidArgumentError) Code() string { return CodeInvalidArgument }

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidInput }

// RemoteError is returned when the catalog responds with a non-2xx status.
// Body holds the raw response text.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("HTTP error while calling Books API: %d %s", e.StatusCode, e.Body)
}

// Code returns CodeHTTPError.
func (e *RemoteError) Code() string { return CodeHTTPError }

func (e *RemoteError) Unwrap() error { return ErrRemote }

// InternalError covers every other failure: network, timeout, bad JSON.
type InternalError struct {
	ToolName string
	Message  string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("Unexpected error while calling tool %s: %s", e.ToolName, e.Message)
}

// Code returns CodeInternalError.
func (e *InternalError) Code() string { return CodeInternalError }

func (e *InternalError) Unwrap() error { return ErrInternal }
