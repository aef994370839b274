// Package mcp provides an MCP (Model Context Protocol) server adapter that
// exposes the Books API catalog searches as tools for AI assistants.
package mcp

import (
	"errors"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
)

// ErrMissingToolService is returned when the tool service is not provided.
var ErrMissingToolService = errors.New("mcp: tool service is required")

// ErrorData is the JSON object returned as the text of a failed tool call.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// ToolNotFound
	Name string `json:"name,omitempty"`

	// InvalidArgument
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`

	// RemoteError
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"body,omitempty"`

	// InternalError
	ToolName string `json:"tool_name,omitempty"`
}

// NewErrorData maps err onto the error taxonomy. Errors outside it are
// reported as internal errors of toolName.
func NewErrorData(toolName string, err error) ErrorData {
	var (
		notFound *domain.ToolNotFoundError
		invalid  *domain.InvalidArgumentError
		remote   *domain.RemoteError
		internal *domain.InternalError
	)

	switch {
	case errors.As(err, &notFound):
		return ErrorData{Code: notFound.Code(), Message: notFound.Error(), Name: notFound.Name}
	case errors.As(err, &invalid):
		return ErrorData{
			Code:    invalid.Code(),
			Message: invalid.Error(),
			Field:   invalid.Field,
			Reason:  invalid.Reason,
		}
	case errors.As(err, &remote):
		return ErrorData{
			Code:       remote.Code(),
			Message:    remote.Error(),
			StatusCode: remote.StatusCode,
			Body:       remote.Body,
		}
	case errors.As(err, &internal):
		return ErrorData{
			Code:     internal.Code(),
			Message:  internal.Error(),
			ToolName: internal.ToolName,
		}
	default:
		wrapped := &domain.InternalError{ToolName: toolName, Message: err.Error()}
		return ErrorData{Code: wrapped.Code(), Message: wrapped.Error(), ToolName: toolName}
	}
}
