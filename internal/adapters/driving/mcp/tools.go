package mcp

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
	"github.com/custodia-labs/books-mcp/internal/logger"
)

const methodCallTool = "tools/call"

// registerTools registers every tool the tool service advertises.
func (s *Server) registerTools() {
	known := make(map[string]bool)
	for _, desc := range s.ports.Tools.ListTools() {
		known[desc.Name] = true
		s.server.AddTool(&mcp.Tool{
			Name:        desc.Name,
			Description: desc.Description,
			InputSchema: inputSchema(desc),
		}, s.handleToolCall)
	}

	s.server.AddReceivingMiddleware(s.unknownToolMiddleware(known))
}

// unknownToolMiddleware routes calls to unregistered tools through
// handleToolCall, so they fail with a tool_not_found result instead of
// the SDK's protocol error.
func (s *Server) unknownToolMiddleware(known map[string]bool) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if method != methodCallTool {
				return next(ctx, method, req)
			}
			call, ok := req.(*mcp.CallToolRequest)
			if !ok || call.Params == nil || known[call.Params.Name] {
				return next(ctx, method, req)
			}
			return s.handleToolCall(ctx, call)
		}
	}
}

// inputSchema builds the JSON schema advertised for a tool.
func inputSchema(desc domain.ToolDescriptor) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(desc.Params)),
	}

	for _, p := range desc.Params {
		prop := &jsonschema.Schema{Description: p.Description}
		if p.Nullable {
			prop.Types = []string{"string", "null"}
		} else {
			prop.Type = "string"
		}
		schema.Properties[p.Name] = prop

		if p.Required {
			schema.Required = append(schema.Required, p.Name)
		}
	}

	return schema
}

// handleToolCall runs a tool call through the tool service.
// Every failure is reported as an error result, never as a protocol error.
func (s *Server) handleToolCall(
	ctx context.Context,
	req *mcp.CallToolRequest,
) (result *mcp.CallToolResult, err error) {
	name := req.Params.Name

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic in tool %s: %v", name, r)
			result = errorResult(name, &domain.InternalError{ToolName: name, Message: fmt.Sprint(r)})
			err = nil
		}
	}()

	args, err := decodeArguments(req.Params.Arguments)
	if err != nil {
		return errorResult(name, err), nil
	}

	books, err := s.ports.Tools.CallTool(ctx, name, args)
	if err != nil {
		return errorResult(name, err), nil
	}

	text, err := RenderBooks(books)
	if err != nil {
		return errorResult(name, &domain.InternalError{ToolName: name, Message: err.Error()}), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil
}

// decodeArguments parses raw tool arguments. Absent or null arguments
// decode to an empty map.
func decodeArguments(raw []byte) (map[string]any, error) {
	args := make(map[string]any)
	if len(raw) == 0 {
		return args, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &domain.InvalidArgumentError{Field: "arguments", Reason: domain.ReasonNotJSONObject}
	}
	for k, v := range decoded {
		args[k] = v
	}
	return args, nil
}

// RenderBooks serialises books as indented JSON. An empty result renders as [].
func RenderBooks(books []domain.BookRecord) (string, error) {
	if books == nil {
		books = []domain.BookRecord{}
	}
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshalling books: %w", err)
	}
	return string(data), nil
}

// errorResult converts err into a tool result flagged as an error.
func errorResult(toolName string, err error) *mcp.CallToolResult {
	payload := NewErrorData(toolName, err)

	text, marshalErr := json.MarshalIndent(payload, "", "  ")
	if marshalErr != nil {
		text = []byte(payload.Message)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(text)}},
		IsError: true,
	}
}
