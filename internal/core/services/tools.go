package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
	"github.com/custodia-labs/books-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/books-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/books-mcp/internal/logger"
)

// Ensure ToolRegistry implements the interface.
var _ driving.ToolService = (*ToolRegistry)(nil)

// ToolRegistry advertises the book search tools and routes calls
// to the catalog client.
type ToolRegistry struct {
	catalog driven.CatalogClient
	byName  map[string]domain.ToolDescriptor
}

// NewToolRegistry creates a registry backed by the given catalog client.
func NewToolRegistry(catalog driven.CatalogClient) *ToolRegistry {
	byName := make(map[string]domain.ToolDescriptor)
	for _, tool := range domain.BookTools() {
		byName[tool.Name] = tool
	}

	return &ToolRegistry{
		catalog: catalog,
		byName:  byName,
	}
}

// ListTools returns the tool descriptors in advertisement order.
func (r *ToolRegistry) ListTools() []domain.ToolDescriptor {
	return domain.BookTools()
}

// CallTool validates args for the named tool and runs one catalog query.
func (r *ToolRegistry) CallTool(
	ctx context.Context, name string, args map[string]any,
) ([]domain.BookRecord, error) {
	callID := uuid.NewString()

	tool, ok := r.byName[name]
	if !ok {
		logger.Warnw("unknown tool requested", "call_id", callID, "tool", name)
		return nil, &domain.ToolNotFoundError{Name: name}
	}

	query, err := queryFromArgs(tool, args)
	if err != nil {
		logger.Debugw("rejected tool arguments", "call_id", callID, "tool", name, "error", err)
		return nil, err
	}

	logger.Debugw("tool call",
		"call_id", callID,
		"tool", name,
		"term", query.Term,
		"publish_by_date", query.PublishByDate)

	books, err := r.fetch(ctx, tool.Kind, query)
	if err != nil {
		err = wrapCatalogError(name, err)
		logger.Warnw("tool call failed", "call_id", callID, "tool", name, "error", err)
		return nil, err
	}

	logger.Debugw("tool call completed", "call_id", callID, "tool", name, "results", len(books))
	return books, nil
}

func (r *ToolRegistry) fetch(
	ctx context.Context, kind domain.SearchKind, query domain.SearchQuery,
) ([]domain.BookRecord, error) {
	switch kind {
	case domain.SearchByAuthor:
		return r.catalog.FetchByAuthor(ctx, query)
	case domain.SearchByTitle:
		return r.catalog.FetchByTitle(ctx, query)
	default:
		return nil, fmt.Errorf("%w: search kind %q", domain.ErrInvalidInput, kind)
	}
}

// queryFromArgs extracts and validates the search term and date filter.
// Scalar arguments are coerced to strings; null means absent. Objects and
// arrays are rejected.
func queryFromArgs(tool domain.ToolDescriptor, args map[string]any) (domain.SearchQuery, error) {
	term, err := cast.ToStringE(args[tool.TermParam])
	if err != nil {
		return domain.SearchQuery{}, &domain.InvalidArgumentError{
			Field:  tool.TermParam,
			Reason: domain.ReasonNotString,
		}
	}

	var publishByDate *string
	if raw, ok := args[domain.ParamPublishByDate]; ok && raw != nil {
		date, err := cast.ToStringE(raw)
		if err != nil {
			return domain.SearchQuery{}, &domain.InvalidArgumentError{
				Field:  domain.ParamPublishByDate,
				Reason: domain.ReasonNotString,
			}
		}
		publishByDate = &date
	}

	return domain.NewSearchQuery(tool.TermParam, term, publishByDate)
}

// wrapCatalogError keeps remote status errors and folds everything else
// into an InternalError naming the tool.
func wrapCatalogError(toolName string, err error) error {
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		return remote
	}
	return &domain.InternalError{ToolName: toolName, Message: err.Error()}
}
