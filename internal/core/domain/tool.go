package domain

import "slices"

// Tool names advertised to MCP clients.
const (
	ToolGetBooksByAuthor = "get_books_by_author"
	ToolGetBooksByTitle  = "get_books_by_title"
)

// Tool argument names.
const (
	ParamAuthorName    = "author_name"
	ParamBookName      = "book_name"
	ParamPublishByDate = "publish_by_date"
)

// ToolParam describes one string argument of a tool.
type ToolParam struct {
	Name        string
	Description string
	Required    bool

	// Nullable allows an explicit null in place of a string.
	Nullable bool
}

// ToolDescriptor is the static metadata for one callable tool.
type ToolDescriptor struct {
	Name        string
	Description string

	// Kind is the catalog index the tool searches.
	Kind SearchKind

	// TermParam is the argument holding the search term.
	TermParam string

	Params []ToolParam
}

var publishByDateParam = ToolParam{
	Name:        ParamPublishByDate,
	Description: "Optional publish-by date filter in YYYY-MM-DD format.",
	Nullable:    true,
}

var bookTools = []ToolDescriptor{
	{
		Name: ToolGetBooksByAuthor,
		Description: "Search for books by author name. " +
			"The author_name is treated as a partial match pattern. " +
			"Optionally filter by publish_by_date (YYYY-MM-DD).",
		Kind:      SearchByAuthor,
		TermParam: ParamAuthorName,
		Params: []ToolParam{
			{Name: ParamAuthorName, Description: "Author name (partial match allowed).", Required: true},
			publishByDateParam,
		},
	},
	{
		Name: ToolGetBooksByTitle,
		Description: "Search for books by book title. " +
			"The book_name is treated as a partial match pattern. " +
			"Optionally filter by publish_by_date (YYYY-MM-DD).",
		Kind:      SearchByTitle,
		TermParam: ParamBookName,
		Params: []ToolParam{
			{Name: ParamBookName, Description: "Book title (partial match allowed).", Required: true},
			publishByDateParam,
		},
	},
}

// BookTools returns the descriptors for every book search tool, in
// advertisement order. Callers receive a copy and may not alter the originals.
func BookTools() []ToolDescriptor {
	tools := make([]ToolDescriptor, len(bookTools))
	for i, t := range bookTools {
		t.Params = slices.Clone(t.Params)
		tools[i] = t
	}
	return tools
}
