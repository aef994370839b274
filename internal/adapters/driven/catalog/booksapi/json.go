package booksapi

import jsoniter "github.com/json-iterator/go"

// json decodes numbers as json.Number so records re-encode without
// losing precision.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()
