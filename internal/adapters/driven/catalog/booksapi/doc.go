// Package booksapi implements driven.CatalogClient against the Books API
// HTTP service.
//
// Endpoints:
//
//	GET {base}/author/{author_name}[?publish_by_date=YYYY-MM-DD]
//	GET {base}/books/{book_name}[?publish_by_date=YYYY-MM-DD]
//
// Both return a JSON array of book objects. Every call uses its own
// http.Client with keep-alives disabled, so no connection outlives the
// request that opened it.
package booksapi
