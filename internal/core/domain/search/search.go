package search

import (
	"context"
	"errors"
)

var ErrQueryNotSpecified = errors.New("search query is not specified")

type Result struct {
	Title   string
	Link    string
	Snippet string
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}
