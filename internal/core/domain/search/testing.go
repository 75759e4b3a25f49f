package search

import (
	"context"
	"sync"
)

type TestSearcher struct {
	Results    []Result
	Error      error
	SearchWith []string
	lock       sync.Mutex
}

func NewTestSearcher(results ...Result) *TestSearcher {
	return &TestSearcher{Results: results}
}

func (s *TestSearcher) Search(ctx context.Context, query string) ([]Result, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.SearchWith = append(s.SearchWith, query)
	if s.Error != nil {
		return nil, s.Error
	}
	return s.Results, nil
}
