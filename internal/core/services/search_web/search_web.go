package searchweb

import (
	"context"
	"strings"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/search"
	"assistant/internal/core/services"
)

type Input struct {
	Query string
}

func (i Input) GetRateLimitKey() string {
	return "search"
}

type Result struct {
	Results []search.Result
}

type service struct {
	log      logging.Logger
	searcher search.Searcher
	limit    int
}

// New creates the web search. At most limit results are returned, a
// non-positive limit means all of them.
func New(log logging.Logger, searcher search.Searcher, limit int) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if searcher == nil {
		panic(e.NewNilArgumentError("searcher"))
	}
	return &service{log: log, searcher: searcher, limit: limit}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return result, search.ErrQueryNotSpecified
	}

	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("query", query))
		return result, err
	}
	if s.limit > 0 && len(results) > s.limit {
		results = results[:s.limit]
	}

	s.log.Info(ctx, "Web search completed.", logging.Entry("query", query), logging.Entry("results", len(results)))
	result.Results = results
	return result, nil
}
