package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/search"

	"github.com/PuerkitoBio/goquery"
)

type item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	HTMLSnippet string `json:"htmlSnippet"`
}

type response struct {
	Items []item `json:"items"`
}

func (r *response) FromJSON(reader io.Reader) error {
	decoder := json.NewDecoder(reader)
	return decoder.Decode(r)
}

// GoogleCustomSearch queries the Custom Search JSON API.
type GoogleCustomSearch struct {
	log        logging.Logger
	httpClient http.Client
	endpoint   url.URL
	apiKey     string
	engineID   string
}

func NewGoogleCustomSearch(
	log logging.Logger,
	endpoint url.URL,
	apiKey string,
	engineID string,
	timeout time.Duration,
) *GoogleCustomSearch {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &GoogleCustomSearch{
		log:        log,
		httpClient: http.Client{Timeout: timeout},
		endpoint:   endpoint,
		apiKey:     apiKey,
		engineID:   engineID,
	}
}

func (g *GoogleCustomSearch) Search(ctx context.Context, query string) ([]search.Result, error) {
	endpoint := g.endpoint
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", g.apiKey)
	params.Set("cx", g.engineID)
	endpoint.RawQuery = params.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("search API error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned %d", resp.StatusCode)
	}

	body := response{}
	if err := body.FromJSON(resp.Body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := make([]search.Result, 0, len(body.Items))
	for _, it := range body.Items {
		results = append(results, search.Result{
			Title:   strings.TrimSpace(it.Title),
			Link:    it.Link,
			Snippet: snippetText(it),
		})
	}
	g.log.Debug(ctx, "Search results received.", logging.Entry("query", query), logging.Entry("count", len(results)))
	return results, nil
}

// snippetText prefers the HTML snippet rendered to plain text and falls back
// to the plain snippet.
func snippetText(it item) string {
	if it.HTMLSnippet != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(it.HTMLSnippet))
		if err == nil {
			if text := collapseSpaces(doc.Text()); text != "" {
				return text
			}
		}
	}
	return collapseSpaces(it.Snippet)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
