// Package research provides the web search provider used by the company
// research workflow. Provider outages never propagate: searches fall back to
// a deterministic placeholder hit so downstream prompt assembly always has
// something to work with.
package research

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/jonathan/jobseeker-agent/internal/types"
)

// DefaultLimit is the result count used when a caller passes zero.
const DefaultLimit = 5

// Provider searches an external index for a topic.
type Provider interface {
	// Search returns ranked hits for a query, best first. Implementations
	// degrade to placeholder hits rather than returning provider errors.
	Search(ctx context.Context, query string, limit int) ([]types.SearchHit, error)
}

// GoogleProvider implements Provider on Google Programmable Search. Without
// a credential it always serves placeholder hits.
type GoogleProvider struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleProvider creates a provider. Empty apiKey or cx yields a
// placeholder-only provider rather than an error.
func NewGoogleProvider(ctx context.Context, apiKey, cx string) (*GoogleProvider, error) {
	if apiKey == "" || cx == "" {
		return &GoogleProvider{}, nil
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleProvider{svc: svc, cx: cx}, nil
}

// Configured reports whether a real search backend is available.
func (p *GoogleProvider) Configured() bool {
	return p.svc != nil
}

// Search queries the search index, preserving provider-assigned order. Any
// provider failure degrades to the placeholder set.
func (p *GoogleProvider) Search(ctx context.Context, query string, limit int) ([]types.SearchHit, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if p.svc == nil {
		return PlaceholderHits(query), nil
	}

	resp, err := p.svc.Cse.List().Cx(p.cx).Q(query).Num(int64(limit)).Context(ctx).Do()
	if err != nil {
		return PlaceholderHits(query), nil
	}

	hits := make([]types.SearchHit, 0, len(resp.Items))
	for _, item := range resp.Items {
		hits = append(hits, types.SearchHit{
			Title:   item.Title,
			URL:     item.Link,
			Content: item.Snippet,
		})
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// PlaceholderHits is the deterministic fallback result set served when no
// provider credential is configured or the provider fails.
func PlaceholderHits(query string) []types.SearchHit {
	return []types.SearchHit{
		{
			Title:   "Result for: " + query,
			URL:     "https://example.com/search?q=" + query,
			Content: fmt.Sprintf("This is a placeholder search result for %q. Configure a search API key for real results.", query),
			Score:   0,
		},
	}
}

// CompanyInfoQuery builds the general-information query for a company.
func CompanyInfoQuery(companyName string) string {
	return companyName + " company information"
}

// CompanyNewsQuery builds the recent-news query for a company.
func CompanyNewsQuery(companyName string) string {
	return companyName + " company news recent"
}

// CompanyPeopleQuery builds the leadership query for a company, optionally
// narrowed to a role.
func CompanyPeopleQuery(companyName, role string) string {
	if role != "" {
		return companyName + " " + role + " LinkedIn"
	}
	return companyName + " leadership team executives"
}
