//nolint:revive // types is a standard Go package name pattern
package types

// SearchHit is one ranked result from the search provider. Hits keep the
// provider-assigned order, which is assumed relevance-ranked descending.
type SearchHit struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// CrawlResult holds the outcome of fetching one page. A transport or status
// failure yields Success=false with Error set; callers never see an error
// value from crawling.
type CrawlResult struct {
	URL         string                  `json:"url"`
	Title       string                  `json:"title,omitempty"`
	Description string                  `json:"description,omitempty"`
	Content     string                  `json:"content,omitempty"`
	Success     bool                    `json:"success"`
	Error       string                  `json:"error,omitempty"`
	Pages       map[string]*CrawlResult `json:"pages,omitempty"`
}
