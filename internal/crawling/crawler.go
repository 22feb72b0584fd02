// Package crawling implements the company website crawler. Crawling never
// fails a calling workflow: every fetch produces a CrawlResult whose Success
// flag and Error field carry the outcome.
package crawling

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/jobseeker-agent/internal/fetch"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

// MaxContentLength caps extracted page text to bound downstream prompt size.
const MaxContentLength = 10000

// Secondary page keys on CrawlResult.Pages.
const (
	PageAbout   = "about"
	PageCareers = "careers"
)

// Crawler fetches pages and discovers a company site's secondary pages.
type Crawler struct {
	opts       *fetch.Options
	useBrowser bool
	verbose    bool
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithFetchOptions overrides the transport policy.
func WithFetchOptions(opts *fetch.Options) Option {
	return func(c *Crawler) { c.opts = opts }
}

// WithBrowser enables headless-browser rendering when a plain fetch yields
// too little text. Requires Chrome on the system.
func WithBrowser(verbose bool) Option {
	return func(c *Crawler) {
		c.useBrowser = true
		c.verbose = verbose
	}
}

// New creates a Crawler with the default transport policy.
func New(options ...Option) *Crawler {
	c := &Crawler{opts: fetch.DefaultOptions()}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Fetch retrieves one page and extracts its text, title, and meta
// description. Transport and status errors come back inside the result.
func (c *Crawler) Fetch(ctx context.Context, url string) types.CrawlResult {
	result, err := fetch.URL(ctx, url, c.opts)
	if err != nil {
		return types.CrawlResult{URL: url, Error: err.Error()}
	}

	page, err := fetch.ExtractPage(result.HTML)
	if err != nil {
		return types.CrawlResult{URL: url, Error: err.Error()}
	}

	if c.useBrowser && fetch.ShouldUseBrowser(page.Text) {
		if html, rerr := fetch.RenderPage(ctx, url, c.opts.Timeout, c.verbose); rerr == nil {
			if rendered, perr := fetch.ExtractPage(html); perr == nil {
				page = rendered
			}
		}
		// Rendering failures fall back to the plain fetch result.
	}

	return types.CrawlResult{
		URL:         url,
		Title:       page.Title,
		Description: page.Description,
		Content:     truncate(page.Text, MaxContentLength),
		Success:     true,
	}
}

// FetchSite crawls a site root and discovers its "about" and "careers"
// pages by scanning anchor text. The first matching anchor in document
// order wins for each page; child fetch failures are silently omitted.
func (c *Crawler) FetchSite(ctx context.Context, rootURL string) types.CrawlResult {
	root := c.Fetch(ctx, rootURL)
	if !root.Success {
		return root
	}

	raw, err := fetch.URL(ctx, rootURL, c.opts)
	if err != nil {
		return root
	}

	links := discoverLinks(raw.HTML, rootURL)
	for _, name := range []string{PageAbout, PageCareers} {
		href, ok := links[name]
		if !ok {
			continue
		}
		child := c.Fetch(ctx, href)
		if !child.Success {
			continue
		}
		if root.Pages == nil {
			root.Pages = make(map[string]*types.CrawlResult)
		}
		root.Pages[name] = &child
	}

	return root
}

// discoverLinks scans all anchors in document order and records the first
// whose visible text contains "about" and the first containing "career".
func discoverLinks(html, rootURL string) map[string]string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	links := make(map[string]string)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		text := strings.ToLower(sel.Text())

		if _, seen := links[PageAbout]; !seen && strings.Contains(text, "about") {
			links[PageAbout] = resolveHref(rootURL, href)
		}
		if _, seen := links[PageCareers]; !seen && strings.Contains(text, "career") {
			links[PageCareers] = resolveHref(rootURL, href)
		}
	})
	return links
}

// resolveHref resolves a href against the root URL. Absolute paths join the
// root's scheme and host; relative paths join the root path. No ".."
// normalization is done.
func resolveHref(rootURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		if idx := strings.Index(rootURL, "://"); idx >= 0 {
			rest := rootURL[idx+3:]
			if slash := strings.Index(rest, "/"); slash >= 0 {
				return rootURL[:idx+3] + rest[:slash] + href
			}
		}
		return strings.TrimRight(rootURL, "/") + href
	}
	return strings.TrimRight(rootURL, "/") + "/" + href
}

// truncate bounds s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
