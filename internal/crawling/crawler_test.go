package crawling

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Acme</title>
			<meta name="description" content="Rockets and anvils.">
			</head><body><p>We build rockets.</p></body></html>`))
	}))
	defer server.Close()

	result := New().Fetch(context.Background(), server.URL)
	require.True(t, result.Success)
	assert.Equal(t, "Acme", result.Title)
	assert.Equal(t, "Rockets and anvils.", result.Description)
	assert.Contains(t, result.Content, "We build rockets.")
	assert.Empty(t, result.Error)
}

func TestFetch_TruncatesLongContent(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 2000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>" + long + "</p></body></html>"))
	}))
	defer server.Close()

	result := New().Fetch(context.Background(), server.URL)
	require.True(t, result.Success)
	assert.LessOrEqual(t, len(result.Content), MaxContentLength)
}

func TestFetch_FailureRecordedInResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	result := New().Fetch(context.Background(), server.URL)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, server.URL, result.URL)
}

func TestFetchSite_DiscoversAboutAndCareers(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><body>
			<a href="/about-us">About Us</a>
			<a href="/jobs">Careers</a>
			<p>Homepage content.</p>
		</body></html>`))
	})
	mux.HandleFunc("/about-us", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>Our mission statement.</p></body></html>"))
	})
	mux.HandleFunc("/jobs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>Open positions.</p></body></html>"))
	})

	result := New().FetchSite(context.Background(), server.URL)
	require.True(t, result.Success)
	require.Contains(t, result.Pages, PageAbout)
	require.Contains(t, result.Pages, PageCareers)
	assert.Contains(t, result.Pages[PageAbout].Content, "mission")
	assert.Contains(t, result.Pages[PageCareers].Content, "Open positions")
}

func TestFetchSite_FirstMatchingAnchorWins(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><body>
			<a href="/first-about">About the team</a>
			<a href="/second-about">More about us</a>
		</body></html>`))
	})
	mux.HandleFunc("/first-about", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>first page</p></body></html>"))
	})
	mux.HandleFunc("/second-about", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>second page</p></body></html>"))
	})

	result := New().FetchSite(context.Background(), server.URL)
	require.True(t, result.Success)
	require.Contains(t, result.Pages, PageAbout)
	assert.Contains(t, result.Pages[PageAbout].Content, "first page")
}

func TestFetchSite_FailingChildOmitted(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><body><a href="/about">About</a><p>root</p></body></html>`))
	})
	// No /about handler; the child fetch 404s.

	result := New().FetchSite(context.Background(), server.URL)
	require.True(t, result.Success)
	assert.NotContains(t, result.Pages, PageAbout)
}

func TestFetchSite_RootFailurePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	result := New().FetchSite(context.Background(), server.URL)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Nil(t, result.Pages)
}

func TestResolveHref(t *testing.T) {
	tests := []struct {
		name string
		root string
		href string
		want string
	}{
		{"absolute url untouched", "https://acme.com", "https://other.com/page", "https://other.com/page"},
		{"absolute path joins host", "https://acme.com/some/deep/path", "/about", "https://acme.com/about"},
		{"absolute path no root path", "https://acme.com", "/about", "https://acme.com/about"},
		{"relative path joins root", "https://acme.com/", "careers", "https://acme.com/careers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveHref(tt.root, tt.href))
		})
	}
}
