package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "hello")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestURL_FollowsRedirects(t *testing.T) {
	var target *httptest.Server
	target = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, target.URL+"/new", http.StatusMovedPermanently)
			return
		}
		_, _ = w.Write([]byte("redirected content"))
	}))
	defer target.Close()

	result, err := URL(context.Background(), target.URL+"/old", nil)
	require.NoError(t, err)
	assert.Contains(t, result.HTML, "redirected content")
}

func TestExtractPage(t *testing.T) {
	html := `<html><head>
		<title>Acme Corp</title>
		<meta name="description" content="We make everything.">
		<script>var x = "should not appear";</script>
		<style>.hidden { display: none; }</style>
	</head><body>
		<h1>Welcome</h1>
		<p>We build   rockets.</p>
	</body></html>`

	page, err := ExtractPage(html)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", page.Title)
	assert.Equal(t, "We make everything.", page.Description)
	assert.Contains(t, page.Text, "Welcome")
	assert.Contains(t, page.Text, "We build")
	assert.NotContains(t, page.Text, "should not appear")
	assert.NotContains(t, page.Text, "display: none")
}

func TestExtractPage_NoTitleOrMeta(t *testing.T) {
	page, err := ExtractPage("<html><body>bare page</body></html>")
	require.NoError(t, err)
	assert.Empty(t, page.Title)
	assert.Empty(t, page.Description)
	assert.Contains(t, page.Text, "bare page")
}

func TestCleanWhitespace(t *testing.T) {
	input := "  first line  \n\n\n   second    phrase  \n"
	out := cleanWhitespace(input)
	assert.NotContains(t, out, "\n\n")
	assert.Contains(t, out, "first line")
}
