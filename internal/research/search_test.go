package research

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnconfiguredProvider_ServesPlaceholder(t *testing.T) {
	provider, err := NewGoogleProvider(context.Background(), "", "")
	require.NoError(t, err)
	assert.False(t, provider.Configured())

	hits, err := provider.Search(context.Background(), "Acme company information", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Result for: Acme company information", hits[0].Title)
	assert.Contains(t, hits[0].Content, "placeholder")
}

func TestPlaceholderHits_Deterministic(t *testing.T) {
	first := PlaceholderHits("same query")
	second := PlaceholderHits("same query")
	assert.Equal(t, first, second)
}

func TestCompanyQueries(t *testing.T) {
	assert.Equal(t, "Acme company information", CompanyInfoQuery("Acme"))
	assert.Equal(t, "Acme company news recent", CompanyNewsQuery("Acme"))
	assert.Equal(t, "Acme leadership team executives", CompanyPeopleQuery("Acme", ""))
	assert.Equal(t, "Acme CTO LinkedIn", CompanyPeopleQuery("Acme", "CTO"))
}
