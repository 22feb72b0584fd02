package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("research.json", "analyze-company")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "{{.CompanyName}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("research.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Research {{.CompanyName}} in the {{.Industry}} industry."
	data := map[string]string{
		"CompanyName": "Acme Corp",
		"Industry":    "aerospace",
	}

	result := Format(template, data)
	assert.Equal(t, "Research Acme Corp in the aerospace industry.", result)
}

func TestFormat_UnknownPlaceholderRemains(t *testing.T) {
	template := "Hello {{.Name}}"
	result := Format(template, map[string]string{})
	assert.Equal(t, template, result)
}

func TestWorkflowPromptFilesComplete(t *testing.T) {
	ClearCache()

	tests := []struct {
		file string
		keys []string
	}{
		{"research.json", []string{"analyze-company", "analyze-culture", "extract-key-people", "research-summary"}},
		{"content.json", []string{"cover-letter", "outreach-recruiter", "outreach-hiring-manager", "outreach-networking", "application-strategy"}},
		{"profile.json", []string{"builder-system", "analyze-resume", "initial-questions", "followup-questions"}},
	}

	for _, tt := range tests {
		keys, err := List(tt.file)
		require.NoError(t, err, tt.file)
		for _, key := range tt.keys {
			assert.Contains(t, keys, key, "%s missing %s", tt.file, key)
		}
	}
}

func TestCaching(t *testing.T) {
	ClearCache()

	first, err := Get("content.json", "cover-letter")
	require.NoError(t, err)

	second, err := Get("content.json", "cover-letter")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
