package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobseeker-agent/internal/types"
)

func TestValidate_ResearchBundle(t *testing.T) {
	bundle := types.ResearchBundle{
		CompanyName:     "Acme",
		Description:     "Builds rockets.",
		RecentNews:      []types.NewsItem{{Title: "Raised Series B", URL: "https://news.example/1"}},
		KeyPeople:       []types.KeyPerson{{Name: "Jane Doe", Title: "CTO"}},
		ResearchSummary: "Worth applying.",
	}
	data, err := json.Marshal(bundle)
	require.NoError(t, err)

	assert.NoError(t, Validate(ResearchBundleSchema, data))
}

func TestValidate_ResearchBundleMissingName(t *testing.T) {
	err := Validate(ResearchBundleSchema, []byte(`{"description":"no name"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidate_ApplicationContent(t *testing.T) {
	content := types.GeneratedContent{
		CoverLetter: "Dear team,",
		OutreachMessages: []types.OutreachMessage{
			{Recipient: "Recruiter", Subject: "Hello", Body: "Hi"},
			{Recipient: "Hiring Manager", Subject: "Hello", Body: "Hi"},
		},
		ApplicationStrategy: "Apply now.",
	}
	data, err := json.Marshal(content)
	require.NoError(t, err)

	assert.NoError(t, Validate(ApplicationContentSchema, data))
}

func TestValidate_ApplicationContentEmptySubjectRejected(t *testing.T) {
	document := []byte(`{
		"cover_letter": "Dear team,",
		"outreach_messages": [
			{"recipient": "Recruiter", "subject": "", "body": "Hi"},
			{"recipient": "Hiring Manager", "subject": "Hello", "body": "Hi"}
		],
		"application_strategy": "Apply now."
	}`)
	err := Validate(ApplicationContentSchema, document)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", []byte(`{}`))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}
