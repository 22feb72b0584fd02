package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobseeker-agent/internal/types"
)

func TestBuildJobQuery_NoFilters(t *testing.T) {
	query, args := buildJobQuery(JobFilters{})
	assert.Contains(t, query, "WHERE 1=1")
	assert.Contains(t, query, "ORDER BY created_at DESC LIMIT $1")
	require.Len(t, args, 1)
	assert.Equal(t, 50, args[0])
}

func TestBuildJobQuery_AllFilters(t *testing.T) {
	profileID := uuid.New()
	query, args := buildJobQuery(JobFilters{
		ProfileID:   profileID,
		CompanyName: "Acme",
		Status:      types.JobStatusApplied,
		Limit:       10,
	})

	assert.Contains(t, query, "profile_id = $1")
	assert.Contains(t, query, "company_name ILIKE $2")
	assert.Contains(t, query, "status = $3")
	assert.Contains(t, query, "LIMIT $4")
	require.Len(t, args, 4)
	assert.Equal(t, profileID, args[0])
	assert.Equal(t, "%Acme%", args[1])
	assert.Equal(t, types.JobStatusApplied, args[2])
	assert.Equal(t, 10, args[3])
}

func TestNullableID(t *testing.T) {
	assert.Nil(t, nullableID(uuid.Nil))

	id := uuid.New()
	ptr := nullableID(id)
	require.NotNil(t, ptr)
	assert.Equal(t, id, *ptr)
}
