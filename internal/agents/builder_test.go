package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobseeker-agent/internal/llm"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

func TestBuilder_ResumePathAsksQuestions(t *testing.T) {
	client := &fakeClient{respond: func(prompt string) (string, error) {
		require.Contains(t, prompt, "resume text goes here")
		return "Strong backend background.\n" +
			"What are your long-term career goals?\n" +
			"Which industries interest you the most?", nil
	}}

	result, err := NewBuilder(client).Execute(context.Background(), BuildInput{
		ResumeText: "resume text goes here",
	})
	require.NoError(t, err)

	assert.Equal(t, types.StateAwaitingAnswers, result.State)
	assert.Contains(t, result.Message, "Strong backend background.")
	require.Len(t, result.Questions, 2)
	assert.Equal(t, "What are your long-term career goals?", result.Questions[0])
}

func TestBuilder_FreshStartAsksQuestions(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return "What is your name?\nWhat are your career goals?\nWhat are your strengths?", nil
	}}

	result, err := NewBuilder(client).Execute(context.Background(), BuildInput{})
	require.NoError(t, err)

	assert.Equal(t, types.StateAwaitingAnswers, result.State)
	assert.NotEmpty(t, result.Questions)
	assert.True(t, result.Delta.IsEmpty())
}

func TestBuilder_AnswerCompletesProfile(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return "Great, that rounds out your profile.", nil
	}}

	profile := &types.Profile{
		Name:      "Alice Example",
		Strengths: []string{"systems design"},
	}

	result, err := NewBuilder(client).Execute(context.Background(), BuildInput{
		Profile: profile,
		Answer:  "my goal is to move into product management",
	})
	require.NoError(t, err)

	// Name and strengths from the profile plus the goal delta satisfy
	// three of the four essential fields.
	assert.Equal(t, types.StateComplete, result.State)
	assert.Empty(t, result.Questions)
	assert.Contains(t, result.Delta.CareerGoalNotes, "product management")
}

func TestBuilder_IncompleteAnswerKeepsAsking(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return "Thanks for sharing.\n" +
			"What direction do you see your career taking?\n" +
			"What are you best at professionally?\n" +
			"Which fields excite you the most?\n" +
			"Where would you like to work?\n" +
			"What roles appeal to you most?", nil
	}}

	result, err := NewBuilder(client).Execute(context.Background(), BuildInput{
		Profile: &types.Profile{Name: "Alice Example"},
		Answer:  "I like my current city",
	})
	require.NoError(t, err)

	assert.Equal(t, types.StateAwaitingAnswers, result.State)
	assert.LessOrEqual(t, len(result.Questions), maxFollowUpQuestions)
	assert.NotEmpty(t, result.Questions)
}

func TestBuilder_ModelReplyDeltasMergedIn(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return "Name: Alice Example\nYou mentioned you are passionate about climate tech.", nil
	}}

	result, err := NewBuilder(client).Execute(context.Background(), BuildInput{
		Answer: "I am passionate about climate tech and my goal is a staff role",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Example", result.Delta.Name)
	assert.NotEmpty(t, result.Delta.Interests)
	assert.NotEmpty(t, result.Delta.CareerGoalNotes)
}

func TestBuilder_CompletionFailurePropagates(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return "", &llm.CompletionError{Message: "model overloaded"}
	}}

	_, err := NewBuilder(client).Execute(context.Background(), BuildInput{
		Answer: "anything",
	})
	require.Error(t, err)

	var completionErr *llm.CompletionError
	assert.ErrorAs(t, err, &completionErr)
}

func TestBuilder_AmbiguousAnswerIsNotAnError(t *testing.T) {
	client := &fakeClient{respond: func(prompt string) (string, error) {
		require.True(t, strings.Contains(prompt, "The weather is nice today"))
		return "Tell me more.\nWhat would you like to focus on next in your work?", nil
	}}

	result, err := NewBuilder(client).Execute(context.Background(), BuildInput{
		Answer: "The weather is nice today",
	})
	require.NoError(t, err)
	assert.True(t, result.Delta.IsEmpty())
	assert.Equal(t, types.StateAwaitingAnswers, result.State)
}
