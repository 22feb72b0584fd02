// Package agent provides the conversational base shared by all workflows.
// Each Agent owns its transcript exclusively; workflows construct a fresh
// Agent per invocation so no conversation memory crosses requests.
package agent

import (
	"context"

	"github.com/jonathan/jobseeker-agent/internal/llm"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

// Agent wraps a completion client with an ordered conversation transcript.
// It is not safe for concurrent use; every workflow invocation owns one.
type Agent struct {
	client     llm.Client
	transcript []types.Turn
}

// New creates an agent with an empty transcript.
func New(client llm.Client) *Agent {
	return &Agent{client: client}
}

// Generate issues one stateless completion. The transcript is not touched.
func (a *Agent) Generate(ctx context.Context, req llm.Request) (string, error) {
	return a.client.Complete(ctx, req)
}

// Continue appends a user turn, sends the full transcript, appends the
// assistant's reply, and returns it. On failure the user turn stays
// appended; the two appends are not atomic.
func (a *Agent) Continue(ctx context.Context, userMessage string, req llm.Request) (string, error) {
	a.transcript = append(a.transcript, types.Turn{Role: types.RoleUser, Text: userMessage})

	reply, err := a.client.Continue(ctx, a.transcript, req)
	if err != nil {
		return "", err
	}

	a.transcript = append(a.transcript, types.Turn{Role: types.RoleAssistant, Text: reply})
	return reply, nil
}

// Reset clears the transcript to empty.
func (a *Agent) Reset() {
	a.transcript = nil
}

// History returns a snapshot copy of the transcript.
func (a *Agent) History() []types.Turn {
	out := make([]types.Turn, len(a.transcript))
	copy(out, a.transcript)
	return out
}
