package agents

import (
	"context"

	"github.com/jonathan/jobseeker-agent/internal/llm"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

// fakeClient scripts completions by inspecting the outgoing prompt. The
// respond hook sees the prompt for Complete and the last user turn for
// Continue.
type fakeClient struct {
	respond func(prompt string) (string, error)
	prompts []string
}

func (f *fakeClient) Complete(_ context.Context, req llm.Request) (string, error) {
	f.prompts = append(f.prompts, req.Prompt)
	return f.respond(req.Prompt)
}

func (f *fakeClient) Continue(_ context.Context, transcript []types.Turn, _ llm.Request) (string, error) {
	last := transcript[len(transcript)-1].Text
	f.prompts = append(f.prompts, last)
	return f.respond(last)
}

func (f *fakeClient) Close() error { return nil }

// fakeProvider scripts search results per query.
type fakeProvider struct {
	respond func(query string, limit int) ([]types.SearchHit, error)
	queries []string
}

func (f *fakeProvider) Search(_ context.Context, query string, limit int) ([]types.SearchHit, error) {
	f.queries = append(f.queries, query)
	return f.respond(query, limit)
}
