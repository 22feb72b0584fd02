package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobseeker-agent/internal/llm"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

// fakeClient returns scripted replies and records what it was sent.
type fakeClient struct {
	replies     []string
	err         error
	calls       int
	transcripts [][]types.Turn
}

func (f *fakeClient) Complete(_ context.Context, _ llm.Request) (string, error) {
	return f.next()
}

func (f *fakeClient) Continue(_ context.Context, transcript []types.Turn, _ llm.Request) (string, error) {
	snapshot := make([]types.Turn, len(transcript))
	copy(snapshot, transcript)
	f.transcripts = append(f.transcripts, snapshot)
	return f.next()
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) next() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.calls >= len(f.replies) {
		return "", &llm.CompletionError{Message: "no scripted reply"}
	}
	reply := f.replies[f.calls]
	f.calls++
	return reply, nil
}

func TestGenerate_DoesNotTouchTranscript(t *testing.T) {
	a := New(&fakeClient{replies: []string{"hello"}})

	reply, err := a.Generate(context.Background(), llm.Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hello", reply)
	assert.Empty(t, a.History())
}

func TestContinue_AppendsBothTurns(t *testing.T) {
	client := &fakeClient{replies: []string{"first reply", "second reply"}}
	a := New(client)

	reply, err := a.Continue(context.Background(), "first question", llm.Request{})
	require.NoError(t, err)
	assert.Equal(t, "first reply", reply)

	_, err = a.Continue(context.Background(), "second question", llm.Request{})
	require.NoError(t, err)

	history := a.History()
	require.Len(t, history, 4)
	assert.Equal(t, types.Turn{Role: types.RoleUser, Text: "first question"}, history[0])
	assert.Equal(t, types.Turn{Role: types.RoleAssistant, Text: "first reply"}, history[1])
	assert.Equal(t, types.Turn{Role: types.RoleUser, Text: "second question"}, history[2])

	// The second call must have seen the full transcript including the
	// new user turn.
	require.Len(t, client.transcripts, 2)
	assert.Len(t, client.transcripts[1], 3)
}

func TestContinue_FailureKeepsUserTurn(t *testing.T) {
	a := New(&fakeClient{err: &llm.CompletionError{Message: "provider down"}})

	_, err := a.Continue(context.Background(), "question", llm.Request{})
	require.Error(t, err)

	history := a.History()
	require.Len(t, history, 1)
	assert.Equal(t, types.RoleUser, history[0].Role)
}

func TestReset_ClearsTranscript(t *testing.T) {
	a := New(&fakeClient{replies: []string{"one", "two"}})
	_, err := a.Continue(context.Background(), "q1", llm.Request{})
	require.NoError(t, err)
	_, err = a.Continue(context.Background(), "q2", llm.Request{})
	require.NoError(t, err)
	require.Len(t, a.History(), 4)

	a.Reset()
	assert.Empty(t, a.History())
}

func TestHistory_ReturnsCopy(t *testing.T) {
	a := New(&fakeClient{replies: []string{"reply"}})
	_, err := a.Continue(context.Background(), "q", llm.Request{})
	require.NoError(t, err)

	snapshot := a.History()
	snapshot[0].Text = "mutated"
	assert.Equal(t, "q", a.History()[0].Text)
}
