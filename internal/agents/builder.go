package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/jobseeker-agent/internal/agent"
	"github.com/jonathan/jobseeker-agent/internal/extract"
	"github.com/jonathan/jobseeker-agent/internal/llm"
	"github.com/jonathan/jobseeker-agent/internal/prompts"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

// Profile building bounds.
const (
	maxFollowUpQuestions = 3
	// essentialFieldTarget is how many of name, career goals, interests, and
	// strengths must be known before the conversation is complete.
	essentialFieldTarget = 3
)

// BuildInput is the structured input to one profile building step.
type BuildInput struct {
	// Profile is the existing profile, nil for a brand-new user.
	Profile *types.Profile
	// ResumeText, when set on the first step, seeds the conversation with a
	// resume analysis.
	ResumeText string
	// Answer is the user's reply to previously asked questions.
	Answer string
}

// BuildResult is the outcome of one profile building step.
type BuildResult struct {
	State types.ConversationState
	// Message is the assistant's conversational reply.
	Message string
	// Questions are the follow-ups to put to the user. Empty once complete.
	Questions []string
	// Delta carries the profile updates extracted this step; callers persist
	// it and feed the merged profile into the next step.
	Delta types.ProfileDelta
}

// Builder runs the conversational profile building workflow as a small
// state machine: INITIAL asks questions (from a resume or from scratch),
// AWAITING_ANSWERS folds each answer into profile deltas until enough
// essential fields are known, then the state becomes COMPLETE.
type Builder struct {
	client llm.Client
}

// NewBuilder creates the workflow.
func NewBuilder(client llm.Client) *Builder {
	return &Builder{client: client}
}

// Execute advances the state machine by one step. Ambiguous user text never
// fails the step; only a completion service outage does.
func (b *Builder) Execute(ctx context.Context, input BuildInput) (*BuildResult, error) {
	ag := agent.New(b.client)

	switch {
	case input.Answer != "":
		return b.processAnswer(ctx, ag, input)
	case input.ResumeText != "":
		return b.analyzeResume(ctx, ag, input.ResumeText)
	default:
		return b.askInitialQuestions(ctx, ag)
	}
}

// analyzeResume asks the model to analyze the resume and pose clarifying
// questions.
func (b *Builder) analyzeResume(ctx context.Context, ag *agent.Agent, resumeText string) (*BuildResult, error) {
	template, err := prompts.Get("profile.json", "analyze-resume")
	if err != nil {
		return nil, fmt.Errorf("resume analysis prompt unavailable: %w", err)
	}
	prompt := prompts.Format(template, map[string]string{"ResumeText": resumeText})

	reply, err := ag.Continue(ctx, prompt, llm.Request{System: builderSystem()})
	if err != nil {
		return nil, fmt.Errorf("resume analysis failed: %w", err)
	}

	return &BuildResult{
		State:     types.StateAwaitingAnswers,
		Message:   strings.TrimSpace(reply),
		Questions: extract.Questions(reply),
	}, nil
}

// askInitialQuestions starts a from-scratch conversation.
func (b *Builder) askInitialQuestions(ctx context.Context, ag *agent.Agent) (*BuildResult, error) {
	prompt, err := prompts.Get("profile.json", "initial-questions")
	if err != nil {
		return nil, fmt.Errorf("initial questions prompt unavailable: %w", err)
	}

	reply, err := ag.Continue(ctx, prompt, llm.Request{System: builderSystem()})
	if err != nil {
		return nil, fmt.Errorf("initial question generation failed: %w", err)
	}

	return &BuildResult{
		State:     types.StateAwaitingAnswers,
		Message:   strings.TrimSpace(reply),
		Questions: extract.Questions(reply),
	}, nil
}

// processAnswer folds a user answer into profile deltas, asks the model to
// identify anything it adds, and judges completeness over the union of the
// existing profile and the deltas.
func (b *Builder) processAnswer(ctx context.Context, ag *agent.Agent, input BuildInput) (*BuildResult, error) {
	delta := extract.ProfileDelta(input.Answer)

	template, err := prompts.Get("profile.json", "followup-questions")
	if err != nil {
		return nil, fmt.Errorf("follow-up prompt unavailable: %w", err)
	}
	prompt := prompts.Format(template, map[string]string{
		"ProfileSummary": input.Profile.Summary(),
		"Answers":        input.Answer,
	})

	reply, err := ag.Continue(ctx, prompt, llm.Request{System: builderSystem()})
	if err != nil {
		return nil, fmt.Errorf("answer processing failed: %w", err)
	}

	// The model's reply may volunteer structured-looking fields of its own.
	delta = delta.Merge(extract.ProfileDelta(reply))
	if delta.Name == "" {
		delta.Name = extract.LabeledField(reply, "name")
	}

	result := &BuildResult{
		Message: strings.TrimSpace(reply),
		Delta:   delta,
	}

	if essentialFieldCount(input.Profile, delta) >= essentialFieldTarget {
		result.State = types.StateComplete
		return result, nil
	}

	result.State = types.StateAwaitingAnswers
	questions := extract.Questions(reply)
	if len(questions) > maxFollowUpQuestions {
		questions = questions[:maxFollowUpQuestions]
	}
	result.Questions = questions
	return result, nil
}

// essentialFieldCount counts how many essential fields are present across
// the existing profile and the new delta.
func essentialFieldCount(profile *types.Profile, delta types.ProfileDelta) int {
	count := 0
	if (profile != nil && profile.Name != "") || delta.Name != "" {
		count++
	}
	if (profile != nil && !profile.CareerGoals.IsZero()) || delta.CareerGoalNotes != "" {
		count++
	}
	if (profile != nil && len(profile.Interests) > 0) || len(delta.Interests) > 0 {
		count++
	}
	if (profile != nil && len(profile.Strengths) > 0) || len(delta.Strengths) > 0 {
		count++
	}
	return count
}

// builderSystem returns the conversational persona, or empty when the
// prompt file is somehow missing.
func builderSystem() string {
	system, err := prompts.Get("profile.json", "builder-system")
	if err != nil {
		return ""
	}
	return system
}
