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

// Content generation bounds. Excerpts keep the combined prompt size under
// control when resumes or research summaries run long.
const (
	maxStarStories        = 3
	maxNetworkingMessages = 2
	maxJobExcerptChars    = 1000
	maxResumeExcerptChars = 1000
	maxSummaryExcerpt     = 500
	maxResearchExcerpt    = 300
)

// Outreach message purposes.
const (
	PurposeRecruiter     = "recruiter_outreach"
	PurposeHiringManager = "hiring_manager_outreach"
	PurposeNetworking    = "networking"
)

// GenerateInput is the structured input to the content generation workflow.
type GenerateInput struct {
	JobDescription string         `validate:"required"`
	CompanyName    string         `validate:"required"`
	Profile        *types.Profile `validate:"required"`
	// Research is optional; without it the prompts simply carry less context.
	Research *types.ResearchBundle
	// Stories are candidate accomplishments; the first three are used.
	Stories []types.StarStory
}

// Generator runs the content generation workflow. Unlike research it is
// all-or-nothing: the first completion failure aborts the whole run, since a
// half-finished application package is not useful.
type Generator struct {
	client llm.Client
}

// NewGenerator creates the workflow.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Execute produces a cover letter, outreach messages, and an application
// strategy through independent sequential completions.
func (g *Generator) Execute(ctx context.Context, input GenerateInput) (*types.GeneratedContent, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ag := agent.New(g.client)
	content := &types.GeneratedContent{}

	coverLetter, err := g.coverLetter(ctx, ag, input)
	if err != nil {
		return nil, fmt.Errorf("cover letter generation failed: %w", err)
	}
	content.CoverLetter = coverLetter

	recruiter, err := g.outreach(ctx, ag, input, "outreach-recruiter", "Recruiter", PurposeRecruiter, nil)
	if err != nil {
		return nil, fmt.Errorf("recruiter outreach generation failed: %w", err)
	}
	content.OutreachMessages = append(content.OutreachMessages, recruiter)

	hiringManager, err := g.outreach(ctx, ag, input, "outreach-hiring-manager", "Hiring Manager", PurposeHiringManager, nil)
	if err != nil {
		return nil, fmt.Errorf("hiring manager outreach generation failed: %w", err)
	}
	content.OutreachMessages = append(content.OutreachMessages, hiringManager)

	networking, err := g.networkingMessages(ctx, ag, input)
	if err != nil {
		return nil, fmt.Errorf("networking outreach generation failed: %w", err)
	}
	content.OutreachMessages = append(content.OutreachMessages, networking...)

	strategy, err := g.strategy(ctx, ag, input)
	if err != nil {
		return nil, fmt.Errorf("application strategy generation failed: %w", err)
	}
	content.ApplicationStrategy = strategy

	return content, nil
}

// coverLetter combines the job, profile, research summary, and up to three
// accomplishment stories into one completion.
func (g *Generator) coverLetter(ctx context.Context, ag *agent.Agent, input GenerateInput) (string, error) {
	template, err := prompts.Get("content.json", "cover-letter")
	if err != nil {
		return "", err
	}

	profileContext := input.Profile.Summary()
	if input.Profile.ResumeText != "" {
		profileContext += "\n\nResume excerpt:\n" + truncate(input.Profile.ResumeText, maxResumeExcerptChars)
	}

	prompt := prompts.Format(template, map[string]string{
		"ProfileSummary": profileContext,
		"Stories":        formatStories(input.Stories),
		"JobText":        truncate(input.JobDescription, maxJobExcerptChars),
		"Research":       truncate(researchSummary(input.Research), maxSummaryExcerpt),
	})

	reply, err := ag.Generate(ctx, llm.Request{Prompt: prompt, Tier: llm.TierAdvanced})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// outreach drafts one email and splits it into subject and body. The person
// argument is only set for networking messages.
func (g *Generator) outreach(ctx context.Context, ag *agent.Agent, input GenerateInput, promptKey, recipient, purpose string, person *types.KeyPerson) (types.OutreachMessage, error) {
	template, err := prompts.Get("content.json", promptKey)
	if err != nil {
		return types.OutreachMessage{}, err
	}

	data := map[string]string{
		"CompanyName":     input.CompanyName,
		"ProfileExcerpt":  truncate(input.Profile.Summary(), maxSummaryExcerpt),
		"JobExcerpt":      truncate(input.JobDescription, maxJobExcerptChars),
		"ResearchExcerpt": truncate(researchSummary(input.Research), maxResearchExcerpt),
	}
	if person != nil {
		data["PersonName"] = person.Name
		data["PersonTitle"] = person.Title
	}

	reply, err := ag.Generate(ctx, llm.Request{Prompt: prompts.Format(template, data)})
	if err != nil {
		return types.OutreachMessage{}, err
	}

	subject, body := extract.SplitSubjectBody(reply)
	return types.OutreachMessage{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		Purpose:   purpose,
	}, nil
}

// networkingMessages drafts one message per key person, up to the cap. No
// research bundle or no key people means no networking messages, which is
// not an error.
func (g *Generator) networkingMessages(ctx context.Context, ag *agent.Agent, input GenerateInput) ([]types.OutreachMessage, error) {
	if input.Research == nil || len(input.Research.KeyPeople) == 0 {
		return nil, nil
	}

	var messages []types.OutreachMessage
	for i := range input.Research.KeyPeople {
		if i == maxNetworkingMessages {
			break
		}
		person := input.Research.KeyPeople[i]
		message, err := g.outreach(ctx, ag, input, "outreach-networking", person.Name, PurposeNetworking, &person)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// strategy produces the free-text application strategy.
func (g *Generator) strategy(ctx context.Context, ag *agent.Agent, input GenerateInput) (string, error) {
	template, err := prompts.Get("content.json", "application-strategy")
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(template, map[string]string{
		"ProfileExcerpt":  truncate(input.Profile.Summary(), maxSummaryExcerpt),
		"JobExcerpt":      truncate(input.JobDescription, maxJobExcerptChars),
		"ResearchExcerpt": truncate(researchSummary(input.Research), maxResearchExcerpt),
	})

	reply, err := ag.Generate(ctx, llm.Request{Prompt: prompt})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// formatStories renders the first maxStarStories stories as labeled blocks.
// Selection is plain first-N truncation.
func formatStories(stories []types.StarStory) string {
	if len(stories) == 0 {
		return "None provided."
	}

	var blocks []string
	for i, story := range stories {
		if i == maxStarStories {
			break
		}
		blocks = append(blocks, strings.Join([]string{
			"Situation: " + story.Situation,
			"Task: " + story.Task,
			"Action: " + story.Action,
			"Result: " + story.Result,
		}, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// researchSummary pulls the best available narrative out of an optional
// bundle.
func researchSummary(bundle *types.ResearchBundle) string {
	if bundle == nil {
		return "No company research available."
	}
	if bundle.ResearchSummary != "" {
		return bundle.ResearchSummary
	}
	if bundle.Description != "" {
		return bundle.Description
	}
	return "No company research available."
}
