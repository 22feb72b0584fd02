// Package agents implements the three LLM workflows: company research,
// application content generation, and conversational profile building. Each
// workflow constructs a fresh conversational agent per invocation, so no
// transcript ever crosses requests.
package agents

import (
	"context"
	"strings"

	"github.com/jonathan/jobseeker-agent/internal/agent"
	"github.com/jonathan/jobseeker-agent/internal/crawling"
	"github.com/jonathan/jobseeker-agent/internal/extract"
	"github.com/jonathan/jobseeker-agent/internal/llm"
	"github.com/jonathan/jobseeker-agent/internal/prompts"
	"github.com/jonathan/jobseeker-agent/internal/research"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

// Research workflow bounds.
const (
	maxInfoSnippets     = 3
	maxPeopleSnippets   = 3
	maxNewsItems        = 5
	maxKeyPeople        = 5
	maxNewsSummaryChars = 200
	maxSiteContentChars = 5000
)

// cultureUnavailable is recorded when the company website cannot be crawled.
const cultureUnavailable = "Unable to scrape website"

// ResearchInput is the structured input to the research workflow.
type ResearchInput struct {
	CompanyName string `validate:"required"`
	// Website, when set, is crawled for culture notes and overrides any
	// website the analysis stage extracts.
	Website string `validate:"omitempty,url"`
	// JobTitle narrows the people search and flavors the final summary.
	JobTitle string
	// Stories add accomplishment context to the final summary.
	Stories []types.StarStory
}

// Researcher runs the company research workflow. Every stage degrades its
// own fields on failure; the bundle is built additively and never rejected
// wholesale.
type Researcher struct {
	client  llm.Client
	search  research.Provider
	crawler *crawling.Crawler
}

// NewResearcher creates the workflow with its collaborators.
func NewResearcher(client llm.Client, search research.Provider, crawler *crawling.Crawler) *Researcher {
	return &Researcher{client: client, search: search, crawler: crawler}
}

// Execute researches a company in five sequential stages: company analysis,
// website culture, recent news, key people, and a final summary over
// whatever the earlier stages produced.
func (r *Researcher) Execute(ctx context.Context, input ResearchInput) (*types.ResearchBundle, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ag := agent.New(r.client)
	bundle := &types.ResearchBundle{
		CompanyName: input.CompanyName,
		Website:     input.Website,
	}

	r.analyzeCompany(ctx, ag, input.CompanyName, bundle)
	r.analyzeCulture(ctx, ag, input.CompanyName, bundle)
	r.collectNews(ctx, input.CompanyName, bundle)
	r.collectKeyPeople(ctx, ag, input.CompanyName, input.JobTitle, bundle)
	r.summarize(ctx, ag, input, bundle)

	return bundle, nil
}

// analyzeCompany searches for general information and extracts description,
// industry, size, and website from one completion over the top snippets.
func (r *Researcher) analyzeCompany(ctx context.Context, ag *agent.Agent, companyName string, bundle *types.ResearchBundle) {
	hits, err := r.search.Search(ctx, research.CompanyInfoQuery(companyName), maxInfoSnippets)
	if err != nil || len(hits) == 0 {
		return
	}

	template, err := prompts.Get("research.json", "analyze-company")
	if err != nil {
		return
	}
	prompt := prompts.Format(template, map[string]string{
		"CompanyName":    companyName,
		"SearchSnippets": snippetBlock(hits, maxInfoSnippets),
	})

	reply, err := ag.Generate(ctx, llm.Request{Prompt: prompt, Tier: llm.TierLite})
	if err != nil {
		return
	}

	bundle.Description = discardUnknown(extract.LabeledField(reply, "description"))
	bundle.Industry = discardUnknown(extract.LabeledField(reply, "industry"))
	bundle.Size = discardUnknown(extract.LabeledField(reply, "size"))
	if bundle.Website == "" {
		bundle.Website = discardUnknown(extract.LabeledField(reply, "website"))
	}
}

// analyzeCulture crawls the company website and asks for a culture
// narrative over the root and about-page content.
func (r *Researcher) analyzeCulture(ctx context.Context, ag *agent.Agent, companyName string, bundle *types.ResearchBundle) {
	if bundle.Website == "" {
		return
	}

	site := r.crawler.FetchSite(ctx, bundle.Website)
	if !site.Success {
		bundle.CultureNotes = cultureUnavailable
		return
	}

	content := site.Content
	if about, ok := site.Pages[crawling.PageAbout]; ok {
		content += "\n\n" + about.Content
	}
	content = truncate(content, maxSiteContentChars)

	template, err := prompts.Get("research.json", "analyze-culture")
	if err != nil {
		return
	}
	prompt := prompts.Format(template, map[string]string{
		"CompanyName": companyName,
		"SiteContent": content,
	})

	reply, err := ag.Generate(ctx, llm.Request{Prompt: prompt, Tier: llm.TierLite})
	if err != nil {
		return
	}
	bundle.CultureNotes = strings.TrimSpace(reply)
}

// collectNews maps the top news hits directly onto NewsItems; no completion
// is involved.
func (r *Researcher) collectNews(ctx context.Context, companyName string, bundle *types.ResearchBundle) {
	hits, err := r.search.Search(ctx, research.CompanyNewsQuery(companyName), maxNewsItems)
	if err != nil {
		return
	}

	for i, hit := range hits {
		if i == maxNewsItems {
			break
		}
		bundle.RecentNews = append(bundle.RecentNews, types.NewsItem{
			Title:   hit.Title,
			URL:     hit.URL,
			Summary: truncate(hit.Content, maxNewsSummaryChars),
		})
	}
}

// collectKeyPeople searches for leadership, asks one completion to list
// people, and parses the labeled reply. People without both name and title
// are dropped.
func (r *Researcher) collectKeyPeople(ctx context.Context, ag *agent.Agent, companyName, jobTitle string, bundle *types.ResearchBundle) {
	hits, err := r.search.Search(ctx, research.CompanyPeopleQuery(companyName, jobTitle), maxPeopleSnippets)
	if err != nil || len(hits) == 0 {
		return
	}

	template, err := prompts.Get("research.json", "extract-key-people")
	if err != nil {
		return
	}
	prompt := prompts.Format(template, map[string]string{
		"CompanyName":    companyName,
		"PeopleSnippets": snippetBlock(hits, maxPeopleSnippets),
	})

	reply, err := ag.Generate(ctx, llm.Request{Prompt: prompt, Tier: llm.TierLite})
	if err != nil {
		return
	}
	bundle.KeyPeople = extract.KeyPeople(reply, maxKeyPeople)
}

// summarize issues the final completion over whatever fields the earlier
// stages produced. It always runs; a completion failure leaves the summary
// empty.
func (r *Researcher) summarize(ctx context.Context, ag *agent.Agent, input ResearchInput, bundle *types.ResearchBundle) {
	template, err := prompts.Get("research.json", "research-summary")
	if err != nil {
		return
	}

	var news []string
	for _, item := range bundle.RecentNews {
		news = append(news, "- "+item.Title+": "+item.Summary)
	}
	var people []string
	for _, person := range bundle.KeyPeople {
		people = append(people, "- "+person.Name+", "+person.Title)
	}

	var extra []string
	if input.JobTitle != "" {
		extra = append(extra, "The applicant is targeting a "+input.JobTitle+" role.")
	}
	for i, story := range input.Stories {
		if i == maxStarStories {
			break
		}
		extra = append(extra, "Applicant accomplishment: "+story.Result)
	}

	prompt := prompts.Format(template, map[string]string{
		"CompanyName":  input.CompanyName,
		"Description":  orUnknown(bundle.Description),
		"Industry":     orUnknown(bundle.Industry),
		"Size":         orUnknown(bundle.Size),
		"CultureNotes": orUnknown(bundle.CultureNotes),
		"NewsDigest":   orUnknown(strings.Join(news, "\n")),
		"PeopleDigest": orUnknown(strings.Join(people, "\n")),
		"ExtraContext": strings.Join(extra, "\n"),
	})

	reply, err := ag.Generate(ctx, llm.Request{Prompt: prompt})
	if err != nil {
		return
	}
	bundle.ResearchSummary = strings.TrimSpace(reply)
}

// snippetBlock formats the top hits as a prompt context block.
func snippetBlock(hits []types.SearchHit, max int) string {
	var parts []string
	for i, hit := range hits {
		if i == max {
			break
		}
		parts = append(parts, hit.Title+"\n"+hit.Content)
	}
	return joinSnippets(parts)
}

// discardUnknown drops the "Unknown" marker the analysis prompt uses for
// undeterminable fields.
func discardUnknown(value string) string {
	if strings.EqualFold(value, "unknown") {
		return ""
	}
	return value
}

// orUnknown substitutes a marker for empty fields in the summary prompt.
func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}
