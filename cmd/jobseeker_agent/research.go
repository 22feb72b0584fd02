package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobseeker-agent/internal/agents"
	"github.com/jonathan/jobseeker-agent/internal/crawling"
	"github.com/jonathan/jobseeker-agent/internal/db"
	"github.com/jonathan/jobseeker-agent/internal/llm"
	"github.com/jonathan/jobseeker-agent/internal/observability"
	"github.com/jonathan/jobseeker-agent/internal/research"
	"github.com/jonathan/jobseeker-agent/internal/schemas"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Research a company",
	Long:  "Researches a company via web search and website crawling, then writes a research bundle JSON with description, culture notes, recent news, key people, and an applicant-oriented summary.",
	RunE:  runResearch,
}

var (
	researchCompany    string
	researchWebsite    string
	researchJobTitle   string
	researchOutputDir  string
	researchUseBrowser bool
)

func init() {
	researchCmd.Flags().StringVarP(&researchCompany, "company", "c", "", "Company name (required)")
	researchCmd.Flags().StringVarP(&researchWebsite, "website", "w", "", "Company website URL to crawl")
	researchCmd.Flags().StringVar(&researchJobTitle, "job-title", "", "Target job title to narrow the people search")
	researchCmd.Flags().StringVarP(&researchOutputDir, "out", "o", "", "Output directory (required)")
	researchCmd.Flags().BoolVar(&researchUseBrowser, "use-browser", false, "Render JavaScript-heavy sites with a headless browser")

	if err := researchCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}
	if err := researchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(researchCmd)
}

func runResearch(_ *cobra.Command, _ []string) error {
	cfg, err := requireAPIKey()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(researchOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", researchOutputDir, err)
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer client.Close()

	provider, err := research.NewGoogleProvider(ctx, cfg.SearchAPIKey, cfg.SearchCX)
	if err != nil {
		return fmt.Errorf("failed to create search provider: %w", err)
	}

	var crawlOpts []crawling.Option
	if researchUseBrowser || cfg.UseBrowser {
		crawlOpts = append(crawlOpts, crawling.WithBrowser(cfg.Verbose))
	}

	researcher := agents.NewResearcher(client, provider, crawling.New(crawlOpts...))
	bundle, err := researcher.Execute(ctx, agents.ResearchInput{
		CompanyName: researchCompany,
		Website:     researchWebsite,
		JobTitle:    researchJobTitle,
	})
	if err != nil {
		return fmt.Errorf("research failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintResearchBundle(bundle)
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal research bundle: %w", err)
	}
	if err := schemas.Validate(schemas.ResearchBundleSchema, data); err != nil {
		return fmt.Errorf("research bundle failed schema validation: %w", err)
	}

	outPath := filepath.Join(researchOutputDir, "research_bundle.json")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write research bundle %s: %w", outPath, err)
	}

	if cfg.DatabaseURL != "" {
		if err := persistResearch(ctx, cfg.DatabaseURL, bundle); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Research bundle: %s\n", outPath)
	return nil
}

// persistResearch records the bundle on the company row.
func persistResearch(ctx context.Context, databaseURL string, bundle *types.ResearchBundle) error {
	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	company, err := store.FindOrCreateCompany(ctx, bundle.CompanyName)
	if err != nil {
		return fmt.Errorf("failed to upsert company: %w", err)
	}
	if err := store.SaveResearch(ctx, company.ID, bundle); err != nil {
		return fmt.Errorf("failed to save research: %w", err)
	}
	return nil
}
