package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobseeker-agent/internal/agents"
	"github.com/jonathan/jobseeker-agent/internal/db"
	"github.com/jonathan/jobseeker-agent/internal/llm"
	"github.com/jonathan/jobseeker-agent/internal/observability"
	"github.com/jonathan/jobseeker-agent/internal/schemas"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate application content for a job",
	Long:  "Generates a cover letter, outreach messages, and an application strategy from a job description, a candidate profile, and optional research and accomplishment stories. All pieces are generated or the command fails.",
	RunE:  runGenerate,
}

var (
	generateJobFile      string
	generateCompany      string
	generateProfileFile  string
	generateResearchFile string
	generateStoriesFile  string
	generateOutputDir    string
)

func init() {
	generateCmd.Flags().StringVarP(&generateJobFile, "job", "j", "", "Path to job description text file (required)")
	generateCmd.Flags().StringVarP(&generateCompany, "company", "c", "", "Company name (required)")
	generateCmd.Flags().StringVarP(&generateProfileFile, "profile", "p", "", "Path to profile JSON file (required)")
	generateCmd.Flags().StringVarP(&generateResearchFile, "research", "r", "", "Path to research bundle JSON file")
	generateCmd.Flags().StringVar(&generateStoriesFile, "stories", "", "Path to STAR stories JSON file")
	generateCmd.Flags().StringVarP(&generateOutputDir, "out", "o", "", "Output directory (required)")

	for _, flag := range []string{"job", "company", "profile", "out"} {
		if err := generateCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := requireAPIKey()
	if err != nil {
		return err
	}

	jobText, err := os.ReadFile(generateJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job file %s: %w", generateJobFile, err)
	}

	var profile types.Profile
	if err := readJSONFile(generateProfileFile, &profile); err != nil {
		return err
	}

	var bundle *types.ResearchBundle
	if generateResearchFile != "" {
		bundle = &types.ResearchBundle{}
		if err := readJSONFile(generateResearchFile, bundle); err != nil {
			return err
		}
	}

	var stories []types.StarStory
	if generateStoriesFile != "" {
		if err := readJSONFile(generateStoriesFile, &stories); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(generateOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", generateOutputDir, err)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer client.Close()

	content, err := agents.NewGenerator(client).Execute(ctx, agents.GenerateInput{
		JobDescription: string(jobText),
		CompanyName:    generateCompany,
		Profile:        &profile,
		Research:       bundle,
		Stories:        stories,
	})
	if err != nil {
		return fmt.Errorf("content generation failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintGeneratedContent(content)
	}

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal generated content: %w", err)
	}
	if err := schemas.Validate(schemas.ApplicationContentSchema, data); err != nil {
		return fmt.Errorf("generated content failed schema validation: %w", err)
	}

	outPath := filepath.Join(generateOutputDir, "application_content.json")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write generated content %s: %w", outPath, err)
	}

	if cfg.DatabaseURL != "" {
		if err := persistApplication(ctx, cfg.DatabaseURL, &profile, content); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Application content: %s\n", outPath)
	return nil
}

// persistApplication stores the generated materials as an application record.
func persistApplication(ctx context.Context, databaseURL string, profile *types.Profile, content *types.GeneratedContent) error {
	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	app := &types.Application{
		ProfileID:        profile.ID,
		CoverLetter:      content.CoverLetter,
		OutreachMessages: content.OutreachMessages,
		Notes:            content.ApplicationStrategy,
		Status:           "draft",
	}
	if err := store.CreateApplication(ctx, app); err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}

// readJSONFile reads and unmarshals one JSON input file.
func readJSONFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
