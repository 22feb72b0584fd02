package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobseeker-agent/internal/agents"
	"github.com/jonathan/jobseeker-agent/internal/db"
	"github.com/jonathan/jobseeker-agent/internal/ingestion"
	"github.com/jonathan/jobseeker-agent/internal/llm"
	"github.com/jonathan/jobseeker-agent/internal/observability"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

var buildProfileCmd = &cobra.Command{
	Use:   "build-profile",
	Short: "Build a candidate profile through conversation",
	Long:  "Advances the profile building conversation one step: seed it with a resume, answer its questions, and repeat until the profile is complete. Extracted profile updates are merged into the profile file.",
	RunE:  runBuildProfile,
}

var (
	buildProfileResume  string
	buildProfileFile    string
	buildProfileAnswer  string
	buildProfileOutFile string
)

func init() {
	buildProfileCmd.Flags().StringVar(&buildProfileResume, "resume", "", "Path to a resume file (.pdf, .docx, .txt) to seed the conversation")
	buildProfileCmd.Flags().StringVarP(&buildProfileFile, "profile", "p", "", "Path to an existing profile JSON file")
	buildProfileCmd.Flags().StringVarP(&buildProfileAnswer, "answer", "a", "", "Answer to the previously asked questions")
	buildProfileCmd.Flags().StringVarP(&buildProfileOutFile, "out", "o", "", "Output profile JSON path (required)")

	if err := buildProfileCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(buildProfileCmd)
}

func runBuildProfile(_ *cobra.Command, _ []string) error {
	cfg, err := requireAPIKey()
	if err != nil {
		return err
	}

	var profile *types.Profile
	if buildProfileFile != "" {
		profile = &types.Profile{}
		if err := readJSONFile(buildProfileFile, profile); err != nil {
			return err
		}
	}

	var resumeText string
	if buildProfileResume != "" {
		resumeText, err = ingestion.ResumeText(buildProfileResume)
		if err != nil {
			return fmt.Errorf("failed to ingest resume: %w", err)
		}
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer client.Close()

	result, err := agents.NewBuilder(client).Execute(ctx, agents.BuildInput{
		Profile:    profile,
		ResumeText: resumeText,
		Answer:     buildProfileAnswer,
	})
	if err != nil {
		return fmt.Errorf("profile building failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintProfileStep(result.State, result.Questions, result.Delta)
	}

	updated := applyDelta(profile, result.Delta, resumeText)

	// Persist first so a newly created record's ID lands in the output file.
	if cfg.DatabaseURL != "" {
		if err := persistProfile(ctx, cfg.DatabaseURL, updated); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(updated, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(buildProfileOutFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", buildProfileOutFile, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "State: %s\n", result.State)
	for _, question := range result.Questions {
		_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", question)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Profile: %s\n", buildProfileOutFile)
	return nil
}

// persistProfile upserts the profile record by ID presence.
func persistProfile(ctx context.Context, databaseURL string, profile *types.Profile) error {
	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	if profile.ID == uuid.Nil {
		if err := store.CreateProfile(ctx, profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		return nil
	}
	if err := store.UpdateProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// applyDelta folds one step's extracted updates into the profile record.
func applyDelta(profile *types.Profile, delta types.ProfileDelta, resumeText string) *types.Profile {
	if profile == nil {
		profile = &types.Profile{}
	}
	if resumeText != "" {
		profile.ResumeText = resumeText
	}
	if delta.Name != "" && profile.Name == "" {
		profile.Name = delta.Name
	}
	if delta.Email != "" && profile.Email == "" {
		profile.Email = delta.Email
	}
	if delta.CareerGoalNotes != "" {
		if profile.CareerGoals == nil {
			profile.CareerGoals = &types.CareerGoals{}
		}
		profile.CareerGoals.Notes = delta.CareerGoalNotes
	}
	profile.Interests = append(profile.Interests, delta.Interests...)
	profile.Strengths = append(profile.Strengths, delta.Strengths...)
	profile.Weaknesses = append(profile.Weaknesses, delta.Weaknesses...)
	return profile
}
