package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobseeker-agent/internal/db"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "Manage STAR accomplishment stories",
	Long:  "Records Situation/Task/Action/Result stories under a profile. Stories feed the cover letter prompt during content generation.",
}

var storiesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a story to a profile",
	RunE:  runStoriesAdd,
}

var storiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a profile's stories",
	RunE:  runStoriesList,
}

var storiesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a story",
	RunE:  runStoriesDelete,
}

var (
	storiesProfileID string
	storiesSituation string
	storiesTask      string
	storiesAction    string
	storiesResult    string
	storiesTags      []string

	storiesDeleteID string
)

func init() {
	storiesAddCmd.Flags().StringVarP(&storiesProfileID, "profile-id", "p", "", "Profile ID (required)")
	storiesAddCmd.Flags().StringVar(&storiesSituation, "situation", "", "The situation (required)")
	storiesAddCmd.Flags().StringVar(&storiesTask, "task", "", "The task (required)")
	storiesAddCmd.Flags().StringVar(&storiesAction, "action", "", "The action taken (required)")
	storiesAddCmd.Flags().StringVar(&storiesResult, "result", "", "The result (required)")
	storiesAddCmd.Flags().StringSliceVar(&storiesTags, "tags", nil, "Comma-separated tags")
	for _, flag := range []string{"profile-id", "situation", "task", "action", "result"} {
		if err := storiesAddCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	storiesListCmd.Flags().StringVarP(&storiesProfileID, "profile-id", "p", "", "Profile ID (required)")
	if err := storiesListCmd.MarkFlagRequired("profile-id"); err != nil {
		panic(fmt.Sprintf("failed to mark profile-id flag as required: %v", err))
	}

	storiesDeleteCmd.Flags().StringVar(&storiesDeleteID, "id", "", "Story ID (required)")
	if err := storiesDeleteCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	storiesCmd.AddCommand(storiesAddCmd, storiesListCmd, storiesDeleteCmd)
	rootCmd.AddCommand(storiesCmd)
}

func runStoriesAdd(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	profileID, err := uuid.Parse(storiesProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile ID %s: %w", storiesProfileID, err)
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	profile, err := store.GetProfile(ctx, profileID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("profile not found: %s", profileID)
	}

	story := &types.StarStory{
		ProfileID: profileID,
		Situation: storiesSituation,
		Task:      storiesTask,
		Action:    storiesAction,
		Result:    storiesResult,
		Tags:      storiesTags,
	}
	if err := store.CreateStarStory(ctx, story); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Added story %s for %s\n", story.ID, profile.Name)
	return nil
}

func runStoriesList(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	profileID, err := uuid.Parse(storiesProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile ID %s: %w", storiesProfileID, err)
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	stories, err := store.ListStarStories(ctx, profileID)
	if err != nil {
		return err
	}
	if len(stories) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No stories found.")
		return nil
	}

	for _, story := range stories {
		tags := ""
		if len(story.Tags) > 0 {
			tags = " [" + strings.Join(story.Tags, ", ") + "]"
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s%s\n  Situation: %s\n  Result: %s\n", story.ID, tags, story.Situation, story.Result)
	}
	return nil
}

func runStoriesDelete(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	id, err := uuid.Parse(storiesDeleteID)
	if err != nil {
		return fmt.Errorf("invalid story ID %s: %w", storiesDeleteID, err)
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteStarStory(ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Deleted story %s\n", id)
	return nil
}
