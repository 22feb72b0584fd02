package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobseeker-agent/internal/db"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Review saved candidate profiles",
	Long:  "Shows profile records saved by the build-profile command. Deleting a profile also removes its STAR stories.",
}

var profilesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a saved profile",
	RunE:  runProfilesShow,
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a profile and its stories",
	RunE:  runProfilesDelete,
}

var profilesID string

func init() {
	profilesShowCmd.Flags().StringVar(&profilesID, "id", "", "Profile ID (required)")
	if err := profilesShowCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	profilesDeleteCmd.Flags().StringVar(&profilesID, "id", "", "Profile ID (required)")
	if err := profilesDeleteCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	profilesCmd.AddCommand(profilesShowCmd, profilesDeleteCmd)
	rootCmd.AddCommand(profilesCmd)
}

func runProfilesShow(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	id, err := uuid.Parse(profilesID)
	if err != nil {
		return fmt.Errorf("invalid profile ID %s: %w", profilesID, err)
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	profile, err := store.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("profile not found: %s", id)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s\n%s\n", profile.ID, profile.Summary())
	return nil
}

func runProfilesDelete(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	id, err := uuid.Parse(profilesID)
	if err != nil {
		return fmt.Errorf("invalid profile ID %s: %w", profilesID, err)
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteProfile(ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Deleted profile %s\n", id)
	return nil
}
