package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobseeker-agent/internal/db"
)

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "Review saved application materials",
	Long:  "Lists application records created by the generate command and marks them as submitted.",
}

var applicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a profile's applications",
	RunE:  runApplicationsList,
}

var applicationsMarkAppliedCmd = &cobra.Command{
	Use:   "mark-applied",
	Short: "Mark an application as submitted",
	RunE:  runApplicationsMarkApplied,
}

var applicationsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an application record",
	RunE:  runApplicationsDelete,
}

var (
	applicationsProfileID string
	applicationsLimit     int
	applicationsID        string
)

func init() {
	applicationsListCmd.Flags().StringVarP(&applicationsProfileID, "profile-id", "p", "", "Profile ID (required)")
	applicationsListCmd.Flags().IntVar(&applicationsLimit, "limit", 0, "Maximum rows to return (default 50)")
	if err := applicationsListCmd.MarkFlagRequired("profile-id"); err != nil {
		panic(fmt.Sprintf("failed to mark profile-id flag as required: %v", err))
	}

	applicationsMarkAppliedCmd.Flags().StringVar(&applicationsID, "id", "", "Application ID (required)")
	if err := applicationsMarkAppliedCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	applicationsDeleteCmd.Flags().StringVar(&applicationsID, "id", "", "Application ID (required)")
	if err := applicationsDeleteCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	applicationsCmd.AddCommand(applicationsListCmd, applicationsMarkAppliedCmd, applicationsDeleteCmd)
	rootCmd.AddCommand(applicationsCmd)
}

func runApplicationsList(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	profileID, err := uuid.Parse(applicationsProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile ID %s: %w", applicationsProfileID, err)
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	apps, err := store.ListApplications(ctx, profileID, applicationsLimit)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No applications found.")
		return nil
	}

	for _, app := range apps {
		applied := ""
		if app.AppliedAt != nil {
			applied = "  applied " + app.AppliedAt.Format("2006-01-02")
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s  [%-7s] %d outreach messages%s\n", app.ID, app.Status, len(app.OutreachMessages), applied)
	}
	return nil
}

func runApplicationsMarkApplied(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	id, err := uuid.Parse(applicationsID)
	if err != nil {
		return fmt.Errorf("invalid application ID %s: %w", applicationsID, err)
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	if err := store.MarkApplied(ctx, id); err != nil {
		return err
	}

	app, err := store.GetApplication(ctx, id)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Application %s marked applied at %s\n", app.ID, app.AppliedAt.Format("2006-01-02"))
	return nil
}

func runApplicationsDelete(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	id, err := uuid.Parse(applicationsID)
	if err != nil {
		return fmt.Errorf("invalid application ID %s: %w", applicationsID, err)
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteApplication(ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Deleted application %s\n", id)
	return nil
}
