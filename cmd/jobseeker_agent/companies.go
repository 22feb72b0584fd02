package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobseeker-agent/internal/db"
	"github.com/jonathan/jobseeker-agent/internal/types"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Review researched companies",
	Long:  "Shows company records saved by the research command, including the stored research summary.",
}

var companiesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a saved company record",
	RunE:  runCompaniesShow,
}

var companiesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a company record",
	RunE:  runCompaniesDelete,
}

var (
	companiesName string
	companiesID   string
)

func init() {
	companiesShowCmd.Flags().StringVarP(&companiesName, "name", "n", "", "Company name")
	companiesShowCmd.Flags().StringVar(&companiesID, "id", "", "Company ID")

	companiesDeleteCmd.Flags().StringVar(&companiesID, "id", "", "Company ID (required)")
	if err := companiesDeleteCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	companiesCmd.AddCommand(companiesShowCmd, companiesDeleteCmd)
	rootCmd.AddCommand(companiesCmd)
}

func runCompaniesShow(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}
	if companiesName == "" && companiesID == "" {
		return fmt.Errorf("either --name or --id is required")
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	var company *types.Company
	if companiesID != "" {
		id, err := uuid.Parse(companiesID)
		if err != nil {
			return fmt.Errorf("invalid company ID %s: %w", companiesID, err)
		}
		company, err = store.GetCompany(ctx, id)
		if err != nil {
			return err
		}
	} else {
		company, err = store.GetCompanyByName(ctx, companiesName)
		if err != nil {
			return err
		}
	}
	if company == nil {
		return fmt.Errorf("company not found")
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s  %s\n", company.ID, company.Name)
	if company.Website != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Website: %s\n", company.Website)
	}
	if company.Industry != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Industry: %s\n", company.Industry)
	}
	if company.LastResearchedAt != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Last researched: %s\n", company.LastResearchedAt.Format("2006-01-02"))
	}
	if company.ResearchSummary != "" {
		_, _ = fmt.Fprintf(os.Stdout, "\n%s\n", company.ResearchSummary)
	}
	return nil
}

func runCompaniesDelete(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	id, err := uuid.Parse(companiesID)
	if err != nil {
		return fmt.Errorf("invalid company ID %s: %w", companiesID, err)
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteCompany(ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Deleted company %s\n", id)
	return nil
}
