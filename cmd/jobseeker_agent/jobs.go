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

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Track job postings",
	Long:  "Records job postings in the database and moves them through the application pipeline: interested, applied, interviewing, offered, rejected.",
}

var jobsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a job posting",
	RunE:  runJobsAdd,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked jobs",
	RunE:  runJobsList,
}

var jobsSetStatusCmd = &cobra.Command{
	Use:   "set-status",
	Short: "Update a job's pipeline status",
	RunE:  runJobsSetStatus,
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a tracked job",
	RunE:  runJobsDelete,
}

var (
	jobsAddTitle    string
	jobsAddCompany  string
	jobsAddURL      string
	jobsAddLocation string
	jobsAddSalary   string
	jobsAddDescFile string
	jobsAddProfile  string

	jobsListCompany string
	jobsListStatus  string
	jobsListProfile string
	jobsListLimit   int

	jobsSetStatusID    string
	jobsSetStatusValue string

	jobsDeleteID string
)

func init() {
	jobsAddCmd.Flags().StringVarP(&jobsAddTitle, "title", "t", "", "Job title (required)")
	jobsAddCmd.Flags().StringVarP(&jobsAddCompany, "company", "c", "", "Company name (required)")
	jobsAddCmd.Flags().StringVar(&jobsAddURL, "url", "", "Posting URL")
	jobsAddCmd.Flags().StringVar(&jobsAddLocation, "location", "", "Job location")
	jobsAddCmd.Flags().StringVar(&jobsAddSalary, "salary", "", "Salary range")
	jobsAddCmd.Flags().StringVar(&jobsAddDescFile, "description", "", "Path to a job description text file")
	jobsAddCmd.Flags().StringVarP(&jobsAddProfile, "profile-id", "p", "", "Profile ID to attach the job to")
	for _, flag := range []string{"title", "company"} {
		if err := jobsAddCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	jobsListCmd.Flags().StringVarP(&jobsListCompany, "company", "c", "", "Filter by company name substring")
	jobsListCmd.Flags().StringVarP(&jobsListStatus, "status", "s", "", "Filter by pipeline status")
	jobsListCmd.Flags().StringVarP(&jobsListProfile, "profile-id", "p", "", "Filter by profile ID")
	jobsListCmd.Flags().IntVar(&jobsListLimit, "limit", 0, "Maximum rows to return (default 50)")

	jobsSetStatusCmd.Flags().StringVar(&jobsSetStatusID, "id", "", "Job ID (required)")
	jobsSetStatusCmd.Flags().StringVarP(&jobsSetStatusValue, "status", "s", "", "New status (required)")
	for _, flag := range []string{"id", "status"} {
		if err := jobsSetStatusCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	jobsDeleteCmd.Flags().StringVar(&jobsDeleteID, "id", "", "Job ID (required)")
	if err := jobsDeleteCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	jobsCmd.AddCommand(jobsAddCmd, jobsListCmd, jobsSetStatusCmd, jobsDeleteCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsAdd(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	job := &types.Job{
		Title:       jobsAddTitle,
		CompanyName: jobsAddCompany,
		URL:         jobsAddURL,
		Location:    jobsAddLocation,
		SalaryRange: jobsAddSalary,
		Source:      types.JobSourceManual,
		Status:      types.JobStatusInterested,
	}
	if jobsAddDescFile != "" {
		desc, err := os.ReadFile(jobsAddDescFile)
		if err != nil {
			return fmt.Errorf("failed to read description file %s: %w", jobsAddDescFile, err)
		}
		job.Description = string(desc)
	}
	if jobsAddProfile != "" {
		if job.ProfileID, err = uuid.Parse(jobsAddProfile); err != nil {
			return fmt.Errorf("invalid profile ID %s: %w", jobsAddProfile, err)
		}
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	// Link to the company row when one exists so later research runs land
	// on the same record.
	company, err := store.GetCompanyByName(ctx, jobsAddCompany)
	if err != nil {
		return err
	}
	if company != nil {
		job.CompanyID = company.ID
	}

	if err := store.CreateJob(ctx, job); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Added job %s (%s at %s)\n", job.ID, job.Title, job.CompanyName)
	return nil
}

func runJobsList(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	filters := db.JobFilters{
		CompanyName: jobsListCompany,
		Status:      types.JobStatus(jobsListStatus),
		Limit:       jobsListLimit,
	}
	if jobsListProfile != "" {
		if filters.ProfileID, err = uuid.Parse(jobsListProfile); err != nil {
			return fmt.Errorf("invalid profile ID %s: %w", jobsListProfile, err)
		}
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	jobs, err := store.ListJobs(ctx, filters)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No jobs found.")
		return nil
	}

	for _, job := range jobs {
		_, _ = fmt.Fprintf(os.Stdout, "%s  [%-12s] %s at %s\n", job.ID, job.Status, job.Title, job.CompanyName)
	}
	return nil
}

func runJobsSetStatus(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	id, err := uuid.Parse(jobsSetStatusID)
	if err != nil {
		return fmt.Errorf("invalid job ID %s: %w", jobsSetStatusID, err)
	}
	status := types.JobStatus(jobsSetStatusValue)
	switch status {
	case types.JobStatusInterested, types.JobStatusApplied, types.JobStatusInterviewing,
		types.JobStatusRejected, types.JobStatusOffered:
	default:
		return fmt.Errorf("unknown status %q", jobsSetStatusValue)
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	if err := store.UpdateJobStatus(ctx, id, status); err != nil {
		return err
	}

	job, err := store.GetJob(ctx, id)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s at %s is now %s\n", job.Title, job.CompanyName, job.Status)
	return nil
}

func runJobsDelete(_ *cobra.Command, _ []string) error {
	cfg, err := requireDatabase()
	if err != nil {
		return err
	}

	id, err := uuid.Parse(jobsDeleteID)
	if err != nil {
		return fmt.Errorf("invalid job ID %s: %w", jobsDeleteID, err)
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteJob(ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Deleted job %s\n", id)
	return nil
}
