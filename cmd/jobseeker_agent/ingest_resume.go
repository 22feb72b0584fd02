package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobseeker-agent/internal/ingestion"
)

var ingestResumeCmd = &cobra.Command{
	Use:   "ingest-resume",
	Short: "Extract plain text from a resume file",
	Long:  "Converts a PDF, Word, or plain-text resume into cleaned plain text suitable for the profile building and content generation workflows.",
	RunE:  runIngestResume,
}

var (
	ingestResumeInFile  string
	ingestResumeOutFile string
)

func init() {
	ingestResumeCmd.Flags().StringVarP(&ingestResumeInFile, "in", "i", "", "Path to the resume file (required)")
	ingestResumeCmd.Flags().StringVarP(&ingestResumeOutFile, "out", "o", "", "Output text file path (required)")

	if err := ingestResumeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := ingestResumeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(ingestResumeCmd)
}

func runIngestResume(_ *cobra.Command, _ []string) error {
	text, err := ingestion.ResumeText(ingestResumeInFile)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	if err := os.WriteFile(ingestResumeOutFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ingestResumeOutFile, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d characters to %s\n", len(text), ingestResumeOutFile)
	return nil
}
