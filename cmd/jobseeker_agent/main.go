// Package main implements the jobseeker_agent CLI: company research,
// application content generation, and conversational profile building.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobseeker-agent/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "jobseeker_agent",
	Short: "Job seeker assistant",
	Long:  "jobseeker_agent researches companies, builds a candidate profile through conversation, and generates application materials using an LLM completion service.",
}

var (
	rootConfigFile string
	rootAPIKey     string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigFile, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootAPIKey, "api-key", "", "Gemini API key (overrides config file and GEMINI_API_KEY)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed progress information")
}

// loadRuntimeConfig assembles the effective configuration: CLI flags win
// over the config file, which wins over environment variables.
func loadRuntimeConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if rootConfigFile != "" {
		loaded, err := config.LoadConfig(rootConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if rootAPIKey != "" {
		cfg.APIKey = rootAPIKey
	}
	cfg.Verbose = cfg.Verbose || rootVerbose
	cfg.FromEnv()
	return cfg, nil
}

// requireAPIKey loads the runtime config and insists on a completion key.
func requireAPIKey() (*config.Config, error) {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key required: set --api-key, the config file, or GEMINI_API_KEY")
	}
	return cfg, nil
}

// requireDatabase loads the runtime config and insists on a database URL.
// Tracking commands need the store but not the completion service.
func requireDatabase() (*config.Config, error) {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database required: set database_url in the config file or DATABASE_URL")
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
