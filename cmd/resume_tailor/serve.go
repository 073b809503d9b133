package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the REST API server exposing resume parsing, job scraping, gap analysis, tailoring, and PDF generation endpoints.",
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
	serveAPIKey     string
	serveUseBrowser bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (default 8080)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser fallback for SPA job boards")

	rootCmd.AddCommand(serveCmd)
}

// resolveConfig layers flags over a config file over the environment.
func resolveConfig(configPath, apiKey string, port int, useBrowser bool) (config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if port != 0 {
		cfg.Port = port
	}
	if useBrowser {
		cfg.UseBrowser = true
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath, serveAPIKey, servePort, serveUseBrowser)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	client, err := llm.NewClient(context.Background(), nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close model client: %v\n", err)
		}
	}()

	return server.New(cfg, client).Start()
}
