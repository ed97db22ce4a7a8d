package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skippr/growscore/internal/config"
	"github.com/skippr/growscore/internal/server"
)

var (
	serveAddr       string
	serveConfigPath string
	serveUseBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for candidate profiles, the evaluation wizard, JD matching, and rankings.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "browser", false, "Use a headless browser to render javascript-heavy job postings")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	fileCfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		fileCfg = loaded
	}

	// Flags and environment win over the config file.
	cfg := config.Config{
		Addr:        serveAddr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		UseBrowser:  serveUseBrowser,
	}
	cfg = cfg.MergeWithDefaults(*fileCfg)
	cfg = cfg.MergeWithDefaults(config.Config{Addr: ":8080"})

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY not set; semantic matching and roadmaps are disabled")
	}

	srv, err := server.New(server.Config{
		Addr:        cfg.Addr,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.APIKey,
		UseBrowser:  cfg.UseBrowser || fileCfg.UseBrowser,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
