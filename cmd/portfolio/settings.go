// Package main implements the portfolio CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/content"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/jonathan/portfolio-cv/internal/validation"
	"github.com/spf13/cobra"
)

// dataEnvVar names the environment variable consulted when --data is not set.
const dataEnvVar = "PORTFOLIO_DATA"

// documentFlags holds the document option flags shared by render, export and validate.
type documentFlags struct {
	docType  string
	focus    string
	audience string
	locale   string
	template string
}

func addDocumentFlags(cmd *cobra.Command, f *documentFlags) {
	cmd.Flags().StringVarP(&f.docType, "type", "t", "", "Document type: resume or cv")
	cmd.Flags().StringVarP(&f.focus, "focus", "f", "", "Domain focus: dataScience or nanotech")
	cmd.Flags().StringVarP(&f.audience, "audience", "a", "", "Audience: academic, industry or all")
	cmd.Flags().StringVar(&f.locale, "locale", "", "Locale for month names (BCP 47)")
	cmd.Flags().StringVar(&f.template, "template", "", "Path to a custom document template")
}

// defaultConfig supplies the values used when neither the config file nor a flag sets them.
func defaultConfig() config.Config {
	return config.Config{
		Data:           os.Getenv(dataEnvVar),
		OutputDir:      "out",
		DocumentType:   string(types.DocumentResume),
		DomainFocus:    string(types.FocusDataScience),
		Audience:       string(types.AudienceAll),
		Locale:         "en",
		Category:       "all",
		Sort:           "relevance",
		MaxPages:       2,
		MaxBulletChars: 220,
		Forbidden:      validation.DefaultForbiddenPhrases,
		ExportTimeout:  "30s",
		Addr:           ":8080",
	}
}

// resolveConfig loads the config file (if any), applies flags that were set on
// the command line and fills the rest from defaultConfig. doc may be nil for
// commands without document flags.
func resolveConfig(cmd *cobra.Command, doc *documentFlags) (config.Config, error) {
	var fileCfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loaded
	}

	// CLI flags override config file values
	flags := cmd.Flags()
	if flags.Changed("data") {
		fileCfg.Data = rootDataPath
	}
	if flags.Changed("verbose") {
		fileCfg.Verbose = rootVerbose
	}
	if doc != nil {
		if flags.Changed("type") {
			fileCfg.DocumentType = doc.docType
		}
		if flags.Changed("focus") {
			fileCfg.DomainFocus = doc.focus
		}
		if flags.Changed("audience") {
			fileCfg.Audience = doc.audience
		}
		if flags.Changed("locale") {
			fileCfg.Locale = doc.locale
		}
		if flags.Changed("template") {
			fileCfg.Template = doc.template
		}
	}

	cfg := fileCfg.MergeWithDefaults(defaultConfig())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	if cfg.Verbose {
		log.Printf("[CONFIG] data=%q template=%q options=%+v", cfg.Data, cfg.Template, cfg.DocumentOptions())
	}
	return cfg, nil
}

// loadRepository loads the configured repository, falling back to the embedded one.
func loadRepository(cfg config.Config) (*types.Repository, error) {
	repo, err := content.LoadOrDefault(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio repository: %w", err)
	}
	return repo, nil
}

// ensureDir creates dir unless it is empty or the working directory.
func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
