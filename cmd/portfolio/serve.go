// Package main implements the portfolio CLI.
package main

import (
	"fmt"
	"log"

	"github.com/jonathan/portfolio-cv/internal/export"
	"github.com/jonathan/portfolio-cv/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Serves rendered documents, PDF exports, selections, violations and the project catalog over HTTP.",
	RunE:  runServe,
}

var (
	servePort int
	serveAddr string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides --addr)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("port") {
		cfg.Addr = fmt.Sprintf(":%d", servePort)
	}

	repo, err := loadRepository(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Addr:          cfg.Addr,
		Repository:    repo,
		TemplatePath:  cfg.Template,
		ExportTimeout: cfg.Timeout(export.DefaultTimeout),
		Verbose:       cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Printf("[SERVE] Serving %d cards for %s", len(repo.Cards), repo.Person.Name)
	return srv.Start()
}
