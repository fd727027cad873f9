// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// main.go - Entry point for the supermarket bot. Wires configuration,
// logging, the catalog and the exporter into a chat on stdin/stdout.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/christimahu/dev/supermarket-bot/src/catalog"
	"github.com/christimahu/dev/supermarket-bot/src/chatbot"
	"github.com/christimahu/dev/supermarket-bot/src/config"
	"github.com/christimahu/dev/supermarket-bot/src/export"
	"github.com/christimahu/dev/supermarket-bot/src/logging"
)

var (
	configPath string
	outputPath string
	format     string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "superbot",
	Short: "Supermarket Bot - find items and build a shopping list",
	Long: `Supermarket Bot answers questions about the store and tells you where
items are. Type items separated by commas to add them to your shopping list;
type 'exit' to finish and the list is written to a document.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runChat,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List every item the store knows and where it is",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, e := range catalog.New(cfg.CatalogEntries()).Items() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", e.Item, e.Place)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [item]...",
	Short: "Write a shopping list document without chatting",
	Long: `Looks up each item and writes the shopping list document. Items the
store does not carry are reported and left off the list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "superbot.yaml", "path to YAML config file")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "shopping list file (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "shopping list format: pdf or text (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(catalogCmd, exportCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if outputPath != "" {
		cfg.Export.Path = outputPath
	}
	if format != "" {
		cfg.Export.Format = strings.ToLower(format)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err = logging.New(level, cfg.Logging.Format)
	return err
}

func newExporter(cat *catalog.Catalog, l *zap.Logger) (*export.Exporter, error) {
	return export.New(cfg.Export, cat, l)
}

func runChat(cmd *cobra.Command, args []string) error {
	cat := catalog.New(cfg.CatalogEntries())
	sessionLogger, _ := logging.ForSession(logger)

	exp, err := newExporter(cat, sessionLogger)
	if err != nil {
		return err
	}
	notice := chatbot.DefaultExportNotice
	if exp.Format() == config.FormatText {
		notice = "Generating your shopping list..."
	}

	sessionLogger.Debug("session started", zap.Int("catalog_items", cat.Len()))
	session := chatbot.NewSession(chatbot.NewBot(cfg, cat), cmd.InOrStdin(), cmd.OutOrStdout(),
		chatbot.WithExporter(exp),
		chatbot.WithExportNotice(notice),
		chatbot.WithLogger(sessionLogger),
	)
	if err := session.Run(cmd.Context()); err != nil {
		return err
	}
	sessionLogger.Debug("session finished", zap.Strings("items", session.ShoppingList()))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cat := catalog.New(cfg.CatalogEntries())
	exp, err := newExporter(cat, logger)
	if err != nil {
		return err
	}

	var items []string
	for _, arg := range args {
		item := strings.ToLower(strings.TrimSpace(arg))
		loc := cat.Locate(item)
		if !loc.Found {
			fmt.Fprintln(cmd.ErrOrStderr(), loc.String())
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return fmt.Errorf("none of the requested items are in the catalog")
	}
	if err := exp.Export(items); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d item(s) to %s\n", len(items), exp.Path())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
