// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// export.go - Writes the shopping list document at the end of a session.
// Each item's location is looked up again at export time.

package export

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/christimahu/dev/supermarket-bot/src/catalog"
	"github.com/christimahu/dev/supermarket-bot/src/config"
)

// Locator resolves an item to its place in the store.
type Locator interface {
	Locate(item string) catalog.Location
}

// Document is the rendered-format-independent content of a shopping list.
type Document struct {
	Title string
	Lines []string
}

// Renderer writes a Document in some concrete format.
type Renderer interface {
	Render(w io.Writer, doc Document) error
}

// Build resolves every item and returns one "<item>: <location>" line each.
func Build(title string, loc Locator, items []string) Document {
	doc := Document{Title: title, Lines: make([]string, 0, len(items))}
	for _, item := range items {
		doc.Lines = append(doc.Lines, fmt.Sprintf("%s: %s", item, loc.Locate(item)))
	}
	return doc
}

// Exporter writes shopping lists to a fixed file.
type Exporter struct {
	path     string
	title    string
	format   string
	locator  Locator
	renderer Renderer
	logger   *zap.Logger
}

// New returns an Exporter for the configured path and format.
func New(cfg config.ExportConfig, loc Locator, logger *zap.Logger) (*Exporter, error) {
	var r Renderer
	switch cfg.Format {
	case config.FormatPDF:
		r = PDFRenderer{}
	case config.FormatText:
		r = TextRenderer{}
	default:
		return nil, fmt.Errorf("unsupported export format %q", cfg.Format)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		path:     cfg.Path,
		title:    cfg.Title,
		format:   cfg.Format,
		locator:  loc,
		renderer: r,
		logger:   logger,
	}, nil
}

// Path is the file the exporter writes to.
func (e *Exporter) Path() string { return e.path }

// Format is the configured document format.
func (e *Exporter) Format() string { return e.format }

// Export writes items to the exporter's file, replacing any existing one.
// Errors are returned as-is; there is no retry and no cleanup of a partial
// file.
func (e *Exporter) Export(items []string) error {
	doc := Build(e.title, e.locator, items)

	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", e.path, err)
	}
	if err := e.renderer.Render(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", e.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.path, err)
	}

	e.logger.Info("shopping list exported",
		zap.String("path", e.path),
		zap.String("format", e.format),
		zap.Int("items", len(items)),
	)
	return nil
}
