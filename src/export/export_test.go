// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// export_test.go - Tests for building, rendering and writing shopping list
// documents.

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/christimahu/dev/supermarket-bot/src/catalog"
	"github.com/christimahu/dev/supermarket-bot/src/config"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(config.DefaultConfig().CatalogEntries())
}

// Each exported line is exactly what Locate reports for that item.
func TestBuild_MatchesLocate(t *testing.T) {
	cat := testCatalog()
	doc := Build("Supermarket Shopping List", cat, []string{"bread", "eggs"})

	assert.Equal(t, "Supermarket Shopping List", doc.Title)
	assert.Equal(t, []string{
		"bread: " + cat.Locate("bread").String(),
		"eggs: " + cat.Locate("eggs").String(),
	}, doc.Lines)
	assert.Equal(t, "bread: The bread is located at Aisle 1, Shelf B", doc.Lines[0])
	assert.Equal(t, "eggs: The eggs is located at Aisle 2, Shelf B", doc.Lines[1])
}

// Items are re-resolved at export time, so an unknown item gets the advisory.
func TestBuild_UnknownItem(t *testing.T) {
	doc := Build("T", testCatalog(), []string{"caviar"})
	assert.Equal(t, []string{"caviar: Sorry, I couldn't find the location for caviar. Please check with our staff."}, doc.Lines)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextRenderer{}.Render(&buf, Document{Title: "List", Lines: []string{"a: x", "b: y"}}))
	assert.Equal(t, "List\na: x\nb: y\n", buf.String())
}

func TestPDFRenderer(t *testing.T) {
	var buf bytes.Buffer
	doc := Build("Supermarket Shopping List", testCatalog(), []string{"bread", "crème fraîche"})
	require.NoError(t, PDFRenderer{}.Render(&buf, doc))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
	assert.Contains(t, buf.String(), "%%EOF")
}

func TestExporter_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopping_list.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale contents\n"), 0o644))

	exp, err := New(config.ExportConfig{Path: path, Format: config.FormatText, Title: "Supermarket Shopping List"},
		testCatalog(), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, path, exp.Path())
	assert.Equal(t, config.FormatText, exp.Format())

	require.NoError(t, exp.Export([]string{"bread", "eggs"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Supermarket Shopping List\n"+
		"bread: The bread is located at Aisle 1, Shelf B\n"+
		"eggs: The eggs is located at Aisle 2, Shelf B\n", string(data))
}

func TestExporter_PDFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopping_list.pdf")
	exp, err := New(config.ExportConfig{Path: path, Format: config.FormatPDF, Title: "Supermarket Shopping List"},
		testCatalog(), nil)
	require.NoError(t, err)

	require.NoError(t, exp.Export([]string{"milk"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestExporter_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "shopping_list.txt")
	exp, err := New(config.ExportConfig{Path: path, Format: config.FormatText}, testCatalog(), nil)
	require.NoError(t, err)
	assert.Error(t, exp.Export([]string{"bread"}))
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(config.ExportConfig{Path: "x", Format: "docx"}, testCatalog(), nil)
	assert.Error(t, err)
}
