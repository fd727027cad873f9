// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// render.go - PDF and plain-text renderers for shopping list documents.

package export

import (
	"bufio"
	"io"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer lays the document out on a single A4 page flow: a bold,
// centred title followed by one line per item.
type PDFRenderer struct{}

// Render implements Renderer.
func (PDFRenderer) Render(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate so non-ASCII item names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(200, 10, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, line := range doc.Lines {
		pdf.CellFormat(200, 10, tr(line), "", 1, "", false, 0, "")
	}
	return pdf.Output(w)
}

// TextRenderer writes the title and lines as plain UTF-8 text.
type TextRenderer struct{}

// Render implements Renderer.
func (TextRenderer) Render(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(doc.Title)
	bw.WriteByte('\n')
	for _, line := range doc.Lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
