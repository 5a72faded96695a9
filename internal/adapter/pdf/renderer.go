// Package pdf implements layout.Renderer on top of gofpdf.
package pdf

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const fontFamily = "Helvetica"

// Metadata is written into the PDF document information dictionary.
type Metadata struct {
	Title   string
	Author  string
	Subject string
}

// Renderer draws onto an in-memory A4 portrait document.
type Renderer struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

// NewRenderer creates an empty document. Pages are added by the caller.
func NewRenderer(meta Metadata) *Renderer {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("goinvoice", true)

	// Core fonts are cp1252 encoded; the translator maps € and umlauts.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	if meta.Title != "" {
		doc.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		doc.SetAuthor(meta.Author, true)
	}
	if meta.Subject != "" {
		doc.SetSubject(meta.Subject, true)
	}

	return &Renderer{
		pdf:       doc,
		translate: tr,
	}
}

// SetFont selects the Helvetica face for subsequent text.
func (r *Renderer) SetFont(style string, size float64) {
	r.pdf.SetFont(fontFamily, style, size)
}

// Text draws text with its baseline starting at (x, y).
func (r *Renderer) Text(x, y float64, text string) {
	r.pdf.Text(x, y, r.translate(text))
}

// TextRight draws text so that it ends at x.
func (r *Renderer) TextRight(x, y float64, text string) {
	s := r.translate(text)
	r.pdf.Text(x-r.pdf.GetStringWidth(s), y, s)
}

// Line draws a straight line.
func (r *Renderer) Line(x1, y1, x2, y2 float64) {
	r.pdf.Line(x1, y1, x2, y2)
}

// AddPage starts a new page.
func (r *Renderer) AddPage() {
	r.pdf.AddPage()
}

// PageCount returns the number of pages in the document.
func (r *Renderer) PageCount() int {
	return r.pdf.PageCount()
}

// Finish closes the document and writes it to w.
func (r *Renderer) Finish(w io.Writer) error {
	if err := r.pdf.Error(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}

	if err := r.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: failed to write document: %w", err)
	}

	return nil
}
