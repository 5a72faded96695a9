package pdf

import (
	"github.com/iho/goinvoice/internal/layout"
	"github.com/iho/goinvoice/internal/usecase"
)

// Factory creates gofpdf renderers for the invoice usecase.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewRenderer implements usecase.RendererFactory.
func (f *Factory) NewRenderer(info usecase.DocumentInfo) layout.Renderer {
	return NewRenderer(Metadata{
		Title:   info.Title,
		Author:  info.Author,
		Subject: info.Subject,
	})
}
