package preview

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/xuri/excelize/v2"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/internal/content"
	"github.com/docshelf/docshelf/internal/entity"
)

// Result is the outcome of one preview generation attempt. Supported
// is false when the format can never be rendered; Message then carries
// the canonical unsupported text the failure classifier keys on.
type Result struct {
	Supported bool
	Status    constants.PreviewStatus
	Message   string
	Pages     int
}

// Generator renders a derived preview for a document's current
// content. It is invoked only by the scheduler, never inline during
// ingestion.
type Generator interface {
	Generate(ctx context.Context, doc *entity.Document) (Result, error)
}

type generator struct {
	store    content.Store
	maxPages int
	logger   *slog.Logger
}

func NewGenerator(store content.Store, maxPages int, logger *slog.Logger) Generator {
	return &generator{store: store, maxPages: maxPages, logger: logger}
}

func (g *generator) Generate(ctx context.Context, doc *entity.Document) (Result, error) {
	mimeType := constants.NormalizeMimeType(doc.MimeType)

	if _, ok := constants.UnsupportedPreviewMimeTypes[mimeType]; ok {
		return unsupported(mimeType), nil
	}

	rc, err := g.store.Get(ctx, doc.ContentID)
	if err != nil {
		return Result{}, fmt.Errorf("error generating preview: read content: %w", err)
	}
	defer rc.Close()

	switch {
	case mimeType == "application/pdf":
		return g.generatePDF(rc)
	case strings.HasPrefix(mimeType, "image/"):
		return g.generateImage(rc)
	case strings.HasPrefix(mimeType, "text/") || mimeType == "application/json" || mimeType == "application/xml":
		return g.generateText(rc)
	case mimeType == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return g.generateSpreadsheet(rc)
	default:
		return unsupported(mimeType), nil
	}
}

func (g *generator) generatePDF(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("error generating preview: read pdf: %w", err)
	}
	if len(data) == 0 {
		return Result{
			Supported: false,
			Status:    constants.PreviewFailed,
			Message:   "Preview not available for empty PDF content",
		}, nil
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	rs := bytes.NewReader(data)
	if err := api.Validate(rs, conf); err != nil {
		return Result{}, fmt.Errorf("error generating preview: invalid pdf: %w", err)
	}

	rs = bytes.NewReader(data)
	pages, err := api.PageCount(rs, conf)
	if err != nil {
		return Result{}, fmt.Errorf("error generating preview: count pages: %w", err)
	}
	if g.maxPages > 0 && pages > g.maxPages {
		pages = g.maxPages
	}
	return Result{Supported: true, Status: constants.PreviewReady, Pages: pages}, nil
}

func (g *generator) generateImage(r io.Reader) (Result, error) {
	if _, _, err := image.DecodeConfig(r); err != nil {
		return Result{}, fmt.Errorf("error generating preview: decode image: %w", err)
	}
	return Result{Supported: true, Status: constants.PreviewReady, Pages: 1}, nil
}

// generateText takes the head of the document as a single-page render.
func (g *generator) generateText(r io.Reader) (Result, error) {
	head := make([]byte, 64*1024)
	if _, err := io.ReadFull(r, head); err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Result{}, fmt.Errorf("error generating preview: read text: %w", err)
	}
	return Result{Supported: true, Status: constants.PreviewReady, Pages: 1}, nil
}

func (g *generator) generateSpreadsheet(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("error generating preview: open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := len(f.GetSheetList())
	if g.maxPages > 0 && sheets > g.maxPages {
		sheets = g.maxPages
	}
	return Result{Supported: true, Status: constants.PreviewReady, Pages: sheets}, nil
}

func unsupported(mimeType string) Result {
	return Result{
		Supported: false,
		Status:    constants.PreviewFailed,
		Message:   "Preview not supported for mime type: " + mimeType,
	}
}
