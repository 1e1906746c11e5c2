package extract

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/internal/common"
)

// Result holds the text pulled out of a document plus any metadata the
// format exposes (author, title, page count).
type Result struct {
	Text     string
	Metadata map[string]string
	Pages    int
}

// TextExtractor pulls plain text out of a single document format.
type TextExtractor interface {
	Extract(ctx context.Context, r io.Reader) (*Result, error)
	SupportedTypes() []string
}

// Registry dispatches extraction by MIME type.
type Registry struct {
	extractors    map[string]TextExtractor
	maxTextLength int
	logger        *slog.Logger
}

func NewRegistry(cfg common.ExtractConfig, logger *slog.Logger) *Registry {
	r := &Registry{
		extractors:    make(map[string]TextExtractor),
		maxTextLength: cfg.MaxTextLength,
		logger:        logger,
	}

	r.Register(NewPlainTextExtractor())
	r.Register(NewPDFExtractor())
	r.Register(NewDocxExtractor())
	r.Register(NewXlsxExtractor())

	return r
}

func (r *Registry) Register(e TextExtractor) {
	for _, mimeType := range e.SupportedTypes() {
		r.extractors[strings.ToLower(mimeType)] = e
	}
}

// Supports reports whether text extraction applies to the MIME type.
// Binary media (images, audio, video, archives) is excluded up front.
func (r *Registry) Supports(mimeType string) bool {
	normalized := constants.NormalizeMimeType(mimeType)
	if _, skip := constants.SkipExtractionMimeTypes[normalized]; skip {
		return false
	}
	if strings.HasPrefix(normalized, "text/") {
		return true
	}
	_, ok := r.extractors[normalized]
	return ok
}

// Extract dispatches to the extractor registered for the MIME type
// and caps the returned text at the configured maximum.
func (r *Registry) Extract(ctx context.Context, mimeType string, reader io.Reader) (*Result, error) {
	normalized := constants.NormalizeMimeType(mimeType)

	e, ok := r.extractors[normalized]
	if !ok && strings.HasPrefix(normalized, "text/") {
		e = r.extractors["text/plain"]
		ok = e != nil
	}
	if !ok {
		return nil, common.NewAppError("EXTRACT_UNSUPPORTED", "no extractor for mime type: "+normalized, nil)
	}

	result, err := e.Extract(ctx, reader)
	if err != nil {
		return nil, err
	}

	if r.maxTextLength > 0 && len(result.Text) > r.maxTextLength {
		cut := r.maxTextLength
		for cut > 0 && !utf8.RuneStart(result.Text[cut]) {
			cut--
		}
		r.logger.Warn("extract.text.truncated",
			"mime_type", normalized,
			"length", len(result.Text),
			"limit", r.maxTextLength)
		result.Text = result.Text[:cut]
	}
	return result, nil
}
