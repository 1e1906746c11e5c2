package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docshelf/docshelf/internal/common"
)

type pdfExtractor struct{}

func NewPDFExtractor() TextExtractor {
	return &pdfExtractor{}
}

func (e *pdfExtractor) Extract(ctx context.Context, r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, common.WrapError(err, "read pdf content")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return nil, common.NewAppError("EXTRACT_INVALID", "not a pdf: missing header", nil)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, common.WrapError(err, "parse pdf")
	}

	var sb strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return &Result{
		Text: strings.TrimSpace(sb.String()),
		Metadata: map[string]string{
			"pages": fmt.Sprintf("%d", pages),
		},
		Pages: pages,
	}, nil
}

func (e *pdfExtractor) SupportedTypes() []string {
	return []string{"application/pdf"}
}
