package extract

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/docshelf/docshelf/internal/common"
)

type docxExtractor struct{}

func NewDocxExtractor() TextExtractor {
	return &docxExtractor{}
}

func (e *docxExtractor) Extract(ctx context.Context, r io.Reader) (*Result, error) {
	// The docx reader needs random access, so spool to a temp file.
	tmp, err := os.CreateTemp("", "extract-*.docx")
	if err != nil {
		return nil, common.WrapError(err, "create temp file")
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, r); err != nil {
		return nil, common.WrapError(err, "write temp file")
	}
	tmp.Close()

	doc, err := docx.ReadDocxFile(tmp.Name())
	if err != nil {
		return nil, common.WrapError(err, "read docx")
	}
	defer doc.Close()

	return &Result{
		Text:     strings.TrimSpace(doc.Editable().GetContent()),
		Metadata: map[string]string{},
	}, nil
}

func (e *docxExtractor) SupportedTypes() []string {
	return []string{"application/vnd.openxmlformats-officedocument.wordprocessingml.document"}
}
