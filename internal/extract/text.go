package extract

import (
	"context"
	"io"
	"strings"

	"github.com/docshelf/docshelf/internal/common"
)

type plainTextExtractor struct{}

func NewPlainTextExtractor() TextExtractor {
	return &plainTextExtractor{}
}

func (e *plainTextExtractor) Extract(ctx context.Context, r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, common.WrapError(err, "read text content")
	}
	return &Result{
		Text:     strings.TrimSpace(string(data)),
		Metadata: map[string]string{},
	}, nil
}

func (e *plainTextExtractor) SupportedTypes() []string {
	return []string{
		"text/plain",
		"text/html",
		"text/csv",
		"text/markdown",
		"application/json",
		"application/xml",
		"text/xml",
	}
}
