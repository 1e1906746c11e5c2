package extract

import (
	"context"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/docshelf/docshelf/internal/common"
)

type xlsxExtractor struct{}

func NewXlsxExtractor() TextExtractor {
	return &xlsxExtractor{}
}

func (e *xlsxExtractor) Extract(ctx context.Context, r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, common.WrapError(err, "open spreadsheet")
	}
	defer f.Close()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for _, row := range rows {
			sb.WriteString(strings.Join(row, " "))
			sb.WriteString("\n")
		}
	}

	metadata := map[string]string{}
	if props, err := f.GetDocProps(); err == nil && props != nil {
		if props.Title != "" {
			metadata["title"] = props.Title
		}
		if props.Creator != "" {
			metadata["author"] = props.Creator
		}
	}

	return &Result{
		Text:     strings.TrimSpace(sb.String()),
		Metadata: metadata,
	}, nil
}

func (e *xlsxExtractor) SupportedTypes() []string {
	return []string{
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-excel",
	}
}
