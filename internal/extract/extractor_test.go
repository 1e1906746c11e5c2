package extract

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/docshelf/docshelf/internal/common"
)

func testRegistry(maxLen int) *Registry {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRegistry(common.ExtractConfig{MaxTextLength: maxLen}, logger)
}

func TestRegistrySupports(t *testing.T) {
	r := testRegistry(0)

	tests := []struct {
		mimeType string
		want     bool
	}{
		{"text/plain", true},
		{"text/x-log", true}, // generic text fallback
		{"application/pdf", true},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", true},
		{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", true},
		{"TEXT/PLAIN; charset=utf-8", true},
		{"image/png", false},
		{"video/mp4", false},
		{"application/zip", false},
		{"application/octet-stream", false},
	}
	for _, tt := range tests {
		if got := r.Supports(tt.mimeType); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.mimeType, got, tt.want)
		}
	}
}

func TestExtractPlainText(t *testing.T) {
	r := testRegistry(0)

	result, err := r.Extract(context.Background(), "text/plain", strings.NewReader("  hello world\n"))
	if err != nil {
		t.Fatal(err)
	}
	if result.Text != "hello world" {
		t.Errorf("Text = %q", result.Text)
	}
}

func TestExtractGenericTextFallsBackToPlain(t *testing.T) {
	r := testRegistry(0)

	result, err := r.Extract(context.Background(), "text/x-custom-log", strings.NewReader("log line"))
	if err != nil {
		t.Fatal(err)
	}
	if result.Text != "log line" {
		t.Errorf("Text = %q", result.Text)
	}
}

func TestExtractTruncatesAtMaxLength(t *testing.T) {
	r := testRegistry(10)

	result, err := r.Extract(context.Background(), "text/plain", strings.NewReader(strings.Repeat("a", 100)))
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Text) != 10 {
		t.Errorf("len(Text) = %d, want 10", len(result.Text))
	}
}

func TestExtractTruncationKeepsRuneBoundary(t *testing.T) {
	r := testRegistry(10)

	// "é" is two bytes; a byte-index cut at 10 would land inside the
	// fourth one.
	input := "abc" + strings.Repeat("é", 20)
	result, err := r.Extract(context.Background(), "text/plain", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Text) > 10 {
		t.Errorf("len(Text) = %d, want at most 10", len(result.Text))
	}
	if !utf8.ValidString(result.Text) {
		t.Errorf("truncated text is not valid UTF-8: %q", result.Text)
	}
}

func TestExtractUnknownMimeTypeFails(t *testing.T) {
	r := testRegistry(0)

	if _, err := r.Extract(context.Background(), "application/x-blob", strings.NewReader("x")); err == nil {
		t.Error("expected an error for an unregistered mime type")
	}
}

func TestPDFExtractorRejectsNonPDF(t *testing.T) {
	e := NewPDFExtractor()
	if _, err := e.Extract(context.Background(), strings.NewReader("plain text, no header")); err == nil {
		t.Error("expected an error for a missing pdf header")
	}
}
