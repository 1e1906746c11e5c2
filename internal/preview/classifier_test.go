package preview

import (
	"testing"

	"github.com/docshelf/docshelf/constants"
)

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name     string
		status   constants.PreviewStatus
		mimeType string
		message  string
		want     *constants.FailureCategory
	}{
		{
			name:   "nil unless failed",
			status: constants.PreviewReady,
			want:   nil,
		},
		{
			name:   "nil for processing",
			status: constants.PreviewProcessing,
			want:   nil,
		},
		{
			name:     "octet-stream is unsupported regardless of message",
			status:   constants.PreviewFailed,
			mimeType: "application/octet-stream",
			message:  "timeout while rendering",
			want:     categoryPtr(constants.CategoryUnsupported),
		},
		{
			name:     "mime parameters are stripped before lookup",
			status:   constants.PreviewFailed,
			mimeType: "Application/Octet-Stream; charset=binary",
			want:     categoryPtr(constants.CategoryUnsupported),
		},
		{
			name:    "unsupported phrase",
			status:  constants.PreviewFailed,
			message: "Preview not supported for mime type: application/x-thing",
			want:    categoryPtr(constants.CategoryUnsupported),
		},
		{
			name:    "empty pdf phrase",
			status:  constants.PreviewFailed,
			message: "Preview not available for empty PDF content",
			want:    categoryPtr(constants.CategoryUnsupported),
		},
		{
			name:    "unsupported wording mid-message does not anchor",
			status:  constants.PreviewFailed,
			message: "renderer reported: preview not supported",
			want:    categoryPtr(constants.CategoryPermanent),
		},
		{
			name:    "transient wrapper wins over embedded unsupported wording",
			status:  constants.PreviewFailed,
			message: "Error generating preview: preview not supported by renderer",
			want:    categoryPtr(constants.CategoryTemporary),
		},
		{
			name:    "generation panic wrapper is temporary",
			status:  constants.PreviewFailed,
			message: "error generating preview: panic: nil dereference",
			want:    categoryPtr(constants.CategoryTemporary),
		},
		{
			name:    "timeout is temporary",
			status:  constants.PreviewFailed,
			message: "render timed out after 30s",
			want:    categoryPtr(constants.CategoryTemporary),
		},
		{
			name:    "connection refused is temporary",
			status:  constants.PreviewFailed,
			message: "dial tcp: connection refused",
			want:    categoryPtr(constants.CategoryTemporary),
		},
		{
			name:    "gateway errors are temporary",
			status:  constants.PreviewFailed,
			message: "upstream returned 503",
			want:    categoryPtr(constants.CategoryTemporary),
		},
		{
			name:    "temporar prefix matches temporarily",
			status:  constants.PreviewFailed,
			message: "service temporarily degraded",
			want:    categoryPtr(constants.CategoryTemporary),
		},
		{
			name:    "unknown failure defaults to permanent",
			status:  constants.PreviewFailed,
			message: "corrupt xref table",
			want:    categoryPtr(constants.CategoryPermanent),
		},
		{
			name:   "empty message defaults to permanent",
			status: constants.PreviewFailed,
			want:   categoryPtr(constants.CategoryPermanent),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFailure(tt.status, tt.mimeType, tt.message)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("got %s, want %s", *got, *tt.want)
			}
		})
	}
}

func TestClassifyFailureIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		got := ClassifyFailure(constants.PreviewFailed, "application/pdf", "timed out")
		if got == nil || *got != constants.CategoryTemporary {
			t.Fatalf("iteration %d: got %v", i, got)
		}
	}
}
