package preview

import (
	"strings"

	"github.com/docshelf/docshelf/constants"
)

// unsupportedPrefixes and unsupportedPhrases mark failures caused by
// formats the generator can never render. Matching is case-insensitive;
// prefixes must open the message, phrases may appear anywhere. A message
// opening with a transient wrapper ("error generating preview: ...")
// therefore stays retryable even when it mentions "preview not
// supported" further in.
var unsupportedPrefixes = []string{
	"preview not supported",
}

var unsupportedPhrases = []string{
	"not supported for mime type",
	"not available for empty pdf content",
}

// temporaryPrefixes and temporaryPhrases mark infrastructure-flavored
// failures worth retrying.
var temporaryPrefixes = []string{
	"error generating preview",
}

var temporaryPhrases = []string{
	"timeout",
	"timed out",
	"temporar",
	"connection reset",
	"connection refused",
	"service unavailable",
	"502",
	"503",
	"504",
}

// ClassifyFailure maps a preview failure signal to a category. It
// returns nil unless the status is FAILED. The function is pure and
// performs no I/O, so scheduler, diagnostics and tests can all share
// it.
func ClassifyFailure(status constants.PreviewStatus, mimeType, message string) *constants.FailureCategory {
	if status != constants.PreviewFailed {
		return nil
	}

	if _, ok := constants.UnsupportedPreviewMimeTypes[constants.NormalizeMimeType(mimeType)]; ok {
		return categoryPtr(constants.CategoryUnsupported)
	}

	msg := strings.ToLower(strings.TrimSpace(message))
	if matchesAny(msg, unsupportedPrefixes, unsupportedPhrases) {
		return categoryPtr(constants.CategoryUnsupported)
	}
	if matchesAny(msg, temporaryPrefixes, temporaryPhrases) {
		return categoryPtr(constants.CategoryTemporary)
	}
	return categoryPtr(constants.CategoryPermanent)
}

func matchesAny(msg string, prefixes, phrases []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	for _, phrase := range phrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

func categoryPtr(c constants.FailureCategory) *constants.FailureCategory {
	return &c
}
