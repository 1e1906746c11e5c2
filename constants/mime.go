package constants

import "strings"

// SkipExtractionMimeTypes lists MIME types for which text extraction is
// pointless (raster images, audio/video, archives).
var SkipExtractionMimeTypes = map[string]struct{}{
	"image/jpeg":                   {},
	"image/png":                    {},
	"image/gif":                    {},
	"image/bmp":                    {},
	"image/tiff":                   {},
	"video/mp4":                    {},
	"video/avi":                    {},
	"audio/mpeg":                   {},
	"audio/wav":                    {},
	"application/zip":              {},
	"application/x-rar-compressed": {},
	"application/x-7z-compressed":  {},
}

// UnsupportedPreviewMimeTypes lists MIME types that can never be previewed,
// regardless of the failure message.
var UnsupportedPreviewMimeTypes = map[string]struct{}{
	"application/octet-stream": {},
	"binary/octet-stream":      {},
	"application/x-empty":      {},
}

// AllowedExtensions holds the default allowed file extensions for
// drop-folder ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"tif":  {},
	"tiff": {},
	"txt":  {},
	"md":   {},
	"csv":  {},
	"docx": {},
	"xlsx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// NormalizeMimeType strips parameters ("; charset=...") and lowercases.
// Returns "" for blank input.
func NormalizeMimeType(mimeType string) string {
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		return ""
	}
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
