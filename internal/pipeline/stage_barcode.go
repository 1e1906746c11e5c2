package pipeline

import (
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/docshelf/docshelf/internal/content"
)

// tagPrefix marks a barcode payload that should become a tag
// suggestion instead of plain metadata.
const tagPrefix = "TAG:"

// barcodeScanStage decodes QR and 1D barcodes embedded in image
// uploads. It is pure enrichment and never fails the run; decode
// problems are reported inside the success payload.
type barcodeScanStage struct {
	store  content.Store
	logger *slog.Logger
}

func NewBarcodeScanStage(store content.Store, logger *slog.Logger) Stage {
	return &barcodeScanStage{store: store, logger: logger}
}

func (s *barcodeScanStage) Name() string  { return "barcode-scan" }
func (s *barcodeScanStage) Order() int    { return OrderBarcodeScan }
func (s *barcodeScanStage) Supports(pc *Context) bool {
	return pc.ContentID != "" && strings.HasPrefix(pc.MimeType, "image/")
}

func (s *barcodeScanStage) Process(ctx context.Context, pc *Context) StageResult {
	rc, err := s.store.Get(ctx, pc.ContentID)
	if err != nil {
		return SuccessWithData(map[string]any{"error": "read content: " + err.Error()})
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return SuccessWithData(map[string]any{"error": "decode image: " + err.Error()})
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return SuccessWithData(map[string]any{"error": "prepare bitmap: " + err.Error()})
	}

	codes := s.decode(bmp)
	if len(codes) == 0 {
		return SuccessWithData(map[string]any{"codes": 0})
	}

	for _, code := range codes {
		if rest, found := strings.CutPrefix(code, tagPrefix); found {
			tag := strings.TrimSpace(rest)
			if tag != "" {
				pc.SuggestedTags = append(pc.SuggestedTags, tag)
			}
			continue
		}
		if existing, ok := pc.Metadata["barcodes"]; ok {
			pc.Metadata["barcodes"] = existing + "," + code
		} else {
			pc.Metadata["barcodes"] = code
		}
	}

	s.logger.Debug("pipeline.barcode.decoded",
		"content_id", pc.ContentID,
		"codes", len(codes))
	return SuccessWithData(map[string]any{"codes": len(codes)})
}

// decode tries the QR reader first, then common 1D formats. Readers
// return an error for images without a detectable code, which here
// just means "nothing found".
func (s *barcodeScanStage) decode(bmp *gozxing.BinaryBitmap) []string {
	readers := []gozxing.Reader{
		qrcode.NewQRCodeReader(),
		oned.NewCode128Reader(),
		oned.NewEAN13Reader(),
	}

	var codes []string
	for _, r := range readers {
		result, err := r.Decode(bmp, nil)
		if err != nil || result == nil {
			continue
		}
		if text := strings.TrimSpace(result.GetText()); text != "" {
			codes = append(codes, text)
		}
	}
	return codes
}
