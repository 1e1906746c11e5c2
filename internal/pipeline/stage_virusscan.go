package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docshelf/docshelf/internal/antivirus"
	"github.com/docshelf/docshelf/internal/common"
	"github.com/docshelf/docshelf/internal/content"
)

// virusScanStage streams the stored content through the malware
// scanner. An infection deletes the content and aborts the run. When
// the scanner itself is unreachable the configured policy decides
// between letting the upload through and rejecting it.
type virusScanStage struct {
	scanner antivirus.Scanner
	store   content.Store
	cfg     common.AntivirusConfig
	logger  *slog.Logger
}

func NewVirusScanStage(scanner antivirus.Scanner, store content.Store, cfg common.AntivirusConfig, logger *slog.Logger) Stage {
	return &virusScanStage{scanner: scanner, store: store, cfg: cfg, logger: logger}
}

func (s *virusScanStage) Name() string  { return "virus-scan" }
func (s *virusScanStage) Order() int    { return OrderVirusScan }
func (s *virusScanStage) Supports(pc *Context) bool {
	return s.cfg.Enabled && pc.ContentID != ""
}

func (s *virusScanStage) Process(ctx context.Context, pc *Context) StageResult {
	rc, err := s.store.Get(ctx, pc.ContentID)
	if err != nil {
		return Fatal("read content for scan: " + err.Error())
	}
	defer rc.Close()

	result, err := s.scanner.Scan(ctx, rc)
	if err != nil {
		if s.cfg.FailOpen {
			s.logger.Warn("pipeline.virusscan.unavailable",
				"content_id", pc.ContentID,
				"error", err)
			return Skipped("scanner unavailable: " + err.Error())
		}
		return Fatal("scanner unavailable: " + err.Error())
	}

	if result.Infected {
		if delErr := s.store.Delete(ctx, pc.ContentID); delErr != nil {
			s.logger.Error("pipeline.virusscan.purge_failed",
				"content_id", pc.ContentID,
				"error", delErr)
		}
		pc.RequestStop()
		s.logger.Error("pipeline.virusscan.infected",
			"content_id", pc.ContentID,
			"signature", result.Signature,
			"filename", pc.Filename)
		return Fatal(fmt.Sprintf("virus detected: %s", result.Signature))
	}
	if result.Skipped {
		return Skipped("scan skipped by scanner")
	}
	return Success()
}
