package antivirus

import (
	"context"
	"io"
)

// ScanResult reports the outcome of a virus scan. Exactly one of the
// boolean states applies; Signature is set only for infected streams.
type ScanResult struct {
	Infected  bool
	Skipped   bool
	Signature string
}

// Scanner checks content streams for malware.
type Scanner interface {
	// Scan streams content to the scanner. A nil error with
	// Infected=true means the stream matched a signature; errors mean
	// the scanner could not produce a verdict at all.
	Scan(ctx context.Context, r io.Reader) (ScanResult, error)
	// Ping reports whether the scanner daemon is reachable.
	Ping(ctx context.Context) error
}
