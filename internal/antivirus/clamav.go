package antivirus

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"

	"github.com/docshelf/docshelf/internal/common"
)

const streamChunkSize = 32 * 1024

// clamavScanner speaks the clamd TCP protocol (zINSTREAM and zPING).
type clamavScanner struct {
	addr    string
	timeout dialTimeouts
	logger  *slog.Logger
}

type dialTimeouts struct {
	dial net.Dialer
}

// NewClamAVScanner returns a Scanner backed by a clamd daemon.
func NewClamAVScanner(cfg common.AntivirusConfig, logger *slog.Logger) Scanner {
	return &clamavScanner{
		addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		timeout: dialTimeouts{dial: net.Dialer{Timeout: cfg.Timeout}},
		logger:  logger,
	}
}

func (s *clamavScanner) Ping(ctx context.Context) error {
	conn, err := s.timeout.dial.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return common.WrapError(err, "dial clamd")
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("zPING\x00")); err != nil {
		return common.WrapError(err, "ping clamd")
	}
	reply, err := readReply(conn)
	if err != nil {
		return common.WrapError(err, "read clamd reply")
	}
	if reply != "PONG" {
		return common.NewAppError("ANTIVIRUS_PROTOCOL", "unexpected ping reply: "+reply, nil)
	}
	return nil
}

func (s *clamavScanner) Scan(ctx context.Context, r io.Reader) (ScanResult, error) {
	conn, err := s.timeout.dial.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return ScanResult{}, common.WrapError(err, "dial clamd")
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write([]byte("zINSTREAM\x00")); err != nil {
		return ScanResult{}, common.WrapError(err, "start instream")
	}

	buf := make([]byte, streamChunkSize)
	sizeHdr := make([]byte, 4)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			binary.BigEndian.PutUint32(sizeHdr, uint32(n))
			if _, err := conn.Write(sizeHdr); err != nil {
				return ScanResult{}, common.WrapError(err, "write chunk size")
			}
			if _, err := conn.Write(buf[:n]); err != nil {
				return ScanResult{}, common.WrapError(err, "write chunk")
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return ScanResult{}, common.WrapError(readErr, "read content")
		}
	}

	// Zero-length chunk terminates the stream.
	binary.BigEndian.PutUint32(sizeHdr, 0)
	if _, err := conn.Write(sizeHdr); err != nil {
		return ScanResult{}, common.WrapError(err, "terminate instream")
	}

	reply, err := readReply(conn)
	if err != nil {
		return ScanResult{}, common.WrapError(err, "read scan reply")
	}
	return parseReply(reply)
}

// parseReply interprets a clamd verdict line such as
// "stream: OK" or "stream: Eicar-Signature FOUND".
func parseReply(reply string) (ScanResult, error) {
	switch {
	case strings.HasSuffix(reply, "OK"):
		return ScanResult{}, nil
	case strings.HasSuffix(reply, "FOUND"):
		sig := strings.TrimSuffix(reply, "FOUND")
		if _, after, ok := strings.Cut(sig, ":"); ok {
			sig = after
		}
		return ScanResult{Infected: true, Signature: strings.TrimSpace(sig)}, nil
	default:
		return ScanResult{}, common.NewAppError("ANTIVIRUS_PROTOCOL", "unexpected scan reply: "+reply, nil)
	}
}

func readReply(conn net.Conn) (string, error) {
	reply, err := bufio.NewReader(conn).ReadString('\x00')
	if err != nil && reply == "" {
		return "", err
	}
	return strings.TrimSpace(strings.TrimSuffix(reply, "\x00")), nil
}
