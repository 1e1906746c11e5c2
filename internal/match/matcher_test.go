package match

import (
	"io"
	"log/slog"
	"testing"

	"github.com/docshelf/docshelf/internal/entity"
)

func testMatcher() *Matcher {
	return NewMatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMatches(t *testing.T) {
	text := "Invoice 2024-117 from ACME Industries, payment due in 30 days"

	tests := []struct {
		name string
		c    entity.Correspondent
		want bool
	}{
		{
			name: "exact word match",
			c:    entity.Correspondent{Name: "ACME", MatchPattern: "ACME", MatchAlgorithm: "EXACT"},
			want: true,
		},
		{
			name: "exact does not match inside a word",
			c:    entity.Correspondent{Name: "CME", MatchPattern: "CME", MatchAlgorithm: "EXACT"},
			want: false,
		},
		{
			name: "any matches on one of several words",
			c:    entity.Correspondent{Name: "ACME", MatchPattern: "globex ACME initech", MatchAlgorithm: "ANY"},
			want: true,
		},
		{
			name: "all requires every word",
			c:    entity.Correspondent{Name: "ACME", MatchPattern: "ACME Industries", MatchAlgorithm: "ALL"},
			want: true,
		},
		{
			name: "all fails on a missing word",
			c:    entity.Correspondent{Name: "ACME", MatchPattern: "ACME GmbH", MatchAlgorithm: "ALL"},
			want: false,
		},
		{
			name: "regex",
			c:    entity.Correspondent{Name: "ACME", MatchPattern: `Invoice \d{4}-\d+`, MatchAlgorithm: "REGEX"},
			want: true,
		},
		{
			name: "invalid regex never matches",
			c:    entity.Correspondent{Name: "ACME", MatchPattern: `([`, MatchAlgorithm: "REGEX"},
			want: false,
		},
		{
			name: "case sensitive by default",
			c:    entity.Correspondent{Name: "acme", MatchPattern: "acme", MatchAlgorithm: "ANY"},
			want: false,
		},
		{
			name: "insensitive flag",
			c:    entity.Correspondent{Name: "acme", MatchPattern: "acme", MatchAlgorithm: "ANY", Insensitive: true},
			want: true,
		},
		{
			name: "auto falls back to name substring",
			c:    entity.Correspondent{Name: "ACME Industries", MatchPattern: "x", MatchAlgorithm: "AUTO"},
			want: true,
		},
		{
			name: "fuzzy tolerates a typo",
			c:    entity.Correspondent{Name: "ACME", MatchPattern: "ACME Industries", MatchAlgorithm: "FUZZY", Insensitive: true},
			want: true,
		},
		{
			name: "unknown algorithm never matches",
			c:    entity.Correspondent{Name: "ACME", MatchPattern: "ACME", MatchAlgorithm: "SOUNDEX"},
			want: false,
		},
	}

	m := testMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Matches(text, &tt.c); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindMatchReturnsFirstHit(t *testing.T) {
	m := testMatcher()
	candidates := []*entity.Correspondent{
		{Name: "Globex", MatchPattern: "globex", MatchAlgorithm: "ANY"},
		{Name: "ACME", MatchPattern: "ACME", MatchAlgorithm: "ANY"},
		{Name: "ACME Duplicate", MatchPattern: "ACME", MatchAlgorithm: "ANY"},
	}

	got := m.FindMatch("bill from ACME for services", candidates)
	if got == nil || got.Name != "ACME" {
		t.Fatalf("FindMatch() = %+v, want ACME", got)
	}

	if m.FindMatch("", candidates) != nil {
		t.Error("empty text matched a correspondent")
	}
	if m.FindMatch("nothing relevant here", candidates) != nil {
		t.Error("unrelated text matched a correspondent")
	}
}
