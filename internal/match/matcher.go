package match

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/docshelf/docshelf/internal/entity"
)

// Matcher evaluates correspondent match patterns against document text.
type Matcher struct {
	logger *slog.Logger
}

func NewMatcher(logger *slog.Logger) *Matcher {
	return &Matcher{logger: logger}
}

// FindMatch returns the first correspondent whose pattern matches the
// text, or nil when none match. Candidates are evaluated in order.
func (m *Matcher) FindMatch(text string, candidates []*entity.Correspondent) *entity.Correspondent {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	for _, c := range candidates {
		if c.MatchPattern == "" {
			continue
		}
		if m.Matches(text, c) {
			return c
		}
	}
	return nil
}

// Matches applies a single correspondent's algorithm to the text.
func (m *Matcher) Matches(text string, c *entity.Correspondent) bool {
	haystack := text
	pattern := c.MatchPattern
	if c.Insensitive {
		haystack = strings.ToLower(haystack)
		pattern = strings.ToLower(pattern)
	}

	switch strings.ToUpper(c.MatchAlgorithm) {
	case "EXACT":
		return containsWord(haystack, pattern)
	case "ANY":
		for _, word := range strings.Fields(pattern) {
			if strings.Contains(haystack, word) {
				return true
			}
		}
		return false
	case "ALL":
		words := strings.Fields(pattern)
		if len(words) == 0 {
			return false
		}
		for _, word := range words {
			if !strings.Contains(haystack, word) {
				return false
			}
		}
		return true
	case "REGEX":
		expr := c.MatchPattern
		if c.Insensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			m.logger.Warn("match.regex.invalid", "correspondent", c.Name, "pattern", c.MatchPattern, "error", err)
			return false
		}
		return re.MatchString(text)
	case "FUZZY":
		return fuzzyContains(haystack, pattern)
	case "AUTO", "":
		// Fall back to a substring match on the correspondent name.
		name := c.Name
		if c.Insensitive {
			name = strings.ToLower(name)
		}
		return name != "" && strings.Contains(haystack, name)
	default:
		m.logger.Warn("match.algorithm.unknown", "correspondent", c.Name, "algorithm", c.MatchAlgorithm)
		return false
	}
}

// containsWord reports whether pattern occurs in text on word
// boundaries, so "ACME" does not match "ACMECORP".
func containsWord(text, pattern string) bool {
	if pattern == "" {
		return false
	}
	re, err := regexp.Compile(`(?:^|\W)` + regexp.QuoteMeta(pattern) + `(?:$|\W)`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// fuzzyContains tolerates small typos by sliding the pattern over the
// text and allowing up to one mismatched rune per five pattern runes.
func fuzzyContains(text, pattern string) bool {
	p := []rune(pattern)
	t := []rune(text)
	if len(p) == 0 || len(p) > len(t) {
		return false
	}
	budget := len(p) / 5
	for start := 0; start+len(p) <= len(t); start++ {
		mismatches := 0
		for i := range p {
			if t[start+i] != p[i] {
				mismatches++
				if mismatches > budget {
					break
				}
			}
		}
		if mismatches <= budget {
			return true
		}
	}
	return false
}
