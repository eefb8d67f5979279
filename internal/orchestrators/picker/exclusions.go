package picker

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/osrs-random/internal/entities/osrs"
)

// minFuzzyTokenLength keeps one and two letter tokens from matching anything by accident
const minFuzzyTokenLength = 3

// SplitExclusions breaks a free-form line such as "1 3, raids" into tokens.
// Pieces are comma separated; a piece made only of integers is split on
// whitespace, anything else is kept whole so names like "God Wars" survive.
func SplitExclusions(line string) []string {
	var tokens []string
	for _, piece := range strings.Split(line, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		fields := strings.Fields(piece)
		if allIntegers(fields) {
			tokens = append(tokens, fields...)
			continue
		}
		tokens = append(tokens, piece)
	}
	return tokens
}

// ResolveExclusions maps exclusion tokens to category names in catalog order.
// Tokens can be 1-based display indices or names. Names match ignoring case,
// then by unique prefix, then by a unique close spelling. Everything else,
// including out of range indices, is ignored.
func ResolveExclusions(catalog *osrs.Catalog, tokens []string) []string {
	if catalog == nil || len(tokens) == 0 {
		return nil
	}

	excluded := make(map[string]bool)
	for _, token := range tokens {
		if name, ok := resolveToken(catalog, token); ok {
			excluded[name] = true
		}
	}

	var names []string
	for _, name := range catalog.Names() {
		if excluded[name] {
			names = append(names, name)
		}
	}
	return names
}

func resolveToken(catalog *osrs.Catalog, token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	if n, err := strconv.Atoi(token); err == nil {
		category, ok := catalog.ByIndex(n)
		return category.Name, ok
	}

	if category, ok := catalog.Get(token); ok {
		return category.Name, true
	}

	lower := strings.ToLower(token)
	if len(lower) < minFuzzyTokenLength {
		return "", false
	}

	if name, ok := uniquePrefix(catalog.Names(), lower); ok {
		return name, true
	}
	return closestName(catalog.Names(), lower)
}

func uniquePrefix(names []string, token string) (string, bool) {
	match := ""
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), token) {
			if match != "" {
				return "", false
			}
			match = name
		}
	}
	return match, match != ""
}

func closestName(names []string, token string) (string, bool) {
	best := ""
	bestDist := -1
	tied := false

	for _, name := range names {
		candidate := strings.ToLower(name)
		dist := levenshtein.ComputeDistance(token, candidate)
		if dist > distanceLimit(len(candidate)) {
			continue
		}
		switch {
		case bestDist == -1 || dist < bestDist:
			best, bestDist, tied = name, dist, false
		case dist == bestDist:
			tied = true
		}
	}

	if bestDist == -1 || tied {
		return "", false
	}
	return best, true
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func allIntegers(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}
	return true
}
