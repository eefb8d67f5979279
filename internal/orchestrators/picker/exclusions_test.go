package picker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/osrs-random/internal/entities/osrs"
	"github.com/KirkDiggler/osrs-random/internal/orchestrators/picker"
)

func TestSplitExclusions(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected []string
	}{
		{"empty", "   ", nil},
		{"space separated indices", "1 3  5", []string{"1", "3", "5"}},
		{"comma separated indices", "1,3,5", []string{"1", "3", "5"}},
		{"names keep their spaces", "God Wars, raids", []string{"God Wars", "raids"}},
		{"mixed", "2 4, World Bosses,, 7", []string{"2", "4", "World Bosses", "7"}},
		{"junk is kept for the resolver to drop", "abc 1", []string{"abc 1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, picker.SplitExclusions(tc.line))
		})
	}
}

func TestResolveExclusions(t *testing.T) {
	catalog := osrs.Categories()

	testCases := []struct {
		name     string
		tokens   []string
		expected []string
	}{
		{
			name:     "no tokens",
			tokens:   nil,
			expected: nil,
		},
		{
			name:     "display indices",
			tokens:   []string{"1", "7"},
			expected: []string{osrs.CategoryGodWars, osrs.CategoryWorldBosses},
		},
		{
			name:     "out of range and malformed are ignored",
			tokens:   []string{"0", "8", "99", "-1", "abc", "", "  "},
			expected: nil,
		},
		{
			name:     "exact names ignoring case",
			tokens:   []string{"raids", "GOD WARS"},
			expected: []string{osrs.CategoryGodWars, osrs.CategoryRaids},
		},
		{
			name:     "unique prefix",
			tokens:   []string{"wild", "slayer"},
			expected: []string{osrs.CategorySlayerOnlyBosses, osrs.CategoryWildernessBosses},
		},
		{
			name:     "short tokens are ignored, longer prefixes resolve",
			tokens:   []string{"wor", "s", "wi"},
			expected: []string{osrs.CategoryWorldBosses},
		},
		{
			name:     "close spelling",
			tokens:   []string{"raid", "minigame boses"},
			expected: []string{osrs.CategoryMinigameBosses, osrs.CategoryRaids},
		},
		{
			name:     "duplicates collapse",
			tokens:   []string{"3", "Raids", "raids", "3"},
			expected: []string{osrs.CategoryRaids},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, picker.ResolveExclusions(catalog, tc.tokens))
		})
	}
}

func TestResolveExclusions_ShortTokensNeverFuzzyMatch(t *testing.T) {
	catalog, err := osrs.NewCatalog(
		osrs.Category{Name: "A", Bosses: []string{"x"}},
		osrs.Category{Name: "B", Bosses: []string{"y", "z"}},
	)
	assert.NoError(t, err)

	assert.Nil(t, picker.ResolveExclusions(catalog, []string{"C", "ab", "abc"}))
	assert.Equal(t, []string{"A", "B"}, picker.ResolveExclusions(catalog, []string{"b", "a"}))
	assert.Nil(t, picker.ResolveExclusions(nil, []string{"1"}))
}
