package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("zip_code", "ZipCode"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.Less(t, Similarity("city", "Country"), 0.6)
}

func TestRank(t *testing.T) {
	names := []string{"Address", "City", "ZipCode", "Country"}

	list := Rank("adress", names, DefaultThreshold)
	assert.Equal(t, []string{"Address"}, list.Top(3))

	list = Rank("zip", names, 0)
	assert.Len(t, list, len(names))
	assert.Equal(t, "ZipCode", list[0].Name)
	assert.Len(t, list.Top(10), len(names))
}
