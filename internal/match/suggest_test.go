package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recognizers = []string{"datetimeV2", "datetime", "number", "ordinal", "ordinalV2", "personName", "phonenumber"}

func TestRank(t *testing.T) {
	ranked := Rank("ordinalV3", recognizers)
	require.Len(t, ranked, len(recognizers))

	assert.Equal(t, "ordinalV2", ranked[0].Name)
	assert.Equal(t, "ordinal", ranked[1].Name)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRank_TiesAreAlphabetical(t *testing.T) {
	ranked := Rank("xyz", []string{"bbb", "aaa", "ccc"})

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, names)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   string
		wantOK bool
	}{
		{"typo", "datetimeV3", "datetimeV2", true},
		{"case and separators", "Person_Name", "personName", true},
		{"truncated", "phonenumbr", "phonenumber", true},
		{"unrelated", "weather", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.query, recognizers, DefaultThreshold)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggest_NoCandidates(t *testing.T) {
	_, ok := Suggest("number", nil, 0)
	assert.False(t, ok)
}

func TestCandidateList_Top(t *testing.T) {
	ranked := Rank("number", recognizers)

	assert.Len(t, ranked.Top(2), 2)
	assert.Equal(t, "number", ranked.Top(1)[0].Name)
	assert.Len(t, ranked.Top(100), len(recognizers))
}
