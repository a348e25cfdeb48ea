package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrtools/batcharr/sonarr"
)

func testSeries() sonarr.Series {
	added := time.Now().AddDate(-2, 0, 0)
	return sonarr.Series{
		Title:      "Breaking Bad",
		Network:    "AMC",
		Year:       2008,
		SeriesType: "standard",
		Monitored:  true,
		TvdbID:     81189,
		Added:      &added,
	}
}

func TestCompile(t *testing.T) {
	t.Run("valid expression", func(t *testing.T) {
		f, err := Compile(`Series.Year > 2000`)
		require.NoError(t, err)
		assert.Equal(t, `Series.Year > 2000`, f.Expression())
	})

	t.Run("empty expression", func(t *testing.T) {
		_, err := Compile("   ")
		var compErr *CompilationError
		require.ErrorAs(t, err, &compErr)
		assert.Contains(t, compErr.Reason, "empty")
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Compile(`Series.Year >`)
		var compErr *CompilationError
		require.ErrorAs(t, err, &compErr)
	})
}

func TestMatch(t *testing.T) {
	series := testSeries()

	tests := []struct {
		name       string
		expression string
		tags       []string
		expected   bool
	}{
		{
			name:       "field comparison",
			expression: `Series.Year >= 2008 && Series.Network == "AMC"`,
			expected:   true,
		},
		{
			name:       "field mismatch",
			expression: `Series.SeriesType == "anime"`,
			expected:   false,
		},
		{
			name:       "has tag case-insensitive",
			expression: `hasTag("Drama")`,
			tags:       []string{"drama", "ended"},
			expected:   true,
		},
		{
			name:       "missing tag",
			expression: `hasTag("kids")`,
			tags:       []string{"drama"},
			expected:   false,
		},
		{
			name:       "tags list",
			expression: `"ended" in Tags`,
			tags:       []string{"drama", "ended"},
			expected:   true,
		},
		{
			name:       "string helpers",
			expression: `contains(Series.Title, "breaking") && startsWith(Series.Title, "BREAK")`,
			expected:   true,
		},
		{
			name:       "date helpers",
			expression: `daysSince(Series.Added) > 365`,
			expected:   true,
		},
		{
			name:       "monitored flag",
			expression: `Series.Monitored && Series.TvdbID == 81189`,
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Match(series, tt.tags)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, matched)
		})
	}
}

func TestMatchNonBoolean(t *testing.T) {
	f, err := Compile(`Series.Year`)
	require.NoError(t, err)

	_, err = f.Match(testSeries(), nil)
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "Breaking Bad", evalErr.SeriesTitle)
}

func TestMatchNilAdded(t *testing.T) {
	series := testSeries()
	series.Added = nil

	f, err := Compile(`daysSince(Series.Added) == 0`)
	require.NoError(t, err)

	matched, err := f.Match(series, nil)
	require.NoError(t, err)
	assert.True(t, matched)
}
