package sonarr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkBy(t *testing.T) {
	items := []int64{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		items    []int64
		size     int
		expected [][]int64
	}{
		{
			name:     "zero size keeps one chunk",
			items:    items,
			size:     0,
			expected: [][]int64{{1, 2, 3, 4, 5}},
		},
		{
			name:     "negative size keeps one chunk",
			items:    items,
			size:     -3,
			expected: [][]int64{{1, 2, 3, 4, 5}},
		},
		{
			name:     "even split",
			items:    []int64{1, 2, 3, 4},
			size:     2,
			expected: [][]int64{{1, 2}, {3, 4}},
		},
		{
			name:     "short last chunk",
			items:    items,
			size:     2,
			expected: [][]int64{{1, 2}, {3, 4}, {5}},
		},
		{
			name:     "size one",
			items:    []int64{1, 2, 3},
			size:     1,
			expected: [][]int64{{1}, {2}, {3}},
		},
		{
			name:     "size larger than input",
			items:    items,
			size:     10,
			expected: [][]int64{{1, 2, 3, 4, 5}},
		},
		{
			name:     "empty input",
			items:    nil,
			size:     3,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, chunkBy(tt.items, tt.size))
		})
	}
}

// The number of chunks is ceil(n/k) and their concatenation, in order,
// is the input.
func TestChunkByLaw(t *testing.T) {
	for n := 0; n <= 12; n++ {
		items := make([]int64, n)
		for i := range items {
			items[i] = int64(i)
		}
		for k := 1; k <= 7; k++ {
			chunks := chunkBy(items, k)
			assert.Len(t, chunks, (n+k-1)/k, "n=%d k=%d", n, k)

			var flat []int64
			for _, chunk := range chunks {
				flat = append(flat, chunk...)
			}
			if n > 0 {
				assert.Equal(t, items, flat, "n=%d k=%d", n, k)
			}
		}
	}
}

func TestReconcileSeriesRefs(t *testing.T) {
	fake := newFakeSonarr()
	fake.catalog = []Series{
		librarySeries(10, 100, "Show A"),
		librarySeries(11, 200, "Show B"),
	}
	client := newTestClient(t, fake)
	ctx := context.Background()

	t.Run("partition follows input order", func(t *testing.T) {
		known := fake.catalog[1]
		refs := []SeriesRef{
			{TVDBID: 100},
			{TVDBID: 999},
			{Series: &known},
			{TVDBID: 300},
		}

		found, missing, err := client.reconcileSeriesRefs(ctx, refs)
		require.NoError(t, err)
		assert.Equal(t, []int64{10, 11}, found)
		assert.Equal(t, []int64{999, 300}, missing)
	})

	t.Run("duplicates map to duplicates", func(t *testing.T) {
		refs := TVDBIDs(100, 100, 999, 999)

		found, missing, err := client.reconcileSeriesRefs(ctx, refs)
		require.NoError(t, err)
		assert.Equal(t, []int64{10, 10}, found)
		assert.Equal(t, []int64{999, 999}, missing)
		assert.Equal(t, len(refs), len(found)+len(missing))
	})

	t.Run("empty input", func(t *testing.T) {
		found, missing, err := client.reconcileSeriesRefs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, found)
		assert.Empty(t, missing)
	})
}
