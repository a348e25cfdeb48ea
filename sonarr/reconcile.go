package sonarr

import "context"

// chunkBy splits items into consecutive slices of at most size elements;
// the last chunk may be shorter. A size of zero or less keeps everything
// in a single chunk. The chunks reference the input slice.
func chunkBy[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 || size >= len(items) {
		return [][]T{items}
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// reconcileSeriesRefs partitions refs into series IDs found in the
// library and TVDb IDs that are not. The library is fetched once and the
// input classified in a single pass; order follows the input and
// duplicates stay duplicated, so every ref lands in exactly one of the
// two lists.
func (c *Client) reconcileSeriesRefs(ctx context.Context, refs []SeriesRef) (found []int64, missing []int64, err error) {
	catalog, err := c.AllSeries(ctx)
	if err != nil {
		return nil, nil, err
	}

	byTVDB := make(map[int64]int64, len(catalog))
	for _, series := range catalog {
		byTVDB[series.TvdbID] = series.ID
	}

	for _, ref := range refs {
		tvdbID := ref.tvdb()
		if seriesID, ok := byTVDB[tvdbID]; ok {
			found = append(found, seriesID)
		} else {
			missing = append(missing, tvdbID)
		}
	}

	c.logger.Debug().
		Int("input", len(refs)).
		Int("found", len(found)).
		Int("missing", len(missing)).
		Msg("Reconciled series references against library")

	return found, missing, nil
}
