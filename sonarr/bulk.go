package sonarr

import (
	"context"
	"errors"
	"fmt"
)

// AddResult is the outcome of AddSeriesMultiple. The buckets are
// disjoint: every input ref contributes to exactly one of them.
type AddResult struct {
	// Added holds the series Sonarr imported, in chunk-submission order.
	Added []Series
	// Existing holds series that were already in the library.
	Existing []Series
	// NotFound holds TVDb IDs no lookup could resolve.
	NotFound []int64
}

// EditResult is the outcome of EditSeriesMultiple.
type EditResult struct {
	// Edited holds the series as returned by the editor endpoint.
	Edited []Series
	// NotFound holds TVDb IDs that are not in the library.
	NotFound []int64
}

// DeleteSeriesOptions contains options for DeleteSeriesMultiple.
type DeleteSeriesOptions struct {
	DeleteFiles        bool
	AddImportExclusion bool

	// PerRequest caps how many series are deleted per request. Zero
	// deletes everything in one request.
	PerRequest int
}

// AddSeriesMultiple adds multiple series to Sonarr by TVDb ID. Options
// are validated once up front; an invalid option aborts the call before
// any import request. Each ref is then classified: already in the
// library, resolvable through lookup, or not found. Resolvable refs are
// imported in chunks of opts.PerRequest.
func (c *Client) AddSeriesMultiple(ctx context.Context, refs []SeriesRef, opts AddSeriesOptions) (*AddResult, error) {
	built, err := c.buildAddOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	catalog, err := c.AllSeries(ctx)
	if err != nil {
		return nil, err
	}
	byTVDB := make(map[int64]*Series, len(catalog))
	for i := range catalog {
		byTVDB[catalog[i].TvdbID] = &catalog[i]
	}

	result := &AddResult{}
	var queue []Series
	for _, ref := range refs {
		tvdbID := ref.tvdb()
		if existing, ok := byTVDB[tvdbID]; ok {
			result.Existing = append(result.Existing, *existing)
			continue
		}

		show := ref.Series
		if show == nil {
			show, err = c.lookupByTVDBID(ctx, tvdbID)
			if errors.Is(err, ErrSeriesNotFound) {
				result.NotFound = append(result.NotFound, tvdbID)
				continue
			}
			if err != nil {
				return nil, err
			}
		}
		if show.ID != 0 {
			// A lookup result with a Sonarr ID is already in the library.
			result.Existing = append(result.Existing, *show)
			continue
		}

		payload := *show
		c.applyAddOptions(&payload, built)
		queue = append(queue, payload)
	}

	for _, batch := range chunkBy(queue, opts.PerRequest) {
		var added []Series
		if err := c.post(ctx, "series/import", batch, &added); err != nil {
			return nil, fmt.Errorf("failed to import series: %w", err)
		}
		result.Added = append(result.Added, added...)
	}

	c.logger.Info().
		Int("added", len(result.Added)).
		Int("existing", len(result.Existing)).
		Int("not_found", len(result.NotFound)).
		Msg("Added series")

	return result, nil
}

// EditSeriesMultiple edits multiple series in Sonarr by TVDb ID. The
// edit options are validated once and must contain at least one change.
// A monitor-mode change runs as its own chunked season-pass sequence,
// strictly before the field-edit sequence, with the same chunk size.
func (c *Client) EditSeriesMultiple(ctx context.Context, refs []SeriesRef, opts EditSeriesOptions) (*EditResult, error) {
	payload, err := c.buildEditPayload(ctx, opts)
	if err != nil {
		return nil, err
	}

	found, missing, err := c.reconcileSeriesRefs(ctx, refs)
	if err != nil {
		return nil, err
	}

	result := &EditResult{NotFound: missing}
	if len(found) == 0 {
		return result, nil
	}

	chunks := chunkBy(found, opts.PerRequest)

	if payload.monitor != "" {
		monitored := payload.monitor != MonitorNone
		for _, batch := range chunks {
			body := SeasonPassRequest{
				MonitoringOptions: MonitoringOptions{Monitor: payload.monitor},
				Series:            make([]SeasonPassSeries, 0, len(batch)),
			}
			for _, seriesID := range batch {
				body.Series = append(body.Series, SeasonPassSeries{ID: seriesID, Monitored: monitored})
			}
			if err := c.post(ctx, "seasonPass", body, nil); err != nil {
				return nil, fmt.Errorf("failed to update series monitoring: %w", err)
			}
		}
	}

	for _, batch := range chunks {
		request := payload.editor
		request.SeriesIDs = batch

		var edited []Series
		if err := c.put(ctx, "series/editor", nil, request, &edited); err != nil {
			return nil, fmt.Errorf("failed to edit series: %w", err)
		}
		result.Edited = append(result.Edited, edited...)
	}

	c.logger.Info().
		Int("edited", len(result.Edited)).
		Int("not_found", len(result.NotFound)).
		Msg("Edited series")

	return result, nil
}

// DeleteSeriesMultiple deletes multiple series from Sonarr by TVDb ID
// and returns the TVDb IDs that were not in the library. Deletions
// return no body to echo.
func (c *Client) DeleteSeriesMultiple(ctx context.Context, refs []SeriesRef, opts DeleteSeriesOptions) ([]int64, error) {
	found, missing, err := c.reconcileSeriesRefs(ctx, refs)
	if err != nil {
		return nil, err
	}

	for _, batch := range chunkBy(found, opts.PerRequest) {
		body := SeriesEditorDeleteRequest{
			SeriesIDs:          batch,
			DeleteFiles:        opts.DeleteFiles,
			AddImportExclusion: opts.AddImportExclusion,
		}
		if err := c.del(ctx, "series/editor", nil, body); err != nil {
			return nil, fmt.Errorf("failed to delete series: %w", err)
		}
	}

	c.logger.Info().
		Int("deleted", len(found)).
		Int("not_found", len(missing)).
		Bool("delete_files", opts.DeleteFiles).
		Msg("Deleted series")

	return missing, nil
}
