package sonarr

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// AllSeries retrieves every series in the Sonarr library
func (c *Client) AllSeries(ctx context.Context) ([]Series, error) {
	var series []Series
	if err := c.get(ctx, "series", nil, &series); err != nil {
		return nil, fmt.Errorf("failed to get series: %w", err)
	}

	c.logger.Debug().Msgf("Retrieved %d series from Sonarr", len(series))
	return series, nil
}

// GetSeries retrieves a series by its Sonarr ID
func (c *Client) GetSeries(ctx context.Context, seriesID int64) (*Series, error) {
	var series Series
	err := c.get(ctx, fmt.Sprintf("series/%d", seriesID), nil, &series)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, fmt.Errorf("%w: series id %d", ErrSeriesNotFound, seriesID)
		}
		return nil, fmt.Errorf("failed to get series %d: %w", seriesID, err)
	}
	return &series, nil
}

// GetSeriesByTVDBID retrieves a library series by its TVDb ID
func (c *Client) GetSeriesByTVDBID(ctx context.Context, tvdbID int64) (*Series, error) {
	params := url.Values{}
	params.Set("tvdbId", strconv.FormatInt(tvdbID, 10))

	var series []Series
	if err := c.get(ctx, "series", params, &series); err != nil {
		return nil, fmt.Errorf("failed to get series by tvdb id %d: %w", tvdbID, err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: tvdb id %d", ErrSeriesNotFound, tvdbID)
	}
	return &series[0], nil
}

// SearchSeries looks up series by a search term
func (c *Client) SearchSeries(ctx context.Context, term string) ([]Series, error) {
	params := url.Values{}
	params.Set("term", term)

	var series []Series
	if err := c.get(ctx, "series/lookup", params, &series); err != nil {
		return nil, fmt.Errorf("failed to search series: %w", err)
	}

	c.logger.Debug().Str("term", term).Msgf("Lookup returned %d series", len(series))
	return series, nil
}

// lookupByTVDBID resolves a TVDb ID through the lookup endpoint. The
// result carries full metadata and is usable as an import payload.
func (c *Client) lookupByTVDBID(ctx context.Context, tvdbID int64) (*Series, error) {
	results, err := c.SearchSeries(ctx, fmt.Sprintf("tvdb:%d", tvdbID))
	if err != nil {
		return nil, err
	}
	for i := range results {
		if results[i].TvdbID == tvdbID {
			return &results[i], nil
		}
	}
	return nil, fmt.Errorf("%w: tvdb id %d", ErrSeriesNotFound, tvdbID)
}

// UpdateSeries pushes changed fields of a single series back to Sonarr.
// moveFiles asks Sonarr to move existing files when the path changed.
func (c *Client) UpdateSeries(ctx context.Context, series *Series, moveFiles bool) (*Series, error) {
	var params url.Values
	if moveFiles {
		params = url.Values{}
		params.Set("moveFiles", "true")
	}

	var updated Series
	if err := c.put(ctx, fmt.Sprintf("series/%d", series.ID), params, series, &updated); err != nil {
		return nil, fmt.Errorf("failed to update series %d: %w", series.ID, err)
	}

	c.logger.Info().Int64("series_id", series.ID).Str("title", series.Title).Msg("Updated series")
	return &updated, nil
}

// DeleteSeries deletes a single series from Sonarr
func (c *Client) DeleteSeries(ctx context.Context, seriesID int64, deleteFiles, addImportExclusion bool) error {
	params := url.Values{}
	if deleteFiles {
		params.Set("deleteFiles", "true")
	}
	if addImportExclusion {
		params.Set("addImportExclusion", "true")
	}

	if err := c.del(ctx, fmt.Sprintf("series/%d", seriesID), params, nil); err != nil {
		return fmt.Errorf("failed to delete series %d: %w", seriesID, err)
	}

	c.logger.Info().Int64("series_id", seriesID).Bool("delete_files", deleteFiles).
		Msg("Deleted series")
	return nil
}
