package sonarr

import (
	"context"
)

// API defines the interface for Sonarr series operations
type API interface {
	// Ping verifies the client can connect to Sonarr
	Ping(ctx context.Context) error

	// AllSeries retrieves every series in the library
	AllSeries(ctx context.Context) ([]Series, error)

	// GetSeries retrieves a series by its Sonarr ID
	GetSeries(ctx context.Context, seriesID int64) (*Series, error)

	// GetSeriesByTVDBID retrieves a library series by its TVDb ID
	GetSeriesByTVDBID(ctx context.Context, tvdbID int64) (*Series, error)

	// SearchSeries looks up series by a search term
	SearchSeries(ctx context.Context, term string) ([]Series, error)

	// UpdateSeries pushes changed fields of a single series back to Sonarr
	UpdateSeries(ctx context.Context, series *Series, moveFiles bool) (*Series, error)

	// DeleteSeries deletes a single series
	DeleteSeries(ctx context.Context, seriesID int64, deleteFiles, addImportExclusion bool) error

	// AddSeriesMultiple adds multiple series by TVDb ID
	AddSeriesMultiple(ctx context.Context, refs []SeriesRef, opts AddSeriesOptions) (*AddResult, error)

	// EditSeriesMultiple edits multiple series by TVDb ID
	EditSeriesMultiple(ctx context.Context, refs []SeriesRef, opts EditSeriesOptions) (*EditResult, error)

	// DeleteSeriesMultiple deletes multiple series by TVDb ID
	DeleteSeriesMultiple(ctx context.Context, refs []SeriesRef, opts DeleteSeriesOptions) ([]int64, error)
}

// ReferenceLister provides the remote reference lists option validation
// resolves against
type ReferenceLister interface {
	QualityProfiles(ctx context.Context) ([]QualityProfile, error)
	LanguageProfiles(ctx context.Context) ([]LanguageProfile, error)
	RootFolders(ctx context.Context) ([]RootFolder, error)
	Tags(ctx context.Context) ([]Tag, error)
	CreateTag(ctx context.Context, label string) (*Tag, error)
	FetchReferenceData(ctx context.Context) (*ReferenceData, error)
}
