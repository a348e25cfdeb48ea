package sonarr

import "time"

// Monitor modes accepted by Sonarr.
const (
	MonitorAll          = "all"
	MonitorFuture       = "future"
	MonitorMissing      = "missing"
	MonitorExisting     = "existing"
	MonitorPilot        = "pilot"
	MonitorFirstSeason  = "firstSeason"
	MonitorLatestSeason = "latestSeason"
	MonitorNone         = "none"
)

// Series types accepted by Sonarr.
const (
	SeriesTypeStandard = "standard"
	SeriesTypeDaily    = "daily"
	SeriesTypeAnime    = "anime"
)

// Tag application modes for bulk edits.
const (
	ApplyTagsAdd     = "add"
	ApplyTagsReplace = "replace"
	ApplyTagsRemove  = "remove"
)

// Series represents a Sonarr series. Lookup results carry a zero ID; a
// series in the library has its Sonarr-assigned ID set.
type Series struct {
	ID                int64       `json:"id,omitempty"`
	Title             string      `json:"title,omitempty"`
	SortTitle         string      `json:"sortTitle,omitempty"`
	Status            string      `json:"status,omitempty"`
	Overview          string      `json:"overview,omitempty"`
	Network           string      `json:"network,omitempty"`
	AirTime           string      `json:"airTime,omitempty"`
	Images            []Image     `json:"images,omitempty"`
	Seasons           []Season    `json:"seasons,omitempty"`
	Year              int         `json:"year,omitempty"`
	Path              string      `json:"path,omitempty"`
	RootFolderPath    string      `json:"rootFolderPath,omitempty"`
	QualityProfileID  int64       `json:"qualityProfileId,omitempty"`
	ProfileID         int64       `json:"profileId,omitempty"` // pre-v3 field name
	LanguageProfileID int64       `json:"languageProfileId,omitempty"`
	SeasonFolder      bool        `json:"seasonFolder"`
	Monitored         bool        `json:"monitored"`
	UseSceneNumbering bool        `json:"useSceneNumbering,omitempty"`
	Runtime           int         `json:"runtime,omitempty"`
	TvdbID            int64       `json:"tvdbId,omitempty"`
	TvRageID          int64       `json:"tvRageId,omitempty"`
	TvMazeID          int64       `json:"tvMazeId,omitempty"`
	FirstAired        *time.Time  `json:"firstAired,omitempty"`
	SeriesType        string      `json:"seriesType,omitempty"`
	CleanTitle        string      `json:"cleanTitle,omitempty"`
	ImdbID            string      `json:"imdbId,omitempty"`
	TitleSlug         string      `json:"titleSlug,omitempty"`
	Certification     string      `json:"certification,omitempty"`
	Genres            []string    `json:"genres,omitempty"`
	Tags              []int64     `json:"tags,omitempty"`
	Added             *time.Time  `json:"added,omitempty"`
	Statistics        *Statistics `json:"statistics,omitempty"`
	AddOptions        *AddOptions `json:"addOptions,omitempty"`
}

// Season represents a season entry on a series
type Season struct {
	SeasonNumber int         `json:"seasonNumber"`
	Monitored    bool        `json:"monitored"`
	Statistics   *Statistics `json:"statistics,omitempty"`
}

// Statistics holds episode and size counters for a series or season
type Statistics struct {
	SeasonCount       int     `json:"seasonCount,omitempty"`
	EpisodeFileCount  int     `json:"episodeFileCount,omitempty"`
	EpisodeCount      int     `json:"episodeCount,omitempty"`
	TotalEpisodeCount int     `json:"totalEpisodeCount,omitempty"`
	SizeOnDisk        int64   `json:"sizeOnDisk,omitempty"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes,omitempty"`
}

// Image represents a series image
type Image struct {
	CoverType string `json:"coverType"`
	URL       string `json:"url,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

// AddOptions is the addOptions payload attached to a series on import
type AddOptions struct {
	Monitor                      string `json:"monitor"`
	SearchForMissingEpisodes     bool   `json:"searchForMissingEpisodes"`
	SearchForCutoffUnmetEpisodes bool   `json:"searchForCutoffUnmetEpisodes"`
}

// QualityProfile is a quality profile configured in Sonarr
type QualityProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Ref returns a ProfileRef for an already-fetched profile.
func (p QualityProfile) Ref() ProfileRef {
	return ProfileRef{ID: p.ID, Name: p.Name}
}

// LanguageProfile is a language profile configured in Sonarr
type LanguageProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Ref returns a ProfileRef for an already-fetched profile.
func (p LanguageProfile) Ref() ProfileRef {
	return ProfileRef{ID: p.ID, Name: p.Name}
}

// RootFolder is a root folder configured in Sonarr
type RootFolder struct {
	ID        int64  `json:"id"`
	Path      string `json:"path"`
	FreeSpace int64  `json:"freeSpace,omitempty"`
}

// Ref returns a RootFolderRef for an already-fetched root folder.
func (r RootFolder) Ref() RootFolderRef {
	return RootFolderRef{ID: r.ID, Path: r.Path}
}

// Tag is a tag configured in Sonarr
type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// Ref returns a TagRef for an already-fetched tag.
func (t Tag) Ref() TagRef {
	return TagRef{ID: t.ID, Label: t.Label}
}

// SeriesEditorRequest is the PUT series/editor payload for bulk field
// edits. Only fields the caller set are emitted; moveFiles is always
// present.
type SeriesEditorRequest struct {
	SeriesIDs         []int64 `json:"seriesIds"`
	MoveFiles         bool    `json:"moveFiles"`
	RootFolderPath    string  `json:"rootFolderPath,omitempty"`
	Path              string  `json:"path,omitempty"`
	QualityProfileID  int64   `json:"qualityProfileId,omitempty"`
	ProfileID         int64   `json:"profileId,omitempty"` // pre-v3 field name
	LanguageProfileID int64   `json:"languageProfileId,omitempty"`
	Monitored         *bool   `json:"monitored,omitempty"`
	SeasonFolder      *bool   `json:"seasonFolder,omitempty"`
	SeriesType        string  `json:"seriesType,omitempty"`
	Tags              []int64 `json:"tags,omitempty"`
	ApplyTags         string  `json:"applyTags,omitempty"`
}

// SeriesEditorDeleteRequest is the DELETE series/editor payload
type SeriesEditorDeleteRequest struct {
	SeriesIDs          []int64 `json:"seriesIds"`
	DeleteFiles        bool    `json:"deleteFiles"`
	AddImportExclusion bool    `json:"addImportExclusion"`
}

// SeasonPassRequest is the POST seasonPass payload used to change the
// monitor mode of multiple series. Monitoring is a bulk-only concept on
// its own endpoint, separate from generic field edits.
type SeasonPassRequest struct {
	MonitoringOptions MonitoringOptions  `json:"monitoringOptions"`
	Series            []SeasonPassSeries `json:"series"`
}

// MonitoringOptions carries the monitor mode for a season-pass request
type MonitoringOptions struct {
	Monitor string `json:"monitor"`
}

// SeasonPassSeries is one series entry in a season-pass request
type SeasonPassSeries struct {
	ID        int64 `json:"id"`
	Monitored bool  `json:"monitored"`
}
