package sonarr

import "context"

// AddSeriesOptions contains options for adding series to Sonarr. Root
// folder, quality profile and language profile are required; the rest
// have service-side meaning only when set. Use NewAddSeriesOptions for
// the usual defaults.
type AddSeriesOptions struct {
	RootFolder           RootFolderRef
	QualityProfile       ProfileRef
	LanguageProfile      ProfileRef
	Monitor              string
	SeasonFolder         bool
	SearchForMissing     bool
	SearchForCutoffUnmet bool
	SeriesType           string
	Tags                 []TagRef

	// PerRequest caps how many series are sent per import request.
	// Zero sends everything in one request.
	PerRequest int
}

// NewAddSeriesOptions returns add options with the default behavior:
// monitor everything, use season folders, search for missing and cutoff
// unmet episodes after adding, standard series type.
func NewAddSeriesOptions(rootFolder RootFolderRef, qualityProfile, languageProfile ProfileRef) AddSeriesOptions {
	return AddSeriesOptions{
		RootFolder:           rootFolder,
		QualityProfile:       qualityProfile,
		LanguageProfile:      languageProfile,
		Monitor:              MonitorAll,
		SeasonFolder:         true,
		SearchForMissing:     true,
		SearchForCutoffUnmet: true,
		SeriesType:           SeriesTypeStandard,
	}
}

// addOptions is the validated, immutable form of AddSeriesOptions. It is
// built once per bulk call, before any state-changing request, and
// reused across all chunks.
type addOptions struct {
	rootFolderPath    string
	qualityProfileID  int64
	languageProfileID int64
	monitor           string
	monitored         bool
	seasonFolder      bool
	search            bool
	unmetSearch       bool
	seriesType        string
	tags              []int64
}

// buildAddOptions validates every add option up front. An invalid value
// aborts the whole bulk call with no partial side effects, except tag
// creation, which is part of tag validation itself.
func (c *Client) buildAddOptions(ctx context.Context, opts AddSeriesOptions) (*addOptions, error) {
	monitor, err := validateOption("monitor", opts.Monitor, MonitorOptions)
	if err != nil {
		return nil, err
	}

	seriesType, err := validateOption("series_type", opts.SeriesType, SeriesTypeOptions)
	if err != nil {
		return nil, err
	}

	rootFolderPath, err := c.resolveRootFolder(ctx, opts.RootFolder)
	if err != nil {
		return nil, err
	}

	qualityProfileID, err := c.resolveQualityProfile(ctx, opts.QualityProfile)
	if err != nil {
		return nil, err
	}

	languageProfileID, err := c.resolveLanguageProfile(ctx, opts.LanguageProfile)
	if err != nil {
		return nil, err
	}

	built := &addOptions{
		rootFolderPath:    rootFolderPath,
		qualityProfileID:  qualityProfileID,
		languageProfileID: languageProfileID,
		monitor:           monitor,
		monitored:         monitor != MonitorNone,
		seasonFolder:      opts.SeasonFolder,
		search:            opts.SearchForMissing,
		unmetSearch:       opts.SearchForCutoffUnmet,
		seriesType:        seriesType,
	}

	if len(opts.Tags) > 0 {
		built.tags, err = c.resolveTags(ctx, opts.Tags, true)
		if err != nil {
			return nil, err
		}
	}

	return built, nil
}

// applyAddOptions turns a lookup result into an import payload.
func (c *Client) applyAddOptions(series *Series, opts *addOptions) {
	series.ID = 0
	series.Path = ""
	series.RootFolderPath = opts.rootFolderPath
	if c.legacy {
		series.ProfileID = opts.qualityProfileID
	} else {
		series.QualityProfileID = opts.qualityProfileID
	}
	series.LanguageProfileID = opts.languageProfileID
	series.Monitored = opts.monitored
	series.SeasonFolder = opts.seasonFolder
	series.SeriesType = opts.seriesType
	series.Tags = opts.tags
	series.AddOptions = &AddOptions{
		Monitor:                      opts.monitor,
		SearchForMissingEpisodes:     opts.search,
		SearchForCutoffUnmetEpisodes: opts.unmetSearch,
	}
}

// EditSeriesOptions contains options for editing series. Every field is
// optional, but at least one must be set. Monitored and SeasonFolder are
// tri-state: nil leaves the current value alone.
type EditSeriesOptions struct {
	RootFolder      RootFolderRef
	Path            string
	MoveFiles       bool
	QualityProfile  ProfileRef
	LanguageProfile ProfileRef
	Monitor         string
	Monitored       *bool
	SeasonFolder    *bool
	SeriesType      string
	Tags            []TagRef
	ApplyTags       string

	// PerRequest caps how many series are edited per request. Zero edits
	// everything in one request.
	PerRequest int
}

// isEmpty reports whether no edit field was supplied. MoveFiles alone is
// not an edit; it only qualifies a root folder change.
func (o EditSeriesOptions) isEmpty() bool {
	return o.RootFolder.isZero() &&
		o.Path == "" &&
		o.QualityProfile.isZero() &&
		o.LanguageProfile.isZero() &&
		o.Monitor == "" &&
		o.Monitored == nil &&
		o.SeasonFolder == nil &&
		o.SeriesType == "" &&
		o.Tags == nil
}

// editPayload is the validated form of EditSeriesOptions. The monitor
// mode is carried separately from the editor request because Sonarr
// models it on the season-pass endpoint, not on series/editor.
type editPayload struct {
	editor  SeriesEditorRequest
	monitor string
}

// buildEditPayload validates the supplied edit options and emits only
// the present fields, translated to the API's field names.
func (c *Client) buildEditPayload(ctx context.Context, opts EditSeriesOptions) (*editPayload, error) {
	if opts.isEmpty() {
		return nil, ErrNoEditArguments
	}

	payload := &editPayload{editor: SeriesEditorRequest{MoveFiles: opts.MoveFiles}}

	if !opts.RootFolder.isZero() {
		path, err := c.resolveRootFolder(ctx, opts.RootFolder)
		if err != nil {
			return nil, err
		}
		payload.editor.RootFolderPath = path
	}

	if opts.Path != "" {
		payload.editor.Path = opts.Path
	}

	if !opts.QualityProfile.isZero() {
		id, err := c.resolveQualityProfile(ctx, opts.QualityProfile)
		if err != nil {
			return nil, err
		}
		if c.legacy {
			payload.editor.ProfileID = id
		} else {
			payload.editor.QualityProfileID = id
		}
	}

	if !opts.LanguageProfile.isZero() {
		id, err := c.resolveLanguageProfile(ctx, opts.LanguageProfile)
		if err != nil {
			return nil, err
		}
		payload.editor.LanguageProfileID = id
	}

	if opts.Monitor != "" {
		monitor, err := validateOption("monitor", opts.Monitor, MonitorOptions)
		if err != nil {
			return nil, err
		}
		payload.monitor = monitor
	}

	if opts.Monitored != nil {
		payload.editor.Monitored = opts.Monitored
	}

	if opts.SeasonFolder != nil {
		payload.editor.SeasonFolder = opts.SeasonFolder
	}

	if opts.SeriesType != "" {
		seriesType, err := validateOption("series_type", opts.SeriesType, SeriesTypeOptions)
		if err != nil {
			return nil, err
		}
		payload.editor.SeriesType = seriesType
	}

	if opts.Tags != nil {
		applyTags := opts.ApplyTags
		if applyTags == "" {
			applyTags = ApplyTagsAdd
		}
		applyTags, err := validateOption("apply_tags", applyTags, ApplyTagsOptions)
		if err != nil {
			return nil, err
		}
		tags, err := c.resolveTags(ctx, opts.Tags, applyTags != ApplyTagsRemove)
		if err != nil {
			return nil, err
		}
		payload.editor.Tags = tags
		payload.editor.ApplyTags = applyTags
	}

	return payload, nil
}
