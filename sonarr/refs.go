package sonarr

import "strconv"

// SeriesRef identifies a series by TVDb ID or by an already-fetched
// Series. The two forms are normalized before reconciliation; a ref must
// resolve to exactly one library series or be reported as not found.
type SeriesRef struct {
	TVDBID int64
	Series *Series
}

// tvdb returns the TVDb ID the ref stands for.
func (r SeriesRef) tvdb() int64 {
	if r.Series != nil && r.Series.TvdbID != 0 {
		return r.Series.TvdbID
	}
	return r.TVDBID
}

// TVDBIDs builds a SeriesRef list from raw TVDb IDs.
func TVDBIDs(ids ...int64) []SeriesRef {
	refs := make([]SeriesRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, SeriesRef{TVDBID: id})
	}
	return refs
}

// SeriesRefs builds a SeriesRef list from fetched series.
func SeriesRefs(series ...*Series) []SeriesRef {
	refs := make([]SeriesRef, 0, len(series))
	for _, s := range series {
		refs = append(refs, SeriesRef{Series: s})
	}
	return refs
}

// ProfileRef identifies a quality or language profile by ID or by name.
// Use the Ref method on a fetched profile for the object form; all three
// roads resolve to the same canonical ID.
type ProfileRef struct {
	ID   int64
	Name string
}

func (r ProfileRef) isZero() bool {
	return r.ID == 0 && r.Name == ""
}

func (r ProfileRef) String() string {
	if r.Name != "" {
		return r.Name
	}
	return strconv.FormatInt(r.ID, 10)
}

// RootFolderRef identifies a root folder by ID or by path.
type RootFolderRef struct {
	ID   int64
	Path string
}

func (r RootFolderRef) isZero() bool {
	return r.ID == 0 && r.Path == ""
}

func (r RootFolderRef) String() string {
	if r.Path != "" {
		return r.Path
	}
	return strconv.FormatInt(r.ID, 10)
}

// TagRef identifies a tag by ID or by label.
type TagRef struct {
	ID    int64
	Label string
}

func (r TagRef) String() string {
	if r.Label != "" {
		return r.Label
	}
	return strconv.FormatInt(r.ID, 10)
}

// TagLabels builds a TagRef list from tag labels.
func TagLabels(labels ...string) []TagRef {
	refs := make([]TagRef, 0, len(labels))
	for _, label := range labels {
		refs = append(refs, TagRef{Label: label})
	}
	return refs
}
