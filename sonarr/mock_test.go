package sonarr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fakeSonarr is an in-memory Sonarr used by the package tests. It
// records every request so tests can assert call counts and ordering.
type fakeSonarr struct {
	mu sync.Mutex

	catalog  []Series
	lookup   map[int64]Series
	quality  []QualityProfile
	language []LanguageProfile
	folders  []RootFolder
	tags     []Tag

	calls        []string
	imports      [][]Series
	editors      []SeriesEditorRequest
	seasonPasses []SeasonPassRequest
	deletes      []SeriesEditorDeleteRequest

	nextTagID  int64
	nextShowID int64
}

func newFakeSonarr() *fakeSonarr {
	return &fakeSonarr{
		lookup:     map[int64]Series{},
		quality:    []QualityProfile{{ID: 1, Name: "Any"}, {ID: 4, Name: "HD-1080p"}},
		language:   []LanguageProfile{{ID: 1, Name: "English"}, {ID: 2, Name: "German"}},
		folders:    []RootFolder{{ID: 1, Path: "/tv"}, {ID: 2, Path: "/anime"}},
		tags:       []Tag{{ID: 1, Label: "kids"}},
		nextTagID:  2,
		nextShowID: 100,
	}
}

func (f *fakeSonarr) record(r *http.Request) {
	f.calls = append(f.calls, r.Method+" "+strings.TrimPrefix(r.URL.Path, "/api/v3/"))
}

// callCount returns how many recorded calls match the "METHOD path" key.
func (f *fakeSonarr) callCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, call := range f.calls {
		if call == key {
			count++
		}
	}
	return count
}

func (f *fakeSonarr) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		f.mu.Lock()
		defer f.mu.Unlock()
		f.record(r)

		path := strings.TrimPrefix(r.URL.Path, "/api/v3/")
		switch {
		case path == "system/status":
			fmt.Fprint(w, `{"version":"4.0.0"}`)
		case path == "series" && r.Method == http.MethodGet:
			series := f.catalog
			if raw := r.URL.Query().Get("tvdbId"); raw != "" {
				tvdbID, err := strconv.ParseInt(raw, 10, 64)
				require.NoError(t, err)
				series = nil
				for _, s := range f.catalog {
					if s.TvdbID == tvdbID {
						series = append(series, s)
					}
				}
			}
			writeJSON(t, w, series)
		case path == "series/lookup":
			term := r.URL.Query().Get("term")
			var results []Series
			if raw, ok := strings.CutPrefix(term, "tvdb:"); ok {
				tvdbID, err := strconv.ParseInt(raw, 10, 64)
				require.NoError(t, err)
				if s, ok := f.lookup[tvdbID]; ok {
					results = append(results, s)
				}
			}
			writeJSON(t, w, results)
		case path == "series/import":
			var batch []Series
			require.NoError(t, json.NewDecoder(r.Body).Decode(&batch))
			f.imports = append(f.imports, batch)
			added := make([]Series, 0, len(batch))
			for _, s := range batch {
				s.ID = f.nextShowID
				f.nextShowID++
				added = append(added, s)
			}
			writeJSON(t, w, added)
		case path == "series/editor" && r.Method == http.MethodPut:
			var req SeriesEditorRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			f.editors = append(f.editors, req)
			edited := make([]Series, 0, len(req.SeriesIDs))
			for _, id := range req.SeriesIDs {
				edited = append(edited, Series{ID: id})
			}
			writeJSON(t, w, edited)
		case path == "series/editor" && r.Method == http.MethodDelete:
			var req SeriesEditorDeleteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			f.deletes = append(f.deletes, req)
			fmt.Fprint(w, "{}")
		case path == "seasonPass":
			var req SeasonPassRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			f.seasonPasses = append(f.seasonPasses, req)
			fmt.Fprint(w, "{}")
		case path == "qualityProfile":
			writeJSON(t, w, f.quality)
		case path == "languageProfile":
			writeJSON(t, w, f.language)
		case path == "rootfolder":
			writeJSON(t, w, f.folders)
		case path == "tag" && r.Method == http.MethodGet:
			writeJSON(t, w, f.tags)
		case path == "tag" && r.Method == http.MethodPost:
			var tag Tag
			require.NoError(t, json.NewDecoder(r.Body).Decode(&tag))
			tag.ID = f.nextTagID
			f.nextTagID++
			f.tags = append(f.tags, tag)
			writeJSON(t, w, tag)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"not found"}`)
		}
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	if v == nil {
		fmt.Fprint(w, "[]")
		return
	}
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// newTestClient starts a fake Sonarr and returns a client pointed at it.
func newTestClient(t *testing.T, fake *fakeSonarr, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "test-key", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

// lookupSeries builds a plausible lookup result for a TVDb ID.
func lookupSeries(tvdbID int64, title string) Series {
	return Series{
		Title:     title,
		TitleSlug: strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		TvdbID:    tvdbID,
		Year:      2020,
		Seasons:   []Season{{SeasonNumber: 1, Monitored: true}},
	}
}

// librarySeries builds a series that already lives in the library.
func librarySeries(id, tvdbID int64, title string) Series {
	s := lookupSeries(tvdbID, title)
	s.ID = id
	s.Path = "/tv/" + s.TitleSlug
	return s
}
