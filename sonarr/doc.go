// Package sonarr provides a client for the Sonarr API with a focus on
// batch series management.
//
// Beyond the usual single-resource calls (lookup, get, update, delete),
// the package implements bulk add, edit and delete operations that accept
// a list of TVDb IDs or previously fetched Series, reconcile them against
// the remote library, and issue chunked requests against the import,
// editor and season-pass endpoints. Each bulk call reports its outcome as
// disjoint result buckets: every input ends up added, edited, already
// present, or not found.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := sonarr.NewClient("http://localhost:8989", "api-key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	opts := sonarr.NewAddSeriesOptions(
//		sonarr.RootFolderRef{Path: "/tv"},
//		sonarr.ProfileRef{Name: "HD-1080p"},
//		sonarr.ProfileRef{Name: "English"},
//	)
//	result, err := client.AddSeriesMultiple(ctx, sonarr.TVDBIDs(71663, 73255), opts)
//
// # Error Handling
//
// Option validation happens before any state-changing request is issued.
// An out-of-range enum value or an unknown profile reference is reported
// as *InvalidOptionError carrying the offending value and the legal
// options. Per-item resolution outcomes (a series already in the library,
// a TVDb ID that cannot be looked up) are returned as data in the result
// buckets, never as errors. Transport and API failures surface as
// *APIError with the HTTP status code.
package sonarr
