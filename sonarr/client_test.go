package sonarr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		baseURL string
		apiKey  string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			baseURL: "http://localhost:8989",
			apiKey:  "test-key",
			wantErr: false,
		},
		{
			name:    "missing URL",
			baseURL: "",
			apiKey:  "test-key",
			wantErr: true,
			errMsg:  "URL is required",
		},
		{
			name:    "missing API key",
			baseURL: "http://localhost:8989",
			apiKey:  "",
			wantErr: true,
			errMsg:  "API key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, tt.apiKey, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.baseURL, client.baseURL)
			assert.Equal(t, tt.apiKey, client.apiKey)
		})
	}

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		client, err := NewClient("http://localhost:8989/", "test-key", logger)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8989", client.baseURL)
	})
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("http://localhost:8989", "test-key", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("http://localhost:8989", "test-key", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("api prefix", func(t *testing.T) {
		client, err := NewClient("http://localhost:8989", "test-key", logger)
		require.NoError(t, err)
		assert.Equal(t, "/api/v3", client.apiPrefix())

		legacy, err := NewClient("http://localhost:8989", "test-key", logger, WithLegacyAPI())
		require.NoError(t, err)
		assert.Equal(t, "/api", legacy.apiPrefix())
	})
}

func TestPing(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		client := newTestClient(t, newFakeSonarr())
		require.NoError(t, client.Ping(context.Background()))
	})

	t.Run("unauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "bad-key", zerolog.Nop())
		require.NoError(t, err)

		err = client.Ping(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoConnection)
	})
}

func TestAPIError(t *testing.T) {
	t.Run("error message", func(t *testing.T) {
		err := &APIError{StatusCode: 404, Message: "Not Found"}
		assert.Equal(t, "sonarr API error: status 404: Not Found", err.Error())
	})

	t.Run("message parsed from body", func(t *testing.T) {
		err := newAPIError(400, []byte(`{"message":"Invalid request"}`))
		assert.Equal(t, "Invalid request", err.Message)

		err = newAPIError(500, []byte("not json"))
		assert.Equal(t, "Internal Server Error", err.Message)
		assert.Equal(t, "not json", err.Body)
	})

	t.Run("IsNotFound", func(t *testing.T) {
		assert.True(t, (&APIError{StatusCode: 404}).IsNotFound())
		assert.False(t, (&APIError{StatusCode: 500}).IsNotFound())
	})

	t.Run("IsUnauthorized", func(t *testing.T) {
		tests := []struct {
			code     int
			expected bool
		}{
			{401, true},
			{403, true},
			{404, false},
			{500, false},
		}

		for _, tt := range tests {
			err := &APIError{StatusCode: tt.code}
			assert.Equal(t, tt.expected, err.IsUnauthorized())
		}
	})
}

func TestGetSeries(t *testing.T) {
	fake := newFakeSonarr()
	fake.catalog = []Series{librarySeries(10, 71663, "The Simpsons")}
	client := newTestClient(t, fake)
	ctx := context.Background()

	t.Run("by sonarr id not found", func(t *testing.T) {
		_, err := client.GetSeries(ctx, 999)
		assert.ErrorIs(t, err, ErrSeriesNotFound)
	})

	t.Run("by tvdb id", func(t *testing.T) {
		series, err := client.GetSeriesByTVDBID(ctx, 71663)
		require.NoError(t, err)
		assert.Equal(t, int64(10), series.ID)

		_, err = client.GetSeriesByTVDBID(ctx, 4242)
		assert.ErrorIs(t, err, ErrSeriesNotFound)
	})
}

func TestSearchSeries(t *testing.T) {
	fake := newFakeSonarr()
	fake.lookup[71663] = lookupSeries(71663, "The Simpsons")
	client := newTestClient(t, fake)

	results, err := client.SearchSeries(context.Background(), "tvdb:71663")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(71663), results[0].TvdbID)
	assert.Zero(t, results[0].ID)
}

func TestFetchReferenceData(t *testing.T) {
	fake := newFakeSonarr()
	client := newTestClient(t, fake)

	data, err := client.FetchReferenceData(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.QualityProfiles, 2)
	assert.Len(t, data.LanguageProfiles, 2)
	assert.Len(t, data.RootFolders, 2)
	assert.Len(t, data.Tags, 1)
}
