package collector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trmnl-community/servarr-collector/servarr"
)

func newStatsClient(t *testing.T, handler http.Handler) *servarr.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := servarr.NewClient(server.URL, "test-key", zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestSonarrStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/series", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"title": "Severance",
				"statistics": map[string]any{
					"totalEpisodeCount": 19,
					"episodeFileCount":  19,
					"sizeOnDisk":        50000000000,
				},
			},
			{
				"title": "The Expanse",
				"statistics": map[string]any{
					"totalEpisodeCount": 62,
					"episodeFileCount":  40,
					"sizeOnDisk":        100000000000,
				},
			},
		})
	})
	mux.HandleFunc("/api/v3/wanted/missing", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"totalRecords": 22})
	})

	client := newStatsClient(t, mux)

	stats := sonarrNormalizer{}.stats(context.Background(), client)
	assert.Equal(t, SonarrStats{
		TotalSeries:          2,
		TotalEpisodes:        81,
		EpisodesOnDisk:       59,
		EpisodesMissing:      22,
		MonitoredMissing:     22,
		LibrarySizeBytes:     150000000000,
		LibrarySizeFormatted: "139.7 GB",
	}, stats)
}

func TestRadarrStatsEndToEndScenario(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/movie", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"title": "Heat", "hasFile": true, "sizeOnDisk": 1000000000},
			{"title": "Ronin", "hasFile": true, "sizeOnDisk": 2000000000},
			{"title": "Dune", "hasFile": false},
		})
	})
	mux.HandleFunc("/api/v3/wanted/missing", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"totalRecords": 1})
	})

	client := newStatsClient(t, mux)

	stats := radarrNormalizer{}.stats(context.Background(), client)
	assert.Equal(t, RadarrStats{
		TotalMovies:          3,
		MoviesOnDisk:         2,
		MoviesMissing:        1,
		MonitoredMissing:     1,
		LibrarySizeBytes:     3000000000,
		LibrarySizeFormatted: "2.8 GB",
	}, stats)
}

func TestRadarrStatsEmptyLibrary(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/movie", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	})
	mux.HandleFunc("/api/v3/wanted/missing", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"totalRecords": 0})
	})

	client := newStatsClient(t, mux)

	stats := radarrNormalizer{}.stats(context.Background(), client)
	assert.Equal(t, struct{}{}, stats)
}

func TestLidarrStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/artist", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"artistName": "Boards of Canada",
				"statistics": map[string]any{"albumCount": 4, "trackCount": 46, "sizeOnDisk": 2000000000},
			},
			{
				"artistName": "Autechre",
				"statistics": map[string]any{"albumCount": 11, "trackCount": 120, "sizeOnDisk": 6000000000},
			},
		})
	})
	mux.HandleFunc("/api/v1/wanted/missing", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"totalRecords": 3})
	})

	client := newStatsClient(t, mux)

	stats := lidarrNormalizer{}.stats(context.Background(), client)
	assert.Equal(t, LidarrStats{
		TotalArtists:         2,
		TotalAlbums:          15,
		TotalTracks:          166,
		MonitoredMissing:     3,
		LibrarySizeBytes:     8000000000,
		LibrarySizeFormatted: "7.5 GB",
	}, stats)
}

func TestReadarrStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/author", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"authorName": "Ursula K. Le Guin",
				"statistics": map[string]any{"sizeOnDisk": 300000000},
			},
		})
	})
	mux.HandleFunc("/api/v1/book", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"title": "The Dispossessed", "statistics": map[string]any{"bookFileCount": 1}},
			{"title": "The Left Hand of Darkness", "statistics": map[string]any{"bookFileCount": 0}},
			{"title": "The Lathe of Heaven"},
		})
	})
	mux.HandleFunc("/api/v1/wanted/missing", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"totalRecords": 2})
	})

	client := newStatsClient(t, mux)

	stats := readarrNormalizer{}.stats(context.Background(), client)
	assert.Equal(t, ReadarrStats{
		TotalAuthors:         1,
		TotalBooks:           3,
		BooksOnDisk:          1,
		MonitoredMissing:     2,
		LibrarySizeBytes:     300000000,
		LibrarySizeFormatted: "286.1 MB",
	}, stats)
}

func TestStatsDegradeWhenEndpointsFail(t *testing.T) {
	// Nothing mounted: every fetch 404s and is swallowed.
	client := newStatsClient(t, http.NewServeMux())

	assert.Equal(t, struct{}{}, sonarrNormalizer{}.stats(context.Background(), client))
	assert.Equal(t, struct{}{}, radarrNormalizer{}.stats(context.Background(), client))
	assert.Equal(t, struct{}{}, lidarrNormalizer{}.stats(context.Background(), client))

	// Readarr and Prowlarr report zero-valued blocks instead.
	assert.Equal(t, ReadarrStats{LibrarySizeFormatted: "--"}, readarrNormalizer{}.stats(context.Background(), client))
	assert.Equal(t, ProwlarrStats{}, prowlarrNormalizer{}.stats(context.Background(), client))
}
