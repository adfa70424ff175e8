package collector

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatQueueItemTitles(t *testing.T) {
	tests := []struct {
		name string
		n    normalizer
		rec  queueRecord
		want string
	}{
		{
			name: "sonarr composes series and episode tag",
			n:    sonarrNormalizer{},
			rec: queueRecord{relatedEntities: relatedEntities{
				Series:  &seriesRecord{Title: "Breaking Bad"},
				Episode: &episodeRecord{SeasonNumber: 2, EpisodeNumber: 5},
			}},
			want: "Breaking Bad [S02E05]",
		},
		{
			name: "sonarr without episode pads zeros",
			n:    sonarrNormalizer{},
			rec: queueRecord{relatedEntities: relatedEntities{
				Series: &seriesRecord{Title: "Severance"},
			}},
			want: "Severance [S00E00]",
		},
		{
			name: "radarr composes title and year",
			n:    radarrNormalizer{},
			rec: queueRecord{relatedEntities: relatedEntities{
				Movie: &movieRecord{Title: "Heat", Year: 1995},
			}},
			want: "Heat (1995)",
		},
		{
			name: "lidarr composes artist and album",
			n:    lidarrNormalizer{},
			rec: queueRecord{relatedEntities: relatedEntities{
				Artist: &artistRecord{ArtistName: "Boards of Canada"},
				Album:  &titledRecord{Title: "Geogaddi"},
			}},
			want: "Boards of Canada - Geogaddi",
		},
		{
			name: "lidarr without album",
			n:    lidarrNormalizer{},
			rec: queueRecord{relatedEntities: relatedEntities{
				Artist: &artistRecord{ArtistName: "Boards of Canada"},
			}},
			want: "Boards of Canada - Unknown Album",
		},
		{
			name: "readarr composes author and book",
			n:    readarrNormalizer{},
			rec: queueRecord{relatedEntities: relatedEntities{
				Author: &authorRecord{AuthorName: "Ursula K. Le Guin"},
				Book:   &titledRecord{Title: "The Dispossessed"},
			}},
			want: "Ursula K. Le Guin - The Dispossessed",
		},
		{
			name: "missing related entity falls back to record title",
			n:    sonarrNormalizer{},
			rec:  queueRecord{Title: "Some.Release.S01E01"},
			want: "Some.Release.S01E01",
		},
		{
			name: "nothing at all",
			n:    radarrNormalizer{},
			rec:  queueRecord{},
			want: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := formatQueueItem(&tt.rec, tt.n)
			assert.Equal(t, tt.want, item.Title)
		})
	}
}

func TestFormatQueueItemProgress(t *testing.T) {
	tests := []struct {
		name     string
		size     float64
		sizeLeft float64
		want     int
	}{
		{name: "zero size is zero progress", size: 0, sizeLeft: 0, want: 0},
		{name: "fresh download", size: 1000, sizeLeft: 1000, want: 0},
		{name: "three quarters done", size: 1000, sizeLeft: 250, want: 75},
		{name: "complete", size: 1000, sizeLeft: 0, want: 100},
		{name: "rounds to nearest", size: 3, sizeLeft: 1, want: 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := formatQueueItem(&queueRecord{Size: tt.size, SizeLeft: tt.sizeLeft}, radarrNormalizer{})
			assert.Equal(t, tt.want, item.Progress)
			assert.GreaterOrEqual(t, item.Progress, 0)
			assert.LessOrEqual(t, item.Progress, 100)
		})
	}
}

func TestFormatQueueItemDefaults(t *testing.T) {
	item := formatQueueItem(&queueRecord{}, radarrNormalizer{})
	assert.Equal(t, "Unknown", item.Quality)
	assert.Equal(t, "unknown", item.Status)
	assert.Equal(t, "pending", item.ETA)
}

func TestFetchQueueSendsIncludeParams(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/queue", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("pageSize"))
		assert.Equal(t, "false", q.Get("includeUnknownSeriesItems"))
		assert.Equal(t, "true", q.Get("includeSeries"))
		assert.Equal(t, "true", q.Get("includeEpisode"))
		json.NewEncoder(w).Encode(map[string]any{"totalRecords": 0, "records": []any{}})
	})

	col := newTestCollector(t, mux, Instance{Name: "tv", AppType: "sonarr"})

	section := col.fetchQueue(context.Background(), sonarrNormalizer{})
	assert.Equal(t, 0, section.Count)
	assert.Empty(t, section.Items)
}

func TestFetchQueueFailureDegradesToEmpty(t *testing.T) {
	col := newTestCollector(t, http.NewServeMux(), Instance{Name: "tv", AppType: "sonarr"})

	section := col.fetchQueue(context.Background(), sonarrNormalizer{})
	require.NotNil(t, section)
	assert.Equal(t, 0, section.Count)
	assert.NotNil(t, section.Items)
	assert.Empty(t, section.Items)
}

func TestFetchQueueCountSurvivesTruncation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/queue", func(w http.ResponseWriter, r *http.Request) {
		records := make([]map[string]any, 0, 20)
		for i := 0; i < 20; i++ {
			records = append(records, map[string]any{"title": "release", "status": "queued"})
		}
		json.NewEncoder(w).Encode(map[string]any{"totalRecords": 37, "records": records})
	})

	col := newTestCollector(t, mux, Instance{Name: "music", AppType: "lidarr"})

	section := col.fetchQueue(context.Background(), lidarrNormalizer{})
	assert.Equal(t, 37, section.Count)
	assert.Len(t, section.Items, 10)
}
