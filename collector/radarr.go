package collector

import (
	"context"
	"fmt"
	"strconv"

	"github.com/trmnl-community/servarr-collector/servarr"
)

// radarrNormalizer maps Radarr's movie model onto the unified payload
// shape.
type radarrNormalizer struct{}

func (radarrNormalizer) kind() servarr.AppKind { return servarr.Radarr }

func (radarrNormalizer) includeParams() string {
	return "&includeMovie=true"
}

func (radarrNormalizer) queueTitle(rec *queueRecord) string {
	if rec.Movie == nil {
		return ""
	}
	return movieTitle(rec.Movie.Title, rec.Movie.Year)
}

func (radarrNormalizer) historyTitle(rec *historyRecord) string {
	if rec.Movie == nil {
		return ""
	}
	return movieTitle(rec.Movie.Title, rec.Movie.Year)
}

func (radarrNormalizer) calendarEntry(rec *calendarRecord) calendarEntry {
	// Movies carry several release dates; prefer the one closest to
	// being watchable at home.
	date := rec.DigitalRelease
	if date == "" {
		date = rec.PhysicalRelease
	}
	if date == "" {
		date = rec.InCinemas
	}

	return calendarEntry{
		title: movieTitle(rec.Title, rec.Year),
		date:  date,
	}
}

func (radarrNormalizer) stats(ctx context.Context, client *servarr.Client) any {
	var movies []movieRecord
	client.TryGet(ctx, "/api/v3/movie", &movies)

	var wanted pagedRecords[struct{}]
	client.TryGet(ctx, "/api/v3/wanted/missing?pageSize=1", &wanted)

	if len(movies) == 0 {
		return struct{}{}
	}

	stats := RadarrStats{
		TotalMovies:      len(movies),
		MonitoredMissing: wanted.TotalRecords,
	}
	for i := range movies {
		if movies[i].HasFile {
			stats.MoviesOnDisk++
		}
		stats.LibrarySizeBytes += movies[i].SizeOnDisk
	}
	stats.MoviesMissing = stats.TotalMovies - stats.MoviesOnDisk
	stats.LibrarySizeFormatted = formatBytes(stats.LibrarySizeBytes)

	return stats
}

// movieTitle composes "Title (2024)"; an unknown year leaves the
// parentheses empty rather than showing a zero.
func movieTitle(title string, year int) string {
	if title == "" {
		title = "Unknown"
	}
	yearStr := ""
	if year != 0 {
		yearStr = strconv.Itoa(year)
	}
	return fmt.Sprintf("%s (%s)", title, yearStr)
}
