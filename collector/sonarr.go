package collector

import (
	"context"
	"fmt"

	"github.com/trmnl-community/servarr-collector/servarr"
)

// sonarrNormalizer maps Sonarr's series/episode model onto the
// unified payload shape.
type sonarrNormalizer struct{}

func (sonarrNormalizer) kind() servarr.AppKind { return servarr.Sonarr }

func (sonarrNormalizer) includeParams() string {
	return "&includeSeries=true&includeEpisode=true"
}

func (sonarrNormalizer) queueTitle(rec *queueRecord) string {
	if rec.Series == nil {
		return ""
	}
	var season, episode int
	if rec.Episode != nil {
		season, episode = rec.Episode.SeasonNumber, rec.Episode.EpisodeNumber
	}
	return episodeTitle(rec.Series.Title, season, episode)
}

func (sonarrNormalizer) historyTitle(rec *historyRecord) string {
	if rec.Series == nil {
		return ""
	}
	var season, episode int
	if rec.Episode != nil {
		season, episode = rec.Episode.SeasonNumber, rec.Episode.EpisodeNumber
	}
	return episodeTitle(rec.Series.Title, season, episode)
}

func (sonarrNormalizer) calendarEntry(rec *calendarRecord) calendarEntry {
	var seriesTitle string
	var network *string
	if rec.Series != nil {
		seriesTitle = rec.Series.Title
		if rec.Series.Network != "" {
			n := rec.Series.Network
			network = &n
		}
	}

	date := rec.AirDateUTC
	if date == "" {
		date = rec.AirDate
	}

	return calendarEntry{
		title:   episodeTitle(seriesTitle, rec.SeasonNumber, rec.EpisodeNumber),
		date:    date,
		network: network,
	}
}

func (sonarrNormalizer) stats(ctx context.Context, client *servarr.Client) any {
	var series []seriesRecord
	client.TryGet(ctx, "/api/v3/series", &series)

	var wanted pagedRecords[struct{}]
	client.TryGet(ctx, "/api/v3/wanted/missing?pageSize=1", &wanted)

	if len(series) == 0 {
		return struct{}{}
	}

	stats := SonarrStats{
		TotalSeries:      len(series),
		MonitoredMissing: wanted.TotalRecords,
	}
	for i := range series {
		s := &series[i].Statistics
		stats.TotalEpisodes += s.TotalEpisodeCount
		stats.EpisodesOnDisk += s.EpisodeFileCount
		stats.LibrarySizeBytes += s.SizeOnDisk
	}
	stats.EpisodesMissing = stats.TotalEpisodes - stats.EpisodesOnDisk
	stats.LibrarySizeFormatted = formatBytes(stats.LibrarySizeBytes)

	return stats
}

// episodeTitle composes "Series [S01E02]" with zero-padded numbers.
func episodeTitle(series string, season, episode int) string {
	if series == "" {
		series = "Unknown"
	}
	return fmt.Sprintf("%s [S%02dE%02d]", series, season, episode)
}
