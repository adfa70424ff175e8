package collector

import (
	"context"
	"fmt"

	"github.com/trmnl-community/servarr-collector/servarr"
)

// lidarrNormalizer maps Lidarr's artist/album model onto the unified
// payload shape.
type lidarrNormalizer struct{}

func (lidarrNormalizer) kind() servarr.AppKind { return servarr.Lidarr }

func (lidarrNormalizer) includeParams() string {
	return "&includeArtist=true&includeAlbum=true"
}

func (lidarrNormalizer) queueTitle(rec *queueRecord) string {
	if rec.Artist == nil {
		return ""
	}
	album := "Unknown Album"
	if rec.Album != nil && rec.Album.Title != "" {
		album = rec.Album.Title
	}
	return artistTitle(rec.Artist.ArtistName, album)
}

func (lidarrNormalizer) historyTitle(rec *historyRecord) string {
	if rec.Artist == nil {
		return ""
	}
	album := "Unknown Album"
	if rec.Album != nil && rec.Album.Title != "" {
		album = rec.Album.Title
	}
	return artistTitle(rec.Artist.ArtistName, album)
}

func (lidarrNormalizer) calendarEntry(rec *calendarRecord) calendarEntry {
	var artist string
	if rec.Artist != nil {
		artist = rec.Artist.ArtistName
	}

	album := rec.Title
	if album == "" {
		album = "Unknown"
	}

	return calendarEntry{
		title: artistTitle(artist, album),
		date:  rec.ReleaseDate,
	}
}

func (lidarrNormalizer) stats(ctx context.Context, client *servarr.Client) any {
	var artists []artistRecord
	client.TryGet(ctx, "/api/v1/artist", &artists)

	var wanted pagedRecords[struct{}]
	client.TryGet(ctx, "/api/v1/wanted/missing?pageSize=1", &wanted)

	if len(artists) == 0 {
		return struct{}{}
	}

	stats := LidarrStats{
		TotalArtists:     len(artists),
		MonitoredMissing: wanted.TotalRecords,
	}
	for i := range artists {
		s := &artists[i].Statistics
		stats.TotalAlbums += s.AlbumCount
		stats.TotalTracks += s.TrackCount
		stats.LibrarySizeBytes += s.SizeOnDisk
	}
	stats.LibrarySizeFormatted = formatBytes(stats.LibrarySizeBytes)

	return stats
}

// artistTitle composes "Artist - Work".
func artistTitle(artist, work string) string {
	if artist == "" {
		artist = "Unknown"
	}
	return fmt.Sprintf("%s - %s", artist, work)
}
