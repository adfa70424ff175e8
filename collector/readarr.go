package collector

import (
	"context"

	"github.com/trmnl-community/servarr-collector/servarr"
)

// readarrNormalizer maps Readarr's author/book model onto the unified
// payload shape.
type readarrNormalizer struct{}

func (readarrNormalizer) kind() servarr.AppKind { return servarr.Readarr }

func (readarrNormalizer) includeParams() string {
	return "&includeAuthor=true&includeBook=true"
}

func (readarrNormalizer) queueTitle(rec *queueRecord) string {
	if rec.Author == nil {
		return ""
	}
	book := "Unknown Book"
	if rec.Book != nil && rec.Book.Title != "" {
		book = rec.Book.Title
	}
	return artistTitle(rec.Author.AuthorName, book)
}

func (readarrNormalizer) historyTitle(rec *historyRecord) string {
	if rec.Author == nil {
		return ""
	}
	book := "Unknown Book"
	if rec.Book != nil && rec.Book.Title != "" {
		book = rec.Book.Title
	}
	return artistTitle(rec.Author.AuthorName, book)
}

func (readarrNormalizer) calendarEntry(rec *calendarRecord) calendarEntry {
	var author string
	if rec.Author != nil {
		author = rec.Author.AuthorName
	}

	book := rec.Title
	if book == "" {
		book = "Unknown"
	}

	return calendarEntry{
		title: artistTitle(author, book),
		date:  rec.ReleaseDate,
	}
}

func (readarrNormalizer) stats(ctx context.Context, client *servarr.Client) any {
	var authors []authorRecord
	client.TryGet(ctx, "/api/v1/author", &authors)

	var books []bookRecord
	client.TryGet(ctx, "/api/v1/book", &books)

	var wanted pagedRecords[struct{}]
	client.TryGet(ctx, "/api/v1/wanted/missing?pageSize=1", &wanted)

	stats := ReadarrStats{
		TotalAuthors:     len(authors),
		TotalBooks:       len(books),
		MonitoredMissing: wanted.TotalRecords,
	}
	for i := range books {
		if books[i].Statistics.BookFileCount > 0 {
			stats.BooksOnDisk++
		}
	}
	for i := range authors {
		stats.LibrarySizeBytes += authors[i].Statistics.SizeOnDisk
	}
	stats.LibrarySizeFormatted = formatBytes(stats.LibrarySizeBytes)

	return stats
}
