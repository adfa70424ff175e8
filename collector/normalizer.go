package collector

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/trmnl-community/servarr-collector/servarr"
)

const (
	queueFetchSize   = 20
	queueDisplayCap  = 10
	historyFetchSize = 50
	historyMatchCap  = 10
	recentDisplayCap = 6
	calendarCap      = 10

	importedEventType = "downloadFolderImported"
)

// normalizer is the per-application-kind rule-set. The queue,
// calendar, and history engines are shared; implementations only
// decide which related entities to eager-load, how to compose titles,
// which release date applies, and how to aggregate statistics.
type normalizer interface {
	kind() servarr.AppKind

	// includeParams is appended to queue and history requests to
	// eager-load the entities the titles are composed from.
	includeParams() string

	// queueTitle and historyTitle return "" when the expected related
	// entity is missing; the engines then fall back to the record's
	// own title.
	queueTitle(rec *queueRecord) string
	historyTitle(rec *historyRecord) string

	calendarEntry(rec *calendarRecord) calendarEntry

	// stats aggregates kind-specific library totals across the full
	// upstream listing. Failed fetches degrade to an empty block.
	stats(ctx context.Context, client *servarr.Client) any
}

// calendarEntry is a normalizer's view of one calendar record before
// date parsing.
type calendarEntry struct {
	title   string
	date    string
	network *string
}

func normalizerFor(kind servarr.AppKind) normalizer {
	switch kind {
	case servarr.Sonarr:
		return sonarrNormalizer{}
	case servarr.Radarr:
		return radarrNormalizer{}
	case servarr.Lidarr:
		return lidarrNormalizer{}
	case servarr.Readarr:
		return readarrNormalizer{}
	default:
		return prowlarrNormalizer{}
	}
}

// fetchQueue pulls the download queue and normalizes the first
// queueDisplayCap records. Count always reflects the upstream total,
// not the display cap.
func (c *Collector) fetchQueue(ctx context.Context, n normalizer) *QueueSection {
	endpoint := fmt.Sprintf("/api/%s/queue?pageSize=%d&includeUnknownSeriesItems=false%s",
		n.kind().APIVersion(), queueFetchSize, n.includeParams())

	var page pagedRecords[queueRecord]
	if !c.client.TryGet(ctx, endpoint, &page) {
		return &QueueSection{Items: []QueueItem{}}
	}

	count := page.TotalRecords
	if count == 0 {
		count = len(page.Records)
	}

	items := make([]QueueItem, 0, queueDisplayCap)
	for i := range page.Records {
		if len(items) == queueDisplayCap {
			break
		}
		items = append(items, formatQueueItem(&page.Records[i], n))
	}

	return &QueueSection{Count: count, Items: items}
}

func formatQueueItem(rec *queueRecord, n normalizer) QueueItem {
	title := n.queueTitle(rec)
	if title == "" {
		title = rec.Title
	}
	if title == "" {
		title = "Unknown"
	}

	progress := 0
	if rec.Size > 0 {
		progress = int(math.Round((rec.Size - rec.SizeLeft) / rec.Size * 100))
	}

	quality := "Unknown"
	if rec.Quality != nil && rec.Quality.Quality.Name != "" {
		quality = rec.Quality.Quality.Name
	}

	status := rec.Status
	if status == "" {
		status = "unknown"
	}

	eta := rec.TimeLeft
	if eta == "" {
		eta = "pending"
	}

	return QueueItem{
		Title:    title,
		Quality:  quality,
		Status:   status,
		Progress: progress,
		ETA:      eta,
	}
}

// fetchCalendar pulls releases in the configured window around today
// and normalizes the first calendarCap records.
func (c *Collector) fetchCalendar(ctx context.Context, n normalizer) *CalendarSection {
	today := c.now()
	start := today.AddDate(0, 0, -c.inst.CalendarDaysBefore).Format("2006-01-02")
	end := today.AddDate(0, 0, c.inst.CalendarDays).Format("2006-01-02")

	endpoint := fmt.Sprintf("/api/%s/calendar?start=%s&end=%s&unmonitored=false&includeSeries=true",
		n.kind().APIVersion(), start, end)

	var records []calendarRecord
	if !c.client.TryGet(ctx, endpoint, &records) {
		return &CalendarSection{Items: []CalendarItem{}}
	}

	items := make([]CalendarItem, 0, calendarCap)
	for i := range records {
		if len(items) == calendarCap {
			break
		}
		items = append(items, formatCalendarItem(&records[i], n, today))
	}

	return &CalendarSection{Count: len(records), Items: items}
}

func formatCalendarItem(rec *calendarRecord, n normalizer, today time.Time) CalendarItem {
	entry := n.calendarEntry(rec)

	title := entry.title
	if title == "" {
		title = "Unknown"
	}

	item := CalendarItem{Title: title, Network: entry.network}

	// A missing or unparsable date degrades the item, never the
	// payload: days_until stays 0 and the date fields stay null.
	if entry.date != "" {
		airDate := strings.SplitN(entry.date, "T", 2)[0]
		dateTime := entry.date
		item.AirDate = &airDate
		item.AirDateTime = &dateTime

		if itemDate, err := time.Parse("2006-01-02", airDate); err == nil {
			item.DaysUntil = daysUntil(today, itemDate)
		}
	}

	return item
}

// daysUntil compares the date portions only, so time-of-day never
// shifts an item between days.
func daysUntil(today, itemDate time.Time) int {
	y, m, d := today.Date()
	todayDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(itemDate.Sub(todayDate).Hours() / 24)
}

// fetchRecentlyAdded pulls history sorted newest-first, keeps
// completed imports, and normalizes the first recentDisplayCap of
// them. Count is capped at historyMatchCap matching records.
func (c *Collector) fetchRecentlyAdded(ctx context.Context, n normalizer) *RecentSection {
	// Prowlarr manages indexers, not media; it has no import history.
	if n.kind() == servarr.Prowlarr {
		return &RecentSection{Items: []RecentItem{}}
	}

	endpoint := fmt.Sprintf("/api/%s/history?pageSize=%d&sortKey=date&sortDirection=descending%s",
		n.kind().APIVersion(), historyFetchSize, n.includeParams())

	var page pagedRecords[historyRecord]
	if !c.client.TryGet(ctx, endpoint, &page) {
		return &RecentSection{Items: []RecentItem{}}
	}

	imported := make([]*historyRecord, 0, historyMatchCap)
	for i := range page.Records {
		if len(imported) == historyMatchCap {
			break
		}
		if page.Records[i].EventType == importedEventType {
			imported = append(imported, &page.Records[i])
		}
	}

	now := c.now()
	items := make([]RecentItem, 0, recentDisplayCap)
	for _, rec := range imported {
		if len(items) == recentDisplayCap {
			break
		}

		title := n.historyTitle(rec)
		if title == "" {
			title = rec.SourceTitle
		}
		if title == "" {
			title = "Unknown"
		}

		items = append(items, RecentItem{
			Title:   title,
			TimeAgo: relativeTime(rec.Date, now),
		})
	}

	return &RecentSection{Count: len(imported), Items: items}
}
