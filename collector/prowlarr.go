package collector

import (
	"context"

	"github.com/trmnl-community/servarr-collector/servarr"
)

// prowlarrNormalizer covers the one kind with no media library.
// Queue, calendar, and recently-added all come back empty; the
// statistics block reports indexer health instead of library totals.
type prowlarrNormalizer struct{}

func (prowlarrNormalizer) kind() servarr.AppKind { return servarr.Prowlarr }

func (prowlarrNormalizer) includeParams() string { return "" }

func (prowlarrNormalizer) queueTitle(*queueRecord) string { return "" }

func (prowlarrNormalizer) historyTitle(*historyRecord) string { return "" }

func (prowlarrNormalizer) calendarEntry(*calendarRecord) calendarEntry {
	return calendarEntry{}
}

func (prowlarrNormalizer) stats(ctx context.Context, client *servarr.Client) any {
	var indexers []indexerRecord
	client.TryGet(ctx, "/api/v1/indexer", &indexers)

	var indexerStats indexerStatsRecord
	client.TryGet(ctx, "/api/v1/indexerstats", &indexerStats)

	stats := ProwlarrStats{
		TotalIndexers: len(indexers),
	}
	for i := range indexers {
		if indexers[i].Enable {
			stats.EnabledIndexers++
		}
	}
	for _, idx := range indexerStats.Indexers {
		stats.TotalGrabs += idx.NumberOfGrabs
		stats.TotalQueries += idx.NumberOfQueries
		stats.FailedGrabs += idx.NumberOfFailedGrabs
		stats.FailedQueries += idx.NumberOfFailedQueries
	}

	return stats
}
