package collector

// Payload is the document POSTed to the TRMNL webhook. Field names
// match what the webhook's templates consume.
type Payload struct {
	MergeVariables MergeVariables `json:"merge_variables"`
}

// MergeVariables carries the normalized sections plus instance
// identity. In calendar-only mode everything but the identity fields
// and Calendar is omitted.
type MergeVariables struct {
	AppName       string           `json:"app_name"`
	AppType       string           `json:"app_type"`
	LastUpdated   string           `json:"last_updated"`
	Timezone      string           `json:"timezone"`
	Health        *Health          `json:"health,omitempty"`
	Queue         *QueueSection    `json:"queue,omitempty"`
	Calendar      *CalendarSection `json:"calendar"`
	Stats         any              `json:"stats,omitempty"`
	RecentlyAdded *RecentSection   `json:"recently_added,omitempty"`
}

// Health summarizes the instance's health checks.
type Health struct {
	Status string `json:"status"`
}

// QueueSection reports the download queue. Count is the true upstream
// total; Items is capped for display and may be shorter.
type QueueSection struct {
	Count int         `json:"count"`
	Items []QueueItem `json:"items"`
}

// QueueItem is one normalized download queue entry.
type QueueItem struct {
	Title    string `json:"title"`
	Quality  string `json:"quality"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	ETA      string `json:"eta"`
}

// CalendarSection reports upcoming (and optionally recent) releases.
type CalendarSection struct {
	Count int            `json:"count"`
	Items []CalendarItem `json:"items"`
}

// CalendarItem is one normalized calendar entry. Date fields are nil
// when the upstream record carries no usable release date.
type CalendarItem struct {
	Title       string  `json:"title"`
	AirDate     *string `json:"air_date"`
	AirDateTime *string `json:"air_date_time"`
	Network     *string `json:"network"`
	DaysUntil   int     `json:"days_until"`
}

// RecentSection reports completed imports from history.
type RecentSection struct {
	Count int          `json:"count"`
	Items []RecentItem `json:"items"`
}

// RecentItem is one normalized recently-added entry.
type RecentItem struct {
	Title   string `json:"title"`
	TimeAgo string `json:"time_ago"`
}

// Per-kind statistics blocks. Keys are stable payload contract.

type SonarrStats struct {
	TotalSeries          int    `json:"total_series"`
	TotalEpisodes        int    `json:"total_episodes"`
	EpisodesOnDisk       int    `json:"episodes_on_disk"`
	EpisodesMissing      int    `json:"episodes_missing"`
	MonitoredMissing     int    `json:"monitored_missing"`
	LibrarySizeBytes     int64  `json:"library_size_bytes"`
	LibrarySizeFormatted string `json:"library_size_formatted"`
}

type RadarrStats struct {
	TotalMovies          int    `json:"total_movies"`
	MoviesOnDisk         int    `json:"movies_on_disk"`
	MoviesMissing        int    `json:"movies_missing"`
	MonitoredMissing     int    `json:"monitored_missing"`
	LibrarySizeBytes     int64  `json:"library_size_bytes"`
	LibrarySizeFormatted string `json:"library_size_formatted"`
}

type LidarrStats struct {
	TotalArtists         int    `json:"total_artists"`
	TotalAlbums          int    `json:"total_albums"`
	TotalTracks          int    `json:"total_tracks"`
	MonitoredMissing     int    `json:"monitored_missing"`
	LibrarySizeBytes     int64  `json:"library_size_bytes"`
	LibrarySizeFormatted string `json:"library_size_formatted"`
}

type ReadarrStats struct {
	TotalAuthors         int    `json:"total_authors"`
	TotalBooks           int    `json:"total_books"`
	BooksOnDisk          int    `json:"books_on_disk"`
	MonitoredMissing     int    `json:"monitored_missing"`
	LibrarySizeBytes     int64  `json:"library_size_bytes"`
	LibrarySizeFormatted string `json:"library_size_formatted"`
}

type ProwlarrStats struct {
	TotalIndexers   int   `json:"total_indexers"`
	EnabledIndexers int   `json:"enabled_indexers"`
	TotalGrabs      int64 `json:"total_grabs"`
	TotalQueries    int64 `json:"total_queries"`
	FailedGrabs     int64 `json:"failed_grabs"`
	FailedQueries   int64 `json:"failed_queries"`
}
