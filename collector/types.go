package collector

// Upstream record shapes. The five Servarr applications share their
// envelope structures (paged queue/history, calendar arrays) and
// differ only in which related entities are embedded, so one set of
// structs covers all of them; absent fields simply stay zero.

// pagedRecords is the envelope returned by /queue and /history.
type pagedRecords[T any] struct {
	TotalRecords int `json:"totalRecords"`
	Records      []T `json:"records"`
}

// relatedEntities holds the eager-loaded entities requested via the
// per-kind include parameters. At most one pair is populated.
type relatedEntities struct {
	Series  *seriesRecord  `json:"series"`
	Episode *episodeRecord `json:"episode"`
	Movie   *movieRecord   `json:"movie"`
	Artist  *artistRecord  `json:"artist"`
	Album   *titledRecord  `json:"album"`
	Author  *authorRecord  `json:"author"`
	Book    *titledRecord  `json:"book"`
}

type queueRecord struct {
	relatedEntities

	Title    string         `json:"title"`
	Status   string         `json:"status"`
	TimeLeft string         `json:"timeleft"`
	Size     float64        `json:"size"`
	SizeLeft float64        `json:"sizeleft"`
	Quality  *qualityRecord `json:"quality"`
}

type qualityRecord struct {
	Quality struct {
		Name string `json:"name"`
	} `json:"quality"`
}

type historyRecord struct {
	relatedEntities

	EventType   string `json:"eventType"`
	SourceTitle string `json:"sourceTitle"`
	Date        string `json:"date"`
}

type calendarRecord struct {
	Title         string `json:"title"`
	Year          int    `json:"year"`
	SeasonNumber  int    `json:"seasonNumber"`
	EpisodeNumber int    `json:"episodeNumber"`

	// Kind-specific release date fields.
	AirDateUTC      string `json:"airDateUtc"`
	AirDate         string `json:"airDate"`
	DigitalRelease  string `json:"digitalRelease"`
	PhysicalRelease string `json:"physicalRelease"`
	InCinemas       string `json:"inCinemas"`
	ReleaseDate     string `json:"releaseDate"`

	Series *seriesRecord `json:"series"`
	Artist *artistRecord `json:"artist"`
	Author *authorRecord `json:"author"`
}

type seriesRecord struct {
	Title      string `json:"title"`
	Network    string `json:"network"`
	Statistics struct {
		TotalEpisodeCount int   `json:"totalEpisodeCount"`
		EpisodeFileCount  int   `json:"episodeFileCount"`
		SizeOnDisk        int64 `json:"sizeOnDisk"`
	} `json:"statistics"`
}

type episodeRecord struct {
	SeasonNumber  int `json:"seasonNumber"`
	EpisodeNumber int `json:"episodeNumber"`
}

type movieRecord struct {
	Title      string `json:"title"`
	Year       int    `json:"year"`
	HasFile    bool   `json:"hasFile"`
	SizeOnDisk int64  `json:"sizeOnDisk"`
}

type artistRecord struct {
	ArtistName string `json:"artistName"`
	Statistics struct {
		AlbumCount int   `json:"albumCount"`
		TrackCount int   `json:"trackCount"`
		SizeOnDisk int64 `json:"sizeOnDisk"`
	} `json:"statistics"`
}

type authorRecord struct {
	AuthorName string `json:"authorName"`
	Statistics struct {
		SizeOnDisk int64 `json:"sizeOnDisk"`
	} `json:"statistics"`
}

type bookRecord struct {
	Title      string `json:"title"`
	Statistics struct {
		BookFileCount int `json:"bookFileCount"`
	} `json:"statistics"`
}

type titledRecord struct {
	Title string `json:"title"`
}

type healthRecord struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type indexerRecord struct {
	Name   string `json:"name"`
	Enable bool   `json:"enable"`
}

type indexerStatsRecord struct {
	Indexers []struct {
		NumberOfGrabs         int64 `json:"numberOfGrabs"`
		NumberOfQueries       int64 `json:"numberOfQueries"`
		NumberOfFailedGrabs   int64 `json:"numberOfFailedGrabs"`
		NumberOfFailedQueries int64 `json:"numberOfFailedQueries"`
	} `json:"indexers"`
}
