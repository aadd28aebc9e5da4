package anilist

// Title holds the title variants of a media entry. Pointer fields so
// that an absent key and an explicit JSON null decode identically.
type Title struct {
	Romaji  *string `json:"romaji"`
	English *string `json:"english"`
	Native  *string `json:"native"`
}

// FuzzyDate is AniList's partial date; any component may be null.
type FuzzyDate struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

// ScoreBucket is one entry of a score distribution.
type ScoreBucket struct {
	Score  int `json:"score"`
	Amount int `json:"amount"`
}

// StatusBucket is one entry of a status distribution.
type StatusBucket struct {
	Status string `json:"status"`
	Amount int    `json:"amount"`
}

// MediaStats holds aggregate statistics for a media entry.
type MediaStats struct {
	ScoreDistribution  []ScoreBucket  `json:"scoreDistribution"`
	StatusDistribution []StatusBucket `json:"statusDistribution"`
}

// Media is one anime entry as returned by the seasonal query.
type Media struct {
	ID         int        `json:"id"`
	Title      Title      `json:"title"`
	StartDate  FuzzyDate  `json:"startDate"`
	EndDate    FuzzyDate  `json:"endDate"`
	Episodes   *int       `json:"episodes"`
	SeasonInt  *int       `json:"seasonInt"`
	SeasonYear *int       `json:"seasonYear"`
	Season     string     `json:"season"`
	Format     string     `json:"format"`
	Status     string     `json:"status"`
	Duration   *int       `json:"duration"`
	Genres     []string   `json:"genres"`
	MeanScore  *int       `json:"meanScore"`
	Popularity int        `json:"popularity"`
	Trending   int        `json:"trending"`
	Stats      MediaStats `json:"stats"`
}

// SeasonFilter selects which media a seasonal query returns. A zero
// field is left out of the query variables so the server-side filter
// stays unconstrained for it.
type SeasonFilter struct {
	Status []string
	Format []string
	Year   int
	Season string
}

// Variables converts the filter into GraphQL query variables.
func (f SeasonFilter) Variables() map[string]interface{} {
	vars := make(map[string]interface{})
	if len(f.Status) > 0 {
		vars["status"] = f.Status
	}
	if len(f.Format) > 0 {
		vars["format"] = f.Format
	}
	if f.Year != 0 {
		vars["year"] = f.Year
	}
	if f.Season != "" {
		vars["season"] = f.Season
	}
	return vars
}
