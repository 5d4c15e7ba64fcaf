package domain

// CategoryCount is one per-category slice of the overview stats.
type CategoryCount struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// OverviewStats is the aggregate snapshot served by the stats endpoint.
// Every field is recomputed live from the store on each read.
type OverviewStats struct {
	TotalItems int            `json:"total_items"`
	ByStatus   map[string]int `json:"by_status"`
	// AvgRating averages the numeric scores of rated items on the 0-12
	// grade scale, rounded to one decimal. Zero when nothing is rated.
	AvgRating          float64         `json:"avg_rating"`
	ByCategory         []CategoryCount `json:"by_category"`
	RatingDistribution map[string]int  `json:"rating_distribution"`
}
