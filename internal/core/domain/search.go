package domain

// SearchHit is a single ranked result from the search index.
type SearchHit struct {
	// Number is the matched record's RFC number.
	Number int

	// Title is the record's title, hydrated for display.
	Title string

	// Rank is the relevance score from the index. Lower is better,
	// matching SQLite's bm25() convention.
	Rank float64
}
