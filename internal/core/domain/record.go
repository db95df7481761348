package domain

// Record is the canonical representation of an ingested RFC.
type Record struct {
	// Number is the RFC number and the primary key of the corpus.
	// Immutable once the record is created.
	Number int

	// Title is the raw entry from the rfc-index listing, kept verbatim
	// (leading numbering and trailing punctuation included). Empty when
	// no listing entry matched at ingestion time.
	Title string

	// Body is the full document text, surrounding whitespace trimmed.
	Body string

	// Category is the IETF category parsed from the document header,
	// or CategoryUncategorised.
	Category Category

	// Bookmarked marks the record for the bookmark listing.
	// The only field mutable after creation.
	Bookmarked bool
}
