package domain

import "strings"

// Category classifies an RFC by its IETF status line.
type Category string

// Known categories, in match-priority order.
const (
	CategoryStandardsTrack      Category = "Standards Track"
	CategoryInformational       Category = "Informational"
	CategoryExperimental        Category = "Experimental"
	CategoryHistoric            Category = "Historic"
	CategoryBestCurrentPractice Category = "Best Current Practice"
	CategoryProposedStandard    Category = "Proposed Standard"
	CategoryInternetStandard    Category = "Internet Standard"

	// CategoryUncategorised is the sentinel for documents whose header
	// names no known category.
	CategoryUncategorised Category = "Uncategorised"
)

// categoryOrder fixes the tie-break: the first category in this list that
// appears anywhere in the header wins, regardless of text position.
var categoryOrder = []Category{
	CategoryStandardsTrack,
	CategoryInformational,
	CategoryExperimental,
	CategoryHistoric,
	CategoryBestCurrentPractice,
	CategoryProposedStandard,
	CategoryInternetStandard,
}

// classifyWindow bounds how far into the document the categoriser looks.
// Category tokens live in the header block, not the body.
const classifyWindow = 500

// ClassifyCategory inspects the header of a document's raw text and returns
// the first matching category, or CategoryUncategorised when none match.
// Matching is case-insensitive. Safe for any input, including empty strings.
func ClassifyCategory(text string) Category {
	header := text
	if len(header) > classifyWindow {
		header = header[:classifyWindow]
	}
	header = strings.ToLower(header)

	for _, c := range categoryOrder {
		if strings.Contains(header, strings.ToLower(string(c))) {
			return c
		}
	}
	return CategoryUncategorised
}

// IsValid returns true if the category is a known category or the sentinel.
func (c Category) IsValid() bool {
	if c == CategoryUncategorised {
		return true
	}
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}
