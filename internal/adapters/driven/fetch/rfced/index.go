package rfced

import (
	"regexp"
	"strings"
)

// indexEntry matches the start of an rfc-index entry: a line beginning
// with the document number, capturing everything up to the first full
// stop. Entries wrap across lines, so matching runs in multiline mode
// against the whole listing.
var indexEntry = regexp.MustCompile(`(?m)^(\d{1,4})([^.]*)\.`)

// ParseIndexListing splits the raw rfc-index.txt body into one entry
// string per document. Each entry keeps its number prefix and title
// text verbatim, with wrapped lines joined, so lookups can match on the
// leading number.
func ParseIndexListing(raw string) []string {
	matches := indexEntry.FindAllStringSubmatch(raw, -1)
	entries := make([]string, 0, len(matches))
	for _, m := range matches {
		entry := strings.TrimSpace(m[1] + " " + strings.Join(strings.Fields(m[2]), " "))
		entries = append(entries, entry)
	}
	return entries
}
