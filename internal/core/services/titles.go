package services

import (
	"strconv"
	"strings"
)

// ResolveTitle scans the raw index-listing entries for the first one whose
// text contains the decimal form of number, and returns it verbatim. The
// entry keeps its leading numbering and trailing punctuation; callers that
// want a clean title must trim it themselves.
//
// Matching is a plain substring test, so a small number can match inside a
// larger one ("1" inside "1918"). First listing entry wins. That ambiguity
// is inherited from the index format and is relied on by callers; do not
// tighten it.
//
// Linear scan per call: acceptable because resolution happens once per
// document during batch ingestion, never on the query path.
func ResolveTitle(number int, listing []string) string {
	needle := strconv.Itoa(number)
	for _, entry := range listing {
		if strings.Contains(entry, needle) {
			return entry
		}
	}
	return ""
}
