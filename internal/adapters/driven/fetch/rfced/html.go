package rfced

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled patterns for HTML reduction.
var (
	scriptTag    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	headTag      = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	htmlComments = regexp.MustCompile(`(?s)<!--.*?-->`)

	blockElements = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|pre|blockquote|section|article)>`)
	brTags        = regexp.MustCompile(`(?i)<br\s*/?>`)
	allTags       = regexp.MustCompile(`(?s)<[^>]*>`)

	multiSpaces   = regexp.MustCompile(`[ \t]+`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// htmlToPlainText strips an HTML page down to readable plain text,
// keeping block boundaries as newlines so section structure survives.
func htmlToPlainText(content string) string {
	text := content

	text = scriptTag.ReplaceAllString(text, "")
	text = styleTag.ReplaceAllString(text, "")
	text = headTag.ReplaceAllString(text, "")
	text = htmlComments.ReplaceAllString(text, "")

	text = blockElements.ReplaceAllString(text, "\n")
	text = brTags.ReplaceAllString(text, "\n")
	text = allTags.ReplaceAllString(text, "")

	text = html.UnescapeString(text)

	text = multiSpaces.ReplaceAllString(text, " ")
	text = multiNewlines.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
