package services

// SanitiseQuery replaces every byte outside [a-zA-Z0-9] with a single
// space, so user phrases cannot reach the full-text engine as query
// syntax. Punctuation becomes whitespace rather than being removed:
// "HTTP/2" -> "HTTP 2". The function is idempotent.
func SanitiseQuery(input string) string {
	out := []byte(input)
	for i := 0; i < len(out); i++ {
		b := out[i]
		switch {
		case b >= 'a' && b <= 'z':
		case b >= 'A' && b <= 'Z':
		case b >= '0' && b <= '9':
		default:
			out[i] = ' '
		}
	}
	return string(out)
}
