package getopt

// stripQuotes removes one pair of matching double or single quotes when they
// form the first and last byte of s. Anything else, including mismatched or
// nested quotes, is returned unchanged.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	if first, last := s[0], s[len(s)-1]; first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
