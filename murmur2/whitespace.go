package murmur2

// IsWhitespace reports whether b is one of the bytes stripped before hashing:
// tab (9), line feed (10), carriage return (13) or space (32).
func IsWhitespace(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r' || b == ' '
}

// RemoveWhitespaces returns a new slice holding the bytes of data that are not
// whitespace, in their original order. data is left untouched.
func RemoveWhitespaces(data []byte) []byte {
	filtered := make([]byte, 0, len(data))
	for _, b := range data {
		if !IsWhitespace(b) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
