package substitute

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func isLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func isLetter(c byte) bool {
	return isUpper(c) || isLower(c)
}

// isValid reports whether c may appear in the input stream at all.
func isValid(c byte) bool {
	return c == '\n' || (' ' <= c && c <= '~')
}

func toLower(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

func toUpper(c byte) byte {
	if isLower(c) {
		return c - ('a' - 'A')
	}
	return c
}
