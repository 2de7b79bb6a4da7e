package fracture

import "strings"

// doInstancesLineUp reports whether every line containing substring has its
// first occurrence at the same character column. Lines without the substring
// don't count against it.
func doInstancesLineUp(lines []string, substring string) bool {
	found := false
	column := -1
	for _, line := range lines {
		idx := findCharIndex(line, substring)
		if idx < 0 {
			continue
		}
		if found && idx != column {
			return false
		}
		found = true
		column = idx
	}
	return true
}

// findCharIndex returns the character (not byte) index of the first
// occurrence of needle, or -1.
func findCharIndex(haystack, needle string) int {
	byteIdx := strings.Index(haystack, needle)
	if byteIdx < 0 {
		return -1
	}
	return len([]rune(haystack[:byteIdx]))
}

// normalizeQuotes lets test inputs use single quotes where JSON needs double
// quotes, keeping the literals readable.
func normalizeQuotes(input string) string {
	return strings.ReplaceAll(input, "'", "\"")
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}

func splitTrimmedLines(text, eol string) []string {
	return strings.Split(strings.TrimRight(text, " \t\r\n"), eol)
}
