package texts

import (
	"unicode"
	"unicode/utf8"
)

const (
	// SplitThreshold is the rune count from which text takes two lines
	SplitThreshold = 16
	// LongThreshold is the rune count above which text counts as long
	LongThreshold = 24
	Ellipsis      = "..."
)

// IsLong reports whether text needs the roomier pose
func IsLong(text string) bool {
	return utf8.RuneCountInString(text) > LongThreshold
}

// Split breaks text of SplitThreshold runes or more in two at the whitespace
// nearest to the middle, dropping that whitespace. Without whitespace it cuts
// one rune before the middle and drops nothing. removed is the dropped rune,
// if any.
func Split(text string) (first, second string, removed string, ok bool) {
	runes := []rune(text)
	n := len(runes)
	if n < SplitThreshold {
		return text, "", "", false
	}
	mid := n / 2

	at := -1
	for i, r := range runes {
		if !unicode.IsSpace(r) {
			continue
		}
		if at < 0 || abs(i-mid) < abs(at-mid) {
			at = i
		}
	}

	if at < 0 {
		at = mid - 1
		return string(runes[:at]), string(runes[at:]), "", true
	}
	return string(runes[:at]), string(runes[at+1:]), string(runes[at]), true
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Lines lays text out for the screen. Half-screen poses leave room for two
// lines; the others show the first line followed by an ellipsis.
func Lines(text string, halfScreen bool) []string {
	first, second, _, ok := Split(text)
	if !ok {
		return []string{text}
	}
	if halfScreen {
		return []string{first, second}
	}
	return []string{first + Ellipsis}
}
