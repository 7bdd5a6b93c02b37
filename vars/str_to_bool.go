package vars

import "strings"

// StrToBool reports whether str is an affirmative word such as "yes" or "on".
// Anything else, including garbage, is false.
func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}
