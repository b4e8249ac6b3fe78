package common

import "strings"

// HasAny reports whether s contains any of the substrings, ignoring case.
func HasAny(s string, subs ...string) bool {
	ls := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(ls, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
