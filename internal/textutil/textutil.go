// Package textutil holds small string-formatting helpers used by the
// parse package's error messages.
package textutil

import "strings"

// MakeTextList renders items as a human-readable English list, with an
// oxford comma once there are three or more entries.
func MakeTextList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}

	var sb strings.Builder
	for i, it := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i == len(items)-1 {
			sb.WriteString("and ")
		}
		sb.WriteString(it)
	}
	return sb.String()
}
