package utils

import "strings"

// FixedWidth truncates s to width characters, or pads it on the right with
// spaces up to width. Used for the legacy CHAR columns (mobile, password).
func FixedWidth(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
