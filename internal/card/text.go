package card

import (
	"regexp"

	"golang.org/x/text/width"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// TextWidth estimates the rendered width of s in pixels.
// Wide and fullwidth East Asian runes take a full em, the rest roughly 0.6em.
func TextWidth(s string, fontSize int) int {
	tenths := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			tenths += 10
		default:
			tenths += 6
		}
	}
	return tenths * fontSize / 10
}

// safeColor returns color when it is a hex color literal, otherwise fallback
func safeColor(color, fallback string) string {
	if hexColor.MatchString(color) {
		return color
	}
	return fallback
}
