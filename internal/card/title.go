package card

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
)

const (
	titleBase     = 18
	titleFontSize = 18
	tagFontSize   = 12
)

// Luogu name colors by rank tag
var nameColors = map[string]string{
	"Gray":    "#bbbbbb",
	"Blue":    "#0e90d2",
	"Green":   "#5eb95e",
	"Orange":  "#e67e22",
	"Red":     "#e74c3c",
	"Purple":  "#9d3dcf",
	"Cheater": "#ad8b00",
}

// NameColor maps a Luogu color tag to its hex color, Gray when unknown
func NameColor(color string) string {
	if hex, ok := nameColors[color]; ok {
		return hex
	}
	return nameColors["Gray"]
}

// ccfBadgeColor returns the tick color for a CCF level, empty below level 3
func ccfBadgeColor(level int) string {
	switch {
	case level >= 8:
		return "#ffc116"
	case level >= 6:
		return "#3498db"
	case level >= 3:
		return "#5eb95e"
	default:
		return ""
	}
}

// RenderNameTitle draws the title row: colored name, CCF tick, tag badge,
// suffix, and the caption right-aligned against width.
func RenderNameTitle(name, color string, ccfLevel int, suffix string, width int, caption, tag string) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	fill := NameColor(color)
	canvas.Text(0, titleBase, name, `class="title"`, fmt.Sprintf(`fill="%s"`, fill))
	x := TextWidth(name, titleFontSize) + 4

	if badge := ccfBadgeColor(ccfLevel); badge != "" {
		canvas.Circle(x+8, 12, 7, fmt.Sprintf(`fill="%s"`, badge))
		canvas.Path(fmt.Sprintf("M%d 12 l3 3 l5 -6", x+4), `fill="none"`, `stroke="#ffffff"`, `stroke-width="2"`)
		x += 20
	}

	if tag != "" {
		tagWidth := TextWidth(tag, tagFontSize) + 10
		canvas.Roundrect(x, 3, tagWidth, 18, 3, 3, fmt.Sprintf(`fill="%s"`, fill))
		canvas.Text(x+5, 16, tag, `class="tag"`)
		x += tagWidth + 4
	}

	canvas.Text(x, titleBase, suffix, `class="title"`)
	canvas.Text(width-2*PaddingX, titleBase, caption, `class="caption"`, `text-anchor="end"`)

	return buf.String()
}
