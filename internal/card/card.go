// Package card draws SVG stat cards.
//
// Fragments produced by RenderChart and RenderNameTitle are plain SVG
// markup; Card places them into a complete document. All text is
// XML-escaped by the SVG writer, so provider supplied names and badges can
// be passed through unchanged.
package card

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
)

// Card frame geometry
const (
	PaddingX    = 25
	PaddingY    = 20
	TitleHeight = 30
)

// Card is the outer container combining a title region and a body region.
// Width and Height describe the inner drawing area; padding is added
// around it.
type Card struct {
	Width     int
	Height    int
	HideTitle bool
	DarkMode  bool
	Title     string
	Body      string
}

type palette struct {
	text       string
	caption    string
	background string
	border     string
	track      string
}

var (
	lightPalette = palette{
		text:       "#333333",
		caption:    "#666666",
		background: "#fffefe",
		border:     "#e4e2e2",
		track:      "#dddddd",
	}
	darkPalette = palette{
		text:       "#fffefe",
		caption:    "#c9d1d9",
		background: "#1f2937",
		border:     "#374151",
		track:      "#4b5563",
	}
)

// OuterSize returns the full document size including padding and title
func (c Card) OuterSize() (width, height int) {
	titleHeight := TitleHeight
	if c.HideTitle {
		titleHeight = 0
	}
	return c.Width + 2*PaddingX, c.Height + 2*PaddingY + titleHeight
}

// Render returns the complete SVG document
func (c Card) Render() string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	width, height := c.OuterSize()
	canvas.Start(width, height, fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height))
	fmt.Fprintf(&buf, "<style type=\"text/css\"><![CDATA[%s]]></style>\n", stylesheet(c.DarkMode))
	canvas.Roundrect(1, 1, width-2, height-2, 5, 5, `class="background"`)

	bodyOffset := PaddingY
	if !c.HideTitle {
		canvas.Translate(PaddingX, PaddingY)
		buf.WriteString(c.Title)
		canvas.Gend()
		bodyOffset += TitleHeight
	}

	canvas.Translate(PaddingX, bodyOffset)
	buf.WriteString(c.Body)
	canvas.Gend()

	canvas.End()
	return buf.String()
}

func stylesheet(darkMode bool) string {
	p := lightPalette
	if darkMode {
		p = darkPalette
	}

	const fonts = `'Segoe UI', Ubuntu, 'Microsoft YaHei', 'PingFang SC', sans-serif`
	return fmt.Sprintf(`
.text { font: 400 13px %[1]s; fill: %[2]s; }
.title { font: 600 18px %[1]s; fill: %[2]s; }
.caption { font: 400 13px %[1]s; fill: %[3]s; }
.tag { font: 400 12px %[1]s; fill: #ffffff; }
.background { fill: %[4]s; stroke: %[5]s; stroke-width: 1; }
.track { fill: %[6]s; }
`, fonts, p.text, p.caption, p.background, p.border, p.track)
}
