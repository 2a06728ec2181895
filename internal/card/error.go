package card

import (
	"bytes"

	svg "github.com/ajstarks/svgo"
)

// DefaultErrorWidth is the outer width of an error card
const DefaultErrorWidth = 360

const errorHeight = 30

// ErrorOptions configures RenderError
type ErrorOptions struct {
	Width    int // outer width, DefaultErrorWidth when zero
	DarkMode bool
}

// RenderError returns a compact card showing message instead of a chart
func RenderError(message string, opts ErrorOptions) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultErrorWidth
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Text(0, 20, message, `class="text"`)

	return Card{
		Width:     width - 2*PaddingX,
		Height:    errorHeight,
		HideTitle: true,
		DarkMode:  opts.DarkMode,
		Body:      buf.String(),
	}.Render()
}
