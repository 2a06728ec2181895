package card

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
	"github.com/samber/lo"
)

// Chart row geometry
const (
	RowHeight   = 30
	barHeight   = 16
	barTop      = 4
	textBase    = 17
	valueMargin = 10
)

// ChartDatum is one labelled bar of a horizontal bar chart
type ChartDatum struct {
	Label string
	Color string
	Data  int
}

// RenderChart draws one row per datum: the label, a track of progressWidth,
// a bar scaled against the largest datum, and the value followed by unit.
func RenderChart(data []ChartDatum, labelWidth, progressWidth int, unit string) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	progressWidth = max(progressWidth, 0)
	maxValue := lo.Max(lo.Map(data, func(d ChartDatum, _ int) int { return d.Data }))

	for i, d := range data {
		canvas.Translate(0, i*RowHeight)

		canvas.Text(0, textBase, d.Label, `class="text"`)
		canvas.Roundrect(labelWidth, barTop, progressWidth, barHeight, 4, 4, `class="track"`)
		if w := barWidth(d.Data, maxValue, progressWidth); w > 0 {
			canvas.Roundrect(labelWidth, barTop, w, barHeight, 4, 4,
				fmt.Sprintf(`fill="%s"`, safeColor(d.Color, "#bfbfbf")))
		}
		canvas.Text(labelWidth+progressWidth+valueMargin, textBase, fmt.Sprintf("%d%s", d.Data, unit), `class="text"`)

		canvas.Gend()
	}

	return buf.String()
}

// barWidth scales value into [0, full]
func barWidth(value, maxValue, full int) int {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	return min(value, maxValue) * full / maxValue
}
