package practice

import (
	"fmt"

	"github.com/wonny/statcard/internal/card"
	"github.com/wonny/statcard/internal/external/luogu"
)

// Layout constants of the practice card
const (
	DefaultCardWidth = 500
	PaddingX         = 25
	LabelWidth       = 90
	ValueWidth       = 60 // room for the "N题" annotation right of each bar
	RowHeight        = 30
	HiddenCardWidth  = 360
)

// HiddenMessage is shown instead of a chart for privacy-protected users
const HiddenMessage = "用户开启了「完全隐私保护」，获取数据失败"

const (
	unitSuffix  = "题"
	titleSuffix = "的练习情况"
)

// Options controls card rendering. The zero value renders a 500px light card.
type Options struct {
	HideTitle bool
	DarkMode  bool
	CardWidth int
}

type tier struct {
	label string
	color string
}

// tiers follows Luogu difficulty order; index i labels Stats.Passed[i]
var tiers = [luogu.TierCount]tier{
	{"未评定", "#bfbfbf"},
	{"入门", "#fe4c61"},
	{"普及-", "#f39c11"},
	{"普及/提高-", "#ffc116"},
	{"普及+/提高", "#52c41a"},
	{"提高+/省选-", "#3498db"},
	{"省选/NOI-", "#9d3dcf"},
	{"NOI/NOI+/CTSC", "#0e1d69"},
}

var attempted = tier{"尝试过的题目", "#0101DF"}

// RenderSVG renders the practice card of stats
func RenderSVG(stats luogu.Stats, opts Options) string {
	if stats.HideInfo {
		return card.RenderError(HiddenMessage, card.ErrorOptions{Width: HiddenCardWidth})
	}
	return buildCard(stats, opts).Render()
}

func buildCard(stats luogu.Stats, opts Options) card.Card {
	cardWidth := opts.CardWidth
	if cardWidth <= 0 {
		cardWidth = DefaultCardWidth
	}

	rows := chartData(stats)
	body := card.RenderChart(rows, LabelWidth, ProgressWidth(cardWidth), unitSuffix)
	title := card.RenderNameTitle(
		stats.Name,
		stats.Color,
		stats.CCFLevel,
		titleSuffix,
		cardWidth,
		fmt.Sprintf("已通过: %d%s", stats.PassedSum(), unitSuffix),
		stats.Tag,
	)

	return card.Card{
		Width:     cardWidth - 2*PaddingX,
		Height:    len(rows)*RowHeight + 10,
		HideTitle: opts.HideTitle,
		DarkMode:  opts.DarkMode,
		Title:     title,
		Body:      body,
	}
}

// ProgressWidth is the bar track width for a card of cardWidth
func ProgressWidth(cardWidth int) int {
	return cardWidth - 2*PaddingX - LabelWidth - ValueWidth
}

// chartData returns the eight tier rows followed by the attempted row
func chartData(stats luogu.Stats) []card.ChartDatum {
	rows := make([]card.ChartDatum, 0, len(tiers)+1)
	for i, t := range tiers {
		rows = append(rows, card.ChartDatum{Label: t.label, Color: t.color, Data: stats.Passed[i]})
	}
	return append(rows, card.ChartDatum{Label: attempted.label, Color: attempted.color, Data: stats.Unpassed})
}

// TierLabels returns the difficulty tier labels in Stats.Passed order
func TierLabels() []string {
	labels := make([]string, len(tiers))
	for i, t := range tiers {
		labels[i] = t.label
	}
	return labels
}

// AttemptedLabel is the label of the attempted-but-unsolved row
func AttemptedLabel() string {
	return attempted.label
}
