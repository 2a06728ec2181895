package practice

import (
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/statcard/internal/card"
	"github.com/wonny/statcard/internal/external/luogu"
)

func sampleStats() luogu.Stats {
	return luogu.Stats{
		Name:     "kkksc03",
		Color:    "Purple",
		CCFLevel: 7,
		Passed:   [8]int{1, 2, 0, 0, 3, 0, 0, 0},
		Unpassed: 5,
		Tag:      "管理员",
	}
}

func TestChartData(t *testing.T) {
	rows := chartData(sampleStats())
	require.Len(t, rows, 9)

	wantLabels := []string{
		"未评定", "入门", "普及-", "普及/提高-", "普及+/提高",
		"提高+/省选-", "省选/NOI-", "NOI/NOI+/CTSC", "尝试过的题目",
	}
	wantData := []int{1, 2, 0, 0, 3, 0, 0, 0, 5}
	for i, row := range rows {
		assert.Equal(t, wantLabels[i], row.Label)
		assert.Equal(t, wantData[i], row.Data)
	}

	assert.Equal(t, "#bfbfbf", rows[0].Color)
	assert.Equal(t, "#0e1d69", rows[7].Color)
	assert.Equal(t, card.ChartDatum{Label: "尝试过的题目", Color: "#0101DF", Data: 5}, rows[8])
}

func TestBuildCard(t *testing.T) {
	c := buildCard(sampleStats(), Options{})

	assert.Equal(t, DefaultCardWidth-2*PaddingX, c.Width)
	assert.Equal(t, 9*30+10, c.Height)
	assert.False(t, c.HideTitle)
	assert.Contains(t, c.Title, "已通过: 6题")
	assert.Contains(t, c.Title, "的练习情况")
	assert.Contains(t, c.Body, "尝试过的题目")
}

func TestBuildCard_HeightIndependentOfWidth(t *testing.T) {
	for _, width := range []int{300, 400, 500, 800, 1920} {
		t.Run(strconv.Itoa(width), func(t *testing.T) {
			c := buildCard(sampleStats(), Options{CardWidth: width, HideTitle: true, DarkMode: true})
			assert.Equal(t, 280, c.Height)
			assert.Equal(t, width-50, c.Width)
			assert.True(t, c.HideTitle)
			assert.True(t, c.DarkMode)
		})
	}
}

func TestProgressWidth(t *testing.T) {
	tests := []struct {
		cardWidth int
		want      int
	}{
		{500, 300},
		{600, 400},
		{400, 200},
		{200, 0},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.cardWidth), func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressWidth(tt.cardWidth))
			assert.Equal(t, tt.cardWidth-2*25-90-60, ProgressWidth(tt.cardWidth))
		})
	}
}

func TestRenderSVG(t *testing.T) {
	markup := RenderSVG(sampleStats(), Options{CardWidth: 600})

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	root := doc.Find("svg")

	assert.Equal(t, "600", root.AttrOr("width", ""))
	assert.Equal(t, strconv.Itoa(280+2*card.PaddingY+card.TitleHeight), root.AttrOr("height", ""))

	tracks := root.Find("rect.track")
	require.Equal(t, 9, tracks.Length())
	assert.Equal(t, "400", tracks.First().AttrOr("width", ""))

	rows := root.ChildrenFiltered("g").Last().ChildrenFiltered("g")
	require.Equal(t, 9, rows.Length())
	last := rows.Last().Find("text")
	assert.Equal(t, "尝试过的题目", last.First().Text())
	assert.Equal(t, "5题", last.Last().Text())

	assert.Contains(t, root.Text(), "已通过: 6题")
	assert.Contains(t, root.Text(), "kkksc03")
}

func TestRenderSVG_HiddenInfo(t *testing.T) {
	stats := sampleStats()
	stats.HideInfo = true

	markup := RenderSVG(stats, Options{CardWidth: 800})
	assert.Equal(t, card.RenderError(HiddenMessage, card.ErrorOptions{Width: 360}), markup)
	assert.Contains(t, markup, HiddenMessage)
	assert.NotContains(t, markup, `class="track"`, "chart must not be drawn")
	assert.NotContains(t, markup, "kkksc03")
}

func TestRenderSVG_DefaultStats(t *testing.T) {
	markup := RenderSVG(luogu.DefaultStats(), Options{})
	assert.Contains(t, markup, "NULL")
	assert.Contains(t, markup, "已通过: 0题")
	assert.Equal(t, 9, strings.Count(markup, `class="track"`))
}

func TestRenderSVG_Deterministic(t *testing.T) {
	opts := Options{HideTitle: true, DarkMode: true, CardWidth: 720}
	assert.Equal(t, RenderSVG(sampleStats(), opts), RenderSVG(sampleStats(), opts))

	hidden := luogu.Stats{HideInfo: true}
	assert.Equal(t, RenderSVG(hidden, opts), RenderSVG(hidden, opts))
}
