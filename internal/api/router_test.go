package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/statcard/internal/api/handlers"
	"github.com/wonny/statcard/internal/external/luogu"
	"github.com/wonny/statcard/internal/practice"
	"github.com/wonny/statcard/pkg/config"
	"github.com/wonny/statcard/pkg/logger"
)

type fakeFetcher struct {
	stats luogu.Stats
	err   error
	calls []int
}

func (f *fakeFetcher) FetchStats(ctx context.Context, id int) (luogu.Stats, error) {
	f.calls = append(f.calls, id)
	return f.stats, f.err
}

var testCardConfig = config.CardConfig{DefaultWidth: 500, MinWidth: 400, MaxWidth: 1920}

func newTestRouter(fetcher handlers.StatsFetcher) http.Handler {
	return NewRouter(handlers.NewPracticeHandler(fetcher, testCardConfig, logger.Nop()), logger.Nop())
}

func serve(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func svgWidth(t *testing.T, body string) string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc.Find("svg").AttrOr("width", "")
}

func TestHealth(t *testing.T) {
	rec := serve(t, newTestRouter(&fakeFetcher{}), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestPracticeCard(t *testing.T) {
	stats := luogu.Stats{Name: "tester", Color: "Blue", Passed: [8]int{0, 3}, Unpassed: 2}
	fetcher := &fakeFetcher{stats: stats}

	rec := serve(t, newTestRouter(fetcher), "/api/practice?id=42&dark_mode&hide_title=false")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, []int{42}, fetcher.calls)
	assert.Equal(t, practice.RenderSVG(stats, practice.Options{DarkMode: true, CardWidth: 500}), rec.Body.String())
}

func TestPracticeCard_WidthClamp(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"default", "", "500"},
		{"in range", "&card_width=640", "640"},
		{"too small", "&card_width=100", "400"},
		{"too large", "&card_width=5000", "1920"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newTestRouter(&fakeFetcher{stats: luogu.DefaultStats()}), "/api/practice?id=1"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, svgWidth(t, rec.Body.String()))
		})
	}
}

func TestPracticeCard_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing id", ""},
		{"non numeric id", "?id=abc"},
		{"zero id", "?id=0"},
		{"negative id", "?id=-5"},
		{"bad width", "?id=1&card_width=wide"},
		{"negative width", "?id=1&card_width=-1"},
		{"bad flag", "?id=1&dark_mode=maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{}
			rec := serve(t, newTestRouter(fetcher), "/api/practice"+tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), handlers.MsgInvalidQuery)
			assert.Empty(t, fetcher.calls)
		})
	}
}

func TestPracticeCard_TransportFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("dial tcp: connection refused")}
	rec := serve(t, newTestRouter(fetcher), "/api/practice?id=1")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), handlers.MsgFetchFailed)
}

func TestPracticeCard_HiddenProfile(t *testing.T) {
	fetcher := &fakeFetcher{stats: luogu.Stats{Name: "secret", HideInfo: true}}
	rec := serve(t, newTestRouter(fetcher), "/api/practice?id=1&card_width=900")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), practice.HiddenMessage)
	assert.Equal(t, "360", svgWidth(t, rec.Body.String()))
}

func TestPracticeCard_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&fakeFetcher{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/practice?id=1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := recoveryMiddleware(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
