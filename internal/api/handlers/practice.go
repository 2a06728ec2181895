package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/wonny/statcard/internal/card"
	"github.com/wonny/statcard/internal/external/luogu"
	"github.com/wonny/statcard/internal/practice"
	"github.com/wonny/statcard/pkg/config"
	"github.com/wonny/statcard/pkg/logger"
)

// Messages shown on error cards
const (
	MsgInvalidQuery = "参数错误：请提供正确的用户 id"
	MsgFetchFailed  = "获取数据失败，请稍后再试"
)

// StatsFetcher loads practice statistics of a Luogu user
type StatsFetcher interface {
	FetchStats(ctx context.Context, id int) (luogu.Stats, error)
}

// PracticeHandler serves the practice card
// ⭐ SSOT: 연습 카드 API 핸들러는 이 구조체에서만
type PracticeHandler struct {
	fetcher  StatsFetcher
	cardCfg  config.CardConfig
	validate *validator.Validate
	logger   *logger.Logger
}

// NewPracticeHandler creates a new practice card handler
func NewPracticeHandler(fetcher StatsFetcher, cardCfg config.CardConfig, log *logger.Logger) *PracticeHandler {
	return &PracticeHandler{
		fetcher:  fetcher,
		cardCfg:  cardCfg,
		validate: validator.New(),
		logger:   log,
	}
}

type practiceQuery struct {
	ID        int `validate:"required,min=1"`
	CardWidth int `validate:"min=0"`
	HideTitle bool
	DarkMode  bool
}

// GetPracticeCard renders the practice card of a user
// GET /api/practice?id=1&hide_title&dark_mode&card_width=500
func (h *PracticeHandler) GetPracticeCard(w http.ResponseWriter, r *http.Request) {
	query, err := h.parseQuery(r.URL.Query())
	if err != nil {
		h.logger.WithError(err).WithField("query", r.URL.RawQuery).Debug("Invalid practice card query")
		respondSVG(w, http.StatusBadRequest, card.RenderError(MsgInvalidQuery, card.ErrorOptions{}))
		return
	}

	stats, err := h.fetcher.FetchStats(r.Context(), query.ID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", query.ID).Error("Failed to fetch luogu stats")
		respondSVG(w, http.StatusBadGateway, card.RenderError(MsgFetchFailed, card.ErrorOptions{DarkMode: query.DarkMode}))
		return
	}

	respondSVG(w, http.StatusOK, practice.RenderSVG(stats, practice.Options{
		HideTitle: query.HideTitle,
		DarkMode:  query.DarkMode,
		CardWidth: h.clampWidth(query.CardWidth),
	}))
}

func (h *PracticeHandler) parseQuery(values url.Values) (practiceQuery, error) {
	var query practiceQuery
	var err error

	if query.ID, err = strconv.Atoi(values.Get("id")); err != nil {
		return query, err
	}
	if raw := values.Get("card_width"); raw != "" {
		if query.CardWidth, err = strconv.Atoi(raw); err != nil {
			return query, err
		}
	}
	if query.HideTitle, err = flag(values, "hide_title"); err != nil {
		return query, err
	}
	if query.DarkMode, err = flag(values, "dark_mode"); err != nil {
		return query, err
	}

	return query, h.validate.Struct(query)
}

// flag reads a boolean query parameter; presence without a value means true
func flag(values url.Values, key string) (bool, error) {
	if !values.Has(key) {
		return false, nil
	}
	raw := values.Get(key)
	if raw == "" {
		return true, nil
	}
	return strconv.ParseBool(raw)
}

func (h *PracticeHandler) clampWidth(width int) int {
	if width == 0 {
		return h.cardCfg.DefaultWidth
	}
	return min(max(width, h.cardCfg.MinWidth), h.cardCfg.MaxWidth)
}
