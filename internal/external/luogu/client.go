package luogu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wonny/statcard/pkg/config"
	"github.com/wonny/statcard/pkg/httputil"
	"github.com/wonny/statcard/pkg/logger"
)

// ErrInvalidUserID is returned for non-positive user ids
var ErrInvalidUserID = errors.New("luogu user id must be positive")

// Client handles communication with Luogu
// ⭐ SSOT: Luogu 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new Luogu client.
// Luogu blocks non-browser traffic, so the configured browser User-Agent
// is attached to every request.
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	httpClient := httputil.New(cfg, log).
		WithHeader("User-Agent", userAgent(cfg.Luogu.UserAgent))

	baseURL := cfg.Luogu.BaseURL
	if baseURL == "" {
		baseURL = "https://www.luogu.com.cn"
	}

	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func userAgent(configured string) string {
	if configured == "" {
		return config.DefaultUserAgent
	}
	return configured
}

// UserURL builds the content-only profile URL for a user
func (c *Client) UserURL(id int) string {
	return fmt.Sprintf("%s/user/%d?_contentOnly", c.baseURL, id)
}
