package luogu

import (
	"context"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

// successCode is the only envelope code Luogu uses for a readable profile
const successCode = 200

// FetchStats fetches and normalizes the practice statistics of a user.
//
// Transport failures (dial errors, timeouts, non-2xx responses) are returned
// as errors. Everything the provider reports inside a readable response,
// including "user not found" and private profiles, is folded into the
// returned Stats and never produces an error.
// ⭐ SSOT: Luogu 연습 데이터 호출은 이 함수에서만
func (c *Client) FetchStats(ctx context.Context, id int) (Stats, error) {
	if id <= 0 {
		return Stats{}, fmt.Errorf("%w: %d", ErrInvalidUserID, id)
	}

	body, err := c.httpClient.GetBytes(ctx, c.UserURL(id))
	if err != nil {
		return Stats{}, fmt.Errorf("fetch luogu user %d: %w", id, err)
	}

	stats, ok := ParseStats(body)
	log := c.logger.WithFields(map[string]interface{}{
		"user_id":   id,
		"hide_info": stats.HideInfo,
	})
	if !ok {
		log.WithField("code", gjson.GetBytes(body, "code").Raw).Warn("Luogu returned non-success code")
		return stats, nil
	}

	log.WithField("passed", stats.PassedSum()).Debug("Fetched luogu stats")
	return stats, nil
}

// ParseStats normalizes a Luogu user envelope into Stats.
// ok is false when the envelope is not a success response, in which case
// the default record is returned.
func ParseStats(body []byte) (stats Stats, ok bool) {
	stats = DefaultStats()

	if !gjson.ValidBytes(body) {
		return stats, false
	}
	root := gjson.ParseBytes(body)

	code := root.Get("code")
	if code.Type != gjson.Number || code.Num != successCode {
		return stats, false
	}

	data := root.Get("currentData")
	user := data.Get("user")

	stats.Name = stringOr(user.Get("name"), AnonymousName)
	stats.Tag = stringOr(user.Get("badge"), "")
	stats.Color = stringOr(user.Get("color"), DefaultColor)
	stats.CCFLevel = ccfLevel(user.Get("ccfLevel"))

	passed := data.Get("passedProblems")
	if !passed.IsArray() || len(passed.Array()) == 0 {
		// Luogu sends no solved list for privacy-protected users.
		// A user with zero solves looks exactly the same.
		stats.HideInfo = true
		return stats, true
	}

	passed.ForEach(func(_, problem gjson.Result) bool {
		if tier, ok := difficulty(problem.Get("difficulty")); ok {
			stats.Passed[tier]++
		}
		return true
	})

	if submitted := data.Get("submittedProblems"); submitted.IsArray() {
		stats.Unpassed = max(len(submitted.Array()), 0)
	}

	return stats, true
}

// stringOr returns the value when it is a non-empty JSON string
func stringOr(v gjson.Result, fallback string) string {
	if v.Type == gjson.String && v.Str != "" {
		return v.Str
	}
	return fallback
}

// ccfLevel bounds the value before converting so huge numbers cannot wrap negative
func ccfLevel(v gjson.Result) int {
	if v.Type != gjson.Number || v.Num <= 0 || v.Num > math.MaxInt32 {
		return 0
	}
	return int(v.Num)
}

// difficulty accepts only integral numbers inside the tier range
func difficulty(v gjson.Result) (int, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	tier := int(v.Num)
	if float64(tier) != v.Num || tier < 0 || tier >= TierCount {
		return 0, false
	}
	return tier, true
}
