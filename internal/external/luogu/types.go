package luogu

import "github.com/samber/lo"

// TierCount is the number of Luogu difficulty tiers (未评定 .. NOI/NOI+/CTSC)
const TierCount = 8

// Fallback values used when the provider omits or withholds a field
const (
	DefaultName   = "NULL"
	DefaultColor  = "Gray"
	AnonymousName = "Luogu User"
)

// Stats is the normalized practice record of one Luogu user
type Stats struct {
	Name     string         `json:"name"`
	Color    string         `json:"color"`     // 이름 색상 등급 (Gray, Blue, ...)
	CCFLevel int            `json:"ccf_level"` // CCF 인증 레벨, 0 when absent
	Passed   [TierCount]int `json:"passed"`    // solved problems per difficulty tier
	Unpassed int            `json:"unpassed"`  // attempted but unsolved
	HideInfo bool           `json:"hide_info"` // provider withheld problem lists
	Tag      string         `json:"tag"`
}

// DefaultStats returns the record used when the provider reports a failure
func DefaultStats() Stats {
	return Stats{
		Name:  DefaultName,
		Color: DefaultColor,
	}
}

// PassedSum returns the number of solved problems across all tiers
func (s Stats) PassedSum() int {
	return lo.Sum(s.Passed[:])
}
