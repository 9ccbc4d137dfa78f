// Package stats reconciles per-platform competitive programming statistics
// into comparable series for charts and summary cards.
package stats

import "strings"

type Platform string

const (
	LeetCode   Platform = "LeetCode"
	CodeChef   Platform = "CodeChef"
	Codeforces Platform = "Codeforces"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{LeetCode, CodeChef, Codeforces}

// Key is the lower-case identifier used in upstream paths and query flags.
func (p Platform) Key() string {
	return strings.ToLower(string(p))
}

// EnabledPlatforms is the user's platform selection. A disabled platform is
// dropped from every merged series.
type EnabledPlatforms struct {
	LeetCode   bool `json:"leetcode"`
	CodeChef   bool `json:"codechef"`
	Codeforces bool `json:"codeforces"`
}

func AllPlatforms() EnabledPlatforms {
	return EnabledPlatforms{LeetCode: true, CodeChef: true, Codeforces: true}
}

func (e EnabledPlatforms) Enabled(p Platform) bool {
	switch p {
	case LeetCode:
		return e.LeetCode
	case CodeChef:
		return e.CodeChef
	case Codeforces:
		return e.Codeforces
	default:
		return false
	}
}

func filterEnabled[T any](items []T, enabled EnabledPlatforms, platformOf func(T) Platform) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if enabled.Enabled(platformOf(item)) {
			out = append(out, item)
		}
	}
	return out
}
