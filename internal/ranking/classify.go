package ranking

import "github.com/jonathan/resume-screener/internal/types"

// Lower bounds of the recommendation bands on the 0-10 scale. Each bound is inclusive.
const (
	strongMatchMin   = 8.0
	goodMatchMin     = 6.5
	moderateMatchMin = 5.0
	weakMatchMin     = 3.0
)

// Classify maps an overall score to its recommendation. NaN maps to NO_MATCH.
func Classify(score float64) types.Recommendation {
	switch {
	case score >= strongMatchMin:
		return types.StrongMatch
	case score >= goodMatchMin:
		return types.GoodMatch
	case score >= moderateMatchMin:
		return types.ModerateMatch
	case score >= weakMatchMin:
		return types.WeakMatch
	default:
		return types.NoMatch
	}
}
