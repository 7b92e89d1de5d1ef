package production

import "fmt"

const baseViews = 25000

type multiplierSet struct {
	views    float64
	likes    float64
	shares   float64
	comments float64
}

var engagementMultipliers = map[string]multiplierSet{
	"youtube":   {views: 1.0, likes: 0.05, shares: 0.01, comments: 0.02},
	"instagram": {views: 0.8, likes: 0.08, shares: 0.02, comments: 0.03},
	"tiktok":    {views: 1.5, likes: 0.1, shares: 0.03, comments: 0.04},
}

// EstimateEngagement derives view/like/share/comment ranges from the platform
// multiplier table. Deterministic and local; no generation call involved.
// Unrecognized platforms use the youtube multipliers.
func EstimateEngagement(platform string) Engagement {
	m, ok := engagementMultipliers[platform]
	if !ok {
		m = engagementMultipliers["youtube"]
	}

	retention := "70-85%"
	if platform == "youtube" {
		retention = "65-80%"
	}

	return Engagement{
		Views:         estimateRange(m.views),
		Likes:         estimateRange(m.likes),
		Shares:        estimateRange(m.shares),
		Comments:      estimateRange(m.comments),
		RetentionRate: retention,
	}
}

func estimateRange(multiplier float64) string {
	low := int(baseViews * multiplier * 0.6)
	high := int(baseViews * multiplier * 1.5)
	return fmt.Sprintf("%d-%d", low, high)
}
