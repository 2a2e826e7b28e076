package model

// popularityNorm scales raw like counts into roughly [0,1] for the catalog sizes we see.
const popularityNorm = 100000.0

// TrendingScore is the weighted raw popularity used by the trending view.
// It is a pure function of the engagement counters.
func TrendingScore(v Video) int {
	return v.Likes + 2*v.Comments + 5*v.Shares
}

// PopularityScore normalizes likes for use in personalized ranking.
func PopularityScore(v Video) float64 {
	return float64(v.Likes) / popularityNorm
}

// IsOrganic reports whether a video takes part in organic ranking.
func IsOrganic(v Video) bool {
	return !v.IsAd
}
