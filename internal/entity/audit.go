package entity

// AIAnalysis is the structured result of one website audit. It is
// ephemeral: embedded into the report email and a teaser for the caller,
// never persisted.
type AIAnalysis struct {
	Score         int           `json:"score"`
	Industry      string        `json:"industry"`
	Summary       string        `json:"summary"`
	Opportunities []Opportunity `json:"opportunities"`
}

type Opportunity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"` // High | Medium
}

// PageSpeedMetrics is the optional mobile performance section of an
// audit. A nil value means the scorer failed or timed out.
type PageSpeedMetrics struct {
	Performance int    `json:"performance"`
	FCP         string `json:"fcp"`
	LCP         string `json:"lcp"`
}
