package ai_dto

type Recommendation struct {
	Type       string `json:"type"`
	TargetID   string `json:"target_id"`
	Reason     string `json:"reason"`
	Suggestion string `json:"suggestion"`
	Action     string `json:"action"`
}

type ReportResponse struct {
	GeneratedAt     string           `json:"generated_at"`
	Recommendations []Recommendation `json:"recommendations"`
}
