package request_models

// RecommendRequest is the kiosk intent payload. Multi-value fields arrive as
// lists and are comma-joined before rendering, mirroring the historical corpus.
type RecommendRequest struct {
	Region             string   `json:"region" binding:"required"`
	Categories         []string `json:"categories" binding:"required,min=1"`
	Gender             string   `json:"gender" binding:"required"`
	Age                string   `json:"age" binding:"required"`
	Days               int      `json:"days" binding:"required,min=1"`
	CompanionRelations []string `json:"companion_relations" binding:"required,min=1"`
	CompanionAgeGroups []string `json:"companion_age_groups" binding:"required,min=1"`
}
