package dto

type GapAnalyzeRequest struct {
	UserSkills []string `json:"user_skills"`
	JobSkills  []string `json:"job_skills"`
}

type GapAnalyzeResponse struct {
	MatchingSkills  []string           `json:"matching_skills"`
	MissingSkills   []string           `json:"missing_skills"`
	ExtraSkills     []string           `json:"extra_skills"`
	Coverage        float64            `json:"coverage"`
	CoveragePercent float64            `json:"coverage_percent"`
	GapPriority     []string           `json:"gap_priority"`
	SkillImportance map[string]float64 `json:"skill_importance"`
	MatchingCount   int                `json:"matching_count"`
	MissingCount    int                `json:"missing_count"`
	TotalRequired   int                `json:"total_required"`
	Message         string             `json:"message,omitempty"`
}
