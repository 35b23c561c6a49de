package dto

type RecommendationRequest struct {
	UserSkills []string `json:"user_skills"`
	TopN       int      `json:"top_n"`
}

type RecommendationItem struct {
	Skill                string   `json:"skill"`
	Score                float64  `json:"score"`
	Sources              []string `json:"sources"`
	TopSource            string   `json:"top_source"`
	Confidence           float64  `json:"confidence"`
	Lift                 float64  `json:"lift"`
	BasedOn              []string `json:"based_on"`
	AntecedentMatchRatio float64  `json:"antecedent_match_ratio"`
}

type RecommendationResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	RulesLoaded     int                  `json:"rules_loaded"`
	Message         string               `json:"message,omitempty"`
}
