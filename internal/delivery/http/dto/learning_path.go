package dto

type LearningPathRequest struct {
	UserSkills     []string `json:"user_skills"`
	JobSkills      []string `json:"job_skills"`
	MaxPhases      int      `json:"max_phases"`
	SkillsPerPhase int      `json:"skills_per_phase"`
}

type PhaseSkill struct {
	Skill       string  `json:"skill"`
	Importance  float64 `json:"importance"`
	ModelScore  float64 `json:"model_score"`
	FinalScore  float64 `json:"final_score"`
	Explanation string  `json:"explanation"`
}

type PhaseResponse struct {
	Phase         int          `json:"phase"`
	Title         string       `json:"title"`
	Skills        []PhaseSkill `json:"skills"`
	DurationWeeks int          `json:"duration_weeks"`
	Difficulty    string       `json:"difficulty"`
}

type LearningPathResponse struct {
	Phases        []PhaseResponse `json:"phases"`
	TotalWeeks    int             `json:"total_weeks"`
	Summary       string          `json:"summary"`
	ModelCoverage float64         `json:"model_coverage"`
}

type SequenceRequest struct {
	Skills []string `json:"skills"`
}

type SequenceResponse struct {
	Sequence []string `json:"sequence"`
}

type RoadmapPhaseResponse struct {
	Skills           []string          `json:"skills"`
	Weeks            int               `json:"weeks"`
	SkillWeeks       map[string]int    `json:"skill_weeks"`
	PrerequisitesMet bool              `json:"prerequisites_met"`
	Explanations     map[string]string `json:"explanations,omitempty"`
}

type RoadmapResponse struct {
	Phases        []RoadmapPhaseResponse `json:"phases"`
	TotalWeeks    int                    `json:"total_weeks"`
	TotalSkills   int                    `json:"total_skills"`
	Prerequisites map[string][]string    `json:"prerequisites"`
}
