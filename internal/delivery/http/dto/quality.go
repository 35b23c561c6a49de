package dto

type MetricStatsResponse struct {
	Min    float64 `json:"min"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
	Std    float64 `json:"std"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

type QualityDistributionResponse struct {
	HighConfidence   int `json:"high_confidence"`
	MediumConfidence int `json:"medium_confidence"`
	LowConfidence    int `json:"low_confidence"`
}

type CoverageResponse struct {
	UniqueAntecedents int `json:"unique_antecedents"`
	UniqueConsequents int `json:"unique_consequents"`
	TotalUniqueItems  int `json:"total_unique_items"`
}

type QualityReportResponse struct {
	Store        string                      `json:"store"`
	Status       string                      `json:"status"`
	TotalRules   int                         `json:"total_rules"`
	Support      MetricStatsResponse         `json:"support"`
	Confidence   MetricStatsResponse         `json:"confidence"`
	Lift         MetricStatsResponse         `json:"lift"`
	Distribution QualityDistributionResponse `json:"distribution"`
	StrongRules  int                         `json:"strong_rules"`
	Coverage     CoverageResponse            `json:"coverage"`
}

type ProductionGateResponse struct {
	Store    string   `json:"store"`
	Ready    bool     `json:"ready"`
	Warnings []string `json:"warnings"`
}
