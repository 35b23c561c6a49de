package dto

type JobListingResponse struct {
	Title          string   `json:"title"`
	RequiredSkills []string `json:"required_skills"`
}
