package models

// AnalyzeMatchRequest is the request payload for a match analysis.
type AnalyzeMatchRequest struct {
	JobID         string `json:"job_id" validate:"required"`
	ApplicationID string `json:"application_id" validate:"required"`
}

// GenerateCoverLetterRequest asks for a drafted cover letter for an
// application. Tone is optional and defaults to "professional".
type GenerateCoverLetterRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	CandidateID string `json:"candidate_id" validate:"required"`
	Tone        string `json:"tone,omitempty" validate:"omitempty,oneof=professional friendly enthusiastic formal"`
}

// GenerateJobDescriptionRequest asks for a drafted job description from a
// short role outline.
type GenerateJobDescriptionRequest struct {
	Title       string   `json:"title" validate:"required"`
	CompanyName string   `json:"company_name" validate:"required"`
	Skills      []string `json:"skills,omitempty"`
	Outline     string   `json:"outline,omitempty"`
}
