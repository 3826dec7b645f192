package models

import "time"

// JobPosting represents a job post as served by the recruiting platform API.
// The mapping from the platform's wire shape happens at the store boundary so
// the scoring code never has to null-check individual fields.
type JobPosting struct {
	ID                      string    `json:"id"`
	Title                   string    `json:"title"`
	CompanyName             string    `json:"company_name"`
	Location                string    `json:"location"`
	SalaryFrom              float64   `json:"salary_from"`
	SalaryTo                float64   `json:"salary_to"`
	RequiredExperienceYears float64   `json:"required_experience_years"`
	SkillsRequired          []string  `json:"skills_required"`
	Description             string    `json:"description"`
	PostedAt                time.Time `json:"posted_at"`
}

// JobRequirements holds the categorized requirement lists extracted from a
// job posting's free-text description. Computed fresh per match request and
// never cached: the extraction model is nondeterministic, so repeated calls
// for the same job may differ. That drift is accepted, not a bug.
type JobRequirements struct {
	Technical  []string `json:"technical"`
	Soft       []string `json:"soft"`
	Industry   []string `json:"industry"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Culture    []string `json:"culture"`
}

// Application links a candidate to a job posting.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	CandidateID string    `json:"candidate_id"`
	Status      string    `json:"status"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}
