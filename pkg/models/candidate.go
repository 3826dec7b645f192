package models

// WorkHistoryEntry is a single job span in a candidate's work history.
// EndDate is nil for the candidate's current position.
type WorkHistoryEntry struct {
	Title     string  `json:"title"`
	Company   string  `json:"company"`
	StartDate string  `json:"start_date"`         // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"` // nil = ongoing
}

// EducationEntry is a single education record for a candidate.
type EducationEntry struct {
	Degree       string `json:"degree"`
	Institution  string `json:"institution"`
	Year         int    `json:"year"`
	FieldOfStudy string `json:"field_of_study"`
}

// CandidateProfile is the engine's view of a candidate. ExperienceYears is
// the legacy scalar the platform stores; work history is the authoritative
// record and is summed independently during analysis.
type CandidateProfile struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Skills            []string           `json:"skills"`
	ExperienceYears   float64            `json:"experience_years"`
	WorkHistory       []WorkHistoryEntry `json:"work_history"`
	Education         []EducationEntry   `json:"education"`
	Location          string             `json:"location"`
	ExpectedSalaryMin *float64           `json:"expected_salary_min,omitempty"`
	ExpectedSalaryMax *float64           `json:"expected_salary_max,omitempty"`
	Summary           string             `json:"summary,omitempty"`
}
