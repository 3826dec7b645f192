package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hirelens/internal/config"
	"hirelens/internal/logging"
	"hirelens/pkg/models"
	"hirelens/pkg/utils"
)

// APIClient implements Store against the recruiting platform's REST API.
type APIClient struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	logger     logging.Logger
}

// NewAPIClient creates a platform API client from configuration.
func NewAPIClient(cfg *config.Config) *APIClient {
	return &APIClient{
		baseURL:  cfg.Platform.BaseURL,
		apiToken: cfg.Platform.APIToken,
		httpClient: &http.Client{
			Timeout: cfg.Platform.Timeout,
		},
		logger: logging.GetGlobalLogger(),
	}
}

// jobDTO is the platform's wire shape for a job post. Every optional field
// is a pointer here; the mapping below resolves them all so the rest of the
// engine deals only in total values.
type jobDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	CompanyName     *string   `json:"companyName"`
	Location        *string   `json:"location"`
	SalaryFrom      *float64  `json:"salaryFrom"`
	SalaryTo        *float64  `json:"salaryTo"`
	ExperienceYears *float64  `json:"requiredExperienceYears"`
	SkillsRequired  []string  `json:"skillsRequired"`
	Description     *string   `json:"description"`
	PostedAt        time.Time `json:"postedAt"`
}

type applicationDTO struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	CandidateID string    `json:"candidateId"`
	Status      *string   `json:"status"`
	CoverLetter *string   `json:"coverLetter"`
	SubmittedAt time.Time `json:"createdAt"`
}

type candidateDTO struct {
	ID                string   `json:"id"`
	Name              *string  `json:"name"`
	Skills            []string `json:"skills"`
	ExperienceYears   *float64 `json:"experience"`
	Location          *string  `json:"location"`
	ExpectedSalaryMin *float64 `json:"expectedSalaryMin"`
	ExpectedSalaryMax *float64 `json:"expectedSalaryMax"`
	Summary           *string  `json:"summary"`
	WorkHistory       []struct {
		Title     string  `json:"title"`
		Company   string  `json:"company"`
		StartDate string  `json:"startDate"`
		EndDate   *string `json:"endDate"`
	} `json:"workHistory"`
	Education []struct {
		Degree       string `json:"degree"`
		Institution  string `json:"institution"`
		Year         int    `json:"year"`
		FieldOfStudy string `json:"fieldOfStudy"`
	} `json:"education"`
}

// GetJob fetches a job post by id.
func (c *APIClient) GetJob(ctx context.Context, id string) (*models.JobPosting, error) {
	var dto jobDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/jobs/%s", id), &dto); err != nil {
		return nil, err
	}
	return mapJob(&dto), nil
}

// GetApplication fetches an application by id.
func (c *APIClient) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	var dto applicationDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/applications/%s", id), &dto); err != nil {
		return nil, err
	}
	return mapApplication(&dto), nil
}

// GetCandidate fetches a candidate profile by id.
func (c *APIClient) GetCandidate(ctx context.Context, id string) (*models.CandidateProfile, error) {
	var dto candidateDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/candidates/%s", id), &dto); err != nil {
		return nil, err
	}
	return mapCandidate(&dto), nil
}

func (c *APIClient) getJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build platform request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("platform request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Platform API request failed", map[string]interface{}{
			"path":   path,
			"status": resp.StatusCode,
			"body":   string(body),
		})
		return utils.NewPlatformError(fmt.Sprintf("%s returned status %d", path, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode platform response %s: %w", path, err)
	}
	return nil
}

func mapJob(dto *jobDTO) *models.JobPosting {
	return &models.JobPosting{
		ID:                      dto.ID,
		Title:                   dto.Title,
		CompanyName:             stringOrEmpty(dto.CompanyName),
		Location:                stringOrEmpty(dto.Location),
		SalaryFrom:              floatOrZero(dto.SalaryFrom),
		SalaryTo:                floatOrZero(dto.SalaryTo),
		RequiredExperienceYears: floatOrZero(dto.ExperienceYears),
		SkillsRequired:          emptyIfNil(dto.SkillsRequired),
		Description:             stringOrEmpty(dto.Description),
		PostedAt:                dto.PostedAt,
	}
}

func mapApplication(dto *applicationDTO) *models.Application {
	return &models.Application{
		ID:          dto.ID,
		JobID:       dto.JobID,
		CandidateID: dto.CandidateID,
		Status:      stringOrEmpty(dto.Status),
		CoverLetter: stringOrEmpty(dto.CoverLetter),
		SubmittedAt: dto.SubmittedAt,
	}
}

func mapCandidate(dto *candidateDTO) *models.CandidateProfile {
	history := make([]models.WorkHistoryEntry, 0, len(dto.WorkHistory))
	for _, w := range dto.WorkHistory {
		history = append(history, models.WorkHistoryEntry{
			Title:     w.Title,
			Company:   w.Company,
			StartDate: w.StartDate,
			EndDate:   w.EndDate,
		})
	}

	education := make([]models.EducationEntry, 0, len(dto.Education))
	for _, e := range dto.Education {
		education = append(education, models.EducationEntry{
			Degree:       e.Degree,
			Institution:  e.Institution,
			Year:         e.Year,
			FieldOfStudy: e.FieldOfStudy,
		})
	}

	return &models.CandidateProfile{
		ID:                dto.ID,
		Name:              stringOrEmpty(dto.Name),
		Skills:            emptyIfNil(dto.Skills),
		ExperienceYears:   floatOrZero(dto.ExperienceYears),
		WorkHistory:       history,
		Education:         education,
		Location:          stringOrEmpty(dto.Location),
		ExpectedSalaryMin: dto.ExpectedSalaryMin,
		ExpectedSalaryMax: dto.ExpectedSalaryMax,
		Summary:           stringOrEmpty(dto.Summary),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
