// Package generation produces LLM-drafted recruiting content: cover letters
// for candidates and job descriptions for recruiters. Unlike match analysis,
// generation degrades gracefully: when the model's output cannot be parsed,
// the service substitutes a fully populated default draft and flags it as a
// fallback instead of failing the request.
package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hirelens/internal/config"
	"hirelens/internal/jsonrepair"
	"hirelens/internal/logging"
	"hirelens/internal/store"
	"hirelens/pkg/models"
)

// Generator is the minimal text generation dependency for this service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service drafts cover letters and job descriptions.
type Service struct {
	store     store.Store
	generator Generator
	config    *config.Config
	logger    logging.Logger
}

// NewService creates a generation service.
func NewService(cfg *config.Config, st store.Store, generator Generator) *Service {
	return &Service{
		store:     st,
		generator: generator,
		config:    cfg,
		logger:    logging.GetGlobalLogger(),
	}
}

// GenerateCoverLetter drafts a cover letter for the candidate applying to the
// job. The returned bool is true when the default draft was substituted
// because the model output was unusable.
func (s *Service) GenerateCoverLetter(ctx context.Context, req *models.GenerateCoverLetterRequest) (*models.CoverLetter, bool, error) {
	startTime := time.Now()

	job, err := s.store.GetJob(ctx, req.JobID)
	if err != nil {
		return nil, false, fmt.Errorf("fetch job %s: %w", req.JobID, err)
	}
	candidate, err := s.store.GetCandidate(ctx, req.CandidateID)
	if err != nil {
		return nil, false, fmt.Errorf("fetch candidate %s: %w", req.CandidateID, err)
	}

	prompt := buildCoverLetterPrompt(job, candidate, req.Tone)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, false, fmt.Errorf("cover letter generation: %w", err)
	}

	var letter models.CoverLetter
	if err := jsonrepair.Unmarshal(raw, &letter); err != nil || strings.TrimSpace(letter.Body) == "" {
		s.logger.Warn("Cover letter output unparseable, using fallback draft", map[string]interface{}{
			"job_id":       req.JobID,
			"candidate_id": req.CandidateID,
		})
		return defaultCoverLetter(job, candidate), true, nil
	}

	if letter.Highlights == nil {
		letter.Highlights = []string{}
	}

	s.logger.Info("Cover letter generated", map[string]interface{}{
		"job_id":          req.JobID,
		"candidate_id":    req.CandidateID,
		"processing_time": time.Since(startTime).String(),
	})

	return &letter, false, nil
}

// GenerateJobDescription drafts a job description from a title, company and
// skill list. The returned bool is true when the default draft was
// substituted.
func (s *Service) GenerateJobDescription(ctx context.Context, req *models.GenerateJobDescriptionRequest) (*models.GeneratedJobDescription, bool, error) {
	startTime := time.Now()

	prompt := buildJobDescriptionPrompt(req)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, false, fmt.Errorf("job description generation: %w", err)
	}

	var desc models.GeneratedJobDescription
	if err := jsonrepair.Unmarshal(raw, &desc); err != nil || strings.TrimSpace(desc.Summary) == "" {
		s.logger.Warn("Job description output unparseable, using fallback draft", map[string]interface{}{
			"title":   req.Title,
			"company": req.CompanyName,
		})
		return defaultJobDescription(req), true, nil
	}

	if desc.Responsibilities == nil {
		desc.Responsibilities = []string{}
	}
	if desc.Requirements == nil {
		desc.Requirements = []string{}
	}
	if desc.Benefits == nil {
		desc.Benefits = []string{}
	}

	s.logger.Info("Job description generated", map[string]interface{}{
		"title":           req.Title,
		"processing_time": time.Since(startTime).String(),
	})

	return &desc, false, nil
}

// defaultCoverLetter is a serviceable draft built from the records alone,
// used when the model produced nothing usable.
func defaultCoverLetter(job *models.JobPosting, candidate *models.CandidateProfile) *models.CoverLetter {
	highlights := candidate.Skills
	if len(highlights) > 4 {
		highlights = highlights[:4]
	}
	if highlights == nil {
		highlights = []string{}
	}

	body := fmt.Sprintf(
		"Dear Hiring Team at %s,\n\n"+
			"I am writing to apply for the %s position. With %.1f years of relevant experience"+
			" and a background spanning %s, I believe I can contribute from day one.\n\n"+
			"I would welcome the chance to discuss how my experience fits your needs.\n\n"+
			"Kind regards,\n%s",
		job.CompanyName, job.Title, candidate.ExperienceYears,
		strings.Join(highlights, ", "), candidate.Name)

	return &models.CoverLetter{
		Subject:    fmt.Sprintf("Application for %s", job.Title),
		Body:       body,
		Highlights: highlights,
	}
}

func defaultJobDescription(req *models.GenerateJobDescriptionRequest) *models.GeneratedJobDescription {
	requirements := make([]string, 0, len(req.Skills))
	for _, skill := range req.Skills {
		requirements = append(requirements, fmt.Sprintf("Proficiency with %s", skill))
	}

	return &models.GeneratedJobDescription{
		Summary: fmt.Sprintf("%s is hiring a %s to join the team.", req.CompanyName, req.Title),
		Responsibilities: []string{
			fmt.Sprintf("Own day-to-day responsibilities of the %s role", req.Title),
			"Collaborate with the wider team to deliver on shared goals",
		},
		Requirements: requirements,
		Benefits:     []string{"Competitive compensation", "Flexible working arrangements"},
	}
}
