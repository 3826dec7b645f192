package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hirelens/internal/config"
	"hirelens/internal/jsonrepair"
	"hirelens/internal/llm/processors"
	"hirelens/internal/logging"
	"hirelens/internal/store"
	"hirelens/pkg/models"
	"hirelens/pkg/utils"
)

// Generator is the generative-model dependency of the analyzer. Injected
// explicitly so tests can supply a stub instead of a live provider.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Analyzer orchestrates one candidate-job match analysis: fetch the
// records, extract keywords, run the deterministic skill match, ask the
// model for the full analysis, and aggregate everything into a MatchResult.
//
// Execution is sequential - the second model call embeds the first call's
// extracted keywords - and there is no retry loop here; retries are the
// caller's policy. The analyzer holds no mutable state, so concurrent
// analyses for different applications need no coordination.
type Analyzer struct {
	store     store.Store
	generator Generator
	cleaner   *processors.DescriptionCleaner
	cfg       *config.Config
	logger    logging.Logger
}

// NewAnalyzer creates a match analyzer with its collaborators injected.
func NewAnalyzer(cfg *config.Config, st store.Store, generator Generator) *Analyzer {
	return &Analyzer{
		store:     st,
		generator: generator,
		cleaner:   processors.NewDescriptionCleaner(),
		cfg:       cfg,
		logger:    logging.GetGlobalLogger(),
	}
}

// AnalyzeCandidateMatch runs the full analysis for one (job, application)
// pair. Any fetch failure or unrecoverable model-output failure aborts the
// whole operation with a typed error; no partial MatchResult is returned.
func (a *Analyzer) AnalyzeCandidateMatch(ctx context.Context, jobID, applicationID string) (*models.MatchResult, error) {
	startTime := time.Now()

	logger := a.logger.WithFields(map[string]interface{}{
		"job_id":         jobID,
		"application_id": applicationID,
	})
	logger.Info("Starting candidate match analysis")

	job, application, candidate, err := a.fetchRecords(ctx, jobID, applicationID)
	if err != nil {
		return nil, err
	}

	// Stage 1: keyword extraction from the job description.
	requirements, err := a.extractKeywords(ctx, job)
	if err != nil {
		return nil, &AnalysisError{Stage: StageKeywordExtraction, Cause: err}
	}

	// Deterministic skill match against the candidate's skills. The
	// posting's own structured skill list is merged with the extracted
	// technical keywords before matching.
	required := NormalizeSkills(append(append([]string{}, requirements.Technical...), job.SkillsRequired...))
	skillMatch := MatchSkills(required, candidate.Skills)

	experienceYears := TotalExperienceYears(candidate.WorkHistory)
	if experienceYears == 0 {
		// No usable work history: fall back to the legacy scalar.
		experienceYears = candidate.ExperienceYears
	}

	// Stage 2: full analysis, embedding the stage-1 outcome.
	payload, err := a.runFullAnalysis(ctx, job, candidate, required, skillMatch, experienceYears)
	if err != nil {
		return nil, &AnalysisError{Stage: StageFullAnalysis, Cause: err}
	}

	skillsScore := a.clampModelScore(logger, ScoreSkills, *payload.Scores.Skills)
	experienceScore := a.clampModelScore(logger, ScoreExperience, *payload.Scores.Experience)
	locationScore := LocationScore(candidate.Location, job.Location)
	salaryScore := SalaryScore(job.SalaryFrom, job.SalaryTo, candidate.ExpectedSalaryMin)

	agg := Aggregate(skillsScore, experienceScore, locationScore, salaryScore)

	result := &models.MatchResult{
		JobID:           job.ID,
		ApplicationID:   application.ID,
		OverallScore:    agg.Overall,
		SkillsScore:     skillsScore,
		ExperienceScore: experienceScore,
		LocationScore:   locationScore,
		SalaryScore:     salaryScore,
		ExtractedKeywords: models.ExtractedKeywords{
			JobRequirements: required,
			CandidateSkills: NormalizeSkills(candidate.Skills),
			MatchedSkills:   skillMatch.Matched,
			MissingSkills:   skillMatch.Missing,
		},
		SemanticMatch: models.SemanticMatch{
			Similarity:    payload.SemanticMatch.Similarity,
			RelatedSkills: payload.SemanticMatch.RelatedSkills,
			Reasoning:     payload.SemanticMatch.Reasoning,
		},
		MatchDetails: models.MatchDetails{
			WeightedScores: agg.Weighted,
		},
		Feedback:        payload.Feedback,
		Recommendations: emptyIfNil(payload.Recommendations),
		AnalyzedAt:      time.Now(),
	}

	logger.WithFields(map[string]interface{}{
		"overall_score":   result.OverallScore,
		"matched_skills":  len(result.ExtractedKeywords.MatchedSkills),
		"missing_skills":  len(result.ExtractedKeywords.MissingSkills),
		"processing_time": utils.FormatDuration(time.Since(startTime)),
	}).Info("Candidate match analysis completed")

	return result, nil
}

// fetchRecords loads the job, application, and candidate, translating the
// store's not-found sentinel into the typed NotFoundError for each record.
func (a *Analyzer) fetchRecords(ctx context.Context, jobID, applicationID string) (*models.JobPosting, *models.Application, *models.CandidateProfile, error) {
	job, err := a.store.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, nil, &NotFoundError{Which: RecordJob, ID: jobID}
		}
		return nil, nil, nil, fmt.Errorf("fetch job %s: %w", jobID, err)
	}

	application, err := a.store.GetApplication(ctx, applicationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, nil, &NotFoundError{Which: RecordApplication, ID: applicationID}
		}
		return nil, nil, nil, fmt.Errorf("fetch application %s: %w", applicationID, err)
	}

	candidate, err := a.store.GetCandidate(ctx, application.CandidateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, nil, &NotFoundError{Which: RecordCandidate, ID: application.CandidateID}
		}
		return nil, nil, nil, fmt.Errorf("fetch candidate %s: %w", application.CandidateID, err)
	}

	return job, application, candidate, nil
}

func (a *Analyzer) extractKeywords(ctx context.Context, job *models.JobPosting) (*models.JobRequirements, error) {
	description, err := a.cleaner.CleanDescription(job.Description)
	if err != nil {
		return nil, fmt.Errorf("clean job description: %w", err)
	}
	description = utils.TruncateString(description, a.cfg.Matcher.MaxDescriptionChars)

	response, err := a.generator.Generate(ctx, buildKeywordExtractionPrompt(job.Title, description))
	if err != nil {
		return nil, fmt.Errorf("keyword extraction call: %w", err)
	}

	var payload keywordPayload
	if err := jsonrepair.Unmarshal(response, &payload); err != nil {
		return nil, err
	}
	if err := validateKeywordPayload(&payload); err != nil {
		return nil, fmt.Errorf("keyword payload validation: %w", err)
	}

	return payload.toRequirements(), nil
}

func (a *Analyzer) runFullAnalysis(ctx context.Context, job *models.JobPosting, candidate *models.CandidateProfile, required []string, skillMatch SkillMatch, experienceYears float64) (*analysisPayload, error) {
	prompt := buildFullAnalysisPrompt(job, candidate, required, skillMatch, experienceYears)

	response, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("full analysis call: %w", err)
	}

	var payload analysisPayload
	if err := jsonrepair.Unmarshal(response, &payload); err != nil {
		return nil, err
	}
	if err := validateAnalysisPayload(&payload); err != nil {
		return nil, fmt.Errorf("analysis payload validation: %w", err)
	}

	return &payload, nil
}

// clampModelScore is the production safety net for a model score outside
// [0,100]: log it and clamp rather than fail the whole analysis.
func (a *Analyzer) clampModelScore(logger logging.Logger, name string, v float64) float64 {
	clamped := ClampScore(v)
	if clamped != v {
		logger.Warn("Model score out of range, clamped", map[string]interface{}{
			"score": name,
			"value": v,
		})
	}
	return clamped
}
