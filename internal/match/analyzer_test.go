package match

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"hirelens/internal/config"
	"hirelens/internal/store"
	"hirelens/pkg/models"
)

// stubStore serves fixed records; a nil record reports not found.
type stubStore struct {
	job         *models.JobPosting
	application *models.Application
	candidate   *models.CandidateProfile
}

func (s *stubStore) GetJob(ctx context.Context, id string) (*models.JobPosting, error) {
	if s.job == nil {
		return nil, store.ErrNotFound
	}
	return s.job, nil
}

func (s *stubStore) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	if s.application == nil {
		return nil, store.ErrNotFound
	}
	return s.application, nil
}

func (s *stubStore) GetCandidate(ctx context.Context, id string) (*models.CandidateProfile, error) {
	if s.candidate == nil {
		return nil, store.ErrNotFound
	}
	return s.candidate, nil
}

// stubGenerator replays scripted responses in order.
type stubGenerator struct {
	responses []string
	calls     int
	err       error
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	if g.calls >= len(g.responses) {
		return "", errors.New("unexpected generator call")
	}
	resp := g.responses[g.calls]
	g.calls++
	return resp, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Matcher.MaxDescriptionChars = 12000
	cfg.Matcher.AnalysisTimeout = 2 * time.Minute
	return cfg
}

func testRecords() *stubStore {
	expected := 90000.0
	return &stubStore{
		job: &models.JobPosting{
			ID:             "job-1",
			Title:          "Backend Engineer",
			CompanyName:    "Acme",
			Location:       "Berlin",
			SalaryFrom:     80000,
			SalaryTo:       120000,
			SkillsRequired: []string{"sql"},
			Description:    "We are looking for a backend engineer with Python and SQL experience.",
		},
		application: &models.Application{
			ID:          "app-1",
			JobID:       "job-1",
			CandidateID: "cand-1",
		},
		candidate: &models.CandidateProfile{
			ID:                "cand-1",
			Name:              "Alex",
			Skills:            []string{"Python", "Go"},
			Location:          "berlin",
			ExpectedSalaryMin: &expected,
			WorkHistory: []models.WorkHistoryEntry{
				{StartDate: "2019-01-01", EndDate: strPtr("2024-01-01")},
			},
		},
	}
}

func strPtr(s string) *string { return &s }

const keywordResponse = `{
  "technical": ["Python", "SQL"],
  "soft": ["communication"],
  "industry": [],
  "experience": ["5+ years backend"],
  "education": [],
  "culture": []
}`

const analysisResponse = "```json\n" + `{
  "scores": {"skills": 75, "experience": 60},
  "semantic_match": {
    "similarity": 0.8,
    "related_skills": ["postgresql"],
    "reasoning": "Strong overlap on core backend skills."
  },
  "keyword_analysis": {"matched": ["python"], "missing": ["sql"]},
  "feedback": ["Good backend foundation."],
  "recommendations": ["Brush up on SQL."]
}` + "\n```"

func TestAnalyzeCandidateMatchSuccess(t *testing.T) {
	gen := &stubGenerator{responses: []string{keywordResponse, analysisResponse}}
	analyzer := NewAnalyzer(testConfig(), testRecords(), gen)

	result, err := analyzer.AnalyzeCandidateMatch(context.Background(), "job-1", "app-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.JobID != "job-1" || result.ApplicationID != "app-1" {
		t.Fatalf("result ids = %s/%s", result.JobID, result.ApplicationID)
	}

	if result.SkillsScore != 75 || result.ExperienceScore != 60 {
		t.Fatalf("model scores = %v/%v, want 75/60", result.SkillsScore, result.ExperienceScore)
	}
	if result.LocationScore != 100 {
		t.Fatalf("location score = %v, want 100 for case-insensitive match", result.LocationScore)
	}
	if result.SalaryScore != 100 {
		t.Fatalf("salary score = %v, want 100 for in-range expectation", result.SalaryScore)
	}

	// 75*0.30 + 60*0.40 + 100*0.20 + 100*0.10
	if math.Abs(result.OverallScore-76.5) > 1e-9 {
		t.Fatalf("overall = %v, want 76.5", result.OverallScore)
	}

	if !reflect.DeepEqual(result.ExtractedKeywords.JobRequirements, []string{"python", "sql"}) {
		t.Fatalf("job requirements = %v", result.ExtractedKeywords.JobRequirements)
	}
	if !reflect.DeepEqual(result.ExtractedKeywords.MatchedSkills, []string{"python"}) {
		t.Fatalf("matched = %v", result.ExtractedKeywords.MatchedSkills)
	}
	if !reflect.DeepEqual(result.ExtractedKeywords.MissingSkills, []string{"sql"}) {
		t.Fatalf("missing = %v", result.ExtractedKeywords.MissingSkills)
	}

	if result.SemanticMatch.Similarity != 0.8 {
		t.Fatalf("similarity = %v", result.SemanticMatch.Similarity)
	}
	if len(result.Feedback) != 1 || len(result.Recommendations) != 1 {
		t.Fatalf("feedback/recommendations = %v / %v", result.Feedback, result.Recommendations)
	}

	var weightedSum float64
	for _, v := range result.MatchDetails.WeightedScores {
		weightedSum += v
	}
	if math.Abs(weightedSum-result.OverallScore) > 1e-9 {
		t.Fatalf("weighted sum %v != overall %v", weightedSum, result.OverallScore)
	}

	if gen.calls != 2 {
		t.Fatalf("expected 2 model calls, got %d", gen.calls)
	}
}

func TestAnalyzeCandidateMatchJobNotFound(t *testing.T) {
	st := testRecords()
	st.job = nil
	analyzer := NewAnalyzer(testConfig(), st, &stubGenerator{})

	_, err := analyzer.AnalyzeCandidateMatch(context.Background(), "job-x", "app-1")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Which != RecordJob {
		t.Fatalf("Which = %s, want %s", notFound.Which, RecordJob)
	}
}

func TestAnalyzeCandidateMatchApplicationNotFound(t *testing.T) {
	st := testRecords()
	st.application = nil
	analyzer := NewAnalyzer(testConfig(), st, &stubGenerator{})

	_, err := analyzer.AnalyzeCandidateMatch(context.Background(), "job-1", "app-x")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Which != RecordApplication {
		t.Fatalf("Which = %s, want %s", notFound.Which, RecordApplication)
	}
}

func TestAnalyzeCandidateMatchCandidateNotFound(t *testing.T) {
	st := testRecords()
	st.candidate = nil
	analyzer := NewAnalyzer(testConfig(), st, &stubGenerator{})

	_, err := analyzer.AnalyzeCandidateMatch(context.Background(), "job-1", "app-1")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Which != RecordCandidate {
		t.Fatalf("Which = %s, want %s", notFound.Which, RecordCandidate)
	}
}

func TestAnalyzeCandidateMatchKeywordStageFailure(t *testing.T) {
	gen := &stubGenerator{responses: []string{"I could not process this job posting, sorry."}}
	analyzer := NewAnalyzer(testConfig(), testRecords(), gen)

	_, err := analyzer.AnalyzeCandidateMatch(context.Background(), "job-1", "app-1")

	var analysisErr *AnalysisError
	if !errors.As(err, &analysisErr) {
		t.Fatalf("expected AnalysisError, got %v", err)
	}
	if analysisErr.Stage != StageKeywordExtraction {
		t.Fatalf("Stage = %s, want %s", analysisErr.Stage, StageKeywordExtraction)
	}
}

func TestAnalyzeCandidateMatchEmptyExtractionSucceeds(t *testing.T) {
	// A description with no recognizable requirements is not a parse
	// failure: the analysis continues and the keyword match is simply empty.
	emptyExtraction := `{"technical": [], "soft": [], "industry": [], "experience": [], "education": [], "culture": []}`
	gen := &stubGenerator{responses: []string{emptyExtraction, analysisResponse}}
	st := testRecords()
	st.job.SkillsRequired = nil
	analyzer := NewAnalyzer(testConfig(), st, gen)

	result, err := analyzer.AnalyzeCandidateMatch(context.Background(), "job-1", "app-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.ExtractedKeywords.JobRequirements) != 0 {
		t.Fatalf("job requirements = %v, want none", result.ExtractedKeywords.JobRequirements)
	}
	if len(result.ExtractedKeywords.MatchedSkills) != 0 || len(result.ExtractedKeywords.MissingSkills) != 0 {
		t.Fatalf("keyword match = %v / %v, want empty", result.ExtractedKeywords.MatchedSkills, result.ExtractedKeywords.MissingSkills)
	}
	if gen.calls != 2 {
		t.Fatalf("expected 2 model calls, got %d", gen.calls)
	}
}

func TestAnalyzeCandidateMatchAnalysisStageFailure(t *testing.T) {
	// Second response omits the required scores block entirely
	gen := &stubGenerator{responses: []string{keywordResponse, `{"semantic_match": {"similarity": 0.5}}`}}
	analyzer := NewAnalyzer(testConfig(), testRecords(), gen)

	_, err := analyzer.AnalyzeCandidateMatch(context.Background(), "job-1", "app-1")

	var analysisErr *AnalysisError
	if !errors.As(err, &analysisErr) {
		t.Fatalf("expected AnalysisError, got %v", err)
	}
	if analysisErr.Stage != StageFullAnalysis {
		t.Fatalf("Stage = %s, want %s", analysisErr.Stage, StageFullAnalysis)
	}
}

func TestAnalyzeCandidateMatchClampsModelScores(t *testing.T) {
	outOfRange := "```json\n" + `{
  "scores": {"skills": 150, "experience": -10},
  "semantic_match": {"similarity": 0.5, "related_skills": [], "reasoning": ""},
  "keyword_analysis": {"matched": [], "missing": []},
  "feedback": [],
  "recommendations": []
}` + "\n```"

	gen := &stubGenerator{responses: []string{keywordResponse, outOfRange}}
	analyzer := NewAnalyzer(testConfig(), testRecords(), gen)

	result, err := analyzer.AnalyzeCandidateMatch(context.Background(), "job-1", "app-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SkillsScore != 100 {
		t.Fatalf("skills score = %v, want clamped 100", result.SkillsScore)
	}
	if result.ExperienceScore != 0 {
		t.Fatalf("experience score = %v, want clamped 0", result.ExperienceScore)
	}
}

func TestAnalyzeCandidateMatchGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider unavailable")}
	analyzer := NewAnalyzer(testConfig(), testRecords(), gen)

	_, err := analyzer.AnalyzeCandidateMatch(context.Background(), "job-1", "app-1")

	var analysisErr *AnalysisError
	if !errors.As(err, &analysisErr) {
		t.Fatalf("expected AnalysisError, got %v", err)
	}
	if analysisErr.Stage != StageKeywordExtraction {
		t.Fatalf("Stage = %s, want %s", analysisErr.Stage, StageKeywordExtraction)
	}
}
