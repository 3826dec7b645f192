package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hirelens/internal/config"
	"hirelens/internal/store"
	"hirelens/pkg/models"
)

type stubStore struct {
	job       *models.JobPosting
	candidate *models.CandidateProfile
}

func (s *stubStore) GetJob(ctx context.Context, id string) (*models.JobPosting, error) {
	if s.job == nil {
		return nil, store.ErrNotFound
	}
	return s.job, nil
}

func (s *stubStore) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	return nil, store.ErrNotFound
}

func (s *stubStore) GetCandidate(ctx context.Context, id string) (*models.CandidateProfile, error) {
	if s.candidate == nil {
		return nil, store.ErrNotFound
	}
	return s.candidate, nil
}

type stubGenerator struct {
	response string
	err      error
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.response, g.err
}

func testStore() *stubStore {
	return &stubStore{
		job: &models.JobPosting{
			ID:          "job-1",
			Title:       "Data Engineer",
			CompanyName: "Acme",
			Location:    "Remote",
		},
		candidate: &models.CandidateProfile{
			ID:              "cand-1",
			Name:            "Sam",
			Skills:          []string{"python", "airflow", "sql", "dbt", "spark"},
			ExperienceYears: 6,
		},
	}
}

func coverLetterRequest() *models.GenerateCoverLetterRequest {
	return &models.GenerateCoverLetterRequest{
		JobID:       "job-1",
		CandidateID: "cand-1",
		Tone:        "professional",
	}
}

func TestGenerateCoverLetterParsesModelOutput(t *testing.T) {
	gen := &stubGenerator{response: `{
		"subject": "Application for Data Engineer",
		"body": "Dear team, I would like to apply.",
		"highlights": ["python", "airflow"]
	}`}
	svc := NewService(&config.Config{}, testStore(), gen)

	letter, fallback, err := svc.GenerateCoverLetter(context.Background(), coverLetterRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fallback {
		t.Fatal("expected parsed output, got fallback")
	}
	if letter.Subject != "Application for Data Engineer" {
		t.Fatalf("subject = %q", letter.Subject)
	}
	if len(letter.Highlights) != 2 {
		t.Fatalf("highlights = %v", letter.Highlights)
	}
}

func TestGenerateCoverLetterFallsBackOnGarbage(t *testing.T) {
	gen := &stubGenerator{response: "I'm sorry, I can't produce a letter right now."}
	svc := NewService(&config.Config{}, testStore(), gen)

	letter, fallback, err := svc.GenerateCoverLetter(context.Background(), coverLetterRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fallback {
		t.Fatal("expected fallback draft")
	}

	// The fallback is fully populated from the records
	if letter.Subject == "" || letter.Body == "" {
		t.Fatalf("fallback draft incomplete: %+v", letter)
	}
	if !strings.Contains(letter.Body, "Data Engineer") {
		t.Fatalf("fallback body does not mention the role: %q", letter.Body)
	}
	if len(letter.Highlights) == 0 || len(letter.Highlights) > 4 {
		t.Fatalf("fallback highlights = %v", letter.Highlights)
	}
}

func TestGenerateCoverLetterJobNotFound(t *testing.T) {
	st := testStore()
	st.job = nil
	svc := NewService(&config.Config{}, st, &stubGenerator{})

	_, _, err := svc.GenerateCoverLetter(context.Background(), coverLetterRequest())
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGenerateCoverLetterGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	svc := NewService(&config.Config{}, testStore(), gen)

	_, _, err := svc.GenerateCoverLetter(context.Background(), coverLetterRequest())
	if err == nil {
		t.Fatal("expected error when the provider fails outright")
	}
}

func TestGenerateJobDescriptionParsesModelOutput(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + `{
		"summary": "Acme is hiring a Data Engineer.",
		"responsibilities": ["Build pipelines"],
		"requirements": ["python", "sql"],
		"benefits": ["Remote work"]
	}` + "\n```"}
	svc := NewService(&config.Config{}, testStore(), gen)

	req := &models.GenerateJobDescriptionRequest{
		Title:       "Data Engineer",
		CompanyName: "Acme",
		Skills:      []string{"python", "sql"},
	}

	desc, fallback, err := svc.GenerateJobDescription(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fallback {
		t.Fatal("expected parsed output, got fallback")
	}
	if desc.Summary != "Acme is hiring a Data Engineer." {
		t.Fatalf("summary = %q", desc.Summary)
	}
}

func TestGenerateJobDescriptionFallsBackOnGarbage(t *testing.T) {
	gen := &stubGenerator{response: "no json here"}
	svc := NewService(&config.Config{}, testStore(), gen)

	req := &models.GenerateJobDescriptionRequest{
		Title:       "Data Engineer",
		CompanyName: "Acme",
		Skills:      []string{"python", "sql"},
	}

	desc, fallback, err := svc.GenerateJobDescription(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fallback {
		t.Fatal("expected fallback draft")
	}
	if desc.Summary == "" || len(desc.Requirements) != 2 {
		t.Fatalf("fallback draft incomplete: %+v", desc)
	}
}
