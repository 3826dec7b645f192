package processors

import (
	"strings"
	"testing"
)

func TestCleanDescriptionPlainText(t *testing.T) {
	cleaner := NewDescriptionCleaner()

	got, err := cleaner.CleanDescription("We are hiring   a backend\tengineer.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "We are hiring a backend engineer." {
		t.Fatalf("got %q", got)
	}
}

func TestCleanDescriptionStripsMarkup(t *testing.T) {
	cleaner := NewDescriptionCleaner()

	html := `<html><body>
		<script>trackVisitor();</script>
		<style>.hidden { display: none; }</style>
		<div class="job-description">We need a Go developer with five years of experience building distributed systems and APIs.</div>
	</body></html>`

	got, err := cleaner.CleanDescription(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(got, "trackVisitor") || strings.Contains(got, "display: none") {
		t.Fatalf("script or style content leaked: %q", got)
	}
	if !strings.Contains(got, "Go developer") {
		t.Fatalf("description text lost: %q", got)
	}
	if strings.Contains(got, "<div") {
		t.Fatalf("markup left in output: %q", got)
	}
}

func TestCleanDescriptionFallsBackToBody(t *testing.T) {
	cleaner := NewDescriptionCleaner()

	// No description-specific container, should still extract body text
	got, err := cleaner.CleanDescription(`<p>Short posting text.</p>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Short posting text.") {
		t.Fatalf("body fallback failed: %q", got)
	}
}

func TestEstimateTokens(t *testing.T) {
	cleaner := NewDescriptionCleaner()
	if got := cleaner.EstimateTokens(strings.Repeat("a", 400)); got != 100 {
		t.Fatalf("EstimateTokens = %d, want 100", got)
	}
}
