package match

import (
	"reflect"
	"testing"
)

func TestMatchSkillsEmptyRequired(t *testing.T) {
	result := MatchSkills(nil, []string{"python", "go"})

	if result.Score != 0 {
		t.Fatalf("expected score 0 for empty required list, got %v", result.Score)
	}
	if len(result.Matched) != 0 || len(result.Missing) != 0 {
		t.Fatalf("expected empty matched/missing, got %v / %v", result.Matched, result.Missing)
	}
	if result.Matched == nil || result.Missing == nil {
		t.Fatal("matched and missing must be non-nil empty slices")
	}
}

func TestMatchSkillsCaseAndWhitespace(t *testing.T) {
	result := MatchSkills([]string{"Python", "  SQL  "}, []string{"python", "sql "})

	if result.Score != 100 {
		t.Fatalf("expected score 100, got %v", result.Score)
	}
	if !reflect.DeepEqual(result.Matched, []string{"python", "sql"}) {
		t.Fatalf("unexpected matched set: %v", result.Matched)
	}
}

func TestMatchSkillsPartial(t *testing.T) {
	result := MatchSkills([]string{"python", "sql", "kubernetes", "terraform"}, []string{"Python", "SQL"})

	if result.Score != 50 {
		t.Fatalf("expected score 50, got %v", result.Score)
	}
	if !reflect.DeepEqual(result.Matched, []string{"python", "sql"}) {
		t.Fatalf("unexpected matched: %v", result.Matched)
	}
	if !reflect.DeepEqual(result.Missing, []string{"kubernetes", "terraform"}) {
		t.Fatalf("unexpected missing: %v", result.Missing)
	}
}

func TestMatchSkillsDeduplicatesRequired(t *testing.T) {
	result := MatchSkills([]string{"Go", "go", "GO", "rust"}, []string{"go"})

	// Three spellings of the same skill count once
	if result.Score != 50 {
		t.Fatalf("expected score 50 after dedup, got %v", result.Score)
	}
}

func TestMatchSkillsPartition(t *testing.T) {
	required := []string{"python", "sql", "docker", "aws", "react"}
	possessed := []string{"SQL", "react", "java"}

	result := MatchSkills(required, possessed)

	// Matched and missing are disjoint and together cover required
	seen := make(map[string]int)
	for _, s := range result.Matched {
		seen[s]++
	}
	for _, s := range result.Missing {
		seen[s]++
	}
	if len(seen) != len(required) {
		t.Fatalf("partition does not cover required set: %v", seen)
	}
	for skill, count := range seen {
		if count != 1 {
			t.Fatalf("skill %q appears %d times across matched and missing", skill, count)
		}
	}
}

func TestMatchSkillsSuperset(t *testing.T) {
	result := MatchSkills([]string{"go", "sql"}, []string{"go", "sql", "python", "docker"})

	if result.Score != 100 {
		t.Fatalf("expected 100 for candidate superset, got %v", result.Score)
	}
	if len(result.Missing) != 0 {
		t.Fatalf("expected no missing skills, got %v", result.Missing)
	}
}

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills([]string{" Python ", "python", "", "  ", "SQL", "Go"})
	want := []string{"python", "sql", "go"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeSkills = %v, want %v", got, want)
	}
}
