package match

import (
	"testing"
	"time"

	"hirelens/pkg/models"
)

func TestLocationScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		job       string
		want      float64
	}{
		{"exact match", "Berlin", "Berlin", 100},
		{"case insensitive", "berlin", "BERLIN", 100},
		{"surrounding whitespace", " Berlin ", "Berlin", 100},
		{"different cities", "Berlin", "Munich", 0},
		{"partial overlap is not a match", "Berlin, Germany", "Berlin", 0},
		{"equal strings always match, empty included", "", "", 100},
		{"whitespace only equals empty", "  ", "", 100},
		{"candidate empty", "", "Berlin", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocationScore(tt.candidate, tt.job); got != tt.want {
				t.Fatalf("LocationScore(%q, %q) = %v, want %v", tt.candidate, tt.job, got, tt.want)
			}
		})
	}
}

func TestSalaryInRange(t *testing.T) {
	expected := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		from, to float64
		expected *float64
		want     bool
	}{
		{"inside range", 80000, 120000, expected(90000), true},
		{"lower bound inclusive", 80000, 120000, expected(80000), true},
		{"upper bound inclusive", 80000, 120000, expected(120000), true},
		{"below range", 80000, 120000, expected(79999), false},
		{"above range", 80000, 120000, expected(120001), false},
		{"no expectation", 80000, 120000, nil, false},
		{"degenerate range", 100000, 100000, expected(100000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SalaryInRange(tt.from, tt.to, tt.expected); got != tt.want {
				t.Fatalf("SalaryInRange(%v, %v, %v) = %v, want %v", tt.from, tt.to, tt.expected, got, tt.want)
			}

			wantScore := 0.0
			if tt.want {
				wantScore = 100
			}
			if got := SalaryScore(tt.from, tt.to, tt.expected); got != wantScore {
				t.Fatalf("SalaryScore = %v, want %v", got, wantScore)
			}
		})
	}
}

func TestTotalExperienceYears(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	end := func(s string) *string { return &s }

	tests := []struct {
		name    string
		history []models.WorkHistoryEntry
		want    float64
	}{
		{
			"closed entries sum by calendar year",
			[]models.WorkHistoryEntry{
				{StartDate: "2018-01-15", EndDate: end("2020-03-01")},
				{StartDate: "2020-03-01", EndDate: end("2023-07-01")},
			},
			5,
		},
		{
			"open-ended entry counts to now",
			[]models.WorkHistoryEntry{
				{StartDate: "2022-01-01"},
			},
			3,
		},
		{
			"same-year entry contributes nothing",
			[]models.WorkHistoryEntry{
				{StartDate: "2020-02-01", EndDate: end("2020-11-30")},
			},
			0,
		},
		{
			"unparseable dates are skipped",
			[]models.WorkHistoryEntry{
				{StartDate: "not-a-date", EndDate: end("2020-01-01")},
				{StartDate: "2019-01-01", EndDate: end("garbage")},
				{StartDate: "2019-01-01", EndDate: end("2021-01-01")},
			},
			2,
		},
		{
			"year-only and year-month formats",
			[]models.WorkHistoryEntry{
				{StartDate: "2015", EndDate: end("2018")},
				{StartDate: "2018-06", EndDate: end("2019-06")},
			},
			4,
		},
		{
			"empty history",
			nil,
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := totalExperienceYearsAt(tt.history, now); got != tt.want {
				t.Fatalf("totalExperienceYearsAt = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseHistoryDateFormats(t *testing.T) {
	for _, input := range []string{"2020-05-04", "2020-05", "2020", "2020-05-04T10:30:00Z"} {
		parsed, err := parseHistoryDate(input)
		if err != nil {
			t.Fatalf("parseHistoryDate(%q) failed: %v", input, err)
		}
		if parsed.Year() != 2020 {
			t.Fatalf("parseHistoryDate(%q) year = %d, want 2020", input, parsed.Year())
		}
	}

	if _, err := parseHistoryDate("May 2020"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
