package match

import (
	"math"
	"testing"
)

const scoreTolerance = 1e-9

func TestWeightsSumToOne(t *testing.T) {
	sum := WeightExperience + WeightSkills + WeightLocation + WeightSalary
	if math.Abs(sum-1.0) > scoreTolerance {
		t.Fatalf("weights sum to %v, want 1.0", sum)
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name                                 string
		skills, experience, location, salary float64
		want                                 float64
	}{
		{"all perfect", 100, 100, 100, 100, 100},
		{"all zero", 0, 0, 0, 0, 0},
		{"mixed", 80, 50, 100, 0, 64},
		{"experience dominates", 0, 100, 0, 0, 40},
		{"salary alone", 0, 0, 0, 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := Aggregate(tt.skills, tt.experience, tt.location, tt.salary)

			if math.Abs(agg.Overall-tt.want) > scoreTolerance {
				t.Fatalf("Overall = %v, want %v", agg.Overall, tt.want)
			}
		})
	}
}

func TestAggregateWeightedBreakdown(t *testing.T) {
	agg := Aggregate(80, 50, 100, 0)

	want := map[string]float64{
		ScoreSkills:     24,
		ScoreExperience: 20,
		ScoreLocation:   20,
		ScoreSalary:     0,
	}

	for name, expected := range want {
		if got := agg.Weighted[name]; math.Abs(got-expected) > scoreTolerance {
			t.Fatalf("Weighted[%s] = %v, want %v", name, got, expected)
		}
	}

	var sum float64
	for _, v := range agg.Weighted {
		sum += v
	}
	if math.Abs(sum-agg.Overall) > scoreTolerance {
		t.Fatalf("weighted contributions sum to %v, overall is %v", sum, agg.Overall)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{150, 100},
	}

	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Fatalf("ClampScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
