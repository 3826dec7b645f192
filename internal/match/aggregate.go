package match

// Sub-score weights. These are compile-time constants summing to 1.0; the
// invariant is pinned by a unit test rather than checked at runtime.
const (
	WeightExperience = 0.40
	WeightSkills     = 0.30
	WeightLocation   = 0.20
	WeightSalary     = 0.10
)

// Names of the weighted contributions in Aggregation.Weighted.
const (
	ScoreExperience = "experience"
	ScoreSkills     = "skills"
	ScoreLocation   = "location"
	ScoreSalary     = "salary"
)

// Aggregation is the combined outcome of the four sub-scores.
type Aggregation struct {
	Weighted map[string]float64
	Overall  float64
}

// Aggregate combines the four sub-scores into the overall match score.
// Precondition: every input is already clamped to [0,100] by its producer;
// the aggregator trusts its callers and does not re-clamp.
func Aggregate(skills, experience, location, salary float64) Aggregation {
	weighted := map[string]float64{
		ScoreExperience: experience * WeightExperience,
		ScoreSkills:     skills * WeightSkills,
		ScoreLocation:   location * WeightLocation,
		ScoreSalary:     salary * WeightSalary,
	}

	var overall float64
	for _, v := range weighted {
		overall += v
	}

	return Aggregation{
		Weighted: weighted,
		Overall:  overall,
	}
}

// ClampScore forces a sub-score into [0,100]. Model-provided scores pass
// through this after validation: an out-of-range value is a model bug, and
// in production the safety net is clamp-and-log rather than a panic.
func ClampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
