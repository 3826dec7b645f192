package match

import "strings"

// SkillMatch is the outcome of comparing required skills against the skills
// a candidate possesses. Matched and Missing hold normalized strings, are
// disjoint, and together cover the normalized, deduplicated required set.
type SkillMatch struct {
	Matched []string
	Missing []string
	Score   float64
}

// MatchSkills compares required against possessed using set semantics on
// case/whitespace-normalized forms. Score is the percentage of required
// skills matched; an empty required list scores 0, not NaN, because a job
// posting can legitimately yield no extracted technical keywords.
func MatchSkills(required, possessed []string) SkillMatch {
	requiredNorm := normalizeSet(required)
	possessedSet := make(map[string]struct{}, len(possessed))
	for _, s := range possessed {
		possessedSet[normalizeSkill(s)] = struct{}{}
	}

	result := SkillMatch{
		Matched: []string{},
		Missing: []string{},
	}

	for _, skill := range requiredNorm {
		if _, ok := possessedSet[skill]; ok {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}

	if len(requiredNorm) > 0 {
		result.Score = float64(len(result.Matched)) / float64(len(requiredNorm)) * 100
	}

	return result
}

// NormalizeSkills returns the normalized, deduplicated form of a skill list,
// preserving first-seen order.
func NormalizeSkills(skills []string) []string {
	return normalizeSet(skills)
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeSet(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		norm := normalizeSkill(s)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}
