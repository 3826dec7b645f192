package match

import (
	"strings"
	"time"

	"hirelens/pkg/models"
)

// LocationScore returns 100 on case-insensitive exact equality, else 0.
// No partial credit: location strings come from a constrained picker on the
// platform, not free text, so a coarse equality check is acceptable.
func LocationScore(candidateLocation, jobLocation string) float64 {
	a := strings.ToLower(strings.TrimSpace(candidateLocation))
	b := strings.ToLower(strings.TrimSpace(jobLocation))
	if a == b {
		return 100
	}
	return 0
}

// SalaryInRange reports whether the candidate's expectation falls inside the
// posted range, bounds inclusive. A missing expectation is false, never an
// assumed match.
func SalaryInRange(salaryFrom, salaryTo float64, expected *float64) bool {
	if expected == nil {
		return false
	}
	return *expected >= salaryFrom && *expected <= salaryTo
}

// SalaryScore maps the in-range check onto the 0-100 scale used by the
// aggregator.
func SalaryScore(salaryFrom, salaryTo float64, expected *float64) float64 {
	if SalaryInRange(salaryFrom, salaryTo, expected) {
		return 100
	}
	return 0
}

// TotalExperienceYears sums the year span of each work-history entry, with
// open-ended entries counting to now. This is a naive calendar-year
// difference, not day-precise: an entry can be over- or under-counted by up
// to a year near year boundaries. Callers may depend on that rounding, so
// it is preserved as-is.
func TotalExperienceYears(history []models.WorkHistoryEntry) float64 {
	return totalExperienceYearsAt(history, time.Now())
}

func totalExperienceYearsAt(history []models.WorkHistoryEntry, now time.Time) float64 {
	var total float64
	for _, entry := range history {
		start, err := parseHistoryDate(entry.StartDate)
		if err != nil {
			continue
		}

		endYear := now.Year()
		if entry.EndDate != nil {
			end, err := parseHistoryDate(*entry.EndDate)
			if err != nil {
				continue
			}
			endYear = end.Year()
		}

		if span := endYear - start.Year(); span > 0 {
			total += float64(span)
		}
	}
	return total
}

// parseHistoryDate accepts the platform's date formats, most precise first.
func parseHistoryDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Parse(time.RFC3339, s)
}
