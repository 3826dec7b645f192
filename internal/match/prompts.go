package match

import (
	"fmt"
	"strings"

	"hirelens/pkg/models"
)

// buildKeywordExtractionPrompt asks the model to turn a free-text job
// description into categorized requirement lists.
func buildKeywordExtractionPrompt(title, description string) string {
	return fmt.Sprintf(`You are a recruiting analyst. Extract the requirements from the job posting below and return them as a JSON object with exactly these fields:

{
  "technical": ["array of strings - technical skills, tools, languages, platforms"],
  "soft": ["array of strings - soft skills like communication, leadership"],
  "industry": ["array of strings - industry or domain knowledge"],
  "experience": ["array of strings - experience requirements, e.g. '5+ years backend'"],
  "education": ["array of strings - degrees or certifications"],
  "culture": ["array of strings - culture or work-style expectations"]
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. Use lowercase for every extracted keyword
3. Use an empty array [] for categories with nothing to extract
4. Keep each entry short - a skill name or a short phrase, not a sentence

JOB TITLE: %s

JOB DESCRIPTION:
%s`, title, description)
}

// buildFullAnalysisPrompt embeds the job, the candidate, and the
// deterministic skill-match outcome, and asks for the scored analysis.
func buildFullAnalysisPrompt(job *models.JobPosting, candidate *models.CandidateProfile, requirements []string, skillMatch SkillMatch, experienceYears float64) string {
	var sb strings.Builder

	sb.WriteString("You are an expert recruiter evaluating how well a candidate fits a job. Analyze the information below and return ONLY a JSON object.\n\n")

	sb.WriteString("## JOB\n")
	sb.WriteString(fmt.Sprintf("Title: %s\nCompany: %s\nLocation: %s\n", job.Title, job.CompanyName, job.Location))
	sb.WriteString(fmt.Sprintf("Required experience: %.0f years\n", job.RequiredExperienceYears))
	sb.WriteString(fmt.Sprintf("Required skills: %s\n\n", strings.Join(requirements, ", ")))

	sb.WriteString("## CANDIDATE\n")
	sb.WriteString(fmt.Sprintf("Location: %s\n", candidate.Location))
	sb.WriteString(fmt.Sprintf("Total experience: %.0f years\n", experienceYears))
	sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(candidate.Skills, ", ")))
	if candidate.Summary != "" {
		sb.WriteString(fmt.Sprintf("Summary: %s\n", candidate.Summary))
	}
	sb.WriteString("\n")

	sb.WriteString("## KEYWORD MATCH (computed, do not re-derive)\n")
	sb.WriteString(fmt.Sprintf("Matched skills: %s\n", strings.Join(skillMatch.Matched, ", ")))
	sb.WriteString(fmt.Sprintf("Missing skills: %s\n", strings.Join(skillMatch.Missing, ", ")))
	sb.WriteString(fmt.Sprintf("Keyword match score: %.1f\n\n", skillMatch.Score))

	sb.WriteString("Return a JSON object with exactly this structure:\n")
	sb.WriteString(`{
  "scores": {
    "skills": <number 0-100, skill fit considering related and transferable skills>,
    "experience": <number 0-100, experience fit against the required years and seniority>
  },
  "semantic_match": {
    "similarity": <number 0-1, conceptual overlap between candidate background and role>,
    "related_skills": ["candidate skills that are close substitutes for missing requirements"],
    "reasoning": "<one or two sentences>"
  },
  "keyword_analysis": {
    "matched": ["echo back the matched skills"],
    "missing": ["echo back the missing skills"]
  },
  "feedback": ["2-4 short observations about the fit"],
  "recommendations": ["2-4 short, actionable suggestions for the recruiter"]
}

Return ONLY the JSON object, no markdown, no explanation.`)

	return sb.String()
}
