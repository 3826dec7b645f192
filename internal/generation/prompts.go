package generation

import (
	"fmt"
	"strings"

	"hirelens/pkg/models"
	"hirelens/pkg/utils"
)

func buildCoverLetterPrompt(job *models.JobPosting, candidate *models.CandidateProfile, tone string) string {
	tone = utils.GetStringOrDefault(tone, "professional")

	return fmt.Sprintf(`You are a career writing assistant. Write a cover letter for the candidate below applying to the job below. Return it as a JSON object.

Return ONLY a valid JSON object with exactly these fields:

{
  "subject": "string - A short subject line for the application email",
  "body": "string - The full cover letter body, 3-4 paragraphs, no placeholders",
  "highlights": ["array of strings - 2-4 candidate strengths the letter emphasizes"]
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. Write in a %s tone
3. Reference the actual job title and company name
4. Ground every claim in the candidate profile, do not invent experience
5. Keep the body under 350 words

## JOB
Title: %s
Company: %s
Location: %s
Description: %s

## CANDIDATE
Name: %s
Skills: %s
Years of experience: %.1f
Summary: %s`,
		tone,
		job.Title, job.CompanyName, job.Location, job.Description,
		candidate.Name, strings.Join(candidate.Skills, ", "), candidate.ExperienceYears, candidate.Summary)
}

func buildJobDescriptionPrompt(req *models.GenerateJobDescriptionRequest) string {
	return fmt.Sprintf(`You are a recruiting content writer. Draft a job description for the role below and return it as a JSON object.

Return ONLY a valid JSON object with exactly these fields:

{
  "summary": "string - A 2-3 sentence role summary",
  "responsibilities": ["array of strings - Key responsibilities"],
  "requirements": ["array of strings - Required qualifications and skills"],
  "benefits": ["array of strings - Benefits and perks, generic if none given"]
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. Incorporate every listed skill into requirements
3. Follow the outline notes where given
4. If information is not found, use empty string "" for strings and empty array [] for arrays

## ROLE
Title: %s
Company: %s
Skills: %s
Outline notes: %s`,
		req.Title, req.CompanyName, strings.Join(req.Skills, ", "), req.Outline)
}
