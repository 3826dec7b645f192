package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DescriptionCleaner normalizes job description text before it is embedded
// in a prompt. Descriptions arrive from the platform as either plain text
// or HTML fragments; both are reduced to clean prose here.
type DescriptionCleaner struct {
	// Tags to remove completely
	removeTags []string
}

// NewDescriptionCleaner creates a new description cleaner instance
func NewDescriptionCleaner() *DescriptionCleaner {
	return &DescriptionCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"applet", "form", "input", "button", "select", "textarea",
			"nav", "header", "footer", "aside", "menu", "menuitem",
			"svg", "path", "g", "defs", "use", "symbol",
			"meta", "link", "title", "base",
		},
	}
}

// CleanDescription strips markup and boilerplate from a job description.
// Plain text passes through with whitespace normalization only.
func (dc *DescriptionCleaner) CleanDescription(description string) (string, error) {
	if !strings.Contains(description, "<") {
		return dc.cleanExtractedText(description), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return "", err
	}

	// Remove unwanted tags
	for _, tag := range dc.removeTags {
		doc.Find(tag).Remove()
	}

	var contentParts []string

	// Description-specific containers, common patterns on job boards
	descriptionSelectors := []string{
		"main", "[role='main']", "article",
		".job-description", ".job-detail", ".description", ".posting",
		"[data-testid*='description']", "[data-test*='description']",
	}

	for _, selector := range descriptionSelectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" && len(text) > 50 {
				contentParts = append(contentParts, text)
			}
		})
	}

	// No specific container found, fall back to body content
	if len(contentParts) == 0 {
		if bodyText := doc.Find("body").Text(); bodyText != "" {
			contentParts = append(contentParts, bodyText)
		}
	}

	combinedContent := strings.Join(contentParts, "\n\n")

	return dc.cleanExtractedText(combinedContent), nil
}

// cleanExtractedText cleans extracted text content
func (dc *DescriptionCleaner) cleanExtractedText(text string) string {
	// Remove excessive whitespace
	whitespaceRegex := regexp.MustCompile(`[ \t]+`)
	text = whitespaceRegex.ReplaceAllString(text, " ")

	// Remove excessive newlines
	newlineRegex := regexp.MustCompile(`\n{3,}`)
	text = newlineRegex.ReplaceAllString(text, "\n\n")

	// Clean up common unwanted patterns
	patterns := []string{
		`\bJavaScript\s+is\s+disabled\b.*?enabled\.`,
		`\bCookies?\s+are\s+disabled\b.*?enabled\.`,
		`\bPlease\s+enable\s+JavaScript\b.*?`,
		`\bThis\s+site\s+requires\s+JavaScript\b.*?`,
	}

	for _, pattern := range patterns {
		regex := regexp.MustCompile(pattern)
		text = regex.ReplaceAllString(text, "")
	}

	return strings.TrimSpace(text)
}

// EstimateTokens returns the approximate token count for the cleaned text
func (dc *DescriptionCleaner) EstimateTokens(text string) int {
	// Rough estimation: ~4 characters per token
	return len(text) / 4
}
