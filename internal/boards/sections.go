package boards

import (
	"regexp"
	"strings"
)

// Shared section-header keyword groups. Every extractor derives list fields
// from the description text with the same heuristic, so a board that never
// marks up its lists still yields usable requirements/responsibilities.
var (
	RequirementKeywords    = []string{"requirements", "qualifications", "what you need", "what we're looking for", "must have"}
	ResponsibilityKeywords = []string{"responsibilities", "duties", "what you'll do", "what you will do", "the role"}
	BenefitKeywords        = []string{"benefits", "perks", "what we offer", "compensation and benefits"}
)

const (
	// minItemLength filters out stray fragments left by bullet splitting.
	minItemLength = 10
	// maxSectionItems caps each extracted list.
	maxSectionItems = 10
)

var bulletSplitter = regexp.MustCompile(`[\n\r]+|[•▪◦‣·]|(?:^|\s)[-*]\s`)

// sectionHeaderPattern matches any known section header, used to bound one
// section's block at the start of the next.
var sectionHeaderPattern = regexp.MustCompile(`(?i)\b(requirements|qualifications|responsibilities|duties|benefits|perks|about us|about the role|what you need|what you'll do|what we offer)\b\s*:?`)

// ExtractSection pulls list items for one section out of free description
// text. It splits the text at the first keyword match, bounds the block at
// the next section header, splits on newlines and bullet characters, keeps
// lines longer than minItemLength, and caps the result at maxSectionItems.
func ExtractSection(description string, keywords []string) []string {
	if description == "" || len(keywords) == 0 {
		return nil
	}

	pattern, err := regexp.Compile(`(?i)\b(` + strings.Join(quoteAll(keywords), "|") + `)\b\s*:?`)
	if err != nil {
		return nil
	}

	loc := pattern.FindStringIndex(description)
	if loc == nil {
		return nil
	}

	block := description[loc[1]:]

	// Stop at the next section header so one section's items don't bleed
	// into the next.
	if next := sectionHeaderPattern.FindStringIndex(block); next != nil && next[0] > 0 {
		block = block[:next[0]]
	}

	var items []string
	for _, part := range bulletSplitter.Split(block, -1) {
		item := strings.TrimSpace(strings.Trim(part, "-*• \t"))
		if len(item) > minItemLength {
			items = append(items, item)
		}
		if len(items) >= maxSectionItems {
			break
		}
	}

	return items
}

func quoteAll(keywords []string) []string {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return quoted
}
