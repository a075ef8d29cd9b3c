package boards

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/market-intel/internal/types"
)

// MinDescriptionLength is the minimum length for a selector match to be
// accepted as the job description over a later fallback.
const MinDescriptionLength = 100

// Extractor pulls structured fields from a parsed job posting page.
type Extractor interface {
	Board() Board
	Extract(doc *goquery.Document, urlStr string) types.ScrapedJobData
}

// ForBoard returns the extractor for a board family. Every family shares the
// same candidate-selector walk; only the selector sets differ.
func ForBoard(board Board) Extractor {
	return &boardExtractor{board: board, selectors: selectorsFor(board)}
}

// ForURL detects the board and returns its extractor.
func ForURL(urlStr string) Extractor {
	return ForBoard(Detect(urlStr))
}

type boardExtractor struct {
	board     Board
	selectors selectorSet
}

func (e *boardExtractor) Board() Board { return e.board }

func (e *boardExtractor) Extract(doc *goquery.Document, urlStr string) types.ScrapedJobData {
	// Strip noise before reading any text.
	doc.Find("nav, footer, header, script, style, noscript, form, .cookie-banner").Remove()

	description := firstLongText(doc, e.selectors.description, MinDescriptionLength)
	if description == "" {
		description = cleanWhitespace(doc.Find("body").Text())
	}

	data := types.ScrapedJobData{
		Title:       firstText(doc, e.selectors.title),
		Company:     firstText(doc, e.selectors.company),
		Location:    firstText(doc, e.selectors.location),
		Salary:      firstText(doc, e.selectors.salary),
		Description: description,
		RawText:     cleanWhitespace(doc.Find("body").Text()),
		SourceBoard: string(e.board),
		URL:         urlStr,
	}

	data.Requirements = ExtractSection(description, RequirementKeywords)
	data.Responsibilities = ExtractSection(description, ResponsibilityKeywords)
	data.Benefits = ExtractSection(description, BenefitKeywords)

	return data
}

// firstText returns the first non-empty trimmed text among the candidates.
func firstText(doc *goquery.Document, candidates []string) string {
	for _, sel := range candidates {
		if s := doc.Find(sel); s.Length() > 0 {
			if text := strings.TrimSpace(s.First().Text()); text != "" {
				return text
			}
			// Meta tags carry their value in the content attribute.
			if content, ok := s.First().Attr("content"); ok && strings.TrimSpace(content) != "" {
				return strings.TrimSpace(content)
			}
		}
	}
	return ""
}

// firstLongText returns the first candidate whose text exceeds minLen,
// falling back to the longest text found among all candidates.
func firstLongText(doc *goquery.Document, candidates []string, minLen int) string {
	longest := ""
	for _, sel := range candidates {
		s := doc.Find(sel)
		if s.Length() == 0 {
			continue
		}
		text := cleanWhitespace(s.First().Text())
		if len(text) > minLen {
			return text
		}
		if len(text) > len(longest) {
			longest = text
		}
	}
	return longest
}

// cleanWhitespace trims each line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
