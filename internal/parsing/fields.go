// Package parsing turns raw scraped job data into normalized structured
// fields. The language model does the heavy lifting; a deterministic
// extractor is the safety net, so parsing as a whole never fails.
package parsing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/market-intel/internal/llm"
	"github.com/jonathan/market-intel/internal/schemas"
	"github.com/jonathan/market-intel/internal/types"
)

// FieldParser extracts ParsedJobData from ScrapedJobData. A nil client skips
// straight to the deterministic extractor.
type FieldParser struct {
	client  llm.Client
	verbose bool
}

// NewFieldParser creates a parser. client may be nil when no model
// credential is configured.
func NewFieldParser(client llm.Client, verbose bool) *FieldParser {
	return &FieldParser{client: client, verbose: verbose}
}

// Parse produces normalized fields for a scraped posting. It never returns
// an error: any model failure downgrades silently to BasicExtract, with
// provenance recorded in the confidence score.
func (p *FieldParser) Parse(ctx context.Context, scraped *types.ScrapedJobData) *types.ParsedJobData {
	if p.client == nil {
		return BasicExtract(scraped)
	}

	parsed, err := p.parseWithModel(ctx, scraped)
	if err != nil {
		if p.verbose {
			log.Printf("[PARSE] model extraction failed, using basic extractor: %v", err)
		}
		return BasicExtract(scraped)
	}

	return parsed
}

// modelReply mirrors the JSON contract the prompt demands.
type modelReply struct {
	IsJobPosting    bool     `json:"isJobPosting"`
	JobTitle        *string  `json:"jobTitle"`
	Company         *string  `json:"company"`
	Location        *string  `json:"location"`
	WorkModel       *string  `json:"workModel"`
	ExperienceLevel *string  `json:"experienceLevel"`
	MinSalary       *string  `json:"minSalary"`
	MaxSalary       *string  `json:"maxSalary"`
	Skills          []string `json:"skills"`
	Requirements    []string `json:"requirements"`
	Timeline        *string  `json:"timeline"`
	Department      *string  `json:"department"`
	Confidence      float64  `json:"confidence"`
}

func (p *FieldParser) parseWithModel(ctx context.Context, scraped *types.ScrapedJobData) (*types.ParsedJobData, error) {
	prompt := buildFieldPrompt(scraped)

	responseText, err := p.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "field extraction call failed", Cause: err}
	}

	responseText = llm.CleanJSONBlock(responseText)

	if err := schemas.ValidateParsedJob(responseText); err != nil {
		return nil, &ParseError{Message: "model reply violates contract", Cause: err}
	}

	var reply modelReply
	if err := json.Unmarshal([]byte(responseText), &reply); err != nil {
		return nil, &ParseError{Message: "failed to decode model reply", Cause: err}
	}

	minSalary, maxSalary := NormalizeSalaryPair(deref(reply.MinSalary), deref(reply.MaxSalary))

	return &types.ParsedJobData{
		IsJobPosting:    reply.IsJobPosting,
		JobTitle:        deref(reply.JobTitle),
		Company:         deref(reply.Company),
		Location:        deref(reply.Location),
		WorkModel:       deref(reply.WorkModel),
		ExperienceLevel: deref(reply.ExperienceLevel),
		MinSalary:       minSalary,
		MaxSalary:       maxSalary,
		Skills:          reply.Skills,
		Requirements:    reply.Requirements,
		Timeline:        deref(reply.Timeline),
		Department:      deref(reply.Department),
		Confidence:      reply.Confidence,
	}, nil
}

// buildFieldPrompt constructs the single extraction request, spelling out
// the exact JSON structure the reply must match.
func buildFieldPrompt(scraped *types.ScrapedJobData) string {
	var sb strings.Builder

	sb.WriteString("You are an expert job posting parser. Extract structured fields from the posting below.\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(`{
  "isJobPosting": boolean,
  "jobTitle": "string or null",
  "company": "string or null",
  "location": "string or null",
  "workModel": "remote|hybrid|onsite or null",
  "experienceLevel": "string or null",
  "minSalary": "plain numeric string or null",
  "maxSalary": "plain numeric string or null",
  "skills": ["string"],
  "requirements": ["string"],
  "timeline": "string or null",
  "department": "string or null",
  "confidence": number between 0.0 and 1.0
}`)
	sb.WriteString("\n\nIMPORTANT:\n")
	sb.WriteString("- Salary: strip currency symbols and commas. If only one figure is present, set both minSalary and maxSalary to it. If none, set both to null.\n")
	sb.WriteString("- Extract information directly from the text, do not invent.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation.\n\n")

	sb.WriteString("Posting:\n")
	fmt.Fprintf(&sb, "Title: %s\n", scraped.Title)
	fmt.Fprintf(&sb, "Company: %s\n", scraped.Company)
	fmt.Fprintf(&sb, "Location: %s\n", scraped.Location)
	fmt.Fprintf(&sb, "Salary: %s\n", scraped.Salary)
	fmt.Fprintf(&sb, "Description:\n%s\n", scraped.Description)
	if len(scraped.Requirements) > 0 {
		fmt.Fprintf(&sb, "Requirements:\n- %s\n", strings.Join(scraped.Requirements, "\n- "))
	}
	if len(scraped.Responsibilities) > 0 {
		fmt.Fprintf(&sb, "Responsibilities:\n- %s\n", strings.Join(scraped.Responsibilities, "\n- "))
	}

	return sb.String()
}

// BasicExtract is the deterministic fallback. It copies direct fields from
// the scrape, derives what it can from the salary text, and leaves every
// model-only field empty with confidence fixed at types.FallbackConfidence.
// It never fails.
func BasicExtract(scraped *types.ScrapedJobData) *types.ParsedJobData {
	if scraped == nil {
		return &types.ParsedJobData{Confidence: types.FallbackConfidence}
	}

	minSalary, maxSalary := NormalizeSalaryPair(splitSalaryText(scraped.Salary))

	return &types.ParsedJobData{
		IsJobPosting: scraped.Title != "" || scraped.Description != "",
		JobTitle:     scraped.Title,
		Company:      scraped.Company,
		Location:     scraped.Location,
		MinSalary:    minSalary,
		MaxSalary:    maxSalary,
		Requirements: scraped.Requirements,
		Confidence:   types.FallbackConfidence,
	}
}

var salaryFigure = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*([kK])?`)

// splitSalaryText pulls up to two numeric figures out of a free-text salary
// string, expanding a trailing k suffix.
func splitSalaryText(text string) (string, string) {
	if text == "" {
		return "", ""
	}

	matches := salaryFigure.FindAllStringSubmatch(text, 2)
	figures := make([]string, 0, 2)
	for _, m := range matches {
		num := strings.ReplaceAll(m[1], ",", "")
		if m[2] != "" {
			num = expandThousands(num)
		}
		figures = append(figures, num)
	}

	switch len(figures) {
	case 0:
		return "", ""
	case 1:
		return figures[0], figures[0]
	default:
		return figures[0], figures[1]
	}
}

func expandThousands(num string) string {
	if strings.Contains(num, ".") {
		// "7.5k" style; shift the decimal point three places.
		parts := strings.SplitN(num, ".", 2)
		frac := parts[1] + "000"
		return parts[0] + frac[:3]
	}
	return num + "000"
}

// NormalizeSalaryPair applies the salary normalization rule: strip currency
// symbols and commas, mirror a single figure into both ends, empty both when
// no figure is present.
func NormalizeSalaryPair(minSalary, maxSalary string) (string, string) {
	minSalary = cleanSalaryFigure(minSalary)
	maxSalary = cleanSalaryFigure(maxSalary)

	if minSalary == "" && maxSalary == "" {
		return "", ""
	}
	if minSalary == "" {
		return maxSalary, maxSalary
	}
	if maxSalary == "" {
		return minSalary, minSalary
	}
	return minSalary, maxSalary
}

var nonSalaryChars = regexp.MustCompile(`[^0-9.]`)

func cleanSalaryFigure(figure string) string {
	cleaned := nonSalaryChars.ReplaceAllString(figure, "")
	return strings.TrimSuffix(cleaned, ".")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
