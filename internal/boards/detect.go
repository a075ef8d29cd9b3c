// Package boards classifies job posting URLs into board families and
// extracts structured fields from their HTML using family-specific
// selectors.
package boards

import (
	"net/url"
	"strings"
)

// Board identifies a job-board family.
type Board string

// Known board families. Unrecognized URLs fall back to BoardGeneric.
const (
	BoardLinkedIn   Board = "linkedin"
	BoardIndeed     Board = "indeed"
	BoardGreenhouse Board = "greenhouse"
	BoardLever      Board = "lever"
	BoardWorkday    Board = "workday"
	BoardAshby      Board = "ashby"
	BoardGeneric    Board = "generic"
)

// Detect identifies the board family from a URL. Pure substring match on
// the lowercased host and path; never fails.
func Detect(urlStr string) Board {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return BoardGeneric
	}

	target := strings.ToLower(parsed.Host + parsed.Path)

	switch {
	case strings.Contains(target, "linkedin.com"):
		return BoardLinkedIn
	case strings.Contains(target, "indeed.com"):
		return BoardIndeed
	case strings.Contains(target, "greenhouse.io"):
		return BoardGreenhouse
	case strings.Contains(target, "lever.co"):
		return BoardLever
	case strings.Contains(target, "myworkdayjobs.com"), strings.Contains(target, "workday.com"):
		return BoardWorkday
	case strings.Contains(target, "ashbyhq.com"):
		return BoardAshby
	default:
		return BoardGeneric
	}
}
