package boards

// selectorSet holds the ordered CSS selector candidates per field for one
// board family. The first non-empty, length-plausible match wins.
type selectorSet struct {
	title       []string
	company     []string
	location    []string
	salary      []string
	description []string
}

func selectorsFor(board Board) selectorSet {
	switch board {
	case BoardLinkedIn:
		return selectorSet{
			title:       []string{".top-card-layout__title", "h1.topcard__title", "h1"},
			company:     []string{".topcard__org-name-link", ".top-card-layout__second-subline a", ".topcard__flavor"},
			location:    []string{".topcard__flavor--bullet", ".top-card-layout__second-subline span"},
			salary:      []string{".compensation__salary", ".salary"},
			description: []string{".show-more-less-html__markup", ".description__text", "#job-details"},
		}
	case BoardIndeed:
		return selectorSet{
			title:       []string{"[data-testid='jobsearch-JobInfoHeader-title']", "h1.jobsearch-JobInfoHeader-title", "h1"},
			company:     []string{"[data-testid='inlineHeader-companyName']", "[data-company-name]", ".jobsearch-CompanyInfoContainer a"},
			location:    []string{"[data-testid='job-location']", "[data-testid='inlineHeader-companyLocation']"},
			salary:      []string{"#salaryInfoAndJobType .attribute_snippet", "[data-testid='attribute_snippet_testid']"},
			description: []string{"#jobDescriptionText", ".jobsearch-jobDescriptionText"},
		}
	case BoardGreenhouse:
		return selectorSet{
			title:       []string{".app-title", "h1.section-header", "h1"},
			company:     []string{".company-name", "[data-mapped='company']"},
			location:    []string{".location", ".job__location"},
			salary:      []string{".pay-range", ".salary"},
			description: []string{".job__description.body", ".job__description", "#content"},
		}
	case BoardLever:
		return selectorSet{
			title:       []string{".posting-headline h2", "h2", "h1"},
			company:     []string{".main-header-logo img", ".posting-headline .company"},
			location:    []string{".posting-categories .location", ".sort-by-time.posting-category"},
			salary:      []string{".salary-range", ".posting-categories .commitment"},
			description: []string{".posting-description", ".section-wrapper.page-full-width", ".content"},
		}
	case BoardWorkday:
		return selectorSet{
			title:       []string{"[data-automation-id='jobPostingHeader']", "h1"},
			company:     []string{"[data-automation-id='company']"},
			location:    []string{"[data-automation-id='locations'] dd", "[data-automation-id='location']"},
			salary:      []string{"[data-automation-id='salaryRange']"},
			description: []string{"[data-automation-id='jobPostingDescription']", ".gwt-HTML"},
		}
	case BoardAshby:
		return selectorSet{
			title:       []string{"h1[class*='title']", "h1"},
			company:     []string{"[class*='company']", "meta[property='og:site_name']"},
			location:    []string{"[class*='location']"},
			salary:      []string{"[class*='compensation']", "[class*='salary']"},
			description: []string{"[class*='description']", "[class*='jobPosting']", "main"},
		}
	default:
		// Broad candidates for unrecognized boards.
		return selectorSet{
			title:       []string{"h1", ".job-title", "[class*='job-title']", "[class*='title']", "title"},
			company:     []string{".company", "[class*='company-name']", "[class*='company']", "[itemprop='hiringOrganization']"},
			location:    []string{".location", "[class*='location']", "[itemprop='jobLocation']"},
			salary:      []string{".salary", "[class*='salary']", "[class*='compensation']", "[class*='pay']"},
			description: []string{".job-description", "#job-description", "[class*='description']", "main", "article", "body"},
		}
	}
}
