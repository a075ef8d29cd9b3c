package cards

// Static domain copy used when an analysis yields no data, and fixed lists
// that are the same for every role.

const (
	placeholderSalary      = "Not enough data"
	placeholderApplicants  = "No applicant data"
	placeholderLocation    = "All locations"
	placeholderRespNote    = "Market data unavailable; review the role description with your team."
	placeholderSkillsNote  = "No skill signals found in comparable postings."
	placeholderRealityNote = "Not enough market data to benchmark this role."
)

// Funnel conversion copy: rough industry-wide pass-through rates from
// application to offer.
const (
	funnelScreeningRate = "~25% pass resume screen"
	funnelInterviewRate = "~10% reach final interviews"
	funnelOfferRate     = "~3% receive an offer"
)

// hiringRedFlags is the fixed reality-check list shown on every run.
var hiringRedFlags = []string{
	"Salary range missing from the posting deters strong applicants",
	"More than four interview rounds correlates with high drop-off",
	"Vague responsibilities attract mismatched candidates",
	"Slow feedback loops lose candidates to faster competitors",
	"Overloaded requirement lists shrink the qualified pool",
}
