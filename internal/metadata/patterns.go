package metadata

import "regexp"

// Identifier patterns. Each pattern captures the identifier in its first
// group. Matching is case-insensitive; the union of all matches is
// deduplicated and sorted for determinism.
var claimPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)claim\s*(?:number|no\.?|#|id|ref(?:erence)?)\s*:?\s*([A-Z0-9\-/]+)`),
	regexp.MustCompile(`(?i)(?:claim|policy)\s*([A-Z]{2,}\d{4,})`),
	regexp.MustCompile(`(?i)reference\s*(?:number|no\.?|#)?\s*:?\s*([A-Z0-9\-/]+)`),
	regexp.MustCompile(`(?i)\b([A-Z]{2,3}-\d{6,})\b`), // Format: CLM-123456
	regexp.MustCompile(`(?i)\b(CLM\d{6,})\b`),
	regexp.MustCompile(`(?i)\b(CLAIM\d{6,})\b`),
}

var policyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)policy\s*(?:number|no\.?|#)?\s*:?\s*([A-Z0-9\-/]+)`),
	regexp.MustCompile(`(?i)\b(POL\d{6,})\b`),
	regexp.MustCompile(`(?i)\b([A-Z]{3}\d{7,})\b`),
}

// Date patterns: numeric D/M/Y variants and month-name variants.
// Matches are concatenated in pattern order and truncated to 10.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b`),
	regexp.MustCompile(`\b\d{4}[-/]\d{1,2}[-/]\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\b`),
}

// Amount patterns: currency symbols, currency codes, and labelled sums.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`),
	regexp.MustCompile(`(?i)USD\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`),
	regexp.MustCompile(`(?i)EUR\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`),
	regexp.MustCompile(`€\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`),
	regexp.MustCompile(`(?i)\d{1,3}(?:,\d{3})*(?:\.\d{2})?\s?(?:dollars|USD|EUR|euros)`),
	regexp.MustCompile(`(?i)(?:amount|sum|total|payment|settlement)\s*:?\s*\$?\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`),
}

// statusPattern pairs a status value with the multilingual pattern that
// detects it. The first pattern that matches wins, in declaration order.
type statusPattern struct {
	status  string
	pattern *regexp.Regexp
}

// Status patterns are applied against lower-cased text.
var statusPatterns = []statusPattern{
	{"approved", regexp.MustCompile(`\b(?:approved|accepted|granted|genehmigt|approuvé|aprobado)\b`)},
	{"denied", regexp.MustCompile(`\b(?:denied|rejected|declined|disapproved|abgelehnt|refusé|denegado)\b`)},
	{"pending", regexp.MustCompile(`\b(?:pending|under review|in process|reviewing|ausstehend|en attente|pendiente)\b`)},
	{"closed", regexp.MustCompile(`\b(?:closed|settled|resolved|completed|geschlossen|fermé|cerrado)\b`)},
}

// Contact patterns. The email pattern is intentionally lax; the phone
// pattern captures area code, exchange, and line as separate groups.
var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})\b`)
)
