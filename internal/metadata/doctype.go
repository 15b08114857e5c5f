package metadata

import "github.com/clerktree/arbor/internal/core/domain"

// typeKeywords holds the weighted keyword profile of one document type.
// Primary keywords score 3 per body occurrence plus 10 for a filename hit;
// secondary keywords score 1 per occurrence plus 5 for a filename hit.
type typeKeywords struct {
	docType   domain.DocType
	primary   []string
	secondary []string
}

// Classification profiles in evaluation order. Ties go to the earlier
// entry, which keeps classification deterministic.
var docTypeProfiles = []typeKeywords{
	{
		docType: domain.TypeClaim,
		primary: []string{"claimant", "incident", "loss", "damage", "injury", "accident",
			"schadenfall", "anspruch", "réclamation", "siniestro"},
		secondary: []string{"claim", "filed", "reported", "occurred", "schaden"},
	},
	{
		docType: domain.TypePolicy,
		primary: []string{"policy", "coverage", "insured", "premium", "deductible",
			"versicherung", "police", "póliza"},
		secondary: []string{"terms", "conditions", "benefits", "exclusions", "bedingungen"},
	},
	{
		docType: domain.TypeGuideline,
		primary: []string{"procedure", "guideline", "process", "standard", "protocol",
			"richtlinie", "verfahren", "procédure", "procedimiento"},
		secondary: []string{"step", "instruction", "requirement", "must", "should"},
	},
	{
		docType: domain.TypeRegulation,
		primary: []string{"regulation", "compliance", "law", "statute", "requirement",
			"vorschrift", "gesetz", "règlement", "reglamento"},
		secondary: []string{"legal", "mandatory", "regulatory", "federal", "state"},
	},
}

// Scoring weights for the document-type classifier.
const (
	primaryBodyWeight      = 3
	primaryFilenameBonus   = 10
	secondaryBodyWeight    = 1
	secondaryFilenameBonus = 5
	confidenceDivisor      = 20.0
)
