package domain

// UrgencyLevel classifies how time-sensitive a document is.
type UrgencyLevel string

// Urgency levels, ordered from least to most severe.
const (
	UrgencyNormal   UrgencyLevel = "normal"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

// DocType classifies a document by its dominant keyword profile.
type DocType string

// Document types recognised by the classifier.
const (
	TypeClaim      DocType = "claim"
	TypePolicy     DocType = "policy"
	TypeGuideline  DocType = "guideline"
	TypeRegulation DocType = "regulation"
	TypeGeneral    DocType = "general"
)

// Status is the processing state extracted from document text.
type Status string

// Recognised statuses. StatusUnknown is returned when no pattern matches.
const (
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
	StatusPending  Status = "pending"
	StatusClosed   Status = "closed"
	StatusUnknown  Status = "unknown"
)

// Amount is a monetary figure with its surrounding context window.
type Amount struct {
	// Amount is the raw matched amount string (e.g. "$12,345.67").
	Amount string `json:"amount"`

	// Context is the text within roughly 50 characters either side.
	Context string `json:"context"`
}

// Indicator records one urgency term found in a document.
type Indicator struct {
	Term   string `json:"term"`
	Count  int    `json:"count"`
	Weight int    `json:"weight"`
}

// Urgency is the weighted urgency breakdown for a document.
type Urgency struct {
	// Score is the sum of count x weight over all matched indicators.
	Score int `json:"score"`

	// Level is derived from Score: >=10 critical, >=6 high, >=3 medium.
	Level UrgencyLevel `json:"level"`

	// IndicatorsFound lists matched terms in lexicon order.
	IndicatorsFound []Indicator `json:"indicators_found"`

	// TotalMentions is the sum of all indicator counts.
	TotalMentions int `json:"total_mentions"`
}

// DocumentType is the classification result with confidence.
type DocumentType struct {
	// Type is the winning type, or TypeGeneral when no keyword matched.
	Type DocType `json:"type"`

	// Confidence is min(best score / 20, 1.0), rounded to two decimals.
	Confidence float64 `json:"confidence"`

	// Scores holds the raw score per candidate type.
	Scores map[DocType]int `json:"scores"`
}

// Contacts holds extracted contact information.
type Contacts struct {
	// Emails is deduplicated in first-seen order, capped at 5.
	Emails []string `json:"emails"`

	// Phones is formatted "(area) exchange-line", capped at 5.
	Phones []string `json:"phones"`
}

// Metadata contains the structured facts derived from a document.
// It is a pure function of (content, filename): recomputing it from the
// same inputs yields an identical value.
type Metadata struct {
	ClaimNumbers  []string     `json:"claim_numbers"`
	PolicyNumbers []string     `json:"policy_numbers"`
	Dates         []string     `json:"dates"`
	Amounts       []Amount     `json:"amounts"`
	Urgency       Urgency      `json:"urgency"`
	DocumentType  DocumentType `json:"document_type"`
	Status        Status       `json:"status"`
	Contacts      Contacts     `json:"contacts"`
	WordCount     int          `json:"word_count"`
	CharCount     int          `json:"char_count"`
}
