package domain

// CorpusStats aggregates counts over the indexed corpus for dashboards.
type CorpusStats struct {
	TotalDocuments   int                  `json:"total_documents"`
	ByType           map[DocType]int      `json:"by_type"`
	ByUrgency        map[UrgencyLevel]int `json:"by_urgency"`
	WithClaimNumbers int                  `json:"with_claim_numbers"`
	WithAmounts      int                  `json:"with_amounts"`
	WithContacts     int                  `json:"with_contacts"`
}
