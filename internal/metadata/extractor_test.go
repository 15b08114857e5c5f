package metadata

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clerktree/arbor/internal/core/domain"
)

func TestExtractor_ClaimNumbers(t *testing.T) {
	e := NewExtractor()

	claims := e.ClaimNumbers("Claim Number: CLM-2024-001 was filed. See also CLM123456.")

	assert.Equal(t, []string{"CLM-2024-001", "CLM123456"}, claims)
}

func TestExtractor_ClaimNumbers_Deduplicated(t *testing.T) {
	e := NewExtractor()

	claims := e.ClaimNumbers("claim #AB-123456 and again claim ref: AB-123456")

	assert.Equal(t, []string{"AB-123456"}, claims)
}

func TestExtractor_ClaimNumbers_None(t *testing.T) {
	e := NewExtractor()

	assert.Empty(t, e.ClaimNumbers("Nothing identifiable in this text."))
}

func TestExtractor_PolicyNumbers(t *testing.T) {
	e := NewExtractor()

	policies := e.PolicyNumbers("Policy Number: POL-998877, renewal POL123456.")

	assert.Equal(t, []string{"POL-998877", "POL123456"}, policies)
}

func TestExtractor_Dates(t *testing.T) {
	e := NewExtractor()

	dates := e.Dates("Filed 01/15/2024, confirmed 2024-01-20, hearing January 25, 2024.")

	// Numeric patterns first, month-name patterns after.
	assert.Equal(t, []string{"01/15/2024", "2024-01-20", "January 25, 2024"}, dates)
}

func TestExtractor_Dates_Capped(t *testing.T) {
	e := NewExtractor()

	text := ""
	for i := 0; i < 15; i++ {
		text += "01/02/2024 "
	}

	assert.Len(t, e.Dates(text), 10)
}

func TestExtractor_Amounts(t *testing.T) {
	e := NewExtractor()

	amounts := e.Amounts("The settlement payment of $12,345.67 was approved.")

	require.NotEmpty(t, amounts)
	assert.Equal(t, "$12,345.67", amounts[0].Amount)
	assert.Contains(t, amounts[0].Context, "settlement payment")
}

func TestExtractor_Amounts_CurrencyCodes(t *testing.T) {
	e := NewExtractor()

	amounts := e.Amounts("Invoice total EUR 5,000.00 or about USD 5,400.00.")

	raw := make([]string, len(amounts))
	for i, a := range amounts {
		raw[i] = a.Amount
	}
	assert.Contains(t, raw, "EUR 5,000.00")
	assert.Contains(t, raw, "USD 5,400.00")
}

func TestExtractor_Amounts_WithDate(t *testing.T) {
	e := NewExtractor()
	text := "Settlement amount: $12,345.67 paid on 2024-01-10"

	amounts := e.Amounts(text)
	raw := make([]string, len(amounts))
	for i, a := range amounts {
		raw[i] = a.Amount
	}
	assert.Contains(t, raw, "$12,345.67")

	assert.Contains(t, e.Dates(text), "2024-01-10")
}

func TestExtractor_Amounts_ContextValidUTF8(t *testing.T) {
	e := NewExtractor()

	// The context window starts 50 bytes before the match, which lands
	// in the middle of the first rune here.
	text := strings.Repeat("é", 25) + "x$100 paid."

	amounts := e.Amounts(text)

	require.NotEmpty(t, amounts)
	assert.Equal(t, "$100", amounts[0].Amount)
	assert.True(t, utf8.ValidString(amounts[0].Context))
	assert.Contains(t, amounts[0].Context, "$100 paid.")
}

func TestExtractor_Urgency_Normal(t *testing.T) {
	e := NewExtractor()

	urgency := e.Urgency("A plain description of the weather.")

	assert.Equal(t, domain.UrgencyNormal, urgency.Level)
	assert.Zero(t, urgency.Score)
	assert.Empty(t, urgency.IndicatorsFound)
}

func TestExtractor_Urgency_Levels(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name  string
		text  string
		score int
		level domain.UrgencyLevel
	}{
		{"medium at threshold", "soon soon soon", 3, domain.UrgencyMedium},
		{"single strong term is medium", "critical", 5, domain.UrgencyMedium},
		{"high at threshold", "priority priority", 6, domain.UrgencyHigh},
		{"high", "urgent urgent", 8, domain.UrgencyHigh},
		{"critical at threshold", "critical critical", 10, domain.UrgencyCritical},
		{"critical", "critical emergency urgent", 14, domain.UrgencyCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urgency := e.Urgency(tt.text)
			assert.Equal(t, tt.score, urgency.Score)
			assert.Equal(t, tt.level, urgency.Level)
		})
	}
}

func TestExtractor_Urgency_MixedTerms(t *testing.T) {
	e := NewExtractor()

	// critical (5) + urgent twice (2x4) = 13.
	urgency := e.Urgency("critical backlog: urgent review, urgent reply")

	assert.Equal(t, 13, urgency.Score)
	assert.Equal(t, domain.UrgencyCritical, urgency.Level)
}

func TestExtractor_Urgency_Multilingual(t *testing.T) {
	e := NewExtractor()

	urgency := e.Urgency("Dies ist dringend, bitte sofort bearbeiten!")

	// dringend (4) + sofort (4).
	assert.Equal(t, 8, urgency.Score)
	assert.Equal(t, domain.UrgencyHigh, urgency.Level)
	assert.Equal(t, 2, urgency.TotalMentions)
}

func TestExtractor_Urgency_CountsSubstrings(t *testing.T) {
	e := NewExtractor()

	// Substring counting is deliberate: "urgente" also contains "urgent".
	urgency := e.Urgency("urgente")

	assert.Equal(t, 8, urgency.Score)
	assert.Equal(t, 2, urgency.TotalMentions)
}

func TestExtractor_DocumentType_Claim(t *testing.T) {
	e := NewExtractor()

	docType := e.DocumentType("The claimant reported damage after the accident.", "doc")

	// Primary claimant+damage+accident (3x3) plus secondary claim+reported.
	assert.Equal(t, domain.TypeClaim, docType.Type)
	assert.Equal(t, 11, docType.Scores[domain.TypeClaim])
	assert.InDelta(t, 0.55, docType.Confidence, 1e-9)
}

func TestExtractor_DocumentType_FilenameBonus(t *testing.T) {
	e := NewExtractor()

	plain := e.DocumentType("Renewal attached.", "document")
	named := e.DocumentType("Renewal attached.", "policy_terms")

	assert.Equal(t, domain.TypeGeneral, plain.Type)
	assert.Equal(t, domain.TypePolicy, named.Type)
	// policy in filename (+10), terms in filename (+5).
	assert.Equal(t, 15, named.Scores[domain.TypePolicy])
}

func TestExtractor_DocumentType_NoSignal(t *testing.T) {
	e := NewExtractor()

	docType := e.DocumentType("Completely unrelated text.", "notes")

	assert.Equal(t, domain.TypeGeneral, docType.Type)
	assert.Zero(t, docType.Confidence)
}

func TestExtractor_DocumentType_ConfidenceCapped(t *testing.T) {
	e := NewExtractor()

	text := ""
	for i := 0; i < 20; i++ {
		text += "policy coverage premium "
	}

	docType := e.DocumentType(text, "policy")

	assert.Equal(t, domain.TypePolicy, docType.Type)
	assert.Equal(t, 1.0, docType.Confidence)
}

func TestExtractor_Status(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		text   string
		status domain.Status
	}{
		{"Your claim has been approved.", domain.StatusApproved},
		{"The request was denied last week.", domain.StatusDenied},
		{"Currently pending further review.", domain.StatusPending},
		{"The file is now closed.", domain.StatusClosed},
		{"La demande a été genehmigt.", domain.StatusApproved},
		{"No decision words here.", domain.StatusUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, e.Status(tt.text), tt.text)
	}
}

func TestExtractor_Status_FirstMatchWins(t *testing.T) {
	e := NewExtractor()

	// Both approved and denied appear; pattern order decides.
	assert.Equal(t, domain.StatusApproved, e.Status("Initially denied, later approved."))
}

func TestExtractor_Contacts(t *testing.T) {
	e := NewExtractor()

	contacts := e.Contacts("Reach john.doe@example.com or call 555-123-4567.")

	assert.Equal(t, []string{"john.doe@example.com"}, contacts.Emails)
	assert.Equal(t, []string{"(555) 123-4567"}, contacts.Phones)
}

func TestExtractor_Contacts_DeduplicatedAndCapped(t *testing.T) {
	e := NewExtractor()

	text := "a@x.com a@x.com b@x.com c@x.com d@x.com e@x.com f@x.com"
	contacts := e.Contacts(text)

	assert.Equal(t, []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com"}, contacts.Emails)
}

func TestExtractor_Contacts_PhoneFormats(t *testing.T) {
	e := NewExtractor()

	contacts := e.Contacts("Call (212) 555-0100 or +1-646-555-0199.")

	assert.Equal(t, []string{"(212) 555-0100", "(646) 555-0199"}, contacts.Phones)
}

func TestExtractor_Contacts_PhoneSpaceSeparated(t *testing.T) {
	e := NewExtractor()

	// Space-separated digit groups normalise like the other formats.
	contacts := e.Contacts("Call 555 123 4567 today.")

	assert.Equal(t, []string{"(555) 123-4567"}, contacts.Phones)
}

func TestExtractor_ExtractAll_Deterministic(t *testing.T) {
	e := NewExtractor()

	text := `URGENT: Claim Number: CLM-2024-001 for policy POL123456.
The claimant reported damage of $12,345.67 on 01/15/2024.
Contact adjuster@example.com or 555-123-4567. Status: approved.`

	first := e.ExtractAll(text, "claim_report")
	second := e.ExtractAll(text, "claim_report")

	assert.Equal(t, first, second)
	// POL123456 also matches the "policy <ID>" claim pattern.
	assert.Equal(t, []string{"CLM-2024-001", "POL123456"}, first.ClaimNumbers)
	assert.Equal(t, []string{"POL123456"}, first.PolicyNumbers)
	assert.Equal(t, domain.StatusApproved, first.Status)
	assert.Equal(t, domain.TypeClaim, first.DocumentType.Type)
	assert.NotZero(t, first.WordCount)
	assert.NotZero(t, first.CharCount)
}
