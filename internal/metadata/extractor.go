// Package metadata extracts structured facts from document text: claim
// and policy identifiers, dates, monetary amounts, urgency signals,
// document type, processing status, and contact information.
//
// Extraction is a pure function of (content, filename): every
// sub-extractor is order-insensitive relative to the others and produces
// deterministic output, so recomputation is idempotent. Malformed or
// empty input yields a zeroed Metadata value, never an error.
package metadata

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/clerktree/arbor/internal/core/domain"
)

// Caps on list-valued metadata fields.
const (
	maxDates    = 10
	maxAmounts  = 10
	maxEmails   = 5
	maxPhones   = 5
	contextSpan = 50
)

// Extractor runs the pattern battery and keyword classifiers.
// The zero cost of construction is intentional: all patterns are
// package-level compiled regexps shared by every instance.
type Extractor struct{}

// NewExtractor creates a metadata extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractAll derives the full Metadata value from text and filename.
func (e *Extractor) ExtractAll(text, filename string) domain.Metadata {
	return domain.Metadata{
		ClaimNumbers:  e.ClaimNumbers(text),
		PolicyNumbers: e.PolicyNumbers(text),
		Dates:         e.Dates(text),
		Amounts:       e.Amounts(text),
		Urgency:       e.Urgency(text),
		DocumentType:  e.DocumentType(text, filename),
		Status:        e.Status(text),
		Contacts:      e.Contacts(text),
		WordCount:     len(strings.Fields(text)),
		CharCount:     utf8.RuneCountInString(text),
	}
}

// ClaimNumbers returns all claim identifiers, deduplicated and sorted.
func (e *Extractor) ClaimNumbers(text string) []string {
	return matchIdentifiers(text, claimPatterns)
}

// PolicyNumbers returns all policy identifiers, deduplicated and sorted.
func (e *Extractor) PolicyNumbers(text string) []string {
	return matchIdentifiers(text, policyPatterns)
}

func matchIdentifiers(text string, patterns []*regexp.Regexp) []string {
	seen := make(map[string]struct{})
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			seen[m[1]] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dates returns raw date strings in pattern order, capped at 10.
func (e *Extractor) Dates(text string) []string {
	var dates []string
	for _, p := range datePatterns {
		dates = append(dates, p.FindAllString(text, -1)...)
	}
	if len(dates) > maxDates {
		dates = dates[:maxDates]
	}
	return dates
}

// Amounts returns monetary amounts with a +-50-character context window,
// in pattern order then match position, capped at 10.
func (e *Extractor) Amounts(text string) []domain.Amount {
	var amounts []domain.Amount
	for _, p := range amountPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			start := loc[0] - contextSpan
			if start < 0 {
				start = 0
			}
			end := loc[1] + contextSpan
			if end > len(text) {
				end = len(text)
			}
			// Byte windows can split a multi-byte rune at either edge.
			context := strings.ToValidUTF8(text[start:end], "")
			amounts = append(amounts, domain.Amount{
				Amount:  text[loc[0]:loc[1]],
				Context: strings.TrimSpace(context),
			})
		}
	}
	if len(amounts) > maxAmounts {
		amounts = amounts[:maxAmounts]
	}
	return amounts
}

// Urgency scores the text against the weighted urgency lexicon.
// Substring counts, not word-boundary matches; see urgencyLexicon.
func (e *Extractor) Urgency(text string) domain.Urgency {
	lower := strings.ToLower(text)
	urgency := domain.Urgency{Level: domain.UrgencyNormal}

	for _, ind := range urgencyLexicon {
		count := strings.Count(lower, ind.term)
		if count == 0 {
			continue
		}
		urgency.Score += count * ind.weight
		urgency.TotalMentions += count
		urgency.IndicatorsFound = append(urgency.IndicatorsFound, domain.Indicator{
			Term:   ind.term,
			Count:  count,
			Weight: ind.weight,
		})
	}

	switch {
	case urgency.Score >= criticalThreshold:
		urgency.Level = domain.UrgencyCritical
	case urgency.Score >= highThreshold:
		urgency.Level = domain.UrgencyHigh
	case urgency.Score >= mediumThreshold:
		urgency.Level = domain.UrgencyMedium
	}

	return urgency
}

// DocumentType classifies the document by its weighted keyword profile.
func (e *Extractor) DocumentType(text, filename string) domain.DocumentType {
	textLower := strings.ToLower(text)
	filenameLower := strings.ToLower(filename)

	scores := make(map[domain.DocType]int, len(docTypeProfiles))
	best := domain.DocumentType{Type: domain.TypeGeneral, Confidence: 0.0}
	bestScore := 0

	for _, profile := range docTypeProfiles {
		score := 0
		for _, kw := range profile.primary {
			score += strings.Count(textLower, kw) * primaryBodyWeight
			if strings.Contains(filenameLower, kw) {
				score += primaryFilenameBonus
			}
		}
		for _, kw := range profile.secondary {
			score += strings.Count(textLower, kw) * secondaryBodyWeight
			if strings.Contains(filenameLower, kw) {
				score += secondaryFilenameBonus
			}
		}
		scores[profile.docType] = score

		// Strictly greater keeps the earlier profile on ties.
		if score > bestScore {
			bestScore = score
			best.Type = profile.docType
		}
	}

	best.Scores = scores
	if bestScore > 0 {
		best.Confidence = roundConfidence(math.Min(float64(bestScore)/confidenceDivisor, 1.0))
	}
	return best
}

// Status returns the first matching status in pattern order, or unknown.
func (e *Extractor) Status(text string) domain.Status {
	lower := strings.ToLower(text)
	for _, sp := range statusPatterns {
		if sp.pattern.MatchString(lower) {
			return domain.Status(sp.status)
		}
	}
	return domain.StatusUnknown
}

// Contacts extracts emails (deduplicated, first-seen order) and phones
// (reformatted to "(area) exchange-line"), each capped at 5.
func (e *Extractor) Contacts(text string) domain.Contacts {
	contacts := domain.Contacts{}

	seen := make(map[string]struct{})
	for _, email := range emailPattern.FindAllString(text, -1) {
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		contacts.Emails = append(contacts.Emails, email)
		if len(contacts.Emails) >= maxEmails {
			break
		}
	}

	for _, m := range phonePattern.FindAllStringSubmatch(text, -1) {
		contacts.Phones = append(contacts.Phones, fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3]))
		if len(contacts.Phones) >= maxPhones {
			break
		}
	}

	return contacts
}

// roundConfidence rounds to two decimal places.
func roundConfidence(c float64) float64 {
	return math.Round(c*100) / 100
}
