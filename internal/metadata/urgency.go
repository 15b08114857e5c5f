package metadata

// urgencyIndicator is one weighted term of the urgency lexicon.
type urgencyIndicator struct {
	term   string
	weight int
}

// The urgency lexicon, weighted 1-5, across four languages. Order matters:
// indicators are reported in lexicon order so extraction is deterministic.
//
// Matching is a case-insensitive substring count, not a word-boundary
// match: a longer term containing a shorter indicator as a substring will
// double-count. This is documented behaviour; switching to word-boundary
// matching would change scoring semantics.
var urgencyLexicon = []urgencyIndicator{
	// English
	{"critical", 5}, {"emergency", 5}, {"urgent", 4}, {"immediate", 4},
	{"asap", 4}, {"priority", 3}, {"expedite", 3}, {"time-sensitive", 3},
	{"rush", 3}, {"prompt", 2}, {"quickly", 2}, {"soon", 1},
	{"deadline", 3}, {"overdue", 4},
	// German
	{"kritisch", 5}, {"notfall", 5}, {"dringend", 4}, {"sofort", 4},
	{"priorität", 3}, {"eilt", 3}, {"frist", 3}, {"überfällig", 4},
	// French ("urgent" is shared with the English entry above)
	{"critique", 5}, {"urgence", 5}, {"immédiat", 4},
	// Spanish
	{"crítico", 5}, {"emergencia", 5}, {"urgente", 4}, {"inmediato", 4},
}

// Urgency level thresholds on the accumulated score.
const (
	criticalThreshold = 10
	highThreshold     = 6
	mediumThreshold   = 3
)
