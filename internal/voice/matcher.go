package voice

import "strings"

// Fuzzy-similarity scores for tier 3. The heuristic is deliberately ad hoc
// (equality / containment / shared 3-rune prefix), not an edit-distance
// metric; the thresholds are part of the documented matching contract.
const (
	scoreEqual    = 1.0
	scoreContains = 0.8
	scorePrefix   = 0.6
	fuzzyMinScore = 0.6
	fuzzyMinLen   = 3
)

// Match tier labels, used as metric attributes and in logs.
const (
	TierExact  = "exact"
	TierPhrase = "phrase"
	TierFuzzy  = "fuzzy"
	TierNone   = "none"
)

// MatcherOption is a functional option for configuring a [Matcher].
type MatcherOption func(*Matcher)

// WithNormalizer replaces the matcher's transcript normalizer.
func WithNormalizer(n *Normalizer) MatcherOption {
	return func(m *Matcher) {
		m.norm = n
	}
}

// WithPatterns replaces the trigger catalog. Entry order is priority order.
func WithPatterns(entries []PatternEntry) MatcherOption {
	return func(m *Matcher) {
		m.patterns = entries
	}
}

// Matcher maps a transcript to exactly one [Intent] using three ordered
// tiers. The first tier that produces any match wins, and within a tier the
// first intent in catalog order wins; matching is deterministic, not
// best-score. A Matcher is read-only after construction and safe for
// concurrent use.
type Matcher struct {
	patterns  []PatternEntry
	languages []Language
	norm      *Normalizer
}

// NewMatcher constructs a [Matcher] over the built-in catalog with a default
// [Normalizer]. Use options to substitute either for tests.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		patterns:  patterns,
		languages: languages,
		norm:      NewNormalizer(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Detect normalises transcript and resolves it to an Intent with extracted
// parameters. The result is never absent: when no tier matches,
// [IntentUnknown] with empty params is returned.
func (m *Matcher) Detect(transcript string) (Intent, Params) {
	intent, params, _ := m.detect(transcript)
	return intent, params
}

// detect is [Matcher.Detect] plus the tier label that produced the match,
// for metrics.
func (m *Matcher) detect(transcript string) (Intent, Params, string) {
	text := m.norm.Normalize(transcript)
	if text == "" {
		return IntentUnknown, Params{}, TierNone
	}
	tokens := strings.Fields(text)

	intent, tier := m.match(text, tokens)
	if intent == IntentUnknown {
		return IntentUnknown, Params{}, TierNone
	}

	var params Params
	if intent == IntentTranslate {
		params = m.translateParams(text)
	}
	return intent, params, tier
}

// match runs the three tiers in order over the normalised text.
func (m *Matcher) match(text string, tokens []string) (Intent, string) {
	// Tier 1: exact token match.
	for _, entry := range m.patterns {
		for _, loc := range catalogLocales {
			for _, trigger := range entry.Triggers[loc] {
				for _, tok := range tokens {
					if tok == trigger {
						return entry.Intent, TierExact
					}
				}
			}
		}
	}

	// Tier 2: phrase/substring match. Needed because several supported
	// scripts are agglutinative or transliterated without reliable
	// whitespace boundaries.
	for _, entry := range m.patterns {
		for _, loc := range catalogLocales {
			for _, trigger := range entry.Triggers[loc] {
				if strings.Contains(text, trigger) {
					return entry.Intent, TierPhrase
				}
			}
		}
	}

	// Tier 3: fuzzy single-token match. First (intent, trigger, token)
	// triple in catalog order with score >= fuzzyMinScore wins.
	for _, entry := range m.patterns {
		for _, loc := range catalogLocales {
			for _, trigger := range entry.Triggers[loc] {
				for _, tok := range tokens {
					if len([]rune(tok)) < fuzzyMinLen {
						continue
					}
					if similarity(tok, trigger) >= fuzzyMinScore {
						return entry.Intent, TierFuzzy
					}
				}
			}
		}
	}

	return IntentUnknown, TierNone
}

// translateParams scans the normalised text for a translate-target language
// name. A translate command without a recognisable language defaults to
// Hindi, a deliberate policy so TRANSLATE never lacks a target.
func (m *Matcher) translateParams(text string) Params {
	for _, lang := range m.languages {
		for _, spelling := range lang.Spellings {
			if strings.Contains(text, spelling) {
				return Params{Language: lang.Name, LanguageCode: lang.Code}
			}
		}
	}
	return Params{Language: defaultTranslateTarget.Name, LanguageCode: defaultTranslateTarget.Code}
}

// similarity scores two strings with the tier-3 heuristic: 1.0 when equal,
// 0.8 when one contains the other, 0.6 when the first three runes match in
// sequence, else 0.
func similarity(a, b string) float64 {
	if a == b {
		return scoreEqual
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return scoreContains
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) >= fuzzyMinLen && len(rb) >= fuzzyMinLen &&
		string(ra[:fuzzyMinLen]) == string(rb[:fuzzyMinLen]) {
		return scorePrefix
	}
	return 0
}
