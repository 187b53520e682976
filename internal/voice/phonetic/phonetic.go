// Package phonetic snaps misheard Latin-script transcript tokens onto the
// voice-command trigger vocabulary using Double Metaphone phonetic encoding
// combined with Jaro-Winkler string similarity.
//
// The algorithm proceeds in two stages:
//
//  1. Phonetic candidate filtering: Double Metaphone codes are computed for
//     the input token and for each trigger word. Any trigger sharing a code
//     with the input becomes a phonetic candidate.
//
//  2. Jaro-Winkler ranking: among phonetic candidates, the trigger with the
//     highest Jaro-Winkler similarity wins, provided its score exceeds the
//     configurable phonetic threshold. When no phonetic candidate exists, a
//     secondary pass tests pure Jaro-Winkler similarity against all triggers
//     using a stricter fuzzy threshold (default 0.85).
//
// The matcher complements (and runs after) the static misrecognition
// correction table: the table handles known multi-word mishearings, the
// phonetic stage handles novel single-token ones.
package phonetic

import (
	"strings"

	"github.com/antzucaro/matchr"
)

const (
	defaultPhoneticThreshold = 0.70
	defaultFuzzyThreshold    = 0.85
)

// Option is a functional option for configuring a [Matcher].
type Option func(*Matcher)

// WithPhoneticThreshold sets the minimum Jaro-Winkler score required for a
// phonetically-matched trigger to be accepted. Default: 0.70.
func WithPhoneticThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.phoneticThreshold = threshold
	}
}

// WithFuzzyThreshold sets the minimum Jaro-Winkler score required when no
// phonetic candidate is found and the matcher falls back to pure string
// similarity. Default: 0.85.
func WithFuzzyThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.fuzzyThreshold = threshold
	}
}

// Matcher is a phonetic trigger-vocabulary matcher. It implements
// voice.PhoneticMatcher. All methods are safe for concurrent use; the
// Matcher is read-only after construction.
type Matcher struct {
	phoneticThreshold float64
	fuzzyThreshold    float64
}

// New returns a new [Matcher] configured with the supplied options.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		phoneticThreshold: defaultPhoneticThreshold,
		fuzzyThreshold:    defaultFuzzyThreshold,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Match attempts to find the trigger from vocab most phonetically similar to
// token. When matched is false, corrected equals token unchanged and
// confidence is 0.
func (m *Matcher) Match(token string, vocab []string) (corrected string, confidence float64, matched bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || len(vocab) == 0 {
		return token, 0, false
	}

	inputCodes := codesFor(token)

	type candidate struct {
		trigger  string
		score    float64
		phonetic bool
	}

	var best candidate

	for _, trigger := range vocab {
		if trigger == "" {
			continue
		}
		if trigger == token {
			return trigger, 1, true
		}

		score := matchr.JaroWinkler(token, trigger, false)
		phoneticMatch := codesOverlap(inputCodes, codesFor(trigger))

		if phoneticMatch {
			if score >= m.phoneticThreshold {
				if !best.phonetic || score > best.score {
					best = candidate{trigger: trigger, score: score, phonetic: true}
				}
			}
		} else if !best.phonetic {
			if score >= m.fuzzyThreshold && score > best.score {
				best = candidate{trigger: trigger, score: score, phonetic: false}
			}
		}
	}

	if best.trigger != "" {
		return best.trigger, best.score, true
	}
	return token, 0, false
}

// codesFor returns the set of Double Metaphone codes for a token. Empty
// codes (token too short or no consonants) are excluded.
func codesFor(token string) map[string]struct{} {
	codes := make(map[string]struct{}, 2)
	p, s := matchr.DoubleMetaphone(token)
	if p != "" {
		codes[p] = struct{}{}
	}
	if s != "" {
		codes[s] = struct{}{}
	}
	return codes
}

// codesOverlap returns true if the two code sets share at least one code.
func codesOverlap(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}
