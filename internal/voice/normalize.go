package voice

import "strings"

// minPhoneticTokenLen is the shortest token the phonetic stage will touch.
// Short tokens carry too little phonetic signal to snap safely.
const minPhoneticTokenLen = 3

// PhoneticMatcher snaps one misheard token onto a known vocabulary word.
// When matched is false, corrected must equal token unchanged.
type PhoneticMatcher interface {
	Match(token string, vocab []string) (corrected string, confidence float64, matched bool)
}

// NormalizerOption is a functional option for configuring a [Normalizer].
type NormalizerOption func(*Normalizer)

// WithCorrections replaces the default misrecognition correction table.
// Entries are applied in slice order.
func WithCorrections(table []Correction) NormalizerOption {
	return func(n *Normalizer) {
		n.corrections = table
	}
}

// WithPhoneticMatcher attaches a [PhoneticMatcher] as an extra correction
// stage after the static table. When nil (the default), the phonetic stage
// is skipped entirely.
func WithPhoneticMatcher(m PhoneticMatcher) NormalizerOption {
	return func(n *Normalizer) {
		n.phonetic = m
	}
}

// Normalizer prepares a raw transcript for intent matching. It lowercases
// and trims the input, applies the misrecognition correction table as
// ordered global substring replacements, and optionally runs a phonetic
// stage that snaps unrecognised Latin tokens onto the trigger vocabulary.
//
// Normalize is a pure function of its input; a Normalizer is read-only after
// construction and safe for concurrent use.
type Normalizer struct {
	corrections []Correction
	phonetic    PhoneticMatcher
	vocab       []string
}

// NewNormalizer constructs a [Normalizer] with the catalog correction table
// and no phonetic stage. Use options to override either.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		corrections: corrections,
		vocab:       TriggerVocabulary(),
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Normalize lowercases and trims raw, then applies every correction as a
// global substring replacement, in table order. One replacement's output may
// legally match a later rule; the chaining is preserved as documented
// behaviour. Always returns a string, possibly unchanged.
func (n *Normalizer) Normalize(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))
	for _, c := range n.corrections {
		text = strings.ReplaceAll(text, c.Misheard, c.Canonical)
	}
	if n.phonetic != nil {
		text = n.applyPhonetic(text)
	}
	return text
}

// applyPhonetic runs the optional phonetic stage token by token. Only Latin
// tokens of at least [minPhoneticTokenLen] runes are offered to the matcher;
// everything else passes through untouched so native-script commands are
// never rewritten.
func (n *Normalizer) applyPhonetic(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return text
	}

	changed := false
	for i, tok := range tokens {
		if len([]rune(tok)) < minPhoneticTokenLen || !isLatin(tok) {
			continue
		}
		corrected, _, ok := n.phonetic.Match(tok, n.vocab)
		if ok && corrected != tok {
			tokens[i] = corrected
			changed = true
		}
	}
	if !changed {
		return text
	}
	return strings.Join(tokens, " ")
}
