package voice

import (
	"regexp"
	"strings"
	"unicode"
)

// amountPattern is the currency/amount heuristic for GET_AMOUNT: a currency
// marker next to a number, in either order. Matched against each key
// information entry in turn.
var amountPattern = regexp.MustCompile(
	`(?i)(?:₹|rs\.?|inr|\$|usd|rupees?)\s*[0-9][0-9,]*(?:\.[0-9]+)?` +
		`|[0-9][0-9,]*(?:\.[0-9]+)?\s*(?:rupees?|rs\.?|inr|₹)`,
)

// deadlineSeparator joins multiple extracted list entries into one utterance.
const deadlineSeparator = ". "

// Composer renders the reply for a recognised intent against the document
// snapshot, honouring the anti-mixing rule: a single composed utterance
// never interleaves two scripts. A Composer is read-only after construction
// and safe for concurrent use.
type Composer struct {
	templates map[Locale]*templateSet
	languages []Language
}

// NewComposer constructs a [Composer] over the built-in template tables.
func NewComposer() *Composer {
	return &Composer{
		templates: templatesByLocale,
		languages: languages,
	}
}

// Compose produces the exact utterance text for intent under the given
// command locale. snap may be nil (treated as an empty snapshot).
// lastResponse feeds REPEAT, the only intent that skips data extraction.
//
// Template selection: a localized template is used only when the intent
// needs no document data, or when the extracted data is itself written in
// the locale's script. Data in a different script is returned alone, never
// concatenated with a localized label. Locales without templates fall back
// to English.
func (c *Composer) Compose(intent Intent, params Params, locale Locale, snap *AnalysisSnapshot, lastResponse string) string {
	loc := NormalizeLocale(string(locale))
	ts, ok := c.templates[loc]
	if !ok {
		ts = c.templates[LocaleEnglish]
		loc = LocaleEnglish
	}
	localized := loc != LocaleEnglish
	script := localeScripts[loc]

	if snap == nil {
		snap = &AnalysisSnapshot{}
	}

	switch intent {
	case IntentStop:
		return ts.stop
	case IntentHelp:
		return ts.help
	case IntentRepeat:
		if lastResponse != "" {
			return lastResponse
		}
		return ts.nothingToRepeat
	case IntentDownload:
		return ts.download
	case IntentShare:
		return ts.share
	case IntentTranslate:
		return ts.translate(c.displayLanguage(params, loc))

	case IntentReadSummary:
		data := snap.SpeakableSummary
		if data == "" {
			data = snap.Summary
		}
		if data == "" {
			return ts.noSummary
		}
		return wrapOrRaw(localized, script, data, ts.summary)

	case IntentGetDeadlines:
		if len(snap.Deadlines) == 0 {
			return ts.noDeadlines
		}
		joined := strings.Join(snap.Deadlines, deadlineSeparator)
		if localized && !inScript(joined, script) {
			return joined
		}
		return ts.deadlines(len(snap.Deadlines), joined)

	case IntentGetKeyInfo:
		if len(snap.KeyInformation) == 0 {
			return ts.noKeyInfo
		}
		joined := strings.Join(snap.KeyInformation, deadlineSeparator)
		return wrapOrRaw(localized, script, joined, ts.keyInfo)

	case IntentGetType:
		if snap.DocumentType == "" {
			return ts.noDocType
		}
		return wrapOrRaw(localized, script, snap.DocumentType, ts.docType)

	case IntentGetActions:
		if len(snap.SuggestedActions) == 0 {
			return ts.noActions
		}
		joined := strings.Join(snap.SuggestedActions, deadlineSeparator)
		return wrapOrRaw(localized, script, joined, ts.actions)

	case IntentGetAmount:
		entry := firstAmountEntry(snap.KeyInformation)
		if entry == "" {
			return ts.noAmount
		}
		return wrapOrRaw(localized, script, entry, ts.amount)

	case IntentWarnings:
		if len(snap.Warnings) == 0 {
			return ts.noWarnings
		}
		joined := strings.Join(snap.Warnings, deadlineSeparator)
		return wrapOrRaw(localized, script, joined, ts.warnings)

	case IntentReadFull:
		if snap.ExtractedText == "" {
			return ts.noFullText
		}
		return wrapOrRaw(localized, script, snap.ExtractedText, ts.fullText)
	}

	return ts.unknown
}

// wrapOrRaw applies the localized wrapping template only when allowed by the
// anti-mixing rule; otherwise it returns the extracted data alone.
func wrapOrRaw(localized bool, script *unicode.RangeTable, data string, wrap func(string) string) string {
	if localized && !inScript(data, script) {
		return data
	}
	return wrap(data)
}

// displayLanguage resolves the spoken name of the translate target for the
// given locale. English gets the capitalised English name; localized tables
// carry native-script names for every vocabulary language.
func (c *Composer) displayLanguage(params Params, loc Locale) string {
	name := params.Language
	if name == "" {
		name = defaultTranslateTarget.Name
	}
	for _, lang := range c.languages {
		if lang.Name != name {
			continue
		}
		if loc != LocaleEnglish {
			if display, ok := lang.Display[loc]; ok {
				return display
			}
		}
		return capitalize(lang.Name)
	}
	return capitalize(name)
}

// firstAmountEntry returns the first key information entry matching the
// currency/amount heuristic, or "".
func firstAmountEntry(entries []string) string {
	for _, e := range entries {
		if amountPattern.MatchString(e) {
			return e
		}
	}
	return ""
}

// capitalize uppercases the first rune of s.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
