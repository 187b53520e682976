// Package voice implements the DocVox voice-command core: it turns a noisy,
// possibly-misrecognised speech transcript into one of a closed set of
// document-assistant actions and composes a spoken reply from
// already-computed document-analysis data, without any network call.
//
// The package is organised as a small pipeline:
//
//	Normalizer → Matcher → Composer → Session
//
// The Normalizer lowercases a raw transcript and applies the misrecognition
// correction table (plus an optional phonetic stage). The Matcher maps the
// normalised text to an [Intent] through three ordered tiers (exact token,
// phrase substring, fuzzy token). The Composer renders the reply for the
// active command locale against the document's [AnalysisSnapshot], never
// mixing two scripts in one utterance. The [Session] owns the
// listening/processing state machine and dispatches to the speech
// collaborators.
package voice

// Intent identifies one recognised voice-command action. The set is closed:
// every recognition call produces exactly one Intent, with [IntentUnknown]
// as the total fallback.
type Intent string

const (
	IntentReadSummary  Intent = "READ_SUMMARY"
	IntentGetDeadlines Intent = "GET_DEADLINES"
	IntentGetKeyInfo   Intent = "GET_KEY_INFO"
	IntentGetType      Intent = "GET_TYPE"
	IntentGetActions   Intent = "GET_ACTIONS"
	IntentGetAmount    Intent = "GET_AMOUNT"
	IntentWarnings     Intent = "WARNINGS"
	IntentTranslate    Intent = "TRANSLATE"
	IntentStop         Intent = "STOP"
	IntentHelp         Intent = "HELP"
	IntentRepeat       Intent = "REPEAT"
	IntentDownload     Intent = "DOWNLOAD"
	IntentShare        Intent = "SHARE"
	IntentReadFull     Intent = "READ_FULL"
	IntentUnknown      Intent = "UNKNOWN"
)

// IsControl reports whether i is a pure control intent, one whose response
// never depends on document data and is never stored as the last response.
func (i Intent) IsControl() bool {
	switch i {
	case IntentStop, IntentHelp, IntentRepeat:
		return true
	}
	return false
}

// Params carries intent-specific extras extracted during recognition.
// Only TRANSLATE populates it today.
type Params struct {
	// Language is the resolved target language name (e.g., "tamil").
	Language string `json:"language,omitempty"`

	// LanguageCode is the BCP-47 code for Language (e.g., "ta-IN").
	LanguageCode string `json:"languageCode,omitempty"`
}

// CommandResult is the outcome of a single ProcessCommand call.
type CommandResult struct {
	// Intent is the recognised action.
	Intent Intent `json:"intent"`

	// Params holds intent-specific extras.
	Params Params `json:"params"`

	// Transcript is the raw transcript the command was recognised from.
	Transcript string `json:"transcript"`

	// Response is the exact utterance text composed for the reply.
	Response string `json:"response"`
}

// AnalysisSnapshot is the externally owned, read-only document-analysis
// record the composer extracts reply data from. It is created once per
// document by the analysis pipeline; the voice core never mutates it and
// does not validate it beyond treating empty fields as "no data".
type AnalysisSnapshot struct {
	Summary          string   `json:"summary"`
	SpeakableSummary string   `json:"speakableSummary"`
	Explanation      string   `json:"explanation"`
	KeyInformation   []string `json:"keyInformation"`
	Warnings         []string `json:"warnings"`
	SuggestedActions []string `json:"suggestedActions"`
	Deadlines        []string `json:"deadlines"`
	DocumentType     string   `json:"documentType"`
	ExtractedText    string   `json:"extractedText"`
}
