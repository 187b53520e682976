package voice

import (
	"errors"
	"fmt"
	"strings"
)

// Locale is a BCP-47 command-language tag. The command locale controls which
// trigger vocabulary is favoured and which reply templates are used; it is
// independent of the document's own content language.
type Locale string

const (
	LocaleEnglish Locale = "en-IN"
	LocaleHindi   Locale = "hi-IN"
	LocaleTelugu  Locale = "te-IN"
	LocaleTamil   Locale = "ta-IN"
)

// catalogLocales fixes the iteration order of per-locale trigger lists so
// that matching stays deterministic. English first: it is the default and
// fallback locale.
var catalogLocales = []Locale{LocaleEnglish, LocaleHindi, LocaleTelugu, LocaleTamil}

// NormalizeLocale maps an arbitrary BCP-47 tag onto a supported command
// locale by its language subtag. Unknown or empty tags fall back to English.
func NormalizeLocale(tag string) Locale {
	lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(tag)), "-")
	switch lang {
	case "hi":
		return LocaleHindi
	case "te":
		return LocaleTelugu
	case "ta":
		return LocaleTamil
	case "en":
		return LocaleEnglish
	}
	return LocaleEnglish
}

// PatternEntry binds one Intent to its per-locale trigger phrases. Slice
// order inside a trigger list carries no priority; the position of the entry
// in [patterns] does: earlier entries win ties within a matching tier.
type PatternEntry struct {
	Intent   Intent
	Triggers map[Locale][]string
}

// patterns is the trigger catalog. All triggers are stored lowercase; the
// matcher runs against normalised transcripts only. Native-script triggers
// are listed next to Latin transliterations because command-mode speech
// recognition frequently transliterates Indian-language speech without
// reliable whitespace boundaries.
var patterns = []PatternEntry{
	{
		Intent: IntentReadSummary,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"summary", "summarize", "summarise", "overview", "gist"},
			LocaleHindi:   {"सारांश", "saransh", "saaransh"},
			LocaleTelugu:  {"సారాంశం", "saramsam"},
			LocaleTamil:   {"சுருக்கம்", "surukkam"},
		},
	},
	{
		Intent: IntentGetDeadlines,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"deadline", "deadlines", "due", "due date", "last date"},
			LocaleHindi:   {"समय सीमा", "समयसीमा", "अंतिम तिथि", "antim tithi"},
			LocaleTelugu:  {"గడువు", "gaduvu"},
			LocaleTamil:   {"காலக்கெடு", "kalakkedu"},
		},
	},
	{
		Intent: IntentGetKeyInfo,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"key information", "key info", "important", "details", "key points"},
			LocaleHindi:   {"मुख्य जानकारी", "जानकारी", "jankari", "jaankari"},
			LocaleTelugu:  {"ముఖ్య సమాచారం", "సమాచారం", "samacharam"},
			LocaleTamil:   {"முக்கிய தகவல்", "தகவல்", "thagaval"},
		},
	},
	{
		Intent: IntentGetType,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"type", "kind", "what is this", "document type", "what kind"},
			LocaleHindi:   {"प्रकार", "prakar", "कैसा दस्तावेज़"},
			LocaleTelugu:  {"రకం", "ఏ రకం"},
			LocaleTamil:   {"வகை", "vagai"},
		},
	},
	{
		Intent: IntentGetActions,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"action", "actions", "next steps", "what should", "to do"},
			LocaleHindi:   {"कार्रवाई", "क्या करें", "kya karna", "karrvai"},
			LocaleTelugu:  {"చర్యలు", "ఏం చేయాలి", "charyalu"},
			LocaleTamil:   {"நடவடிக்கை", "nadavadikkai"},
		},
	},
	{
		Intent: IntentGetAmount,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"amount", "money", "cost", "price", "fee", "how much"},
			LocaleHindi:   {"राशि", "पैसा", "कितना", "kitna paisa"},
			LocaleTelugu:  {"మొత్తం", "ఎంత", "entha"},
			LocaleTamil:   {"தொகை", "எவ்வளவு", "evvalavu"},
		},
	},
	{
		Intent: IntentWarnings,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"warning", "warnings", "risk", "risks", "careful", "danger", "alert"},
			LocaleHindi:   {"चेतावनी", "chetavani", "खतरा", "khatra"},
			LocaleTelugu:  {"హెచ్చరిక", "హెచ్చరికలు", "hechcharika"},
			LocaleTamil:   {"எச்சரிக்கை", "echarikkai"},
		},
	},
	{
		Intent: IntentTranslate,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"translate", "translation", "convert to"},
			LocaleHindi:   {"अनुवाद", "anuvad", "अनुवाद करो"},
			LocaleTelugu:  {"అనువాదం", "అనువదించు", "anuvadam"},
			LocaleTamil:   {"மொழிபெயர்", "மொழிபெயர்ப்பு", "mozhipeyar"},
		},
	},
	{
		Intent: IntentStop,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"stop", "quiet", "silence", "cancel", "enough"},
			LocaleHindi:   {"रुको", "बंद", "चुप", "ruko", "band karo", "chup"},
			LocaleTelugu:  {"ఆపు", "ఆపండి", "aapu", "aapandi"},
			LocaleTamil:   {"நிறுத்து", "நிறுத்துங்கள்", "niruthu"},
		},
	},
	{
		Intent: IntentHelp,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"help", "commands", "options", "what can you"},
			LocaleHindi:   {"मदद", "सहायता", "madad", "sahayata"},
			LocaleTelugu:  {"సహాయం", "సాయం", "sahayam"},
			LocaleTamil:   {"உதவி", "udhavi"},
		},
	},
	{
		Intent: IntentRepeat,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"repeat", "again", "pardon", "once more"},
			LocaleHindi:   {"दोहराओ", "फिर से", "dohrao", "phir se"},
			LocaleTelugu:  {"మళ్ళీ", "మళ్లీ", "malli"},
			LocaleTamil:   {"மீண்டும்", "திரும்ப", "meendum"},
		},
	},
	{
		Intent: IntentDownload,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"download", "save"},
			LocaleHindi:   {"डाउनलोड", "सेव करो"},
			LocaleTelugu:  {"డౌన్లోడ్", "సేవ్"},
			LocaleTamil:   {"பதிவிறக்கு", "பதிவிறக்கம்"},
		},
	},
	{
		Intent: IntentShare,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"share", "send", "whatsapp", "forward"},
			LocaleHindi:   {"शेयर", "साझा", "भेजो", "bhejo"},
			LocaleTelugu:  {"షేర్", "పంపు", "pampu"},
			LocaleTamil:   {"பகிர்", "அனுப்பு", "anuppu"},
		},
	},
	{
		Intent: IntentReadFull,
		Triggers: map[Locale][]string{
			LocaleEnglish: {"full", "entire", "everything", "complete", "whole", "read aloud", "read full document"},
			LocaleHindi:   {"पूरा", "पूरा पढ़ो", "poora", "poora padho"},
			LocaleTelugu:  {"పూర్తి", "పూర్తిగా", "poorthi"},
			LocaleTamil:   {"முழு", "முழுவதும்", "muzhu"},
		},
	},
}

// Correction maps one commonly misheard phrase to its canonical form.
// Corrections are applied in table order as global substring replacements
// over the whole normalised transcript, so one replacement's output may feed
// a later rule. That chaining is the documented behaviour.
type Correction struct {
	Misheard  string
	Canonical string
}

// corrections is the default misrecognition table. All entries lowercase;
// the normalizer lowercases the transcript before applying them.
var corrections = []Correction{
	{"some marie", "summary"},
	{"some mary", "summary"},
	{"summery", "summary"},
	{"sum mary", "summary"},
	{"dead line", "deadline"},
	{"dead lines", "deadlines"},
	{"date line", "deadline"},
	{"k information", "key information"},
	{"quay information", "key information"},
	{"warming", "warning"},
	{"transulate", "translate"},
	{"trans late", "translate"},
	{"down load", "download"},
	{"down lode", "download"},
	{"stob", "stop"},
	{"repeet", "repeat"},
	{"hell p", "help"},
	{"aa pu", "ఆపు"},
}

// Language pairs a translate-target language with its BCP-47 code, the
// spellings the matcher scans for in a normalised transcript, and the
// display name per command locale (used in the translate acknowledgement so
// the ack never mixes two scripts). Slice order is scan order; the first
// spelling found wins.
type Language struct {
	Name      string
	Code      string
	Spellings []string
	Display   map[Locale]string
}

// languages is the fixed translate-target vocabulary. Hindi is listed first:
// it is also the policy default when a translate command names no language.
var languages = []Language{
	{
		Name: "hindi", Code: "hi-IN",
		Spellings: []string{"hindi", "हिंदी", "हिन्दी", "హిందీ"},
		Display:   map[Locale]string{LocaleHindi: "हिंदी", LocaleTelugu: "హిందీ", LocaleTamil: "இந்தி"},
	},
	{
		Name: "telugu", Code: "te-IN",
		Spellings: []string{"telugu", "తెలుగు", "तेलुगु"},
		Display:   map[Locale]string{LocaleHindi: "तेलुगु", LocaleTelugu: "తెలుగు", LocaleTamil: "தெலுங்கு"},
	},
	{
		Name: "tamil", Code: "ta-IN",
		Spellings: []string{"tamil", "தமிழ்", "तमिल"},
		Display:   map[Locale]string{LocaleHindi: "तमिल", LocaleTelugu: "తమిళం", LocaleTamil: "தமிழ்"},
	},
	{
		Name: "kannada", Code: "kn-IN",
		Spellings: []string{"kannada", "ಕನ್ನಡ"},
		Display:   map[Locale]string{LocaleHindi: "कन्नड़", LocaleTelugu: "కన్నడ", LocaleTamil: "கன்னடம்"},
	},
	{
		Name: "malayalam", Code: "ml-IN",
		Spellings: []string{"malayalam", "മലയാളം"},
		Display:   map[Locale]string{LocaleHindi: "मलयालम", LocaleTelugu: "మలయాళం", LocaleTamil: "மலையாளம்"},
	},
	{
		Name: "bengali", Code: "bn-IN",
		Spellings: []string{"bengali", "bangla", "বাংলা"},
		Display:   map[Locale]string{LocaleHindi: "बंगाली", LocaleTelugu: "బెంగాలీ", LocaleTamil: "வங்காளம்"},
	},
	{
		Name: "marathi", Code: "mr-IN",
		Spellings: []string{"marathi", "मराठी"},
		Display:   map[Locale]string{LocaleHindi: "मराठी", LocaleTelugu: "మరాఠీ", LocaleTamil: "மராத்தி"},
	},
	{
		Name: "gujarati", Code: "gu-IN",
		Spellings: []string{"gujarati", "ગુજરાતી"},
		Display:   map[Locale]string{LocaleHindi: "गुजराती", LocaleTelugu: "గుజరాతీ", LocaleTamil: "குஜராத்தி"},
	},
	{
		Name: "punjabi", Code: "pa-IN",
		Spellings: []string{"punjabi", "ਪੰਜਾਬੀ"},
		Display:   map[Locale]string{LocaleHindi: "पंजाबी", LocaleTelugu: "పంజాబీ", LocaleTamil: "பஞ்சாபி"},
	},
	{
		Name: "urdu", Code: "ur-IN",
		Spellings: []string{"urdu", "اردو"},
		Display:   map[Locale]string{LocaleHindi: "उर्दू", LocaleTelugu: "ఉర్దూ", LocaleTamil: "உருது"},
	},
	{
		Name: "english", Code: "en-IN",
		Spellings: []string{"english", "अंग्रेजी", "angrezi"},
		Display:   map[Locale]string{LocaleHindi: "अंग्रेज़ी", LocaleTelugu: "ఇంగ్లీష్", LocaleTamil: "ஆங்கிலம்"},
	},
}

// defaultTranslateTarget is used when a translate command names no language.
// Never leaving TRANSLATE without a target is deliberate policy, not an
// error condition.
var defaultTranslateTarget = languages[0]

// Patterns returns the trigger catalog in priority order.
func Patterns() []PatternEntry { return patterns }

// Corrections returns the default misrecognition correction table.
func Corrections() []Correction { return corrections }

// Languages returns the translate-target vocabulary.
func Languages() []Language { return languages }

// TriggerVocabulary returns every single-word Latin-script trigger in the
// catalog, in catalog order. This is the snap-to vocabulary for the optional
// phonetic correction stage.
func TriggerVocabulary() []string {
	var vocab []string
	seen := make(map[string]struct{})
	for _, entry := range patterns {
		for _, loc := range catalogLocales {
			for _, trigger := range entry.Triggers[loc] {
				if strings.ContainsRune(trigger, ' ') || !isLatin(trigger) {
					continue
				}
				if _, dup := seen[trigger]; dup {
					continue
				}
				seen[trigger] = struct{}{}
				vocab = append(vocab, trigger)
			}
		}
	}
	return vocab
}

// ValidateCatalog checks the built-in catalog for internal consistency:
// every pattern entry names an intent and carries English triggers, every
// catalog locale has a template set, and the translate vocabulary has a
// default target. It backs the server's readiness probe; a failure here
// means the binary was built from a broken catalog.
func ValidateCatalog() error {
	if len(patterns) == 0 {
		return errors.New("voice: catalog has no pattern entries")
	}
	for i, entry := range patterns {
		if entry.Intent == "" {
			return fmt.Errorf("voice: catalog entry %d has no intent", i)
		}
		if len(entry.Triggers[LocaleEnglish]) == 0 {
			return fmt.Errorf("voice: catalog entry %s has no English triggers", entry.Intent)
		}
	}
	for _, loc := range catalogLocales {
		if _, ok := templatesByLocale[loc]; !ok {
			return fmt.Errorf("voice: locale %s has no template set", loc)
		}
	}
	if len(languages) == 0 {
		return errors.New("voice: catalog has no translate targets")
	}
	return nil
}
