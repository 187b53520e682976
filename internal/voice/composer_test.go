package voice_test

import (
	"strings"
	"testing"

	"github.com/NithinRegidi/docvox/internal/voice"
)

func sampleSnapshot() *voice.AnalysisSnapshot {
	return &voice.AnalysisSnapshot{
		Summary:          "This is an electricity bill for January.",
		SpeakableSummary: "This is your electricity bill for January.",
		KeyInformation:   []string{"Consumer number 4521", "Amount due: ₹1,250.50"},
		Warnings:         []string{"Late fee applies after the due date"},
		SuggestedActions: []string{"Pay before the due date"},
		Deadlines:        []string{"Pay electricity bill by 2025-01-10"},
		DocumentType:     "electricity bill",
		ExtractedText:    "Electricity bill. Consumer number 4521. Amount due ₹1,250.50.",
	}
}

func TestCompose_DeadlineSingular(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	got := c.Compose(voice.IntentGetDeadlines, voice.Params{}, voice.LocaleEnglish, sampleSnapshot(), "")
	want := "I found 1 deadline in this document. Pay electricity bill by 2025-01-10"
	if got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}

func TestCompose_DeadlinePlural(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	snap := sampleSnapshot()
	snap.Deadlines = []string{"Pay by 2025-01-10", "Renew by 2025-02-01"}

	got := c.Compose(voice.IntentGetDeadlines, voice.Params{}, voice.LocaleEnglish, snap, "")
	want := "I found 2 deadlines in this document. Pay by 2025-01-10. Renew by 2025-02-01"
	if got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}

func TestCompose_StopPerLocale(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	tests := []struct {
		locale voice.Locale
		want   string
	}{
		{voice.LocaleEnglish, "Okay, stopping."},
		{voice.LocaleHindi, "ठीक है, रोक रहा हूँ।"},
		{voice.LocaleTelugu, "సరే, ఆపుతున్నాను."},
		{voice.LocaleTamil, "சரி, நிறுத்துகிறேன்."},
	}

	for _, tc := range tests {
		t.Run(string(tc.locale), func(t *testing.T) {
			t.Parallel()
			got := c.Compose(voice.IntentStop, voice.Params{}, tc.locale, nil, "")
			if got != tc.want {
				t.Errorf("Compose(STOP, %s) = %q, want %q", tc.locale, got, tc.want)
			}
		})
	}
}

func TestCompose_UnknownMentionsHelp(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	got := c.Compose(voice.IntentUnknown, voice.Params{}, voice.LocaleEnglish, nil, "")
	want := "Sorry, I didn't catch that. Say help to hear what I can do."
	if got != want {
		t.Errorf("Compose(UNKNOWN) = %q, want %q", got, want)
	}
}

func TestCompose_AntiMixing_RawDataForeignScript(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	// Latin-script summary under a Hindi command locale: the localized
	// template would mix scripts, so the data is returned alone.
	snap := sampleSnapshot()
	got := c.Compose(voice.IntentReadSummary, voice.Params{}, voice.LocaleHindi, snap, "")
	if got != snap.SpeakableSummary {
		t.Errorf("Compose = %q, want raw data %q", got, snap.SpeakableSummary)
	}
}

func TestCompose_AntiMixing_WrapsMatchingScript(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	snap := sampleSnapshot()
	snap.SpeakableSummary = "यह जनवरी का बिजली बिल है।"

	got := c.Compose(voice.IntentReadSummary, voice.Params{}, voice.LocaleHindi, snap, "")
	want := "यह रहा सारांश। यह जनवरी का बिजली बिल है।"
	if got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}

func TestCompose_AntiMixing_DeadlinesRawUnderTelugu(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	snap := sampleSnapshot()
	got := c.Compose(voice.IntentGetDeadlines, voice.Params{}, voice.LocaleTelugu, snap, "")
	want := "Pay electricity bill by 2025-01-10"
	if got != want {
		t.Errorf("Compose = %q, want raw deadline %q", got, want)
	}
}

func TestCompose_EnglishWrapsAnyData(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	// English is the fallback voice; it wraps regardless of data script.
	snap := sampleSnapshot()
	snap.SpeakableSummary = "यह जनवरी का बिजली बिल है।"

	got := c.Compose(voice.IntentReadSummary, voice.Params{}, voice.LocaleEnglish, snap, "")
	if !strings.HasPrefix(got, "Here is the summary. ") {
		t.Errorf("Compose = %q, want English template prefix", got)
	}
}

func TestCompose_TranslateAcknowledgement(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	tests := []struct {
		name   string
		locale voice.Locale
		params voice.Params
		want   string
	}{
		{
			"english tamil",
			voice.LocaleEnglish,
			voice.Params{Language: "tamil", LanguageCode: "ta-IN"},
			"Okay, translating this document to Tamil.",
		},
		{
			"telugu locale tamil target uses native name",
			voice.LocaleTelugu,
			voice.Params{Language: "tamil", LanguageCode: "ta-IN"},
			"సరే, ఈ పత్రాన్ని తమిళంలోకి అనువదిస్తున్నాను.",
		},
		{
			"hindi locale default target",
			voice.LocaleHindi,
			voice.Params{},
			"ठीक है, दस्तावेज़ का हिंदी में अनुवाद कर रहा हूँ।",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := c.Compose(voice.IntentTranslate, tc.params, tc.locale, nil, "")
			if got != tc.want {
				t.Errorf("Compose = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCompose_RepeatReturnsLastResponse(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	last := "I found 1 deadline in this document. Pay electricity bill by 2025-01-10"
	got := c.Compose(voice.IntentRepeat, voice.Params{}, voice.LocaleEnglish, nil, last)
	if got != last {
		t.Errorf("Compose(REPEAT) = %q, want %q", got, last)
	}
}

func TestCompose_RepeatWithoutHistory(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	got := c.Compose(voice.IntentRepeat, voice.Params{}, voice.LocaleEnglish, nil, "")
	want := "There is nothing to repeat yet."
	if got != want {
		t.Errorf("Compose(REPEAT) = %q, want %q", got, want)
	}
}

func TestCompose_AmountHeuristic(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	got := c.Compose(voice.IntentGetAmount, voice.Params{}, voice.LocaleEnglish, sampleSnapshot(), "")
	want := "The amount mentioned in this document is Amount due: ₹1,250.50."
	if got != want {
		t.Errorf("Compose(GET_AMOUNT) = %q, want %q", got, want)
	}
}

func TestCompose_AmountVariants(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	tests := []struct {
		name  string
		entry string
		found bool
	}{
		{"rupee symbol", "Total ₹500", true},
		{"rs prefix", "rs. 1,200 payable", true},
		{"amount then unit", "1200 rupees outstanding", true},
		{"dollar", "$45.99 monthly", true},
		{"no amount", "Consumer number 4521", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			snap := &voice.AnalysisSnapshot{KeyInformation: []string{tc.entry}}
			got := c.Compose(voice.IntentGetAmount, voice.Params{}, voice.LocaleEnglish, snap, "")
			if tc.found {
				if !strings.Contains(got, tc.entry) {
					t.Errorf("Compose = %q, should contain %q", got, tc.entry)
				}
			} else {
				want := "I could not find an amount in this document."
				if got != want {
					t.Errorf("Compose = %q, want %q", got, want)
				}
			}
		})
	}
}

func TestCompose_NilSnapshot(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	tests := []struct {
		intent voice.Intent
		want   string
	}{
		{voice.IntentReadSummary, "No summary is available for this document yet."},
		{voice.IntentGetDeadlines, "I did not find any deadlines in this document."},
		{voice.IntentGetKeyInfo, "I could not find key information in this document."},
		{voice.IntentGetType, "I am not sure what type of document this is."},
		{voice.IntentGetActions, "No suggested actions were found for this document."},
		{voice.IntentGetAmount, "I could not find an amount in this document."},
		{voice.IntentWarnings, "Good news, I found no warnings in this document."},
		{voice.IntentReadFull, "There is no extracted text to read for this document."},
	}

	for _, tc := range tests {
		t.Run(string(tc.intent), func(t *testing.T) {
			t.Parallel()
			got := c.Compose(tc.intent, voice.Params{}, voice.LocaleEnglish, nil, "")
			if got != tc.want {
				t.Errorf("Compose(%s, nil) = %q, want %q", tc.intent, got, tc.want)
			}
		})
	}
}

func TestCompose_UnsupportedLocaleFallsBackToEnglish(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	got := c.Compose(voice.IntentStop, voice.Params{}, voice.Locale("kn-IN"), nil, "")
	if got != "Okay, stopping." {
		t.Errorf("Compose(STOP, kn-IN) = %q, want English fallback", got)
	}
}

func TestCompose_SummaryPrefersSpeakable(t *testing.T) {
	t.Parallel()
	c := voice.NewComposer()

	snap := sampleSnapshot()
	got := c.Compose(voice.IntentReadSummary, voice.Params{}, voice.LocaleEnglish, snap, "")
	want := "Here is the summary. " + snap.SpeakableSummary
	if got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}

	snap.SpeakableSummary = ""
	got = c.Compose(voice.IntentReadSummary, voice.Params{}, voice.LocaleEnglish, snap, "")
	want = "Here is the summary. " + snap.Summary
	if got != want {
		t.Errorf("Compose without speakable = %q, want %q", got, want)
	}
}
