package voice_test

import (
	"testing"

	"github.com/NithinRegidi/docvox/internal/voice"
)

// stubPhonetic snaps a fixed set of tokens, mimicking the phonetic stage
// without depending on real metaphone behaviour.
type stubPhonetic struct {
	table map[string]string
}

func (s *stubPhonetic) Match(token string, _ []string) (string, float64, bool) {
	if corrected, ok := s.table[token]; ok {
		return corrected, 0.9, true
	}
	return token, 0, false
}

func TestNormalize_LowercaseAndTrim(t *testing.T) {
	t.Parallel()
	n := voice.NewNormalizer()

	got := n.Normalize("  Read The SUMMARY  ")
	if got != "read the summary" {
		t.Errorf("Normalize = %q, want %q", got, "read the summary")
	}
}

func TestNormalize_CorrectionTable(t *testing.T) {
	t.Parallel()
	n := voice.NewNormalizer()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"misheard summary", "read the some marie", "read the summary"},
		{"split deadline", "what is the dead line", "what is the deadline"},
		{"split plural chains through singular rule", "any dead lines here", "any deadlines here"},
		{"split help", "hell p", "help"},
		{"latin stop to telugu", "aa pu", "ఆపు"},
		{"no rule applies", "show me the warnings", "show me the warnings"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := n.Normalize(tc.raw); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalize_CustomCorrections(t *testing.T) {
	t.Parallel()
	n := voice.NewNormalizer(voice.WithCorrections([]voice.Correction{
		{Misheard: "sam mary", Canonical: "summary"},
	}))

	if got := n.Normalize("Sam Mary please"); got != "summary please" {
		t.Errorf("Normalize = %q, want %q", got, "summary please")
	}
	// The default table is replaced, not extended.
	if got := n.Normalize("some marie"); got != "some marie" {
		t.Errorf("Normalize = %q, want default rule dropped", got)
	}
}

func TestNormalize_PhoneticStage(t *testing.T) {
	t.Parallel()
	n := voice.NewNormalizer(voice.WithPhoneticMatcher(&stubPhonetic{
		table: map[string]string{"summry": "summary", "dedlines": "deadlines"},
	}))

	got := n.Normalize("read the summry and dedlines")
	want := "read the summary and deadlines"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_PhoneticSkipsShortTokens(t *testing.T) {
	t.Parallel()
	// The stub would rewrite "su" if asked; the normalizer must not ask.
	n := voice.NewNormalizer(voice.WithPhoneticMatcher(&stubPhonetic{
		table: map[string]string{"su": "summary"},
	}))

	if got := n.Normalize("su"); got != "su" {
		t.Errorf("Normalize = %q, short token must pass through", got)
	}
}

func TestNormalize_PhoneticSkipsNativeScript(t *testing.T) {
	t.Parallel()
	n := voice.NewNormalizer(voice.WithPhoneticMatcher(&stubPhonetic{
		table: map[string]string{"सारांश": "summary"},
	}))

	if got := n.Normalize("सारांश बताओ"); got != "सारांश बताओ" {
		t.Errorf("Normalize = %q, native script must pass through", got)
	}
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()
	n := voice.NewNormalizer()

	if got := n.Normalize("   "); got != "" {
		t.Errorf("Normalize = %q, want empty", got)
	}
}
