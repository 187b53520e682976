package voice

import "unicode"

// localeScripts maps each supported command locale to the Unicode range
// table of its native script. Locales absent from this map (and English)
// compose with the default templates and need no script test.
var localeScripts = map[Locale]*unicode.RangeTable{
	LocaleHindi:  unicode.Devanagari,
	LocaleTelugu: unicode.Telugu,
	LocaleTamil:  unicode.Tamil,
}

// inScript reports whether s contains at least one rune of the given script.
// This is the per-script test behind the anti-mixing rule: a localized
// template may only wrap extracted data when the data itself is written in
// the locale's script.
func inScript(s string, rt *unicode.RangeTable) bool {
	if rt == nil {
		return false
	}
	for _, r := range s {
		if unicode.Is(rt, r) {
			return true
		}
	}
	return false
}

// isLatin reports whether every letter in s is Latin script. Digits,
// punctuation, and spaces are ignored so that "2025-01-10" or "a/c" still
// count as Latin text.
func isLatin(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.Is(unicode.Latin, r) {
			return false
		}
	}
	return true
}
