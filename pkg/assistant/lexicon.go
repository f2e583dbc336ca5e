package assistant

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type LexiconEntry struct {
	Phrase string     `json:"phrase"`
	Key    SettingKey `json:"key"`
}

// defaultLexicon is scanned top to bottom; the first phrase found as a
// substring of the normalized utterance wins. Synonyms for the same setting
// are separate rows. The table is static and not user-mutable.
var defaultLexicon = []LexiconEntry{
	{"high contrast", SettingHighContrast},
	{"contrast", SettingHighContrast},
	{"large text", SettingLargeText},
	{"big text", SettingLargeText},
	{"text size", SettingLargeText},
	{"text to speech", SettingTextToSpeech},
	{"read aloud", SettingTextToSpeech},
	{"screen reader", SettingTextToSpeech},
	{"reduce motion", SettingReduceMotion},
	{"less motion", SettingReduceMotion},
	{"animations", SettingReduceMotion},
	{"color blind", SettingColorBlindMode},
	{"colour blind", SettingColorBlindMode},
	{"color vision", SettingColorBlindMode},
	{"font size", SettingFontSize},
	{"font", SettingFontSize},
}

type Lexicon []LexiconEntry

func DefaultLexicon() Lexicon {
	out := make(Lexicon, len(defaultLexicon))
	copy(out, defaultLexicon)
	return out
}

// Match returns the setting for the first lexicon phrase contained in the
// normalized utterance. Table order, not phrase length, breaks ties.
func (l Lexicon) Match(normalized string) (SettingKey, bool) {
	for _, entry := range l {
		if strings.Contains(normalized, entry.Phrase) {
			return entry.Key, true
		}
	}
	return "", false
}

var affirmativePhrases = []string{
	"toggle", "switch", "yes", "yeah", "yep", "sure", "ok",
	"correct", "turn on", "turn off", "enable", "disable",
}

func containsAffirmative(normalized string) bool {
	for _, phrase := range affirmativePhrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

// Normalize lowercases, folds diacritics, drops punctuation and collapses
// whitespace. Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, text)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
