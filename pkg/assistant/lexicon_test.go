package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"  Turn ON High-Contrast!  ",
		"SET IT TO PROTANOPIA, PLEASE.",
		"café crème façade",
		"toggle   the\tfont   size",
		"",
		"yes",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestNormalize_LowercasesAndStripsPunctuation(t *testing.T) {
	assert.Equal(t, "turn on high contrast", Normalize("  Turn ON High-Contrast!  "))
	assert.Equal(t, "cafe creme facade", Normalize("café crème façade"))
}

func TestLexicon_FirstMatchInTableOrderWins(t *testing.T) {
	lex := DefaultLexicon()

	// "contrast" and "font" both appear; "high contrast" is earlier in the
	// table so it wins regardless of position in the utterance.
	key, ok := lex.Match("set the font after the high contrast")
	require.True(t, ok)
	assert.Equal(t, SettingHighContrast, key)
}

func TestLexicon_SynonymsShareAKey(t *testing.T) {
	lex := DefaultLexicon()

	for _, phrase := range []string{"please read aloud", "enable the screen reader", "text to speech on"} {
		key, ok := lex.Match(Normalize(phrase))
		require.True(t, ok, "expected a match for %q", phrase)
		assert.Equal(t, SettingTextToSpeech, key)
	}
}

func TestLexicon_NoMatch(t *testing.T) {
	lex := DefaultLexicon()

	_, ok := lex.Match("order me a margherita")
	assert.False(t, ok)
}

func TestRegistry_LookupAndDefaults(t *testing.T) {
	setting, ok := LookupSetting(SettingColorBlindMode)
	require.True(t, ok)
	assert.Equal(t, SettingKindEnum, setting.Kind)
	assert.Equal(t, EnumValue("none"), setting.Default())
	assert.True(t, setting.ValidEnumValue("deuteranopia"))
	assert.False(t, setting.ValidEnumValue("sepia"))

	_, ok = LookupSetting("cursor_size")
	assert.False(t, ok)
}

func TestRegistry_ExtraLargeBeforeLarge(t *testing.T) {
	setting, ok := LookupSetting(SettingFontSize)
	require.True(t, ok)

	value, found := matchEnumValue(setting, Normalize("make it extra large"))
	require.True(t, found)
	assert.Equal(t, "extra large", value)
}
