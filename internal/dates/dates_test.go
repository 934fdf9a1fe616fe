package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_AllMonths(t *testing.T) {
	for _, m := range moroccanMonths {
		got := Normalize("الأحد 12 " + m.variant + " 2023")
		assert.Contains(t, got, m.canonical, "variant %q", m.variant)
	}
}

func TestNormalize_MoroccanAugust(t *testing.T) {
	got := Normalize("الخميس 17 غشت 2023")
	assert.Equal(t, "الخميس 17 أغسطس 2023", got)
	assert.NotContains(t, got, "غشت")
}

func TestNormalize_NoVariantTokens(t *testing.T) {
	for _, text := range []string{"", "2023-08-17", "no months here"} {
		assert.Equal(t, text, Normalize(text))
	}
}

func TestParse_MoroccanMonth(t *testing.T) {
	got := Parse("الخميس 17 غشت 2023")

	require.NotNil(t, got)
	assert.Equal(t, 2023, got.Year())
	assert.Equal(t, time.August, got.Month())
	assert.Equal(t, 17, got.Day())
}

func TestParse_StandardArabic(t *testing.T) {
	got := Parse("1 يناير 2024")

	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestParse_Unparseable(t *testing.T) {
	for _, text := range []string{"", "   ", "not a date at all", "؟؟؟"} {
		assert.Nil(t, Parse(text), "text %q", text)
	}
}
