// Package dates turns the raw Arabic date strings found on Hespress pages
// into timestamps. Hespress writes dates with Moroccan month names, which
// the locale tables of the parser do not know, so they are rewritten to the
// standard Arabic spellings first.
package dates

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// monthPair maps a Moroccan month spelling to the standard Arabic one,
// ordered January through December. Months whose regional spelling already
// matches the standard one are kept so the table reads as a full calendar.
//
// Substitution is plain string replacement, so no variant may be a prefix
// of another variant; check new entries against the whole table. The
// standard spelling of May contains the Moroccan one as a substring, which
// only matters for text that is already normalized.
type monthPair struct {
	variant   string
	canonical string
}

var moroccanMonths = []monthPair{
	{"يناير", "يناير"},   // January
	{"فبراير", "فبراير"}, // February
	{"مارس", "مارس"},     // March
	{"أبريل", "أبريل"},   // April
	{"ماي", "مايو"},      // May
	{"يونيو", "يونيو"},   // June
	{"يوليوز", "يوليو"},  // July
	{"غشت", "أغسطس"},     // August
	{"شتنبر", "سبتمبر"},  // September
	{"أكتوبر", "أكتوبر"}, // October
	{"نونبر", "نوفمبر"},  // November
	{"دجنبر", "ديسمبر"},  // December
}

// Normalize rewrites Moroccan month names in text to standard Arabic ones.
// Empty input passes through unchanged.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	for _, m := range moroccanMonths {
		text = strings.ReplaceAll(text, m.variant, m.canonical)
	}
	return text
}

// Parse normalizes text and parses it as an Arabic-locale date. It returns
// nil when the text is empty or cannot be resolved; an unparseable date is
// never an error.
func Parse(text string) *time.Time {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cfg := &dateparser.Configuration{
		Languages:       []string{"ar"},
		DefaultTimezone: time.UTC,
	}

	dt, err := dateparser.Parse(cfg, Normalize(text))
	if err != nil || dt.Time.IsZero() {
		return nil
	}

	t := dt.Time
	return &t
}
