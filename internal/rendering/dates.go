// Package rendering assembles selected portfolio content into a self-contained printable HTML document.
package rendering

import (
	"strconv"

	"github.com/jonathan/portfolio-cv/internal/selection"
	"golang.org/x/text/language"
)

// monthLocales lists the locales with month abbreviations, English first so it
// is the matcher fallback.
var monthLocales = []language.Tag{
	language.English,
	language.French,
	language.German,
	language.Spanish,
}

var monthMatcher = language.NewMatcher(monthLocales)

// monthNames is indexed like monthLocales.
var monthNames = [][12]string{
	{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
}

// MonthAbbreviations returns the month abbreviations for the closest supported
// locale. Unparseable or unsupported locales get English.
func MonthAbbreviations(locale string) [12]string {
	tag, err := language.Parse(locale)
	if err != nil {
		return monthNames[0]
	}
	_, index, confidence := monthMatcher.Match(tag)
	if confidence == language.No {
		return monthNames[0]
	}
	return monthNames[index]
}

// FormatMonthYear renders an ISO-8601 date as "Mon YYYY" in the given locale.
// Missing or unparseable dates render as an empty string.
func FormatMonthYear(date, locale string) string {
	t := selection.ParseDate(date)
	if t.IsZero() {
		return ""
	}
	return MonthAbbreviations(locale)[t.Month()-1] + " " + strconv.Itoa(t.Year())
}
