package catalog

import (
	"strings"
	"time"
)

// Locale is a minimal language/country pair, standing in for the original
// system's Locale (spec §4.4's getLocaleInstance). Go has no Locale type in
// the standard library; this module only needs the pair for display and for
// binding a DateFormat/DateTimeFormat to a region, not full CLDR behavior.
type Locale struct {
	Language string
	Country  string
}

// String renders the locale the conventional language_COUNTRY way.
func (l Locale) String() string {
	if l.Country == "" {
		return l.Language
	}
	return l.Language + "_" + l.Country
}

// DateFormat binds a layout pattern to a time zone, producing fresh,
// independently-usable formatter values (spec §4.4: "Each call produces a
// fresh instance (thread-safe by construction)").
type DateFormat struct {
	pattern  string
	location *time.Location
}

// NewDateFormat builds a non-lenient DateFormat for pattern bound to loc.
// "Non-lenient" here means Format/Parse never silently normalize an
// out-of-range field; Parse returns an error instead of rolling over (Go's
// time.Parse already rejects overflowing fields, matching this requirement
// without extra bookkeeping).
func NewDateFormat(pattern string, loc *time.Location) DateFormat {
	return DateFormat{pattern: pattern, location: loc}
}

// Format renders t using this formatter's pattern and time zone.
func (f DateFormat) Format(t time.Time) string {
	return t.In(f.location).Format(goLayout(f.pattern))
}

// Parse parses s using this formatter's pattern and time zone.
func (f DateFormat) Parse(s string) (time.Time, error) {
	return time.ParseInLocation(goLayout(f.pattern), s, f.location)
}

// Pattern returns the original, unconverted pattern string.
func (f DateFormat) Pattern() string {
	return f.pattern
}

// goLayout converts a small, fixed subset of the classic letter-pattern
// date format tokens (yyyy, MM, dd, HH, mm, ss) into a Go reference-time
// layout, since the catalog stores raw pattern strings (e.g.
// "yyyy-MM-dd HH:mm:ss") rather than Go layouts.
func goLayout(pattern string) string {
	replacer := strings.NewReplacer(
		"yyyy", "2006",
		"MM", "01",
		"dd", "02",
		"HH", "15",
		"mm", "04",
		"ss", "05",
	)
	return replacer.Replace(pattern)
}
