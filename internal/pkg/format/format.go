package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.English, language.French, language.Spanish}

var matcher = language.NewMatcher(supported)

// Formatter renders dashboard figures for one display language.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Formatter for the closest supported language to lang.
// Unknown or empty values fall back to English.
func New(lang string) *Formatter {
	tag := language.English
	if lang != "" {
		if parsed, err := language.Parse(lang); err == nil {
			_, idx, conf := matcher.Match(parsed)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// Language returns the base language code, e.g. "fr".
func (f *Formatter) Language() string {
	base, _ := f.tag.Base()
	return base.String()
}

// Number formats v with two decimals and locale grouping.
func (f *Formatter) Number(v float64) string {
	return f.printer.Sprintf("%.2f", v)
}

// Currency formats a dollar amount. English puts the symbol first; French and
// Spanish put it after the amount.
func (f *Formatter) Currency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	var s string
	if f.tag == language.English {
		s = "$" + f.Number(v)
	} else {
		s = f.Number(v) + " $"
	}

	if neg {
		return "-" + s
	}
	return s
}

func (f *Formatter) Percent(v float64) string {
	return f.printer.Sprintf("%.1f", v) + "%"
}

// Hours formats a decimal hour count, e.g. "7.5h".
func (f *Formatter) Hours(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(f.printer.Sprintf("%.2f", v), "0"), f.decimalSeparator()) + "h"
}

func (f *Formatter) decimalSeparator() string {
	if f.tag == language.English {
		return "."
	}
	return ","
}

// Label translates a fixed UI label registered in labels.go.
func (f *Formatter) Label(key string) string {
	return f.printer.Sprintf(message.Key(key, key))
}
