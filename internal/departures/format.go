package departures

import (
	"fmt"
	"strings"
)

// Formatter renders a wait duration in whole minutes as a label.
// Implementations return "" for zero or negative waits.
type Formatter interface {
	FormatWait(minutes int) string
}

// EnglishFormatter produces labels such as "45 minutes" or "1 hour 30 minutes".
type EnglishFormatter struct{}

func (EnglishFormatter) FormatWait(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	if minutes < 60 {
		return plural(minutes, "minute")
	}
	return plural(minutes/60, "hour") + " " + plural(minutes%60, "minute")
}

// JapaneseFormatter produces Japanese wait labels, e.g. "5分後"
// and "1時間30分後".
type JapaneseFormatter struct{}

func (JapaneseFormatter) FormatWait(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	if minutes < 60 {
		return fmt.Sprintf("%d分後", minutes)
	}
	return fmt.Sprintf("%d時間%d分後", minutes/60, minutes%60)
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatWait formats with the default English labels.
func FormatWait(minutes int) string {
	return EnglishFormatter{}.FormatWait(minutes)
}

// FormatterFor returns the formatter registered for a locale tag ("en", "ja").
func FormatterFor(locale string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "", "en", "en-us", "en-gb":
		return EnglishFormatter{}, nil
	case "ja", "ja-jp":
		return JapaneseFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported locale %q: expected en or ja", locale)
	}
}
