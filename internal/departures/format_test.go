package departures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWait(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{-5, ""},
		{0, ""},
		{1, "1 minute"},
		{2, "2 minutes"},
		{45, "45 minutes"},
		{59, "59 minutes"},
		{60, "1 hour 0 minutes"},
		{61, "1 hour 1 minute"},
		{90, "1 hour 30 minutes"},
		{125, "2 hours 5 minutes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatWait(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestJapaneseFormatter(t *testing.T) {
	f := JapaneseFormatter{}
	assert.Equal(t, "", f.FormatWait(0))
	assert.Equal(t, "45分後", f.FormatWait(45))
	assert.Equal(t, "1時間30分後", f.FormatWait(90))
	assert.Equal(t, "2時間0分後", f.FormatWait(120))
}

func TestFormatterFor(t *testing.T) {
	f, err := FormatterFor("")
	require.NoError(t, err)
	assert.IsType(t, EnglishFormatter{}, f)

	f, err = FormatterFor("JA")
	require.NoError(t, err)
	assert.IsType(t, JapaneseFormatter{}, f)

	_, err = FormatterFor("fr")
	assert.Error(t, err)
}
