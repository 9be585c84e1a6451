package clock_test

import (
	"testing"
	"time"

	"floatclock/internal/clock"
	"floatclock/internal/models"

	"github.com/stretchr/testify/assert"
)

var instant = time.Date(2024, time.March, 7, 14, 5, 9, 0, time.UTC)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "14:05:09", clock.FormatTime(instant, models.TimeFormat24h, true))
	assert.Equal(t, "14:05", clock.FormatTime(instant, models.TimeFormat24h, false))
	assert.Equal(t, "2:05 PM", clock.FormatTime(instant, models.TimeFormat12h, false))
	assert.Equal(t, "2:05:09 PM", clock.FormatTime(instant, models.TimeFormat12h, true))

	morning := time.Date(2024, time.March, 7, 0, 7, 0, 0, time.UTC)
	assert.Equal(t, "12:07 AM", clock.FormatTime(morning, models.TimeFormat12h, false))
	assert.Equal(t, "00:07", clock.FormatTime(morning, models.TimeFormat24h, false))
}

func TestFormatDate(t *testing.T) {
	_, ok := clock.FormatDate(instant, models.DateFormatNone)
	assert.False(t, ok)

	cases := map[models.DateFormat]string{
		models.DateFormatShort: "3/7",
		models.DateFormatLong:  "Mar 7, 2024",
		models.DateFormatFull:  "Thursday, March 7",
	}
	for format, want := range cases {
		got, ok := clock.FormatDate(instant, format)
		assert.True(t, ok, format)
		assert.NotEmpty(t, got, format)
		assert.Equal(t, want, got, format)
	}
}

func TestFontScale(t *testing.T) {
	assert.Equal(t, 1.0, clock.FontScale(models.FontSizeSmall))
	assert.Equal(t, 1.25, clock.FontScale(models.FontSizeMedium))
	assert.Equal(t, 1.75, clock.FontScale(models.FontSizeLarge))
	assert.Equal(t, 2.5, clock.FontScale(models.FontSizeXLarge))
	assert.Equal(t, 1.25, clock.FontScale("enormous"))
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, "rgba(10, 10, 10, 0.3)", clock.RGBA("#0a0a0a", 0.3))
	assert.Equal(t, "rgba(255, 255, 255, 1)", clock.RGBA("#ffffff", 4))
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", clock.RGBA("nope", 0.5))
}

func TestRender(t *testing.T) {
	s := models.DefaultSettings()
	s.TimeFormat = models.TimeFormat24h
	s.ShowSeconds = true
	s.DateFormat = models.DateFormatLong
	s.FontSize = models.FontSizeLarge
	s.TextColor = "#00ff88"
	s.TextOpacity = 0.5
	s.BackgroundColor = "#0a0a0a"
	s.BackgroundOpacity = 0.3

	v := clock.Render(instant, s)
	assert.False(t, v.Loading)
	assert.Equal(t, "14:05:09", v.Time)
	assert.True(t, v.ShowDate)
	assert.Equal(t, "Mar 7, 2024", v.Date)
	assert.Equal(t, "1.75rem", v.FontSize)
	assert.Equal(t, "0.875rem", v.DateFontSize)
	assert.Equal(t, "#00ff88", v.TextColor)
	assert.Equal(t, 0.5, v.TextOpacity)
	assert.InDelta(t, 0.4, v.DateOpacity, 1e-9)
	assert.Equal(t, "rgba(10, 10, 10, 0.3)", v.Background)
}

func TestRender_NoDate(t *testing.T) {
	v := clock.Render(instant, models.DefaultSettings())
	assert.False(t, v.ShowDate)
	assert.Empty(t, v.Date)
	assert.Equal(t, "2:05 PM", v.Time)
}

func TestPlaceholder(t *testing.T) {
	v := clock.Placeholder()
	assert.True(t, v.Loading)
	assert.NotEmpty(t, v.Time)
}
