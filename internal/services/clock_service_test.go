package services_test

import (
	"context"
	"testing"
	"time"

	"floatclock/internal/clock"
	"floatclock/internal/events"
	"floatclock/internal/models"
	"floatclock/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockService_PlaceholderUntilReady(t *testing.T) {
	f := newPrefs(t, nil, nil, nil)
	svc := services.NewClockService(f.prefs, time.Second)

	assert.True(t, svc.Current().Loading)

	f.ready(t)
	v := svc.Current()
	assert.False(t, v.Loading)
	assert.NotEmpty(t, v.Time)
}

func TestClockService_EmitsTicksAndChanges(t *testing.T) {
	captured := captureEvents(t)
	f := newPrefs(t, nil, nil, nil)
	f.ready(t)

	svc := services.NewClockService(f.prefs, 50*time.Millisecond)
	svc.Startup(context.Background())
	defer svc.Stop()

	_, err := f.prefs.Update(models.SettingsPatch{DateFormat: ptr(models.DateFormatFull)})
	require.NoError(t, err)
	f.flush(t)
	time.Sleep(120 * time.Millisecond)
	svc.Stop()

	var ticks []clock.View
	for _, e := range captured() {
		if e.name == events.ClockTick {
			ticks = append(ticks, e.payload.(clock.View))
		}
	}
	require.GreaterOrEqual(t, len(ticks), 2)
	assert.True(t, ticks[len(ticks)-1].ShowDate)
}
