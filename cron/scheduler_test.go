package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderFireTime(t *testing.T) {
	fireAt, err := ReminderFireTime("2025-04-12", "11:00 AM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 12, 10, 0, 0, 0, time.UTC), fireAt)

	evening, err := ReminderFireTime("2025-04-12", "7:30 PM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 12, 18, 30, 0, 0, time.UTC), evening)
}

func TestReminderFireTimeRejectsBadSlot(t *testing.T) {
	_, err := ReminderFireTime("2025-04-12", "sometime soon")
	assert.Error(t, err)
}
