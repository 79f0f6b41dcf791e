package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchClockIntents(t *testing.T) {
	// Friday afternoon, fixed clock
	now := time.Date(2024, time.June, 7, 15, 4, 0, 0, time.UTC)

	tests := []struct {
		name     string
		intent   Intent
		expected string
	}{
		{
			name:     "get_date formats ISO date",
			intent:   IntentGetDate,
			expected: "Current date is 2024-06-07",
		},
		{
			name:     "get_time formats 12-hour time",
			intent:   IntentGetTime,
			expected: "Current time is 03:04 PM",
		},
		{
			name:     "get_day formats full weekday",
			intent:   IntentGetDay,
			expected: "Today is Friday",
		},
		{
			name:     "get_month formats full month",
			intent:   IntentGetMonth,
			expected: "Today is June",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := &Payload{
				Type:      tt.intent,
				UserInput: "what is it",
				Response:  "model text that must be ignored",
			}

			result, err := Dispatch(payload, now)
			require.NoError(t, err)

			assert.Equal(t, tt.intent, result.Type)
			assert.Equal(t, "what is it", result.UserInput)
			assert.Equal(t, tt.expected, result.Response)
		})
	}
}

func TestDispatchMorningTime(t *testing.T) {
	now := time.Date(2024, time.June, 7, 9, 5, 0, 0, time.UTC)

	result, err := Dispatch(&Payload{Type: IntentGetTime}, now)
	require.NoError(t, err)
	assert.Equal(t, "Current time is 09:05 AM", result.Response)
}

func TestDispatchPassThroughIntents(t *testing.T) {
	now := time.Now()

	passThrough := []Intent{
		IntentGeneral,
		IntentGoogleSearch,
		IntentYoutubeSearch,
		IntentYoutubePlay,
		IntentCalculatorOpen,
		IntentInstagramOpen,
		IntentFacebookOpen,
		IntentWeatherShow,
	}

	for _, intent := range passThrough {
		t.Run(string(intent), func(t *testing.T) {
			payload := &Payload{
				Type:      intent,
				UserInput: "X",
				Response:  "Y",
			}

			result, err := Dispatch(payload, now)
			require.NoError(t, err)

			assert.Equal(t, &CommandResult{Type: intent, UserInput: "X", Response: "Y"}, result)
		})
	}
}

func TestDispatchCoversEveryKnownIntent(t *testing.T) {
	// The prompt's declared schema and this switch must never drift apart.
	for _, intent := range AllIntents {
		t.Run(string(intent), func(t *testing.T) {
			_, err := Dispatch(&Payload{Type: intent}, time.Now())
			assert.NoError(t, err)
		})
	}
}

func TestDispatchUnknownIntent(t *testing.T) {
	tests := []string{"", "unknown", "twitter_open", "GET_TIME"}

	for _, raw := range tests {
		t.Run("type "+raw, func(t *testing.T) {
			_, err := Dispatch(&Payload{Type: Intent(raw)}, time.Now())
			assert.ErrorIs(t, err, ErrUnknownIntent)
		})
	}
}
