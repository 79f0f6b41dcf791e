package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPayload(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *Payload
	}{
		{
			name: "bare JSON object",
			text: `{"type":"general","userInput":"hello","response":"Hi there"}`,
			expected: &Payload{
				Type:      IntentGeneral,
				UserInput: "hello",
				Response:  "Hi there",
			},
		},
		{
			name: "object embedded in prose",
			text: "Sure! Here is the classification:\n" +
				`{"type":"google_search","userInput":"cats","response":"Searching now"}` +
				"\nLet me know if you need anything else.",
			expected: &Payload{
				Type:      IntentGoogleSearch,
				UserInput: "cats",
				Response:  "Searching now",
			},
		},
		{
			name: "braces inside string values",
			text: `{"type":"general","userInput":"what is {x}","response":"{x} is a placeholder"}`,
			expected: &Payload{
				Type:      IntentGeneral,
				UserInput: "what is {x}",
				Response:  "{x} is a placeholder",
			},
		},
		{
			name: "junk brace before the object",
			text: `som{e noise {"type":"get_time","userInput":"time","response":"..."}`,
			expected: &Payload{
				Type:      IntentGetTime,
				UserInput: "time",
				Response:  "...",
			},
		},
		{
			name: "markdown fenced object",
			text: "```json\n{\"type\":\"youtube_play\",\"userInput\":\"lofi\",\"response\":\"Playing\"}\n```",
			expected: &Payload{
				Type:      IntentYoutubePlay,
				UserInput: "lofi",
				Response:  "Playing",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := ExtractPayload(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, payload)
		})
	}
}

func TestExtractPayloadFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "no braces at all",
			text: "I'm sorry, I could not classify that.",
		},
		{
			name: "empty output",
			text: "",
		},
		{
			name: "malformed object only",
			text: `{"type": "general", "userInput": `,
		},
		{
			name: "unclosed brace in prose",
			text: "the set { is never closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := ExtractPayload(tt.text)
			assert.ErrorIs(t, err, ErrNoPayload)
			assert.Nil(t, payload)
		})
	}
}

func TestExtractPayloadEmptyObjectYieldsUnknownIntent(t *testing.T) {
	// An empty object decodes, carries no type and falls to the dispatcher's
	// unknown-intent outcome rather than a parse failure.
	payload, err := ExtractPayload(`{}`)
	require.NoError(t, err)
	assert.False(t, payload.Type.Known())
}
