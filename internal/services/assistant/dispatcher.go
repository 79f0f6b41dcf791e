package assistant

import (
	"errors"
	"time"
)

// ErrUnknownIntent means the classifier produced a type outside the known set
var ErrUnknownIntent = errors.New("unknown intent type")

// CommandResult is the transient response envelope returned per command
type CommandResult struct {
	Type      Intent `json:"type"`
	UserInput string `json:"userInput"`
	Response  string `json:"response"`
}

// Dispatch maps a classified payload to its result. The four clock intents
// are computed from the server's wall clock at request time and ignore any
// model-supplied response text; every other known intent passes the model's
// userInput and response through verbatim.
func Dispatch(p *Payload, now time.Time) (*CommandResult, error) {
	switch p.Type {
	case IntentGetDate:
		return &CommandResult{
			Type:      p.Type,
			UserInput: p.UserInput,
			Response:  "Current date is " + now.Format("2006-01-02"),
		}, nil

	case IntentGetTime:
		return &CommandResult{
			Type:      p.Type,
			UserInput: p.UserInput,
			Response:  "Current time is " + now.Format("03:04 PM"),
		}, nil

	case IntentGetDay:
		return &CommandResult{
			Type:      p.Type,
			UserInput: p.UserInput,
			Response:  "Today is " + now.Format("Monday"),
		}, nil

	case IntentGetMonth:
		return &CommandResult{
			Type:      p.Type,
			UserInput: p.UserInput,
			Response:  "Today is " + now.Format("January"),
		}, nil

	case IntentGeneral,
		IntentGoogleSearch,
		IntentYoutubeSearch,
		IntentYoutubePlay,
		IntentCalculatorOpen,
		IntentInstagramOpen,
		IntentFacebookOpen,
		IntentWeatherShow:
		return &CommandResult{
			Type:      p.Type,
			UserInput: p.UserInput,
			Response:  p.Response,
		}, nil

	default:
		return nil, ErrUnknownIntent
	}
}
