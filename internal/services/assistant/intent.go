package assistant

// Intent is the closed-set classification label attached to a user command.
// The prompt template and the dispatcher must agree on this set; the drift
// test in prompt_test.go holds them together.
type Intent string

const (
	IntentGeneral        Intent = "general"
	IntentGoogleSearch   Intent = "google_search"
	IntentYoutubeSearch  Intent = "youtube_search"
	IntentYoutubePlay    Intent = "youtube_play"
	IntentGetTime        Intent = "get_time"
	IntentGetDate        Intent = "get_date"
	IntentGetDay         Intent = "get_day"
	IntentGetMonth       Intent = "get_month"
	IntentCalculatorOpen Intent = "calculator_open"
	IntentInstagramOpen  Intent = "instagram_open"
	IntentFacebookOpen   Intent = "facebook_open"
	IntentWeatherShow    Intent = "weather_show"
)

var AllIntents = []Intent{
	IntentGeneral,
	IntentGoogleSearch,
	IntentYoutubeSearch,
	IntentYoutubePlay,
	IntentGetTime,
	IntentGetDate,
	IntentGetDay,
	IntentGetMonth,
	IntentCalculatorOpen,
	IntentInstagramOpen,
	IntentFacebookOpen,
	IntentWeatherShow,
}

// Known reports whether the intent belongs to the closed set
func (i Intent) Known() bool {
	for _, known := range AllIntents {
		if i == known {
			return true
		}
	}
	return false
}
