package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// voiceLoopJS is the browser side of the assistant: a continuous
// speech-recognition loop that wakes on the assistant's name, posts the
// transcript to the command endpoint and speaks the response. One state
// variable owns the loop and one scheduleRestart function owns every
// recognition restart, so error and end handlers can never start two
// overlapping recognition streams.
const voiceLoopJS = `(function () {
  var SpeechRecognition = window.SpeechRecognition || window.webkitSpeechRecognition;
  if (!SpeechRecognition) {
    console.error("Aura: speech recognition is not supported in this browser");
    return;
  }

  // idle -> listening -> dispatching -> speaking -> listening
  var state = "idle";
  var assistantName = null;
  var userName = null;
  var restartTimer = null;
  var stopped = false;

  var recognition = new SpeechRecognition();
  recognition.continuous = true;
  recognition.lang = "en-US";
  recognition.interimResults = false;

  function scheduleRestart(delay) {
    if (stopped) return;
    clearTimeout(restartTimer);
    restartTimer = setTimeout(function () {
      if (stopped || state === "dispatching" || state === "speaking") return;
      try {
        recognition.start();
      } catch (e) {
        if (e.name !== "InvalidStateError") console.error("Aura:", e);
      }
    }, delay);
  }

  recognition.onstart = function () {
    state = "listening";
  };

  recognition.onend = function () {
    if (state === "listening") {
      state = "idle";
      scheduleRestart(1000);
    }
  };

  recognition.onerror = function (event) {
    if (event.error === "aborted") return;
    state = "idle";
    scheduleRestart(1000);
  };

  recognition.onresult = function (event) {
    var transcript = event.results[event.results.length - 1][0].transcript.trim();
    if (transcript.toLowerCase().indexOf(assistantName.toLowerCase()) === -1) {
      return; // not addressed to the assistant, keep listening
    }

    state = "dispatching";
    recognition.stop();

    fetch("/api/user/asktoassistant", {
      method: "POST",
      credentials: "include",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ command: transcript })
    })
      .then(function (res) { return res.json(); })
      .then(function (data) {
        openForIntent(data);
        speak(data.response);
      })
      .catch(function (err) {
        console.error("Aura:", err);
        state = "idle";
        scheduleRestart(1000);
      });
  };

  function speak(text) {
    state = "speaking";
    var utterance = new SpeechSynthesisUtterance(text);
    utterance.onend = function () {
      state = "idle";
      scheduleRestart(800);
    };
    window.speechSynthesis.cancel();
    window.speechSynthesis.speak(utterance);
  }

  // Fire-and-forget side effects; they never touch the loop state.
  function openForIntent(data) {
    var query = encodeURIComponent(data.userInput || "");
    switch (data.type) {
      case "google_search":
        window.open("https://www.google.com/search?q=" + query, "_blank");
        break;
      case "youtube_search":
      case "youtube_play":
        window.open("https://www.youtube.com/results?search_query=" + query, "_blank");
        break;
      case "calculator_open":
        window.open("https://www.google.com/search?q=calculator", "_blank");
        break;
      case "instagram_open":
        window.open("https://www.instagram.com/", "_blank");
        break;
      case "facebook_open":
        window.open("https://www.facebook.com/", "_blank");
        break;
      case "weather_show":
        window.open("https://www.google.com/search?q=weather", "_blank");
        break;
    }
  }

  function stop() {
    stopped = true;
    clearTimeout(restartTimer);
    try {
      recognition.abort();
    } catch (e) { /* already stopped */ }
    state = "idle";
  }

  window.addEventListener("pagehide", stop);

  fetch("/api/user/current", { credentials: "include" })
    .then(function (res) {
      if (!res.ok) throw new Error("not signed in");
      return res.json();
    })
    .then(function (user) {
      assistantName = user.assistantName;
      userName = user.name;
      if (!assistantName) {
        console.warn("Aura: no assistant persona configured");
        return;
      }
      var greeting = new SpeechSynthesisUtterance(
        "Hello " + userName + ", what can I help you with?");
      window.speechSynthesis.speak(greeting);
      scheduleRestart(1000);
    })
    .catch(function (err) {
      console.error("Aura:", err);
    });

  window.Aura = { stop: stop };
})();
`

// HandleVoiceLoopJS serves the browser voice-loop script
func HandleVoiceLoopJS(w http.ResponseWriter, r *http.Request) {
	log.Debug().Str("remote", r.RemoteAddr).Msg("Serving voice loop script")

	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write([]byte(voiceLoopJS)); err != nil {
		log.Error().Err(err).Msg("Failed to write voice loop script")
	}
}
