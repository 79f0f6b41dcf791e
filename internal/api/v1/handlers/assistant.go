package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/auralabs/aura/internal/api/v1/middleware"
	"github.com/auralabs/aura/internal/services/assistant"
	"github.com/auralabs/aura/internal/services/user"
	"github.com/auralabs/aura/pkg/httpext"
)

type askRequest struct {
	Command string `json:"command" validate:"required"`
}

// askFailure mirrors the success envelope's response field so the client
// can speak the apology like any other reply
type askFailure struct {
	Response string `json:"response"`
}

// HandleAsk relays a transcribed command through the classifier and returns
// the dispatched result. Unrecognized outcomes are 400 with a fixed apology;
// only transport faults surface as 500.
func HandleAsk(assistantService *assistant.Service, users user.Repository, w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httpext.JsonError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed command request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		httpext.JsonError(w, "command is required", http.StatusBadRequest)
		return
	}

	u, err := users.FindByID(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load user for command")
		httpext.JsonError(w, "Ask to Assistant error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		httpext.JsonError(w, "User not found", http.StatusBadRequest)
		return
	}

	result, err := assistantService.Ask(r.Context(), u, req.Command)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrNoPayload):
			httpext.JsonResponse(w, http.StatusBadRequest, askFailure{Response: assistant.MsgCannotUnderstand})
		case errors.Is(err, assistant.ErrUnknownIntent):
			httpext.JsonResponse(w, http.StatusBadRequest, askFailure{Response: assistant.MsgCannotUnderstandCommand})
		default:
			log.Error().Err(err).Msg("Failed to process command")
			httpext.JsonError(w, "Ask to Assistant error", http.StatusInternalServerError)
		}
		return
	}

	httpext.JsonResponse(w, http.StatusOK, result)
}
