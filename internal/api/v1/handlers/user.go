package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/auralabs/aura/internal/api/v1/middleware"
	"github.com/auralabs/aura/internal/infrastructure/cloudinary"
	"github.com/auralabs/aura/internal/services/user"
	"github.com/auralabs/aura/pkg/httpext"
)

const maxAvatarUploadBytes = 8 << 20

// HandleCurrentUser returns the session-bound user with credential stripped
func HandleCurrentUser(users user.Repository, w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httpext.JsonError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := users.FindByID(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load current user")
		httpext.JsonError(w, "Get current user error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		httpext.JsonError(w, "User not found", http.StatusBadRequest)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, u.ToView())
}

// HandleUpdateAssistant updates the persona from a multipart form: an
// assistantName plus either an uploaded image file or an imageUrl field.
// An uploaded file is relayed to the media host and only its durable URL
// is persisted.
func HandleUpdateAssistant(users user.Repository, media *cloudinary.Service, w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httpext.JsonError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxAvatarUploadBytes); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed multipart form")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	assistantName := r.FormValue("assistantName")
	assistantImage := r.FormValue("imageUrl")

	if file, _, err := r.FormFile("assistantImage"); err == nil {
		defer file.Close()

		if media == nil {
			log.Error().Msg("Avatar upload received but media host is not configured")
			httpext.JsonError(w, "Update Assistant error", http.StatusInternalServerError)
			return
		}

		url, err := media.UploadImage(r.Context(), file)
		if err != nil {
			log.Error().Err(err).Msg("Avatar upload failed")
			httpext.JsonError(w, "Update Assistant error", http.StatusInternalServerError)
			return
		}
		assistantImage = url
	}

	u, err := users.UpdateAssistant(r.Context(), userID, assistantName, assistantImage)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update assistant persona")
		httpext.JsonError(w, "Update Assistant error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		httpext.JsonError(w, "User not found", http.StatusBadRequest)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, u.ToView())
}
