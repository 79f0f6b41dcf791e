package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/auralabs/aura/internal/services/user"
)

// Fixed apology strings for the two unrecognized outcomes: no parseable
// payload versus a type outside the known set.
const (
	MsgCannotUnderstand        = "Sorry, I can't understand"
	MsgCannotUnderstandCommand = "Sorry, I can't understand this command"
)

type Service struct {
	classifier Classifier
	users      user.Repository
}

func NewService(classifier Classifier, users user.Repository) *Service {
	return &Service{
		classifier: classifier,
		users:      users,
	}
}

// Ask records the command, classifies it and dispatches the result. The
// history append happens before classification so unrecognized commands are
// still recorded. Failures pass through untranslated; the handler maps
// ErrNoPayload and ErrUnknownIntent to their apology responses.
func (s *Service) Ask(ctx context.Context, u *user.User, command string) (*CommandResult, error) {
	if err := s.users.AppendHistory(ctx, u.ID, command); err != nil {
		return nil, fmt.Errorf("failed to record command: %w", err)
	}

	payload, err := s.classifier.Classify(ctx, command, u.AssistantName, u.Name)
	if err != nil {
		return nil, err
	}

	result, err := Dispatch(payload, time.Now())
	if err != nil {
		log.Warn().Str("type", string(payload.Type)).Msg("Classifier returned a type outside the known set")
		return nil, err
	}

	log.Info().
		Str("user_id", u.ID).
		Str("type", string(result.Type)).
		Msg("Command dispatched")

	return result, nil
}
