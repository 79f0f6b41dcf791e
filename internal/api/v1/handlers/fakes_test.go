package handlers

import (
	"context"

	"github.com/auralabs/aura/internal/services/assistant"
	"github.com/auralabs/aura/internal/services/user"
)

// fakeRepository is an in-memory user.Repository for handler tests
type fakeRepository struct {
	byID    map[string]*user.User
	byEmail map[string]*user.User
	history map[string][]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:    make(map[string]*user.User),
		byEmail: make(map[string]*user.User),
		history: make(map[string][]string),
	}
}

func (f *fakeRepository) Create(ctx context.Context, u *user.User) error {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	u := f.byID[id]
	if u == nil {
		return nil, nil
	}
	// Reflect appended history the way the gorm repository preloads it
	loaded := *u
	loaded.History = nil
	for i, cmd := range f.history[id] {
		loaded.History = append(loaded.History, user.HistoryEntry{
			ID:      uint(i + 1),
			UserID:  id,
			Command: cmd,
		})
	}
	return &loaded, nil
}

func (f *fakeRepository) UpdateAssistant(ctx context.Context, id, assistantName, assistantImage string) (*user.User, error) {
	u := f.byID[id]
	if u == nil {
		return nil, nil
	}
	u.AssistantName = assistantName
	u.AssistantImage = assistantImage
	return f.FindByID(ctx, id)
}

func (f *fakeRepository) AppendHistory(ctx context.Context, id, command string) error {
	f.history[id] = append(f.history[id], command)
	return nil
}

// fakeClassifier returns canned payloads per command, or an error
type fakeClassifier struct {
	payloads map[string]*assistant.Payload
	err      error
}

func (f *fakeClassifier) Classify(ctx context.Context, command, assistantName, userName string) (*assistant.Payload, error) {
	if f.err != nil {
		return nil, f.err
	}
	if payload, ok := f.payloads[command]; ok {
		return payload, nil
	}
	return nil, assistant.ErrNoPayload
}
