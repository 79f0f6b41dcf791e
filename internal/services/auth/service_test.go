package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralabs/aura/internal/services/user"
)

type memoryRepository struct {
	byID    map[string]*user.User
	byEmail map[string]*user.User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		byID:    make(map[string]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (m *memoryRepository) Create(ctx context.Context, u *user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.byEmail[email], nil
}

func (m *memoryRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return m.byID[id], nil
}

func (m *memoryRepository) UpdateAssistant(ctx context.Context, id, assistantName, assistantImage string) (*user.User, error) {
	u := m.byID[id]
	if u != nil {
		u.AssistantName = assistantName
		u.AssistantImage = assistantImage
	}
	return u, nil
}

func (m *memoryRepository) AppendHistory(ctx context.Context, id, command string) error {
	return nil
}

func TestSignup(t *testing.T) {
	repo := newMemoryRepository()
	service := NewService(repo)

	u, err := service.Signup(context.Background(), "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "secret123", u.Password, "credential must be stored hashed")
	assert.NoError(t, CheckPassword(u.Password, "secret123"))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newMemoryRepository()
	service := NewService(repo)

	_, err := service.Signup(context.Background(), "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = service.Signup(context.Background(), "Alice Again", "alice@example.com", "different456")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.byID, 1, "duplicate signup must not create a second record")
}

func TestSignupWeakPassword(t *testing.T) {
	repo := newMemoryRepository()
	service := NewService(repo)

	_, err := service.Signup(context.Background(), "Alice", "alice@example.com", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
	assert.Empty(t, repo.byID)
}

func TestLogin(t *testing.T) {
	repo := newMemoryRepository()
	service := NewService(repo)

	created, err := service.Signup(context.Background(), "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		u, err := service.Login(context.Background(), "alice@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(context.Background(), "bob@example.com", "secret123")
		assert.ErrorIs(t, err, ErrUnknownEmail)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), "alice@example.com", "wrong456")
		assert.ErrorIs(t, err, ErrBadPassword)
	})
}

func TestHashPasswordProducesSaltedHashes(t *testing.T) {
	hash1, err := HashPassword("securePassword123")
	require.NoError(t, err)

	hash2, err := HashPassword("securePassword123")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "same password should produce different hashes due to salt")
	assert.NoError(t, CheckPassword(hash1, "securePassword123"))
	assert.Error(t, CheckPassword(hash1, "wrongPassword456"))
}
