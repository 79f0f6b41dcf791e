package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/auralabs/aura/internal/infrastructure/postgres"
)

// Repository defines the storage operations for user accounts
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdateAssistant(ctx context.Context, id, assistantName, assistantImage string) (*User, error)
	AppendHistory(ctx context.Context, id, command string) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(pg *postgres.Service) (*GormRepository, error) {
	if pg == nil {
		return nil, fmt.Errorf("postgres service is required")
	}

	if err := pg.DB().AutoMigrate(&User{}, &HistoryEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate user schema: %w", err)
	}

	return &GormRepository{db: pg.DB()}, nil
}

func (r *GormRepository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// FindByEmail returns (nil, nil) when no account carries the email
func (r *GormRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID loads a user with history ordered oldest-first
func (r *GormRepository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("history_entries.id ASC")
		}).
		Where("id = ?", id).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormRepository) UpdateAssistant(ctx context.Context, id, assistantName, assistantImage string) (*User, error) {
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"assistant_name":  assistantName,
			"assistant_image": assistantImage,
		}).Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// AppendHistory records a command as a single INSERT
func (r *GormRepository) AppendHistory(ctx context.Context, id, command string) error {
	entry := HistoryEntry{
		UserID:  id,
		Command: command,
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}
