package user

import (
	"time"
)

// User is the persisted account record. Password carries the bcrypt hash and
// never serialises.
type User struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `gorm:"not null" json:"-"`
	AssistantName  string `json:"assistantName"`
	AssistantImage string `json:"assistantImage"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	History []HistoryEntry `gorm:"foreignKey:UserID" json:"-"`
}

// HistoryEntry is one past command. Appends are single INSERTs, so concurrent
// commands from the same user never race on a list value.
type HistoryEntry struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"type:uuid;index;not null"`
	Command   string `gorm:"not null"`
	CreatedAt time.Time
}

// View is the wire representation of a user with the credential stripped and
// history flattened to command strings, most recent last.
type View struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	AssistantName  string   `json:"assistantName"`
	AssistantImage string   `json:"assistantImage"`
	History        []string `json:"history"`
}

func (u *User) ToView() View {
	history := make([]string, len(u.History))
	for i, entry := range u.History {
		history[i] = entry.Command
	}

	return View{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		AssistantName:  u.AssistantName,
		AssistantImage: u.AssistantImage,
		History:        history,
	}
}
