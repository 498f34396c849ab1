package models

import "time"

// Profile is the public-facing record for a user, keyed by the user's ID.
// It is upserted on every session-establishing signup or login and is the
// record other users see in search results and connection listings.
type Profile struct {
	UserID      uint      `gorm:"primaryKey" json:"user_id"`
	Username    string    `gorm:"unique;not null" json:"username"`
	DisplayName string    `gorm:"not null" json:"display_name"`
	Email       string    `json:"email,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}
