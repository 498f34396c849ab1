package models

import "time"

// SuggestedCircleColors is the palette offered by the client. Circles may
// carry any free-form color value; this list is only a default.
var SuggestedCircleColors = []string{"#f97316", "#22c55e", "#38bdf8", "#e11d48", "#a855f7"}

// DefaultCircleDescription is stored when a circle is created without one.
const DefaultCircleDescription = "No description yet."

// Circle represents a named life-area owned by exactly one user. Circles
// categorize moments; insertion order (created_at ascending) is the
// canonical display order.
type Circle struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
