package models

import "time"

// Visibility controls who may see a moment in the aggregated feed.
type Visibility string

const (
	// VisibilityPrivate restricts a moment to its author.
	VisibilityPrivate Visibility = "private"
	// VisibilityConnections restricts a moment to the author and their
	// accepted connections.
	VisibilityConnections Visibility = "connections"
	// VisibilityPublic makes a moment visible to every viewer.
	VisibilityPublic Visibility = "public"
)

// ValidVisibility reports whether v is a known visibility level.
func ValidVisibility(v Visibility) bool {
	switch v {
	case VisibilityPrivate, VisibilityConnections, VisibilityPublic:
		return true
	}
	return false
}

// DefaultMood is assigned when a moment is published without a mood.
const DefaultMood = "inspirado"

// Moods is the fixed set of moods a moment can carry.
var Moods = []string{"inspirado", "reflexivo", "agradecido", "tranquilo", "intenso"}

// ValidMood reports whether mood is in the known set.
func ValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// Moment represents a single published update scoped to a circle and a
// visibility level. Moments are immutable once published.
type Moment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	CircleID   uint       `gorm:"not null;index" json:"circle_id"`
	Title      string     `gorm:"not null" json:"title"`
	Content    string     `gorm:"type:text" json:"content,omitempty"`
	Mood       string     `gorm:"type:varchar(20);default:'inspirado'" json:"mood"`
	Visibility Visibility `gorm:"type:varchar(20);default:'connections';index" json:"visibility"`
	CreatedAt  time.Time  `json:"created_at"`
}
