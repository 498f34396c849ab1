package models

import "time"

// ConnectionStatus represents the status of a connection request.
type ConnectionStatus string

const (
	// ConnectionStatusPending indicates a request awaiting the target's decision.
	ConnectionStatusPending ConnectionStatus = "pending"
	// ConnectionStatusAccepted indicates a mutually accepted connection.
	ConnectionStatusAccepted ConnectionStatus = "accepted"
)

// Connection represents a directed request between two users that becomes a
// symmetric relationship once accepted. UserID is the requester; once the
// status is accepted, direction no longer matters semantically. Rejection is
// modeled as deletion of the row, so no rejected state is persisted.
type Connection struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	UserID       uint             `gorm:"not null;uniqueIndex:idx_connection_pair" json:"user_id"`
	TargetUserID uint             `gorm:"not null;uniqueIndex:idx_connection_pair" json:"target_user_id"`
	Status       ConnectionStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Connection) TableName() string {
	return "connections"
}

// Counterpart returns the endpoint of the connection that is not viewerID.
func (c Connection) Counterpart(viewerID uint) uint {
	if c.UserID == viewerID {
		return c.TargetUserID
	}
	return c.UserID
}

// Touches reports whether viewerID is either endpoint of the connection.
func (c Connection) Touches(viewerID uint) bool {
	return c.UserID == viewerID || c.TargetUserID == viewerID
}
