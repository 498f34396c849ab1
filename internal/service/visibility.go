// Package service provides business logic on top of the repository layer.
package service

import (
	"time"

	"constella/internal/models"
)

// Direction indicates which endpoint of a pending connection the viewer is.
type Direction string

const (
	// DirectionOutgoing means the viewer sent the request.
	DirectionOutgoing Direction = "outgoing"
	// DirectionIncoming means the viewer received the request.
	DirectionIncoming Direction = "incoming"
)

// ConnectionView is a connection record resolved from the viewer's
// perspective: the counterpart's id and profile plus the request direction.
// Profile is nil when no profile exists for the counterpart.
type ConnectionView struct {
	ID        uint                    `json:"id"`
	Status    models.ConnectionStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	OtherID   uint                    `json:"other_id"`
	Profile   *models.Profile         `json:"profile"`
	Direction Direction               `json:"direction"`
}

// ConnectionGroups partitions the viewer's connections into incoming pending
// requests, outgoing pending requests and accepted connections.
type ConnectionGroups struct {
	Incoming []ConnectionView `json:"incoming"`
	Outgoing []ConnectionView `json:"outgoing"`
	Accepted []ConnectionView `json:"accepted"`
}

// ClassifyConnections partitions raw connection records into incoming,
// outgoing and accepted groups from the viewer's perspective. Records not
// touching the viewer and records with an unknown status are silently
// excluded. A counterpart with no entry in profilesByID gets a nil Profile;
// the record itself is never dropped for that reason. Each group preserves
// the input iteration order.
func ClassifyConnections(raw []models.Connection, viewerID uint, profilesByID map[uint]*models.Profile) ConnectionGroups {
	groups := ConnectionGroups{
		Incoming: []ConnectionView{},
		Outgoing: []ConnectionView{},
		Accepted: []ConnectionView{},
	}

	for _, c := range raw {
		if !c.Touches(viewerID) {
			continue
		}

		viewerIsSource := c.UserID == viewerID
		otherID := c.Counterpart(viewerID)

		view := ConnectionView{
			ID:        c.ID,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
			OtherID:   otherID,
			Profile:   profilesByID[otherID],
			Direction: DirectionIncoming,
		}
		if viewerIsSource {
			view.Direction = DirectionOutgoing
		}

		switch c.Status {
		case models.ConnectionStatusAccepted:
			// Direction is retained for reference but carries no meaning
			// once the relationship is symmetric.
			groups.Accepted = append(groups.Accepted, view)
		case models.ConnectionStatusPending:
			if viewerIsSource {
				groups.Outgoing = append(groups.Outgoing, view)
			} else {
				groups.Incoming = append(groups.Incoming, view)
			}
		}
	}

	return groups
}

// AcceptedCounterparts returns the set of user ids the viewer holds an
// accepted connection with. Duplicate accepted rows for the same pair
// collapse into a single entry.
func AcceptedCounterparts(raw []models.Connection, viewerID uint) map[uint]struct{} {
	connected := make(map[uint]struct{})
	for _, c := range raw {
		if c.Status != models.ConnectionStatusAccepted || !c.Touches(viewerID) {
			continue
		}
		connected[c.Counterpart(viewerID)] = struct{}{}
	}
	return connected
}

// FilterVisibleMoments returns the subset of items the viewer may see,
// preserving input order. It only tightens the connections-visibility case:
// an item survives when its visibility is not "connections", when the viewer
// authored it, or when its author is in the connected set. Excluding private
// moments of other users is the repository query's responsibility, not this
// filter's.
func FilterVisibleMoments(items []models.Moment, viewerID uint, connected map[uint]struct{}) []models.Moment {
	visible := make([]models.Moment, 0, len(items))
	for _, m := range items {
		if m.Visibility != models.VisibilityConnections || m.UserID == viewerID {
			visible = append(visible, m)
			continue
		}
		if _, ok := connected[m.UserID]; ok {
			visible = append(visible, m)
		}
	}
	return visible
}
