package donation

import "github.com/google/uuid"

type EventKind string

const (
	EventDonationApproved EventKind = "donation_approved"
	EventDonationRejected EventKind = "donation_rejected"
	EventDonationMatched  EventKind = "donation_matched"
)

const entityTypeDonation = "donation"

// Event is an outbound notification produced by a lifecycle transition.
// Transitions return events instead of sending anything themselves; the
// dispatcher delivers them after the state change is committed.
type Event struct {
	UserID     uuid.UUID
	Kind       EventKind
	Title      string
	Message    string
	EntityID   uuid.UUID
	EntityType string
}

func donorEvent(donorID uuid.UUID, kind EventKind, donationID uuid.UUID, title, message string) Event {
	return Event{
		UserID:     donorID,
		Kind:       kind,
		Title:      title,
		Message:    message,
		EntityID:   donationID,
		EntityType: entityTypeDonation,
	}
}
