package live

import "salonbook/internal/domain"

const (
	EventReservationCreated = "reservation.created"
	EventReservationUpdated = "reservation.updated"
	EventReservationDeleted = "reservation.deleted"
)

// Event is the wire format pushed to feed subscribers. It carries just
// enough for a client to refresh the affected salon/date view.
type Event struct {
	Type          string `json:"type"`
	ReservationID int64  `json:"reservation_id"`
	SalonID       int64  `json:"salon_id"`
	Date          string `json:"reservation_date"`
	Time          string `json:"reservation_time"`
	Status        string `json:"status,omitempty"`
}

// Broadcaster adapts the hub to the reservation module's EventPublisher.
type Broadcaster struct {
	hub *Hub
}

func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

func (b *Broadcaster) ReservationCreated(r *domain.Reservation) {
	b.hub.Broadcast(eventFrom(EventReservationCreated, r))
}

func (b *Broadcaster) ReservationUpdated(r *domain.Reservation) {
	b.hub.Broadcast(eventFrom(EventReservationUpdated, r))
}

func (b *Broadcaster) ReservationDeleted(r *domain.Reservation) {
	b.hub.Broadcast(eventFrom(EventReservationDeleted, r))
}

func eventFrom(eventType string, r *domain.Reservation) Event {
	return Event{
		Type:          eventType,
		ReservationID: r.ID,
		SalonID:       r.SalonID,
		Date:          r.Date,
		Time:          r.Time,
		Status:        string(r.Status),
	}
}
