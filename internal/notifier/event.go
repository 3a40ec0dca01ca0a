// Package notifier fans state-change events out to real-time subscribers.
// Delivery is fire-and-forget: no acks, no replay for late subscribers, and
// ordering is guaranteed only across sequentially issued Broadcast calls.
package notifier

import "time"

const (
	EventNewBooking   = "newBooking"
	EventRoomBooked   = "roomBooked"
	EventRoomUnbooked = "roomUnbooked"
	EventResetRooms   = "resetRooms"
)

// Event is the wire envelope pushed to subscribers and published to Kafka.
type Event struct {
	ID        string    `json:"id"`
	Event     string    `json:"event"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Broadcaster is the port handlers and services publish through.
type Broadcaster interface {
	Broadcast(event string, payload any)
}

// Multi fans a broadcast out to several sinks (websocket hub, Kafka, ...).
type Multi []Broadcaster

func (m Multi) Broadcast(event string, payload any) {
	for _, b := range m {
		b.Broadcast(event, payload)
	}
}
