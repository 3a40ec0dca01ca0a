package notifier

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"hoteladmin/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
}

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(newTestLogger())
	go hub.Run()
	server := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(func() {
		server.Close()
		hub.Stop()
	})
	return hub, server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	// Give the hub a moment to register the subscriber.
	time.Sleep(50 * time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read websocket message: %v", err)
	}
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	return event
}

func TestHubDeliversBroadcastToSubscriber(t *testing.T) {
	hub, server := startHub(t)
	conn := dial(t, server)

	hub.Broadcast(EventNewBooking, map[string]string{"guestName": "Ada"})

	event := readEvent(t, conn)
	if event.Event != EventNewBooking {
		t.Errorf("expected event %q, got %q", EventNewBooking, event.Event)
	}
	if event.ID == "" {
		t.Error("expected a non-empty event id")
	}
	if event.Timestamp.IsZero() {
		t.Error("expected a timestamp on the event")
	}
	payload, ok := event.Payload.(map[string]any)
	if !ok || payload["guestName"] != "Ada" {
		t.Errorf("unexpected payload: %+v", event.Payload)
	}
}

func TestHubDeliversToAllSubscribers(t *testing.T) {
	hub, server := startHub(t)
	first := dial(t, server)
	second := dial(t, server)

	hub.Broadcast(EventResetRooms, nil)

	for _, conn := range []*websocket.Conn{first, second} {
		event := readEvent(t, conn)
		if event.Event != EventResetRooms {
			t.Errorf("expected event %q, got %q", EventResetRooms, event.Event)
		}
	}
}

// Subscribers only see events broadcast after they connect; there is no
// replay of earlier events.
func TestHubDoesNotReplayEarlierEvents(t *testing.T) {
	hub, server := startHub(t)

	hub.Broadcast(EventRoomBooked, map[string]string{"roomId": "early"})
	// Let the hub drain the broadcast with no subscribers attached.
	time.Sleep(50 * time.Millisecond)

	conn := dial(t, server)
	hub.Broadcast(EventRoomUnbooked, map[string]string{"roomId": "late"})

	event := readEvent(t, conn)
	if event.Event != EventRoomUnbooked {
		t.Errorf("expected only the post-subscription event, got %q", event.Event)
	}
}

func TestBroadcastWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub, _ := startHub(t)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Broadcast(EventRoomBooked, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked with no subscribers")
	}
}

func TestMultiFansOutToAllSinks(t *testing.T) {
	first := &recordingSink{}
	second := &recordingSink{}
	multi := Multi{first, second}

	multi.Broadcast(EventNewBooking, "payload")

	for i, sink := range []*recordingSink{first, second} {
		if len(sink.events) != 1 || sink.events[0] != EventNewBooking {
			t.Errorf("sink %d: expected one %q event, got %v", i, EventNewBooking, sink.events)
		}
	}
}

type recordingSink struct {
	events []string
}

func (r *recordingSink) Broadcast(event string, payload any) {
	r.events = append(r.events, event)
}
