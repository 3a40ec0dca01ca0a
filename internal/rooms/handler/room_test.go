package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"hoteladmin/pkg/client"
	apperrors "hoteladmin/pkg/errors"
	"hoteladmin/pkg/logger"
)

// unreachableURL points at a port nothing listens on.
const unreachableURL = "http://127.0.0.1:1"

func passthroughGuard(next httprouter.Handle) httprouter.Handle {
	return next
}

func newTestRouter(upstreamURL string) *httprouter.Router {
	log := logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
	roomClient := client.NewRoomServiceClient(upstreamURL, time.Second)
	router := httprouter.New()
	NewRoomHandler(roomClient, passthroughGuard, log).RegisterRoutes(router)
	return router
}

func TestListRelaysUpstreamResponse(t *testing.T) {
	const upstreamBody = `[{"number":"101","type":"suite","price":250}]`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rooms" {
			t.Errorf("expected upstream path /api/rooms, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(upstreamBody))
	}))
	defer upstream.Close()

	router := newTestRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/rooms", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != upstreamBody {
		t.Errorf("expected the upstream body verbatim, got %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected the upstream content type, got %q", ct)
	}
}

func TestListUpstreamDownReturns500(t *testing.T) {
	router := newTestRouter(unreachableURL)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/rooms", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body apperrors.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body.Code != apperrors.CodeUpstream {
		t.Errorf("expected code %q, got %q", apperrors.CodeUpstream, body.Code)
	}
}

func TestCreateForwardsShapedRoom(t *testing.T) {
	var received map[string]any
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/rooms" {
			t.Errorf("expected POST /api/rooms, got %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode forwarded body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer upstream.Close()

	router := newTestRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/rooms",
		strings.NewReader(`{"number":"204","type":"double","price":120,"_id":"sneaky"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	if received["number"] != "204" || received["type"] != "double" || received["price"] != float64(120) {
		t.Errorf("unexpected forwarded room: %+v", received)
	}
	if received["available"] != true {
		t.Errorf("expected the new room forwarded as available, got %+v", received["available"])
	}
	if received["maintenance"] != false {
		t.Errorf("expected maintenance false, got %+v", received["maintenance"])
	}
	if v, ok := received["bookedBy"]; !ok || v != nil {
		t.Errorf("expected bookedBy null, got %+v", v)
	}
	if _, ok := received["_id"]; ok {
		t.Error("client-supplied _id must not be forwarded")
	}
}

// A dead room service must not fail room creation; the handler logs the
// forwarding failure and still confirms with a 201.
func TestCreateUpstreamDownStillReturns201(t *testing.T) {
	router := newTestRouter(unreachableURL)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/rooms",
		strings.NewReader(`{"number":"204","type":"double","price":120}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201 despite the dead upstream, got %d", rec.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Message != "Room added" {
		t.Errorf("expected confirmation message, got %q", body.Message)
	}
}

func TestCreateMalformedBodyReturns400(t *testing.T) {
	router := newTestRouter(unreachableURL)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/rooms", strings.NewReader(`{"number"`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestUpdateForwardsBodyAndRelaysReply(t *testing.T) {
	var forwarded []byte
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/rooms/abc123" {
			t.Errorf("expected PATCH /api/rooms/abc123, got %s %s", r.Method, r.URL.Path)
		}
		forwarded, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Room updated"}`))
	}))
	defer upstream.Close()

	router := newTestRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/rooms/abc123",
		strings.NewReader(`{"price":180}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if string(forwarded) != `{"price":180}` {
		t.Errorf("expected the raw body forwarded, got %q", forwarded)
	}
	if got := rec.Body.String(); got != `{"message":"Room updated"}` {
		t.Errorf("expected the upstream reply verbatim, got %q", got)
	}
}

func TestUpdateUpstreamDownReturns500(t *testing.T) {
	router := newTestRouter(unreachableURL)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/rooms/abc123",
		strings.NewReader(`{"price":180}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body apperrors.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body.Code != apperrors.CodeUpstream {
		t.Errorf("expected code %q, got %q", apperrors.CodeUpstream, body.Code)
	}
}

func TestMaintenanceForwardsToMaintenancePath(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/rooms/abc123/maintenance" {
			t.Errorf("expected PATCH /api/rooms/abc123/maintenance, got %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Maintenance updated"}`))
	}))
	defer upstream.Close()

	router := newTestRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/rooms/abc123/maintenance",
		strings.NewReader(`{"maintenance":true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestDeleteRelaysUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/rooms/abc123" {
			t.Errorf("expected DELETE /api/rooms/abc123, got %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Room not found"}`))
	}))
	defer upstream.Close()

	router := newTestRouter(upstream.URL)
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/rooms/abc123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected the upstream 404 relayed, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"error":"Room not found"}` {
		t.Errorf("expected the upstream body verbatim, got %q", got)
	}
}
