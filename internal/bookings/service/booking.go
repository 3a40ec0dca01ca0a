package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	bookingserrors "hoteladmin/internal/bookings/errors"
	"hoteladmin/internal/bookings/repository"
	"hoteladmin/internal/bookings/validator"
	"hoteladmin/internal/notifier"
	"hoteladmin/pkg/config"
	apperrors "hoteladmin/pkg/errors"
	"hoteladmin/pkg/model"
	"hoteladmin/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, req *model.BookRequest) (*model.BookingWithRoom, error)
	List(ctx context.Context) ([]*model.BookingWithRoom, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
}

// bookingService owns booking records and flags room availability in the
// shared mirror. The room flag and the booking record are written as two
// independent operations with no transaction across them; concurrent books
// of the same room can both succeed. Known limitation, kept on purpose -
// wrapping these in a session would change observable semantics.
type bookingService struct {
	repo      repository.BookingRepository
	rooms     repository.RoomMirrorRepository
	validator *validator.BookingValidator
	events    notifier.Broadcaster
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	rooms repository.RoomMirrorRepository,
	validator *validator.BookingValidator,
	events notifier.Broadcaster,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		rooms:     rooms,
		validator: validator,
		events:    events,
		cfg:       cfg,
	}
}

type roomEventPayload struct {
	RoomID string `json:"roomId"`
}

func (s *bookingService) Create(ctx context.Context, req *model.BookRequest) (*model.BookingWithRoom, error) {
	req.GuestName = sanitizer.String(req.GuestName)
	if err := s.validator.ValidateBookRequest(req); err != nil {
		s.cfg.Log.Warn("Book request validation failed", "error", err)
		return nil, apperrors.Validation("Invalid booking input", map[string]any{"error": err.Error()})
	}

	roomID, err := primitive.ObjectIDFromHex(req.RoomID)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid room ID format")
	}

	// Write 1: flag the room unavailable. The room is not checked for
	// existence or current availability first.
	if err := s.rooms.SetAvailability(ctx, roomID, false); err != nil {
		return nil, apperrors.Storage("Failed to update room availability", err)
	}

	// Write 2: insert the booking record.
	booking := &model.Booking{
		RoomID:    &roomID,
		GuestName: req.GuestName,
	}
	if err := s.repo.Insert(ctx, booking); err != nil {
		return nil, apperrors.Storage("Failed to create booking", err)
	}

	result := &model.BookingWithRoom{
		ID:        booking.ID,
		GuestName: booking.GuestName,
		Date:      booking.Date,
		Room:      s.resolveRoomSummary(ctx, roomID, req),
	}

	s.events.Broadcast(notifier.EventNewBooking, result)
	s.events.Broadcast(notifier.EventRoomBooked, roomEventPayload{RoomID: req.RoomID})

	s.cfg.Log.Info("Booking created",
		"id", booking.ID.Hex(),
		"room_id", req.RoomID,
	)
	return result, nil
}

// resolveRoomSummary prefers the mirror; when the room is not mirrored yet it
// falls back to the display hints carried in the booking request.
func (s *bookingService) resolveRoomSummary(ctx context.Context, roomID primitive.ObjectID, req *model.BookRequest) *model.RoomSummary {
	summary, err := s.rooms.FindSummary(ctx, roomID)
	if err != nil {
		s.cfg.Log.Warn("Failed to resolve room summary", "room_id", roomID.Hex(), "error", err)
	}
	if summary != nil {
		return summary
	}
	return &model.RoomSummary{
		ID:     roomID,
		Number: req.RoomNumber,
		Type:   req.RoomType,
		Price:  req.RoomPrice,
	}
}

func (s *bookingService) List(ctx context.Context) ([]*model.BookingWithRoom, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Storage("Failed to retrieve bookings", err)
	}

	// Non-nil so an empty store serializes as [].
	result := make([]*model.BookingWithRoom, 0, len(bookings))
	for _, b := range bookings {
		entry := &model.BookingWithRoom{
			ID:        b.ID,
			GuestName: b.GuestName,
			Date:      b.Date,
		}
		if b.RoomID != nil {
			summary, err := s.rooms.FindSummary(ctx, *b.RoomID)
			if err != nil {
				s.cfg.Log.Warn("Failed to resolve room for booking",
					"booking_id", b.ID.Hex(),
					"room_id", b.RoomID.Hex(),
					"error", err,
				)
			}
			// Nil when the room no longer exists: reported as room: null.
			entry.Room = summary
		}
		result = append(result, entry)
	}

	return result, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		return apperrors.Storage("Failed to look up booking", err)
	}

	// Best effort: the booking is removed even when freeing the room fails.
	if booking.RoomID != nil {
		if err := s.rooms.SetAvailability(ctx, *booking.RoomID, true); err != nil {
			s.cfg.Log.Warn("Failed to free room for deleted booking",
				"booking_id", id,
				"room_id", booking.RoomID.Hex(),
				"error", err,
			)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		return apperrors.Storage("Failed to delete booking", err)
	}

	roomID := ""
	if booking.RoomID != nil {
		roomID = booking.RoomID.Hex()
	}
	s.events.Broadcast(notifier.EventRoomUnbooked, roomEventPayload{RoomID: roomID})

	s.cfg.Log.Info("Booking deleted", "id", id, "room_id", roomID)
	return nil
}

func (s *bookingService) Reset(ctx context.Context) error {
	freed, err := s.rooms.FreeAll(ctx)
	if err != nil {
		return apperrors.Storage("Failed to reset rooms", err)
	}

	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return apperrors.Storage("Failed to clear bookings", err)
	}

	s.events.Broadcast(notifier.EventResetRooms, nil)

	s.cfg.Log.Info("System reset", "rooms_freed", freed, "bookings_removed", removed)
	return nil
}
