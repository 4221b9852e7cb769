package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

// maxAllocationAttempts bounds the retries when a reserved booking id turns
// out to be taken already.
const maxAllocationAttempts = 3

// BookingService allocates booking ids and binds each booking to its creator.
type BookingService struct {
	repo   ports.BookingRepository
	events ports.BookingEventRepository
	log    zerolog.Logger
	now    func() time.Time
}

func NewBookingService(repo ports.BookingRepository, events ports.BookingEventRepository, log zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, events: events, log: log, now: time.Now}
}

// Create books a room for the caller. The id is 1200 plus a sequence number
// reserved atomically in the store; guest email and booker role come from the
// caller's identity.
func (s *BookingService) Create(ctx context.Context, caller *domain.Identity, in ports.CreateBookingInput) (*domain.Booking, error) {
	if !domain.IsAuthenticated(caller) {
		return nil, domain.ErrUnauthenticated
	}
	if in.RoomID == 0 || strings.TrimSpace(in.Start) == "" || strings.TrimSpace(in.End) == "" {
		return nil, domain.Invalid("missing required fields: roomId, start, and end are required")
	}
	if in.RoomID < 0 {
		return nil, domain.Invalid("roomId must be greater than 0")
	}

	start, err := domain.ParseBookingTime("start", in.Start)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseBookingTime("end", in.End)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, domain.Invalid("end must not be before start")
	}

	now := s.now().UTC()
	for attempt := 1; attempt <= maxAllocationAttempts; attempt++ {
		seq, err := s.repo.NextSequence(ctx)
		if err != nil {
			return nil, fmt.Errorf("allocate booking id: %w", err)
		}

		booking := &domain.Booking{
			BookingID:  domain.BookingIDOffset + seq,
			RoomID:     in.RoomID,
			GuestEmail: caller.Email,
			BookerRole: domain.BookerRoleFor(caller.Role),
			Start:      start,
			End:        end,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		err = s.repo.Create(ctx, booking)
		if err == nil {
			s.record(ctx, caller, booking.BookingID, domain.BookingCreated)
			s.log.Info().
				Int64("booking_id", booking.BookingID).
				Int("room_id", booking.RoomID).
				Str("booker_role", booking.BookerRole.String()).
				Msg("booking created")
			return booking, nil
		}
		if !errors.Is(err, domain.ErrBookingIDTaken) {
			return nil, fmt.Errorf("create booking: %w", err)
		}

		s.log.Warn().
			Int64("booking_id", booking.BookingID).
			Int("attempt", attempt).
			Msg("booking id already taken, reserving another")
	}

	return nil, domain.ErrBookingIDTaken
}

func (s *BookingService) List(ctx context.Context, caller *domain.Identity) ([]*domain.Booking, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *BookingService) Get(ctx context.Context, caller *domain.Identity, bookingID int64) (*domain.Booking, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, bookingID)
}

// Update applies the provided fields. The booking id is never part of the patch.
func (s *BookingService) Update(ctx context.Context, caller *domain.Identity, bookingID int64, in ports.UpdateBookingInput) (*domain.Booking, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	patch, err := s.toPatch(in)
	if err != nil {
		return nil, err
	}
	// Order is checked only when both dates change together; moving one end of
	// a stay is allowed on its own.
	if patch.Start != nil && patch.End != nil && patch.End.Before(*patch.Start) {
		return nil, domain.Invalid("end must not be before start")
	}

	updated, err := s.repo.Update(ctx, bookingID, patch)
	if err != nil {
		return nil, err
	}

	s.record(ctx, caller, bookingID, domain.BookingUpdated)
	s.log.Info().Int64("booking_id", bookingID).Str("by", caller.Email).Msg("booking updated")
	return updated, nil
}

func (s *BookingService) Delete(ctx context.Context, caller *domain.Identity, bookingID int64) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, bookingID); err != nil {
		return err
	}

	s.record(ctx, caller, bookingID, domain.BookingDeleted)
	s.log.Info().Int64("booking_id", bookingID).Str("by", caller.Email).Msg("booking deleted")
	return nil
}

func (s *BookingService) toPatch(in ports.UpdateBookingInput) (ports.BookingPatch, error) {
	var patch ports.BookingPatch

	if in.RoomID != nil {
		if *in.RoomID <= 0 {
			return patch, domain.Invalid("roomId must be greater than 0")
		}
		patch.RoomID = in.RoomID
	}
	if in.GuestEmail != nil {
		email := domain.NormalizeEmail(*in.GuestEmail)
		if email == "" {
			return patch, domain.Invalid("guestEmail must not be empty")
		}
		patch.GuestEmail = &email
	}
	if in.BookerRole != nil {
		role, err := domain.ParseRole(*in.BookerRole)
		if err != nil {
			return patch, domain.Invalid("bookerRole must be one of: admin customer")
		}
		patch.BookerRole = &role
	}
	if in.Start != nil {
		start, err := domain.ParseBookingTime("start", *in.Start)
		if err != nil {
			return patch, err
		}
		patch.Start = &start
	}
	if in.End != nil {
		end, err := domain.ParseBookingTime("end", *in.End)
		if err != nil {
			return patch, err
		}
		patch.End = &end
	}
	return patch, nil
}

// record appends to the audit trail. A failed write is logged, never returned.
func (s *BookingService) record(ctx context.Context, caller *domain.Identity, bookingID int64, action domain.BookingAction) {
	if s.events == nil {
		return
	}
	event := &domain.BookingEvent{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		Action:     action,
		ActorEmail: caller.Email,
		ActorRole:  caller.Role,
		At:         s.now().UTC(),
	}
	if err := s.events.Insert(ctx, event); err != nil {
		s.log.Warn().Err(err).Int64("booking_id", bookingID).Str("action", string(action)).Msg("failed to insert booking event")
	}
}
