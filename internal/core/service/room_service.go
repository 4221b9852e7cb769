package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

const (
	defaultRoomPageSize = 5
	maxRoomPageSize     = 100
)

type RoomService struct {
	repo ports.RoomRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewRoomService(repo ports.RoomRepository, log zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, log: log, now: time.Now}
}

func (s *RoomService) Create(ctx context.Context, room domain.Room) (*domain.Room, error) {
	if room.RoomID <= 0 {
		return nil, domain.Invalid("roomId must be greater than 0")
	}
	room.Category = strings.TrimSpace(room.Category)
	if room.Category == "" {
		return nil, domain.Invalid("category is required")
	}
	if room.MaxGuests < 0 {
		return nil, domain.Invalid("maxGuests must not be negative")
	}
	if room.MaxGuests == 0 {
		room.MaxGuests = domain.DefaultMaxGuests
	}
	if room.Photos == nil {
		room.Photos = []string{}
	}
	now := s.now().UTC()
	room.CreatedAt, room.UpdatedAt = now, now

	if err := s.repo.Create(ctx, &room); err != nil {
		return nil, err
	}

	s.log.Info().Int("room_id", room.RoomID).Str("category", room.Category).Msg("room created")
	return &room, nil
}

func (s *RoomService) Get(ctx context.Context, roomID int) (*domain.Room, error) {
	return s.repo.FindByRoomID(ctx, roomID)
}

// List returns page pageIndex (zero based) of pageSize rooms. A non-positive
// size falls back to the default.
func (s *RoomService) List(ctx context.Context, pageIndex, pageSize int) (*ports.RoomPage, error) {
	if pageIndex < 0 {
		return nil, domain.Invalid("pageIndex must not be negative")
	}
	if pageSize <= 0 {
		pageSize = defaultRoomPageSize
	}
	if pageSize > maxRoomPageSize {
		pageSize = maxRoomPageSize
	}

	skip := int64(pageIndex) * int64(pageSize)
	rooms, total, err := s.repo.List(ctx, skip, int64(pageSize))
	if err != nil {
		return nil, err
	}
	return &ports.RoomPage{Rooms: rooms, TotalCount: total}, nil
}

func (s *RoomService) ListByCategory(ctx context.Context, category string) ([]*domain.Room, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, domain.Invalid("category is required")
	}
	rooms, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, domain.ErrNoRoomsInCategory
	}
	return rooms, nil
}

func (s *RoomService) Update(ctx context.Context, roomID int, patch ports.RoomPatch) (*domain.Room, error) {
	if patch.Category != nil {
		category := strings.TrimSpace(*patch.Category)
		if category == "" {
			return nil, domain.Invalid("category must not be empty")
		}
		patch.Category = &category
	}
	if patch.MaxGuests != nil && *patch.MaxGuests <= 0 {
		return nil, domain.Invalid("maxGuests must be greater than 0")
	}

	room, err := s.repo.Update(ctx, roomID, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("room_id", roomID).Msg("room updated")
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, roomID int) error {
	if err := s.repo.Delete(ctx, roomID); err != nil {
		return err
	}
	s.log.Info().Int("room_id", roomID).Msg("room deleted")
	return nil
}
