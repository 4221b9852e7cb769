package ports

import (
	"context"
	"time"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

// UserRepository persists credential records. Emails are unique; a duplicate
// insert fails with domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update overwrites every mutable field of the record with user.ID.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// BookingPatch lists the booking fields an update may change. Nil means
// "leave as is". The booking id is not patchable.
type BookingPatch struct {
	RoomID     *int
	GuestEmail *string
	BookerRole *domain.Role
	Start      *time.Time
	End        *time.Time
}

// BookingRepository persists bookings keyed by their sequential booking id.
type BookingRepository interface {
	// NextSequence atomically reserves the next booking sequence number (1, 2, ...).
	NextSequence(ctx context.Context) (int64, error)
	// Create inserts b; a taken booking id fails with domain.ErrBookingIDTaken.
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, bookingID int64) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Update(ctx context.Context, bookingID int64, patch BookingPatch) (*domain.Booking, error)
	Delete(ctx context.Context, bookingID int64) error
}

// BookingEventRepository appends to the booking audit trail.
type BookingEventRepository interface {
	Insert(ctx context.Context, event *domain.BookingEvent) error
}

// RoomPatch lists the room fields an update may change.
type RoomPatch struct {
	Category           *string
	Available          *bool
	MaxGuests          *int
	SpecialDescription *string
	Photos             []string
	Notes              *string
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	FindByRoomID(ctx context.Context, roomID int) (*domain.Room, error)
	// List returns one page of rooms ordered by room id, and the total count.
	List(ctx context.Context, skip, limit int64) ([]*domain.Room, int64, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Room, error)
	Update(ctx context.Context, roomID int, patch RoomPatch) (*domain.Room, error)
	Delete(ctx context.Context, roomID int) error
}

// CategoryPatch lists the category fields an update may change.
type CategoryPatch struct {
	Name        *string
	Price       *float64
	Features    []string
	Description *string
	Image       *string
	Disabled    *bool
}

type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, name string, patch CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, name string) error
}

// GalleryPatch lists the gallery item fields an update may change.
type GalleryPatch struct {
	Name        *string
	Image       *string
	Description *string
	Disabled    *bool
}

type GalleryRepository interface {
	Create(ctx context.Context, item *domain.GalleryItem) error
	FindByName(ctx context.Context, name string) (*domain.GalleryItem, error)
	List(ctx context.Context) ([]*domain.GalleryItem, error)
	Update(ctx context.Context, name string, patch GalleryPatch) (*domain.GalleryItem, error)
	Delete(ctx context.Context, name string) error
}
