package ports

import (
	"context"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

// Every method that takes a caller receives the identity resolved for the
// request, or nil for anonymous requests.

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	WhatsApp  string
	Image     string
	// Type other than customer requires an admin caller.
	Type string
}

type AuthService interface {
	Register(ctx context.Context, caller *domain.Identity, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Me(ctx context.Context, caller *domain.Identity) (*domain.User, error)
}

// UpdateUserInput carries the optional fields of a user update.
type UpdateUserInput struct {
	FirstName     *string
	LastName      *string
	Phone         *string
	WhatsApp      *string
	Image         *string
	Type          *string
	Disabled      *bool
	EmailVerified *bool
}

// UserService is the admin surface over accounts. key is an email when it
// contains '@' and a user id otherwise.
type UserService interface {
	List(ctx context.Context, caller *domain.Identity) ([]*domain.User, error)
	Get(ctx context.Context, caller *domain.Identity, key string) (*domain.User, error)
	Update(ctx context.Context, caller *domain.Identity, key string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, caller *domain.Identity, key string) error
	ToggleDisabled(ctx context.Context, caller *domain.Identity, key string) (*domain.User, error)
	Block(ctx context.Context, caller *domain.Identity, key, reason string) (*domain.User, error)
	Unblock(ctx context.Context, caller *domain.Identity, key string) (*domain.User, error)
}

// CreateBookingInput carries the caller-controlled fields of a new booking.
// Owner email and role are never part of it.
type CreateBookingInput struct {
	RoomID int
	Start  string
	End    string
}

// UpdateBookingInput carries the optional fields of a booking update.
type UpdateBookingInput struct {
	RoomID     *int
	GuestEmail *string
	BookerRole *string
	Start      *string
	End        *string
}

type BookingService interface {
	Create(ctx context.Context, caller *domain.Identity, in CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context, caller *domain.Identity) ([]*domain.Booking, error)
	Get(ctx context.Context, caller *domain.Identity, bookingID int64) (*domain.Booking, error)
	Update(ctx context.Context, caller *domain.Identity, bookingID int64, in UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, caller *domain.Identity, bookingID int64) error
}

// RoomPage is one page of the room listing.
type RoomPage struct {
	Rooms      []*domain.Room
	TotalCount int64
}

type RoomService interface {
	Create(ctx context.Context, room domain.Room) (*domain.Room, error)
	Get(ctx context.Context, roomID int) (*domain.Room, error)
	List(ctx context.Context, pageIndex, pageSize int) (*RoomPage, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Room, error)
	Update(ctx context.Context, roomID int, patch RoomPatch) (*domain.Room, error)
	Delete(ctx context.Context, roomID int) error
}

type CategoryService interface {
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Get(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, name string, patch CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, name string) error
	Toggle(ctx context.Context, name string) (*domain.Category, error)
}

type GalleryService interface {
	Create(ctx context.Context, item domain.GalleryItem) (*domain.GalleryItem, error)
	List(ctx context.Context) ([]*domain.GalleryItem, error)
	Update(ctx context.Context, name string, patch GalleryPatch) (*domain.GalleryItem, error)
	Delete(ctx context.Context, name string) error
	Toggle(ctx context.Context, name string) (*domain.GalleryItem, error)
}
