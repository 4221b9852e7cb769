package handler

import (
	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

// --- Users ---

type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsApp"`
	Image     string `json:"image"`
	Type      string `json:"type"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Phone         *string `json:"phone"`
	WhatsApp      *string `json:"whatsApp"`
	Image         *string `json:"image"`
	Type          *string `json:"type"`
	Disabled      *bool   `json:"disabled"`
	EmailVerified *bool   `json:"emailVerified"`
}

type blockUserRequest struct {
	Reason string `json:"reason"`
}

// sessionUser is the identity subset returned on login.
type sessionUser struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Type      domain.Role `json:"type"`
}

// profileUser is the subset returned by GET /users/me.
type profileUser struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Type      domain.Role `json:"type"`
	Image     string      `json:"image"`
}

type loginResponse struct {
	Message string      `json:"message"`
	User    sessionUser `json:"user"`
	Token   string      `json:"token"`
}

type userResponse struct {
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user"`
}

type profileResponse struct {
	User profileUser `json:"user"`
}

type userListResponse struct {
	List []*domain.User `json:"list"`
}

// --- Bookings ---

// createBookingRequest has no owner fields: guest email and booker role are
// always taken from the caller's token.
type createBookingRequest struct {
	RoomID int    `json:"roomId"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type updateBookingRequest struct {
	RoomID     *int    `json:"roomId"`
	GuestEmail *string `json:"guestEmail"`
	BookerRole *string `json:"bookerRole"`
	Start      *string `json:"start"`
	End        *string `json:"end"`
}

type bookingResponse struct {
	Message string          `json:"message,omitempty"`
	Result  *domain.Booking `json:"result"`
}

type bookingListResponse struct {
	List []*domain.Booking `json:"list"`
}

// --- Rooms ---

type createRoomRequest struct {
	RoomID             int      `json:"roomId"    validate:"required,gt=0"`
	Category           string   `json:"category"  validate:"required"`
	Available          *bool    `json:"available" validate:"required"`
	MaxGuests          int      `json:"maxGuests" validate:"gte=0"`
	SpecialDescription string   `json:"specialDescription"`
	Photos             []string `json:"photos"`
	Notes              string   `json:"notes"`
}

type updateRoomRequest struct {
	Category           *string  `json:"category"`
	Available          *bool    `json:"available"`
	MaxGuests          *int     `json:"maxGuests"`
	SpecialDescription *string  `json:"specialDescription"`
	Photos             []string `json:"photos"`
	Notes              *string  `json:"notes"`
}

type roomResponse struct {
	Message string       `json:"message,omitempty"`
	Room    *domain.Room `json:"room"`
}

type roomPageResponse struct {
	Rooms      []*domain.Room `json:"rooms"`
	TotalCount int64          `json:"totalCount"`
}

type roomListResponse struct {
	Rooms []*domain.Room `json:"rooms"`
}

// --- Categories ---

type createCategoryRequest struct {
	Name        string   `json:"name"  validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

type updateCategoryRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Features    []string `json:"features"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Disabled    *bool    `json:"disabled"`
}

type categoryResponse struct {
	Message  string           `json:"message,omitempty"`
	Category *domain.Category `json:"category"`
}

type categoryListResponse struct {
	Categories []*domain.Category `json:"categories"`
}

// --- Gallery ---

type createGalleryRequest struct {
	Name        string `json:"name"  validate:"required"`
	Image       string `json:"image" validate:"required"`
	Description string `json:"description"`
}

type updateGalleryRequest struct {
	Name        *string `json:"name"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Disabled    *bool   `json:"disabled"`
}

type galleryResponse struct {
	Message string              `json:"message,omitempty"`
	Item    *domain.GalleryItem `json:"item"`
}

type galleryListResponse struct {
	Gallery []*domain.GalleryItem `json:"gallery"`
}
