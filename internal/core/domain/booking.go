package domain

import (
	"strings"
	"time"
)

// BookingIDOffset is added to the booking sequence, so the first booking is 1201.
const BookingIDOffset int64 = 1200

// Booking is a reservation of one room between Start and End.
//
// BookingID never changes after creation. GuestEmail and BookerRole are copied
// from the identity that created the booking, not from the request body.
type Booking struct {
	BookingID  int64     `json:"bookingId" bson:"bookingId"`
	RoomID     int       `json:"roomId" bson:"roomId"`
	GuestEmail string    `json:"guestEmail" bson:"email"`
	BookerRole Role      `json:"bookerRole" bson:"userType"`
	Start      time.Time `json:"start" bson:"start"`
	End        time.Time `json:"end" bson:"end"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BookerRoleFor derives the role recorded on a booking from its creator's role.
func BookerRoleFor(role Role) Role {
	switch role {
	case RoleAdmin:
		return RoleAdmin
	case RoleCustomer:
		return RoleCustomer
	default:
		return RoleCustomer
	}
}

var bookingTimeLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseBookingTime accepts an RFC 3339 timestamp or a plain calendar date.
func ParseBookingTime(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range bookingTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, Invalid("%s must be a date (YYYY-MM-DD) or an RFC 3339 timestamp", field)
}

// BookingAction names an entry in the booking audit trail.
type BookingAction string

const (
	BookingCreated BookingAction = "created"
	BookingUpdated BookingAction = "updated"
	BookingDeleted BookingAction = "deleted"
)

// BookingEvent records who changed a booking and when.
type BookingEvent struct {
	ID         string        `json:"id" bson:"_id"`
	BookingID  int64         `json:"bookingId" bson:"bookingId"`
	Action     BookingAction `json:"action" bson:"action"`
	ActorEmail string        `json:"actorEmail" bson:"actorEmail"`
	ActorRole  Role          `json:"actorRole" bson:"actorRole"`
	At         time.Time     `json:"at" bson:"at"`
}
