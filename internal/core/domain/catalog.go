package domain

import "time"

// DefaultMaxGuests is the capacity given to rooms created without one.
const DefaultMaxGuests = 3

// Room is a bookable unit, identified by its human-facing room number.
type Room struct {
	RoomID             int       `json:"roomId" bson:"roomId"`
	Category           string    `json:"category" bson:"category"`
	Available          bool      `json:"available" bson:"available"`
	MaxGuests          int       `json:"maxGuests" bson:"maxGuests"`
	SpecialDescription string    `json:"specialDescription" bson:"specialDescription"`
	Photos             []string  `json:"photos" bson:"photos"`
	Notes              string    `json:"notes" bson:"notes"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Category groups rooms under a shared price and feature list.
type Category struct {
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	Features    []string  `json:"features" bson:"features"`
	Description string    `json:"description" bson:"description"`
	Image       string    `json:"image" bson:"image"`
	Disabled    bool      `json:"disabled" bson:"disabled"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// GalleryItem is a picture shown on the public gallery page.
type GalleryItem struct {
	Name        string    `json:"name" bson:"name"`
	Image       string    `json:"image" bson:"image"`
	Description string    `json:"description" bson:"description"`
	Disabled    bool      `json:"disabled" bson:"disabled"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
