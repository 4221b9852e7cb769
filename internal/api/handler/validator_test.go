package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createRoomRequest{RoomID: 0, MaxGuests: -1})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"roomId is required", "category is required", "available is required", "maxGuests must be at least 0"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestValidator_Passes(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&createGalleryRequest{Name: "Lobby", Image: "lobby.jpg"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Validate(&loginRequest{Email: "a@x.com", Password: "pw"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
