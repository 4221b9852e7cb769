package mongo

import (
	"testing"
	"time"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

func TestSequenceFor(t *testing.T) {
	cases := []struct {
		bookingID int64
		want      int64
	}{
		{0, 0},
		{domain.BookingIDOffset, 0},
		{1201, 1},
		{1250, 50},
		{999, 0},
	}
	for _, c := range cases {
		if got := sequenceFor(c.bookingID); got != c.want {
			t.Fatalf("sequenceFor(%d) = %d, want %d", c.bookingID, got, c.want)
		}
	}
}

func TestBookingEventDocument(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	doc := bookingEventDocument(&domain.BookingEvent{
		ID:         "evt-1",
		BookingID:  1201,
		Action:     domain.BookingUpdated,
		ActorEmail: "admin@x.com",
		ActorRole:  domain.RoleAdmin,
		At:         at,
	})

	if doc["action"] != "updated" || doc["actorRole"] != string(domain.RoleAdmin) || doc["bookingId"] != int64(1201) {
		t.Fatalf("unexpected document: %v", doc)
	}
	if got, _ := doc["at"].(time.Time); got.Location() != time.UTC || !got.Equal(at) {
		t.Fatalf("expected at in UTC, got %v", doc["at"])
	}
	if len(doc) != 6 {
		t.Fatalf("unexpected fields in %v", doc)
	}
}
