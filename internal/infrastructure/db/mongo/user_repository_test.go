package mongo

import (
	"errors"
	"testing"
	"time"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

func TestUserDocumentRoundTrip(t *testing.T) {
	blockedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	u := &domain.User{
		Email:       "guest@example.com",
		FirstName:   "Ana",
		Role:        domain.RoleCustomer,
		Blocked:     true,
		BlockReason: "chargeback",
		BlockedAt:   &blockedAt,
		CreatedAt:   blockedAt.Add(-time.Hour),
		UpdatedAt:   blockedAt,
	}

	doc := toMongoUser(u)
	if doc.Type != "customer" || doc.BlockedAt != blockedAt.Unix() {
		t.Fatalf("unexpected document: %+v", doc)
	}

	back := doc.toDomain()
	if back.Role != domain.RoleCustomer || back.BlockReason != "chargeback" {
		t.Fatalf("unexpected user: %+v", back)
	}
	if back.BlockedAt == nil || !back.BlockedAt.Equal(blockedAt) {
		t.Fatalf("blockedAt lost: %v", back.BlockedAt)
	}
}

func TestUserDocument_UnblockedHasNoTimestamp(t *testing.T) {
	doc := toMongoUser(&domain.User{Email: "a@x.com"})
	back := doc.toDomain()
	if back.BlockedAt != nil {
		t.Fatalf("expected nil blockedAt, got %v", back.BlockedAt)
	}
}

func TestObjectID_InvalidHexIsNotFound(t *testing.T) {
	if _, err := objectID("42"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := objectID("65f1c2a9b3e4d5f6a7b8c9d0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
