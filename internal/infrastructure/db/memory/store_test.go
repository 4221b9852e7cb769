package memory

import (
	"context"
	"testing"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

func TestRoomRepository_KeepsEmptyPhotos(t *testing.T) {
	repo := NewStore().Rooms()
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Room{RoomID: 1, Category: "suite", Photos: []string{}}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	got, err := repo.FindByRoomID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByRoomID returned error: %v", err)
	}
	if got.Photos == nil {
		t.Fatalf("empty photos came back nil")
	}

	updated, err := repo.Update(ctx, 1, ports.RoomPatch{Photos: []string{}})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Photos == nil || len(updated.Photos) != 0 {
		t.Fatalf("expected empty photos after update, got %#v", updated.Photos)
	}
	if updated.UpdatedAt.IsZero() {
		t.Fatalf("expected updatedAt to be stamped")
	}
}

func TestRoomRepository_ReturnsCopies(t *testing.T) {
	repo := NewStore().Rooms()
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.Room{RoomID: 1, Category: "suite", Photos: []string{"a.jpg"}})
	got, _ := repo.FindByRoomID(ctx, 1)
	got.Photos[0] = "changed.jpg"

	again, _ := repo.FindByRoomID(ctx, 1)
	if again.Photos[0] != "a.jpg" {
		t.Fatalf("stored room was mutated through a returned copy: %v", again.Photos)
	}
}

func TestCategoryRepository_KeepsEmptyFeatures(t *testing.T) {
	repo := NewStore().Categories()
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.Category{Name: "suite", Features: []string{}})
	got, err := repo.FindByName(ctx, "suite")
	if err != nil {
		t.Fatalf("FindByName returned error: %v", err)
	}
	if got.Features == nil {
		t.Fatalf("empty features came back nil")
	}
}
