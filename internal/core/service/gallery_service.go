package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

type GalleryService struct {
	repo ports.GalleryRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewGalleryService(repo ports.GalleryRepository, log zerolog.Logger) *GalleryService {
	return &GalleryService{repo: repo, log: log, now: time.Now}
}

func (s *GalleryService) Create(ctx context.Context, item domain.GalleryItem) (*domain.GalleryItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Image = strings.TrimSpace(item.Image)
	if item.Name == "" || item.Image == "" {
		return nil, domain.Invalid("name and image are required")
	}

	now := s.now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, err
	}

	s.log.Info().Str("gallery_item", item.Name).Msg("gallery item created")
	return &item, nil
}

func (s *GalleryService) List(ctx context.Context) ([]*domain.GalleryItem, error) {
	return s.repo.List(ctx)
}

func (s *GalleryService) Update(ctx context.Context, name string, patch ports.GalleryPatch) (*domain.GalleryItem, error) {
	if patch.Name != nil {
		renamed := strings.TrimSpace(*patch.Name)
		if renamed == "" {
			return nil, domain.Invalid("name must not be empty")
		}
		patch.Name = &renamed
	}
	if patch.Image != nil {
		image := strings.TrimSpace(*patch.Image)
		if image == "" {
			return nil, domain.Invalid("image must not be empty")
		}
		patch.Image = &image
	}

	item, err := s.repo.Update(ctx, strings.TrimSpace(name), patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("gallery_item", item.Name).Msg("gallery item updated")
	return item, nil
}

func (s *GalleryService) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	s.log.Info().Str("gallery_item", name).Msg("gallery item deleted")
	return nil
}

func (s *GalleryService) Toggle(ctx context.Context, name string) (*domain.GalleryItem, error) {
	current, err := s.repo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	disabled := !current.Disabled
	return s.Update(ctx, current.Name, ports.GalleryPatch{Disabled: &disabled})
}
