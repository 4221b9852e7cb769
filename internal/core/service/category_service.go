package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

type CategoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log, now: time.Now}
}

func (s *CategoryService) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, domain.Invalid("name is required")
	}
	if c.Price < 0 {
		return nil, domain.Invalid("price must not be negative")
	}
	if c.Features == nil {
		c.Features = []string{}
	}

	now := s.now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}

	s.log.Info().Str("category", c.Name).Msg("category created")
	return &c, nil
}

func (s *CategoryService) Get(ctx context.Context, name string) (*domain.Category, error) {
	return s.repo.FindByName(ctx, strings.TrimSpace(name))
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, name string, patch ports.CategoryPatch) (*domain.Category, error) {
	if patch.Name != nil {
		renamed := strings.TrimSpace(*patch.Name)
		if renamed == "" {
			return nil, domain.Invalid("name must not be empty")
		}
		patch.Name = &renamed
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, domain.Invalid("price must not be negative")
	}

	c, err := s.repo.Update(ctx, strings.TrimSpace(name), patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("category", c.Name).Msg("category updated")
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	s.log.Info().Str("category", name).Msg("category deleted")
	return nil
}

// Toggle flips the disabled flag of a category.
func (s *CategoryService) Toggle(ctx context.Context, name string) (*domain.Category, error) {
	current, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	disabled := !current.Disabled
	return s.Update(ctx, current.Name, ports.CategoryPatch{Disabled: &disabled})
}
