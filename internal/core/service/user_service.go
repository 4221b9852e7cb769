package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

// UserService is the admin surface over accounts.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log, now: time.Now}
}

func (s *UserService) List(ctx context.Context, caller *domain.Identity) ([]*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, caller *domain.Identity, key string) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.find(ctx, key)
}

// Update applies the provided fields only.
func (s *UserService) Update(ctx context.Context, caller *domain.Identity, key string, in ports.UpdateUserInput) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	user, err := s.find(ctx, key)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		user.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.WhatsApp != nil {
		user.WhatsApp = strings.TrimSpace(*in.WhatsApp)
	}
	if in.Image != nil {
		user.Image = strings.TrimSpace(*in.Image)
	}
	if in.Type != nil {
		role, err := domain.ParseRole(*in.Type)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}
	if in.Disabled != nil {
		user.Disabled = *in.Disabled
	}
	if in.EmailVerified != nil {
		user.EmailVerified = *in.EmailVerified
	}

	return s.save(ctx, caller, user, "user updated")
}

func (s *UserService) Delete(ctx context.Context, caller *domain.Identity, key string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	user, err := s.find(ctx, key)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", user.ID).Str("by", caller.Email).Msg("user deleted")
	return nil
}

// ToggleDisabled flips the disabled flag.
func (s *UserService) ToggleDisabled(ctx context.Context, caller *domain.Identity, key string) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	user, err := s.find(ctx, key)
	if err != nil {
		return nil, err
	}
	user.Disabled = !user.Disabled
	return s.save(ctx, caller, user, "user disabled flag toggled")
}

func (s *UserService) Block(ctx context.Context, caller *domain.Identity, key, reason string) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	user, err := s.find(ctx, key)
	if err != nil {
		return nil, err
	}
	at := s.now().UTC()
	user.Blocked = true
	user.BlockReason = strings.TrimSpace(reason)
	user.BlockedAt = &at
	return s.save(ctx, caller, user, "user blocked")
}

func (s *UserService) Unblock(ctx context.Context, caller *domain.Identity, key string) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	user, err := s.find(ctx, key)
	if err != nil {
		return nil, err
	}
	user.Blocked = false
	user.BlockReason = ""
	user.BlockedAt = nil
	return s.save(ctx, caller, user, "user unblocked")
}

// find resolves an email (anything containing '@') or a user id.
func (s *UserService) find(ctx context.Context, key string) (*domain.User, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, domain.Invalid("email or user id is required")
	}
	if strings.Contains(key, "@") {
		return s.repo.FindByEmail(ctx, domain.NormalizeEmail(key))
	}
	return s.repo.FindByID(ctx, key)
}

func (s *UserService) save(ctx context.Context, caller *domain.Identity, user *domain.User, msg string) (*domain.User, error) {
	user.UpdatedAt = s.now().UTC()
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", updated.ID).Str("by", caller.Email).Msg(msg)
	return updated, nil
}
