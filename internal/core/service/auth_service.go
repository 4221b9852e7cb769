package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
)

// TokenIssuer signs a bearer token for an identity.
type TokenIssuer interface {
	Issue(id domain.Identity) (string, error)
}

// AuthService implements registration, login and self lookup.
type AuthService struct {
	repo   ports.UserRepository
	tokens TokenIssuer
	log    zerolog.Logger
	now    func() time.Time
}

func NewAuthService(repo ports.UserRepository, tokens TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log, now: time.Now}
}

// Register hashes the password and stores a new account. Anonymous and
// customer callers always create customer accounts; asking for another role
// without being an admin is refused.
func (s *AuthService) Register(ctx context.Context, caller *domain.Identity, in ports.RegisterInput) (*domain.User, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" {
		return nil, domain.Invalid("email is required")
	}
	if in.Password == "" {
		return nil, domain.Invalid("password is required")
	}

	role := domain.RoleCustomer
	if strings.TrimSpace(in.Type) != "" {
		requested, err := domain.ParseRole(in.Type)
		if err != nil {
			return nil, err
		}
		if requested != domain.RoleCustomer && !domain.IsAdmin(caller) {
			return nil, domain.ErrRoleEscalation
		}
		role = requested
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	image := strings.TrimSpace(in.Image)
	if image == "" {
		image = domain.DefaultUserImage
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Image:        image,
		Phone:        strings.TrimSpace(in.Phone),
		WhatsApp:     strings.TrimSpace(in.WhatsApp),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role.String()).Msg("user registered")
	return created, nil
}

// Login checks the password and issues a token. An unknown email is reported
// as domain.ErrUserNotFound, a wrong password as domain.ErrInvalidCredentials.
// Blocked and disabled accounts are refused only after the password matched.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.Invalid("email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("verify password: %w", err)
	}

	switch {
	case user.Blocked:
		return "", nil, domain.ErrAccountBlocked
	case user.Disabled:
		return "", nil, domain.ErrAccountDisabled
	}

	token, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// Me returns the stored record of the caller.
func (s *AuthService) Me(ctx context.Context, caller *domain.Identity) (*domain.User, error) {
	if !domain.IsAuthenticated(caller) {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByID(ctx, caller.ID)
}
