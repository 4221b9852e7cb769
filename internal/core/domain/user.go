package domain

import (
	"strings"
	"time"
)

// DefaultUserImage is assigned to accounts registered without a picture.
const DefaultUserImage = "https://pixabay.com/vectors/blank-profile-picture-mystery-man-973460/"

// User is the persisted credential record of an account.
//
// Disabled and Blocked are independent: disabled is a reversible deactivation,
// blocked is a punitive lock that carries a reason and a timestamp.
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Image         string     `json:"image"`
	Phone         string     `json:"phone"`
	WhatsApp      string     `json:"whatsApp"`
	Role          Role       `json:"type"`
	Disabled      bool       `json:"disabled"`
	Blocked       bool       `json:"blocked"`
	BlockReason   string     `json:"blockReason,omitempty"`
	BlockedAt     *time.Time `json:"blockedAt,omitempty"`
	EmailVerified bool       `json:"emailVerified"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Identity returns the claim set a token issued for u carries.
func (u *User) Identity() Identity {
	return Identity{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
