package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stefhagen/bloglist-api/internal/domain"
)

// TokenService defines operations for issuing and verifying bearer tokens.
type TokenService interface {
	// IssueToken creates a signed token binding the user's identity.
	// The token embeds the user ID and username; an expiry claim is only
	// attached when the service is configured with a token lifetime.
	// Returns the token string or an error if signing fails.
	IssueToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken verifies the provided token string and extracts the
	// claims. Returns ErrInvalidToken if the structure or signature is
	// wrong, ErrExpiredToken if the token carried an expiry and is past it.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the identity a verified token carries.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid"`

	// Username is carried for convenience; the user ID is authoritative.
	Username string `json:"username"`

	// IssuedAt is when the token was minted.
	IssuedAt time.Time `json:"iat,omitempty"`

	// ExpiresAt is the token's expiry. Zero when the token has none.
	ExpiresAt time.Time `json:"exp,omitempty"`
}
