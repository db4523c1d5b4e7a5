package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Minimum length for usernames and passwords.
const minCredentialLength = 3

// Common validation errors for User
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrCredentialsEmpty    = errors.New("username or password cannot be empty")
	ErrCredentialsTooShort = errors.New(
		"username and password must be at least 3 characters long",
	)
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the bloglist service.
// BlogIDs lists the blogs the user owns, oldest first.
type User struct {
	ID             uuid.UUID   `json:"id"`
	Username       string      `json:"username"`
	Name           string      `json:"name,omitempty"`
	Password       string      `json:"-"` // Plaintext password, only set during registration
	HashedPassword string      `json:"-"` // Never expose the password hash in JSON
	BlogIDs        []uuid.UUID `json:"blogs"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewUser creates a new User with the given username, display name and
// plaintext password. It generates a new UUID for the user ID and sets
// the creation/update timestamps.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The store is responsible for hashing it before persistence.
func NewUser(username, name, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Name:      name,
		Password:  password,
		BlogIDs:   []uuid.UUID{},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Password != "" || u.HashedPassword == "" {
		// Registration path: the plaintext credentials must pass the
		// length rules. Empty and too-short get distinct messages.
		if u.Username == "" || u.Password == "" {
			return ErrCredentialsEmpty
		}
		if len(u.Username) < minCredentialLength || len(u.Password) < minCredentialLength {
			return ErrCredentialsTooShort
		}
	} else {
		// Loaded from the store: only the username rules apply.
		if u.Username == "" {
			return ErrCredentialsEmpty
		}
		if len(u.Username) < minCredentialLength {
			return ErrCredentialsTooShort
		}
	}

	return nil
}
