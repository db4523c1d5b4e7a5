package api

import (
	"errors"
	"net/http"

	"github.com/stefhagen/bloglist-api/internal/domain"
	"github.com/stefhagen/bloglist-api/internal/service/auth"
	"github.com/stefhagen/bloglist-api/internal/service/blog"
	"github.com/stefhagen/bloglist-api/internal/store"
)

// domainValidationErrors are the validation failures whose messages pass
// through to clients verbatim.
var domainValidationErrors = []error{
	domain.ErrCredentialsEmpty,
	domain.ErrCredentialsTooShort,
	domain.ErrEmptyBlogTitle,
	domain.ErrEmptyBlogAuthor,
	domain.ErrEmptyBlogURL,
}

// MapErrorToStatusCode maps internal errors to the HTTP status codes of the
// service's error contract. Anything outside the taxonomy is a server
// failure.
func MapErrorToStatusCode(err error) int {
	switch {
	// Expired credentials and missing-identity-where-required
	case errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, blog.ErrAuthRequired):
		return http.StatusUnauthorized

	// Ownership violations
	case errors.Is(err, blog.ErrNotOwner):
		return http.StatusForbidden

	// Missing entities
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Validation, duplicates, and structurally bad tokens all contract
	// to 400 on the wire.
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, auth.ErrInvalidToken),
		isDomainValidationError(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// SafeErrorMessage returns the short machine-stable message for an error.
// Domain validation messages pass through verbatim; everything else maps to
// a fixed string so internal detail never reaches a response body.
func SafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "internal server error"

	case isDomainValidationError(err):
		return err.Error()

	case errors.Is(err, store.ErrUsernameExists):
		return "expected `username` to be unique"

	case errors.Is(err, auth.ErrInvalidToken):
		return "token missing or invalid"

	case errors.Is(err, auth.ErrExpiredToken):
		return "token expired"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "invalid username or password"

	case errors.Is(err, blog.ErrAuthRequired):
		return "token missing"

	case errors.Is(err, blog.ErrNotOwner):
		return "only the owner may modify this blog"

	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"

	case errors.Is(err, store.ErrBlogNotFound):
		return "blog not found"

	case errors.Is(err, store.ErrNotFound):
		return "not found"

	default:
		return "internal server error"
	}
}

func isDomainValidationError(err error) bool {
	for _, validationErr := range domainValidationErrors {
		if errors.Is(err, validationErr) {
			return true
		}
	}
	return false
}
