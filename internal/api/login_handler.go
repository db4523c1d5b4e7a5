package api

import (
	"errors"
	"net/http"

	"github.com/stefhagen/bloglist-api/internal/api/shared"
	"github.com/stefhagen/bloglist-api/internal/platform/logger"
	"github.com/stefhagen/bloglist-api/internal/service/auth"
	"github.com/stefhagen/bloglist-api/internal/store"
)

// LoginHandler handles the POST /api/login endpoint.
type LoginHandler struct {
	userStore        store.UserStore
	tokenService     auth.TokenService
	passwordVerifier auth.PasswordVerifier
}

// NewLoginHandler creates a new LoginHandler with the given dependencies.
func NewLoginHandler(
	userStore store.UserStore,
	tokenService auth.TokenService,
	passwordVerifier auth.PasswordVerifier,
) *LoginHandler {
	return &LoginHandler{
		userStore:        userStore,
		tokenService:     tokenService,
		passwordVerifier: passwordVerifier,
	}
}

// Login verifies the submitted credentials and answers with a signed bearer
// token. Unknown usernames and wrong passwords produce the same 401.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				SafeErrorMessage(auth.ErrInvalidCredentials))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			SafeErrorMessage(auth.ErrInvalidCredentials))
		return
	}

	token, err := h.tokenService.IssueToken(r.Context(), user)
	if err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to issue token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}
