package api

import (
	"errors"
	"net/http"
	"time"

	"coachdata/internal/domain"
	"coachdata/internal/service"
	"coachdata/internal/store"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration, login and logout. Login and logout
// double as the session-switch boundary: they call SetCurrentUser on the
// store, which triggers a full load of the user's collections.
type AuthHandler struct {
	authService service.AuthService
	store       *store.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, s *store.Store) *AuthHandler {
	return &AuthHandler{authService: authService, store: s}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func mapUserToResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Account details"
// @Success 201 {object} UserResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to register user.")
		}
		return
	}
	c.JSON(http.StatusCreated, mapUserToResponse(user))
}

// Login godoc
// @Summary Authenticate and open the user's data session
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Login failed.")
		}
		return
	}

	// Switch the active data session to this user.
	h.store.SetCurrentUser(c.Request.Context(), user.ID)

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: mapUserToResponse(user)})
}

// Logout resets the store to the signed-out baseline and clears the
// departing user's namespaced local keys.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	h.store.SetCurrentUser(c.Request.Context(), "")
	if err := h.store.ClearUserData(c.Request.Context(), userID); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to clear user data.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
