package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/agenda-ufu/agenda/internal/auth"
	"github.com/agenda-ufu/agenda/internal/models"
	"github.com/agenda-ufu/agenda/internal/session"
	"github.com/agenda-ufu/agenda/internal/store"
	"github.com/agenda-ufu/agenda/internal/types"
	"github.com/agenda-ufu/agenda/internal/utils"
	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CookieConfig controls how the session cookie is written.
type CookieConfig struct {
	Domain string
	Secure bool
	MaxAge int
}

type AuthHandler struct {
	auth     *auth.Service
	sessions *session.Store
	users    *store.Users
	cookies  CookieConfig
}

func NewAuthHandler(service *auth.Service, sessions *session.Store, users *store.Users, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{auth: service, sessions: sessions, users: users, cookies: cookies}
}

func userResponse(user *models.User) types.UserResponse {
	return types.UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: user.ProfileImageURL,
		CreatedAt:       user.CreatedAt.Format(time.RFC3339),
	}
}

func (h *AuthHandler) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     types.SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.cookies.Domain,
		MaxAge:   maxAge,
		Secure:   h.cookies.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) Signup(ctx *gin.Context) {
	var body SignupRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.auth.Register(ctx.Request.Context(), body.Email, body.FirstName, body.LastName, body.Password)

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidDomain):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only @ufu.br email addresses are allowed"})
		case errors.Is(err, auth.ErrAlreadyRegistered):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		case errors.Is(err, auth.ErrWeakPassword):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters with uppercase, lowercase, digit and symbol"})
		default:
			log.Printf("Failed to register user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, userResponse(user))
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.auth.Authenticate(ctx.Request.Context(), body.Email, body.Password)

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidDomain):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only @ufu.br email addresses are allowed"})
		case errors.Is(err, auth.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			log.Printf("Failed to authenticate user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	token, err := h.sessions.Establish(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to establish session: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.setSessionCookie(ctx, token, h.cookies.MaxAge)

	ctx.JSON(http.StatusOK, userResponse(user))
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.users.FindByID(ctx.Request.Context(), currentUser.ID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, userResponse(user))
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	if token, err := ctx.Cookie(types.SessionCookieName); err == nil {
		h.sessions.Terminate(token)
	}

	h.setSessionCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) DeleteAccount(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password is required for account deletion"})
		return
	}

	if _, err := h.auth.Authenticate(ctx.Request.Context(), currentUser.Email, body.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect password"})
			return
		}
		log.Printf("Failed to verify password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Owned resources go with the user through the cascade constraints.
	if err := h.users.Delete(ctx.Request.Context(), currentUser.ID); err != nil {
		log.Printf("Failed to delete user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if token, err := ctx.Cookie(types.SessionCookieName); err == nil {
		h.sessions.Terminate(token)
	}

	h.setSessionCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
