package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/agenda-ufu/agenda/internal/session"
	"github.com/agenda-ufu/agenda/internal/store"
	"github.com/agenda-ufu/agenda/internal/types"
	"github.com/gin-gonic/gin"
)

type AuthenticatedUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Auth resolves the session cookie to a user and stores it in the gin
// context. A storage failure during the user lookup is a 500, not a 401:
// the session itself was valid.
func Auth(sessions *session.Store, users *store.Users) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(types.SessionCookieName)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		identity, err := sessions.Resolve(token)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := users.FindByID(ctx.Request.Context(), identity.UserID)

		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Account deleted after the session was issued.
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			log.Printf("Failed to load user for session: %v", err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
		ctx.Next()
	}
}
