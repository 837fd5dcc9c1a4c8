package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/auth"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/types"
	"github.com/rs/zerolog"
)

type AuthenticatedUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

func AuthMiddleware(authenticator Authenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := auth.BearerToken(ctx.GetHeader("Authorization"))

		if err != nil {
			RecordAuthAttempt("missing")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		user, err := authenticator.Authenticate(ctx.Request.Context(), token)

		if err != nil {
			if errors.Is(err, types.ErrInvalidToken) {
				RecordAuthAttempt("invalid")
				zerolog.Ctx(ctx.Request.Context()).Debug().Err(err).Bool("expired", auth.IsExpired(err)).Msg("rejected token")
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
				return
			}

			RecordAuthAttempt("error")
			zerolog.Ctx(ctx.Request.Context()).Error().Err(err).Msg("authenticate request")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		RecordAuthAttempt("ok")
		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
		ctx.Next()
	}
}
