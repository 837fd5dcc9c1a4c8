package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/taskboard/internal/types"
	"github.com/rs/zerolog"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func respondMessage(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, MessageResponse{Message: message})
}

// respondError maps service errors onto status codes. Unknown errors are
// logged and reported as a generic 500.
func respondError(ctx *gin.Context, err error, notFoundMessage string) {
	var validationErr *types.ValidationError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, ValidationResponse{Message: "Validation failed", Errors: validationErr.Fields})
	case errors.Is(err, types.ErrUnauthenticated):
		respondMessage(ctx, http.StatusUnauthorized, "No token, authorization denied")
	case errors.Is(err, types.ErrInvalidToken):
		respondMessage(ctx, http.StatusUnauthorized, "Token is not valid")
	case errors.Is(err, types.ErrInvalidCredentials):
		respondMessage(ctx, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, types.ErrForbidden):
		respondMessage(ctx, http.StatusForbidden, "Forbidden")
	case errors.Is(err, types.ErrNotFound):
		respondMessage(ctx, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, types.ErrConflict):
		respondMessage(ctx, http.StatusConflict, "Email already exists")
	default:
		zerolog.Ctx(ctx.Request.Context()).Error().Err(err).
			Str("method", ctx.Request.Method).
			Str("path", ctx.FullPath()).
			Msg("request failed")
		respondMessage(ctx, http.StatusInternalServerError, "Server error")
	}
}
