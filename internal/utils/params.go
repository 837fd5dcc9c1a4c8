package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUUIDParam parses a path parameter as a UUID. ok is false when the
// parameter is missing or malformed.
func GetUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))

	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// GetIntQuery returns the query value as an int, or fallback when it is
// missing or not a number.
func GetIntQuery(ctx *gin.Context, key string, fallback int) int {
	value, ok := ctx.GetQuery(key)

	if !ok {
		return fallback
	}

	parsed, err := strconv.Atoi(value)

	if err != nil {
		return fallback
	}

	return parsed
}
