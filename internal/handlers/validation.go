package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNameOnce sync.Once

// UseJSONFieldNames makes validator report fields by their json tag, so
// error maps use the same keys clients send.
func UseJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}

// bindJSON binds the body and writes a 400 on failure. It returns false when
// the handler should stop.
func bindJSON(ctx *gin.Context, body interface{}) bool {
	err := ctx.ShouldBindJSON(body)

	if err == nil {
		return true
	}

	return rejectBinding(ctx, err)
}

func rejectBinding(ctx *gin.Context, err error) bool {
	var validationErrs validator.ValidationErrors

	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			if _, exists := fields[fe.Field()]; !exists {
				fields[fe.Field()] = describeFieldError(fe)
			}
		}
		ctx.JSON(http.StatusBadRequest, ValidationResponse{Message: "Validation failed", Errors: fields})
		return false
	}

	respondMessage(ctx, http.StatusBadRequest, "Invalid request")
	return false
}

// bindOptionalJSON is bindJSON for bodies that may be empty. A request with
// no body binds as the zero value, which for a patch means "change nothing".
func bindOptionalJSON(ctx *gin.Context, body interface{}) bool {
	err := ctx.ShouldBindJSON(body)

	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	return rejectBinding(ctx, err)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}
