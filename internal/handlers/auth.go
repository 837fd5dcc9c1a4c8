package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/services"
	"github.com/monocle-dev/taskboard/internal/types"
	"github.com/monocle-dev/taskboard/internal/utils"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AccountService interface {
	Register(ctx context.Context, input services.RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type AuthHandler struct {
	accounts AccountService
}

func NewAuthHandler(accounts AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

func (h *AuthHandler) CreateUser(ctx *gin.Context) {
	var body CreateUserRequest

	if !bindJSON(ctx, &body) {
		return
	}

	user, token, err := h.accounts.Register(ctx.Request.Context(), services.RegisterInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})

	if err != nil {
		respondError(ctx, err, "Not found")
		return
	}

	ctx.JSON(http.StatusCreated, types.AuthResponse{User: userResponse(user), Token: token})
}

func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var body LoginUserRequest

	if !bindJSON(ctx, &body) {
		return
	}

	user, token, err := h.accounts.Login(ctx.Request.Context(), body.Email, body.Password)

	if err != nil {
		respondError(ctx, err, "Not found")
		return
	}

	ctx.JSON(http.StatusOK, types.AuthResponse{User: userResponse(user), Token: token})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondMessage(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:    currentUser.ID,
			Name:  currentUser.Name,
			Email: currentUser.Email,
		},
	})
}

func userResponse(user *models.User) types.UserResponse {
	return types.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
