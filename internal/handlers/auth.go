package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hotross/HomeMaintenanceTracker/internal/middleware"
	"github.com/hotross/HomeMaintenanceTracker/internal/service"
)

type AuthHandler struct {
	users   *service.UserService
	jwtAuth *middleware.JWTAuth
}

func NewAuthHandler(users *service.UserService, jwtAuth *middleware.JWTAuth) *AuthHandler {
	return &AuthHandler{
		users:   users,
		jwtAuth: jwtAuth,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=60"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if err == service.ErrUsernameTaken {
			Conflict(c, "Username already taken")
			return
		}
		ServiceError(c, err, "User not found")
		return
	}

	token, err := h.jwtAuth.GenerateToken(user.ID, user.Username)
	if err != nil {
		InternalError(c, "Failed to generate token")
		return
	}

	Created(c, AuthResponse{
		Token: token,
		User:  UserResponse{ID: user.ID, Username: user.Username},
	})
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		InternalError(c, "Something went wrong")
		return
	}
	if user == nil {
		Unauthorized(c, "Invalid username or password")
		return
	}

	token, err := h.jwtAuth.GenerateToken(user.ID, user.Username)
	if err != nil {
		InternalError(c, "Failed to generate token")
		return
	}

	Success(c, AuthResponse{
		Token: token,
		User:  UserResponse{ID: user.ID, Username: user.Username},
	})
}

// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		ServiceError(c, err, "User not found")
		return
	}

	Success(c, UserResponse{ID: user.ID, Username: user.Username})
}
