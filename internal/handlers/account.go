package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hotross/HomeMaintenanceTracker/internal/middleware"
	"github.com/hotross/HomeMaintenanceTracker/internal/service"
)

type AccountHandler struct {
	users   *service.UserService
	account *service.AccountService
	jwtAuth *middleware.JWTAuth
}

func NewAccountHandler(users *service.UserService, account *service.AccountService, jwtAuth *middleware.JWTAuth) *AccountHandler {
	return &AccountHandler{users: users, account: account, jwtAuth: jwtAuth}
}

type UpdateAccountRequest struct {
	Username string `json:"username" binding:"required,min=2,max=60"`
}

// PATCH /api/v1/account
//
// Renames the account and issues a fresh token, since the old token
// still carries the old username. Completion records on tasks keep the
// old name; they are snapshots, not references.
func (h *AccountHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	user, err := h.users.Rename(c.Request.Context(), userID, req.Username)
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

	Success(c, AuthResponse{
		Token: token,
		User:  UserResponse{ID: user.ID, Username: user.Username},
	})
}

// GET /api/v1/account/summary
func (h *AccountHandler) Summary(c *gin.Context) {
	userID := middleware.GetUserID(c)

	summary, err := h.account.Summarize(c.Request.Context(), userID)
	if err != nil {
		ServiceError(c, err, "User not found")
		return
	}

	Success(c, summary)
}
