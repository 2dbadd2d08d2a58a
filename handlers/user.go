package handlers

import (
	"net/http"

	"fixly/models"
	"fixly/services/user"
	"fixly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account endpoints.
type UserHandler struct {
	UserService user.UserService
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var payload models.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.UserService.Signup(payload)
	if err != nil {
		logger.Error("Signup failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	usr, err := h.UserService.Signin(payload.Email, payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetUserHandler handles GET /api/users/me.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userID := c.GetString("userID")
	usr, err := h.UserService.GetByID(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, usr)
}

// SignoutUserHandler handles POST /api/users/logout.
func (h *UserHandler) SignoutUserHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.UserService.Signout(userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
