package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipehub/backend/internal/ports/inbound"
)

// UserHandler serves registration, login and profile endpoints.
type UserHandler struct {
	users  inbound.UserService
	logger *zap.Logger
}

// NewUserHandler builds the handler.
func NewUserHandler(users inbound.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger.Named("user-handler")}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *UserHandler) register(api *gin.RouterGroup, auth gin.HandlerFunc) {
	api.POST("/auth/register", h.signUp)
	api.POST("/auth/login", h.signIn)
	api.GET("/users/:id", h.profile)

	protected := api.Group("", auth)
	protected.PUT("/auth/password", h.changePassword)
}

func (h *UserHandler) signUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorBody{Code: "MALFORMED_BODY", Message: "malformed request body"})
		return
	}

	token, err := h.users.Register(c.Request.Context(), inbound.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(nethttp.StatusCreated, tokenResponse{Token: token})
}

func (h *UserHandler) signIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorBody{Code: "MALFORMED_BODY", Message: "malformed request body"})
		return
	}

	token, err := h.users.Login(c.Request.Context(), inbound.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(nethttp.StatusOK, tokenResponse{Token: token})
}

func (h *UserHandler) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(nethttp.StatusBadRequest, errorBody{Code: "MALFORMED_BODY", Message: "malformed request body"})
		return
	}

	err := h.users.ChangePassword(c.Request.Context(), inbound.ChangePasswordCommand{
		UserID:          currentUserID(c),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(nethttp.StatusNoContent)
}

func (h *UserHandler) profile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	profile, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(nethttp.StatusOK, profile)
}
