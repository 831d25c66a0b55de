package handler

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/dto"
	"github.com/hanafi-dev/sentra-portal-api/internal/middleware"
	"github.com/hanafi-dev/sentra-portal-api/internal/service"
	"github.com/hanafi-dev/sentra-portal-api/internal/utils"
)

// AuthHandler exposes login, signup and logout over HTTP.
type AuthHandler struct {
	service   service.AuthService
	validator *validator.Validate
	jwtSecret string
	logger    zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service service.AuthService, validate *validator.Validate, jwtSecret string, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validate,
		jwtSecret: jwtSecret,
		logger:    logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register wires the auth routes.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/login", h.login)
	router.Post("/signup", h.signup)
	router.Post("/logout", h.logout)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "name and password are required")
	}

	if !h.service.Login(c.UserContext(), req.Name, req.Password) {
		return utils.SendError(c, fiber.StatusUnauthorized, "login failed")
	}

	user, _ := h.service.Current()
	token, err := middleware.IssueToken(h.jwtSecret, user, 12*time.Hour)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to sign session token")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return utils.SendSuccess(c, "login successful", dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:         user.ID,
			Name:       user.Name,
			Role:       string(user.Role),
			Department: user.Department,
			Year:       user.Year,
			Status:     string(user.Status),
		},
	})
}

func (h *AuthHandler) signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.service.Signup(c.UserContext(), req)
	switch {
	case errors.Is(err, service.ErrNameTaken):
		return utils.SendError(c, fiber.StatusConflict, "a user with that name already exists")
	case errors.Is(err, service.ErrInvalidRole):
		return utils.SendError(c, fiber.StatusBadRequest, "unknown role")
	case err != nil:
		return utils.SendError(c, fiber.StatusBadRequest, "invalid signup request")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "account created", dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Role:       string(user.Role),
		Department: user.Department,
		Year:       user.Year,
		Status:     string(user.Status),
	})
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	h.service.Logout(c.UserContext())
	return utils.SendSuccess(c, "logged out", nil)
}
