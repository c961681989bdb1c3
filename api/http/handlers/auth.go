package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/incollege/backend/api/http/presenter"
	"github.com/incollege/backend/pkg/legacy"
)

type AuthHandler struct {
	useCase legacy.AuthUseCase
}

func NewAuthHandler(useCase legacy.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Success   bool   `json:"success"`
	RawOutput string `json:"rawOutput"`
	Token     string `json:"token,omitempty"`
}

// Login drives the legacy program's log-in menu with the given credentials.
// @Summary Log in
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "credentials"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "username and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to run legacy program")
	}
	return presenter.JSON(c, http.StatusOK, authResponse{
		Success:   result.Success,
		RawOutput: result.RawOutput,
		Token:     result.Token,
	})
}

// Register drives the legacy program's create-account menu.
// @Summary Create account
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "credentials"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "username and password are required")
	}

	result, err := h.useCase.Register(c.Context(), req.Username, req.Password)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to run legacy program")
	}
	return presenter.JSON(c, http.StatusOK, authResponse{
		Success:   result.Success,
		RawOutput: result.RawOutput,
		Token:     result.Token,
	})
}
