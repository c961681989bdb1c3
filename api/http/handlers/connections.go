package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/incollege/backend/api/http/presenter"
	"github.com/incollege/backend/pkg/network"
)

type ConnectionHandler struct {
	uc network.UseCase
}

func NewConnectionHandler(uc network.UseCase) *ConnectionHandler {
	return &ConnectionHandler{uc: uc}
}

type connectionRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
}

// Request sends a connection request.
// @Summary Send connection request
// @Tags    connections
// @Accept  json
// @Produce json
// @Param   input body connectionRequest true "sender and recipient"
// @Security BearerAuth
// @Success 200 {object} presenter.StatusResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /connections/request [post]
func (h *ConnectionHandler) Request(c *fiber.Ctx) error {
	var req connectionRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Sender) == "" || strings.TrimSpace(req.Recipient) == "" {
		return presenter.Error(c, http.StatusBadRequest, "sender and recipient are required")
	}
	err := h.uc.Request(c.Context(), req.Sender, req.Recipient)
	if err != nil {
		switch {
		case errors.Is(err, network.ErrSelfConnection):
			return presenter.Error(c, http.StatusBadRequest, "You cannot connect with yourself.")
		case errors.Is(err, network.ErrAlreadyConnected):
			return presenter.Error(c, http.StatusBadRequest, "You are already connected with this user.")
		case errors.Is(err, network.ErrRequestPending):
			return presenter.Error(c, http.StatusBadRequest, "You have already sent this user a connection request.")
		case errors.Is(err, network.ErrRequestReceived):
			return presenter.Error(c, http.StatusBadRequest, "This user has already sent you a connection request.")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to send connection request")
		}
	}
	return presenter.Success(c, http.StatusOK, "Successfully sent Connection Request")
}

// Pending lists requests awaiting the user's response.
// @Summary Pending connection requests
// @Tags    connections
// @Produce json
// @Param   username path string true "username"
// @Security BearerAuth
// @Success 200 {object} map[string][]network.PendingView
// @Router  /connections/pending/{username} [get]
func (h *ConnectionHandler) Pending(c *fiber.Ctx) error {
	requests, err := h.uc.Pending(c.Context(), c.Params("username"))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load pending requests")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"requests": requests})
}

type respondRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Action    string `json:"action"` // "accept" or "reject"
}

type respondResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
	Message string `json:"message"`
}

// Respond accepts or rejects a pending request; either way consumes it.
// @Summary Respond to a connection request
// @Tags    connections
// @Accept  json
// @Produce json
// @Param   input body respondRequest true "response"
// @Security BearerAuth
// @Success 200 {object} respondResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /connections/respond [post]
func (h *ConnectionHandler) Respond(c *fiber.Ctx) error {
	var req respondRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Sender) == "" || strings.TrimSpace(req.Recipient) == "" || req.Action == "" {
		return presenter.Error(c, http.StatusBadRequest, "sender, recipient, and action are required")
	}
	action := strings.ToLower(req.Action)
	if action != "accept" && action != "reject" {
		return presenter.Error(c, http.StatusBadRequest, "invalid action")
	}
	err := h.uc.Respond(c.Context(), req.Sender, req.Recipient, action == "accept")
	if err != nil {
		if errors.Is(err, network.ErrRequestNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Pending request not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to respond to request")
	}
	msg := "Connection request rejected"
	if action == "accept" {
		msg = "Connection accepted"
	}
	return presenter.JSON(c, http.StatusOK, respondResponse{Success: true, Action: action, Message: msg})
}

// Network lists everyone connected to the user.
// @Summary View network
// @Tags    connections
// @Produce json
// @Param   username path string true "username"
// @Security BearerAuth
// @Success 200 {object} map[string][]network.Member
// @Router  /connections/network/{username} [get]
func (h *ConnectionHandler) Network(c *fiber.Ctx) error {
	members, err := h.uc.Members(c.Context(), c.Params("username"))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load network")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"connections": members})
}
