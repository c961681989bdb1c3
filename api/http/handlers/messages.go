package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/incollege/backend/api/http/presenter"
	"github.com/incollege/backend/pkg/message"
)

type MessageHandler struct {
	uc message.UseCase
}

func NewMessageHandler(uc message.UseCase) *MessageHandler { return &MessageHandler{uc: uc} }

type sendMessageRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Text      string `json:"text"`
}

// Send delivers a message to a connected user.
// @Summary Send message
// @Tags    messages
// @Accept  json
// @Produce json
// @Param   input body sendMessageRequest true "message"
// @Security BearerAuth
// @Success 201 {object} presenter.StatusResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /messages [post]
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Sender) == "" || strings.TrimSpace(req.Recipient) == "" {
		return presenter.Error(c, http.StatusBadRequest, "sender and recipient are required")
	}
	err := h.uc.Send(c.Context(), req.Sender, req.Recipient, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrEmptyText):
			return presenter.Error(c, http.StatusBadRequest, "Message text cannot be empty.")
		case errors.Is(err, message.ErrSelfMessage):
			return presenter.Error(c, http.StatusBadRequest, "You cannot send a message to yourself.")
		case errors.Is(err, message.ErrNotConnected):
			return presenter.Error(c, http.StatusForbidden,
				"You are not connected with this person. You can only message users you are connected with.")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to send message")
		}
	}
	return presenter.Success(c, http.StatusCreated, "Message sent successfully!")
}

// Inbox lists received messages, oldest first.
// @Summary Received messages
// @Tags    messages
// @Produce json
// @Param   username path string true "username"
// @Security BearerAuth
// @Success 200 {array} message.Message
// @Router  /messages/{username} [get]
func (h *MessageHandler) Inbox(c *fiber.Ctx) error {
	messages, err := h.uc.Inbox(c.Context(), c.Params("username"))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load messages")
	}
	return presenter.JSON(c, http.StatusOK, messages)
}

// Sent lists sent messages, newest first.
// @Summary Sent messages
// @Tags    messages
// @Produce json
// @Param   username path string true "username"
// @Security BearerAuth
// @Success 200 {array} message.Message
// @Router  /messages/sent/{username} [get]
func (h *MessageHandler) Sent(c *fiber.Ctx) error {
	messages, err := h.uc.Sent(c.Context(), c.Params("username"))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load sent messages")
	}
	return presenter.JSON(c, http.StatusOK, messages)
}
