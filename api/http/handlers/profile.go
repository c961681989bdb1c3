package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/incollege/backend/api/http/presenter"
	"github.com/incollege/backend/pkg/profile"
)

type ProfileHandler struct {
	uc profile.UseCase
}

func NewProfileHandler(uc profile.UseCase) *ProfileHandler { return &ProfileHandler{uc: uc} }

// Get returns one profile by username.
// @Summary Get profile
// @Tags    profiles
// @Produce json
// @Param   username path string true "username"
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{username} [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	p, err := h.uc.Get(c.Context(), c.Params("username"))
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "profile not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

type saveProfileRequest struct {
	FirstName   string               `json:"firstName"`
	LastName    string               `json:"lastName"`
	School      string               `json:"school"`
	Major       string               `json:"major"`
	GradYear    string               `json:"gradYear"`
	About       string               `json:"about"`
	Experiences []profile.Experience `json:"experiences"`
	Education   []profile.Education  `json:"education"`
}

// Save creates or replaces the profile for a username.
// @Summary Create or update profile
// @Tags    profiles
// @Accept  json
// @Produce json
// @Param   username path string true "username"
// @Param   input body saveProfileRequest true "profile fields"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /profiles/{username} [put]
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	var req saveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p := profile.Profile{
		Username:    c.Params("username"),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		School:      req.School,
		Major:       req.Major,
		GradYear:    req.GradYear,
		About:       req.About,
		Experiences: req.Experiences,
		Education:   req.Education,
	}
	created, err := h.uc.Save(c.Context(), p)
	if err != nil {
		var ve profile.ErrValidation
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to save profile")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"ok": true, "created": created})
}

// Find looks a profile up by first and last name.
// @Summary Find profile by name
// @Tags    profiles
// @Produce json
// @Param   first query string true "first name"
// @Param   last query string true "last name"
// @Security BearerAuth
// @Success 200 {object} profile.Profile
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/search [get]
func (h *ProfileHandler) Find(c *fiber.Ctx) error {
	p, err := h.uc.FindByName(c.Context(), c.Query("first"), c.Query("last"))
	if err != nil {
		var ve profile.ErrValidation
		switch {
		case errors.As(err, &ve):
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		case errors.Is(err, profile.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "No user profile exists for the name you have entered.")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to search profiles")
		}
	}
	return presenter.JSON(c, http.StatusOK, p)
}
