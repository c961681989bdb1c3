package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/incollege/backend/api/http/presenter"
	"github.com/incollege/backend/pkg/job"
)

type JobHandler struct {
	uc job.UseCase
}

func NewJobHandler(uc job.UseCase) *JobHandler { return &JobHandler{uc: uc} }

type postJobRequest struct {
	Username    string `json:"username"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Employer    string `json:"employer"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
}

// Post publishes a job or internship.
// @Summary Post a job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body postJobRequest true "job fields"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobHandler) Post(c *fiber.Ctx) error {
	var req postJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	j := job.Job{
		Title:       req.Title,
		Description: req.Description,
		Employer:    req.Employer,
		Location:    req.Location,
		Salary:      req.Salary,
		Poster:      req.Username,
	}
	j, err := h.uc.Post(c.Context(), j)
	if err != nil {
		var ve job.ErrValidation
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to post job")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{"success": true, "job": j})
}

// Search browses jobs with optional contains-filters.
// @Summary Search jobs
// @Tags    jobs
// @Produce json
// @Param   title query string false "title filter"
// @Param   employer query string false "employer filter"
// @Param   location query string false "location filter"
// @Security BearerAuth
// @Success 200 {object} map[string][]job.Job
// @Router  /jobs [get]
func (h *JobHandler) Search(c *fiber.Ctx) error {
	jobs, err := h.uc.Search(c.Context(), c.Query("title"), c.Query("employer"), c.Query("location"))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to search jobs")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"jobs": jobs})
}

type applyRequest struct {
	Username string `json:"username"`
	Title    string `json:"title"`
	Employer string `json:"employer"`
	Location string `json:"location"`
}

// Apply records an application to an existing job.
// @Summary Apply to a job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body applyRequest true "application"
// @Security BearerAuth
// @Success 200 {object} presenter.StatusResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/apply [post]
func (h *JobHandler) Apply(c *fiber.Ctx) error {
	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	err := h.uc.Apply(c.Context(), job.Application{
		Username: req.Username,
		Title:    req.Title,
		Employer: req.Employer,
		Location: req.Location,
	})
	if err != nil {
		var ve job.ErrValidation
		switch {
		case errors.As(err, &ve):
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		case errors.Is(err, job.ErrJobNotFound):
			return presenter.Error(c, http.StatusNotFound, "Job not found. It may have been removed.")
		case errors.Is(err, job.ErrAlreadyApplied):
			return presenter.Error(c, http.StatusBadRequest, "You have already applied to this job.")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to apply")
		}
	}
	return presenter.Success(c, http.StatusOK, "Application submitted successfully.")
}

// Applications lists one user's applications.
// @Summary My applications
// @Tags    jobs
// @Produce json
// @Param   username path string true "username"
// @Security BearerAuth
// @Success 200 {array} job.Application
// @Router  /applications/{username} [get]
func (h *JobHandler) Applications(c *fiber.Ctx) error {
	apps, err := h.uc.ApplicationsFor(c.Context(), c.Params("username"))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load applications")
	}
	return presenter.JSON(c, http.StatusOK, apps)
}
