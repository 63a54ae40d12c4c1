package handler

import (
	"context"
	"errors"
	"net/http"

	"fan-globe/internal/models"
	"fan-globe/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SignupService is the form workflow the handler drives.
type SignupService interface {
	Submit(ctx context.Context, in service.SignupInput) (*models.Submission, error)
	SeedDemo(ctx context.Context) ([]models.Submission, error)
	Form() service.FormState
	UpdateDraft(in service.SignupInput) service.FormState
}

// SubmissionLister exposes the stored signups, most recent first.
type SubmissionLister interface {
	All() []models.Submission
}

// SignupHandler serves the signup form, its derived views and the CSV export.
type SignupHandler struct {
	form   SignupService
	store  SubmissionLister
	logger zerolog.Logger
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(form SignupService, store SubmissionLister, logger zerolog.Logger) *SignupHandler {
	return &SignupHandler{form: form, store: store, logger: logger}
}

type signupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Zip   string `json:"zip"`
}

func (r signupRequest) input() service.SignupInput {
	return service.SignupInput{Name: r.Name, Email: r.Email, Zip: r.Zip}
}

type signupResponse struct {
	Submission *models.Submission `json:"submission"`
	Message    string             `json:"message"`
}

type demoResponse struct {
	Added   int    `json:"added"`
	Message string `json:"message"`
}

// List handles GET /api/signups requests
//
//	@Summary	List signups, most recent first
//	@Tags		signups
//	@Produce	json
//	@Success	200	{array}	models.Submission
//	@Router		/api/signups [get]
func (h *SignupHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.All())
}

// Submit handles POST /api/signups requests
//
//	@Summary	Submit a fan signup
//	@Tags		signups
//	@Accept		json
//	@Produce	json
//	@Param		signup	body		signupRequest	true	"Signup"
//	@Success	201		{object}	signupResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	409		{object}	map[string]string
//	@Failure	422		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/signups [post]
func (h *SignupHandler) Submit(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	row, err := h.form.Submit(c.Request.Context(), req.input())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if row == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "form is closed"})
		return
	}

	c.JSON(http.StatusCreated, signupResponse{Submission: row, Message: service.MessagePinned})
}

// Demo handles POST /api/signups/demo requests
//
//	@Summary	Load the sample pins
//	@Tags		signups
//	@Produce	json
//	@Success	201	{object}	demoResponse
//	@Failure	500	{object}	map[string]string
//	@Router		/api/signups/demo [post]
func (h *SignupHandler) Demo(c *gin.Context) {
	rows, err := h.form.SeedDemo(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, demoResponse{Added: len(rows), Message: service.MessageDemoLoaded})
}

// Export handles GET /api/signups/export requests
//
//	@Summary	Download signups as CSV
//	@Tags		signups
//	@Produce	text/csv
//	@Success	200	{file}	file
//	@Success	204
//	@Router		/api/signups/export [get]
func (h *SignupHandler) Export(c *gin.Context) {
	body := service.ExportCSV(h.store.All())
	if len(body) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.ExportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

// Leaderboard handles GET /api/leaderboard requests
//
//	@Summary	Signup counts per place
//	@Tags		signups
//	@Produce	json
//	@Success	200	{array}	models.LeaderboardEntry
//	@Router		/api/leaderboard [get]
func (h *SignupHandler) Leaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, service.BuildLeaderboard(h.store.All()))
}

// Markers handles GET /api/markers requests
//
//	@Summary	Jittered pins for the globe
//	@Tags		signups
//	@Produce	json
//	@Success	200	{array}	models.Marker
//	@Router		/api/markers [get]
func (h *SignupHandler) Markers(c *gin.Context) {
	c.JSON(http.StatusOK, service.BuildMarkers(h.store.All()))
}

// Campaign handles GET /api/campaign requests
//
//	@Summary	Progress of the leading city towards the goal
//	@Tags		signups
//	@Produce	json
//	@Success	200	{object}	models.Campaign
//	@Router		/api/campaign [get]
func (h *SignupHandler) Campaign(c *gin.Context) {
	c.JSON(http.StatusOK, service.BuildCampaign(service.BuildLeaderboard(h.store.All())))
}

// Form handles GET /api/form requests
//
//	@Summary	Current form state
//	@Tags		form
//	@Produce	json
//	@Success	200	{object}	service.FormState
//	@Router		/api/form [get]
func (h *SignupHandler) Form(c *gin.Context) {
	c.JSON(http.StatusOK, h.form.Form())
}

// UpdateDraft handles PUT /api/form requests
//
//	@Summary	Store the fields being edited
//	@Tags		form
//	@Accept		json
//	@Produce	json
//	@Param		draft	body		signupRequest	true	"Draft"
//	@Success	200		{object}	service.FormState
//	@Failure	400		{object}	map[string]string
//	@Router		/api/form [put]
func (h *SignupHandler) UpdateDraft(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, h.form.UpdateDraft(req.input()))
}

func (h *SignupHandler) writeError(c *gin.Context, err error) {
	var validation *service.ValidationError
	var resolution *service.ResolutionError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message, "field": validation.Field})
	case errors.As(err, &resolution):
		h.logger.Info().Str("zip", resolution.Zip).Msg(resolution.Detail())
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": resolution.Error()})
	case errors.Is(err, service.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "a submission is already in progress"})
	default:
		h.logger.Error().Err(err).Msg("signup request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
