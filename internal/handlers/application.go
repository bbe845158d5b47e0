package handlers

import (
	"context"
	"errors"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/msalem/visahub-api/internal/middleware"
	"github.com/msalem/visahub-api/internal/models"
	"github.com/msalem/visahub-api/internal/services"
	"github.com/msalem/visahub-api/pkg/dto"
)

type ApplicationHandler struct {
	applicationService ApplicationServiceInterface
	metrics            MetricsInterface
}

func NewApplicationHandler(applicationService ApplicationServiceInterface, metrics MetricsInterface) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		metrics:            metrics,
	}
}

// List returns the caller's own applications. The user id comes from
// the authenticated session, never from request input.
func (h *ApplicationHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		c.Unauthorized("not authenticated")
		return
	}

	apps, err := h.applicationService.ListByUser(context.Background(), userID)
	if err != nil {
		c.InternalServerError("failed to load applications")
		return
	}

	_ = c.JSON(200, applicationResponses(apps))
}

func (h *ApplicationHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateApplicationRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	app, err := h.applicationService.Create(context.Background(), userID, services.CreateApplicationInput{
		VisaTypeID:     req.VisaTypeID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		PassportNumber: req.PassportNumber,
		Nationality:    req.Nationality,
		TravelDate:     req.TravelDate,
		Documents:      req.Documents,
		Notes:          req.Notes,
	})
	if err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			if h.metrics != nil {
				h.metrics.RecordValidationFailure()
			}
			_ = c.JSON(400, dto.ValidationErrorResponse{
				Error:  "missing or invalid required fields",
				Fields: ve.Fields,
			})
			return
		}
		if errors.Is(err, services.ErrVisaTypeNotFound) {
			c.NotFound("visa type not found")
			return
		}
		c.InternalServerError("failed to submit application")
		return
	}

	if h.metrics != nil {
		h.metrics.RecordApplicationSubmitted()
	}

	_ = c.JSON(201, applicationResponse(*app))
}

// Dashboard returns the caller's applications together with counters
// derived by filtering the same sequence; there is no separate
// aggregation query.
func (h *ApplicationHandler) Dashboard(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		c.Unauthorized("not authenticated")
		return
	}

	apps, err := h.applicationService.ListByUser(context.Background(), userID)
	if err != nil {
		c.InternalServerError("failed to load applications")
		return
	}

	stats := dto.DashboardStats{Total: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusApproved:
			stats.Approved++
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusRejected:
			// counted in the total only
		}
	}

	_ = c.JSON(200, dto.DashboardResponse{
		Applications: applicationResponses(apps),
		Stats:        stats,
	})
}

func applicationResponses(apps []models.VisaApplication) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, applicationResponse(app))
	}
	return responses
}

func applicationResponse(app models.VisaApplication) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:             app.ID,
		VisaTypeID:     app.VisaTypeID,
		Status:         app.Status.String(),
		StatusLabelAr:  app.Status.LabelAr(),
		StatusLabelEn:  app.Status.LabelEn(),
		FullName:       app.FullName,
		Email:          app.Email,
		Phone:          app.Phone,
		PassportNumber: app.PassportNumber,
		Nationality:    app.Nationality,
		TravelDate:     app.TravelDate,
		Documents:      app.Documents,
		Notes:          app.Notes,
		CreatedAt:      app.CreatedAt,
	}
}
