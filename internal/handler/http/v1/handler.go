package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/citizen_watch/internal/config"
	"github.com/shenikar/citizen_watch/internal/feed"
	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/shenikar/citizen_watch/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	authService     service.AuthService
	registry        *feed.Registry
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
	now             func() time.Time
}

func NewHandler(incidentService service.IncidentService, authService service.AuthService, registry *feed.Registry, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		authService:     authService,
		registry:        registry,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
		now:             time.Now,
	}
}

// @Summary Get a page of the incident feed
// @Description Get one page of incidents, newest first. Pass next_cursor from the previous page to continue.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} PageResponse
// @Failure 400 {object} map[string]string "Invalid query or cursor"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	var query ListIncidentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if query.Limit == 0 {
		query.Limit = h.cfg.FeedPageSize
	}

	page, err := h.incidentService.FetchPage(c.Request.Context(), query.Limit, models.Cursor(query.Cursor))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, PageToResponse(page))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := incidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident status
// @Description Change the status of an incident with optional notes. Requires officer token.
// @Tags Officer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateStatus(c *gin.Context) {
	id, ok := incidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.incidentService.UpdateStatus(c.Request.Context(), id, models.Status(input.Status), input.Notes, officerBadge(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.registry.PatchAll(incident)
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident severity
// @Description Change the severity of an incident. Requires officer token.
// @Tags Officer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param request body UpdateSeverityRequest true "New severity"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/severity [patch]
func (h *Handler) updateSeverity(c *gin.Context) {
	id, ok := incidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateSeverity").WithField("id", id)

	var input UpdateSeverityRequest
	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.incidentService.UpdateSeverity(c.Request.Context(), id, models.Severity(input.Severity), officerBadge(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.registry.PatchAll(incident)
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Apply a quick action
// @Description claim moves the incident to under_review, priority sets severity to high, dismiss dismisses it. Requires officer token.
// @Tags Officer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param action path string true "Action" Enums(claim, priority, dismiss)
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or action"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/actions/{action} [post]
func (h *Handler) quickAction(c *gin.Context) {
	id, ok := incidentID(c)
	if !ok {
		return
	}
	action := service.QuickAction(c.Param("action"))
	log := h.logger.WithFields(logrus.Fields{"method": "quickAction", "id": id, "action": action})

	incident, err := h.incidentService.ApplyQuickAction(c.Request.Context(), id, action, officerBadge(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.registry.PatchAll(incident)
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Bulk status update
// @Description Change the status of several incidents at once. Failures are reported per ID. Requires officer token.
// @Tags Officer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkStatusRequest true "Incident IDs and new status"
// @Success 200 {object} BulkStatusResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents/bulk/status [post]
func (h *Handler) bulkUpdateStatus(c *gin.Context) {
	log := h.logger.WithField("method", "bulkUpdateStatus")

	var input BulkStatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	result := h.incidentService.BulkUpdateStatus(c.Request.Context(), input.IDs, models.Status(input.Status), input.Notes, officerBadge(c))
	for _, incident := range result.Updated {
		h.registry.PatchAll(incident)
	}
	c.JSON(http.StatusOK, BulkToResponse(result))
}

// @Summary Assign an officer
// @Description Record that an officer was assigned to the incident. Requires officer token.
// @Tags Officer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param request body AssignRequest true "Assignee badge"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/assign [post]
func (h *Handler) assignOfficer(c *gin.Context) {
	id, ok := incidentID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "assignOfficer").WithField("id", id)

	var input AssignRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.incidentService.AssignOfficer(c.Request.Context(), id, input.BadgeNumber, officerBadge(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bind разбирает и валидирует JSON тела запроса, при ошибке отвечает 400
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed in service")
	} else {
		log.WithError(err).Warn("Request rejected by service")
	}
	c.JSON(status, gin.H{"error": errorMessage(err)})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidCursor), errors.Is(err, service.ErrUnknownAction):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return "incident not found"
	case errors.Is(err, models.ErrInvalidCursor):
		return "invalid cursor"
	case errors.Is(err, service.ErrUnknownAction):
		return "unknown action"
	}
	return "internal server error"
}

func incidentID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return "", false
	}
	return id.String(), true
}
