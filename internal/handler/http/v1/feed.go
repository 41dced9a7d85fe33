package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/citizen_watch/internal/feed"
	"github.com/shenikar/citizen_watch/internal/noticeboard"
)

// @Summary Open a feed session
// @Description Create a server-side feed and load its first page
// @Tags Feed
// @Produce json
// @Success 201 {object} FeedStateResponse
// @Router /feed/sessions [post]
func (h *Handler) openSession(c *gin.Context) {
	id, loader := h.registry.Open(c.Request.Context(), nil)
	c.JSON(http.StatusCreated, StateToResponse(id, loader.State()))
}

// @Summary Get feed session state
// @Description Get the items loaded so far and the loading flags
// @Tags Feed
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} FeedStateResponse
// @Failure 404 {object} map[string]string "Feed session not found"
// @Router /feed/sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	loader, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, StateToResponse(c.Param("id"), loader.State()))
}

// @Summary Load the next page
// @Description Fetch the next page into the session feed. dispatched is false when a fetch is already running or the feed is exhausted.
// @Tags Feed
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} FeedStateResponse
// @Failure 404 {object} map[string]string "Feed session not found"
// @Router /feed/sessions/{id}/more [post]
func (h *Handler) loadMore(c *gin.Context) {
	loader, ok := h.session(c)
	if !ok {
		return
	}
	dispatched := loader.LoadMore(c.Request.Context())

	resp := StateToResponse(c.Param("id"), loader.State())
	resp.Dispatched = &dispatched
	c.JSON(http.StatusOK, resp)
}

// @Summary Report a scroll position
// @Description Load the next page when the viewport is closer to the bottom than the scroll threshold
// @Tags Feed
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body ScrollRequest true "Distance from viewport bottom to content end"
// @Success 200 {object} FeedStateResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Feed session not found"
// @Router /feed/sessions/{id}/scroll [post]
func (h *Handler) scroll(c *gin.Context) {
	loader, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "scroll").WithField("session_id", c.Param("id"))

	var input ScrollRequest
	if !h.bind(c, log, &input) {
		return
	}
	dispatched := loader.OnScroll(c.Request.Context(), *input.DistanceToBottom)

	resp := StateToResponse(c.Param("id"), loader.State())
	resp.Dispatched = &dispatched
	c.JSON(http.StatusOK, resp)
}

// @Summary Officer notice board
// @Description Filter and sort the incidents loaded into the session. Counts are computed over the filtered set.
// @Tags Feed
// @Produce json
// @Param id path string true "Session ID"
// @Param status query string false "Status or all"
// @Param severity query string false "Severity or all"
// @Param category query string false "Category or all"
// @Param district query string false "District or all"
// @Param timeRange query string false "1h, 24h, 7d, 30d or all"
// @Param sortBy query string false "timestamp, severity, status or location" default(timestamp)
// @Param assignedToMe query bool false "Accepted, has no effect"
// @Success 200 {object} BoardResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 404 {object} map[string]string "Feed session not found"
// @Router /feed/sessions/{id}/board [get]
func (h *Handler) board(c *gin.Context) {
	loader, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "board").WithField("session_id", c.Param("id"))

	var query BoardQuery
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

	items := loader.Items()
	filters := noticeboard.ParseFilters(query.Status, query.Severity, query.Category, query.District, query.TimeRange, query.AssignedToMe)
	result := noticeboard.Apply(items, filters, noticeboard.ParseSortKey(query.SortBy), h.now())

	c.JSON(http.StatusOK, BoardToResponse(result, noticeboard.Districts(items)))
}

// @Summary Officer dashboard counters
// @Description Status and priority counters over every incident loaded into the session
// @Tags Feed
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} DashboardResponse
// @Failure 404 {object} map[string]string "Feed session not found"
// @Router /feed/sessions/{id}/dashboard [get]
func (h *Handler) dashboard(c *gin.Context) {
	loader, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, StatsToResponse(noticeboard.Summarize(loader.Items())))
}

// @Summary Close a feed session
// @Tags Feed
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Feed session not found"
// @Router /feed/sessions/{id} [delete]
func (h *Handler) closeSession(c *gin.Context) {
	if !h.registry.Close(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "feed session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) session(c *gin.Context) (*feed.Loader, bool) {
	loader, ok := h.registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "feed session not found"})
		return nil, false
	}
	return loader, true
}
