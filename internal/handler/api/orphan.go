package api

import (
	"errors"
	"net/http"

	resdto "membership-backoffice/internal/handler/dto/response"
	"membership-backoffice/internal/handler/httperr"
	"membership-backoffice/internal/usecase/commands"
	"membership-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrphanHandler struct {
	orphanCommands commands.OrphanCommands
	orphanQueries  queries.OrphanQueries
}

func NewOrphanHandler(orphanCommands commands.OrphanCommands, orphanQueries queries.OrphanQueries) *OrphanHandler {
	return &OrphanHandler{
		orphanCommands: orphanCommands,
		orphanQueries:  orphanQueries,
	}
}

// @Summary List orphaned rules
// @Description List rules created on the platform that never received a discount code
// @Tags orphans
// @Produce json
// @Security BearerAuth
// @Param unresolved query bool false "Only unresolved entries"
// @Success 200 {array} queries.OrphanView
// @Router /orphans [get]
func (h *OrphanHandler) List(c *gin.Context) {
	filter := queries.OrphanListFilter{
		UnresolvedOnly: c.Query("unresolved") == "true",
	}
	orphans, err := h.orphanQueries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}
	if orphans == nil {
		orphans = []*queries.OrphanView{}
	}
	c.JSON(http.StatusOK, orphans)
}

// @Summary Orphaned rule statistics
// @Tags orphans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.OrphanStatsView
// @Router /orphans/stats [get]
func (h *OrphanHandler) Stats(c *gin.Context) {
	stats, err := h.orphanQueries.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Resolve orphaned rule
// @Description Mark an orphan log entry as manually resolved
// @Tags orphans
// @Security BearerAuth
// @Param id path string true "Orphan log entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orphans/{id}/resolve [post]
func (h *OrphanHandler) Resolve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid orphan ID format", "")
		return
	}

	if err := h.orphanCommands.MarkResolved(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrOrphanNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Orphan log entry not found or already resolved", "")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Retry orphaned rules
// @Description Re-attempt code creation for every unresolved orphaned rule
// @Tags orphans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RetryReportResponse
// @Router /orphans/retry [post]
func (h *OrphanHandler) Retry(c *gin.Context) {
	report, err := h.orphanCommands.RetrySweep(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}
	c.JSON(http.StatusOK, resdto.RetryReportResponse{
		Attempted: report.Attempted,
		Resolved:  report.Resolved,
		Failed:    report.Failed,
	})
}
