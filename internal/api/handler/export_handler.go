package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandoripardo888/TO--DO/internal/service"
	"github.com/nandoripardo888/TO--DO/pkg/response"
)

// ExportHandler serves assignment exports.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportAssignments downloads all assignments of an event as .xlsx.
// GET /api/v1/events/:id/assignments/export
func (h *ExportHandler) ExportAssignments(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, 10001, "event id required")
		return
	}

	buf, filename, err := h.exportSvc.ExportEventAssignments(c.Request.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 40001, err.Error())
		case errors.Is(err, service.ErrExportNoAssignments):
			response.NotFound(c, 40002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// MySchedule downloads the caller's schedule in an event as an ICS feed.
// GET /api/v1/events/:id/my-schedule.ics
func (h *ExportHandler) MySchedule(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, 10001, "event id required")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	feed, err := h.exportSvc.VolunteerScheduleICS(c.Request.Context(), eventID, callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="my-schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar", []byte(feed))
}
