package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"medisched/models"
	"medisched/services/availability"
	"medisched/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the doctor-facing scheduling endpoints.
type AvailabilityHandler struct {
	Service availability.Service
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func doctorIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("doctorID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid doctor ID in context"})
		return "", false
	}
	return id, true
}

// GetDayScheduleHandler returns the slot set and status for one date.
func (h *AvailabilityHandler) GetDayScheduleHandler(c *gin.Context) {
	doctorID, ok := doctorIDFromContext(c)
	if !ok {
		return
	}

	dto, err := h.Service.GetDaySchedule(c.Request.Context(), doctorID, c.Param("date"))
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}

// SaveDayScheduleHandler replaces the whole slot set for one date.
func (h *AvailabilityHandler) SaveDayScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, ok := doctorIDFromContext(c)
	if !ok {
		return
	}

	var req models.SaveDayScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid schedule save request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	// The path date wins over any date in the body.
	req.Date = c.Param("date")

	dto, err := h.Service.SaveDaySchedule(c.Request.Context(), doctorID, req)
	if err != nil {
		var verr *availability.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":         "Slot validation failed",
				"message":       verr.Result.Message(),
				"slotIndex":     verr.SlotIndex,
				"conflictIndex": verr.Result.ConflictIndex,
			})
		case errors.Is(err, availability.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})
		default:
			logger.Error("Failed to save schedule", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save schedule", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Schedule saved successfully",
		"schedule": dto,
	})
}

// DeleteSlotHandler removes one slot from a date.
func (h *AvailabilityHandler) DeleteSlotHandler(c *gin.Context) {
	doctorID, ok := doctorIDFromContext(c)
	if !ok {
		return
	}

	slotID := c.Param("slotID")
	if slotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot ID in path"})
		return
	}

	dto, err := h.Service.DeleteSlot(c.Request.Context(), doctorID, c.Param("date"), slotID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
		case errors.Is(err, availability.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete slot", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Slot deleted successfully",
		"schedule": dto,
	})
}

// ReplicateHandler copies one date's schedule to all weekdays of a month.
// With async=true the run is queued and a request id returned instead.
func (h *AvailabilityHandler) ReplicateHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, ok := doctorIDFromContext(c)
	if !ok {
		return
	}

	var req models.ReplicateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid replication request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if req.Async {
		requestID, err := h.Service.EnqueueReplication(c.Request.Context(), doctorID, req)
		if err != nil {
			h.replicationError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{
			"message":   "Replication queued",
			"requestId": requestID,
		})
		return
	}

	summary, err := h.Service.ReplicateToWeekdays(c.Request.Context(), doctorID, req.SourceDate, req.Month, req.Year)
	if err != nil {
		h.replicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Replication complete",
		"summary": summary,
	})
}

func (h *AvailabilityHandler) replicationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availability.ErrEmptySourceSchedule),
		errors.Is(err, availability.ErrSourceOverlap),
		errors.Is(err, availability.ErrInvalidMonth),
		errors.Is(err, availability.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid replication request", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Replication failed", "message": err.Error()})
	}
}

// ReplicationResultHandler returns the stored summary of an async run.
func (h *AvailabilityHandler) ReplicationResultHandler(c *gin.Context) {
	if _, ok := doctorIDFromContext(c); !ok {
		return
	}

	result, err := h.Service.ReplicationResult(c.Request.Context(), c.Param("requestID"))
	if err != nil {
		if errors.Is(err, availability.ErrReplicationResultNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Replication result not found or still running"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch replication result", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// MonthStatusesHandler annotates a month's dates with OFF/PARTIAL/FULL.
func (h *AvailabilityHandler) MonthStatusesHandler(c *gin.Context) {
	doctorID, ok := doctorIDFromContext(c)
	if !ok {
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid month query parameter"})
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid year query parameter"})
		return
	}

	dto, err := h.Service.MonthStatuses(c.Request.Context(), doctorID, month, year)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statuses", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}
