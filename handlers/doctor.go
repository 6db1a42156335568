package handlers

import (
	"errors"
	"net/http"

	"medisched/models"
	"medisched/services/doctor"
	"medisched/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes doctor account endpoints.
type DoctorHandler struct {
	Service doctor.Service
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// RegisterDoctorHandler creates a doctor account.
func (h *DoctorHandler) RegisterDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.DoctorRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid doctor registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, doctor.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Failed to register doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register doctor", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AuthenticateDoctorHandler signs a doctor in.
func (h *DoctorHandler) AuthenticateDoctorHandler(c *gin.Context) {
	var req models.DoctorAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, doctor.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDoctorHandler returns the authenticated doctor's account.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	doctorID, ok := doctorIDFromContext(c)
	if !ok {
		return
	}

	doc, err := h.Service.GetByID(c.Request.Context(), doctorID)
	if err != nil {
		if errors.Is(err, doctor.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctor", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateDoctorHandler applies profile updates.
func (h *DoctorHandler) UpdateDoctorHandler(c *gin.Context) {
	doctorID, ok := doctorIDFromContext(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	doc, err := h.Service.Update(c.Request.Context(), doctorID, updates)
	if err != nil {
		if errors.Is(err, doctor.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update doctor", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDoctorHandler removes the authenticated doctor's account.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	doctorID, ok := doctorIDFromContext(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), doctorID); err != nil {
		if errors.Is(err, doctor.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}

// RevokeDoctorTokenHandler signs the doctor out of all sessions.
func (h *DoctorHandler) RevokeDoctorTokenHandler(c *gin.Context) {
	doctorID, ok := doctorIDFromContext(c)
	if !ok {
		return
	}

	if err := h.Service.RevokeAuthToken(c.Request.Context(), doctorID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}
