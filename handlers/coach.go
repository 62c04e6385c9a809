// File: handlers/coach.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchside/models"
	coachSvc "pitchside/services/coach"
	"pitchside/utils"
)

// CoachHandler exposes coach endpoints. Public reads list active coaches
// only; the admin surface sees everything.
type CoachHandler struct {
	Service coachSvc.CoachService
}

// ListCoachesHandler handles GET /api/coaches.
func (h *CoachHandler) ListCoachesHandler(c *gin.Context) {
	coaches, err := h.Service.List(c.Request.Context(), true)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coaches": coaches})
}

// AdminListCoachesHandler handles GET /api/admin/coaches.
func (h *CoachHandler) AdminListCoachesHandler(c *gin.Context) {
	coaches, err := h.Service.List(c.Request.Context(), false)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coaches": coaches})
}

// GetCoachHandler handles GET /api/coaches/:id.
func (h *CoachHandler) GetCoachHandler(c *gin.Context) {
	coach, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coach": coach})
}

// CreateCoachHandler handles POST /api/admin/coaches.
func (h *CoachHandler) CreateCoachHandler(c *gin.Context) {
	var in models.CoachInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid coach payload", err.Error())
		return
	}
	coach, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"coach": coach})
}

// UpdateCoachHandler handles PUT /api/admin/coaches/:id.
func (h *CoachHandler) UpdateCoachHandler(c *gin.Context) {
	var in models.CoachInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid coach payload", err.Error())
		return
	}
	coach, err := h.Service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coach": coach})
}

// DeleteCoachHandler handles DELETE /api/admin/coaches/:id.
func (h *CoachHandler) DeleteCoachHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coach deleted"})
}
