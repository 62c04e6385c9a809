// File: handlers/content.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchside/models"
	contentSvc "pitchside/services/content"
	"pitchside/utils"
)

// ContentHandler exposes the marketing-site collections over HTTP.
type ContentHandler struct {
	Service contentSvc.ContentService
}

// Programmes.

// ListProgramsHandler handles GET /api/programs.
func (h *ContentHandler) ListProgramsHandler(c *gin.Context) {
	programs, err := h.Service.ListPrograms(c.Request.Context(), true)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

// AdminListProgramsHandler handles GET /api/admin/programs.
func (h *ContentHandler) AdminListProgramsHandler(c *gin.Context) {
	programs, err := h.Service.ListPrograms(c.Request.Context(), false)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

// GetProgramHandler handles GET /api/programs/:id.
func (h *ContentHandler) GetProgramHandler(c *gin.Context) {
	p, err := h.Service.GetProgram(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": p})
}

// CreateProgramHandler handles POST /api/admin/programs.
func (h *ContentHandler) CreateProgramHandler(c *gin.Context) {
	var in models.ProgramInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid program payload", err.Error())
		return
	}
	p, err := h.Service.CreateProgram(c.Request.Context(), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"program": p})
}

// UpdateProgramHandler handles PUT /api/admin/programs/:id.
func (h *ContentHandler) UpdateProgramHandler(c *gin.Context) {
	var in models.ProgramInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid program payload", err.Error())
		return
	}
	p, err := h.Service.UpdateProgram(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": p})
}

// DeleteProgramHandler handles DELETE /api/admin/programs/:id.
func (h *ContentHandler) DeleteProgramHandler(c *gin.Context) {
	if err := h.Service.DeleteProgram(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program deleted"})
}

// Facilities.

// ListFacilitiesHandler handles GET /api/facilities.
func (h *ContentHandler) ListFacilitiesHandler(c *gin.Context) {
	facilities, err := h.Service.ListFacilities(c.Request.Context())
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"facilities": facilities})
}

// CreateFacilityHandler handles POST /api/admin/facilities.
func (h *ContentHandler) CreateFacilityHandler(c *gin.Context) {
	var in models.FacilityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid facility payload", err.Error())
		return
	}
	f, err := h.Service.CreateFacility(c.Request.Context(), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"facility": f})
}

// UpdateFacilityHandler handles PUT /api/admin/facilities/:id.
func (h *ContentHandler) UpdateFacilityHandler(c *gin.Context) {
	var in models.FacilityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid facility payload", err.Error())
		return
	}
	f, err := h.Service.UpdateFacility(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"facility": f})
}

// DeleteFacilityHandler handles DELETE /api/admin/facilities/:id.
func (h *ContentHandler) DeleteFacilityHandler(c *gin.Context) {
	if err := h.Service.DeleteFacility(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Facility deleted"})
}

// Testimonials.

// ListTestimonialsHandler handles GET /api/testimonials.
func (h *ContentHandler) ListTestimonialsHandler(c *gin.Context) {
	testimonials, err := h.Service.ListTestimonials(c.Request.Context(), true)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// AdminListTestimonialsHandler handles GET /api/admin/testimonials.
func (h *ContentHandler) AdminListTestimonialsHandler(c *gin.Context) {
	testimonials, err := h.Service.ListTestimonials(c.Request.Context(), false)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// CreateTestimonialHandler handles POST /api/admin/testimonials.
func (h *ContentHandler) CreateTestimonialHandler(c *gin.Context) {
	var in models.TestimonialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid testimonial payload", err.Error())
		return
	}
	t, err := h.Service.CreateTestimonial(c.Request.Context(), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"testimonial": t})
}

// UpdateTestimonialHandler handles PUT /api/admin/testimonials/:id.
func (h *ContentHandler) UpdateTestimonialHandler(c *gin.Context) {
	var in models.TestimonialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid testimonial payload", err.Error())
		return
	}
	t, err := h.Service.UpdateTestimonial(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonial": t})
}

// DeleteTestimonialHandler handles DELETE /api/admin/testimonials/:id.
func (h *ContentHandler) DeleteTestimonialHandler(c *gin.Context) {
	if err := h.Service.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

// Gallery.

// ListGalleryHandler handles GET /api/gallery.
func (h *ContentHandler) ListGalleryHandler(c *gin.Context) {
	images, err := h.Service.ListGallery(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": images})
}

// AddGalleryImageHandler handles POST /api/admin/gallery.
func (h *ContentHandler) AddGalleryImageHandler(c *gin.Context) {
	var in models.GalleryImageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid gallery payload", err.Error())
		return
	}
	g, err := h.Service.AddGalleryImage(c.Request.Context(), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": g})
}

// DeleteGalleryImageHandler handles DELETE /api/admin/gallery/:id.
func (h *ContentHandler) DeleteGalleryImageHandler(c *gin.Context) {
	if err := h.Service.DeleteGalleryImage(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

// Achievements.

// ListAchievementsHandler handles GET /api/achievements.
func (h *ContentHandler) ListAchievementsHandler(c *gin.Context) {
	achievements, err := h.Service.ListAchievements(c.Request.Context())
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// CreateAchievementHandler handles POST /api/admin/achievements.
func (h *ContentHandler) CreateAchievementHandler(c *gin.Context) {
	var in models.AchievementInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid achievement payload", err.Error())
		return
	}
	a, err := h.Service.CreateAchievement(c.Request.Context(), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"achievement": a})
}

// UpdateAchievementHandler handles PUT /api/admin/achievements/:id.
func (h *ContentHandler) UpdateAchievementHandler(c *gin.Context) {
	var in models.AchievementInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid achievement payload", err.Error())
		return
	}
	a, err := h.Service.UpdateAchievement(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievement": a})
}

// DeleteAchievementHandler handles DELETE /api/admin/achievements/:id.
func (h *ContentHandler) DeleteAchievementHandler(c *gin.Context) {
	if err := h.Service.DeleteAchievement(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Achievement deleted"})
}

// Contact messages.

// SubmitContactHandler handles POST /api/contact.
func (h *ContentHandler) SubmitContactHandler(c *gin.Context) {
	var in models.ContactMessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid contact payload", err.Error())
		return
	}
	m, err := h.Service.SubmitContactMessage(c.Request.Context(), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": m})
}

// ListContactMessagesHandler handles GET /api/admin/contact-messages.
func (h *ContentHandler) ListContactMessagesHandler(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	messages, err := h.Service.ListContactMessages(c.Request.Context(), unreadOnly)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// MarkContactReadHandler handles PUT /api/admin/contact-messages/:id/read.
func (h *ContentHandler) MarkContactReadHandler(c *gin.Context) {
	if err := h.Service.MarkContactMessageRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// DeleteContactMessageHandler handles DELETE /api/admin/contact-messages/:id.
func (h *ContentHandler) DeleteContactMessageHandler(c *gin.Context) {
	if err := h.Service.DeleteContactMessage(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
