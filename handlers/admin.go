// File: handlers/admin.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pitchside/models"
	adminSvc "pitchside/services/admin"
	"pitchside/utils"
)

// AdminHandler exposes back-office authentication endpoints.
type AdminHandler struct {
	Service adminSvc.AdminService
}

// LoginHandler handles POST /api/admin/login.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var in models.AdminLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid login payload", err.Error())
		return
	}
	token, err := h.Service.Login(c.Request.Context(), in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// LogoutHandler handles POST /api/admin/logout. It revokes the token the
// request authenticated with.
func (h *AdminHandler) LogoutHandler(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.Service.Logout(c.Request.Context(), token); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
