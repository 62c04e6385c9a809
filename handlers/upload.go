// File: handlers/upload.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	storageSvc "pitchside/services/storage"
	"pitchside/utils"
)

// UploadHandler handles admin media uploads.
type UploadHandler struct {
	Storage storageSvc.StorageService
}

// allowedFolders defines permitted destination folders for uploads.
var allowedFolders = map[string]bool{
	"gallery":    true,
	"coaches":    true,
	"facilities": true,
}

// UploadImageHandler handles POST /api/admin/uploads. The multipart form
// carries the image under "file" and the destination under "folder".
func (h *UploadHandler) UploadImageHandler(c *gin.Context) {
	folder := c.DefaultPostForm("folder", "gallery")
	if !allowedFolders[folder] {
		utils.JSONError(c, http.StatusBadRequest, "invalid folder; allowed values are 'gallery', 'coaches' and 'facilities'", "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read file", err.Error())
		return
	}
	defer file.Close()

	result, err := h.Storage.UploadImage(c.Request.Context(), file, "pitchside/"+folder)
	if err != nil {
		utils.RespondAppError(c, utils.StoreError("failed to upload image", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"public_id": result.PublicID,
		"url":       result.SecureURL,
	})
}
