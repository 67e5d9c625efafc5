package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"divineastro/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles admin media uploads for product and blog imagery.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// UploadsDisabledHandler answers upload requests when no storage backend is
// configured.
func UploadsDisabledHandler(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media uploads are not configured"})
}

// allowedBuckets defines permitted folders for media uploads.
var allowedBuckets = map[string]bool{
	"products":     true,
	"blog":         true,
	"testimonials": true,
}

// UploadFileHandler handles POST /api/admin/uploads/:bucket.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'products', 'blog' and 'testimonials'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "media/"+bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "image", publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"publicId":    publicID,
		"downloadURL": downloadURL,
	})
}
