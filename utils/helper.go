package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaveUpload persists a multipart file under dir with a unique name and
// returns the public /uploads path it will be served from.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, fileName)); err != nil {
		return "", err
	}

	return "/uploads/" + fileName, nil
}
