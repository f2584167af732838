package utils

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var validImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
}

// IsValidImageType reports whether contentType is one of the accepted upload types.
func IsValidImageType(contentType string) bool {
	ct := strings.ToLower(contentType)
	for _, validType := range validImageTypes {
		if strings.Contains(ct, validType) {
			return true
		}
	}
	return false
}

func DetectContentType(data []byte) string {
	return http.DetectContentType(data)
}

// IsAllowedExtension checks the picker's accepted extensions: jpg, jpeg, png.
func IsAllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}

func GenerateStorageKey(prefix, filename string) string {
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filepath.Base(filename), ext)
	if name == "" || name == "." {
		name = "image"
	}
	timestamp := time.Now().Unix()
	uuid := uuid.New().String()[:8]

	return fmt.Sprintf("%s/%s_%d_%s%s", prefix, name, timestamp, uuid, ext)
}
