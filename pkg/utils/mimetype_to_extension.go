package utils

import (
	"path/filepath"
	"strings"
)

// mimeTypeToExtension maps the image MIME types accepted for diary uploads to
// their usual file extensions.
var mimeTypeToExtension = map[string]string{
	"image/avif":   ".avif",
	"image/bmp":    ".bmp",
	"image/gif":    ".gif",
	"image/heic":   ".heic",
	"image/heif":   ".heif",
	"image/jpeg":   ".jpg",
	"image/png":    ".png",
	"image/tiff":   ".tif",
	"image/webp":   ".webp",
	"image/x-icon": ".ico",
}

// GetExtensionFromMimeType returns the extension of an accepted image type,
// ignoring MIME parameters. Image types outside the table get ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	cleanedMimeType := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[strings.ToLower(cleanedMimeType)]; ok {
		return ext
	}

	return ".bin"
}

// FileExtension prefers the extension of the client supplied filename and falls
// back to the one implied by mimeType.
func FileExtension(filename, mimeType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" && len(ext) <= 6 && isAlnum(ext[1:]) {
		return ext
	}

	return GetExtensionFromMimeType(mimeType)
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}

	return true
}
