package utils

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

const DefaultImageContentType = "image/jpeg"

// ContentTypeDetector provides methods to detect content types
type ContentTypeDetector struct{}

func NewContentTypeDetector() *ContentTypeDetector {
	return &ContentTypeDetector{}
}

// DetectContentTypeFromExtension tries to detect content type from a file extension
func (d *ContentTypeDetector) DetectContentTypeFromExtension(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return "application/octet-stream"
	}

	contentType := mime.TypeByExtension(strings.ToLower(ext))
	if contentType == "" {
		return "application/octet-stream"
	}
	return stripParams(contentType)
}

// DetectContentType prefers the declared type, then the extension, then the
// first bytes of the content.
func (d *ContentTypeDetector) DetectContentType(declared, filename string, data []byte) string {
	if declared = stripParams(declared); declared != "" && declared != "application/octet-stream" {
		return declared
	}

	if contentType := d.DetectContentTypeFromExtension(filename); contentType != "application/octet-stream" {
		return contentType
	}

	if len(data) > 0 {
		return stripParams(http.DetectContentType(data))
	}
	return "application/octet-stream"
}

// ImageContentType resolves the MIME type for an image data URI, falling
// back to image/jpeg when nothing better is known.
func (d *ContentTypeDetector) ImageContentType(declared, filename string, data []byte) string {
	contentType := d.DetectContentType(declared, filename, data)
	if !d.IsImageContentType(contentType) {
		return DefaultImageContentType
	}
	return contentType
}

// IsImageContentType checks if a content type is an image
func (d *ContentTypeDetector) IsImageContentType(contentType string) bool {
	switch stripParams(contentType) {
	case "image/jpeg", "image/png", "image/gif", "image/webp", "image/tiff", "image/bmp", "image/svg+xml", "image/avif":
		return true
	default:
		return false
	}
}

func (d *ContentTypeDetector) IsPDFContentType(contentType string) bool {
	return stripParams(contentType) == "application/pdf"
}

func stripParams(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
