package utils

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/nasarali03/Portfolio/internal/models"
)

// Validators provides validation methods
type Validators struct {
	detector *ContentTypeDetector
}

func NewValidators() *Validators {
	return &Validators{detector: NewContentTypeDetector()}
}

// IsValidEmail checks if a string is a valid email address
func (v *Validators) IsValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// IsValidFilename checks if a string is a valid filename
func (v *Validators) IsValidFilename(filename string) bool {
	invalid := []string{"\\", "/", ":", "*", "?", "\"", "<", ">", "|"}
	for _, char := range invalid {
		if strings.Contains(filename, char) {
			return false
		}
	}
	return len(filename) <= 255
}

// ValidateUploadHeader performs basic validation on an uploaded file
func (v *Validators) ValidateUploadHeader(upload *models.Upload, maxSize int64) error {
	if upload == nil {
		return errors.New("no file provided")
	}
	if upload.Size == 0 {
		return errors.New("file is empty")
	}
	if upload.Size > maxSize {
		return fmt.Errorf("file size exceeds maximum allowed size of %d bytes", maxSize)
	}
	if !v.IsValidFilename(upload.Filename) {
		return errors.New("invalid filename")
	}
	return nil
}

// ValidateImageUpload rejects files over maxSize and non-image types before
// any encoding is attempted. A nil upload is valid.
func (v *Validators) ValidateImageUpload(field string, upload *models.Upload, maxSize int64) error {
	if upload == nil {
		return nil
	}
	if err := v.ValidateUploadHeader(upload, maxSize); err != nil {
		return models.NewValidationError(field, err.Error())
	}

	contentType := upload.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = v.detector.DetectContentTypeFromExtension(upload.Filename)
	}
	if !v.detector.IsImageContentType(contentType) {
		return models.NewValidationError(field, "file must be an image (jpg, png, gif, webp, svg)")
	}
	return nil
}

func (v *Validators) ValidateResumeUpload(upload *models.Upload, maxSize int64) error {
	if err := v.ValidateUploadHeader(upload, maxSize); err != nil {
		return models.NewValidationError("resumeFile", err.Error())
	}

	contentType := upload.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = v.detector.DetectContentTypeFromExtension(upload.Filename)
	}
	if !v.detector.IsPDFContentType(contentType) {
		return models.NewValidationError("resumeFile", "resume must be a PDF document")
	}
	return nil
}
