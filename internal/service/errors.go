package service

import (
	"errors"

	"github.com/nasarali03/Portfolio/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrResumeStorageOff   = errors.New("resume storage is not configured")
	ErrSummaryOff         = errors.New("summary generation is not configured")
	ErrSummaryFailed      = errors.New("failed to generate summary")
)

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
