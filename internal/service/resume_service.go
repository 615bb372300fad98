package service

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/nasarali03/Portfolio/internal/models"
)

// ObjectStorage stores a file and returns a public URL for it.
type ObjectStorage interface {
	PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

type ResumeService struct {
	storage ObjectStorage
	content *ContentService
}

func NewResumeService(storage ObjectStorage, content *ContentService) *ResumeService {
	return &ResumeService{
		storage: storage,
		content: content,
	}
}

func (s *ResumeService) Enabled() bool {
	return s.storage != nil
}

// UploadResume stores the PDF under its checksum and points the hero resume
// link at it.
func (s *ResumeService) UploadResume(ctx context.Context, upload *models.Upload) (*models.HeroContent, error) {
	if s.storage == nil {
		return nil, ErrResumeStorageOff
	}

	data, err := upload.ReadAll()
	if err != nil {
		return nil, err
	}

	sum := md5.Sum(data)
	objectName := fmt.Sprintf("resume-%s.pdf", hex.EncodeToString(sum[:]))

	url, err := s.storage.PutObject(ctx, objectName, bytes.NewReader(data), int64(len(data)), "application/pdf")
	if err != nil {
		return nil, err
	}
	return s.content.SetResumeURL(ctx, url)
}
