package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/nasarali03/Portfolio/internal/event"
	"github.com/nasarali03/Portfolio/internal/models"
	"github.com/nasarali03/Portfolio/internal/repository"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

type testEnv struct {
	store     *repository.MemoryStore
	cache     *repository.MemoryCache
	publisher *event.MockPublisher
	images    *ImagePolicy
	content   *ContentService
	portfolio *PortfolioService
}

func newTestEnv() *testEnv {
	store := repository.NewMemoryStore()
	cache := repository.NewMemoryCache(time.Minute)
	publisher := event.NewMockPublisher()
	images := NewImagePolicy(ImagePolicyConfig{})

	return &testEnv{
		store:     store,
		cache:     cache,
		publisher: publisher,
		images:    images,
		content:   NewContentService(store, images, cache, publisher),
		portfolio: NewPortfolioService(store, images),
	}
}

type failingInvalidator struct{}

func (failingInvalidator) Invalidate(ctx context.Context, paths ...string) error {
	return errors.New("cache down")
}

func brokenUpload() *models.Upload {
	return models.UploadFromBytes("broken.png", "image/png", nil)
}

type fakeStorage struct {
	objects map[string][]byte
	err     error
}

func (f *fakeStorage) PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[objectName] = data
	return "https://files.example.dev/resumes/" + objectName, nil
}
