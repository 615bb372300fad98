package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nasarali03/Portfolio/internal/event"
	"github.com/nasarali03/Portfolio/internal/models"
	"github.com/nasarali03/Portfolio/internal/repository"
)

type ContactService struct {
	store     repository.Store
	content   *ContentService
	publisher event.Publisher
	now       func() time.Time
}

func NewContactService(store repository.Store, content *ContentService, publisher event.Publisher) *ContactService {
	return &ContactService{
		store:     store,
		content:   content,
		publisher: publisher,
		now:       time.Now,
	}
}

// Submit stores a message from the public contact form. Messages sort by
// submission time.
func (s *ContactService) Submit(ctx context.Context, fields models.ContactFields) (*models.ContactMessage, error) {
	now := s.now()
	msg := &models.ContactMessage{
		Name:      strings.TrimSpace(fields.Name),
		Email:     strings.TrimSpace(fields.Email),
		Message:   strings.TrimSpace(fields.Message),
		Order:     now.UnixMilli(),
		CreatedAt: now.Unix(),
	}

	id, err := s.store.Upsert(ctx, models.CollectionMessages, "", msg)
	if err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	msg.ID = id

	if s.publisher != nil {
		evt := &models.ContentEvent{
			EventType:  models.EventTypeContactSubmitted,
			Collection: models.CollectionMessages,
			EntityID:   id,
			Timestamp:  now,
		}
		if err := s.publisher.PublishContentEvent(ctx, evt); err != nil {
			log.Printf("Warning: Failed to publish contact event for %s: %v", id, err)
		}
	}
	return msg, nil
}

func (s *ContactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return listCollection[models.ContactMessage](ctx, s.store, models.CollectionMessages)
}

func (s *ContactService) DeleteMessage(ctx context.Context, id string) error {
	return s.content.remove(ctx, models.CollectionMessages, id)
}
