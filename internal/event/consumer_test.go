package event

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nasarali03/Portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRevalidator struct {
	paths []string
	err   error
}

func (r *recordingRevalidator) Invalidate(ctx context.Context, paths ...string) error {
	if r.err != nil {
		return r.err
	}
	r.paths = append(r.paths, paths...)
	return nil
}

func TestProcessRevalidateMessage(t *testing.T) {
	rev := &recordingRevalidator{}
	consumer, err := NewEventConsumer("", "portfolio.events", "q", rev)
	require.NoError(t, err)

	body, err := json.Marshal(models.ContentEvent{
		EventType: models.EventTypeCacheRevalidate,
		Paths:     []string{"/api/portfolio", "/api/projects"},
	})
	require.NoError(t, err)

	require.NoError(t, consumer.processMessage(string(models.EventTypeCacheRevalidate), body))
	assert.Equal(t, []string{"/api/portfolio", "/api/projects"}, rev.paths)
}

func TestProcessRevalidateMessageErrors(t *testing.T) {
	rev := &recordingRevalidator{}
	consumer, err := NewEventConsumer("", "portfolio.events", "q", rev)
	require.NoError(t, err)

	assert.Error(t, consumer.processMessage(string(models.EventTypeCacheRevalidate), []byte("{")))
	assert.Error(t, consumer.processMessage(string(models.EventTypeCacheRevalidate), []byte(`{"paths":[]}`)))

	rev.err = errors.New("redis down")
	assert.Error(t, consumer.processMessage(string(models.EventTypeCacheRevalidate), []byte(`{"paths":["/"]}`)))
}

func TestEachConsumerGetsItsOwnQueue(t *testing.T) {
	first, err := NewEventConsumer("", "portfolio.events", "portfolio-revalidate", &recordingRevalidator{})
	require.NoError(t, err)
	second, err := NewEventConsumer("", "portfolio.events", "portfolio-revalidate", &recordingRevalidator{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.QueueName(), "portfolio-revalidate."))
	assert.True(t, strings.HasPrefix(second.QueueName(), "portfolio-revalidate."))
	assert.NotEqual(t, first.QueueName(), second.QueueName())
}

func TestProcessIgnoresUnknownRoutingKey(t *testing.T) {
	rev := &recordingRevalidator{}
	consumer, err := NewEventConsumer("", "portfolio.events", "q", rev)
	require.NoError(t, err)

	assert.NoError(t, consumer.processMessage("content.upserted", []byte(`{}`)))
	assert.Empty(t, rev.paths)
}

func TestDisabledPublisherIsNoop(t *testing.T) {
	pub, err := NewEventPublisher("", "portfolio.events")
	require.NoError(t, err)
	assert.NoError(t, pub.PublishContentEvent(context.Background(), &models.ContentEvent{EventType: models.EventTypeContentDeleted}))
	assert.NoError(t, pub.Close())
}

func TestMockPublisher(t *testing.T) {
	pub := NewMockPublisher()
	require.NoError(t, pub.PublishContentEvent(context.Background(), &models.ContentEvent{EventType: models.EventTypeContentUpserted, EntityID: "p1"}))
	require.Len(t, pub.GetEvents(), 1)
	assert.Equal(t, "p1", pub.GetEvents()[0].EntityID)

	pub.ClearEvents()
	assert.Empty(t, pub.GetEvents())
}
