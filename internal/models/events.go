package models

import (
	"time"
)

type EventType string

const (
	EventTypeContentUpserted  EventType = "content.upserted"
	EventTypeContentDeleted   EventType = "content.deleted"
	EventTypeCacheRevalidate  EventType = "cache.revalidate"
	EventTypeContactSubmitted EventType = "contact.submitted"
)

type ContentEvent struct {
	EventType  EventType `json:"eventType"`
	Collection string    `json:"collection,omitempty"`
	EntityID   string    `json:"entityId,omitempty"`
	Paths      []string  `json:"paths,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
