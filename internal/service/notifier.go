package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/cache"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/messagebus"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/search"
)

// Change event actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent is published to the events queue after every successful
// mutation so downstream systems can mirror fleet state.
type ChangeEvent struct {
	Collection string      `json:"collection"`
	Key        string      `json:"key"`
	Action     string      `json:"action"`
	OccurredAt time.Time   `json:"occurred_at"`
	Entity     interface{} `json:"entity,omitempty"`
}

// Notifier fans a successful mutation out to the message bus, the search
// index, and the entity cache. Every downstream failure is logged and
// swallowed; the mutation itself already succeeded.
type Notifier struct {
	bus         messagebus.Client
	search      search.Client
	cache       cache.CacheClient
	eventsQueue string
	log         *logrus.Logger
}

// NewNotifier creates a notifier
func NewNotifier(
	bus messagebus.Client,
	searchClient search.Client,
	cacheClient cache.CacheClient,
	eventsQueue string,
	log *logrus.Logger,
) *Notifier {
	return &Notifier{
		bus:         bus,
		search:      searchClient,
		cache:       cacheClient,
		eventsQueue: eventsQueue,
		log:         log,
	}
}

// EntitySaved reports a create or update for the given document.
func (n *Notifier) EntitySaved(collection, key string, entity interface{}, created bool) {
	action := ActionUpdated
	if created {
		action = ActionCreated
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := n.cache.SetEntity(ctx, collection, key, entity); err != nil {
			n.log.WithError(err).Warn("Failed to cache entity")
		}

		if data, err := json.Marshal(entity); err == nil {
			if err := n.search.IndexDocument(ctx, collection+":"+key, data); err != nil {
				n.log.WithError(err).Warn("Failed to index entity")
			}
		}

		n.publish(ctx, ChangeEvent{
			Collection: collection,
			Key:        key,
			Action:     action,
			OccurredAt: time.Now(),
			Entity:     entity,
		})
	}()
}

// EntityDeleted reports a deletion for the given document.
func (n *Notifier) EntityDeleted(collection, key string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := n.cache.DeleteEntity(ctx, collection, key); err != nil {
			n.log.WithError(err).Warn("Failed to evict entity from cache")
		}

		if err := n.search.DeleteDocument(ctx, collection+":"+key); err != nil {
			n.log.WithError(err).Warn("Failed to remove entity from index")
		}

		n.publish(ctx, ChangeEvent{
			Collection: collection,
			Key:        key,
			Action:     ActionDeleted,
			OccurredAt: time.Now(),
		})
	}()
}

// publish sends the event with retry on transient bus disconnections.
func (n *Notifier) publish(ctx context.Context, event ChangeEvent) {
	err := messagebus.RetryWithBackoff(ctx, func() error {
		return n.bus.PublishMessage(ctx, event, n.eventsQueue)
	}, 3)
	if err != nil {
		n.log.WithError(err).WithFields(logrus.Fields{
			"collection": event.Collection,
			"key":        event.Key,
			"action":     event.Action,
		}).Error("Failed to publish change event")
	}
}
