package automation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
	"github.com/stayflowhq/stayflow/internal/infrastructure/cache"
)

// PropertyInfo is the property slice of a message context. Empty fields mean
// the scenario has no property or the property lacks the value.
type PropertyInfo struct {
	Name         string
	Address      string
	CheckInTime  string
	CheckOutTime string
}

// GuestInfo is the guest slice of a message context, defaulted from the
// session scenario.
type GuestInfo struct {
	Name     string
	Email    string
	CheckIn  string
	CheckOut string
}

// HistoryEntry is one prior message in chronological order
type HistoryEntry struct {
	Text      string
	Direction entities.MessageDirection
	SentAt    time.Time
}

// MessageContext is the read-only bundle handed to the summarizer and
// responder prompts: property reference data, guest profile and a bounded
// conversation window.
type MessageContext struct {
	Property PropertyInfo
	Guest    GuestInfo
	History  []HistoryEntry
}

// ContextBuilder assembles a MessageContext for one inbound message. It has
// no side effects; missing scenario data degrades to empty or placeholder
// fields instead of failing the run.
type ContextBuilder struct {
	messages     MessageStore
	properties   *propertyLoader
	historyLimit int
	logger       *zap.Logger
}

// NewContextBuilder creates a context builder with the given history window
func NewContextBuilder(messages MessageStore, properties *propertyLoader, historyLimit int, logger *zap.Logger) *ContextBuilder {
	if historyLimit <= 0 {
		historyLimit = 10
	}
	return &ContextBuilder{
		messages:     messages,
		properties:   properties,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Build assembles the context for msg. History holds up to historyLimit
// messages sent strictly before msg, oldest first. Store failures on the
// history read propagate; a missing property only empties the property slice.
func (b *ContextBuilder) Build(ctx context.Context, session *entities.Session, msg *entities.Message) (*MessageContext, error) {
	mctx := &MessageContext{
		Guest: GuestInfo{
			Name:     session.GuestDisplayName(),
			Email:    session.Scenario.GuestEmail,
			CheckIn:  session.Scenario.CheckIn,
			CheckOut: session.Scenario.CheckOut,
		},
	}

	property, err := b.properties.Load(ctx, session.Scenario.PropertyID)
	if err != nil {
		return nil, err
	}
	if property != nil {
		mctx.Property = PropertyInfo{
			Name:         property.Name,
			Address:      property.Address,
			CheckInTime:  property.CheckInTime,
			CheckOutTime: property.CheckOutTime,
		}
	}

	prior, err := b.messages.ListPriorMessages(ctx, session.ID, msg.SentAt, b.historyLimit)
	if err != nil {
		return nil, err
	}
	// The store returns newest first; flip into chronological order.
	mctx.History = make([]HistoryEntry, 0, len(prior))
	for i := len(prior) - 1; i >= 0; i-- {
		mctx.History = append(mctx.History, HistoryEntry{
			Text:      prior[i].Body,
			Direction: prior[i].Direction,
			SentAt:    prior[i].SentAt,
		})
	}

	return mctx, nil
}

// propertyLoader resolves the scenario property through the cache, falling
// back to the store and re-priming the cache on a miss. A nil or absent
// property reference resolves to nil without error.
type propertyLoader struct {
	store  PropertyStore
	cache  *cache.PropertyCache
	logger *zap.Logger
}

func (l *propertyLoader) Load(ctx context.Context, propertyID *uuid.UUID) (*entities.Property, error) {
	if propertyID == nil || *propertyID == uuid.Nil {
		return nil, nil
	}
	if property, ok := l.cache.Get(*propertyID); ok {
		return property, nil
	}
	property, err := l.store.FindWithFAQs(ctx, *propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		if l.logger != nil {
			l.logger.Warn("scenario references unknown property",
				zap.String("property_id", propertyID.String()))
		}
		return nil, nil
	}
	l.cache.Set(property)
	return property, nil
}
