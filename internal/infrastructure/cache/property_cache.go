package cache

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// PropertyCache caches property reference data (including FAQs) for the
// responder's property-information block. Serialization failures and
// backend misses both fall through to a direct repository read.
type PropertyCache struct {
	store Store
	ttl   time.Duration
}

// NewPropertyCache creates a property cache over any Store
func NewPropertyCache(store Store, ttl time.Duration) *PropertyCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PropertyCache{store: store, ttl: ttl}
}

// Get returns the cached property, if any
func (pc *PropertyCache) Get(propertyID uuid.UUID) (*entities.Property, bool) {
	if pc == nil || pc.store == nil {
		return nil, false
	}
	raw, ok := pc.store.Get(pc.key(propertyID))
	if !ok {
		return nil, false
	}
	var property entities.Property
	if err := json.Unmarshal([]byte(raw), &property); err != nil {
		pc.store.Delete(pc.key(propertyID))
		return nil, false
	}
	return &property, true
}

// Set caches a property snapshot
func (pc *PropertyCache) Set(property *entities.Property) {
	if pc == nil || pc.store == nil || property == nil {
		return
	}
	raw, err := json.Marshal(property)
	if err != nil {
		return
	}
	pc.store.Set(pc.key(property.ID), string(raw), pc.ttl)
}

func (pc *PropertyCache) key(propertyID uuid.UUID) string {
	return "property:" + propertyID.String()
}
