package booking

import (
	"testing"
	"time"

	"travelease/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry(time.Hour, 0)
	defer r.Stop()

	tests := []struct {
		name       string
		id         string
		wantKind   Kind
		wantRecord bool
	}{
		{name: "provider id", id: "eJzTd9f3NjIJdzUGAAp%2fAiY=", wantKind: KindReal},
		{name: "unknown demo id", id: "DEMO-ABC12345", wantKind: KindDemo},
		{name: "lowercase prefix is not demo", id: "demo-ABC12345", wantKind: KindReal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := r.Resolve(tt.id)
			assert.Equal(t, tt.wantKind, ref.Kind())
			assert.Equal(t, tt.id, ref.ID())
			_, ok := ref.Order()
			assert.Equal(t, tt.wantRecord, ok)
		})
	}
}

func TestRegistry_RememberAndForget(t *testing.T) {
	r := NewRegistry(time.Hour, 0)
	defer r.Stop()

	order := model.FlightOrder{Type: "flight-order", ID: "DEMO-XYZ98765"}
	ref := r.Remember(order)
	assert.True(t, ref.IsDemo())

	resolved := r.Resolve("DEMO-XYZ98765")
	stored, ok := resolved.Order()
	require.True(t, ok)
	assert.Equal(t, "DEMO-XYZ98765", stored.ID)
	assert.Equal(t, 1, storedCount(r))

	r.Forget("DEMO-XYZ98765")
	_, ok = r.Resolve("DEMO-XYZ98765").Order()
	assert.False(t, ok)
	assert.Equal(t, 0, storedCount(r))
}

func TestRegistry_Expiry(t *testing.T) {
	r := NewRegistry(time.Minute, 0)
	defer r.Stop()

	current := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return current }

	r.Remember(model.FlightOrder{ID: "DEMO-OLD00001"})
	r.Remember(model.FlightOrder{ID: "DEMO-OLD00002"})

	current = current.Add(2 * time.Minute)
	r.Remember(model.FlightOrder{ID: "DEMO-NEW00001"})

	_, ok := r.Resolve("DEMO-OLD00001").Order()
	assert.False(t, ok)

	r.evictExpired()
	assert.Equal(t, 1, storedCount(r))
	_, ok = r.Resolve("DEMO-NEW00001").Order()
	assert.True(t, ok)
}

func TestRegistry_StopTwice(t *testing.T) {
	r := NewRegistry(time.Minute, time.Millisecond)
	r.Stop()
	assert.NotPanics(t, r.Stop)
}

func TestParseOfferRef(t *testing.T) {
	assert.True(t, ParseOfferRef("DEMO_OFFER_2").IsDemo())
	assert.False(t, ParseOfferRef("TSXOJ6LFQ2").IsDemo())
	assert.Equal(t, "demo", ParseOfferRef("DEMO_OFFER_1").Kind().String())
}

func storedCount(r *Registry) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
