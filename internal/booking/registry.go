package booking

import (
	"sync"
	"time"

	"travelease/pkg/model"
)

type storedOrder struct {
	order     model.FlightOrder
	createdAt time.Time
}

// Registry keeps the demo flight orders created by this process for a while,
// so that a lookup right after booking returns the same record.
type Registry struct {
	mu     sync.RWMutex
	orders map[string]storedOrder
	ttl    time.Duration
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

func NewRegistry(ttl, cleanupInterval time.Duration) *Registry {
	r := &Registry{
		orders: make(map[string]storedOrder),
		ttl:    ttl,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go r.cleanup(cleanupInterval)
	}

	return r
}

// Remember stores a demo order and returns its reference.
func (r *Registry) Remember(order model.FlightOrder) Ref {
	r.mu.Lock()
	r.orders[order.ID] = storedOrder{order: order, createdAt: r.now()}
	r.mu.Unlock()

	return Demo(order.ID, &order)
}

// Resolve parses a flight booking id once. Unknown demo ids still resolve
// to Demo, without a record.
func (r *Registry) Resolve(id string) Ref {
	if !IsDemoFlightBookingID(id) {
		return Real(id)
	}

	r.mu.RLock()
	stored, ok := r.orders[id]
	r.mu.RUnlock()

	if !ok {
		return Demo(id, nil)
	}

	if r.now().Sub(stored.createdAt) > r.ttl {
		r.Forget(id)
		return Demo(id, nil)
	}

	order := stored.order
	return Demo(id, &order)
}

func (r *Registry) Forget(id string) {
	r.mu.Lock()
	delete(r.orders, id)
	r.mu.Unlock()
}

func (r *Registry) evictExpired() {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, stored := range r.orders {
		if now.Sub(stored.createdAt) > r.ttl {
			delete(r.orders, id)
		}
	}
}

func (r *Registry) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.evictExpired()
		case <-r.stopCh:
			return
		}
	}
}

func (r *Registry) Stop() {
	r.once.Do(func() { close(r.stopCh) })
}
