// Package booking resolves client-supplied booking and offer ids into
// references that say, once, whether the provider knows about them.
package booking

import (
	"strings"

	"travelease/internal/fallback"
	"travelease/pkg/model"
)

type Kind int

const (
	KindReal Kind = iota
	KindDemo
)

func (k Kind) String() string {
	if k == KindDemo {
		return "demo"
	}
	return "real"
}

// Ref is either Real(id), owned by the provider, or Demo(id, record), created
// locally by the fallback generator. Demo refs never reach the provider.
type Ref struct {
	kind  Kind
	id    string
	order *model.FlightOrder
}

func Real(id string) Ref {
	return Ref{kind: KindReal, id: id}
}

// Demo builds a demo reference. order may be nil when the record was not kept.
func Demo(id string, order *model.FlightOrder) Ref {
	return Ref{kind: KindDemo, id: id, order: order}
}

func (r Ref) ID() string   { return r.id }
func (r Ref) Kind() Kind   { return r.kind }
func (r Ref) IsDemo() bool { return r.kind == KindDemo }

// Order returns the synthetic record behind a demo reference, if it is still held.
func (r Ref) Order() (*model.FlightOrder, bool) {
	return r.order, r.order != nil
}

func IsDemoFlightBookingID(id string) bool {
	return strings.HasPrefix(id, fallback.FlightBookingPrefix)
}

// ParseOfferRef resolves a hotel offer id. Demo offers carry no stored record.
func ParseOfferRef(id string) Ref {
	if strings.HasPrefix(id, fallback.HotelOfferPrefix) {
		return Demo(id, nil)
	}
	return Real(id)
}
