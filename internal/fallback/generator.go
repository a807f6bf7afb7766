// Package fallback builds the demo records served in place of provider data
// when the sandbox cannot answer. Shapes match the real responses; contents
// are synthetic and carry recognizable prefixes.
package fallback

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"travelease/internal/catalog"
	"travelease/internal/normalize"
	"travelease/pkg/model"

	"golang.org/x/text/currency"
)

const (
	FlightBookingPrefix = "DEMO-"
	HotelOfferPrefix    = "DEMO_"
	HotelBookingPrefix  = "DEMO_BOOKING_"
	PNRPrefix           = "PNR"

	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05.000Z"
)

var ErrNoSegment = errors.New("flight offer has no segment to build a seat map for")

// Every demo price is quoted in this currency.
var demoCurrency = currency.EUR

// formatAmount renders v with the standard minor units of demoCurrency.
func formatAmount(v float64) string {
	scale, _ := currency.Standard.Rounding(demoCurrency)
	return strconv.FormatFloat(v, 'f', scale, 64)
}

// Generator is safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	now     func() time.Time
	catalog *catalog.Catalog
}

func New(cat *catalog.Catalog, src rand.Source, now func() time.Time) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{
		rng:     rand.New(src),
		now:     now,
		catalog: cat,
	}
}

func (g *Generator) randomCode(n int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(idAlphabet[g.rng.IntN(len(idAlphabet))])
	}
	return b.String()
}

func (g *Generator) intN(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(n)
}

func (g *Generator) chance(p float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < p
}

func (g *Generator) timestamp() string {
	return g.now().UTC().Format(timestampLayout)
}

// stayDates returns tomorrow and the day after.
func (g *Generator) stayDates() (string, string) {
	today := g.now().UTC()
	return today.AddDate(0, 0, 1).Format(dateLayout), today.AddDate(0, 0, 2).Format(dateLayout)
}

// FlightDeals returns the catalog deals sorted by ascending price.
func (g *Generator) FlightDeals() []model.FlightDeal {
	deals := g.catalog.Deals()
	normalize.SortDeals(deals)
	return deals
}

// FlightPrice echoes the offer back as an unchanged pricing document.
func (g *Generator) FlightPrice(offer json.RawMessage) model.FlightPricing {
	return model.FlightPricing{
		Data: model.FlightPricingData{
			Type:         "flight-offers-pricing",
			FlightOffers: []json.RawMessage{offer},
		},
	}
}
