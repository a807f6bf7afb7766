package fallback

import (
	"encoding/json"
	"fmt"
	"time"

	"travelease/pkg/amadeus"
	"travelease/pkg/model"
)

const demoOriginSystem = "DEMO"

type travelerSummary struct {
	ID      json.RawMessage `json:"id,omitempty"`
	Name    json.RawMessage `json:"name,omitempty"`
	Contact json.RawMessage `json:"contact,omitempty"`
}

// FlightBooking builds a demo flight order for an offer the provider refused to book.
// Offers and travelers of unexpected shape are echoed as given.
func (g *Generator) FlightBooking(offer json.RawMessage, travelers []json.RawMessage, contacts json.RawMessage) (model.FlightOrder, error) {
	summaries := make([]json.RawMessage, 0, len(travelers))
	for i, raw := range travelers {
		summary, err := summarizeTraveler(raw)
		if err != nil {
			return model.FlightOrder{}, fmt.Errorf("failed to encode traveler %d: %w", i, err)
		}
		summaries = append(summaries, summary)
	}

	return model.FlightOrder{
		Type: "flight-order",
		ID:   FlightBookingPrefix + g.randomCode(8),
		AssociatedRecords: []model.AssociatedRecord{{
			Reference:        PNRPrefix + g.randomCode(6),
			CreationDate:     g.timestamp(),
			OriginSystemCode: originSystem(offer),
		}},
		FlightOffers: []json.RawMessage{offer},
		Travelers:    summaries,
		Contacts:     contacts,
	}, nil
}

// originSystem picks the first validating airline of the offer, or DEMO.
func originSystem(offer json.RawMessage) string {
	var parsed struct {
		ValidatingAirlineCodes json.RawMessage `json:"validatingAirlineCodes"`
	}
	if err := json.Unmarshal(offer, &parsed); err != nil || len(parsed.ValidatingAirlineCodes) == 0 {
		return demoOriginSystem
	}

	var codes []string
	if err := json.Unmarshal(parsed.ValidatingAirlineCodes, &codes); err == nil {
		if len(codes) > 0 && codes[0] != "" {
			return codes[0]
		}
		return demoOriginSystem
	}
	var code string
	if err := json.Unmarshal(parsed.ValidatingAirlineCodes, &code); err == nil && code != "" {
		return code
	}
	return demoOriginSystem
}

func summarizeTraveler(raw json.RawMessage) (json.RawMessage, error) {
	var t travelerSummary
	if err := json.Unmarshal(raw, &t); err != nil {
		return raw, nil
	}
	return json.Marshal(t)
}

// FlightBookingDetails returns the canned order shown for a demo id that is
// no longer (or never was) known to this process.
func (g *Generator) FlightBookingDetails(id string) model.FlightOrder {
	ref := ""
	if start := len(FlightBookingPrefix); len(id) > start {
		ref = id[start:min(len(id), start+6)]
	}

	now := g.now().UTC()
	offer := amadeus.FlightOffer{
		ID: "1",
		Itineraries: []amadeus.Itinerary{{
			Segments: []amadeus.Segment{{
				Departure:   amadeus.Endpoint{IataCode: "LPL", At: now.Format(timestampLayout)},
				Arrival:     amadeus.Endpoint{IataCode: "ALC", At: now.Add(3 * time.Hour).Format(timestampLayout)},
				CarrierCode: "EI",
				Number:      "574",
			}},
		}},
		Price: amadeus.FlightPrice{Currency: demoCurrency.String(), Total: "450.00"},
	}
	rawOffer, _ := json.Marshal(offer)
	rawTraveler, _ := json.Marshal(map[string]any{
		"id":   "1",
		"name": map[string]string{"firstName": "DEMO", "lastName": "USER"},
	})

	return model.FlightOrder{
		Type: "flight-order",
		ID:   id,
		AssociatedRecords: []model.AssociatedRecord{{
			Reference:        PNRPrefix + ref,
			CreationDate:     now.Format(timestampLayout),
			OriginSystemCode: demoOriginSystem,
		}},
		FlightOffers: []json.RawMessage{rawOffer},
		Travelers:    []json.RawMessage{rawTraveler},
	}
}
