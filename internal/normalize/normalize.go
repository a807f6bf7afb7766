// Package normalize flattens provider payloads into the view models served to
// the frontend. Every function is pure: the same input always yields the same
// output.
package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"travelease/internal/catalog"
	"travelease/pkg/amadeus"
	"travelease/pkg/model"
)

const (
	DefaultCabinClass = "Economy"
	UnknownAirline    = "Unknown"
	DefaultRoomType   = "Standard Room"
	DefaultCurrency   = "EUR"
)

var emptyObject = json.RawMessage(`{}`)

func FlightOffers(body []byte) (model.Envelope, error) {
	var resp amadeus.FlightOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Envelope{}, fmt.Errorf("failed to decode flight offers: %w", err)
	}

	offers := make([]model.FlightOffer, 0, len(resp.Data))
	for i, raw := range resp.Data {
		var offer amadeus.FlightOffer
		if err := json.Unmarshal(raw, &offer); err != nil {
			return model.Envelope{}, fmt.Errorf("failed to decode flight offer %d: %w", i, err)
		}
		offers = append(offers, flightOffer(offer, raw, resp.Dictionaries))
	}

	return model.Success(offers).WithCount(len(offers)), nil
}

func flightOffer(offer amadeus.FlightOffer, raw json.RawMessage, dict amadeus.FlightDictionaries) model.FlightOffer {
	airlineCode := ""
	if len(offer.ValidatingAirlineCodes) > 0 {
		airlineCode = offer.ValidatingAirlineCodes[0]
	}
	airlineName := UnknownAirline
	if name, ok := dict.Carriers[airlineCode]; ok && name != "" {
		airlineName = name
	}

	itineraries := make([]model.FlightItinerary, 0, len(offer.Itineraries))
	for _, it := range offer.Itineraries {
		segments := make([]model.FlightSegment, 0, len(it.Segments))
		for _, seg := range it.Segments {
			segments = append(segments, model.FlightSegment{
				Departure:    model.SegmentPoint{Airport: seg.Departure.IataCode, Time: seg.Departure.At},
				Arrival:      model.SegmentPoint{Airport: seg.Arrival.IataCode, Time: seg.Arrival.At},
				CarrierCode:  seg.CarrierCode,
				CarrierName:  lookupOr(dict.Carriers, seg.CarrierCode),
				FlightNumber: seg.Number,
				Aircraft:     lookupOr(dict.Aircraft, seg.Aircraft.Code),
				Duration:     seg.Duration,
			})
		}
		itineraries = append(itineraries, model.FlightItinerary{
			Duration: it.Duration,
			Segments: segments,
		})
	}

	fare := model.FareDetails{
		LastTicketingDate: offer.LastTicketingDate,
		AvailableSeats:    offer.NumberOfBookableSeats,
		CabinClass:        DefaultCabinClass,
		Baggage:           emptyObject,
	}
	if len(offer.TravelerPricings) > 0 && len(offer.TravelerPricings[0].FareDetailsBySegment) > 0 {
		first := offer.TravelerPricings[0].FareDetailsBySegment[0]
		if first.Cabin != "" {
			fare.CabinClass = first.Cabin
		}
		if present(first.IncludedCheckedBags) {
			fare.Baggage = first.IncludedCheckedBags
		}
	}

	return model.FlightOffer{
		ID:          offer.ID,
		Price:       model.Price{Total: offer.Price.Total, Currency: offer.Price.Currency},
		Airline:     model.Airline{Code: airlineCode, Name: airlineName},
		Itineraries: itineraries,
		FareDetails: fare,
		RawData:     raw,
	}
}

func Hotels(body []byte) (model.Envelope, error) {
	var resp amadeus.HotelListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Envelope{}, fmt.Errorf("failed to decode hotel list: %w", err)
	}

	hotels := make([]model.Hotel, 0, len(resp.Data))
	for _, h := range resp.Data {
		cityCode := h.CityCode
		if cityCode == "" {
			cityCode = h.IataCode
		}
		hotels = append(hotels, model.Hotel{
			ID:        h.HotelID,
			Name:      h.Name,
			ChainCode: h.ChainCode,
			Location: model.HotelLocation{
				Coordinates: objectOrEmpty(h.GeoCode),
				Address:     objectOrEmpty(h.Address),
				CityCode:    cityCode,
				Distance:    objectOrEmpty(h.Distance),
			},
		})
	}

	return model.Success(hotels).WithCount(len(hotels)), nil
}

// HotelOffers drops hotels that are unavailable or carry no offers.
func HotelOffers(body []byte) (model.Envelope, error) {
	var resp amadeus.HotelOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Envelope{}, fmt.Errorf("failed to decode hotel offers: %w", err)
	}

	out := make([]model.HotelOffer, 0, len(resp.Data))
	for _, h := range resp.Data {
		if !h.Available || len(h.Offers) == 0 {
			continue
		}
		offers := make([]model.RoomOffer, 0, len(h.Offers))
		for _, o := range h.Offers {
			offers = append(offers, RoomOffer(o))
		}
		out = append(out, model.HotelOffer{
			Hotel: model.HotelSummary{
				ID:        h.Hotel.HotelID,
				Name:      h.Hotel.Name,
				ChainCode: h.Hotel.ChainCode,
				CityCode:  h.Hotel.CityCode,
			},
			Available: h.Available,
			Offers:    offers,
		})
	}

	return model.Success(out).WithCount(len(out)), nil
}

func RoomOffer(o amadeus.HotelOffer) model.RoomOffer {
	view := model.RoomOffer{
		ID:    o.ID,
		Room:  model.RoomDetails{Type: DefaultRoomType},
		Dates: model.StayDates{CheckIn: o.CheckInDate, CheckOut: o.CheckOutDate},
	}

	if r := o.Room; r != nil {
		switch {
		case r.TypeEstimated != nil && r.TypeEstimated.Category != "":
			view.Room.Type = r.TypeEstimated.Category
		case r.Type != "":
			view.Room.Type = r.Type
		}
		if r.TypeEstimated != nil {
			view.Room.Beds = r.TypeEstimated.Beds
			view.Room.BedType = r.TypeEstimated.BedType
		}
		if r.Description != nil {
			view.Room.Description = r.Description.Text
		}
	}

	if p := o.Price; p != nil {
		view.Price = model.RoomPrice{Total: p.Total, Currency: p.Currency}
		if p.Variations != nil && p.Variations.Average != nil {
			view.Price.AveragePerNight = p.Variations.Average.Base
		}
	}

	if pol := o.Policies; pol != nil {
		view.Policies.PaymentType = pol.PaymentType
		view.Policies.Cancellation = cancellationText(pol)
	}

	return view
}

func cancellationText(pol *amadeus.OfferPolicies) string {
	if pol.Cancellation != nil && pol.Cancellation.Description != nil {
		return pol.Cancellation.Description.Text
	}
	for _, c := range pol.Cancellations {
		if c.Description != nil && c.Description.Text != "" {
			return c.Description.Text
		}
	}
	return ""
}

// FlightDeals enriches destinations with city names and images and sorts them
// by ascending price. Unparseable prices sort last.
func FlightDeals(body []byte, cat *catalog.Catalog) ([]model.FlightDeal, error) {
	var resp amadeus.FlightDestinationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode flight destinations: %w", err)
	}

	currency := resp.Meta.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	deals := make([]model.FlightDeal, 0, len(resp.Data))
	for _, d := range resp.Data {
		city, ok := cat.CityName(d.Destination)
		if !ok {
			city = resp.Dictionaries.Locations[d.Destination].DetailedName
		}
		if city == "" {
			city = d.Destination
		}
		deals = append(deals, model.FlightDeal{
			Destination:   d.Destination,
			CityName:      city,
			ImageURL:      cat.ImageFor(city),
			Price:         d.Price.Total,
			Currency:      currency,
			DepartureDate: d.DepartureDate,
		})
	}

	SortDeals(deals)
	return deals, nil
}

func SortDeals(deals []model.FlightDeal) {
	sort.SliceStable(deals, func(i, j int) bool {
		return priceValue(deals[i].Price) < priceValue(deals[j].Price)
	})
}

func priceValue(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}

func lookupOr(dict map[string]string, code string) string {
	if name, ok := dict[code]; ok && name != "" {
		return name
	}
	return code
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func objectOrEmpty(raw json.RawMessage) json.RawMessage {
	if present(raw) {
		return raw
	}
	return emptyObject
}
