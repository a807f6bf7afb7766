package model

import "encoding/json"

type FlightOffer struct {
	ID          string            `json:"id"`
	Price       Price             `json:"price"`
	Airline     Airline           `json:"airline"`
	Itineraries []FlightItinerary `json:"itineraries"`
	FareDetails FareDetails       `json:"fareDetails"`
	RawData     json.RawMessage   `json:"rawData,omitempty"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type FlightItinerary struct {
	Duration string          `json:"duration,omitempty"`
	Segments []FlightSegment `json:"segments"`
}

type FlightSegment struct {
	Departure    SegmentPoint `json:"departure"`
	Arrival      SegmentPoint `json:"arrival"`
	CarrierCode  string       `json:"carrierCode"`
	CarrierName  string       `json:"carrierName"`
	FlightNumber string       `json:"flightNumber"`
	Aircraft     string       `json:"aircraft"`
	Duration     string       `json:"duration,omitempty"`
}

type SegmentPoint struct {
	Airport string `json:"airport"`
	Time    string `json:"time"`
}

type FareDetails struct {
	LastTicketingDate string          `json:"lastTicketingDate,omitempty"`
	AvailableSeats    *int            `json:"availableSeats,omitempty"`
	CabinClass        string          `json:"cabinClass"`
	Baggage           json.RawMessage `json:"baggage"`
}

type FlightDeal struct {
	Destination   string `json:"destination"`
	CityName      string `json:"cityName"`
	ImageURL      string `json:"imageUrl"`
	Price         string `json:"price"`
	Currency      string `json:"currency"`
	DepartureDate string `json:"departureDate"`
}

// FlightOrder mirrors the provider's flight-order record. Demo bookings use the same shape.
type FlightOrder struct {
	Type              string             `json:"type"`
	ID                string             `json:"id"`
	AssociatedRecords []AssociatedRecord `json:"associatedRecords"`
	FlightOffers      []json.RawMessage  `json:"flightOffers"`
	Travelers         []json.RawMessage  `json:"travelers"`
	Contacts          json.RawMessage    `json:"contacts,omitempty"`
}

type AssociatedRecord struct {
	Reference        string `json:"reference"`
	CreationDate     string `json:"creationDate,omitempty"`
	OriginSystemCode string `json:"originSystemCode"`
}

// FlightPricing is the provider's flight-offers-pricing document.
type FlightPricing struct {
	Data FlightPricingData `json:"data"`
}

type FlightPricingData struct {
	Type         string            `json:"type"`
	FlightOffers []json.RawMessage `json:"flightOffers"`
}
