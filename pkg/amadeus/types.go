package amadeus

import "encoding/json"

// Wire shapes of the provider responses. Only the fields the service reads
// are declared; offers are also kept raw where they must be echoed back.

type Location struct {
	CityCode     string `json:"cityCode,omitempty"`
	CountryCode  string `json:"countryCode,omitempty"`
	DetailedName string `json:"detailedName,omitempty"`
}

type FlightDictionaries struct {
	Carriers  map[string]string   `json:"carriers"`
	Aircraft  map[string]string   `json:"aircraft"`
	Locations map[string]Location `json:"locations"`
}

type FlightOffersResponse struct {
	Data         []json.RawMessage  `json:"data"`
	Dictionaries FlightDictionaries `json:"dictionaries"`
}

type FlightOffer struct {
	ID                     string            `json:"id"`
	LastTicketingDate      string            `json:"lastTicketingDate,omitempty"`
	NumberOfBookableSeats  *int              `json:"numberOfBookableSeats,omitempty"`
	Itineraries            []Itinerary       `json:"itineraries"`
	Price                  FlightPrice       `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes,omitempty"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings,omitempty"`
}

type Itinerary struct {
	Duration string    `json:"duration,omitempty"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
	Aircraft    Aircraft `json:"aircraft"`
	Duration    string   `json:"duration,omitempty"`
}

type Endpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Aircraft struct {
	Code string `json:"code"`
}

type FlightPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base,omitempty"`
	GrandTotal string `json:"grandTotal,omitempty"`
}

type TravelerPricing struct {
	TravelerID           string       `json:"travelerId"`
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment"`
}

type FareDetail struct {
	SegmentID           string          `json:"segmentId,omitempty"`
	Cabin               string          `json:"cabin,omitempty"`
	IncludedCheckedBags json.RawMessage `json:"includedCheckedBags,omitempty"`
}

type HotelListResponse struct {
	Data []HotelListItem `json:"data"`
}

type HotelListItem struct {
	HotelID   string          `json:"hotelId"`
	Name      string          `json:"name"`
	ChainCode string          `json:"chainCode,omitempty"`
	IataCode  string          `json:"iataCode,omitempty"`
	CityCode  string          `json:"cityCode,omitempty"`
	GeoCode   json.RawMessage `json:"geoCode,omitempty"`
	Address   json.RawMessage `json:"address,omitempty"`
	Distance  json.RawMessage `json:"distance,omitempty"`
}

type HotelOffersResponse struct {
	Data []HotelOffers `json:"data"`
}

type HotelOffers struct {
	Hotel     OfferHotel   `json:"hotel"`
	Available bool         `json:"available"`
	Offers    []HotelOffer `json:"offers"`
}

type OfferHotel struct {
	Name      string `json:"name,omitempty"`
	HotelID   string `json:"hotelId,omitempty"`
	ChainCode string `json:"chainCode,omitempty"`
	CityCode  string `json:"cityCode,omitempty"`
}

type HotelOffer struct {
	ID           string         `json:"id"`
	CheckInDate  string         `json:"checkInDate,omitempty"`
	CheckOutDate string         `json:"checkOutDate,omitempty"`
	Room         *Room          `json:"room,omitempty"`
	Price        *HotelPrice    `json:"price,omitempty"`
	Policies     *OfferPolicies `json:"policies,omitempty"`
}

type Room struct {
	Type          string         `json:"type,omitempty"`
	TypeEstimated *TypeEstimated `json:"typeEstimated,omitempty"`
	Description   *Text          `json:"description,omitempty"`
}

type TypeEstimated struct {
	Category string `json:"category,omitempty"`
	Beds     *int   `json:"beds,omitempty"`
	BedType  string `json:"bedType,omitempty"`
}

type Text struct {
	Text string `json:"text"`
}

type HotelPrice struct {
	Currency   string      `json:"currency,omitempty"`
	Total      string      `json:"total,omitempty"`
	Base       string      `json:"base,omitempty"`
	Variations *Variations `json:"variations,omitempty"`
}

type Variations struct {
	Average *AveragePrice `json:"average,omitempty"`
}

type AveragePrice struct {
	Base  string `json:"base,omitempty"`
	Total string `json:"total,omitempty"`
}

type OfferPolicies struct {
	PaymentType   string         `json:"paymentType,omitempty"`
	Cancellation  *Cancellation  `json:"cancellation,omitempty"`
	Cancellations []Cancellation `json:"cancellations,omitempty"`
}

type Cancellation struct {
	Description *Text `json:"description,omitempty"`
}

// HotelOfferDetails is the data member of /v3/shopping/hotel-offers/{id}.
type HotelOfferDetails struct {
	Hotel  OfferHotel   `json:"hotel"`
	Offers []HotelOffer `json:"offers"`
}

type FlightDestinationsResponse struct {
	Data         []FlightDestination `json:"data"`
	Dictionaries struct {
		Locations map[string]Location `json:"locations"`
	} `json:"dictionaries"`
	Meta struct {
		Currency string `json:"currency"`
	} `json:"meta"`
}

type FlightDestination struct {
	Type          string `json:"type,omitempty"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Price         struct {
		Total string `json:"total"`
	} `json:"price"`
}
