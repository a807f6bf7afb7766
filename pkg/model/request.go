package model

import (
	"bytes"
	"encoding/json"
)

type FlightSearchRequest struct {
	Origin        string          `json:"origin" validate:"required"`
	Destination   string          `json:"destination" validate:"required"`
	DepartureDate string          `json:"departureDate" validate:"required"`
	Adults        json.RawMessage `json:"adults" validate:"json_present"`
	ReturnDate    string          `json:"returnDate,omitempty"`
	TravelClass   string          `json:"travelClass,omitempty"`
}

// FlightOfferRequest carries an offer exactly as the search returned it.
type FlightOfferRequest struct {
	FlightOffer json.RawMessage `json:"flightOffer" validate:"json_present"`
}

type FlightBookingRequest struct {
	FlightOffer json.RawMessage   `json:"flightOffer" validate:"json_present"`
	Travelers   []json.RawMessage `json:"travelers" validate:"required"`
	Contacts    json.RawMessage   `json:"contacts" validate:"json_present"`
}

type HotelSearchRequest struct {
	CityCode    string          `json:"cityCode" validate:"required"`
	Radius      json.RawMessage `json:"radius,omitempty"`
	RadiusUnit  string          `json:"radiusUnit,omitempty"`
	HotelSource string          `json:"hotelSource,omitempty"`
	Amenities   []string        `json:"amenities,omitempty"`
	Ratings     []string        `json:"ratings,omitempty"`
	ChainCodes  []string        `json:"chainCodes,omitempty"`
}

type HotelOffersRequest struct {
	HotelIDs      []string        `json:"hotelIds" validate:"required,min=1"`
	Adults        json.RawMessage `json:"adults,omitempty"`
	CheckInDate   string          `json:"checkInDate,omitempty"`
	CheckOutDate  string          `json:"checkOutDate,omitempty"`
	RoomQuantity  json.RawMessage `json:"roomQuantity,omitempty"`
	PriceRange    string          `json:"priceRange,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	PaymentPolicy string          `json:"paymentPolicy,omitempty"`
	BoardType     string          `json:"boardType,omitempty"`
	BestRateOnly  *bool           `json:"bestRateOnly,omitempty"`
}

type HotelBookingRequest struct {
	OfferID string   `json:"offerId" validate:"required"`
	Guests  []Guest  `json:"guests" validate:"required"`
	Payment *Payment `json:"payment" validate:"required"`
}

type Guest struct {
	TID       json.RawMessage `json:"tid,omitempty"`
	Title     string          `json:"title,omitempty"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Phone     string          `json:"phone,omitempty"`
	Email     string          `json:"email,omitempty"`
}

type Payment struct {
	Method      string       `json:"method,omitempty"`
	PaymentCard *PaymentCard `json:"paymentCard,omitempty"`
}

type PaymentCard struct {
	PaymentCardInfo PaymentCardInfo `json:"paymentCardInfo"`
}

type PaymentCardInfo struct {
	VendorCode string `json:"vendorCode,omitempty"`
	CardNumber string `json:"cardNumber,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	HolderName string `json:"holderName,omitempty"`
}

func (p *Payment) VendorCode() string {
	if p == nil || p.PaymentCard == nil {
		return ""
	}
	return p.PaymentCard.PaymentCardInfo.VendorCode
}

// QueryValue renders a loosely typed JSON value as a query parameter:
// strings lose their quotes, anything else is sent as written. Absent and
// null values render empty.
func QueryValue(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

type SignupRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
