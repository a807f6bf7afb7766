package model

import "encoding/json"

type Hotel struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	ChainCode string        `json:"chainCode,omitempty"`
	Location  HotelLocation `json:"location"`
}

type HotelLocation struct {
	Coordinates json.RawMessage `json:"coordinates"`
	Address     json.RawMessage `json:"address"`
	CityCode    string          `json:"cityCode,omitempty"`
	Distance    json.RawMessage `json:"distance"`
}

type HotelOffer struct {
	Hotel     HotelSummary `json:"hotel"`
	Available bool         `json:"available"`
	Offers    []RoomOffer  `json:"offers"`
}

type HotelSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ChainCode string `json:"chainCode,omitempty"`
	CityCode  string `json:"cityCode,omitempty"`
}

type RoomOffer struct {
	ID       string       `json:"id"`
	Room     RoomDetails  `json:"room"`
	Price    RoomPrice    `json:"price"`
	Dates    StayDates    `json:"dates"`
	Policies RoomPolicies `json:"policies"`
}

type RoomDetails struct {
	Type        string `json:"type"`
	Beds        *int   `json:"beds,omitempty"`
	BedType     string `json:"bedType,omitempty"`
	Description string `json:"description,omitempty"`
}

type RoomPrice struct {
	Total           string `json:"total,omitempty"`
	Currency        string `json:"currency,omitempty"`
	AveragePerNight string `json:"averagePerNight,omitempty"`
}

type StayDates struct {
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
}

type RoomPolicies struct {
	PaymentType  string `json:"paymentType,omitempty"`
	Cancellation string `json:"cancellation,omitempty"`
}

type HotelBookingConfirmation struct {
	ID                         string             `json:"id"`
	ProviderConfirmationStatus string             `json:"providerConfirmationStatus"`
	AssociatedRecords          []AssociatedRecord `json:"associatedRecords"`
	Hotel                      BookedHotel        `json:"hotel"`
	RoomDetails                BookedRoom         `json:"roomDetails"`
	Guests                     []BookedGuest      `json:"guests"`
	Payment                    BookedPayment      `json:"payment"`
}

type BookedHotel struct {
	Name    string       `json:"name"`
	HotelID string       `json:"hotelId"`
	Address HotelAddress `json:"address"`
}

type HotelAddress struct {
	Lines       []string `json:"lines"`
	PostalCode  string   `json:"postalCode"`
	CityName    string   `json:"cityName"`
	CountryCode string   `json:"countryCode"`
}

type BookedRoom struct {
	Type         string `json:"type"`
	Description  string `json:"description"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Guests       int    `json:"guests"`
}

type BookedGuest struct {
	Name    GuestName    `json:"name"`
	Contact GuestContact `json:"contact"`
}

type GuestName struct {
	Title     string `json:"title,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type GuestContact struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type BookedPayment struct {
	Method   string     `json:"method,omitempty"`
	Card     MaskedCard `json:"card"`
	Amount   string     `json:"amount"`
	Currency string     `json:"currency"`
}

type MaskedCard struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number"`
}
