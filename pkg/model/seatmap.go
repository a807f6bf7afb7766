package model

const (
	SeatAvailable = "AVAILABLE"
	SeatOccupied  = "OCCUPIED"
)

type SeatMapResponse struct {
	Data         []SeatMap           `json:"data"`
	Dictionaries SeatMapDictionaries `json:"dictionaries"`
}

type SeatMapDictionaries struct {
	SeatCharacteristics map[string]string `json:"seatCharacteristics"`
}

type SeatMap struct {
	ID                     string        `json:"id"`
	Departure              FlightPoint   `json:"departure"`
	Arrival                FlightPoint   `json:"arrival"`
	CarrierCode            string        `json:"carrierCode"`
	Number                 string        `json:"number"`
	Aircraft               AircraftCode  `json:"aircraft"`
	AvailableSeatsCounters []SeatCounter `json:"availableSeatsCounters"`
	Decks                  []Deck        `json:"decks"`
}

type FlightPoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type AircraftCode struct {
	Code string `json:"code"`
}

type SeatCounter struct {
	TravelerID string `json:"travelerId"`
	Value      int    `json:"value"`
}

type Deck struct {
	DeckType          string            `json:"deckType"`
	DeckConfiguration DeckConfiguration `json:"deckConfiguration"`
	Facilities        []Facility        `json:"facilities"`
	Seats             []Seat            `json:"seats"`
}

type DeckConfiguration struct {
	Width    int `json:"width"`
	Length   int `json:"length"`
	StartRow int `json:"startRow"`
	EndRow   int `json:"endRow"`
}

type Facility struct {
	Code        string      `json:"code"`
	Column      string      `json:"column"`
	Row         string      `json:"row"`
	Position    string      `json:"position"`
	Coordinates Coordinates `json:"coordinates"`
}

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Seat struct {
	Cabin                string        `json:"cabin"`
	Number               string        `json:"number"`
	CharacteristicsCodes []string      `json:"characteristicsCodes"`
	Coordinates          Coordinates   `json:"coordinates"`
	TravelerPricing      []SeatPricing `json:"travelerPricing"`
}

// SeatPricing.Price is null for seats that are not chargeable.
type SeatPricing struct {
	TravelerID             string     `json:"travelerId"`
	SeatAvailabilityStatus string     `json:"seatAvailabilityStatus"`
	Price                  *SeatPrice `json:"price"`
}

type SeatPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}
