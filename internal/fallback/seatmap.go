package fallback

import (
	"encoding/json"
	"fmt"
	"strconv"

	"travelease/pkg/amadeus"
	"travelease/pkg/model"
)

const (
	SeatRows        = 30
	SeatColumns     = 6
	AvailableChance = 0.7

	seatCabin    = "ECONOMY"
	exitRow      = 14
	shortRow     = 15
	premiumRows  = 5
	rearRowStart = 25
)

var seatCharacteristics = map[string]string{
	"CH": "Chargeable seat",
	"W":  "Window seat",
	"A":  "Aisle seat",
	"E":  "Exit row seat",
	"L":  "Leg space seat",
	"1":  "Restricted recline seat",
	"U":  "Seat suitable for unaccompanied minors",
}

// SeatMap builds a demo seat map for the first segment of the offer.
func (g *Generator) SeatMap(offer json.RawMessage) (model.SeatMapResponse, error) {
	var parsed amadeus.FlightOffer
	if err := json.Unmarshal(offer, &parsed); err != nil {
		return model.SeatMapResponse{}, fmt.Errorf("failed to decode flight offer: %w", err)
	}
	if len(parsed.Itineraries) == 0 || len(parsed.Itineraries[0].Segments) == 0 {
		return model.SeatMapResponse{}, ErrNoSegment
	}
	seg := parsed.Itineraries[0].Segments[0]

	dict := make(map[string]string, len(seatCharacteristics))
	for k, v := range seatCharacteristics {
		dict[k] = v
	}

	return model.SeatMapResponse{
		Data: []model.SeatMap{{
			ID:          "1",
			Departure:   model.FlightPoint{IataCode: seg.Departure.IataCode, At: seg.Departure.At},
			Arrival:     model.FlightPoint{IataCode: seg.Arrival.IataCode, At: seg.Arrival.At},
			CarrierCode: seg.CarrierCode,
			Number:      seg.Number,
			Aircraft:    model.AircraftCode{Code: seg.Aircraft.Code},
			AvailableSeatsCounters: []model.SeatCounter{
				{TravelerID: "1", Value: 45},
			},
			Decks: []model.Deck{{
				DeckType: "MAIN",
				DeckConfiguration: model.DeckConfiguration{
					Width:    7,
					Length:   SeatRows,
					StartRow: 1,
					EndRow:   SeatRows,
				},
				Facilities: []model.Facility{{
					Code:        "LA",
					Column:      "A",
					Row:         "10",
					Position:    "REAR",
					Coordinates: model.Coordinates{X: 1, Y: 10},
				}},
				Seats: g.seats(),
			}},
		}},
		Dictionaries: model.SeatMapDictionaries{SeatCharacteristics: dict},
	}, nil
}

// SeatSkipped reports the positions with no physical seat: column D behind
// row 12 and everything right of D on row 15.
func SeatSkipped(row, col int) bool {
	return (col == 3 && row > 12) || (row == shortRow && col > 3)
}

func SeatCharacteristics(row, col int) []string {
	codes := []string{}
	if col == 0 || col == SeatColumns-1 {
		codes = append(codes, "W")
	}
	if col == 2 || col == 3 {
		codes = append(codes, "A")
	}
	if row == exitRow {
		codes = append(codes, "E", "L")
	}
	if row < premiumRows || row == exitRow || (col < 3 && row > rearRowStart) {
		codes = append(codes, "CH")
	}
	return codes
}

func seatPrice(row int, codes []string) *model.SeatPrice {
	for _, c := range codes {
		if c != "CH" {
			continue
		}
		total := 15.0
		if row < premiumRows {
			total = 25.0
		}
		return &model.SeatPrice{Total: formatAmount(total), Currency: demoCurrency.String()}
	}
	return nil
}

func (g *Generator) seats() []model.Seat {
	seats := make([]model.Seat, 0, SeatRows*SeatColumns)
	for row := 1; row <= SeatRows; row++ {
		for col := 0; col < SeatColumns; col++ {
			if SeatSkipped(row, col) {
				continue
			}

			codes := SeatCharacteristics(row, col)
			status := model.SeatOccupied
			if g.chance(AvailableChance) {
				status = model.SeatAvailable
			}

			seats = append(seats, model.Seat{
				Cabin:                seatCabin,
				Number:               strconv.Itoa(row) + string(rune('A'+col)),
				CharacteristicsCodes: codes,
				Coordinates:          model.Coordinates{X: row, Y: col},
				TravelerPricing: []model.SeatPricing{{
					TravelerID:             "1",
					SeatAvailabilityStatus: status,
					Price:                  seatPrice(row, codes),
				}},
			})
		}
	}
	return seats
}
