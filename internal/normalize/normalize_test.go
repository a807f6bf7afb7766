package normalize

import (
	"encoding/json"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"travelease/internal/catalog"
	"travelease/pkg/amadeus"
	"travelease/pkg/model"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestFlightOffers_CountsAndSegments(t *testing.T) {
	body := readFixture(t, "flight_offers.json")

	env, err := FlightOffers(body)
	require.NoError(t, err)

	offers, ok := env.Data.([]model.FlightOffer)
	require.True(t, ok)

	var upstream struct {
		Data []amadeus.FlightOffer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &upstream))

	assert.Equal(t, model.StatusSuccess, env.Status)
	require.NotNil(t, env.ResultCount)
	assert.Equal(t, len(upstream.Data), *env.ResultCount)
	assert.Len(t, offers, len(upstream.Data))

	for i, offer := range offers {
		require.Len(t, offer.Itineraries, len(upstream.Data[i].Itineraries))
		for j, it := range offer.Itineraries {
			assert.Len(t, it.Segments, len(upstream.Data[i].Itineraries[j].Segments))
		}
	}
}

func TestFlightOffers_DictionaryLookups(t *testing.T) {
	env, err := FlightOffers(readFixture(t, "flight_offers.json"))
	require.NoError(t, err)
	offers := env.Data.([]model.FlightOffer)

	first := offers[0]
	assert.Equal(t, model.Airline{Code: "IB", Name: "IBERIA"}, first.Airline)
	seg := first.Itineraries[0].Segments[0]
	assert.Equal(t, "IBERIA", seg.CarrierName)
	assert.Equal(t, "AIRBUS A321", seg.Aircraft)
	assert.Equal(t, model.SegmentPoint{Airport: "MAD", Time: "2025-06-01T07:00:00"}, seg.Departure)
	assert.Equal(t, "3166", seg.FlightNumber)
	assert.Equal(t, "ECONOMY", first.FareDetails.CabinClass)
	assert.JSONEq(t, `{"quantity":1}`, string(first.FareDetails.Baggage))
	require.NotNil(t, first.FareDetails.AvailableSeats)
	assert.Equal(t, 9, *first.FareDetails.AvailableSeats)

	second := offers[1]
	assert.Equal(t, UnknownAirline, second.Airline.Name)
	assert.Equal(t, "ZZ", second.Itineraries[0].Segments[0].CarrierName)
	assert.Equal(t, "XYZ", second.Itineraries[0].Segments[0].Aircraft)
	assert.Equal(t, "AIR FRANCE", second.Itineraries[0].Segments[1].CarrierName)
	assert.Equal(t, DefaultCabinClass, second.FareDetails.CabinClass)
	assert.JSONEq(t, `{}`, string(second.FareDetails.Baggage))
	assert.Nil(t, second.FareDetails.AvailableSeats)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(second.RawData, &raw))
	assert.Equal(t, "2", raw["id"])
}

func TestFlightOffers_Empty(t *testing.T) {
	env, err := FlightOffers([]byte(`{"data":[],"dictionaries":{}}`))
	require.NoError(t, err)

	out, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","resultCount":0,"data":[]}`, string(out))
}

func TestFlightOffers_InvalidBody(t *testing.T) {
	_, err := FlightOffers([]byte(`<html>`))
	assert.Error(t, err)
}

func TestHotels_Defaults(t *testing.T) {
	env, err := Hotels(readFixture(t, "hotel_list.json"))
	require.NoError(t, err)

	hotels := env.Data.([]model.Hotel)
	require.Len(t, hotels, 2)
	assert.Equal(t, 2, *env.ResultCount)

	assert.Equal(t, "ACPAR419", hotels[0].ID)
	assert.Equal(t, "PAR", hotels[0].Location.CityCode)
	assert.JSONEq(t, `{"latitude":48.83,"longitude":2.37}`, string(hotels[0].Location.Coordinates))

	bare := hotels[1].Location
	assert.JSONEq(t, `{}`, string(bare.Coordinates))
	assert.JSONEq(t, `{}`, string(bare.Address))
	assert.JSONEq(t, `{}`, string(bare.Distance))
}

func TestHotelOffers_FiltersUnavailable(t *testing.T) {
	env, err := HotelOffers(readFixture(t, "hotel_offers.json"))
	require.NoError(t, err)

	hotels := env.Data.([]model.HotelOffer)
	assert.Equal(t, len(hotels), *env.ResultCount)
	for _, h := range hotels {
		assert.True(t, h.Available)
		assert.NotEmpty(t, h.Offers)
		assert.NotContains(t, []string{"HLPAR100", "HLPAR200", "HLPAR300"}, h.Hotel.ID)
	}
}

func TestHotelOffers_Golden(t *testing.T) {
	env, err := HotelOffers(readFixture(t, "hotel_offers.json"))
	require.NoError(t, err)

	out, err := json.MarshalIndent(env, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "hotel_offers", out)
}

func TestNormalize_Idempotent(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	cases := []struct {
		name    string
		fixture string
		run     func([]byte) (any, error)
	}{
		{"flight offers", "flight_offers.json", func(b []byte) (any, error) { return FlightOffers(b) }},
		{"hotels", "hotel_list.json", func(b []byte) (any, error) { return Hotels(b) }},
		{"hotel offers", "hotel_offers.json", func(b []byte) (any, error) { return HotelOffers(b) }},
		{"deals", "flight_destinations.json", func(b []byte) (any, error) { return FlightDeals(b, cat) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := readFixture(t, tc.fixture)

			first, err := tc.run(body)
			require.NoError(t, err)
			second, err := tc.run(body)
			require.NoError(t, err)

			a, err := json.Marshal(first)
			require.NoError(t, err)
			b, err := json.Marshal(second)
			require.NoError(t, err)
			assert.Equal(t, string(a), string(b))
		})
	}
}

func TestFlightDeals_EnrichAndSort(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	deals, err := FlightDeals(readFixture(t, "flight_destinations.json"), cat)
	require.NoError(t, err)
	require.Len(t, deals, 4)

	assert.Equal(t, []string{"OPO", "BCN", "XXX", "JFK"}, destinations(deals))

	assert.Equal(t, "Porto", deals[0].CityName)
	assert.Equal(t, "porto.jpg", deals[0].ImageURL)
	assert.Equal(t, "USD", deals[0].Currency)

	assert.Equal(t, "BARCELONA/ES:AIRPORT", deals[1].CityName)
	assert.Equal(t, "flight-placeholder.jpg", deals[1].ImageURL)

	assert.Equal(t, "XXX", deals[2].CityName)

	assert.Equal(t, "New York", deals[3].CityName)
	assert.Equal(t, "newyork.jpg", deals[3].ImageURL)
}

func TestFlightDeals_SortedForAnyPermutation(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	var resp amadeus.FlightDestinationsResponse
	require.NoError(t, json.Unmarshal(readFixture(t, "flight_destinations.json"), &resp))

	rng := rand.New(rand.NewPCG(7, 11))
	for range 20 {
		rng.Shuffle(len(resp.Data), func(i, j int) {
			resp.Data[i], resp.Data[j] = resp.Data[j], resp.Data[i]
		})
		body, err := json.Marshal(resp)
		require.NoError(t, err)

		deals, err := FlightDeals(body, cat)
		require.NoError(t, err)
		assert.Equal(t, []string{"OPO", "BCN", "XXX", "JFK"}, destinations(deals))
	}
}

func TestFlightDeals_DefaultCurrencyAndBadPrices(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	body := []byte(`{"data":[
		{"destination":"LIS","departureDate":"2025-07-01","price":{"total":"n/a"}},
		{"destination":"MAD","departureDate":"2025-07-01","price":{"total":"10"}}
	]}`)

	deals, err := FlightDeals(body, cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"MAD", "LIS"}, destinations(deals))
	assert.Equal(t, DefaultCurrency, deals[0].Currency)
}

func destinations(deals []model.FlightDeal) []string {
	out := make([]string, 0, len(deals))
	for _, d := range deals {
		out = append(out, d.Destination)
	}
	return out
}
