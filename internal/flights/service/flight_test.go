package service

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/url"
	"testing"
	"time"

	"travelease/internal/booking"
	"travelease/internal/catalog"
	"travelease/internal/dispatch"
	"travelease/internal/fallback"
	"travelease/internal/flights/validator"
	"travelease/pkg/amadeus"
	"travelease/pkg/config"
	apperrors "travelease/pkg/errors"
	"travelease/pkg/logger"
	"travelease/pkg/model"
)

type mockAPI struct {
	getFunc    func(ctx context.Context, token, path string, query url.Values) (*amadeus.Response, error)
	postFunc   func(ctx context.Context, token, path string, body any) (*amadeus.Response, error)
	deleteFunc func(ctx context.Context, token, path string) (*amadeus.Response, error)
}

func (m *mockAPI) Get(ctx context.Context, token, path string, query url.Values) (*amadeus.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, token, path, query)
	}
	return nil, &amadeus.UpstreamError{StatusCode: http.StatusNotImplemented}
}

func (m *mockAPI) Post(ctx context.Context, token, path string, body any) (*amadeus.Response, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, token, path, body)
	}
	return nil, &amadeus.UpstreamError{StatusCode: http.StatusNotImplemented}
}

func (m *mockAPI) Delete(ctx context.Context, token, path string) (*amadeus.Response, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, token, path)
	}
	return nil, &amadeus.UpstreamError{StatusCode: http.StatusNotImplemented}
}

type staticTokens struct{}

func (staticTokens) AcquireToken(context.Context) (string, error) { return "tok", nil }

func newTestService(t *testing.T, api amadeus.API) *flightService {
	t.Helper()
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	registry := booking.NewRegistry(time.Hour, 0)
	t.Cleanup(registry.Stop)

	svc := NewFlightService(
		api,
		dispatch.New(staticTokens{}, log),
		fallback.New(cat, rand.NewPCG(1, 2), nil),
		registry,
		cat,
		validator.NewFlightValidator(log),
		nil,
		&config.Config{Log: log, DefaultDealsOrigin: "MAD", DealsLeadDays: 30},
	)
	return svc.(*flightService)
}

func TestBook_RequestBody(t *testing.T) {
	var gotPath string
	var gotBody []byte
	api := &mockAPI{postFunc: func(_ context.Context, token, path string, body any) (*amadeus.Response, error) {
		if token != "tok" {
			t.Errorf("expected bearer token tok, got %q", token)
		}
		gotPath = path
		gotBody, _ = json.Marshal(body)
		return &amadeus.Response{StatusCode: http.StatusCreated, Body: []byte(`{"data":{"id":"ORDER1"}}`)}, nil
	}}
	svc := newTestService(t, api)

	env, err := svc.Book(context.Background(), &model.FlightBookingRequest{
		FlightOffer: json.RawMessage(`{"id":"1"}`),
		Travelers:   []json.RawMessage{json.RawMessage(`{"id":"1"}`)},
		Contacts:    json.RawMessage(`[{"emailAddress":"a@b.c"}]`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Status != model.StatusSuccess {
		t.Errorf("expected success, got %s", env.Status)
	}
	if gotPath != pathFlightOrders {
		t.Errorf("expected path %s, got %s", pathFlightOrders, gotPath)
	}

	var decoded struct {
		Data struct {
			Type    string `json:"type"`
			Remarks struct {
				General []struct {
					SubType string `json:"subType"`
					Text    string `json:"text"`
				} `json:"general"`
			} `json:"remarks"`
			TicketingAgreement struct {
				Option string `json:"option"`
				Delay  string `json:"delay"`
			} `json:"ticketingAgreement"`
			FlightOffers []json.RawMessage `json:"flightOffers"`
		} `json:"data"`
	}
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if decoded.Data.Type != "flight-order" {
		t.Errorf("unexpected type %q", decoded.Data.Type)
	}
	if len(decoded.Data.Remarks.General) != 1 || decoded.Data.Remarks.General[0].Text != bookingRemark {
		t.Errorf("unexpected remarks: %+v", decoded.Data.Remarks)
	}
	if decoded.Data.TicketingAgreement.Option != "DELAY_TO_CANCEL" || decoded.Data.TicketingAgreement.Delay != "6D" {
		t.Errorf("unexpected ticketing agreement: %+v", decoded.Data.TicketingAgreement)
	}
	if len(decoded.Data.FlightOffers) != 1 {
		t.Errorf("expected one flight offer, got %d", len(decoded.Data.FlightOffers))
	}
}

func TestSearch_TransportErrorUsesGenericMessage(t *testing.T) {
	api := &mockAPI{getFunc: func(context.Context, string, string, url.Values) (*amadeus.Response, error) {
		return nil, context.DeadlineExceeded
	}}
	svc := newTestService(t, api)

	_, err := svc.Search(context.Background(), &model.FlightSearchRequest{
		Origin: "MAD", Destination: "BCN", DepartureDate: "2026-12-01", Adults: json.RawMessage(`"1"`),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", appErr.StatusCode())
	}
	if appErr.Message != "Failed to search for flights" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestSearch_OptionalParameters(t *testing.T) {
	var got url.Values
	api := &mockAPI{getFunc: func(_ context.Context, _ string, _ string, query url.Values) (*amadeus.Response, error) {
		got = query
		return &amadeus.Response{StatusCode: http.StatusOK, Body: []byte(`{"data":[]}`)}, nil
	}}
	svc := newTestService(t, api)

	env, err := svc.Search(context.Background(), &model.FlightSearchRequest{
		Origin: "MAD", Destination: "BCN", DepartureDate: "2026-12-01", Adults: json.RawMessage(`2.7`),
		ReturnDate: "2026-12-08", TravelClass: "BUSINESS",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.ResultCount == nil || *env.ResultCount != 0 {
		t.Errorf("expected resultCount 0, got %v", env.ResultCount)
	}
	if got.Get("adults") != "2.7" {
		t.Errorf("expected adults forwarded as 2.7, got %s", got.Get("adults"))
	}
	if got.Get("returnDate") != "2026-12-08" || got.Get("travelClass") != "BUSINESS" {
		t.Errorf("optional parameters not forwarded: %v", got)
	}
}

func TestDeals_DepartureDate(t *testing.T) {
	var got url.Values
	api := &mockAPI{getFunc: func(_ context.Context, _ string, _ string, query url.Values) (*amadeus.Response, error) {
		got = query
		return &amadeus.Response{StatusCode: http.StatusOK, Body: []byte(`{"data":[]}`)}, nil
	}}
	svc := newTestService(t, api)
	svc.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }

	if _, err := svc.Deals(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Get("departureDate") != "2026-11-17" {
		t.Errorf("expected departure 30 days out, got %s", got.Get("departureDate"))
	}
	if got.Get("oneWay") != "true" || got.Get("nonStop") != "false" {
		t.Errorf("unexpected query: %v", got)
	}
}

func TestGetBooking_EmptyID(t *testing.T) {
	svc := newTestService(t, &mockAPI{})

	_, err := svc.GetBooking(context.Background(), svc.ResolveBooking(""))
	appErr := apperrors.AsAppError(err)
	if appErr.StatusCode() != http.StatusBadRequest || appErr.Message != "Booking ID is required" {
		t.Errorf("unexpected error: %v", err)
	}
}
