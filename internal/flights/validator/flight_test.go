package validator

import (
	"encoding/json"
	"errors"
	"testing"

	"travelease/pkg/logger"
	"travelease/pkg/model"
)

func newTestValidator() *FlightValidator {
	return NewFlightValidator(logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}))
}

func TestValidateSearch(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		req     model.FlightSearchRequest
		wantErr bool
		fields  []string
	}{
		{
			name: "complete request",
			req:  model.FlightSearchRequest{Origin: "MAD", Destination: "BCN", DepartureDate: "2026-12-01", Adults: json.RawMessage(`"1"`)},
		},
		{
			name:    "missing adults",
			req:     model.FlightSearchRequest{Origin: "MAD", Destination: "BCN", DepartureDate: "2026-12-01"},
			wantErr: true,
			fields:  []string{"Adults"},
		},
		{
			name:    "empty request",
			req:     model.FlightSearchRequest{},
			wantErr: true,
			fields:  []string{"Origin", "Destination", "DepartureDate", "Adults"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSearch(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSearch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if len(verrs) != len(tt.fields) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.fields), len(verrs), verrs)
			}
			for i, field := range tt.fields {
				if verrs[i].Field != field {
					t.Errorf("error %d: expected field %s, got %s", i, field, verrs[i].Field)
				}
			}
		})
	}
}

func TestValidateOffer_JSONPresent(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		offer   json.RawMessage
		wantErr bool
	}{
		{"object", json.RawMessage(`{"id":"1"}`), false},
		{"absent", nil, true},
		{"null", json.RawMessage(`null`), true},
		{"padded null", json.RawMessage(` null `), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateOffer(&model.FlightOfferRequest{FlightOffer: tt.offer})
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOffer() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBooking(t *testing.T) {
	v := newTestValidator()

	ok := model.FlightBookingRequest{
		FlightOffer: json.RawMessage(`{"id":"1"}`),
		Travelers:   []json.RawMessage{json.RawMessage(`{"id":"1"}`)},
		Contacts:    json.RawMessage(`[]`),
	}
	if err := v.ValidateBooking(&ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := ok
	missing.Travelers = nil
	err := v.ValidateBooking(&missing)
	if err == nil {
		t.Fatal("expected error for missing travelers")
	}
	if got := err.Error(); got != "validation failed: 1 error(s): [Travelers: Travelers is required]" {
		t.Errorf("unexpected message: %s", got)
	}
}
