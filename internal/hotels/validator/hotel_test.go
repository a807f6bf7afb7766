package validator

import (
	"errors"
	"testing"

	"travelease/pkg/logger"
	"travelease/pkg/model"
)

func TestValidateOffers(t *testing.T) {
	v := NewHotelValidator(logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}))

	tests := []struct {
		name      string
		req       model.HotelOffersRequest
		wantField string
	}{
		{name: "valid", req: model.HotelOffersRequest{HotelIDs: []string{"HLPAR266"}, Currency: "EUR"}},
		{name: "currency is not checked", req: model.HotelOffersRequest{HotelIDs: []string{"HLPAR266"}, Currency: "EURO"}},
		{name: "missing ids", req: model.HotelOffersRequest{}, wantField: "HotelIDs"},
		{name: "empty ids", req: model.HotelOffersRequest{HotelIDs: []string{}}, wantField: "HotelIDs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateOffers(&tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if len(verrs) != 1 || verrs[0].Field != tt.wantField {
				t.Errorf("expected a single %s error, got %v", tt.wantField, verrs)
			}
		})
	}
}

func TestValidateBooking(t *testing.T) {
	v := NewHotelValidator(logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}))

	err := v.ValidateBooking(&model.HotelBookingRequest{
		OfferID: "DEMO_OFFER_1",
		Guests:  []model.Guest{{FirstName: "Ana", LastName: "Garcia"}},
		Payment: &model.Payment{Method: "creditCard"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = v.ValidateBooking(&model.HotelBookingRequest{OfferID: "DEMO_OFFER_1"})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 2 {
		t.Fatalf("expected guests and payment errors, got %v", err)
	}
}
