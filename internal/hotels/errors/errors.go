package errors

import "errors"

var (
	ErrMissingCityCode      = errors.New("City code is required")
	ErrMissingHotelIDs      = errors.New("At least one hotel ID is required")
	ErrMissingOfferID       = errors.New("Offer ID is required")
	ErrMissingBookingFields = errors.New("Missing required booking information")
)

const (
	MsgSearchFailed       = "Failed to search for hotels"
	MsgOffersFailed       = "Failed to get hotel offers"
	MsgOfferDetailsFailed = "Failed to get hotel offer details"
	MsgBookingFailed      = "Failed to create hotel booking"
	MsgInvalidRequest     = "Invalid request body"
	MsgDemoBooking        = "Demo booking created successfully"
)

const (
	WarnDemoData = "Using demo data due to API limitations in test environment"
	WarnAPIError = "Using demo data due to API error"
)
