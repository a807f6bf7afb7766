package errors

import "errors"

var (
	ErrMissingSearchParams  = errors.New("Missing required parameters")
	ErrMissingFlightOffer   = errors.New("Flight offer is required")
	ErrMissingBookingFields = errors.New("Missing required booking information")
	ErrMissingBookingID     = errors.New("Booking ID is required")
)

// Generic messages returned when a provider failure carries no body.
const (
	MsgSearchFailed   = "Failed to search for flights"
	MsgPriceFailed    = "Failed to check flight price"
	MsgBookingFailed  = "Failed to create booking"
	MsgLookupFailed   = "Failed to retrieve booking details"
	MsgCancelFailed   = "Failed to cancel booking"
	MsgSeatMapFailed  = "Failed to retrieve seat map"
	MsgDealsFailed    = "Failed to fetch flight deals"
	MsgInvalidRequest = "Invalid request body"
)

// Warning messages attached to demo and fallback responses.
const (
	WarnDemoBooking     = "This is a demo booking created because the Amadeus test environment has limitations. In a production environment, a real booking would be created."
	WarnDemoDetails     = "This is a demo booking. In a production environment, real booking details would be retrieved."
	WarnDemoCancel      = "This is a demo cancellation. In a production environment, a real booking would be cancelled."
	WarnDemoSeatMap     = "Using demo seat map data due to API limitations"
	WarnDemoDeals       = "Using demo data due to API limitations in test environment"
	WarnDemoPricing     = "Using demo pricing data due to API limitations"
	MsgBookingCancelled = "Booking cancelled successfully"
)
