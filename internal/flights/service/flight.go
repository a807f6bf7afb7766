package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"travelease/internal/booking"
	"travelease/internal/catalog"
	"travelease/internal/dispatch"
	"travelease/internal/events"
	"travelease/internal/fallback"
	flighterrors "travelease/internal/flights/errors"
	"travelease/internal/flights/validator"
	"travelease/internal/normalize"
	"travelease/pkg/amadeus"
	"travelease/pkg/config"
	apperrors "travelease/pkg/errors"
	"travelease/pkg/model"
	"travelease/pkg/sanitizer"
)

const (
	pathFlightOffers       = "/v2/shopping/flight-offers"
	pathFlightPricing      = "/v1/shopping/flight-offers/pricing"
	pathFlightOrders       = "/v1/booking/flight-orders"
	pathSeatMaps           = "/v1/shopping/seatmaps"
	pathFlightDestinations = "/v1/shopping/flight-destinations"

	searchCurrency   = "EUR"
	searchMaxResults = 20

	bookingRemark = "Booking created through TravelEase Application"
	dateLayout    = "2006-01-02"
)

type FlightService interface {
	Search(ctx context.Context, req *model.FlightSearchRequest) (model.Envelope, error)
	Price(ctx context.Context, req *model.FlightOfferRequest) (model.Envelope, error)
	Book(ctx context.Context, req *model.FlightBookingRequest) (model.Envelope, error)
	ResolveBooking(id string) booking.Ref
	GetBooking(ctx context.Context, ref booking.Ref) (model.Envelope, error)
	CancelBooking(ctx context.Context, ref booking.Ref) (model.Envelope, error)
	SeatMap(ctx context.Context, req *model.FlightOfferRequest) (model.Envelope, error)
	Deals(ctx context.Context, origin string) (model.Envelope, error)
}

type flightService struct {
	api        amadeus.API
	dispatcher *dispatch.Dispatcher
	generator  *fallback.Generator
	registry   *booking.Registry
	catalog    *catalog.Catalog
	validator  *validator.FlightValidator
	events     events.Publisher
	cfg        *config.Config
	now        func() time.Time
}

func NewFlightService(
	api amadeus.API,
	dispatcher *dispatch.Dispatcher,
	generator *fallback.Generator,
	registry *booking.Registry,
	cat *catalog.Catalog,
	validator *validator.FlightValidator,
	publisher events.Publisher,
	cfg *config.Config,
) FlightService {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	return &flightService{
		api:        api,
		dispatcher: dispatcher,
		generator:  generator,
		registry:   registry,
		catalog:    cat,
		validator:  validator,
		events:     publisher,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *flightService) Search(ctx context.Context, req *model.FlightSearchRequest) (model.Envelope, error) {
	if err := s.validator.ValidateSearch(req); err != nil {
		return model.Envelope{}, s.invalid("search", flighterrors.ErrMissingSearchParams, err)
	}

	query := url.Values{}
	query.Set("originLocationCode", sanitizer.NormalizeCode(req.Origin))
	query.Set("destinationLocationCode", sanitizer.NormalizeCode(req.Destination))
	query.Set("departureDate", req.DepartureDate)
	query.Set("adults", model.QueryValue(req.Adults))
	query.Set("currencyCode", searchCurrency)
	query.Set("max", strconv.Itoa(searchMaxResults))
	if req.ReturnDate != "" {
		query.Set("returnDate", req.ReturnDate)
	}
	if req.TravelClass != "" {
		query.Set("travelClass", req.TravelClass)
	}

	res, err := dispatch.Run(ctx, s.dispatcher, dispatch.Call[model.Envelope]{
		Name:    "flights.search",
		Policy:  dispatch.Propagate,
		Message: flighterrors.MsgSearchFailed,
		Upstream: func(ctx context.Context, token string) (*amadeus.Response, error) {
			return s.api.Get(ctx, token, pathFlightOffers, query)
		},
		Normalize: func(resp *amadeus.Response) (model.Envelope, error) {
			return normalize.FlightOffers(resp.Body)
		},
	})
	if err != nil {
		return model.Envelope{}, err
	}
	return res.Value, nil
}

func (s *flightService) Price(ctx context.Context, req *model.FlightOfferRequest) (model.Envelope, error) {
	if err := s.validator.ValidateOffer(req); err != nil {
		return model.Envelope{}, s.invalid("price", flighterrors.ErrMissingFlightOffer, err)
	}

	body := pricingPayload("flight-offers-pricing", req.FlightOffer)

	res, err := dispatch.Run(ctx, s.dispatcher, dispatch.Call[model.Envelope]{
		Name:    "flights.price",
		Policy:  dispatch.FallbackAlways,
		Message: flighterrors.MsgPriceFailed,
		Upstream: func(ctx context.Context, token string) (*amadeus.Response, error) {
			return s.api.Post(ctx, token, pathFlightPricing, body)
		},
		Normalize: passThrough,
		Fallback: func() (model.Envelope, error) {
			return model.Warning(flighterrors.WarnDemoPricing, s.generator.FlightPrice(req.FlightOffer)), nil
		},
	})
	if err != nil {
		return model.Envelope{}, err
	}
	return res.Value, nil
}

func (s *flightService) Book(ctx context.Context, req *model.FlightBookingRequest) (model.Envelope, error) {
	if err := s.validator.ValidateBooking(req); err != nil {
		return model.Envelope{}, s.invalid("book", flighterrors.ErrMissingBookingFields, err)
	}

	body := map[string]any{
		"data": map[string]any{
			"type":         "flight-order",
			"flightOffers": []json.RawMessage{req.FlightOffer},
			"travelers":    req.Travelers,
			"remarks": map[string]any{
				"general": []map[string]string{{
					"subType": "GENERAL_MISCELLANEOUS",
					"text":    bookingRemark,
				}},
			},
			"ticketingAgreement": map[string]string{
				"option": "DELAY_TO_CANCEL",
				"delay":  "6D",
			},
			"contacts": req.Contacts,
		},
	}

	var bookingID string
	res, err := dispatch.Run(ctx, s.dispatcher, dispatch.Call[model.Envelope]{
		Name:    "flights.book",
		Policy:  dispatch.FallbackOnUpstream,
		Message: flighterrors.MsgBookingFailed,
		Upstream: func(ctx context.Context, token string) (*amadeus.Response, error) {
			return s.api.Post(ctx, token, pathFlightOrders, body)
		},
		Normalize: func(resp *amadeus.Response) (model.Envelope, error) {
			bookingID = createdID(resp.Body)
			return passThrough(resp)
		},
		Fallback: func() (model.Envelope, error) {
			order, err := s.generator.FlightBooking(req.FlightOffer, req.Travelers, req.Contacts)
			if err != nil {
				return model.Envelope{}, err
			}
			ref := s.registry.Remember(order)
			bookingID = ref.ID()
			return model.Warning(flighterrors.WarnDemoBooking, order), nil
		},
	})
	if err != nil {
		return model.Envelope{}, err
	}

	if bookingID != "" {
		events.Emit(ctx, s.events, s.cfg.Log, events.BookingEvent{
			Type:      events.BookingCreated,
			Resource:  events.ResourceFlight,
			BookingID: bookingID,
			Demo:      res.Degraded,
		})
	}
	return res.Value, nil
}

func (s *flightService) ResolveBooking(id string) booking.Ref {
	return s.registry.Resolve(id)
}

func (s *flightService) GetBooking(ctx context.Context, ref booking.Ref) (model.Envelope, error) {
	if ref.ID() == "" {
		return model.Envelope{}, apperrors.Validation(flighterrors.ErrMissingBookingID.Error(), nil)
	}

	if ref.IsDemo() {
		order, ok := ref.Order()
		if !ok {
			details := s.generator.FlightBookingDetails(ref.ID())
			order = &details
		}
		return model.Warning(flighterrors.WarnDemoDetails, order), nil
	}

	res, err := dispatch.Run(ctx, s.dispatcher, dispatch.Call[model.Envelope]{
		Name:    "flights.get_booking",
		Policy:  dispatch.Propagate,
		Message: flighterrors.MsgLookupFailed,
		Upstream: func(ctx context.Context, token string) (*amadeus.Response, error) {
			return s.api.Get(ctx, token, orderPath(ref.ID()), nil)
		},
		Normalize: passThrough,
	})
	if err != nil {
		return model.Envelope{}, err
	}
	return res.Value, nil
}

func (s *flightService) CancelBooking(ctx context.Context, ref booking.Ref) (model.Envelope, error) {
	if ref.ID() == "" {
		return model.Envelope{}, apperrors.Validation(flighterrors.ErrMissingBookingID.Error(), nil)
	}

	if ref.IsDemo() {
		s.registry.Forget(ref.ID())
		s.emitCancelled(ctx, ref)
		return model.Warning(flighterrors.WarnDemoCancel, nil).WithSuccessFlag(), nil
	}

	_, err := dispatch.Run(ctx, s.dispatcher, dispatch.Call[struct{}]{
		Name:    "flights.cancel_booking",
		Policy:  dispatch.Propagate,
		Message: flighterrors.MsgCancelFailed,
		Upstream: func(ctx context.Context, token string) (*amadeus.Response, error) {
			return s.api.Delete(ctx, token, orderPath(ref.ID()))
		},
		Normalize: func(*amadeus.Response) (struct{}, error) {
			return struct{}{}, nil
		},
	})
	if err != nil {
		return model.Envelope{}, err
	}

	s.emitCancelled(ctx, ref)
	return model.Envelope{Status: model.StatusSuccess, Message: flighterrors.MsgBookingCancelled}, nil
}

func (s *flightService) SeatMap(ctx context.Context, req *model.FlightOfferRequest) (model.Envelope, error) {
	if err := s.validator.ValidateOffer(req); err != nil {
		return model.Envelope{}, s.invalid("seat_map", flighterrors.ErrMissingFlightOffer, err)
	}

	body := pricingPayload("seatmap", req.FlightOffer)

	res, err := dispatch.Run(ctx, s.dispatcher, dispatch.Call[model.Envelope]{
		Name:    "flights.seat_map",
		Policy:  dispatch.FallbackOnUpstream,
		Message: flighterrors.MsgSeatMapFailed,
		Upstream: func(ctx context.Context, token string) (*amadeus.Response, error) {
			return s.api.Post(ctx, token, pathSeatMaps, body)
		},
		Normalize: passThrough,
		Fallback: func() (model.Envelope, error) {
			seatMap, err := s.generator.SeatMap(req.FlightOffer)
			if err != nil {
				return model.Envelope{}, err
			}
			return model.Warning(flighterrors.WarnDemoSeatMap, seatMap), nil
		},
	})
	if err != nil {
		return model.Envelope{}, err
	}
	return res.Value, nil
}

func (s *flightService) Deals(ctx context.Context, origin string) (model.Envelope, error) {
	origin = sanitizer.NormalizeCode(origin)
	if origin == "" {
		origin = s.cfg.DefaultDealsOrigin
	}
	departure := s.now().AddDate(0, 0, s.cfg.DealsLeadDays).Format(dateLayout)

	query := url.Values{}
	query.Set("origin", origin)
	query.Set("departureDate", departure)
	query.Set("oneWay", "true")
	query.Set("nonStop", "false")
	query.Set("viewBy", "DATE")

	res, err := dispatch.Run(ctx, s.dispatcher, dispatch.Call[model.Envelope]{
		Name:    "flights.deals",
		Policy:  dispatch.FallbackAlways,
		Message: flighterrors.MsgDealsFailed,
		Upstream: func(ctx context.Context, token string) (*amadeus.Response, error) {
			return s.api.Get(ctx, token, pathFlightDestinations, query)
		},
		Normalize: func(resp *amadeus.Response) (model.Envelope, error) {
			deals, err := normalize.FlightDeals(resp.Body, s.catalog)
			if err != nil {
				return model.Envelope{}, err
			}
			return model.Success(deals), nil
		},
		Fallback: func() (model.Envelope, error) {
			return model.Warning(flighterrors.WarnDemoDeals, s.generator.FlightDeals()), nil
		},
	})
	if err != nil {
		return model.Envelope{}, err
	}
	return res.Value, nil
}

func (s *flightService) invalid(operation string, sentinel error, cause error) error {
	s.cfg.Log.Warn("Flight request validation failed",
		"operation", operation,
		"error", cause,
	)
	return apperrors.Validation(sentinel.Error(), nil)
}

func (s *flightService) emitCancelled(ctx context.Context, ref booking.Ref) {
	events.Emit(ctx, s.events, s.cfg.Log, events.BookingEvent{
		Type:      events.BookingCancelled,
		Resource:  events.ResourceFlight,
		BookingID: ref.ID(),
		Demo:      ref.IsDemo(),
	})
}

// passThrough wraps the provider body unchanged.
func passThrough(resp *amadeus.Response) (model.Envelope, error) {
	if !json.Valid(resp.Body) {
		return model.Envelope{}, fmt.Errorf("provider returned invalid JSON (%d bytes)", len(resp.Body))
	}
	return model.Success(json.RawMessage(resp.Body)), nil
}

func pricingPayload(kind string, offer json.RawMessage) map[string]any {
	return map[string]any{
		"data": map[string]any{
			"type":         kind,
			"flightOffers": []json.RawMessage{offer},
		},
	}
}

func orderPath(id string) string {
	return pathFlightOrders + "/" + url.PathEscape(id)
}

func createdID(body []byte) string {
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return ""
	}
	return created.Data.ID
}
