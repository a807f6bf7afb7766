package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"travelease/internal/booking"
	"travelease/internal/dispatch"
	"travelease/internal/events"
	"travelease/internal/fallback"
	hotelerrors "travelease/internal/hotels/errors"
	"travelease/internal/hotels/validator"
	"travelease/internal/normalize"
	"travelease/pkg/amadeus"
	"travelease/pkg/config"
	apperrors "travelease/pkg/errors"
	"travelease/pkg/model"
	"travelease/pkg/sanitizer"
)

const (
	pathHotelsByCity = "/v1/reference-data/locations/hotels/by-city"
	pathHotelOffers  = "/v3/shopping/hotel-offers"
	pathHotelOrders  = "/v1/booking/hotel-orders"

	defaultAdults    = "1"
	defaultDemoOffer = "DEMO_OFFER_1"
	dateLayout       = "2006-01-02"
)

type HotelService interface {
	Search(ctx context.Context, req *model.HotelSearchRequest) (model.Envelope, error)
	Offers(ctx context.Context, req *model.HotelOffersRequest) (model.Envelope, error)
	OfferDetails(ctx context.Context, ref booking.Ref) (model.Envelope, error)
	Book(ctx context.Context, req *model.HotelBookingRequest) (model.Envelope, error)
}

type hotelService struct {
	api        amadeus.API
	dispatcher *dispatch.Dispatcher
	generator  *fallback.Generator
	validator  *validator.HotelValidator
	events     events.Publisher
	cfg        *config.Config
	now        func() time.Time
}

func NewHotelService(
	api amadeus.API,
	dispatcher *dispatch.Dispatcher,
	generator *fallback.Generator,
	validator *validator.HotelValidator,
	publisher events.Publisher,
	cfg *config.Config,
) HotelService {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	return &hotelService{
		api:        api,
		dispatcher: dispatcher,
		generator:  generator,
		validator:  validator,
		events:     publisher,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *hotelService) Search(ctx context.Context, req *model.HotelSearchRequest) (model.Envelope, error) {
	if err := s.validator.ValidateSearch(req); err != nil {
		return model.Envelope{}, s.invalid("search", hotelerrors.ErrMissingCityCode, err)
	}

	query := url.Values{}
	query.Set("cityCode", sanitizer.NormalizeCode(req.CityCode))
	if radius := model.QueryValue(req.Radius); radius != "" {
		query.Set("radius", radius)
	}
	if req.RadiusUnit != "" {
		query.Set("radiusUnit", sanitizer.NormalizeCode(req.RadiusUnit))
	}
	if req.HotelSource != "" {
		query.Set("hotelSource", sanitizer.NormalizeCode(req.HotelSource))
	}
	addAll(query, "amenities", req.Amenities)
	addAll(query, "ratings", req.Ratings)
	addAll(query, "chainCodes", req.ChainCodes)

	res, err := dispatch.Run(ctx, s.dispatcher, dispatch.Call[model.Envelope]{
		Name:    "hotels.search",
		Policy:  dispatch.Propagate,
		Message: hotelerrors.MsgSearchFailed,
		Upstream: func(ctx context.Context, token string) (*amadeus.Response, error) {
			return s.api.Get(ctx, token, pathHotelsByCity, query)
		},
		Normalize: func(resp *amadeus.Response) (model.Envelope, error) {
			return normalize.Hotels(resp.Body)
		},
	})
	if err != nil {
		return model.Envelope{}, err
	}
	return res.Value, nil
}

func (s *hotelService) Offers(ctx context.Context, req *model.HotelOffersRequest) (model.Envelope, error) {
	if err := s.validator.ValidateOffers(req); err != nil {
		return model.Envelope{}, s.invalid("offers", hotelerrors.ErrMissingHotelIDs, err)
	}

	query := url.Values{}
	for _, id := range req.HotelIDs {
		query.Add("hotelIds", id)
	}
	query.Set("adults", orDefault(model.QueryValue(req.Adults), defaultAdults))
	query.Set("checkInDate", orDefault(req.CheckInDate, s.now().Format(dateLayout)))
	if req.CheckOutDate != "" {
		query.Set("checkOutDate", req.CheckOutDate)
	}
	if rooms := model.QueryValue(req.RoomQuantity); rooms != "" {
		query.Set("roomQuantity", rooms)
	}
	if req.PriceRange != "" {
		query.Set("priceRange", req.PriceRange)
	}
	if req.Currency != "" {
		query.Set("currency", req.Currency)
	}
	if req.PaymentPolicy != "" {
		query.Set("paymentPolicy", req.PaymentPolicy)
	}
	if req.BoardType != "" {
		query.Set("boardType", req.BoardType)
	}
	if req.BestRateOnly != nil {
		query.Set("bestRateOnly", strconv.FormatBool(*req.BestRateOnly))
	}

	firstHotel := req.HotelIDs[0]
	res, err := dispatch.Run(ctx, s.dispatcher, dispatch.Call[model.Envelope]{
		Name:    "hotels.offers",
		Policy:  dispatch.FallbackAlways,
		Message: hotelerrors.MsgOffersFailed,
		Upstream: func(ctx context.Context, token string) (*amadeus.Response, error) {
			return s.api.Get(ctx, token, pathHotelOffers, query)
		},
		Normalize: func(resp *amadeus.Response) (model.Envelope, error) {
			return normalize.HotelOffers(resp.Body)
		},
		Fallback: func() (model.Envelope, error) {
			offers := s.generator.HotelOffers(firstHotel)
			return model.Warning(hotelerrors.WarnDemoData, offers).WithCount(len(offers)), nil
		},
	})
	if err != nil {
		return model.Envelope{}, err
	}

	if res.Degraded && failedBeforeProvider(res.Cause) {
		return res.Value.WithMessage(hotelerrors.WarnAPIError), nil
	}
	return res.Value, nil
}

func (s *hotelService) OfferDetails(ctx context.Context, ref booking.Ref) (model.Envelope, error) {
	if ref.ID() == "" {
		return model.Envelope{}, apperrors.Validation(hotelerrors.ErrMissingOfferID.Error(), nil)
	}

	if ref.IsDemo() {
		return model.Warning(hotelerrors.WarnDemoData, s.generator.HotelOfferDetails(ref.ID())), nil
	}

	res, err := dispatch.Run(ctx, s.dispatcher, dispatch.Call[model.Envelope]{
		Name:    "hotels.offer_details",
		Policy:  dispatch.FallbackAlways,
		Message: hotelerrors.MsgOfferDetailsFailed,
		Upstream: func(ctx context.Context, token string) (*amadeus.Response, error) {
			return s.api.Get(ctx, token, pathHotelOffers+"/"+url.PathEscape(ref.ID()), nil)
		},
		Normalize: passThrough,
		Fallback: func() (model.Envelope, error) {
			return model.Warning(hotelerrors.WarnAPIError, s.generator.HotelOfferDetails(defaultDemoOffer)), nil
		},
	})
	if err != nil {
		return model.Envelope{}, err
	}
	return res.Value, nil
}

func (s *hotelService) Book(ctx context.Context, req *model.HotelBookingRequest) (model.Envelope, error) {
	req.OfferID = strings.TrimSpace(req.OfferID)
	if err := s.validator.ValidateBooking(req); err != nil {
		return model.Envelope{}, s.invalid("book", hotelerrors.ErrMissingBookingFields, err)
	}

	for i := range req.Guests {
		req.Guests[i].Phone = sanitizer.NormalizePhone(req.Guests[i].Phone)
		req.Guests[i].Email = sanitizer.NormalizeEmail(req.Guests[i].Email)
	}

	ref := booking.ParseOfferRef(req.OfferID)
	if ref.IsDemo() {
		confirmation := s.generator.HotelBooking(*req)
		s.emitCreated(ctx, confirmation.ID, true)
		return model.Success(confirmation).WithMessage(hotelerrors.MsgDemoBooking), nil
	}

	body := hotelOrderPayload(req)

	res, err := dispatch.Run(ctx, s.dispatcher, dispatch.Call[model.Envelope]{
		Name:    "hotels.book",
		Policy:  dispatch.Propagate,
		Message: hotelerrors.MsgBookingFailed,
		Upstream: func(ctx context.Context, token string) (*amadeus.Response, error) {
			return s.api.Post(ctx, token, pathHotelOrders, body)
		},
		Normalize: passThrough,
	})
	if err != nil {
		return model.Envelope{}, err
	}

	if id := createdID(res.Value.Data); id != "" {
		s.emitCreated(ctx, id, false)
	}
	return res.Value, nil
}

func hotelOrderPayload(req *model.HotelBookingRequest) map[string]any {
	references := make([]map[string]string, 0, len(req.Guests))
	for i, guest := range req.Guests {
		tid := model.QueryValue(guest.TID)
		if tid == "" {
			tid = strconv.Itoa(i + 1)
		}
		references = append(references, map[string]string{"guestReference": tid})
	}

	agentEmail := ""
	if len(req.Guests) > 0 {
		agentEmail = req.Guests[0].Email
	}

	return map[string]any{
		"data": map[string]any{
			"type":   "hotel-order",
			"guests": req.Guests,
			"travelAgent": map[string]any{
				"contact": map[string]string{"email": agentEmail},
			},
			"roomAssociations": []map[string]any{{
				"guestReferences": references,
				"hotelOfferId":    req.OfferID,
			}},
			"payment": req.Payment,
		},
	}
}

func (s *hotelService) invalid(operation string, sentinel error, cause error) error {
	s.cfg.Log.Warn("Hotel request validation failed",
		"operation", operation,
		"error", cause,
	)
	return apperrors.Validation(sentinel.Error(), nil)
}

func (s *hotelService) emitCreated(ctx context.Context, id string, demo bool) {
	events.Emit(ctx, s.events, s.cfg.Log, events.BookingEvent{
		Type:      events.BookingCreated,
		Resource:  events.ResourceHotel,
		BookingID: id,
		Demo:      demo,
	})
}

// failedBeforeProvider reports whether a masked failure happened before the
// provider answered the resource call.
func failedBeforeProvider(cause error) bool {
	var stageErr *dispatch.StageError
	return errors.As(cause, &stageErr) && stageErr.Stage == dispatch.StageToken
}

func passThrough(resp *amadeus.Response) (model.Envelope, error) {
	if !json.Valid(resp.Body) {
		return model.Envelope{}, fmt.Errorf("provider returned invalid JSON (%d bytes)", len(resp.Body))
	}
	return model.Success(json.RawMessage(resp.Body)), nil
}

func createdID(data any) string {
	raw, ok := data.(json.RawMessage)
	if !ok {
		return ""
	}
	var created struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &created); err == nil && len(created.Data) > 0 {
		return created.Data[0].ID
	}
	var single struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &single); err == nil {
		return single.Data.ID
	}
	return ""
}

// addAll forwards every non-blank value in the order given.
func addAll(query url.Values, key string, values []string) {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			query.Add(key, v)
		}
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
