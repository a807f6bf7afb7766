package fallback

import (
	"strconv"

	"travelease/pkg/amadeus"
	"travelease/pkg/model"
)

const (
	demoHotelID   = "DEMO_HOTEL_1"
	demoHotelName = "Demo Hotel"
	demoChainCode = "DM"
)

// DemoOffer is one of the canned rooms of the demo hotel.
type DemoOffer struct {
	ID           string
	RoomType     string
	Description  string
	Total        string
	Base         string
	Cancellation string
}

var demoOffers = []DemoOffer{
	{
		ID:           "DEMO_OFFER_1",
		RoomType:     "Standard Double Room",
		Description:  "Comfortable standard room with a double bed, private bathroom and all essential amenities.",
		Total:        "99.00",
		Base:         "89.00",
		Cancellation: "Free cancellation up to 24 hours before check-in",
	},
	{
		ID:           "DEMO_OFFER_2",
		RoomType:     "Deluxe Room with Sea View",
		Description:  "Spacious deluxe room featuring premium amenities and a beautiful sea view from a private balcony.",
		Total:        "159.00",
		Base:         "139.00",
		Cancellation: "Free cancellation up to 48 hours before check-in",
	},
	{
		ID:           "DEMO_OFFER_3",
		RoomType:     "Executive Suite",
		Description:  "Luxury suite with separate living area, king-size bed, premium bathroom with bathtub, and exclusive access to the executive lounge.",
		Total:        "249.00",
		Base:         "219.00",
		Cancellation: "Non-refundable",
	},
}

// LookupDemoOffer resolves a demo offer id. Unknown demo ids map to the suite.
func LookupDemoOffer(id string) DemoOffer {
	for _, o := range demoOffers {
		if o.ID == id {
			return o
		}
	}
	return demoOffers[len(demoOffers)-1]
}

// HotelOffers returns the demo hotel with its three canned offers.
func (g *Generator) HotelOffers(hotelID string) []model.HotelOffer {
	if hotelID == "" {
		hotelID = demoHotelID
	}
	checkIn, checkOut := g.stayDates()

	offers := make([]model.RoomOffer, 0, len(demoOffers))
	for _, o := range demoOffers {
		offers = append(offers, model.RoomOffer{
			ID:    o.ID,
			Room:  model.RoomDetails{Type: o.RoomType, Description: o.Description},
			Price: model.RoomPrice{Total: o.Total, Currency: demoCurrency.String(), AveragePerNight: o.Total},
			Dates: model.StayDates{CheckIn: checkIn, CheckOut: checkOut},
			Policies: model.RoomPolicies{
				PaymentType:  "GUARANTEE",
				Cancellation: o.Cancellation,
			},
		})
	}

	return []model.HotelOffer{{
		Hotel: model.HotelSummary{
			ID:        hotelID,
			Name:      demoHotelName,
			ChainCode: demoChainCode,
		},
		Available: true,
		Offers:    offers,
	}}
}

// HotelOfferDetails returns the provider-shaped detail document of a demo offer.
func (g *Generator) HotelOfferDetails(id string) amadeus.HotelOfferDetails {
	o := LookupDemoOffer(id)
	checkIn, checkOut := g.stayDates()

	return amadeus.HotelOfferDetails{
		Hotel: amadeus.OfferHotel{
			Name:      demoHotelName,
			HotelID:   demoHotelID,
			ChainCode: demoChainCode,
		},
		Offers: []amadeus.HotelOffer{{
			ID:           id,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Room: &amadeus.Room{
				Type:        o.RoomType,
				Description: &amadeus.Text{Text: o.Description},
			},
			Price: &amadeus.HotelPrice{
				Total:    o.Total,
				Currency: demoCurrency.String(),
				Base:     o.Base,
			},
			Policies: &amadeus.OfferPolicies{
				PaymentType: "GUARANTEE",
				Cancellation: &amadeus.Cancellation{
					Description: &amadeus.Text{Text: o.Cancellation},
				},
			},
		}},
	}
}

// HotelBooking confirms a demo offer without contacting the provider.
func (g *Generator) HotelBooking(req model.HotelBookingRequest) model.HotelBookingConfirmation {
	o := LookupDemoOffer(req.OfferID)
	checkIn, checkOut := g.stayDates()

	guests := make([]model.BookedGuest, 0, len(req.Guests))
	for _, guest := range req.Guests {
		guests = append(guests, model.BookedGuest{
			Name: model.GuestName{
				Title:     guest.Title,
				FirstName: guest.FirstName,
				LastName:  guest.LastName,
			},
			Contact: model.GuestContact{
				Phone: guest.Phone,
				Email: guest.Email,
			},
		})
	}

	var method string
	if req.Payment != nil {
		method = req.Payment.Method
	}

	return model.HotelBookingConfirmation{
		ID:                         HotelBookingPrefix + strconv.Itoa(g.intN(10000)),
		ProviderConfirmationStatus: "CONFIRMED",
		AssociatedRecords: []model.AssociatedRecord{{
			Reference:        "DEMO" + strconv.Itoa(g.intN(1000000)),
			OriginSystemCode: "GDS",
		}},
		Hotel: model.BookedHotel{
			Name:    demoHotelName,
			HotelID: demoHotelID,
			Address: model.HotelAddress{
				Lines:       []string{"123 Demo Street"},
				PostalCode:  "12345",
				CityName:    "Demo City",
				CountryCode: "ES",
			},
		},
		RoomDetails: model.BookedRoom{
			Type:         o.RoomType,
			Description:  "Room description",
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Guests:       len(req.Guests),
		},
		Guests: guests,
		Payment: model.BookedPayment{
			Method: method,
			Card: model.MaskedCard{
				Type:   req.Payment.VendorCode(),
				Number: "XXXX-XXXX-XXXX-" + strconv.Itoa(g.intN(10000)),
			},
			Amount:   o.Total,
			Currency: demoCurrency.String(),
		},
	}
}
