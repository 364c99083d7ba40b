package checkout_quote

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
	checkoutQuote "github.com/staysuite/pricing-service/internal/usecase/checkout_quote"
)

// RoomRequest HTTP model комнаты заказа
type RoomRequest struct {
	RoomID        int64    `json:"roomId"`
	Adults        int      `json:"adults"`
	Children      int      `json:"children"`
	ChildrenAges  []int    `json:"childrenAges,omitempty"`
	AdjustedTotal *float64 `json:"adjustedTotal,omitempty"`
}

// AddonRequest HTTP model дополнительной услуги заказа
type AddonRequest struct {
	AddonID  int64 `json:"addonId"`
	Quantity int   `json:"quantity"`
}

// CheckoutQuoteRequest HTTP request model
type CheckoutQuoteRequest struct {
	TenantID       int64          `json:"tenantId"`
	PropertyID     int64          `json:"propertyId"`
	CheckIn        string         `json:"checkIn"`  // "2026-07-10"
	CheckOut       string         `json:"checkOut"` // "2026-07-13"
	Rooms          []RoomRequest  `json:"rooms"`
	Addons         []AddonRequest `json:"addons,omitempty"`
	DiscountAmount float64        `json:"discountAmount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case (с парсингом дат)
func (r *CheckoutQuoteRequest) ToUseCaseRequest() (*checkoutQuote.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	rooms := make([]checkoutQuote.RoomRequest, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, checkoutQuote.RoomRequest{
			RoomID:        room.RoomID,
			Adults:        room.Adults,
			Children:      room.Children,
			ChildrenAges:  room.ChildrenAges,
			AdjustedTotal: room.AdjustedTotal,
		})
	}

	addons := make([]checkoutQuote.AddonRequest, 0, len(r.Addons))
	for _, addon := range r.Addons {
		addons = append(addons, checkoutQuote.AddonRequest{
			AddonID:  addon.AddonID,
			Quantity: addon.Quantity,
		})
	}

	return &checkoutQuote.Request{
		TenantID:       r.TenantID,
		PropertyID:     r.PropertyID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Rooms:          rooms,
		Addons:         addons,
		DiscountAmount: r.DiscountAmount,
	}, nil
}

// NightResponse HTTP model строки расчета за одну ночь
type NightResponse struct {
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
	RateName *string `json:"rateName,omitempty"`
}

// RoomQuoteResponse HTTP model расчета по комнате
type RoomQuoteResponse struct {
	RoomID        int64           `json:"roomId"`
	RoomName      string          `json:"roomName"`
	Nights        []NightResponse `json:"nights"`
	Subtotal      float64         `json:"subtotal"`
	AdjustedTotal *float64        `json:"adjustedTotal,omitempty"`
	Total         float64         `json:"total"`
	Source        string          `json:"source"`
}

// AddonLineResponse HTTP model строки дополнительной услуги
type AddonLineResponse struct {
	AddonID     int64   `json:"addonId"`
	Name        string  `json:"name"`
	PricingType string  `json:"pricingType"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Charge      float64 `json:"charge"`
}

// CheckoutQuoteResponse HTTP response model
type CheckoutQuoteResponse struct {
	Rooms  []RoomQuoteResponse `json:"rooms"`
	Addons []AddonLineResponse `json:"addons"`

	RoomsSubtotal  float64 `json:"roomsSubtotal"`
	AddonsSubtotal float64 `json:"addonsSubtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	GrandTotal     float64 `json:"grandTotal"`
	Currency       string  `json:"currency"`
	NightCount     int     `json:"nightCount"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP response
func FromUseCaseResponse(result *checkoutQuote.Response) *CheckoutQuoteResponse {
	rooms := make([]RoomQuoteResponse, 0, len(result.Rooms))
	for _, room := range result.Rooms {
		nights := make([]NightResponse, 0, len(room.Nights))
		for _, night := range room.Nights {
			nights = append(nights, NightResponse{
				Date:     night.Date.Format(domain.DateFormat),
				Price:    night.Price,
				RateName: night.RateName,
			})
		}

		rooms = append(rooms, RoomQuoteResponse{
			RoomID:        room.RoomID,
			RoomName:      room.RoomName,
			Nights:        nights,
			Subtotal:      room.Subtotal,
			AdjustedTotal: room.AdjustedTotal,
			Total:         room.Total,
			Source:        room.Source,
		})
	}

	addons := make([]AddonLineResponse, 0, len(result.Addons))
	for _, addon := range result.Addons {
		addons = append(addons, AddonLineResponse{
			AddonID:     addon.AddonID,
			Name:        addon.Name,
			PricingType: addon.PricingType,
			UnitPrice:   addon.UnitPrice,
			Quantity:    addon.Quantity,
			Charge:      addon.Charge,
		})
	}

	return &CheckoutQuoteResponse{
		Rooms:          rooms,
		Addons:         addons,
		RoomsSubtotal:  result.RoomsSubtotal,
		AddonsSubtotal: result.AddonsSubtotal,
		DiscountAmount: result.DiscountAmount,
		GrandTotal:     result.GrandTotal,
		Currency:       result.Currency,
		NightCount:     result.NightCount,
	}
}
