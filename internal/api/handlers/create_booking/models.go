package create_booking

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
	createBooking "github.com/staysuite/pricing-service/internal/usecase/create_booking"
)

// RoomRequest HTTP model комнаты бронирования
type RoomRequest struct {
	RoomID        int64    `json:"roomId"`
	Adults        int      `json:"adults"`
	Children      int      `json:"children"`
	ChildrenAges  []int    `json:"childrenAges,omitempty"`
	AdjustedTotal *float64 `json:"adjustedTotal,omitempty"`
}

// AddonRequest HTTP model дополнительной услуги бронирования
type AddonRequest struct {
	AddonID  int64 `json:"addonId"`
	Quantity int   `json:"quantity"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TenantID       int64          `json:"tenantId"`
	PropertyID     int64          `json:"propertyId"`
	GuestEmail     string         `json:"guestEmail"`
	CheckIn        string         `json:"checkIn"`  // "2026-07-10"
	CheckOut       string         `json:"checkOut"` // "2026-07-13"
	Rooms          []RoomRequest  `json:"rooms"`
	Addons         []AddonRequest `json:"addons,omitempty"`
	DiscountAmount float64        `json:"discountAmount,omitempty"`
	ClientTotal    float64        `json:"clientTotal"`
	Notes          *string        `json:"notes,omitempty"`
}

// BookingRoomResponse HTTP model снимка комнаты
type BookingRoomResponse struct {
	ID            int64    `json:"id"`
	RoomID        int64    `json:"roomId"`
	RoomName      string   `json:"roomName"`
	Adults        int      `json:"adults"`
	Children      int      `json:"children"`
	ChildrenAges  []int64  `json:"childrenAges"`
	Subtotal      float64  `json:"subtotal"`
	AdjustedTotal *float64 `json:"adjustedTotal,omitempty"`
	Total         float64  `json:"total"`
}

// BookingAddonResponse HTTP model снимка дополнительной услуги
type BookingAddonResponse struct {
	ID          int64   `json:"id"`
	AddonID     int64   `json:"addonId"`
	Name        string  `json:"name"`
	PricingType string  `json:"pricingType"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Charge      float64 `json:"charge"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	TenantID   int64  `json:"tenantId"`
	PropertyID int64  `json:"propertyId"`
	GuestEmail string `json:"guestEmail"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	NightCount int    `json:"nightCount"`
	Status     string `json:"status"`

	RoomsSubtotal  float64 `json:"roomsSubtotal"`
	AddonsSubtotal float64 `json:"addonsSubtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	GrandTotal     float64 `json:"grandTotal"`
	Currency       string  `json:"currency"`
	Notes          *string `json:"notes,omitempty"`

	Rooms  []BookingRoomResponse  `json:"rooms"`
	Addons []BookingAddonResponse `json:"addons"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим даты
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	rooms := make([]createBooking.RoomRequest, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, createBooking.RoomRequest{
			RoomID:        room.RoomID,
			Adults:        room.Adults,
			Children:      room.Children,
			ChildrenAges:  room.ChildrenAges,
			AdjustedTotal: room.AdjustedTotal,
		})
	}

	addons := make([]createBooking.AddonRequest, 0, len(r.Addons))
	for _, addon := range r.Addons {
		addons = append(addons, createBooking.AddonRequest{
			AddonID:  addon.AddonID,
			Quantity: addon.Quantity,
		})
	}

	return &createBooking.Request{
		UserID:         userID,
		TenantID:       r.TenantID,
		PropertyID:     r.PropertyID,
		GuestEmail:     r.GuestEmail,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Rooms:          rooms,
		Addons:         addons,
		DiscountAmount: r.DiscountAmount,
		ClientTotal:    r.ClientTotal,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	rooms := make([]BookingRoomResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		ages := room.ChildrenAges
		if ages == nil {
			ages = []int64{}
		}

		rooms = append(rooms, BookingRoomResponse{
			ID:            room.ID,
			RoomID:        room.RoomID,
			RoomName:      room.RoomName,
			Adults:        room.Adults,
			Children:      room.Children,
			ChildrenAges:  ages,
			Subtotal:      room.Subtotal,
			AdjustedTotal: room.AdjustedTotal,
			Total:         room.Total(),
		})
	}

	addons := make([]BookingAddonResponse, 0, len(resp.Addons))
	for _, addon := range resp.Addons {
		addons = append(addons, BookingAddonResponse{
			ID:          addon.ID,
			AddonID:     addon.AddonID,
			Name:        addon.Name,
			PricingType: string(addon.PricingType),
			UnitPrice:   addon.UnitPrice,
			Quantity:    addon.Quantity,
			Charge:      addon.Charge,
		})
	}

	nightCount := int(domain.DateOnly(resp.CheckOut).Sub(domain.DateOnly(resp.CheckIn)).Hours() / 24)

	return &BookingResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		TenantID:       resp.TenantID,
		PropertyID:     resp.PropertyID,
		GuestEmail:     resp.GuestEmail,
		CheckIn:        resp.CheckIn.Format(domain.DateFormat),
		CheckOut:       resp.CheckOut.Format(domain.DateFormat),
		NightCount:     nightCount,
		Status:         resp.Status,
		RoomsSubtotal:  resp.RoomsSubtotal,
		AddonsSubtotal: resp.AddonsSubtotal,
		DiscountAmount: resp.DiscountAmount,
		GrandTotal:     resp.GrandTotal,
		Currency:       resp.Currency,
		Notes:          resp.Notes,
		Rooms:          rooms,
		Addons:         addons,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
