package models

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
)

// Response модели

// BookingRoomResponse снимок комнаты в составе бронирования
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

// BookingAddonResponse снимок дополнительной услуги в составе бронирования
type BookingAddonResponse struct {
	ID          int64   `json:"id"`
	AddonID     int64   `json:"addonId"`
	Name        string  `json:"name"`
	PricingType string  `json:"pricingType"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Charge      float64 `json:"charge"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64  `json:"id"`
	TenantID   int64  `json:"tenantId"`
	PropertyID int64  `json:"propertyId"`
	UserID     int64  `json:"userId"`
	GuestEmail string `json:"guestEmail"`
	CheckIn    string `json:"checkIn"`  // "2026-07-10"
	CheckOut   string `json:"checkOut"` // "2026-07-13"
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

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:             b.ID,
		TenantID:       b.TenantID,
		PropertyID:     b.PropertyID,
		UserID:         b.UserID,
		GuestEmail:     b.GuestEmail,
		CheckIn:        b.CheckIn.Format(domain.DateFormat),
		CheckOut:       b.CheckOut.Format(domain.DateFormat),
		NightCount:     b.NightCount(),
		Status:         string(b.Status),
		RoomsSubtotal:  b.RoomsSubtotal,
		AddonsSubtotal: b.AddonsSubtotal,
		DiscountAmount: b.DiscountAmount,
		GrandTotal:     b.GrandTotal,
		Currency:       b.Currency,
		Notes:          b.Notes,
		Rooms:          make([]BookingRoomResponse, 0, len(b.Rooms)),
		Addons:         make([]BookingAddonResponse, 0, len(b.Addons)),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}

	for _, room := range b.Rooms {
		resp.Rooms = append(resp.Rooms, FromDomainBookingRoom(&room))
	}
	for _, addon := range b.Addons {
		resp.Addons = append(resp.Addons, FromDomainBookingAddon(&addon))
	}

	return resp
}

// FromDomainBookingRoom конвертирует снимок комнаты в DTO
func FromDomainBookingRoom(room *domain.BookingRoom) BookingRoomResponse {
	ages := room.ChildrenAges
	if ages == nil {
		ages = []int64{}
	}

	return BookingRoomResponse{
		ID:            room.ID,
		RoomID:        room.RoomID,
		RoomName:      room.RoomName,
		Adults:        room.Adults,
		Children:      room.Children,
		ChildrenAges:  ages,
		Subtotal:      room.Subtotal,
		AdjustedTotal: room.AdjustedTotal,
		Total:         room.Total(),
	}
}

// FromDomainBookingAddon конвертирует снимок дополнительной услуги в DTO
func FromDomainBookingAddon(addon *domain.BookingAddon) BookingAddonResponse {
	return BookingAddonResponse{
		ID:          addon.ID,
		AddonID:     addon.AddonID,
		Name:        addon.Name,
		PricingType: string(addon.PricingType),
		UnitPrice:   addon.UnitPrice,
		Quantity:    addon.Quantity,
		Charge:      addon.Charge,
	}
}
