package api

import (
	"github.com/ssargent/hoteldb/pkg/codec"
)

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	Port   int    // Port to listen on
	Bind   string // Bind address
	APIKey string // API key expected in X-API-Key
}

// APIResponse is the standard JSON envelope for all endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RoomResponse is the JSON projection of a room record.
type RoomResponse struct {
	ID         uint32 `json:"id"`
	Status     uint32 `json:"status"`
	StatusText string `json:"status_text"`
	Type       string `json:"type"`
	Floor      uint32 `json:"floor"`
	Capacity   uint32 `json:"capacity"`
	MaxCards   uint32 `json:"max_cards"`
	CreatedAt  uint32 `json:"created_at"`
	UpdatedAt  uint32 `json:"updated_at"`
}

func toRoomResponse(r codec.Room) RoomResponse {
	return RoomResponse{
		ID:         r.ID,
		Status:     r.Status,
		StatusText: r.StatusText(),
		Type:       r.Type,
		Floor:      r.Floor,
		Capacity:   r.Capacity,
		MaxCards:   r.MaxCards,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// GuestResponse is the JSON projection of a guest record.
type GuestResponse struct {
	ID        uint32 `json:"id"`
	Status    uint32 `json:"status"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	IDNo      string `json:"id_no"`
	CreatedAt uint32 `json:"created_at"`
	UpdatedAt uint32 `json:"updated_at"`
}

func toGuestResponse(g codec.Guest) GuestResponse {
	return GuestResponse{
		ID:        g.ID,
		Status:    g.Status,
		FullName:  g.FullName,
		Phone:     g.Phone,
		IDNo:      g.IDNo,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// StayResponse is the JSON projection of a stay record.
type StayResponse struct {
	ID            uint32 `json:"id"`
	Status        uint32 `json:"status"`
	GuestID       uint32 `json:"guest_id"`
	RoomID        uint32 `json:"room_id"`
	CheckinDate   string `json:"checkin_date"`
	CheckoutDate  string `json:"checkout_date,omitempty"`
	CardsIssued   uint32 `json:"cards_issued"`
	CardsReturned uint32 `json:"cards_returned"`
	UpdatedAt     uint32 `json:"updated_at"`
}

func toStayResponse(s codec.Stay) StayResponse {
	return StayResponse{
		ID:            s.ID,
		Status:        s.Status,
		GuestID:       s.GuestID,
		RoomID:        s.RoomID,
		CheckinDate:   s.CheckinDate,
		CheckoutDate:  s.CheckoutDate,
		CardsIssued:   s.CardsIssued,
		CardsReturned: s.CardsReturned,
		UpdatedAt:     s.UpdatedAt,
	}
}

// KeycardResponse is the JSON projection of a keycard record.
type KeycardResponse struct {
	ID        uint32 `json:"id"`
	Status    uint32 `json:"status"`
	RoomID    uint32 `json:"room_id"`
	Serial    string `json:"serial"`
	CreatedAt uint32 `json:"created_at"`
	UpdatedAt uint32 `json:"updated_at"`
}

func toKeycardResponse(k codec.Keycard) KeycardResponse {
	return KeycardResponse{
		ID:        k.ID,
		Status:    k.Status,
		RoomID:    k.RoomID,
		Serial:    k.Serial,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}

// CreateRoomRequest is the body of POST /rooms.
type CreateRoomRequest struct {
	Type     string `json:"type"`
	Floor    uint32 `json:"floor"`
	Capacity uint32 `json:"capacity"`
	MaxCards uint32 `json:"max_cards"`
}

// UpdateRoomRequest is the body of PATCH /rooms/{id}; absent fields are left
// untouched.
type UpdateRoomRequest struct {
	Type     *string `json:"type"`
	Floor    *uint32 `json:"floor"`
	Capacity *uint32 `json:"capacity"`
	MaxCards *uint32 `json:"max_cards"`
}

// CreateGuestRequest is the body of POST /guests.
type CreateGuestRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	IDNo     string `json:"id_no"`
}

// UpdateGuestRequest is the body of PATCH /guests/{id}.
type UpdateGuestRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	IDNo     *string `json:"id_no"`
}

// CheckinRequest is the body of POST /checkin.
type CheckinRequest struct {
	GuestID uint32 `json:"guest_id"`
	RoomID  uint32 `json:"room_id"`
	Date    string `json:"date"`
	Cards   uint32 `json:"cards"`
}

// CheckoutRequest is the body of POST /stays/{id}/checkout.
type CheckoutRequest struct {
	Date string `json:"date"`
}
