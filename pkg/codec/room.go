package codec

import "encoding/binary"

// Room status values. Zero is the soft-delete sentinel; a deleted room keeps
// its slot forever.
const (
	RoomDeleted  uint32 = 0
	RoomVacant   uint32 = 1
	RoomOccupied uint32 = 2
)

// Room is a master room record.
type Room struct {
	ID        uint32
	Status    uint32
	Type      string // room type text, 20 bytes on disk
	Floor     uint32
	Capacity  uint32
	MaxCards  uint32 // upper bound on keycards issued per stay
	CreatedAt uint32
	UpdatedAt uint32
}

// RoomCodec encodes Room records into 64-byte slots.
type RoomCodec struct{}

// SlotSize returns the fixed on-disk size of a room record.
func (RoomCodec) SlotSize() int { return RoomSlotSize }

// Encode serializes a room into exactly one slot.
// Layout: [ID(4)][Status(4)][Type(20)][Floor(4)][Capacity(4)][MaxCards(4)][CreatedAt(4)][UpdatedAt(4)][pad(16)]
func (RoomCodec) Encode(r Room) []byte {
	buf := make([]byte, RoomSlotSize)
	binary.LittleEndian.PutUint32(buf[0:], r.ID)
	binary.LittleEndian.PutUint32(buf[4:], r.Status)
	fixBytes(buf[8:28], r.Type)
	binary.LittleEndian.PutUint32(buf[28:], r.Floor)
	binary.LittleEndian.PutUint32(buf[32:], r.Capacity)
	binary.LittleEndian.PutUint32(buf[36:], r.MaxCards)
	binary.LittleEndian.PutUint32(buf[40:], r.CreatedAt)
	binary.LittleEndian.PutUint32(buf[44:], r.UpdatedAt)
	return buf
}

// Decode deserializes one room slot.
func (RoomCodec) Decode(buf []byte) (Room, error) {
	if len(buf) < RoomSlotSize {
		return Room{}, ErrShortSlot
	}
	return Room{
		ID:        binary.LittleEndian.Uint32(buf[0:4]),
		Status:    binary.LittleEndian.Uint32(buf[4:8]),
		Type:      readString(buf[8:28]),
		Floor:     binary.LittleEndian.Uint32(buf[28:32]),
		Capacity:  binary.LittleEndian.Uint32(buf[32:36]),
		MaxCards:  binary.LittleEndian.Uint32(buf[36:40]),
		CreatedAt: binary.LittleEndian.Uint32(buf[40:44]),
		UpdatedAt: binary.LittleEndian.Uint32(buf[44:48]),
	}, nil
}

// StatusText renders the room status for listings and reports.
func (r Room) StatusText() string {
	switch r.Status {
	case RoomOccupied:
		return "Occupied"
	case RoomVacant:
		return "Active"
	default:
		return "Deleted"
	}
}
