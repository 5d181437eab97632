package codec

import "encoding/binary"

// Stay status values. The legacy format uses 9, not 0, as the delete
// sentinel because 0 already means a closed stay.
const (
	StayClosed  uint32 = 0
	StayOpen    uint32 = 1
	StayDeleted uint32 = 9
)

// Stay records one guest's occupancy of one room. GuestID and RoomID are
// references, not ownership.
type Stay struct {
	ID            uint32
	Status        uint32
	GuestID       uint32
	RoomID        uint32
	CheckinDate   string // "YYYY-MM-DD", 10 bytes on disk
	CheckoutDate  string // empty until checkout
	CardsIssued   uint32
	CardsReturned uint32
	UpdatedAt     uint32
}

// StayCodec encodes Stay records into 64-byte slots.
type StayCodec struct{}

// SlotSize returns the fixed on-disk size of a stay record.
func (StayCodec) SlotSize() int { return StaySlotSize }

// Encode serializes a stay into exactly one slot.
// Layout: [ID(4)][Status(4)][GuestID(4)][RoomID(4)][CheckinDate(10)][CheckoutDate(10)][CardsIssued(4)][CardsReturned(4)][UpdatedAt(4)][pad(16)]
func (StayCodec) Encode(s Stay) []byte {
	buf := make([]byte, StaySlotSize)
	binary.LittleEndian.PutUint32(buf[0:], s.ID)
	binary.LittleEndian.PutUint32(buf[4:], s.Status)
	binary.LittleEndian.PutUint32(buf[8:], s.GuestID)
	binary.LittleEndian.PutUint32(buf[12:], s.RoomID)
	fixBytes(buf[16:26], s.CheckinDate)
	fixBytes(buf[26:36], s.CheckoutDate)
	binary.LittleEndian.PutUint32(buf[36:], s.CardsIssued)
	binary.LittleEndian.PutUint32(buf[40:], s.CardsReturned)
	binary.LittleEndian.PutUint32(buf[44:], s.UpdatedAt)
	return buf
}

// Decode deserializes one stay slot.
func (StayCodec) Decode(buf []byte) (Stay, error) {
	if len(buf) < StaySlotSize {
		return Stay{}, ErrShortSlot
	}
	return Stay{
		ID:            binary.LittleEndian.Uint32(buf[0:4]),
		Status:        binary.LittleEndian.Uint32(buf[4:8]),
		GuestID:       binary.LittleEndian.Uint32(buf[8:12]),
		RoomID:        binary.LittleEndian.Uint32(buf[12:16]),
		CheckinDate:   readString(buf[16:26]),
		CheckoutDate:  readString(buf[26:36]),
		CardsIssued:   binary.LittleEndian.Uint32(buf[36:40]),
		CardsReturned: binary.LittleEndian.Uint32(buf[40:44]),
		UpdatedAt:     binary.LittleEndian.Uint32(buf[44:48]),
	}, nil
}
