package codec

import "encoding/binary"

// Keycard status values.
const (
	KeycardDeleted uint32 = 0
	KeycardActive  uint32 = 1
)

// Keycard is a physical key card issued for a room during a stay. Cards are
// soft-deleted in bulk when their room is checked out.
type Keycard struct {
	ID        uint32
	Status    uint32
	RoomID    uint32
	Serial    string // 10 bytes on disk
	CreatedAt uint32
	UpdatedAt uint32
}

// KeycardCodec encodes Keycard records into 32-byte slots.
type KeycardCodec struct{}

// SlotSize returns the fixed on-disk size of a keycard record.
func (KeycardCodec) SlotSize() int { return KeycardSlotSize }

// Encode serializes a keycard into exactly one slot.
// Layout: [ID(4)][Status(4)][RoomID(4)][Serial(10)][CreatedAt(4)][UpdatedAt(4)][pad(2)]
func (KeycardCodec) Encode(k Keycard) []byte {
	buf := make([]byte, KeycardSlotSize)
	binary.LittleEndian.PutUint32(buf[0:], k.ID)
	binary.LittleEndian.PutUint32(buf[4:], k.Status)
	binary.LittleEndian.PutUint32(buf[8:], k.RoomID)
	fixBytes(buf[12:22], k.Serial)
	binary.LittleEndian.PutUint32(buf[22:], k.CreatedAt)
	binary.LittleEndian.PutUint32(buf[26:], k.UpdatedAt)
	return buf
}

// Decode deserializes one keycard slot.
func (KeycardCodec) Decode(buf []byte) (Keycard, error) {
	if len(buf) < KeycardSlotSize {
		return Keycard{}, ErrShortSlot
	}
	return Keycard{
		ID:        binary.LittleEndian.Uint32(buf[0:4]),
		Status:    binary.LittleEndian.Uint32(buf[4:8]),
		RoomID:    binary.LittleEndian.Uint32(buf[8:12]),
		Serial:    readString(buf[12:22]),
		CreatedAt: binary.LittleEndian.Uint32(buf[22:26]),
		UpdatedAt: binary.LittleEndian.Uint32(buf[26:30]),
	}, nil
}
