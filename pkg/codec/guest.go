package codec

import "encoding/binary"

// Guest status values.
const (
	GuestDeleted uint32 = 0
	GuestActive  uint32 = 1
)

// Guest is a master guest record.
type Guest struct {
	ID        uint32
	Status    uint32
	FullName  string // 50 bytes on disk
	Phone     string // 15 bytes on disk
	IDNo      string // passport or national id, 20 bytes on disk
	CreatedAt uint32
	UpdatedAt uint32
}

// GuestCodec encodes Guest records into 112-byte slots.
type GuestCodec struct{}

// SlotSize returns the fixed on-disk size of a guest record.
func (GuestCodec) SlotSize() int { return GuestSlotSize }

// Encode serializes a guest into exactly one slot.
// Layout: [ID(4)][Status(4)][FullName(50)][Phone(15)][IDNo(20)][CreatedAt(4)][UpdatedAt(4)][pad(11)]
func (GuestCodec) Encode(g Guest) []byte {
	buf := make([]byte, GuestSlotSize)
	binary.LittleEndian.PutUint32(buf[0:], g.ID)
	binary.LittleEndian.PutUint32(buf[4:], g.Status)
	fixBytes(buf[8:58], g.FullName)
	fixBytes(buf[58:73], g.Phone)
	fixBytes(buf[73:93], g.IDNo)
	binary.LittleEndian.PutUint32(buf[93:], g.CreatedAt)
	binary.LittleEndian.PutUint32(buf[97:], g.UpdatedAt)
	return buf
}

// Decode deserializes one guest slot.
func (GuestCodec) Decode(buf []byte) (Guest, error) {
	if len(buf) < GuestSlotSize {
		return Guest{}, ErrShortSlot
	}
	return Guest{
		ID:        binary.LittleEndian.Uint32(buf[0:4]),
		Status:    binary.LittleEndian.Uint32(buf[4:8]),
		FullName:  readString(buf[8:58]),
		Phone:     readString(buf[58:73]),
		IDNo:      readString(buf[73:93]),
		CreatedAt: binary.LittleEndian.Uint32(buf[93:97]),
		UpdatedAt: binary.LittleEndian.Uint32(buf[97:101]),
	}, nil
}
