package codec

import (
	"errors"
	"strings"
)

// ErrShortSlot is returned when a decode buffer is smaller than the record's
// declared slot size.
var ErrShortSlot = errors.New("codec: buffer shorter than slot size")

// Slot sizes for each entity kind. These are part of the on-disk contract
// and must not change: existing data files address records at index * size.
const (
	RoomSlotSize    = 64
	GuestSlotSize   = 112
	StaySlotSize    = 64
	KeycardSlotSize = 32
)

// fixBytes writes s into dst as UTF-8, truncated blindly at the byte
// boundary if it exceeds the field width. Invalid sequences are dropped on
// the way in. dst is assumed zeroed, so the remainder stays zero-padded.
func fixBytes(dst []byte, s string) {
	b := []byte(strings.ToValidUTF8(s, ""))
	copy(dst, b)
}

// readString strips trailing zero bytes and decodes the remainder as UTF-8,
// dropping invalid sequences rather than failing. Blind truncation on encode
// can split a multi-byte sequence; the torn tail is discarded here.
func readString(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return strings.ToValidUTF8(string(b[:end]), "")
}
