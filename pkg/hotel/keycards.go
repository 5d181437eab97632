package hotel

import (
	"fmt"

	"github.com/ssargent/hoteldb/pkg/codec"
)

// keycardSerial composes a 10-digit serial from the room, guest, a
// time-derived value, and the per-card sequence number. Deterministic given
// its inputs.
func keycardSerial(roomID, guestID, ts, seq uint32) string {
	return fmt.Sprintf("%02d%02d%04d%02d", roomID%100, guestID%100, ts%10000, seq%100)
}

// AddKeycard appends a new active keycard for a room. The serial may be
// caller-supplied; Checkin passes generated ones.
func (s *Service) AddKeycard(roomID uint32, serial string) (codec.Keycard, error) {
	id, err := nextID(s.cards, func(k codec.Keycard) uint32 { return k.ID })
	if err != nil {
		return codec.Keycard{}, err
	}
	now := nowTS()
	card := codec.Keycard{
		ID:        id,
		Status:    codec.KeycardActive,
		RoomID:    roomID,
		Serial:    serial,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.cards.Append(card); err != nil {
		return codec.Keycard{}, err
	}
	return card, nil
}

// DeleteKeycard soft-deletes a single keycard.
func (s *Service) DeleteKeycard(id uint32) error {
	index, card, err := s.cards.FindFirst(func(k codec.Keycard) bool { return k.ID == id })
	if err != nil {
		return notFoundOr(err)
	}
	card.Status = codec.KeycardDeleted
	card.UpdatedAt = nowTS()
	return s.cards.WriteAt(index, card)
}

// deleteKeycardsForRoom soft-deletes every active keycard tied to a room,
// one durable write per card. Called from Checkout.
func (s *Service) deleteKeycardsForRoom(roomID uint32) error {
	type hit struct {
		index int
		card  codec.Keycard
	}
	var hits []hit
	err := s.cards.Iterate(func(i int, k codec.Keycard) bool {
		if k.RoomID == roomID && k.Status == codec.KeycardActive {
			hits = append(hits, hit{index: i, card: k})
		}
		return true
	})
	if err != nil {
		return err
	}
	for _, h := range hits {
		h.card.Status = codec.KeycardDeleted
		h.card.UpdatedAt = nowTS()
		if err := s.cards.WriteAt(h.index, h.card); err != nil {
			return err
		}
	}
	return nil
}

// Keycards returns all keycards in slot order, excluding soft-deleted ones
// unless includeDeleted is set.
func (s *Service) Keycards(includeDeleted bool) ([]codec.Keycard, error) {
	var cards []codec.Keycard
	err := s.cards.Iterate(func(_ int, k codec.Keycard) bool {
		if includeDeleted || k.Status != codec.KeycardDeleted {
			cards = append(cards, k)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// KeycardsByRoom returns the active keycards currently tied to a room.
func (s *Service) KeycardsByRoom(roomID uint32) ([]codec.Keycard, error) {
	cards, err := s.Keycards(false)
	if err != nil {
		return nil, err
	}
	var out []codec.Keycard
	for _, k := range cards {
		if k.RoomID == roomID {
			out = append(out, k)
		}
	}
	return out, nil
}
