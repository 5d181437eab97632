package hotel

import "github.com/ssargent/hoteldb/pkg/codec"

// Checkin opens a stay for guestID in roomID and issues cardsToIssue
// keycards. It refuses (ErrNotFound, no writes) unless the room exists and
// is vacant, the guest exists and is active, and cardsToIssue is within the
// room's card limit.
//
// On success the writes happen in order: append the stay, append one keycard
// per issued card, flip the room to occupied. Each write is independently
// durable; there is no transaction around the sequence.
func (s *Service) Checkin(guestID, roomID uint32, date string, cardsToIssue uint32) (codec.Stay, error) {
	roomIndex, room, err := s.rooms.FindFirst(func(r codec.Room) bool {
		return r.ID == roomID && (r.Status == codec.RoomVacant || r.Status == codec.RoomOccupied)
	})
	if err != nil {
		return codec.Stay{}, notFoundOr(err)
	}
	_, _, err = s.guests.FindFirst(func(g codec.Guest) bool {
		return g.ID == guestID && g.Status == codec.GuestActive
	})
	if err != nil {
		return codec.Stay{}, notFoundOr(err)
	}
	if room.Status == codec.RoomOccupied {
		return codec.Stay{}, ErrNotFound
	}
	if cardsToIssue > room.MaxCards {
		return codec.Stay{}, ErrNotFound
	}

	stayID, err := nextID(s.stays, func(st codec.Stay) uint32 { return st.ID })
	if err != nil {
		return codec.Stay{}, err
	}
	now := nowTS()
	stay := codec.Stay{
		ID:            stayID,
		Status:        codec.StayOpen,
		GuestID:       guestID,
		RoomID:        roomID,
		CheckinDate:   date,
		CheckoutDate:  "",
		CardsIssued:   cardsToIssue,
		CardsReturned: 0,
		UpdatedAt:     now,
	}
	if _, err := s.stays.Append(stay); err != nil {
		return codec.Stay{}, err
	}

	for seq := uint32(1); seq <= cardsToIssue; seq++ {
		serial := keycardSerial(roomID, guestID, now, seq)
		if _, err := s.AddKeycard(roomID, serial); err != nil {
			return codec.Stay{}, err
		}
	}

	room.Status = codec.RoomOccupied
	room.UpdatedAt = nowTS()
	if err := s.rooms.WriteAt(roomIndex, room); err != nil {
		return codec.Stay{}, err
	}
	return stay, nil
}

// Checkout closes the open stay with the given id: sets its status and
// checkout date, bumps cards_returned to at least cards_issued, soft-deletes
// every active keycard of the stay's room, and frees the room unless the
// room itself was soft-deleted in the meantime.
func (s *Service) Checkout(stayID uint32, date string) error {
	index, stay, err := s.stays.FindFirst(func(st codec.Stay) bool {
		return st.ID == stayID && st.Status == codec.StayOpen
	})
	if err != nil {
		return notFoundOr(err)
	}

	stay.Status = codec.StayClosed
	stay.CheckoutDate = date
	if stay.CardsIssued > stay.CardsReturned {
		stay.CardsReturned = stay.CardsIssued
	}
	stay.UpdatedAt = nowTS()
	if err := s.stays.WriteAt(index, stay); err != nil {
		return err
	}

	if err := s.deleteKeycardsForRoom(stay.RoomID); err != nil {
		return err
	}

	roomIndex, room, err := s.rooms.FindFirst(func(r codec.Room) bool { return r.ID == stay.RoomID })
	if err == nil && room.Status != codec.RoomDeleted {
		room.Status = codec.RoomVacant
		room.UpdatedAt = nowTS()
		if err := s.rooms.WriteAt(roomIndex, room); err != nil {
			return err
		}
	}
	return nil
}

// DeleteStay soft-deletes a stay without touching room status or keycards.
// Deletion is record correction, not guest departure; Checkout owns the
// cascade.
func (s *Service) DeleteStay(stayID uint32) error {
	index, stay, err := s.stays.FindFirst(func(st codec.Stay) bool { return st.ID == stayID })
	if err != nil {
		return notFoundOr(err)
	}
	stay.Status = codec.StayDeleted
	stay.UpdatedAt = nowTS()
	return s.stays.WriteAt(index, stay)
}

// Stay returns the first record with the given id, regardless of status.
func (s *Service) Stay(id uint32) (codec.Stay, error) {
	_, stay, err := s.stays.FindFirst(func(st codec.Stay) bool { return st.ID == id })
	if err != nil {
		return codec.Stay{}, notFoundOr(err)
	}
	return stay, nil
}

// Stays returns all stays in slot order, excluding soft-deleted ones unless
// includeDeleted is set.
func (s *Service) Stays(includeDeleted bool) ([]codec.Stay, error) {
	var stays []codec.Stay
	err := s.stays.Iterate(func(_ int, st codec.Stay) bool {
		if includeDeleted || st.Status != codec.StayDeleted {
			stays = append(stays, st)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return stays, nil
}
