package hotel

import "github.com/ssargent/hoteldb/pkg/codec"

// GuestUpdate carries the mutable guest fields; nil fields are left
// untouched.
type GuestUpdate struct {
	FullName *string
	Phone    *string
	IDNo     *string
}

// AddGuest appends a new active guest with a freshly allocated id.
func (s *Service) AddGuest(fullName, phone, idNo string) (codec.Guest, error) {
	id, err := nextID(s.guests, func(g codec.Guest) uint32 { return g.ID })
	if err != nil {
		return codec.Guest{}, err
	}
	now := nowTS()
	guest := codec.Guest{
		ID:        id,
		Status:    codec.GuestActive,
		FullName:  fullName,
		Phone:     phone,
		IDNo:      idNo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.guests.Append(guest); err != nil {
		return codec.Guest{}, err
	}
	return guest, nil
}

// Guest returns the first record with the given id, regardless of status.
func (s *Service) Guest(id uint32) (codec.Guest, error) {
	_, guest, err := s.guests.FindFirst(func(g codec.Guest) bool { return g.ID == id })
	if err != nil {
		return codec.Guest{}, notFoundOr(err)
	}
	return guest, nil
}

// UpdateGuest applies the supplied fields to the first record with the given
// id and rewrites its slot. Status-agnostic, like UpdateRoom.
func (s *Service) UpdateGuest(id uint32, upd GuestUpdate) (codec.Guest, error) {
	index, guest, err := s.guests.FindFirst(func(g codec.Guest) bool { return g.ID == id })
	if err != nil {
		return codec.Guest{}, notFoundOr(err)
	}
	if upd.FullName != nil {
		guest.FullName = *upd.FullName
	}
	if upd.Phone != nil {
		guest.Phone = *upd.Phone
	}
	if upd.IDNo != nil {
		guest.IDNo = *upd.IDNo
	}
	guest.UpdatedAt = nowTS()
	if err := s.guests.WriteAt(index, guest); err != nil {
		return codec.Guest{}, err
	}
	return guest, nil
}

// DeleteGuest soft-deletes the guest.
func (s *Service) DeleteGuest(id uint32) error {
	index, guest, err := s.guests.FindFirst(func(g codec.Guest) bool { return g.ID == id })
	if err != nil {
		return notFoundOr(err)
	}
	guest.Status = codec.GuestDeleted
	guest.UpdatedAt = nowTS()
	return s.guests.WriteAt(index, guest)
}

// Guests returns all guests in slot order, excluding soft-deleted ones
// unless includeDeleted is set.
func (s *Service) Guests(includeDeleted bool) ([]codec.Guest, error) {
	var guests []codec.Guest
	err := s.guests.Iterate(func(_ int, g codec.Guest) bool {
		if includeDeleted || g.Status != codec.GuestDeleted {
			guests = append(guests, g)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return guests, nil
}
