package hotel

import "github.com/ssargent/hoteldb/pkg/codec"

// RoomUpdate carries the mutable room fields; nil fields are left untouched.
// Identity and creation timestamp are not updatable by construction.
type RoomUpdate struct {
	Type     *string
	Floor    *uint32
	Capacity *uint32
	MaxCards *uint32
}

// AddRoom appends a new vacant room with a freshly allocated id.
func (s *Service) AddRoom(roomType string, floor, capacity, maxCards uint32) (codec.Room, error) {
	id, err := nextID(s.rooms, func(r codec.Room) uint32 { return r.ID })
	if err != nil {
		return codec.Room{}, err
	}
	now := nowTS()
	room := codec.Room{
		ID:        id,
		Status:    codec.RoomVacant,
		Type:      roomType,
		Floor:     floor,
		Capacity:  capacity,
		MaxCards:  maxCards,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.rooms.Append(room); err != nil {
		return codec.Room{}, err
	}
	return room, nil
}

// Room returns the first record with the given id, regardless of status.
func (s *Service) Room(id uint32) (codec.Room, error) {
	_, room, err := s.rooms.FindFirst(func(r codec.Room) bool { return r.ID == id })
	if err != nil {
		return codec.Room{}, notFoundOr(err)
	}
	return room, nil
}

// UpdateRoom applies the supplied fields to the first record with the given
// id and rewrites its slot. The lookup is status-agnostic: soft-deleted
// rooms can still be updated, matching the legacy find-first semantics.
func (s *Service) UpdateRoom(id uint32, upd RoomUpdate) (codec.Room, error) {
	index, room, err := s.rooms.FindFirst(func(r codec.Room) bool { return r.ID == id })
	if err != nil {
		return codec.Room{}, notFoundOr(err)
	}
	if upd.Type != nil {
		room.Type = *upd.Type
	}
	if upd.Floor != nil {
		room.Floor = *upd.Floor
	}
	if upd.Capacity != nil {
		room.Capacity = *upd.Capacity
	}
	if upd.MaxCards != nil {
		room.MaxCards = *upd.MaxCards
	}
	room.UpdatedAt = nowTS()
	if err := s.rooms.WriteAt(index, room); err != nil {
		return codec.Room{}, err
	}
	return room, nil
}

// DeleteRoom flips the room's status to the delete sentinel. The slot is
// never removed.
func (s *Service) DeleteRoom(id uint32) error {
	index, room, err := s.rooms.FindFirst(func(r codec.Room) bool { return r.ID == id })
	if err != nil {
		return notFoundOr(err)
	}
	room.Status = codec.RoomDeleted
	room.UpdatedAt = nowTS()
	return s.rooms.WriteAt(index, room)
}

// Rooms returns all rooms in slot order, excluding soft-deleted ones unless
// includeDeleted is set.
func (s *Service) Rooms(includeDeleted bool) ([]codec.Room, error) {
	var rooms []codec.Room
	err := s.rooms.Iterate(func(_ int, r codec.Room) bool {
		if includeDeleted || r.Status != codec.RoomDeleted {
			rooms = append(rooms, r)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
