package hotel

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/hoteldb/pkg/codec"
	"github.com/ssargent/hoteldb/pkg/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "hoteldb_hotel_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	svc, err := NewService(Config{DataDir: tmpDir, ReportDir: tmpDir})
	require.NoError(t, err)
	return svc
}

func TestNextID(t *testing.T) {
	svc := newTestService(t)

	t.Run("empty store", func(t *testing.T) {
		id, err := nextID(svc.rooms, func(r codec.Room) uint32 { return r.ID })
		require.NoError(t, err)
		assert.Equal(t, uint32(1), id)
	})

	t.Run("max plus one over any statuses", func(t *testing.T) {
		for _, r := range []codec.Room{
			{ID: 3, Status: codec.RoomVacant},
			{ID: 7, Status: codec.RoomDeleted},
			{ID: 2, Status: codec.RoomOccupied},
		} {
			_, err := svc.rooms.Append(r)
			require.NoError(t, err)
		}
		id, err := nextID(svc.rooms, func(r codec.Room) uint32 { return r.ID })
		require.NoError(t, err)
		assert.Equal(t, uint32(8), id)
	})
}

func TestAddRoom(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), room.ID)
	assert.Equal(t, codec.RoomVacant, room.Status)
	assert.Equal(t, "STD", room.Type)
	assert.NotZero(t, room.CreatedAt)
	assert.Equal(t, room.CreatedAt, room.UpdatedAt)

	second, err := svc.AddRoom("DELUXE", 5, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), second.ID)
}

func TestUpdateRoom(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)

	floor := uint32(7)
	updated, err := svc.UpdateRoom(room.ID, RoomUpdate{Floor: &floor})
	require.NoError(t, err)
	assert.Equal(t, uint32(7), updated.Floor)
	assert.Equal(t, "STD", updated.Type, "unset fields stay untouched")
	assert.Equal(t, room.CreatedAt, updated.CreatedAt)

	_, err = svc.UpdateRoom(99, RoomUpdate{Floor: &floor})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRoom_SoftDeletedStillFound(t *testing.T) {
	// Legacy find-first semantics: update mutates even soft-deleted records.
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteRoom(room.ID))

	newType := "DELUXE"
	updated, err := svc.UpdateRoom(room.ID, RoomUpdate{Type: &newType})
	require.NoError(t, err)
	assert.Equal(t, "DELUXE", updated.Type)
	assert.Equal(t, codec.RoomDeleted, updated.Status)
}

func TestDeleteRoom_SoftDeleteIsNonDestructive(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	lengthBefore, err := svc.rooms.Length()
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoom(room.ID))

	lengthAfter, err := svc.rooms.Length()
	require.NoError(t, err)
	assert.Equal(t, lengthBefore, lengthAfter, "slot count never shrinks")

	visible, err := svc.Rooms(false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := svc.Rooms(true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, codec.RoomDeleted, all[0].Status)

	assert.ErrorIs(t, svc.DeleteRoom(99), ErrNotFound)
}

func TestGuestCRUD(t *testing.T) {
	svc := newTestService(t)

	guest, err := svc.AddGuest("John Smith", "0812345678", "A1234567890")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), guest.ID)
	assert.Equal(t, codec.GuestActive, guest.Status)

	phone := "0000000000"
	updated, err := svc.UpdateGuest(guest.ID, GuestUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "John Smith", updated.FullName)

	require.NoError(t, svc.DeleteGuest(guest.ID))
	visible, err := svc.Guests(false)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestCheckin(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	guest, err := svc.AddGuest("John Smith", "0812345678", "A1234567890")
	require.NoError(t, err)

	stay, err := svc.Checkin(guest.ID, room.ID, "2024-01-15", 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), stay.ID)
	assert.Equal(t, codec.StayOpen, stay.Status)
	assert.Equal(t, "2024-01-15", stay.CheckinDate)
	assert.Empty(t, stay.CheckoutDate)
	assert.Equal(t, uint32(2), stay.CardsIssued)
	assert.Zero(t, stay.CardsReturned)

	got, err := svc.Room(room.ID)
	require.NoError(t, err)
	assert.Equal(t, codec.RoomOccupied, got.Status)

	cards, err := svc.KeycardsByRoom(room.ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	for _, k := range cards {
		assert.Equal(t, codec.KeycardActive, k.Status)
		assert.Equal(t, room.ID, k.RoomID)
		assert.Len(t, k.Serial, 10)
	}
	assert.NotEqual(t, cards[0].Serial, cards[1].Serial)
}

func TestCheckin_OccupiedRoomRefused(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	first, err := svc.AddGuest("John Smith", "0812345678", "A1234567890")
	require.NoError(t, err)
	second, err := svc.AddGuest("Jane Doe", "0899999999", "B9876543210")
	require.NoError(t, err)

	stay, err := svc.Checkin(first.ID, room.ID, "2024-01-15", 1)
	require.NoError(t, err)

	_, err = svc.Checkin(second.ID, room.ID, "2024-01-16", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	// The failed attempt left nothing behind.
	stays, err := svc.Stays(true)
	require.NoError(t, err)
	require.Len(t, stays, 1)
	assert.Equal(t, stay.ID, stays[0].ID)
	assert.Equal(t, codec.StayOpen, stays[0].Status)

	cards, err := svc.Keycards(true)
	require.NoError(t, err)
	assert.Len(t, cards, 1)

	got, err := svc.Room(room.ID)
	require.NoError(t, err)
	assert.Equal(t, codec.RoomOccupied, got.Status)
}

func TestCheckin_CardLimitRefused(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	guest, err := svc.AddGuest("John Smith", "0812345678", "A1234567890")
	require.NoError(t, err)

	_, err = svc.Checkin(guest.ID, room.ID, "2024-01-15", 3)
	assert.ErrorIs(t, err, ErrNotFound)

	stays, err := svc.Stays(true)
	require.NoError(t, err)
	assert.Empty(t, stays)

	got, err := svc.Room(room.ID)
	require.NoError(t, err)
	assert.Equal(t, codec.RoomVacant, got.Status, "refused check-in has no side effects")
}

func TestCheckin_InvalidTargetsRefused(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	guest, err := svc.AddGuest("John Smith", "0812345678", "A1234567890")
	require.NoError(t, err)

	_, err = svc.Checkin(99, room.ID, "2024-01-15", 1)
	assert.ErrorIs(t, err, ErrNotFound, "unknown guest")

	_, err = svc.Checkin(guest.ID, 99, "2024-01-15", 1)
	assert.ErrorIs(t, err, ErrNotFound, "unknown room")

	require.NoError(t, svc.DeleteGuest(guest.ID))
	_, err = svc.Checkin(guest.ID, room.ID, "2024-01-15", 1)
	assert.ErrorIs(t, err, ErrNotFound, "soft-deleted guest")

	require.NoError(t, svc.DeleteRoom(room.ID))
	other, err := svc.AddGuest("Jane Doe", "0899999999", "B9876543210")
	require.NoError(t, err)
	_, err = svc.Checkin(other.ID, room.ID, "2024-01-15", 1)
	assert.ErrorIs(t, err, ErrNotFound, "soft-deleted room")
}

func TestCheckout_Cascade(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	guest, err := svc.AddGuest("John Smith", "0812345678", "A1234567890")
	require.NoError(t, err)
	stay, err := svc.Checkin(guest.ID, room.ID, "2024-01-15", 2)
	require.NoError(t, err)

	require.NoError(t, svc.Checkout(stay.ID, "2024-01-20"))

	closed, err := svc.Stay(stay.ID)
	require.NoError(t, err)
	assert.Equal(t, codec.StayClosed, closed.Status)
	assert.Equal(t, "2024-01-20", closed.CheckoutDate)
	assert.Equal(t, uint32(2), closed.CardsReturned)

	got, err := svc.Room(room.ID)
	require.NoError(t, err)
	assert.Equal(t, codec.RoomVacant, got.Status)

	all, err := svc.Keycards(true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, k := range all {
		assert.Equal(t, codec.KeycardDeleted, k.Status)
	}

	active, err := svc.KeycardsByRoom(room.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	// A closed stay cannot be checked out again.
	assert.ErrorIs(t, svc.Checkout(stay.ID, "2024-01-21"), ErrNotFound)
}

func TestCheckout_DeletedRoomStaysDeleted(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	guest, err := svc.AddGuest("John Smith", "0812345678", "A1234567890")
	require.NoError(t, err)
	stay, err := svc.Checkin(guest.ID, room.ID, "2024-01-15", 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoom(room.ID))
	require.NoError(t, svc.Checkout(stay.ID, "2024-01-20"))

	got, err := svc.Room(room.ID)
	require.NoError(t, err)
	assert.Equal(t, codec.RoomDeleted, got.Status)
}

func TestDeleteStay_NoCascade(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	guest, err := svc.AddGuest("John Smith", "0812345678", "A1234567890")
	require.NoError(t, err)
	stay, err := svc.Checkin(guest.ID, room.ID, "2024-01-15", 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStay(stay.ID))

	deleted, err := svc.Stay(stay.ID)
	require.NoError(t, err)
	assert.Equal(t, codec.StayDeleted, deleted.Status)

	// Deletion is record correction: room and keycards are untouched.
	got, err := svc.Room(room.ID)
	require.NoError(t, err)
	assert.Equal(t, codec.RoomOccupied, got.Status)

	cards, err := svc.KeycardsByRoom(room.ID)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestKeycardSerial(t *testing.T) {
	serial := keycardSerial(2, 13, 1700001234, 1)
	assert.Len(t, serial, 10)
	assert.Equal(t, "0213123401", serial)
}

func TestScenario_FullLifecycle(t *testing.T) {
	svc := newTestService(t)

	room, err := svc.AddRoom("STD", 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), room.ID)
	assert.Equal(t, codec.RoomVacant, room.Status)

	guest, err := svc.AddGuest("John Smith", "0812345678", "A1234567890")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), guest.ID)
	assert.Equal(t, codec.GuestActive, guest.Status)

	stay, err := svc.Checkin(1, 1, "2024-01-15", 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), stay.ID)
	assert.Equal(t, codec.StayOpen, stay.Status)
	assert.Equal(t, uint32(2), stay.CardsIssued)

	occupied, err := svc.Room(1)
	require.NoError(t, err)
	assert.Equal(t, codec.RoomOccupied, occupied.Status)

	cards, err := svc.KeycardsByRoom(1)
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	require.NoError(t, svc.Checkout(1, "2024-01-20"))

	closed, err := svc.Stay(1)
	require.NoError(t, err)
	assert.Equal(t, codec.StayClosed, closed.Status)
	assert.Equal(t, "2024-01-20", closed.CheckoutDate)
	assert.Equal(t, uint32(2), closed.CardsReturned)

	vacant, err := svc.Room(1)
	require.NoError(t, err)
	assert.Equal(t, codec.RoomVacant, vacant.Status)

	all, err := svc.Keycards(true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, k := range all {
		assert.Equal(t, codec.KeycardDeleted, k.Status)
	}
}

func TestSeedDemo(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.SeedDemo())

	rooms, err := svc.Rooms(false)
	require.NoError(t, err)
	assert.Len(t, rooms, 3)

	guests, err := svc.Guests(false)
	require.NoError(t, err)
	assert.Len(t, guests, 2)

	stays, err := svc.Stays(false)
	require.NoError(t, err)
	require.Len(t, stays, 1)
	assert.Equal(t, codec.StayOpen, stays[0].Status)

	// Re-running leaves populated stores alone.
	require.NoError(t, svc.SeedDemo())
	rooms, err = svc.Rooms(false)
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}

func TestNotFoundSentinelIsStoreIndependent(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Room(1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, store.ErrNotFound, "store sentinel must not leak")
}
