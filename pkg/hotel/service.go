// Package hotel implements the domain service over the per-entity record
// stores: room/guest/stay/keycard CRUD, watermark id allocation, and the
// check-in/check-out cascades the stores cannot express alone.
package hotel

import (
	"path/filepath"
	"time"

	"github.com/ssargent/hoteldb/pkg/codec"
	"github.com/ssargent/hoteldb/pkg/store"
)

// Config holds the directories a Service works in. Paths are explicit per
// instance; there is no process-wide state.
type Config struct {
	DataDir   string // Directory for the .dat record files
	ReportDir string // Directory for generated text reports
}

// Errors
var ErrNotFound = &HotelError{"record not found"}

// HotelError represents a domain service error.
type HotelError struct {
	Message string
}

func (e *HotelError) Error() string {
	return e.Message
}

// Service owns one record store per entity kind and enforces the
// cross-entity invariants: room occupancy exclusivity, keycard count limits,
// and the cascading status changes on check-in and check-out.
//
// All operations are synchronous and single-process. Multi-record operations
// are ordered sequences of independent durable writes, not transactions; a
// crash mid-sequence can leave partially applied state.
type Service struct {
	config Config
	rooms  *store.RecordStore[codec.Room]
	guests *store.RecordStore[codec.Guest]
	stays  *store.RecordStore[codec.Stay]
	cards  *store.RecordStore[codec.Keycard]
}

// NewService opens (or creates) the four record stores under
// config.DataDir.
func NewService(config Config) (*Service, error) {
	rooms, err := store.NewRecordStore(filepath.Join(config.DataDir, "rooms.dat"), codec.RoomCodec{})
	if err != nil {
		return nil, err
	}
	guests, err := store.NewRecordStore(filepath.Join(config.DataDir, "guests.dat"), codec.GuestCodec{})
	if err != nil {
		return nil, err
	}
	stays, err := store.NewRecordStore(filepath.Join(config.DataDir, "stays.dat"), codec.StayCodec{})
	if err != nil {
		return nil, err
	}
	cards, err := store.NewRecordStore(filepath.Join(config.DataDir, "keycards.dat"), codec.KeycardCodec{})
	if err != nil {
		return nil, err
	}
	return &Service{
		config: config,
		rooms:  rooms,
		guests: guests,
		stays:  stays,
		cards:  cards,
	}, nil
}

// Config returns the directories this service was constructed with.
func (s *Service) Config() Config {
	return s.config
}

// nowTS returns the current unix time in the on-disk timestamp width.
func nowTS() uint32 {
	return uint32(time.Now().Unix())
}

// nextID scans all records of one store, soft-deleted included, and returns
// max(id)+1, or 1 for an empty store. O(n) per call, acceptable at
// single-user scope.
func nextID[T any](s *store.RecordStore[T], id func(T) uint32) (uint32, error) {
	var maxID uint32
	err := s.Iterate(func(_ int, rec T) bool {
		if v := id(rec); v > maxID {
			maxID = v
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	return maxID + 1, nil
}

// notFoundOr maps the store's absence sentinel onto the domain's.
func notFoundOr(err error) error {
	if err == store.ErrNotFound {
		return ErrNotFound
	}
	return err
}
