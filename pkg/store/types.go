package store

// Codec translates one record value to and from a fixed-size byte block.
// Encode must always return exactly SlotSize bytes; anything else is a
// programming error that SlotFile.WriteAt turns into ErrBadSlotSize.
type Codec[T any] interface {
	SlotSize() int
	Encode(rec T) []byte
	Decode(buf []byte) (T, error)
}

// SlotFileConfig holds configuration for a slot file.
type SlotFileConfig struct {
	Path     string // Path to the data file
	SlotSize int    // Fixed byte size of every slot
}

// Errors
var (
	ErrNotFound    = &StoreError{"record not found"}
	ErrBadSlotSize = &StoreError{"block size does not match slot size"}
)

// StoreError represents a record store error.
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
