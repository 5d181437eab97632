package store

// RecordStore is the typed layer over a SlotFile: an append-only-by-slot,
// update-in-place sequence of records of one entity kind. Deletion is a
// status flag owned by the caller; the store itself only ever grows.
type RecordStore[T any] struct {
	file  *SlotFile
	codec Codec[T]
}

// NewRecordStore opens (or creates) the slot file at path for the given
// codec's slot size.
func NewRecordStore[T any](path string, codec Codec[T]) (*RecordStore[T], error) {
	file, err := NewSlotFile(SlotFileConfig{Path: path, SlotSize: codec.SlotSize()})
	if err != nil {
		return nil, err
	}
	return &RecordStore[T]{file: file, codec: codec}, nil
}

// Length returns the number of whole slots stored.
func (s *RecordStore[T]) Length() (int, error) {
	return s.file.Length()
}

// ReadAt returns the decoded record at index, or ErrNotFound for a slot
// beyond the stored length or a short read.
func (s *RecordStore[T]) ReadAt(index int) (T, error) {
	var zero T
	buf, err := s.file.ReadAt(index)
	if err != nil {
		return zero, err
	}
	return s.codec.Decode(buf)
}

// WriteAt encodes rec and overwrites the slot at index.
func (s *RecordStore[T]) WriteAt(index int, rec T) error {
	return s.file.WriteAt(index, s.codec.Encode(rec))
}

// Append writes rec into a new slot at the end of the file and returns its
// index.
func (s *RecordStore[T]) Append(rec T) (int, error) {
	return s.file.Append(s.codec.Encode(rec))
}

// Iterate calls fn for every readable slot in ascending order, skipping
// slots that cannot be read or decoded. fn returning false stops the scan.
// The scan is lazy and can be restarted by calling Iterate again.
func (s *RecordStore[T]) Iterate(fn func(index int, rec T) bool) error {
	total, err := s.Length()
	if err != nil {
		return err
	}
	for i := 0; i < total; i++ {
		buf, err := s.file.ReadAt(i)
		if err != nil {
			if err == ErrNotFound {
				continue
			}
			return err
		}
		rec, err := s.codec.Decode(buf)
		if err != nil {
			continue
		}
		if !fn(i, rec) {
			return nil
		}
	}
	return nil
}

// FindFirst returns the first record satisfying pred in ascending slot
// order, along with its index, or ErrNotFound.
func (s *RecordStore[T]) FindFirst(pred func(rec T) bool) (int, T, error) {
	var (
		foundIndex = -1
		found      T
	)
	err := s.Iterate(func(i int, rec T) bool {
		if pred(rec) {
			foundIndex = i
			found = rec
			return false
		}
		return true
	})
	if err != nil {
		return 0, found, err
	}
	if foundIndex < 0 {
		return 0, found, ErrNotFound
	}
	return foundIndex, found, nil
}
