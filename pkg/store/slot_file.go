package store

import (
	"io"
	"os"
	"path/filepath"
)

// SlotFile is a file of contiguous fixed-size slots, no header, addressed by
// slot index. Every call opens the file, performs one read or write, and
// closes it again; no handle or cache survives between calls, and writes are
// fsynced before returning. Single-process use only.
type SlotFile struct {
	path     string
	slotSize int
}

// NewSlotFile opens a slot file, creating it empty (and its directory) if it
// does not exist yet.
func NewSlotFile(config SlotFileConfig) (*SlotFile, error) {
	if err := os.MkdirAll(filepath.Dir(config.Path), 0750); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(config.Path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return &SlotFile{path: config.Path, slotSize: config.SlotSize}, nil
}

// SlotSize returns the fixed byte size of every slot.
func (f *SlotFile) SlotSize() int { return f.slotSize }

// Path returns the file path.
func (f *SlotFile) Path() string { return f.path }

// Length returns the number of whole slots in the file. A trailing partial
// slot is not counted and is never returned by ReadAt.
func (f *SlotFile) Length() (int, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return 0, err
	}
	return int(info.Size()) / f.slotSize, nil
}

// ReadAt returns the raw bytes of one slot. A slot beyond the stored length,
// or one that can only be partially read, yields ErrNotFound so that scans
// can tolerate truncated trailing data without aborting.
func (f *SlotFile) ReadAt(index int) ([]byte, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buf := make([]byte, f.slotSize)
	n, err := file.ReadAt(buf, int64(index)*int64(f.slotSize))
	if err != nil {
		if err == io.EOF || n < f.slotSize {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return buf, nil
}

// WriteAt overwrites exactly one slot's byte range and forces the write to
// disk before returning, so a crash immediately afterwards never loses it.
func (f *SlotFile) WriteAt(index int, block []byte) error {
	if len(block) != f.slotSize {
		// Unreachable given the codec contract.
		return ErrBadSlotSize
	}

	file, err := os.OpenFile(f.path, os.O_RDWR, 0600)
	if err != nil {
		return err
	}

	if _, err := file.WriteAt(block, int64(index)*int64(f.slotSize)); err != nil {
		file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Append writes a block at index Length(), growing the file by exactly one
// slot, and returns the new slot's index. Soft-deleted slots are never
// reused.
func (f *SlotFile) Append(block []byte) (int, error) {
	index, err := f.Length()
	if err != nil {
		return 0, err
	}
	if err := f.WriteAt(index, block); err != nil {
		return 0, err
	}
	return index, nil
}
