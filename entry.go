package a7zip

import "time"

// EntryView is a read-only typed view over one entry's common properties.
//
// A view stays bound to its Archive: it is only meaningful while the
// Archive is open, and after Close every getter returns its zero value.
// Callers that need hard failures use the Archive accessors directly.
type EntryView struct {
	a     *Archive
	index int
}

// Entry returns a view over the entry at index.
func (a *Archive) Entry(index int) EntryView {
	return EntryView{a: a, index: index}
}

// Index returns the entry's ordinal.
func (ev EntryView) Index() int {
	return ev.index
}

// Path returns the entry path, "" when unavailable.
func (ev EntryView) Path() string {
	s, _ := ev.a.EntryPath(ev.index, nil)
	return s
}

// Size returns the uncompressed size, 0 when unavailable.
func (ev EntryView) Size() int64 {
	v, _ := ev.a.EntryInt(ev.index, PropIDSize)
	return v
}

// PackedSize returns the stored (compressed) size, 0 when unavailable.
func (ev EntryView) PackedSize() int64 {
	v, _ := ev.a.EntryInt(ev.index, PropIDPackSize)
	return v
}

// ModTime returns the modification time, zero when unavailable.
func (ev EntryView) ModTime() time.Time {
	t, _ := ev.a.EntryTime(ev.index, PropIDModificationTime)
	return t
}

// IsDir reports whether the entry is a directory.
func (ev EntryView) IsDir() bool {
	b, _ := ev.a.EntryBool(ev.index, PropIDIsDir)
	return b
}

// Encrypted reports whether the entry's content is encrypted.
func (ev EntryView) Encrypted() bool {
	b, _ := ev.a.EntryBool(ev.index, PropIDEncrypted)
	return b
}

// CRC returns the entry's CRC32, 0 when unavailable.
func (ev EntryView) CRC() uint32 {
	v, _ := ev.a.EntryInt(ev.index, PropIDCRC)
	return uint32(v)
}
