package a7zip

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/text/encoding"

	"github.com/jyushion/a7zip/engine"
)

// Archive is one open archive.
//
// An Archive exclusively owns one backend handle. The handle is released
// exactly once, by the first Close call; afterwards every accessor fails
// with ErrClosed. Archive performs no internal locking: concurrent accessor
// calls on the same Archive need external synchronization.
type Archive struct {
	h       engine.Handle
	owned   io.Closer // released together with the handle (e.g. the file from OpenFile)
	charset encoding.Encoding
}

// Open opens an archive from src.
//
// Unless an engine is forced with WithEngine, the format is detected by
// asking each registered engine to sniff the source; ErrUnknownFormat is
// returned when none accepts it. An engine that produces neither a handle
// nor an error violates its contract and the open fails with
// ErrEngineContract instead of returning an unusable Archive.
func Open(src ByteSource, opts ...OpenOption) (*Archive, error) {
	var cfg openConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		eng engine.Engine
		ok  bool
	)
	if cfg.engine != "" {
		eng, ok = engine.Lookup(cfg.engine)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoEngine, cfg.engine)
		}
	} else {
		eng, ok = engine.Detect(src)
		if !ok {
			return nil, ErrUnknownFormat
		}
	}

	h, err := eng.Open(src, engine.OpenOptions{Password: cfg.password})
	if err != nil {
		return nil, fmt.Errorf("a7zip: open %s: %w", eng.Name(), err)
	}
	if h == nil {
		return nil, fmt.Errorf("a7zip: open %s: %w", eng.Name(), ErrEngineContract)
	}

	return &Archive{h: h, charset: cfg.charset}, nil
}

// OpenFile opens the archive at path. The returned Archive owns the
// underlying file and closes it on Close, including when the open itself
// fails partway.
func OpenFile(path string, opts ...OpenOption) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("a7zip: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("a7zip: %w", err)
	}

	a, err := Open(io.NewSectionReader(f, 0, fi.Size()), opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	a.owned = f
	return a, nil
}

// OpenReader opens an archive from an arbitrary reader, adapting it into a
// ByteSource first (see NewSource). Readers that are neither ByteSources
// nor seekable are spooled into memory.
func OpenReader(r io.Reader, opts ...OpenOption) (*Archive, error) {
	src, err := NewSource(r)
	if err != nil {
		return nil, err
	}
	return Open(src, opts...)
}

// FormatName returns the detected container format name, or "" when the
// backend cannot report one.
func (a *Archive) FormatName() (string, error) {
	if a.h == nil {
		return "", ErrClosed
	}
	return a.h.FormatName(), nil
}

// EntryCount returns the number of entries. A negative count means the
// backend could not determine it; callers must check before iterating.
func (a *Archive) EntryCount() (int, error) {
	if a.h == nil {
		return 0, ErrClosed
	}
	return a.h.EntryCount(), nil
}

// ArchivePropertyType resolves the type of an archive-scoped property.
// Raw tags outside the known range degrade to TypeUnknown.
func (a *Archive) ArchivePropertyType(id PropID) (PropType, error) {
	if a.h == nil {
		return TypeUnknown, ErrClosed
	}
	return ResolveType(a.h.ArchivePropertyType(id)), nil
}

// ArchiveProperty returns an archive-scoped property value. The bool is
// false when the backend has no value for id; that is a soft result, not
// an error.
func (a *Archive) ArchiveProperty(id PropID) (Value, bool, error) {
	if a.h == nil {
		return Value{}, false, ErrClosed
	}
	v, ok := a.h.ArchiveProperty(id)
	return v, ok, nil
}

// EntryPropertyType resolves the type of an entry-scoped property.
func (a *Archive) EntryPropertyType(index int, id PropID) (PropType, error) {
	if a.h == nil {
		return TypeUnknown, ErrClosed
	}
	return ResolveType(a.h.EntryPropertyType(index, id)), nil
}

// EntryProperty returns an entry-scoped property value. An index outside
// [0, EntryCount) reports absent, mirroring the backend contract.
func (a *Archive) EntryProperty(index int, id PropID) (Value, bool, error) {
	if a.h == nil {
		return Value{}, false, ErrClosed
	}
	v, ok := a.h.EntryProperty(index, id)
	return v, ok, nil
}

// ArchiveString returns an archive-scoped string property, "" when absent
// or not a string. A non-nil cs (or the WithCharset default when cs is
// nil) reinterprets byte-smuggled strings under that encoding.
func (a *Archive) ArchiveString(id PropID, cs encoding.Encoding) (string, error) {
	if a.h == nil {
		return "", ErrClosed
	}
	v, ok := a.h.ArchiveProperty(id)
	if !ok || v.Kind != TypeString {
		return "", nil
	}
	return applyCharset(v.Str, a.charsetOr(cs)), nil
}

// EntryString returns an entry-scoped string property, "" when absent or
// not a string. Charset handling matches ArchiveString.
func (a *Archive) EntryString(index int, id PropID, cs encoding.Encoding) (string, error) {
	if a.h == nil {
		return "", ErrClosed
	}
	v, ok := a.h.EntryProperty(index, id)
	if !ok || v.Kind != TypeString {
		return "", nil
	}
	return applyCharset(v.Str, a.charsetOr(cs)), nil
}

// EntryPath returns the path of the entry, "" when the backend cannot
// report one.
func (a *Archive) EntryPath(index int, cs encoding.Encoding) (string, error) {
	return a.EntryString(index, PropIDPath, cs)
}

// EntryInt returns an entry-scoped integer property. Absent or
// non-integer values yield 0, not an error.
func (a *Archive) EntryInt(index int, id PropID) (int64, error) {
	if a.h == nil {
		return 0, ErrClosed
	}
	v, ok := a.h.EntryProperty(index, id)
	if !ok || (v.Kind != TypeInt && v.Kind != TypeLong) {
		return 0, nil
	}
	return v.Int, nil
}

// EntryBool returns an entry-scoped boolean property. Absent or
// non-boolean values yield false, not an error.
func (a *Archive) EntryBool(index int, id PropID) (bool, error) {
	if a.h == nil {
		return false, ErrClosed
	}
	v, ok := a.h.EntryProperty(index, id)
	if !ok || v.Kind != TypeBool {
		return false, nil
	}
	return v.Bool, nil
}

// EntryTime returns an entry-scoped timestamp property. Absent or
// non-time values yield the zero time, not an error.
func (a *Archive) EntryTime(index int, id PropID) (time.Time, error) {
	if a.h == nil {
		return time.Time{}, ErrClosed
	}
	v, ok := a.h.EntryProperty(index, id)
	if !ok || v.Kind != TypeFileTime {
		return time.Time{}, nil
	}
	return v.Time, nil
}

// OpenEntry returns a reader over the entry's decompressed content.
// Returns ErrNoEntry for an out-of-range index.
func (a *Archive) OpenEntry(index int) (io.ReadCloser, error) {
	if a.h == nil {
		return nil, ErrClosed
	}
	return a.h.OpenEntry(index)
}

// Extract writes the entry's decompressed content to w.
func (a *Archive) Extract(index int, w io.Writer) error {
	rc, err := a.OpenEntry(index)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, rc)
	if cerr := rc.Close(); err == nil {
		err = cerr
	}
	return err
}

// Close releases the backend handle and any owned resources. The first
// call performs the release; later calls are no-ops returning nil.
func (a *Archive) Close() error {
	if a.h == nil {
		return nil
	}
	h := a.h
	a.h = nil
	err := h.Close()
	if a.owned != nil {
		if cerr := a.owned.Close(); err == nil {
			err = cerr
		}
		a.owned = nil
	}
	return err
}

func (a *Archive) charsetOr(cs encoding.Encoding) encoding.Encoding {
	if cs != nil {
		return cs
	}
	return a.charset
}
