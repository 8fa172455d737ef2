// Package engine defines the contract between the a7zip facade and the
// archive format backends that do the actual container parsing.
//
// A backend implements [Engine] and registers itself with [Register],
// normally from an init function, so that importing a backend package for
// side effects is enough to make its format available:
//
//	import (
//	    _ "github.com/jyushion/a7zip/engine/sevenzip"
//	    _ "github.com/jyushion/a7zip/engine/zip"
//	)
//
// Registration is process-wide, one-time state. It is deliberately kept
// outside the archive handle lifecycle: handles come and go, the set of
// loaded engines does not.
package engine

import (
	"errors"
	"io"
)

// Sentinel errors shared by the facade and the engine backends.
var (
	// ErrUnknownFormat is returned when no registered engine recognizes
	// the byte source.
	ErrUnknownFormat = errors.New("a7zip: unknown archive format")

	// ErrNoEntry is returned for an entry index outside [0, EntryCount).
	ErrNoEntry = errors.New("a7zip: no such entry")

	// ErrPassword is returned when an archive needs a password the caller
	// did not supply, or the supplied password is wrong, where the backend
	// can tell the difference from plain corruption.
	ErrPassword = errors.New("a7zip: wrong or missing password")
)

// ByteSource provides random access to the raw bytes of an archive.
//
// The engine assumes buffered semantics: cheap look-ahead during format
// sniffing and backward seeks within the container structure. io.ReaderAt
// gives both. Implementations exist for local files, in-memory buffers,
// and seekable readers; see the adapters in the root package.
type ByteSource interface {
	io.ReaderAt
	Size() int64
}

// OpenOptions carries per-open parameters from the facade to a backend.
type OpenOptions struct {
	// Password is the archive password, or "" when none was supplied.
	// Backends that do not support encryption ignore it.
	Password string
}

// Engine is one archive format backend.
type Engine interface {
	// Name is the short format identifier ("7z", "zip", "tar", "rar").
	Name() string

	// Sniff reports whether the source looks like this engine's format.
	// It must only read, never consume: the same source is handed to Open
	// afterwards.
	Sniff(src ByteSource) bool

	// Open parses the container structure and returns a handle. It must
	// either return a non-nil handle or a non-nil error; returning
	// (nil, nil) is a contract violation the facade turns into a fatal
	// open failure.
	Open(src ByteSource, opts OpenOptions) (Handle, error)
}

// Handle is one open archive inside a backend.
//
// A Handle does not own the ByteSource it was opened against and performs
// no locking; the facade enforces the single-owner lifecycle and callers
// serialize concurrent access.
type Handle interface {
	// FormatName returns the detected container format name, or "" when
	// the backend cannot report one.
	FormatName() string

	// EntryCount returns the number of entries, or a negative value when
	// the backend cannot determine it.
	EntryCount() int

	// ArchivePropertyType returns the raw type tag for an archive-scoped
	// property. The facade resolves the tag with ResolveType; backends
	// built on a newer tag space than this package degrade to TypeUnknown
	// there rather than erroring here.
	ArchivePropertyType(id PropID) int32

	// ArchiveProperty returns an archive-scoped property value, and false
	// when the backend has no value for id.
	ArchiveProperty(id PropID) (Value, bool)

	// EntryPropertyType is ArchivePropertyType scoped to one entry.
	EntryPropertyType(index int, id PropID) int32

	// EntryProperty is ArchiveProperty scoped to one entry. An index
	// outside [0, EntryCount) reports absent, never panics.
	EntryProperty(index int, id PropID) (Value, bool)

	// OpenEntry returns a reader over the entry's decompressed content.
	// Returns ErrNoEntry for an out-of-range index.
	OpenEntry(index int) (io.ReadCloser, error)

	// Close releases backend resources. Called exactly once by the facade.
	Close() error
}
