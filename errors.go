package a7zip

import (
	"errors"

	"github.com/jyushion/a7zip/engine"
)

// Sentinel errors.
var (
	// ErrClosed is returned by any accessor invoked after Close. It is
	// always a caller bug, reported deterministically instead of touching
	// a released backend handle.
	ErrClosed = errors.New("a7zip: archive is closed")

	// ErrEngineContract is returned when an engine's Open produces no
	// handle and no error. The engine contract requires one or the other;
	// a silent nil handle is never treated as success.
	ErrEngineContract = errors.New("a7zip: engine returned no handle and no error")

	// ErrNoEngine is returned by Open when the engine named with
	// WithEngine is not registered.
	ErrNoEngine = errors.New("a7zip: no such engine")
)

// Errors re-exported from engine.
var (
	// ErrUnknownFormat is returned when no registered engine recognizes
	// the byte source.
	ErrUnknownFormat = engine.ErrUnknownFormat

	// ErrNoEntry is returned for an entry index outside [0, EntryCount).
	ErrNoEntry = engine.ErrNoEntry

	// ErrPassword is returned when an archive needs a password the caller
	// did not supply, or the supplied password is wrong.
	ErrPassword = engine.ErrPassword
)
