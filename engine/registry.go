package engine

import (
	"bytes"
	"io"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   []Engine
)

// Register makes an engine available for format detection and lookup.
// It is intended to be called from a backend package's init function and
// must not be called twice with the same engine name.
func Register(e Engine) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, existing := range registry {
		if existing.Name() == e.Name() {
			panic("engine: Register called twice for engine " + e.Name())
		}
	}
	registry = append(registry, e)
}

// Lookup returns the registered engine with the given name.
func Lookup(name string) (Engine, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, e := range registry {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// Engines returns the names of all registered engines in registration order.
func Engines() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name()
	}
	return names
}

// Detect returns the first registered engine whose Sniff accepts the source.
func Detect(src ByteSource) (Engine, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, e := range registry {
		if e.Sniff(src) {
			return e, true
		}
	}
	return nil, false
}

// Match reports whether src contains magic at offset off. It is a helper
// for Sniff implementations and tolerates sources shorter than the magic.
func Match(src ByteSource, off int64, magic []byte) bool {
	buf := make([]byte, len(magic))
	if _, err := io.ReadFull(io.NewSectionReader(src, off, int64(len(magic))), buf); err != nil {
		return false
	}
	return bytes.Equal(buf, magic)
}
