// Package a7zip provides a read-only facade over pluggable archive format
// engines: open an archive from any byte source, enumerate its entries, and
// query typed metadata for the archive and for individual entries.
//
// The package does no container parsing itself. Format detection and
// decompression live in engine backends behind the contract in the [engine]
// subpackage; importing a backend for side effects makes its format
// available:
//
//	import (
//	    "github.com/jyushion/a7zip"
//
//	    _ "github.com/jyushion/a7zip/engine/sevenzip"
//	    _ "github.com/jyushion/a7zip/engine/zip"
//	)
//
// # Quick start
//
//	a, err := a7zip.OpenFile("backup.7z")
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	n, _ := a.EntryCount()
//	for i := 0; i < n; i++ {
//	    path, _ := a.EntryPath(i, nil)
//	    size, _ := a.EntryInt(i, a7zip.PropIDSize)
//	    fmt.Printf("%10d  %s\n", size, path)
//	}
//
// # Lifecycle
//
// An Archive owns exactly one backend handle. Close releases it exactly
// once and is safe to call repeatedly; every accessor called after Close
// fails with [ErrClosed]. An Archive is not safe for concurrent accessor
// calls without external synchronization.
//
// # String encoding
//
// Some backends return entry names whose bytes were smuggled through a
// text channel one byte per character. String accessors take an optional
// encoding (or a default set with [WithCharset]) and reinterpret such
// strings under it; see the heuristic's limits on the accessor docs.
package a7zip
