// Package tar provides the tar archive engine, with transparent gzip,
// zstd, and xz stream decompression. Import it for side effects to make
// the format available to a7zip.Open.
package tar

import (
	"archive/tar"
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/jyushion/a7zip/engine"
)

func init() {
	engine.Register(Engine{})
}

var (
	magicGzip = []byte{0x1F, 0x8B}
	magicZstd = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicXz   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	magicTar  = []byte("ustar") // at offset 257 inside the first header block
)

// Engine opens tar archives, optionally wrapped in a gzip, zstd, or xz
// stream.
type Engine struct{}

func (Engine) Name() string { return "tar" }

// Sniff decompresses just past the first tar header block so that a plain
// gzip/zstd/xz file that does not contain a tar stream is not claimed.
func (Engine) Sniff(src engine.ByteSource) bool {
	if engine.Match(src, 257, magicTar) {
		return true
	}
	r, closer, _, err := newStream(src)
	if err != nil {
		return false
	}
	if closer != nil {
		defer closer.Close()
	}
	header := make([]byte, 262)
	if _, err := io.ReadFull(r, header); err != nil {
		return false
	}
	return bytes.Equal(header[257:262], magicTar)
}

func (Engine) Open(src engine.ByteSource, opts engine.OpenOptions) (engine.Handle, error) {
	r, closer, method, err := newStream(src)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}

	tr := tar.NewReader(r)
	var entries []tar.Header
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, *hdr)
	}

	return &handle{src: src, entries: entries, method: method}, nil
}

// newStream wraps src in the decompressor its magic calls for and returns
// the stream, an optional closer, and the method name ("" for plain tar).
func newStream(src engine.ByteSource) (io.Reader, io.Closer, string, error) {
	section := io.NewSectionReader(src, 0, src.Size())
	switch {
	case engine.Match(src, 0, magicGzip):
		gz, err := gzip.NewReader(section)
		if err != nil {
			return nil, nil, "", err
		}
		return gz, gz, "gzip", nil
	case engine.Match(src, 0, magicZstd):
		dec, err := zstd.NewReader(section)
		if err != nil {
			return nil, nil, "", err
		}
		rc := dec.IOReadCloser()
		return rc, rc, "zstd", nil
	case engine.Match(src, 0, magicXz):
		xr, err := xz.NewReader(section)
		if err != nil {
			return nil, nil, "", err
		}
		return xr, nil, "xz", nil
	default:
		return section, nil, "", nil
	}
}

type handle struct {
	src     engine.ByteSource
	entries []tar.Header
	method  string
}

func (h *handle) FormatName() string { return "tar" }

func (h *handle) EntryCount() int { return len(h.entries) }

func (h *handle) ArchiveProperty(id engine.PropID) (engine.Value, bool) {
	switch id {
	case engine.PropIDType:
		return engine.StringValue("tar"), true
	case engine.PropIDMethod:
		if h.method == "" {
			return engine.Value{}, false
		}
		return engine.StringValue(h.method), true
	case engine.PropIDNumSubFiles:
		return engine.IntValue(int64(len(h.entries))), true
	case engine.PropIDPhysicalSize:
		return engine.LongValue(h.src.Size()), true
	}
	return engine.Value{}, false
}

func (h *handle) ArchivePropertyType(id engine.PropID) int32 {
	v, ok := h.ArchiveProperty(id)
	if !ok {
		return int32(engine.TypeEmpty)
	}
	return int32(v.Kind)
}

func (h *handle) EntryProperty(index int, id engine.PropID) (engine.Value, bool) {
	if index < 0 || index >= len(h.entries) {
		return engine.Value{}, false
	}
	hdr := &h.entries[index]
	switch id {
	case engine.PropIDPath:
		return engine.StringValue(hdr.Name), true
	case engine.PropIDIsDir:
		return engine.BoolValue(hdr.Typeflag == tar.TypeDir), true
	case engine.PropIDSize:
		return engine.LongValue(hdr.Size), true
	case engine.PropIDModificationTime:
		if hdr.ModTime.IsZero() {
			return engine.Value{}, false
		}
		return engine.TimeValue(hdr.ModTime), true
	case engine.PropIDAccessTime:
		if hdr.AccessTime.IsZero() {
			return engine.Value{}, false
		}
		return engine.TimeValue(hdr.AccessTime), true
	case engine.PropIDCreationTime:
		if hdr.ChangeTime.IsZero() {
			return engine.Value{}, false
		}
		return engine.TimeValue(hdr.ChangeTime), true
	case engine.PropIDPosixAttributes:
		return engine.IntValue(hdr.Mode), true
	case engine.PropIDUser:
		if hdr.Uname == "" {
			return engine.Value{}, false
		}
		return engine.StringValue(hdr.Uname), true
	case engine.PropIDGroup:
		if hdr.Gname == "" {
			return engine.Value{}, false
		}
		return engine.StringValue(hdr.Gname), true
	case engine.PropIDSymLink:
		if hdr.Linkname == "" {
			return engine.Value{}, false
		}
		return engine.StringValue(hdr.Linkname), true
	}
	return engine.Value{}, false
}

func (h *handle) EntryPropertyType(index int, id engine.PropID) int32 {
	v, ok := h.EntryProperty(index, id)
	if !ok {
		return int32(engine.TypeEmpty)
	}
	return int32(v.Kind)
}

// OpenEntry rescans the stream up to the requested entry. Tar has no
// per-entry random access, so each open pays one sequential pass.
func (h *handle) OpenEntry(index int) (io.ReadCloser, error) {
	if index < 0 || index >= len(h.entries) {
		return nil, engine.ErrNoEntry
	}
	r, closer, _, err := newStream(h.src)
	if err != nil {
		return nil, err
	}
	tr := tar.NewReader(r)
	for i := 0; i <= index; i++ {
		if _, err := tr.Next(); err != nil {
			if closer != nil {
				closer.Close()
			}
			return nil, err
		}
	}
	return &entryReader{r: tr, closer: closer}, nil
}

func (h *handle) Close() error {
	h.entries = nil
	return nil
}

type entryReader struct {
	r      io.Reader
	closer io.Closer
}

func (er *entryReader) Read(p []byte) (int, error) {
	return er.r.Read(p)
}

func (er *entryReader) Close() error {
	if er.closer != nil {
		return er.closer.Close()
	}
	return nil
}
