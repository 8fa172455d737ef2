// Package zip provides the zip archive engine, backed by
// github.com/klauspost/compress/zip. Import it for side effects to make
// the format available to a7zip.Open.
package zip

import (
	"io"
	"strconv"

	"github.com/klauspost/compress/zip"

	"github.com/jyushion/a7zip/engine"
)

func init() {
	engine.Register(Engine{})
}

var (
	magicLocal = []byte{'P', 'K', 0x03, 0x04}
	magicEmpty = []byte{'P', 'K', 0x05, 0x06}
)

// Engine opens zip archives.
type Engine struct{}

func (Engine) Name() string { return "zip" }

func (Engine) Sniff(src engine.ByteSource) bool {
	return engine.Match(src, 0, magicLocal) || engine.Match(src, 0, magicEmpty)
}

func (Engine) Open(src engine.ByteSource, opts engine.OpenOptions) (engine.Handle, error) {
	r, err := zip.NewReader(src, src.Size())
	if err != nil {
		return nil, err
	}
	return &handle{r: r}, nil
}

type handle struct {
	r *zip.Reader
}

func (h *handle) FormatName() string { return "zip" }

func (h *handle) EntryCount() int { return len(h.r.File) }

func (h *handle) ArchiveProperty(id engine.PropID) (engine.Value, bool) {
	switch id {
	case engine.PropIDType:
		return engine.StringValue("zip"), true
	case engine.PropIDComment:
		if h.r.Comment == "" {
			return engine.Value{}, false
		}
		return engine.StringValue(h.r.Comment), true
	case engine.PropIDNumSubFiles:
		return engine.IntValue(int64(len(h.r.File))), true
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
	if index < 0 || index >= len(h.r.File) {
		return engine.Value{}, false
	}
	f := h.r.File[index]
	switch id {
	case engine.PropIDPath:
		return engine.StringValue(f.Name), true
	case engine.PropIDIsDir:
		return engine.BoolValue(f.FileInfo().IsDir()), true
	case engine.PropIDSize:
		return engine.LongValue(int64(f.UncompressedSize64)), true
	case engine.PropIDPackSize:
		return engine.LongValue(int64(f.CompressedSize64)), true
	case engine.PropIDModificationTime:
		if f.Modified.IsZero() {
			return engine.Value{}, false
		}
		return engine.TimeValue(f.Modified), true
	case engine.PropIDCRC:
		return engine.IntValue(int64(f.CRC32)), true
	case engine.PropIDAttributes:
		return engine.IntValue(int64(f.ExternalAttrs)), true
	case engine.PropIDPosixAttributes:
		return engine.IntValue(int64(f.Mode())), true
	case engine.PropIDEncrypted:
		// Bit 0 of the general purpose flags marks an encrypted entry.
		return engine.BoolValue(f.Flags&0x1 != 0), true
	case engine.PropIDMethod:
		return engine.StringValue(methodName(f.Method)), true
	case engine.PropIDComment:
		if f.Comment == "" {
			return engine.Value{}, false
		}
		return engine.StringValue(f.Comment), true
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

func (h *handle) OpenEntry(index int) (io.ReadCloser, error) {
	if index < 0 || index >= len(h.r.File) {
		return nil, engine.ErrNoEntry
	}
	return h.r.File[index].Open()
}

func (h *handle) Close() error {
	// The reader holds no resources beyond the caller's byte source.
	return nil
}

func methodName(m uint16) string {
	switch m {
	case zip.Store:
		return "Store"
	case zip.Deflate:
		return "Deflate"
	default:
		return "Method" + strconv.Itoa(int(m))
	}
}
