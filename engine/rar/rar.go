// Package rar provides the rar archive engine, backed by
// github.com/nwaples/rardecode/v2. Import it for side effects to make the
// format available to a7zip.Open.
//
// Rar is a sequential format: the entry list is collected in one pass at
// open time, and each OpenEntry pays a fresh pass up to the entry.
package rar

import (
	"errors"
	"io"

	"github.com/nwaples/rardecode/v2"

	"github.com/jyushion/a7zip/engine"
)

func init() {
	engine.Register(Engine{})
}

// Shared prefix of the v4 and v5 signatures.
var magic = []byte{'R', 'a', 'r', '!', 0x1A, 0x07}

// Engine opens rar archives.
type Engine struct{}

func (Engine) Name() string { return "rar" }

func (Engine) Sniff(src engine.ByteSource) bool {
	return engine.Match(src, 0, magic)
}

func (Engine) Open(src engine.ByteSource, opts engine.OpenOptions) (engine.Handle, error) {
	h := &handle{src: src, password: opts.Password}
	r, err := h.newReader()
	if err != nil {
		return nil, err
	}
	for {
		hdr, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		h.entries = append(h.entries, *hdr)
	}
	return h, nil
}

type handle struct {
	src      engine.ByteSource
	password string
	entries  []rardecode.FileHeader
}

func (h *handle) newReader() (*rardecode.Reader, error) {
	section := io.NewSectionReader(h.src, 0, h.src.Size())
	var opts []rardecode.Option
	if h.password != "" {
		opts = append(opts, rardecode.Password(h.password))
	}
	return rardecode.NewReader(section, opts...)
}

func (h *handle) FormatName() string { return "rar" }

func (h *handle) EntryCount() int { return len(h.entries) }

func (h *handle) ArchiveProperty(id engine.PropID) (engine.Value, bool) {
	switch id {
	case engine.PropIDType:
		return engine.StringValue("rar"), true
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
		return engine.BoolValue(hdr.IsDir), true
	case engine.PropIDSize:
		if hdr.UnKnownSize {
			return engine.Value{}, false
		}
		return engine.LongValue(hdr.UnPackedSize), true
	case engine.PropIDPackSize:
		return engine.LongValue(hdr.PackedSize), true
	case engine.PropIDModificationTime:
		if hdr.ModificationTime.IsZero() {
			return engine.Value{}, false
		}
		return engine.TimeValue(hdr.ModificationTime), true
	case engine.PropIDCreationTime:
		if hdr.CreationTime.IsZero() {
			return engine.Value{}, false
		}
		return engine.TimeValue(hdr.CreationTime), true
	case engine.PropIDAccessTime:
		if hdr.AccessTime.IsZero() {
			return engine.Value{}, false
		}
		return engine.TimeValue(hdr.AccessTime), true
	case engine.PropIDAttributes:
		return engine.IntValue(hdr.Attributes), true
	case engine.PropIDPosixAttributes:
		return engine.IntValue(int64(hdr.Mode())), true
	case engine.PropIDHostOS:
		return engine.IntValue(int64(hdr.HostOS)), true
	case engine.PropIDUnpackVersion:
		return engine.IntValue(int64(hdr.Version)), true
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
	if index < 0 || index >= len(h.entries) {
		return nil, engine.ErrNoEntry
	}
	r, err := h.newReader()
	if err != nil {
		return nil, err
	}
	for i := 0; i <= index; i++ {
		if _, err := r.Next(); err != nil {
			return nil, err
		}
	}
	return io.NopCloser(r), nil
}

func (h *handle) Close() error {
	h.entries = nil
	return nil
}
