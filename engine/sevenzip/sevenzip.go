// Package sevenzip provides the 7z archive engine, backed by
// github.com/bodgit/sevenzip. Import it for side effects to make the
// format available to a7zip.Open.
package sevenzip

import (
	"io"

	"github.com/bodgit/sevenzip"

	"github.com/jyushion/a7zip/engine"
)

func init() {
	engine.Register(Engine{})
}

var magic = []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}

// Engine opens 7z archives.
type Engine struct{}

func (Engine) Name() string { return "7z" }

func (Engine) Sniff(src engine.ByteSource) bool {
	return engine.Match(src, 0, magic)
}

func (Engine) Open(src engine.ByteSource, opts engine.OpenOptions) (engine.Handle, error) {
	var (
		r   *sevenzip.Reader
		err error
	)
	if opts.Password != "" {
		r, err = sevenzip.NewReaderWithPassword(src, src.Size(), opts.Password)
	} else {
		r, err = sevenzip.NewReader(src, src.Size())
	}
	if err != nil {
		return nil, err
	}
	return &handle{r: r}, nil
}

type handle struct {
	r *sevenzip.Reader
}

func (h *handle) FormatName() string { return "7z" }

func (h *handle) EntryCount() int { return len(h.r.File) }

func (h *handle) ArchiveProperty(id engine.PropID) (engine.Value, bool) {
	switch id {
	case engine.PropIDType:
		return engine.StringValue("7z"), true
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
		return engine.LongValue(int64(f.UncompressedSize)), true
	case engine.PropIDModificationTime:
		if f.Modified.IsZero() {
			return engine.Value{}, false
		}
		return engine.TimeValue(f.Modified), true
	case engine.PropIDCreationTime:
		if f.Created.IsZero() {
			return engine.Value{}, false
		}
		return engine.TimeValue(f.Created), true
	case engine.PropIDAccessTime:
		if f.Accessed.IsZero() {
			return engine.Value{}, false
		}
		return engine.TimeValue(f.Accessed), true
	case engine.PropIDCRC:
		return engine.IntValue(int64(f.CRC32)), true
	case engine.PropIDAttributes:
		return engine.IntValue(int64(f.Attributes)), true
	case engine.PropIDPosixAttributes:
		return engine.IntValue(int64(f.FileInfo().Mode())), true
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
	return nil
}
