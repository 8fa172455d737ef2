package a7zip

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/jyushion/a7zip/engine"
)

// fakeMagic marks byte sources for the fake engine registered below.
const fakeMagic = "A7ZFAKE1"

var errFakeOpen = errors.New("fake engine: deliberate open failure")

type fakeEntry struct {
	path string
	data string
	dir  bool
}

var fakeEntries = []fakeEntry{
	{path: "docs/readme.txt", data: "hello from the fake engine"},
	{path: "docs", dir: true},
	{path: "bin/tool", data: "\x00\x01\x02\x03"},
}

var fakeMTime = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

type fakeEngine struct{}

func (fakeEngine) Name() string { return "fake" }

func (fakeEngine) Sniff(src engine.ByteSource) bool {
	return engine.Match(src, 0, []byte(fakeMagic))
}

func (fakeEngine) Open(src engine.ByteSource, opts engine.OpenOptions) (engine.Handle, error) {
	return &fakeHandle{}, nil
}

// nilEngine violates the engine contract: no handle and no error.
type nilEngine struct{}

func (nilEngine) Name() string                     { return "nilnil" }
func (nilEngine) Sniff(src engine.ByteSource) bool { return false }
func (nilEngine) Open(engine.ByteSource, engine.OpenOptions) (engine.Handle, error) {
	return nil, nil
}

type failEngine struct{}

func (failEngine) Name() string                     { return "fail" }
func (failEngine) Sniff(src engine.ByteSource) bool { return false }
func (failEngine) Open(engine.ByteSource, engine.OpenOptions) (engine.Handle, error) {
	return nil, errFakeOpen
}

func init() {
	engine.Register(fakeEngine{})
	engine.Register(nilEngine{})
	engine.Register(failEngine{})
}

type fakeHandle struct {
	closes int
}

func (h *fakeHandle) FormatName() string { return "fake" }

func (h *fakeHandle) EntryCount() int { return len(fakeEntries) }

func (h *fakeHandle) ArchiveProperty(id engine.PropID) (engine.Value, bool) {
	if id == engine.PropIDType {
		return engine.StringValue("fake"), true
	}
	return engine.Value{}, false
}

func (h *fakeHandle) ArchivePropertyType(id engine.PropID) int32 {
	switch id {
	case engine.PropIDType:
		return int32(engine.TypeString)
	case engine.PropIDError:
		// Simulates a backend with a newer tag space.
		return 77
	case engine.PropIDChecksum:
		return -3
	}
	return int32(engine.TypeEmpty)
}

func (h *fakeHandle) EntryProperty(index int, id engine.PropID) (engine.Value, bool) {
	if index < 0 || index >= len(fakeEntries) {
		return engine.Value{}, false
	}
	e := fakeEntries[index]
	switch id {
	case engine.PropIDPath:
		return engine.StringValue(e.path), true
	case engine.PropIDIsDir:
		return engine.BoolValue(e.dir), true
	case engine.PropIDSize:
		return engine.LongValue(int64(len(e.data))), true
	case engine.PropIDModificationTime:
		return engine.TimeValue(fakeMTime), true
	}
	return engine.Value{}, false
}

func (h *fakeHandle) EntryPropertyType(index int, id engine.PropID) int32 {
	v, ok := h.EntryProperty(index, id)
	if !ok {
		return int32(engine.TypeEmpty)
	}
	return int32(v.Kind)
}

func (h *fakeHandle) OpenEntry(index int) (io.ReadCloser, error) {
	if index < 0 || index >= len(fakeEntries) {
		return nil, engine.ErrNoEntry
	}
	return io.NopCloser(strings.NewReader(fakeEntries[index].data)), nil
}

func (h *fakeHandle) Close() error {
	h.closes++
	return nil
}

func fakeSource() ByteSource {
	return BytesSource([]byte(fakeMagic + " payload"))
}

func openFake(t *testing.T, opts ...OpenOption) *Archive {
	t.Helper()
	a, err := Open(fakeSource(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestOpenDetectsFormat(t *testing.T) {
	a := openFake(t)

	format, err := a.FormatName()
	require.NoError(t, err)
	assert.Equal(t, "fake", format)

	count, err := a.EntryCount()
	require.NoError(t, err)
	assert.Equal(t, len(fakeEntries), count)
}

func TestOpenUnknownFormat(t *testing.T) {
	_, err := Open(BytesSource([]byte("certainly not an archive")))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestOpenMissingEngine(t *testing.T) {
	_, err := Open(fakeSource(), WithEngine("no-such-engine"))
	assert.ErrorIs(t, err, ErrNoEngine)
}

func TestOpenNilHandleIsContractViolation(t *testing.T) {
	a, err := Open(fakeSource(), WithEngine("nilnil"))
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrEngineContract)
}

func TestOpenWrapsEngineError(t *testing.T) {
	_, err := Open(fakeSource(), WithEngine("fail"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errFakeOpen)
	assert.Contains(t, err.Error(), "fail")
}

func TestCloseIsIdempotent(t *testing.T) {
	a, err := Open(fakeSource())
	require.NoError(t, err)

	h := a.h.(*fakeHandle)
	require.NoError(t, a.Close())
	assert.Equal(t, 1, h.closes)

	// Second close is a no-op, observably identical to the first.
	require.NoError(t, a.Close())
	assert.Equal(t, 1, h.closes)
}

func TestAccessorsAfterClose(t *testing.T) {
	a, err := Open(fakeSource())
	require.NoError(t, err)
	require.NoError(t, a.Close())

	accessors := map[string]func() error{
		"FormatName": func() error { _, err := a.FormatName(); return err },
		"EntryCount": func() error { _, err := a.EntryCount(); return err },
		"ArchivePropertyType": func() error {
			_, err := a.ArchivePropertyType(PropIDType)
			return err
		},
		"ArchiveProperty": func() error {
			_, _, err := a.ArchiveProperty(PropIDType)
			return err
		},
		"ArchiveString": func() error {
			_, err := a.ArchiveString(PropIDType, nil)
			return err
		},
		"EntryPropertyType": func() error {
			_, err := a.EntryPropertyType(0, PropIDPath)
			return err
		},
		"EntryProperty": func() error {
			_, _, err := a.EntryProperty(0, PropIDPath)
			return err
		},
		"EntryString": func() error {
			_, err := a.EntryString(0, PropIDPath, nil)
			return err
		},
		"EntryPath": func() error {
			_, err := a.EntryPath(0, nil)
			return err
		},
		"EntryInt":  func() error { _, err := a.EntryInt(0, PropIDSize); return err },
		"EntryBool": func() error { _, err := a.EntryBool(0, PropIDIsDir); return err },
		"EntryTime": func() error {
			_, err := a.EntryTime(0, PropIDModificationTime)
			return err
		},
		"OpenEntry": func() error { _, err := a.OpenEntry(0); return err },
		"Extract":   func() error { return a.Extract(0, io.Discard) },
	}

	for name, call := range accessors {
		// Deterministic on every call, not just the first.
		assert.ErrorIs(t, call(), ErrClosed, name)
		assert.ErrorIs(t, call(), ErrClosed, name)
	}
}

func TestPropertyTypeCoercion(t *testing.T) {
	a := openFake(t)

	pt, err := a.ArchivePropertyType(PropIDType)
	require.NoError(t, err)
	assert.Equal(t, TypeString, pt)

	// The fake backend reports tag 77 here; it must degrade to unknown.
	pt, err = a.ArchivePropertyType(PropIDError)
	require.NoError(t, err)
	assert.Equal(t, TypeUnknown, pt)

	// Negative tags too.
	pt, err = a.ArchivePropertyType(PropIDChecksum)
	require.NoError(t, err)
	assert.Equal(t, TypeUnknown, pt)
}

func TestTypedEntryAccessors(t *testing.T) {
	a := openFake(t)

	path, err := a.EntryPath(0, nil)
	require.NoError(t, err)
	assert.Equal(t, "docs/readme.txt", path)

	size, err := a.EntryInt(0, PropIDSize)
	require.NoError(t, err)
	assert.EqualValues(t, len(fakeEntries[0].data), size)

	dir, err := a.EntryBool(1, PropIDIsDir)
	require.NoError(t, err)
	assert.True(t, dir)

	mtime, err := a.EntryTime(0, PropIDModificationTime)
	require.NoError(t, err)
	assert.True(t, fakeMTime.Equal(mtime))
}

func TestSoftAbsentResults(t *testing.T) {
	a := openFake(t)

	// Absent archive string property is "", not an error.
	s, err := a.ArchiveString(PropIDComment, nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	// Kind-mismatched typed reads yield zero values, not errors.
	n, err := a.EntryInt(0, PropIDPath)
	require.NoError(t, err)
	assert.Zero(t, n)

	b, err := a.EntryBool(0, PropIDSize)
	require.NoError(t, err)
	assert.False(t, b)
}

func TestEntryIndexOutOfRange(t *testing.T) {
	a := openFake(t)

	count, err := a.EntryCount()
	require.NoError(t, err)
	require.Equal(t, 3, count)

	// Index 5 with 3 entries: absent result, never a value for some
	// unrelated entry.
	_, ok, err := a.EntryProperty(5, PropIDPath)
	require.NoError(t, err)
	assert.False(t, ok)

	s, err := a.EntryPath(5, nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	_, err = a.OpenEntry(5)
	assert.ErrorIs(t, err, ErrNoEntry)

	_, ok, err = a.EntryProperty(-1, PropIDPath)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExtract(t *testing.T) {
	a := openFake(t)

	var buf bytes.Buffer
	require.NoError(t, a.Extract(0, &buf))
	assert.Equal(t, fakeEntries[0].data, buf.String())
}

func TestEntryView(t *testing.T) {
	a := openFake(t)

	e := a.Entry(0)
	assert.Equal(t, 0, e.Index())
	assert.Equal(t, "docs/readme.txt", e.Path())
	assert.EqualValues(t, len(fakeEntries[0].data), e.Size())
	assert.False(t, e.IsDir())
	assert.True(t, fakeMTime.Equal(e.ModTime()))
	assert.True(t, a.Entry(1).IsDir())

	require.NoError(t, a.Close())

	// Views degrade to zero values once the archive is closed.
	assert.Equal(t, "", e.Path())
	assert.Zero(t, e.Size())
	assert.False(t, e.IsDir())
}

func TestOpenFileOwnsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.arc")
	require.NoError(t, os.WriteFile(path, []byte(fakeMagic+" on disk"), 0o644))

	a, err := OpenFile(path)
	require.NoError(t, err)

	format, err := a.FormatName()
	require.NoError(t, err)
	assert.Equal(t, "fake", format)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "absent.arc"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithCharsetDefault(t *testing.T) {
	// "Ð°" is the byte-smuggled shape of UTF-8 "а" (U+0430).
	smuggled := fakeEntry{path: "Ð°.txt", data: "x"}
	withEntry(t, smuggled, func(a *Archive) {
		path, err := a.EntryPath(0, nil)
		require.NoError(t, err)
		assert.Equal(t, "а.txt", path)
	}, WithCharset(unicode.UTF8))

	// A per-call encoding overrides the default.
	withEntry(t, fakeEntry{path: "ä", data: ""}, func(a *Archive) {
		path, err := a.EntryPath(0, charmap.Windows1251)
		require.NoError(t, err)
		assert.Equal(t, "ф", path)
	})
}

// withEntry runs fn against an archive whose single fake entry is e.
func withEntry(t *testing.T, e fakeEntry, fn func(*Archive), opts ...OpenOption) {
	t.Helper()
	saved := fakeEntries
	fakeEntries = []fakeEntry{e}
	defer func() { fakeEntries = saved }()

	a, err := Open(fakeSource(), opts...)
	require.NoError(t, err)
	defer a.Close()
	fn(a)
}
