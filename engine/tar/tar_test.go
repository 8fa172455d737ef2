package tar

import (
	"archive/tar"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/jyushion/a7zip/engine"
)

var modTime = time.Date(2022, 7, 9, 18, 45, 3, 0, time.UTC)

func writeTar(t *testing.T, w io.Writer) {
	t.Helper()
	tw := tar.NewWriter(w)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "src/",
		Typeflag: tar.TypeDir,
		Mode:     0o755,
		ModTime:  modTime,
	}))

	content := []byte("package main\n")
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:    "src/main.go",
		Mode:    0o644,
		Size:    int64(len(content)),
		ModTime: modTime,
		Uname:   "build",
		Gname:   "build",
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "src/link.go",
		Typeflag: tar.TypeSymlink,
		Linkname: "main.go",
		ModTime:  modTime,
	}))

	require.NoError(t, tw.Close())
}

// fixtures returns the same tar image under every supported compression.
func fixtures(t *testing.T) map[string]engine.ByteSource {
	t.Helper()
	out := make(map[string]engine.ByteSource)

	var plain bytes.Buffer
	writeTar(t, &plain)
	out[""] = bytes.NewReader(plain.Bytes())

	var gzBuf bytes.Buffer
	gz := gzip.NewWriter(&gzBuf)
	writeTar(t, gz)
	require.NoError(t, gz.Close())
	out["gzip"] = bytes.NewReader(gzBuf.Bytes())

	var zsBuf bytes.Buffer
	zw, err := zstd.NewWriter(&zsBuf)
	require.NoError(t, err)
	writeTar(t, zw)
	require.NoError(t, zw.Close())
	out["zstd"] = bytes.NewReader(zsBuf.Bytes())

	var xzBuf bytes.Buffer
	xw, err := xz.NewWriter(&xzBuf)
	require.NoError(t, err)
	writeTar(t, xw)
	require.NoError(t, xw.Close())
	out["xz"] = bytes.NewReader(xzBuf.Bytes())

	return out
}

func TestSniffAllCompressions(t *testing.T) {
	for method, src := range fixtures(t) {
		assert.True(t, Engine{}.Sniff(src), "method %q", method)
	}
}

func TestSniffRejectsNonTar(t *testing.T) {
	assert.False(t, Engine{}.Sniff(bytes.NewReader([]byte("not a tar"))))

	// A gzip stream that does not contain tar data must not be claimed.
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(bytes.Repeat([]byte("just text "), 100))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	assert.False(t, Engine{}.Sniff(bytes.NewReader(buf.Bytes())))
}

func TestOpenAllCompressions(t *testing.T) {
	for method, src := range fixtures(t) {
		h, err := Engine{}.Open(src, engine.OpenOptions{})
		require.NoError(t, err, "method %q", method)

		assert.Equal(t, "tar", h.FormatName())
		assert.Equal(t, 3, h.EntryCount())

		v, ok := h.ArchiveProperty(engine.PropIDMethod)
		if method == "" {
			assert.False(t, ok)
		} else {
			require.True(t, ok)
			assert.Equal(t, method, v.Str)
		}

		require.NoError(t, h.Close())
	}
}

func TestEntryProperties(t *testing.T) {
	src := fixtures(t)["gzip"]
	h, err := Engine{}.Open(src, engine.OpenOptions{})
	require.NoError(t, err)
	defer h.Close()

	v, ok := h.EntryProperty(0, engine.PropIDIsDir)
	require.True(t, ok)
	assert.True(t, v.Bool)

	v, ok = h.EntryProperty(1, engine.PropIDPath)
	require.True(t, ok)
	assert.Equal(t, "src/main.go", v.Str)

	v, ok = h.EntryProperty(1, engine.PropIDSize)
	require.True(t, ok)
	assert.EqualValues(t, len("package main\n"), v.Int)

	v, ok = h.EntryProperty(1, engine.PropIDModificationTime)
	require.True(t, ok)
	assert.True(t, modTime.Equal(v.Time))

	v, ok = h.EntryProperty(1, engine.PropIDUser)
	require.True(t, ok)
	assert.Equal(t, "build", v.Str)

	v, ok = h.EntryProperty(1, engine.PropIDPosixAttributes)
	require.True(t, ok)
	assert.EqualValues(t, 0o644, v.Int)

	v, ok = h.EntryProperty(2, engine.PropIDSymLink)
	require.True(t, ok)
	assert.Equal(t, "main.go", v.Str)

	_, ok = h.EntryProperty(3, engine.PropIDPath)
	assert.False(t, ok)
}

func TestOpenEntryRescans(t *testing.T) {
	for method, src := range fixtures(t) {
		h, err := Engine{}.Open(src, engine.OpenOptions{})
		require.NoError(t, err, "method %q", method)

		rc, err := h.OpenEntry(1)
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, "package main\n", string(data), "method %q", method)

		_, err = h.OpenEntry(42)
		assert.ErrorIs(t, err, engine.ErrNoEntry)

		require.NoError(t, h.Close())
	}
}
