package a7zip

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// NewSource adapts r into a ByteSource for the engine contract.
//
// Values that already satisfy ByteSource (bytes.Reader, io.SectionReader,
// the sources returned here) pass through unchanged. Files and other
// seekable readers are adapted in place. Anything else is spooled into
// memory, since the engines require look-ahead and backward seeks that a
// bare stream cannot provide.
func NewSource(r io.Reader) (ByteSource, error) {
	switch s := r.(type) {
	case ByteSource:
		return s, nil
	case *os.File:
		fi, err := s.Stat()
		if err != nil {
			return nil, fmt.Errorf("a7zip: %w", err)
		}
		return io.NewSectionReader(s, 0, fi.Size()), nil
	case io.ReadSeeker:
		size, err := s.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, fmt.Errorf("a7zip: %w", err)
		}
		if ra, ok := s.(io.ReaderAt); ok {
			return io.NewSectionReader(ra, 0, size), nil
		}
		return &seekerSource{rs: s, size: size}, nil
	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("a7zip: %w", err)
		}
		return bytes.NewReader(data), nil
	}
}

// BytesSource returns a ByteSource over an in-memory archive image.
func BytesSource(data []byte) ByteSource {
	return bytes.NewReader(data)
}

// seekerSource adapts a ReadSeeker that cannot read at an offset directly.
// ReadAt must be usable from concurrent engine code paths, so the seek and
// read are performed under a lock.
type seekerSource struct {
	mu   sync.Mutex
	rs   io.ReadSeeker
	size int64
}

func (s *seekerSource) ReadAt(p []byte, off int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if off < 0 {
		return 0, fmt.Errorf("a7zip: negative read offset %d", off)
	}
	if off >= s.size {
		return 0, io.EOF
	}
	if _, err := s.rs.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}
	n, err := io.ReadFull(s.rs, p)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return n, err
}

func (s *seekerSource) Size() int64 {
	return s.size
}
