package wav

import (
	"io"
	"os"
)

// ByteSource is the byte-level contract the decoder consumes. Implementations
// wrap a concrete transport (file handle, memory buffer, network stream) and
// carry no WAV knowledge of their own.
type ByteSource interface {
	// ReadBytes fills p with up to len(p) bytes and returns the number of
	// bytes actually read. A return value of 0 signals end-of-input or an
	// unrecoverable failure; the two are not distinguished.
	ReadBytes(p []byte) int

	// SeekRelative moves the read cursor relative to the current position.
	// The offset may be negative to seek backward. Offsets are limited to
	// the signed 32-bit range; larger movements must be issued as multiple
	// calls.
	SeekRelative(offset int32) bool
}

// fillFromReader reads from r until p is full or the reader stops producing.
func fillFromReader(r io.Reader, p []byte) int {
	total := 0
	for total < len(p) {
		n, err := r.Read(p[total:])
		total += n

		if err != nil {
			break
		}
	}

	return total
}

// MemorySource serves a WAV container held in an in-memory byte slice. The
// slice is not copied; it must remain valid for the lifetime of the source.
type MemorySource struct {
	data []byte
	pos  int
}

// NewMemorySource creates a byte source over data.
func NewMemorySource(data []byte) *MemorySource {
	return &MemorySource{data: data}
}

// ReadBytes implements ByteSource.
func (s *MemorySource) ReadBytes(p []byte) int {
	if s == nil {
		return 0
	}

	n := len(s.data) - s.pos
	if len(p) < n {
		n = len(p)
	}

	if n > 0 {
		copy(p, s.data[s.pos:s.pos+n])
		s.pos += n
	}

	return n
}

// SeekRelative implements ByteSource. Offsets beyond either end of the
// buffer are clamped; the call still succeeds.
func (s *MemorySource) SeekRelative(offset int32) bool {
	if s == nil {
		return false
	}

	off := int(offset)
	if off > 0 {
		if s.pos+off > len(s.data) {
			off = len(s.data) - s.pos
		}
	} else {
		if s.pos+off < 0 {
			off = -s.pos
		}
	}

	s.pos += off

	return true
}

// FileSource adapts an open operating-system file to the ByteSource
// contract. The caller (or the decoder, when constructed via OpenFile)
// remains responsible for closing the file.
type FileSource struct {
	f *os.File
}

// NewFileSource creates a byte source over an open file.
func NewFileSource(f *os.File) *FileSource {
	return &FileSource{f: f}
}

// ReadBytes implements ByteSource.
func (s *FileSource) ReadBytes(p []byte) int {
	if s == nil || s.f == nil {
		return 0
	}

	return fillFromReader(s.f, p)
}

// SeekRelative implements ByteSource.
func (s *FileSource) SeekRelative(offset int32) bool {
	if s == nil || s.f == nil {
		return false
	}

	_, err := s.f.Seek(int64(offset), io.SeekCurrent)

	return err == nil
}

// Close closes the underlying file.
func (s *FileSource) Close() error {
	if s == nil || s.f == nil {
		return nil
	}

	return s.f.Close()
}

// ReadSeekerSource adapts any io.ReadSeeker to the ByteSource contract.
type ReadSeekerSource struct {
	r io.ReadSeeker
}

// NewReadSeekerSource creates a byte source over r.
func NewReadSeekerSource(r io.ReadSeeker) *ReadSeekerSource {
	return &ReadSeekerSource{r: r}
}

// ReadBytes implements ByteSource.
func (s *ReadSeekerSource) ReadBytes(p []byte) int {
	if s == nil || s.r == nil {
		return 0
	}

	return fillFromReader(s.r, p)
}

// SeekRelative implements ByteSource.
func (s *ReadSeekerSource) SeekRelative(offset int32) bool {
	if s == nil || s.r == nil {
		return false
	}

	_, err := s.r.Seek(int64(offset), io.SeekCurrent)

	return err == nil
}
