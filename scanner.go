package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-audio/riff"
)

// minRIFFSize is the smallest size a RIFF chunk can declare and still hold a
// fmt chunk and a data chunk header.
const minRIFFSize = 36

// readRIFFHeader validates the 12-byte RIFF/WAVE envelope.
func readRIFFHeader(src ByteSource) error {
	var hdr [12]byte
	if src.ReadBytes(hdr[:]) != len(hdr) {
		return fmt.Errorf("%w: short read", ErrInvalidHeader)
	}

	if !bytes.Equal(hdr[0:4], riff.RiffID[:]) {
		return fmt.Errorf("%w: missing RIFF magic", ErrInvalidHeader)
	}

	if size := binary.LittleEndian.Uint32(hdr[4:8]); size < minRIFFSize {
		return fmt.Errorf("%w: declared size %d below minimum %d", ErrInvalidHeader, size, minRIFFSize)
	}

	if !bytes.Equal(hdr[8:12], riff.WavFormatID[:]) {
		return fmt.Errorf("%w: missing WAVE magic", ErrInvalidHeader)
	}

	return nil
}

// scanToData walks chunk headers until the data chunk, leaving the source
// positioned on the first payload byte. Chunks other than data are skipped,
// honoring the RIFF word-alignment pad on odd sizes. Returns the data chunk
// byte length.
func scanToData(src ByteSource) (uint32, error) {
	for {
		var hdr [8]byte
		if src.ReadBytes(hdr[:]) != len(hdr) {
			// Source exhausted before a data chunk appeared.
			return 0, ErrPCMDataNotFound
		}

		size := binary.LittleEndian.Uint32(hdr[4:8])
		if bytes.Equal(hdr[0:4], riff.DataFormatID[:]) {
			return size, nil
		}

		skip := uint64(size)
		if skip%2 == 1 {
			skip++
		}

		if err := skipBytes(src, skip); err != nil {
			return 0, err
		}
	}
}

// skipBytes advances the source past n bytes using relative seeks, each
// bounded to the signed 32-bit range the ByteSource contract allows.
func skipBytes(src ByteSource, n uint64) error {
	for n > 0 {
		step := n
		if step > math.MaxInt32 {
			step = math.MaxInt32
		}

		if !src.SeekRelative(int32(step)) {
			return fmt.Errorf("%w: skipping %d bytes", ErrSeekFailed, step)
		}

		n -= step
	}

	return nil
}
