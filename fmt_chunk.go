package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

// fmt chunk sizes accepted by the resolver. Everything downstream depends on
// the field offsets these imply, so this is the one place the decoder is
// strict.
const (
	fmtChunkSizeStd        = 16
	fmtChunkSizeWithCB     = 18
	fmtChunkSizeExtensible = 40

	fmtExtensionSize = 22
)

// FmtChunk stores the parsed WAV fmt chunk, including extensible metadata.
// It is immutable once parsed.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16

	// ExtendedSize is 0, or 22 when the extension block is present.
	ExtendedSize uint16
	// ValidBitsPerSample is informational and only meaningful when the
	// extension block is present.
	ValidBitsPerSample uint16
	ChannelMask        uint32
	// SubFormat carries the 16-byte sub-format GUID; only meaningful when
	// FormatTag is FormatExtensible.
	SubFormat [16]byte
}

// EffectiveFormatTag returns the translated codec identifier: the format tag
// itself, or for the extensible variant the 16-bit value leading the
// sub-format GUID.
func (f *FmtChunk) EffectiveFormatTag() uint16 {
	if f == nil {
		return 0
	}

	if f.FormatTag == FormatExtensible {
		return binary.LittleEndian.Uint16(f.SubFormat[:2])
	}

	return f.FormatTag
}

// readFmtChunk consumes exactly the fmt chunk from the source, which must be
// positioned on its first header byte.
func readFmtChunk(src ByteSource) (*FmtChunk, error) {
	var raw [24]byte
	if src.ReadBytes(raw[:]) != len(raw) {
		return nil, fmt.Errorf("%w: short read", ErrBadFormatChunk)
	}

	if !bytes.Equal(raw[0:4], riff.FmtID[:]) {
		return nil, fmt.Errorf("%w: unexpected chunk id %q", ErrBadFormatChunk, raw[0:4])
	}

	size := binary.LittleEndian.Uint32(raw[4:8])

	switch size {
	case fmtChunkSizeStd, fmtChunkSizeWithCB, fmtChunkSizeExtensible:
	default:
		return nil, fmt.Errorf("%w: unexpected chunk size %d", ErrBadFormatChunk, size)
	}

	chunk := &FmtChunk{
		FormatTag:      binary.LittleEndian.Uint16(raw[8:10]),
		NumChannels:    binary.LittleEndian.Uint16(raw[10:12]),
		SampleRate:     binary.LittleEndian.Uint32(raw[12:16]),
		AvgBytesPerSec: binary.LittleEndian.Uint32(raw[16:20]),
		BlockAlign:     binary.LittleEndian.Uint16(raw[20:22]),
		BitsPerSample:  binary.LittleEndian.Uint16(raw[22:24]),
	}

	switch size {
	case fmtChunkSizeStd:
		// no extension fields
	case fmtChunkSizeWithCB:
		// a declared-but-empty extension size field follows
		var cbSize [2]byte
		if src.ReadBytes(cbSize[:]) != len(cbSize) {
			return nil, fmt.Errorf("%w: short read on extension size", ErrBadFormatChunk)
		}
	case fmtChunkSizeExtensible:
		var cbSize [2]byte
		if src.ReadBytes(cbSize[:]) != len(cbSize) {
			return nil, fmt.Errorf("%w: short read on extension size", ErrBadFormatChunk)
		}

		chunk.ExtendedSize = binary.LittleEndian.Uint16(cbSize[:])
		if chunk.ExtendedSize != fmtExtensionSize {
			return nil, fmt.Errorf("%w: extension size %d, want %d", ErrBadFormatChunk, chunk.ExtendedSize, fmtExtensionSize)
		}

		var ext [fmtExtensionSize]byte
		if src.ReadBytes(ext[:]) != len(ext) {
			return nil, fmt.Errorf("%w: short read on extension block", ErrBadFormatChunk)
		}

		chunk.ValidBitsPerSample = binary.LittleEndian.Uint16(ext[0:2])
		chunk.ChannelMask = binary.LittleEndian.Uint32(ext[2:6])
		copy(chunk.SubFormat[:], ext[6:22])
	}

	return chunk, nil
}
