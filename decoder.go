package wav

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
)

// Decoder streams sample data out of a wav container. It is created by a
// successful open, owns its byte source for its whole lifetime, and must not
// be used from multiple goroutines without external synchronization.
type Decoder struct {
	src    ByteSource
	closer io.Closer // set when the decoder owns the underlying handle

	// FmtChunk is the format descriptor as parsed from the container.
	FmtChunk *FmtChunk

	NumChans       uint16
	BitDepth       uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	// WavAudioFormat is the effective codec identifier: the fmt chunk's
	// format tag, or for the extensible variant the tag carried in the
	// leading bytes of the sub-format GUID.
	WavAudioFormat uint16

	bytesPerSample   uint32
	totalSampleCount uint64
	bytesRemaining   uint64
}

// NewDecoder opens a wav container from the given byte source, consuming the
// envelope and fmt chunk and positioning the source on the first payload
// byte. The decoder borrows the source; Close releases nothing.
func NewDecoder(src ByteSource) (*Decoder, error) {
	if src == nil {
		return nil, errNilSource
	}

	if err := readRIFFHeader(src); err != nil {
		return nil, err
	}

	fmtChunk, err := readFmtChunk(src)
	if err != nil {
		return nil, err
	}

	if fmtChunk.NumChannels == 0 {
		return nil, fmt.Errorf("%w: zero channels", ErrBadFormatChunk)
	}

	bytesPerSample := uint32(fmtChunk.BlockAlign) / uint32(fmtChunk.NumChannels)
	if bytesPerSample == 0 {
		return nil, fmt.Errorf("%w: block align %d too small for %d channels",
			ErrBadFormatChunk, fmtChunk.BlockAlign, fmtChunk.NumChannels)
	}

	dataSize, err := scanToData(src)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		src:              src,
		FmtChunk:         fmtChunk,
		NumChans:         fmtChunk.NumChannels,
		BitDepth:         fmtChunk.BitsPerSample,
		SampleRate:       fmtChunk.SampleRate,
		AvgBytesPerSec:   fmtChunk.AvgBytesPerSec,
		WavAudioFormat:   fmtChunk.EffectiveFormatTag(),
		bytesPerSample:   bytesPerSample,
		totalSampleCount: uint64(dataSize) / uint64(bytesPerSample),
		bytesRemaining:   uint64(dataSize),
	}, nil
}

// OpenFile opens the wav file at path. The decoder owns the file handle and
// releases it on Close.
func OpenFile(path string) (*Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	d, err := NewDecoder(NewFileSource(f))
	if err != nil {
		f.Close()
		return nil, err
	}

	d.closer = f

	return d, nil
}

// OpenBytes opens a wav container held in memory. The data is not copied and
// must remain valid for the lifetime of the decoder.
func OpenBytes(data []byte) (*Decoder, error) {
	return NewDecoder(NewMemorySource(data))
}

// Close releases the underlying handle if the decoder owns it. Decoders
// constructed via NewDecoder borrow their source and close nothing.
func (d *Decoder) Close() error {
	if d == nil || d.closer == nil {
		return nil
	}

	err := d.closer.Close()
	d.closer = nil

	if err != nil {
		return fmt.Errorf("failed to close byte source: %w", err)
	}

	return nil
}

// BytesPerSample returns the per-channel sample width in bytes.
func (d *Decoder) BytesPerSample() int {
	if d == nil {
		return 0
	}

	return int(d.bytesPerSample)
}

// SampleBitDepth returns the bit depth encoding of each sample.
func (d *Decoder) SampleBitDepth() int32 {
	if d == nil {
		return 0
	}

	return int32(d.BitDepth)
}

// TotalSamples returns the number of whole samples in the data chunk,
// counting every channel.
func (d *Decoder) TotalSamples() uint64 {
	if d == nil {
		return 0
	}

	return d.totalSampleCount
}

// TotalFrames returns the number of sample frames (one sample per channel).
func (d *Decoder) TotalFrames() uint64 {
	if d == nil || d.NumChans == 0 {
		return 0
	}

	return d.totalSampleCount / uint64(d.NumChans)
}

// BytesRemaining returns the number of payload bytes not yet consumed.
func (d *Decoder) BytesRemaining() uint64 {
	if d == nil {
		return 0
	}

	return d.bytesRemaining
}

// Format returns the audio format of the decoded content.
func (d *Decoder) Format() *audio.Format {
	if d == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(d.NumChans),
		SampleRate:  int(d.SampleRate),
	}
}

// Duration returns the time duration of the audio payload.
func (d *Decoder) Duration() (time.Duration, error) {
	if d == nil {
		return 0, errNilDecoder
	}

	if d.SampleRate == 0 {
		return 0, fmt.Errorf("%w: zero sample rate", ErrBadFormatChunk)
	}

	seconds := float64(d.TotalFrames()) / float64(d.SampleRate)

	return time.Duration(seconds * float64(time.Second)), nil
}

// ReadRaw reads up to len(p) bytes of raw sample data into p, returning the
// number of bytes read. Reads are clamped to the remaining payload; a short
// read signals end-of-stream, not an error.
func (d *Decoder) ReadRaw(p []byte) int {
	if d == nil || len(p) == 0 || d.bytesRemaining == 0 {
		return 0
	}

	toRead := uint64(len(p))
	if toRead > d.bytesRemaining {
		toRead = d.bytesRemaining
	}

	n := d.src.ReadBytes(p[:toRead])
	d.bytesRemaining -= uint64(n)

	return n
}

// ReadSamples reads up to samplesToRead whole samples in the container's
// native representation into p, returning the number of samples read. The
// request is clamped both to the capacity of p and to the remaining payload.
// A return value below the request signals end-of-stream. Trailing bytes of
// a truncated final sample are consumed but not counted.
func (d *Decoder) ReadSamples(samplesToRead int, p []byte) int {
	if d == nil || samplesToRead <= 0 || len(p) == 0 {
		return 0
	}

	bytesPerSample := int(d.bytesPerSample)

	maxSamples := len(p) / bytesPerSample
	if samplesToRead > maxSamples {
		samplesToRead = maxSamples
	}

	bytesRead := d.ReadRaw(p[:samplesToRead*bytesPerSample])

	return bytesRead / bytesPerSample
}

// SeekSample positions the stream on the given absolute sample index.
// Indexes past the end are clamped to the last sample; seeking an empty
// payload succeeds as a no-op. Large movements are issued as multiple
// relative seeks bounded to the signed 32-bit range. If a step fails
// mid-sequence the internal byte bookkeeping is left partially updated;
// there is no atomic large-offset seek to fall back on.
func (d *Decoder) SeekSample(sample uint64) error {
	if d == nil || d.src == nil {
		return errNilDecoder
	}

	if d.totalSampleCount == 0 {
		return nil
	}

	if sample >= d.totalSampleCount {
		sample = d.totalSampleCount - 1
	}

	totalSizeInBytes := d.totalSampleCount * uint64(d.bytesPerSample)
	currentBytePos := totalSizeInBytes - d.bytesRemaining
	targetBytePos := sample * uint64(d.bytesPerSample)

	var offset uint64

	forward := targetBytePos > currentBytePos
	if forward {
		offset = targetBytePos - currentBytePos
	} else {
		offset = currentBytePos - targetBytePos
	}

	for offset > 0 {
		step := offset
		if step > math.MaxInt32 {
			step = math.MaxInt32
		}

		if forward {
			if !d.src.SeekRelative(int32(step)) {
				return fmt.Errorf("%w: seeking forward %d bytes", ErrSeekFailed, step)
			}

			d.bytesRemaining -= step
		} else {
			if !d.src.SeekRelative(-int32(step)) {
				return fmt.Errorf("%w: seeking backward %d bytes", ErrSeekFailed, step)
			}

			d.bytesRemaining += step
		}

		offset -= step
	}

	return nil
}
