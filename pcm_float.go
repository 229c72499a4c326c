package wav

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

const (
	scalePCMInt16 = 32768.0
	scalePCMInt32 = 2147483648.0
	maxPCMUint8   = 255.0

	// stagingBufferSize bounds the working memory of the staged float
	// conversion loop regardless of payload length.
	stagingBufferSize = 4096
)

// U8ToF32 converts unsigned 8-bit PCM samples to normalized float32. The
// number of samples converted is the length of dst, clamped to what src
// holds. A nil source or destination is a silent no-op, as for all the
// conversion routines below.
func U8ToF32(src []byte, dst []float32) {
	if src == nil || dst == nil {
		return
	}

	n := len(dst)
	if len(src) < n {
		n = len(src)
	}

	for i := 0; i < n; i++ {
		dst[i] = (float32(src[i])/maxPCMUint8)*2 - 1
	}
}

// S16ToF32 converts signed little-endian 16-bit PCM samples to normalized
// float32.
func S16ToF32(src []byte, dst []float32) {
	if src == nil || dst == nil {
		return
	}

	n := len(dst)
	if avail := len(src) / 2; avail < n {
		n = avail
	}

	for i := 0; i < n; i++ {
		sample := int16(binary.LittleEndian.Uint16(src[i*2:]))
		dst[i] = float32(sample) / scalePCMInt16
	}
}

// S24ToF32 converts packed signed little-endian 24-bit PCM samples to
// normalized float32. Each sample is widened so its three bytes occupy the
// upper bytes of a 32-bit integer, keeping the sign bit at bit 31.
func S24ToF32(src []byte, dst []float32) {
	if src == nil || dst == nil {
		return
	}

	n := len(dst)
	if avail := len(src) / 3; avail < n {
		n = avail
	}

	for i := 0; i < n; i++ {
		raw := src[i*3 : i*3+3]
		sample := int32(uint32(raw[0])<<8 | uint32(raw[1])<<16 | uint32(raw[2])<<24)
		dst[i] = float32(float64(sample) / scalePCMInt32)
	}
}

// S32ToF32 converts signed little-endian 32-bit PCM samples to normalized
// float32.
func S32ToF32(src []byte, dst []float32) {
	if src == nil || dst == nil {
		return
	}

	n := len(dst)
	if avail := len(src) / 4; avail < n {
		n = avail
	}

	for i := 0; i < n; i++ {
		sample := int32(binary.LittleEndian.Uint32(src[i*4:]))
		dst[i] = float32(float64(sample) / scalePCMInt32)
	}
}

// F64ToF32 narrows little-endian IEEE 64-bit float samples to float32.
func F64ToF32(src []byte, dst []float32) {
	if src == nil || dst == nil {
		return
	}

	n := len(dst)
	if avail := len(src) / 8; avail < n {
		n = avail
	}

	for i := 0; i < n; i++ {
		sample := math.Float64frombits(binary.LittleEndian.Uint64(src[i*8:]))
		dst[i] = float32(sample)
	}
}

// f32Passthrough copies little-endian IEEE 32-bit float samples into dst
// without arithmetic.
func f32Passthrough(src []byte, dst []float32) {
	if src == nil || dst == nil {
		return
	}

	n := len(dst)
	if avail := len(src) / 4; avail < n {
		n = avail
	}

	for i := 0; i < n; i++ {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
	}
}

// genericPCMToF32 converts PCM samples of an arbitrary fixed byte width to
// normalized float32. Up to 4 leading bytes of each sample are accumulated
// most-significant first into a 32-bit integer; low bytes stay zero for
// narrower widths, bytes past the fourth are ignored.
func genericPCMToF32(src []byte, bytesPerSample int, dst []float32) {
	if src == nil || dst == nil || bytesPerSample <= 0 {
		return
	}

	n := len(dst)
	if avail := len(src) / bytesPerSample; avail < n {
		n = avail
	}

	for i := 0; i < n; i++ {
		raw := src[i*bytesPerSample:]

		var sample uint32
		for j := 0; j < bytesPerSample && j < 4; j++ {
			sample |= uint32(raw[j]) << (24 - 8*j)
		}

		dst[i] = float32(float64(int32(sample)) / scalePCMInt32)
	}
}

// convertFunc selects the batch converter matching the decoder's effective
// format tag, or nil when the format has no float conversion path.
func (d *Decoder) convertFunc() func(src []byte, dst []float32) {
	switch d.WavAudioFormat {
	case FormatPCM:
		switch d.bytesPerSample {
		case 1:
			return U8ToF32
		case 2:
			return S16ToF32
		case 3:
			return S24ToF32
		case 4:
			return S32ToF32
		default:
			width := int(d.bytesPerSample)
			return func(src []byte, dst []float32) {
				genericPCMToF32(src, width, dst)
			}
		}
	case FormatIEEEFloat:
		if d.bytesPerSample == 4 {
			return f32Passthrough
		}

		return F64ToF32
	case FormatALaw:
		return ALawToF32
	case FormatMuLaw:
		return MuLawToF32
	default:
		return nil
	}
}

// ReadF32 reads and converts up to len(dst) samples into normalized 32-bit
// floats, returning the number of samples produced. Conversion runs in
// fixed-size stages so working memory stays bounded on arbitrarily long
// payloads. A return value below len(dst) signals end-of-stream; an
// unsupported format yields 0.
func (d *Decoder) ReadF32(dst []float32) int {
	if d == nil || len(dst) == 0 {
		return 0
	}

	convert := d.convertFunc()
	if convert == nil {
		return 0
	}

	bytesPerSample := int(d.bytesPerSample)
	if bytesPerSample > stagingBufferSize {
		return 0
	}

	var stage [stagingBufferSize]byte

	total := 0
	for total < len(dst) {
		want := len(dst) - total
		if maxStage := len(stage) / bytesPerSample; want > maxStage {
			want = maxStage
		}

		n := d.ReadSamples(want, stage[:want*bytesPerSample])
		if n == 0 {
			break
		}

		convert(stage[:n*bytesPerSample], dst[total:total+n])
		total += n
	}

	return total
}

// PCMBuffer fills buf with normalized float samples, returning the number
// of samples written. The buffer's format metadata is populated from the
// decoder.
func (d *Decoder) PCMBuffer(buf *audio.Float32Buffer) (int, error) {
	if d == nil || buf == nil {
		return 0, nil
	}

	if d.convertFunc() == nil {
		return 0, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, d.WavAudioFormat)
	}

	buf.Format = d.Format()
	buf.SourceBitDepth = int(d.BitDepth)

	return d.ReadF32(buf.Data), nil
}

// FullPCMBuffer reads the entire remaining payload into memory as normalized
// floats. Consider the streaming ReadF32/PCMBuffer for large containers.
func (d *Decoder) FullPCMBuffer() (*audio.Float32Buffer, error) {
	if d == nil {
		return nil, errNilDecoder
	}

	if d.convertFunc() == nil {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, d.WavAudioFormat)
	}

	buf := &audio.Float32Buffer{
		Data:           make([]float32, 0, stagingBufferSize),
		Format:         d.Format(),
		SourceBitDepth: int(d.BitDepth),
	}

	var chunk [stagingBufferSize]float32

	for {
		n := d.ReadF32(chunk[:])
		buf.Data = append(buf.Data, chunk[:n]...)

		if n < len(chunk) {
			break
		}
	}

	return buf, nil
}
