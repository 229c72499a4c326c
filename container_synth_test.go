package wav

import (
	"encoding/binary"
	"math"
	"testing"
)

// Helpers for synthesizing wav containers in memory.

func le16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)

	return b
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)

	return b
}

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// buildChunk wraps data in a chunk header and applies the RIFF word-alignment
// pad. The declared size excludes the pad byte.
func buildChunk(id string, data []byte) []byte {
	out := concatBytes([]byte(id), le32(uint32(len(data))), data)
	if len(data)%2 == 1 {
		out = append(out, 0)
	}

	return out
}

// buildFmtBody lays out the six fixed fmt fields plus any extension bytes.
func buildFmtBody(tag, channels uint16, rate, avg uint32, blockAlign, bits uint16, extra []byte) []byte {
	return concatBytes(le16(tag), le16(channels), le32(rate), le32(avg), le16(blockAlign), le16(bits), extra)
}

// buildFmtChunk emits a fmt chunk with an explicit declared size, which may
// deliberately disagree with the body for failure tests.
func buildFmtChunk(declaredSize uint32, body []byte) []byte {
	return concatBytes([]byte("fmt "), le32(declaredSize), body)
}

func buildRIFF(chunks ...[]byte) []byte {
	payload := concatBytes(chunks...)

	return concatBytes([]byte("RIFF"), le32(uint32(4+len(payload))), []byte("WAVE"), payload)
}

func pcm16Bytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}

	return out
}

func f32Bytes(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(s))
	}

	return out
}

// buildPCM16Wav synthesizes a minimal 16-bit PCM container with interleaved
// samples.
func buildPCM16Wav(channels uint16, rate uint32, samples []int16) []byte {
	blockAlign := channels * 2
	body := buildFmtBody(FormatPCM, channels, rate, rate*uint32(blockAlign), blockAlign, 16, nil)

	return buildRIFF(
		buildFmtChunk(16, body),
		buildChunk("data", pcm16Bytes(samples)),
	)
}

// buildExtensibleFmt emits a 40-byte fmt chunk carrying subTag in the
// sub-format GUID.
func buildExtensibleFmt(subTag, channels uint16, rate uint32, blockAlign, bits, cbSize uint16) []byte {
	guid := make([]byte, 16)
	binary.LittleEndian.PutUint16(guid[0:2], subTag)
	// KSDATAFORMAT GUID tail shared by all registered sub-formats.
	copy(guid[2:], []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71})

	extra := concatBytes(le16(cbSize), le16(bits), le32(0x3), guid)
	body := buildFmtBody(FormatExtensible, channels, rate, rate*uint32(blockAlign), blockAlign, bits, extra)

	return buildFmtChunk(40, body)
}

func mustOpen(t *testing.T, container []byte) *Decoder {
	t.Helper()

	d, err := OpenBytes(container)
	if err != nil {
		t.Fatalf("failed to open synthesized container: %v", err)
	}

	return d
}

func assertFloat32Equal(t *testing.T, got, want []float32) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d floats, want %d", len(got), len(want))
	}

	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Fatalf("sample %d: got %v (%#x), want %v (%#x)",
				i, got[i], math.Float32bits(got[i]), want[i], math.Float32bits(want[i]))
		}
	}
}
