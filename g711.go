package wav

// ITU-T G.711 companding expansion. Both codecs store one encoded byte per
// sample and expand to a 13/14-bit magnitude normalized against the 16-bit
// PCM range.

const muLawBias = 0x84

func decodeMuLawSample(sample byte) int16 {
	value := ^sample
	sign := value & 0x80
	exponent := (value >> 4) & 0x07
	mantissa := value & 0x0F

	decoded := ((int(mantissa)<<3)+muLawBias)<<exponent - muLawBias
	if sign != 0 {
		decoded = -decoded
	}

	return int16(decoded)
}

func decodeALawSample(sample byte) int16 {
	value := sample ^ 0x55
	sign := value & 0x80
	exponent := (value >> 4) & 0x07
	mantissa := value & 0x0F

	decoded := int(mantissa) << 4
	switch exponent {
	case 0:
		decoded += 8
	case 1:
		decoded += 0x108
	default:
		decoded += 0x108
		decoded <<= exponent - 1
	}

	if sign == 0 {
		decoded = -decoded
	}

	return int16(decoded)
}

// ALawToF32 expands A-law samples to normalized float32. The number of
// samples converted is the length of dst, clamped to what src holds. A nil
// source or destination is a silent no-op.
func ALawToF32(src []byte, dst []float32) {
	if src == nil || dst == nil {
		return
	}

	n := len(dst)
	if len(src) < n {
		n = len(src)
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(decodeALawSample(src[i])) / scalePCMInt16
	}
}

// MuLawToF32 expands mu-law samples to normalized float32.
func MuLawToF32(src []byte, dst []float32) {
	if src == nil || dst == nil {
		return
	}

	n := len(dst)
	if len(src) < n {
		n = len(src)
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(decodeMuLawSample(src[i])) / scalePCMInt16
	}
}
