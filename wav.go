package wav

import "errors"

// WAV container format tags as stored in the fmt chunk.
const (
	FormatPCM        uint16 = 1
	FormatIEEEFloat  uint16 = 3
	FormatALaw       uint16 = 6
	FormatMuLaw      uint16 = 7
	FormatExtensible uint16 = 0xFFFE
)

var (
	// ErrInvalidHeader is returned when the RIFF/WAVE envelope is malformed.
	ErrInvalidHeader = errors.New("invalid RIFF/WAVE header")
	// ErrBadFormatChunk is returned when the fmt chunk cannot be parsed.
	ErrBadFormatChunk = errors.New("invalid fmt chunk")
	// ErrPCMDataNotFound is returned when the data chunk is never found.
	ErrPCMDataNotFound = errors.New("PCM data not found")
	// ErrSeekFailed is returned when the byte source rejects a relative seek.
	ErrSeekFailed = errors.New("seek on byte source failed")
	// ErrUnsupportedFormat is returned when the effective format tag has no
	// float conversion path (e.g. a compressed codec).
	ErrUnsupportedFormat = errors.New("unsupported wav format")

	errNilSource  = errors.New("nil byte source")
	errNilDecoder = errors.New("nil decoder")
)

// FormatName returns a human readable name for a container format tag.
func FormatName(tag uint16) string {
	switch tag {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	case FormatALaw:
		return "A-law"
	case FormatMuLaw:
		return "mu-law"
	case FormatExtensible:
		return "extensible"
	default:
		return "unknown"
	}
}
