// Package wav decodes the RIFF/WAVE audio container.
//
// The decoder consumes an abstract ByteSource (a read plus relative-seek
// contract), locates the fmt and data chunks, and exposes the sample
// payload three ways: raw bytes, whole native samples, and normalized
// 32-bit floats. Absolute seeking by sample index is supported, including
// on payloads larger than what a single signed 32-bit seek can cover.
//
// Supported sample representations are PCM integer (any fixed byte width,
// with dedicated 8/16/24/32-bit paths), IEEE float (32/64-bit), A-law, and
// mu-law, plus the WAVE_FORMAT_EXTENSIBLE wrapping of any of these.
// Compressed codecs such as ADPCM or GSM 6.10 are not supported.
//
// Concrete byte sources for files, in-memory buffers, and io.ReadSeeker
// values are provided; OpenFile and OpenBytes are convenience front doors
// over them.
package wav
