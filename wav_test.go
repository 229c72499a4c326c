package wav

import "testing"

func TestFormatName(t *testing.T) {
	tests := []struct {
		name string
		tag  uint16
		want string
	}{
		{"pcm", FormatPCM, "PCM"},
		{"ieee", FormatIEEEFloat, "IEEE float"},
		{"alaw", FormatALaw, "A-law"},
		{"mulaw", FormatMuLaw, "mu-law"},
		{"extensible", FormatExtensible, "extensible"},
		{"adpcm", 2, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatName(tt.tag)
			if got != tt.want {
				t.Fatalf("FormatName(%d)=%q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestNilDecoderAccessors(t *testing.T) {
	var d *Decoder

	if d.BytesPerSample() != 0 {
		t.Fatal("nil decoder BytesPerSample should be 0")
	}

	if d.SampleBitDepth() != 0 {
		t.Fatal("nil decoder SampleBitDepth should be 0")
	}

	if d.TotalSamples() != 0 || d.TotalFrames() != 0 || d.BytesRemaining() != 0 {
		t.Fatal("nil decoder counters should be 0")
	}

	if d.Format() != nil {
		t.Fatal("nil decoder Format should be nil")
	}

	if _, err := d.Duration(); err == nil {
		t.Fatal("nil decoder Duration should fail")
	}

	if n := d.ReadRaw(make([]byte, 4)); n != 0 {
		t.Fatal("nil decoder ReadRaw should be 0")
	}

	if n := d.ReadF32(make([]float32, 4)); n != 0 {
		t.Fatal("nil decoder ReadF32 should be 0")
	}

	if err := d.Close(); err != nil {
		t.Fatalf("nil decoder Close=%v, want nil", err)
	}
}
