package wav

import (
	"fmt"
	"log"
)

func ExampleOpenBytes() {
	container := buildPCM16Wav(1, 44100, []int16{0, 16384, -16384, 32767})

	dec, err := OpenBytes(container)
	if err != nil {
		log.Fatal(err)
	}

	samples := make([]float32, dec.TotalSamples())
	n := dec.ReadF32(samples)

	fmt.Printf("%s, %d Hz, %d samples: %v\n",
		FormatName(dec.WavAudioFormat), dec.SampleRate, n, samples[:n])
	// Output: PCM, 44100 Hz, 4 samples: [0 0.5 -0.5 0.9999695]
}

func ExampleDecoder_SeekSample() {
	dec, err := OpenBytes(buildPCM16Wav(1, 8000, []int16{10, 20, 30, 40}))
	if err != nil {
		log.Fatal(err)
	}

	if err := dec.SeekSample(2); err != nil {
		log.Fatal(err)
	}

	var sample [1]float32
	dec.ReadF32(sample[:])

	fmt.Printf("sample 2: %v\n", sample[0]*32768)
	// Output: sample 2: 30
}
