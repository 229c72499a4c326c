// This tool converts a wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/audiokit/wav"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

var flagPath = flag.String("path", "", "The path to the wav file to convert to aiff")

func main() {
	flag.Parse()

	if *flagPath == "" {
		fmt.Println("You must set the -path flag")
		os.Exit(1)
	}

	usr, err := user.Current()
	if err != nil {
		fmt.Println("Failed to get the user home directory")
		os.Exit(1)
	}

	sourcePath := *flagPath
	if strings.HasPrefix(sourcePath, "~/") {
		sourcePath = strings.Replace(sourcePath, "~", usr.HomeDir, 1)
	}

	decoder, err := wav.OpenFile(sourcePath)
	if err != nil {
		fmt.Println("Invalid WAV file:", err)
		os.Exit(1)
	}
	defer decoder.Close()

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		fmt.Println("Failed to create", outPath)
		panic(err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, int(decoder.SampleRate), int(decoder.BitDepth), int(decoder.NumChans))
	format := decoder.Format()

	buf := &audio.Float32Buffer{Data: make([]float32, 64*1024), Format: format}

	for {
		num, err := decoder.PCMBuffer(buf)
		if err != nil {
			fmt.Println("Failed to decode samples:", err)
			os.Exit(1)
		}

		if num == 0 {
			break
		}

		intBuf := float32ToIntBuffer(buf.Data[:num], format, int(decoder.BitDepth))

		if err := encoder.Write(intBuf); err != nil {
			panic(err)
		}

		if num < len(buf.Data) {
			break
		}
	}

	if err := encoder.Close(); err != nil {
		panic(err)
	}

	fmt.Printf("Wav file converted to %s\n", outPath)
}

func float32ToIntBuffer(data []float32, format *audio.Format, bitDepth int) *audio.IntBuffer {
	intBuf := &audio.IntBuffer{
		Format:         format,
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(data)),
	}
	for i, v := range data {
		intBuf.Data[i] = float32ToPCMInt(v, bitDepth)
	}

	return intBuf
}

func float32ToPCMInt(value float32, bitDepth int) int {
	value = clampFloat32(value, -1, 1)

	switch bitDepth {
	case 8:
		return int(float32ToPCMUint8(value))
	case 16, 24, 32:
		return int(float32ToPCMInt32(value, bitDepth))
	default:
		return 0
	}
}

func float32ToPCMUint8(value float32) uint8 {
	scaled := int(math.Round(float64((value + 1.0) * 127.5)))
	if scaled < 0 {
		return 0
	}

	if scaled > 255 {
		return 255
	}

	return uint8(scaled)
}

func float32ToPCMInt32(value float32, bitDepth int) int32 {
	switch bitDepth {
	case 16:
		return clampScaledPCM(value, 32768.0, 32767)
	case 24:
		return clampScaledPCM(value, 8388608.0, 8388607)
	case 32:
		return clampScaledPCM(value, 2147483648.0, 2147483647)
	default:
		return 0
	}
}

func clampScaledPCM(value float32, scale float64, max int64) int32 {
	sample := min(int64(math.Round(float64(value)*scale)), max)

	low := int64(-scale)
	if sample < low {
		sample = low
	}

	return int32(sample)
}

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
