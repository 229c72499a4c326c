// This tool prints the format description of the passed wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/audiokit/wav"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	dec, err := wav.OpenFile(args[0])
	if err != nil {
		return err
	}
	defer dec.Close()

	fmt.Fprintf(out, "Format: %s\n", wav.FormatName(dec.WavAudioFormat))
	if dec.FmtChunk.FormatTag == wav.FormatExtensible {
		fmt.Fprintf(out, "Container tag: extensible (channel mask %#x, %d valid bits)\n",
			dec.FmtChunk.ChannelMask, dec.FmtChunk.ValidBitsPerSample)
	}

	fmt.Fprintf(out, "Channels: %d\n", dec.NumChans)
	fmt.Fprintf(out, "Sample rate: %d Hz\n", dec.SampleRate)
	fmt.Fprintf(out, "Bit depth: %d\n", dec.BitDepth)
	fmt.Fprintf(out, "Bytes per sample: %d\n", dec.BytesPerSample())
	fmt.Fprintf(out, "Frames: %d\n", dec.TotalFrames())

	dur, err := dec.Duration()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Duration: %s\n", dur)

	return nil
}
