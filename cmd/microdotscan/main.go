// Command microdotscan classifies 36x36 camera-frame images against the
// microdot decoder pipeline and prints the resulting symbol grid. It stops
// short of position decoding: the downstream position codec is an
// external collaborator this repository does not implement (see
// microdot.PositionCodec), so there is no (x, y) to print, only the
// classified grid the codec would otherwise consume.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anoto-go/microdot"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: microdotscan <image-file> [image-file...]\n\n")
		fmt.Fprintf(os.Stderr, "Classify 36x36 camera-frame images and print their symbol grids.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		grid, err := scanFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", path, err)
			exitCode = 1
			continue
		}
		if flag.NArg() > 1 {
			fmt.Printf("%s:\n", path)
		}
		fmt.Print(grid.String())
	}
	os.Exit(exitCode)
}

func scanFile(path string) (*microdot.SymbolGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	frame, err := microdot.FrameFromImage(img)
	if err != nil {
		return nil, err
	}

	return classify(frame)
}

// classify recovers from panics the pipeline may raise on malformed
// frames, converting them to errors.
func classify(frame *microdot.Image) (grid *microdot.SymbolGrid, err error) {
	defer func() {
		if r := recover(); r != nil {
			grid = nil
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return microdot.ClassifyFrame(frame)
}
