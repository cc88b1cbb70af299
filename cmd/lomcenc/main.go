// Command lomcenc encodes a sequence of PNG frames into a LOMC v1 container.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/lomc-codec/lomc"
)

func main() {
	raw := flag.Bool("raw", false, "write the bare LOMC container, skipping the outer zstd envelope")
	outPath := flag.String("o", "", "output path (default: <first input>.lomc)")
	debugOut := flag.String("debug-out", "", "write a block-map PNG of the last frame to this path")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: lomcenc [-raw] [-o out.lomc] [-debug-out map.png] frame1.png [frame2.png ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Args(), *outPath, *raw, *debugOut); err != nil {
		fmt.Fprintln(os.Stderr, "lomcenc:", err)
		os.Exit(1)
	}
}

func run(inputs []string, outPath string, raw bool, debugOut string) error {
	frames := make([]lomc.Plane, len(inputs))
	for i, path := range inputs {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		frames[i] = lomc.PlaneFromImage(img)
	}

	if outPath == "" {
		outPath = inputs[0] + ".lomc"
	}

	var container bytes.Buffer
	stats, err := lomc.NewEncoder().EncodeWithStats(&container, frames)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	if raw {
		if _, err := out.Write(container.Bytes()); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	} else if err := lomc.WriteZstd(out, container.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	for _, s := range stats {
		fmt.Fprintf(os.Stderr, "frame %d: %d bytes, avg %.2f bits/block\n", s.FrameIndex, s.Size, s.AverageBits)
	}
	fmt.Printf("Encoded %d frame(s) -> %s\n", len(frames), outPath)

	if debugOut != "" && len(stats) > 0 {
		last := stats[len(stats)-1]
		mapImg := lomc.BlockMapImage(last, 8)
		df, err := os.Create(debugOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", debugOut, err)
		}
		defer df.Close()
		if err := png.Encode(df, mapImg); err != nil {
			return fmt.Errorf("encode %s: %w", debugOut, err)
		}
		fmt.Printf("Block map -> %s\n", debugOut)
	}

	return nil
}
