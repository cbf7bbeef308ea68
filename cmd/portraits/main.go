// portraits cuts a grid of character portraits into one PNG per actor of
// the roster, written to <data dir>/portraits/<actor id>.png.
//
// Usage: portraits [-cols 2] [-rows 2] <grid.png>
//
// Cells are read left to right, top to bottom, in roster order.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"partysheet/internal/config"
	"partysheet/internal/game"
)

func main() {
	code := run(os.Args[1:])
	if code != 0 {
		os.Exit(code)
	}
}

func run(args []string) int {
	fs := flag.NewFlagSet("portraits", flag.ContinueOnError)
	cols := fs.Int("cols", 2, "grid columns")
	rows := fs.Int("rows", 2, "grid rows")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || *cols < 1 || *rows < 1 {
		fmt.Fprintf(os.Stderr, "usage: portraits [-cols n] [-rows n] <grid.png>\n")
		return 1
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}
	roster, err := game.LoadRoster(cfg.Roster)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	inPath := filepath.Clean(fs.Arg(0))
	if strings.Contains(inPath, "..") {
		fmt.Fprintf(os.Stderr, "path must not escape current directory\n")
		return 1
	}
	f, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", inPath, err)
		return 1
	}
	defer func() {
		if cErr := f.Close(); cErr != nil {
			fmt.Fprintf(os.Stderr, "close input: %v\n", cErr)
		}
	}()
	img, _, err := image.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 1
	}

	outDir := filepath.Join(cfg.DataDir, "portraits")
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir %s: %v\n", outDir, err)
		return 1
	}
	cells := gridCells(img.Bounds(), *cols, *rows)
	for i, a := range roster.Actors {
		if i >= len(cells) {
			fmt.Fprintf(os.Stderr, "grid has %d cells, %d actors left without a portrait\n", len(cells), len(roster.Actors)-i)
			break
		}
		path, err := writeCrop(img, cells[i], outDir, a.ID+".png")
		if err != nil {
			fmt.Fprintf(os.Stderr, "write portrait of %s: %v\n", a.ID, err)
			return 1
		}
		fmt.Println(path)
	}
	return 0
}

// gridCells splits b into cols x rows cells, row by row. The last column
// and row absorb any remainder.
func gridCells(b image.Rectangle, cols, rows int) []image.Rectangle {
	cw, ch := b.Dx()/cols, b.Dy()/rows
	out := make([]image.Rectangle, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := image.Rect(b.Min.X+c*cw, b.Min.Y+r*ch, b.Min.X+(c+1)*cw, b.Min.Y+(r+1)*ch)
			if c == cols-1 {
				cell.Max.X = b.Max.X
			}
			if r == rows-1 {
				cell.Max.Y = b.Max.Y
			}
			out = append(out, cell)
		}
	}
	return out
}

func writeCrop(img image.Image, r image.Rectangle, outDir, baseName string) (path string, err error) {
	dx, dy := r.Dx(), r.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, dx, dy))
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			dst.Set(x, y, img.At(r.Min.X+x, r.Min.Y+y))
		}
	}
	if baseName != filepath.Base(baseName) || strings.Contains(baseName, "..") {
		return "", fmt.Errorf("invalid file name %q", baseName)
	}
	path = filepath.Join(outDir, baseName)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}()
	return path, png.Encode(f, dst)
}
