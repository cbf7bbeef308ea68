package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridCells(t *testing.T) {
	cells := gridCells(image.Rect(0, 0, 101, 50), 2, 2)
	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 50, 25),
		image.Rect(50, 0, 101, 25),
		image.Rect(0, 25, 50, 50),
		image.Rect(50, 25, 101, 50),
	}, cells)
}

func TestWriteCrop(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(2, 2, color.RGBA{R: 0xff, A: 0xff})

	dir := t.TempDir()
	path, err := writeCrop(src, image.Rect(2, 2, 4, 4), dir, "ylva.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ylva.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	r, _, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r, "top-left pixel is red")
	assert.Equal(t, uint32(0xffff), a)
}

func TestWriteCrop_RejectsPaths(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	_, err := writeCrop(src, src.Bounds(), t.TempDir(), "../evil.png")
	assert.Error(t, err)
}
