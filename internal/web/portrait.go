package web

import (
	"bytes"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const portraitCacheControl = "public, max-age=3600"

// handlePortrait serves an actor's portrait from DataDir/portraits: the
// file the actor names, else <actor id>.png as written by cmd/portraits.
// Without either it serves a generated blocky token.
func (s *Server) handlePortrait(w http.ResponseWriter, r *http.Request) {
	a, ok, err := s.Registry.Actor(r.Context(), r.PathValue("actorID"))
	if err != nil {
		log.Printf("portrait: %v", err)
		http.Error(w, "failed to load actor", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	name := a.Portrait
	if name == "" {
		name = a.ID + ".png"
	}
	if p, ok := s.portraitPath(name); ok {
		if b, err := os.ReadFile(p); err == nil {
			w.Header().Set("Content-Type", http.DetectContentType(b))
			w.Header().Set("Cache-Control", portraitCacheControl)
			if _, err := w.Write(b); err != nil {
				log.Printf("write portrait: %v", err)
			}
			return
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, tokenImage(a.ID)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("write portrait: %v", err)
	}
}

// portraitPath resolves a portrait file name under DataDir/portraits,
// rejecting anything that would leave that directory.
func (s *Server) portraitPath(name string) (string, bool) {
	if name == "" || s.DataDir == "" {
		return "", false
	}
	clean := filepath.Clean(name)
	if clean == "." || filepath.IsAbs(clean) || strings.Contains(clean, "..") ||
		strings.ContainsRune(clean, filepath.Separator) {
		return "", false
	}
	baseDir := filepath.Join(s.DataDir, "portraits")
	resolved := filepath.Join(baseDir, clean)
	rel, err := filepath.Rel(baseDir, resolved)
	if err != nil || strings.Contains(rel, "..") {
		return "", false
	}
	return resolved, true
}

const (
	blockPx    = 8
	tokenCells = 8
	tokenPx    = blockPx * tokenCells
)

var (
	tokenBackground = color.RGBA{0x18, 0x14, 0x28, 255}
	tokenPalette    = []color.RGBA{
		{0x8b, 0x73, 0x55, 255},
		{0x2d, 0x5a, 0x3d, 255},
		{0xc4, 0x6c, 0x32, 255},
		{0x6b, 0x8c, 0x5a, 255},
		{0x45, 0x2c, 0x5c, 255},
		{0x55, 0x55, 0x66, 255},
	}
)

// fillBlock fills one block at block coords (bx, by) with clr.
func fillBlock(img *image.RGBA, bx, by int, clr color.RGBA) {
	for dy := 0; dy < blockPx; dy++ {
		for dx := 0; dx < blockPx; dx++ {
			img.SetRGBA(bx*blockPx+dx, by*blockPx+dy, clr)
		}
	}
}

// tokenImage draws a mirrored 8x8 block pattern seeded by id, so every
// actor without a portrait still gets a stable token.
func tokenImage(id string) image.Image {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	seed := h.Sum64()

	img := image.NewRGBA(image.Rect(0, 0, tokenPx, tokenPx))
	fg := tokenPalette[seed%uint64(len(tokenPalette))]
	bits := seed >> 8
	for by := 0; by < tokenCells; by++ {
		for bx := 0; bx < tokenCells/2; bx++ {
			clr := tokenBackground
			// Keep the frame dark.
			inside := by > 0 && by < tokenCells-1 && bx > 0
			if inside && bits&1 == 1 {
				clr = fg
			}
			bits = bits>>1 | bits<<63
			fillBlock(img, bx, by, clr)
			fillBlock(img, tokenCells-1-bx, by, clr)
		}
	}
	return img
}
