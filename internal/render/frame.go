// Package render turns grid symbols into raw pixel frames. The RGB24 layout
// produced by Render is a compatibility contract with the downstream video
// consumer: row-major, top-to-bottom, left-to-right, three bytes per pixel
// in R, G, B order, no headers or padding.
package render

import (
	"errors"
	"fmt"
	"image/color"

	"turing/internal/core"
)

// ErrPaletteUnderflow is returned when the palette has fewer colors than the
// symbol alphabet. It is a startup error; Render itself cannot fail.
var ErrPaletteUnderflow = errors.New("palette smaller than symbol alphabet")

// Renderer serializes grids of fixed dimensions into a reusable frame
// buffer. Rendering is a pure function of the cell values.
type Renderer struct {
	w, h    int
	palette []color.RGBA
	frame   []byte
	rgba    []byte
}

// NewRenderer validates that the palette covers all symbols values and
// allocates the frame buffer.
func NewRenderer(w, h, symbols int, palette []color.RGBA) (*Renderer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", core.ErrInvalidDimensions, w, h)
	}
	if symbols < 1 {
		symbols = 1
	}
	if len(palette) < symbols {
		return nil, fmt.Errorf("%w: %d colors for %d symbols", ErrPaletteUnderflow, len(palette), symbols)
	}
	return &Renderer{
		w:       w,
		h:       h,
		palette: append([]color.RGBA(nil), palette...),
		frame:   make([]byte, w*h*3),
	}, nil
}

// FrameSize returns the exact byte length of every rendered frame.
func (r *Renderer) FrameSize() int { return r.w * r.h * 3 }

// Render fills the RGB24 frame buffer from the cell values and returns it.
// The buffer is reused across calls; it is valid until the next Render.
func (r *Renderer) Render(cells []core.Symbol) []byte {
	for i, c := range cells {
		col := r.palette[c]
		base := i * 3
		r.frame[base+0] = col.R
		r.frame[base+1] = col.G
		r.frame[base+2] = col.B
	}
	return r.frame
}

// RenderRGBA fills a separate RGBA buffer for on-screen display. The viewer
// uploads it into a texture; the byte stream contract is unaffected.
func (r *Renderer) RenderRGBA(cells []core.Symbol) []byte {
	if r.rgba == nil {
		r.rgba = make([]byte, r.w*r.h*4)
	}
	for i, c := range cells {
		col := r.palette[c]
		base := i * 4
		r.rgba[base+0] = col.R
		r.rgba[base+1] = col.G
		r.rgba[base+2] = col.B
		r.rgba[base+3] = col.A
	}
	return r.rgba
}
