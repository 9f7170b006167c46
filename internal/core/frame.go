package core

import (
	"image"
)

// PixelSink accepts pixel writes with (0,0) at the top-left.
// The engine never reads back from a sink.
type PixelSink interface {
	Set(x, y int, c RGB)
	FillRect(r Rect, c RGB)
}

// Frame is a 2D RGB pixel buffer for rendering.
// It decouples the engine from any display, allowing frontends to present the
// same buffer in a terminal, a window or a PNG file.
//
// Pixels are stored row-major. Writes to disjoint columns from different
// goroutines are safe.
type Frame struct {
	width  int
	height int
	pix    []RGB
}

// NewFrame creates a new frame with the given dimensions, cleared to black.
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Bounds returns the frame area as a Rect.
func (f *Frame) Bounds() Rect {
	return NewRect(0, 0, f.width, f.height)
}

// Resize changes the frame dimensions. Content is discarded.
func (f *Frame) Resize(width, height int) {
	width = Max(width, 0)
	height = Max(height, 0)
	if width == f.width && height == f.height && f.pix != nil {
		return
	}
	f.width = width
	f.height = height
	f.pix = make([]RGB, width*height)
}

// Clear fills the entire frame with black.
func (f *Frame) Clear() {
	f.Fill(Black)
}

// Fill fills the entire frame with the given color.
func (f *Frame) Fill(c RGB) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// Set places a pixel at the given position.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, c RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
}

// Get returns the pixel at the given position.
// Returns black for out-of-bounds coordinates.
func (f *Frame) Get(x, y int) RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Black
	}
	return f.pix[y*f.width+x]
}

// FillRect fills the part of r that lies inside the frame.
func (f *Frame) FillRect(r Rect, c RGB) {
	r = r.Intersect(f.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		row := f.pix[y*f.width : (y+1)*f.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = c
		}
	}
}

// Image copies the frame into a new RGBA image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.CopyTo(img.Pix)
	return img
}

// CopyTo writes the frame as packed RGBA bytes into dst, which must hold at
// least 4*Width*Height bytes.
func (f *Frame) CopyTo(dst []byte) {
	for i, p := range f.pix {
		j := i * 4
		dst[j] = p.R
		dst[j+1] = p.G
		dst[j+2] = p.B
		dst[j+3] = 0xff
	}
}
