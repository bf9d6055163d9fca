package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RGB is one 8-bit pixel
type RGB struct {
	R, G, B uint8
}

// Canvas is a row-major grid of pixels, row 0 at the top
type Canvas struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height, Pixels: make([]RGB, width*height)}
}

// At returns the pixel at column x, row y
func (c *Canvas) At(x, y int) RGB {
	return c.Pixels[y*c.Width+x]
}

// Set writes the pixel at column x, row y
func (c *Canvas) Set(x, y int, pixel RGB) {
	c.Pixels[y*c.Width+x] = pixel
}

// Clear resets every pixel to black
func (c *Canvas) Clear() {
	clear(c.Pixels)
}

// Image converts the canvas to an opaque RGBA image
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// WritePPM writes the canvas as plain-text P3: header, then one "r g b" line per pixel
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}
	for _, p := range c.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return fmt.Errorf("write ppm pixel: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ppm: %w", err)
	}
	return nil
}

// WritePNG encodes the canvas as PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ToneMap converts linear radiance to 8-bit: per-channel sqrt (gamma 2),
// scale by 255.99, truncate. Channels above 1 saturate at 255.
func ToneMap(colorVec core.Vec3) RGB {
	return RGB{R: toByte(colorVec.X), G: toByte(colorVec.Y), B: toByte(colorVec.Z)}
}

func toByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	scaled := 255.99 * math.Sqrt(v)
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}
