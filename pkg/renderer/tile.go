package renderer

import (
	"image"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, row-major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Seed   int64           // Seed for this tile's private sampler
}

// NewTileGrid creates a grid of tiles covering the entire image. Edge tiles
// are clipped to the image. Tile i is seeded with baseSeed + i so the image
// does not depend on scheduling.
func NewTileGrid(width, height, tileSize int, baseSeed int64) []*Tile {
	if tileSize <= 0 {
		tileSize = max(width, height)
	}

	var tiles []*Tile
	id := 0
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			bounds := image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height))
			tiles = append(tiles, &Tile{
				ID:     id,
				Bounds: bounds,
				Seed:   baseSeed + int64(id),
			})
			id++
		}
	}
	return tiles
}
