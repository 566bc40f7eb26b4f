package export

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
)

// HeightSource answers surface heights for world columns.
type HeightSource interface {
	HeightAt(worldX, worldZ int) int
}

// heightGain maps block heights onto the 0..255 gray range.
const heightGain = 4

// Heightmap renders the heights of a width x depth area whose corner is
// (originX, originZ) into a grayscale image; +x goes right, +z goes down.
func Heightmap(src HeightSource, originX, originZ, width, depth int) (*image.Gray, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("heightmap size %dx%d must be positive", width, depth)
	}
	img := image.NewGray(image.Rect(0, 0, width, depth))
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			h := src.HeightAt(originX+x, originZ+z) * heightGain
			img.SetGray(x, z, color.Gray{Y: uint8(min(max(h, 0), 255))})
		}
	}
	return img, nil
}

// WriteHeightmap encodes the area as a BMP preview.
func WriteHeightmap(w io.Writer, src HeightSource, originX, originZ, width, depth int) error {
	img, err := Heightmap(src, originX, originZ, width, depth)
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}
