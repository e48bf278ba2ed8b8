package render

import (
	"image"
	"image/color"
)

// Image is a row-major RGB raster, row 0 at the top
type Image struct {
	Width  int
	Height int
	Pix    []RGB
}

func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// Row returns the pixels of row y, sharing storage with the image
func (m *Image) Row(y int) []RGB {
	return m.Pix[y*m.Width : (y+1)*m.Width]
}

func (m *Image) RGBAt(x, y int) RGB {
	return m.Pix[y*m.Width+x]
}

func (m *Image) SetRGB(x, y int, c RGB) {
	m.Pix[y*m.Width+x] = c
}

// image.Image

func (m *Image) ColorModel() color.Model { return color.RGBAModel }

func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }

// At returns transparent black outside the bounds, as image.Image requires
func (m *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return color.RGBA{}
	}
	return m.Pix[y*m.Width+x]
}
