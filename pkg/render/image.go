package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Image is a rendered pixel buffer, row-major with the origin at the top left.
type Image struct {
	Width, Height int

	// Pix holds the color of pixel (x, y) at Pix[y*Width+x].
	Pix []gg.RGBA
}

func newImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]gg.RGBA, width*height),
	}
}

// RGBA returns the color of pixel (x, y).
func (img *Image) RGBA(x, y int) gg.RGBA {
	return img.Pix[y*img.Width+x]
}

func (img *Image) set(x, y int, c gg.RGBA) {
	img.Pix[y*img.Width+x] = c
}

// Pixmap copies the Image into a gg.Pixmap, quantizing each channel to 8 bits.
func (img *Image) Pixmap() *gg.Pixmap {
	pm := gg.NewPixmap(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			pm.SetPixel(x, y, img.RGBA(x, y))
		}
	}
	return pm
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) At(x, y int) color.Color {
	if !image.Pt(x, y).In(img.Bounds()) {
		return color.NRGBA{}
	}
	return img.RGBA(x, y).Color()
}

var _ image.Image = (*Image)(nil)
