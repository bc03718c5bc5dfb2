package litho

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"math"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes an image file in any supported format.
//
// If the file does not exist, the returned error wraps ErrResourceNotFound.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrResourceNotFound, "load image %s", path)
		}
		return nil, errors.Wrap(err, "load image")
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "load image")
	}
	return img, nil
}

// PanelHeight gets the height of the image area of a panel, keeping the
// aspect ratio of img at the configured arc width.
func PanelHeight(p *PanelConfig, img image.Image) float64 {
	b := img.Bounds()
	return p.ArcWidth * float64(b.Dy()) / float64(b.Dx())
}

// BrightnessGrid converts an image into normalized brightness samples for a
// panel.
//
// The image is converted to grayscale, resized to one sample per
// PixelResolution along the arc width, and surrounded by a black border of
// BorderWidth. Row 0 of the result is the bottom of the picture.
func BrightnessGrid(p *PanelConfig, img image.Image) (*Grid[float64], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, preconditionf("image is empty")
	}
	width := pixelCount(p.ArcWidth, p.PixelResolution)
	height := int(float64(width) * float64(b.Dy()) / float64(b.Dx()))
	border := pixelCount(p.BorderWidth, p.PixelResolution)
	if width < 1 || height < 1 {
		return nil, preconditionf("image resizes to %dx%d pixels", width, height)
	}

	gray := image.NewGray(b)
	draw.Draw(gray, b, img, b.Min, draw.Src)
	resized := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(resized, resized.Bounds(), gray, b, draw.Src, nil)

	rows, cols := height+2*border, width+2*border
	res := NewGrid[float64](rows, cols)
	for y := 0; y < height; y++ {
		row := rows - 1 - (y + border)
		for x := 0; x < width; x++ {
			value := resized.GrayAt(x, y).Y
			res.Set(row, x+border, float64(value)/math.MaxUint8)
		}
	}
	return res, nil
}

// ImageThickness loads an image and converts it into a thickness grid and
// the height of its image area.
func ImageThickness(p *PanelConfig, path string) (*ThicknessGrid, float64, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, 0, err
	}
	brightness, err := BrightnessGrid(p, img)
	if err != nil {
		return nil, 0, err
	}
	return ThicknessFromBrightness(brightness, p.MinThickness, p.MaxThickness),
		PanelHeight(p, img), nil
}

func pixelCount(size, resolution float64) int {
	// Avoid losing a pixel to rounding, e.g. for 203.2 / 0.2.
	return int(math.Floor(size/resolution + 1e-9))
}
