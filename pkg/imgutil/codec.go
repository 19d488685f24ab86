package imgutil

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const (
	MinJPEGQuality = 1
	MaxJPEGQuality = 95

	// quality used for lossy webp output
	webpQuality = 80
)

// ErrUnsupportedFormat is returned when no encoder exists for a Kind.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// SaveOptions selects the encoder and its settings for one output file.
type SaveOptions struct {
	Kind     Kind
	Quality  int  // JPEG only
	Optimize bool // JPEG only
}

// NewSaveOptions builds the save options for kind. Quality is clamped and
// optimization enabled only for JPEG output.
func NewSaveOptions(kind Kind, quality int) SaveOptions {
	opt := SaveOptions{Kind: kind}
	if kind == KindJPEG {
		opt.Quality = ClampQuality(quality)
		opt.Optimize = true
	}
	return opt
}

func (o SaveOptions) String() string {
	if o.Kind == KindJPEG {
		return fmt.Sprintf("%s q%d optimize=%v", o.Kind, o.Quality, o.Optimize)
	}
	return o.Kind.String()
}

// ClampQuality forces q into [MinJPEGQuality, MaxJPEGQuality].
func ClampQuality(q int) int {
	if q < MinJPEGQuality {
		return MinJPEGQuality
	}
	if q > MaxJPEGQuality {
		return MaxJPEGQuality
	}
	return q
}

// Decode reads an image in any of the supported formats.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// Encode writes m to w in the format chosen by opt.
func Encode(w io.Writer, m image.Image, opt SaveOptions) error {
	switch opt.Kind {
	case KindJPEG:
		// image/jpeg has no Huffman optimization pass, Optimize is informational here
		return jpeg.Encode(w, ToRGB(m), &jpeg.Options{Quality: ClampQuality(opt.Quality)})
	case KindPNG:
		return png.Encode(w, m)
	case KindGIF:
		return gif.Encode(w, m, nil)
	case KindBMP:
		return bmp.Encode(w, m)
	case KindTIFF:
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	case KindWebP:
		return webp.Encode(w, m, &webp.Options{Quality: webpQuality})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, opt.Kind)
	}
}

// IsRGBOrGray reports whether m already has a color model JPEG can store
// without conversion: RGB without alpha or single-channel grayscale.
func IsRGBOrGray(m image.Image) bool {
	switch im := m.(type) {
	case *image.YCbCr, *image.Gray, *image.Gray16:
		return true
	case *image.RGBA:
		return im.Opaque()
	case *image.RGBA64:
		return im.Opaque()
	}
	return false
}

// ToRGB drops alpha and palette information, keeping the straight color
// channels. Images that are already RGB or grayscale are returned as is.
func ToRGB(m image.Image) image.Image {
	if IsRGBOrGray(m) {
		return m
	}
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if o, ok := m.(interface{ Opaque() bool }); ok && o.Opaque() {
		draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
		return dst
	}
	// straight (non-premultiplied) channels, as if alpha were simply dropped
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return dst
}
