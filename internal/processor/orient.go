package processor

import (
	"errors"
	"image"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
	exif "github.com/dsoprea/go-exif/v3"
)

// readOrientation returns the EXIF orientation (1-8) of the image in rs, or
// 1 when the file carries no EXIF block or no orientation tag.
func readOrientation(rs io.ReadSeeker) (int, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 1, err
	}
	defer rs.Seek(0, io.SeekStart)

	raw, err := exif.SearchAndExtractExifWithReader(rs)
	if err != nil {
		if errors.Is(err, exif.ErrNoExif) {
			return 1, nil
		}
		return 1, err
	}

	tags, _, err := exif.GetFlatExifData(raw, nil)
	if err != nil {
		return 1, err
	}

	for _, tag := range tags {
		if tag.TagName != "Orientation" {
			continue
		}
		if v, ok := tag.Value.([]uint16); ok && len(v) > 0 && v[0] >= 1 && v[0] <= 8 {
			return int(v[0]), nil
		}
	}
	return 1, nil
}

// applyOrientation returns img transformed so that it displays upright for
// the given EXIF orientation. Gray sources stay gray.
func applyOrientation(img image.Image, orientation int) image.Image {
	var out *image.NRGBA
	switch orientation {
	case 2:
		out = imaging.FlipH(img)
	case 3:
		out = imaging.Rotate180(img)
	case 4:
		out = imaging.FlipV(img)
	case 5:
		out = imaging.Transpose(img)
	case 6:
		out = imaging.Rotate270(img)
	case 7:
		out = imaging.Transverse(img)
	case 8:
		out = imaging.Rotate90(img)
	default:
		return img
	}

	if _, ok := img.(*image.Gray); ok {
		gray := image.NewGray(out.Bounds())
		draw.Draw(gray, gray.Bounds(), out, out.Bounds().Min, draw.Src)
		return gray
	}
	return out
}
