package processor

import (
	"fmt"
	"image"
	"math"

	"github.com/nfnt/resize"
)

// TargetSize returns the output dimensions for an image of w x h under cfg.
func TargetSize(w, h int, cfg Config) (int, int, error) {
	switch cfg.Mode {
	case ModePercent:
		return scaled(w, cfg.Scale), scaled(h, cfg.Scale), nil
	case ModeExact, ModeFitAspect:
		if cfg.Width == 0 && cfg.Height == 0 {
			return 0, 0, configErrorf("width and height must be provided if not using --percent")
		}
		if cfg.Width <= 0 || cfg.Height <= 0 {
			return 0, 0, fmt.Errorf("target size %dx%d: width and height must be > 0", cfg.Width, cfg.Height)
		}
		if cfg.Mode == ModeExact {
			return cfg.Width, cfg.Height, nil
		}
		return fitWithin(w, h, cfg.Width, cfg.Height)
	default:
		return 0, 0, configErrorf("unknown resize mode %d", cfg.Mode)
	}
}

// Resize resamples img with Lanczos3 to the size chosen by TargetSize. An
// image that already fits the box in ModeFitAspect is returned unchanged.
func Resize(img image.Image, cfg Config) (image.Image, error) {
	b := img.Bounds()
	tw, th, err := TargetSize(b.Dx(), b.Dy(), cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Mode == ModeFitAspect && tw == b.Dx() && th == b.Dy() {
		return img, nil
	}
	return resize.Resize(uint(tw), uint(th), img, resize.Lanczos3), nil
}

func scaled(d int, scale float64) int {
	n := int(math.RoundToEven(float64(d) * scale))
	if n < 1 {
		return 1
	}
	return n
}

// fitWithin shrinks w x h to fit inside bw x bh keeping the aspect ratio.
// It never enlarges. The free side is rounded to whichever neighbouring
// integer keeps the ratio closest, and is at least 1.
func fitWithin(w, h, bw, bh int) (int, int, error) {
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid source size %dx%d", w, h)
	}
	if bw >= w && bh >= h {
		return w, h, nil
	}

	aspect := float64(w) / float64(h)
	x, y := bw, bh
	if float64(x)/float64(y) >= aspect {
		x = roundAspect(float64(y)*aspect, func(n int) float64 {
			return math.Abs(aspect - float64(n)/float64(y))
		})
	} else {
		y = roundAspect(float64(x)/aspect, func(n int) float64 {
			if n == 0 {
				return math.Inf(1)
			}
			return math.Abs(aspect - float64(x)/float64(n))
		})
	}
	return x, y, nil
}

func roundAspect(v float64, key func(int) float64) int {
	lo, hi := int(math.Floor(v)), int(math.Ceil(v))
	n := lo
	if key(hi) < key(lo) {
		n = hi
	}
	if n < 1 {
		return 1
	}
	return n
}
