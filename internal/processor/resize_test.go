package processor

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		cfg   Config
		wantW int
		wantH int
	}{
		{"percent half", 200, 100, Config{Mode: ModePercent, Scale: 0.5}, 100, 50},
		{"percent never zero", 10, 10, Config{Mode: ModePercent, Scale: 0.125}, 1, 1},
		{"percent tiny", 3, 1000, Config{Mode: ModePercent, Scale: 0.001}, 1, 1},
		{"percent upscale", 10, 20, Config{Mode: ModePercent, Scale: 2.5}, 25, 50},
		{"percent half to even", 5, 7, Config{Mode: ModePercent, Scale: 0.5}, 2, 4},
		{"fit landscape", 400, 200, Config{Mode: ModeFitAspect, Width: 100, Height: 100}, 100, 50},
		{"fit portrait", 200, 400, Config{Mode: ModeFitAspect, Width: 100, Height: 100}, 50, 100},
		{"fit no upscale", 50, 50, Config{Mode: ModeFitAspect, Width: 100, Height: 100}, 50, 50},
		{"fit one side over", 80, 120, Config{Mode: ModeFitAspect, Width: 100, Height: 100}, 67, 100},
		{"fit thin strip", 1000, 2, Config{Mode: ModeFitAspect, Width: 100, Height: 100}, 100, 1},
		{"exact", 640, 480, Config{Mode: ModeExact, Width: 50, Height: 200}, 50, 200},
		{"exact upscale", 5, 5, Config{Mode: ModeExact, Width: 50, Height: 200}, 50, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := TargetSize(tt.w, tt.h, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			if tt.cfg.Mode == ModeFitAspect {
				assert.LessOrEqual(t, w, tt.cfg.Width)
				assert.LessOrEqual(t, h, tt.cfg.Height)
				assert.LessOrEqual(t, w, tt.w)
				assert.LessOrEqual(t, h, tt.h)
			}
		})
	}
}

func TestTargetSizeErrors(t *testing.T) {
	_, _, err := TargetSize(10, 10, Config{Mode: ModeExact})
	var cerr *ConfigError
	assert.True(t, errors.As(err, &cerr), "missing size is a config error")

	_, _, err = TargetSize(10, 10, Config{Mode: ModeExact, Width: -1, Height: 10})
	assert.Error(t, err)

	_, _, err = TargetSize(10, 10, Config{Mode: ModeFitAspect, Width: 0, Height: 10})
	assert.Error(t, err)

	_, _, err = TargetSize(10, 10, Config{Mode: Mode(42)})
	assert.Error(t, err)
}

func TestResize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))

	m, err := Resize(src, Config{Mode: ModeExact, Width: 50, Height: 200})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 200), m.Bounds())

	m, err = Resize(src, Config{Mode: ModeFitAspect, Width: 100, Height: 100})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 50), m.Bounds())

	m, err = Resize(src, Config{Mode: ModePercent, Scale: 0.5})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 100), m.Bounds())

	small := image.NewRGBA(image.Rect(0, 0, 50, 50))
	m, err = Resize(small, Config{Mode: ModeFitAspect, Width: 100, Height: 100})
	require.NoError(t, err)
	assert.Same(t, small, m)
}
