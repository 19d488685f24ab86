package processor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantWidth  int
		wantHeight int
		wantErr    bool
	}{
		{name: "lower x", input: "180x198", wantWidth: 180, wantHeight: 198},
		{name: "upper X", input: "180X198", wantWidth: 180, wantHeight: 198},
		{name: "comma with spaces", input: " 180 , 198 ", wantWidth: 180, wantHeight: 198},
		{name: "spaces around x", input: "640 x 480", wantWidth: 640, wantHeight: 480},
		{name: "zero is parsed", input: "0x0", wantWidth: 0, wantHeight: 0},
		{name: "negative is parsed", input: "-5x10", wantWidth: -5, wantHeight: 10},
		{name: "letters", input: "abc", wantErr: true},
		{name: "single number", input: "180", wantErr: true},
		{name: "missing width", input: "x200", wantErr: true},
		{name: "missing height", input: "200x", wantErr: true},
		{name: "two separators", input: "1x2x3", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := ParseSize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var perr *ParseError
				assert.True(t, errors.As(err, &perr))
				assert.ErrorIs(t, err, ErrInvalidSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
		})
	}
}
