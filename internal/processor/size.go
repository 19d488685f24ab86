package processor

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSize parses "WxH" or "W,H" in any case with optional whitespace.
// Zero and negative values are returned as parsed.
func ParseSize(s string) (width, height int, err error) {
	norm := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(s), ",", "x"))
	ws, hs, ok := strings.Cut(norm, "x")
	if !ok {
		return 0, 0, &ParseError{Input: s, Err: fmt.Errorf("%w: missing separator", ErrInvalidSize)}
	}

	width, err = strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, &ParseError{Input: s, Err: fmt.Errorf("%w: width: %w", ErrInvalidSize, err)}
	}
	height, err = strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, &ParseError{Input: s, Err: fmt.Errorf("%w: height: %w", ErrInvalidSize, err)}
	}
	return width, height, nil
}
