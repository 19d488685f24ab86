package processor

import (
	"errors"
	"fmt"
)

// ErrInvalidSize marks a size string that is not "WxH" or "W,H".
var ErrInvalidSize = errors.New("invalid size format")

// ConfigError reports a bad flag combination, path or value. It is fatal
// to the run and raised before any file is touched.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// ParseError reports a size string that could not be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("size must be like 180x198 (or 180,198), got %q: %s", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
