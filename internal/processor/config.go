package processor

import (
	"math"

	"github.com/spf13/afero"
)

// Args are the raw command line values before validation. SizeSet and
// PercentSet record whether the flag was given at all.
type Args struct {
	InputDir   string
	OutputDir  string
	Size       string
	SizeSet    bool
	Percent    float64
	PercentSet bool
	KeepAspect bool
	Overwrite  bool
	Quality    int
	Suffix     string
	AutoOrient bool
}

// Resolve validates args and returns the resize configuration. It creates
// the output directory (with parents) when it does not exist yet.
func Resolve(fs afero.Fs, args Args) (Config, error) {
	cfg := Config{
		InputDir:   args.InputDir,
		OutputDir:  args.OutputDir,
		Overwrite:  args.Overwrite,
		Quality:    args.Quality,
		Suffix:     args.Suffix,
		AutoOrient: args.AutoOrient,
	}

	if args.InputDir == "" {
		return cfg, configErrorf("input folder is required (--in)")
	}
	if args.OutputDir == "" {
		return cfg, configErrorf("output folder is required (--out)")
	}

	switch {
	case args.SizeSet && args.PercentSet:
		return cfg, configErrorf("--size and --percent are mutually exclusive")
	case !args.SizeSet && !args.PercentSet:
		return cfg, configErrorf("one of --size or --percent is required")
	}

	info, err := fs.Stat(args.InputDir)
	if err != nil {
		return cfg, &ConfigError{Msg: "Input folder does not exist: " + args.InputDir, Err: err}
	}
	if !info.IsDir() {
		return cfg, configErrorf("input path is not a folder: %s", args.InputDir)
	}

	if args.SizeSet {
		w, h, err := ParseSize(args.Size)
		if err != nil {
			return cfg, &ConfigError{Msg: "invalid --size", Err: err}
		}
		cfg.Width, cfg.Height = w, h
		cfg.Mode = ModeExact
		if args.KeepAspect {
			cfg.Mode = ModeFitAspect
		}
	} else {
		if !(args.Percent > 0) || math.IsInf(args.Percent, 1) {
			return cfg, configErrorf("--percent must be > 0")
		}
		cfg.Mode = ModePercent
		cfg.Scale = args.Percent / 100.0
	}

	if err := fs.MkdirAll(args.OutputDir, 0o755); err != nil {
		return cfg, &ConfigError{Msg: "cannot create output folder " + args.OutputDir, Err: err}
	}
	if info, err := fs.Stat(args.OutputDir); err != nil || !info.IsDir() {
		return cfg, configErrorf("output path is not a folder: %s", args.OutputDir)
	}

	return cfg, nil
}
