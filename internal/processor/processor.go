package processor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"batchresize/internal/log"
	"batchresize/pkg/imgutil"
)

// Run resizes every supported image directly inside cfg.InputDir into
// cfg.OutputDir, one file at a time. Per-file messages are sent on updates
// when it is not nil. Failures of single files never abort the run; only
// listing the input folder or a cancelled ctx does.
func Run(ctx context.Context, fs afero.Fs, cfg Config, updates chan<- ProgressUpdate) (Summary, []Result, error) {
	summary := Summary{OutputDir: cfg.OutputDir}
	var results []Result

	send := func(u ProgressUpdate) {
		if updates != nil {
			updates <- u
		}
	}

	entries, err := afero.ReadDir(fs, cfg.InputDir)
	if err != nil {
		log.Errorw("list input folder", "dir", cfg.InputDir, "err", err)
		return summary, nil, err
	}

	for _, entry := range entries {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				if errors.Is(err, context.Canceled) {
					return summary, results, nil
				}
				return summary, results, err
			}
		}

		job, ok := newJob(fs, cfg, entry.Name())
		if !ok {
			continue
		}
		send(ProgressUpdate{TotalDelta: 1})

		res := Result{Job: job}
		if _, err := fs.Stat(job.OutPath); err == nil && !cfg.Overwrite {
			res.Outcome = OutcomeSkipped
			summary.Skipped++
			log.Debugw("output exists", "file", job.Display, "out", job.OutPath)
			send(ProgressUpdate{SkippedDelta: 1, Line: "Skip (exists): " + filepath.Base(job.OutPath)})
			results = append(results, res)
			continue
		}

		res.Width, res.Height, res.Err = processFile(fs, job, cfg)
		if res.Err != nil {
			res.Outcome = OutcomeFailed
			summary.Failed++
			log.Warnw("resize failed", "file", job.Display, "err", res.Err)
			send(ProgressUpdate{ErrorDelta: 1, Line: fmt.Sprintf("Error processing %s: %s", job.Display, res.Err)})
		} else {
			res.Outcome = OutcomeProcessed
			summary.Processed++
			send(ProgressUpdate{ProcessedDelta: 1, Line: "Saved: " + filepath.Base(job.OutPath)})
		}
		results = append(results, res)
	}

	return summary, results, nil
}

// newJob builds the job for a directory entry, or reports false when the
// entry is not a regular file with a supported extension.
func newJob(fs afero.Fs, cfg Config, name string) (Job, bool) {
	path := filepath.Join(cfg.InputDir, name)

	// Stat, not Lstat: a symlink to a regular file is processed.
	info, err := fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Job{}, false
	}
	if !imgutil.Supported(name) {
		return Job{}, false
	}

	return Job{
		Path:    path,
		OutPath: filepath.Join(cfg.OutputDir, OutputName(name, cfg.Suffix)),
		Display: name,
	}, true
}

// OutputName inserts suffix between the stem and the extension of name.
// The extension, and with it the output format, is kept as is.
func OutputName(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + suffix + ext
}

func processFile(fs afero.Fs, job Job, cfg Config) (width, height int, err error) {
	in, err := fs.Open(job.Path)
	if err != nil {
		return 0, 0, err
	}
	defer in.Close()

	srcKind := imgutil.KindFromPath(job.Path)
	if sniffed, err := imgutil.SniffReader(in); err == nil && sniffed != imgutil.KindUnknown && sniffed != srcKind {
		log.Warnw("content does not match extension", "file", job.Display, "ext", srcKind, "content", sniffed)
	}

	orientation := 1
	if cfg.AutoOrient && (srcKind == imgutil.KindJPEG || srcKind == imgutil.KindTIFF) {
		orientation, err = readOrientation(in)
		if err != nil {
			log.Warnw("read exif orientation", "file", job.Display, "err", err)
			orientation = 1
		}
	}

	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	img, format, err := imgutil.Decode(in)
	if err != nil {
		return 0, 0, fmt.Errorf("decode: %w", err)
	}
	if orientation > 1 {
		img = applyOrientation(img, orientation)
	}

	m, err := Resize(img, cfg)
	if err != nil {
		return 0, 0, err
	}

	opt := imgutil.NewSaveOptions(imgutil.KindFromPath(job.OutPath), cfg.Quality)
	if opt.Kind == imgutil.KindJPEG && !imgutil.IsRGBOrGray(m) {
		m = imgutil.ToRGB(m)
	}

	b := img.Bounds()
	log.Debugw("resize", "file", job.Display, "format", format,
		"from", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
		"to", fmt.Sprintf("%dx%d", m.Bounds().Dx(), m.Bounds().Dy()),
		"orientation", orientation, "save", opt.String())

	if err := save(fs, job.OutPath, m, opt); err != nil {
		return 0, 0, err
	}
	return m.Bounds().Dx(), m.Bounds().Dy(), nil
}

// save writes m to path. A failed encode may leave a partial file behind.
func save(fs afero.Fs, path string, m image.Image, opt imgutil.SaveOptions) (err error) {
	out, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return imgutil.Encode(out, m, opt)
}
