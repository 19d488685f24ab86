package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"batchresize/internal/config"
	"batchresize/internal/log"
	"batchresize/internal/processor"
)

type rootOptions struct {
	inputDir     string
	outputDir    string
	size         string
	percent      float64
	keepAspect   bool
	overwrite    bool
	quality      int
	suffix       string
	autoOrient   bool
	showProgress bool
	verbose      bool
}

func newRootCmd(settings config.Settings, fs afero.Fs) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "batchresize --in <dir> --out <dir> (--size WxH | --percent N) [flags]",
		Short: "Batch resize images to a fixed size or by percent scale",
		Long: "batchresize resizes every image directly inside a folder and writes the results to an output folder.\n" +
			"Use --size for an exact size (or a bounding box with --keep-aspect), or --percent to scale.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResize(cmd, fs, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.inputDir, "in", "", "input folder path")
	flags.StringVar(&opts.outputDir, "out", "", "output folder path (created if missing)")
	flags.StringVar(&opts.size, "size", "", "target size like 180x198 (exact) or max-fit if --keep-aspect")
	flags.Float64Var(&opts.percent, "percent", 0, "percent scale, e.g. 12.5 for 12.5%")
	flags.BoolVar(&opts.keepAspect, "keep-aspect", false, "with --size, fit within WxH while preserving aspect ratio")
	flags.BoolVar(&opts.overwrite, "overwrite", false, "overwrite files in the output folder if they already exist")
	flags.IntVar(&opts.quality, "quality", settings.Quality, "JPEG quality (1-95), used only when saving JPEG")
	flags.StringVar(&opts.suffix, "suffix", settings.Suffix, "suffix added before the extension, e.g. _small")
	flags.BoolVar(&opts.autoOrient, "auto-orient", settings.AutoOrient, "rotate JPEG/TIFF sources upright using EXIF orientation")
	flags.BoolVar(&opts.showProgress, "progress", false, "show a live progress view")
	flags.BoolVarP(&opts.verbose, "verbose", "v", settings.Verbose, "debug logging to stderr")

	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	cmd.MarkFlagsMutuallyExclusive("size", "percent")
	cmd.MarkFlagsOneRequired("size", "percent")

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	return cmd
}

func runResize(cmd *cobra.Command, fs afero.Fs, opts *rootOptions) error {
	logger, err := log.New(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()
	log.Set(logger)

	flags := cmd.Flags()
	cfg, err := processor.Resolve(fs, processor.Args{
		InputDir:   opts.inputDir,
		OutputDir:  opts.outputDir,
		Size:       opts.size,
		SizeSet:    flags.Changed("size"),
		Percent:    opts.percent,
		PercentSet: flags.Changed("percent"),
		KeepAspect: opts.keepAspect,
		Overwrite:  opts.overwrite,
		Quality:    opts.quality,
		Suffix:     opts.suffix,
		AutoOrient: opts.autoOrient,
	})
	if err != nil {
		return err
	}
	log.Infow("resolved", "mode", cfg.Mode, "width", cfg.Width, "height", cfg.Height,
		"scale", cfg.Scale, "quality", cfg.Quality, "suffix", cfg.Suffix)

	out := cmd.OutOrStdout()
	updates := make(chan processor.ProgressUpdate, 64)
	uiDone := startReporter(out, updates, opts.showProgress)

	summary, _, err := processor.Run(cmd.Context(), fs, cfg, updates)

	close(updates)
	<-uiDone
	if err != nil {
		return err
	}

	if opts.showProgress {
		fmt.Fprintln(out, renderSummary(summary))
	}
	fmt.Fprintf(out, "\n%s\n", summary)
	return nil
}

func Execute() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(settings, afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
