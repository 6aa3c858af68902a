package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nvr-ai/rasterfx/codec"
	"github.com/nvr-ai/rasterfx/images"
	"github.com/nvr-ai/rasterfx/pipeline"
)

type batchOpts struct {
	dir         string
	out         string
	format      string
	slugs       []string
	concurrency int
}

func newBatchCmd() *cobra.Command {
	var opts batchOpts

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Apply transforms to every image in a directory",
		Long: `Applies a chain of transforms to every supported image in --dir (not
recursive) and writes <name>-<slugs><ext> into --out. A failing file does not
stop the others; the command fails if any file failed.`,
		Example: `  rasterfx batch --dir photos -t cartoonize --out cartoons --concurrency 8`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "input directory")
	cmd.Flags().StringVar(&opts.out, "out", "", "output directory (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (default: keep each input's format)")
	cmd.Flags().StringSliceVarP(&opts.slugs, "transform", "t", nil, "transform slugs, comma separated")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "files processed at once (default from config)")
	_ = cmd.MarkFlagRequired("dir")
	_ = cmd.MarkFlagRequired("transform")

	return cmd
}

func runBatch(cmd *cobra.Command, opts batchOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	out := cmd.OutOrStdout()

	cat, err := images.NewCatalog(cfg.Options())
	if err != nil {
		return err
	}
	fn, err := cat.Resolve(opts.slugs)
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		Transform:   fn,
		Suffix:      chainSuffix(opts.slugs),
		OutDir:      opts.out,
		Concurrency: opts.concurrency,
		Logger:      logger,
	}
	if popts.OutDir == "" {
		popts.OutDir = cfg.Output.Dir
	}
	if popts.Concurrency == 0 {
		popts.Concurrency = cfg.Batch.Concurrency
	}
	if popts.Concurrency < 1 {
		return errors.Errorf("--concurrency %d must be at least 1", popts.Concurrency)
	}
	if opts.format != "" {
		if popts.Format, err = codec.ParseFormat(opts.format); err != nil {
			return err
		}
	}

	prog := newProgress(logger)
	summary, err := pipeline.Dir(ctx, opts.dir, popts)
	if err != nil {
		return err
	}
	prog.done("Batch " + summary.RunID)

	for _, res := range summary.Results {
		printFile(out, res.Output)
	}
	for _, f := range summary.Failures {
		printWarning(out, "%s: %v", f.Input, f.Err)
	}
	if len(summary.Failures) > 0 {
		return errors.Errorf("%d of %d files failed", len(summary.Failures), summary.Processed)
	}
	printSuccess(out, "%d files written to %s", len(summary.Results), popts.OutDir)
	return nil
}
