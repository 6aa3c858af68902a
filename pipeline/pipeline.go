// Package pipeline wires the codec and the transform engine together:
// decode -> transform -> encode, for one file or a whole directory.
package pipeline

import (
	"context"
	"io"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nvr-ai/rasterfx/codec"
	"github.com/nvr-ai/rasterfx/images"
	"github.com/nvr-ai/rasterfx/util"
)

// Options controls a batch run.
type Options struct {
	// Transform is applied to every input. Required.
	Transform images.Transform
	// Suffix is appended to each output base name, e.g. "rotate-clockwise".
	Suffix string
	// OutDir receives the outputs. Required.
	OutDir string
	// Format overrides the output format. Empty keeps each input's format.
	Format codec.ImageFormat
	// Concurrency bounds the number of files processed at once (default 1).
	Concurrency int
	// Logger receives per-file progress. Nil discards.
	Logger *log.Logger
}

// Result describes one processed file.
type Result struct {
	Input     string
	Output    string
	SrcWidth  int
	SrcHeight int
	DstWidth  int
	DstHeight int
	// Checksum digests the transformed raster before encoding.
	Checksum  string
	Elapsed   time.Duration
}

// Failure pairs an input path with the error that stopped it.
type Failure struct {
	Input string
	Err   error
}

// Summary is the outcome of a batch run.
type Summary struct {
	// RunID tags every log line of the run.
	RunID     string
	Results   []Result
	Failures  []Failure
	Elapsed   time.Duration
	Processed int
}

// OutputPath builds dir/name[-suffix]<ext>.
func OutputPath(dir, name, suffix string, format codec.ImageFormat) string {
	base := name
	if suffix != "" {
		base += "-" + suffix
	}
	return filepath.Join(dir, base+format.Extension())
}

// Apply decodes in, runs fn and returns both rasters. Nothing is written.
func Apply(in string, fn images.Transform) (src, dst *images.Raster, err error) {
	if fn == nil {
		return nil, nil, errors.New("no transform configured")
	}
	src, err = codec.Decode(in)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode")
	}
	dst, err = fn(src)
	if err != nil {
		return nil, nil, errors.Wrap(err, "transform")
	}
	return src, dst, nil
}

// File runs decode -> transform -> encode for a single file.
//
// Arguments:
// - in: Input image path.
// - out: Output image path; its extension selects the encoder.
// - fn: The transform to apply.
//
// Returns:
// - The result describing both rasters.
// - An error from any stage, wrapped with the stage name.
//
// @example
// res, err := pipeline.File("cat.gif", "out/cat-negative.png", images.Negative)
func File(in, out string, fn images.Transform) (*Result, error) {
	start := time.Now()
	src, dst, err := Apply(in, fn)
	if err != nil {
		return nil, err
	}
	if err := codec.Encode(out, dst); err != nil {
		return nil, errors.Wrap(err, "encode")
	}
	return &Result{
		Input:     in,
		Output:    out,
		SrcWidth:  src.Width,
		SrcHeight: src.Height,
		DstWidth:  dst.Width,
		DstHeight: dst.Height,
		Checksum:  dst.Checksum(),
		Elapsed:   time.Since(start),
	}, nil
}

// Dir applies opts.Transform to every supported image in dir. Files are
// independent: a failing file is recorded in Summary.Failures and the rest
// continue. Cancelling ctx stops files that have not started yet.
//
// Arguments:
// - ctx: Cancellation for the run.
// - dir: Input directory (not recursive).
// - opts: Batch options.
//
// Returns:
// - The run summary.
// - An error if the directory cannot be listed, opts are invalid, or ctx was cancelled.
//
// @example
// sum, err := pipeline.Dir(ctx, "in", pipeline.Options{Transform: images.Negative, OutDir: "out", Concurrency: 4})
func Dir(ctx context.Context, dir string, opts Options) (*Summary, error) {
	if opts.Transform == nil {
		return nil, errors.New("no transform configured")
	}
	if opts.OutDir == "" {
		return nil, errors.New("no output directory configured")
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	paths, err := util.ListDirectoryImageFiles(dir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{RunID: uuid.NewString()}
	logger = logger.With("run", summary.RunID)
	logger.Info("batch started", "dir", dir, "files", len(paths), "concurrency", opts.Concurrency)

	start := time.Now()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := processFile(path, opts)

			mu.Lock()
			defer mu.Unlock()
			summary.Processed++
			if err != nil {
				logger.Warn("file failed", "input", path, "err", err)
				summary.Failures = append(summary.Failures, Failure{Input: path, Err: err})
				return nil
			}
			logger.Debug("file done", "input", path, "output", res.Output,
				"checksum", res.Checksum, "elapsed", res.Elapsed.Round(time.Millisecond))
			summary.Results = append(summary.Results, *res)
			return nil
		})
	}

	err = g.Wait()
	summary.Elapsed = time.Since(start)
	sort.Slice(summary.Results, func(i, j int) bool { return summary.Results[i].Input < summary.Results[j].Input })
	sort.Slice(summary.Failures, func(i, j int) bool { return summary.Failures[i].Input < summary.Failures[j].Input })
	logger.Info("batch finished", "ok", len(summary.Results), "failed", len(summary.Failures),
		"elapsed", summary.Elapsed.Round(time.Millisecond))
	if err != nil {
		return summary, errors.Wrap(err, "batch interrupted")
	}
	return summary, nil
}

func processFile(path string, opts Options) (*Result, error) {
	file, err := util.LoadImageFile(path)
	if err != nil {
		return nil, err
	}
	format := opts.Format
	if format == "" {
		format = file.Format
	}

	start := time.Now()
	src, err := codec.DecodeBytes(file.Data, file.Format)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	dst, err := opts.Transform(src)
	if err != nil {
		return nil, errors.Wrap(err, "transform")
	}

	out := OutputPath(opts.OutDir, file.Name, opts.Suffix, format)
	if err := codec.Encode(out, dst); err != nil {
		return nil, errors.Wrap(err, "encode")
	}

	return &Result{
		Input:     path,
		Output:    out,
		SrcWidth:  src.Width,
		SrcHeight: src.Height,
		DstWidth:  dst.Width,
		DstHeight: dst.Height,
		Checksum:  dst.Checksum(),
		Elapsed:   time.Since(start),
	}, nil
}
