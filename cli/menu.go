package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nvr-ai/rasterfx/codec"
	"github.com/nvr-ai/rasterfx/config"
	"github.com/nvr-ai/rasterfx/images"
	"github.com/nvr-ai/rasterfx/pipeline"
	"github.com/nvr-ai/rasterfx/viewer"
)

// newViewer opens the display backend; tests replace it.
var newViewer = viewer.New

type menuOpts struct {
	output string // explicit save path; empty saves only when nothing could be shown
	noView bool   // skip the viewer and save
}

func newMenuCmd() *cobra.Command {
	var opts menuOpts

	cmd := &cobra.Command{
		Use:   "menu [file]",
		Short: "Pick a transform from a numbered menu",
		Long: `Loads an image (prompting for a file name when none is given), prints the
numbered transform menu and applies the selected transform. The result is shown
in a window when a viewer is available and saved otherwise, or always when
--output is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "save the result to this path")
	cmd.Flags().BoolVar(&opts.noView, "no-view", false, "do not open a viewer window")

	return cmd
}

func runMenu(cmd *cobra.Command, args []string, opts menuOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	out := cmd.OutOrStdout()

	cat, err := images.NewCatalog(cfg.Options())
	if err != nil {
		return err
	}
	p := newPrompter(cmd.InOrStdin(), out)

	var (
		path string
		src  *images.Raster
	)
	if len(args) == 1 {
		path = args[0]
		if src, err = codec.Decode(path); err != nil {
			return err
		}
	} else if path, src, err = p.askImage(); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("no image given")
		}
		return err
	}
	printInfo(out, "Loaded %s (%dx%d)", path, src.Width, src.Height)

	printMenu(out, cat.Menu())
	entry, err := p.selectEntry(cat)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("no transform selected")
		}
		return err
	}

	prog := newProgress(logger)
	dst, err := entry.Apply(src)
	if err != nil {
		return errors.Wrap(err, entry.Name)
	}
	prog.done("Applied " + entry.Name)
	printSuccess(out, "%s %s", entry.Name, StyleDim.Render(formatSize(src.Width, src.Height)+" -> "+formatSize(dst.Width, dst.Height)))

	shown := false
	if !opts.noView {
		if shown, err = show(ctx, cfg, entry.Name, dst); err != nil {
			return err
		}
	}
	if shown && opts.output == "" {
		return nil
	}

	target := opts.output
	if target == "" {
		target = pipeline.OutputPath(cfg.Output.Dir, baseName(path), entry.Slug, cfg.OutputFormat())
	}
	if err := codec.Encode(target, dst); err != nil {
		return err
	}
	printFile(out, target)
	return nil
}

// show displays r. It reports false without error when no viewer backend is
// available so the caller can save instead.
func show(ctx context.Context, cfg config.Config, title string, r *images.Raster) (bool, error) {
	logger := loggerFromContext(ctx)

	v, err := newViewer(viewer.Options{MaxWidth: cfg.Viewer.MaxWidth, MaxHeight: cfg.Viewer.MaxHeight})
	if err != nil {
		return false, errors.Wrap(err, "failed to open viewer")
	}
	defer v.Close()

	if err := v.Show(ctx, title, r); err != nil {
		if errors.Is(err, viewer.ErrUnavailable) {
			logger.Debug("no viewer available, saving instead")
			return false, nil
		}
		return false, errors.Wrap(err, "failed to show result")
	}
	return true, nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
