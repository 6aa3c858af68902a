package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvr-ai/rasterfx/codec"
	"github.com/nvr-ai/rasterfx/images"
	"github.com/nvr-ai/rasterfx/pipeline"
)

type applyOpts struct {
	input  string
	output string
	format string
	slugs  []string
}

func newApplyCmd() *cobra.Command {
	var opts applyOpts

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply transforms to one image",
		Long: `Applies one or more transforms, left to right, to a single image.
Without --output the result goes to the configured output directory as
<name>-<slugs><ext>.`,
		Example: `  rasterfx apply -i cat.gif -t rotate-clockwise,negative
  rasterfx apply -i cat.png -o cat-bw.png -t black-white`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input image")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image (extension selects the format)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format when --output is not given")
	cmd.Flags().StringSliceVarP(&opts.slugs, "transform", "t", nil, "transform slugs, comma separated (see 'rasterfx list')")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("transform")

	return cmd
}

func runApply(cmd *cobra.Command, opts applyOpts) error {
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

	target := opts.output
	if target == "" {
		format := cfg.OutputFormat()
		if opts.format != "" {
			if format, err = codec.ParseFormat(opts.format); err != nil {
				return err
			}
		}
		target = pipeline.OutputPath(cfg.Output.Dir, baseName(opts.input), chainSuffix(opts.slugs), format)
	}

	logger.Debug("applying", "input", opts.input, "output", target, "transforms", opts.slugs)
	res, err := pipeline.File(opts.input, target, fn)
	if err != nil {
		return err
	}

	printSuccess(out, "%s %s", strings.Join(opts.slugs, " → "),
		StyleDim.Render(sizeChange(res)))
	printFile(out, res.Output)
	return nil
}

// chainSuffix joins normalized slugs into an output name suffix.
func chainSuffix(slugs []string) string {
	parts := make([]string, len(slugs))
	for i, s := range slugs {
		parts[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return strings.Join(parts, "+")
}

func sizeChange(res *pipeline.Result) string {
	return formatSize(res.SrcWidth, res.SrcHeight) + " -> " + formatSize(res.DstWidth, res.DstHeight)
}
