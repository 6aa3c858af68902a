package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvr-ai/rasterfx/images"
)

func newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available transforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			cat, err := images.NewCatalog(cfg.Options())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(cat.Entries())
			}
			printCatalog(out, cat.Entries(), len(cat.Menu()))
			fmt.Fprintln(out)
			printDetail(out, "cartoon threshold %d, black & white threshold %d",
				cfg.Thresholds.Cartoon, cfg.Thresholds.BlackWhite)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return cmd
}
