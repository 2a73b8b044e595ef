package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/cn/keys"
)

func keysCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "keys [file]",
		Short: "List the top-level keys of a YAML or JSON object",
		Long:  "List the top-level keys of a YAML or JSON object in enumeration order.\nWith no file the document is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			ks, err := keys.FromDocument(data)
			if err != nil {
				return err
			}
			a.logger.Debug("keys listed", "count", len(ks))

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(ks)
			}
			for _, k := range ks {
				if _, err := fmt.Fprintln(out, k); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print keys as a JSON array")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return b, nil
}
