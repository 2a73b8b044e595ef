package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vango-dev/cn/cn"
)

func mergeCmd(a *app) *cobra.Command {
	var (
		prefix    string
		extension string
		explain   bool
		joinOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "merge [classes...]",
		Short: "Merge class lists so later utilities override earlier ones",
		Long:  "Merge class lists so later utilities override earlier ones.\nWith no arguments the class list is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				inputs = strings.Fields(string(b))
			}

			out := cmd.OutOrStdout()
			if joinOnly {
				values := make([]cn.ClassValue, len(inputs))
				for i, in := range inputs {
					values[i] = in
				}
				_, err := fmt.Fprintln(out, cn.Join(values...))
				return err
			}

			m, err := a.merger(prefix, extension)
			if err != nil {
				return err
			}

			res := m.Explain(inputs...)
			if _, err := fmt.Fprintln(out, res.String()); err != nil {
				return err
			}
			if explain {
				printDropped(cmd.ErrOrStderr(), res.Dropped)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Tailwind prefix (overrides CN_PREFIX)")
	cmd.Flags().StringVarP(&extension, "extension", "e", "", "YAML file with extra class groups (overrides CN_EXTENSION_FILE)")
	cmd.Flags().BoolVar(&explain, "explain", false, "print dropped classes to stderr")
	cmd.Flags().BoolVar(&joinOnly, "join-only", false, "join classes without resolving conflicts")
	return cmd
}

// merger builds a Merger from config, letting flags take precedence.
func (a *app) merger(prefix, extension string) (*cn.Merger, error) {
	if extension == "" {
		extension = a.cfg.ExtensionFile
	}
	if prefix == "" {
		prefix = a.cfg.Prefix
	}

	cfg := cn.DefaultConfig()
	if extension != "" {
		ext, err := cn.LoadExtensionFile(extension)
		if err != nil {
			return nil, fmt.Errorf("load extension: %w", err)
		}
		cfg = ext.Apply(cfg)
		a.logger.Debug("extension loaded", "path", extension, "groups", len(ext.Groups))
	}
	if prefix != "" {
		cfg.Prefix = prefix
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cn.New(cfg, cn.WithLogger(a.logger)), nil
}

func printDropped(w io.Writer, dropped []cn.Dropped) {
	if len(dropped) == 0 {
		fmt.Fprintln(w, "(no classes dropped)")
		return
	}

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	for _, d := range dropped {
		fmt.Fprintf(w, "- %s  overridden by %s\n", red(d.Class), green(d.OverriddenBy))
	}
}
