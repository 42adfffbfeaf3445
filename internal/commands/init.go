package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/cemsbr/tagcash/internal/config"
	"github.com/cemsbr/tagcash/internal/parser"
	"github.com/cemsbr/tagcash/internal/report"
)

// DefaultConfigFile is the file written by init when no path is given.
const DefaultConfigFile = "tagcash.yaml"

func newInitCommand() *cobra.Command {
	var tags string
	var all bool
	var format string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a tagcash.yaml with report defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultConfigFile
			if len(args) > 0 {
				path = args[0]
			}

			cfg := config.Default()
			cfg.Tags = parser.ParseTagList(tags).Names()
			cfg.All = all
			cfg.Format = format

			if err := runInit(path, cfg, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tags, "tags", "t", "", "comma-separated default tags (default all)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "show the All Tags table by default")
	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatTable), "default output format: table, plain or csv")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func runInit(path string, cfg *config.Config, force bool) error {
	if _, err := report.ParseFormat(cfg.Format); err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
