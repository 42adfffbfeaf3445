package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cemsbr/tagcash/internal/buildinfo"
	"github.com/cemsbr/tagcash/internal/config"
	"github.com/cemsbr/tagcash/internal/ledger"
	"github.com/cemsbr/tagcash/internal/logger"
	"github.com/cemsbr/tagcash/internal/parser"
	"github.com/cemsbr/tagcash/internal/report"
	"github.com/cemsbr/tagcash/internal/source"
)

type options struct {
	tags       string
	all        bool
	format     string
	configPath string
	verbose    bool
	logJSON    bool
}

// NewRootCommand creates the tagcash command.
func NewRootCommand() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "tagcash [FILE... | -]",
		Short: "Finances with tags in the terminal",
		Long: `Reads ledger lines of the form

  YYYY-MM-DD  AMOUNT  DESCRIPTION  TAG[,TAG...]

from the given files, or stdin when none (or "-") is given, and prints a
running-balance table per tag. A tag written as -tag negates the amount for
that tag.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.tags, "tags", "t", "", "comma-separated tags to show, no spaces (default all)")
	flags.BoolVarP(&opts.all, "all", "a", false, "show an extra table with all the tags")
	flags.StringVarP(&opts.format, "format", "f", "table", "output format: table, plain or csv")
	flags.StringVar(&opts.configPath, "config", "", "path to a tagcash.yaml file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")
	flags.BoolVar(&opts.logJSON, "log-json", false, "write log messages as JSON lines")

	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

func runReport(cmd *cobra.Command, files []string, opts options) error {
	log := logger.New(cmd.ErrOrStderr(), opts.verbose)
	if opts.logJSON {
		log = logger.NewJSON(cmd.ErrOrStderr(), opts.verbose)
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Debug().Str("path", opts.configPath).Msg("loaded config")
	}

	wanted := parser.NewTagSet(cfg.Tags...)
	flags := cmd.Flags()
	if flags.Changed("tags") {
		wanted = parser.ParseTagList(opts.tags)
	}
	if flags.Changed("all") {
		cfg.All = opts.all
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}

	renderer, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	lines := source.Lines(files, cmd.InOrStdin())
	groups, err := ledger.Collect(lines, wanted, func(line source.Line, err error) {
		log.Warn().Str("source", line.Name).Int("line", line.Number).Msg(err.Error())
	})
	if err != nil {
		return err
	}
	log.Debug().Int("tags", groups.Len()).Int("records", groups.Count()).Msg("parsed ledger")

	ledger.Balance(groups)

	out := cmd.OutOrStdout()
	for _, tag := range groups.Sorted() {
		if err := renderer.Render(out, tag, groups.Records(tag)); err != nil {
			return err
		}
	}

	if cfg.All {
		if err := renderer.Render(out, report.AllTagsTitle, ledger.All(groups)); err != nil {
			return err
		}
	}
	return nil
}
