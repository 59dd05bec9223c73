package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/paperwheel/go-wordedit/pkg/wordedit"
)

const version = "0.1.0"

// rootOptions carries the settings shared by every subcommand, resolved
// from flags and the optional config file. Flags win over file values.
type rootOptions struct {
	logLevel     string
	jsonOut      bool
	quiet        bool
	defaultStyle string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wordedit",
		Short: "Inspect and edit Word documents",
		Long: `wordedit reads and edits .docx files: metadata, text extraction,
search, replacement across formatting boundaries, and anchored paragraph
insertion.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log verbosity (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "emit JSON instead of human-readable output")
	cmd.PersistentFlags().BoolVar(&opts.quiet, "quiet", false, "suppress status output")

	cmd.AddCommand(
		newPropertiesCmd(opts),
		newTextCmd(opts),
		newStructureCmd(opts),
		newXMLCmd(opts),
		newPartsCmd(opts),
		newPartCmd(opts),
		newStylesCmd(opts),
		newFindCmd(opts),
		newReplaceCmd(opts),
		newInsertHeaderCmd(opts),
		newInsertLineCmd(opts),
		newNormalizeCmd(opts),
	)

	return cmd
}

// resolve merges the config file into flags the user did not set and
// installs the library logger.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("log-level") && cfg.LogLevel != "" {
		o.logLevel = cfg.LogLevel
	}
	if !flags.Changed("json") && cfg.JSON {
		o.jsonOut = true
	}
	o.defaultStyle = cfg.DefaultStyle

	if o.logLevel != "" {
		level, err := zerolog.ParseLevel(o.logLevel)
		if err != nil {
			return errors.Errorf("invalid log level %q: %w", o.logLevel, err)
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
		wordedit.SetLogger(logger)
	}
	return nil
}
