package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/investcalc/internal/config"
	"github.com/mmynk/investcalc/internal/render"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Locale   string
	Currency string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the investcalc CLI.
// Locale and currency flags default to the values in cfg.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "investcalc",
		Short:         "Investment growth calculator",
		Long:          "Project how an investment grows year by year under a fixed return and yearly contribution.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if _, err := opts.moneyFormat(); err != nil {
				return WrapExitError(ExitCommandError, "invalid money format", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", cfg.Locale, "locale for money values (BCP 47)")
	cmd.PersistentFlags().StringVar(&opts.Currency, "currency", cfg.Currency, "currency for money values (ISO 4217)")

	cmd.AddCommand(NewProjectCommand(opts))

	return cmd
}

func (o *RootOptions) moneyFormat() (render.Format, error) {
	return render.ParseFormat(o.Locale, o.Currency)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
