// Package cmd is the numfield command tree: an interactive numeric field and
// batch helpers that run the same formatting pipeline over arguments.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-numedit/config"
	"github.com/TsubasaBE/go-numedit/numfmt"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	cfgFile    string
	locale     string
	style      string
	formatCode string
	decimal    string
	grouping   string
	maxBefore  int
	maxAfter   int
	currency   bool
	symbol     string
	pattern    string
	defValue   float64
	verbose    bool
}

// Execute runs the numfield command.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), root.Name(), err)
		return err
	}
	return nil
}

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "numfield",
		Short: "Locale-aware numeric text field",
		Long: `numfield drives a numeric text field that groups digits as you type,
limits integer and fraction digits, and keeps a currency symbol in place.

Field settings come from an attribute file (--config, TOML or YAML) and
are overridden by flags:

  --locale       separators, symbol and placement of a BCP 47 locale
  --style        built-in style name or ID (integer, decimal, currency, 44)
  --format-code  spreadsheet format code, e.g. '#,##0.00 [$€-407]'`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "attribute file (.toml, .yaml)")
	pf.StringVar(&opts.locale, "locale", "", "locale tag, e.g. de-DE")
	pf.StringVar(&opts.style, "style", "", "built-in style name or ID")
	pf.StringVar(&opts.formatCode, "format-code", "", "spreadsheet-style format code")
	pf.StringVar(&opts.decimal, "decimal", "", "decimal separator")
	pf.StringVar(&opts.grouping, "grouping", "", "grouping separator")
	pf.IntVar(&opts.maxBefore, "max-before", numfmt.DefaultDigitsBeforeDecimal, "max integer digits (0 = unlimited)")
	pf.IntVar(&opts.maxAfter, "max-after", numfmt.DefaultDigitsAfterDecimal, "max fraction digits")
	pf.BoolVar(&opts.currency, "currency", false, "show the currency symbol")
	pf.StringVar(&opts.symbol, "symbol", "", "currency symbol override (first character)")
	pf.StringVar(&opts.pattern, "pattern", "", "currency pattern: symbol-number, number-symbol, symbol-space-number, number-space-symbol")
	pf.Float64Var(&opts.defValue, "default", 0, "default value shown initially and after clear")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log edit decisions to stderr")

	root.AddCommand(
		newRunCmd(opts),
		newFormatCmd(opts),
		newParseCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return root
}

// resolve merges the attribute file with the flags the user set and returns
// the field configuration plus the default value, if any.
func (o *options) resolve(cmd *cobra.Command) (numfmt.Config, *float64, error) {
	attrs := &config.Attributes{}
	if o.cfgFile != "" {
		var err error
		if attrs, err = config.Load(o.cfgFile); err != nil {
			return numfmt.Config{}, nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		attrs.Locale = o.locale
	}
	if flags.Changed("style") {
		attrs.Style = o.style
	}
	if flags.Changed("format-code") {
		attrs.FormatCode = o.formatCode
	}
	if flags.Changed("decimal") {
		attrs.DecimalSeparator = o.decimal
	}
	if flags.Changed("grouping") {
		attrs.GroupingSeparator = o.grouping
	}
	if flags.Changed("max-before") {
		attrs.MaxDigitsBeforeDecimal = &o.maxBefore
	}
	if flags.Changed("max-after") {
		attrs.MaxDigitsAfterDecimal = &o.maxAfter
	}
	if flags.Changed("currency") {
		attrs.ShowCurrencySymbol = &o.currency
	}
	if flags.Changed("symbol") {
		attrs.OverrideCurrencySymbol = o.symbol
	}
	if flags.Changed("pattern") {
		attrs.CurrencyPattern = o.pattern
	}
	if flags.Changed("default") {
		attrs.DefaultValue = &o.defValue
	}

	cfg, err := attrs.Resolve()
	if err != nil {
		return numfmt.Config{}, nil, err
	}
	return cfg, attrs.DefaultValue, nil
}

// logger returns a JSON logger on stderr: debug level with --verbose,
// warnings only otherwise.
func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "error: %s: %v\n", msg, err)
}

