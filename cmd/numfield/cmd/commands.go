package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	numedit "github.com/TsubasaBE/go-numedit"
	"github.com/TsubasaBE/go-numedit/internal/tui/fieldui"
	"github.com/TsubasaBE/go-numedit/numfmt"
)

func newRunCmd(opts *options) *cobra.Command {
	var title string
	c := &cobra.Command{
		Use:   "run",
		Short: "Edit a number interactively",
		Long: `Opens an interactive numeric field in the terminal.

Keys the field cannot accept are ignored.  Text the field rejects is
reverted to the last accepted text.

  Enter    submit and print the value
  Ctrl+R   clear (restores --default when set)
  Esc      quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, def, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			v, err := fieldui.Run(fieldui.Config{
				Format:  cfg,
				Default: def,
				Title:   title,
				Logger:  opts.logger(cmd.ErrOrStderr()),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(v))
			return nil
		},
	}
	c.Flags().StringVar(&title, "title", "", "field title")
	return c
}

func newFormatCmd(opts *options) *cobra.Command {
	var values bool
	c := &cobra.Command{
		Use:   "format TEXT...",
		Short: "Format raw text as the field would display it",
		Example: `  numfield format 1234567.891
  numfield format --locale de-DE --currency 1234,5
  numfield format --value 1234.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, arg := range args {
				if !values {
					fmt.Fprintln(out, numfmt.Format(arg, cfg))
					continue
				}
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("format: %q is not a number", arg)
				}
				fmt.Fprintln(out, numfmt.FormatValue(v, cfg))
			}
			return nil
		},
	}
	c.Flags().BoolVar(&values, "value", false, "arguments are numbers (e.g. 1234.5) instead of field text")
	return c
}

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Print the numeric value of displayed field text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), formatNumber(numfmt.Parse(arg, cfg)))
			}
			return nil
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check EDIT...",
		Short: "Replay a sequence of edits through the field",
		Long: `Feeds each argument to the field as the full proposed text of one
edit and prints what the field did with it: the action, the text the
host displays, the value and the rule behind a revert or clear.`,
		Example: `  numfield check 1 12 123 1234 1,2345 1,2345. 12,345..`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, def, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			log := opts.logger(cmd.ErrOrStderr())

			var opt []numedit.Option
			if def != nil {
				opt = append(opt, numedit.WithDefaultValue(*def))
			}
			f, err := numedit.New(cfg, opt...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, proposed := range args {
				res := f.OnTextChanged(proposed)
				log.Debug("edit",
					"proposed", proposed,
					"action", res.Action.String(),
					"text", res.Text,
					"caret", res.Caret,
				)
				printResult(out, proposed, res)
			}
			return nil
		},
	}
}

func printResult(w io.Writer, proposed string, res numedit.Result) {
	value := "-"
	if res.Action == numedit.ActionAccept {
		value = formatNumber(res.Value)
	}
	rule := "-"
	if res.Action != numedit.ActionAccept {
		rule = res.Rule.String()
	}
	fmt.Fprintf(w, "%-16q %-7s %-18q %-14s %s\n", proposed, res.Action, res.Text, value, rule)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "numfield %s\n", numedit.Version)
		},
	}
}

// formatNumber prints v in plain decimal notation, "NaN" for no value.
func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
