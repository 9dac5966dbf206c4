package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/jrn/pkg/printers"
	"tableflip.dev/jrn/pkg/timeutil"
)

// ListOptions
type ListOptions struct {
	Output   string
	Follow   bool
	Calendar bool
	Since    string
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", string(printers.FormatText),
		"Output format. One of "+strings.Join(printers.Formats(), ", ")+".")
	cmd.Flags().BoolVarP(&o.Follow, "follow", "f", false,
		"Keep printing the journal as it changes.")
	cmd.Flags().BoolVar(&o.Calendar, "calendar", false,
		"Show this month with the days that have entries.")
	cmd.Flags().StringVar(&o.Since, "since", "",
		`Only entries from this far back, for example "3d", "1w" or "1w2d6h".`)
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return printers.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
}

// Window parses the --since flag.
func (o *ListOptions) Window() (timeutil.Window, error) {
	return timeutil.ParseWindow(o.Since)
}

// Format parses the --output flag.
func (o *ListOptions) Format() (printers.Format, error) {
	return printers.ParseFormat(o.Output)
}
