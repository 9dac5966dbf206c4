package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/jrn/pkg/commands/options"
	"tableflip.dev/jrn/pkg/runner/list"
)

func addList(topLevel *cobra.Command, s *session) {
	jo := &options.JournalOptions{}
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the entries of a journal.",
		Example: `
jrn list
jrn list -j home -o yaml
jrn list --follow
jrn list --calendar
jrn list --since 1w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := lo.Format()
			if err != nil {
				return s.output.HandleError(cmd, err)
			}
			since, err := lo.Window()
			if err != nil {
				return s.output.HandleError(cmd, err)
			}
			if err := s.load(cmd); err != nil {
				return s.output.HandleError(cmd, err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()

			l := list.List{
				Journals: s.registry,
				Journal:  jo.Journal,
				Format:   format,
				Since:    since,
				Calendar: lo.Calendar,
				Follow:   lo.Follow,
				Printer:  s.printer(cmd),
				Log:      s.log,
			}
			err = l.Do(ctx)
			return s.output.HandleError(cmd, err)
		},
	}

	options.AddJournalArg(cmd, jo, s.journalNames(cmd))
	options.AddListArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
