package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jrn/pkg/commands/options"
	"tableflip.dev/jrn/pkg/runner/undo"
)

func addUndo(topLevel *cobra.Command, s *session) {
	jo := &options.JournalOptions{}

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Remove the last entry of a journal.",
		Example: `
jrn undo
jrn undo -j home
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := s.load(cmd); err != nil {
				return s.output.HandleError(cmd, err)
			}
			u := undo.Undo{
				Journals: s.registry,
				Journal:  jo.Journal,
				Log:      s.log,
			}
			err := u.Do(cmd.Context())
			return s.output.HandleError(cmd, err)
		},
	}

	options.AddJournalArg(cmd, jo, s.journalNames(cmd))

	topLevel.AddCommand(cmd)
}
