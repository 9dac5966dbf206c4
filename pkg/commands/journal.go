package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jrn/pkg/prompt"
	"tableflip.dev/jrn/pkg/runner/journals"
)

func addJournal(topLevel *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"journals"},
		Short:   "Manage journals.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// a sub-command is required.
			return cmd.Help()
		},
	}

	addJournalAdd(cmd, s)
	addJournalList(cmd, s)

	topLevel.AddCommand(cmd)
}

func addJournalAdd(topLevel *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal, asking for its name and location.",
		Long: "Add a journal. The name defaults to \"default\" and the location to " +
			"<journal_dir>/jrn-<name>.json. The first journal added becomes the default.",
		Example: `
jrn journal add
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := s.load(cmd); err != nil {
				return s.output.HandleError(cmd, err)
			}
			a := journals.Add{
				Registry:     s.registry,
				Bootstrapper: prompt.NewBootstrapper(cmd.InOrStdin(), cmd.OutOrStdout(), s.settings.SuggestedLocation),
				Printer:      s.printer(cmd),
			}
			err := a.Do(cmd.Context())
			return s.output.HandleError(cmd, err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addJournalList(topLevel *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the journals, the default one marked with *.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := s.load(cmd); err != nil {
				return s.output.HandleError(cmd, err)
			}
			l := journals.List{
				Registry: s.registry,
				Printer:  s.printer(cmd),
			}
			err := l.Do(cmd.Context())
			return s.output.HandleError(cmd, err)
		},
	}

	topLevel.AddCommand(cmd)
}
