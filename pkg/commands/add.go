package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/jrn/pkg/commands/options"
	"tableflip.dev/jrn/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, s *session) {
	jo := &options.JournalOptions{}
	eo := &options.EntryOptions{}

	cmd := &cobra.Command{
		Use:   "add [content...]",
		Short: "Add an entry to a journal.",
		Long: "Add an entry to a journal. The words given are the content; with none, " +
			"the content is read from stdin until EOF.",
		Example: `
jrn add Fixed the flaky build. It was the cache again
jrn add -j home --star Call the plumber
echo "*Ship it" | jrn add
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := s.load(cmd); err != nil {
				return s.output.HandleError(cmd, err)
			}
			a := add.Add{
				Journals: s.registry,
				Journal:  jo.Journal,
				Content:  strings.Join(args, " "),
				Title:    eo.Title,
				Starred:  eo.Star,
				Tags:     eo.Tags,
				Printer:  s.printer(cmd),
				Log:      s.log,
			}
			if len(args) == 0 {
				a.Stdin = cmd.InOrStdin()
			}
			err := a.Do(cmd.Context())
			return s.output.HandleError(cmd, err)
		},
	}

	options.AddJournalArg(cmd, jo, s.journalNames(cmd))
	options.AddEntryArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
