package options

import (
	"github.com/spf13/cobra"
)

// JournalOptions selects the journal a command works on.
type JournalOptions struct {
	Journal string
}

// AddJournalArg registers -j/--journal. Names come from complete when the
// shell asks for them.
func AddJournalArg(cmd *cobra.Command, o *JournalOptions, complete func() []string) {
	cmd.Flags().StringVarP(&o.Journal, "journal", "j", "",
		"Journal to use, the default journal when empty.")
	_ = cmd.RegisterFlagCompletionFunc("journal", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		if complete == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return complete(), cobra.ShellCompDirectiveNoFileComp
	})
}
