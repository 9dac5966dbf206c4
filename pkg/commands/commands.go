package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jrn/pkg/commands/options"
	"tableflip.dev/jrn/pkg/config"
)

func New() *cobra.Command {
	s := &session{
		viper:  config.New(),
		output: &options.OutputOptions{},
	}

	cmd := &cobra.Command{
		Use:   "jrn",
		Short: base.Wrap80("Keep short dated notes in named journals."),
		Long: base.Wrap80("jrn appends entries to one of several named journals, each kept " +
			"in a single JSON file. Journals are listed in a registry file, ~/.jrn.config by " +
			"default, and the first one added is the default journal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr.")
	_ = s.viper.BindPFlag(config.KeyVerbose, cmd.PersistentFlags().Lookup("verbose"))
	options.AddOutputArg(cmd, s.output)

	addCommands(cmd, s)
	return cmd
}

func addCommands(topLevel *cobra.Command, s *session) {
	addAdd(topLevel, s)
	addUndo(topLevel, s)
	addList(topLevel, s)
	addJournal(topLevel, s)
	addVersion(topLevel)
	addCompletions(topLevel)
}
