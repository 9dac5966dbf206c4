package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tableflip.dev/jrn/pkg/commands/options"
	"tableflip.dev/jrn/pkg/config"
	"tableflip.dev/jrn/pkg/logging"
	"tableflip.dev/jrn/pkg/printers"
	"tableflip.dev/jrn/pkg/registry"
)

// session is what the subcommands share during one invocation. Settings and
// the registry are loaded on first use so version and completion work without
// them.
type session struct {
	viper  *viper.Viper
	output *options.OutputOptions

	settings *config.Settings
	log      *zap.Logger
	registry *registry.Registry
}

func (s *session) load(cmd *cobra.Command) error {
	if s.registry != nil {
		return nil
	}

	settings, err := config.Load(s.viper)
	if err != nil {
		return err
	}
	log := logging.New(cmd.ErrOrStderr(), settings.Verbose)
	log.Debug("settings loaded",
		zap.String("registry", settings.RegistryPath),
		zap.String("config", settings.ConfigFile))

	reg, err := registry.Load(settings.RegistryPath, registry.WithLogger(log))
	if err != nil {
		return err
	}

	s.settings = settings
	s.log = log
	s.registry = reg
	return nil
}

func (s *session) printer(cmd *cobra.Command) *printers.PrettyPrint {
	return &printers.PrettyPrint{Out: cmd.OutOrStdout()}
}

// journalNames feeds shell completion for -j.
func (s *session) journalNames(cmd *cobra.Command) func() []string {
	return func() []string {
		if err := s.load(cmd); err != nil {
			return nil
		}
		records := s.registry.Records()
		names := make([]string, 0, len(records))
		for _, r := range records {
			names = append(names, r.Name)
		}
		return names
	}
}
