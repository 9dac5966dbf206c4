// Package config loads the jrn settings from flags, the environment and an
// optional .jrn.yaml file.
package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// KeyRegistry is the path of the journal registry file.
	KeyRegistry = "registry"
	// KeyJournalDir is where new journals are suggested to live.
	KeyJournalDir = "journal_dir"
	// KeyVerbose turns on debug logging.
	KeyVerbose = "verbose"

	// EnvPrefix prefixes every environment override, JRN_REGISTRY and so on.
	EnvPrefix = "JRN"
	// EnvConfigPath names an extra directory to search for .jrn.yaml.
	EnvConfigPath = "JRN_CONFIG_PATH"

	DefaultRegistry   = "~/.jrn.config"
	DefaultJournalDir = "~"
)

// Settings is the resolved configuration.
type Settings struct {
	RegistryPath string
	JournalDir   string
	Verbose      bool
	// ConfigFile is the settings file that was read, if any.
	ConfigFile string
}

// New returns a viper instance with the jrn defaults, environment binding and
// search paths. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyRegistry, DefaultRegistry)
	v.SetDefault(KeyJournalDir, DefaultJournalDir)
	v.SetDefault(KeyVerbose, false)

	v.SetConfigName(".jrn") // .yaml is implicit
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("$HOME")
	v.AddConfigPath("./")
	return v
}

// Load reads the settings file, if one is found, and resolves the settings.
func Load(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	registry, err := homedir.Expand(v.GetString(KeyRegistry))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", KeyRegistry)
	}
	dir, err := homedir.Expand(v.GetString(KeyJournalDir))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", KeyJournalDir)
	}

	return &Settings{
		RegistryPath: registry,
		JournalDir:   dir,
		Verbose:      v.GetBool(KeyVerbose),
		ConfigFile:   v.ConfigFileUsed(),
	}, nil
}

// SuggestedLocation is the default file offered for a new journal.
func (s *Settings) SuggestedLocation(name string) string {
	return filepath.Join(s.JournalDir, "jrn-"+name+".json")
}
