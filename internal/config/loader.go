package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "xerreader.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "xerreader.yml"

// EnvPrefix is the prefix env-var overrides must carry, e.g.
// XERREADER_STORE_TYPE for store.type.
const EnvPrefix = "XERREADER_"

// Load builds a ProjectConfig by layering, lowest precedence first: the
// yaml file found in dir (if any), environment variables prefixed with
// EnvPrefix, then any bound CLI flags. A missing config file is not an
// error — defaults and the other layers still apply.
func Load(dir string, flags *pflag.FlagSet) (*ProjectConfig, error) {
	k := koanf.New(".")

	if configPath := findConfigFile(dir); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyReplacer), nil); err != nil {
		return nil, err
	}

	if flags != nil {
		// --output sets output.format; flags with no config key (such as
		// --config-dir) are dropped.
		flagKey := func(f *pflag.Flag) (string, interface{}) {
			if f.Name == "output" {
				return "output.format", f.Value.String()
			}
			return "", nil
		}
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey), nil); err != nil {
			return nil, err
		}
	}

	var cfg ProjectConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

func envKeyReplacer(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ToLower(strings.ReplaceAll(s, "_", "."))
}

func findConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, ConfigFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}

// FindProjectRoot walks up from the given directory to find one
// containing xerreader.yaml or xerreader.yml.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for {
		if findConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
