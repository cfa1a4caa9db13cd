package app

import (
	"encoding/json"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/mitchellh/mapstructure"

	"github.com/cloudfoundry/lvm-expander/runner"
)

const (
	DefaultLogDir    = "/var/log"
	DefaultLogLevel  = "DEBUG"
	DefaultDeviceDir = "/dev"
)

type Config struct {
	LogDir           string   `mapstructure:"log_dir"`
	LogLevel         string   `mapstructure:"log_level"`
	DeviceDir        string   `mapstructure:"device_dir"`
	RequiredCommands []string `mapstructure:"required_commands"`
}

func DefaultConfig() Config {
	return Config{
		LogDir:           DefaultLogDir,
		LogLevel:         DefaultLogLevel,
		DeviceDir:        DefaultDeviceDir,
		RequiredCommands: append([]string{}, runner.RequiredCommands...),
	}
}

// LoadConfigFromPath overlays the JSON file at path onto DefaultConfig.
// Unknown keys are rejected.
func LoadConfigFromPath(fs boshsys.FileSystem, path string) (Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	bytes, err := fs.ReadFile(path)
	if err != nil {
		return config, bosherr.WrapError(err, "Reading file")
	}

	var raw map[string]interface{}

	err = json.Unmarshal(bytes, &raw)
	if err != nil {
		return config, bosherr.WrapError(err, "Loading file")
	}

	var fileConfig Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &fileConfig,
	})
	if err != nil {
		return config, bosherr.WrapError(err, "Building config decoder")
	}

	err = decoder.Decode(raw)
	if err != nil {
		return config, bosherr.WrapError(err, "Decoding file")
	}

	return config.overlay(fileConfig), nil
}

// overlay replaces each field that other sets. A list from other replaces
// the whole list, including an empty one.
func (c Config) overlay(other Config) Config {
	if other.LogDir != "" {
		c.LogDir = other.LogDir
	}

	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}

	if other.DeviceDir != "" {
		c.DeviceDir = other.DeviceDir
	}

	if other.RequiredCommands != nil {
		c.RequiredCommands = other.RequiredCommands
	}

	return c
}

func (c Config) WithOptions(opts Options) Config {
	return c.overlay(Config{LogDir: opts.LogDir, LogLevel: opts.LogLevel})
}
