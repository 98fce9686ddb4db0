package config

import (
	"errors"
	"io/fs"
	"os"

	"crazyrules/internal/util"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the game runner
type Config struct {
	loaded bool
	// Seed is 32 hex characters. An empty seed is drawn from crypto/rand
	Seed        string `yaml:"seed" envconfig:"seed"`
	HumanSeats  []int  `yaml:"humanSeats" envconfig:"human_seats"`
	LogCapacity int    `yaml:"logCapacity" envconfig:"log_capacity"`
	Rounds      int    `yaml:"rounds" envconfig:"rounds"`
	FrameLimit  int    `yaml:"frameLimit" envconfig:"frame_limit"`
	CarryRules  bool   `yaml:"carryRules" envconfig:"carry_rules"`
	RuleOptions int    `yaml:"ruleOptions" envconfig:"rule_options"`
	Log         struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration used for anything the file and environment leave out
func DefaultConfig() Config {
	cfg := Config{
		LogCapacity: 64,
		Rounds:      3,
		FrameLimit:  100000,
		CarryRules:  true,
		RuleOptions: 3,
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from the defaults, then the YAML file, then the environment. A .env file in the working
// directory is read into the environment first.
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("CR_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("cr", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
