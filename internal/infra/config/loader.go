package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/skamsie/Domain-Status-Checker/internal/domain"
)

const FileName = "domainstatus.yaml"

// Load reads domainstatus.yaml from dir and applies it on top of defaults.
// A missing file still returns usable defaults, together with a
// KindNotFound OpError the caller may ignore.
func Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(dir, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidInput,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Domainstatus.HTTP.Timeout != "" {
		d, perr := time.ParseDuration(y.Domainstatus.HTTP.Timeout)
		if perr != nil {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidInput,
				Path: path,
				Err:  perr,
			}
		}
		cfg.HTTP.Timeout = d
	}
	if y.Domainstatus.HTTP.UserAgent != "" {
		cfg.HTTP.UserAgent = y.Domainstatus.HTTP.UserAgent
	}
	if y.Domainstatus.Whois.Enabled != nil {
		cfg.Whois.Enabled = *y.Domainstatus.Whois.Enabled
	}
	if y.Domainstatus.Whois.Timeout != "" {
		d, perr := time.ParseDuration(y.Domainstatus.Whois.Timeout)
		if perr != nil {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidInput,
				Path: path,
				Err:  perr,
			}
		}
		cfg.Whois.Timeout = d
	}
	if y.Domainstatus.Paths.ResultsDir != "" {
		cfg.Paths.ResultsDir = y.Domainstatus.Paths.ResultsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Domainstatus struct {
		HTTP struct {
			Timeout   string `yaml:"timeout"`
			UserAgent string `yaml:"user_agent"`
		} `yaml:"http"`

		Whois struct {
			Enabled *bool  `yaml:"enabled"`
			Timeout string `yaml:"timeout"`
		} `yaml:"whois"`

		Paths struct {
			ResultsDir string `yaml:"results_dir"`
		} `yaml:"paths"`
	} `yaml:"domainstatus"`
}
