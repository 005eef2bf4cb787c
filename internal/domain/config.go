package domain

import "time"

// Config is the tool configuration loaded from domainstatus.yaml.
type Config struct {
	HTTP  HTTPConfig
	Whois WhoisConfig
	Paths PathsConfig
}

type HTTPConfig struct {
	Timeout   time.Duration
	UserAgent string
}

type WhoisConfig struct {
	Enabled bool
	Timeout time.Duration
}

type PathsConfig struct {
	ResultsDir string
}

// DefaultConfig provides sane defaults if domainstatus.yaml is partially
// missing.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "Mozilla/5.0 (Windows NT 6.3; rv:36.0) Gecko/20100101 Firefox/36.0",
		},
		Whois: WhoisConfig{
			Enabled: true,
			Timeout: 10 * time.Second,
		},
		Paths: PathsConfig{
			ResultsDir: "generated_results",
		},
	}
}
